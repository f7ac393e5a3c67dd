// Package store holds every entity collection in process memory. It is
// the stand-in for a relational database: each collection keeps an
// auto-incrementing id counter and insertion order, and all operations
// serialize on a single mutex so concurrent Fiber handlers cannot lose
// counter increments.
package store

import (
	"math/rand"
	"sync"
	"time"

	"backend-checkin/internal/models"
)

// table is one keyed collection: records by id, ids in insertion
// order, and a monotonic counter. Ids start at 1 and are never reused.
type table[T any] struct {
	recs   map[int]T
	order  []int
	nextID int
}

func newTable[T any]() *table[T] {
	return &table[T]{recs: make(map[int]T), nextID: 1}
}

func (t *table[T]) insert(build func(id int) T) T {
	id := t.nextID
	t.nextID++
	rec := build(id)
	t.recs[id] = rec
	t.order = append(t.order, id)
	return rec
}

func (t *table[T]) get(id int) (T, bool) {
	rec, ok := t.recs[id]
	return rec, ok
}

// put replaces an existing record. The id must already be present.
func (t *table[T]) put(id int, rec T) {
	t.recs[id] = rec
}

func (t *table[T]) all() []T {
	out := make([]T, 0, len(t.order))
	for _, id := range t.order {
		out = append(out, t.recs[id])
	}
	return out
}

func (t *table[T]) find(pred func(T) bool) (T, bool) {
	for _, id := range t.order {
		if pred(t.recs[id]) {
			return t.recs[id], true
		}
	}
	var zero T
	return zero, false
}

func (t *table[T]) filter(pred func(T) bool) []T {
	out := []T{}
	for _, id := range t.order {
		if pred(t.recs[id]) {
			out = append(out, t.recs[id])
		}
	}
	return out
}

func (t *table[T]) len() int {
	return len(t.order)
}

// Store owns all collections. Construct one per process (or per test)
// and pass it to the handlers explicitly.
type Store struct {
	mu sync.Mutex

	now func() time.Time
	rng *rand.Rand

	users                   *table[models.User]
	voters                  *table[models.Voter]
	queueItems              *table[models.QueueItem]
	stations                *table[models.Station]
	issues                  *table[models.Issue]
	systemStatuses          *table[models.SystemStatus]
	alerts                  *table[models.Alert]
	messages                *table[models.Message]
	stats                   *table[models.Stat]
	biometrics              *table[models.Biometric]
	accessibilityPrefs      *table[models.AccessibilityPreference]
	mobileNotifications     *table[models.MobileNotification]
	anomalies               *table[models.Anomaly]
	predictiveAnalytics     *table[models.PredictiveAnalytic]
	blockchainTransactions  *table[models.BlockchainTransaction]
}

func New() *Store {
	return NewWithSource(time.Now, rand.New(rand.NewSource(time.Now().UnixNano())))
}

// NewWithSource pins the clock and random source. Tests use it to get
// deterministic timestamps, stat values, and verification codes.
func NewWithSource(now func() time.Time, rng *rand.Rand) *Store {
	return &Store{
		now:                    now,
		rng:                    rng,
		users:                  newTable[models.User](),
		voters:                 newTable[models.Voter](),
		queueItems:             newTable[models.QueueItem](),
		stations:               newTable[models.Station](),
		issues:                 newTable[models.Issue](),
		systemStatuses:         newTable[models.SystemStatus](),
		alerts:                 newTable[models.Alert](),
		messages:               newTable[models.Message](),
		stats:                  newTable[models.Stat](),
		biometrics:             newTable[models.Biometric](),
		accessibilityPrefs:     newTable[models.AccessibilityPreference](),
		mobileNotifications:    newTable[models.MobileNotification](),
		anomalies:              newTable[models.Anomaly](),
		predictiveAnalytics:    newTable[models.PredictiveAnalytic](),
		blockchainTransactions: newTable[models.BlockchainTransaction](),
	}
}
