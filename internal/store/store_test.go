package store

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"backend-checkin/internal/models"
)

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) Now() time.Time { return c.t }

func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestStore() (*Store, *fakeClock) {
	clock := &fakeClock{t: time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)}
	return NewWithSource(clock.Now, rand.New(rand.NewSource(1))), clock
}

func TestCreateAssignsSequentialIDs(t *testing.T) {
	s, _ := newTestStore()

	for i := 1; i <= 5; i++ {
		voter := s.CreateVoter(models.InsertVoter{VoterID: "v", Name: "n"})
		assert.Equal(t, i, voter.ID)
	}

	// Each collection counts independently.
	item := s.CreateQueueItem(models.InsertQueueItem{VoterID: 1, Number: 1})
	assert.Equal(t, 1, item.ID)
	issue := s.CreateIssue(models.InsertIssue{Type: "scanner_malfunction"})
	assert.Equal(t, 1, issue.ID)
}

func TestCheckInVoter(t *testing.T) {
	s, clock := newTestStore()
	voter := s.CreateVoter(models.InsertVoter{VoterID: "100123", Name: "Sarah Johnson"})
	require.False(t, voter.CheckedIn)

	_, err := s.CheckInVoter(99, 2)
	assert.ErrorIs(t, err, ErrNotFound)

	checked, err := s.CheckInVoter(voter.ID, 2)
	require.NoError(t, err)
	assert.True(t, checked.CheckedIn)
	require.NotNil(t, checked.CheckedInAt)
	assert.Equal(t, clock.t, *checked.CheckedInAt)
	require.NotNil(t, checked.CheckedInBy)
	assert.Equal(t, 2, *checked.CheckedInBy)

	// A second check-in re-stamps time and operator; the flag never
	// flips back.
	clock.Advance(10 * time.Minute)
	again, err := s.CheckInVoter(voter.ID, 1)
	require.NoError(t, err)
	assert.True(t, again.CheckedIn)
	assert.Equal(t, clock.t, *again.CheckedInAt)
	assert.Equal(t, 1, *again.CheckedInBy)
}

func TestGetVoterByVoterID(t *testing.T) {
	s, _ := newTestStore()
	s.CreateVoter(models.InsertVoter{VoterID: "100123", Name: "Sarah Johnson"})
	s.CreateVoter(models.InsertVoter{VoterID: "100456", Name: "Michael Brown"})

	voter, ok := s.GetVoterByVoterID("100456")
	require.True(t, ok)
	assert.Equal(t, "Michael Brown", voter.Name)

	_, ok = s.GetVoterByVoterID("999999")
	assert.False(t, ok)
}

func TestQueueStats(t *testing.T) {
	s, _ := newTestStore()

	statuses := []string{"waiting", "waiting", "waiting", "in_progress", "completed", "completed", "issue", "special_assistance"}
	for i, status := range statuses {
		s.CreateQueueItem(models.InsertQueueItem{VoterID: 1, Number: i + 1, Status: status})
	}

	stats := s.GetQueueStats()
	assert.Equal(t, 3, stats.Waiting)
	assert.Equal(t, 1, stats.InProgress)
	assert.Equal(t, 2, stats.Completed)

	// Counted statuses plus the rest cover the whole queue.
	other := 0
	for _, item := range s.GetAllQueueItems() {
		switch item.Status {
		case "waiting", "in_progress", "completed":
		default:
			other++
		}
	}
	assert.Equal(t, len(statuses), stats.Waiting+stats.InProgress+stats.Completed+other)
}

func TestUpdateQueueItemStatus(t *testing.T) {
	s, clock := newTestStore()
	item := s.CreateQueueItem(models.InsertQueueItem{VoterID: 1, Number: 1})
	assert.Equal(t, "waiting", item.Status)
	assert.Equal(t, "standard", item.Type)

	moved, err := s.UpdateQueueItemStatus(item.ID, "in_progress", nil)
	require.NoError(t, err)
	assert.Nil(t, moved.ProcessedAt)

	userID := 2
	clock.Advance(5 * time.Minute)
	done, err := s.UpdateQueueItemStatus(item.ID, "completed", &userID)
	require.NoError(t, err)
	require.NotNil(t, done.ProcessedAt)
	assert.Equal(t, clock.t, *done.ProcessedAt)
	assert.Equal(t, 2, *done.ProcessedBy)

	_, err = s.UpdateQueueItemStatus(42, "completed", nil)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStationIncrement(t *testing.T) {
	s, _ := newTestStore()
	station := s.CreateStation(models.InsertStation{Number: 1, Status: "active"})
	assert.Equal(t, 0, station.VotersProcessed)

	for i := 1; i <= 3; i++ {
		updated, err := s.IncrementStationVotersProcessed(station.ID)
		require.NoError(t, err)
		assert.Equal(t, i, updated.VotersProcessed)
	}

	_, err := s.IncrementStationVotersProcessed(99)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateStationStatus(t *testing.T) {
	s, _ := newTestStore()
	station := s.CreateStation(models.InsertStation{Number: 2})
	assert.Equal(t, "inactive", station.Status)

	operator := 2
	updated, err := s.UpdateStationStatus(station.ID, "active", &operator)
	require.NoError(t, err)
	assert.Equal(t, "active", updated.Status)
	assert.Equal(t, 2, *updated.OperatorID)

	// Omitting the operator keeps the current one.
	updated, err = s.UpdateStationStatus(station.ID, "inactive", nil)
	require.NoError(t, err)
	assert.Equal(t, 2, *updated.OperatorID)
}

func TestIssueResolutionTime(t *testing.T) {
	s, clock := newTestStore()
	issue := s.CreateIssue(models.InsertIssue{Type: "id_verification", Description: "ID does not match"})
	assert.Equal(t, "open", issue.Status)

	clock.Advance(125 * time.Second)
	resolved, err := s.ResolveIssue(issue.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, "resolved", resolved.Status)
	require.NotNil(t, resolved.ResolutionTime)
	assert.Equal(t, 2, *resolved.ResolutionTime) // floor(125000ms / 60000)

	_, err = s.ResolveIssue(99, 1)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestVerificationCodeFlow(t *testing.T) {
	s, clock := newTestStore()
	created := s.CreateMobileNotification(models.InsertMobileNotification{
		VoterID:     1,
		PhoneNumber: "+15551234567",
		OptedIn:     true,
	})

	require.Len(t, created.VerificationCode, 6)
	for _, r := range created.VerificationCode {
		assert.True(t, r >= '0' && r <= '9')
	}
	assert.False(t, created.Verified)
	assert.Equal(t, "sms", created.NotificationType)

	// Sending before verification is rejected.
	err := s.SendNotification(created.ID, "Your station is ready")
	assert.ErrorIs(t, err, ErrNotVerified)

	_, err = s.VerifyMobileNotification(created.ID, "000000")
	assert.ErrorIs(t, err, ErrInvalidCode)
	stored, _ := s.GetMobileNotification(created.ID)
	assert.False(t, stored.Verified)

	verified, err := s.VerifyMobileNotification(created.ID, created.VerificationCode)
	require.NoError(t, err)
	assert.True(t, verified.Verified)

	require.NoError(t, s.SendNotification(created.ID, "Your station is ready"))
	stored, _ = s.GetMobileNotification(created.ID)
	require.NotNil(t, stored.LastNotified)
	assert.Equal(t, clock.t, *stored.LastNotified)

	_, err = s.VerifyMobileNotification(99, "123456")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPredictionAccuracy(t *testing.T) {
	s, _ := newTestStore()
	analytic := s.CreatePredictiveAnalytic(models.InsertPredictiveAnalytic{
		HourOfDay:            10,
		DayOfWeek:            2,
		PredictedVoterVolume: 20,
		PredictedWaitTime:    10,
	})
	assert.Nil(t, analytic.AccuracyPercentage)

	updated, err := s.UpdatePredictiveAnalyticWithActual(analytic.ID, 22, 9)
	require.NoError(t, err)
	require.NotNil(t, updated.AccuracyPercentage)
	// volume: round((1-2/20)*100)=90, wait: round((1-1/10)*100)=90
	assert.Equal(t, 90, *updated.AccuracyPercentage)
	assert.Equal(t, 22, *updated.ActualVoterVolume)
	assert.Equal(t, 9, *updated.ActualWaitTime)

	_, err = s.UpdatePredictiveAnalyticWithActual(99, 1, 1)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPredictionAccuracyZeroPredicted(t *testing.T) {
	s, _ := newTestStore()
	analytic := s.CreatePredictiveAnalytic(models.InsertPredictiveAnalytic{
		HourOfDay:            8,
		DayOfWeek:            1,
		PredictedVoterVolume: 0,
		PredictedWaitTime:    10,
	})

	updated, err := s.UpdatePredictiveAnalyticWithActual(analytic.ID, 15, 10)
	require.NoError(t, err)
	// Zero prediction scores 0 for that metric: (0 + 100) / 2.
	assert.Equal(t, 50, *updated.AccuracyPercentage)
}

func TestGetPredictionForTimeSlot(t *testing.T) {
	s, _ := newTestStore()
	s.CreatePredictiveAnalytic(models.InsertPredictiveAnalytic{HourOfDay: 9, DayOfWeek: 2, PredictedVoterVolume: 19})
	s.CreatePredictiveAnalytic(models.InsertPredictiveAnalytic{HourOfDay: 10, DayOfWeek: 2, PredictedVoterVolume: 20})

	analytic, ok := s.GetPredictionForTimeSlot(10, 2)
	require.True(t, ok)
	assert.Equal(t, 20, analytic.PredictedVoterVolume)

	_, ok = s.GetPredictionForTimeSlot(10, 3)
	assert.False(t, ok)
}

func TestAnomalyResolveAppendsActions(t *testing.T) {
	s, _ := newTestStore()
	anomaly := s.CreateAnomaly(models.InsertAnomaly{
		Type:        "unusual_pattern",
		Description: "Spike in check-ins",
	})
	assert.Equal(t, "detected", anomaly.Status)
	assert.Equal(t, "low", anomaly.Severity)
	assert.Empty(t, anomaly.Actions)

	first, err := s.ResolveAnomaly(anomaly.ID, 1, "Reviewed, false positive")
	require.NoError(t, err)
	assert.Equal(t, "resolved", first.Status)
	assert.Equal(t, []string{"Reviewed, false positive"}, first.Actions)

	// Resolving again appends rather than overwriting.
	second, err := s.ResolveAnomaly(anomaly.ID, 2, "Confirmed after re-check")
	require.NoError(t, err)
	assert.Equal(t, "resolved", second.Status)
	assert.Equal(t, []string{"Reviewed, false positive", "Confirmed after re-check"}, second.Actions)
}

func TestBiometricVerify(t *testing.T) {
	s, clock := newTestStore()
	biometric := s.CreateBiometric(models.InsertBiometric{VoterID: 1, Type: "fingerprint"})
	assert.False(t, biometric.Verified)
	assert.NotEmpty(t, biometric.DataReference) // generated when omitted

	verified, err := s.VerifyBiometric(biometric.ID, 2)
	require.NoError(t, err)
	assert.True(t, verified.Verified)
	assert.Equal(t, clock.t, *verified.VerifiedAt)
	assert.Equal(t, 2, *verified.VerifiedBy)

	_, err = s.VerifyBiometric(99, 2)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAccessibilityPartialUpdate(t *testing.T) {
	s, _ := newTestStore()
	pref := s.CreateAccessibilityPreference(models.InsertAccessibilityPreference{
		VoterID:          1,
		VisualAssistance: true,
		OtherNeeds:       "Larger text on screen",
	})
	assert.Equal(t, "english", pref.LanguagePreference)

	lang := "spanish"
	updated, err := s.UpdateAccessibilityPreference(pref.ID, models.UpdateAccessibilityPreference{
		LanguagePreference: &lang,
	})
	require.NoError(t, err)
	assert.Equal(t, "spanish", updated.LanguagePreference)
	// Untouched fields survive the partial update.
	assert.True(t, updated.VisualAssistance)
	assert.Equal(t, "Larger text on screen", updated.OtherNeeds)

	off := false
	updated, err = s.UpdateAccessibilityPreference(pref.ID, models.UpdateAccessibilityPreference{
		VisualAssistance: &off,
	})
	require.NoError(t, err)
	assert.False(t, updated.VisualAssistance)

	_, err = s.UpdateAccessibilityPreference(99, models.UpdateAccessibilityPreference{})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestBlockchainTransactions(t *testing.T) {
	s, _ := newTestStore()
	voter1, voter2 := 1, 2
	a := s.CreateBlockchainTransaction(models.InsertBlockchainTransaction{
		TransactionType: "check_in",
		TransactionHash: "0xaaa",
		VoterID:         &voter1,
	})
	s.CreateBlockchainTransaction(models.InsertBlockchainTransaction{
		TransactionType: "vote_cast",
		TransactionHash: "0xbbb",
		VoterID:         &voter2,
	})
	assert.False(t, a.Verified)

	verified, err := s.VerifyBlockchainTransaction(a.ID)
	require.NoError(t, err)
	assert.True(t, verified.Verified)

	byHash, ok := s.GetBlockchainTransactionByHash("0xbbb")
	require.True(t, ok)
	assert.Equal(t, "vote_cast", byHash.TransactionType)

	txs := s.GetVoterTransactions(voter1)
	require.Len(t, txs, 1)
	assert.Equal(t, "0xaaa", txs[0].TransactionHash)

	_, err = s.VerifyBlockchainTransaction(99)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSystemStatusUpdate(t *testing.T) {
	s, clock := newTestStore()
	st := s.CreateSystemStatus(models.InsertSystemStatus{Component: "internet", Notes: "ok"})
	assert.Equal(t, "operational", st.Status)

	clock.Advance(time.Hour)
	updated, err := s.UpdateSystemStatus(st.ID, "degraded", "")
	require.NoError(t, err)
	assert.Equal(t, "degraded", updated.Status)
	assert.Equal(t, clock.t, updated.LastChecked)
	assert.Equal(t, "ok", updated.Notes) // empty notes keep the old ones

	_, err = s.UpdateSystemStatus(99, "down", "x")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetTodayStats(t *testing.T) {
	s, clock := newTestStore()

	s.CreateStat(models.InsertStat{Hour: 8, VotersProcessed: 7})
	clock.Advance(time.Hour)
	s.CreateStat(models.InsertStat{Hour: 9, VotersProcessed: 9})
	assert.Len(t, s.GetTodayStats(), 2)

	// Next day: yesterday's rows fall out of the window.
	clock.Advance(24 * time.Hour)
	assert.Empty(t, s.GetTodayStats())
}
