package realtime

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"backend-checkin/internal/models"
	"backend-checkin/internal/store"
)

func TestSnapshotPayload(t *testing.T) {
	st := store.New()
	st.CreateQueueItem(models.InsertQueueItem{VoterID: 1, Number: 1})
	st.CreateQueueItem(models.InsertQueueItem{VoterID: 2, Number: 2, Status: "completed"})

	h := NewHub(st)
	payload := h.snapshot()
	require.NotNil(t, payload)

	var msg struct {
		Type  string            `json:"type"`
		Stats models.QueueStats `json:"stats"`
		Total int               `json:"total"`
	}
	require.NoError(t, json.Unmarshal(payload, &msg))
	assert.Equal(t, "queue_update", msg.Type)
	assert.Equal(t, 1, msg.Stats.Waiting)
	assert.Equal(t, 1, msg.Stats.Completed)
	assert.Equal(t, 2, msg.Total)
}

func TestBroadcastDebounce(t *testing.T) {
	h := NewHub(store.New())

	// Repeated calls share one pending timer.
	h.Broadcast()
	h.Broadcast()
	h.Broadcast()

	h.timerMu.Lock()
	assert.NotNil(t, h.timer)
	h.timerMu.Unlock()

	// After the delay the timer has fired and cleared itself. With no
	// clients connected the push is a no-op.
	time.Sleep(4 * broadcastDelay)
	h.timerMu.Lock()
	assert.Nil(t, h.timer)
	h.timerMu.Unlock()
}
