package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestSeedPopulatesDemoData(t *testing.T) {
	s, _ := newTestStore() // clock fixed at noon
	require.NoError(t, s.Seed())

	admin, ok := s.GetUserByUsername("admin")
	require.True(t, ok)
	assert.Equal(t, "admin", admin.Role)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte("admin123")))

	worker, ok := s.GetUserByUsername("pollworker")
	require.True(t, ok)
	assert.Equal(t, 1, *worker.Station)

	stations := s.GetAllStations()
	require.Len(t, stations, 5)
	for _, station := range stations[:4] {
		assert.Equal(t, "active", station.Status)
		assert.Equal(t, 2, *station.OperatorID)
	}
	assert.Equal(t, "inactive", stations[4].Status)
	assert.Nil(t, stations[4].OperatorID)

	internet, ok := s.GetSystemStatusByComponent("internet")
	require.True(t, ok)
	assert.Equal(t, "degraded", internet.Status)
	assert.Len(t, s.GetAllSystemStatuses(), 6)

	assert.Len(t, s.GetAllAlerts(), 4)
	assert.Len(t, s.GetAllMessages(), 4)

	voters := s.GetAllVoters()
	require.Len(t, voters, 5)
	assert.Equal(t, "Sarah Johnson", voters[0].Name)
	for _, voter := range voters {
		assert.False(t, voter.CheckedIn)
	}

	// One stats row per hour from opening at 8 through the current hour.
	assert.Len(t, s.GetTodayStats(), 5)

	bio, ok := s.GetBiometricByVoterID(1)
	require.True(t, ok)
	assert.True(t, bio.Verified)
	bio, ok = s.GetBiometricByVoterID(2)
	require.True(t, ok)
	assert.False(t, bio.Verified)

	_, ok = s.GetAccessibilityPreferenceByVoterID(3)
	assert.True(t, ok)
	_, ok = s.GetAccessibilityPreferenceByVoterID(2)
	assert.False(t, ok)

	notif, ok := s.GetMobileNotificationByVoterID(1)
	require.True(t, ok)
	assert.True(t, notif.Verified)
	notif, ok = s.GetMobileNotificationByVoterID(2)
	require.True(t, ok)
	assert.False(t, notif.Verified)

	anomalies := s.GetAllAnomalies()
	require.Len(t, anomalies, 3)
	assert.Equal(t, "resolved", anomalies[0].Status)
	assert.Len(t, anomalies[0].Actions, 1)
	assert.Equal(t, "detected", anomalies[1].Status)

	// Predictions cover 8 through 18; past hours carry scored actuals.
	analytics := s.GetAllPredictiveAnalytics()
	require.Len(t, analytics, 11)
	scored := 0
	for _, a := range analytics {
		if a.AccuracyPercentage != nil {
			scored++
			assert.NotNil(t, a.ActualVoterVolume)
		}
	}
	assert.Equal(t, 4, scored)

	txs := s.GetAllBlockchainTransactions()
	require.Len(t, txs, 3)
	for _, tx := range txs {
		assert.True(t, tx.Verified)
	}
	_, ok = s.GetBlockchainTransactionByHash("0x8f32d45a9e720a4d0e193ea21de9ee97e1971d2c3b7480cf")
	assert.True(t, ok)
}

func TestSeedIsIdempotent(t *testing.T) {
	s, _ := newTestStore()
	require.NoError(t, s.Seed())
	require.NoError(t, s.Seed())

	assert.Len(t, s.GetAllStations(), 5)
	assert.Len(t, s.GetAllVoters(), 5)
	assert.Len(t, s.GetAllAlerts(), 4)
	assert.Len(t, s.GetAllMessages(), 4)
	assert.Len(t, s.GetAllSystemStatuses(), 6)
	assert.Len(t, s.GetAllAnomalies(), 3)
	assert.Len(t, s.GetAllPredictiveAnalytics(), 11)
	assert.Len(t, s.GetAllBlockchainTransactions(), 3)
	assert.Equal(t, 3, s.countBiometrics())
	assert.Equal(t, 3, s.countAccessibilityPreferences())
	assert.Equal(t, 2, s.countMobileNotifications())
}

func TestSeedSurvivesMutations(t *testing.T) {
	s, _ := newTestStore()
	require.NoError(t, s.Seed())

	voter, err := s.CheckInVoter(1, 2)
	require.NoError(t, err)
	require.True(t, voter.CheckedIn)

	// Re-seeding must not undo runtime state.
	require.NoError(t, s.Seed())
	voter, ok := s.GetVoter(1)
	require.True(t, ok)
	assert.True(t, voter.CheckedIn)
}
