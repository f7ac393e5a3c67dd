package store

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"backend-checkin/internal/models"
)

func intp(v int) *int { return &v }

// Seed loads the fixed demo dataset. Safe to call on every start:
// users are keyed by username and every other grouping is inserted
// only while its collection is empty, so a second call is a no-op.
func (s *Store) Seed() error {
	if err := s.seedUsers(); err != nil {
		return err
	}
	s.seedStations()
	s.seedSystemStatuses()
	s.seedAlerts()
	s.seedMessages()
	s.seedVoters()
	s.seedStats()
	s.seedBiometrics()
	s.seedAccessibilityPreferences()
	s.seedMobileNotifications()
	s.seedAnomalies()
	s.seedPredictiveAnalytics()
	s.seedBlockchainTransactions()
	return nil
}

func (s *Store) seedUsers() error {
	seed := []models.InsertUser{
		{Username: "admin", Password: "admin123", FullName: "Administrator", Role: "admin"},
		{Username: "pollworker", Password: "poll123", FullName: "Alex Thomas", Station: intp(1), Role: "poll_worker"},
	}
	for _, in := range seed {
		if _, ok := s.GetUserByUsername(in.Username); ok {
			continue
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("seed user %s: %w", in.Username, err)
		}
		in.Password = string(hash)
		s.CreateUser(in)
	}
	return nil
}

func (s *Store) seedStations() {
	if len(s.GetAllStations()) > 0 {
		return
	}
	// First four stations active, operated by the poll worker.
	for i := 1; i <= 5; i++ {
		in := models.InsertStation{Number: i, Status: "inactive"}
		if i <= 4 {
			in.Status = "active"
			in.OperatorID = intp(2)
		}
		s.CreateStation(in)
	}
}

func (s *Store) seedSystemStatuses() {
	components := []string{
		"voter_database", "id_scanner", "internet",
		"central_election_system", "biometric_scanner", "blockchain_verification",
	}
	for _, component := range components {
		if _, ok := s.GetSystemStatusByComponent(component); ok {
			continue
		}
		status, notes := "operational", "Normal operations"
		switch component {
		case "internet":
			status, notes = "degraded", "Slow connection speeds"
		case "biometric_scanner":
			notes = "Fingerprint and facial recognition active"
		case "blockchain_verification":
			notes = "Blockchain validation subsystem online"
		}
		s.CreateSystemStatus(models.InsertSystemStatus{Component: component, Status: status, Notes: notes})
	}
}

func (s *Store) seedAlerts() {
	if len(s.GetAllAlerts()) > 0 {
		return
	}
	for _, in := range []models.InsertAlert{
		{Type: "warning", Title: "Internet Connection Slow", Message: "Backup connection active. Some operations may be delayed."},
		{Type: "info", Title: "System Update Available", Message: "Update will be automatically applied after closing hours."},
		{Type: "info", Title: "Biometric System Calibrated", Message: "Facial recognition system has been calibrated for optimal performance."},
		{Type: "warning", Title: "AI Anomaly Detection Alert", Message: "Unusual pattern detected in voter check-in rate. Monitoring situation."},
	} {
		s.CreateAlert(in)
	}
}

func (s *Store) seedMessages() {
	if len(s.GetAllMessages()) > 0 {
		return
	}
	for _, in := range []models.InsertMessage{
		{Sender: "County Election Office", Message: "Please remind voters to check ballot completion before submission."},
		{Sender: "District Coordinator", Message: "Expected increase in turnout between 4-6 PM. Additional support on standby."},
		{Sender: "IT Support", Message: "Biometric verification system update completed. New features available."},
		{Sender: "Accessibility Coordinator", Message: "New language options available in the accessibility interface."},
	} {
		s.CreateMessage(in)
	}
}

func (s *Store) seedVoters() {
	if len(s.GetAllVoters()) > 0 {
		return
	}
	for _, in := range []models.InsertVoter{
		{VoterID: "100123", Name: "Sarah Johnson", DateOfBirth: "05/12/1985", Address: "123 Main St, Cityville", Precinct: "East District 4"},
		{VoterID: "100456", Name: "Michael Brown", DateOfBirth: "11/03/1972", Address: "456 Oak Ave, Townsville", Precinct: "West District 2"},
		{VoterID: "100789", Name: "Jennifer Smith", DateOfBirth: "07/25/1990", Address: "789 Pine Rd, Villageton", Precinct: "North District 1"},
		{VoterID: "101012", Name: "Robert Williams", DateOfBirth: "02/18/1965", Address: "101 Cedar Ln, Hamletville", Precinct: "South District 3"},
		{VoterID: "101345", Name: "Patricia Brown", DateOfBirth: "09/30/1988", Address: "234 Birch St, Boroughville", Precinct: "Central District 5"},
	} {
		s.CreateVoter(in)
	}
}

// seedStats fills one randomized row per past hour since opening at 8.
// The randomness is demo variety, nothing more.
func (s *Store) seedStats() {
	if len(s.GetTodayStats()) > 0 {
		return
	}
	currentHour := s.now().Hour()
	for hour := 8; hour <= currentHour; hour++ {
		s.CreateStat(models.InsertStat{
			Hour:                  hour,
			VotersProcessed:       s.randomIn(5, 10),   // 5-14 voters
			AverageProcessingTime: intp(s.randomIn(120, 60)), // 2-3 minutes in seconds
			WaitTime:              intp(s.randomIn(8, 5)),    // 8-12 minutes
			Throughput:            intp(s.randomIn(5, 3)),    // 5-7 voters per hour
		})
	}
}

// randomIn returns base + [0, spread) from the injected source.
func (s *Store) randomIn(base, spread int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return base + s.rng.Intn(spread)
}

func (s *Store) seedBiometrics() {
	if s.countBiometrics() > 0 {
		return
	}
	types := []string{"fingerprint", "facial_recognition"}
	for i := 1; i <= 3; i++ {
		if _, ok := s.GetVoter(i); !ok {
			continue
		}
		btype := types[i%len(types)]
		s.CreateBiometric(models.InsertBiometric{
			VoterID:       i,
			Type:          btype,
			DataReference: fmt.Sprintf("%s_data_id_%d_reference", btype, i),
		})
		// Voter 1 arrives pre-verified to demonstrate the flow.
		if i == 1 {
			if b, ok := s.GetBiometricByVoterID(i); ok {
				s.VerifyBiometric(b.ID, 2)
			}
		}
	}
}

func (s *Store) seedAccessibilityPreferences() {
	if s.countAccessibilityPreferences() > 0 {
		return
	}
	for _, in := range []models.InsertAccessibilityPreference{
		{VoterID: 1, VisualAssistance: true, LanguagePreference: "english", OtherNeeds: "Larger text on screen"},
		{VoterID: 3, HearingAssistance: true, LanguagePreference: "english", OtherNeeds: "Audio instructions"},
		{VoterID: 4, MobilityAssistance: true, LanguagePreference: "spanish", OtherNeeds: "Wheelchair accessible booth"},
	} {
		s.CreateAccessibilityPreference(in)
	}
}

func (s *Store) seedMobileNotifications() {
	if s.countMobileNotifications() > 0 {
		return
	}
	for _, in := range []models.InsertMobileNotification{
		{VoterID: 1, PhoneNumber: "+15551234567", Email: "voter1@example.com", OptedIn: true, NotificationType: "sms"},
		{VoterID: 2, PhoneNumber: "+15559876543", Email: "voter2@example.com", OptedIn: true, NotificationType: "email"},
	} {
		created := s.CreateMobileNotification(in)
		if created.VoterID == 1 {
			s.VerifyMobileNotification(created.ID, created.VerificationCode)
		}
	}
}

func (s *Store) seedAnomalies() {
	if len(s.GetAllAnomalies()) > 0 {
		return
	}
	for _, in := range []models.InsertAnomaly{
		{
			Type:        "unusual_pattern",
			Description: "Unusual spike in check-in rate detected at station 3",
			Severity:    "medium",
			Metadata:    map[string]any{"stationId": 3, "timeDetected": s.now().Format("2006-01-02T15:04:05Z07:00")},
		},
		{
			Type:        "security_threat",
			Description: "Multiple failed biometric verification attempts for same voter ID",
			Severity:    "high",
			Metadata:    map[string]any{"voterId": 5, "attempts": 3, "timeSpan": "5 minutes"},
		},
		{
			Type:        "performance_issue",
			Description: "Station 2 processing time significantly higher than average",
			Severity:    "low",
			Metadata:    map[string]any{"stationId": 2, "avgTime": "5.2 minutes", "systemAvg": "2.8 minutes"},
		},
	} {
		s.CreateAnomaly(in)
	}
	s.ResolveAnomaly(1, 1, "False positive - normal variation in check-in pattern")
}

func (s *Store) seedPredictiveAnalytics() {
	if len(s.GetAllPredictiveAnalytics()) > 0 {
		return
	}
	now := s.now()
	currentHour := now.Hour()
	dayOfWeek := int(now.Weekday())

	for hour := 8; hour <= 18; hour++ {
		volume := 25
		switch {
		case hour < 12:
			volume = 10 + hour
		case hour > 16:
			volume = 30 - hour
		}
		wait := volume / 3
		if wait < 5 {
			wait = 5
		}

		created := s.CreatePredictiveAnalytic(models.InsertPredictiveAnalytic{
			HourOfDay:            hour,
			DayOfWeek:            dayOfWeek,
			PredictedVoterVolume: volume,
			PredictedWaitTime:    wait,
			FactorsConsidered:    []string{"historical_data", "weather", "local_events"},
		})

		// Past hours get slightly perturbed actuals to demonstrate
		// the accuracy scoring.
		if hour < currentHour {
			actualVolume := volume + s.randomIn(0, 5) - 2
			actualWait := wait + s.randomIn(0, 3) - 1
			if actualWait < 1 {
				actualWait = 1
			}
			s.UpdatePredictiveAnalyticWithActual(created.ID, actualVolume, actualWait)
		}
	}
}

func (s *Store) seedBlockchainTransactions() {
	if len(s.GetAllBlockchainTransactions()) > 0 {
		return
	}
	ts := s.now().Format("2006-01-02T15:04:05Z07:00")
	for _, in := range []models.InsertBlockchainTransaction{
		{
			TransactionType:  "voter_verification",
			TransactionHash:  "0x8f32d45a9e720a4d0e193ea21de9ee97e1971d2c3b7480cf",
			BlockNumber:      intp(12345678),
			VoterID:          intp(1),
			PollingStationID: "station_1",
			Metadata:         map[string]any{"timestamp": ts, "method": "biometric"},
		},
		{
			TransactionType:  "check_in",
			TransactionHash:  "0x3e7a12c5b8e90d6f2a193ea9fe12d4c78e1234f5a6b7c8d9",
			BlockNumber:      intp(12345679),
			VoterID:          intp(1),
			PollingStationID: "station_1",
			Metadata:         map[string]any{"timestamp": ts, "operator": "poll_worker_2"},
		},
		{
			TransactionType:  "vote_cast",
			TransactionHash:  "0x7b28e39fa4c1d5e6e193ea21de9ee97e1971d2c3b748012",
			BlockNumber:      intp(12345680),
			VoterID:          intp(1),
			PollingStationID: "booth_3",
			Metadata:         map[string]any{"timestamp": ts, "ballot": "encrypted_ballot_hash"},
		},
	} {
		created := s.CreateBlockchainTransaction(in)
		s.VerifyBlockchainTransaction(created.ID)
	}
}

func (s *Store) countBiometrics() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.biometrics.len()
}

func (s *Store) countAccessibilityPreferences() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.accessibilityPrefs.len()
}

func (s *Store) countMobileNotifications() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mobileNotifications.len()
}
