package store

import (
	"fmt"
	"math"

	"backend-checkin/internal/models"
)

func (s *Store) GetPredictiveAnalytic(id int) (models.PredictiveAnalytic, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.predictiveAnalytics.get(id)
}

func (s *Store) CreatePredictiveAnalytic(in models.InsertPredictiveAnalytic) models.PredictiveAnalytic {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	return s.predictiveAnalytics.insert(func(id int) models.PredictiveAnalytic {
		return models.PredictiveAnalytic{
			ID:                   id,
			Date:                 now,
			HourOfDay:            in.HourOfDay,
			DayOfWeek:            in.DayOfWeek,
			PredictedVoterVolume: in.PredictedVoterVolume,
			PredictedWaitTime:    in.PredictedWaitTime,
			FactorsConsidered:    in.FactorsConsidered,
			CreatedAt:            now,
		}
	})
}

func (s *Store) GetAllPredictiveAnalytics() []models.PredictiveAnalytic {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.predictiveAnalytics.all()
}

// metricAccuracy scores one prediction as round((1-|pred-actual|/pred)*100).
// A zero prediction scores 0; the formula divides by the predicted value.
func metricAccuracy(predicted, actual int) int {
	if predicted == 0 {
		return 0
	}
	diff := math.Abs(float64(predicted - actual))
	return int(math.Round((1 - diff/float64(predicted)) * 100))
}

// UpdatePredictiveAnalyticWithActual fills in the observed values and
// scores the prediction: volume and wait accuracy independently, then
// their rounded average as the overall percentage.
func (s *Store) UpdatePredictiveAnalyticWithActual(id, actualVolume, actualWait int) (models.PredictiveAnalytic, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	analytic, ok := s.predictiveAnalytics.get(id)
	if !ok {
		return models.PredictiveAnalytic{}, fmt.Errorf("predictive analytic %d: %w", id, ErrNotFound)
	}

	volumeAccuracy := metricAccuracy(analytic.PredictedVoterVolume, actualVolume)
	waitAccuracy := metricAccuracy(analytic.PredictedWaitTime, actualWait)
	overall := int(math.Round(float64(volumeAccuracy+waitAccuracy) / 2))

	analytic.ActualVoterVolume = &actualVolume
	analytic.ActualWaitTime = &actualWait
	analytic.AccuracyPercentage = &overall
	s.predictiveAnalytics.put(id, analytic)
	return analytic, nil
}

func (s *Store) GetPredictionForTimeSlot(hourOfDay, dayOfWeek int) (models.PredictiveAnalytic, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.predictiveAnalytics.find(func(a models.PredictiveAnalytic) bool {
		return a.HourOfDay == hourOfDay && a.DayOfWeek == dayOfWeek
	})
}
