package handler

import (
	"fmt"
	"math"

	"github.com/gofiber/fiber/v2"

	"backend-checkin/internal/models"
)

func (h *Handler) GetStats(c *fiber.Ctx) error {
	return c.JSON(h.store.GetTodayStats())
}

// GetStatsSummary folds today's hourly rows into the dashboard
// header: totals, average processing time in minutes (one decimal),
// the latest wait/throughput reading, and the peak hour.
func (h *Handler) GetStatsSummary(c *fiber.Ctx) error {
	stats := h.store.GetTodayStats()

	summary := models.StatsSummary{
		// Special-assistance count is a demo fixture.
		SpecialCases: 5,
	}

	var processingSum, processingCount int
	var maxVoters int
	for _, stat := range stats {
		summary.TotalVotersProcessed += stat.VotersProcessed
		if stat.AverageProcessingTime != nil {
			processingSum += *stat.AverageProcessingTime
			processingCount++
		}
		if stat.WaitTime != nil {
			summary.CurrentWaitTime = *stat.WaitTime
		}
		if stat.Throughput != nil {
			summary.CurrentThroughput = *stat.Throughput
		}
		if stat.VotersProcessed > maxVoters {
			maxVoters = stat.VotersProcessed
			summary.PeakHour = fmt.Sprintf("%d:00", stat.Hour)
		}
	}
	if summary.PeakHour == "" {
		summary.PeakHour = "0:00"
	}
	if processingCount > 0 {
		avgSeconds := float64(processingSum) / float64(processingCount)
		summary.AvgProcessingTime = math.Round(avgSeconds/60*10) / 10
	}

	return c.JSON(summary)
}
