// Package metrics registers the service's Prometheus collectors.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	CheckInsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "checkin_voters_checked_in_total",
		Help: "Voters checked in since process start.",
	})

	QueueEntriesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "checkin_queue_entries_total",
		Help: "Queue entries created since process start.",
	})

	QueueWaiting = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "checkin_queue_waiting",
		Help: "Queue entries currently in waiting status.",
	})

	NotificationsSentTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "checkin_notifications_sent_total",
		Help: "Simulated SMS/email notifications sent.",
	})
)
