// Package metrics holds the prometheus collectors for ledger activity.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "evenup"

var (
	// Events counts handled events by kind and result (ok, rejected, error).
	Events = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "events_total",
			Help:      "Ledger events handled, by kind and result",
		},
		[]string{"kind", "result"},
	)

	// People tracks the current ledger size.
	People = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "people",
			Help:      "Number of people in the ledger",
		},
	)

	// StoreErrors counts failed loads and saves.
	StoreErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "store_errors_total",
			Help:      "Failed persistence operations, by operation",
		},
		[]string{"op"},
	)
)
