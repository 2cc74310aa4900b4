package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ReviewsAdded = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "reviews_added_total",
			Help: "Total number of reviews appended",
		},
	)

	ReviewsRemoved = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "reviews_removed_total",
			Help: "Total number of reviews removed by their owner",
		},
	)

	ReviewRemovalsRejected = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "review_removals_rejected_total",
			Help: "Total number of review removals rejected as missing or not owned",
		},
	)

	ReviewsStored = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "reviews_stored",
			Help: "Number of reviews currently held in the ledger",
		},
	)
)
