package spatial

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const opLabel = "op"

var (
	spatialItemCount = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "spatial_item_count",
		Help: "The number of items attached to the octree.",
	})

	spatialNodeCount = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "spatial_node_count",
		Help: "The number of live octree nodes.",
	})

	spatialMutationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "spatial_mutations_total",
		Help: "The total number of queued tree mutations.",
	}, []string{opLabel})

	spatialPendingMutations = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "spatial_pending_mutations",
		Help: "The number of mutations waiting for the next Swap.",
	})

	spatialRaycastsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "spatial_raycasts_total",
		Help: "The total number of raycast requests served.",
	})

	spatialSwapDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "spatial_swap_duration_seconds",
		Help:    "Time spent draining the pending queues per Swap.",
		Buckets: prometheus.ExponentialBuckets(10e-6, 4, 10),
	})
)

func instrumentMutationQueued(op mutationOp) {
	spatialMutationsTotal.
		With(prometheus.Labels{opLabel: op.String()}).
		Inc()
	spatialPendingMutations.Inc()
}

func instrumentSwap(d time.Duration, mutations, raycasts, items, nodes int) {
	spatialSwapDuration.Observe(d.Seconds())
	spatialPendingMutations.Sub(float64(mutations))
	spatialRaycastsTotal.Add(float64(raycasts))
	spatialItemCount.Set(float64(items))
	spatialNodeCount.Set(float64(nodes))
}
