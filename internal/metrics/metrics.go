// Package metrics registers the prometheus collectors the sync driver
// updates as it runs.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// IsSynced is set to 1 when a BlockSync invocation ends with
	// BlocksSynchronized or ForkNotLinked, and to 0 when it ends with
	// MaxRequestAttemptsReached or FatalError.
	IsSynced = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "ironsync",
		Name:      "is_synced",
		Help:      "1 if the node believes its chain matches the best known network tip",
	})

	// QueueLength reports the size of the download queue built by the
	// most recent backward header walk.
	QueueLength = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "ironsync",
		Name:      "download_queue_length",
		Help:      "number of block hashes queued for forward application",
	})

	// BlocksApplied counts blocks successfully persisted by add_block.
	BlocksApplied = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "ironsync",
		Name:      "blocks_applied_total",
		Help:      "total blocks accepted by the chain store during sync",
	})

	// HeaderRetries counts header-fetch retry-triggering anomalies.
	HeaderRetries = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "ironsync",
		Name:      "header_retries_total",
		Help:      "total header request retries during the backward walk",
	})

	// BlockRetries counts block-fetch retry-triggering anomalies.
	BlockRetries = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "ironsync",
		Name:      "block_retries_total",
		Help:      "total block request retries during the forward apply",
	})
)
