// Package metrics defines and registers all custom Prometheus metrics for
// the graphstore backend. It is the single source of truth for metric names,
// labels, and help strings. Metrics register with the default registry at
// import time via promauto; the HTTP layer exposes them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "graphstore"

// DocumentsWrittenTotal counts successful write operations per collection.
// Labels:
//   - collection: "users", "products", or "graphs"
//   - op: "create", "update", "upsert", or "delete"
var DocumentsWrittenTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "documents_written_total",
		Help:      "Total number of successful document writes, by collection and operation.",
	},
	[]string{"collection", "op"},
)

// GraphCacheTotal counts graph cache lookups.
// Label:
//   - result: "hit" (served from Redis) or "miss" (fell through to the store)
var GraphCacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "graph_cache_total",
		Help:      "Total number of graph cache lookups, labelled by result (hit/miss).",
	},
	[]string{"result"},
)

// CodegenRequestsTotal counts calls to the external code generator.
// Labels:
//   - language: requested target language
//   - status: "ok" or "error"
var CodegenRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "codegen_requests_total",
		Help:      "Total number of code-generation requests, by language and outcome.",
	},
	[]string{"language", "status"},
)
