// Package metrics registers the service's Prometheus collectors. The debug
// server exposes them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	recordsCreated = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "zyra",
		Name:      "records_created_total",
		Help:      "Records accepted and locally persisted, by collection",
	}, []string{"collection"})

	mirrorResults = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "zyra",
		Name:      "mirror_writes_total",
		Help:      "Best-effort remote mirror attempts, by outcome",
	}, []string{"collection", "status"})

	emailResults = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "zyra",
		Name:      "emails_total",
		Help:      "Best-effort email sends, by outcome",
	}, []string{"status"})
)

func RecordCreated(collection string) {
	recordsCreated.WithLabelValues(collection).Inc()
}

// MirrorWrite records one mirror attempt. status is one of
// ok|skipped|not_found|error.
func MirrorWrite(collection, status string) {
	mirrorResults.WithLabelValues(collection, status).Inc()
}

func EmailSent(status string) {
	emailResults.WithLabelValues(status).Inc()
}

func EmailSkipped(n int) {
	emailResults.WithLabelValues("skipped").Add(float64(n))
}
