package metricsvc

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/gauravw/coachcenter/core"
)

var (
	MutationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "store_mutations_total",
			Help: "Total number of entity store mutations",
		},
		[]string{"entity", "action"},
	)

	LoginsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "logins_total",
			Help: "Total number of login attempts",
		},
		[]string{"outcome"},
	)
)

// StoreObserver counts every committed store mutation. Register it with
// the store's Observe hook.
func StoreObserver(evt core.StoreEvent) {
	MutationsTotal.WithLabelValues(evt.Entity, evt.Action).Inc()
}
