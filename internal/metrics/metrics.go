package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Panel Metrics
var (
	PanelClicks = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNamePanelClicks,
			Help: HelpTextPanelClicks,
		},
		[]string{LabelClickType, LabelCancelled},
	)

	ItemMetaSyncs = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameItemMetaSyncs,
			Help: HelpTextItemMetaSyncs,
		},
		[]string{LabelField},
	)
)

// Head Metrics
var (
	HeadLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHeadLookups,
			Help: HelpTextHeadLookups,
		},
		[]string{LabelResult},
	)

	HeadResolveErrors = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameHeadResolveErr,
			Help: HelpTextHeadResolveErr,
		},
	)
)

// Handler returns an HTTP handler serving the default registry
func Handler() http.Handler {
	return promhttp.Handler()
}
