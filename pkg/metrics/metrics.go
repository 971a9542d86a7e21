// Package metrics exposes Prometheus instrumentation for the webhook
// intake, the action queue, and the NLP parsers.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the process registry and the instruments the pipeline
// reports into. It satisfies nlp.ParseObserver and queue.ExecutionObserver.
type Metrics struct {
	registry *prometheus.Registry

	webhookEvents *prometheus.CounterVec
	queueItems    *prometheus.HistogramVec
	parses        *prometheus.HistogramVec
	sseSubs       prometheus.Gauge
}

// New creates a registry with process/go collectors plus the pipeline
// instruments.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	m := &Metrics{
		registry: reg,
		webhookEvents: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "reflex",
			Name:      "webhook_events_total",
			Help:      "Webhook events received, by normalized event type and outcome.",
		}, []string{"event_type", "outcome"}),
		queueItems: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "reflex",
			Name:      "queue_item_duration_seconds",
			Help:      "Action queue item processing time, by event type and result.",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 14),
		}, []string{"event_type", "result"}),
		parses: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "reflex",
			Name:      "nlp_parse_duration_seconds",
			Help:      "NLP parse time, by parser type, detected language, and success.",
			Buckets:   prometheus.ExponentialBuckets(0.0005, 2, 12),
		}, []string{"parser", "language", "success"}),
		sseSubs: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "reflex",
			Name:      "sse_subscribers",
			Help:      "Currently connected event stream subscribers.",
		}),
	}
	reg.MustRegister(m.webhookEvents, m.queueItems, m.parses, m.sseSubs)
	return m
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// ObserveWebhook counts one intake event. outcome is "accepted",
// "failed", or "ignored".
func (m *Metrics) ObserveWebhook(eventType, outcome string) {
	m.webhookEvents.WithLabelValues(eventType, outcome).Inc()
}

// ObserveItem records one processed queue item.
func (m *Metrics) ObserveItem(eventType, result string, duration time.Duration) {
	m.queueItems.WithLabelValues(eventType, result).Observe(duration.Seconds())
}

// ObserveParse records one parser run.
func (m *Metrics) ObserveParse(parserType, language string, success bool, duration time.Duration) {
	m.parses.WithLabelValues(parserType, language, strconv.FormatBool(success)).Observe(duration.Seconds())
}

// SetSSESubscribers tracks the active subscriber count.
func (m *Metrics) SetSSESubscribers(n int) {
	m.sseSubs.Set(float64(n))
}
