package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the collectors of the service on a private registry.
type Metrics struct {
	registry *prometheus.Registry

	requestDuration *prometheus.HistogramVec
	requestTotal    *prometheus.CounterVec

	layouts         *prometheus.CounterVec
	eventsProjected prometheus.Counter
	dayPeakLanes    prometheus.Histogram
	layoutCache     *prometheus.CounterVec
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "path", "status"}),
		requestTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"method", "path", "status"}),
		layouts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "calendar_layouts_total",
			Help: "Calendar layouts computed, by view",
		}, []string{"view"}),
		eventsProjected: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "calendar_events_projected_total",
			Help: "Bookings projected into calendar events",
		}),
		dayPeakLanes: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "calendar_day_peak_lanes",
			Help:    "Peak lane count of each laid out day",
			Buckets: []float64{1, 2, 3, 4, 6, 8, 12},
		}),
		layoutCache: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "calendar_layout_cache_total",
			Help: "Layout cache lookups by result",
		}, []string{"result"}),
	}

	m.registry.MustRegister(
		m.requestDuration,
		m.requestTotal,
		m.layouts,
		m.eventsProjected,
		m.dayPeakLanes,
		m.layoutCache,
		collectors.NewGoCollector(),
	)

	return m
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *Metrics) ObserveHTTPRequest(method, path string, status int, d time.Duration) {
	if m == nil {
		return
	}
	code := strconv.Itoa(status)
	m.requestDuration.WithLabelValues(method, path, code).Observe(d.Seconds())
	m.requestTotal.WithLabelValues(method, path, code).Inc()
}

// ObserveLayout records one computed layout and the peak lanes of its days.
func (m *Metrics) ObserveLayout(view string, events int, peakLanes []int) {
	if m == nil {
		return
	}
	m.layouts.WithLabelValues(view).Inc()
	m.eventsProjected.Add(float64(events))
	for _, p := range peakLanes {
		m.dayPeakLanes.Observe(float64(p))
	}
}

func (m *Metrics) CacheHit() {
	if m == nil {
		return
	}
	m.layoutCache.WithLabelValues("hit").Inc()
}

func (m *Metrics) CacheMiss() {
	if m == nil {
		return
	}
	m.layoutCache.WithLabelValues("miss").Inc()
}
