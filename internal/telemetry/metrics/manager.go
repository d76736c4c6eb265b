package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestDurationBuckets = []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}
	syncDurationBuckets    = []float64{0.1, 0.5, 1, 2.5, 5, 10, 30, 60, 120, 300}
)

type Manager struct {
	// http
	CounterRequests            *prometheus.CounterVec
	CounterHandleRequestPanic  prometheus.Counter
	CounterRateLimitedRequests prometheus.Counter
	GaugeRequests              prometheus.Gauge
	HistogramRequestDuration   *prometheus.HistogramVec

	// hevy sync
	CounterSyncs           *prometheus.CounterVec
	CounterSyncedWorkouts  prometheus.Counter
	CounterFetchedPages    prometheus.Counter
	CounterSkippedWorkouts prometheus.Counter
	GaugeLastSyncUnix      prometheus.Gauge
	HistSyncDuration       prometheus.Histogram

	GaugeLifeSignal prometheus.Gauge
}

func NewTestManager() *Manager {
	return NewManager("hevy", "test", prometheus.NewRegistry())
}

func NewTestManagerAndRegistry() (*Manager, *prometheus.Registry) {
	reg := prometheus.NewRegistry()
	return NewManager("hevy", "test", reg), reg
}

func NewManager(namespace, subsystem string, reg prometheus.Registerer) *Manager {
	factory := promauto.With(reg)
	counter := func(name, help string) prometheus.Counter {
		return factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Subsystem: subsystem, Name: name, Help: help,
		})
	}
	gauge := func(name, help string) prometheus.Gauge {
		return factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace, Subsystem: subsystem, Name: name, Help: help,
		})
	}

	return &Manager{
		CounterRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "request",
			Help:      "The total number of incoming requests",
		}, []string{"method", "status"}),
		CounterHandleRequestPanic:  counter("handle_request_panic", "The total number of serve request panics"),
		CounterRateLimitedRequests: counter("rate_limited_requests", "The total number of rate limited requests"),
		GaugeRequests:              gauge("current_requests", "Current number of requests served"),
		HistogramRequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "request_duration_seconds",
			Help:      "Histogram of response time for requests in seconds",
			Buckets:   requestDurationBuckets,
		}, []string{"route", "method", "status_code"}),

		CounterSyncs: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "hevy_syncs",
			Help:      "The total number of hevy syncs by result",
		}, []string{"result"}),
		CounterSyncedWorkouts:  counter("hevy_synced_workouts", "The total number of workouts upserted from hevy"),
		CounterFetchedPages:    counter("hevy_fetched_pages", "The total number of workout pages fetched from hevy"),
		CounterSkippedWorkouts: counter("hevy_skipped_workouts", "The total number of hevy workouts rejected by the database"),
		GaugeLastSyncUnix:      gauge("hevy_last_sync_timestamp_seconds", "Unix time of the last successful hevy sync"),
		HistSyncDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "hevy_sync_duration_seconds",
			Help:      "Total duration of a single full hevy sync in seconds",
			Buckets:   syncDurationBuckets,
		}),

		GaugeLifeSignal: gauge("life_signal", "Shows whether the service is alive"),
	}
}
