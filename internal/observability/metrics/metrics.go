package metrics

import (
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
)

type Outcome string

const (
	Success                  Outcome       = "success"
	Error                    Outcome       = "error"
	MetricRequestTimeout     time.Duration = 5 * time.Second
	MetricRequestIdleTimeout time.Duration = 10 * time.Second
)

func (O Outcome) String() string {
	return string(O)
}

var (
	once                           sync.Once
	metricsRouter                  *chi.Mux
	xrplClientLatency              *prometheus.HistogramVec
	clientRequestDurationHistogram *prometheus.HistogramVec
	dbLatency                      *prometheus.HistogramVec
	enrichmentDuration             *prometheus.HistogramVec
	enrichmentFanoutWidth          prometheus.Histogram
	settlementCounter              *prometheus.CounterVec
	batchJobDurationHistogram      *prometheus.HistogramVec
	rankSnapshotSizeGauge          prometheus.Gauge
)

// Init initializes the metrics package.
func Init(metricsPort int) {
	once.Do(func() {
		initMetricsRouter(metricsPort)
		registerMetrics()
	})
}

// initMetricsRouter initializes the metrics router.
func initMetricsRouter(metricsPort int) {
	metricsRouter = chi.NewRouter()
	metricsRouter.Get("/metrics", func(w http.ResponseWriter, r *http.Request) {
		promhttp.Handler().ServeHTTP(w, r)
	})
	// Create a custom server with timeout settings
	metricsAddr := fmt.Sprintf(":%d", metricsPort)
	server := &http.Server{
		Addr:         metricsAddr,
		Handler:      metricsRouter,
		ReadTimeout:  MetricRequestTimeout,
		WriteTimeout: MetricRequestTimeout,
		IdleTimeout:  MetricRequestIdleTimeout,
	}

	// Start the server in a separate goroutine
	go func() {
		log.Printf("Starting metrics server on %s", metricsAddr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msgf("Error starting metrics server on %s", metricsAddr)
		}
	}()
}

// registerMetrics initializes and register the Prometheus metrics.
func registerMetrics() {
	defaultHistogramBucketsSeconds := []float64{0.1, 0.5, 1, 2.5, 5, 10, 30}

	// client requests are the ones sending to other service
	clientRequestDurationHistogram = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "client_request_duration_seconds",
			Help:    "Histogram of outgoing client request durations in seconds.",
			Buckets: defaultHistogramBucketsSeconds,
		},
		[]string{"baseurl", "method", "path", "status"},
	)

	xrplClientLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "xrpl_client_latency_seconds",
			Help:    "Histogram of XRPL client durations in seconds.",
			Buckets: defaultHistogramBucketsSeconds,
		},
		[]string{"method", "status"},
	)

	dbLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "db_latency_seconds",
			Help: "DB latency in seconds splitted by method and execution status",
		},
		[]string{"method", "status"},
	)

	enrichmentDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "enrichment_duration_seconds",
			Help:    "Histogram of wallet enrichment durations in seconds.",
			Buckets: defaultHistogramBucketsSeconds,
		},
		[]string{"status"},
	)

	enrichmentFanoutWidth = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "enrichment_fanout_width",
			Help:    "Number of NFTs enriched per wallet request.",
			Buckets: []float64{1, 5, 10, 25, 50, 100, 250},
		},
	)

	settlementCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "settlement_resolved_total",
			Help: "Number of resolved bets by outcome.",
		},
		[]string{"outcome"},
	)

	batchJobDurationHistogram = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "batch_job_duration_seconds",
			Help:    "Histogram of batch job durations in seconds.",
			Buckets: defaultHistogramBucketsSeconds,
		},
		[]string{"job", "status"},
	)

	rankSnapshotSizeGauge = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "rank_snapshot_size",
			Help: "Number of entries in the last written rank snapshot",
		},
	)

	prometheus.MustRegister(
		clientRequestDurationHistogram,
		xrplClientLatency,
		dbLatency,
		enrichmentDuration,
		enrichmentFanoutWidth,
		settlementCounter,
		batchJobDurationHistogram,
		rankSnapshotSizeGauge,
	)
}

func RecordXrplClientLatency(d time.Duration, method string, failure bool) {
	status := Success
	if failure {
		status = Error
	}

	xrplClientLatency.WithLabelValues(method, status.String()).Observe(d.Seconds())
}

func RecordDbLatency(d time.Duration, method string, failure bool) {
	status := Success
	if failure {
		status = Error
	}

	dbLatency.WithLabelValues(method, status.String()).Observe(d.Seconds())
}

func RecordEnrichment(d time.Duration, fanoutWidth int, failure bool) {
	status := Success
	if failure {
		status = Error
	}

	enrichmentDuration.WithLabelValues(status.String()).Observe(d.Seconds())
	enrichmentFanoutWidth.Observe(float64(fanoutWidth))
}

func IncSettlementResolved(outcome string) {
	settlementCounter.WithLabelValues(outcome).Inc()
}

func RecordBatchJobDuration(d time.Duration, job string, failure bool) {
	status := Success
	if failure {
		status = Error
	}

	batchJobDurationHistogram.WithLabelValues(job, status.String()).Observe(d.Seconds())
}

func RecordRankSnapshotSize(size int) {
	rankSnapshotSizeGauge.Set(float64(size))
}

// StartClientRequestDurationTimer starts a timer to measure outgoing client request duration.
func StartClientRequestDurationTimer(baseUrl, method, path string) func(statusCode int) {
	startTime := time.Now()
	return func(statusCode int) {
		duration := time.Since(startTime).Seconds()
		clientRequestDurationHistogram.WithLabelValues(
			baseUrl,
			method,
			path,
			strconv.Itoa(statusCode),
		).Observe(duration)
	}
}
