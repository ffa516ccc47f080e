// Package metrics provides Prometheus metrics for the ATS duplicate report.
package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager manages all Prometheus metrics for the ATS report.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	scoreBuckets     []float64
	customLabels     map[string]string
	registry         prometheus.Registerer

	// Input volume
	candidatesProcessed prometheus.Counter
	jobsProcessed       prometheus.Counter

	// Report outcome
	reportsGenerated prometheus.Counter
	reportErrors     prometheus.Counter
	reportDuration   prometheus.Histogram

	// Duplicate detection
	duplicateClusters   prometheus.Gauge
	duplicateCandidates prometheus.Gauge
	indexBuckets        prometheus.Gauge

	// Scoring
	suitabilityScore prometheus.Histogram
	hottestScore     prometheus.Gauge

	// Repository
	repositoryRecords     *prometheus.GaugeVec
	repositoryLoadLatency prometheus.Histogram

	errorsByComponent *prometheus.CounterVec
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a new metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "ats",
		subsystem:        "dedupe",
		histogramBuckets: prometheus.DefBuckets,
		scoreBuckets:     prometheus.LinearBuckets(10, 10, 10), //nolint:mnd // 10..100
		customLabels:     make(map[string]string),
		registry:         prometheus.DefaultRegisterer,
	}

	for _, opt := range opts {
		opt(m)
	}

	m.initializeMetrics()

	return m
}

func (m *Manager) initializeMetrics() { //nolint:funlen // one block per metric
	auto := promauto.With(m.registry)
	labels := prometheus.Labels(m.customLabels)

	m.candidatesProcessed = auto.NewCounter(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "candidates_processed_total",
		Help:        "Total number of candidates fed into duplicate detection",
		ConstLabels: labels,
	})

	m.jobsProcessed = auto.NewCounter(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "jobs_processed_total",
		Help:        "Total number of jobs scored against candidates",
		ConstLabels: labels,
	})

	m.reportsGenerated = auto.NewCounter(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "reports_generated_total",
		Help:        "Total number of reports successfully built",
		ConstLabels: labels,
	})

	m.reportErrors = auto.NewCounter(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "report_errors_total",
		Help:        "Total number of reports that failed",
		ConstLabels: labels,
	})

	m.reportDuration = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "report_duration_milliseconds",
		Help:        "Time taken to build a report in milliseconds",
		Buckets:     m.histogramBuckets,
		ConstLabels: labels,
	})

	m.duplicateClusters = auto.NewGauge(prometheus.GaugeOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "duplicate_clusters",
		Help:        "Number of duplicate clusters in the last report",
		ConstLabels: labels,
	})

	m.duplicateCandidates = auto.NewGauge(prometheus.GaugeOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "duplicate_candidates",
		Help:        "Number of candidates that belong to a duplicate cluster",
		ConstLabels: labels,
	})

	m.indexBuckets = auto.NewGauge(prometheus.GaugeOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "index_buckets",
		Help:        "Number of distinct normalized name keys in the last index",
		ConstLabels: labels,
	})

	m.suitabilityScore = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "suitability_score",
		Help:        "Distribution of candidate/job suitability scores",
		Buckets:     m.scoreBuckets,
		ConstLabels: labels,
	})

	m.hottestScore = auto.NewGauge(prometheus.GaugeOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "hottest_candidate_jobs",
		Help:        "Number of hot jobs for the hottest candidate",
		ConstLabels: labels,
	})

	m.repositoryRecords = auto.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace:   m.namespace,
			Subsystem:   m.subsystem,
			Name:        "repository_records",
			Help:        "Number of records loaded from the dataset by kind",
			ConstLabels: labels,
		},
		[]string{"kind"},
	)

	m.repositoryLoadLatency = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "repository_load_latency_milliseconds",
		Help:        "Dataset load latency in milliseconds",
		Buckets:     m.histogramBuckets,
		ConstLabels: labels,
	})

	m.errorsByComponent = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace:   m.namespace,
			Subsystem:   m.subsystem,
			Name:        "errors_by_component_total",
			Help:        "Total number of errors by component",
			ConstLabels: labels,
		},
		[]string{"component", "error_type"},
	)
}

// RecordCandidatesProcessed adds n to the processed candidates counter.
func RecordCandidatesProcessed(n int) {
	if n > 0 {
		globalManager.candidatesProcessed.Add(float64(n))
	}
}

// RecordJobsProcessed adds n to the processed jobs counter.
func RecordJobsProcessed(n int) {
	if n > 0 {
		globalManager.jobsProcessed.Add(float64(n))
	}
}

// RecordReportGenerated increments the reports counter.
func RecordReportGenerated() {
	globalManager.reportsGenerated.Inc()
}

// RecordReportError increments the report errors counter.
func RecordReportError() {
	globalManager.reportErrors.Inc()
}

// RecordReportDuration records report build time in milliseconds.
func RecordReportDuration(ms float64) {
	globalManager.reportDuration.Observe(ms)
}

// UpdateDuplicateClusters sets the cluster count of the last report.
func UpdateDuplicateClusters(count int) {
	globalManager.duplicateClusters.Set(float64(count))
}

// UpdateDuplicateCandidates sets the number of clustered candidates.
func UpdateDuplicateCandidates(count int) {
	globalManager.duplicateCandidates.Set(float64(count))
}

// UpdateIndexBuckets sets the number of distinct index keys.
func UpdateIndexBuckets(count int) {
	globalManager.indexBuckets.Set(float64(count))
}

// RecordSuitabilityScore observes one suitability score.
func RecordSuitabilityScore(score int) {
	globalManager.suitabilityScore.Observe(float64(score))
}

// UpdateHottestScore sets the hot job count of the hottest candidate.
func UpdateHottestScore(score int) {
	globalManager.hottestScore.Set(float64(score))
}

// UpdateRepositoryRecords sets the loaded record count for kind.
func UpdateRepositoryRecords(kind string, count int) {
	globalManager.repositoryRecords.WithLabelValues(kind).Set(float64(count))
}

// RecordRepositoryLoadLatency records dataset load latency.
func RecordRepositoryLoadLatency(ms float64) {
	globalManager.repositoryLoadLatency.Observe(ms)
}

// RecordErrorByComponent records an error with component and type labels.
func RecordErrorByComponent(component, errorType string) {
	globalManager.errorsByComponent.WithLabelValues(component, errorType).Inc()
}

// GetRegistry returns the custom Prometheus registry used by our metrics.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}

// WriteTextfile writes the current metrics to path in the text exposition
// format, for pickup by a node_exporter textfile collector.
func WriteTextfile(path string) error {
	if path == "" {
		return fmt.Errorf("%w: empty path", ErrWriteTextfile)
	}
	if err := prometheus.WriteToTextfile(path, customRegistry); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteTextfile, err)
	}
	return nil
}
