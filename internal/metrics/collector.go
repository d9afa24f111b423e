package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/opservo/fieldops/internal/config"
)

// Collector exposes aggregation telemetry. Every series carries tenant_id
// so the remote-write path can route it to the tenant's Mimir org.
type Collector struct {
	config *config.MimirConfig

	overviewRequests      *prometheus.CounterVec
	overviewFetchDuration *prometheus.HistogramVec
	overviewFetchFailures *prometheus.CounterVec
	sectionProgress       *prometheus.GaugeVec

	domainChecksTotal   *prometheus.CounterVec
	domainCheckDuration *prometheus.HistogramVec
}

func NewCollector(cfg config.MimirConfig) *Collector {
	return &Collector{
		config: &cfg,

		overviewRequests: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "settings_overview_requests_total",
			Help: "Overview payloads served, including degraded defaults",
		}, []string{"tenant_id", "degraded"}),

		overviewFetchDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "settings_overview_fetch_duration_seconds",
			Help:    "Wall time of the overview fan-out fetch",
			Buckets: prometheus.DefBuckets,
		}, []string{"tenant_id"}),

		overviewFetchFailures: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "settings_overview_fetch_failures_total",
			Help: "Fetches that collapsed to the default snapshot",
		}, []string{"tenant_id"}),

		sectionProgress: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Name: "settings_section_progress",
			Help: "Readiness progress per settings cluster, 0-100",
		}, []string{"tenant_id", "cluster"}),

		domainChecksTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "sending_domain_checks_total",
			Help: "Email sending-domain diagnostics runs",
		}, []string{"tenant_id", "result"}),

		domainCheckDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "sending_domain_check_duration_seconds",
			Help:    "Duration of sending-domain diagnostics",
			Buckets: prometheus.DefBuckets,
		}, []string{"tenant_id"}),
	}
}

// ObserveFetch implements overview.Recorder.
func (c *Collector) ObserveFetch(companyID string, d time.Duration, failed bool) {
	c.overviewFetchDuration.WithLabelValues(companyID).Observe(d.Seconds())
	if failed {
		c.overviewFetchFailures.WithLabelValues(companyID).Inc()
	}
}

// RecordSectionProgress implements overview.Recorder.
func (c *Collector) RecordSectionProgress(companyID, cluster string, progress int) {
	c.sectionProgress.WithLabelValues(companyID, cluster).Set(float64(progress))
}

func (c *Collector) RecordOverviewRequest(companyID string, degraded bool) {
	label := "false"
	if degraded {
		label = "true"
	}
	c.overviewRequests.WithLabelValues(companyID, label).Inc()
}

func (c *Collector) RecordDomainCheck(companyID, result string, d time.Duration) {
	c.domainChecksTotal.WithLabelValues(companyID, result).Inc()
	c.domainCheckDuration.WithLabelValues(companyID).Observe(d.Seconds())
}
