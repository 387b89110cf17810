// Package metric provides Prometheus metrics for gitops-demo.
package metric

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/yndnr/gitops-demo/internal/infra/buildinfo"
)

// Collector exports build information and process uptime.
type Collector struct {
	started   time.Time
	buildInfo *prometheus.Desc
	uptime    *prometheus.Desc
}

// NewCollector creates a new custom metrics collector.
func NewCollector() *Collector {
	return &Collector{
		started: time.Now(),
		buildInfo: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "", "build_info"),
			"Build information of the running binary.",
			[]string{"version", "commit", "go_version"}, nil,
		),
		uptime: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "", "uptime_seconds"),
			"Seconds since the metrics collector was created.",
			nil, nil,
		),
	}
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.buildInfo
	ch <- c.uptime
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	info := buildinfo.Get()
	ch <- prometheus.MustNewConstMetric(c.buildInfo, prometheus.GaugeValue, 1,
		info.Version, info.Commit, info.GoVersion)
	ch <- prometheus.MustNewConstMetric(c.uptime, prometheus.GaugeValue,
		time.Since(c.started).Seconds())
}
