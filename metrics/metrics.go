// SPDX-License-Identifier: MIT
//
// Package metrics holds the Prometheus instruments updated by the line graph
// generator. Every Collector owns a private registry, so several generators
// (or tests) can coexist without duplicate-registration panics.
//
// All methods are nil-safe: a nil *Collector records nothing.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Build outcomes used as the "result" label of builds_total.
const (
	ResultOK       = "ok"
	ResultRejected = "rejected"
	ResultFailed   = "failed"
)

// DefaultNamespace is used when NewCollector receives an empty namespace.
const DefaultNamespace = "linegraph"

// Collector groups the generator instruments and the registry they live in.
type Collector struct {
	registry *prometheus.Registry

	SegmentsIngested  prometheus.Counter
	SegmentsRejected  prometheus.Counter
	NodesMaterialized prometheus.Counter
	EdgesMaterialized prometheus.Counter
	Builds            *prometheus.CounterVec
	BuildDuration     prometheus.Histogram
}

// NewCollector creates the instruments under namespace and registers them
// with a fresh registry.
func NewCollector(namespace string) *Collector {
	if namespace == "" {
		namespace = DefaultNamespace
	}

	c := &Collector{
		registry: prometheus.NewRegistry(),
		SegmentsIngested: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "segments_ingested_total",
			Help:      "Total number of line segments accepted for graph construction",
		}),
		SegmentsRejected: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "segments_rejected_total",
			Help:      "Total number of line segments rejected at ingestion",
		}),
		NodesMaterialized: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "nodes_materialized_total",
			Help:      "Total number of graph nodes allocated during builds",
		}),
		EdgesMaterialized: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "edges_materialized_total",
			Help:      "Total number of graph edges allocated during builds",
		}),
		Builds: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "builds_total",
			Help:      "Total number of build attempts by result",
		}, []string{"result"}),
		BuildDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "build_duration_seconds",
			Help:      "Wall time of successful two-phase builds",
			Buckets:   prometheus.DefBuckets,
		}),
	}

	c.registry.MustRegister(
		c.SegmentsIngested,
		c.SegmentsRejected,
		c.NodesMaterialized,
		c.EdgesMaterialized,
		c.Builds,
		c.BuildDuration,
	)

	return c
}

// Registry returns the registry holding this collector's instruments.
func (c *Collector) Registry() *prometheus.Registry {
	if c == nil {
		return nil
	}

	return c.registry
}

// Ingested records one accepted segment.
func (c *Collector) Ingested() {
	if c == nil {
		return
	}
	c.SegmentsIngested.Inc()
}

// Rejected records one rejected segment.
func (c *Collector) Rejected() {
	if c == nil {
		return
	}
	c.SegmentsRejected.Inc()
}

// BuildFinished records the outcome of a build attempt. Node and edge counts
// and the duration are only recorded for ResultOK.
func (c *Collector) BuildFinished(result string, nodes, edges int, elapsed time.Duration) {
	if c == nil {
		return
	}
	c.Builds.WithLabelValues(result).Inc()
	if result != ResultOK {
		return
	}
	c.NodesMaterialized.Add(float64(nodes))
	c.EdgesMaterialized.Add(float64(edges))
	c.BuildDuration.Observe(elapsed.Seconds())
}

// WriteTextfile writes the registry in the Prometheus text exposition format,
// suitable for the node_exporter textfile collector.
func (c *Collector) WriteTextfile(path string) error {
	if c == nil {
		return nil
	}

	return prometheus.WriteToTextfile(path, c.registry)
}
