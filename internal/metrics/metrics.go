// Package metrics counts map builds and renders. Results are written in the
// Prometheus text format for a node_exporter textfile collector.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Recorder owns a private registry. A nil *Recorder records nothing.
type Recorder struct {
	reg *prometheus.Registry

	mapsBuilt     *prometheus.CounterVec
	cellsPlaced   prometheus.Histogram
	unplaced      prometheus.Counter
	renders       *prometheus.CounterVec
	renderSeconds prometheus.Histogram
}

func New() *Recorder {
	r := &Recorder{reg: prometheus.NewRegistry()}
	r.mapsBuilt = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "cartograph",
		Name:      "maps_built_total",
		Help:      "Grids produced by the map builder.",
	}, []string{"keyspace"})
	r.cellsPlaced = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "cartograph",
		Name:      "cells_placed",
		Help:      "Occupied cells per built grid.",
		Buckets:   prometheus.ExponentialBuckets(1, 4, 8),
	})
	r.unplaced = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "cartograph",
		Name:      "locations_unplaced_total",
		Help:      "Region members that no map could place.",
	})
	r.renders = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "cartograph",
		Name:      "renders_total",
		Help:      "Rendered views by mode and pathway inflation.",
	}, []string{"mode", "pathways"})
	r.renderSeconds = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "cartograph",
		Name:      "render_duration_seconds",
		Help:      "Time spent building and rendering one view.",
		Buckets:   prometheus.ExponentialBuckets(0.0005, 2, 12),
	})
	r.reg.MustRegister(r.mapsBuilt, r.cellsPlaced, r.unplaced, r.renders, r.renderSeconds)
	return r
}

// ObserveBuild records one grid with placed occupied cells.
func (r *Recorder) ObserveBuild(keyspace string, placed int) {
	if r == nil {
		return
	}
	r.mapsBuilt.WithLabelValues(keyspace).Inc()
	r.cellsPlaced.Observe(float64(placed))
}

func (r *Recorder) ObserveUnplaced(n int) {
	if r == nil || n <= 0 {
		return
	}
	r.unplaced.Add(float64(n))
}

// ObserveRender records one rendered view and how long it took.
func (r *Recorder) ObserveRender(mode string, pathways bool, elapsed time.Duration) {
	if r == nil {
		return
	}
	r.renders.WithLabelValues(mode, strconv.FormatBool(pathways)).Inc()
	r.renderSeconds.Observe(elapsed.Seconds())
}

// Registry exposes the underlying registry for gathering.
func (r *Recorder) Registry() *prometheus.Registry {
	if r == nil {
		return nil
	}
	return r.reg
}

// WriteTextfile atomically replaces path with the current values.
func (r *Recorder) WriteTextfile(path string) error {
	if r == nil {
		return nil
	}
	return prometheus.WriteToTextfile(path, r.reg)
}
