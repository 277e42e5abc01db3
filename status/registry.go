package status

import (
	"fmt"
	"strconv"
	"sync/atomic"
)

// Metric keys written by the driver
const (
	FramesTotal     = "driver.frames"
	FramesBlank     = "driver.frames_blank"
	FramesClamped   = "driver.frames_clamped"
	AdaptiveChanges = "driver.adaptive_changes"
	Running         = "driver.running"
	FPS             = "driver.fps"
	FPSPeak         = "driver.fps_peak"
	Particles       = "field.particles"
	Connections     = "field.connections"
	Collisions      = "field.collisions"
	ConfigErrors    = "field.config_errors"
)

// Registry is the central metrics facade
// Writers cache pointers at construction and update atomics directly
type Registry struct {
	Bools  *MetricMap[atomic.Bool]
	Ints   *MetricMap[atomic.Int64]
	Floats *MetricMap[AtomicFloat]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Bools:  NewMetricMap[atomic.Bool](),
		Ints:   NewMetricMap[atomic.Int64](),
		Floats: NewMetricMap[AtomicFloat](),
	}
}

// TotalCount returns total metrics across all types
func (r *Registry) TotalCount() int {
	return r.Bools.Count() + r.Ints.Count() + r.Floats.Count()
}

// Each visits every metric as formatted text, bools then ints then floats, each in key order
func (r *Registry) Each(fn func(key, value string)) {
	r.Bools.Range(func(k string, v *atomic.Bool) {
		fn(k, strconv.FormatBool(v.Load()))
	})
	r.Ints.Range(func(k string, v *atomic.Int64) {
		fn(k, strconv.FormatInt(v.Load(), 10))
	})
	r.Floats.Range(func(k string, v *AtomicFloat) {
		fn(k, fmt.Sprintf("%.2f", v.Get()))
	})
}
