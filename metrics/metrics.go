// Package metrics exports mesh controller activity as Prometheus metrics.
//
// Collector implements state.Observer; register it with any
// prometheus.Registerer and pass it to state.WithObserver.
package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/geomesh/mesh"
	"github.com/katalvlaran/geomesh/state"
)

const namespace = "geomesh"

// Collector holds the controller metrics.
type Collector struct {
	Operations  *prometheus.CounterVec
	Transitions *prometheus.CounterVec
	Faces       prometheus.Gauge
	Vertices    prometheus.Gauge
	MaxLevel    prometheus.Gauge
	Clicks      prometheus.Gauge
	Exhausted   prometheus.Gauge
	FacesLevel  *prometheus.GaugeVec
}

// NewCollector creates the metrics and registers them with reg.
// A nil reg leaves them unregistered.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		Operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "operations_total",
			Help:      "Applied controller operations by kind",
		}, []string{"op"}),
		Transitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "transitions_total",
			Help:      "Face transitions caused by clicks and subdivisions",
		}, []string{"transition"}),
		Faces: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "faces",
			Help:      "Active faces in the current mesh",
		}),
		Vertices: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "vertices",
			Help:      "Vertices in the current mesh",
		}),
		MaxLevel: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "max_level",
			Help:      "Deepest subdivision level among active faces",
		}),
		Clicks: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "clicks",
			Help:      "Sum of click counts over active faces",
		}),
		Exhausted: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "exhausted_faces",
			Help:      "Faces locked at the maximum level",
		}),
		FacesLevel: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "faces_by_level",
			Help:      "Active faces per subdivision level",
		}, []string{"level"}),
	}
	if reg != nil {
		reg.MustRegister(c.Operations, c.Transitions, c.Faces, c.Vertices,
			c.MaxLevel, c.Clicks, c.Exhausted, c.FacesLevel)
	}

	return c
}

// Observe implements state.Observer.
func (c *Collector) Observe(ev state.Event, st mesh.Stats) {
	c.Operations.WithLabelValues(string(ev.Op)).Inc()
	if ev.Transition != state.None {
		c.Transitions.WithLabelValues(ev.Transition.String()).Inc()
	}
	c.Faces.Set(float64(st.TotalFaces))
	c.Vertices.Set(float64(st.TotalVertices))
	c.MaxLevel.Set(float64(st.MaxLevel))
	c.Clicks.Set(float64(st.TotalClicks))
	c.Exhausted.Set(float64(st.Exhausted))
	c.FacesLevel.Reset()
	for lvl, n := range st.CountsByLevel {
		c.FacesLevel.WithLabelValues(strconv.Itoa(lvl)).Set(float64(n))
	}
}

var _ state.Observer = (*Collector)(nil)
