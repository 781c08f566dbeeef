package statistics

import (
	"github.com/markusressel/hystfan/internal/controller"
	"github.com/prometheus/client_golang/prometheus"
)

const subsystemController = "controller"

type ControllerCollector struct {
	controls []controller.FanControlLoop

	speed *prometheus.Desc
	ticks *prometheus.Desc
}

func NewControllerCollector(controls []controller.FanControlLoop) *ControllerCollector {
	return &ControllerCollector{
		controls: controls,
		speed: prometheus.NewDesc(prometheus.BuildFQName(namespace, subsystemController, "speed"),
			"Speed last written to the fan of this control",
			[]string{"id"}, nil,
		),
		ticks: prometheus.NewDesc(prometheus.BuildFQName(namespace, subsystemController, "ticks_total"),
			"Number of control cycles executed by this control",
			[]string{"id"}, nil,
		),
	}
}

func (collector *ControllerCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- collector.speed
	ch <- collector.ticks
}

// Collect implements required collect function for all prometheus collectors
func (collector *ControllerCollector) Collect(ch chan<- prometheus.Metric) {
	for _, control := range collector.controls {
		id := control.GetId()
		stats := control.GetStatistics()
		if stats.Speed >= 0 {
			ch <- prometheus.MustNewConstMetric(collector.speed, prometheus.GaugeValue, float64(stats.Speed), id)
		}
		ch <- prometheus.MustNewConstMetric(collector.ticks, prometheus.CounterValue, float64(stats.Ticks), id)
	}
}
