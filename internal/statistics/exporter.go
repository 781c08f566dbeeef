package statistics

import "github.com/prometheus/client_golang/prometheus"

const (
	namespace = "hystfan"
)

// Register adds the given collectors to the registerer, failing on duplicates
func Register(registerer prometheus.Registerer, collectors ...prometheus.Collector) error {
	for _, collector := range collectors {
		if err := registerer.Register(collector); err != nil {
			return err
		}
	}
	return nil
}
