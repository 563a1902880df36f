package metrics_test

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	. "github.com/smartystreets/goconvey/convey"

	"github.com/bsubei/squadrot/pkg/metrics"
)

func TestManager(t *testing.T) {
	Convey("Given a manager on a private registry", t, func() {
		registry := prometheus.NewRegistry()
		m := metrics.NewManager(metrics.WithRegistry(registry))

		Convey("When recording a run", func() {
			m.SetCatalogSize(120)
			m.SlotFilled()
			m.SlotFilled()
			m.SlotSkipped()
			m.RecencyDegraded()
			m.NotifyError()
			m.RotationGenerated()

			Convey("Then the counters expose the run's shape", func() {
				families, err := registry.Gather()
				So(err, ShouldBeNil)
				So(len(families), ShouldEqual, 6)

				values := map[string]float64{}
				for _, f := range families {
					values[f.GetName()] = f.GetMetric()[0].GetCounter().GetValue() + f.GetMetric()[0].GetGauge().GetValue()
				}
				So(values["squadrot_slots_filled_total"], ShouldEqual, 2)
				So(values["squadrot_slots_skipped_total"], ShouldEqual, 1)
				So(values["squadrot_recency_degradations_total"], ShouldEqual, 1)
				So(values["squadrot_notify_errors_total"], ShouldEqual, 1)
				So(values["squadrot_rotations_generated_total"], ShouldEqual, 1)
				So(values["squadrot_catalog_layers"], ShouldEqual, 120)
			})
		})

		Convey("A custom namespace prefixes the metric names", func() {
			other := prometheus.NewRegistry()
			custom := metrics.NewManager(metrics.WithRegistry(other), metrics.WithNamespace("rotations"))
			custom.SlotFilled()

			count, err := testutil.GatherAndCount(other, "rotations_slots_filled_total")
			So(err, ShouldBeNil)
			So(count, ShouldEqual, 1)
		})
	})

	Convey("The default manager is available as a singleton", t, func() {
		So(metrics.Default(), ShouldNotBeNil)
	})
}
