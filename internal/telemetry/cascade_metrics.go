package telemetry

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

var (
	cascadeCounter     metric.Int64Counter
	cascadeDuration    metric.Float64Histogram
	cascadeEdgeRemoved metric.Int64Histogram
)

// InitCascadeMetrics registers scene-deletion cascade instruments on the
// global meter provider. Recording before init is a no-op.
func InitCascadeMetrics() error {
	meter := otel.Meter("tourgraph.cascade")

	var err error

	cascadeCounter, err = meter.Int64Counter(
		"scene.cascade.count",
		metric.WithDescription("Number of scene deletion cascades by outcome"),
		metric.WithUnit("{operation}"),
	)
	if err != nil {
		return err
	}

	cascadeDuration, err = meter.Float64Histogram(
		"scene.cascade.duration",
		metric.WithDescription("Duration of scene deletion cascades"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return err
	}

	cascadeEdgeRemoved, err = meter.Int64Histogram(
		"scene.cascade.edges",
		metric.WithDescription("Hotspots deleted or retargeted per cascade"),
		metric.WithUnit("{hotspot}"),
	)
	return err
}

// RecordCascade records one cascade run. outcome is "success",
// "incomplete" or "error".
func RecordCascade(ctx context.Context, outcome string, durationMs float64, owned, inbound int) {
	attrs := metric.WithAttributes(attribute.String("outcome", outcome))
	if cascadeCounter != nil {
		cascadeCounter.Add(ctx, 1, attrs)
	}
	if cascadeDuration != nil {
		cascadeDuration.Record(ctx, durationMs, attrs)
	}
	if cascadeEdgeRemoved != nil && outcome == "success" {
		cascadeEdgeRemoved.Record(ctx, int64(owned+inbound),
			metric.WithAttributes(
				attribute.Int("owned", owned),
				attribute.Int("inbound", inbound),
			),
		)
	}
}
