/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package setting

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

const meterName = "github.com/suparena/settingstore/setting"

// metrics counts lookups by outcome and loads by result for one registry.
type metrics struct {
	lookups metric.Int64Counter
	loads   metric.Int64Counter
	name    attribute.KeyValue
}

func newMetrics(mp metric.MeterProvider, name string) *metrics {
	if mp == nil {
		mp = otel.GetMeterProvider()
	}
	meter := mp.Meter(meterName)

	lookups, err := meter.Int64Counter("settingstore.lookups",
		metric.WithDescription("Number of setting lookups by outcome"),
	)
	if err != nil {
		lookups, _ = noop.NewMeterProvider().Meter(meterName).Int64Counter("settingstore.lookups")
	}

	loads, err := meter.Int64Counter("settingstore.loads",
		metric.WithDescription("Number of setting asset loads by result"),
	)
	if err != nil {
		loads, _ = noop.NewMeterProvider().Meter(meterName).Int64Counter("settingstore.loads")
	}

	return &metrics{
		lookups: lookups,
		loads:   loads,
		name:    attribute.String("setting", name),
	}
}

func (m *metrics) recordLookup(ctx context.Context, outcome Outcome) {
	m.lookups.Add(ctx, 1, metric.WithAttributes(
		m.name,
		attribute.String("outcome", outcome.String()),
	))
}

func (m *metrics) recordLoad(ctx context.Context, ok bool) {
	result := "ok"
	if !ok {
		result = "failed"
	}
	m.loads.Add(ctx, 1, metric.WithAttributes(
		m.name,
		attribute.String("result", result),
	))
}
