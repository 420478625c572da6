// Copyright 2025 The yield-tokenizer-cli Authors
// SPDX-License-Identifier: Apache-2.0

// Package telemetry initialises opt-in OpenTelemetry tracing for the CLI.
package telemetry

import (
	"context"
	"os"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"
)

const serviceName = "yield-tokenizer-cli"

// Setup initialises OpenTelemetry tracing.
//
// Tracing is opt-in: when YIELD_TOKENIZER_OTEL_ENDPOINT is empty or
// YIELD_TOKENIZER_OTEL_ENABLED is "false", Setup returns a no-op shutdown
// function and no global provider is registered.
//
// The returned shutdown function flushes pending spans and should be
// deferred by the caller.
func Setup(ctx context.Context) (shutdown func(context.Context) error, err error) {
	noop := func(context.Context) error { return nil }

	if strings.EqualFold(os.Getenv("YIELD_TOKENIZER_OTEL_ENABLED"), "false") {
		return noop, nil
	}

	endpoint := os.Getenv("YIELD_TOKENIZER_OTEL_ENDPOINT")
	if endpoint == "" {
		return noop, nil
	}

	exporter, err := otlptracehttp.New(ctx,
		otlptracehttp.WithEndpointURL(endpoint),
	)
	if err != nil {
		return noop, err
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceName(serviceName),
		),
	)
	if err != nil {
		return noop, err
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
	)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.TraceContext{})

	return tp.Shutdown, nil
}

// StartAction opens the span covering one command dispatch. The caller
// must End the returned span. When Setup registered no provider this is
// a no-op span.
func StartAction(ctx context.Context, action string) (context.Context, trace.Span) {
	return otel.Tracer(serviceName).Start(ctx, "cli.action",
		trace.WithAttributes(attribute.String("tokenizer.action", action)),
	)
}
