package telemetry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSetupNoopWhenEndpointEmpty(t *testing.T) {
	t.Setenv("YIELD_TOKENIZER_OTEL_ENDPOINT", "")
	t.Setenv("YIELD_TOKENIZER_OTEL_ENABLED", "")

	shutdown, err := Setup(context.Background())
	require.NoError(t, err)
	require.NoError(t, shutdown(context.Background()))
}

func TestSetupNoopWhenExplicitlyDisabled(t *testing.T) {
	t.Setenv("YIELD_TOKENIZER_OTEL_ENDPOINT", "http://localhost:4318")
	t.Setenv("YIELD_TOKENIZER_OTEL_ENABLED", "false")

	shutdown, err := Setup(context.Background())
	require.NoError(t, err)
	require.NoError(t, shutdown(context.Background()))
}

func TestSetupCreatesProviderWhenEndpointSet(t *testing.T) {
	// Non-routable address so no actual export happens.
	t.Setenv("YIELD_TOKENIZER_OTEL_ENDPOINT", "http://192.0.2.1:4318")
	t.Setenv("YIELD_TOKENIZER_OTEL_ENABLED", "")

	shutdown, err := Setup(context.Background())
	require.NoError(t, err)
	require.NoError(t, shutdown(context.Background()))
}

func TestStartActionWithoutProvider(t *testing.T) {
	ctx, span := StartAction(context.Background(), "BurnYield")
	require.NotNil(t, ctx)
	span.End()
}
