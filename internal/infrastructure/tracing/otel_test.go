package tracing

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mm01rahman/LandlordBD/internal/config"
)

func TestInit_Disabled(t *testing.T) {
	shutdown, err := Init(context.Background(), nil, config.TracingFlags{}, "test")
	require.NoError(t, err)
	require.NoError(t, shutdown(context.Background()))
}

func TestInit_StdoutExporter(t *testing.T) {
	shutdown, err := Init(context.Background(), nil, config.TracingFlags{Enabled: true, SampleRatio: 1}, "test")
	require.NoError(t, err)
	require.NoError(t, shutdown(context.Background()))
}
