package observability

import (
	"context"
	"testing"
	"time"

	"pokerledger/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricsProvider_DisabledDropsRecordings(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(*config.Config)
	}{
		{name: "otel disabled", mutate: func(c *config.Config) { c.OTelEnabled = false }},
		{name: "exporter none", mutate: func(c *config.Config) { c.OTelEnabled = true; c.OTelExporterType = "none" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := config.NewTestConfig()
			tt.mutate(cfg)
			mp := NewMetricsProvider(cfg)
			require.NoError(t, mp.Initialize(context.Background()))
			require.NoError(t, mp.Initialize(context.Background()))

			assert.NotPanics(t, func() {
				mp.RecordCommand("game", OutcomeSuccess, time.Millisecond)
				mp.UpdateActiveGames(1)
				mp.RecordRound("flush")
				mp.RecordBuyIns(2)
				mp.RecordGameFinished()
				mp.RecordEventPublished("game_finished")
			})
			assert.NoError(t, mp.Shutdown(context.Background()))
		})
	}
}

func TestMetricsProvider_NilIsSafe(t *testing.T) {
	t.Parallel()

	var mp *MetricsProvider
	assert.NotPanics(t, func() {
		outcome := OutcomeFailure
		mp.MeasureCommand("player")(&outcome)
		mp.RecordRound("pair")
	})
	assert.NoError(t, mp.Shutdown(context.Background()))
}

func TestMetricsProvider_UnknownExporter(t *testing.T) {
	t.Parallel()

	cfg := config.NewTestConfig()
	cfg.OTelEnabled = true
	cfg.OTelExporterType = "carrier-pigeon"

	assert.Error(t, NewMetricsProvider(cfg).Initialize(context.Background()))
}

func TestMetricsProvider_ConsoleExporter(t *testing.T) {
	cfg := config.NewTestConfig()
	cfg.OTelEnabled = true
	cfg.OTelExporterType = "console"
	cfg.OTelExportIntervalMillis = 60000

	mp := NewMetricsProvider(cfg)
	require.NoError(t, mp.Initialize(context.Background()))
	assert.True(t, mp.isEnabled())

	mp.RecordRound("full_house")
	mp.UpdateActiveGames(1)
	require.NoError(t, mp.Shutdown(context.Background()))
}
