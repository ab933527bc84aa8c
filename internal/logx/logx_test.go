package logx_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"service-livreur-client/internal/logx"
)

func TestFieldConstructors(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 4, 1, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		name  string
		field logx.Field
		key   string
		value any
	}{
		{"any", logx.Any("err", "boom"), "err", "boom"},
		{"string", logx.String("topic", "commandes.nouvelles"), "topic", "commandes.nouvelles"},
		{"int", logx.Int("count", 3), "count", 3},
		{"int64", logx.Int64("orderId", int64(42)), "orderId", int64(42)},
		{"float64", logx.Float64("fee", 7.5), "fee", 7.5},
		{"bool", logx.Bool("online", true), "online", true},
		{"time", logx.Time("at", now), "at", now},
		{"duration", logx.Duration("delay", 5*time.Second), "delay", 5 * time.Second},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.key, tc.field.Key)
			require.Equal(t, tc.value, tc.field.Value)
		})
	}
}

func TestSlogAdapter_WritesStructuredFields(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := logx.NewSlogAdapter(slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})))

	logger.Info("claim won", logx.Int64("orderId", 42))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "claim won", entry["msg"])
	require.Equal(t, "INFO", entry["level"])
	require.EqualValues(t, 42, entry["orderId"])
}

func TestSlogAdapter_WithAttachesFields(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := logx.NewSlogAdapter(slog.New(slog.NewJSONHandler(&buf, nil)))

	bound := logger.With(logx.Int64("livreurId", 7))
	bound.Warn("profile refresh failed", logx.Any("err", "timeout"))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.EqualValues(t, 7, entry["livreurId"])
	require.Equal(t, "timeout", entry["err"])
}

func TestSlogAdapter_RespectsLevel(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := logx.NewSlogAdapter(slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	logger.Debug("should not appear")
	require.Zero(t, buf.Len())

	logger.Error("should appear")
	require.NotZero(t, buf.Len())
}

func TestNop_SafeToUse(t *testing.T) {
	t.Parallel()

	logger := logx.Nop()
	logger.Debug("ignored")
	logger.Info("ignored")
	logger.Warn("ignored")
	logger.Error("ignored")
	require.NotNil(t, logger.With(logx.String("k", "v")))
	require.NoError(t, logger.Sync())
}
