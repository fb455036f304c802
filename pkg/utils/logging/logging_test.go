package logging_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/wattguard/pkg/utils/logging"
)

func TestJSONLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.New(&buf, slog.LevelInfo, logging.FormatJSON)

	logger.Info("report generated", "attack_surface", 2500)

	var entry map[string]any
	gt.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	gt.Value(t, entry["msg"]).Equal("report generated")
	gt.Value(t, entry["attack_surface"]).Equal(float64(2500))
}

func TestLevelFilter(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.New(&buf, slog.LevelWarn, logging.FormatJSON)

	logger.Info("should be dropped")
	gt.Value(t, buf.Len()).Equal(0)

	logger.Warn("should be written")
	if buf.Len() == 0 {
		t.Error("warn log should be written")
	}
}

func TestContextLogger(t *testing.T) {
	ctx := context.Background()

	t.Run("falls back to default", func(t *testing.T) {
		if logging.From(ctx) == nil {
			t.Fatal("expected default logger")
		}
	})

	t.Run("roundtrip", func(t *testing.T) {
		var buf bytes.Buffer
		logger := logging.New(&buf, slog.LevelDebug, logging.FormatJSON)

		ctx := logging.With(ctx, logger)
		gt.Value(t, logging.From(ctx)).Equal(logger)
	})
}
