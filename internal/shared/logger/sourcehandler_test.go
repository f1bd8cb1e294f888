package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"
)

func TestLevelSourceHandler(t *testing.T) {
	tests := []struct {
		name       string
		levels     []slog.Level
		logLevel   slog.Level
		wantSource bool
	}{
		{
			name:       "source added for configured level",
			levels:     []slog.Level{slog.LevelError},
			logLevel:   slog.LevelError,
			wantSource: true,
		},
		{
			name:       "source omitted for other levels",
			levels:     []slog.Level{slog.LevelError},
			logLevel:   slog.LevelInfo,
			wantSource: false,
		},
		{
			name:       "multiple levels",
			levels:     []slog.Level{slog.LevelWarn, slog.LevelError},
			logLevel:   slog.LevelWarn,
			wantSource: true,
		},
		{
			name:       "no levels configured",
			levels:     nil,
			logLevel:   slog.LevelError,
			wantSource: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			base := slog.NewJSONHandler(&buf, &slog.HandlerOptions{
				Level:     slog.LevelDebug,
				AddSource: false,
			})
			log := slog.New(NewLevelSourceHandler(base, tt.levels...))

			log.Log(context.Background(), tt.logLevel, "probe")

			var entry map[string]any
			if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
				t.Fatalf("unmarshal log line: %v", err)
			}
			_, hasSource := entry[slog.SourceKey]
			if hasSource != tt.wantSource {
				t.Errorf("source present = %v, want %v (line: %s)", hasSource, tt.wantSource, buf.String())
			}
		})
	}
}

func TestLevelSourceHandlerWithAttrs(t *testing.T) {
	var buf bytes.Buffer
	base := slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	log := slog.New(NewLevelSourceHandler(base, slog.LevelError)).With("component", "dispatcher")

	log.Info("probe")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("unmarshal log line: %v", err)
	}
	if entry["component"] != "dispatcher" {
		t.Errorf("component = %v, want dispatcher", entry["component"])
	}
}
