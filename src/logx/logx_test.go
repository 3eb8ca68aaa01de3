package logx

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestGetLoggerLevelByString(t *testing.T) {
	cases := []struct {
		in   string
		want zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{"info", zapcore.InfoLevel},
		{" WARN ", zapcore.WarnLevel},
		{"error", zapcore.ErrorLevel},
		{"fatal", zapcore.FatalLevel},
		{"", zapcore.DebugLevel},
		{"verbose", zapcore.DebugLevel},
	}
	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			if got := GetLoggerLevelByString(c.in); got != c.want {
				t.Fatalf("level for %q = %v, want %v", c.in, got, c.want)
			}
		})
	}
}

func TestJSONOutputRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogx(zapcore.InfoLevel, false, false)
	l.InitLogger(&buf)

	l.Debugf("hidden %d", 1)
	l.With("tile", 7).Infof("snapped %s", "ok")
	_ = l.Sync()

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("got %d log lines, want 1: %q", len(lines), buf.String())
	}
	var entry map[string]interface{}
	if err := json.Unmarshal([]byte(lines[0]), &entry); err != nil {
		t.Fatalf("log line is not JSON: %v", err)
	}
	if entry["MESSAGE"] != "snapped ok" {
		t.Fatalf("MESSAGE = %v, want %q", entry["MESSAGE"], "snapped ok")
	}
	if entry["LEVEL"] != "info" {
		t.Fatalf("LEVEL = %v, want info", entry["LEVEL"])
	}
	if entry["tile"] != float64(7) {
		t.Fatalf("tile field = %v, want 7", entry["tile"])
	}
	if entry["NAME"] != "slicepuzzle" {
		t.Fatalf("NAME = %v, want slicepuzzle", entry["NAME"])
	}
}

func TestNopLogger(t *testing.T) {
	var l Logger = NewNop()
	l.Errorf("dropped %v", "entry")
	l.With("k", "v").Info("dropped")
	if err := l.Sync(); err != nil {
		t.Fatalf("nop Sync returned %v", err)
	}
}
