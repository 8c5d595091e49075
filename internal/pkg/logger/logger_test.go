package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

// Configure takes the level exactly as it appears in the config file, so the
// bootstrap path can pass the string straight through.
func TestConfigureLevelFromConfigString(t *testing.T) {
	defer Configure(Config{Level: "info", Pretty: true})

	tests := []struct {
		level string
		want  zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"info", zerolog.InfoLevel},
		{"warn", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"WARN", zerolog.WarnLevel},
		{"nonsense", zerolog.InfoLevel},
		{"", zerolog.InfoLevel},
	}
	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			Configure(Config{Level: tt.level, Output: &bytes.Buffer{}})
			if got := zerolog.GlobalLevel(); got != tt.want {
				t.Errorf("Configure(Level: %q) global level = %v, want %v", tt.level, got, tt.want)
			}
		})
	}
}

func TestConfigureJSONOutput(t *testing.T) {
	defer Configure(Config{Level: "info", Pretty: true})

	var buf bytes.Buffer
	Configure(Config{Level: "info", Output: &buf})

	Info().Str("entity", "student").Msg("record created")

	line := strings.TrimSpace(buf.String())
	var event map[string]interface{}
	if err := json.Unmarshal([]byte(line), &event); err != nil {
		t.Fatalf("output is not JSON: %v (%q)", err, line)
	}
	if event["entity"] != "student" {
		t.Errorf("entity field = %v, want %q", event["entity"], "student")
	}
	if event["message"] != "record created" {
		t.Errorf("message = %v, want %q", event["message"], "record created")
	}
}
