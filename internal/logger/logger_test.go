package logger

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestConfigureLevels(t *testing.T) {
	tests := []struct {
		name  string
		level string
		want  logrus.Level
	}{
		{"empty defaults to info", "", logrus.InfoLevel},
		{"debug", "debug", logrus.DebugLevel},
		{"warn", "warn", logrus.WarnLevel},
		{"garbage falls back", "loud", logrus.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Configure(tt.level, "text")
			if Log.GetLevel() != tt.want {
				t.Errorf("Expected level %v, got %v", tt.want, Log.GetLevel())
			}
		})
	}
}

func TestJSONFormatCarriesComponent(t *testing.T) {
	var buf bytes.Buffer
	Configure("info", "JSON")
	Log.SetOutput(&buf)
	defer func() {
		Configure("info", "text")
		Log.SetOutput(os.Stderr)
	}()

	For("turn").Info("hello")

	out := buf.String()
	if !strings.Contains(out, `"component":"turn"`) {
		t.Errorf("Expected component field in output, got %s", out)
	}
}
