package logging

import (
	"bytes"
	"strings"
	"testing"
)

func TestNew_DefaultLevelIsWarn(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Options{Writer: &buf})

	logger.Debug("quiet")
	logger.Info("also quiet")
	logger.Warn("discarding malformed todos")
	logger.Sync()

	output := buf.String()
	if strings.Contains(output, "quiet") {
		t.Fatalf("expected debug and info to be filtered, got %q", output)
	}
	if !strings.Contains(output, "WARN") || !strings.Contains(output, "discarding malformed todos") {
		t.Fatalf("expected warning in output, got %q", output)
	}
}

func TestNew_VerboseIncludesDebug(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Options{Writer: &buf, Verbose: true})

	logger.Debug("todo operation")
	logger.Sync()

	if !strings.Contains(buf.String(), "DEBUG") {
		t.Fatalf("expected debug output, got %q", buf.String())
	}
}
