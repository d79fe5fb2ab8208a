package logging

import (
	"testing"

	"go.uber.org/zap"
)

func TestNew(t *testing.T) {
	t.Parallel()

	logger, err := New("debug", "console")
	if err != nil {
		t.Fatalf("New() err=%v", err)
	}
	if !logger.Core().Enabled(zap.DebugLevel) {
		t.Fatalf("debug level should be enabled")
	}

	logger, err = New("warn", "json")
	if err != nil {
		t.Fatalf("New() err=%v", err)
	}
	if logger.Core().Enabled(zap.InfoLevel) {
		t.Fatalf("info level should be disabled at warn")
	}
}

func TestNew_InvalidLevel(t *testing.T) {
	t.Parallel()

	if _, err := New("loud", "json"); err == nil {
		t.Fatalf("New() err=nil, want error")
	}
}
