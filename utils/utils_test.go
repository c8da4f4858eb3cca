package utils

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestContainsFold(t *testing.T) {
	levels := []string{"debug", "info"}
	if !ContainsFold("INFO", levels) {
		t.Errorf("ContainsFold(INFO) = false")
	}
	if ContainsFold("trace", levels) {
		t.Errorf("ContainsFold(trace) = true")
	}
}

func TestCancelOnSignalStopsWithContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	stop := CancelOnSignal(ctx, cancel)
	cancel()
	stop()

	if ctx.Err() == nil {
		t.Errorf("context should be cancelled")
	}
}

func TestGetConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("page_size: 5\n"), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	content, err := GetConfigFile(path)
	if err != nil {
		t.Fatalf("GetConfigFile() unexpected error: %v", err)
	}
	if string(content) != "page_size: 5\n" {
		t.Errorf("GetConfigFile() = %q", content)
	}

	if _, err := GetConfigFile(filepath.Join(t.TempDir(), "missing.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("GetConfigFile(missing) error = %v, want os.ErrNotExist", err)
	}
}
