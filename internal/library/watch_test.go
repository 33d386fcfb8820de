package library

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestWatchOverlayStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	dir := t.TempDir()

	done := make(chan error, 1)
	go func() {
		done <- WatchOverlay(ctx, dir)
	}()

	cancel()
	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("expected context.Canceled, got %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("watcher did not stop after cancel")
	}
}

func TestWatchOverlayMissingDir(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := WatchOverlay(ctx, "/nonexistent/overlay/dir"); err == nil {
		t.Error("expected error for missing directory")
	}
}

func TestIsSkeletonFile(t *testing.T) {
	cases := []struct {
		path string
		want bool
	}{
		{"amparo.yaml", true},
		{"sub/contrato.YML", true},
		{"notas.txt", false},
		{"skeleton.yaml.bak", false},
	}
	for _, tc := range cases {
		if got := isSkeletonFile(tc.path); got != tc.want {
			t.Errorf("isSkeletonFile(%q): expected %v, got %v", tc.path, tc.want, got)
		}
	}
}
