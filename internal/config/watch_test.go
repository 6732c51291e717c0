package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatcherReportsContentChange(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "motor.yaml")
	if err := os.WriteFile(path, []byte("sim:\n  tick_rate: 50\n"), 0644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	w, err := NewWatcher(path)
	if err != nil {
		t.Fatalf("NewWatcher failed: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(path, []byte("sim:\n  tick_rate: 60\n"), 0644); err != nil {
		t.Fatalf("failed to rewrite file: %v", err)
	}

	select {
	case got := <-w.Events:
		want, _ := filepath.Abs(path)
		if got != want {
			t.Errorf("expected event for %s, got %s", want, got)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for change event")
	}
}

func TestWatcherIgnoresIdenticalRewrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "motor.yaml")
	content := []byte("sim:\n  tick_rate: 50\n")
	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	w, err := NewWatcher(path)
	if err != nil {
		t.Fatalf("NewWatcher failed: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatalf("failed to rewrite file: %v", err)
	}
	// Unrelated files in the same directory are not reported either.
	if err := os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("x: 1\n"), 0644); err != nil {
		t.Fatalf("failed to write sibling: %v", err)
	}

	select {
	case got := <-w.Events:
		t.Errorf("unexpected event for %s", got)
	case <-time.After(300 * time.Millisecond):
	}
}

func TestWatcherCloseIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "motor.yaml")
	if err := os.WriteFile(path, []byte("{}\n"), 0644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}
	w, err := NewWatcher(path)
	if err != nil {
		t.Fatalf("NewWatcher failed: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("first Close returned %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("second Close returned %v", err)
	}
}
