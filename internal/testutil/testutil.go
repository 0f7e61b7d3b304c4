package testutil

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/vergashev/hafta/internal/models"
	"github.com/vergashev/hafta/internal/store"
)

// TestClock is a fixed Monday morning used wherever tests need a stable time
var TestClock = time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)

// CaptureOutput captures stdout during function execution
func CaptureOutput(t *testing.T, fn func()) string {
	t.Helper()

	// Save original stdout
	oldStdout := os.Stdout

	// Create pipe to capture output
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("Failed to create pipe: %v", err)
	}

	// Replace stdout with pipe writer
	os.Stdout = w

	// Channel to collect output
	outC := make(chan string)
	go func() {
		var buf bytes.Buffer
		_, _ = io.Copy(&buf, r)
		outC <- buf.String()
	}()

	// Execute function
	fn()

	// Close writer and restore stdout
	_ = w.Close()
	os.Stdout = oldStdout

	// Get captured output
	return <-outC
}

// TempTrackerPath returns a tracker file path inside a per-test temp directory
func TempTrackerPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "tracker.json")
}

// WriteTracker persists a document to path so a test can start from known state
func WriteTracker(t *testing.T, path string, doc *models.Document) {
	t.Helper()

	st, err := store.New(path)
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	if err := st.Save(doc); err != nil {
		t.Fatalf("Failed to write tracker file: %v", err)
	}
}
