package fetch

import (
	"context"
	"testing"
	"time"
)

// TestFetcher_RejectsInvalidURL ensures validation runs before any
// network I/O.
func TestFetcher_RejectsInvalidURL(t *testing.T) {
	f := NewFetcher(5*time.Second, "semsbom", 0)

	tests := []struct {
		name string
		url  string
	}{
		{"http scheme", "http://example.com/license"},
		{"localhost", "https://localhost:8443/license"},
		{"private IP", "https://10.0.0.8/license"},
		{"local domain", "https://licenses.internal/MIT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := f.Fetch(context.Background(), tt.url); err == nil {
				t.Errorf("Fetch(%q) should have been rejected", tt.url)
			}
		})
	}
}

func TestNewFetcher_DefaultContentSize(t *testing.T) {
	f := NewFetcher(time.Second, "semsbom", 0)
	if f.maxContentSize != DefaultMaxContentSize {
		t.Errorf("maxContentSize = %d, want %d", f.maxContentSize, DefaultMaxContentSize)
	}
}
