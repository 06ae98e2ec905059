package event

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		text     string
		expected time.Time
	}{
		{"November 22, 2025", time.Date(2025, 11, 22, 0, 0, 0, 0, time.UTC)},
		{"December 6, 2025", time.Date(2025, 12, 6, 0, 0, 0, 0, time.UTC)},
		{"Dec 06, 2025", time.Date(2025, 12, 6, 0, 0, 0, 0, time.UTC)},
		{"11/22/2025", time.Date(2025, 11, 22, 0, 0, 0, 0, time.UTC)},
		{"TBA", time.Time{}},
		{"", time.Time{}},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got := ParseDate(tt.text)
			if !got.Equal(tt.expected) {
				t.Errorf("ParseDate(%q) = %v, expected %v", tt.text, got, tt.expected)
			}
		})
	}
}
