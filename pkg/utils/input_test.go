package utils

import "testing"

func TestPointInRect(t *testing.T) {
	tests := []struct {
		name     string
		px, py   float64
		expected bool
	}{
		{"内部", 150, 25, true},
		{"左上角", 100, 20, true},
		{"右下角", 300, 40, true},
		{"左边界外", 99, 25, false},
		{"右边界外", 301, 25, false},
		{"上边界外", 150, 19, false},
		{"下边界外", 150, 41, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PointInRect(tt.px, tt.py, 100, 20, 200, 20); got != tt.expected {
				t.Errorf("PointInRect(%v, %v) = %v, want %v", tt.px, tt.py, got, tt.expected)
			}
		})
	}
}
