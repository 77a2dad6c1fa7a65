package utils

import "testing"

func TestLerp(t *testing.T) {
	if got := Lerp(0, 10, 0.25); got != 2.5 {
		t.Errorf("Lerp = %v, want 2.5", got)
	}
	if got := Lerp(50, 400, 1); got != 400 {
		t.Errorf("Lerp at t=1 = %v, want 400", got)
	}
	if got := Lerp(50, 400, 0); got != 50 {
		t.Errorf("Lerp at t=0 = %v, want 50", got)
	}
}

func TestDistance(t *testing.T) {
	if got := Distance(0, 0, 3, 4); got != 5 {
		t.Errorf("Distance = %v, want 5", got)
	}
}

func TestWithinBox(t *testing.T) {
	tests := []struct {
		bx, by float64
		want   bool
	}{
		{100, 100, true},
		{110, 90, true},
		{110.5, 100, false},
		{100, 89, false},
	}
	for _, tt := range tests {
		if got := WithinBox(100, 100, tt.bx, tt.by, 10); got != tt.want {
			t.Errorf("WithinBox(%v,%v) = %v, want %v", tt.bx, tt.by, got, tt.want)
		}
	}
}
