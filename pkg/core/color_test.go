package core

import (
	"image/color"
	"testing"
)

func TestNewColor_Clamps(t *testing.T) {
	tests := []struct {
		name     string
		r, g, b  int
		expected Color
	}{
		{"in range", 10, 20, 30, Color{10, 20, 30}},
		{"over", 300, 256, 1000, Color{255, 255, 255}},
		{"under", -1, -255, 0, Color{0, 0, 0}},
		{"mixed", -5, 128, 999, Color{0, 128, 255}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewColor(tt.r, tt.g, tt.b)
			if c != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, c)
			}
		})
	}
}

func TestColor_ClampIdempotent(t *testing.T) {
	raw := []Color{{-10, 500, 7}, {0, 0, 0}, {255, 255, 255}, {256, -1, 128}}

	for _, c := range raw {
		once := c.Clamp()
		twice := once.Clamp()
		if once != twice {
			t.Errorf("Clamp not idempotent for %v: %v then %v", c, once, twice)
		}
	}
}

func TestColor_Arithmetic(t *testing.T) {
	red := NewColor(255, 0, 0)
	grey := NewColor(100, 100, 100)

	tests := []struct {
		name     string
		got      Color
		expected Color
	}{
		{"add saturates", red.Add(grey), Color{255, 100, 100}},
		{"subtract floors at zero", grey.Subtract(red), Color{0, 100, 100}},
		{"scale half", grey.Scale(0.5), Color{50, 50, 50}},
		{"scale rounds", NewColor(3, 5, 7).Scale(0.5), Color{2, 3, 4}},
		{"scale negative", grey.Scale(-2), Color{0, 0, 0}},
		{"scale large", grey.Scale(10), Color{255, 255, 255}},
		{"multiply by white", grey.Multiply(NewColor(255, 255, 255)), grey},
		{"multiply by black", grey.Multiply(Black), Black},
		{"multiply modulates", red.Multiply(NewColor(51, 255, 255)), Color{51, 0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, tt.got)
			}
		})
	}
}

func TestColor_RGBA(t *testing.T) {
	c := NewColor(1, 2, 3)
	expected := color.RGBA{R: 1, G: 2, B: 3, A: 255}
	if c.RGBA() != expected {
		t.Errorf("Expected %v, got %v", expected, c.RGBA())
	}
}
