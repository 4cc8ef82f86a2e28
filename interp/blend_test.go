package interp

import (
	"math"
	"testing"
)

func TestLerpEndpoints(t *testing.T) {
	cases := []struct{ a, b float64 }{
		{0, 10},
		{-3.5, 7.25},
		{1e9, -1e9},
		{0.1, 0.2},
	}
	for _, c := range cases {
		if got := Lerp(c.a, c.b, 0); got != c.a {
			t.Errorf("Lerp(%v, %v, 0) = %v", c.a, c.b, got)
		}
		if got := Lerp(c.a, c.b, 1); got != c.b {
			t.Errorf("Lerp(%v, %v, 1) = %v", c.a, c.b, got)
		}
		if got, want := Lerp(c.a, c.b, 0.5), (c.a+c.b)/2; math.Abs(got-want) > 1e-6 {
			t.Errorf("Lerp(%v, %v, 0.5) = %v, want %v", c.a, c.b, got, want)
		}
	}
}

func TestLerpAngleTakesShortArc(t *testing.T) {
	got := LerpAngle(3.0, -3.0, 0.5)
	// The short arc from 3 to -3 is ~0.283 rad through π; the long way
	// passes through 0.
	want := 3.0 + (2*math.Pi-6)/2
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("LerpAngle(3, -3, 0.5) = %v, want %v", got, want)
	}
	if math.Abs(got) < 3.0 {
		t.Fatalf("LerpAngle went the long way round: %v", got)
	}
}

func TestLerpAngleEndpoints(t *testing.T) {
	for _, c := range [][2]float64{{3, -3}, {-3, 3}, {0, math.Pi}, {0.5, 7.1}} {
		if got := LerpAngle(c[0], c[1], 0); got != c[0] {
			t.Errorf("LerpAngle(%v, %v, 0) = %v", c[0], c[1], got)
		}
		if got := LerpAngle(c[0], c[1], 1); got != c[1] {
			t.Errorf("LerpAngle(%v, %v, 1) = %v", c[0], c[1], got)
		}
	}
}

func TestLerpAngleNonFiniteSnapsToTarget(t *testing.T) {
	tests := []struct {
		name string
		a, b float64
	}{
		{"nan begin", math.NaN(), 1.25},
		{"inf begin", math.Inf(1), -0.5},
		{"neg inf begin", math.Inf(-1), 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LerpAngle(tt.a, tt.b, 0.3); got != tt.b {
				t.Fatalf("LerpAngle = %v, want %v", got, tt.b)
			}
		})
	}
}

func TestShortestArcRange(t *testing.T) {
	for d := -20.0; d <= 20.0; d += 0.37 {
		got := ShortestArc(d)
		if got <= -math.Pi || got > math.Pi {
			t.Fatalf("ShortestArc(%v) = %v out of (-π, π]", d, got)
		}
		// Same direction modulo a full turn.
		if r := math.Mod(d-got, twoPi); math.Abs(r) > 1e-9 && math.Abs(math.Abs(r)-twoPi) > 1e-9 {
			t.Fatalf("ShortestArc(%v) = %v is not congruent", d, got)
		}
	}
	if got := ShortestArc(math.Pi); got != math.Pi {
		t.Fatalf("ShortestArc(π) = %v, want π", got)
	}
}

func TestClamp01(t *testing.T) {
	cases := map[float64]float64{-1: 0, 0: 0, 0.25: 0.25, 1: 1, 7: 1}
	for in, want := range cases {
		if got := Clamp01(in); got != want {
			t.Errorf("Clamp01(%v) = %v, want %v", in, got, want)
		}
	}
	if got := Clamp01(math.NaN()); got != 0 {
		t.Errorf("Clamp01(NaN) = %v, want 0", got)
	}
}
