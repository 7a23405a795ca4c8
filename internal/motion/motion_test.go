package motion

import (
	"math"
	"testing"
)

var dampedConfigs = []SpringConfig{
	{Damping: 20, Stiffness: 100, Mass: 1}, // critical
	{Damping: 26, Stiffness: 120, Mass: 1},
	{Damping: 30, Stiffness: 90, Mass: 1},
}

func TestSpringClampsBeforeStart(t *testing.T) {
	for _, c := range dampedConfigs {
		for _, f := range []float64{-100, -1, 0} {
			if p := Spring(f, 30, c); p != 0 {
				t.Errorf("Spring(%v) = %v, expected 0", f, p)
			}
		}
	}
}

func TestSpringMonotonicAndSettles(t *testing.T) {
	for _, c := range dampedConfigs {
		prev := 0.0
		settled := false
		for f := 0; f <= 120; f++ {
			p := Spring(float64(f), 30, c)
			if p < prev {
				t.Fatalf("progress decreased at frame %d: %v < %v (%+v)", f, p, prev, c)
			}
			if p > 1 {
				t.Fatalf("damped spring overshot at frame %d: %v", f, p)
			}
			if settled && p != 1 {
				t.Fatalf("progress left rest state at frame %d", f)
			}
			if p == 1 {
				settled = true
			}
			prev = p
		}
		if !settled {
			t.Errorf("spring %+v did not settle within 120 frames", c)
		}
	}
}

func TestSettleFrame(t *testing.T) {
	c := SpringConfig{Damping: 20, Stiffness: 100, Mass: 1}
	f := SettleFrame(30, c, 200)
	if f <= 0 || f >= 200 {
		t.Fatalf("unexpected settle frame %d", f)
	}
	if Spring(float64(f-1), 30, c) == 1 {
		t.Errorf("frame %d is already settled", f-1)
	}
}

func TestUnderdampedOvershoots(t *testing.T) {
	c := SpringConfig{Damping: 6, Stiffness: 200, Mass: 1}
	peak := 0.0
	for f := 0; f < 60; f++ {
		peak = math.Max(peak, Spring(float64(f), 30, c))
	}
	if peak <= 1 {
		t.Errorf("expected natural overshoot for underdamped spring, peak %v", peak)
	}
}

func TestEntrance(t *testing.T) {
	c := Config{Spring: SpringConfig{Damping: 20, Stiffness: 100, Mass: 1}, SlideOffset: 40}

	s := Entrance(0, 30, 2, 0, c)
	if s.Opacity != 0 || s.TranslateY != 40 {
		t.Errorf("expected hidden state before delay, got %+v", s)
	}

	// index 2 starts at 3 + 16 = 19
	if d := Delay(2, 0); d != 19 {
		t.Errorf("expected delay 19, got %v", d)
	}
	if d := Delay(1, Stagger(3, 5)); d != 26 {
		t.Errorf("expected delay 26, got %v", d)
	}

	s = Entrance(300, 30, 2, 0, c)
	if s.Opacity != 1 || s.TranslateY != 0 {
		t.Errorf("expected rest state long after delay, got %+v", s)
	}
}

func TestInterpolateClamps(t *testing.T) {
	tests := []struct {
		x, want float64
	}{
		{-1, 10},
		{0, 10},
		{0.5, 5},
		{1, 0},
		{2, 0},
	}
	for _, tt := range tests {
		if got := Interpolate(tt.x, 0, 1, 10, 0); got != tt.want {
			t.Errorf("Interpolate(%v) = %v, want %v", tt.x, got, tt.want)
		}
	}
}

func TestTrackEval(t *testing.T) {
	tr := Track{{Frame: 0, Value: 0}, {Frame: 10, Value: 1}, {Frame: 20, Value: 0.5}}

	tests := []struct {
		frame, want float64
	}{
		{-5, 0},
		{0, 0},
		{5, 0.5},
		{10, 1},
		{15, 0.75},
		{25, 0.5},
	}
	for _, tt := range tests {
		if got := tr.Eval(tt.frame, nil); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("Eval(%v) = %v, want %v", tt.frame, got, tt.want)
		}
	}

	if got := tr.Eval(5, EaseInOutCubic); math.Abs(got-0.5) > 1e-9 {
		t.Errorf("eased midpoint should stay at 0.5, got %v", got)
	}
	if Track(nil).Eval(3, nil) != 0 {
		t.Error("empty track should evaluate to 0")
	}
}
