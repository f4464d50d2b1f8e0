package slider

import (
	"math"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/vango-dev/vangoui/pkg/dom"
)

func TestSnap(t *testing.T) {
	tests := []struct {
		name  string
		scale Scale
		in    float64
		want  float64
	}{
		{"nearest 25 up", NewScale(0, 100, 25), 40, 50},
		{"nearest 25 down", NewScale(0, 100, 25), 37, 25},
		{"below min", NewScale(0, 100, 25), -10, 0},
		{"above max", NewScale(0, 100, 25), 180, 100},
		{"offset min", NewScale(5, 50, 10), 19, 15},
		{"max not on step", NewScale(0, 10, 3), 10, 9},
		{"decimal step", NewScale(0, 1, 0.1), 0.29, 0.3},
		{"fractional min integer step", NewScale(0.5, 10, 1), 2.4, 2.5},
		{"nan", NewScale(0, 100, 1), math.NaN(), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.scale.Snap(tt.in); got != tt.want {
				t.Errorf("Snap(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestFromPositionForty(t *testing.T) {
	s := NewScale(0, 100, 25)
	track := dom.Rect{X: 100, Y: 0, Width: 400, Height: 8}

	if got := s.FromPosition(100+0.4*400, track); got != 50 {
		t.Errorf("value at 40%% = %v, want 50", got)
	}
	if got := s.FromPosition(0, track); got != 0 {
		t.Errorf("left of track = %v, want 0", got)
	}
	if got := s.FromPosition(900, track); got != 100 {
		t.Errorf("right of track = %v, want 100", got)
	}
	if got := s.FromPosition(300, dom.Rect{}); got != 0 {
		t.Errorf("unmeasured track = %v, want min", got)
	}
}

func TestSnapProperty(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	steps := []float64{1, 2, 5, 0.5, 0.25, 7, 13}

	for i := 0; i < 5000; i++ {
		lo := math.Round(rng.Float64()*200 - 100)
		hi := lo + math.Round(rng.Float64()*300)
		s := NewScale(lo, hi, steps[rng.Intn(len(steps))])
		x := lo - 50 + rng.Float64()*(hi-lo+100)

		v := s.Snap(x)
		if v < s.Min || v > s.Max {
			t.Fatalf("Snap(%v) on %+v = %v outside [min,max]", x, s, v)
		}
		k := (v - s.Min) / s.Step
		if math.Abs(k-math.Round(k)) > 1e-6 {
			t.Fatalf("Snap(%v) on %+v = %v is not a step multiple from min", x, s, v)
		}
	}
}

func TestUpdateNoCrossover(t *testing.T) {
	s := NewScale(0, 100, 1)

	got := s.Update([]float64{20, 60}, 0, 80)
	if diff := cmp.Diff([]float64{60, 60}, got); diff != "" {
		t.Errorf("lower thumb past upper (-want +got):\n%s", diff)
	}
	got = s.Update([]float64{20, 60}, 1, 5)
	if diff := cmp.Diff([]float64{20, 20}, got); diff != "" {
		t.Errorf("upper thumb past lower (-want +got):\n%s", diff)
	}

	orig := []float64{10, 30}
	s.Update(orig, 0, 15)
	if orig[0] != 10 {
		t.Error("Update must not modify its input")
	}
	if diff := cmp.Diff([]float64{10, 30}, s.Update(orig, 5, 50)); diff != "" {
		t.Errorf("out-of-range thumb should be ignored:\n%s", diff)
	}
}

func TestUpdateNoCrossoverProperty(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	s := NewScale(0, 100, 5)
	values := []float64{25, 75}

	for i := 0; i < 5000; i++ {
		values = s.Update(values, rng.Intn(2), rng.Float64()*140-20)
		if values[0] > values[1] {
			t.Fatalf("crossover after update %d: %v", i, values)
		}
	}
}

func TestClosest(t *testing.T) {
	s := DefaultScale()
	tests := []struct {
		values []float64
		v      float64
		want   int
	}{
		{[]float64{50}, 10, 0},
		{[]float64{20, 80}, 30, 0},
		{[]float64{20, 80}, 70, 1},
		{[]float64{20, 80}, 50, 0},
		{[]float64{40, 40}, 60, 0},
	}
	for _, tt := range tests {
		if got := s.Closest(tt.values, tt.v); got != tt.want {
			t.Errorf("Closest(%v, %v) = %d, want %d", tt.values, tt.v, got, tt.want)
		}
	}
}

func TestPercent(t *testing.T) {
	s := NewScale(10, 110, 1)
	if got := s.Percent(35); got != 25 {
		t.Errorf("Percent(35) = %v, want 25", got)
	}
	if got := s.Percent(500); got != 100 {
		t.Errorf("Percent(500) = %v, want 100", got)
	}
	if got := (Scale{Min: 5, Max: 5, Step: 1}).Percent(5); got != 0 {
		t.Errorf("empty scale Percent = %v, want 0", got)
	}
}

func TestNormalize(t *testing.T) {
	s := NewScale(0, 10, 3)
	tests := []struct {
		name      string
		in        []float64
		rangeMode bool
		want      []float64
	}{
		{"single empty", nil, false, []float64{0}},
		{"single snaps", []float64{4, 9}, false, []float64{3}},
		{"range empty", nil, true, []float64{0, 9}},
		{"range one value", []float64{5}, true, []float64{6, 9}},
		{"range swapped", []float64{10, 1}, true, []float64{0, 9}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, s.Normalize(tt.in, tt.rangeMode)); diff != "" {
				t.Errorf("Normalize mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestNewScaleDefaults(t *testing.T) {
	s := NewScale(100, 0, 0)
	if s.Min != 0 || s.Max != 100 || s.Step != 1 {
		t.Errorf("NewScale = %+v", s)
	}
}
