package palette

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNewRamp_Size(t *testing.T) {
	r, err := NewRamp(DefaultAnchors)
	if err != nil {
		t.Fatal(err)
	}
	if len(r) != 1001 {
		t.Fatalf("ramp has %d entries, want 1001", len(r))
	}
}

func TestNewRamp_AnchorPositions(t *testing.T) {
	r := MustRamp(DefaultAnchors)
	// Five anchors sit at indices 0, 250, 500, 750, 1000.
	for k, anchor := range DefaultAnchors {
		idx := k * 250
		if !colorsEqual(r[idx], anchor, colorEpsilon) {
			t.Errorf("ramp[%d] = %v, want anchor %d = %v", idx, r[idx], k, anchor)
		}
	}
}

func TestNewRamp_TwoAnchorsInterpolate(t *testing.T) {
	r := MustRamp(Palette{Black, White})
	if !colorsEqual(r[rampMid], RGB(0.5, 0.5, 0.5), colorEpsilon) {
		t.Errorf("midpoint of black-white ramp = %v, want mid gray", r[rampMid])
	}
	if !colorsEqual(r[0], Black, colorEpsilon) || !colorsEqual(r[1000], White, colorEpsilon) {
		t.Errorf("ramp endpoints = %v, %v, want black, white", r[0], r[1000])
	}
}

func TestNewRamp_TooFewAnchors(t *testing.T) {
	if _, err := NewRamp(Palette{Red}); err == nil {
		t.Error("NewRamp with one anchor succeeded, want error")
	}
	if _, err := NewRamp(nil); err == nil {
		t.Error("NewRamp with no anchors succeeded, want error")
	}
}

func TestMapValues_Scenario(t *testing.T) {
	r := MustRamp(DefaultAnchors)
	got, err := r.MapValues([]float64{0, 50, 100}, WithMin(0), WithMax(100))
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 3 {
		t.Fatalf("got %d colors, want 3", len(got))
	}
	if got[0] != r[0] {
		t.Errorf("low end = %v, want ramp[0] = %v", got[0], r[0])
	}
	if got[1] != r[rampMid] {
		t.Errorf("middle = %v, want ramp[500] = %v", got[1], r[rampMid])
	}
	if got[2] != r[1000] {
		t.Errorf("high end = %v, want ramp[1000] = %v", got[2], r[1000])
	}
	if got[0] == got[1] || got[1] == got[2] || got[0] == got[2] {
		t.Error("scenario colors are not distinct")
	}
}

func TestMapValues_Monotonic(t *testing.T) {
	r := MustRamp(Palette{Black, White})
	x := []float64{10, 20, 30, 55, 55.1, 80, 99}
	got, err := r.MapValues(x, WithMin(0), WithMax(100))
	if err != nil {
		t.Fatal(err)
	}
	// Black-to-white ramp: larger values may never map to a darker color.
	for i := 1; i < len(got); i++ {
		if got[i].R < got[i-1].R {
			t.Errorf("x=%v darker than x=%v (%v < %v)", x[i], x[i-1], got[i].R, got[i-1].R)
		}
	}
}

func TestMapValues_MissingPropagation(t *testing.T) {
	r := MustRamp(DefaultAnchors)
	nan := math.NaN()

	tests := []struct {
		name    string
		x       []float64
		opts    []MapOption
		missing []int
		want    Color
	}{
		{"default missing color", []float64{1, nan, 3}, nil, []int{1}, DefaultMissing},
		{"custom missing color", []float64{nan, 2, 3}, []MapOption{WithMissingColor(Magenta)}, []int{0}, Magenta},
		{"all missing", []float64{nan, nan}, nil, []int{0, 1}, DefaultMissing},
		{"missing among equal values", []float64{5, nan, 5, 5}, nil, []int{1}, DefaultMissing},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := r.MapValues(tt.x, tt.opts...)
			if err != nil {
				t.Fatal(err)
			}
			for _, i := range tt.missing {
				if got[i] != tt.want {
					t.Errorf("entry %d = %v, want missing color %v", i, got[i], tt.want)
				}
			}
		})
	}
}

func TestMapValues_Degenerate(t *testing.T) {
	r := MustRamp(DefaultAnchors)

	t.Run("zero variance uses midpoint", func(t *testing.T) {
		got, err := r.MapValues([]float64{5, 5, 5})
		if err != nil {
			t.Fatal(err)
		}
		want := []Color{r[rampMid], r[rampMid], r[rampMid]}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("MapValues([5,5,5]) mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("single entry uses midpoint", func(t *testing.T) {
		got, err := r.MapValues([]float64{42})
		if err != nil {
			t.Fatal(err)
		}
		if got[0] != r[rampMid] {
			t.Errorf("single entry = %v, want midpoint %v", got[0], r[rampMid])
		}
	})

	t.Run("all at explicit min uses low end", func(t *testing.T) {
		got, err := r.MapValues([]float64{5, 5}, WithMin(5), WithMax(10))
		if err != nil {
			t.Fatal(err)
		}
		for i, c := range got {
			if c != r[0] {
				t.Errorf("entry %d = %v, want ramp[0]", i, c)
			}
		}
	})

	t.Run("explicit min >= max fails", func(t *testing.T) {
		_, err := r.MapValues([]float64{1, 2, 3}, WithMin(10), WithMax(5))
		if !errors.Is(err, ErrDegenerateRange) {
			t.Errorf("error = %v, want ErrDegenerateRange", err)
		}
	})
}

func TestMapValues_ClampsOutOfRange(t *testing.T) {
	r := MustRamp(DefaultAnchors)
	got, err := r.MapValues([]float64{-100, 0, 100, 1000}, WithMin(0), WithMax(100))
	if err != nil {
		t.Fatal(err)
	}
	if got[0] != r[0] {
		t.Errorf("below-min entry = %v, want ramp[0]", got[0])
	}
	if got[3] != r[1000] {
		t.Errorf("above-max entry = %v, want ramp[1000]", got[3])
	}
}

func TestMapValues_PreservesOrder(t *testing.T) {
	r := MustRamp(Palette{Black, White})
	x := []float64{90, 10, 50}
	got, err := r.MapValues(x, WithMin(0), WithMax(100))
	if err != nil {
		t.Fatal(err)
	}
	if !(got[1].R < got[2].R && got[2].R < got[0].R) {
		t.Errorf("output order does not track input order: %v", got)
	}
}
