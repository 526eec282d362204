package palette

import (
	"errors"
	"testing"
)

func TestSum(t *testing.T) {
	tests := []struct {
		name string
		a, b Color
		want Color
	}{
		{"red plus blue", Red, Blue, Magenta},
		{"saturates at white", White, White, White},
		{"partial overflow", RGB(0.8, 0.2, 0.5), RGB(0.5, 0.1, 0.2), RGB(1, 0.3, 0.7)},
		{"zero identity", RGB(0.3, 0.6, 0.9), Black, RGB(0.3, 0.6, 0.9)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Sum(tt.a, tt.b)
			if !colorsEqual(got, tt.want, colorEpsilon) {
				t.Errorf("Sum(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestSum_ChannelsStayClamped(t *testing.T) {
	for _, a := range []Color{Black, White, Red, RGB(0.9, 0.9, 0.1)} {
		for _, b := range []Color{Black, White, Cyan, RGB(0.6, 0.6, 0.6)} {
			c := Sum(a, b)
			for _, ch := range []float64{c.R, c.G, c.B} {
				if ch < 0 || ch > 1 {
					t.Fatalf("Sum(%v, %v) channel %v out of [0,1]", a, b, ch)
				}
			}
		}
	}
}

func TestSum_ScenarioHex(t *testing.T) {
	a := MustParse("#FF0000")
	b := MustParse("#0000FF")
	if got := Sum(a, b).Hex(); got != "#FF00FF" {
		t.Errorf("Sum(#FF0000, #0000FF).Hex() = %q, want #FF00FF", got)
	}
}

func TestMean(t *testing.T) {
	t.Run("single color identity", func(t *testing.T) {
		c := RGB(0.12, 0.55, 0.98)
		got, err := Mean([]Color{c})
		if err != nil {
			t.Fatal(err)
		}
		if got != c {
			t.Errorf("Mean([c]) = %v, want %v", got, c)
		}
	})

	t.Run("empty input", func(t *testing.T) {
		_, err := Mean(nil)
		if !errors.Is(err, ErrEmptyInput) {
			t.Errorf("Mean(nil) error = %v, want ErrEmptyInput", err)
		}
	})

	t.Run("three colors", func(t *testing.T) {
		got, err := Mean([]Color{Red, Green, Blue})
		if err != nil {
			t.Fatal(err)
		}
		want := RGB(1.0/3, 1.0/3, 1.0/3)
		if !colorsEqual(got, want, colorEpsilon) {
			t.Errorf("Mean(R,G,B) = %v, want %v", got, want)
		}
	})
}

// TestMean_RoundingConvention pins the rounding rule: channels stay in
// float form and Hex rounds half away from zero, so the mean of white
// and black formats as #808080, not #7F7F7F.
func TestMean_RoundingConvention(t *testing.T) {
	got, err := Mean([]Color{White, Black})
	if err != nil {
		t.Fatal(err)
	}
	if hex := got.Hex(); hex != "#808080" {
		t.Errorf("Mean(white, black).Hex() = %q, want #808080", hex)
	}
}
