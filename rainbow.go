package palette

// Saturation and value cycle tables for Rainbow. The cycle lengths are
// coprime so the (saturation, value) pair repeats only every 12 hues.
var (
	rainbowSat = [...]float64{1, 0.7, 0.85, 0.55}
	rainbowVal = [...]float64{1, 0.85, 0.7}
)

// Rainbow returns n colors with evenly spaced hues. Saturation and
// value each cycle through a short fixed table, so hue neighbors also
// differ in tone and stay tellable apart in dense plots.
func Rainbow(n int) Palette {
	if n <= 0 {
		return nil
	}
	p := make(Palette, n)
	for i := range p {
		h := float64(i) / float64(n)
		p[i] = HSVToRGB(h, rainbowSat[i%len(rainbowSat)], rainbowVal[i%len(rainbowVal)])
	}
	return p
}
