package motion

// Keyframe is a value pinned to a frame offset
type Keyframe struct {
	Frame float64
	Value float64
}

// Track interpolates between keyframes sorted by frame
type Track []Keyframe

// Eval returns the value of the track at frame, holding the first and last
// values outside the keyed range.
func (tr Track) Eval(frame float64, ease func(float64) float64) float64 {
	if len(tr) == 0 {
		return 0
	}

	if frame <= tr[0].Frame {
		return tr[0].Value
	}
	if frame >= tr[len(tr)-1].Frame {
		return tr[len(tr)-1].Value
	}

	for i := 0; i < len(tr)-1; i++ {
		a, b := tr[i], tr[i+1]
		if frame >= a.Frame && frame < b.Frame {
			span := b.Frame - a.Frame
			if span <= 0 {
				return b.Value
			}
			t := (frame - a.Frame) / span
			if ease != nil {
				t = ease(t)
			}
			return Lerp(a.Value, b.Value, t)
		}
	}
	return tr[len(tr)-1].Value
}

// Interpolate maps x from [inMin, inMax] to [outMin, outMax], clamping at the edges
func Interpolate(x, inMin, inMax, outMin, outMax float64) float64 {
	if inMax == inMin {
		return outMax
	}
	t := Clamp01((x - inMin) / (inMax - inMin))
	return Lerp(outMin, outMax, t)
}

// Lerp performs linear interpolation between a and b
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Clamp01 clamps x in [0,1]
func Clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

// EaseInOutCubic applies smooth easing
func EaseInOutCubic(t float64) float64 {
	t = Clamp01(t)
	if t < 0.5 {
		return 4 * t * t * t
	}
	return 1 - pow(-2*t+2, 3)/2
}

// pow calculates x^n
func pow(x float64, n int) float64 {
	result := 1.0
	for i := 0; i < n; i++ {
		result *= x
	}
	return result
}
