// Package mathx holds the scalar helpers shared by layout and simulation.
package mathx

// MapRange linearly maps v from [inMin,inMax] to [outMin,outMax]. The result
// is not clamped.
func MapRange(v, inMin, inMax, outMin, outMax float64) float64 {
	if inMax == inMin {
		return outMin
	}
	return Lerp(outMin, outMax, (v-inMin)/(inMax-inMin))
}

// Lerp interpolates between a and b; t=0 returns a, t=1 returns b.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// EaseOutQuad is the quadratic ease-out curve f(t) = 1 - (1-t)².
func EaseOutQuad(t float64) float64 {
	return 1 - (1-t)*(1-t)
}

func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func Clamp01(v float64) float64 {
	return Clamp(v, 0, 1)
}
