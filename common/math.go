package common

import "math"

// Lerp moves from a towards b by the fraction t.
func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ClampInt limits v to [lo, hi].
func ClampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Sign returns -1, 0 or 1.
func Sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

// WrapDegrees maps any integer angle into [0, 360).
func WrapDegrees(deg int) int {
	deg %= 360
	if deg < 0 {
		deg += 360
	}
	return deg
}

// SignedDegrees maps an angle into (-180, 180].
func SignedDegrees(deg int) int {
	deg = WrapDegrees(deg)
	if deg > 180 {
		deg -= 360
	}
	return deg
}

// SinDeg and CosDeg take degrees. Exact values are returned on the axes so
// that flat ground yields exactly zero vertical speed.
func SinDeg(deg int) float64 {
	switch WrapDegrees(deg) {
	case 0, 180:
		return 0
	case 90:
		return 1
	case 270:
		return -1
	}
	return math.Sin(float64(deg) * math.Pi / 180)
}

func CosDeg(deg int) float64 {
	switch WrapDegrees(deg) {
	case 90, 270:
		return 0
	case 0:
		return 1
	case 180:
		return -1
	}
	return math.Cos(float64(deg) * math.Pi / 180)
}

// DegreesOf returns atan2(y, x) in whole degrees within [0, 360).
func DegreesOf(y, x float64) int {
	return WrapDegrees(int(math.Round(math.Atan2(y, x) * 180 / math.Pi)))
}
