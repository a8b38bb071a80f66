package vmath

import "math"

// Single precision wrappers over package math
// Each result is rounded to float32 so chained kernels keep f32 semantics

func Sqrt(x float32) float32  { return float32(math.Sqrt(float64(x))) }
func Sinh(x float32) float32  { return float32(math.Sinh(float64(x))) }
func Cosh(x float32) float32  { return float32(math.Cosh(float64(x))) }
func Atanh(x float32) float32 { return float32(math.Atanh(float64(x))) }

func Abs(x float32) float32 {
	return math.Float32frombits(math.Float32bits(x) &^ (1 << 31))
}

func Min(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

// NaN returns a quiet float32 NaN
func NaN() float32 {
	return float32(math.NaN())
}

// IsFinite reports whether x is neither NaN nor ±Inf
func IsFinite(x float32) bool {
	return !math.IsNaN(float64(x)) && !math.IsInf(float64(x), 0)
}

// Signum returns 1 for +0 and positive values, -1 for -0 and negative values, NaN for NaN
// Zero follows the IEEE sign bit, so an exact tie resolves to +1 unless the zero is negative
func Signum(x float32) float32 {
	if x != x {
		return x
	}
	if math.Signbit(float64(x)) {
		return -1
	}
	return 1
}
