// pkg/command/numeric.go
package command

// Clamp bounds v to [lo, hi]. Encoders clamp out-of-range numeric input to
// the nearest protocol boundary instead of rejecting it.
func Clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
