// core/model/rounding.go
package model

import "math"

// Rounding controls decimal rounding of derived quantities (scoring matrix
// entries, percentile branch lengths).
type Rounding struct {
	Enabled bool
	Digits  int
}

// RoundNone disables rounding.
func RoundNone() Rounding { return Rounding{} }

// RoundZero rounds to the closest integer.
func RoundZero() Rounding { return Rounding{Enabled: true, Digits: 0} }

// RoundFour rounds to four decimal places.
func RoundFour() Rounding { return Rounding{Enabled: true, Digits: 4} }

// Apply rounds x to the configured precision.
func (r Rounding) Apply(x float64) float64 {
	if !r.Enabled {
		return x
	}
	f := math.Pow(10, float64(r.Digits))
	return math.Round(x*f) / f
}

// ParseRounding maps a CLI spelling to a Rounding.
func ParseRounding(s string) (Rounding, bool) {
	switch s {
	case "", "none":
		return RoundNone(), true
	case "zero":
		return RoundZero(), true
	case "four":
		return RoundFour(), true
	}
	return Rounding{}, false
}
