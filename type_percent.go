package wealth

import "fmt"

// Percent is a rate expressed in percent: 13.65 means 13.65%.
type Percent float64

// Ratio converts a fraction (0.1) to a Percent (10%).
func Ratio(fraction float64) Percent { return Percent(fraction * 100) }

// Fraction returns the rate as a fraction: 13.65% is 0.1365.
func (p Percent) Fraction() float64 { return float64(p) / 100 }

func (p Percent) Equal(q Percent) bool {
	// it has to be compared with some precision
	const precision = 0.0001
	diff := p - q
	if diff < 0 {
		diff = -diff
	}
	return diff < precision
}

func (p Percent) String() string {
	return fmt.Sprintf("%.2f%%", p)
}

func (p Percent) SignedString() string {
	res := fmt.Sprintf("%+.2f%%", p)
	if res == "+0.00%" {
		return "-"
	}
	return res
}

// FormatRatio formats an optional fraction as a percent, "-" when undefined.
func FormatRatio(v Value) string {
	f, ok := v.Float()
	if !ok {
		return "-"
	}
	return Ratio(f).String()
}
