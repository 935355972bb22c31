package length

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ToBaseUnits sums values in sixty-fourths of an inch.
func ToBaseUnits(values []Value) float64 {
	sum := 0.0
	for _, v := range values {
		sum += v.Unit().Multiplier() * v.Value()
	}
	return sum
}

// DisplayMeters renders the sum of values in metres with three decimals,
// e.g. "0.457m".
func DisplayMeters(values []Value) string {
	meters := ToBaseUnits(values) / Metres.Multiplier()
	return fmt.Sprintf("%.3fm", meters)
}

// DisplayMillimeters renders the sum of values in millimetres with three
// decimals, e.g. "457.200mm".
func DisplayMillimeters(values []Value) string {
	millimeters := ToBaseUnits(values) / Millimetres.Multiplier()
	return fmt.Sprintf("%.3fmm", millimeters)
}

// DisplayImperial renders the sum of values as feet, inches and a fraction
// of an inch, e.g. `1' 6 1/2"`. Zero parts are left out; a zero total
// renders as the empty string.
func DisplayImperial(values []Value) string {
	base := ToBaseUnits(values)

	feetSize := Feet.Multiplier()
	inchSize := Inches.Multiplier()

	feet := math.Floor(base / feetSize)
	remaining := base - feet*feetSize

	inches := math.Floor(remaining / inchSize)
	remainingFractional := remaining - inches*inchSize

	numerator, denominator := SimplifyToPowerOfTwo(int(remainingFractional), 64)
	hasFraction := numerator > 0 && denominator > 0

	var b strings.Builder
	if feet > 0 {
		b.WriteString(formatWhole(feet))
		b.WriteString("' ")
	}
	if inches > 0 {
		b.WriteString(formatWhole(inches))
		if hasFraction {
			b.WriteString(" ")
		}
	}
	if hasFraction {
		fmt.Fprintf(&b, "%d/%d", numerator, denominator)
	}
	if inches > 0 || hasFraction {
		b.WriteString(`"`)
	}

	return strings.TrimSpace(b.String())
}

func formatWhole(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// SimplifyToPowerOfTwo reduces numerator/denominator and keeps reducing
// while the denominator is not a power of two no larger than 64. It stops
// when no common divisor is left.
func SimplifyToPowerOfTwo(numerator, denominator int) (int, int) {
	gcd := greatestCommonDivisor(numerator, denominator)
	if gcd == 0 {
		return numerator, denominator
	}
	numerator /= gcd
	denominator /= gcd

	for denominator > 64 || denominator&(denominator-1) != 0 {
		gcd = greatestCommonDivisor(numerator, denominator)
		if gcd <= 1 {
			break
		}
		numerator /= gcd
		denominator /= gcd
	}

	return numerator, denominator
}

func greatestCommonDivisor(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	if a < 0 {
		return -a
	}
	return a
}
