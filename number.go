package json

import "math"

// Number conversion per spec §4.2: a pure function turning the three
// digit slices of a number literal (integer, fraction, exponent) into
// either an int64 or a float64, ported from original_source/Json.c's
// Json_atoi/_num_convert chunked base-10 accumulator (groups of up to
// 19 digits, multiplying by 10^19 between groups).
//
// Two details diverge deliberately from the captured C source; both
// are recorded in DESIGN.md:
//   - exponent sign: no sign or '+' multiplies, '-' divides, matching
//     the RFC-consistent testable property in spec §8 ("1e-2 == 0.01").
//   - fraction length: computed as the full digit count of the
//     fraction slice. The captured Json.c computes it as one digit
//     short (parse_number's "pos - frace - 1"), which would turn
//     "0.01" into 0.0 — contradicting spec §8's pinned scenario, so it
//     is not reproduced here.

// power10int[k] = 10^k for k in [0,19], used to scale a fraction's
// digit value down by its digit count, and to combine a final partial
// chunk when accumulating an integer part longer than 19 digits.
var power10int = [20]uint64{
	1, 10, 100, 1000, 10000, 100000, 1000000, 10000000, 100000000,
	1000000000, 10000000000, 100000000000, 1000000000000, 10000000000000,
	100000000000000, 1000000000000000, 10000000000000000,
	100000000000000000, 1000000000000000000, 10000000000000000000,
}

// power10float[k] = 1e+k for k in [0,308]; the exponent is saturated to
// this range per spec §8 ("Exponent with magnitude 309+ saturates at
// 308").
var power10float = buildPower10Float()

func buildPower10Float() [309]float64 {
	var t [309]float64
	v := 1.0
	for i := range t {
		t[i] = v
		v *= 10
	}
	return t
}

// negInt64Abs is the magnitude of math.MinInt64, i.e. 2^63.
const negInt64Abs = uint64(math.MaxInt64) + 1

// atoiChunk parses up to 19 ASCII decimal digits. The caller guarantees
// s holds only '0'-'9' and len(s) <= 19, so the result always fits in a
// uint64.
func atoiChunk(s string) uint64 {
	var v uint64
	for i := 0; i < len(s); i++ {
		v = v*10 + uint64(s[i]-'0')
	}
	return v
}

// accumulateDigits turns an arbitrarily long run of decimal digits into
// a float64, processing 19-digit groups and multiplying by 10^19
// between them, mirroring Json_atoi's unrolled accumulator.
func accumulateDigits(digits string) float64 {
	var acc float64
	for len(digits) > 19 {
		acc = acc*1e19 + float64(atoiChunk(digits[:19]))
		digits = digits[19:]
	}
	if len(digits) > 0 {
		acc = acc*float64(power10int[len(digits)]) + float64(atoiChunk(digits))
	}
	return acc
}

// convertNumber turns the raw triple into either an Integer or a
// Number value. It never allocates.
func convertNumber(lit numLit) (typ Type, i int64, r float64) {
	intPart := lit.intPart
	neg := false
	if len(intPart) > 0 && (intPart[0] == '-' || intPart[0] == '+') {
		neg = intPart[0] == '-'
		intPart = intPart[1:]
	}

	if len(lit.fracPart) == 0 && len(lit.expPart) == 0 && len(intPart) <= 19 {
		v := atoiChunk(intPart)
		if !neg && v <= uint64(math.MaxInt64) {
			return Integer, int64(v), 0
		}
		if neg {
			if v == negInt64Abs {
				return Integer, math.MinInt64, 0
			}
			if v < negInt64Abs {
				return Integer, -int64(v), 0
			}
		}
	}

	acc := accumulateDigits(intPart)

	if flen := len(lit.fracPart); flen > 0 {
		frac := lit.fracPart
		divExp := flen
		if len(frac) > 19 {
			frac = frac[:19]
			divExp = 19
		}
		acc += float64(atoiChunk(frac)) / float64(power10int[divExp])
	}

	if len(lit.expPart) > 0 {
		exp := lit.expPart
		expNeg := false
		if exp[0] == '-' || exp[0] == '+' {
			expNeg = exp[0] == '-'
			exp = exp[1:]
		}
		for len(exp) > 1 && exp[0] == '0' {
			exp = exp[1:]
		}
		power := 0
		if len(exp) > 3 {
			power = 1000 // definitely saturates; avoids overflow in atoiChunk
		} else if len(exp) > 0 {
			power = int(atoiChunk(exp))
		}
		if power > 308 {
			power = 308
		}
		expv := power10float[power]
		if expNeg {
			acc /= expv
		} else {
			acc *= expv
		}
	}

	if neg {
		acc = -acc
	}
	return Number, 0, acc
}
