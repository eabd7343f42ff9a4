// Package xfl implements the XFL number format used by ledger numeric
// fields: a decimal mantissa and exponent packed into a 64-bit word.
//
// Non-zero values are stored with a mantissa in [1e15, 1e16) and an
// exponent in [-96, 80]. Zero is stored as the all-zero word.
package xfl

import (
	"errors"
	"fmt"
	"math"
	"math/big"
	"regexp"
	"strconv"
	"strings"
)

const (
	minExponent int32  = -96
	maxExponent int32  = 80
	minMantissa uint64 = 1000000000000000
	maxMantissa uint64 = 9999999999999999
)

// errors
var (
	ErrOverflow        = errors.New("xfl: value overflow")
	ErrInvalidNumber   = errors.New("xfl: invalid number")
	ErrInvalidEncoding = errors.New("xfl: invalid encoding")
)

// Value is an XFL number. The zero Value is the number zero.
type Value struct {
	negative bool
	mantissa uint64
	exponent int32
}

// Zero is the XFL number zero.
var Zero = Value{}

// New returns mantissa*10^exponent normalised to XFL precision.
// Digits beyond the 16th are truncated and values too small to be
// represented become zero.
func New(mantissa int64, exponent int) (Value, error) {
	negative := mantissa < 0
	m := uint64(mantissa)
	if negative {
		m = uint64(-mantissa)
	}
	return normalise(negative, m, int64(exponent))
}

func normalise(negative bool, mantissa uint64, exponent int64) (Value, error) {
	if mantissa == 0 {
		return Zero, nil
	}
	for mantissa > maxMantissa {
		mantissa /= 10
		exponent++
	}
	for mantissa < minMantissa {
		mantissa *= 10
		exponent--
	}
	if exponent < int64(minExponent) {
		// silent underflow
		return Zero, nil
	}
	if exponent > int64(maxExponent) {
		return Zero, fmt.Errorf("%w: %de%d", ErrOverflow, mantissa, exponent)
	}
	return Value{negative: negative, mantissa: mantissa, exponent: int32(exponent)}, nil
}

// Match fields:
// 1 = sign
// 2 = integer portion
// 3 = fraction (without '.')
// 4 = exponent (with sign)
var valueRegex = regexp.MustCompile(`^([+-]?)(\d*)(?:\.(\d*))?(?:[eE]([+-]?\d+))?$`)

// Parse accepts a decimal string such as "10", "-0.001", "1.5e-20".
func Parse(s string) (Value, error) {
	matches := valueRegex.FindStringSubmatch(strings.TrimSpace(s))
	if matches == nil || len(matches[2])+len(matches[3]) == 0 {
		return Zero, fmt.Errorf("%w: %q", ErrInvalidNumber, s)
	}
	digits := strings.TrimLeft(matches[2]+matches[3], "0")
	exponent := -int64(len(matches[3]))
	if matches[4] != "" {
		exp, err := strconv.ParseInt(matches[4], 10, 32)
		if err != nil {
			return Zero, fmt.Errorf("%w: %q", ErrInvalidNumber, s)
		}
		exponent += exp
	}
	if digits == "" {
		return Zero, nil
	}
	// keep 17 significant digits, normalise truncates the rest
	if len(digits) > 17 {
		exponent += int64(len(digits) - 17)
		digits = digits[:17]
	}
	mantissa, err := strconv.ParseUint(digits, 10, 64)
	if err != nil {
		return Zero, fmt.Errorf("%w: %q", ErrInvalidNumber, s)
	}
	return normalise(matches[1] == "-", mantissa, exponent)
}

// MustParse is like Parse but panics on error.
func MustParse(s string) Value {
	v, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return v
}

// FromFloat converts f using its shortest decimal representation,
// rounded to 16 significant digits.
func FromFloat(f float64) (Value, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Zero, fmt.Errorf("%w: %v", ErrInvalidNumber, f)
	}
	if f == 0 {
		return Zero, nil
	}
	return Parse(strconv.FormatFloat(f, 'e', 15, 64))
}

// Mantissa returns the signed mantissa.
func (v Value) Mantissa() int64 {
	if v.negative {
		return -int64(v.mantissa)
	}
	return int64(v.mantissa)
}

// Exponent returns the decimal exponent.
func (v Value) Exponent() int {
	return int(v.exponent)
}

func (v Value) IsZero() bool {
	return v.mantissa == 0
}

func (v Value) IsNegative() bool {
	return v.negative
}

// Neg returns -v.
func (v Value) Neg() Value {
	if v.IsZero() {
		return v
	}
	v.negative = !v.negative
	return v
}

// Rat returns the exact value as a big.Rat.
func (v Value) Rat() *big.Rat {
	n := new(big.Int).SetUint64(v.mantissa)
	if v.negative {
		n.Neg(n)
	}
	d := big.NewInt(1)
	if v.exponent < 0 {
		d.Exp(big.NewInt(10), big.NewInt(int64(-v.exponent)), nil)
	} else if v.exponent > 0 {
		n.Mul(n, new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(v.exponent)), nil))
	}
	return new(big.Rat).SetFrac(n, d)
}

// Float64 returns the nearest float64.
func (v Value) Float64() float64 {
	if v.IsZero() {
		return 0
	}
	f, _ := strconv.ParseFloat(v.scientific(), 64)
	return f
}

func (v Value) scientific() string {
	sign := ""
	if v.negative {
		sign = "-"
	}
	return sign + strconv.FormatUint(v.mantissa, 10) + "e" + strconv.FormatInt(int64(v.exponent), 10)
}

// Cmp returns -1, 0 or +1 as v is less than, equal to or greater than other.
func (v Value) Cmp(other Value) int {
	return v.Rat().Cmp(other.Rat())
}

func (v Value) Equal(other Value) bool {
	return v == other
}

// isScientific indicates when the value should be String()ed in scientific notation.
func (v Value) isScientific() bool {
	return v.exponent != 0 && (v.exponent < -25 || v.exponent > -5)
}

// String formats v as a plain decimal where practical, otherwise as
// mantissa and exponent with trailing zeros folded into the exponent.
func (v Value) String() string {
	if v.IsZero() {
		return "0"
	}
	if v.isScientific() {
		digits := strconv.FormatUint(v.mantissa, 10)
		trimmed := strings.TrimRight(digits, "0")
		exponent := int64(v.exponent) + int64(len(digits)-len(trimmed))
		if exponent == 0 {
			return v.sign() + trimmed
		}
		return v.sign() + trimmed + "e" + strconv.FormatInt(exponent, 10)
	}
	rat := v.Rat()
	if rat.IsInt() {
		return rat.FloatString(0)
	}
	return strings.TrimRight(rat.FloatString(int(-v.exponent)), "0")
}

func (v Value) sign() string {
	if v.negative {
		return "-"
	}
	return ""
}

func (v Value) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

func (v *Value) UnmarshalText(b []byte) error {
	parsed, err := Parse(string(b))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}
