package txmanifest

import (
	"math/big"

	"github.com/cockroachdb/apd/v3"
	"github.com/ethereum/go-ethereum/common/math"
)

// Fixed-point parameters of the two decimal kinds.
const (
	// DecimalScale is the number of fractional digits of a Decimal.
	DecimalScale = 18

	// DecimalBits is the two's complement width of a Decimal.
	DecimalBits = 192

	// PreciseDecimalScale is the number of fractional digits of a PreciseDecimal.
	PreciseDecimalScale = 36

	// PreciseDecimalBits is the two's complement width of a PreciseDecimal.
	PreciseDecimalBits = 256
)

// fixedPoint describes a signed fixed-point format.
type fixedPoint struct {
	kind  Kind
	scale int32
	bits  uint
	min   *big.Int
	max   *big.Int
}

func newFixedPoint(kind Kind, scale int32, bits uint) *fixedPoint {
	limit := new(big.Int).Lsh(big.NewInt(1), bits-1)
	return &fixedPoint{
		kind:  kind,
		scale: scale,
		bits:  bits,
		min:   new(big.Int).Neg(limit),
		max:   new(big.Int).Sub(limit, big.NewInt(1)),
	}
}

var (
	decimalFormat        = newFixedPoint(KindDecimal, DecimalScale, DecimalBits)
	preciseDecimalFormat = newFixedPoint(KindPreciseDecimal, PreciseDecimalScale, PreciseDecimalBits)
)

// parse converts a decimal string into the scaled integer representation.
func (f *fixedPoint) parse(s string) (*big.Int, error) {
	d, _, err := apd.NewFromString(s)
	if err != nil {
		return nil, &DecimalError{Kind: f.kind, Input: s, Err: err}
	}
	if d.Form != apd.Finite {
		return nil, &DecimalError{Kind: f.kind, Input: s, Err: ErrInvalidDecimal}
	}
	d.Reduce(d)

	coeff := new(big.Int).Set(d.Coeff.MathBigInt())
	shift := int64(d.Exponent) + int64(f.scale)
	if coeff.Sign() != 0 && shift < 0 {
		return nil, &DecimalError{Kind: f.kind, Input: s, Err: ErrDecimalPrecision}
	}
	if shift > 0 {
		coeff.Mul(coeff, math.BigPow(10, shift))
	}
	if d.Negative {
		coeff.Neg(coeff)
	}
	if err := f.checkRange(coeff); err != nil {
		return nil, &DecimalError{Kind: f.kind, Input: s, Err: err}
	}
	return coeff, nil
}

func (f *fixedPoint) checkRange(v *big.Int) error {
	if v.Cmp(f.min) < 0 || v.Cmp(f.max) > 0 {
		return ErrDecimalOverflow
	}
	return nil
}

// format renders a scaled integer without exponent and without trailing zeros.
func (f *fixedPoint) format(scaled *big.Int) string {
	if scaled == nil || scaled.Sign() == 0 {
		return "0"
	}
	abs := new(big.Int).Abs(scaled)
	d := apd.NewWithBigInt(new(apd.BigInt).SetMathBigInt(abs), -f.scale)
	d.Negative = scaled.Sign() < 0
	d.Reduce(d)
	return d.Text('f')
}

// Decimal is a signed fixed-point number with 18 fractional digits.
// The zero value is 0.
type Decimal struct {
	scaled *big.Int
}

// ParseDecimal parses a canonical decimal string such as "-12.5".
func ParseDecimal(s string) (Decimal, error) {
	v, err := decimalFormat.parse(s)
	if err != nil {
		return Decimal{}, err
	}
	return Decimal{scaled: v}, nil
}

// MustParseDecimal is like ParseDecimal but panics on error.
func MustParseDecimal(s string) Decimal {
	d, err := ParseDecimal(s)
	if err != nil {
		panic(err)
	}
	return d
}

// DecimalFromInt returns the Decimal equal to the integer v.
func DecimalFromInt(v int64) Decimal {
	scaled := new(big.Int).Mul(big.NewInt(v), math.BigPow(10, DecimalScale))
	return Decimal{scaled: scaled}
}

// DecimalFromScaled builds a Decimal from its raw scaled integer form.
func DecimalFromScaled(scaled *big.Int) (Decimal, error) {
	if err := decimalFormat.checkRange(scaled); err != nil {
		return Decimal{}, &DecimalError{Kind: KindDecimal, Input: scaled.String(), Err: err}
	}
	return Decimal{scaled: new(big.Int).Set(scaled)}, nil
}

// Scaled returns a copy of the value multiplied by 10^18.
func (d Decimal) Scaled() *big.Int {
	return new(big.Int).Set(bigOrZero(d.scaled))
}

// Sign returns -1, 0 or +1.
func (d Decimal) Sign() int {
	return bigOrZero(d.scaled).Sign()
}

// Cmp compares d and o.
func (d Decimal) Cmp(o Decimal) int {
	return bigOrZero(d.scaled).Cmp(bigOrZero(o.scaled))
}

// Equal reports whether d and o are the same number.
func (d Decimal) Equal(o Decimal) bool {
	return d.Cmp(o) == 0
}

// String returns the canonical decimal string.
func (d Decimal) String() string {
	return decimalFormat.format(d.scaled)
}

// MarshalText implements encoding.TextMarshaler.
func (d Decimal) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Decimal) UnmarshalText(text []byte) error {
	parsed, err := ParseDecimal(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// PreciseDecimal is a signed fixed-point number with 36 fractional digits.
// The zero value is 0.
type PreciseDecimal struct {
	scaled *big.Int
}

// ParsePreciseDecimal parses a canonical decimal string.
func ParsePreciseDecimal(s string) (PreciseDecimal, error) {
	v, err := preciseDecimalFormat.parse(s)
	if err != nil {
		return PreciseDecimal{}, err
	}
	return PreciseDecimal{scaled: v}, nil
}

// MustParsePreciseDecimal is like ParsePreciseDecimal but panics on error.
func MustParsePreciseDecimal(s string) PreciseDecimal {
	d, err := ParsePreciseDecimal(s)
	if err != nil {
		panic(err)
	}
	return d
}

// PreciseDecimalFromScaled builds a PreciseDecimal from its raw scaled integer form.
func PreciseDecimalFromScaled(scaled *big.Int) (PreciseDecimal, error) {
	if err := preciseDecimalFormat.checkRange(scaled); err != nil {
		return PreciseDecimal{}, &DecimalError{Kind: KindPreciseDecimal, Input: scaled.String(), Err: err}
	}
	return PreciseDecimal{scaled: new(big.Int).Set(scaled)}, nil
}

// Scaled returns a copy of the value multiplied by 10^36.
func (d PreciseDecimal) Scaled() *big.Int {
	return new(big.Int).Set(bigOrZero(d.scaled))
}

// Sign returns -1, 0 or +1.
func (d PreciseDecimal) Sign() int {
	return bigOrZero(d.scaled).Sign()
}

// Cmp compares d and o.
func (d PreciseDecimal) Cmp(o PreciseDecimal) int {
	return bigOrZero(d.scaled).Cmp(bigOrZero(o.scaled))
}

// Equal reports whether d and o are the same number.
func (d PreciseDecimal) Equal(o PreciseDecimal) bool {
	return d.Cmp(o) == 0
}

// String returns the canonical decimal string.
func (d PreciseDecimal) String() string {
	return preciseDecimalFormat.format(d.scaled)
}

// MarshalText implements encoding.TextMarshaler.
func (d PreciseDecimal) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *PreciseDecimal) UnmarshalText(text []byte) error {
	parsed, err := ParsePreciseDecimal(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
