package txmanifest

import (
	"math/big"

	"github.com/holiman/uint256"
)

// Value represents any argument that can appear in a manifest instruction.
// This is a sealed interface - only types within this package can implement it.
type Value interface {
	// isValue is unexported to seal the interface.
	isValue()

	// Kind returns the variant of this value without inspecting its contents.
	Kind() Kind
}

// BoolValue is a boolean.
type BoolValue struct{ Value bool }

// I8Value is a signed 8-bit integer.
type I8Value struct{ Value int8 }

// I16Value is a signed 16-bit integer.
type I16Value struct{ Value int16 }

// I32Value is a signed 32-bit integer.
type I32Value struct{ Value int32 }

// I64Value is a signed 64-bit integer.
type I64Value struct{ Value int64 }

// I128Value is a signed 128-bit integer. A nil Value is zero.
type I128Value struct{ Value *big.Int }

// U8Value is an unsigned 8-bit integer.
type U8Value struct{ Value uint8 }

// U16Value is an unsigned 16-bit integer.
type U16Value struct{ Value uint16 }

// U32Value is an unsigned 32-bit integer.
type U32Value struct{ Value uint32 }

// U64Value is an unsigned 64-bit integer.
type U64Value struct{ Value uint64 }

// U128Value is an unsigned 128-bit integer held in the low half of a uint256.
type U128Value struct{ Value uint256.Int }

// StringValue is a UTF-8 string.
type StringValue struct{ Value string }

// EnumValue is a discriminated variant with an ordered list of fields.
type EnumValue struct {
	Discriminator uint8
	Fields        []Value
}

// ArrayValue is a homogeneous list. Every element must be of ElementKind.
type ArrayValue struct {
	ElementKind Kind
	Elements    []Value
}

// TupleValue is a heterogeneous ordered list of fields.
type TupleValue struct {
	Fields []Value
}

// MapEntry is a single key/value pair of a MapValue.
type MapEntry struct {
	Key   Value
	Value Value
}

// MapValue is an ordered list of entries with declared key and value kinds.
type MapValue struct {
	KeyKind   Kind
	ValueKind Kind
	Entries   []MapEntry
}

func (*BoolValue) isValue()   {}
func (*I8Value) isValue()     {}
func (*I16Value) isValue()    {}
func (*I32Value) isValue()    {}
func (*I64Value) isValue()    {}
func (*I128Value) isValue()   {}
func (*U8Value) isValue()     {}
func (*U16Value) isValue()    {}
func (*U32Value) isValue()    {}
func (*U64Value) isValue()    {}
func (*U128Value) isValue()   {}
func (*StringValue) isValue() {}
func (*EnumValue) isValue()   {}
func (*ArrayValue) isValue()  {}
func (*TupleValue) isValue()  {}
func (*MapValue) isValue()    {}

func (*BoolValue) Kind() Kind   { return KindBool }
func (*I8Value) Kind() Kind     { return KindI8 }
func (*I16Value) Kind() Kind    { return KindI16 }
func (*I32Value) Kind() Kind    { return KindI32 }
func (*I64Value) Kind() Kind    { return KindI64 }
func (*I128Value) Kind() Kind   { return KindI128 }
func (*U8Value) Kind() Kind     { return KindU8 }
func (*U16Value) Kind() Kind    { return KindU16 }
func (*U32Value) Kind() Kind    { return KindU32 }
func (*U64Value) Kind() Kind    { return KindU64 }
func (*U128Value) Kind() Kind   { return KindU128 }
func (*StringValue) Kind() Kind { return KindString }
func (*EnumValue) Kind() Kind   { return KindEnum }
func (*ArrayValue) Kind() Kind  { return KindArray }
func (*TupleValue) Kind() Kind  { return KindTuple }
func (*MapValue) Kind() Kind    { return KindMap }

var (
	i128Min = new(big.Int).Neg(new(big.Int).Lsh(big.NewInt(1), 127))
	i128Max = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 127), big.NewInt(1))
)

// Bool creates a Bool value.
func Bool(v bool) *BoolValue { return &BoolValue{Value: v} }

// I8 creates an I8 value.
func I8(v int8) *I8Value { return &I8Value{Value: v} }

// I16 creates an I16 value.
func I16(v int16) *I16Value { return &I16Value{Value: v} }

// I32 creates an I32 value.
func I32(v int32) *I32Value { return &I32Value{Value: v} }

// I64 creates an I64 value.
func I64(v int64) *I64Value { return &I64Value{Value: v} }

// U8 creates a U8 value.
func U8(v uint8) *U8Value { return &U8Value{Value: v} }

// U16 creates a U16 value.
func U16(v uint16) *U16Value { return &U16Value{Value: v} }

// U32 creates a U32 value.
func U32(v uint32) *U32Value { return &U32Value{Value: v} }

// U64 creates a U64 value.
func U64(v uint64) *U64Value { return &U64Value{Value: v} }

// String creates a String value.
func String(v string) *StringValue { return &StringValue{Value: v} }

// NewI128 creates an I128 value, failing if v does not fit in 128 signed bits.
func NewI128(v *big.Int) (*I128Value, error) {
	if v.Cmp(i128Min) < 0 || v.Cmp(i128Max) > 0 {
		return nil, &OutOfRangeError{Kind: KindI128, Value: v.String()}
	}
	return &I128Value{Value: new(big.Int).Set(v)}, nil
}

// MustI128 is like NewI128 but panics on error.
func MustI128(v *big.Int) *I128Value {
	out, err := NewI128(v)
	if err != nil {
		panic(err)
	}
	return out
}

// NewU128 creates a U128 value, failing if v does not fit in 128 bits.
func NewU128(v *uint256.Int) (*U128Value, error) {
	if v.BitLen() > 128 {
		return nil, &OutOfRangeError{Kind: KindU128, Value: v.Dec()}
	}
	return &U128Value{Value: *v}, nil
}

// U128 creates a U128 value from a uint64.
func U128(v uint64) *U128Value {
	return &U128Value{Value: *uint256.NewInt(v)}
}

// Tuple creates a Tuple value.
func Tuple(fields ...Value) *TupleValue {
	if fields == nil {
		fields = []Value{}
	}
	return &TupleValue{Fields: fields}
}

// Enum creates an Enum value.
func Enum(discriminator uint8, fields ...Value) *EnumValue {
	if fields == nil {
		fields = []Value{}
	}
	return &EnumValue{Discriminator: discriminator, Fields: fields}
}

// NewArray creates an Array value, validating every element against elementKind.
func NewArray(elementKind Kind, elements ...Value) (*ArrayValue, error) {
	if elements == nil {
		elements = []Value{}
	}
	arr := &ArrayValue{ElementKind: elementKind, Elements: elements}
	if err := ValidateIfCollection(arr); err != nil {
		return nil, err
	}
	return arr, nil
}

// MustArray is like NewArray but panics on error.
func MustArray(elementKind Kind, elements ...Value) *ArrayValue {
	arr, err := NewArray(elementKind, elements...)
	if err != nil {
		panic(err)
	}
	return arr
}

// NewMap creates a Map value, validating every entry against the declared kinds.
func NewMap(keyKind, valueKind Kind, entries ...MapEntry) (*MapValue, error) {
	if entries == nil {
		entries = []MapEntry{}
	}
	m := &MapValue{KeyKind: keyKind, ValueKind: valueKind, Entries: entries}
	if err := ValidateIfCollection(m); err != nil {
		return nil, err
	}
	return m, nil
}

// MustMap is like NewMap but panics on error.
func MustMap(keyKind, valueKind Kind, entries ...MapEntry) *MapValue {
	m, err := NewMap(keyKind, valueKind, entries...)
	if err != nil {
		panic(err)
	}
	return m
}

// Some and None build the conventional Option encoding used by blueprint inputs.
func Some(v Value) *EnumValue { return Enum(1, v) }

// None returns the empty Option variant.
func None() *EnumValue { return Enum(0) }

// ValidateKind fails with an InvalidKindError if v is not of the expected kind.
func ValidateKind(v Value, expected Kind) error {
	if v == nil {
		return ErrNilValue
	}
	if actual := v.Kind(); actual != expected {
		return &InvalidKindError{Expected: expected, Actual: actual}
	}
	return nil
}

// ValidateIfCollection checks that every element of an Array, every key and
// value of a Map, and every field of a Tuple or Enum satisfies the declared
// kinds, at every nesting level. It is a no-op for non-collection values.
func ValidateIfCollection(v Value) error {
	switch val := v.(type) {
	case *ArrayValue:
		for _, el := range val.Elements {
			if err := ValidateKind(el, val.ElementKind); err != nil {
				return err
			}
			if err := ValidateIfCollection(el); err != nil {
				return err
			}
		}
	case *MapValue:
		for _, entry := range val.Entries {
			if err := ValidateKind(entry.Key, val.KeyKind); err != nil {
				return err
			}
			if err := ValidateKind(entry.Value, val.ValueKind); err != nil {
				return err
			}
			if err := ValidateIfCollection(entry.Key); err != nil {
				return err
			}
			if err := ValidateIfCollection(entry.Value); err != nil {
				return err
			}
		}
	case *TupleValue:
		return validateFields(val.Fields)
	case *EnumValue:
		return validateFields(val.Fields)
	}
	return nil
}

func validateFields(fields []Value) error {
	for _, f := range fields {
		if f == nil {
			return ErrNilValue
		}
		if err := ValidateIfCollection(f); err != nil {
			return err
		}
	}
	return nil
}

// Equal reports whether a and b are structurally identical values.
func Equal(a, b Value) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Kind() != b.Kind() {
		return false
	}
	switch x := a.(type) {
	case *BoolValue:
		return x.Value == b.(*BoolValue).Value
	case *I8Value:
		return x.Value == b.(*I8Value).Value
	case *I16Value:
		return x.Value == b.(*I16Value).Value
	case *I32Value:
		return x.Value == b.(*I32Value).Value
	case *I64Value:
		return x.Value == b.(*I64Value).Value
	case *I128Value:
		return bigOrZero(x.Value).Cmp(bigOrZero(b.(*I128Value).Value)) == 0
	case *U8Value:
		return x.Value == b.(*U8Value).Value
	case *U16Value:
		return x.Value == b.(*U16Value).Value
	case *U32Value:
		return x.Value == b.(*U32Value).Value
	case *U64Value:
		return x.Value == b.(*U64Value).Value
	case *U128Value:
		y := b.(*U128Value)
		return x.Value.Eq(&y.Value)
	case *StringValue:
		return x.Value == b.(*StringValue).Value
	case *EnumValue:
		y := b.(*EnumValue)
		return x.Discriminator == y.Discriminator && equalSlices(x.Fields, y.Fields)
	case *ArrayValue:
		y := b.(*ArrayValue)
		return x.ElementKind == y.ElementKind && equalSlices(x.Elements, y.Elements)
	case *TupleValue:
		return equalSlices(x.Fields, b.(*TupleValue).Fields)
	case *MapValue:
		y := b.(*MapValue)
		if x.KeyKind != y.KeyKind || x.ValueKind != y.ValueKind || len(x.Entries) != len(y.Entries) {
			return false
		}
		for i := range x.Entries {
			if !Equal(x.Entries[i].Key, y.Entries[i].Key) || !Equal(x.Entries[i].Value, y.Entries[i].Value) {
				return false
			}
		}
		return true
	default:
		return equalDomain(a, b)
	}
}

func equalSlices(a, b []Value) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}

// CloneValue returns a deep copy of v.
func CloneValue(v Value) Value {
	switch x := v.(type) {
	case nil:
		return nil
	case *BoolValue:
		c := *x
		return &c
	case *I8Value:
		c := *x
		return &c
	case *I16Value:
		c := *x
		return &c
	case *I32Value:
		c := *x
		return &c
	case *I64Value:
		c := *x
		return &c
	case *I128Value:
		return &I128Value{Value: new(big.Int).Set(bigOrZero(x.Value))}
	case *U8Value:
		c := *x
		return &c
	case *U16Value:
		c := *x
		return &c
	case *U32Value:
		c := *x
		return &c
	case *U64Value:
		c := *x
		return &c
	case *U128Value:
		c := *x
		return &c
	case *StringValue:
		c := *x
		return &c
	case *EnumValue:
		return &EnumValue{Discriminator: x.Discriminator, Fields: cloneValues(x.Fields)}
	case *ArrayValue:
		return &ArrayValue{ElementKind: x.ElementKind, Elements: cloneValues(x.Elements)}
	case *TupleValue:
		return &TupleValue{Fields: cloneValues(x.Fields)}
	case *MapValue:
		entries := make([]MapEntry, len(x.Entries))
		for i, e := range x.Entries {
			entries[i] = MapEntry{Key: CloneValue(e.Key), Value: CloneValue(e.Value)}
		}
		return &MapValue{KeyKind: x.KeyKind, ValueKind: x.ValueKind, Entries: entries}
	default:
		return cloneDomain(v)
	}
}

func cloneValues(values []Value) []Value {
	if values == nil {
		return nil
	}
	out := make([]Value, len(values))
	for i, v := range values {
		out[i] = CloneValue(v)
	}
	return out
}

func bigOrZero(v *big.Int) *big.Int {
	if v == nil {
		return new(big.Int)
	}
	return v
}
