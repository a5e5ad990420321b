package txmanifest

import (
	"errors"
	"math/big"
	"strings"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/holiman/uint256"
)

func TestValueKinds(t *testing.T) {
	tests := []struct {
		name  string
		value Value
		kind  Kind
	}{
		{"bool", Bool(true), KindBool},
		{"i8", I8(-1), KindI8},
		{"u64", U64(1), KindU64},
		{"u128", U128(1), KindU128},
		{"string", String("x"), KindString},
		{"tuple", Tuple(), KindTuple},
		{"some", Some(U8(1)), KindEnum},
		{"bucket", Bucket(0), KindBucket},
		{"named proof", NamedProof("p"), KindProof},
		{"bytes", Bytes([]byte{1}), KindBytes},
		{"decimal", MustDecimalValue("1"), KindDecimal},
		{"account", MustAddressValue(simAccount(1)), KindComponentAddress},
		{"xrd", MustAddressValue(simXRD()), KindResourceAddress},
		{"package", MustAddressValue(KnownAddressesFor(NetworkSimulator).AccountPackage), KindPackageAddress},
		{"clock", MustAddressValue(KnownAddressesFor(NetworkSimulator).Clock), KindSystemAddress},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.value.Kind(); got != tt.kind {
				t.Errorf("Expected kind %s, got %s", tt.kind, got)
			}
		})
	}
}

func TestNewArrayValidatesElements(t *testing.T) {
	_, err := NewArray(KindU8, U8(1), U16(2))
	var kindErr *InvalidKindError
	if !errors.As(err, &kindErr) {
		t.Fatalf("Expected InvalidKindError, got %v", err)
	}
	if kindErr.Expected != KindU8 || kindErr.Actual != KindU16 {
		t.Errorf("Expected U8/U16 mismatch, got %s/%s", kindErr.Expected, kindErr.Actual)
	}

	// Nested collections are validated too.
	bad := &ArrayValue{ElementKind: KindString, Elements: []Value{U8(1)}}
	if _, err := NewArray(KindArray, bad); !errors.As(err, &kindErr) {
		t.Errorf("Expected InvalidKindError for nested array, got %v", err)
	}

	arr, err := NewArray(KindU8)
	if err != nil {
		t.Fatalf("NewArray failed: %v", err)
	}
	if arr.Elements == nil || len(arr.Elements) != 0 {
		t.Errorf("Expected empty non-nil elements, got %s", spew.Sdump(arr.Elements))
	}
}

func TestNewMapValidatesEntries(t *testing.T) {
	_, err := NewMap(KindString, KindU8, MapEntry{Key: String("a"), Value: String("b")})
	var kindErr *InvalidKindError
	if !errors.As(err, &kindErr) {
		t.Fatalf("Expected InvalidKindError, got %v", err)
	}

	if _, err := NewMap(KindString, KindU8, MapEntry{Key: String("a"), Value: nil}); !errors.Is(err, ErrNilValue) {
		t.Errorf("Expected ErrNilValue, got %v", err)
	}
}

func TestIntegerRanges(t *testing.T) {
	over := new(big.Int).Lsh(big.NewInt(1), 127)
	if _, err := NewI128(over); err == nil {
		t.Error("Expected 2^127 to overflow I128")
	}
	if _, err := NewI128(new(big.Int).Neg(over)); err != nil {
		t.Errorf("Expected -2^127 to fit in I128, got %v", err)
	}

	big129 := new(uint256.Int).Lsh(uint256.NewInt(1), 128)
	_, err := NewU128(big129)
	var rangeErr *OutOfRangeError
	if !errors.As(err, &rangeErr) {
		t.Fatalf("Expected OutOfRangeError, got %v", err)
	}
	if rangeErr.Kind != KindU128 {
		t.Errorf("Expected kind U128, got %s", rangeErr.Kind)
	}
}

func TestEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b Value
		want bool
	}{
		{"same integer", U32(1), U32(1), true},
		{"different kind", U32(1), U64(1), false},
		{"i128", MustI128(big.NewInt(-5)), MustI128(big.NewInt(-5)), true},
		{"tuple order", Tuple(U8(1), U8(2)), Tuple(U8(2), U8(1)), false},
		{"enum discriminator", Enum(1), Enum(2), false},
		{"bytes", Bytes([]byte{1, 2}), Bytes([]byte{1, 2}), true},
		{"bytes and array", Bytes([]byte{1}), MustArray(KindU8, U8(1)), false},
		{"numeric and named bucket", Bucket(0), NamedBucket("bucket1"), false},
		{"decimal scale", MustDecimalValue("1.0"), MustDecimalValue("1"), true},
		{"map", MustMap(KindString, KindU8, MapEntry{Key: String("a"), Value: U8(1)}), MustMap(KindString, KindU8, MapEntry{Key: String("a"), Value: U8(1)}), true},
		{"nil", nil, nil, true},
		{"nil and value", nil, Bool(false), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Equal(tt.a, tt.b); got != tt.want {
				t.Errorf("Expected Equal = %v, got %v for\n%s", tt.want, got, spew.Sdump(tt.a, tt.b))
			}
		})
	}
}

func TestCloneValueIsDeep(t *testing.T) {
	original := Tuple(
		MustArray(KindString, String("a")),
		Bytes([]byte{1, 2, 3}),
		MustI128(big.NewInt(7)),
	)
	clone := CloneValue(original).(*TupleValue)
	if !Equal(original, clone) {
		t.Fatalf("Expected clone to equal original:\n%s", spew.Sdump(clone))
	}

	clone.Fields[0].(*ArrayValue).Elements[0] = String("b")
	clone.Fields[1].(*BytesValue).Value[0] = 9
	clone.Fields[2].(*I128Value).Value.SetInt64(8)

	if !Equal(original, Tuple(MustArray(KindString, String("a")), Bytes([]byte{1, 2, 3}), MustI128(big.NewInt(7)))) {
		t.Errorf("Expected original to be unchanged, got %s", spew.Sdump(original))
	}
}

func TestNewOwn(t *testing.T) {
	nodeID := strings.Repeat("ab", NodeIDLength)
	own, err := NewOwn(OwnVault, nodeID)
	if err != nil {
		t.Fatalf("NewOwn failed: %v", err)
	}
	if own.OwnKind != OwnVault || own.NodeID[0] != 0xab {
		t.Errorf("Unexpected own value %s", spew.Sdump(own))
	}

	var contentsErr *UnexpectedContentsError
	if _, err := NewOwn(OwnVault, "abcd"); !errors.As(err, &contentsErr) {
		t.Errorf("Expected UnexpectedContentsError for short id, got %v", err)
	}
	if _, err := NewOwn(OwnVault, "zz"); !errors.As(err, &contentsErr) {
		t.Errorf("Expected UnexpectedContentsError for bad hex, got %v", err)
	}
}

func TestNewAddressValueRejectsUnknownEntity(t *testing.T) {
	addr := NetworkAwareAddress{NetworkID: NetworkSimulator}
	addr.Raw[0] = 0xEE
	if _, err := NewAddressValue(addr); !errors.Is(err, ErrUnknownEntityType) {
		t.Errorf("Expected ErrUnknownEntityType, got %v", err)
	}
}

func TestParseKind(t *testing.T) {
	for _, name := range []string{"U8", "ResourceAddress", "Bytes", "NonFungibleGlobalId", "Decimal"} {
		k, err := ParseKind(name)
		if err != nil {
			t.Errorf("ParseKind(%q) failed: %v", name, err)
			continue
		}
		if k.String() != name {
			t.Errorf("Expected %q, got %q", name, k.String())
		}
	}

	var unknown *UnknownKindError
	if _, err := ParseKind("Float"); !errors.As(err, &unknown) {
		t.Errorf("Expected UnknownKindError, got %v", err)
	}
}
