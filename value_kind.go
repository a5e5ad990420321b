package txmanifest

import "fmt"

// Kind identifies the variant of a Value.
type Kind uint8

const (
	KindBool Kind = iota
	KindI8
	KindI16
	KindI32
	KindI64
	KindI128
	KindU8
	KindU16
	KindU32
	KindU64
	KindU128
	KindString
	KindEnum
	KindArray
	KindTuple
	KindMap
	KindComponentAddress
	KindResourceAddress
	KindPackageAddress
	KindSystemAddress
	KindDecimal
	KindPreciseDecimal
	KindBucket
	KindProof
	KindAddressReservation
	KindNamedAddress
	KindOwn
	KindNonFungibleLocalId
	KindNonFungibleGlobalId
	KindBlob
	KindExpression
	KindBytes

	numKinds
)

var kindNames = [numKinds]string{
	KindBool:                "Bool",
	KindI8:                  "I8",
	KindI16:                 "I16",
	KindI32:                 "I32",
	KindI64:                 "I64",
	KindI128:                "I128",
	KindU8:                  "U8",
	KindU16:                 "U16",
	KindU32:                 "U32",
	KindU64:                 "U64",
	KindU128:                "U128",
	KindString:              "String",
	KindEnum:                "Enum",
	KindArray:               "Array",
	KindTuple:               "Tuple",
	KindMap:                 "Map",
	KindComponentAddress:    "ComponentAddress",
	KindResourceAddress:     "ResourceAddress",
	KindPackageAddress:      "PackageAddress",
	KindSystemAddress:       "SystemAddress",
	KindDecimal:             "Decimal",
	KindPreciseDecimal:      "PreciseDecimal",
	KindBucket:              "Bucket",
	KindProof:               "Proof",
	KindAddressReservation:  "AddressReservation",
	KindNamedAddress:        "NamedAddress",
	KindOwn:                 "Own",
	KindNonFungibleLocalId:  "NonFungibleLocalId",
	KindNonFungibleGlobalId: "NonFungibleGlobalId",
	KindBlob:                "Blob",
	KindExpression:          "Expression",
	KindBytes:               "Bytes",
}

var kindsByName = func() map[string]Kind {
	m := make(map[string]Kind, numKinds)
	for k, name := range kindNames {
		m[name] = Kind(k)
	}
	return m
}()

// String returns the kind's name as used in manifest text and JSON.
func (k Kind) String() string {
	if k < numKinds {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// IsValid reports whether k names a known kind.
func (k Kind) IsValid() bool {
	return k < numKinds
}

// ParseKind resolves a kind name such as "U8" or "ResourceAddress".
func ParseKind(name string) (Kind, error) {
	if k, ok := kindsByName[name]; ok {
		return k, nil
	}
	return 0, &UnknownKindError{Name: name}
}

// IsAddress reports whether k is one of the network-scoped address kinds.
func (k Kind) IsAddress() bool {
	switch k {
	case KindComponentAddress, KindResourceAddress, KindPackageAddress, KindSystemAddress:
		return true
	default:
		return false
	}
}

// IsCollection reports whether values of kind k contain other values.
func (k Kind) IsCollection() bool {
	switch k {
	case KindEnum, KindArray, KindTuple, KindMap:
		return true
	default:
		return false
	}
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	if !k.IsValid() {
		return nil, &UnknownKindError{Name: k.String()}
	}
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}
