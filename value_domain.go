package txmanifest

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"strconv"

	"github.com/ethereum/go-ethereum/common"
)

// ComponentAddressValue holds the address of a global component.
type ComponentAddressValue struct{ Address NetworkAwareAddress }

// ResourceAddressValue holds the address of a resource manager.
type ResourceAddressValue struct{ Address NetworkAwareAddress }

// PackageAddressValue holds the address of a package.
type PackageAddressValue struct{ Address NetworkAwareAddress }

// SystemAddressValue holds the address of a system component.
type SystemAddressValue struct{ Address NetworkAwareAddress }

// DecimalValue holds a Decimal.
type DecimalValue struct{ Value Decimal }

// PreciseDecimalValue holds a PreciseDecimal.
type PreciseDecimalValue struct{ Value PreciseDecimal }

// TransientIdentifier refers to a bucket, proof, address reservation or
// named address. It is either a numeric id or a display name that still has
// to be resolved through a NameDictionary.
type TransientIdentifier struct {
	ID    uint32
	Name  string
	Named bool
}

// NumericIdentifier returns an identifier holding a numeric id.
func NumericIdentifier(id uint32) TransientIdentifier {
	return TransientIdentifier{ID: id}
}

// NamedIdentifier returns an identifier holding a display name.
func NamedIdentifier(name string) TransientIdentifier {
	return TransientIdentifier{Name: name, Named: true}
}

// String returns the name or the decimal id.
func (t TransientIdentifier) String() string {
	if t.Named {
		return t.Name
	}
	return strconv.FormatUint(uint64(t.ID), 10)
}

// BucketValue refers to a bucket.
type BucketValue struct{ Identifier TransientIdentifier }

// ProofValue refers to a proof.
type ProofValue struct{ Identifier TransientIdentifier }

// AddressReservationValue refers to an address reservation.
type AddressReservationValue struct{ Identifier TransientIdentifier }

// NamedAddressValue refers to an address allocated within the manifest.
type NamedAddressValue struct{ Identifier TransientIdentifier }

// OwnKind identifies what an owned node is.
type OwnKind uint8

const (
	OwnVault OwnKind = iota
	OwnComponent
	OwnKeyValueStore
)

// String returns the own kind name.
func (k OwnKind) String() string {
	switch k {
	case OwnVault:
		return "Vault"
	case OwnComponent:
		return "Component"
	case OwnKeyValueStore:
		return "KeyValueStore"
	default:
		return fmt.Sprintf("OwnKind(%d)", uint8(k))
	}
}

// ParseOwnKind resolves an own kind name.
func ParseOwnKind(name string) (OwnKind, error) {
	switch name {
	case "Vault":
		return OwnVault, nil
	case "Component":
		return OwnComponent, nil
	case "KeyValueStore":
		return OwnKeyValueStore, nil
	default:
		return 0, &UnexpectedContentsError{Parsing: KindOwn, Expected: "Vault, Component or KeyValueStore", Actual: name}
	}
}

// NodeIDLength is the length of an owned node id: a 32-byte hash followed by
// a 4-byte big-endian index.
const NodeIDLength = 36

// OwnValue refers to a node owned by another node, such as a vault.
type OwnValue struct {
	OwnKind OwnKind
	NodeID  [NodeIDLength]byte
}

// NewOwn creates an Own value from its hex node id.
func NewOwn(kind OwnKind, nodeIDHex string) (*OwnValue, error) {
	b, err := hex.DecodeString(nodeIDHex)
	if err != nil {
		return nil, &UnexpectedContentsError{Parsing: KindOwn, Expected: "hex node id", Actual: nodeIDHex}
	}
	if len(b) != NodeIDLength {
		return nil, &UnexpectedContentsError{Parsing: KindOwn, Expected: "36-byte node id", Actual: nodeIDHex}
	}
	v := &OwnValue{OwnKind: kind}
	copy(v.NodeID[:], b)
	return v, nil
}

// NonFungibleLocalIdValue holds a NonFungibleLocalId.
type NonFungibleLocalIdValue struct{ Value NonFungibleLocalId }

// NonFungibleGlobalIdValue holds a NonFungibleGlobalId.
type NonFungibleGlobalIdValue struct{ Value NonFungibleGlobalId }

// BlobValue refers to a blob by the blake2b-256 hash of its contents.
type BlobValue struct{ Hash common.Hash }

// Expression selects everything held by the worktop or the auth zone.
type Expression uint8

const (
	ExpressionEntireWorktop Expression = iota
	ExpressionEntireAuthZone
)

// String returns the textual form of the expression.
func (e Expression) String() string {
	switch e {
	case ExpressionEntireWorktop:
		return "ENTIRE_WORKTOP"
	case ExpressionEntireAuthZone:
		return "ENTIRE_AUTH_ZONE"
	default:
		return fmt.Sprintf("Expression(%d)", uint8(e))
	}
}

// ParseExpression resolves the textual form of an expression.
func ParseExpression(s string) (Expression, error) {
	switch s {
	case "ENTIRE_WORKTOP":
		return ExpressionEntireWorktop, nil
	case "ENTIRE_AUTH_ZONE":
		return ExpressionEntireAuthZone, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidExpression, s)
	}
}

// ExpressionValue holds an Expression.
type ExpressionValue struct{ Value Expression }

// BytesValue holds a byte string. On the wire it is an Array of U8.
type BytesValue struct{ Value []byte }

func (*ComponentAddressValue) isValue()    {}
func (*ResourceAddressValue) isValue()     {}
func (*PackageAddressValue) isValue()      {}
func (*SystemAddressValue) isValue()       {}
func (*DecimalValue) isValue()             {}
func (*PreciseDecimalValue) isValue()      {}
func (*BucketValue) isValue()              {}
func (*ProofValue) isValue()               {}
func (*AddressReservationValue) isValue()  {}
func (*NamedAddressValue) isValue()        {}
func (*OwnValue) isValue()                 {}
func (*NonFungibleLocalIdValue) isValue()  {}
func (*NonFungibleGlobalIdValue) isValue() {}
func (*BlobValue) isValue()                {}
func (*ExpressionValue) isValue()          {}
func (*BytesValue) isValue()               {}

func (*ComponentAddressValue) Kind() Kind    { return KindComponentAddress }
func (*ResourceAddressValue) Kind() Kind     { return KindResourceAddress }
func (*PackageAddressValue) Kind() Kind      { return KindPackageAddress }
func (*SystemAddressValue) Kind() Kind       { return KindSystemAddress }
func (*DecimalValue) Kind() Kind             { return KindDecimal }
func (*PreciseDecimalValue) Kind() Kind      { return KindPreciseDecimal }
func (*BucketValue) Kind() Kind              { return KindBucket }
func (*ProofValue) Kind() Kind               { return KindProof }
func (*AddressReservationValue) Kind() Kind  { return KindAddressReservation }
func (*NamedAddressValue) Kind() Kind        { return KindNamedAddress }
func (*OwnValue) Kind() Kind                 { return KindOwn }
func (*NonFungibleLocalIdValue) Kind() Kind  { return KindNonFungibleLocalId }
func (*NonFungibleGlobalIdValue) Kind() Kind { return KindNonFungibleGlobalId }
func (*BlobValue) Kind() Kind                { return KindBlob }
func (*ExpressionValue) Kind() Kind          { return KindExpression }
func (*BytesValue) Kind() Kind               { return KindBytes }

// NewAddressValue wraps addr in the address kind matching its entity type.
func NewAddressValue(addr NetworkAwareAddress) (Value, error) {
	kind, ok := addr.EntityType().AddressKind()
	if !ok {
		return nil, &UnrecognizedAddressFormatError{Address: hex.EncodeToString(addr.Raw[:]), Err: ErrUnknownEntityType}
	}
	return newAddressOfKind(kind, addr)
}

// MustAddressValue is like NewAddressValue but panics on error.
func MustAddressValue(addr NetworkAwareAddress) Value {
	v, err := NewAddressValue(addr)
	if err != nil {
		panic(err)
	}
	return v
}

// newAddressOfKind wraps addr in the requested address kind, failing when the
// entity type belongs to a different kind.
func newAddressOfKind(kind Kind, addr NetworkAwareAddress) (Value, error) {
	if actual, ok := addr.EntityType().AddressKind(); !ok || actual != kind {
		return nil, &AddressKindError{Address: addr, Expected: kind}
	}
	switch kind {
	case KindComponentAddress:
		return &ComponentAddressValue{Address: addr}, nil
	case KindResourceAddress:
		return &ResourceAddressValue{Address: addr}, nil
	case KindPackageAddress:
		return &PackageAddressValue{Address: addr}, nil
	case KindSystemAddress:
		return &SystemAddressValue{Address: addr}, nil
	default:
		return nil, &AddressKindError{Address: addr, Expected: kind}
	}
}

// AddressOf extracts the address held by any of the address kinds.
func AddressOf(v Value) (NetworkAwareAddress, bool) {
	switch x := v.(type) {
	case *ComponentAddressValue:
		return x.Address, true
	case *ResourceAddressValue:
		return x.Address, true
	case *PackageAddressValue:
		return x.Address, true
	case *SystemAddressValue:
		return x.Address, true
	default:
		return NetworkAwareAddress{}, false
	}
}

// IdentifierOf extracts the transient identifier of a bucket, proof, address
// reservation or named address.
func IdentifierOf(v Value) (TransientIdentifier, bool) {
	switch x := v.(type) {
	case *BucketValue:
		return x.Identifier, true
	case *ProofValue:
		return x.Identifier, true
	case *AddressReservationValue:
		return x.Identifier, true
	case *NamedAddressValue:
		return x.Identifier, true
	default:
		return TransientIdentifier{}, false
	}
}

// Convenience constructors for domain values.

// NewDecimalValue parses s into a Decimal value.
func NewDecimalValue(s string) (*DecimalValue, error) {
	d, err := ParseDecimal(s)
	if err != nil {
		return nil, err
	}
	return &DecimalValue{Value: d}, nil
}

// MustDecimalValue is like NewDecimalValue but panics on error.
func MustDecimalValue(s string) *DecimalValue {
	return &DecimalValue{Value: MustParseDecimal(s)}
}

// Bucket refers to a bucket by numeric id.
func Bucket(id uint32) *BucketValue {
	return &BucketValue{Identifier: NumericIdentifier(id)}
}

// NamedBucket refers to a bucket by name.
func NamedBucket(name string) *BucketValue {
	return &BucketValue{Identifier: NamedIdentifier(name)}
}

// Proof refers to a proof by numeric id.
func Proof(id uint32) *ProofValue {
	return &ProofValue{Identifier: NumericIdentifier(id)}
}

// NamedProof refers to a proof by name.
func NamedProof(name string) *ProofValue {
	return &ProofValue{Identifier: NamedIdentifier(name)}
}

// LocalId wraps a NonFungibleLocalId.
func LocalId(id NonFungibleLocalId) *NonFungibleLocalIdValue {
	return &NonFungibleLocalIdValue{Value: id}
}

// Bytes wraps a byte string.
func Bytes(b []byte) *BytesValue {
	return &BytesValue{Value: bytes.Clone(b)}
}

func equalDomain(a, b Value) bool {
	switch x := a.(type) {
	case *ComponentAddressValue:
		return x.Address == b.(*ComponentAddressValue).Address
	case *ResourceAddressValue:
		return x.Address == b.(*ResourceAddressValue).Address
	case *PackageAddressValue:
		return x.Address == b.(*PackageAddressValue).Address
	case *SystemAddressValue:
		return x.Address == b.(*SystemAddressValue).Address
	case *DecimalValue:
		return x.Value.Equal(b.(*DecimalValue).Value)
	case *PreciseDecimalValue:
		return x.Value.Equal(b.(*PreciseDecimalValue).Value)
	case *BucketValue:
		return x.Identifier == b.(*BucketValue).Identifier
	case *ProofValue:
		return x.Identifier == b.(*ProofValue).Identifier
	case *AddressReservationValue:
		return x.Identifier == b.(*AddressReservationValue).Identifier
	case *NamedAddressValue:
		return x.Identifier == b.(*NamedAddressValue).Identifier
	case *OwnValue:
		y := b.(*OwnValue)
		return x.OwnKind == y.OwnKind && x.NodeID == y.NodeID
	case *NonFungibleLocalIdValue:
		return x.Value.Equal(b.(*NonFungibleLocalIdValue).Value)
	case *NonFungibleGlobalIdValue:
		y := b.(*NonFungibleGlobalIdValue)
		return x.Value.Resource == y.Value.Resource && x.Value.LocalID.Equal(y.Value.LocalID)
	case *BlobValue:
		return x.Hash == b.(*BlobValue).Hash
	case *ExpressionValue:
		return x.Value == b.(*ExpressionValue).Value
	case *BytesValue:
		return bytes.Equal(x.Value, b.(*BytesValue).Value)
	default:
		return false
	}
}

func cloneDomain(v Value) Value {
	switch x := v.(type) {
	case *ComponentAddressValue:
		c := *x
		return &c
	case *ResourceAddressValue:
		c := *x
		return &c
	case *PackageAddressValue:
		c := *x
		return &c
	case *SystemAddressValue:
		c := *x
		return &c
	case *DecimalValue:
		return &DecimalValue{Value: Decimal{scaled: x.Value.Scaled()}}
	case *PreciseDecimalValue:
		return &PreciseDecimalValue{Value: PreciseDecimal{scaled: x.Value.Scaled()}}
	case *BucketValue:
		c := *x
		return &c
	case *ProofValue:
		c := *x
		return &c
	case *AddressReservationValue:
		c := *x
		return &c
	case *NamedAddressValue:
		c := *x
		return &c
	case *OwnValue:
		c := *x
		return &c
	case *NonFungibleLocalIdValue:
		c := *x
		c.Value.bytes = bytes.Clone(x.Value.bytes)
		return &c
	case *NonFungibleGlobalIdValue:
		c := *x
		c.Value.LocalID.bytes = bytes.Clone(x.Value.LocalID.bytes)
		return &c
	case *BlobValue:
		c := *x
		return &c
	case *ExpressionValue:
		c := *x
		return &c
	case *BytesValue:
		return &BytesValue{Value: bytes.Clone(x.Value)}
	default:
		return v
	}
}
