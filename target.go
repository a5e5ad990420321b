package txmanifest

import (
	"fmt"
	"math/big"

	"github.com/holiman/uint256"
)

// TargetType specifies which instruction a target's calls become.
type TargetType uint8

const (
	// Component targets are called with CALL_METHOD or one of its module
	// variants. Resources and system components are component targets too.
	Component TargetType = iota

	// Package targets are called with CALL_FUNCTION.
	Package

	// Vault targets are called with CALL_DIRECT_VAULT_METHOD.
	Vault
)

// String returns the target type name.
func (t TargetType) String() string {
	switch t {
	case Component:
		return "component"
	case Package:
		return "package"
	default:
		return "vault"
	}
}

// Target wraps something that can be called from a manifest.
type Target struct {
	address    Value
	targetType TargetType
	blueprint  string
}

// TargetOption configures a Target.
type TargetOption func(*Target)

// WithBlueprint sets the blueprint whose functions a package target calls.
func WithBlueprint(name string) TargetOption {
	return func(t *Target) {
		t.blueprint = name
	}
}

// NewComponent creates a target for a global component, resource manager or
// system component.
func NewComponent(addr NetworkAwareAddress) (*Target, error) {
	v, err := NewAddressValue(addr)
	if err != nil {
		return nil, err
	}
	if v.Kind() == KindPackageAddress {
		return nil, &AddressKindError{Address: addr, Expected: KindComponentAddress}
	}
	return &Target{address: v, targetType: Component}, nil
}

// NewPackage creates a target for the functions of a package.
func NewPackage(addr NetworkAwareAddress, opts ...TargetOption) (*Target, error) {
	v, err := newAddressOfKind(KindPackageAddress, addr)
	if err != nil {
		return nil, err
	}
	t := &Target{address: v, targetType: Package}
	for _, opt := range opts {
		opt(t)
	}
	return t, nil
}

// NewVault creates a target for the direct methods of a vault.
func NewVault(own *OwnValue) (*Target, error) {
	if own.OwnKind != OwnVault {
		return nil, &UnexpectedContentsError{Parsing: KindOwn, Expected: OwnVault.String(), Actual: own.OwnKind.String()}
	}
	return &Target{address: CloneValue(own), targetType: Vault}, nil
}

// NewNamedTarget creates a target for an address allocated earlier in the
// same manifest.
func NewNamedTarget(named *NamedAddressValue, targetType TargetType, opts ...TargetOption) *Target {
	t := &Target{address: CloneValue(named), targetType: targetType}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Address returns a copy of the value calls are addressed to.
func (t *Target) Address() Value {
	return CloneValue(t.address)
}

// Type returns the target type.
func (t *Target) Type() TargetType {
	return t.targetType
}

// Blueprint returns the blueprint of a package target.
func (t *Target) Blueprint() string {
	return t.blueprint
}

// WithBlueprint returns a copy of the target calling functions of blueprint.
func (t *Target) WithBlueprint(name string) *Target {
	clone := *t
	clone.blueprint = name
	return &clone
}

// Invoke creates a Call of the named method, or function for package
// targets. Arguments can be Go values or Values; see toValue for the
// conversions.
func (t *Target) Invoke(name string, args ...any) (*Call, error) {
	if t.targetType == Package && t.blueprint == "" {
		return nil, ErrNoBlueprint
	}
	return newCall(t, name, args)
}

// MustInvoke is like Invoke but panics on error.
func (t *Target) MustInvoke(name string, args ...any) *Call {
	call, err := t.Invoke(name, args...)
	if err != nil {
		panic(err)
	}
	return call
}

// callKind returns the instruction a call on this target becomes.
func (t *Target) callKind(module ObjectModule) InstructionKind {
	switch t.targetType {
	case Package:
		return InstructionCallFunction
	case Vault:
		return InstructionCallDirectVaultMethod
	}
	switch module {
	case ModuleRoyalty:
		return InstructionCallRoyaltyMethod
	case ModuleMetadata:
		return InstructionCallMetadataMethod
	case ModuleAccessRules:
		return InstructionCallAccessRulesMethod
	default:
		return InstructionCallMethod
	}
}

// toValue converts a Go value to a Value.
//
// Supported types:
//   - Value: copied as is
//   - bool, string
//   - int8..int64, int: the signed kind of matching width, int as I64
//   - uint8..uint64, uint: the unsigned kind of matching width, uint as U64
//   - *big.Int: I128
//   - *uint256.Int: U128
//   - []byte: Bytes
//   - NetworkAwareAddress: the address kind of its entity type
//   - Decimal, PreciseDecimal
//   - NonFungibleLocalId, NonFungibleGlobalId
func toValue(arg any) (Value, error) {
	switch v := arg.(type) {
	case Value:
		return CloneValue(v), nil
	case bool:
		return Bool(v), nil
	case string:
		return String(v), nil
	case int8:
		return I8(v), nil
	case int16:
		return I16(v), nil
	case int32:
		return I32(v), nil
	case int64:
		return I64(v), nil
	case int:
		return I64(int64(v)), nil
	case uint8:
		return U8(v), nil
	case uint16:
		return U16(v), nil
	case uint32:
		return U32(v), nil
	case uint64:
		return U64(v), nil
	case uint:
		return U64(uint64(v)), nil
	case *big.Int:
		return asValue(NewI128(v))
	case *uint256.Int:
		return asValue(NewU128(v))
	case []byte:
		return Bytes(v), nil
	case NetworkAwareAddress:
		return NewAddressValue(v)
	case Decimal:
		return &DecimalValue{Value: v}, nil
	case PreciseDecimal:
		return &PreciseDecimalValue{Value: v}, nil
	case NonFungibleLocalId:
		return LocalId(v), nil
	case NonFungibleGlobalId:
		return &NonFungibleGlobalIdValue{Value: v}, nil
	case nil:
		return nil, ErrNilValue
	}
	return nil, fmt.Errorf("%w: %T", ErrUnsupportedArgument, arg)
}
