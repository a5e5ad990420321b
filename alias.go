package txmanifest

import (
	"fmt"

	"github.com/ethereum/go-ethereum/log"
)

// ObjectModule is the module of an entity that a method call targets.
type ObjectModule uint8

const (
	ModuleMain ObjectModule = iota
	ModuleMetadata
	ModuleRoyalty
	ModuleAccessRules
	// ModuleDirectVault marks calls made directly on an owned vault.
	ModuleDirectVault
)

// String returns the module name.
func (m ObjectModule) String() string {
	switch m {
	case ModuleMain:
		return "Main"
	case ModuleMetadata:
		return "Metadata"
	case ModuleRoyalty:
		return "Royalty"
	case ModuleAccessRules:
		return "AccessRules"
	case ModuleDirectVault:
		return "DirectVault"
	default:
		return fmt.Sprintf("ObjectModule(%d)", uint8(m))
	}
}

// MethodAlias describes a high-level instruction that stands for a method call.
type MethodAlias interface {
	// Kind is the high-level instruction the alias builds.
	Kind() InstructionKind
	Module() ObjectModule
	MethodName() string
	// IsValidAddress reports whether the call target belongs to the address
	// category the alias applies to.
	IsValidAddress(target Value) bool
	// Schema describes the argument tuple.
	Schema() *Schema
}

// FunctionAlias describes a high-level instruction that stands for a
// blueprint function call.
type FunctionAlias interface {
	Kind() InstructionKind
	Package() [AddressLength]byte
	Blueprint() string
	Function() string
	Schema() *Schema
}

// Alias returns the high-level instruction equivalent to in, or in itself
// when no alias matches. Candidates are tried in table order and the first
// match wins.
func Alias(in Instruction) Instruction {
	switch x := in.(type) {
	case *CallFunction:
		if out, ok := aliasFunction(x); ok {
			return out
		}
	case *CallMethod:
		if out, ok := aliasMethod(ModuleMain, x.Address, x.MethodName, x.Args); ok {
			return out
		}
	case *CallMetadataMethod:
		if out, ok := aliasMethod(ModuleMetadata, x.Address, x.MethodName, x.Args); ok {
			return out
		}
	case *CallRoyaltyMethod:
		if out, ok := aliasMethod(ModuleRoyalty, x.Address, x.MethodName, x.Args); ok {
			return out
		}
	case *CallAccessRulesMethod:
		if out, ok := aliasMethod(ModuleAccessRules, x.Address, x.MethodName, x.Args); ok {
			return out
		}
	case *CallDirectVaultMethod:
		if out, ok := aliasMethod(ModuleDirectVault, x.VaultID, x.MethodName, x.Args); ok {
			return out
		}
	}
	return in
}

// AliasAll applies Alias to every instruction.
func AliasAll(ins []Instruction) []Instruction {
	out := make([]Instruction, len(ins))
	for i, in := range ins {
		out[i] = Alias(in)
	}
	return out
}

func aliasMethod(module ObjectModule, target Value, method string, args []Value) (Instruction, bool) {
	for _, a := range methodAliases {
		if !a.IsValidAddress(target) || a.Module() != module || a.MethodName() != method {
			continue
		}
		if !matchesSchema(a.Kind(), a.Schema(), args) {
			continue
		}
		return buildAlias(a.Kind(), append([]Value{target}, args...)), true
	}
	return nil, false
}

func aliasFunction(call *CallFunction) (Instruction, bool) {
	addr, ok := AddressOf(call.PackageAddress)
	if !ok {
		return nil, false
	}
	for _, a := range functionAliases {
		if addr.Raw != a.Package() || call.BlueprintName != a.Blueprint() || call.FunctionName != a.Function() {
			continue
		}
		if !matchesSchema(a.Kind(), a.Schema(), call.Args) {
			continue
		}
		return buildAlias(a.Kind(), call.Args), true
	}
	return nil, false
}

// matchesSchema encodes args as a tuple and validates the payload.
func matchesSchema(kind InstructionKind, s *Schema, args []Value) bool {
	payload, err := EncodeValue(Tuple(args...))
	if err != nil {
		log.Trace("Alias candidate rejected", "alias", kind, "stage", "encode", "err", err)
		return false
	}
	if err := ValidatePayload(payload, NetworkMainnet, s); err != nil {
		log.Trace("Alias candidate rejected", "alias", kind, "stage", "schema", "err", err)
		return false
	}
	return true
}

// buildAlias fills the fields of a high-level instruction in declaration
// order. The field count has already been checked by the schema.
func buildAlias(kind InstructionKind, fields []Value) Instruction {
	out := instructionInfos[kind].new()
	for i, op := range out.operands() {
		*op.value = CloneValue(fields[i])
	}
	return out
}

// ToLowLevel returns the low-level call a high-level instruction stands for.
// Low-level instructions are returned unchanged. Function aliases call
// native packages, whose addresses are placed on networkID.
func ToLowLevel(in Instruction, networkID uint8) Instruction {
	kind := in.Kind()
	if !kind.IsAliased() {
		return in
	}
	fields := Operands(in)
	for i := range fields {
		fields[i] = CloneValue(fields[i])
	}

	if a, ok := functionAliasesByKind[kind]; ok {
		return &CallFunction{
			PackageAddress: &PackageAddressValue{Address: NetworkAwareAddress{NetworkID: networkID, Raw: a.Package()}},
			BlueprintName:  a.Blueprint(),
			FunctionName:   a.Function(),
			Args:           fields,
		}
	}

	a := methodAliasesByKind[kind]
	target, args := fields[0], fields[1:]
	switch a.Module() {
	case ModuleMetadata:
		return &CallMetadataMethod{Address: target, MethodName: a.MethodName(), Args: args}
	case ModuleRoyalty:
		return &CallRoyaltyMethod{Address: target, MethodName: a.MethodName(), Args: args}
	case ModuleAccessRules:
		return &CallAccessRulesMethod{Address: target, MethodName: a.MethodName(), Args: args}
	case ModuleDirectVault:
		return &CallDirectVaultMethod{VaultID: target, MethodName: a.MethodName(), Args: args}
	default:
		return &CallMethod{Address: target, MethodName: a.MethodName(), Args: args}
	}
}

// ToLowLevelAll applies ToLowLevel to every instruction.
func ToLowLevelAll(ins []Instruction, networkID uint8) []Instruction {
	out := make([]Instruction, len(ins))
	for i, in := range ins {
		out[i] = ToLowLevel(in, networkID)
	}
	return out
}
