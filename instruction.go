package txmanifest

import (
	"fmt"
)

// Instruction is one step of a manifest.
// This is a sealed interface - only types within this package can implement it.
type Instruction interface {
	// isInstruction is unexported to seal the interface.
	isInstruction()

	// Kind returns the variant of this instruction.
	Kind() InstructionKind

	// operands describes the fields of the instruction in positional order.
	operands() []operand
}

// InstructionKind identifies the variant of an Instruction.
type InstructionKind uint8

const (
	InstructionTakeFromWorktop InstructionKind = iota
	InstructionTakeNonFungiblesFromWorktop
	InstructionTakeAllFromWorktop
	InstructionReturnToWorktop
	InstructionAssertWorktopContains
	InstructionAssertWorktopContainsNonFungibles
	InstructionPopFromAuthZone
	InstructionPushToAuthZone
	InstructionClearAuthZone
	InstructionCreateProofFromAuthZone
	InstructionCreateProofFromAuthZoneOfAmount
	InstructionCreateProofFromAuthZoneOfNonFungibles
	InstructionCreateProofFromAuthZoneOfAll
	InstructionClearSignatureProofs
	InstructionCreateProofFromBucket
	InstructionCreateProofFromBucketOfAmount
	InstructionCreateProofFromBucketOfNonFungibles
	InstructionCreateProofFromBucketOfAll
	InstructionBurnResource
	InstructionCloneProof
	InstructionDropProof
	InstructionDropAllProofs
	InstructionCallFunction
	InstructionCallMethod
	InstructionCallRoyaltyMethod
	InstructionCallMetadataMethod
	InstructionCallAccessRulesMethod
	InstructionCallDirectVaultMethod
	InstructionAllocateGlobalAddress

	InstructionPublishPackage
	InstructionPublishPackageAdvanced
	InstructionCreateFungibleResource
	InstructionCreateFungibleResourceWithInitialSupply
	InstructionCreateNonFungibleResource
	InstructionCreateNonFungibleResourceWithInitialSupply
	InstructionCreateAccessController
	InstructionCreateIdentity
	InstructionCreateIdentityAdvanced
	InstructionCreateAccount
	InstructionCreateAccountAdvanced
	InstructionSetMetadata
	InstructionRemoveMetadata
	InstructionSetComponentRoyaltyConfig
	InstructionClaimComponentRoyalty
	InstructionUpdateRole
	InstructionSetPackageRoyaltyConfig
	InstructionClaimPackageRoyalty
	InstructionMintFungible
	InstructionMintNonFungible
	InstructionMintUuidNonFungible
	InstructionCreateValidator
	InstructionRecallVault
	InstructionFreezeVault
	InstructionUnfreezeVault

	numInstructionKinds
)

// noOpcode marks high-level instructions, which have no binary form.
const noOpcode = -1

type instructionInfo struct {
	name   string
	opcode int
	new    func() Instruction
}

var instructionInfos = [numInstructionKinds]instructionInfo{
	InstructionTakeFromWorktop:                       {"TAKE_FROM_WORKTOP", 0x00, func() Instruction { return &TakeFromWorktop{} }},
	InstructionTakeNonFungiblesFromWorktop:           {"TAKE_NON_FUNGIBLES_FROM_WORKTOP", 0x01, func() Instruction { return &TakeNonFungiblesFromWorktop{} }},
	InstructionTakeAllFromWorktop:                    {"TAKE_ALL_FROM_WORKTOP", 0x02, func() Instruction { return &TakeAllFromWorktop{} }},
	InstructionReturnToWorktop:                       {"RETURN_TO_WORKTOP", 0x03, func() Instruction { return &ReturnToWorktop{} }},
	InstructionAssertWorktopContains:                 {"ASSERT_WORKTOP_CONTAINS", 0x04, func() Instruction { return &AssertWorktopContains{} }},
	InstructionAssertWorktopContainsNonFungibles:     {"ASSERT_WORKTOP_CONTAINS_NON_FUNGIBLES", 0x05, func() Instruction { return &AssertWorktopContainsNonFungibles{} }},
	InstructionPopFromAuthZone:                       {"POP_FROM_AUTH_ZONE", 0x10, func() Instruction { return &PopFromAuthZone{} }},
	InstructionPushToAuthZone:                        {"PUSH_TO_AUTH_ZONE", 0x11, func() Instruction { return &PushToAuthZone{} }},
	InstructionClearAuthZone:                         {"CLEAR_AUTH_ZONE", 0x12, func() Instruction { return &ClearAuthZone{} }},
	InstructionCreateProofFromAuthZone:               {"CREATE_PROOF_FROM_AUTH_ZONE", 0x13, func() Instruction { return &CreateProofFromAuthZone{} }},
	InstructionCreateProofFromAuthZoneOfAmount:       {"CREATE_PROOF_FROM_AUTH_ZONE_OF_AMOUNT", 0x14, func() Instruction { return &CreateProofFromAuthZoneOfAmount{} }},
	InstructionCreateProofFromAuthZoneOfNonFungibles: {"CREATE_PROOF_FROM_AUTH_ZONE_OF_NON_FUNGIBLES", 0x15, func() Instruction { return &CreateProofFromAuthZoneOfNonFungibles{} }},
	InstructionCreateProofFromAuthZoneOfAll:          {"CREATE_PROOF_FROM_AUTH_ZONE_OF_ALL", 0x16, func() Instruction { return &CreateProofFromAuthZoneOfAll{} }},
	InstructionClearSignatureProofs:                  {"CLEAR_SIGNATURE_PROOFS", 0x17, func() Instruction { return &ClearSignatureProofs{} }},
	InstructionCreateProofFromBucket:                 {"CREATE_PROOF_FROM_BUCKET", 0x20, func() Instruction { return &CreateProofFromBucket{} }},
	InstructionCreateProofFromBucketOfAmount:         {"CREATE_PROOF_FROM_BUCKET_OF_AMOUNT", 0x21, func() Instruction { return &CreateProofFromBucketOfAmount{} }},
	InstructionCreateProofFromBucketOfNonFungibles:   {"CREATE_PROOF_FROM_BUCKET_OF_NON_FUNGIBLES", 0x22, func() Instruction { return &CreateProofFromBucketOfNonFungibles{} }},
	InstructionCreateProofFromBucketOfAll:            {"CREATE_PROOF_FROM_BUCKET_OF_ALL", 0x23, func() Instruction { return &CreateProofFromBucketOfAll{} }},
	InstructionBurnResource:                          {"BURN_RESOURCE", 0x24, func() Instruction { return &BurnResource{} }},
	InstructionCloneProof:                            {"CLONE_PROOF", 0x30, func() Instruction { return &CloneProof{} }},
	InstructionDropProof:                             {"DROP_PROOF", 0x31, func() Instruction { return &DropProof{} }},
	InstructionDropAllProofs:                         {"DROP_ALL_PROOFS", 0x50, func() Instruction { return &DropAllProofs{} }},
	InstructionCallFunction:                          {"CALL_FUNCTION", 0x40, func() Instruction { return &CallFunction{} }},
	InstructionCallMethod:                            {"CALL_METHOD", 0x41, func() Instruction { return &CallMethod{} }},
	InstructionCallRoyaltyMethod:                     {"CALL_ROYALTY_METHOD", 0x42, func() Instruction { return &CallRoyaltyMethod{} }},
	InstructionCallMetadataMethod:                    {"CALL_METADATA_METHOD", 0x43, func() Instruction { return &CallMetadataMethod{} }},
	InstructionCallAccessRulesMethod:                 {"CALL_ACCESS_RULES_METHOD", 0x44, func() Instruction { return &CallAccessRulesMethod{} }},
	InstructionCallDirectVaultMethod:                 {"CALL_DIRECT_VAULT_METHOD", 0x45, func() Instruction { return &CallDirectVaultMethod{} }},
	InstructionAllocateGlobalAddress:                 {"ALLOCATE_GLOBAL_ADDRESS", 0x51, func() Instruction { return &AllocateGlobalAddress{} }},

	InstructionPublishPackage:                             {"PUBLISH_PACKAGE", noOpcode, func() Instruction { return &PublishPackage{} }},
	InstructionPublishPackageAdvanced:                     {"PUBLISH_PACKAGE_ADVANCED", noOpcode, func() Instruction { return &PublishPackageAdvanced{} }},
	InstructionCreateFungibleResource:                     {"CREATE_FUNGIBLE_RESOURCE", noOpcode, func() Instruction { return &CreateFungibleResource{} }},
	InstructionCreateFungibleResourceWithInitialSupply:    {"CREATE_FUNGIBLE_RESOURCE_WITH_INITIAL_SUPPLY", noOpcode, func() Instruction { return &CreateFungibleResourceWithInitialSupply{} }},
	InstructionCreateNonFungibleResource:                  {"CREATE_NON_FUNGIBLE_RESOURCE", noOpcode, func() Instruction { return &CreateNonFungibleResource{} }},
	InstructionCreateNonFungibleResourceWithInitialSupply: {"CREATE_NON_FUNGIBLE_RESOURCE_WITH_INITIAL_SUPPLY", noOpcode, func() Instruction { return &CreateNonFungibleResourceWithInitialSupply{} }},
	InstructionCreateAccessController:                     {"CREATE_ACCESS_CONTROLLER", noOpcode, func() Instruction { return &CreateAccessController{} }},
	InstructionCreateIdentity:                             {"CREATE_IDENTITY", noOpcode, func() Instruction { return &CreateIdentity{} }},
	InstructionCreateIdentityAdvanced:                     {"CREATE_IDENTITY_ADVANCED", noOpcode, func() Instruction { return &CreateIdentityAdvanced{} }},
	InstructionCreateAccount:                              {"CREATE_ACCOUNT", noOpcode, func() Instruction { return &CreateAccount{} }},
	InstructionCreateAccountAdvanced:                      {"CREATE_ACCOUNT_ADVANCED", noOpcode, func() Instruction { return &CreateAccountAdvanced{} }},
	InstructionSetMetadata:                                {"SET_METADATA", noOpcode, func() Instruction { return &SetMetadata{} }},
	InstructionRemoveMetadata:                             {"REMOVE_METADATA", noOpcode, func() Instruction { return &RemoveMetadata{} }},
	InstructionSetComponentRoyaltyConfig:                  {"SET_COMPONENT_ROYALTY_CONFIG", noOpcode, func() Instruction { return &SetComponentRoyaltyConfig{} }},
	InstructionClaimComponentRoyalty:                      {"CLAIM_COMPONENT_ROYALTY", noOpcode, func() Instruction { return &ClaimComponentRoyalty{} }},
	InstructionUpdateRole:                                 {"UPDATE_ROLE", noOpcode, func() Instruction { return &UpdateRole{} }},
	InstructionSetPackageRoyaltyConfig:                    {"SET_PACKAGE_ROYALTY_CONFIG", noOpcode, func() Instruction { return &SetPackageRoyaltyConfig{} }},
	InstructionClaimPackageRoyalty:                        {"CLAIM_PACKAGE_ROYALTY", noOpcode, func() Instruction { return &ClaimPackageRoyalty{} }},
	InstructionMintFungible:                               {"MINT_FUNGIBLE", noOpcode, func() Instruction { return &MintFungible{} }},
	InstructionMintNonFungible:                            {"MINT_NON_FUNGIBLE", noOpcode, func() Instruction { return &MintNonFungible{} }},
	InstructionMintUuidNonFungible:                        {"MINT_UUID_NON_FUNGIBLE", noOpcode, func() Instruction { return &MintUuidNonFungible{} }},
	InstructionCreateValidator:                            {"CREATE_VALIDATOR", noOpcode, func() Instruction { return &CreateValidator{} }},
	InstructionRecallVault:                                {"RECALL_VAULT", noOpcode, func() Instruction { return &RecallVault{} }},
	InstructionFreezeVault:                                {"FREEZE_VAULT", noOpcode, func() Instruction { return &FreezeVault{} }},
	InstructionUnfreezeVault:                              {"UNFREEZE_VAULT", noOpcode, func() Instruction { return &UnfreezeVault{} }},
}

var (
	instructionsByName   = make(map[string]InstructionKind, numInstructionKinds)
	instructionsByOpcode = make(map[uint8]InstructionKind)
)

func init() {
	for k, info := range instructionInfos {
		instructionsByName[info.name] = InstructionKind(k)
		if info.opcode != noOpcode {
			instructionsByOpcode[uint8(info.opcode)] = InstructionKind(k)
		}
	}
}

// String returns the textual name of the instruction, such as TAKE_FROM_WORKTOP.
func (k InstructionKind) String() string {
	if k < numInstructionKinds {
		return instructionInfos[k].name
	}
	return fmt.Sprintf("InstructionKind(%d)", uint8(k))
}

// IsAliased reports whether k is a high-level instruction.
func (k InstructionKind) IsAliased() bool {
	return k < numInstructionKinds && instructionInfos[k].opcode == noOpcode
}

// Opcode returns the binary discriminator of a low-level instruction.
func (k InstructionKind) Opcode() (uint8, bool) {
	if k >= numInstructionKinds || instructionInfos[k].opcode == noOpcode {
		return 0, false
	}
	return uint8(instructionInfos[k].opcode), true
}

// ParseInstructionKind resolves a textual instruction name.
func ParseInstructionKind(name string) (InstructionKind, error) {
	if k, ok := instructionsByName[name]; ok {
		return k, nil
	}
	return 0, &UnknownInstructionError{Name: name}
}

// MarshalText implements encoding.TextMarshaler.
func (k InstructionKind) MarshalText() ([]byte, error) {
	if k >= numInstructionKinds {
		return nil, &UnknownInstructionError{Name: k.String()}
	}
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *InstructionKind) UnmarshalText(text []byte) error {
	parsed, err := ParseInstructionKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// IsAliased reports whether in is a high-level instruction.
func IsAliased(in Instruction) bool {
	return in.Kind().IsAliased()
}

// NewInstruction returns an empty instruction of kind k.
func NewInstruction(k InstructionKind) (Instruction, error) {
	if k >= numInstructionKinds {
		return nil, &UnknownInstructionError{Name: k.String()}
	}
	return instructionInfos[k].new(), nil
}

// operandRole says how an instruction field is represented.
type operandRole uint8

const (
	// roleValue is a Value field.
	roleValue operandRole = iota
	// roleName is a plain string such as a method name.
	roleName
	// roleArgs is the trailing list of call arguments.
	roleArgs
	// roleProduce is a transient identifier created by the instruction.
	roleProduce
)

// operand points at one field of an instruction.
type operand struct {
	name     string
	role     operandRole
	value    *Value
	text     *string
	args     *[]Value
	produces IdentifierKind
	kinds    []Kind
}

func valueOp(name string, v *Value, kinds ...Kind) operand {
	return operand{name: name, role: roleValue, value: v, kinds: kinds}
}

func nameOp(name string, s *string) operand {
	return operand{name: name, role: roleName, text: s}
}

func argsOp(args *[]Value) operand {
	return operand{name: "args", role: roleArgs, args: args}
}

func produceOp(name string, kind IdentifierKind, v *Value) operand {
	return operand{name: name, role: roleProduce, value: v, produces: kind, kinds: []Kind{kind.ValueKind()}}
}

// check validates v against the kinds the operand accepts.
func (op operand) check(v Value) error {
	if v == nil {
		return ErrNilValue
	}
	if len(op.kinds) == 0 {
		return nil
	}
	for _, k := range op.kinds {
		if v.Kind() == k {
			return nil
		}
	}
	return &InvalidKindError{Expected: op.kinds[0], Actual: v.Kind()}
}

// Accepted kinds of common operands.
var (
	resourceKinds = []Kind{KindResourceAddress, KindNamedAddress}
	packageKinds  = []Kind{KindPackageAddress, KindNamedAddress}
	callableKinds = []Kind{KindComponentAddress, KindResourceAddress, KindPackageAddress, KindSystemAddress, KindNamedAddress}
)

// CloneInstruction returns a deep copy of in.
func CloneInstruction(in Instruction) Instruction {
	out := instructionInfos[in.Kind()].new()
	src, dst := in.operands(), out.operands()
	for i := range src {
		switch src[i].role {
		case roleValue, roleProduce:
			*dst[i].value = CloneValue(*src[i].value)
		case roleName:
			*dst[i].text = *src[i].text
		case roleArgs:
			*dst[i].args = cloneValues(*src[i].args)
		}
	}
	return out
}

// EqualInstructions reports whether a and b are the same variant with
// structurally identical fields.
func EqualInstructions(a, b Instruction) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Kind() != b.Kind() {
		return false
	}
	x, y := a.operands(), b.operands()
	for i := range x {
		switch x[i].role {
		case roleValue, roleProduce:
			if !Equal(*x[i].value, *y[i].value) {
				return false
			}
		case roleName:
			if *x[i].text != *y[i].text {
				return false
			}
		case roleArgs:
			if !equalSlices(*x[i].args, *y[i].args) {
				return false
			}
		}
	}
	return true
}

// Operands returns every Value held by in, in field order, with call
// arguments flattened.
func Operands(in Instruction) []Value {
	var out []Value
	for _, op := range in.operands() {
		switch op.role {
		case roleValue, roleProduce:
			out = append(out, *op.value)
		case roleArgs:
			out = append(out, *op.args...)
		}
	}
	return out
}

// valueSlots returns pointers to every Value slot of in, in field order, so
// that visitors can replace values in place.
func valueSlots(in Instruction) []*Value {
	var out []*Value
	for _, op := range in.operands() {
		switch op.role {
		case roleValue, roleProduce:
			out = append(out, op.value)
		case roleArgs:
			args := *op.args
			for i := range args {
				out = append(out, &args[i])
			}
		}
	}
	return out
}

// validateInstruction checks that every field is set and of an accepted kind.
func validateInstruction(in Instruction) error {
	for i, op := range in.operands() {
		var err error
		switch op.role {
		case roleValue, roleProduce:
			if err = op.check(*op.value); err == nil {
				err = ValidateIfCollection(*op.value)
			}
		case roleArgs:
			for _, a := range *op.args {
				if a == nil {
					err = ErrNilValue
					break
				}
				if err = ValidateIfCollection(a); err != nil {
					break
				}
			}
		}
		if err != nil {
			return &ArgumentError{Instruction: in.Kind(), Index: i, Err: err}
		}
	}
	return nil
}
