package txmanifest

// Low-level instructions. Each has a one-to-one binary encoding.

// TakeFromWorktop takes an amount of a resource from the worktop into a new bucket.
type TakeFromWorktop struct {
	ResourceAddress Value
	Amount          Value
	NewBucket       Value
}

// TakeNonFungiblesFromWorktop takes specific non-fungibles from the worktop into a new bucket.
type TakeNonFungiblesFromWorktop struct {
	ResourceAddress Value
	Ids             Value
	NewBucket       Value
}

// TakeAllFromWorktop takes the whole balance of a resource from the worktop.
type TakeAllFromWorktop struct {
	ResourceAddress Value
	NewBucket       Value
}

// ReturnToWorktop puts a bucket back on the worktop.
type ReturnToWorktop struct {
	Bucket Value
}

type AssertWorktopContains struct {
	ResourceAddress Value
	Amount          Value
}

type AssertWorktopContainsNonFungibles struct {
	ResourceAddress Value
	Ids             Value
}

type PopFromAuthZone struct {
	NewProof Value
}

type PushToAuthZone struct {
	Proof Value
}

type ClearAuthZone struct{}

type CreateProofFromAuthZone struct {
	ResourceAddress Value
	NewProof        Value
}

type CreateProofFromAuthZoneOfAmount struct {
	ResourceAddress Value
	Amount          Value
	NewProof        Value
}

type CreateProofFromAuthZoneOfNonFungibles struct {
	ResourceAddress Value
	Ids             Value
	NewProof        Value
}

type CreateProofFromAuthZoneOfAll struct {
	ResourceAddress Value
	NewProof        Value
}

type ClearSignatureProofs struct{}

type CreateProofFromBucket struct {
	Bucket   Value
	NewProof Value
}

type CreateProofFromBucketOfAmount struct {
	Bucket   Value
	Amount   Value
	NewProof Value
}

type CreateProofFromBucketOfNonFungibles struct {
	Bucket   Value
	Ids      Value
	NewProof Value
}

type CreateProofFromBucketOfAll struct {
	Bucket   Value
	NewProof Value
}

// BurnResource consumes a bucket and destroys its contents.
type BurnResource struct {
	Bucket Value
}

type CloneProof struct {
	Proof    Value
	NewProof Value
}

type DropProof struct {
	Proof Value
}

type DropAllProofs struct{}

// CallFunction invokes a blueprint function.
type CallFunction struct {
	PackageAddress Value
	BlueprintName  string
	FunctionName   string
	Args           []Value
}

// CallMethod invokes a method on the main module of a component.
type CallMethod struct {
	Address    Value
	MethodName string
	Args       []Value
}

// CallRoyaltyMethod invokes a method on the royalty module of a component.
type CallRoyaltyMethod struct {
	Address    Value
	MethodName string
	Args       []Value
}

// CallMetadataMethod invokes a method on the metadata module of an entity.
type CallMetadataMethod struct {
	Address    Value
	MethodName string
	Args       []Value
}

// CallAccessRulesMethod invokes a method on the access rules module of an entity.
type CallAccessRulesMethod struct {
	Address    Value
	MethodName string
	Args       []Value
}

// CallDirectVaultMethod invokes a method directly on an owned vault.
type CallDirectVaultMethod struct {
	VaultID    Value
	MethodName string
	Args       []Value
}

// AllocateGlobalAddress reserves a global address for a blueprint and
// produces both the reservation and a named address referring to it.
type AllocateGlobalAddress struct {
	PackageAddress     Value
	BlueprintName      string
	AddressReservation Value
	NamedAddress       Value
}

func (*TakeFromWorktop) isInstruction()                       {}
func (*TakeNonFungiblesFromWorktop) isInstruction()           {}
func (*TakeAllFromWorktop) isInstruction()                    {}
func (*ReturnToWorktop) isInstruction()                       {}
func (*AssertWorktopContains) isInstruction()                 {}
func (*AssertWorktopContainsNonFungibles) isInstruction()     {}
func (*PopFromAuthZone) isInstruction()                       {}
func (*PushToAuthZone) isInstruction()                        {}
func (*ClearAuthZone) isInstruction()                         {}
func (*CreateProofFromAuthZone) isInstruction()               {}
func (*CreateProofFromAuthZoneOfAmount) isInstruction()       {}
func (*CreateProofFromAuthZoneOfNonFungibles) isInstruction() {}
func (*CreateProofFromAuthZoneOfAll) isInstruction()          {}
func (*ClearSignatureProofs) isInstruction()                  {}
func (*CreateProofFromBucket) isInstruction()                 {}
func (*CreateProofFromBucketOfAmount) isInstruction()         {}
func (*CreateProofFromBucketOfNonFungibles) isInstruction()   {}
func (*CreateProofFromBucketOfAll) isInstruction()            {}
func (*BurnResource) isInstruction()                          {}
func (*CloneProof) isInstruction()                            {}
func (*DropProof) isInstruction()                             {}
func (*DropAllProofs) isInstruction()                         {}
func (*CallFunction) isInstruction()                          {}
func (*CallMethod) isInstruction()                            {}
func (*CallRoyaltyMethod) isInstruction()                     {}
func (*CallMetadataMethod) isInstruction()                    {}
func (*CallAccessRulesMethod) isInstruction()                 {}
func (*CallDirectVaultMethod) isInstruction()                 {}
func (*AllocateGlobalAddress) isInstruction()                 {}

func (*TakeFromWorktop) Kind() InstructionKind             { return InstructionTakeFromWorktop }
func (*TakeNonFungiblesFromWorktop) Kind() InstructionKind { return InstructionTakeNonFungiblesFromWorktop }
func (*TakeAllFromWorktop) Kind() InstructionKind          { return InstructionTakeAllFromWorktop }
func (*ReturnToWorktop) Kind() InstructionKind             { return InstructionReturnToWorktop }
func (*AssertWorktopContains) Kind() InstructionKind       { return InstructionAssertWorktopContains }
func (*AssertWorktopContainsNonFungibles) Kind() InstructionKind {
	return InstructionAssertWorktopContainsNonFungibles
}
func (*PopFromAuthZone) Kind() InstructionKind         { return InstructionPopFromAuthZone }
func (*PushToAuthZone) Kind() InstructionKind          { return InstructionPushToAuthZone }
func (*ClearAuthZone) Kind() InstructionKind           { return InstructionClearAuthZone }
func (*CreateProofFromAuthZone) Kind() InstructionKind { return InstructionCreateProofFromAuthZone }
func (*CreateProofFromAuthZoneOfAmount) Kind() InstructionKind {
	return InstructionCreateProofFromAuthZoneOfAmount
}
func (*CreateProofFromAuthZoneOfNonFungibles) Kind() InstructionKind {
	return InstructionCreateProofFromAuthZoneOfNonFungibles
}
func (*CreateProofFromAuthZoneOfAll) Kind() InstructionKind {
	return InstructionCreateProofFromAuthZoneOfAll
}
func (*ClearSignatureProofs) Kind() InstructionKind  { return InstructionClearSignatureProofs }
func (*CreateProofFromBucket) Kind() InstructionKind { return InstructionCreateProofFromBucket }
func (*CreateProofFromBucketOfAmount) Kind() InstructionKind {
	return InstructionCreateProofFromBucketOfAmount
}
func (*CreateProofFromBucketOfNonFungibles) Kind() InstructionKind {
	return InstructionCreateProofFromBucketOfNonFungibles
}
func (*CreateProofFromBucketOfAll) Kind() InstructionKind {
	return InstructionCreateProofFromBucketOfAll
}
func (*BurnResource) Kind() InstructionKind          { return InstructionBurnResource }
func (*CloneProof) Kind() InstructionKind            { return InstructionCloneProof }
func (*DropProof) Kind() InstructionKind             { return InstructionDropProof }
func (*DropAllProofs) Kind() InstructionKind         { return InstructionDropAllProofs }
func (*CallFunction) Kind() InstructionKind          { return InstructionCallFunction }
func (*CallMethod) Kind() InstructionKind            { return InstructionCallMethod }
func (*CallRoyaltyMethod) Kind() InstructionKind     { return InstructionCallRoyaltyMethod }
func (*CallMetadataMethod) Kind() InstructionKind    { return InstructionCallMetadataMethod }
func (*CallAccessRulesMethod) Kind() InstructionKind { return InstructionCallAccessRulesMethod }
func (*CallDirectVaultMethod) Kind() InstructionKind { return InstructionCallDirectVaultMethod }
func (*AllocateGlobalAddress) Kind() InstructionKind { return InstructionAllocateGlobalAddress }

func (in *TakeFromWorktop) operands() []operand {
	return []operand{
		valueOp("resource_address", &in.ResourceAddress, resourceKinds...),
		valueOp("amount", &in.Amount, KindDecimal),
		produceOp("new_bucket", IdentifierBucket, &in.NewBucket),
	}
}

func (in *TakeNonFungiblesFromWorktop) operands() []operand {
	return []operand{
		valueOp("resource_address", &in.ResourceAddress, resourceKinds...),
		valueOp("ids", &in.Ids, KindArray),
		produceOp("new_bucket", IdentifierBucket, &in.NewBucket),
	}
}

func (in *TakeAllFromWorktop) operands() []operand {
	return []operand{
		valueOp("resource_address", &in.ResourceAddress, resourceKinds...),
		produceOp("new_bucket", IdentifierBucket, &in.NewBucket),
	}
}

func (in *ReturnToWorktop) operands() []operand {
	return []operand{valueOp("bucket", &in.Bucket, KindBucket)}
}

func (in *AssertWorktopContains) operands() []operand {
	return []operand{
		valueOp("resource_address", &in.ResourceAddress, resourceKinds...),
		valueOp("amount", &in.Amount, KindDecimal),
	}
}

func (in *AssertWorktopContainsNonFungibles) operands() []operand {
	return []operand{
		valueOp("resource_address", &in.ResourceAddress, resourceKinds...),
		valueOp("ids", &in.Ids, KindArray),
	}
}

func (in *PopFromAuthZone) operands() []operand {
	return []operand{produceOp("new_proof", IdentifierProof, &in.NewProof)}
}

func (in *PushToAuthZone) operands() []operand {
	return []operand{valueOp("proof", &in.Proof, KindProof)}
}

func (*ClearAuthZone) operands() []operand { return nil }

func (in *CreateProofFromAuthZone) operands() []operand {
	return []operand{
		valueOp("resource_address", &in.ResourceAddress, resourceKinds...),
		produceOp("new_proof", IdentifierProof, &in.NewProof),
	}
}

func (in *CreateProofFromAuthZoneOfAmount) operands() []operand {
	return []operand{
		valueOp("resource_address", &in.ResourceAddress, resourceKinds...),
		valueOp("amount", &in.Amount, KindDecimal),
		produceOp("new_proof", IdentifierProof, &in.NewProof),
	}
}

func (in *CreateProofFromAuthZoneOfNonFungibles) operands() []operand {
	return []operand{
		valueOp("resource_address", &in.ResourceAddress, resourceKinds...),
		valueOp("ids", &in.Ids, KindArray),
		produceOp("new_proof", IdentifierProof, &in.NewProof),
	}
}

func (in *CreateProofFromAuthZoneOfAll) operands() []operand {
	return []operand{
		valueOp("resource_address", &in.ResourceAddress, resourceKinds...),
		produceOp("new_proof", IdentifierProof, &in.NewProof),
	}
}

func (*ClearSignatureProofs) operands() []operand { return nil }

func (in *CreateProofFromBucket) operands() []operand {
	return []operand{
		valueOp("bucket", &in.Bucket, KindBucket),
		produceOp("new_proof", IdentifierProof, &in.NewProof),
	}
}

func (in *CreateProofFromBucketOfAmount) operands() []operand {
	return []operand{
		valueOp("bucket", &in.Bucket, KindBucket),
		valueOp("amount", &in.Amount, KindDecimal),
		produceOp("new_proof", IdentifierProof, &in.NewProof),
	}
}

func (in *CreateProofFromBucketOfNonFungibles) operands() []operand {
	return []operand{
		valueOp("bucket", &in.Bucket, KindBucket),
		valueOp("ids", &in.Ids, KindArray),
		produceOp("new_proof", IdentifierProof, &in.NewProof),
	}
}

func (in *CreateProofFromBucketOfAll) operands() []operand {
	return []operand{
		valueOp("bucket", &in.Bucket, KindBucket),
		produceOp("new_proof", IdentifierProof, &in.NewProof),
	}
}

func (in *BurnResource) operands() []operand {
	return []operand{valueOp("bucket", &in.Bucket, KindBucket)}
}

func (in *CloneProof) operands() []operand {
	return []operand{
		valueOp("proof", &in.Proof, KindProof),
		produceOp("new_proof", IdentifierProof, &in.NewProof),
	}
}

func (in *DropProof) operands() []operand {
	return []operand{valueOp("proof", &in.Proof, KindProof)}
}

func (*DropAllProofs) operands() []operand { return nil }

func (in *CallFunction) operands() []operand {
	return []operand{
		valueOp("package_address", &in.PackageAddress, packageKinds...),
		nameOp("blueprint_name", &in.BlueprintName),
		nameOp("function_name", &in.FunctionName),
		argsOp(&in.Args),
	}
}

func (in *CallMethod) operands() []operand {
	return []operand{
		valueOp("address", &in.Address, callableKinds...),
		nameOp("method_name", &in.MethodName),
		argsOp(&in.Args),
	}
}

func (in *CallRoyaltyMethod) operands() []operand {
	return []operand{
		valueOp("address", &in.Address, callableKinds...),
		nameOp("method_name", &in.MethodName),
		argsOp(&in.Args),
	}
}

func (in *CallMetadataMethod) operands() []operand {
	return []operand{
		valueOp("address", &in.Address, callableKinds...),
		nameOp("method_name", &in.MethodName),
		argsOp(&in.Args),
	}
}

func (in *CallAccessRulesMethod) operands() []operand {
	return []operand{
		valueOp("address", &in.Address, callableKinds...),
		nameOp("method_name", &in.MethodName),
		argsOp(&in.Args),
	}
}

func (in *CallDirectVaultMethod) operands() []operand {
	return []operand{
		valueOp("vault_id", &in.VaultID, KindOwn),
		nameOp("method_name", &in.MethodName),
		argsOp(&in.Args),
	}
}

func (in *AllocateGlobalAddress) operands() []operand {
	return []operand{
		valueOp("package_address", &in.PackageAddress, packageKinds...),
		nameOp("blueprint_name", &in.BlueprintName),
		produceOp("address_reservation", IdentifierAddressReservation, &in.AddressReservation),
		produceOp("named_address", IdentifierNamedAddress, &in.NamedAddress),
	}
}
