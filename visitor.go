package txmanifest

// ValueVisitor is called for every value reached by TraverseValue. Each
// method receives the slot holding the value and may replace it.
type ValueVisitor interface {
	// IsEnabled reports whether the visitor wants to be called at all.
	IsEnabled() bool

	VisitBool(v *Value) error
	VisitI8(v *Value) error
	VisitI16(v *Value) error
	VisitI32(v *Value) error
	VisitI64(v *Value) error
	VisitI128(v *Value) error
	VisitU8(v *Value) error
	VisitU16(v *Value) error
	VisitU32(v *Value) error
	VisitU64(v *Value) error
	VisitU128(v *Value) error
	VisitString(v *Value) error
	VisitEnum(v *Value) error
	VisitArray(v *Value) error
	VisitTuple(v *Value) error
	VisitMap(v *Value) error
	VisitComponentAddress(v *Value) error
	VisitResourceAddress(v *Value) error
	VisitPackageAddress(v *Value) error
	VisitSystemAddress(v *Value) error
	VisitDecimal(v *Value) error
	VisitPreciseDecimal(v *Value) error
	VisitBucket(v *Value) error
	VisitProof(v *Value) error
	VisitAddressReservation(v *Value) error
	VisitNamedAddress(v *Value) error
	VisitOwn(v *Value) error
	VisitNonFungibleLocalId(v *Value) error
	VisitNonFungibleGlobalId(v *Value) error
	VisitBlob(v *Value) error
	VisitExpression(v *Value) error
	VisitBytes(v *Value) error
}

// BaseValueVisitor implements every ValueVisitor method as a no-op. Embed it
// and override the methods of interest.
type BaseValueVisitor struct{}

func (BaseValueVisitor) IsEnabled() bool { return true }

func (BaseValueVisitor) VisitBool(*Value) error                { return nil }
func (BaseValueVisitor) VisitI8(*Value) error                  { return nil }
func (BaseValueVisitor) VisitI16(*Value) error                 { return nil }
func (BaseValueVisitor) VisitI32(*Value) error                 { return nil }
func (BaseValueVisitor) VisitI64(*Value) error                 { return nil }
func (BaseValueVisitor) VisitI128(*Value) error                { return nil }
func (BaseValueVisitor) VisitU8(*Value) error                  { return nil }
func (BaseValueVisitor) VisitU16(*Value) error                 { return nil }
func (BaseValueVisitor) VisitU32(*Value) error                 { return nil }
func (BaseValueVisitor) VisitU64(*Value) error                 { return nil }
func (BaseValueVisitor) VisitU128(*Value) error                { return nil }
func (BaseValueVisitor) VisitString(*Value) error              { return nil }
func (BaseValueVisitor) VisitEnum(*Value) error                { return nil }
func (BaseValueVisitor) VisitArray(*Value) error               { return nil }
func (BaseValueVisitor) VisitTuple(*Value) error               { return nil }
func (BaseValueVisitor) VisitMap(*Value) error                 { return nil }
func (BaseValueVisitor) VisitComponentAddress(*Value) error    { return nil }
func (BaseValueVisitor) VisitResourceAddress(*Value) error     { return nil }
func (BaseValueVisitor) VisitPackageAddress(*Value) error      { return nil }
func (BaseValueVisitor) VisitSystemAddress(*Value) error       { return nil }
func (BaseValueVisitor) VisitDecimal(*Value) error             { return nil }
func (BaseValueVisitor) VisitPreciseDecimal(*Value) error      { return nil }
func (BaseValueVisitor) VisitBucket(*Value) error              { return nil }
func (BaseValueVisitor) VisitProof(*Value) error               { return nil }
func (BaseValueVisitor) VisitAddressReservation(*Value) error  { return nil }
func (BaseValueVisitor) VisitNamedAddress(*Value) error        { return nil }
func (BaseValueVisitor) VisitOwn(*Value) error                 { return nil }
func (BaseValueVisitor) VisitNonFungibleLocalId(*Value) error  { return nil }
func (BaseValueVisitor) VisitNonFungibleGlobalId(*Value) error { return nil }
func (BaseValueVisitor) VisitBlob(*Value) error                { return nil }
func (BaseValueVisitor) VisitExpression(*Value) error          { return nil }
func (BaseValueVisitor) VisitBytes(*Value) error               { return nil }

func visitValue(vis ValueVisitor, slot *Value) error {
	switch (*slot).Kind() {
	case KindBool:
		return vis.VisitBool(slot)
	case KindI8:
		return vis.VisitI8(slot)
	case KindI16:
		return vis.VisitI16(slot)
	case KindI32:
		return vis.VisitI32(slot)
	case KindI64:
		return vis.VisitI64(slot)
	case KindI128:
		return vis.VisitI128(slot)
	case KindU8:
		return vis.VisitU8(slot)
	case KindU16:
		return vis.VisitU16(slot)
	case KindU32:
		return vis.VisitU32(slot)
	case KindU64:
		return vis.VisitU64(slot)
	case KindU128:
		return vis.VisitU128(slot)
	case KindString:
		return vis.VisitString(slot)
	case KindEnum:
		return vis.VisitEnum(slot)
	case KindArray:
		return vis.VisitArray(slot)
	case KindTuple:
		return vis.VisitTuple(slot)
	case KindMap:
		return vis.VisitMap(slot)
	case KindComponentAddress:
		return vis.VisitComponentAddress(slot)
	case KindResourceAddress:
		return vis.VisitResourceAddress(slot)
	case KindPackageAddress:
		return vis.VisitPackageAddress(slot)
	case KindSystemAddress:
		return vis.VisitSystemAddress(slot)
	case KindDecimal:
		return vis.VisitDecimal(slot)
	case KindPreciseDecimal:
		return vis.VisitPreciseDecimal(slot)
	case KindBucket:
		return vis.VisitBucket(slot)
	case KindProof:
		return vis.VisitProof(slot)
	case KindAddressReservation:
		return vis.VisitAddressReservation(slot)
	case KindNamedAddress:
		return vis.VisitNamedAddress(slot)
	case KindOwn:
		return vis.VisitOwn(slot)
	case KindNonFungibleLocalId:
		return vis.VisitNonFungibleLocalId(slot)
	case KindNonFungibleGlobalId:
		return vis.VisitNonFungibleGlobalId(slot)
	case KindBlob:
		return vis.VisitBlob(slot)
	case KindExpression:
		return vis.VisitExpression(slot)
	case KindBytes:
		return vis.VisitBytes(slot)
	}
	return &UnknownKindError{Name: (*slot).Kind().String()}
}

// InstructionVisitor is called for every instruction reached by
// TraverseInstructions.
type InstructionVisitor interface {
	IsEnabled() bool
	// PostVisit runs after all visitors have seen an instruction.
	PostVisit() error

	VisitTakeFromWorktop(in *TakeFromWorktop) error
	VisitTakeNonFungiblesFromWorktop(in *TakeNonFungiblesFromWorktop) error
	VisitTakeAllFromWorktop(in *TakeAllFromWorktop) error
	VisitReturnToWorktop(in *ReturnToWorktop) error
	VisitAssertWorktopContains(in *AssertWorktopContains) error
	VisitAssertWorktopContainsNonFungibles(in *AssertWorktopContainsNonFungibles) error
	VisitPopFromAuthZone(in *PopFromAuthZone) error
	VisitPushToAuthZone(in *PushToAuthZone) error
	VisitClearAuthZone(in *ClearAuthZone) error
	VisitCreateProofFromAuthZone(in *CreateProofFromAuthZone) error
	VisitCreateProofFromAuthZoneOfAmount(in *CreateProofFromAuthZoneOfAmount) error
	VisitCreateProofFromAuthZoneOfNonFungibles(in *CreateProofFromAuthZoneOfNonFungibles) error
	VisitCreateProofFromAuthZoneOfAll(in *CreateProofFromAuthZoneOfAll) error
	VisitClearSignatureProofs(in *ClearSignatureProofs) error
	VisitCreateProofFromBucket(in *CreateProofFromBucket) error
	VisitCreateProofFromBucketOfAmount(in *CreateProofFromBucketOfAmount) error
	VisitCreateProofFromBucketOfNonFungibles(in *CreateProofFromBucketOfNonFungibles) error
	VisitCreateProofFromBucketOfAll(in *CreateProofFromBucketOfAll) error
	VisitBurnResource(in *BurnResource) error
	VisitCloneProof(in *CloneProof) error
	VisitDropProof(in *DropProof) error
	VisitDropAllProofs(in *DropAllProofs) error
	VisitCallFunction(in *CallFunction) error
	VisitCallMethod(in *CallMethod) error
	VisitCallRoyaltyMethod(in *CallRoyaltyMethod) error
	VisitCallMetadataMethod(in *CallMetadataMethod) error
	VisitCallAccessRulesMethod(in *CallAccessRulesMethod) error
	VisitCallDirectVaultMethod(in *CallDirectVaultMethod) error
	VisitAllocateGlobalAddress(in *AllocateGlobalAddress) error
	VisitPublishPackage(in *PublishPackage) error
	VisitPublishPackageAdvanced(in *PublishPackageAdvanced) error
	VisitCreateFungibleResource(in *CreateFungibleResource) error
	VisitCreateFungibleResourceWithInitialSupply(in *CreateFungibleResourceWithInitialSupply) error
	VisitCreateNonFungibleResource(in *CreateNonFungibleResource) error
	VisitCreateNonFungibleResourceWithInitialSupply(in *CreateNonFungibleResourceWithInitialSupply) error
	VisitCreateAccessController(in *CreateAccessController) error
	VisitCreateIdentity(in *CreateIdentity) error
	VisitCreateIdentityAdvanced(in *CreateIdentityAdvanced) error
	VisitCreateAccount(in *CreateAccount) error
	VisitCreateAccountAdvanced(in *CreateAccountAdvanced) error
	VisitSetMetadata(in *SetMetadata) error
	VisitRemoveMetadata(in *RemoveMetadata) error
	VisitSetComponentRoyaltyConfig(in *SetComponentRoyaltyConfig) error
	VisitClaimComponentRoyalty(in *ClaimComponentRoyalty) error
	VisitUpdateRole(in *UpdateRole) error
	VisitSetPackageRoyaltyConfig(in *SetPackageRoyaltyConfig) error
	VisitClaimPackageRoyalty(in *ClaimPackageRoyalty) error
	VisitMintFungible(in *MintFungible) error
	VisitMintNonFungible(in *MintNonFungible) error
	VisitMintUuidNonFungible(in *MintUuidNonFungible) error
	VisitCreateValidator(in *CreateValidator) error
	VisitRecallVault(in *RecallVault) error
	VisitFreezeVault(in *FreezeVault) error
	VisitUnfreezeVault(in *UnfreezeVault) error
}

// BaseInstructionVisitor implements every InstructionVisitor method as a
// no-op.
type BaseInstructionVisitor struct{}

func (BaseInstructionVisitor) IsEnabled() bool  { return true }
func (BaseInstructionVisitor) PostVisit() error { return nil }

func (BaseInstructionVisitor) VisitTakeFromWorktop(*TakeFromWorktop) error                                                       { return nil }
func (BaseInstructionVisitor) VisitTakeNonFungiblesFromWorktop(*TakeNonFungiblesFromWorktop) error                               { return nil }
func (BaseInstructionVisitor) VisitTakeAllFromWorktop(*TakeAllFromWorktop) error                                                 { return nil }
func (BaseInstructionVisitor) VisitReturnToWorktop(*ReturnToWorktop) error                                                       { return nil }
func (BaseInstructionVisitor) VisitAssertWorktopContains(*AssertWorktopContains) error                                           { return nil }
func (BaseInstructionVisitor) VisitAssertWorktopContainsNonFungibles(*AssertWorktopContainsNonFungibles) error                   { return nil }
func (BaseInstructionVisitor) VisitPopFromAuthZone(*PopFromAuthZone) error                                                       { return nil }
func (BaseInstructionVisitor) VisitPushToAuthZone(*PushToAuthZone) error                                                         { return nil }
func (BaseInstructionVisitor) VisitClearAuthZone(*ClearAuthZone) error                                                           { return nil }
func (BaseInstructionVisitor) VisitCreateProofFromAuthZone(*CreateProofFromAuthZone) error                                       { return nil }
func (BaseInstructionVisitor) VisitCreateProofFromAuthZoneOfAmount(*CreateProofFromAuthZoneOfAmount) error                       { return nil }
func (BaseInstructionVisitor) VisitCreateProofFromAuthZoneOfNonFungibles(*CreateProofFromAuthZoneOfNonFungibles) error           { return nil }
func (BaseInstructionVisitor) VisitCreateProofFromAuthZoneOfAll(*CreateProofFromAuthZoneOfAll) error                             { return nil }
func (BaseInstructionVisitor) VisitClearSignatureProofs(*ClearSignatureProofs) error                                             { return nil }
func (BaseInstructionVisitor) VisitCreateProofFromBucket(*CreateProofFromBucket) error                                           { return nil }
func (BaseInstructionVisitor) VisitCreateProofFromBucketOfAmount(*CreateProofFromBucketOfAmount) error                           { return nil }
func (BaseInstructionVisitor) VisitCreateProofFromBucketOfNonFungibles(*CreateProofFromBucketOfNonFungibles) error               { return nil }
func (BaseInstructionVisitor) VisitCreateProofFromBucketOfAll(*CreateProofFromBucketOfAll) error                                 { return nil }
func (BaseInstructionVisitor) VisitBurnResource(*BurnResource) error                                                             { return nil }
func (BaseInstructionVisitor) VisitCloneProof(*CloneProof) error                                                                 { return nil }
func (BaseInstructionVisitor) VisitDropProof(*DropProof) error                                                                   { return nil }
func (BaseInstructionVisitor) VisitDropAllProofs(*DropAllProofs) error                                                           { return nil }
func (BaseInstructionVisitor) VisitCallFunction(*CallFunction) error                                                             { return nil }
func (BaseInstructionVisitor) VisitCallMethod(*CallMethod) error                                                                 { return nil }
func (BaseInstructionVisitor) VisitCallRoyaltyMethod(*CallRoyaltyMethod) error                                                   { return nil }
func (BaseInstructionVisitor) VisitCallMetadataMethod(*CallMetadataMethod) error                                                 { return nil }
func (BaseInstructionVisitor) VisitCallAccessRulesMethod(*CallAccessRulesMethod) error                                           { return nil }
func (BaseInstructionVisitor) VisitCallDirectVaultMethod(*CallDirectVaultMethod) error                                           { return nil }
func (BaseInstructionVisitor) VisitAllocateGlobalAddress(*AllocateGlobalAddress) error                                           { return nil }
func (BaseInstructionVisitor) VisitPublishPackage(*PublishPackage) error                                                         { return nil }
func (BaseInstructionVisitor) VisitPublishPackageAdvanced(*PublishPackageAdvanced) error                                         { return nil }
func (BaseInstructionVisitor) VisitCreateFungibleResource(*CreateFungibleResource) error                                         { return nil }
func (BaseInstructionVisitor) VisitCreateFungibleResourceWithInitialSupply(*CreateFungibleResourceWithInitialSupply) error       { return nil }
func (BaseInstructionVisitor) VisitCreateNonFungibleResource(*CreateNonFungibleResource) error                                   { return nil }
func (BaseInstructionVisitor) VisitCreateNonFungibleResourceWithInitialSupply(*CreateNonFungibleResourceWithInitialSupply) error { return nil }
func (BaseInstructionVisitor) VisitCreateAccessController(*CreateAccessController) error                                         { return nil }
func (BaseInstructionVisitor) VisitCreateIdentity(*CreateIdentity) error                                                         { return nil }
func (BaseInstructionVisitor) VisitCreateIdentityAdvanced(*CreateIdentityAdvanced) error                                         { return nil }
func (BaseInstructionVisitor) VisitCreateAccount(*CreateAccount) error                                                           { return nil }
func (BaseInstructionVisitor) VisitCreateAccountAdvanced(*CreateAccountAdvanced) error                                           { return nil }
func (BaseInstructionVisitor) VisitSetMetadata(*SetMetadata) error                                                               { return nil }
func (BaseInstructionVisitor) VisitRemoveMetadata(*RemoveMetadata) error                                                         { return nil }
func (BaseInstructionVisitor) VisitSetComponentRoyaltyConfig(*SetComponentRoyaltyConfig) error                                   { return nil }
func (BaseInstructionVisitor) VisitClaimComponentRoyalty(*ClaimComponentRoyalty) error                                           { return nil }
func (BaseInstructionVisitor) VisitUpdateRole(*UpdateRole) error                                                                 { return nil }
func (BaseInstructionVisitor) VisitSetPackageRoyaltyConfig(*SetPackageRoyaltyConfig) error                                       { return nil }
func (BaseInstructionVisitor) VisitClaimPackageRoyalty(*ClaimPackageRoyalty) error                                               { return nil }
func (BaseInstructionVisitor) VisitMintFungible(*MintFungible) error                                                             { return nil }
func (BaseInstructionVisitor) VisitMintNonFungible(*MintNonFungible) error                                                       { return nil }
func (BaseInstructionVisitor) VisitMintUuidNonFungible(*MintUuidNonFungible) error                                               { return nil }
func (BaseInstructionVisitor) VisitCreateValidator(*CreateValidator) error                                                       { return nil }
func (BaseInstructionVisitor) VisitRecallVault(*RecallVault) error                                                               { return nil }
func (BaseInstructionVisitor) VisitFreezeVault(*FreezeVault) error                                                               { return nil }
func (BaseInstructionVisitor) VisitUnfreezeVault(*UnfreezeVault) error                                                           { return nil }

func visitInstruction(vis InstructionVisitor, in Instruction) error {
	switch x := in.(type) {
	case *TakeFromWorktop:
		return vis.VisitTakeFromWorktop(x)
	case *TakeNonFungiblesFromWorktop:
		return vis.VisitTakeNonFungiblesFromWorktop(x)
	case *TakeAllFromWorktop:
		return vis.VisitTakeAllFromWorktop(x)
	case *ReturnToWorktop:
		return vis.VisitReturnToWorktop(x)
	case *AssertWorktopContains:
		return vis.VisitAssertWorktopContains(x)
	case *AssertWorktopContainsNonFungibles:
		return vis.VisitAssertWorktopContainsNonFungibles(x)
	case *PopFromAuthZone:
		return vis.VisitPopFromAuthZone(x)
	case *PushToAuthZone:
		return vis.VisitPushToAuthZone(x)
	case *ClearAuthZone:
		return vis.VisitClearAuthZone(x)
	case *CreateProofFromAuthZone:
		return vis.VisitCreateProofFromAuthZone(x)
	case *CreateProofFromAuthZoneOfAmount:
		return vis.VisitCreateProofFromAuthZoneOfAmount(x)
	case *CreateProofFromAuthZoneOfNonFungibles:
		return vis.VisitCreateProofFromAuthZoneOfNonFungibles(x)
	case *CreateProofFromAuthZoneOfAll:
		return vis.VisitCreateProofFromAuthZoneOfAll(x)
	case *ClearSignatureProofs:
		return vis.VisitClearSignatureProofs(x)
	case *CreateProofFromBucket:
		return vis.VisitCreateProofFromBucket(x)
	case *CreateProofFromBucketOfAmount:
		return vis.VisitCreateProofFromBucketOfAmount(x)
	case *CreateProofFromBucketOfNonFungibles:
		return vis.VisitCreateProofFromBucketOfNonFungibles(x)
	case *CreateProofFromBucketOfAll:
		return vis.VisitCreateProofFromBucketOfAll(x)
	case *BurnResource:
		return vis.VisitBurnResource(x)
	case *CloneProof:
		return vis.VisitCloneProof(x)
	case *DropProof:
		return vis.VisitDropProof(x)
	case *DropAllProofs:
		return vis.VisitDropAllProofs(x)
	case *CallFunction:
		return vis.VisitCallFunction(x)
	case *CallMethod:
		return vis.VisitCallMethod(x)
	case *CallRoyaltyMethod:
		return vis.VisitCallRoyaltyMethod(x)
	case *CallMetadataMethod:
		return vis.VisitCallMetadataMethod(x)
	case *CallAccessRulesMethod:
		return vis.VisitCallAccessRulesMethod(x)
	case *CallDirectVaultMethod:
		return vis.VisitCallDirectVaultMethod(x)
	case *AllocateGlobalAddress:
		return vis.VisitAllocateGlobalAddress(x)
	case *PublishPackage:
		return vis.VisitPublishPackage(x)
	case *PublishPackageAdvanced:
		return vis.VisitPublishPackageAdvanced(x)
	case *CreateFungibleResource:
		return vis.VisitCreateFungibleResource(x)
	case *CreateFungibleResourceWithInitialSupply:
		return vis.VisitCreateFungibleResourceWithInitialSupply(x)
	case *CreateNonFungibleResource:
		return vis.VisitCreateNonFungibleResource(x)
	case *CreateNonFungibleResourceWithInitialSupply:
		return vis.VisitCreateNonFungibleResourceWithInitialSupply(x)
	case *CreateAccessController:
		return vis.VisitCreateAccessController(x)
	case *CreateIdentity:
		return vis.VisitCreateIdentity(x)
	case *CreateIdentityAdvanced:
		return vis.VisitCreateIdentityAdvanced(x)
	case *CreateAccount:
		return vis.VisitCreateAccount(x)
	case *CreateAccountAdvanced:
		return vis.VisitCreateAccountAdvanced(x)
	case *SetMetadata:
		return vis.VisitSetMetadata(x)
	case *RemoveMetadata:
		return vis.VisitRemoveMetadata(x)
	case *SetComponentRoyaltyConfig:
		return vis.VisitSetComponentRoyaltyConfig(x)
	case *ClaimComponentRoyalty:
		return vis.VisitClaimComponentRoyalty(x)
	case *UpdateRole:
		return vis.VisitUpdateRole(x)
	case *SetPackageRoyaltyConfig:
		return vis.VisitSetPackageRoyaltyConfig(x)
	case *ClaimPackageRoyalty:
		return vis.VisitClaimPackageRoyalty(x)
	case *MintFungible:
		return vis.VisitMintFungible(x)
	case *MintNonFungible:
		return vis.VisitMintNonFungible(x)
	case *MintUuidNonFungible:
		return vis.VisitMintUuidNonFungible(x)
	case *CreateValidator:
		return vis.VisitCreateValidator(x)
	case *RecallVault:
		return vis.VisitRecallVault(x)
	case *FreezeVault:
		return vis.VisitFreezeVault(x)
	case *UnfreezeVault:
		return vis.VisitUnfreezeVault(x)
	}
	return &UnknownInstructionError{Name: in.Kind().String()}
}
