package txmanifest

// High-level instructions. Each is shorthand for a specific call and has no
// binary form of its own; see ToLowLevel and Alias.

// PublishPackage publishes a package owned by no one.
type PublishPackage struct {
	Code     Value
	Setup    Value
	Metadata Value
}

type PublishPackageAdvanced struct {
	PackageAddress Value
	Code           Value
	Setup          Value
	Metadata       Value
	OwnerRule      Value
}

type CreateFungibleResource struct {
	TrackTotalSupply Value
	Divisibility     Value
	Metadata         Value
	AccessRules      Value
}

type CreateFungibleResourceWithInitialSupply struct {
	TrackTotalSupply Value
	Divisibility     Value
	Metadata         Value
	AccessRules      Value
	InitialSupply    Value
}

type CreateNonFungibleResource struct {
	IdType            Value
	TrackTotalSupply  Value
	NonFungibleSchema Value
	Metadata          Value
	AccessRules       Value
}

type CreateNonFungibleResourceWithInitialSupply struct {
	IdType            Value
	TrackTotalSupply  Value
	NonFungibleSchema Value
	Metadata          Value
	AccessRules       Value
	Entries           Value
}

type CreateAccessController struct {
	ControlledAsset             Value
	RuleSet                     Value
	TimedRecoveryDelayInMinutes Value
}

type CreateIdentity struct{}

type CreateIdentityAdvanced struct {
	OwnerRule Value
}

type CreateAccount struct{}

type CreateAccountAdvanced struct {
	OwnerRole Value
}

// SetMetadata sets a metadata entry on a global entity.
type SetMetadata struct {
	Address Value
	Key     Value
	Value   Value
}

type RemoveMetadata struct {
	Address Value
	Key     Value
}

type SetComponentRoyaltyConfig struct {
	Address Value
	Method  Value
	Amount  Value
}

type ClaimComponentRoyalty struct {
	Address Value
}

type UpdateRole struct {
	Address    Value
	RoleKey    Value
	Rule       Value
	Mutability Value
}

type SetPackageRoyaltyConfig struct {
	Address   Value
	Blueprint Value
	FnName    Value
	Royalty   Value
}

type ClaimPackageRoyalty struct {
	Address Value
}

// MintFungible mints an amount of a fungible resource onto the worktop.
type MintFungible struct {
	Address Value
	Amount  Value
}

type MintNonFungible struct {
	Address Value
	Entries Value
}

type MintUuidNonFungible struct {
	Address Value
	Entries Value
}

type CreateValidator struct {
	Address Value
	Key     Value
}

// RecallVault recalls an amount out of a vault owned by someone else.
type RecallVault struct {
	VaultID Value
	Amount  Value
}

type FreezeVault struct {
	VaultID Value
}

type UnfreezeVault struct {
	VaultID Value
}

func (*PublishPackage) isInstruction()                             {}
func (*PublishPackageAdvanced) isInstruction()                     {}
func (*CreateFungibleResource) isInstruction()                     {}
func (*CreateFungibleResourceWithInitialSupply) isInstruction()    {}
func (*CreateNonFungibleResource) isInstruction()                  {}
func (*CreateNonFungibleResourceWithInitialSupply) isInstruction() {}
func (*CreateAccessController) isInstruction()                     {}
func (*CreateIdentity) isInstruction()                             {}
func (*CreateIdentityAdvanced) isInstruction()                     {}
func (*CreateAccount) isInstruction()                              {}
func (*CreateAccountAdvanced) isInstruction()                      {}
func (*SetMetadata) isInstruction()                                {}
func (*RemoveMetadata) isInstruction()                             {}
func (*SetComponentRoyaltyConfig) isInstruction()                  {}
func (*ClaimComponentRoyalty) isInstruction()                      {}
func (*UpdateRole) isInstruction()                                 {}
func (*SetPackageRoyaltyConfig) isInstruction()                    {}
func (*ClaimPackageRoyalty) isInstruction()                        {}
func (*MintFungible) isInstruction()                               {}
func (*MintNonFungible) isInstruction()                            {}
func (*MintUuidNonFungible) isInstruction()                        {}
func (*CreateValidator) isInstruction()                            {}
func (*RecallVault) isInstruction()                                {}
func (*FreezeVault) isInstruction()                                {}
func (*UnfreezeVault) isInstruction()                              {}

func (*PublishPackage) Kind() InstructionKind         { return InstructionPublishPackage }
func (*PublishPackageAdvanced) Kind() InstructionKind { return InstructionPublishPackageAdvanced }
func (*CreateFungibleResource) Kind() InstructionKind { return InstructionCreateFungibleResource }
func (*CreateFungibleResourceWithInitialSupply) Kind() InstructionKind {
	return InstructionCreateFungibleResourceWithInitialSupply
}
func (*CreateNonFungibleResource) Kind() InstructionKind {
	return InstructionCreateNonFungibleResource
}
func (*CreateNonFungibleResourceWithInitialSupply) Kind() InstructionKind {
	return InstructionCreateNonFungibleResourceWithInitialSupply
}
func (*CreateAccessController) Kind() InstructionKind    { return InstructionCreateAccessController }
func (*CreateIdentity) Kind() InstructionKind            { return InstructionCreateIdentity }
func (*CreateIdentityAdvanced) Kind() InstructionKind    { return InstructionCreateIdentityAdvanced }
func (*CreateAccount) Kind() InstructionKind             { return InstructionCreateAccount }
func (*CreateAccountAdvanced) Kind() InstructionKind     { return InstructionCreateAccountAdvanced }
func (*SetMetadata) Kind() InstructionKind               { return InstructionSetMetadata }
func (*RemoveMetadata) Kind() InstructionKind            { return InstructionRemoveMetadata }
func (*SetComponentRoyaltyConfig) Kind() InstructionKind { return InstructionSetComponentRoyaltyConfig }
func (*ClaimComponentRoyalty) Kind() InstructionKind     { return InstructionClaimComponentRoyalty }
func (*UpdateRole) Kind() InstructionKind                { return InstructionUpdateRole }
func (*SetPackageRoyaltyConfig) Kind() InstructionKind   { return InstructionSetPackageRoyaltyConfig }
func (*ClaimPackageRoyalty) Kind() InstructionKind       { return InstructionClaimPackageRoyalty }
func (*MintFungible) Kind() InstructionKind              { return InstructionMintFungible }
func (*MintNonFungible) Kind() InstructionKind           { return InstructionMintNonFungible }
func (*MintUuidNonFungible) Kind() InstructionKind       { return InstructionMintUuidNonFungible }
func (*CreateValidator) Kind() InstructionKind           { return InstructionCreateValidator }
func (*RecallVault) Kind() InstructionKind               { return InstructionRecallVault }
func (*FreezeVault) Kind() InstructionKind               { return InstructionFreezeVault }
func (*UnfreezeVault) Kind() InstructionKind             { return InstructionUnfreezeVault }

func (in *PublishPackage) operands() []operand {
	return []operand{
		valueOp("code", &in.Code),
		valueOp("setup", &in.Setup),
		valueOp("metadata", &in.Metadata),
	}
}

func (in *PublishPackageAdvanced) operands() []operand {
	return []operand{
		valueOp("package_address", &in.PackageAddress),
		valueOp("code", &in.Code),
		valueOp("setup", &in.Setup),
		valueOp("metadata", &in.Metadata),
		valueOp("owner_rule", &in.OwnerRule),
	}
}

func (in *CreateFungibleResource) operands() []operand {
	return []operand{
		valueOp("track_total_supply", &in.TrackTotalSupply),
		valueOp("divisibility", &in.Divisibility),
		valueOp("metadata", &in.Metadata),
		valueOp("access_rules", &in.AccessRules),
	}
}

func (in *CreateFungibleResourceWithInitialSupply) operands() []operand {
	return []operand{
		valueOp("track_total_supply", &in.TrackTotalSupply),
		valueOp("divisibility", &in.Divisibility),
		valueOp("metadata", &in.Metadata),
		valueOp("access_rules", &in.AccessRules),
		valueOp("initial_supply", &in.InitialSupply),
	}
}

func (in *CreateNonFungibleResource) operands() []operand {
	return []operand{
		valueOp("id_type", &in.IdType),
		valueOp("track_total_supply", &in.TrackTotalSupply),
		valueOp("non_fungible_schema", &in.NonFungibleSchema),
		valueOp("metadata", &in.Metadata),
		valueOp("access_rules", &in.AccessRules),
	}
}

func (in *CreateNonFungibleResourceWithInitialSupply) operands() []operand {
	return []operand{
		valueOp("id_type", &in.IdType),
		valueOp("track_total_supply", &in.TrackTotalSupply),
		valueOp("non_fungible_schema", &in.NonFungibleSchema),
		valueOp("metadata", &in.Metadata),
		valueOp("access_rules", &in.AccessRules),
		valueOp("entries", &in.Entries),
	}
}

func (in *CreateAccessController) operands() []operand {
	return []operand{
		valueOp("controlled_asset", &in.ControlledAsset),
		valueOp("rule_set", &in.RuleSet),
		valueOp("timed_recovery_delay_in_minutes", &in.TimedRecoveryDelayInMinutes),
	}
}

func (*CreateIdentity) operands() []operand { return nil }

func (in *CreateIdentityAdvanced) operands() []operand {
	return []operand{valueOp("owner_rule", &in.OwnerRule)}
}

func (*CreateAccount) operands() []operand { return nil }

func (in *CreateAccountAdvanced) operands() []operand {
	return []operand{valueOp("owner_role", &in.OwnerRole)}
}

func (in *SetMetadata) operands() []operand {
	return []operand{
		valueOp("address", &in.Address, callableKinds...),
		valueOp("key", &in.Key),
		valueOp("value", &in.Value),
	}
}

func (in *RemoveMetadata) operands() []operand {
	return []operand{
		valueOp("address", &in.Address, callableKinds...),
		valueOp("key", &in.Key),
	}
}

func (in *SetComponentRoyaltyConfig) operands() []operand {
	return []operand{
		valueOp("address", &in.Address, callableKinds...),
		valueOp("method", &in.Method),
		valueOp("amount", &in.Amount),
	}
}

func (in *ClaimComponentRoyalty) operands() []operand {
	return []operand{valueOp("address", &in.Address, callableKinds...)}
}

func (in *UpdateRole) operands() []operand {
	return []operand{
		valueOp("address", &in.Address, callableKinds...),
		valueOp("role_key", &in.RoleKey),
		valueOp("rule", &in.Rule),
		valueOp("mutability", &in.Mutability),
	}
}

func (in *SetPackageRoyaltyConfig) operands() []operand {
	return []operand{
		valueOp("address", &in.Address, callableKinds...),
		valueOp("blueprint", &in.Blueprint),
		valueOp("fn_name", &in.FnName),
		valueOp("royalty", &in.Royalty),
	}
}

func (in *ClaimPackageRoyalty) operands() []operand {
	return []operand{valueOp("address", &in.Address, callableKinds...)}
}

func (in *MintFungible) operands() []operand {
	return []operand{
		valueOp("address", &in.Address, callableKinds...),
		valueOp("amount", &in.Amount),
	}
}

func (in *MintNonFungible) operands() []operand {
	return []operand{
		valueOp("address", &in.Address, callableKinds...),
		valueOp("entries", &in.Entries),
	}
}

func (in *MintUuidNonFungible) operands() []operand {
	return []operand{
		valueOp("address", &in.Address, callableKinds...),
		valueOp("entries", &in.Entries),
	}
}

func (in *CreateValidator) operands() []operand {
	return []operand{
		valueOp("address", &in.Address, callableKinds...),
		valueOp("key", &in.Key),
	}
}

func (in *RecallVault) operands() []operand {
	return []operand{
		valueOp("vault_id", &in.VaultID, KindOwn),
		valueOp("amount", &in.Amount),
	}
}

func (in *FreezeVault) operands() []operand {
	return []operand{valueOp("vault_id", &in.VaultID, KindOwn)}
}

func (in *UnfreezeVault) operands() []operand {
	return []operand{valueOp("vault_id", &in.VaultID, KindOwn)}
}
