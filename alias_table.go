package txmanifest

type methodAliasDef struct {
	kind     InstructionKind
	module   ObjectModule
	method   string
	category func(NetworkAwareAddress) bool
	vault    bool
	schema   *Schema
}

func (a *methodAliasDef) Kind() InstructionKind { return a.kind }
func (a *methodAliasDef) Module() ObjectModule  { return a.module }
func (a *methodAliasDef) MethodName() string    { return a.method }
func (a *methodAliasDef) Schema() *Schema       { return a.schema }

func (a *methodAliasDef) IsValidAddress(target Value) bool {
	if a.vault {
		own, ok := target.(*OwnValue)
		return ok && own.OwnKind == OwnVault
	}
	addr, ok := AddressOf(target)
	return ok && a.category(addr)
}

type functionAliasDef struct {
	kind      InstructionKind
	pkg       [AddressLength]byte
	blueprint string
	function  string
	schema    *Schema
}

func (a *functionAliasDef) Kind() InstructionKind        { return a.kind }
func (a *functionAliasDef) Package() [AddressLength]byte { return a.pkg }
func (a *functionAliasDef) Blueprint() string            { return a.blueprint }
func (a *functionAliasDef) Function() string             { return a.function }
func (a *functionAliasDef) Schema() *Schema              { return a.schema }

// Address categories.
func isGlobalEntity(a NetworkAwareAddress) bool    { return a.EntityType().IsGlobal() }
func isGlobalComponent(a NetworkAwareAddress) bool { return a.EntityType().IsGlobalComponent() }
func isGlobalPackage(a NetworkAwareAddress) bool   { return a.EntityType().IsGlobalPackage() }
func isFungible(a NetworkAwareAddress) bool        { return a.EntityType().IsFungibleResource() }
func isNonFungible(a NetworkAwareAddress) bool     { return a.EntityType().IsNonFungibleResource() }
func isEpochManager(a NetworkAwareAddress) bool    { return a.Raw == EpochManagerRaw }

// Shared argument shapes.
var (
	metadataSchema    = MapSchema(KindSchema(KindString), AnySchema())
	ruleSchema        = KindSchema(KindEnum)
	accessRulesSchema = MapSchema(KindSchema(KindEnum), TupleSchema(ruleSchema, ruleSchema))
	entriesSchema     = MapSchema(KindSchema(KindNonFungibleLocalId), KindSchema(KindTuple))
)

// methodAliases are tried in order; the first match wins.
var methodAliases = []MethodAlias{
	&methodAliasDef{
		kind: InstructionSetMetadata, module: ModuleMetadata, method: "set", category: isGlobalEntity,
		schema: TupleSchema(KindSchema(KindString), AnySchema()),
	},
	&methodAliasDef{
		kind: InstructionRemoveMetadata, module: ModuleMetadata, method: "remove", category: isGlobalEntity,
		schema: TupleSchema(KindSchema(KindString)),
	},
	&methodAliasDef{
		kind: InstructionSetComponentRoyaltyConfig, module: ModuleRoyalty, method: "set_royalty", category: isGlobalComponent,
		schema: TupleSchema(KindSchema(KindString), KindSchema(KindEnum)),
	},
	&methodAliasDef{
		kind: InstructionClaimComponentRoyalty, module: ModuleRoyalty, method: "claim_royalties", category: isGlobalComponent,
		schema: TupleSchema(),
	},
	&methodAliasDef{
		kind: InstructionUpdateRole, module: ModuleAccessRules, method: "update_role", category: isGlobalEntity,
		schema: TupleSchema(KindSchema(KindString), OptionSchema(ruleSchema), OptionSchema(AnySchema())),
	},
	&methodAliasDef{
		kind: InstructionSetPackageRoyaltyConfig, module: ModuleMain, method: "set_royalty", category: isGlobalPackage,
		schema: TupleSchema(KindSchema(KindString), KindSchema(KindString), KindSchema(KindEnum)),
	},
	&methodAliasDef{
		kind: InstructionClaimPackageRoyalty, module: ModuleMain, method: "claim_royalties", category: isGlobalPackage,
		schema: TupleSchema(),
	},
	&methodAliasDef{
		kind: InstructionMintFungible, module: ModuleMain, method: "mint", category: isFungible,
		schema: TupleSchema(KindSchema(KindDecimal)),
	},
	&methodAliasDef{
		kind: InstructionMintNonFungible, module: ModuleMain, method: "mint", category: isNonFungible,
		schema: TupleSchema(entriesSchema),
	},
	&methodAliasDef{
		kind: InstructionMintUuidNonFungible, module: ModuleMain, method: "mint_uuid", category: isNonFungible,
		schema: TupleSchema(ArraySchema(KindSchema(KindTuple))),
	},
	&methodAliasDef{
		kind: InstructionCreateValidator, module: ModuleMain, method: "create_validator", category: isEpochManager,
		schema: TupleSchema(FixedArraySchema(KindSchema(KindU8), 33)),
	},
	&methodAliasDef{
		kind: InstructionRecallVault, module: ModuleDirectVault, method: "recall", vault: true,
		schema: TupleSchema(KindSchema(KindDecimal)),
	},
	&methodAliasDef{
		kind: InstructionFreezeVault, module: ModuleDirectVault, method: "freeze", vault: true,
		schema: TupleSchema(),
	},
	&methodAliasDef{
		kind: InstructionUnfreezeVault, module: ModuleDirectVault, method: "unfreeze", vault: true,
		schema: TupleSchema(),
	},
}

// functionAliases are tried in order; the first match wins.
var functionAliases = []FunctionAlias{
	&functionAliasDef{
		kind: InstructionPublishPackage, pkg: PackagePackageRaw, blueprint: "Package", function: "publish_wasm",
		schema: TupleSchema(KindSchema(KindBlob), AnySchema(), metadataSchema),
	},
	&functionAliasDef{
		kind: InstructionPublishPackageAdvanced, pkg: PackagePackageRaw, blueprint: "Package", function: "publish_wasm_advanced",
		schema: TupleSchema(OptionSchema(KindSchema(KindAddressReservation)), KindSchema(KindBlob), AnySchema(), metadataSchema, ruleSchema),
	},
	&functionAliasDef{
		kind: InstructionCreateFungibleResource, pkg: ResourcePackageRaw, blueprint: "FungibleResourceManager", function: "create",
		schema: TupleSchema(KindSchema(KindBool), KindSchema(KindU8), metadataSchema, accessRulesSchema),
	},
	&functionAliasDef{
		kind: InstructionCreateFungibleResourceWithInitialSupply, pkg: ResourcePackageRaw, blueprint: "FungibleResourceManager", function: "create_with_initial_supply",
		schema: TupleSchema(KindSchema(KindBool), KindSchema(KindU8), metadataSchema, accessRulesSchema, KindSchema(KindDecimal)),
	},
	&functionAliasDef{
		kind: InstructionCreateNonFungibleResource, pkg: ResourcePackageRaw, blueprint: "NonFungibleResourceManager", function: "create",
		schema: TupleSchema(KindSchema(KindEnum), KindSchema(KindBool), AnySchema(), metadataSchema, accessRulesSchema),
	},
	&functionAliasDef{
		kind: InstructionCreateNonFungibleResourceWithInitialSupply, pkg: ResourcePackageRaw, blueprint: "NonFungibleResourceManager", function: "create_with_initial_supply",
		schema: TupleSchema(KindSchema(KindEnum), KindSchema(KindBool), AnySchema(), metadataSchema, accessRulesSchema, entriesSchema),
	},
	&functionAliasDef{
		kind: InstructionCreateAccessController, pkg: AccessControllerPackageRaw, blueprint: "AccessController", function: "create_global",
		schema: TupleSchema(KindSchema(KindBucket), KindSchema(KindTuple), OptionSchema(KindSchema(KindU32))),
	},
	&functionAliasDef{
		kind: InstructionCreateIdentity, pkg: IdentityPackageRaw, blueprint: "Identity", function: "create",
		schema: TupleSchema(),
	},
	&functionAliasDef{
		kind: InstructionCreateIdentityAdvanced, pkg: IdentityPackageRaw, blueprint: "Identity", function: "create_advanced",
		schema: TupleSchema(ruleSchema),
	},
	&functionAliasDef{
		kind: InstructionCreateAccount, pkg: AccountPackageRaw, blueprint: "Account", function: "create",
		schema: TupleSchema(),
	},
	&functionAliasDef{
		kind: InstructionCreateAccountAdvanced, pkg: AccountPackageRaw, blueprint: "Account", function: "create_advanced",
		schema: TupleSchema(ruleSchema),
	},
}

var (
	methodAliasesByKind   = make(map[InstructionKind]MethodAlias, len(methodAliases))
	functionAliasesByKind = make(map[InstructionKind]FunctionAlias, len(functionAliases))
)

func init() {
	for _, a := range methodAliases {
		methodAliasesByKind[a.Kind()] = a
	}
	for _, a := range functionAliases {
		functionAliasesByKind[a.Kind()] = a
	}
}
