package txmanifest

import (
	"strings"
	"testing"

	"github.com/davecgh/go-spew/spew"
)

func simVault(t *testing.T, kind OwnKind) *OwnValue {
	t.Helper()
	own, err := NewOwn(kind, strings.Repeat("58", NodeIDLength))
	if err != nil {
		t.Fatalf("NewOwn failed: %v", err)
	}
	return own
}

func TestAlias(t *testing.T) {
	known := KnownAddressesFor(NetworkSimulator)
	component := MustAddressValue(testAddress(EntityGlobalGenericComponent, NetworkSimulator, 3))
	nft := MustAddressValue(simNFT(4))
	entries := MustMap(KindNonFungibleLocalId, KindTuple, MapEntry{Key: LocalId(IntegerLocalId(1)), Value: Tuple(Tuple())})
	vault := simVault(t, OwnVault)
	validatorKey := Bytes(make([]byte, 33))
	metadata := MustMap(KindString, KindEnum, MapEntry{Key: String("name"), Value: Enum(0, String("Token"))})
	accessRules := MustMap(KindEnum, KindTuple, MapEntry{Key: Enum(4), Value: Tuple(Enum(0), Enum(1))})
	code := BlobRef([]byte{0x00, 0x61, 0x73, 0x6d})
	bucket := &BucketValue{Identifier: NumericIdentifier(0)}

	tests := []struct {
		name string
		low  Instruction
		want Instruction
	}{
		{
			name: "mint fungible",
			low:  &CallMethod{Address: MustAddressValue(simXRD()), MethodName: "mint", Args: []Value{MustDecimalValue("5")}},
			want: &MintFungible{Address: MustAddressValue(simXRD()), Amount: MustDecimalValue("5")},
		},
		{
			name: "mint non-fungible",
			low:  &CallMethod{Address: nft, MethodName: "mint", Args: []Value{entries}},
			want: &MintNonFungible{Address: nft, Entries: entries},
		},
		{
			name: "mint uuid non-fungible",
			low:  &CallMethod{Address: nft, MethodName: "mint_uuid", Args: []Value{MustArray(KindTuple, Tuple(Tuple()))}},
			want: &MintUuidNonFungible{Address: nft, Entries: MustArray(KindTuple, Tuple(Tuple()))},
		},
		{
			name: "set metadata",
			low:  &CallMetadataMethod{Address: component, MethodName: "set", Args: []Value{String("name"), Enum(0, String("Radiswap"))}},
			want: &SetMetadata{Address: component, Key: String("name"), Value: Enum(0, String("Radiswap"))},
		},
		{
			name: "remove metadata",
			low:  &CallMetadataMethod{Address: component, MethodName: "remove", Args: []Value{String("name")}},
			want: &RemoveMetadata{Address: component, Key: String("name")},
		},
		{
			name: "claim component royalty",
			low:  &CallRoyaltyMethod{Address: component, MethodName: "claim_royalties", Args: []Value{}},
			want: &ClaimComponentRoyalty{Address: component},
		},
		{
			name: "claim package royalty",
			low:  &CallMethod{Address: MustAddressValue(known.FaucetPackage), MethodName: "claim_royalties", Args: []Value{}},
			want: &ClaimPackageRoyalty{Address: MustAddressValue(known.FaucetPackage)},
		},
		{
			name: "update role",
			low:  &CallAccessRulesMethod{Address: component, MethodName: "update_role", Args: []Value{String("admin"), Some(Enum(0)), None()}},
			want: &UpdateRole{Address: component, RoleKey: String("admin"), Rule: Some(Enum(0)), Mutability: None()},
		},
		{
			name: "create validator",
			low:  &CallMethod{Address: MustAddressValue(known.EpochManager), MethodName: "create_validator", Args: []Value{validatorKey}},
			want: &CreateValidator{Address: MustAddressValue(known.EpochManager), Key: validatorKey},
		},
		{
			name: "recall vault",
			low:  &CallDirectVaultMethod{VaultID: vault, MethodName: "recall", Args: []Value{MustDecimalValue("1")}},
			want: &RecallVault{VaultID: vault, Amount: MustDecimalValue("1")},
		},
		{
			name: "freeze vault",
			low:  &CallDirectVaultMethod{VaultID: vault, MethodName: "freeze", Args: []Value{}},
			want: &FreezeVault{VaultID: vault},
		},
		{
			name: "create account",
			low:  &CallFunction{PackageAddress: MustAddressValue(known.AccountPackage), BlueprintName: "Account", FunctionName: "create", Args: []Value{}},
			want: &CreateAccount{},
		},
		{
			name: "create identity advanced",
			low:  &CallFunction{PackageAddress: MustAddressValue(known.IdentityPackage), BlueprintName: "Identity", FunctionName: "create_advanced", Args: []Value{Enum(1)}},
			want: &CreateIdentityAdvanced{OwnerRule: Enum(1)},
		},
		{
			name: "set component royalty config",
			low:  &CallRoyaltyMethod{Address: component, MethodName: "set_royalty", Args: []Value{String("swap"), Enum(1, MustDecimalValue("0.1"))}},
			want: &SetComponentRoyaltyConfig{Address: component, Method: String("swap"), Amount: Enum(1, MustDecimalValue("0.1"))},
		},
		{
			name: "set package royalty config",
			low:  &CallMethod{Address: MustAddressValue(known.FaucetPackage), MethodName: "set_royalty", Args: []Value{String("Faucet"), String("free"), Enum(0)}},
			want: &SetPackageRoyaltyConfig{Address: MustAddressValue(known.FaucetPackage), Blueprint: String("Faucet"), FnName: String("free"), Royalty: Enum(0)},
		},
		{
			name: "unfreeze vault",
			low:  &CallDirectVaultMethod{VaultID: vault, MethodName: "unfreeze", Args: []Value{}},
			want: &UnfreezeVault{VaultID: vault},
		},
		{
			name: "publish package",
			low:  &CallFunction{PackageAddress: MustAddressValue(known.PackagePackage), BlueprintName: "Package", FunctionName: "publish_wasm", Args: []Value{code, Tuple(), metadata}},
			want: &PublishPackage{Code: code, Setup: Tuple(), Metadata: metadata},
		},
		{
			name: "publish package advanced",
			low: &CallFunction{PackageAddress: MustAddressValue(known.PackagePackage), BlueprintName: "Package", FunctionName: "publish_wasm_advanced",
				Args: []Value{None(), code, Tuple(), metadata, Enum(0)}},
			want: &PublishPackageAdvanced{PackageAddress: None(), Code: code, Setup: Tuple(), Metadata: metadata, OwnerRule: Enum(0)},
		},
		{
			name: "create fungible resource",
			low: &CallFunction{PackageAddress: MustAddressValue(known.ResourcePackage), BlueprintName: "FungibleResourceManager", FunctionName: "create",
				Args: []Value{Bool(true), U8(18), metadata, accessRules}},
			want: &CreateFungibleResource{TrackTotalSupply: Bool(true), Divisibility: U8(18), Metadata: metadata, AccessRules: accessRules},
		},
		{
			name: "create fungible resource with initial supply",
			low: &CallFunction{PackageAddress: MustAddressValue(known.ResourcePackage), BlueprintName: "FungibleResourceManager", FunctionName: "create_with_initial_supply",
				Args: []Value{Bool(false), U8(0), metadata, accessRules, MustDecimalValue("1000")}},
			want: &CreateFungibleResourceWithInitialSupply{TrackTotalSupply: Bool(false), Divisibility: U8(0), Metadata: metadata, AccessRules: accessRules, InitialSupply: MustDecimalValue("1000")},
		},
		{
			name: "create non-fungible resource",
			low: &CallFunction{PackageAddress: MustAddressValue(known.ResourcePackage), BlueprintName: "NonFungibleResourceManager", FunctionName: "create",
				Args: []Value{Enum(1), Bool(true), Tuple(), metadata, accessRules}},
			want: &CreateNonFungibleResource{IdType: Enum(1), TrackTotalSupply: Bool(true), NonFungibleSchema: Tuple(), Metadata: metadata, AccessRules: accessRules},
		},
		{
			name: "create non-fungible resource with initial supply",
			low: &CallFunction{PackageAddress: MustAddressValue(known.ResourcePackage), BlueprintName: "NonFungibleResourceManager", FunctionName: "create_with_initial_supply",
				Args: []Value{Enum(1), Bool(true), Tuple(), metadata, accessRules, entries}},
			want: &CreateNonFungibleResourceWithInitialSupply{IdType: Enum(1), TrackTotalSupply: Bool(true), NonFungibleSchema: Tuple(), Metadata: metadata, AccessRules: accessRules, Entries: entries},
		},
		{
			name: "create access controller",
			low: &CallFunction{PackageAddress: MustAddressValue(known.AccessControllerPackage), BlueprintName: "AccessController", FunctionName: "create_global",
				Args: []Value{bucket, Tuple(Enum(0), Enum(0), Enum(0)), Some(U32(1440))}},
			want: &CreateAccessController{ControlledAsset: bucket, RuleSet: Tuple(Enum(0), Enum(0), Enum(0)), TimedRecoveryDelayInMinutes: Some(U32(1440))},
		},
		{
			name: "create identity",
			low:  &CallFunction{PackageAddress: MustAddressValue(known.IdentityPackage), BlueprintName: "Identity", FunctionName: "create", Args: []Value{}},
			want: &CreateIdentity{},
		},
		{
			name: "create account advanced",
			low:  &CallFunction{PackageAddress: MustAddressValue(known.AccountPackage), BlueprintName: "Account", FunctionName: "create_advanced", Args: []Value{Enum(0)}},
			want: &CreateAccountAdvanced{OwnerRole: Enum(0)},
		},
	}

	covered := make(map[InstructionKind]bool)
	for _, tt := range tests {
		covered[tt.want.Kind()] = true
	}
	for k := InstructionKind(0); k < numInstructionKinds; k++ {
		if k.IsAliased() && !covered[k] {
			t.Errorf("Expected a case for %s", k)
		}
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Alias(tt.low)
			if !EqualInstructions(tt.want, got) {
				t.Fatalf("Expected %s, got %s", spew.Sdump(tt.want), spew.Sdump(got))
			}
			if !IsAliased(got) {
				t.Errorf("Expected %s to be aliased", got.Kind())
			}

			// Lowering gives back the original call
			back := ToLowLevel(got, NetworkSimulator)
			if !EqualInstructions(tt.low, back) {
				t.Errorf("Expected %s, got %s", spew.Sdump(tt.low), spew.Sdump(back))
			}
		})
	}
}

func TestAliasNoMatch(t *testing.T) {
	known := KnownAddressesFor(NetworkSimulator)
	account := MustAddressValue(simAccount(1))

	tests := []struct {
		name string
		in   Instruction
	}{
		{"mint on an account", &CallMethod{Address: account, MethodName: "mint", Args: []Value{MustDecimalValue("5")}}},
		{"mint with wrong arguments", &CallMethod{Address: MustAddressValue(simXRD()), MethodName: "mint", Args: []Value{U8(5)}}},
		{"mint with extra arguments", &CallMethod{Address: MustAddressValue(simXRD()), MethodName: "mint", Args: []Value{MustDecimalValue("5"), MustDecimalValue("5")}}},
		{"metadata method on main module", &CallMethod{Address: account, MethodName: "set", Args: []Value{String("k"), Enum(0, String("v"))}}},
		{"recall on a key value store", &CallDirectVaultMethod{VaultID: simVault(t, OwnKeyValueStore), MethodName: "recall", Args: []Value{MustDecimalValue("1")}}},
		{"create on the wrong package", &CallFunction{PackageAddress: MustAddressValue(known.IdentityPackage), BlueprintName: "Account", FunctionName: "create", Args: []Value{}}},
		{"create with arguments", &CallFunction{PackageAddress: MustAddressValue(known.AccountPackage), BlueprintName: "Account", FunctionName: "create", Args: []Value{U8(1)}}},
		{"short validator key", &CallMethod{Address: MustAddressValue(known.EpochManager), MethodName: "create_validator", Args: []Value{Bytes(make([]byte, 32))}}},
		{"not a call", &DropAllProofs{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Alias(tt.in)
			if got != tt.in {
				t.Errorf("Expected instruction to be returned unchanged, got %s", spew.Sdump(got))
			}
		})
	}
}

func TestToLowLevel(t *testing.T) {
	t.Run("low-level instructions are unchanged", func(t *testing.T) {
		in := &ClearAuthZone{}
		if got := ToLowLevel(in, NetworkSimulator); got != in {
			t.Errorf("Expected same instruction, got %s", spew.Sdump(got))
		}
	})

	t.Run("function aliases use the requested network", func(t *testing.T) {
		got := ToLowLevel(&CreateAccount{}, NetworkStokenet)
		call, ok := got.(*CallFunction)
		if !ok {
			t.Fatalf("Expected CallFunction, got %T", got)
		}
		if !Equal(call.PackageAddress, MustAddressValue(KnownAddressesFor(NetworkStokenet).AccountPackage)) {
			t.Errorf("Expected stokenet account package, got %s", spew.Sdump(call.PackageAddress))
		}
		if call.BlueprintName != "Account" || call.FunctionName != "create" || len(call.Args) != 0 {
			t.Errorf("Expected Account::create(), got %s", spew.Sdump(call))
		}
	})

	t.Run("lowered fields are copies", func(t *testing.T) {
		mint := &MintFungible{Address: MustAddressValue(simXRD()), Amount: MustDecimalValue("5")}
		call := ToLowLevel(mint, NetworkSimulator).(*CallMethod)
		call.Args[0] = MustDecimalValue("6")
		if !Equal(mint.Amount, MustDecimalValue("5")) {
			t.Errorf("Expected alias to keep its amount, got %s", spew.Sdump(mint.Amount))
		}
	})
}

func TestAliasAll(t *testing.T) {
	known := KnownAddressesFor(NetworkSimulator)
	low := []Instruction{
		&CallFunction{PackageAddress: MustAddressValue(known.AccountPackage), BlueprintName: "Account", FunctionName: "create", Args: []Value{}},
		&ClearAuthZone{},
		&CallMethod{Address: MustAddressValue(simXRD()), MethodName: "mint", Args: []Value{MustDecimalValue("1")}},
	}

	high := AliasAll(low)
	kinds := []InstructionKind{InstructionCreateAccount, InstructionClearAuthZone, InstructionMintFungible}
	for i, k := range kinds {
		if high[i].Kind() != k {
			t.Errorf("Instruction %d: expected %s, got %s", i, k, high[i].Kind())
		}
	}

	assertEqualInstructions(t, low, ToLowLevelAll(high, NetworkSimulator))
}

func TestObjectModuleString(t *testing.T) {
	tests := []struct {
		module ObjectModule
		want   string
	}{
		{ModuleMain, "Main"},
		{ModuleMetadata, "Metadata"},
		{ModuleRoyalty, "Royalty"},
		{ModuleAccessRules, "AccessRules"},
		{ModuleDirectVault, "DirectVault"},
		{ObjectModule(9), "ObjectModule(9)"},
	}
	for _, tt := range tests {
		if got := tt.module.String(); got != tt.want {
			t.Errorf("Expected %q, got %q", tt.want, got)
		}
	}
}
