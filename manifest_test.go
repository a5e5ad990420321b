package txmanifest

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/davecgh/go-spew/spew"
)

// transferText is a canonical simulator manifest moving XRD between two
// accounts.
func transferText() string {
	return fmt.Sprintf(`CALL_METHOD
    ComponentAddress("%[1]s")
    "lock_fee"
    Decimal("10")
;
CALL_METHOD
    ComponentAddress("%[1]s")
    "withdraw"
    ResourceAddress("%[2]s")
    Decimal("100.5")
;
TAKE_FROM_WORKTOP
    ResourceAddress("%[2]s")
    Decimal("100.5")
    Bucket("bucket1")
;
CREATE_PROOF_FROM_BUCKET_OF_ALL
    Bucket("bucket1")
    Proof("proof1")
;
DROP_PROOF
    Proof("proof1")
;
CALL_METHOD
    ComponentAddress("%[3]s")
    "deposit"
    Bucket("bucket1")
;
CALL_METHOD
    ComponentAddress("%[1]s")
    "deposit_batch"
    Expression("ENTIRE_WORKTOP")
;
`, simAccount(1), simXRD(), simAccount(2))
}

func TestParseManifest(t *testing.T) {
	m, err := ParseManifest(transferText(), WithNetwork(NetworkSimulator))
	if err != nil {
		t.Fatalf("ParseManifest failed: %v", err)
	}

	want := []Instruction{
		&CallMethod{Address: MustAddressValue(simAccount(1)), MethodName: "lock_fee", Args: []Value{MustDecimalValue("10")}},
		&CallMethod{Address: MustAddressValue(simAccount(1)), MethodName: "withdraw", Args: []Value{MustAddressValue(simXRD()), MustDecimalValue("100.5")}},
		&TakeFromWorktop{ResourceAddress: MustAddressValue(simXRD()), Amount: MustDecimalValue("100.5"), NewBucket: Bucket(0)},
		&CreateProofFromBucketOfAll{Bucket: Bucket(0), NewProof: Proof(0)},
		&DropProof{Proof: Proof(0)},
		&CallMethod{Address: MustAddressValue(simAccount(2)), MethodName: "deposit", Args: []Value{Bucket(0)}},
		&CallMethod{Address: MustAddressValue(simAccount(1)), MethodName: "deposit_batch", Args: []Value{&ExpressionValue{Value: ExpressionEntireWorktop}}},
	}
	assertEqualInstructions(t, want, m.Instructions)
}

func TestManifestTextRoundTrip(t *testing.T) {
	src := transferText()
	m := MustParseManifest(src, WithNetwork(NetworkSimulator))

	if got := m.String(); got != src {
		t.Errorf("Expected String to reproduce the source, got:\n%s", got)
	}
	formatted, err := m.Format(WithNetwork(NetworkSimulator))
	if err != nil {
		t.Fatalf("Format failed: %v", err)
	}
	if formatted != src {
		t.Errorf("Expected Format to reproduce the source, got:\n%s", formatted)
	}
}

func TestParseManifestRenamesIdentifiers(t *testing.T) {
	src := fmt.Sprintf(`TAKE_ALL_FROM_WORKTOP ResourceAddress("%[1]s") Bucket("xrd");
RETURN_TO_WORKTOP Bucket("xrd");
`, simXRD())
	m := MustParseManifest(src, WithNetwork(NetworkSimulator))
	if !strings.Contains(m.String(), `Bucket("bucket1")`) {
		t.Errorf("Expected names to be replaced by default names, got:\n%s", m)
	}
}

func TestCompileDecompile(t *testing.T) {
	m := MustParseManifest(transferText(), WithNetwork(NetworkSimulator))

	compiled, err := CompileManifest(m)
	if err != nil {
		t.Fatalf("CompileManifest failed: %v", err)
	}
	if compiled[0] != PayloadPrefix {
		t.Errorf("Expected payload prefix 0x%02x, got 0x%02x", PayloadPrefix, compiled[0])
	}

	decompiled, err := DecompileManifest(compiled, WithNetwork(NetworkSimulator))
	if err != nil {
		t.Fatalf("DecompileManifest failed: %v", err)
	}
	assertEqualInstructions(t, m.Instructions, decompiled.Instructions)

	again, err := CompileManifest(decompiled)
	if err != nil {
		t.Fatalf("CompileManifest failed: %v", err)
	}
	if string(again) != string(compiled) {
		t.Errorf("Expected recompiling to reproduce the payload:\n%x\n%x", compiled, again)
	}
}

func TestDecompileBindsNetwork(t *testing.T) {
	m := MustParseManifest(transferText(), WithNetwork(NetworkSimulator))
	compiled, err := CompileManifest(m)
	if err != nil {
		t.Fatalf("CompileManifest failed: %v", err)
	}

	decompiled, err := DecompileManifest(compiled, WithNetwork(NetworkStokenet))
	if err != nil {
		t.Fatalf("DecompileManifest failed: %v", err)
	}
	text := decompiled.String()
	if strings.Contains(text, "_sim1") || !strings.Contains(text, "account_tdx_2_1") {
		t.Errorf("Expected addresses on stokenet, got:\n%s", text)
	}
}

func TestParseManifestAliasing(t *testing.T) {
	known := KnownAddressesFor(NetworkSimulator)
	src := fmt.Sprintf(`CALL_FUNCTION
    PackageAddress("%[1]s")
    "Account"
    "create"
;
CALL_METHOD
    ResourceAddress("%[2]s")
    "mint"
    Decimal("5")
;
CALL_METHOD
    ResourceAddress("%[2]s")
    "mint"
    Decimal("5")
    Decimal("6")
;
`, known.AccountPackage, known.XRD)

	t.Run("enabled", func(t *testing.T) {
		m := MustParseManifest(src, WithNetwork(NetworkSimulator))
		want := []Instruction{
			&CreateAccount{},
			&MintFungible{Address: MustAddressValue(known.XRD), Amount: MustDecimalValue("5")},
			&CallMethod{Address: MustAddressValue(known.XRD), MethodName: "mint", Args: []Value{MustDecimalValue("5"), MustDecimalValue("6")}},
		}
		assertEqualInstructions(t, want, m.Instructions)

		text, err := m.Format()
		if err != nil {
			t.Fatalf("Format failed: %v", err)
		}
		if !strings.HasPrefix(text, "CREATE_ACCOUNT;\nMINT_FUNGIBLE\n") {
			t.Errorf("Expected high-level text, got:\n%s", text)
		}
	})

	t.Run("disabled", func(t *testing.T) {
		m := MustParseManifest(src, WithNetwork(NetworkSimulator), WithAliasing(false))
		if m.Instructions[0].Kind() != InstructionCallFunction || m.Instructions[1].Kind() != InstructionCallMethod {
			t.Errorf("Expected low-level instructions, got %s", spew.Sdump(m.Instructions))
		}
	})

	t.Run("format low-level", func(t *testing.T) {
		m := MustParseManifest(src, WithNetwork(NetworkSimulator))
		text, err := m.Format(WithAliasing(false))
		if err != nil {
			t.Fatalf("Format failed: %v", err)
		}
		if text != src {
			t.Errorf("Expected lowering to reproduce the source, got:\n%s", text)
		}
	})
}

func TestParseManifestErrors(t *testing.T) {
	xrd := simXRD().String()

	tests := []struct {
		name    string
		src     string
		wantErr error
	}{
		{"undeclared bucket", `RETURN_TO_WORKTOP Bucket("nope");`, nil},
		{"duplicate name", fmt.Sprintf(`TAKE_ALL_FROM_WORKTOP ResourceAddress("%[1]s") Bucket("a");
TAKE_ALL_FROM_WORKTOP ResourceAddress("%[1]s") Bucket("a");`, xrd), ErrDuplicateName},
		{"too many arguments", `CLEAR_AUTH_ZONE Decimal("1");`, ErrTooManyArguments},
		{"missing argument", `DROP_PROOF;`, ErrMissingArgument},
		{"wrong operand kind", `TAKE_ALL_FROM_WORKTOP Decimal("1") Bucket("a");`, nil},
		{"wrong network", fmt.Sprintf(`TAKE_ALL_FROM_WORKTOP ResourceAddress("%s") Bucket("a");`, KnownAddressesFor(NetworkMainnet).XRD), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseManifest(tt.src, WithNetwork(NetworkSimulator))
			if err == nil {
				t.Fatal("Expected error")
			}
			var instErr *InstructionError
			if !errors.As(err, &instErr) {
				t.Fatalf("Expected InstructionError, got %T: %v", err, err)
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("Expected %v, got %v", tt.wantErr, err)
			}
		})
	}

	t.Run("undeclared bucket is NameNotFoundError", func(t *testing.T) {
		_, err := ParseManifest(`RETURN_TO_WORKTOP Bucket("nope");`)
		var nameErr *NameNotFoundError
		if !errors.As(err, &nameErr) {
			t.Fatalf("Expected NameNotFoundError, got %v", err)
		}
		if nameErr.Kind != IdentifierBucket || nameErr.Name != "nope" {
			t.Errorf("Expected bucket nope, got %s %q", nameErr.Kind, nameErr.Name)
		}
	})

	t.Run("network mismatch", func(t *testing.T) {
		src := fmt.Sprintf(`TAKE_ALL_FROM_WORKTOP ResourceAddress("%s") Bucket("a");`, xrd)
		_, err := ParseManifest(src)
		var mismatch *NetworkMismatchError
		if !errors.As(err, &mismatch) {
			t.Fatalf("Expected NetworkMismatchError, got %v", err)
		}
		if mismatch.Expected != NetworkMainnet || mismatch.Found != NetworkSimulator {
			t.Errorf("Expected mainnet/simulator mismatch, got %s", spew.Sdump(mismatch))
		}
	})

	t.Run("unknown instruction", func(t *testing.T) {
		_, err := ParseManifest(`FLY_TO_MOON;`)
		var unknown *UnknownInstructionError
		if !errors.As(err, &unknown) {
			t.Errorf("Expected UnknownInstructionError, got %v", err)
		}
	})
}

func TestManifestBlobs(t *testing.T) {
	code := []byte("wasm code")
	src := fmt.Sprintf(`PUBLISH_PACKAGE
    Blob("%s")
    Tuple()
    Map<String, Tuple>()
;
`, BlobRef(code).Hash.Hex()[2:])

	m, err := ParseManifest(src, WithNetwork(NetworkSimulator), WithBlobs([][]byte{code}))
	if err != nil {
		t.Fatalf("ParseManifest failed: %v", err)
	}
	if m.Instructions[0].Kind() != InstructionPublishPackage {
		t.Fatalf("Expected PUBLISH_PACKAGE, got %s", m.Instructions[0].Kind())
	}

	compiled, err := CompileManifest(m, WithNetwork(NetworkSimulator))
	if err != nil {
		t.Fatalf("CompileManifest failed: %v", err)
	}
	decompiled, err := DecompileManifest(compiled, WithNetwork(NetworkSimulator))
	if err != nil {
		t.Fatalf("DecompileManifest failed: %v", err)
	}
	if len(decompiled.Blobs) != 1 || string(decompiled.Blobs[0]) != string(code) {
		t.Errorf("Expected blob to survive compilation, got %s", spew.Sdump(decompiled.Blobs))
	}
	assertEqualInstructions(t, m.Instructions, decompiled.Instructions)
}

func TestConvertManifest(t *testing.T) {
	src := []byte(transferText())
	opts := []ConvertOption{WithNetwork(NetworkSimulator)}

	binary, err := ConvertManifest(src, FormatText, FormatBinary, opts...)
	if err != nil {
		t.Fatalf("text to binary failed: %v", err)
	}
	jsonBytes, err := ConvertManifest(binary, FormatBinary, FormatJSON, opts...)
	if err != nil {
		t.Fatalf("binary to json failed: %v", err)
	}
	text, err := ConvertManifest(jsonBytes, FormatJSON, FormatText, opts...)
	if err != nil {
		t.Fatalf("json to text failed: %v", err)
	}
	if string(text) != string(src) {
		t.Errorf("Expected conversions to reproduce the source, got:\n%s", text)
	}
}

func TestParseManifestFormat(t *testing.T) {
	for _, f := range []ManifestFormat{FormatText, FormatJSON, FormatBinary} {
		got, err := ParseManifestFormat(f.String())
		if err != nil {
			t.Errorf("ParseManifestFormat(%q) failed: %v", f, err)
		}
		if got != f {
			t.Errorf("Expected %s, got %s", f, got)
		}
	}
	if _, err := ParseManifestFormat("yaml"); err == nil {
		t.Error("Expected error for unknown format")
	}
}

// everyInstruction returns a manifest body holding every instruction kind.
// Produced identifiers are numbered in instruction order, the way
// DecompileManifest numbers them.
func everyInstruction(t *testing.T) ([]Instruction, [][]byte) {
	t.Helper()
	known := KnownAddressesFor(NetworkSimulator)
	account := MustAddressValue(simAccount(1))
	xrd := MustAddressValue(simXRD())
	nft := MustAddressValue(simNFT(4))
	component := MustAddressValue(testAddress(EntityGlobalGenericComponent, NetworkSimulator, 3))
	faucetPackage := MustAddressValue(testAddress(EntityGlobalPackage, NetworkSimulator, 7))
	ids := MustArray(KindNonFungibleLocalId, LocalId(IntegerLocalId(1)), LocalId(IntegerLocalId(2)))
	vault := simVault(t, OwnVault)
	global, err := NewNonFungibleGlobalId(simNFT(4), IntegerLocalId(9))
	if err != nil {
		t.Fatalf("NewNonFungibleGlobalId failed: %v", err)
	}
	code := []byte{0x00, 0x61, 0x73, 0x6d}
	metadata := MustMap(KindString, KindEnum, MapEntry{Key: String("name"), Value: Enum(0, String("Token"))})
	accessRules := MustMap(KindEnum, KindTuple, MapEntry{Key: Enum(4), Value: Tuple(Enum(0), Enum(1))})
	entries := MustMap(KindNonFungibleLocalId, KindTuple, MapEntry{Key: LocalId(IntegerLocalId(1)), Value: Tuple(Tuple())})
	reservation := &AddressReservationValue{Identifier: NumericIdentifier(0)}
	named := &NamedAddressValue{Identifier: NumericIdentifier(0)}

	ins := []Instruction{
		&CallMethod{Address: account, MethodName: "lock_fee", Args: []Value{MustDecimalValue("10")}},
		&CallMethod{Address: account, MethodName: "withdraw", Args: []Value{xrd, MustDecimalValue("100")}},
		&TakeFromWorktop{ResourceAddress: xrd, Amount: MustDecimalValue("10"), NewBucket: Bucket(0)},
		&TakeNonFungiblesFromWorktop{ResourceAddress: nft, Ids: ids, NewBucket: Bucket(1)},
		&TakeAllFromWorktop{ResourceAddress: xrd, NewBucket: Bucket(2)},
		&ReturnToWorktop{Bucket: Bucket(2)},
		&AssertWorktopContains{ResourceAddress: xrd, Amount: MustDecimalValue("1")},
		&AssertWorktopContainsNonFungibles{ResourceAddress: nft, Ids: ids},
		&PopFromAuthZone{NewProof: Proof(0)},
		&PushToAuthZone{Proof: Proof(0)},
		&ClearAuthZone{},
		&CreateProofFromAuthZone{ResourceAddress: xrd, NewProof: Proof(1)},
		&CreateProofFromAuthZoneOfAmount{ResourceAddress: xrd, Amount: MustDecimalValue("1"), NewProof: Proof(2)},
		&CreateProofFromAuthZoneOfNonFungibles{ResourceAddress: nft, Ids: ids, NewProof: Proof(3)},
		&CreateProofFromAuthZoneOfAll{ResourceAddress: xrd, NewProof: Proof(4)},
		&ClearSignatureProofs{},
		&CreateProofFromBucket{Bucket: Bucket(0), NewProof: Proof(5)},
		&CreateProofFromBucketOfAmount{Bucket: Bucket(0), Amount: MustDecimalValue("1"), NewProof: Proof(6)},
		&CreateProofFromBucketOfNonFungibles{Bucket: Bucket(1), Ids: ids, NewProof: Proof(7)},
		&CreateProofFromBucketOfAll{Bucket: Bucket(1), NewProof: Proof(8)},
		&CloneProof{Proof: Proof(8), NewProof: Proof(9)},
		&DropProof{Proof: Proof(9)},
		&BurnResource{Bucket: Bucket(1)},
		&AllocateGlobalAddress{PackageAddress: faucetPackage, BlueprintName: "Faucet", AddressReservation: reservation, NamedAddress: named},
		&CallFunction{PackageAddress: faucetPackage, BlueprintName: "Faucet", FunctionName: "new", Args: []Value{reservation, MustDecimalValue("5")}},
		&CallMethod{Address: named, MethodName: "free", Args: []Value{
			MustArray(KindArray, MustArray(KindU8, U8(1), U8(2)), MustArray(KindString, String("x"))),
			Bytes([]byte{1, 2}),
			&NonFungibleGlobalIdValue{Value: global},
		}},
		&CallRoyaltyMethod{Address: component, MethodName: "lock_royalty", Args: []Value{String("swap")}},
		&CallMetadataMethod{Address: component, MethodName: "get", Args: []Value{String("name")}},
		&CallAccessRulesMethod{Address: component, MethodName: "lock_role", Args: []Value{String("admin")}},
		&CallDirectVaultMethod{VaultID: vault, MethodName: "lock_fee", Args: []Value{MustDecimalValue("1")}},
		&CallMethod{Address: account, MethodName: "deposit", Args: []Value{Bucket(0)}},
		&DropAllProofs{},

		&PublishPackage{Code: BlobRef(code), Setup: Tuple(), Metadata: metadata},
		&PublishPackageAdvanced{PackageAddress: Some(reservation), Code: BlobRef(code), Setup: Tuple(), Metadata: metadata, OwnerRule: Enum(0)},
		&CreateFungibleResource{TrackTotalSupply: Bool(true), Divisibility: U8(18), Metadata: metadata, AccessRules: accessRules},
		&CreateFungibleResourceWithInitialSupply{TrackTotalSupply: Bool(false), Divisibility: U8(0), Metadata: metadata, AccessRules: accessRules, InitialSupply: MustDecimalValue("1000")},
		&CreateNonFungibleResource{IdType: Enum(1), TrackTotalSupply: Bool(true), NonFungibleSchema: Tuple(), Metadata: metadata, AccessRules: accessRules},
		&CreateNonFungibleResourceWithInitialSupply{IdType: Enum(1), TrackTotalSupply: Bool(true), NonFungibleSchema: Tuple(), Metadata: metadata, AccessRules: accessRules, Entries: entries},
		&CreateAccessController{ControlledAsset: Bucket(0), RuleSet: Tuple(Enum(0), Enum(0), Enum(0)), TimedRecoveryDelayInMinutes: Some(U32(1440))},
		&CreateIdentity{},
		&CreateIdentityAdvanced{OwnerRule: Enum(1)},
		&CreateAccount{},
		&CreateAccountAdvanced{OwnerRole: Enum(0)},
		&SetMetadata{Address: component, Key: String("name"), Value: Enum(0, String("Radiswap"))},
		&RemoveMetadata{Address: component, Key: String("name")},
		&SetComponentRoyaltyConfig{Address: component, Method: String("swap"), Amount: Enum(1, MustDecimalValue("0.1"))},
		&ClaimComponentRoyalty{Address: component},
		&UpdateRole{Address: component, RoleKey: String("admin"), Rule: Some(Enum(0)), Mutability: None()},
		&SetPackageRoyaltyConfig{Address: MustAddressValue(known.FaucetPackage), Blueprint: String("Faucet"), FnName: String("free"), Royalty: Enum(0)},
		&ClaimPackageRoyalty{Address: MustAddressValue(known.FaucetPackage)},
		&MintFungible{Address: xrd, Amount: MustDecimalValue("5")},
		&MintNonFungible{Address: nft, Entries: entries},
		&MintUuidNonFungible{Address: nft, Entries: MustArray(KindTuple, Tuple(Tuple()))},
		&CreateValidator{Address: MustAddressValue(known.EpochManager), Key: Bytes(make([]byte, 33))},
		&RecallVault{VaultID: vault, Amount: MustDecimalValue("1")},
		&FreezeVault{VaultID: vault},
		&UnfreezeVault{VaultID: vault},
		&CallMethod{Address: account, MethodName: "deposit_batch", Args: []Value{&ExpressionValue{Value: ExpressionEntireWorktop}}},
	}
	return ins, [][]byte{code}
}

func TestEveryInstructionRoundTrip(t *testing.T) {
	ins, blobs := everyInstruction(t)

	seen := make(map[InstructionKind]bool)
	for _, in := range ins {
		seen[in.Kind()] = true
	}
	for k := InstructionKind(0); k < numInstructionKinds; k++ {
		if !seen[k] {
			t.Errorf("Expected the manifest to hold %s", k)
		}
	}

	m := NewManifest(ins, blobs...)
	opts := []ConvertOption{WithNetwork(NetworkSimulator)}

	t.Run("binary", func(t *testing.T) {
		compiled, err := CompileManifest(m, opts...)
		if err != nil {
			t.Fatalf("CompileManifest failed: %v", err)
		}
		decompiled, err := DecompileManifest(compiled, opts...)
		if err != nil {
			t.Fatalf("DecompileManifest failed: %v", err)
		}
		assertEqualInstructions(t, ins, decompiled.Instructions)
		if len(decompiled.Blobs) != 1 || string(decompiled.Blobs[0]) != string(blobs[0]) {
			t.Errorf("Expected blob to survive compilation, got %s", spew.Sdump(decompiled.Blobs))
		}

		again, err := CompileManifest(decompiled, opts...)
		if err != nil {
			t.Fatalf("CompileManifest of decompiled manifest failed: %v", err)
		}
		if string(again) != string(compiled) {
			t.Errorf("Expected recompiling to reproduce the payload:\n%x\n%x", compiled, again)
		}
	})

	t.Run("binary low-level", func(t *testing.T) {
		compiled, err := CompileManifest(m, opts...)
		if err != nil {
			t.Fatalf("CompileManifest failed: %v", err)
		}
		decompiled, err := DecompileManifest(compiled, WithNetwork(NetworkSimulator), WithAliasing(false))
		if err != nil {
			t.Fatalf("DecompileManifest failed: %v", err)
		}
		for i, in := range decompiled.Instructions {
			if IsAliased(in) {
				t.Errorf("Instruction %d: expected low-level, got %s", i, in.Kind())
			}
		}
		assertEqualInstructions(t, ins, AliasAll(decompiled.Instructions))
	})

	t.Run("text", func(t *testing.T) {
		text, err := m.Format(opts...)
		if err != nil {
			t.Fatalf("Format failed: %v", err)
		}
		parsed, err := ParseManifest(text, append(opts, WithBlobs(blobs))...)
		if err != nil {
			t.Fatalf("ParseManifest failed: %v\n%s", err, text)
		}
		assertEqualInstructions(t, ins, parsed.Instructions)

		again, err := parsed.Format(opts...)
		if err != nil {
			t.Fatalf("Format failed: %v", err)
		}
		if again != text {
			t.Errorf("Expected formatting to be stable, got:\n%s\nthen:\n%s", text, again)
		}
	})
}
