package txmanifest

import (
	"bytes"
	"errors"
	"testing"

	"github.com/davecgh/go-spew/spew"
)

func mustComponent(t *testing.T, addr NetworkAwareAddress) *Target {
	t.Helper()
	target, err := NewComponent(addr)
	if err != nil {
		t.Fatalf("NewComponent failed: %v", err)
	}
	return target
}

func TestNew(t *testing.T) {
	t.Run("creates empty builder", func(t *testing.T) {
		b := New()

		if b == nil {
			t.Fatal("Expected builder to be non-nil")
		}
		if b.Len() != 0 {
			t.Errorf("Expected 0 instructions, got %d", b.Len())
		}
	})

	t.Run("empty builder builds empty manifest", func(t *testing.T) {
		m, err := New().Build()
		if err != nil {
			t.Fatalf("Build failed: %v", err)
		}
		if len(m.Instructions) != 0 || len(m.Blobs) != 0 {
			t.Errorf("Expected empty manifest, got %s", spew.Sdump(m))
		}
	})
}

func TestBuilderAdd(t *testing.T) {
	t.Run("numbers produced identifiers per namespace", func(t *testing.T) {
		b := New()
		first := b.TakeFromWorktop(simXRD(), DecimalFromInt(1))
		proof := b.CreateProofFromAuthZone(simXRD())
		second := b.TakeAllFromWorktop(simXRD())

		if !Equal(first, Bucket(0)) {
			t.Errorf("Expected bucket 0, got %s", spew.Sdump(first))
		}
		if !Equal(second, Bucket(1)) {
			t.Errorf("Expected bucket 1, got %s", spew.Sdump(second))
		}
		if !Equal(proof, Proof(0)) {
			t.Errorf("Expected proof 0, got %s", spew.Sdump(proof))
		}
	})

	t.Run("replaces produced fields", func(t *testing.T) {
		b := New()
		produced := b.Add(&TakeAllFromWorktop{ResourceAddress: MustAddressValue(simXRD()), NewBucket: NamedBucket("mine")})

		if len(produced) != 1 {
			t.Fatalf("Expected 1 produced value, got %d", len(produced))
		}
		if !Equal(produced[0], Bucket(0)) {
			t.Errorf("Expected bucket 0, got %s", spew.Sdump(produced[0]))
		}
		in := b.InstructionAt(0).(*TakeAllFromWorktop)
		if !Equal(in.NewBucket, Bucket(0)) {
			t.Errorf("Expected stored bucket 0, got %s", spew.Sdump(in.NewBucket))
		}
	})

	t.Run("returns nothing for instructions without outputs", func(t *testing.T) {
		b := New()
		if produced := b.Add(&DropAllProofs{}); len(produced) != 0 {
			t.Errorf("Expected no produced values, got %d", len(produced))
		}
	})

	t.Run("allocate global address produces both identifiers", func(t *testing.T) {
		b := New()
		reservation, named := b.AllocateGlobalAddress(KnownAddressesFor(NetworkSimulator).AccountPackage, "Account")

		if !Equal(reservation, &AddressReservationValue{Identifier: NumericIdentifier(0)}) {
			t.Errorf("Expected reservation 0, got %s", spew.Sdump(reservation))
		}
		if !Equal(named, &NamedAddressValue{Identifier: NumericIdentifier(0)}) {
			t.Errorf("Expected named address 0, got %s", spew.Sdump(named))
		}
	})
}

func TestBuilderBuild(t *testing.T) {
	account := mustComponent(t, simAccount(1))
	other := mustComponent(t, simAccount(2))

	b := New()
	b.Call(account.MustInvoke("lock_fee", MustParseDecimal("10")))
	b.Call(account.MustInvoke("withdraw", simXRD(), MustParseDecimal("100.5")))
	bucket := b.TakeFromWorktop(simXRD(), MustParseDecimal("100.5"))
	proof := b.CreateProofFromBucketOfAll(bucket)
	b.DropProof(proof)
	b.Call(other.MustInvoke("deposit", bucket))
	b.Call(account.MustInvoke("deposit_batch", &ExpressionValue{Value: ExpressionEntireWorktop}))

	m, err := b.Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	// Same instructions as the text form
	parsed := MustParseManifest(transferText(), WithNetwork(NetworkSimulator))
	assertEqualInstructions(t, parsed.Instructions, m.Instructions)

	t.Run("manifest is a copy", func(t *testing.T) {
		m.Instructions[2].(*TakeFromWorktop).Amount = MustDecimalValue("1")
		in := b.InstructionAt(2).(*TakeFromWorktop)
		if !Equal(in.Amount, MustDecimalValue("100.5")) {
			t.Errorf("Expected builder to keep its amount, got %s", spew.Sdump(in.Amount))
		}
	})
}

func TestBuilderVisibility(t *testing.T) {
	account := mustComponent(t, simAccount(1))

	tests := []struct {
		name  string
		build func(b *ManifestBuilder)
		index int
		kind  IdentifierKind
		id    uint32
	}{
		{
			name: "bucket used after return to worktop",
			build: func(b *ManifestBuilder) {
				bucket := b.TakeAllFromWorktop(simXRD())
				b.ReturnToWorktop(bucket)
				b.BurnResource(bucket)
			},
			index: 2,
			kind:  IdentifierBucket,
		},
		{
			name: "bucket used after a call took it",
			build: func(b *ManifestBuilder) {
				bucket := b.TakeAllFromWorktop(simXRD())
				b.Call(account.MustInvoke("deposit", bucket))
				b.CreateProofFromBucket(bucket)
			},
			index: 2,
			kind:  IdentifierBucket,
		},
		{
			name: "bucket never created",
			build: func(b *ManifestBuilder) {
				b.ReturnToWorktop(Bucket(4))
			},
			index: 0,
			kind:  IdentifierBucket,
			id:    4,
		},
		{
			name: "proof used after drop all proofs",
			build: func(b *ManifestBuilder) {
				proof := b.PopFromAuthZone()
				b.DropAllProofs()
				b.PushToAuthZone(proof)
			},
			index: 2,
			kind:  IdentifierProof,
		},
		{
			name: "proof dropped twice",
			build: func(b *ManifestBuilder) {
				proof := b.CreateProofFromAuthZoneOfAll(simXRD())
				b.DropProof(proof)
				b.DropProof(proof)
			},
			index: 2,
			kind:  IdentifierProof,
		},
		{
			name: "cloned proof outlives its source",
			build: func(b *ManifestBuilder) {
				proof := b.PopFromAuthZone()
				clone := b.CloneProof(proof)
				b.DropProof(proof)
				b.DropProof(clone)
				b.DropProof(proof)
			},
			index: 4,
			kind:  IdentifierProof,
		},
		{
			name: "reservation used twice",
			build: func(b *ManifestBuilder) {
				pkg := KnownAddressesFor(NetworkSimulator).AccountPackage
				reservation, _ := b.AllocateGlobalAddress(pkg, "Account")
				target, _ := NewPackage(pkg, WithBlueprint("Account"))
				b.Call(target.MustInvoke("create_advanced", reservation))
				b.Call(target.MustInvoke("create_advanced", reservation))
			},
			index: 2,
			kind:  IdentifierAddressReservation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := New()
			tt.build(b)

			_, err := b.Build()
			if err == nil {
				t.Fatal("Expected error")
			}
			if !errors.Is(err, ErrIdentifierNotVisible) {
				t.Errorf("Expected ErrIdentifierNotVisible, got %v", err)
			}
			var buildErr *BuildError
			if !errors.As(err, &buildErr) {
				t.Fatalf("Expected BuildError, got %T", err)
			}
			if buildErr.InstructionIndex != tt.index {
				t.Errorf("Expected instruction %d, got %d", tt.index, buildErr.InstructionIndex)
			}
			var visErr *VisibilityError
			if !errors.As(err, &visErr) {
				t.Fatalf("Expected VisibilityError, got %T", err)
			}
			if visErr.Kind != tt.kind || visErr.ID != tt.id {
				t.Errorf("Expected %s %d, got %s %d", tt.kind, tt.id, visErr.Kind, visErr.ID)
			}
		})
	}
}

func TestBuilderNamedAddressStaysVisible(t *testing.T) {
	pkg := KnownAddressesFor(NetworkSimulator).AccountPackage
	b := New()
	reservation, named := b.AllocateGlobalAddress(pkg, "Account")
	factory, err := NewPackage(pkg, WithBlueprint("Account"))
	if err != nil {
		t.Fatalf("NewPackage failed: %v", err)
	}
	b.Call(factory.MustInvoke("create_advanced", reservation))

	account := NewNamedTarget(named, Component)
	b.Call(account.MustInvoke("lock_fee", MustParseDecimal("1")))
	b.Call(account.MustInvoke("deposit_batch", &ExpressionValue{Value: ExpressionEntireWorktop}))

	if _, err := b.Build(); err != nil {
		t.Fatalf("Build failed: %v", err)
	}
}

func TestBuilderNamedIdentifier(t *testing.T) {
	b := New()
	b.Add(&ReturnToWorktop{Bucket: NamedBucket("xrd")})

	_, err := b.Build()
	if err == nil {
		t.Fatal("Expected error")
	}
	var nameErr *NameNotFoundError
	if !errors.As(err, &nameErr) {
		t.Fatalf("Expected NameNotFoundError, got %T: %v", err, err)
	}
	if nameErr.Name != "xrd" || nameErr.Kind != IdentifierBucket {
		t.Errorf("Expected bucket \"xrd\", got %s %q", nameErr.Kind, nameErr.Name)
	}
}

func TestBuilderNetwork(t *testing.T) {
	t.Run("rejects mixed networks", func(t *testing.T) {
		b := New()
		b.TakeAllFromWorktop(simXRD())
		b.TakeAllFromWorktop(KnownAddressesFor(NetworkStokenet).XRD)

		_, err := b.Build()
		var mismatch *NetworkMismatchError
		if !errors.As(err, &mismatch) {
			t.Fatalf("Expected NetworkMismatchError, got %v", err)
		}
		if mismatch.Expected != NetworkSimulator || mismatch.Found != NetworkStokenet {
			t.Errorf("Expected simulator/stokenet mismatch, got %s", spew.Sdump(mismatch))
		}
		var insErr *InstructionError
		if !errors.As(err, &insErr) || insErr.Index != 1 {
			t.Errorf("Expected InstructionError at 1, got %v", err)
		}
	})

	t.Run("fixed network rejects other networks", func(t *testing.T) {
		b := New(WithBuilderNetwork(NetworkStokenet))
		b.TakeAllFromWorktop(simXRD())

		_, err := b.Build()
		var mismatch *NetworkMismatchError
		if !errors.As(err, &mismatch) {
			t.Fatalf("Expected NetworkMismatchError, got %v", err)
		}
		if mismatch.Expected != NetworkStokenet || mismatch.Found != NetworkSimulator {
			t.Errorf("Expected stokenet/simulator mismatch, got %s", spew.Sdump(mismatch))
		}
	})

	t.Run("fixed network accepts its own addresses", func(t *testing.T) {
		b := New(WithBuilderNetwork(NetworkSimulator))
		b.TakeAllFromWorktop(simXRD())
		b.AssertWorktopContains(simXRD(), DecimalFromInt(5))

		if _, err := b.Build(); err != nil {
			t.Fatalf("Build failed: %v", err)
		}
	})
}

func TestBuilderDeferredErrors(t *testing.T) {
	t.Run("non-resource address", func(t *testing.T) {
		b := New()
		bucket := b.TakeFromWorktop(simAccount(1), DecimalFromInt(1))
		b.ReturnToWorktop(bucket)

		if b.Len() != 2 {
			t.Errorf("Expected 2 instructions, got %d", b.Len())
		}
		_, err := b.Build()
		var buildErr *BuildError
		if !errors.As(err, &buildErr) {
			t.Fatalf("Expected BuildError, got %v", err)
		}
		if buildErr.InstructionIndex != 0 || buildErr.Instruction != InstructionTakeFromWorktop {
			t.Errorf("Expected TAKE_FROM_WORKTOP at 0, got %s at %d", buildErr.Instruction, buildErr.InstructionIndex)
		}
		var kindErr *AddressKindError
		if !errors.As(err, &kindErr) {
			t.Fatalf("Expected AddressKindError, got %v", err)
		}
		if kindErr.Expected != KindResourceAddress {
			t.Errorf("Expected ResourceAddress, got %s", kindErr.Expected)
		}
	})

	t.Run("first error wins", func(t *testing.T) {
		b := New()
		b.CreateProofFromAuthZone(simAccount(1))
		b.AllocateGlobalAddress(simXRD(), "Account")

		_, err := b.Build()
		var buildErr *BuildError
		if !errors.As(err, &buildErr) {
			t.Fatalf("Expected BuildError, got %v", err)
		}
		if buildErr.Instruction != InstructionCreateProofFromAuthZone {
			t.Errorf("Expected CREATE_PROOF_FROM_AUTH_ZONE, got %s", buildErr.Instruction)
		}
	})

	t.Run("module call on package", func(t *testing.T) {
		target, err := NewPackage(KnownAddressesFor(NetworkSimulator).AccountPackage, WithBlueprint("Account"))
		if err != nil {
			t.Fatalf("NewPackage failed: %v", err)
		}
		b := New()
		b.Call(target.MustInvoke("create").Royalty())

		if b.Len() != 0 {
			t.Errorf("Expected call to be dropped, got %d instructions", b.Len())
		}
		_, err = b.Build()
		if !errors.Is(err, ErrInvalidCallModule) {
			t.Errorf("Expected ErrInvalidCallModule, got %v", err)
		}
	})

	t.Run("malformed instruction", func(t *testing.T) {
		b := New()
		b.Add(&TakeFromWorktop{ResourceAddress: MustAddressValue(simXRD())})

		_, err := b.Build()
		if !errors.Is(err, ErrNilValue) {
			t.Fatalf("Expected ErrNilValue, got %v", err)
		}
		var argErr *ArgumentError
		if !errors.As(err, &argErr) {
			t.Fatalf("Expected ArgumentError, got %T", err)
		}
		if argErr.Index != 1 {
			t.Errorf("Expected argument 1, got %d", argErr.Index)
		}
	})
}

func TestBuilderAddBlob(t *testing.T) {
	code := []byte{0x00, 0x61, 0x73, 0x6d}
	b := New()
	ref := b.AddBlob(code)
	code[0] = 0xff

	if ref.Hash != HashBlob([]byte{0x00, 0x61, 0x73, 0x6d}) {
		t.Errorf("Expected hash of the original blob, got %s", ref.Hash)
	}

	target, err := NewPackage(KnownAddressesFor(NetworkSimulator).PackagePackage, WithBlueprint("Package"))
	if err != nil {
		t.Fatalf("NewPackage failed: %v", err)
	}
	b.Call(target.MustInvoke("publish_wasm", ref))

	m, err := b.Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if len(m.Blobs) != 1 {
		t.Fatalf("Expected 1 blob, got %d", len(m.Blobs))
	}
	if !bytes.Equal(m.Blobs[0], []byte{0x00, 0x61, 0x73, 0x6d}) {
		t.Errorf("Expected blob to be copied, got %x", m.Blobs[0])
	}
}

func TestBuilderLen(t *testing.T) {
	b := New()
	if b.Len() != 0 {
		t.Errorf("Expected 0, got %d", b.Len())
	}

	b.ClearAuthZone()
	if b.Len() != 1 {
		t.Errorf("Expected 1, got %d", b.Len())
	}

	b.ClearSignatureProofs()
	if b.Len() != 2 {
		t.Errorf("Expected 2, got %d", b.Len())
	}
}

func TestBuilderInstructionAt(t *testing.T) {
	b := New()
	b.ClearAuthZone()
	b.DropAllProofs()

	t.Run("returns instruction at valid index", func(t *testing.T) {
		if in := b.InstructionAt(0); in == nil || in.Kind() != InstructionClearAuthZone {
			t.Errorf("Expected CLEAR_AUTH_ZONE, got %v", in)
		}
		if in := b.InstructionAt(1); in == nil || in.Kind() != InstructionDropAllProofs {
			t.Errorf("Expected DROP_ALL_PROOFS, got %v", in)
		}
	})

	t.Run("returns nil for negative index", func(t *testing.T) {
		if b.InstructionAt(-1) != nil {
			t.Error("Expected nil for negative index")
		}
	})

	t.Run("returns nil for out of bounds", func(t *testing.T) {
		if b.InstructionAt(100) != nil {
			t.Error("Expected nil for out of bounds index")
		}
	})
}

func TestBuilderForEachInstruction(t *testing.T) {
	b := New()
	b.ClearAuthZone()
	b.DropAllProofs()
	b.ClearSignatureProofs()

	t.Run("iterates all instructions", func(t *testing.T) {
		count := 0
		b.ForEachInstruction(func(i int, in Instruction) bool {
			count++
			return true
		})

		if count != 3 {
			t.Errorf("Expected 3 iterations, got %d", count)
		}
	})

	t.Run("stops on false return", func(t *testing.T) {
		count := 0
		b.ForEachInstruction(func(i int, in Instruction) bool {
			count++
			return i < 1
		})

		if count != 2 {
			t.Errorf("Expected 2 iterations (stopped early), got %d", count)
		}
	})

	t.Run("provides correct indices", func(t *testing.T) {
		indices := make([]int, 0, 3)
		b.ForEachInstruction(func(i int, in Instruction) bool {
			indices = append(indices, i)
			return true
		})

		expected := []int{0, 1, 2}
		for i, idx := range indices {
			if idx != expected[i] {
				t.Errorf("Expected index %d at position %d, got %d", expected[i], i, idx)
			}
		}
	})
}

func TestBuilderNonFungibles(t *testing.T) {
	nft := simNFT(7)
	ids := []NonFungibleLocalId{IntegerLocalId(1), IntegerLocalId(2)}

	b := New()
	b.AssertWorktopContainsNonFungibles(nft, ids...)
	bucket := b.TakeNonFungiblesFromWorktop(nft, ids...)
	proof := b.CreateProofFromBucketOfNonFungibles(bucket, ids[0])
	b.DropProof(proof)
	amountProof := b.CreateProofFromBucketOfAmount(bucket, DecimalFromInt(1))
	b.PushToAuthZone(amountProof)
	authProof := b.CreateProofFromAuthZoneOfNonFungibles(nft, ids[1])
	b.DropProof(authProof)
	b.DropProof(b.CreateProofFromAuthZoneOfAmount(nft, DecimalFromInt(1)))
	b.DropProof(b.CreateProofFromBucket(bucket))
	b.BurnResource(bucket)

	m, err := b.Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	take := m.Instructions[1].(*TakeNonFungiblesFromWorktop)
	want := MustArray(KindNonFungibleLocalId, LocalId(ids[0]), LocalId(ids[1]))
	if !Equal(take.Ids, want) {
		t.Errorf("Expected ids %s, got %s", spew.Sdump(want), spew.Sdump(take.Ids))
	}
}
