package txmanifest

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
)

// testAddress returns an address of entity on network whose body is filled
// with seed.
func testAddress(entity EntityType, network uint8, seed byte) NetworkAwareAddress {
	addr := NetworkAwareAddress{NetworkID: network}
	addr.Raw[0] = byte(entity)
	for i := 1; i < AddressLength; i++ {
		addr.Raw[i] = seed
	}
	return addr
}

func simAccount(seed byte) NetworkAwareAddress {
	return testAddress(EntityGlobalVirtualSecp256k1Account, NetworkSimulator, seed)
}

func simXRD() NetworkAwareAddress {
	return KnownAddressesFor(NetworkSimulator).XRD
}

func simNFT(seed byte) NetworkAwareAddress {
	return testAddress(EntityGlobalNonFungibleResource, NetworkSimulator, seed)
}

// assertEqualInstructions fails the test when the two lists differ.
func assertEqualInstructions(t *testing.T, want, got []Instruction) {
	t.Helper()
	if len(want) != len(got) {
		t.Fatalf("Expected %d instructions, got %d:\n%s", len(want), len(got), spew.Sdump(got))
	}
	for i := range want {
		if !EqualInstructions(want[i], got[i]) {
			t.Errorf("Instruction %d: expected\n%s\ngot\n%s", i, spew.Sdump(want[i]), spew.Sdump(got[i]))
		}
	}
}
