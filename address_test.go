package txmanifest

import (
	"errors"
	"strings"
	"testing"

	"github.com/btcsuite/btcd/btcutil/bech32"
)

func TestAddressRoundTripAllNetworks(t *testing.T) {
	entities := []EntityType{
		EntityGlobalFungibleResource,
		EntityGlobalPackage,
		EntityGlobalVirtualEd25519Account,
		EntityGlobalAccessController,
		EntityGlobalValidator,
	}
	for network := 0; network <= 0xFF; network++ {
		for _, entity := range entities {
			addr := testAddress(entity, uint8(network), 0x5a)
			s, err := EncodeAddress(addr.Raw, addr.NetworkID)
			if err != nil {
				t.Fatalf("EncodeAddress(%s, 0x%02x) failed: %v", entity, network, err)
			}
			got, err := DecodeAddress(s)
			if err != nil {
				t.Fatalf("DecodeAddress(%q) failed: %v", s, err)
			}
			if got != addr {
				t.Errorf("Expected %v, got %v for %q", addr, got, s)
			}
		}
	}
}

func TestEncodeAddressPrefix(t *testing.T) {
	tests := []struct {
		name    string
		addr    NetworkAwareAddress
		wantHRP string
	}{
		{"mainnet account", testAddress(EntityGlobalAccount, NetworkMainnet, 1), "account_rdx1"},
		{"stokenet resource", testAddress(EntityGlobalFungibleResource, NetworkStokenet, 1), "resource_tdx_2_1"},
		{"simulator package", testAddress(EntityGlobalPackage, NetworkSimulator, 1), "package_sim1"},
		{"localnet clock", testAddress(EntityGlobalClock, NetworkLocalnet, 1), "clock_loc1"},
		{"unnamed network", testAddress(EntityGlobalIdentity, 0x7e, 1), "identity_tdx_7e_1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := tt.addr.String()
			if !strings.HasPrefix(s, tt.wantHRP) {
				t.Errorf("Expected prefix %q, got %q", tt.wantHRP, s)
			}
		})
	}
}

func TestNetworkByIDIsInjective(t *testing.T) {
	seen := make(map[string]int)
	for id := 0; id <= 0xFF; id++ {
		suffix := NetworkByID(uint8(id)).HRPSuffix
		if prev, ok := seen[suffix]; ok {
			t.Errorf("Networks 0x%02x and 0x%02x share suffix %q", prev, id, suffix)
		}
		seen[suffix] = id
	}
}

func TestNetworkByName(t *testing.T) {
	def, ok := NetworkByName("stokenet")
	if !ok || def.ID != NetworkStokenet {
		t.Errorf("Expected stokenet 0x%02x, got 0x%02x", NetworkStokenet, def.ID)
	}
	if _, ok := NetworkByName("unnamed"); ok {
		t.Error("Expected unregistered name not to resolve")
	}
}

func TestDecodeAddressErrors(t *testing.T) {
	account := testAddress(EntityGlobalAccount, NetworkSimulator, 3)
	valid := account.String()

	data, err := bech32.ConvertBits(account.Raw[:], 8, 5, true)
	if err != nil {
		t.Fatalf("ConvertBits failed: %v", err)
	}
	bech32Classic, err := bech32.Encode("account_sim", data)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	wrongPrefix, err := bech32.EncodeM("resource_sim", data)
	if err != nil {
		t.Fatalf("EncodeM failed: %v", err)
	}
	unknownNetwork, err := bech32.EncodeM("account_xyz", data)
	if err != nil {
		t.Fatalf("EncodeM failed: %v", err)
	}

	tests := []struct {
		name    string
		address string
		wantErr error
	}{
		{"bech32 checksum", bech32Classic, ErrChecksumVariant},
		{"prefix mismatch", wrongPrefix, ErrEntityPrefixMismatch},
		{"unknown network", unknownNetwork, ErrUnknownNetwork},
		{"no separator", "accountsim", ErrUnknownNetwork},
		{"corrupted checksum", valid[:len(valid)-1] + flipChar(valid[len(valid)-1]), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeAddress(tt.address)
			if err == nil {
				t.Fatal("Expected error")
			}
			var formatErr *UnrecognizedAddressFormatError
			if !errors.As(err, &formatErr) {
				t.Fatalf("Expected UnrecognizedAddressFormatError, got %T: %v", err, err)
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("Expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func flipChar(c byte) string {
	if c == 'q' {
		return "p"
	}
	return "q"
}

func TestNewNetworkAwareAddress(t *testing.T) {
	t.Run("rejects wrong length", func(t *testing.T) {
		_, err := NewNetworkAwareAddress(NetworkMainnet, make([]byte, 20))
		if !errors.Is(err, ErrAddressLength) {
			t.Errorf("Expected ErrAddressLength, got %v", err)
		}
	})

	t.Run("rejects unknown entity", func(t *testing.T) {
		raw := make([]byte, AddressLength)
		raw[0] = 0xEE
		_, err := NewNetworkAwareAddress(NetworkMainnet, raw)
		if !errors.Is(err, ErrUnknownEntityType) {
			t.Errorf("Expected ErrUnknownEntityType, got %v", err)
		}
	})

	t.Run("accepts known entity", func(t *testing.T) {
		raw := make([]byte, AddressLength)
		raw[0] = byte(EntityGlobalPackage)
		addr, err := NewNetworkAwareAddress(NetworkStokenet, raw)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if addr.NetworkID != NetworkStokenet || addr.EntityType() != EntityGlobalPackage {
			t.Errorf("Expected stokenet package, got %v", addr)
		}
	})
}

func TestAddressText(t *testing.T) {
	addr := testAddress(EntityGlobalGenericComponent, NetworkStokenet, 9)
	text, err := addr.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText failed: %v", err)
	}
	var got NetworkAwareAddress
	if err := got.UnmarshalText(text); err != nil {
		t.Fatalf("UnmarshalText failed: %v", err)
	}
	if got != addr {
		t.Errorf("Expected %v, got %v", addr, got)
	}

	id, err := NetworkIDFromAddress(string(text))
	if err != nil {
		t.Fatalf("NetworkIDFromAddress failed: %v", err)
	}
	if id != NetworkStokenet {
		t.Errorf("Expected network 0x%02x, got 0x%02x", NetworkStokenet, id)
	}
}

func TestEntityTypePredicates(t *testing.T) {
	tests := []struct {
		entity    EntityType
		account   bool
		component bool
		kind      Kind
	}{
		{EntityGlobalAccount, true, true, KindComponentAddress},
		{EntityGlobalVirtualSecp256k1Account, true, true, KindComponentAddress},
		{EntityGlobalIdentity, false, true, KindComponentAddress},
		{EntityGlobalFungibleResource, false, false, KindResourceAddress},
		{EntityGlobalPackage, false, false, KindPackageAddress},
		{EntityGlobalEpochManager, false, false, KindSystemAddress},
	}

	for _, tt := range tests {
		t.Run(tt.entity.String(), func(t *testing.T) {
			if got := tt.entity.IsAccount(); got != tt.account {
				t.Errorf("Expected IsAccount %v, got %v", tt.account, got)
			}
			if got := tt.entity.IsGlobalComponent(); got != tt.component {
				t.Errorf("Expected IsGlobalComponent %v, got %v", tt.component, got)
			}
			kind, ok := tt.entity.AddressKind()
			if !ok || kind != tt.kind {
				t.Errorf("Expected address kind %s, got %s", tt.kind, kind)
			}
		})
	}
}
