package txmanifest

import (
	"fmt"
	"regexp"
	"strconv"
)

// Well-known network ids.
const (
	NetworkMainnet    uint8 = 0x01
	NetworkStokenet   uint8 = 0x02
	NetworkAdapanet   uint8 = 0x0A
	NetworkNebunet    uint8 = 0x0B
	NetworkGilganet   uint8 = 0x20
	NetworkEnkinet    uint8 = 0x21
	NetworkHammunet   uint8 = 0x22
	NetworkNergalnet  uint8 = 0x23
	NetworkMardunet   uint8 = 0x24
	NetworkLocalnet   uint8 = 0xF0
	NetworkIntTestnet uint8 = 0xF1
	NetworkSimulator  uint8 = 0xF2
)

// NetworkDefinition names a network and carries the suffix its addresses use.
type NetworkDefinition struct {
	ID          uint8
	LogicalName string
	HRPSuffix   string
}

var networks = map[uint8]NetworkDefinition{
	NetworkMainnet:    {NetworkMainnet, "mainnet", "rdx"},
	NetworkStokenet:   {NetworkStokenet, "stokenet", "tdx_2_"},
	NetworkAdapanet:   {NetworkAdapanet, "adapanet", "tdx_a_"},
	NetworkNebunet:    {NetworkNebunet, "nebunet", "tdx_b_"},
	NetworkGilganet:   {NetworkGilganet, "gilganet", "tdx_20_"},
	NetworkEnkinet:    {NetworkEnkinet, "enkinet", "tdx_21_"},
	NetworkHammunet:   {NetworkHammunet, "hammunet", "tdx_22_"},
	NetworkNergalnet:  {NetworkNergalnet, "nergalnet", "tdx_23_"},
	NetworkMardunet:   {NetworkMardunet, "mardunet", "tdx_24_"},
	NetworkLocalnet:   {NetworkLocalnet, "localnet", "loc"},
	NetworkIntTestnet: {NetworkIntTestnet, "inttestnet", "test"},
	NetworkSimulator:  {NetworkSimulator, "simulator", "sim"},
}

var reservedSuffixes = map[string]uint8{
	"rdx":  NetworkMainnet,
	"loc":  NetworkLocalnet,
	"test": NetworkIntTestnet,
	"sim":  NetworkSimulator,
}

var networkSuffixPattern = regexp.MustCompile(`_(sim|loc|rdx|test|tdx_([A-Fa-f0-9]{1,2})_)$`)

// NetworkByID returns the definition of a network. Unregistered ids get an
// "unnamed" definition whose suffix embeds the id, so distinct ids never
// share a suffix.
func NetworkByID(id uint8) NetworkDefinition {
	if def, ok := networks[id]; ok {
		return def
	}
	return NetworkDefinition{
		ID:          id,
		LogicalName: "unnamed",
		HRPSuffix:   fmt.Sprintf("tdx_%x_", id),
	}
}

// splitHRP separates an address HRP into its entity prefix and network id.
func splitHRP(hrp string) (string, uint8, error) {
	loc := networkSuffixPattern.FindStringSubmatchIndex(hrp)
	if loc == nil {
		return "", 0, ErrUnknownNetwork
	}
	prefix := hrp[:loc[0]]
	suffix := hrp[loc[2]:loc[3]]
	if id, ok := reservedSuffixes[suffix]; ok {
		return prefix, id, nil
	}
	id, err := strconv.ParseUint(hrp[loc[4]:loc[5]], 16, 8)
	if err != nil {
		return "", 0, ErrUnknownNetwork
	}
	return prefix, uint8(id), nil
}

// NetworkIDFromAddress deduces the network id from an encoded address.
func NetworkIDFromAddress(address string) (uint8, error) {
	addr, err := DecodeAddress(address)
	if err != nil {
		return 0, err
	}
	return addr.NetworkID, nil
}

// NetworkByName looks up a registered network by its logical name.
func NetworkByName(name string) (NetworkDefinition, bool) {
	for _, def := range networks {
		if def.LogicalName == name {
			return def, true
		}
	}
	return NetworkDefinition{}, false
}
