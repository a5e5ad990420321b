package txmanifest

import (
	"encoding/hex"
	"strings"

	"github.com/btcsuite/btcd/btcutil/bech32"
)

// AddressLength is the length of a raw address. The first byte is the
// EntityType.
const AddressLength = 30

// NetworkAwareAddress binds raw address bytes to the network they belong to.
type NetworkAwareAddress struct {
	NetworkID uint8
	Raw       [AddressLength]byte
}

// NewNetworkAwareAddress copies raw into a NetworkAwareAddress.
func NewNetworkAwareAddress(networkID uint8, raw []byte) (NetworkAwareAddress, error) {
	var addr NetworkAwareAddress
	if len(raw) != AddressLength {
		return addr, &UnrecognizedAddressFormatError{Address: hex.EncodeToString(raw), Err: ErrAddressLength}
	}
	addr.NetworkID = networkID
	copy(addr.Raw[:], raw)
	if !addr.EntityType().IsValid() {
		return addr, &UnrecognizedAddressFormatError{Address: hex.EncodeToString(raw), Err: ErrUnknownEntityType}
	}
	return addr, nil
}

// EntityType returns the entity the address refers to.
func (a NetworkAwareAddress) EntityType() EntityType {
	return EntityType(a.Raw[0])
}

// String returns the bech32m form of the address. Addresses of an unknown
// entity type are rendered as hex.
func (a NetworkAwareAddress) String() string {
	s, err := EncodeAddress(a.Raw, a.NetworkID)
	if err != nil {
		return hex.EncodeToString(a.Raw[:])
	}
	return s
}

// MarshalText implements encoding.TextMarshaler.
func (a NetworkAwareAddress) MarshalText() ([]byte, error) {
	s, err := EncodeAddress(a.Raw, a.NetworkID)
	if err != nil {
		return nil, err
	}
	return []byte(s), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *NetworkAwareAddress) UnmarshalText(text []byte) error {
	parsed, err := DecodeAddress(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// EncodeAddress renders raw address bytes for the given network.
func EncodeAddress(raw [AddressLength]byte, networkID uint8) (string, error) {
	prefix, ok := EntityType(raw[0]).HRPPrefix()
	if !ok {
		return "", &UnrecognizedAddressFormatError{Address: hex.EncodeToString(raw[:]), Err: ErrUnknownEntityType}
	}
	hrp := prefix + "_" + NetworkByID(networkID).HRPSuffix

	data, err := bech32.ConvertBits(raw[:], 8, 5, true)
	if err != nil {
		return "", &UnrecognizedAddressFormatError{Address: hex.EncodeToString(raw[:]), Err: err}
	}
	encoded, err := bech32.EncodeM(hrp, data)
	if err != nil {
		return "", &UnrecognizedAddressFormatError{Address: hex.EncodeToString(raw[:]), Err: err}
	}
	return encoded, nil
}

// DecodeAddress parses a bech32m address, deducing its network from the
// human-readable prefix.
func DecodeAddress(address string) (NetworkAwareAddress, error) {
	var addr NetworkAwareAddress

	sep := strings.LastIndexByte(address, '1')
	if sep < 1 {
		return addr, &UnrecognizedAddressFormatError{Address: address, Err: ErrUnknownNetwork}
	}
	prefix, networkID, err := splitHRP(strings.ToLower(address[:sep]))
	if err != nil {
		return addr, &UnrecognizedAddressFormatError{Address: address, Err: err}
	}

	_, data, version, err := bech32.DecodeGeneric(address)
	if err != nil {
		return addr, &UnrecognizedAddressFormatError{Address: address, Err: err}
	}
	if version != bech32.VersionM {
		return addr, &UnrecognizedAddressFormatError{Address: address, Err: ErrChecksumVariant}
	}
	raw, err := bech32.ConvertBits(data, 5, 8, false)
	if err != nil {
		return addr, &UnrecognizedAddressFormatError{Address: address, Err: err}
	}
	if len(raw) != AddressLength {
		return addr, &UnrecognizedAddressFormatError{Address: address, Err: ErrAddressLength}
	}

	addr.NetworkID = networkID
	copy(addr.Raw[:], raw)

	expected, ok := addr.EntityType().HRPPrefix()
	if !ok {
		return addr, &UnrecognizedAddressFormatError{Address: address, Err: ErrUnknownEntityType}
	}
	if expected != prefix {
		return addr, &UnrecognizedAddressFormatError{Address: address, Err: ErrEntityPrefixMismatch}
	}
	return addr, nil
}

// MustDecodeAddress is like DecodeAddress but panics on error.
func MustDecodeAddress(address string) NetworkAwareAddress {
	addr, err := DecodeAddress(address)
	if err != nil {
		panic(err)
	}
	return addr
}
