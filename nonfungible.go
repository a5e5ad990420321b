package txmanifest

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// NonFungibleLocalIdType identifies the representation of a local id.
type NonFungibleLocalIdType uint8

const (
	LocalIdString NonFungibleLocalIdType = iota
	LocalIdInteger
	LocalIdBytes
	LocalIdUUID
)

// Local id length limits.
const (
	MaxLocalIdStringLength = 64
	MaxLocalIdBytesLength  = 64
)

// String returns the type name.
func (t NonFungibleLocalIdType) String() string {
	switch t {
	case LocalIdString:
		return "String"
	case LocalIdInteger:
		return "Integer"
	case LocalIdBytes:
		return "Bytes"
	case LocalIdUUID:
		return "UUID"
	default:
		return fmt.Sprintf("NonFungibleLocalIdType(%d)", uint8(t))
	}
}

// NonFungibleLocalId identifies a single non-fungible within its resource.
//
// The textual forms are:
//
//	<name>       String, 1 to 64 characters of [A-Za-z0-9_]
//	#123#        Integer, an unsigned 64-bit number
//	[deadbeef]   Bytes, 1 to 64 bytes in hex
//	{uuid}       UUID, version 4 in the RFC 4122 variant
type NonFungibleLocalId struct {
	idType  NonFungibleLocalIdType
	str     string
	integer uint64
	bytes   []byte
	uuid    uuid.UUID
}

// StringLocalId creates a String local id.
func StringLocalId(s string) (NonFungibleLocalId, error) {
	if len(s) == 0 || len(s) > MaxLocalIdStringLength {
		return NonFungibleLocalId{}, &LocalIdError{Input: s, Err: ErrLocalIdLength}
	}
	for _, r := range s {
		if !(r == '_' || (r >= '0' && r <= '9') || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')) {
			return NonFungibleLocalId{}, &LocalIdError{Input: s, Err: ErrLocalIdCharacter}
		}
	}
	return NonFungibleLocalId{idType: LocalIdString, str: s}, nil
}

// IntegerLocalId creates an Integer local id.
func IntegerLocalId(v uint64) NonFungibleLocalId {
	return NonFungibleLocalId{idType: LocalIdInteger, integer: v}
}

// BytesLocalId creates a Bytes local id.
func BytesLocalId(b []byte) (NonFungibleLocalId, error) {
	if len(b) == 0 || len(b) > MaxLocalIdBytesLength {
		return NonFungibleLocalId{}, &LocalIdError{Input: hex.EncodeToString(b), Err: ErrLocalIdLength}
	}
	return NonFungibleLocalId{idType: LocalIdBytes, bytes: bytes.Clone(b)}, nil
}

// UUIDLocalId creates a UUID local id.
func UUIDLocalId(u uuid.UUID) (NonFungibleLocalId, error) {
	if u.Version() != 4 || u.Variant() != uuid.RFC4122 {
		return NonFungibleLocalId{}, &LocalIdError{Input: u.String(), Err: ErrLocalIdUUID}
	}
	return NonFungibleLocalId{idType: LocalIdUUID, uuid: u}, nil
}

// ParseNonFungibleLocalId parses the textual form of a local id.
func ParseNonFungibleLocalId(s string) (NonFungibleLocalId, error) {
	if len(s) < 2 {
		return NonFungibleLocalId{}, &LocalIdError{Input: s, Err: ErrLocalIdFormat}
	}
	inner := s[1 : len(s)-1]
	switch {
	case s[0] == '<' && s[len(s)-1] == '>':
		return StringLocalId(inner)
	case s[0] == '#' && s[len(s)-1] == '#':
		v, err := strconv.ParseUint(inner, 10, 64)
		if err != nil {
			return NonFungibleLocalId{}, &LocalIdError{Input: s, Err: err}
		}
		return IntegerLocalId(v), nil
	case s[0] == '[' && s[len(s)-1] == ']':
		b, err := hex.DecodeString(inner)
		if err != nil {
			return NonFungibleLocalId{}, &LocalIdError{Input: s, Err: err}
		}
		return BytesLocalId(b)
	case s[0] == '{' && s[len(s)-1] == '}':
		u, err := uuid.Parse(inner)
		if err != nil {
			return NonFungibleLocalId{}, &LocalIdError{Input: s, Err: err}
		}
		return UUIDLocalId(u)
	default:
		return NonFungibleLocalId{}, &LocalIdError{Input: s, Err: ErrLocalIdFormat}
	}
}

// MustParseNonFungibleLocalId is like ParseNonFungibleLocalId but panics on error.
func MustParseNonFungibleLocalId(s string) NonFungibleLocalId {
	id, err := ParseNonFungibleLocalId(s)
	if err != nil {
		panic(err)
	}
	return id
}

// Type returns the representation of the id.
func (id NonFungibleLocalId) Type() NonFungibleLocalIdType {
	return id.idType
}

// String returns the textual form of the id.
func (id NonFungibleLocalId) String() string {
	switch id.idType {
	case LocalIdInteger:
		return "#" + strconv.FormatUint(id.integer, 10) + "#"
	case LocalIdBytes:
		return "[" + hex.EncodeToString(id.bytes) + "]"
	case LocalIdUUID:
		return "{" + id.uuid.String() + "}"
	default:
		return "<" + id.str + ">"
	}
}

// Equal reports whether id and o are the same local id.
func (id NonFungibleLocalId) Equal(o NonFungibleLocalId) bool {
	if id.idType != o.idType {
		return false
	}
	switch id.idType {
	case LocalIdInteger:
		return id.integer == o.integer
	case LocalIdBytes:
		return bytes.Equal(id.bytes, o.bytes)
	case LocalIdUUID:
		return id.uuid == o.uuid
	default:
		return id.str == o.str
	}
}

// MarshalText implements encoding.TextMarshaler.
func (id NonFungibleLocalId) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (id *NonFungibleLocalId) UnmarshalText(text []byte) error {
	parsed, err := ParseNonFungibleLocalId(string(text))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

// NonFungibleGlobalId is a resource address paired with a local id.
type NonFungibleGlobalId struct {
	Resource NetworkAwareAddress
	LocalID  NonFungibleLocalId
}

// ParseNonFungibleGlobalId parses "<resource address>:<local id>".
func ParseNonFungibleGlobalId(s string) (NonFungibleGlobalId, error) {
	idx := strings.IndexByte(s, ':')
	if idx < 0 {
		return NonFungibleGlobalId{}, &LocalIdError{Input: s, Err: ErrLocalIdFormat}
	}
	addr, err := DecodeAddress(s[:idx])
	if err != nil {
		return NonFungibleGlobalId{}, err
	}
	if !addr.EntityType().IsGlobalResource() {
		return NonFungibleGlobalId{}, &AddressKindError{Address: addr, Expected: KindResourceAddress}
	}
	local, err := ParseNonFungibleLocalId(s[idx+1:])
	if err != nil {
		return NonFungibleGlobalId{}, err
	}
	return NonFungibleGlobalId{Resource: addr, LocalID: local}, nil
}

// String returns the textual form of the global id.
func (g NonFungibleGlobalId) String() string {
	return g.Resource.String() + ":" + g.LocalID.String()
}

// NewNonFungibleGlobalId pairs a resource address with a local id. The
// address must belong to a resource.
func NewNonFungibleGlobalId(resource NetworkAwareAddress, local NonFungibleLocalId) (NonFungibleGlobalId, error) {
	if !resource.EntityType().IsGlobalResource() {
		return NonFungibleGlobalId{}, &AddressKindError{Address: resource, Expected: KindResourceAddress}
	}
	return NonFungibleGlobalId{Resource: resource, LocalID: local}, nil
}
