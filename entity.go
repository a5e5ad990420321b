package txmanifest

import "fmt"

// EntityType is the first byte of every raw address and determines which
// kind of entity the address refers to.
type EntityType uint8

const (
	EntityGlobalFungibleResource         EntityType = 0x00
	EntityGlobalNonFungibleResource      EntityType = 0x01
	EntityGlobalPackage                  EntityType = 0x02
	EntityGlobalGenericComponent         EntityType = 0x03
	EntityGlobalAccount                  EntityType = 0x04
	EntityGlobalVirtualSecp256k1Account  EntityType = 0x05
	EntityGlobalVirtualEd25519Account    EntityType = 0x06
	EntityGlobalIdentity                 EntityType = 0x07
	EntityGlobalVirtualSecp256k1Identity EntityType = 0x08
	EntityGlobalVirtualEd25519Identity   EntityType = 0x09
	EntityGlobalAccessController         EntityType = 0x0A
	EntityGlobalEpochManager             EntityType = 0x0B
	EntityGlobalClock                    EntityType = 0x0C
	EntityGlobalValidator                EntityType = 0x0D
)

type entityInfo struct {
	name      string
	hrpPrefix string
	kind      Kind
}

var entities = map[EntityType]entityInfo{
	EntityGlobalFungibleResource:         {"GlobalFungibleResource", "resource", KindResourceAddress},
	EntityGlobalNonFungibleResource:      {"GlobalNonFungibleResource", "resource", KindResourceAddress},
	EntityGlobalPackage:                  {"GlobalPackage", "package", KindPackageAddress},
	EntityGlobalGenericComponent:         {"GlobalGenericComponent", "component", KindComponentAddress},
	EntityGlobalAccount:                  {"GlobalAccount", "account", KindComponentAddress},
	EntityGlobalVirtualSecp256k1Account:  {"GlobalVirtualSecp256k1Account", "account", KindComponentAddress},
	EntityGlobalVirtualEd25519Account:    {"GlobalVirtualEd25519Account", "account", KindComponentAddress},
	EntityGlobalIdentity:                 {"GlobalIdentity", "identity", KindComponentAddress},
	EntityGlobalVirtualSecp256k1Identity: {"GlobalVirtualSecp256k1Identity", "identity", KindComponentAddress},
	EntityGlobalVirtualEd25519Identity:   {"GlobalVirtualEd25519Identity", "identity", KindComponentAddress},
	EntityGlobalAccessController:         {"GlobalAccessController", "accesscontroller", KindComponentAddress},
	EntityGlobalEpochManager:             {"GlobalEpochManager", "epochmanager", KindSystemAddress},
	EntityGlobalClock:                    {"GlobalClock", "clock", KindSystemAddress},
	EntityGlobalValidator:                {"GlobalValidator", "validator", KindSystemAddress},
}

// IsValid reports whether e is a known entity type.
func (e EntityType) IsValid() bool {
	_, ok := entities[e]
	return ok
}

// String returns the entity type name.
func (e EntityType) String() string {
	if info, ok := entities[e]; ok {
		return info.name
	}
	return fmt.Sprintf("EntityType(0x%02x)", uint8(e))
}

// HRPPrefix returns the human-readable prefix used in addresses of this entity.
func (e EntityType) HRPPrefix() (string, bool) {
	info, ok := entities[e]
	return info.hrpPrefix, ok
}

// AddressKind returns the Value kind that holds addresses of this entity.
func (e EntityType) AddressKind() (Kind, bool) {
	info, ok := entities[e]
	return info.kind, ok
}

// IsGlobal reports whether the entity is globally addressable.
func (e EntityType) IsGlobal() bool {
	return e.IsValid()
}

// IsGlobalComponent reports whether the entity is any kind of global component.
func (e EntityType) IsGlobalComponent() bool {
	kind, ok := e.AddressKind()
	return ok && kind == KindComponentAddress
}

// IsAccount reports whether the entity is an account, allocated or virtual.
func (e EntityType) IsAccount() bool {
	switch e {
	case EntityGlobalAccount, EntityGlobalVirtualSecp256k1Account, EntityGlobalVirtualEd25519Account:
		return true
	default:
		return false
	}
}

// IsIdentity reports whether the entity is an identity, allocated or virtual.
func (e EntityType) IsIdentity() bool {
	switch e {
	case EntityGlobalIdentity, EntityGlobalVirtualSecp256k1Identity, EntityGlobalVirtualEd25519Identity:
		return true
	default:
		return false
	}
}

// IsGlobalPackage reports whether the entity is a package.
func (e EntityType) IsGlobalPackage() bool {
	return e == EntityGlobalPackage
}

// IsGlobalResource reports whether the entity is a resource manager.
func (e EntityType) IsGlobalResource() bool {
	return e.IsFungibleResource() || e.IsNonFungibleResource()
}

// IsFungibleResource reports whether the entity is a fungible resource manager.
func (e EntityType) IsFungibleResource() bool {
	return e == EntityGlobalFungibleResource
}

// IsNonFungibleResource reports whether the entity is a non-fungible resource manager.
func (e EntityType) IsNonFungibleResource() bool {
	return e == EntityGlobalNonFungibleResource
}

// IsSystem reports whether the entity is a system component.
func (e EntityType) IsSystem() bool {
	kind, ok := e.AddressKind()
	return ok && kind == KindSystemAddress
}
