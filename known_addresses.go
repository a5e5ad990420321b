package txmanifest

// wellKnown builds the raw bytes of a system-allocated address.
func wellKnown(entity EntityType, index byte) [AddressLength]byte {
	var raw [AddressLength]byte
	raw[0] = byte(entity)
	raw[AddressLength-1] = index
	return raw
}

// Raw addresses of native packages and components. They are identical on
// every network.
var (
	PackagePackageRaw          = wellKnown(EntityGlobalPackage, 0x01)
	ResourcePackageRaw         = wellKnown(EntityGlobalPackage, 0x02)
	AccountPackageRaw          = wellKnown(EntityGlobalPackage, 0x03)
	IdentityPackageRaw         = wellKnown(EntityGlobalPackage, 0x04)
	AccessControllerPackageRaw = wellKnown(EntityGlobalPackage, 0x05)
	EpochManagerPackageRaw     = wellKnown(EntityGlobalPackage, 0x06)
	FaucetPackageRaw           = wellKnown(EntityGlobalPackage, 0x07)

	XRDRaw          = wellKnown(EntityGlobalFungibleResource, 0x01)
	EpochManagerRaw = wellKnown(EntityGlobalEpochManager, 0x01)
	ClockRaw        = wellKnown(EntityGlobalClock, 0x01)
	FaucetRaw       = wellKnown(EntityGlobalGenericComponent, 0x01)
)

// KnownAddresses are the native entity addresses of one network.
type KnownAddresses struct {
	PackagePackage          NetworkAwareAddress `json:"package_package"`
	ResourcePackage         NetworkAwareAddress `json:"resource_package"`
	AccountPackage          NetworkAwareAddress `json:"account_package"`
	IdentityPackage         NetworkAwareAddress `json:"identity_package"`
	AccessControllerPackage NetworkAwareAddress `json:"access_controller_package"`
	EpochManagerPackage     NetworkAwareAddress `json:"epoch_manager_package"`
	FaucetPackage           NetworkAwareAddress `json:"faucet_package"`
	XRD                     NetworkAwareAddress `json:"xrd"`
	EpochManager            NetworkAwareAddress `json:"epoch_manager"`
	Clock                   NetworkAwareAddress `json:"clock"`
	Faucet                  NetworkAwareAddress `json:"faucet"`
}

// KnownAddressesFor returns the native entity addresses on a network.
func KnownAddressesFor(networkID uint8) KnownAddresses {
	at := func(raw [AddressLength]byte) NetworkAwareAddress {
		return NetworkAwareAddress{NetworkID: networkID, Raw: raw}
	}
	return KnownAddresses{
		PackagePackage:          at(PackagePackageRaw),
		ResourcePackage:         at(ResourcePackageRaw),
		AccountPackage:          at(AccountPackageRaw),
		IdentityPackage:         at(IdentityPackageRaw),
		AccessControllerPackage: at(AccessControllerPackageRaw),
		EpochManagerPackage:     at(EpochManagerPackageRaw),
		FaucetPackage:           at(FaucetPackageRaw),
		XRD:                     at(XRDRaw),
		EpochManager:            at(EpochManagerRaw),
		Clock:                   at(ClockRaw),
		Faucet:                  at(FaucetRaw),
	}
}
