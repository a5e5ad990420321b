package txmanifest

import (
	"github.com/ethereum/go-ethereum/common"
)

// NetworkAggregator collects every address in the values it visits and
// checks that they all belong to one network. The first address seen fixes
// the network unless one was given up front.
type NetworkAggregator struct {
	BaseValueVisitor

	networkID  uint8
	fixed      bool
	strict     bool
	addresses  []NetworkAwareAddress
	seen       map[NetworkAwareAddress]struct{}
	byKind     map[Kind][]NetworkAwareAddress
	seenByKind map[Kind]map[NetworkAwareAddress]struct{}
}

// NewNetworkAggregator creates an aggregator that learns the network from
// the first address it sees.
func NewNetworkAggregator() *NetworkAggregator {
	return &NetworkAggregator{
		strict:     true,
		seen:       make(map[NetworkAwareAddress]struct{}),
		byKind:     make(map[Kind][]NetworkAwareAddress),
		seenByKind: make(map[Kind]map[NetworkAwareAddress]struct{}),
	}
}

// NewNetworkAggregatorFor creates an aggregator that expects every address
// to be on networkID.
func NewNetworkAggregatorFor(networkID uint8) *NetworkAggregator {
	a := NewNetworkAggregator()
	a.networkID = networkID
	a.fixed = true
	return a
}

// NetworkID returns the network of the addresses seen so far.
func (a *NetworkAggregator) NetworkID() (uint8, bool) {
	return a.networkID, a.fixed
}

// Addresses returns every distinct address in the order first seen.
func (a *NetworkAggregator) Addresses() []NetworkAwareAddress {
	return append([]NetworkAwareAddress(nil), a.addresses...)
}

// AddressesOfKind returns the distinct addresses held by values of kind k.
// Resources referenced by non-fungible global ids count as ResourceAddress.
func (a *NetworkAggregator) AddressesOfKind(k Kind) []NetworkAwareAddress {
	return append([]NetworkAwareAddress(nil), a.byKind[k]...)
}

func (a *NetworkAggregator) record(kind Kind, addr NetworkAwareAddress) error {
	if !a.fixed {
		a.networkID = addr.NetworkID
		a.fixed = true
	} else if addr.NetworkID != a.networkID && a.strict {
		return &NetworkMismatchError{Expected: a.networkID, Found: addr.NetworkID}
	}
	if _, ok := a.seen[addr]; !ok {
		a.seen[addr] = struct{}{}
		a.addresses = append(a.addresses, addr)
	}
	set, ok := a.seenByKind[kind]
	if !ok {
		set = make(map[NetworkAwareAddress]struct{})
		a.seenByKind[kind] = set
	}
	if _, ok := set[addr]; !ok {
		set[addr] = struct{}{}
		a.byKind[kind] = append(a.byKind[kind], addr)
	}
	return nil
}

func (a *NetworkAggregator) visitAddress(v *Value) error {
	addr, _ := AddressOf(*v)
	return a.record((*v).Kind(), addr)
}

// Address visitors record the network of each address they see.
func (a *NetworkAggregator) VisitComponentAddress(v *Value) error { return a.visitAddress(v) }
func (a *NetworkAggregator) VisitResourceAddress(v *Value) error  { return a.visitAddress(v) }
func (a *NetworkAggregator) VisitPackageAddress(v *Value) error   { return a.visitAddress(v) }
func (a *NetworkAggregator) VisitSystemAddress(v *Value) error    { return a.visitAddress(v) }

// VisitNonFungibleGlobalId checks the network of the resource in the id.
func (a *NetworkAggregator) VisitNonFungibleGlobalId(v *Value) error {
	return a.record(KindResourceAddress, (*v).(*NonFungibleGlobalIdValue).Value.Resource)
}

// BlobCollector records the hashes of every Blob value it visits.
type BlobCollector struct {
	BaseValueVisitor

	Hashes []common.Hash
	seen   map[common.Hash]struct{}
}

// NewBlobCollector creates an empty BlobCollector.
func NewBlobCollector() *BlobCollector {
	return &BlobCollector{seen: make(map[common.Hash]struct{})}
}

// VisitBlob records the referenced blob hash.
func (c *BlobCollector) VisitBlob(v *Value) error {
	h := (*v).(*BlobValue).Hash
	if _, ok := c.seen[h]; !ok {
		c.seen[h] = struct{}{}
		c.Hashes = append(c.Hashes, h)
	}
	return nil
}
