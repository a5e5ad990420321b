package txmanifest

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/log"
)

// ManifestAnalysis summarizes what a manifest touches.
type ManifestAnalysis struct {
	// NetworkID is the network of the manifest's addresses. It is only
	// meaningful when HasNetwork is set.
	NetworkID  uint8 `json:"network_id"`
	HasNetwork bool  `json:"-"`

	// Addresses lists the distinct addresses per address kind, in the order
	// first seen.
	Addresses map[Kind][]NetworkAwareAddress `json:"addresses"`

	AccountsRequiringAuth []NetworkAwareAddress `json:"accounts_requiring_auth"`
	AccountsWithdrawnFrom []NetworkAwareAddress `json:"accounts_withdrawn_from"`
	AccountsDepositedInto []NetworkAwareAddress `json:"accounts_deposited_into"`

	Withdraws []AccountWithdraw `json:"account_withdraws"`
	Deposits  []AccountDeposit  `json:"account_deposits"`

	// BlobReferences are the hashes referenced by Blob values.
	BlobReferences []common.Hash `json:"blob_references"`
	// MissingBlobs are the referenced hashes with no matching blob.
	MissingBlobs []common.Hash `json:"missing_blobs"`
}

var analyzedAddressKinds = []Kind{KindComponentAddress, KindResourceAddress, KindPackageAddress, KindSystemAddress}

// AnalyzeManifest walks m once and reports the networks, addresses, account
// interactions, withdrawals, deposits and blob references it finds. Deposits
// of everything on the worktop need an execution trace; see
// WithExecutionTrace.
func AnalyzeManifest(m *Manifest, opts ...AnalyzeOption) (*ManifestAnalysis, error) {
	cfg := defaultAnalyzeConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	network := NewNetworkAggregator()
	network.strict = cfg.networkCheck
	blobs := NewBlobCollector()
	interactions := NewAccountInteractions()
	withdraws := NewAccountWithdraws()
	deposits := NewAccountDeposits(cfg.trace)

	err := TraverseInstructions(m.Instructions,
		[]ValueVisitor{network, blobs},
		[]InstructionVisitor{interactions, withdraws, deposits},
	)
	if err != nil {
		return nil, err
	}

	a := &ManifestAnalysis{
		Addresses:             make(map[Kind][]NetworkAwareAddress),
		AccountsRequiringAuth: interactions.AuthRequired.Items(),
		AccountsWithdrawnFrom: interactions.WithdrawnFrom.Items(),
		AccountsDepositedInto: interactions.DepositedInto.Items(),
		Withdraws:             withdraws.Withdraws,
		Deposits:              deposits.Deposits,
		BlobReferences:        blobs.Hashes,
	}
	a.NetworkID, a.HasNetwork = network.NetworkID()
	for _, k := range analyzedAddressKinds {
		if addrs := network.AddressesOfKind(k); len(addrs) > 0 {
			a.Addresses[k] = addrs
		}
	}

	present := make(map[common.Hash]struct{}, len(m.Blobs))
	for _, b := range m.Blobs {
		present[HashBlob(b)] = struct{}{}
	}
	for _, h := range blobs.Hashes {
		if _, ok := present[h]; !ok {
			a.MissingBlobs = append(a.MissingBlobs, h)
		}
	}

	log.Debug("Analyzed manifest",
		"instructions", len(m.Instructions),
		"network", a.NetworkID,
		"addresses", len(network.Addresses()),
		"withdraws", len(a.Withdraws),
		"deposits", len(a.Deposits),
		"missing_blobs", len(a.MissingBlobs),
	)
	return a, nil
}
