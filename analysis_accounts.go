package txmanifest

import (
	"encoding/json"
)

// Account method names.
const (
	methodLockFee                        = "lock_fee"
	methodLockContingentFee              = "lock_contingent_fee"
	methodWithdraw                       = "withdraw"
	methodWithdrawNonFungibles           = "withdraw_non_fungibles"
	methodLockFeeAndWithdraw             = "lock_fee_and_withdraw"
	methodLockFeeAndWithdrawNonFungibles = "lock_fee_and_withdraw_non_fungibles"
	methodCreateProof                    = "create_proof"
	methodCreateProofOfAmount            = "create_proof_of_amount"
	methodCreateProofOfNonFungibles      = "create_proof_of_non_fungibles"
	methodDeposit                        = "deposit"
	methodDepositBatch                   = "deposit_batch"
	methodTryDepositOrAbort              = "try_deposit_or_abort"
	methodTryDepositBatchOrAbort         = "try_deposit_batch_or_abort"
)

var (
	authRequiredMethods = map[string]bool{
		methodLockFee:                        true,
		methodLockContingentFee:              true,
		methodWithdraw:                       true,
		methodWithdrawNonFungibles:           true,
		methodLockFeeAndWithdraw:             true,
		methodLockFeeAndWithdrawNonFungibles: true,
		methodCreateProof:                    true,
		methodCreateProofOfAmount:            true,
		methodCreateProofOfNonFungibles:      true,
	}
	withdrawMethods = map[string]bool{
		methodWithdraw:                       true,
		methodWithdrawNonFungibles:           true,
		methodLockFeeAndWithdraw:             true,
		methodLockFeeAndWithdrawNonFungibles: true,
	}
	depositMethods = map[string]bool{
		methodDeposit:                true,
		methodDepositBatch:           true,
		methodTryDepositOrAbort:      true,
		methodTryDepositBatchOrAbort: true,
	}
)

// AddressSet is a set of addresses that remembers insertion order.
type AddressSet struct {
	items []NetworkAwareAddress
	index map[NetworkAwareAddress]struct{}
}

// Add inserts addr unless it is already present.
func (s *AddressSet) Add(addr NetworkAwareAddress) {
	if s.index == nil {
		s.index = make(map[NetworkAwareAddress]struct{})
	}
	if _, ok := s.index[addr]; ok {
		return
	}
	s.index[addr] = struct{}{}
	s.items = append(s.items, addr)
}

// Contains reports whether addr is in the set.
func (s *AddressSet) Contains(addr NetworkAwareAddress) bool {
	_, ok := s.index[addr]
	return ok
}

// Len returns the number of addresses in the set.
func (s *AddressSet) Len() int { return len(s.items) }

// Items returns the addresses in insertion order.
func (s *AddressSet) Items() []NetworkAwareAddress {
	return append([]NetworkAwareAddress(nil), s.items...)
}

// MarshalJSON encodes the set as an array of address strings.
func (s *AddressSet) MarshalJSON() ([]byte, error) {
	items := s.items
	if items == nil {
		items = []NetworkAwareAddress{}
	}
	return json.Marshal(items)
}

// accountOf returns the address held by v when it is an account.
func accountOf(v Value) (NetworkAwareAddress, bool) {
	addr, ok := AddressOf(v)
	if !ok || !addr.EntityType().IsAccount() {
		return NetworkAwareAddress{}, false
	}
	return addr, true
}

// AccountInteractions records which accounts a manifest needs authorization
// from, withdraws from and deposits into.
type AccountInteractions struct {
	BaseInstructionVisitor

	AuthRequired  AddressSet
	WithdrawnFrom AddressSet
	DepositedInto AddressSet
}

// NewAccountInteractions creates an empty AccountInteractions visitor.
func NewAccountInteractions() *AccountInteractions {
	return &AccountInteractions{}
}

// VisitCallMethod classifies a call on an account by its method name.
func (v *AccountInteractions) VisitCallMethod(in *CallMethod) error {
	account, ok := accountOf(in.Address)
	if !ok {
		return nil
	}
	if authRequiredMethods[in.MethodName] {
		v.AuthRequired.Add(account)
	}
	if withdrawMethods[in.MethodName] {
		v.WithdrawnFrom.Add(account)
	}
	if depositMethods[in.MethodName] {
		v.DepositedInto.Add(account)
	}
	return nil
}

// requireAuth records target when it is an account. Module calls and their
// high-level forms always need the owner's authorization.
func (v *AccountInteractions) requireAuth(target Value) error {
	if account, ok := accountOf(target); ok {
		v.AuthRequired.Add(account)
	}
	return nil
}

// VisitCallMetadataMethod and the module visitors below mark the target
// account as requiring auth.
func (v *AccountInteractions) VisitCallMetadataMethod(in *CallMetadataMethod) error {
	return v.requireAuth(in.Address)
}

func (v *AccountInteractions) VisitCallRoyaltyMethod(in *CallRoyaltyMethod) error {
	return v.requireAuth(in.Address)
}

func (v *AccountInteractions) VisitCallAccessRulesMethod(in *CallAccessRulesMethod) error {
	return v.requireAuth(in.Address)
}

func (v *AccountInteractions) VisitSetMetadata(in *SetMetadata) error {
	return v.requireAuth(in.Address)
}

func (v *AccountInteractions) VisitRemoveMetadata(in *RemoveMetadata) error {
	return v.requireAuth(in.Address)
}

func (v *AccountInteractions) VisitSetComponentRoyaltyConfig(in *SetComponentRoyaltyConfig) error {
	return v.requireAuth(in.Address)
}

func (v *AccountInteractions) VisitClaimComponentRoyalty(in *ClaimComponentRoyalty) error {
	return v.requireAuth(in.Address)
}

func (v *AccountInteractions) VisitUpdateRole(in *UpdateRole) error {
	return v.requireAuth(in.Address)
}

// AccountWithdraw is one withdrawal out of an account.
type AccountWithdraw struct {
	Account  NetworkAwareAddress `json:"account"`
	Resource NetworkAwareAddress `json:"resource_address"`
	// Amount is set for fungible withdrawals.
	Amount *Decimal `json:"amount,omitempty"`
	// Ids is set for non-fungible withdrawals.
	Ids []NonFungibleLocalId `json:"ids,omitempty"`
}

// AccountWithdraws records the withdrawals a manifest makes from accounts.
// Calls whose arguments do not have the expected shape are ignored.
type AccountWithdraws struct {
	BaseInstructionVisitor

	Withdraws []AccountWithdraw
}

// NewAccountWithdraws creates an empty AccountWithdraws visitor.
func NewAccountWithdraws() *AccountWithdraws {
	return &AccountWithdraws{}
}

// VisitCallMethod records withdraw and lock_fee_and_withdraw calls on accounts.
func (v *AccountWithdraws) VisitCallMethod(in *CallMethod) error {
	account, ok := accountOf(in.Address)
	if !ok {
		return nil
	}
	args := in.Args
	switch in.MethodName {
	case methodLockFeeAndWithdraw, methodLockFeeAndWithdrawNonFungibles:
		if len(args) != 3 || args[0].Kind() != KindDecimal {
			return nil
		}
		args = args[1:]
	case methodWithdraw, methodWithdrawNonFungibles:
		if len(args) != 2 {
			return nil
		}
	default:
		return nil
	}

	res, ok := args[0].(*ResourceAddressValue)
	if !ok {
		return nil
	}
	w := AccountWithdraw{Account: account, Resource: res.Address}
	switch in.MethodName {
	case methodWithdraw, methodLockFeeAndWithdraw:
		amount, ok := args[1].(*DecimalValue)
		if !ok {
			return nil
		}
		d := amount.Value
		w.Amount = &d
	default:
		ids, ok := localIdsOf(args[1])
		if !ok {
			return nil
		}
		w.Ids = ids
	}
	v.Withdraws = append(v.Withdraws, w)
	return nil
}

// localIdsOf reads an Array<NonFungibleLocalId>.
func localIdsOf(v Value) ([]NonFungibleLocalId, bool) {
	a, ok := v.(*ArrayValue)
	if !ok || a.ElementKind != KindNonFungibleLocalId {
		return nil, false
	}
	ids := make([]NonFungibleLocalId, 0, len(a.Elements))
	for _, el := range a.Elements {
		id, ok := el.(*NonFungibleLocalIdValue)
		if !ok {
			return nil, false
		}
		ids = append(ids, id.Value)
	}
	return ids, true
}
