package txmanifest

import (
	"encoding/json"
	"fmt"
)

// ResourceSpecifier is an amount of a fungible resource or a set of
// non-fungible ids. Both are nil when the quantity is unknown.
type ResourceSpecifier struct {
	Resource NetworkAwareAddress  `json:"resource_address"`
	Amount   *Decimal             `json:"amount,omitempty"`
	Ids      []NonFungibleLocalId `json:"ids,omitempty"`
}

// Exactness says how a ResourceSpecifier was obtained.
type Exactness uint8

const (
	// Guaranteed quantities are stated by the manifest itself.
	Guaranteed Exactness = iota
	// Predicted quantities come from the execution trace.
	Predicted
	// Unknown quantities could not be determined.
	Unknown
)

// String returns the exactness name.
func (e Exactness) String() string {
	switch e {
	case Guaranteed:
		return "Guaranteed"
	case Predicted:
		return "Predicted"
	case Unknown:
		return "Unknown"
	default:
		return fmt.Sprintf("Exactness(%d)", uint8(e))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (e Exactness) MarshalText() ([]byte, error) {
	return []byte(e.String()), nil
}

// ExactnessSpecifier is a ResourceSpecifier tagged with how exact it is.
// InstructionIndex is the trace entry a Predicted quantity came from.
type ExactnessSpecifier struct {
	Exactness        Exactness
	InstructionIndex uint32
	Resources        ResourceSpecifier
}

// MarshalJSON writes the exactness next to the resources it qualifies.
func (s ExactnessSpecifier) MarshalJSON() ([]byte, error) {
	out := struct {
		Type             Exactness         `json:"type"`
		InstructionIndex *uint32           `json:"instruction_index,omitempty"`
		Resources        ResourceSpecifier `json:"resource_specifier"`
	}{Type: s.Exactness, Resources: s.Resources}
	if s.Exactness == Predicted {
		idx := s.InstructionIndex
		out.InstructionIndex = &idx
	}
	return json.Marshal(out)
}

// AccountDeposit is one deposit into an account.
type AccountDeposit struct {
	Account   NetworkAwareAddress `json:"account"`
	Deposited ExactnessSpecifier  `json:"deposited"`
}

// AccountDeposits tracks where every bucket came from and records what ends
// up deposited into accounts. Worktop-wide operations consult the execution
// trace, joined on the instruction index.
type AccountDeposits struct {
	BaseInstructionVisitor

	Deposits []AccountDeposit

	trace   *ExecutionTrace
	buckets map[TransientIdentifier]ExactnessSpecifier
	index   uint32
}

// NewAccountDeposits creates the visitor. trace may be nil.
func NewAccountDeposits(trace *ExecutionTrace) *AccountDeposits {
	return &AccountDeposits{
		trace:   trace,
		buckets: make(map[TransientIdentifier]ExactnessSpecifier),
	}
}

// InstructionIndex returns the index of the instruction being visited.
func (v *AccountDeposits) InstructionIndex() uint32 {
	return v.index
}

// Buckets returns the number of buckets created and not yet consumed.
func (v *AccountDeposits) Buckets() int {
	return len(v.buckets)
}

// PostVisit advances the instruction index.
func (v *AccountDeposits) PostVisit() error {
	v.index++
	return nil
}

func (v *AccountDeposits) addBucket(bucket Value, spec ExactnessSpecifier) error {
	id, _ := IdentifierOf(bucket)
	if _, exists := v.buckets[id]; exists {
		return &BucketError{Bucket: id, Err: ErrDuplicateBucket}
	}
	v.buckets[id] = spec
	return nil
}

func (v *AccountDeposits) bucket(bucket Value) (ExactnessSpecifier, error) {
	id, _ := IdentifierOf(bucket)
	spec, ok := v.buckets[id]
	if !ok {
		return ExactnessSpecifier{}, &BucketError{Bucket: id, Err: ErrUndeclaredBucket}
	}
	return spec, nil
}

func (v *AccountDeposits) consume(bucket Value) error {
	id, _ := IdentifierOf(bucket)
	if _, ok := v.buckets[id]; !ok {
		return &BucketError{Bucket: id, Err: ErrUndeclaredBucket}
	}
	delete(v.buckets, id)
	return nil
}

// consumeAll consumes every bucket found anywhere inside values.
func (v *AccountDeposits) consumeAll(values []Value) error {
	buckets, err := collectBuckets(values)
	if err != nil {
		return err
	}
	for _, b := range buckets {
		if err := v.consume(b); err != nil {
			return err
		}
	}
	return nil
}

// VisitTakeFromWorktop tracks the new bucket as a guaranteed amount.
func (v *AccountDeposits) VisitTakeFromWorktop(in *TakeFromWorktop) error {
	spec := ExactnessSpecifier{Exactness: Guaranteed}
	if res, ok := AddressOf(in.ResourceAddress); ok {
		spec.Resources.Resource = res
		if amount, ok := in.Amount.(*DecimalValue); ok {
			d := amount.Value
			spec.Resources.Amount = &d
		}
	} else {
		spec.Exactness = Unknown
	}
	return v.addBucket(in.NewBucket, spec)
}

// VisitTakeNonFungiblesFromWorktop tracks the new bucket as guaranteed ids.
func (v *AccountDeposits) VisitTakeNonFungiblesFromWorktop(in *TakeNonFungiblesFromWorktop) error {
	spec := ExactnessSpecifier{Exactness: Guaranteed}
	if res, ok := AddressOf(in.ResourceAddress); ok {
		spec.Resources.Resource = res
		if ids, ok := localIdsOf(in.Ids); ok {
			spec.Resources.Ids = ids
		}
	} else {
		spec.Exactness = Unknown
	}
	return v.addBucket(in.NewBucket, spec)
}

// VisitTakeAllFromWorktop predicts the bucket contents from the trace. With
// no trace entry the quantity is Unknown.
func (v *AccountDeposits) VisitTakeAllFromWorktop(in *TakeAllFromWorktop) error {
	spec := ExactnessSpecifier{Exactness: Unknown}
	if res, ok := AddressOf(in.ResourceAddress); ok {
		spec.Resources.Resource = res
		if take, ok := v.trace.worktopTake(v.index); ok {
			spec = ExactnessSpecifier{Exactness: Predicted, InstructionIndex: v.index, Resources: take.Specifier()}
			spec.Resources.Resource = res
		}
	}
	return v.addBucket(in.NewBucket, spec)
}

// VisitReturnToWorktop stops tracking the returned bucket.
func (v *AccountDeposits) VisitReturnToWorktop(in *ReturnToWorktop) error {
	return v.consume(in.Bucket)
}

// VisitBurnResource stops tracking the burnt bucket.
func (v *AccountDeposits) VisitBurnResource(in *BurnResource) error {
	return v.consume(in.Bucket)
}

// VisitCallMethod records account deposits and consumes the buckets passed.
func (v *AccountDeposits) VisitCallMethod(in *CallMethod) error {
	if account, ok := accountOf(in.Address); ok && len(in.Args) > 0 {
		if err := v.recordDeposit(account, in.MethodName, in.Args[0]); err != nil {
			return err
		}
	}
	return v.consumeAll(in.Args)
}

func (v *AccountDeposits) recordDeposit(account NetworkAwareAddress, method string, arg Value) error {
	switch method {
	case methodDeposit, methodTryDepositOrAbort:
		if _, ok := arg.(*BucketValue); !ok {
			return nil
		}
		spec, err := v.bucket(arg)
		if err != nil {
			return err
		}
		v.Deposits = append(v.Deposits, AccountDeposit{Account: account, Deposited: spec})

	case methodDepositBatch, methodTryDepositBatchOrAbort:
		switch x := arg.(type) {
		case *ExpressionValue:
			if x.Value != ExpressionEntireWorktop {
				return nil
			}
			changes, ok := v.trace.resourceChanges(v.index)
			if !ok {
				return &MissingResourceChangesError{InstructionIndex: v.index}
			}
			for _, c := range changes {
				if c.Component != account || c.Amount.Sign() <= 0 {
					continue
				}
				amount := c.Amount
				v.Deposits = append(v.Deposits, AccountDeposit{
					Account: account,
					Deposited: ExactnessSpecifier{
						Exactness:        Predicted,
						InstructionIndex: v.index,
						Resources:        ResourceSpecifier{Resource: c.Resource, Amount: &amount},
					},
				})
			}
		case *ArrayValue:
			if x.ElementKind != KindBucket {
				return nil
			}
			for _, b := range x.Elements {
				spec, err := v.bucket(b)
				if err != nil {
					return err
				}
				v.Deposits = append(v.Deposits, AccountDeposit{Account: account, Deposited: spec})
			}
		}
	}
	return nil
}

// VisitCallFunction consumes the buckets passed to the function.
func (v *AccountDeposits) VisitCallFunction(in *CallFunction) error {
	return v.consumeAll(in.Args)
}

// VisitCallRoyaltyMethod consumes the buckets passed to the method.
func (v *AccountDeposits) VisitCallRoyaltyMethod(in *CallRoyaltyMethod) error {
	return v.consumeAll(in.Args)
}

// VisitCallMetadataMethod consumes the buckets passed to the method.
func (v *AccountDeposits) VisitCallMetadataMethod(in *CallMetadataMethod) error {
	return v.consumeAll(in.Args)
}

// VisitCallAccessRulesMethod consumes the buckets passed to the method.
func (v *AccountDeposits) VisitCallAccessRulesMethod(in *CallAccessRulesMethod) error {
	return v.consumeAll(in.Args)
}

// VisitCallDirectVaultMethod consumes the buckets passed to the method.
func (v *AccountDeposits) VisitCallDirectVaultMethod(in *CallDirectVaultMethod) error {
	return v.consumeAll(in.Args)
}

// VisitCreateAccessController consumes the controlled asset bucket.
func (v *AccountDeposits) VisitCreateAccessController(in *CreateAccessController) error {
	return v.consumeAll(Operands(in))
}

// VisitPublishPackage consumes the buckets in the package arguments.
func (v *AccountDeposits) VisitPublishPackage(in *PublishPackage) error {
	return v.consumeAll(Operands(in))
}

// VisitPublishPackageAdvanced consumes the buckets in the package arguments.
func (v *AccountDeposits) VisitPublishPackageAdvanced(in *PublishPackageAdvanced) error {
	return v.consumeAll(Operands(in))
}

// bucketCollector gathers bucket references.
type bucketCollector struct {
	BaseValueVisitor
	buckets []Value
}

func (c *bucketCollector) VisitBucket(v *Value) error {
	c.buckets = append(c.buckets, *v)
	return nil
}

func collectBuckets(values []Value) ([]Value, error) {
	c := &bucketCollector{}
	for i := range values {
		slot := values[i]
		if err := TraverseValue(&slot, c); err != nil {
			return nil, err
		}
	}
	return c.buckets, nil
}
