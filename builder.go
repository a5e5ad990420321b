package txmanifest

import (
	"github.com/ethereum/go-ethereum/log"
)

// ManifestBuilder builds a manifest one instruction at a time. Instructions
// that create buckets, proofs or addresses return a handle to what they
// created, which later instructions take as input.
//
// Errors from individual calls are held until Build, which reports the first
// one.
type ManifestBuilder struct {
	instructions []Instruction
	blobs        [][]byte
	ids          IdAllocator
	networkID    uint8
	networkFixed bool
	err          error
}

// New creates a new ManifestBuilder with the given options.
func New(opts ...BuilderOption) *ManifestBuilder {
	b := &ManifestBuilder{
		instructions: make([]Instruction, 0, 16),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Add appends in to the manifest and returns the identifiers it produces,
// in field order. Produced identifiers are numbered by the builder; whatever
// in held in those fields is replaced.
func (b *ManifestBuilder) Add(in Instruction) []Value {
	var produced []Value
	for _, op := range in.operands() {
		if op.role != roleProduce {
			continue
		}
		id, err := b.ids.Allocate(op.produces)
		if err != nil {
			b.fail(&BuildError{InstructionIndex: len(b.instructions), Instruction: in.Kind(), Err: err})
		}
		*op.value = newIdentifierValue(op.produces.ValueKind(), NumericIdentifier(id))
		produced = append(produced, *op.value)
	}
	b.instructions = append(b.instructions, in)
	return produced
}

// Call adds a call created with Target.Invoke.
func (b *ManifestBuilder) Call(call *Call) {
	in, err := call.Instruction()
	if err != nil {
		b.fail(&BuildError{InstructionIndex: len(b.instructions), Instruction: call.target.callKind(call.module), Err: err})
		return
	}
	b.Add(in)
}

// AddBlob attaches blob to the manifest and returns a reference to it.
func (b *ManifestBuilder) AddBlob(blob []byte) *BlobValue {
	b.blobs = append(b.blobs, append([]byte(nil), blob...))
	return BlobRef(blob)
}

// TakeFromWorktop takes amount of resource from the worktop into a new bucket.
func (b *ManifestBuilder) TakeFromWorktop(resource NetworkAwareAddress, amount Decimal) *BucketValue {
	return b.Add(&TakeFromWorktop{
		ResourceAddress: b.resource(InstructionTakeFromWorktop, resource),
		Amount:          &DecimalValue{Value: amount},
	})[0].(*BucketValue)
}

// TakeNonFungiblesFromWorktop takes the given non-fungibles from the worktop into a new bucket.
func (b *ManifestBuilder) TakeNonFungiblesFromWorktop(resource NetworkAwareAddress, ids ...NonFungibleLocalId) *BucketValue {
	return b.Add(&TakeNonFungiblesFromWorktop{
		ResourceAddress: b.resource(InstructionTakeNonFungiblesFromWorktop, resource),
		Ids:             localIdArray(ids),
	})[0].(*BucketValue)
}

// TakeAllFromWorktop takes the whole worktop balance of resource into a new bucket.
func (b *ManifestBuilder) TakeAllFromWorktop(resource NetworkAwareAddress) *BucketValue {
	return b.Add(&TakeAllFromWorktop{ResourceAddress: b.resource(InstructionTakeAllFromWorktop, resource)})[0].(*BucketValue)
}

// ReturnToWorktop puts bucket back on the worktop.
func (b *ManifestBuilder) ReturnToWorktop(bucket *BucketValue) {
	b.Add(&ReturnToWorktop{Bucket: CloneValue(bucket)})
}

// AssertWorktopContains fails the transaction unless the worktop holds amount of resource.
func (b *ManifestBuilder) AssertWorktopContains(resource NetworkAwareAddress, amount Decimal) {
	b.Add(&AssertWorktopContains{ResourceAddress: b.resource(InstructionAssertWorktopContains, resource), Amount: &DecimalValue{Value: amount}})
}

// AssertWorktopContainsNonFungibles fails the transaction unless the worktop holds the given non-fungibles.
func (b *ManifestBuilder) AssertWorktopContainsNonFungibles(resource NetworkAwareAddress, ids ...NonFungibleLocalId) {
	b.Add(&AssertWorktopContainsNonFungibles{ResourceAddress: b.resource(InstructionAssertWorktopContainsNonFungibles, resource), Ids: localIdArray(ids)})
}

// PopFromAuthZone pops the last proof off the auth zone.
func (b *ManifestBuilder) PopFromAuthZone() *ProofValue {
	return b.Add(&PopFromAuthZone{})[0].(*ProofValue)
}

// PushToAuthZone pushes proof onto the auth zone.
func (b *ManifestBuilder) PushToAuthZone(proof *ProofValue) {
	b.Add(&PushToAuthZone{Proof: CloneValue(proof)})
}

// ClearAuthZone drops every proof in the auth zone.
func (b *ManifestBuilder) ClearAuthZone() {
	b.Add(&ClearAuthZone{})
}

// ClearSignatureProofs drops the signature proofs of the auth zone.
func (b *ManifestBuilder) ClearSignatureProofs() {
	b.Add(&ClearSignatureProofs{})
}

// CreateProofFromAuthZone creates a proof of resource from the auth zone.
func (b *ManifestBuilder) CreateProofFromAuthZone(resource NetworkAwareAddress) *ProofValue {
	return b.Add(&CreateProofFromAuthZone{ResourceAddress: b.resource(InstructionCreateProofFromAuthZone, resource)})[0].(*ProofValue)
}

// CreateProofFromAuthZoneOfAmount creates a proof of amount of resource from the auth zone.
func (b *ManifestBuilder) CreateProofFromAuthZoneOfAmount(resource NetworkAwareAddress, amount Decimal) *ProofValue {
	return b.Add(&CreateProofFromAuthZoneOfAmount{
		ResourceAddress: b.resource(InstructionCreateProofFromAuthZoneOfAmount, resource),
		Amount:          &DecimalValue{Value: amount},
	})[0].(*ProofValue)
}

// CreateProofFromAuthZoneOfNonFungibles creates a proof of the given non-fungibles from the auth zone.
func (b *ManifestBuilder) CreateProofFromAuthZoneOfNonFungibles(resource NetworkAwareAddress, ids ...NonFungibleLocalId) *ProofValue {
	return b.Add(&CreateProofFromAuthZoneOfNonFungibles{
		ResourceAddress: b.resource(InstructionCreateProofFromAuthZoneOfNonFungibles, resource),
		Ids:             localIdArray(ids),
	})[0].(*ProofValue)
}

// CreateProofFromAuthZoneOfAll creates a proof of all of resource in the auth zone.
func (b *ManifestBuilder) CreateProofFromAuthZoneOfAll(resource NetworkAwareAddress) *ProofValue {
	return b.Add(&CreateProofFromAuthZoneOfAll{ResourceAddress: b.resource(InstructionCreateProofFromAuthZoneOfAll, resource)})[0].(*ProofValue)
}

// CreateProofFromBucket creates a proof of the contents of bucket.
func (b *ManifestBuilder) CreateProofFromBucket(bucket *BucketValue) *ProofValue {
	return b.Add(&CreateProofFromBucket{Bucket: CloneValue(bucket)})[0].(*ProofValue)
}

// CreateProofFromBucketOfAmount creates a proof of amount out of bucket.
func (b *ManifestBuilder) CreateProofFromBucketOfAmount(bucket *BucketValue, amount Decimal) *ProofValue {
	return b.Add(&CreateProofFromBucketOfAmount{
		Bucket: CloneValue(bucket),
		Amount: &DecimalValue{Value: amount},
	})[0].(*ProofValue)
}

// CreateProofFromBucketOfNonFungibles creates a proof of the given non-fungibles in bucket.
func (b *ManifestBuilder) CreateProofFromBucketOfNonFungibles(bucket *BucketValue, ids ...NonFungibleLocalId) *ProofValue {
	return b.Add(&CreateProofFromBucketOfNonFungibles{
		Bucket: CloneValue(bucket),
		Ids:    localIdArray(ids),
	})[0].(*ProofValue)
}

// CreateProofFromBucketOfAll creates a proof of everything in bucket.
func (b *ManifestBuilder) CreateProofFromBucketOfAll(bucket *BucketValue) *ProofValue {
	return b.Add(&CreateProofFromBucketOfAll{Bucket: CloneValue(bucket)})[0].(*ProofValue)
}

// BurnResource destroys the contents of bucket.
func (b *ManifestBuilder) BurnResource(bucket *BucketValue) {
	b.Add(&BurnResource{Bucket: CloneValue(bucket)})
}

// CloneProof returns a copy of proof.
func (b *ManifestBuilder) CloneProof(proof *ProofValue) *ProofValue {
	return b.Add(&CloneProof{Proof: CloneValue(proof)})[0].(*ProofValue)
}

// DropProof drops proof.
func (b *ManifestBuilder) DropProof(proof *ProofValue) {
	b.Add(&DropProof{Proof: CloneValue(proof)})
}

// DropAllProofs drops every proof, including those in the auth zone.
func (b *ManifestBuilder) DropAllProofs() {
	b.Add(&DropAllProofs{})
}

// AllocateGlobalAddress reserves an address for a component of blueprint.
// The reservation is passed to the call that instantiates the component; the
// named address can be called right away.
func (b *ManifestBuilder) AllocateGlobalAddress(pkg NetworkAwareAddress, blueprint string) (*AddressReservationValue, *NamedAddressValue) {
	addr, err := newAddressOfKind(KindPackageAddress, pkg)
	if err != nil {
		b.fail(&BuildError{InstructionIndex: len(b.instructions), Instruction: InstructionAllocateGlobalAddress, Err: err})
		addr = &PackageAddressValue{Address: pkg}
	}
	produced := b.Add(&AllocateGlobalAddress{PackageAddress: addr, BlueprintName: blueprint})
	return produced[0].(*AddressReservationValue), produced[1].(*NamedAddressValue)
}

// Len returns the number of instructions in the builder.
func (b *ManifestBuilder) Len() int {
	return len(b.instructions)
}

// InstructionAt returns the instruction at the given index.
func (b *ManifestBuilder) InstructionAt(i int) Instruction {
	if i < 0 || i >= len(b.instructions) {
		return nil
	}
	return b.instructions[i]
}

// ForEachInstruction iterates over all instructions in the builder.
// The callback receives the index and instruction. Return false to stop iteration.
func (b *ManifestBuilder) ForEachInstruction(fn func(int, Instruction) bool) {
	for i, in := range b.instructions {
		if !fn(i, in) {
			return
		}
	}
}

// Build checks the instructions and returns the manifest. It fails when an
// instruction is malformed, when addresses span networks (or leave the
// network fixed with WithBuilderNetwork), or when a bucket, proof or address
// reservation is used before it is created or after it is consumed.
func (b *ManifestBuilder) Build() (*Manifest, error) {
	if b.err != nil {
		return nil, b.err
	}

	// Phase 1: shape of each instruction
	for i, in := range b.instructions {
		if err := validateInstruction(in); err != nil {
			return nil, &BuildError{InstructionIndex: i, Instruction: in.Kind(), Err: err}
		}
	}

	// Phase 2: one network
	network := NewNetworkAggregator()
	if b.networkFixed {
		network = NewNetworkAggregatorFor(b.networkID)
	}
	if err := TraverseInstructions(b.instructions, []ValueVisitor{network}, nil); err != nil {
		return nil, err
	}

	// Phase 3: visibility
	if err := analyzeVisibility(b.instructions); err != nil {
		return nil, err
	}

	m := &Manifest{
		Instructions: make([]Instruction, len(b.instructions)),
		Blobs:        make([][]byte, len(b.blobs)),
	}
	for i, in := range b.instructions {
		m.Instructions[i] = CloneInstruction(in)
	}
	for i, blob := range b.blobs {
		m.Blobs[i] = append([]byte(nil), blob...)
	}
	log.Debug("Built manifest", "instructions", len(m.Instructions), "blobs", len(m.Blobs))
	return m, nil
}

func (b *ManifestBuilder) fail(err error) {
	if b.err == nil {
		b.err = err
	}
}

func (b *ManifestBuilder) resource(kind InstructionKind, addr NetworkAwareAddress) Value {
	v, err := newAddressOfKind(KindResourceAddress, addr)
	if err != nil {
		b.fail(&BuildError{InstructionIndex: len(b.instructions), Instruction: kind, Err: err})
		return &ResourceAddressValue{Address: addr}
	}
	return v
}

func localIdArray(ids []NonFungibleLocalId) Value {
	elements := make([]Value, len(ids))
	for i, id := range ids {
		elements[i] = LocalId(id)
	}
	return &ArrayValue{ElementKind: KindNonFungibleLocalId, Elements: elements}
}

// visibility tracks which transient identifiers are alive.
type visibility struct {
	alive [numIdentifierKinds]map[uint32]bool
}

func newVisibility() *visibility {
	v := &visibility{}
	for k := range v.alive {
		v.alive[k] = make(map[uint32]bool)
	}
	return v
}

// analyzeVisibility checks that each bucket, proof, address reservation and
// named address is referenced only between the instruction that creates it
// and the instruction that consumes it.
func analyzeVisibility(ins []Instruction) error {
	vis := newVisibility()
	for i, in := range ins {
		refs, err := references(in)
		if err != nil {
			return &BuildError{InstructionIndex: i, Instruction: in.Kind(), Err: err}
		}
		for _, ref := range refs {
			if !vis.alive[ref.kind][ref.id] {
				return &BuildError{InstructionIndex: i, Instruction: in.Kind(), Err: &VisibilityError{Kind: ref.kind, ID: ref.id}}
			}
		}
		vis.consume(in, refs)
		for _, op := range in.operands() {
			if op.role != roleProduce {
				continue
			}
			ident, _ := IdentifierOf(*op.value)
			vis.alive[op.produces][ident.ID] = true
		}
	}
	return nil
}

// consume retires the identifiers in takes over.
func (v *visibility) consume(in Instruction, refs []identifierRef) {
	switch in.Kind() {
	case InstructionReturnToWorktop, InstructionBurnResource, InstructionPushToAuthZone, InstructionDropProof:
		for _, ref := range refs {
			delete(v.alive[ref.kind], ref.id)
		}
	case InstructionDropAllProofs:
		clear(v.alive[IdentifierProof])
	default:
		if !isCall(in.Kind()) {
			return
		}
		for _, ref := range refs {
			if ref.kind != IdentifierNamedAddress {
				delete(v.alive[ref.kind], ref.id)
			}
		}
	}
}

// isCall reports whether k invokes a method or function, which takes
// ownership of the buckets, proofs and reservations passed to it.
func isCall(k InstructionKind) bool {
	switch k {
	case InstructionCallFunction, InstructionCallMethod, InstructionCallRoyaltyMethod,
		InstructionCallMetadataMethod, InstructionCallAccessRulesMethod, InstructionCallDirectVaultMethod:
		return true
	}
	return k.IsAliased()
}

type identifierRef struct {
	kind IdentifierKind
	id   uint32
}

// identifierCollector gathers every transient identifier reference.
type identifierCollector struct {
	BaseValueVisitor
	refs []identifierRef
}

func (c *identifierCollector) collect(v *Value) error {
	ident, _ := IdentifierOf(*v)
	if ident.Named {
		return &NameNotFoundError{Kind: mustIdentifierKind((*v).Kind()), Name: ident.Name}
	}
	c.refs = append(c.refs, identifierRef{kind: mustIdentifierKind((*v).Kind()), id: ident.ID})
	return nil
}

func (c *identifierCollector) VisitBucket(v *Value) error             { return c.collect(v) }
func (c *identifierCollector) VisitProof(v *Value) error              { return c.collect(v) }
func (c *identifierCollector) VisitAddressReservation(v *Value) error { return c.collect(v) }
func (c *identifierCollector) VisitNamedAddress(v *Value) error       { return c.collect(v) }

func mustIdentifierKind(k Kind) IdentifierKind {
	ik, _ := identifierKindOf(k)
	return ik
}

// references returns the identifiers in reads, skipping the ones it
// produces.
func references(in Instruction) ([]identifierRef, error) {
	c := &identifierCollector{}
	for _, op := range in.operands() {
		switch op.role {
		case roleValue:
			slot := *op.value
			if err := TraverseValue(&slot, c); err != nil {
				return nil, err
			}
		case roleArgs:
			for _, arg := range *op.args {
				slot := arg
				if err := TraverseValue(&slot, c); err != nil {
					return nil, err
				}
			}
		}
	}
	return c.refs, nil
}
