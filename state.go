package txmanifest

import (
	"fmt"
	"math"
	"strconv"
)

// IdentifierKind is one of the four transient identifier namespaces.
type IdentifierKind uint8

const (
	IdentifierBucket IdentifierKind = iota
	IdentifierProof
	IdentifierAddressReservation
	IdentifierNamedAddress

	numIdentifierKinds
)

// String returns the namespace name, which is also the default name prefix.
func (k IdentifierKind) String() string {
	switch k {
	case IdentifierBucket:
		return "bucket"
	case IdentifierProof:
		return "proof"
	case IdentifierAddressReservation:
		return "address_reservation"
	case IdentifierNamedAddress:
		return "named_address"
	default:
		return fmt.Sprintf("IdentifierKind(%d)", uint8(k))
	}
}

// ValueKind returns the value kind that refers to identifiers of this namespace.
func (k IdentifierKind) ValueKind() Kind {
	switch k {
	case IdentifierProof:
		return KindProof
	case IdentifierAddressReservation:
		return KindAddressReservation
	case IdentifierNamedAddress:
		return KindNamedAddress
	default:
		return KindBucket
	}
}

// identifierKindOf returns the namespace of a transient identifier value kind.
func identifierKindOf(k Kind) (IdentifierKind, bool) {
	switch k {
	case KindBucket:
		return IdentifierBucket, true
	case KindProof:
		return IdentifierProof, true
	case KindAddressReservation:
		return IdentifierAddressReservation, true
	case KindNamedAddress:
		return IdentifierNamedAddress, true
	default:
		return 0, false
	}
}

// DefaultName returns the name given to an unnamed identifier: the namespace
// followed by the 1-based id, such as "bucket1".
func DefaultName(kind IdentifierKind, id uint32) string {
	return kind.String() + strconv.FormatUint(uint64(id)+1, 10)
}

// IdAllocator hands out sequential ids per namespace. A namespace holds at
// most math.MaxUint32+1 ids.
type IdAllocator struct {
	next [numIdentifierKinds]uint64
}

// Allocate returns the next free id of kind. It fails with
// ErrIdentifierOverflow once every id of the namespace has been handed out.
func (a *IdAllocator) Allocate(kind IdentifierKind) (uint32, error) {
	id := a.next[kind]
	if id > math.MaxUint32 {
		return 0, fmt.Errorf("%w: %s", ErrIdentifierOverflow, kind)
	}
	a.next[kind]++
	return uint32(id), nil
}

// Next returns the id the next Allocate call will return. It is
// math.MaxUint32+1 once the namespace is exhausted.
func (a *IdAllocator) Next(kind IdentifierKind) uint64 {
	return a.next[kind]
}

// reserve makes sure id is never handed out again.
func (a *IdAllocator) reserve(kind IdentifierKind, id uint32) {
	if uint64(id) >= a.next[kind] {
		a.next[kind] = uint64(id) + 1
	}
}

// NameDictionary maps ids to display names and back, per namespace.
type NameDictionary struct {
	names [numIdentifierKinds]map[uint32]string
	ids   [numIdentifierKinds]map[string]uint32
}

// NewNameDictionary creates an empty dictionary.
func NewNameDictionary() *NameDictionary {
	d := &NameDictionary{}
	for k := range d.names {
		d.names[k] = make(map[uint32]string)
		d.ids[k] = make(map[string]uint32)
	}
	return d
}

// Register associates name with id. A name can only be registered once.
func (d *NameDictionary) Register(kind IdentifierKind, id uint32, name string) error {
	if _, exists := d.ids[kind][name]; exists {
		return fmt.Errorf("%w: %s %q", ErrDuplicateName, kind, name)
	}
	d.names[kind][id] = name
	d.ids[kind][name] = id
	return nil
}

// Name returns the name registered for id.
func (d *NameDictionary) Name(kind IdentifierKind, id uint32) (string, bool) {
	name, ok := d.names[kind][id]
	return name, ok
}

// ID returns the id registered for name.
func (d *NameDictionary) ID(kind IdentifierKind, name string) (uint32, bool) {
	id, ok := d.ids[kind][name]
	return id, ok
}

// ConversionContext carries the naming state of a single conversion. It is
// created per call and never shared.
type ConversionContext struct {
	NetworkID uint8
	Names     *NameDictionary
	Ids       *IdAllocator
}

// NewConversionContext creates a fresh context for addresses on networkID.
func NewConversionContext(networkID uint8) *ConversionContext {
	return &ConversionContext{
		NetworkID: networkID,
		Names:     NewNameDictionary(),
		Ids:       &IdAllocator{},
	}
}

// declare registers an identifier produced by an instruction being read from
// text. The result is always numeric.
func (c *ConversionContext) declare(kind IdentifierKind, ident TransientIdentifier) (TransientIdentifier, error) {
	id, err := c.Ids.Allocate(kind)
	if err != nil {
		return TransientIdentifier{}, err
	}
	name := ident.Name
	if !ident.Named {
		name = DefaultName(kind, id)
	}
	if err := c.Names.Register(kind, id, name); err != nil {
		return TransientIdentifier{}, err
	}
	return NumericIdentifier(id), nil
}

// resolve turns a named reference into its numeric id. Numeric references
// are kept as they are.
func (c *ConversionContext) resolve(kind IdentifierKind, ident TransientIdentifier) (TransientIdentifier, error) {
	if !ident.Named {
		return ident, nil
	}
	id, ok := c.Names.ID(kind, ident.Name)
	if !ok {
		return TransientIdentifier{}, &NameNotFoundError{Kind: kind, Name: ident.Name}
	}
	return NumericIdentifier(id), nil
}

// name registers an identifier produced by an instruction being rendered as
// text. The result is always named. A numeric id that already has a name
// keeps it.
func (c *ConversionContext) name(kind IdentifierKind, ident TransientIdentifier) (TransientIdentifier, error) {
	if ident.Named {
		id, err := c.Ids.Allocate(kind)
		if err != nil {
			return TransientIdentifier{}, err
		}
		if err := c.Names.Register(kind, id, ident.Name); err != nil {
			return TransientIdentifier{}, err
		}
		return ident, nil
	}
	c.Ids.reserve(kind, ident.ID)
	if existing, ok := c.Names.Name(kind, ident.ID); ok {
		return NamedIdentifier(existing), nil
	}
	name := DefaultName(kind, ident.ID)
	if err := c.Names.Register(kind, ident.ID, name); err != nil {
		return TransientIdentifier{}, err
	}
	return NamedIdentifier(name), nil
}

// lookup turns a numeric reference into its registered name. Named
// references are kept as they are.
func (c *ConversionContext) lookup(kind IdentifierKind, ident TransientIdentifier) (TransientIdentifier, error) {
	if ident.Named {
		return ident, nil
	}
	name, ok := c.Names.Name(kind, ident.ID)
	if !ok {
		return TransientIdentifier{}, &NoAssociatedNameError{Kind: kind, ID: ident.ID}
	}
	return NamedIdentifier(name), nil
}
