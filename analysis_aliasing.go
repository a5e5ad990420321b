package txmanifest

// ValueAliasing rewrites structural values into the domain kinds they stand
// for: Array<U8> becomes Bytes and Tuple(ResourceAddress, NonFungibleLocalId)
// becomes NonFungibleGlobalId. Collections whose elements are all rewritten
// have their declared kinds updated. Empty collections keep their kinds.
//
// Elements of an Array or Map keep their structural form unless the whole
// collection is rewritten, so the declared element kind always holds.
type ValueAliasing struct {
	BaseValueVisitor

	pinnedArrays map[*ArrayValue]struct{}
	pinnedTuples map[*TupleValue]struct{}
}

// NewValueAliasing creates the aliasing visitor.
func NewValueAliasing() *ValueAliasing {
	return &ValueAliasing{
		pinnedArrays: make(map[*ArrayValue]struct{}),
		pinnedTuples: make(map[*TupleValue]struct{}),
	}
}

// VisitTuple folds a standalone Tuple(ResourceAddress, NonFungibleLocalId).
func (a *ValueAliasing) VisitTuple(v *Value) error {
	t := (*v).(*TupleValue)
	if _, pinned := a.pinnedTuples[t]; pinned {
		return nil
	}
	if id, ok := globalIdOf(t); ok {
		*v = &NonFungibleGlobalIdValue{Value: id}
	}
	return nil
}

// VisitArray folds a standalone Array<U8> and the elements of an Array<Array> or Array<Tuple>.
func (a *ValueAliasing) VisitArray(v *Value) error {
	arr := (*v).(*ArrayValue)
	if arr.ElementKind == KindU8 {
		if _, pinned := a.pinnedArrays[arr]; pinned {
			return nil
		}
		if b, ok := bytesOf(arr); ok {
			*v = Bytes(b)
		}
		return nil
	}
	slots := make([]*Value, len(arr.Elements))
	for i := range arr.Elements {
		slots[i] = &arr.Elements[i]
	}
	a.aliasCollection(&arr.ElementKind, slots)
	return nil
}

// VisitMap folds the keys and the values of a map, each side on its own.
func (a *ValueAliasing) VisitMap(v *Value) error {
	m := (*v).(*MapValue)
	keys := make([]*Value, len(m.Entries))
	values := make([]*Value, len(m.Entries))
	for i := range m.Entries {
		keys[i] = &m.Entries[i].Key
		values[i] = &m.Entries[i].Value
	}
	a.aliasCollection(&m.KeyKind, keys)
	a.aliasCollection(&m.ValueKind, values)
	return nil
}

// aliasCollection rewrites the elements of one homogeneous collection. When
// they cannot all be rewritten, each one is pinned so the traversal leaves it
// in its declared kind.
func (a *ValueAliasing) aliasCollection(kind *Kind, slots []*Value) {
	if aliasSlots(kind, slots) {
		return
	}
	for _, s := range slots {
		switch x := (*s).(type) {
		case *ArrayValue:
			a.pinnedArrays[x] = struct{}{}
		case *TupleValue:
			a.pinnedTuples[x] = struct{}{}
		}
	}
}

// aliasSlots rewrites the elements of a collection declared as *kind when
// every one of them can be rewritten, and updates the declared kind. It
// reports whether the rewrite happened.
func aliasSlots(kind *Kind, slots []*Value) bool {
	if len(slots) == 0 {
		return false
	}
	switch *kind {
	case KindArray:
		converted := make([]Value, len(slots))
		for i, s := range slots {
			a, ok := (*s).(*ArrayValue)
			if !ok || a.ElementKind != KindU8 {
				return false
			}
			b, ok := bytesOf(a)
			if !ok {
				return false
			}
			converted[i] = Bytes(b)
		}
		for i, s := range slots {
			*s = converted[i]
		}
		*kind = KindBytes
		return true
	case KindTuple:
		converted := make([]Value, len(slots))
		for i, s := range slots {
			t, ok := (*s).(*TupleValue)
			if !ok {
				return false
			}
			id, ok := globalIdOf(t)
			if !ok {
				return false
			}
			converted[i] = &NonFungibleGlobalIdValue{Value: id}
		}
		for i, s := range slots {
			*s = converted[i]
		}
		*kind = KindNonFungibleGlobalId
		return true
	}
	return false
}

// isGlobalIdTuple reports whether t is the structural form of a
// NonFungibleGlobalId.
func isGlobalIdTuple(t *TupleValue) bool {
	_, ok := globalIdOf(t)
	return ok
}

func globalIdOf(t *TupleValue) (NonFungibleGlobalId, bool) {
	if len(t.Fields) != 2 {
		return NonFungibleGlobalId{}, false
	}
	res, ok := t.Fields[0].(*ResourceAddressValue)
	if !ok {
		return NonFungibleGlobalId{}, false
	}
	local, ok := t.Fields[1].(*NonFungibleLocalIdValue)
	if !ok {
		return NonFungibleGlobalId{}, false
	}
	id, err := NewNonFungibleGlobalId(res.Address, local.Value)
	if err != nil {
		return NonFungibleGlobalId{}, false
	}
	return id, true
}
