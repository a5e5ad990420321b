package txmanifest

import (
	"encoding/binary"
	"math/big"
)

// Wire format constants.
const (
	// PayloadPrefix is the first byte of every encoded payload.
	PayloadPrefix byte = 0x4d

	// MaxDepth is the maximum nesting depth of an encoded value.
	MaxDepth = 64

	// MaxContainerSize is the maximum length of a string, array, tuple,
	// enum or map.
	MaxContainerSize = 1 << 24

	// maxLengthBytes is the maximum size of a LEB128 length prefix.
	maxLengthBytes = 5
)

// wireKind is the kind byte written before a value body.
type wireKind byte

const (
	wireBool   wireKind = 0x01
	wireI8     wireKind = 0x02
	wireI16    wireKind = 0x03
	wireI32    wireKind = 0x04
	wireI64    wireKind = 0x05
	wireI128   wireKind = 0x06
	wireU8     wireKind = 0x07
	wireU16    wireKind = 0x08
	wireU32    wireKind = 0x09
	wireU64    wireKind = 0x0a
	wireU128   wireKind = 0x0b
	wireString wireKind = 0x0c

	wireArray wireKind = 0x20
	wireTuple wireKind = 0x21
	wireEnum  wireKind = 0x22
	wireMap   wireKind = 0x23

	wirePackageAddress   wireKind = 0x80
	wireComponentAddress wireKind = 0x81
	wireResourceAddress  wireKind = 0x82
	wireSystemAddress    wireKind = 0x83

	wireOwn wireKind = 0x90

	wireBucket             wireKind = 0xa0
	wireProof              wireKind = 0xa1
	wireExpression         wireKind = 0xa2
	wireBlob               wireKind = 0xa3
	wireAddressReservation wireKind = 0xa4
	wireNamedAddress       wireKind = 0xa5

	wireDecimal        wireKind = 0xb0
	wirePreciseDecimal wireKind = 0xb1

	wireNonFungibleLocalId wireKind = 0xc0
)

// wireKinds maps every value kind to its kind byte. Bytes and
// NonFungibleGlobalId share the bytes of their structural forms.
var wireKinds = [numKinds]wireKind{
	KindBool:                wireBool,
	KindI8:                  wireI8,
	KindI16:                 wireI16,
	KindI32:                 wireI32,
	KindI64:                 wireI64,
	KindI128:                wireI128,
	KindU8:                  wireU8,
	KindU16:                 wireU16,
	KindU32:                 wireU32,
	KindU64:                 wireU64,
	KindU128:                wireU128,
	KindString:              wireString,
	KindEnum:                wireEnum,
	KindArray:               wireArray,
	KindTuple:               wireTuple,
	KindMap:                 wireMap,
	KindComponentAddress:    wireComponentAddress,
	KindResourceAddress:     wireResourceAddress,
	KindPackageAddress:      wirePackageAddress,
	KindSystemAddress:       wireSystemAddress,
	KindDecimal:             wireDecimal,
	KindPreciseDecimal:      wirePreciseDecimal,
	KindBucket:              wireBucket,
	KindProof:               wireProof,
	KindAddressReservation:  wireAddressReservation,
	KindNamedAddress:        wireNamedAddress,
	KindOwn:                 wireOwn,
	KindNonFungibleLocalId:  wireNonFungibleLocalId,
	KindNonFungibleGlobalId: wireTuple,
	KindBlob:                wireBlob,
	KindExpression:          wireExpression,
	KindBytes:               wireArray,
}

// kindsByWire is the structural inverse of wireKinds.
var kindsByWire = func() map[wireKind]Kind {
	m := make(map[wireKind]Kind, numKinds)
	for k, w := range wireKinds {
		switch Kind(k) {
		case KindBytes, KindNonFungibleGlobalId:
			continue
		}
		m[w] = Kind(k)
	}
	return m
}()

// Fixed body sizes.
const (
	i128Size           = 16
	u128Size           = 16
	decimalSize        = DecimalBits / 8
	preciseDecimalSize = PreciseDecimalBits / 8
	uuidSize           = 16
)

// valueEncoder appends the wire form of values to a buffer.
type valueEncoder struct {
	buf []byte
}

// EncodeValue encodes v as a prefixed payload.
func EncodeValue(v Value) ([]byte, error) {
	e := &valueEncoder{buf: make([]byte, 0, 64)}
	e.buf = append(e.buf, PayloadPrefix)
	if err := e.encode(v, 0, true); err != nil {
		return nil, err
	}
	return e.buf, nil
}

// encode writes v. The kind byte is omitted for array elements and map
// entries, whose kinds are declared by the collection.
func (e *valueEncoder) encode(v Value, depth int, withKind bool) error {
	if v == nil {
		return ErrNilValue
	}
	if depth > MaxDepth {
		return &EncodeError{Kind: v.Kind(), Err: ErrMaxDepthExceeded}
	}
	if withKind {
		e.buf = append(e.buf, byte(wireKinds[v.Kind()]))
	}

	switch val := v.(type) {
	case *BoolValue:
		if val.Value {
			e.buf = append(e.buf, 1)
		} else {
			e.buf = append(e.buf, 0)
		}
	case *I8Value:
		e.buf = append(e.buf, byte(val.Value))
	case *I16Value:
		e.buf = binary.LittleEndian.AppendUint16(e.buf, uint16(val.Value))
	case *I32Value:
		e.buf = binary.LittleEndian.AppendUint32(e.buf, uint32(val.Value))
	case *I64Value:
		e.buf = binary.LittleEndian.AppendUint64(e.buf, uint64(val.Value))
	case *I128Value:
		n := bigOrZero(val.Value)
		if n.Cmp(i128Min) < 0 || n.Cmp(i128Max) > 0 {
			return &EncodeError{Kind: KindI128, Err: &OutOfRangeError{Kind: KindI128, Value: n.String()}}
		}
		e.buf = appendTwosComplement(e.buf, n, i128Size)
	case *U8Value:
		e.buf = append(e.buf, val.Value)
	case *U16Value:
		e.buf = binary.LittleEndian.AppendUint16(e.buf, val.Value)
	case *U32Value:
		e.buf = binary.LittleEndian.AppendUint32(e.buf, val.Value)
	case *U64Value:
		e.buf = binary.LittleEndian.AppendUint64(e.buf, val.Value)
	case *U128Value:
		if val.Value.BitLen() > 128 {
			return &EncodeError{Kind: KindU128, Err: &OutOfRangeError{Kind: KindU128, Value: val.Value.Dec()}}
		}
		e.buf = binary.LittleEndian.AppendUint64(e.buf, val.Value[0])
		e.buf = binary.LittleEndian.AppendUint64(e.buf, val.Value[1])
	case *StringValue:
		if err := e.appendLength(KindString, len(val.Value)); err != nil {
			return err
		}
		e.buf = append(e.buf, val.Value...)

	case *EnumValue:
		e.buf = append(e.buf, val.Discriminator)
		return e.encodeFields(KindEnum, val.Fields, depth)
	case *TupleValue:
		return e.encodeFields(KindTuple, val.Fields, depth)
	case *ArrayValue:
		if !val.ElementKind.IsValid() {
			return &EncodeError{Kind: KindArray, Err: &UnknownKindError{Name: val.ElementKind.String()}}
		}
		e.buf = append(e.buf, byte(wireKinds[val.ElementKind]))
		if err := e.appendLength(KindArray, len(val.Elements)); err != nil {
			return err
		}
		for _, el := range val.Elements {
			if err := ValidateKind(el, val.ElementKind); err != nil {
				return &EncodeError{Kind: KindArray, Err: err}
			}
			if err := e.encode(el, depth+1, false); err != nil {
				return err
			}
		}
	case *MapValue:
		if !val.KeyKind.IsValid() || !val.ValueKind.IsValid() {
			return &EncodeError{Kind: KindMap, Err: &UnknownKindError{Name: val.KeyKind.String() + "/" + val.ValueKind.String()}}
		}
		e.buf = append(e.buf, byte(wireKinds[val.KeyKind]), byte(wireKinds[val.ValueKind]))
		if err := e.appendLength(KindMap, len(val.Entries)); err != nil {
			return err
		}
		for _, entry := range val.Entries {
			if err := ValidateKind(entry.Key, val.KeyKind); err != nil {
				return &EncodeError{Kind: KindMap, Err: err}
			}
			if err := ValidateKind(entry.Value, val.ValueKind); err != nil {
				return &EncodeError{Kind: KindMap, Err: err}
			}
			if err := e.encode(entry.Key, depth+1, false); err != nil {
				return err
			}
			if err := e.encode(entry.Value, depth+1, false); err != nil {
				return err
			}
		}

	case *ComponentAddressValue:
		e.buf = append(e.buf, val.Address.Raw[:]...)
	case *ResourceAddressValue:
		e.buf = append(e.buf, val.Address.Raw[:]...)
	case *PackageAddressValue:
		e.buf = append(e.buf, val.Address.Raw[:]...)
	case *SystemAddressValue:
		e.buf = append(e.buf, val.Address.Raw[:]...)

	case *DecimalValue:
		e.buf = appendTwosComplement(e.buf, val.Value.Scaled(), decimalSize)
	case *PreciseDecimalValue:
		e.buf = appendTwosComplement(e.buf, val.Value.Scaled(), preciseDecimalSize)

	case *BucketValue:
		return e.appendIdentifier(KindBucket, val.Identifier)
	case *ProofValue:
		return e.appendIdentifier(KindProof, val.Identifier)
	case *AddressReservationValue:
		return e.appendIdentifier(KindAddressReservation, val.Identifier)
	case *NamedAddressValue:
		return e.appendIdentifier(KindNamedAddress, val.Identifier)

	case *OwnValue:
		e.buf = append(e.buf, byte(val.OwnKind))
		e.buf = append(e.buf, val.NodeID[:]...)
	case *ExpressionValue:
		e.buf = append(e.buf, byte(val.Value))
	case *BlobValue:
		e.buf = append(e.buf, val.Hash[:]...)

	case *NonFungibleLocalIdValue:
		return e.appendLocalId(val.Value)
	case *NonFungibleGlobalIdValue:
		// Tuple(ResourceAddress, NonFungibleLocalId)
		if err := e.appendLength(KindTuple, 2); err != nil {
			return err
		}
		e.buf = append(e.buf, byte(wireResourceAddress))
		e.buf = append(e.buf, val.Value.Resource.Raw[:]...)
		e.buf = append(e.buf, byte(wireNonFungibleLocalId))
		return e.appendLocalId(val.Value.LocalID)
	case *BytesValue:
		// Array<U8>
		e.buf = append(e.buf, byte(wireU8))
		if err := e.appendLength(KindBytes, len(val.Value)); err != nil {
			return err
		}
		e.buf = append(e.buf, val.Value...)

	default:
		return &EncodeError{Kind: v.Kind(), Err: ErrUnknownValueKind}
	}
	return nil
}

func (e *valueEncoder) encodeFields(kind Kind, fields []Value, depth int) error {
	if err := e.appendLength(kind, len(fields)); err != nil {
		return err
	}
	for _, f := range fields {
		if err := e.encode(f, depth+1, true); err != nil {
			return err
		}
	}
	return nil
}

// appendLength writes an unsigned LEB128 length.
func (e *valueEncoder) appendLength(kind Kind, n int) error {
	if n > MaxContainerSize {
		return &EncodeError{Kind: kind, Err: ErrContainerTooLarge}
	}
	e.buf = binary.AppendUvarint(e.buf, uint64(n))
	return nil
}

func (e *valueEncoder) appendIdentifier(kind Kind, id TransientIdentifier) error {
	if id.Named {
		return &EncodeError{Kind: kind, Err: ErrUnresolvedIdentifier}
	}
	e.buf = binary.LittleEndian.AppendUint32(e.buf, id.ID)
	return nil
}

func (e *valueEncoder) appendLocalId(id NonFungibleLocalId) error {
	e.buf = append(e.buf, byte(id.idType))
	switch id.idType {
	case LocalIdInteger:
		e.buf = binary.BigEndian.AppendUint64(e.buf, id.integer)
	case LocalIdBytes:
		if err := e.appendLength(KindNonFungibleLocalId, len(id.bytes)); err != nil {
			return err
		}
		e.buf = append(e.buf, id.bytes...)
	case LocalIdUUID:
		e.buf = append(e.buf, id.uuid[:]...)
	default:
		if err := e.appendLength(KindNonFungibleLocalId, len(id.str)); err != nil {
			return err
		}
		e.buf = append(e.buf, id.str...)
	}
	return nil
}

// appendTwosComplement writes v as a size-byte little-endian two's
// complement integer. The caller guarantees that v fits.
func appendTwosComplement(buf []byte, v *big.Int, size int) []byte {
	n := new(big.Int).Set(bigOrZero(v))
	if n.Sign() < 0 {
		n.Add(n, new(big.Int).Lsh(big.NewInt(1), uint(size*8)))
	}
	be := n.FillBytes(make([]byte, size))
	for i := len(be) - 1; i >= 0; i-- {
		buf = append(buf, be[i])
	}
	return buf
}

// readTwosComplement is the inverse of appendTwosComplement.
func readTwosComplement(le []byte) *big.Int {
	be := make([]byte, len(le))
	for i := range le {
		be[len(le)-1-i] = le[i]
	}
	n := new(big.Int).SetBytes(be)
	if len(le) > 0 && le[len(le)-1]&0x80 != 0 {
		n.Sub(n, new(big.Int).Lsh(big.NewInt(1), uint(len(le)*8)))
	}
	return n
}
