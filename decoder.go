package txmanifest

import (
	"encoding/binary"
	"io"
	"strconv"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/holiman/uint256"
)

// valueDecoder reads values from a payload. Addresses are bound to networkID.
type valueDecoder struct {
	buf       []byte
	pos       int
	networkID uint8
	maxDepth  int
}

// DecodeValue decodes a prefixed payload produced by EncodeValue. Unless
// WithoutValueAliasing is given, structural Array<U8> and
// Tuple(ResourceAddress, NonFungibleLocalId) values are folded into Bytes and
// NonFungibleGlobalId.
func DecodeValue(b []byte, networkID uint8, opts ...DecodeOption) (Value, error) {
	cfg := defaultDecodeConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	v, err := decodeStructural(b, networkID, cfg.maxDepth)
	if err != nil {
		return nil, err
	}
	if cfg.valueAliasing {
		if err := TraverseValue(&v, NewValueAliasing()); err != nil {
			return nil, err
		}
	}
	return v, nil
}

// MustDecodeValue is like DecodeValue but panics on error.
func MustDecodeValue(b []byte, networkID uint8, opts ...DecodeOption) Value {
	v, err := DecodeValue(b, networkID, opts...)
	if err != nil {
		panic(err)
	}
	return v
}

// decodeStructural decodes a payload without value aliasing.
func decodeStructural(b []byte, networkID uint8, maxDepth int) (Value, error) {
	if len(b) == 0 || b[0] != PayloadPrefix {
		return nil, &DecodeError{Offset: 0, Err: ErrInvalidPayloadPrefix}
	}
	d := &valueDecoder{buf: b, pos: 1, networkID: networkID, maxDepth: maxDepth}
	v, err := d.decodeValue(0)
	if err != nil {
		return nil, err
	}
	if d.pos != len(d.buf) {
		return nil, &DecodeError{Offset: d.pos, Err: ErrTrailingBytes}
	}
	return v, nil
}

func (d *valueDecoder) fail(offset int, err error) error {
	return &DecodeError{Offset: offset, Err: err}
}

func (d *valueDecoder) readByte() (byte, error) {
	if d.pos >= len(d.buf) {
		return 0, d.fail(d.pos, io.ErrUnexpectedEOF)
	}
	b := d.buf[d.pos]
	d.pos++
	return b, nil
}

func (d *valueDecoder) readN(n int) ([]byte, error) {
	if n < 0 || len(d.buf)-d.pos < n {
		return nil, d.fail(d.pos, io.ErrUnexpectedEOF)
	}
	b := d.buf[d.pos : d.pos+n]
	d.pos += n
	return b, nil
}

// readLength reads an unsigned LEB128 length of at most five bytes.
func (d *valueDecoder) readLength() (int, error) {
	start := d.pos
	end := min(len(d.buf), d.pos+maxLengthBytes)
	n, size := binary.Uvarint(d.buf[d.pos:end])
	switch {
	case size == 0 && end-start == maxLengthBytes:
		return 0, d.fail(start, ErrContainerTooLarge)
	case size == 0:
		return 0, d.fail(start, io.ErrUnexpectedEOF)
	case size < 0:
		return 0, d.fail(start, ErrContainerTooLarge)
	case n > MaxContainerSize:
		return 0, d.fail(start, ErrContainerTooLarge)
	}
	d.pos += size
	return int(n), nil
}

func (d *valueDecoder) readKind() (Kind, error) {
	start := d.pos
	b, err := d.readByte()
	if err != nil {
		return 0, err
	}
	kind, ok := kindsByWire[wireKind(b)]
	if !ok {
		return 0, d.fail(start, ErrUnknownValueKind)
	}
	return kind, nil
}

func (d *valueDecoder) decodeValue(depth int) (Value, error) {
	kind, err := d.readKind()
	if err != nil {
		return nil, err
	}
	return d.decodeBody(kind, depth)
}

func (d *valueDecoder) decodeBody(kind Kind, depth int) (Value, error) {
	start := d.pos
	if depth > d.maxDepth {
		return nil, d.fail(start, ErrMaxDepthExceeded)
	}

	switch kind {
	case KindBool:
		b, err := d.readByte()
		if err != nil {
			return nil, err
		}
		if b > 1 {
			return nil, d.fail(start, &UnexpectedContentsError{Parsing: KindBool, Expected: "0 or 1", Actual: strconv.Itoa(int(b))})
		}
		return Bool(b == 1), nil
	case KindI8:
		b, err := d.readByte()
		if err != nil {
			return nil, err
		}
		return I8(int8(b)), nil
	case KindI16:
		b, err := d.readN(2)
		if err != nil {
			return nil, err
		}
		return I16(int16(binary.LittleEndian.Uint16(b))), nil
	case KindI32:
		b, err := d.readN(4)
		if err != nil {
			return nil, err
		}
		return I32(int32(binary.LittleEndian.Uint32(b))), nil
	case KindI64:
		b, err := d.readN(8)
		if err != nil {
			return nil, err
		}
		return I64(int64(binary.LittleEndian.Uint64(b))), nil
	case KindI128:
		b, err := d.readN(i128Size)
		if err != nil {
			return nil, err
		}
		return &I128Value{Value: readTwosComplement(b)}, nil
	case KindU8:
		b, err := d.readByte()
		if err != nil {
			return nil, err
		}
		return U8(b), nil
	case KindU16:
		b, err := d.readN(2)
		if err != nil {
			return nil, err
		}
		return U16(binary.LittleEndian.Uint16(b)), nil
	case KindU32:
		b, err := d.readN(4)
		if err != nil {
			return nil, err
		}
		return U32(binary.LittleEndian.Uint32(b)), nil
	case KindU64:
		b, err := d.readN(8)
		if err != nil {
			return nil, err
		}
		return U64(binary.LittleEndian.Uint64(b)), nil
	case KindU128:
		b, err := d.readN(u128Size)
		if err != nil {
			return nil, err
		}
		return &U128Value{Value: uint256.Int{binary.LittleEndian.Uint64(b[:8]), binary.LittleEndian.Uint64(b[8:]), 0, 0}}, nil
	case KindString:
		n, err := d.readLength()
		if err != nil {
			return nil, err
		}
		b, err := d.readN(n)
		if err != nil {
			return nil, err
		}
		if !utf8.Valid(b) {
			return nil, d.fail(start, ErrInvalidUTF8)
		}
		return String(string(b)), nil

	case KindEnum:
		disc, err := d.readByte()
		if err != nil {
			return nil, err
		}
		fields, err := d.decodeFields(depth)
		if err != nil {
			return nil, err
		}
		return &EnumValue{Discriminator: disc, Fields: fields}, nil
	case KindTuple:
		fields, err := d.decodeFields(depth)
		if err != nil {
			return nil, err
		}
		return &TupleValue{Fields: fields}, nil
	case KindArray:
		elemKind, err := d.readKind()
		if err != nil {
			return nil, err
		}
		n, err := d.readLength()
		if err != nil {
			return nil, err
		}
		elements := make([]Value, 0, min(n, len(d.buf)-d.pos))
		for i := 0; i < n; i++ {
			el, err := d.decodeBody(elemKind, depth+1)
			if err != nil {
				return nil, err
			}
			elements = append(elements, el)
		}
		return &ArrayValue{ElementKind: elemKind, Elements: elements}, nil
	case KindMap:
		keyKind, err := d.readKind()
		if err != nil {
			return nil, err
		}
		valueKind, err := d.readKind()
		if err != nil {
			return nil, err
		}
		n, err := d.readLength()
		if err != nil {
			return nil, err
		}
		entries := make([]MapEntry, 0, min(n, len(d.buf)-d.pos))
		for i := 0; i < n; i++ {
			k, err := d.decodeBody(keyKind, depth+1)
			if err != nil {
				return nil, err
			}
			v, err := d.decodeBody(valueKind, depth+1)
			if err != nil {
				return nil, err
			}
			entries = append(entries, MapEntry{Key: k, Value: v})
		}
		return &MapValue{KeyKind: keyKind, ValueKind: valueKind, Entries: entries}, nil

	case KindComponentAddress, KindResourceAddress, KindPackageAddress, KindSystemAddress:
		b, err := d.readN(AddressLength)
		if err != nil {
			return nil, err
		}
		addr := NetworkAwareAddress{NetworkID: d.networkID}
		copy(addr.Raw[:], b)
		v, err := newAddressOfKind(kind, addr)
		if err != nil {
			return nil, d.fail(start, err)
		}
		return v, nil

	case KindDecimal:
		b, err := d.readN(decimalSize)
		if err != nil {
			return nil, err
		}
		return &DecimalValue{Value: Decimal{scaled: readTwosComplement(b)}}, nil
	case KindPreciseDecimal:
		b, err := d.readN(preciseDecimalSize)
		if err != nil {
			return nil, err
		}
		return &PreciseDecimalValue{Value: PreciseDecimal{scaled: readTwosComplement(b)}}, nil

	case KindBucket, KindProof, KindAddressReservation, KindNamedAddress:
		b, err := d.readN(4)
		if err != nil {
			return nil, err
		}
		return newIdentifierValue(kind, NumericIdentifier(binary.LittleEndian.Uint32(b))), nil

	case KindOwn:
		sub, err := d.readByte()
		if err != nil {
			return nil, err
		}
		if OwnKind(sub) > OwnKeyValueStore {
			return nil, d.fail(start, &UnexpectedContentsError{Parsing: KindOwn, Expected: "own kind", Actual: OwnKind(sub).String()})
		}
		b, err := d.readN(NodeIDLength)
		if err != nil {
			return nil, err
		}
		v := &OwnValue{OwnKind: OwnKind(sub)}
		copy(v.NodeID[:], b)
		return v, nil
	case KindExpression:
		b, err := d.readByte()
		if err != nil {
			return nil, err
		}
		if Expression(b) > ExpressionEntireAuthZone {
			return nil, d.fail(start, ErrInvalidExpression)
		}
		return &ExpressionValue{Value: Expression(b)}, nil
	case KindBlob:
		b, err := d.readN(32)
		if err != nil {
			return nil, err
		}
		v := &BlobValue{}
		copy(v.Hash[:], b)
		return v, nil

	case KindNonFungibleLocalId:
		id, err := d.decodeLocalId()
		if err != nil {
			return nil, err
		}
		return LocalId(id), nil
	}
	return nil, d.fail(start, ErrUnknownValueKind)
}

func (d *valueDecoder) decodeFields(depth int) ([]Value, error) {
	n, err := d.readLength()
	if err != nil {
		return nil, err
	}
	fields := make([]Value, 0, min(n, len(d.buf)-d.pos))
	for i := 0; i < n; i++ {
		f, err := d.decodeValue(depth + 1)
		if err != nil {
			return nil, err
		}
		fields = append(fields, f)
	}
	return fields, nil
}

func (d *valueDecoder) decodeLocalId() (NonFungibleLocalId, error) {
	start := d.pos
	t, err := d.readByte()
	if err != nil {
		return NonFungibleLocalId{}, err
	}

	var id NonFungibleLocalId
	switch NonFungibleLocalIdType(t) {
	case LocalIdString:
		n, err := d.readLength()
		if err != nil {
			return id, err
		}
		b, err := d.readN(n)
		if err != nil {
			return id, err
		}
		id, err = StringLocalId(string(b))
		if err != nil {
			return id, d.fail(start, err)
		}
	case LocalIdInteger:
		b, err := d.readN(8)
		if err != nil {
			return id, err
		}
		id = IntegerLocalId(binary.BigEndian.Uint64(b))
	case LocalIdBytes:
		n, err := d.readLength()
		if err != nil {
			return id, err
		}
		b, err := d.readN(n)
		if err != nil {
			return id, err
		}
		id, err = BytesLocalId(b)
		if err != nil {
			return id, d.fail(start, err)
		}
	case LocalIdUUID:
		b, err := d.readN(uuidSize)
		if err != nil {
			return id, err
		}
		u, err := uuid.FromBytes(b)
		if err != nil {
			return id, d.fail(start, err)
		}
		id, err = UUIDLocalId(u)
		if err != nil {
			return id, d.fail(start, err)
		}
	default:
		return id, d.fail(start, &LocalIdError{Input: NonFungibleLocalIdType(t).String(), Err: ErrLocalIdFormat})
	}
	return id, nil
}

// newIdentifierValue wraps id in the transient identifier kind.
func newIdentifierValue(kind Kind, id TransientIdentifier) Value {
	switch kind {
	case KindBucket:
		return &BucketValue{Identifier: id}
	case KindProof:
		return &ProofValue{Identifier: id}
	case KindAddressReservation:
		return &AddressReservationValue{Identifier: id}
	default:
		return &NamedAddressValue{Identifier: id}
	}
}
