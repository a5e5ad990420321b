package txmanifest

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"math/big"
	"strconv"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
)

// jsonValue is the JSON shape of a typed value. Which fields are set depends
// on Type.
type jsonValue struct {
	Type               Kind            `json:"type"`
	Value              json.RawMessage `json:"value,omitempty"`
	Discriminator      string          `json:"discriminator,omitempty"`
	ElementKind        *Kind           `json:"element_kind,omitempty"`
	KeyValueKind       *Kind           `json:"key_value_kind,omitempty"`
	ValueValueKind     *Kind           `json:"value_value_kind,omitempty"`
	Elements           []*jsonValue    `json:"elements,omitempty"`
	Fields             []*jsonValue    `json:"fields,omitempty"`
	Entries            []jsonEntry     `json:"entries,omitempty"`
	Address            string          `json:"address,omitempty"`
	Identifier         *jsonIdentifier `json:"identifier,omitempty"`
	Kind               string          `json:"kind,omitempty"`
	ResourceAddress    string          `json:"resource_address,omitempty"`
	NonFungibleLocalId string          `json:"non_fungible_local_id,omitempty"`
	Hash               string          `json:"hash,omitempty"`
}

type jsonEntry struct {
	Key   *jsonValue `json:"key"`
	Value *jsonValue `json:"value"`
}

type jsonIdentifier struct {
	Kind  string `json:"kind"`
	Value string `json:"value"`
}

// MarshalValueJSON encodes v as typed-value JSON.
func MarshalValueJSON(v Value) ([]byte, error) {
	jv, err := valueToJSON(v)
	if err != nil {
		return nil, err
	}
	return json.Marshal(jv)
}

// UnmarshalValueJSON decodes typed-value JSON. Addresses carry their own
// network in their bech32 prefix.
func UnmarshalValueJSON(b []byte) (Value, error) {
	var jv jsonValue
	if err := json.Unmarshal(b, &jv); err != nil {
		return nil, err
	}
	return valueFromJSON(&jv)
}

func quoted(s string) json.RawMessage {
	b, _ := json.Marshal(s)
	return b
}

func valueToJSON(v Value) (*jsonValue, error) {
	if v == nil {
		return nil, ErrNilValue
	}
	jv := &jsonValue{Type: v.Kind()}
	switch x := v.(type) {
	case *BoolValue:
		jv.Value = json.RawMessage(strconv.FormatBool(x.Value))
	case *I8Value:
		jv.Value = quoted(strconv.FormatInt(int64(x.Value), 10))
	case *I16Value:
		jv.Value = quoted(strconv.FormatInt(int64(x.Value), 10))
	case *I32Value:
		jv.Value = quoted(strconv.FormatInt(int64(x.Value), 10))
	case *I64Value:
		jv.Value = quoted(strconv.FormatInt(x.Value, 10))
	case *I128Value:
		jv.Value = quoted(bigOrZero(x.Value).String())
	case *U8Value:
		jv.Value = quoted(strconv.FormatUint(uint64(x.Value), 10))
	case *U16Value:
		jv.Value = quoted(strconv.FormatUint(uint64(x.Value), 10))
	case *U32Value:
		jv.Value = quoted(strconv.FormatUint(uint64(x.Value), 10))
	case *U64Value:
		jv.Value = quoted(strconv.FormatUint(x.Value, 10))
	case *U128Value:
		jv.Value = quoted(x.Value.Dec())
	case *StringValue:
		jv.Value = quoted(x.Value)
	case *EnumValue:
		jv.Discriminator = strconv.FormatUint(uint64(x.Discriminator), 10)
		fields, err := valuesToJSON(x.Fields)
		if err != nil {
			return nil, err
		}
		jv.Fields = fields
	case *ArrayValue:
		kind := x.ElementKind
		jv.ElementKind = &kind
		elements, err := valuesToJSON(x.Elements)
		if err != nil {
			return nil, err
		}
		jv.Elements = elements
	case *TupleValue:
		fields, err := valuesToJSON(x.Fields)
		if err != nil {
			return nil, err
		}
		jv.Fields = fields
	case *MapValue:
		keyKind, valueKind := x.KeyKind, x.ValueKind
		jv.KeyValueKind = &keyKind
		jv.ValueValueKind = &valueKind
		for _, e := range x.Entries {
			k, err := valueToJSON(e.Key)
			if err != nil {
				return nil, err
			}
			val, err := valueToJSON(e.Value)
			if err != nil {
				return nil, err
			}
			jv.Entries = append(jv.Entries, jsonEntry{Key: k, Value: val})
		}
	case *ComponentAddressValue, *ResourceAddressValue, *PackageAddressValue, *SystemAddressValue:
		addr, _ := AddressOf(v)
		s, err := EncodeAddress(addr.Raw, addr.NetworkID)
		if err != nil {
			return nil, err
		}
		jv.Address = s
	case *DecimalValue:
		jv.Value = quoted(x.Value.String())
	case *PreciseDecimalValue:
		jv.Value = quoted(x.Value.String())
	case *BucketValue, *ProofValue, *AddressReservationValue, *NamedAddressValue:
		id, _ := IdentifierOf(v)
		jv.Identifier = identifierToJSON(id)
	case *OwnValue:
		jv.Kind = x.OwnKind.String()
		jv.Value = quoted(common.Bytes2Hex(x.NodeID[:]))
	case *NonFungibleLocalIdValue:
		jv.Value = quoted(x.Value.String())
	case *NonFungibleGlobalIdValue:
		s, err := EncodeAddress(x.Value.Resource.Raw, x.Value.Resource.NetworkID)
		if err != nil {
			return nil, err
		}
		jv.ResourceAddress = s
		jv.NonFungibleLocalId = x.Value.LocalID.String()
	case *BlobValue:
		jv.Hash = common.Bytes2Hex(x.Hash[:])
	case *ExpressionValue:
		jv.Value = quoted(x.Value.String())
	case *BytesValue:
		jv.Value = quoted(common.Bytes2Hex(x.Value))
	default:
		return nil, fmt.Errorf("txmanifest: cannot encode %T as JSON", v)
	}
	return jv, nil
}

func valuesToJSON(values []Value) ([]*jsonValue, error) {
	out := make([]*jsonValue, 0, len(values))
	for _, v := range values {
		jv, err := valueToJSON(v)
		if err != nil {
			return nil, err
		}
		out = append(out, jv)
	}
	return out, nil
}

func identifierToJSON(id TransientIdentifier) *jsonIdentifier {
	if id.Named {
		return &jsonIdentifier{Kind: "String", Value: id.Name}
	}
	return &jsonIdentifier{Kind: "Integer", Value: strconv.FormatUint(uint64(id.ID), 10)}
}

func identifierFromJSON(parsing Kind, ji *jsonIdentifier) (TransientIdentifier, error) {
	if ji == nil {
		return TransientIdentifier{}, &UnexpectedContentsError{Parsing: parsing, Expected: "identifier", Actual: "nothing"}
	}
	switch ji.Kind {
	case "String":
		return NamedIdentifier(ji.Value), nil
	case "Integer":
		id, err := strconv.ParseUint(ji.Value, 10, 32)
		if err != nil {
			return TransientIdentifier{}, &UnexpectedContentsError{Parsing: parsing, Expected: "u32 identifier", Actual: ji.Value}
		}
		return NumericIdentifier(uint32(id)), nil
	}
	return TransientIdentifier{}, &UnexpectedContentsError{Parsing: parsing, Expected: "Integer or String identifier", Actual: ji.Kind}
}

// jsonString reads the string held in the value field.
func (jv *jsonValue) jsonString() (string, error) {
	var s string
	if err := json.Unmarshal(jv.Value, &s); err != nil {
		return "", &UnexpectedContentsError{Parsing: jv.Type, Expected: "string value", Actual: string(jv.Value)}
	}
	return s, nil
}

func valueFromJSON(jv *jsonValue) (Value, error) {
	if jv == nil {
		return nil, ErrNilValue
	}
	switch jv.Type {
	case KindBool:
		var b bool
		if err := json.Unmarshal(jv.Value, &b); err != nil {
			return nil, &UnexpectedContentsError{Parsing: KindBool, Expected: "true or false", Actual: string(jv.Value)}
		}
		return Bool(b), nil
	case KindI8, KindI16, KindI32, KindI64, KindI128, KindU8, KindU16, KindU32, KindU64, KindU128:
		s, err := jv.jsonString()
		if err != nil {
			return nil, err
		}
		return integerFromString(jv.Type, s)
	case KindString:
		s, err := jv.jsonString()
		if err != nil {
			return nil, err
		}
		return String(s), nil
	case KindEnum:
		d, err := strconv.ParseUint(jv.Discriminator, 10, 8)
		if err != nil {
			return nil, &UnexpectedContentsError{Parsing: KindEnum, Expected: "u8 discriminator", Actual: jv.Discriminator}
		}
		fields, err := valuesFromJSON(jv.Fields)
		if err != nil {
			return nil, err
		}
		return Enum(uint8(d), fields...), nil
	case KindArray:
		if jv.ElementKind == nil {
			return nil, &UnexpectedContentsError{Parsing: KindArray, Expected: "element_kind", Actual: "nothing"}
		}
		elements, err := valuesFromJSON(jv.Elements)
		if err != nil {
			return nil, err
		}
		return asValue(NewArray(*jv.ElementKind, elements...))
	case KindTuple:
		fields, err := valuesFromJSON(jv.Fields)
		if err != nil {
			return nil, err
		}
		return Tuple(fields...), nil
	case KindMap:
		if jv.KeyValueKind == nil || jv.ValueValueKind == nil {
			return nil, &UnexpectedContentsError{Parsing: KindMap, Expected: "key_value_kind and value_value_kind", Actual: "nothing"}
		}
		entries := make([]MapEntry, 0, len(jv.Entries))
		for _, e := range jv.Entries {
			k, err := valueFromJSON(e.Key)
			if err != nil {
				return nil, err
			}
			v, err := valueFromJSON(e.Value)
			if err != nil {
				return nil, err
			}
			entries = append(entries, MapEntry{Key: k, Value: v})
		}
		return asValue(NewMap(*jv.KeyValueKind, *jv.ValueValueKind, entries...))
	case KindComponentAddress, KindResourceAddress, KindPackageAddress, KindSystemAddress:
		addr, err := DecodeAddress(jv.Address)
		if err != nil {
			return nil, err
		}
		return newAddressOfKind(jv.Type, addr)
	case KindDecimal:
		s, err := jv.jsonString()
		if err != nil {
			return nil, err
		}
		return asValue(NewDecimalValue(s))
	case KindPreciseDecimal:
		s, err := jv.jsonString()
		if err != nil {
			return nil, err
		}
		d, err := ParsePreciseDecimal(s)
		if err != nil {
			return nil, err
		}
		return &PreciseDecimalValue{Value: d}, nil
	case KindBucket, KindProof, KindAddressReservation, KindNamedAddress:
		id, err := identifierFromJSON(jv.Type, jv.Identifier)
		if err != nil {
			return nil, err
		}
		return newIdentifierValue(jv.Type, id), nil
	case KindOwn:
		kind, err := ParseOwnKind(jv.Kind)
		if err != nil {
			return nil, err
		}
		s, err := jv.jsonString()
		if err != nil {
			return nil, err
		}
		return asValue(NewOwn(kind, s))
	case KindNonFungibleLocalId:
		s, err := jv.jsonString()
		if err != nil {
			return nil, err
		}
		id, err := ParseNonFungibleLocalId(s)
		if err != nil {
			return nil, err
		}
		return LocalId(id), nil
	case KindNonFungibleGlobalId:
		addr, err := DecodeAddress(jv.ResourceAddress)
		if err != nil {
			return nil, err
		}
		local, err := ParseNonFungibleLocalId(jv.NonFungibleLocalId)
		if err != nil {
			return nil, err
		}
		g, err := NewNonFungibleGlobalId(addr, local)
		if err != nil {
			return nil, err
		}
		return &NonFungibleGlobalIdValue{Value: g}, nil
	case KindBlob:
		b, err := hex.DecodeString(jv.Hash)
		if err != nil || len(b) != common.HashLength {
			return nil, &UnexpectedContentsError{Parsing: KindBlob, Expected: "32-byte hex hash", Actual: jv.Hash}
		}
		return &BlobValue{Hash: common.BytesToHash(b)}, nil
	case KindExpression:
		s, err := jv.jsonString()
		if err != nil {
			return nil, err
		}
		e, err := ParseExpression(s)
		if err != nil {
			return nil, err
		}
		return &ExpressionValue{Value: e}, nil
	case KindBytes:
		s, err := jv.jsonString()
		if err != nil {
			return nil, err
		}
		b, err := hex.DecodeString(s)
		if err != nil {
			return nil, &UnexpectedContentsError{Parsing: KindBytes, Expected: "hex", Actual: s}
		}
		return &BytesValue{Value: b}, nil
	}
	return nil, &UnknownKindError{Name: jv.Type.String()}
}

func valuesFromJSON(values []*jsonValue) ([]Value, error) {
	out := make([]Value, 0, len(values))
	for _, jv := range values {
		v, err := valueFromJSON(jv)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// integerFromString parses the decimal text of an integer of kind k,
// rejecting values outside its range.
func integerFromString(k Kind, s string) (Value, error) {
	outOfRange := &OutOfRangeError{Kind: k, Value: s}
	switch k {
	case KindI8, KindI16, KindI32, KindI64:
		n, err := strconv.ParseInt(s, 10, integerWidth(k))
		if err != nil {
			return nil, outOfRange
		}
		switch k {
		case KindI8:
			return I8(int8(n)), nil
		case KindI16:
			return I16(int16(n)), nil
		case KindI32:
			return I32(int32(n)), nil
		default:
			return I64(n), nil
		}
	case KindU8, KindU16, KindU32, KindU64:
		n, err := strconv.ParseUint(s, 10, integerWidth(k))
		if err != nil {
			return nil, outOfRange
		}
		switch k {
		case KindU8:
			return U8(uint8(n)), nil
		case KindU16:
			return U16(uint16(n)), nil
		case KindU32:
			return U32(uint32(n)), nil
		default:
			return U64(n), nil
		}
	case KindI128:
		n, ok := new(big.Int).SetString(s, 10)
		if !ok {
			return nil, outOfRange
		}
		v, err := NewI128(n)
		if err != nil {
			return nil, outOfRange
		}
		return v, nil
	case KindU128:
		n, err := uint256.FromDecimal(s)
		if err != nil {
			return nil, outOfRange
		}
		v, err := NewU128(n)
		if err != nil {
			return nil, outOfRange
		}
		return v, nil
	}
	return nil, &InvalidKindError{Expected: KindU64, Actual: k}
}
