package txmanifest

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/common"

	"github.com/branched-services/go-txmanifest/ast"
)

// integerKinds maps integer literal suffixes to their kinds.
var integerKinds = map[string]Kind{
	"i8": KindI8, "i16": KindI16, "i32": KindI32, "i64": KindI64, "i128": KindI128,
	"u8": KindU8, "u16": KindU16, "u32": KindU32, "u64": KindU64, "u128": KindU128,
}

var integerSuffixes = func() map[Kind]string {
	m := make(map[Kind]string, len(integerKinds))
	for suffix, k := range integerKinds {
		m[k] = suffix
	}
	return m
}()

// ValueFromAST converts a parsed argument into a Value. Named transient
// identifiers are resolved to their ids through ctx.
func ValueFromAST(av ast.Value, ctx *ConversionContext) (Value, error) {
	switch val := av.(type) {
	case *ast.Bool:
		return Bool(val.Value), nil
	case *ast.Integer:
		return integerFromAST(val)
	case *ast.String:
		return String(val.Value), nil
	case *ast.Map:
		return mapFromAST(val, ctx)
	case *ast.Call:
		return callFromAST(val, ctx)
	case nil:
		return nil, ErrNilValue
	}
	return nil, &UnexpectedContentsError{Parsing: KindTuple, Expected: "value", Actual: fmt.Sprintf("%T", av)}
}

func integerFromAST(val *ast.Integer) (Value, error) {
	kind, ok := integerKinds[val.Type]
	if !ok {
		return nil, &UnknownKindError{Name: val.Type}
	}
	return integerFromString(kind, val.Text)
}

func integerWidth(k Kind) int {
	switch k {
	case KindI8, KindU8:
		return 8
	case KindI16, KindU16:
		return 16
	case KindI32, KindU32:
		return 32
	default:
		return 64
	}
}

func mapFromAST(val *ast.Map, ctx *ConversionContext) (Value, error) {
	keyKind, err := ParseKind(val.KeyType)
	if err != nil {
		return nil, err
	}
	valueKind, err := ParseKind(val.ValueType)
	if err != nil {
		return nil, err
	}
	entries := make([]MapEntry, 0, len(val.Entries))
	for _, e := range val.Entries {
		k, err := ValueFromAST(e.Key, ctx)
		if err != nil {
			return nil, err
		}
		v, err := ValueFromAST(e.Value, ctx)
		if err != nil {
			return nil, err
		}
		entries = append(entries, MapEntry{Key: k, Value: v})
	}
	return asValue(NewMap(keyKind, valueKind, entries...))
}

func valuesFromAST(args []ast.Value, ctx *ConversionContext) ([]Value, error) {
	out := make([]Value, 0, len(args))
	for _, a := range args {
		v, err := ValueFromAST(a, ctx)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func callFromAST(call *ast.Call, ctx *ConversionContext) (Value, error) {
	switch call.Name {
	case "Tuple":
		fields, err := valuesFromAST(call.Args, ctx)
		if err != nil {
			return nil, err
		}
		return Tuple(fields...), nil

	case "Enum":
		if len(call.TypeArgs) != 1 {
			return nil, &UnexpectedContentsError{Parsing: KindEnum, Expected: "one discriminator", Actual: strings.Join(call.TypeArgs, ", ")}
		}
		disc, err := strconv.ParseUint(strings.TrimSuffix(call.TypeArgs[0], "u8"), 10, 8)
		if err != nil || !strings.HasSuffix(call.TypeArgs[0], "u8") {
			return nil, &UnexpectedContentsError{Parsing: KindEnum, Expected: "u8 discriminator", Actual: call.TypeArgs[0]}
		}
		fields, err := valuesFromAST(call.Args, ctx)
		if err != nil {
			return nil, err
		}
		return Enum(uint8(disc), fields...), nil

	case "Array":
		if len(call.TypeArgs) != 1 {
			return nil, &UnexpectedContentsError{Parsing: KindArray, Expected: "one element kind", Actual: strings.Join(call.TypeArgs, ", ")}
		}
		elemKind, err := ParseKind(call.TypeArgs[0])
		if err != nil {
			return nil, err
		}
		elements, err := valuesFromAST(call.Args, ctx)
		if err != nil {
			return nil, err
		}
		return asValue(NewArray(elemKind, elements...))
	}

	kind, err := ParseKind(call.Name)
	if err != nil {
		return nil, err
	}
	if len(call.Args) != 1 {
		return nil, &UnexpectedContentsError{Parsing: kind, Expected: "one argument", Actual: strconv.Itoa(len(call.Args))}
	}
	arg := call.Args[0]

	if idKind, ok := identifierKindOf(kind); ok {
		ident, err := identifierFromAST(kind, arg)
		if err != nil {
			return nil, err
		}
		resolved, err := ctx.resolve(idKind, ident)
		if err != nil {
			return nil, err
		}
		return newIdentifierValue(kind, resolved), nil
	}

	s, ok := arg.(*ast.String)
	if !ok {
		return nil, &UnexpectedContentsError{Parsing: kind, Expected: "string", Actual: ast.FormatValue(arg)}
	}
	switch kind {
	case KindComponentAddress, KindResourceAddress, KindPackageAddress, KindSystemAddress:
		addr, err := ctx.decodeAddress(s.Value)
		if err != nil {
			return nil, err
		}
		return newAddressOfKind(kind, addr)
	case KindDecimal:
		return asValue(NewDecimalValue(s.Value))
	case KindPreciseDecimal:
		d, err := ParsePreciseDecimal(s.Value)
		if err != nil {
			return nil, err
		}
		return &PreciseDecimalValue{Value: d}, nil
	case KindOwn:
		if len(call.TypeArgs) != 1 {
			return nil, &UnexpectedContentsError{Parsing: KindOwn, Expected: "one own kind", Actual: strings.Join(call.TypeArgs, ", ")}
		}
		ownKind, err := ParseOwnKind(call.TypeArgs[0])
		if err != nil {
			return nil, err
		}
		return asValue(NewOwn(ownKind, s.Value))
	case KindNonFungibleLocalId:
		id, err := ParseNonFungibleLocalId(s.Value)
		if err != nil {
			return nil, err
		}
		return LocalId(id), nil
	case KindNonFungibleGlobalId:
		g, err := ParseNonFungibleGlobalId(s.Value)
		if err != nil {
			return nil, err
		}
		if err := ctx.checkNetwork(g.Resource); err != nil {
			return nil, err
		}
		return &NonFungibleGlobalIdValue{Value: g}, nil
	case KindBlob:
		b, err := hex.DecodeString(s.Value)
		if err != nil || len(b) != common.HashLength {
			return nil, &UnexpectedContentsError{Parsing: KindBlob, Expected: "32-byte hex hash", Actual: s.Value}
		}
		return &BlobValue{Hash: common.BytesToHash(b)}, nil
	case KindExpression:
		e, err := ParseExpression(s.Value)
		if err != nil {
			return nil, err
		}
		return &ExpressionValue{Value: e}, nil
	case KindBytes:
		b, err := hex.DecodeString(s.Value)
		if err != nil {
			return nil, &UnexpectedContentsError{Parsing: KindBytes, Expected: "hex", Actual: s.Value}
		}
		return &BytesValue{Value: b}, nil
	}
	return nil, &UnexpectedContentsError{Parsing: kind, Expected: "value constructor", Actual: call.Name}
}

// identifierFromAST reads the argument of Bucket(...), Proof(...) and the
// like: a name string or a u32 id.
func identifierFromAST(kind Kind, arg ast.Value) (TransientIdentifier, error) {
	switch a := arg.(type) {
	case *ast.String:
		return NamedIdentifier(a.Value), nil
	case *ast.Integer:
		if a.Type == "u32" {
			n, err := strconv.ParseUint(a.Text, 10, 32)
			if err == nil {
				return NumericIdentifier(uint32(n)), nil
			}
		}
	}
	return TransientIdentifier{}, &UnexpectedContentsError{Parsing: kind, Expected: "name or u32 id", Actual: ast.FormatValue(arg)}
}

// decodeAddress decodes an address and checks it belongs to the context network.
func (c *ConversionContext) decodeAddress(s string) (NetworkAwareAddress, error) {
	addr, err := DecodeAddress(s)
	if err != nil {
		return addr, err
	}
	return addr, c.checkNetwork(addr)
}

func (c *ConversionContext) checkNetwork(addr NetworkAwareAddress) error {
	if addr.NetworkID != c.NetworkID {
		return &NetworkMismatchError{Expected: c.NetworkID, Found: addr.NetworkID}
	}
	return nil
}

// ValueToAST converts a Value into its parse tree form. Numeric transient
// identifiers are replaced by their names registered in ctx.
func ValueToAST(v Value, ctx *ConversionContext) (ast.Value, error) {
	switch val := v.(type) {
	case nil:
		return nil, ErrNilValue
	case *BoolValue:
		return &ast.Bool{Value: val.Value}, nil
	case *I8Value:
		return integerToAST(KindI8, strconv.FormatInt(int64(val.Value), 10)), nil
	case *I16Value:
		return integerToAST(KindI16, strconv.FormatInt(int64(val.Value), 10)), nil
	case *I32Value:
		return integerToAST(KindI32, strconv.FormatInt(int64(val.Value), 10)), nil
	case *I64Value:
		return integerToAST(KindI64, strconv.FormatInt(val.Value, 10)), nil
	case *I128Value:
		return integerToAST(KindI128, bigOrZero(val.Value).String()), nil
	case *U8Value:
		return integerToAST(KindU8, strconv.FormatUint(uint64(val.Value), 10)), nil
	case *U16Value:
		return integerToAST(KindU16, strconv.FormatUint(uint64(val.Value), 10)), nil
	case *U32Value:
		return integerToAST(KindU32, strconv.FormatUint(uint64(val.Value), 10)), nil
	case *U64Value:
		return integerToAST(KindU64, strconv.FormatUint(val.Value, 10)), nil
	case *U128Value:
		return integerToAST(KindU128, val.Value.Dec()), nil
	case *StringValue:
		return &ast.String{Value: val.Value}, nil

	case *EnumValue:
		fields, err := valuesToAST(val.Fields, ctx)
		if err != nil {
			return nil, err
		}
		return &ast.Call{Name: "Enum", TypeArgs: []string{strconv.Itoa(int(val.Discriminator)) + "u8"}, Args: fields}, nil
	case *TupleValue:
		fields, err := valuesToAST(val.Fields, ctx)
		if err != nil {
			return nil, err
		}
		return &ast.Call{Name: "Tuple", Args: fields}, nil
	case *ArrayValue:
		elements, err := valuesToAST(val.Elements, ctx)
		if err != nil {
			return nil, err
		}
		return &ast.Call{Name: "Array", TypeArgs: []string{val.ElementKind.String()}, Args: elements}, nil
	case *MapValue:
		m := &ast.Map{KeyType: val.KeyKind.String(), ValueType: val.ValueKind.String(), Entries: make([]ast.Entry, 0, len(val.Entries))}
		for _, e := range val.Entries {
			k, err := ValueToAST(e.Key, ctx)
			if err != nil {
				return nil, err
			}
			v, err := ValueToAST(e.Value, ctx)
			if err != nil {
				return nil, err
			}
			m.Entries = append(m.Entries, ast.Entry{Key: k, Value: v})
		}
		return m, nil

	case *ComponentAddressValue, *ResourceAddressValue, *PackageAddressValue, *SystemAddressValue:
		addr, _ := AddressOf(v)
		s, err := EncodeAddress(addr.Raw, addr.NetworkID)
		if err != nil {
			return nil, err
		}
		return stringCall(v.Kind(), s), nil
	case *DecimalValue:
		return stringCall(KindDecimal, val.Value.String()), nil
	case *PreciseDecimalValue:
		return stringCall(KindPreciseDecimal, val.Value.String()), nil

	case *BucketValue, *ProofValue, *AddressReservationValue, *NamedAddressValue:
		ident, _ := IdentifierOf(v)
		idKind, _ := identifierKindOf(v.Kind())
		named, err := ctx.lookup(idKind, ident)
		if err != nil {
			return nil, err
		}
		return stringCall(v.Kind(), named.Name), nil

	case *OwnValue:
		return &ast.Call{Name: KindOwn.String(), TypeArgs: []string{val.OwnKind.String()}, Args: []ast.Value{&ast.String{Value: common.Bytes2Hex(val.NodeID[:])}}}, nil
	case *NonFungibleLocalIdValue:
		return stringCall(KindNonFungibleLocalId, val.Value.String()), nil
	case *NonFungibleGlobalIdValue:
		if _, err := EncodeAddress(val.Value.Resource.Raw, val.Value.Resource.NetworkID); err != nil {
			return nil, err
		}
		return stringCall(KindNonFungibleGlobalId, val.Value.String()), nil
	case *BlobValue:
		return stringCall(KindBlob, common.Bytes2Hex(val.Hash[:])), nil
	case *ExpressionValue:
		return stringCall(KindExpression, val.Value.String()), nil
	case *BytesValue:
		return stringCall(KindBytes, common.Bytes2Hex(val.Value)), nil
	}
	return nil, &UnknownKindError{Name: v.Kind().String()}
}

func valuesToAST(values []Value, ctx *ConversionContext) ([]ast.Value, error) {
	out := make([]ast.Value, 0, len(values))
	for _, v := range values {
		av, err := ValueToAST(v, ctx)
		if err != nil {
			return nil, err
		}
		out = append(out, av)
	}
	return out, nil
}

func integerToAST(kind Kind, text string) *ast.Integer {
	return &ast.Integer{Text: text, Type: integerSuffixes[kind]}
}

func stringCall(kind Kind, s string) *ast.Call {
	return &ast.Call{Name: kind.String(), Args: []ast.Value{&ast.String{Value: s}}}
}

// asValue drops the typed pointer of a constructor result so that a failed
// constructor yields a nil Value.
func asValue[T Value](v T, err error) (Value, error) {
	if err != nil {
		return nil, err
	}
	return v, nil
}
