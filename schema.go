package txmanifest

import (
	"fmt"
	"strconv"
)

// SchemaForm identifies the shape a Schema describes.
type SchemaForm uint8

const (
	// SchemaAny accepts every value.
	SchemaAny SchemaForm = iota
	// SchemaKind accepts values of a single kind.
	SchemaKind
	// SchemaTuple accepts tuples whose fields match field by field.
	SchemaTuple
	// SchemaEnum accepts enums whose discriminator and fields match a variant.
	SchemaEnum
	// SchemaArray accepts arrays whose elements all match, optionally of a fixed length.
	SchemaArray
	// SchemaMap accepts maps whose keys and values all match.
	SchemaMap
	// SchemaOption accepts Enum<0>() or Enum<1>(x) where x matches.
	SchemaOption
)

// Schema is a structural description of a value, used to check decoded
// arguments before they are accepted as the input of a high-level instruction.
type Schema struct {
	Form     SchemaForm
	Kind     Kind
	Fields   []*Schema
	Variants map[uint8][]*Schema
	Element  *Schema
	Length   int // -1 for any length
	Key      *Schema
	Value    *Schema
}

// AnySchema accepts every value.
func AnySchema() *Schema { return &Schema{Form: SchemaAny} }

// KindSchema accepts values of kind k. Bytes and NonFungibleGlobalId also
// accept their structural forms.
func KindSchema(k Kind) *Schema { return &Schema{Form: SchemaKind, Kind: k} }

// TupleSchema accepts tuples with exactly the given fields.
func TupleSchema(fields ...*Schema) *Schema {
	return &Schema{Form: SchemaTuple, Fields: fields}
}

// EnumSchema accepts enums whose discriminator is a key of variants.
func EnumSchema(variants map[uint8][]*Schema) *Schema {
	return &Schema{Form: SchemaEnum, Variants: variants}
}

// ArraySchema accepts arrays of any length whose elements match element.
func ArraySchema(element *Schema) *Schema {
	return &Schema{Form: SchemaArray, Element: element, Length: -1}
}

// FixedArraySchema accepts arrays of exactly n elements matching element.
func FixedArraySchema(element *Schema, n int) *Schema {
	return &Schema{Form: SchemaArray, Element: element, Length: n}
}

// MapSchema accepts maps whose keys and values match.
func MapSchema(key, value *Schema) *Schema {
	return &Schema{Form: SchemaMap, Key: key, Value: value}
}

// OptionSchema accepts the Option encoding of inner.
func OptionSchema(inner *Schema) *Schema {
	return &Schema{Form: SchemaOption, Element: inner}
}

// ValidatePayload decodes b in its structural form and checks it against s.
// A payload that decodes but does not match s is rejected.
func ValidatePayload(b []byte, networkID uint8, s *Schema) error {
	v, err := decodeStructural(b, networkID, MaxDepth)
	if err != nil {
		return err
	}
	return s.Validate(v)
}

// Validate checks v against the schema.
func (s *Schema) Validate(v Value) error {
	return s.validate(v, "$")
}

func (s *Schema) validate(v Value, path string) error {
	if v == nil {
		return &SchemaValidationError{Path: path, Reason: "missing value"}
	}

	switch s.Form {
	case SchemaAny:
		return nil

	case SchemaKind:
		return validateKindSchema(s.Kind, v, path)

	case SchemaTuple:
		t, ok := v.(*TupleValue)
		if !ok {
			return mismatch(path, "Tuple", v)
		}
		if len(t.Fields) != len(s.Fields) {
			return &SchemaValidationError{Path: path, Reason: fmt.Sprintf("expected %d fields, found %d", len(s.Fields), len(t.Fields))}
		}
		for i, f := range s.Fields {
			if err := f.validate(t.Fields[i], childPath(path, i)); err != nil {
				return err
			}
		}
		return nil

	case SchemaEnum:
		e, ok := v.(*EnumValue)
		if !ok {
			return mismatch(path, "Enum", v)
		}
		fields, ok := s.Variants[e.Discriminator]
		if !ok {
			return &SchemaValidationError{Path: path, Reason: fmt.Sprintf("unexpected discriminator %d", e.Discriminator)}
		}
		if len(e.Fields) != len(fields) {
			return &SchemaValidationError{Path: path, Reason: fmt.Sprintf("variant %d expects %d fields, found %d", e.Discriminator, len(fields), len(e.Fields))}
		}
		for i, f := range fields {
			if err := f.validate(e.Fields[i], childPath(path, i)); err != nil {
				return err
			}
		}
		return nil

	case SchemaOption:
		e, ok := v.(*EnumValue)
		if !ok {
			return mismatch(path, "Option", v)
		}
		switch {
		case e.Discriminator == 0 && len(e.Fields) == 0:
			return nil
		case e.Discriminator == 1 && len(e.Fields) == 1:
			return s.Element.validate(e.Fields[0], childPath(path, 0))
		default:
			return &SchemaValidationError{Path: path, Reason: "not a valid Option"}
		}

	case SchemaArray:
		if b, ok := v.(*BytesValue); ok && s.Element.accepts(KindU8) {
			return s.checkLength(path, len(b.Value))
		}
		a, ok := v.(*ArrayValue)
		if !ok {
			return mismatch(path, "Array", v)
		}
		if !s.Element.accepts(a.ElementKind) {
			return &SchemaValidationError{Path: path, Reason: "unexpected element kind " + a.ElementKind.String()}
		}
		if err := s.checkLength(path, len(a.Elements)); err != nil {
			return err
		}
		for i, el := range a.Elements {
			if err := s.Element.validate(el, childPath(path, i)); err != nil {
				return err
			}
		}
		return nil

	case SchemaMap:
		m, ok := v.(*MapValue)
		if !ok {
			return mismatch(path, "Map", v)
		}
		if !s.Key.accepts(m.KeyKind) || !s.Value.accepts(m.ValueKind) {
			return &SchemaValidationError{Path: path, Reason: "unexpected entry kinds " + m.KeyKind.String() + " => " + m.ValueKind.String()}
		}
		for i, entry := range m.Entries {
			p := childPath(path, i)
			if err := s.Key.validate(entry.Key, p+".key"); err != nil {
				return err
			}
			if err := s.Value.validate(entry.Value, p+".value"); err != nil {
				return err
			}
		}
		return nil
	}
	return &SchemaValidationError{Path: path, Reason: fmt.Sprintf("unknown schema form %d", s.Form)}
}

func (s *Schema) checkLength(path string, n int) error {
	if s.Length >= 0 && n != s.Length {
		return &SchemaValidationError{Path: path, Reason: fmt.Sprintf("expected %d elements, found %d", s.Length, n)}
	}
	return nil
}

// accepts reports whether a collection declaring kind k can hold values
// matching s. Kinds are compared by their wire kind so structural and aliased
// forms are interchangeable.
func (s *Schema) accepts(k Kind) bool {
	if !k.IsValid() {
		return false
	}
	var want wireKind
	switch s.Form {
	case SchemaAny:
		return true
	case SchemaKind:
		want = wireKinds[s.Kind]
	case SchemaTuple:
		want = wireTuple
	case SchemaEnum, SchemaOption:
		want = wireEnum
	case SchemaArray:
		want = wireArray
	case SchemaMap:
		want = wireMap
	}
	return wireKinds[k] == want
}

func validateKindSchema(expected Kind, v Value, path string) error {
	switch expected {
	case KindBytes:
		switch x := v.(type) {
		case *BytesValue:
			return nil
		case *ArrayValue:
			if x.ElementKind == KindU8 {
				return nil
			}
		}
		return mismatch(path, "Bytes", v)
	case KindNonFungibleGlobalId:
		switch x := v.(type) {
		case *NonFungibleGlobalIdValue:
			return nil
		case *TupleValue:
			if isGlobalIdTuple(x) {
				return nil
			}
		}
		return mismatch(path, "NonFungibleGlobalId", v)
	}
	if v.Kind() != expected {
		return mismatch(path, expected.String(), v)
	}
	return nil
}

func mismatch(path, expected string, v Value) error {
	return &SchemaValidationError{Path: path, Reason: "expected " + expected + ", found " + v.Kind().String()}
}

func childPath(path string, i int) string {
	return path + "[" + strconv.Itoa(i) + "]"
}
