package txmanifest

import (
	"fmt"
)

// InstructionToValue returns the binary form of a low-level instruction: an
// Enum whose discriminator is the opcode and whose fields are the operands
// the instruction consumes, with call arguments grouped into one Tuple.
// Produced identifiers are implicit and not encoded.
func InstructionToValue(in Instruction) (*EnumValue, error) {
	opcode, ok := in.Kind().Opcode()
	if !ok {
		return nil, &UnknownInstructionError{Name: in.Kind().String()}
	}
	ops := in.operands()
	fields := make([]Value, 0, len(ops))
	for i, op := range ops {
		switch op.role {
		case roleValue:
			if err := op.check(*op.value); err != nil {
				return nil, &ArgumentError{Instruction: in.Kind(), Index: i, Err: err}
			}
			fields = append(fields, *op.value)
		case roleName:
			fields = append(fields, String(*op.text))
		case roleArgs:
			fields = append(fields, Tuple(*op.args...))
		}
	}
	return Enum(opcode, fields...), nil
}

// InstructionFromValue reverses InstructionToValue. Produced identifiers are
// allocated from ids in instruction order.
func InstructionFromValue(v Value, ids *IdAllocator) (Instruction, error) {
	e, ok := v.(*EnumValue)
	if !ok {
		if v == nil {
			return nil, ErrNilValue
		}
		return nil, &InvalidKindError{Expected: KindEnum, Actual: v.Kind()}
	}
	kind, ok := instructionsByOpcode[e.Discriminator]
	if !ok {
		return nil, &UnknownInstructionError{Name: fmt.Sprintf("opcode 0x%02x", e.Discriminator)}
	}
	in := instructionInfos[kind].new()

	fields := e.Fields
	for i, op := range in.operands() {
		if op.role == roleProduce {
			id, err := ids.Allocate(op.produces)
			if err != nil {
				return nil, &ArgumentError{Instruction: kind, Index: i, Err: err}
			}
			*op.value = newIdentifierValue(op.produces.ValueKind(), NumericIdentifier(id))
			continue
		}
		if len(fields) == 0 {
			return nil, &ArgumentError{Instruction: kind, Index: i, Err: ErrMissingArgument}
		}
		f := fields[0]
		fields = fields[1:]

		switch op.role {
		case roleValue:
			if err := op.check(f); err != nil {
				return nil, &ArgumentError{Instruction: kind, Index: i, Err: err}
			}
			*op.value = f
		case roleName:
			s, ok := f.(*StringValue)
			if !ok {
				return nil, &ArgumentError{Instruction: kind, Index: i, Err: &InvalidKindError{Expected: KindString, Actual: f.Kind()}}
			}
			*op.text = s.Value
		case roleArgs:
			t, ok := f.(*TupleValue)
			if !ok {
				return nil, &ArgumentError{Instruction: kind, Index: i, Err: &InvalidKindError{Expected: KindTuple, Actual: f.Kind()}}
			}
			*op.args = t.Fields
		}
	}
	if len(fields) > 0 {
		return nil, &ArgumentError{Instruction: kind, Index: len(e.Fields) - len(fields), Err: ErrTooManyArguments}
	}
	return in, nil
}

// manifestToValue builds the binary manifest body: the instruction list
// followed by the blob list. Every instruction must be low-level.
func manifestToValue(instructions []Instruction, blobs [][]byte) (Value, error) {
	encoded := make([]Value, 0, len(instructions))
	for i, in := range instructions {
		e, err := InstructionToValue(in)
		if err != nil {
			return nil, &InstructionError{Index: i, Instruction: in.Kind(), Err: err}
		}
		encoded = append(encoded, e)
	}
	blobValues := make([]Value, 0, len(blobs))
	for _, b := range blobs {
		blobValues = append(blobValues, Bytes(b))
	}
	return Tuple(
		&ArrayValue{ElementKind: KindEnum, Elements: encoded},
		&ArrayValue{ElementKind: KindBytes, Elements: blobValues},
	), nil
}

// manifestFromValue reverses manifestToValue.
func manifestFromValue(v Value) ([]Instruction, [][]byte, error) {
	t, ok := v.(*TupleValue)
	if !ok || len(t.Fields) != 2 {
		return nil, nil, &UnexpectedContentsError{Parsing: KindTuple, Expected: "Tuple(instructions, blobs)", Actual: describeValue(v)}
	}
	list, ok := t.Fields[0].(*ArrayValue)
	if !ok {
		return nil, nil, &UnexpectedContentsError{Parsing: KindArray, Expected: "instruction array", Actual: describeValue(t.Fields[0])}
	}
	ids := &IdAllocator{}
	instructions := make([]Instruction, 0, len(list.Elements))
	for i, el := range list.Elements {
		in, err := InstructionFromValue(el, ids)
		if err != nil {
			return nil, nil, &InstructionError{Index: i, Instruction: numInstructionKinds, Err: err}
		}
		instructions = append(instructions, in)
	}

	blobList, ok := t.Fields[1].(*ArrayValue)
	if !ok {
		return nil, nil, &UnexpectedContentsError{Parsing: KindArray, Expected: "blob array", Actual: describeValue(t.Fields[1])}
	}
	blobs := make([][]byte, 0, len(blobList.Elements))
	for _, el := range blobList.Elements {
		b, ok := bytesOf(el)
		if !ok {
			return nil, nil, &UnexpectedContentsError{Parsing: KindBytes, Expected: "blob bytes", Actual: describeValue(el)}
		}
		blobs = append(blobs, b)
	}
	return instructions, blobs, nil
}

// bytesOf reads a byte string in either its aliased or structural form.
func bytesOf(v Value) ([]byte, bool) {
	switch x := v.(type) {
	case *BytesValue:
		return x.Value, true
	case *ArrayValue:
		if x.ElementKind != KindU8 {
			return nil, false
		}
		out := make([]byte, 0, len(x.Elements))
		for _, el := range x.Elements {
			u, ok := el.(*U8Value)
			if !ok {
				return nil, false
			}
			out = append(out, u.Value)
		}
		return out, true
	}
	return nil, false
}

func describeValue(v Value) string {
	if v == nil {
		return "nil"
	}
	return v.Kind().String()
}
