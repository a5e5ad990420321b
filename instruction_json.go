package txmanifest

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"maps"
	"slices"

	"github.com/ethereum/go-ethereum/common"
)

// MarshalInstructionJSON encodes in as an object tagged with its textual
// name under "instruction". Fields are keyed by their snake_case names and
// call arguments are listed under "args".
func MarshalInstructionJSON(in Instruction) ([]byte, error) {
	var buf bytes.Buffer
	name, _ := json.Marshal(in.Kind().String())
	buf.WriteString(`{"instruction":`)
	buf.Write(name)

	for _, op := range in.operands() {
		var (
			field []byte
			err   error
		)
		switch op.role {
		case roleValue, roleProduce:
			field, err = MarshalValueJSON(*op.value)
		case roleName:
			field, err = json.Marshal(*op.text)
		case roleArgs:
			var args []*jsonValue
			if args, err = valuesToJSON(*op.args); err == nil {
				field, err = json.Marshal(args)
			}
		}
		if err != nil {
			return nil, fmt.Errorf("txmanifest: %s field %s: %w", in.Kind(), op.name, err)
		}
		key, _ := json.Marshal(op.name)
		buf.WriteByte(',')
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(field)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalInstructionJSON decodes an instruction object. Every field of the
// instruction must be present and unknown fields are rejected.
func UnmarshalInstructionJSON(b []byte) (Instruction, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(b, &fields); err != nil {
		return nil, err
	}
	var name string
	if err := json.Unmarshal(fields["instruction"], &name); err != nil {
		return nil, &UnexpectedContentsError{Parsing: KindString, Expected: "instruction name", Actual: string(fields["instruction"])}
	}
	kind, err := ParseInstructionKind(name)
	if err != nil {
		return nil, err
	}
	delete(fields, "instruction")

	in := instructionInfos[kind].new()
	for i, op := range in.operands() {
		raw, ok := fields[op.name]
		if !ok {
			return nil, &ArgumentError{Instruction: kind, Index: i, Err: fmt.Errorf("%w: %s", ErrMissingArgument, op.name)}
		}
		delete(fields, op.name)
		if err := operandFromJSON(op, raw); err != nil {
			return nil, &ArgumentError{Instruction: kind, Index: i, Err: err}
		}
	}
	if len(fields) > 0 {
		extra := slices.Sorted(maps.Keys(fields))
		return nil, &ArgumentError{Instruction: kind, Index: len(in.operands()), Err: fmt.Errorf("%w: %s", ErrTooManyArguments, extra[0])}
	}
	return in, nil
}

func operandFromJSON(op operand, raw json.RawMessage) error {
	switch op.role {
	case roleName:
		if err := json.Unmarshal(raw, op.text); err != nil {
			return &UnexpectedContentsError{Parsing: KindString, Expected: "string", Actual: string(raw)}
		}
		return nil
	case roleArgs:
		var args []*jsonValue
		if err := json.Unmarshal(raw, &args); err != nil {
			return err
		}
		values, err := valuesFromJSON(args)
		if err != nil {
			return err
		}
		*op.args = values
		return nil
	default:
		v, err := UnmarshalValueJSON(raw)
		if err != nil {
			return err
		}
		if err := op.check(v); err != nil {
			return err
		}
		*op.value = v
		return nil
	}
}

type jsonManifest struct {
	Instructions []json.RawMessage `json:"instructions"`
	Blobs        []string          `json:"blobs"`
}

// MarshalManifestJSON encodes m as {"instructions": [...], "blobs": [hex...]}.
func MarshalManifestJSON(m *Manifest) ([]byte, error) {
	out := jsonManifest{
		Instructions: make([]json.RawMessage, 0, len(m.Instructions)),
		Blobs:        make([]string, 0, len(m.Blobs)),
	}
	for i, in := range m.Instructions {
		b, err := MarshalInstructionJSON(in)
		if err != nil {
			return nil, &InstructionError{Index: i, Instruction: in.Kind(), Err: err}
		}
		out.Instructions = append(out.Instructions, b)
	}
	for _, blob := range m.Blobs {
		out.Blobs = append(out.Blobs, common.Bytes2Hex(blob))
	}
	return json.Marshal(out)
}

// UnmarshalManifestJSON decodes a manifest written by MarshalManifestJSON.
func UnmarshalManifestJSON(b []byte) (*Manifest, error) {
	var in jsonManifest
	if err := json.Unmarshal(b, &in); err != nil {
		return nil, err
	}
	m := &Manifest{Instructions: make([]Instruction, 0, len(in.Instructions))}
	for i, raw := range in.Instructions {
		ins, err := UnmarshalInstructionJSON(raw)
		if err != nil {
			return nil, &InstructionError{Index: i, Instruction: instructionKindOrZero(jsonInstructionName(raw)), Err: err}
		}
		m.Instructions = append(m.Instructions, ins)
	}
	for _, s := range in.Blobs {
		blob, err := hex.DecodeString(s)
		if err != nil {
			return nil, &UnexpectedContentsError{Parsing: KindBytes, Expected: "hex blob", Actual: s}
		}
		m.Blobs = append(m.Blobs, blob)
	}
	return m, nil
}

func jsonInstructionName(raw json.RawMessage) string {
	var head struct {
		Instruction string `json:"instruction"`
	}
	_ = json.Unmarshal(raw, &head)
	return head.Instruction
}
