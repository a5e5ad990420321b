package txmanifest

import (
	"github.com/branched-services/go-txmanifest/ast"
)

// InstructionFromAST converts a parsed instruction. Identifiers the
// instruction produces are declared in ctx, and references are resolved
// against what earlier instructions declared.
func InstructionFromAST(ai *ast.Instruction, ctx *ConversionContext) (Instruction, error) {
	kind, err := ParseInstructionKind(ai.Name)
	if err != nil {
		return nil, err
	}
	in := instructionInfos[kind].new()
	ops := in.operands()

	args := ai.Args
	for i, op := range ops {
		if op.role == roleArgs {
			values, err := valuesFromAST(args, ctx)
			if err != nil {
				return nil, &ArgumentError{Instruction: kind, Index: i, Err: err}
			}
			*op.args = values
			args = nil
			continue
		}
		if len(args) == 0 {
			return nil, &ArgumentError{Instruction: kind, Index: i, Err: ErrMissingArgument}
		}
		arg := args[0]
		args = args[1:]
		if err := operandFromAST(op, arg, ctx); err != nil {
			return nil, &ArgumentError{Instruction: kind, Index: i, Err: err}
		}
	}
	if len(args) > 0 {
		return nil, &ArgumentError{Instruction: kind, Index: len(ops), Err: ErrTooManyArguments}
	}
	return in, nil
}

func operandFromAST(op operand, arg ast.Value, ctx *ConversionContext) error {
	switch op.role {
	case roleName:
		s, ok := arg.(*ast.String)
		if !ok {
			return &UnexpectedContentsError{Parsing: KindString, Expected: "string", Actual: ast.FormatValue(arg)}
		}
		*op.text = s.Value
		return nil

	case roleProduce:
		kind := op.produces.ValueKind()
		call, ok := arg.(*ast.Call)
		if !ok || call.Name != kind.String() || len(call.Args) != 1 {
			return &UnexpectedContentsError{Parsing: kind, Expected: kind.String() + "(name)", Actual: ast.FormatValue(arg)}
		}
		ident, err := identifierFromAST(kind, call.Args[0])
		if err != nil {
			return err
		}
		declared, err := ctx.declare(op.produces, ident)
		if err != nil {
			return err
		}
		*op.value = newIdentifierValue(kind, declared)
		return nil
	}

	v, err := ValueFromAST(arg, ctx)
	if err != nil {
		return err
	}
	if err := op.check(v); err != nil {
		return err
	}
	*op.value = v
	return nil
}

// InstructionToAST renders an instruction as a parse tree. Identifiers the
// instruction produces are named in ctx, so later references print with the
// same names.
func InstructionToAST(in Instruction, ctx *ConversionContext) (ast.Instruction, error) {
	out := ast.Instruction{Name: in.Kind().String(), Args: []ast.Value{}}
	for i, op := range in.operands() {
		switch op.role {
		case roleName:
			out.Args = append(out.Args, &ast.String{Value: *op.text})

		case roleArgs:
			values, err := valuesToAST(*op.args, ctx)
			if err != nil {
				return ast.Instruction{}, &ArgumentError{Instruction: in.Kind(), Index: i, Err: err}
			}
			out.Args = append(out.Args, values...)

		case roleProduce:
			if err := op.check(*op.value); err != nil {
				return ast.Instruction{}, &ArgumentError{Instruction: in.Kind(), Index: i, Err: err}
			}
			ident, _ := IdentifierOf(*op.value)
			named, err := ctx.name(op.produces, ident)
			if err != nil {
				return ast.Instruction{}, &ArgumentError{Instruction: in.Kind(), Index: i, Err: err}
			}
			out.Args = append(out.Args, stringCall(op.produces.ValueKind(), named.Name))

		default:
			av, err := ValueToAST(*op.value, ctx)
			if err != nil {
				return ast.Instruction{}, &ArgumentError{Instruction: in.Kind(), Index: i, Err: err}
			}
			out.Args = append(out.Args, av)
		}
	}
	return out, nil
}

// instructionsFromAST converts every instruction of a parsed manifest with a
// single shared context.
func instructionsFromAST(m *ast.Manifest, ctx *ConversionContext) ([]Instruction, error) {
	out := make([]Instruction, 0, len(m.Instructions))
	for i := range m.Instructions {
		in, err := InstructionFromAST(&m.Instructions[i], ctx)
		if err != nil {
			return nil, &InstructionError{Index: i, Instruction: instructionKindOrZero(m.Instructions[i].Name), Err: err}
		}
		out = append(out, in)
	}
	return out, nil
}

func instructionsToAST(instructions []Instruction, ctx *ConversionContext) (*ast.Manifest, error) {
	m := &ast.Manifest{Instructions: make([]ast.Instruction, 0, len(instructions))}
	for i, in := range instructions {
		ai, err := InstructionToAST(in, ctx)
		if err != nil {
			return nil, &InstructionError{Index: i, Instruction: in.Kind(), Err: err}
		}
		m.Instructions = append(m.Instructions, ai)
	}
	return m, nil
}

func instructionKindOrZero(name string) InstructionKind {
	k, err := ParseInstructionKind(name)
	if err != nil {
		return numInstructionKinds
	}
	return k
}
