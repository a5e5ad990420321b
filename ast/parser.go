package ast

import (
	"github.com/pkg/errors"
)

type parser struct {
	lex *lexer
	tok token
}

func newParser(src string) (*parser, error) {
	p := &parser{lex: newLexer(src)}
	if err := p.advance(); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *parser) advance() error {
	tok, err := p.lex.next()
	if err != nil {
		return err
	}
	p.tok = tok
	return nil
}

func (p *parser) expect(t tokenType) (token, error) {
	tok := p.tok
	if tok.typ != t {
		return tok, syntaxErrorf(tok.pos, "expected %s, found %s", t, tok.describe())
	}
	return tok, p.advance()
}

// Parse parses manifest text.
func Parse(src string) (*Manifest, error) {
	p, err := newParser(src)
	if err != nil {
		return nil, errors.Wrap(err, "parsing manifest")
	}
	m := &Manifest{Instructions: []Instruction{}}
	for p.tok.typ != tokEOF {
		in, err := p.parseInstruction()
		if err != nil {
			return nil, errors.Wrapf(err, "parsing instruction %d", len(m.Instructions))
		}
		m.Instructions = append(m.Instructions, in)
	}
	return m, nil
}

// ParseValue parses a single argument.
func ParseValue(src string) (Value, error) {
	p, err := newParser(src)
	if err != nil {
		return nil, errors.Wrap(err, "parsing value")
	}
	v, err := p.parseValue()
	if err != nil {
		return nil, errors.Wrap(err, "parsing value")
	}
	if p.tok.typ != tokEOF {
		return nil, errors.Wrap(syntaxErrorf(p.tok.pos, "unexpected %s after value", p.tok.describe()), "parsing value")
	}
	return v, nil
}

func (p *parser) parseInstruction() (Instruction, error) {
	name, err := p.expect(tokIdent)
	if err != nil {
		return Instruction{}, err
	}
	in := Instruction{Position: name.pos, Name: name.text, Args: []Value{}}
	for p.tok.typ != tokSemicolon {
		if p.tok.typ == tokEOF {
			return Instruction{}, syntaxErrorf(p.tok.pos, "missing ';' after %s", in.Name)
		}
		v, err := p.parseValue()
		if err != nil {
			return Instruction{}, errors.Wrapf(err, "argument %d of %s", len(in.Args), in.Name)
		}
		in.Args = append(in.Args, v)
	}
	return in, p.advance()
}

func (p *parser) parseValue() (Value, error) {
	tok := p.tok
	switch tok.typ {
	case tokInteger:
		return &Integer{Position: tok.pos, Text: tok.text, Type: tok.suffix}, p.advance()
	case tokString:
		return &String{Position: tok.pos, Value: tok.text}, p.advance()
	case tokIdent:
		switch tok.text {
		case "true", "false":
			return &Bool{Position: tok.pos, Value: tok.text == "true"}, p.advance()
		}
		return p.parseCall()
	}
	return nil, syntaxErrorf(tok.pos, "expected value, found %s", tok.describe())
}

func (p *parser) parseCall() (Value, error) {
	name := p.tok
	if err := p.advance(); err != nil {
		return nil, err
	}

	var typeArgs []string
	if p.tok.typ == tokLAngle {
		var err error
		if typeArgs, err = p.parseTypeArgs(); err != nil {
			return nil, err
		}
	}
	if _, err := p.expect(tokLParen); err != nil {
		return nil, err
	}

	if name.text == "Map" {
		return p.parseMapBody(name, typeArgs)
	}

	call := &Call{Position: name.pos, Name: name.text, TypeArgs: typeArgs, Args: []Value{}}
	for p.tok.typ != tokRParen {
		v, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		call.Args = append(call.Args, v)
		if p.tok.typ != tokComma {
			break
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
	}
	if _, err := p.expect(tokRParen); err != nil {
		return nil, err
	}
	return call, nil
}

func (p *parser) parseTypeArgs() ([]string, error) {
	if err := p.advance(); err != nil { // '<'
		return nil, err
	}
	var args []string
	for {
		switch p.tok.typ {
		case tokIdent:
			args = append(args, p.tok.text)
		case tokInteger:
			args = append(args, p.tok.text+p.tok.suffix)
		default:
			return nil, syntaxErrorf(p.tok.pos, "expected type argument, found %s", p.tok.describe())
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
		if p.tok.typ != tokComma {
			break
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
	}
	if _, err := p.expect(tokRAngle); err != nil {
		return nil, err
	}
	return args, nil
}

func (p *parser) parseMapBody(name token, typeArgs []string) (Value, error) {
	if len(typeArgs) != 2 {
		return nil, syntaxErrorf(name.pos, "Map takes 2 type arguments, found %d", len(typeArgs))
	}
	m := &Map{Position: name.pos, KeyType: typeArgs[0], ValueType: typeArgs[1], Entries: []Entry{}}
	for p.tok.typ != tokRParen {
		k, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(tokArrow); err != nil {
			return nil, err
		}
		v, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		m.Entries = append(m.Entries, Entry{Key: k, Value: v})
		if p.tok.typ != tokComma {
			break
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
	}
	if _, err := p.expect(tokRParen); err != nil {
		return nil, err
	}
	return m, nil
}
