// Package ast is the parse tree of textual transaction manifests.
//
// A manifest is a sequence of instructions, each an upper-case name followed
// by its arguments and terminated by a semicolon:
//
//	CALL_METHOD
//	    ComponentAddress("account_sim1...")
//	    "withdraw"
//	    ResourceAddress("resource_sim1...")
//	    Decimal("10")
//	;
//	TAKE_ALL_FROM_WORKTOP
//	    ResourceAddress("resource_sim1...")
//	    Bucket("xrd")
//	;
//
// Arguments are booleans, suffixed integers such as 5u8 or -3i32, quoted
// strings, maps written Map<K, V>(k => v, ...) and calls written
// Name<TypeArgs>(args...). The tree carries no semantics: type names, argument
// counts and address formats are checked by the caller.
package ast

// Position is a 1-based line and column in the source.
type Position struct {
	Line   int
	Column int
}

// Pos returns the position itself, so that embedding types satisfy Node.
func (p Position) Pos() Position { return p }

// Value is an argument in the parse tree.
type Value interface {
	Pos() Position
	isValue()
}

// Bool is true or false.
type Bool struct {
	Position
	Value bool
}

// Integer is a number with its type suffix, such as 5u8. Text keeps the
// sign and digits as written.
type Integer struct {
	Position
	Text string
	Type string
}

// String is a quoted string, already unescaped.
type String struct {
	Position
	Value string
}

// Call is a named constructor such as Tuple(...), Enum<1u8>(...) or
// Decimal("1.5").
type Call struct {
	Position
	Name     string
	TypeArgs []string
	Args     []Value
}

// Entry is one key => value pair of a Map.
type Entry struct {
	Key   Value
	Value Value
}

// Map is Map<KeyType, ValueType>(key => value, ...).
type Map struct {
	Position
	KeyType   string
	ValueType string
	Entries   []Entry
}

func (*Bool) isValue()    {}
func (*Integer) isValue() {}
func (*String) isValue()  {}
func (*Call) isValue()    {}
func (*Map) isValue()     {}

// Instruction is one NAME arg* ; statement.
type Instruction struct {
	Position
	Name string
	Args []Value
}

// Manifest is an ordered list of instructions.
type Manifest struct {
	Instructions []Instruction
}

// String renders the manifest in canonical form.
func (m *Manifest) String() string {
	return Format(m)
}
