package txmanifest

import (
	"fmt"

	"github.com/branched-services/go-txmanifest/ast"
	"github.com/ethereum/go-ethereum/log"
)

// Manifest is an ordered list of instructions plus the blobs they refer to.
type Manifest struct {
	Instructions []Instruction
	Blobs        [][]byte
}

// NewManifest creates a manifest from instructions and blobs.
func NewManifest(instructions []Instruction, blobs ...[]byte) *Manifest {
	return &Manifest{Instructions: instructions, Blobs: blobs}
}

// ManifestFormat is one of the representations ConvertManifest understands.
type ManifestFormat uint8

const (
	FormatText ManifestFormat = iota
	FormatJSON
	FormatBinary
)

// String returns the format name.
func (f ManifestFormat) String() string {
	switch f {
	case FormatText:
		return "text"
	case FormatJSON:
		return "json"
	case FormatBinary:
		return "binary"
	default:
		return fmt.Sprintf("ManifestFormat(%d)", uint8(f))
	}
}

// ParseManifestFormat resolves "text", "json" or "binary".
func ParseManifestFormat(s string) (ManifestFormat, error) {
	switch s {
	case "text":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	case "binary":
		return FormatBinary, nil
	}
	return 0, fmt.Errorf("txmanifest: unknown manifest format %q", s)
}

// ParseManifest reads manifest text. Addresses must belong to the configured
// network. When aliasing is enabled, calls that have a high-level form are
// collapsed into it.
func ParseManifest(src string, opts ...ConvertOption) (*Manifest, error) {
	cfg := defaultConvertConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	tree, err := ast.Parse(src)
	if err != nil {
		return nil, err
	}
	ins, err := instructionsFromAST(tree, NewConversionContext(cfg.networkID))
	if err != nil {
		return nil, err
	}
	if cfg.aliasing {
		ins = AliasAll(ins)
	}
	return &Manifest{Instructions: ins, Blobs: cfg.blobs}, nil
}

// MustParseManifest is like ParseManifest but panics on error.
func MustParseManifest(src string, opts ...ConvertOption) *Manifest {
	m, err := ParseManifest(src, opts...)
	if err != nil {
		panic(err)
	}
	return m
}

// String renders the manifest as text, instructions as they are.
func (m *Manifest) String() string {
	tree, err := instructionsToAST(m.Instructions, NewConversionContext(m.networkID(NetworkMainnet)))
	if err != nil {
		return fmt.Sprintf("<invalid manifest: %v>", err)
	}
	return tree.String()
}

// Format renders the manifest as text. With aliasing enabled (the default)
// calls are printed in their high-level form where one exists; with it
// disabled every instruction is printed low-level.
func (m *Manifest) Format(opts ...ConvertOption) (string, error) {
	cfg := defaultConvertConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	networkID := m.networkID(cfg.networkID)

	ins := m.Instructions
	if cfg.aliasing {
		ins = AliasAll(ins)
	} else {
		ins = ToLowLevelAll(ins, networkID)
	}
	tree, err := instructionsToAST(ins, NewConversionContext(networkID))
	if err != nil {
		return "", err
	}
	return tree.String(), nil
}

// CompileManifest encodes the manifest in its binary form. High-level
// instructions are lowered first.
func CompileManifest(m *Manifest, opts ...ConvertOption) ([]byte, error) {
	cfg := defaultConvertConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	networkID := m.networkID(cfg.networkID)

	blobs := append(append([][]byte(nil), m.Blobs...), cfg.blobs...)
	body, err := manifestToValue(ToLowLevelAll(m.Instructions, networkID), blobs)
	if err != nil {
		return nil, err
	}
	b, err := EncodeValue(body)
	if err != nil {
		return nil, err
	}
	log.Debug("Compiled manifest", "instructions", len(m.Instructions), "blobs", len(blobs), "bytes", len(b))
	return b, nil
}

// DecompileManifest decodes a binary manifest. Produced identifiers are
// numbered in instruction order and addresses are placed on the configured
// network. Structural values are aliased, and with aliasing enabled calls
// are collapsed into their high-level forms.
func DecompileManifest(b []byte, opts ...ConvertOption) (*Manifest, error) {
	cfg := defaultConvertConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	body, err := DecodeValue(b, cfg.networkID, WithoutValueAliasing())
	if err != nil {
		return nil, err
	}
	ins, blobs, err := manifestFromValue(body)
	if err != nil {
		return nil, err
	}
	// Operand values are aliased one by one: the argument tuple of a call
	// must stay a tuple.
	if err := TraverseInstructions(ins, []ValueVisitor{NewValueAliasing()}, nil); err != nil {
		return nil, err
	}
	if cfg.aliasing {
		ins = AliasAll(ins)
	}
	log.Debug("Decompiled manifest", "bytes", len(b), "instructions", len(ins), "blobs", len(blobs))
	return &Manifest{Instructions: ins, Blobs: append(blobs, cfg.blobs...)}, nil
}

// ConvertManifest translates a manifest between representations.
func ConvertManifest(input []byte, from, to ManifestFormat, opts ...ConvertOption) ([]byte, error) {
	var (
		m   *Manifest
		err error
	)
	switch from {
	case FormatText:
		m, err = ParseManifest(string(input), opts...)
	case FormatJSON:
		m, err = UnmarshalManifestJSON(input)
	case FormatBinary:
		m, err = DecompileManifest(input, opts...)
	default:
		err = fmt.Errorf("txmanifest: unknown manifest format %s", from)
	}
	if err != nil {
		return nil, err
	}

	switch to {
	case FormatText:
		s, err := m.Format(opts...)
		if err != nil {
			return nil, err
		}
		return []byte(s), nil
	case FormatJSON:
		return MarshalManifestJSON(m)
	case FormatBinary:
		return CompileManifest(m, opts...)
	}
	return nil, fmt.Errorf("txmanifest: unknown manifest format %s", to)
}

// networkID returns the network of the first address in the manifest, or
// fallback when it holds none.
func (m *Manifest) networkID(fallback uint8) uint8 {
	agg := NewNetworkAggregator()
	agg.strict = false
	if err := TraverseInstructions(m.Instructions, []ValueVisitor{agg}, nil); err != nil {
		return fallback
	}
	if id, ok := agg.NetworkID(); ok {
		return id
	}
	return fallback
}
