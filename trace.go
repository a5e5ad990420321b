package txmanifest

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// ResourceChange is a balance change of one resource in one component,
// observed while executing an instruction.
type ResourceChange struct {
	Component NetworkAwareAddress `yaml:"component" json:"component"`
	Resource  NetworkAwareAddress `yaml:"resource" json:"resource_address"`
	Amount    Decimal             `yaml:"amount" json:"amount"`
}

// WorktopChangeKind says whether resources left or entered the worktop.
type WorktopChangeKind uint8

const (
	WorktopTake WorktopChangeKind = iota
	WorktopPut
)

// String returns the change kind name.
func (k WorktopChangeKind) String() string {
	switch k {
	case WorktopTake:
		return "take"
	case WorktopPut:
		return "put"
	default:
		return fmt.Sprintf("WorktopChangeKind(%d)", uint8(k))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (k WorktopChangeKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *WorktopChangeKind) UnmarshalText(text []byte) error {
	switch string(text) {
	case "take":
		*k = WorktopTake
	case "put":
		*k = WorktopPut
	default:
		return fmt.Errorf("txmanifest: unknown worktop change %q", text)
	}
	return nil
}

// WorktopChange is a movement of resources to or from the worktop. Exactly
// one of Amount and Ids is set.
type WorktopChange struct {
	Kind     WorktopChangeKind    `yaml:"kind" json:"kind"`
	Resource NetworkAwareAddress  `yaml:"resource" json:"resource_address"`
	Amount   *Decimal             `yaml:"amount,omitempty" json:"amount,omitempty"`
	Ids      []NonFungibleLocalId `yaml:"ids,omitempty" json:"ids,omitempty"`
}

// Specifier returns the resources the change moved.
func (c WorktopChange) Specifier() ResourceSpecifier {
	return ResourceSpecifier{Resource: c.Resource, Amount: c.Amount, Ids: c.Ids}
}

// ExecutionTrace holds what the execution engine observed, keyed by
// instruction index. Analysis only reads it.
type ExecutionTrace struct {
	ResourceChanges map[uint32][]ResourceChange `yaml:"resource_changes" json:"resource_changes"`
	WorktopChanges  map[uint32][]WorktopChange  `yaml:"worktop_changes" json:"worktop_changes"`
}

// LoadExecutionTrace reads a YAML trace.
func LoadExecutionTrace(r io.Reader) (*ExecutionTrace, error) {
	var t ExecutionTrace
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&t); err != nil {
		if err == io.EOF {
			return &ExecutionTrace{}, nil
		}
		return nil, fmt.Errorf("txmanifest: reading execution trace: %w", err)
	}
	return &t, nil
}

// LoadExecutionTraceFile reads a YAML trace from path.
func LoadExecutionTraceFile(path string) (*ExecutionTrace, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return LoadExecutionTrace(f)
}

func (t *ExecutionTrace) resourceChanges(index uint32) ([]ResourceChange, bool) {
	if t == nil {
		return nil, false
	}
	changes, ok := t.ResourceChanges[index]
	return changes, ok
}

// worktopTake returns the first take recorded at index.
func (t *ExecutionTrace) worktopTake(index uint32) (WorktopChange, bool) {
	if t == nil {
		return WorktopChange{}, false
	}
	for _, c := range t.WorktopChanges[index] {
		if c.Kind == WorktopTake {
			return c, true
		}
	}
	return WorktopChange{}, false
}
