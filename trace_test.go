package txmanifest

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func traceYAML() string {
	return fmt.Sprintf(`resource_changes:
  6:
    - component: %[1]s
      resource: %[2]s
      amount: "-100.5"
worktop_changes:
  2:
    - kind: put
      resource: %[2]s
      amount: "100.5"
    - kind: take
      resource: %[2]s
      amount: "100.5"
  4:
    - kind: take
      resource: %[3]s
      ids:
        - "#1#"
        - "<ticket>"
`, simAccount(1), simXRD(), simNFT(2))
}

func TestLoadExecutionTrace(t *testing.T) {
	trace, err := LoadExecutionTrace(strings.NewReader(traceYAML()))
	if err != nil {
		t.Fatalf("LoadExecutionTrace failed: %v", err)
	}

	t.Run("resource changes", func(t *testing.T) {
		changes, ok := trace.resourceChanges(6)
		if !ok || len(changes) != 1 {
			t.Fatalf("Expected 1 change at index 6, got %d", len(changes))
		}
		c := changes[0]
		if c.Component != simAccount(1) {
			t.Errorf("Expected component %s, got %s", simAccount(1), c.Component)
		}
		if c.Resource != simXRD() {
			t.Errorf("Expected resource %s, got %s", simXRD(), c.Resource)
		}
		if !c.Amount.Equal(MustParseDecimal("-100.5")) {
			t.Errorf("Expected -100.5, got %s", c.Amount)
		}

		if _, ok := trace.resourceChanges(0); ok {
			t.Error("Expected no changes at index 0")
		}
	})

	t.Run("first take wins", func(t *testing.T) {
		take, ok := trace.worktopTake(2)
		if !ok {
			t.Fatal("Expected a take at index 2")
		}
		if take.Kind != WorktopTake || take.Amount == nil || !take.Amount.Equal(MustParseDecimal("100.5")) {
			t.Errorf("Expected take of 100.5, got %s %v", take.Kind, take.Amount)
		}
	})

	t.Run("non-fungible take", func(t *testing.T) {
		take, ok := trace.worktopTake(4)
		if !ok {
			t.Fatal("Expected a take at index 4")
		}
		if take.Amount != nil {
			t.Errorf("Expected no amount, got %s", take.Amount)
		}
		if len(take.Ids) != 2 || !take.Ids[0].Equal(IntegerLocalId(1)) {
			t.Errorf("Expected ids #1# and <ticket>, got %v", take.Ids)
		}
		spec := take.Specifier()
		if spec.Resource != simNFT(2) || len(spec.Ids) != 2 {
			t.Errorf("Expected specifier of 2 ids, got %v", spec)
		}
	})

	t.Run("nil trace", func(t *testing.T) {
		var none *ExecutionTrace
		if _, ok := none.resourceChanges(6); ok {
			t.Error("Expected nil trace to have no changes")
		}
		if _, ok := none.worktopTake(2); ok {
			t.Error("Expected nil trace to have no takes")
		}
	})
}

func TestLoadExecutionTraceEmpty(t *testing.T) {
	trace, err := LoadExecutionTrace(strings.NewReader(""))
	if err != nil {
		t.Fatalf("LoadExecutionTrace failed: %v", err)
	}
	if len(trace.ResourceChanges) != 0 || len(trace.WorktopChanges) != 0 {
		t.Errorf("Expected empty trace, got %v", trace)
	}
}

func TestLoadExecutionTraceErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"unknown field", "fee_summary: {}\n"},
		{"bad worktop kind", fmt.Sprintf("worktop_changes:\n  1:\n    - kind: move\n      resource: %s\n", simXRD())},
		{"bad address", "resource_changes:\n  1:\n    - component: nope\n"},
		{"bad amount", fmt.Sprintf("resource_changes:\n  1:\n    - component: %s\n      resource: %s\n      amount: lots\n", simAccount(1), simXRD())},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadExecutionTrace(strings.NewReader(tt.input)); err == nil {
				t.Fatal("Expected error")
			}
		})
	}
}

func TestLoadExecutionTraceFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trace.yaml")
	if err := os.WriteFile(path, []byte(traceYAML()), 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	trace, err := LoadExecutionTraceFile(path)
	if err != nil {
		t.Fatalf("LoadExecutionTraceFile failed: %v", err)
	}
	if len(trace.WorktopChanges) != 2 {
		t.Errorf("Expected worktop changes at 2 indices, got %d", len(trace.WorktopChanges))
	}

	if _, err := LoadExecutionTraceFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Expected error for missing file")
	}
}

func TestWorktopChangeKindText(t *testing.T) {
	for _, k := range []WorktopChangeKind{WorktopTake, WorktopPut} {
		text, err := k.MarshalText()
		if err != nil {
			t.Fatalf("MarshalText failed: %v", err)
		}
		var back WorktopChangeKind
		if err := back.UnmarshalText(text); err != nil {
			t.Fatalf("UnmarshalText(%s) failed: %v", text, err)
		}
		if back != k {
			t.Errorf("Expected %s, got %s", k, back)
		}
	}
}
