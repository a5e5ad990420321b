package txmanifest

// TraverseValue walks the value in slot depth first. Each node is offered to
// every enabled visitor before its children, and the slot is re-read after
// the visitors ran, so a visitor that replaces a node has the replacement
// walked. The first error stops the walk.
func TraverseValue(slot *Value, visitors ...ValueVisitor) error {
	return traverseValue(slot, visitors, 0)
}

func traverseValue(slot *Value, visitors []ValueVisitor, depth int) error {
	if *slot == nil {
		return ErrNilValue
	}
	if depth > MaxDepth {
		return ErrMaxDepthExceeded
	}
	for _, vis := range visitors {
		if !vis.IsEnabled() {
			continue
		}
		if err := visitValue(vis, slot); err != nil {
			return err
		}
		if *slot == nil {
			return ErrNilValue
		}
	}

	switch x := (*slot).(type) {
	case *MapValue:
		for i := range x.Entries {
			if err := traverseValue(&x.Entries[i].Key, visitors, depth+1); err != nil {
				return err
			}
			if err := traverseValue(&x.Entries[i].Value, visitors, depth+1); err != nil {
				return err
			}
		}
	case *EnumValue:
		return traverseSlice(x.Fields, visitors, depth)
	case *ArrayValue:
		return traverseSlice(x.Elements, visitors, depth)
	case *TupleValue:
		return traverseSlice(x.Fields, visitors, depth)
	}
	return nil
}

func traverseSlice(values []Value, visitors []ValueVisitor, depth int) error {
	for i := range values {
		if err := traverseValue(&values[i], visitors, depth+1); err != nil {
			return err
		}
	}
	return nil
}

// TraverseInstructions walks a manifest. For each instruction, every value
// operand is walked with the value visitors, then the instruction is passed
// to each enabled instruction visitor, then PostVisit runs on each of them.
// The first error stops the walk and is returned as an *InstructionError.
func TraverseInstructions(ins []Instruction, valueVisitors []ValueVisitor, instructionVisitors []InstructionVisitor) error {
	for i, in := range ins {
		if err := traverseInstruction(in, valueVisitors, instructionVisitors); err != nil {
			return &InstructionError{Index: i, Instruction: in.Kind(), Err: err}
		}
	}
	return nil
}

func traverseInstruction(in Instruction, valueVisitors []ValueVisitor, instructionVisitors []InstructionVisitor) error {
	if len(valueVisitors) > 0 {
		for _, slot := range valueSlots(in) {
			if err := TraverseValue(slot, valueVisitors...); err != nil {
				return err
			}
		}
	}
	for _, vis := range instructionVisitors {
		if !vis.IsEnabled() {
			continue
		}
		if err := visitInstruction(vis, in); err != nil {
			return err
		}
	}
	for _, vis := range instructionVisitors {
		if !vis.IsEnabled() {
			continue
		}
		if err := vis.PostVisit(); err != nil {
			return err
		}
	}
	return nil
}
