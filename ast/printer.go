package ast

import (
	"strconv"
	"strings"
)

const indent = "    "

// Format renders m with one instruction per statement and each argument on
// its own indented line.
func Format(m *Manifest) string {
	var sb strings.Builder
	for i := range m.Instructions {
		writeInstruction(&sb, &m.Instructions[i])
	}
	return sb.String()
}

// FormatValue renders a single argument on one line.
func FormatValue(v Value) string {
	var sb strings.Builder
	writeValue(&sb, v)
	return sb.String()
}

func writeInstruction(sb *strings.Builder, in *Instruction) {
	sb.WriteString(in.Name)
	if len(in.Args) == 0 {
		sb.WriteString(";\n")
		return
	}
	sb.WriteByte('\n')
	for _, arg := range in.Args {
		sb.WriteString(indent)
		writeValue(sb, arg)
		sb.WriteByte('\n')
	}
	sb.WriteString(";\n")
}

func writeValue(sb *strings.Builder, v Value) {
	switch val := v.(type) {
	case *Bool:
		sb.WriteString(strconv.FormatBool(val.Value))
	case *Integer:
		sb.WriteString(val.Text)
		sb.WriteString(val.Type)
	case *String:
		sb.WriteString(strconv.Quote(val.Value))
	case *Call:
		sb.WriteString(val.Name)
		writeTypeArgs(sb, val.TypeArgs...)
		sb.WriteByte('(')
		for i, arg := range val.Args {
			if i > 0 {
				sb.WriteString(", ")
			}
			writeValue(sb, arg)
		}
		sb.WriteByte(')')
	case *Map:
		sb.WriteString("Map")
		writeTypeArgs(sb, val.KeyType, val.ValueType)
		sb.WriteByte('(')
		for i, e := range val.Entries {
			if i > 0 {
				sb.WriteString(", ")
			}
			writeValue(sb, e.Key)
			sb.WriteString(" => ")
			writeValue(sb, e.Value)
		}
		sb.WriteByte(')')
	}
}

func writeTypeArgs(sb *strings.Builder, args ...string) {
	if len(args) == 0 {
		return
	}
	sb.WriteByte('<')
	sb.WriteString(strings.Join(args, ", "))
	sb.WriteByte('>')
}
