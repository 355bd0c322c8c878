package tree

import "strings"

const indentUnit = "    "

// slot is satisfied by every node type that can occupy a field: node
// interfaces, node pointers and the immutable value kinds.
type slot interface {
	comparable
	Node
}

func copyList[T any](list []T) []T {
	out := make([]T, len(list))
	copy(out, list)
	return out
}

func cloneOf[T slot](n T) T {
	var zero T
	if n == zero {
		return zero
	}
	return n.Clone().(T)
}

func cloneList[T slot](list []T) []T {
	out := make([]T, len(list))
	for i, n := range list {
		out[i] = cloneOf(n)
	}
	return out
}

func joinCode[T Node](list []T, sep string) string {
	parts := make([]string, len(list))
	for i, n := range list {
		parts[i] = n.Code()
	}
	return strings.Join(parts, sep)
}

func indent(s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = indentUnit + line
		}
	}
	return strings.Join(lines, "\n")
}

func argsCode(args []Expression) string {
	return "(" + joinCode(args, ", ") + ")"
}

func statementsCode(stmts []Statement) string {
	if len(stmts) == 0 {
		return "{}"
	}
	return "{\n" + indent(joinCode(stmts, "\n")) + "\n}"
}

func membersCode(members []Member) string {
	if len(members) == 0 {
		return "{}"
	}
	return "{\n" + indent(memberLines(members)) + "\n}"
}

// memberLines joins rendered members, separating them with an empty line
// unless both neighbours are fields.
func memberLines(members []Member) string {
	var b strings.Builder
	for i, m := range members {
		if i > 0 {
			b.WriteByte('\n')
			if needsBlankLine(members[i-1], m) {
				b.WriteByte('\n')
			}
		}
		b.WriteString(m.Code())
	}
	return b.String()
}

func needsBlankLine(prev, next Member) bool {
	_, prevField := prev.(*FieldDecl)
	_, nextField := next.(*FieldDecl)
	return !(prevField && nextField)
}

func nameListCode(names []QualifiedName) string {
	return joinCode(names, ", ")
}
