package tree

import "strings"

// Dump renders the tree rooted at root as one line per node, indented by
// depth, naming each node's kind and, for leaves and operators, its text.
func Dump(root Node) string {
	var b strings.Builder
	depth := map[Node]int{}
	Inspect(root, func(n, parent Node) bool {
		d := 0
		if parent != nil {
			d = depth[parent] + 1
		}
		depth[n] = d
		b.WriteString(strings.Repeat("  ", d))
		b.WriteString(n.Kind().String())
		if label := Label(n); label != "" {
			b.WriteString(" ")
			b.WriteString(label)
		}
		b.WriteByte('\n')
		return true
	})
	return b.String()
}

// Label returns the short text that identifies a leaf or operator node, or
// the empty string for other nodes.
func Label(n Node) string {
	switch x := n.(type) {
	case Name, QualifiedName, Modifier, *Literal:
		return x.Code()
	case *PrimitiveType:
		return x.Name()
	case *UnaryExpr:
		return x.Op.String()
	case *BinaryExpr:
		return x.Op.String()
	case *AssignExpr:
		return x.Op.String()
	case *InstanceOfExpr:
		if x.Negated {
			return "!instanceof"
		}
	case *PrintStmt:
		if x.Newline {
			return "println"
		}
		return "print"
	case *ImportDecl:
		return x.Code()
	}
	return ""
}
