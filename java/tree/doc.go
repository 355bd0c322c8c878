// Package tree defines the syntax tree of the Java superset accepted by
// jpp, and the machinery to traverse, rewrite and print it.
//
// # Nodes
//
// Every element implements [Node]. Nodes are grouped into families by
// narrow interfaces: [Expression], [Statement], [Type], [Member],
// [TypeDecl], [Directive], [Pattern]. Shared syntax such as modifiers,
// annotations and doc comments is provided by small embedded structs whose
// methods are promoted to the node.
//
// [Name], [QualifiedName] and [Modifier] are immutable values. Every other
// node is a pointer owned by exactly one parent; [Node.Clone] returns an
// independent deep copy.
//
// Constructors validate the invariants of their kind and return an error
// instead of a half built node:
//
//	u, err := tree.NewTypeUnion(ioException)          // fails: needs two types
//	n, err := tree.NewName("not valid")                // fails: contains a space
//	lit := tree.NewLongLiteral(5)                      // renders 5L
//
// # Printing
//
// [Node.Code] renders canonical source text. Expressions carry a
// [Precedence]; parents parenthesize an operand only when it binds looser
// than they do, so printed text parses back into the same tree shape.
//
//	sum := tree.NewBinaryExpr(tree.NewIntLiteral(1), tree.OpAdd, tree.NewIntLiteral(2))
//	tree.NewBinaryExpr(sum, tree.OpMul, tree.NewIntLiteral(3)).Code() // (1 + 2) * 3
//
// # Traversal
//
// A [Visitor] has one method per kind. [Walk] calls it in pre-order and
// applies the returned [Action]: [Descend] into children, [Skip] them,
// [Replace] the node in its parent, or [Remove] it from a list or optional
// field. Embed [BaseVisitor] to override only the kinds of interest:
//
//	type renamer struct{ tree.BaseVisitor }
//
//	func (renamer) VisitName(n tree.Name, parent tree.Node) tree.Action {
//		if n.String() == "old" {
//			return tree.Replace(tree.MustName("new"))
//		}
//		return tree.Skip
//	}
//
// [Inspect] is the read-only counterpart and [Dump] prints the kind tree
// for debugging.
package tree
