package transform

import "github.com/dhamidi/jpp/java/tree"

var systemOut = tree.MustQualifiedName("System.out")

type printLowerer struct {
	tree.BaseVisitor
	state *nested
}

func (v printLowerer) VisitPrintStmt(n *tree.PrintStmt, parent tree.Node) tree.Action {
	args := make([]tree.Expression, len(n.Args))
	for i, a := range n.Args {
		args[i] = v.state.walk(v, a)
	}
	return tree.Replace(tree.NewExpressionStmt(printCall(n.Newline, args)))
}

// printCall builds the System.out call for a print statement. Several
// arguments are joined into one string concatenation with a space between
// each pair.
func printCall(newline bool, args []tree.Expression) *tree.MethodCall {
	method := tree.MustName("print")
	if newline {
		method = tree.MustName("println")
	}
	switch len(args) {
	case 0:
		if newline {
			return tree.NewMethodCall(systemOut, method)
		}
		return tree.NewMethodCall(systemOut, method, tree.NewStringLiteral(""))
	case 1:
		return tree.NewMethodCall(systemOut, method, tree.Unwrap(args[0], tree.Assignment))
	}
	var concat tree.Expression = tree.Unwrap(args[0], tree.Additive)
	for _, a := range args[1:] {
		concat = tree.NewBinaryExpr(concat, tree.OpAdd, tree.NewStringLiteral(" "))
		concat = tree.NewBinaryExpr(concat, tree.OpAdd, tree.Unwrap(a, tree.Multiplicative))
	}
	return tree.NewMethodCall(systemOut, method, concat)
}

// LowerPrint rewrites print and println statements to calls on
// System.out.
func LowerPrint(root tree.Node) (tree.Node, error) {
	v := printLowerer{state: &nested{}}
	return run(v, v.state, root)
}
