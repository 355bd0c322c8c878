package transform

import "github.com/dhamidi/jpp/java/tree"

type parenStripper struct {
	tree.BaseVisitor
	state *nested
}

func (v parenStripper) VisitParenExpr(n *tree.ParenExpr, parent tree.Node) tree.Action {
	var inner tree.Expression = n
	for {
		p, ok := inner.(*tree.ParenExpr)
		if !ok {
			break
		}
		inner = p.Expr
	}
	return tree.Replace(v.state.walk(v, inner))
}

// StripParens removes every parenthesized expression node. Rendering adds
// back exactly the parentheses that precedence requires.
func StripParens(root tree.Node) (tree.Node, error) {
	v := parenStripper{state: &nested{}}
	return run(v, v.state, root)
}
