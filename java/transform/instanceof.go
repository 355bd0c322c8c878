package transform

import "github.com/dhamidi/jpp/java/tree"

type instanceofLowerer struct {
	tree.BaseVisitor
	state *nested
}

func (v instanceofLowerer) VisitInstanceOfExpr(n *tree.InstanceOfExpr, parent tree.Node) tree.Action {
	if !n.Negated {
		return tree.Descend
	}
	positive := &tree.InstanceOfExpr{Expr: v.state.walk(v, n.Expr), Test: n.Test}
	return tree.Replace(tree.NewUnaryExpr(tree.OpNot, tree.NewParenExpr(positive)))
}

// LowerNotInstanceof rewrites x !instanceof T to !(x instanceof T).
func LowerNotInstanceof(root tree.Node) (tree.Node, error) {
	v := instanceofLowerer{state: &nested{}}
	return run(v, v.state, root)
}
