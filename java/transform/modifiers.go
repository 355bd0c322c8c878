package transform

import "github.com/dhamidi/jpp/java/tree"

type modifierStripper struct {
	tree.BaseVisitor
}

func (modifierStripper) VisitModifier(m tree.Modifier, parent tree.Node) tree.Action {
	if m.IsNegated() || m == tree.PackagePrivate {
		return tree.Remove()
	}
	return tree.Skip
}

// StripModifiers removes negated modifiers such as non-static and the
// explicit package visibility keyword. Both only restate what plain Java
// implies by omission.
func StripModifiers(root tree.Node) (tree.Node, error) {
	return tree.Walk(modifierStripper{}, root)
}
