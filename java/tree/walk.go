package tree

type actionOp int

const (
	opDescend actionOp = iota
	opSkip
	opReplace
	opRemove
)

// Action tells the walker what to do with the node just visited. The zero
// Action descends.
type Action struct {
	op   actionOp
	node Node
}

var (
	// Descend visits the node's children.
	Descend = Action{op: opDescend}
	// Skip treats the node as a leaf.
	Skip = Action{op: opSkip}
)

// Replace installs n in the visited node's slot. The replacement is not
// visited.
func Replace(n Node) Action {
	if n == nil {
		return Remove()
	}
	return Action{op: opReplace, node: n}
}

// Remove deletes a list element or clears an optional field.
func Remove() Action {
	return Action{op: opRemove}
}

func (a Action) IsDescend() bool { return a.op == opDescend }
func (a Action) IsSkip() bool    { return a.op == opSkip }
func (a Action) IsReplace() bool { return a.op == opReplace }
func (a Action) IsRemove() bool  { return a.op == opRemove }

// Node returns the replacement carried by a Replace action.
func (a Action) Node() Node { return a.node }

type walker struct {
	v       Visitor
	inspect func(n, parent Node) bool
}

type walkable interface {
	walkChildren(w *walker) error
}

func (w *walker) visit(n, parent Node) (Action, error) {
	var act Action
	if w.inspect != nil {
		act = Skip
		if w.inspect(n, parent) {
			act = Descend
		}
	} else {
		var err error
		if act, err = dispatch(w.v, n, parent); err != nil {
			return Action{}, err
		}
	}
	if act.op == opDescend {
		if c, ok := n.(walkable); ok {
			if err := c.walkChildren(w); err != nil {
				return Action{}, err
			}
		}
	}
	return act, nil
}

// Walk runs v over the tree rooted at root in pre-order and applies the
// edits it returns. It returns the root, which differs from the argument
// when the visitor replaced it.
func Walk(v Visitor, root Node) (Node, error) {
	if root == nil {
		return nil, nil
	}
	w := &walker{v: v}
	act, err := w.visit(root, nil)
	if err != nil {
		return nil, err
	}
	switch act.op {
	case opReplace:
		return act.node, nil
	case opRemove:
		return nil, ErrRemoveRoot
	}
	return root, nil
}

// Inspect calls f for every node in pre-order. Children of n are visited
// only if f returns true. Inspect never modifies the tree.
func Inspect(root Node, f func(n, parent Node) bool) {
	if root == nil {
		return
	}
	w := &walker{inspect: f}
	// Without a visitor every action is Descend or Skip, so there is
	// nothing to fail.
	_, _ = w.visit(root, nil)
}

func kindOf(n Node) Kind {
	if n == nil {
		return KindInvalid
	}
	return n.Kind()
}

// walkNode visits a single child field. A nil or zero field is skipped.
func walkNode[T slot](w *walker, parent Node, field *T, optional bool) error {
	var zero T
	if *field == zero {
		return nil
	}
	act, err := w.visit(*field, parent)
	if err != nil {
		return err
	}
	switch act.op {
	case opReplace:
		r, ok := act.node.(T)
		if !ok {
			return &RewriteError{Parent: parent.Kind(), Child: kindOf(act.node), Err: ErrIncompatibleReplace}
		}
		*field = r
	case opRemove:
		if !optional {
			return &RewriteError{Parent: parent.Kind(), Child: (*field).Kind(), Err: ErrRemoveRequired}
		}
		*field = zero
	}
	return nil
}

// walkList visits every element of a list field in order. Removed elements
// are dropped and replacements keep their position.
func walkList[T slot](w *walker, parent Node, list *[]T) error {
	return walkListMin(w, parent, list, 0)
}

// walkListMin is walkList for fields that must keep at least min elements.
// The field is left untouched when the edits would drop below min.
func walkListMin[T slot](w *walker, parent Node, list *[]T, min int) error {
	var zero T
	out := (*list)[:0:0]
	changed := false
	for _, n := range *list {
		if n == zero {
			out = append(out, n)
			continue
		}
		act, err := w.visit(n, parent)
		if err != nil {
			return err
		}
		switch act.op {
		case opReplace:
			r, ok := act.node.(T)
			if !ok {
				return &RewriteError{Parent: parent.Kind(), Child: kindOf(act.node), Err: ErrIncompatibleReplace}
			}
			out = append(out, r)
			changed = true
		case opRemove:
			changed = true
		default:
			out = append(out, n)
		}
	}
	if !changed {
		return nil
	}
	if err := checkMinimum(parent, len(out), min); err != nil {
		return err
	}
	*list = out
	return nil
}

// walkEither visits the populated branch of e. A replacement of the other
// branch's type switches the variant. It reports whether the visitor asked
// for removal; the caller decides if that is allowed.
func walkEither[L, R slot](w *walker, parent Node, e *Either[L, R]) (removed bool, err error) {
	var cur Node
	if e.isRight {
		var zero R
		if e.right == zero {
			return false, nil
		}
		cur = e.right
	} else {
		var zero L
		if e.left == zero {
			return false, nil
		}
		cur = e.left
	}
	act, err := w.visit(cur, parent)
	if err != nil {
		return false, err
	}
	switch act.op {
	case opRemove:
		return true, nil
	case opReplace:
		if l, ok := act.node.(L); ok && !e.isRight {
			e.SetLeft(l)
		} else if r, ok := act.node.(R); ok {
			e.SetRight(r)
		} else if l, ok := act.node.(L); ok {
			e.SetLeft(l)
		} else {
			return false, &RewriteError{Parent: parent.Kind(), Child: kindOf(act.node), Err: ErrIncompatibleReplace}
		}
	}
	return false, nil
}

// walkEitherField visits an Either-valued field. Removal clears an optional
// field and fails on a required one.
func walkEitherField[L, R slot](w *walker, parent Node, e *Either[L, R], optional bool) error {
	child := kindOf(eitherNode(*e))
	removed, err := walkEither(w, parent, e)
	if err != nil || !removed {
		return err
	}
	if !optional {
		return &RewriteError{Parent: parent.Kind(), Child: child, Err: ErrRemoveRequired}
	}
	*e = Either[L, R]{}
	return nil
}

func walkEitherList[L, R slot](w *walker, parent Node, list *[]Either[L, R]) error {
	out := (*list)[:0:0]
	for i := range *list {
		e := (*list)[i]
		removed, err := walkEither(w, parent, &e)
		if err != nil {
			return err
		}
		if !removed {
			out = append(out, e)
		}
	}
	*list = out
	return nil
}

func eitherNode[L, R slot](e Either[L, R]) Node {
	if e.isRight {
		return e.right
	}
	return e.left
}

func checkMinimum(parent Node, n, min int) error {
	if n < min {
		return &RewriteError{Parent: parent.Kind(), Child: parent.Kind(), Err: ErrInvariantAfterRemove}
	}
	return nil
}
