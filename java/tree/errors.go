package tree

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidName       = errors.New("invalid name")
	ErrEmptyName         = errors.New("qualified name requires at least one component")
	ErrTooFewTypes       = errors.New("type union or intersection requires at least two types")
	ErrNoDeclarators     = errors.New("variable declaration requires at least one declarator")
	ErrDocNotAllowed     = errors.New("doc comment not allowed here")
	ErrInvalidDocComment = errors.New("invalid doc comment")
	ErrInvalidLiteral    = errors.New("invalid literal")
	ErrInvalidModifier   = errors.New("invalid modifier")
	ErrInvalidNode       = errors.New("invalid node")
	ErrMissingChild      = errors.New("missing required child")

	ErrRemoveRequired       = errors.New("cannot remove required child")
	ErrIncompatibleReplace  = errors.New("replacement has incompatible kind")
	ErrRemoveRoot           = errors.New("cannot remove root node")
	ErrUnsupportedNodeKind  = errors.New("unsupported node kind")
	ErrInvariantAfterRemove = errors.New("structural minimum violated")
)

// UnsupportedKindError is returned when the traversal dispatcher meets a
// node whose concrete type it has no visitor method for.
type UnsupportedKindError struct {
	Node Node
}

func (e *UnsupportedKindError) Error() string {
	return fmt.Sprintf("%s: %T", ErrUnsupportedNodeKind, e.Node)
}

func (e *UnsupportedKindError) Unwrap() error {
	return ErrUnsupportedNodeKind
}

// RewriteError reports an edit that cannot be installed in its parent.
type RewriteError struct {
	Parent Kind
	Child  Kind
	Err    error
}

func (e *RewriteError) Error() string {
	return fmt.Sprintf("rewrite %s in %s: %v", e.Child, e.Parent, e.Err)
}

func (e *RewriteError) Unwrap() error {
	return e.Err
}

// requireChild panics when a constructor is handed nil for a required
// child. As with MustName, a missing child is a programming error.
func requireChild(kind Kind, field string, missing bool) {
	if missing {
		panic(fmt.Errorf("%w: %v.%s", ErrMissingChild, kind, field))
	}
}
