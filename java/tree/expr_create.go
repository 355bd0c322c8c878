package tree

import "strings"

// ClassCreator is [Outer.]new [<TypeArgs>] Type(Args) [Body].
type ClassCreator struct {
	exprMarker
	typeArgumented
	Outer Expression
	Type  *ClassType
	Args  []Expression
	// Body is the anonymous class body, if any.
	Body *ClassBody
}

// NewClassCreator panics if t is nil.
func NewClassCreator(t *ClassType, args ...Expression) *ClassCreator {
	requireChild(KindClassCreator, "Type", t == nil)
	return &ClassCreator{Type: t, Args: copyList(args)}
}

func (*ClassCreator) Kind() Kind             { return KindClassCreator }
func (*ClassCreator) Precedence() Precedence { return Primary }

func (c *ClassCreator) Code() string {
	var b strings.Builder
	if c.Outer != nil {
		b.WriteString(wrapCode(c.Outer, Primary))
		b.WriteByte('.')
	}
	b.WriteString("new ")
	if s := c.typeArgumentString(); s != "" {
		b.WriteString(s)
		b.WriteByte(' ')
	}
	b.WriteString(c.Type.Code())
	b.WriteString(argsCode(c.Args))
	if c.Body != nil {
		b.WriteByte(' ')
		b.WriteString(c.Body.Code())
	}
	return b.String()
}

func (c *ClassCreator) Clone() Node {
	return &ClassCreator{
		typeArgumented: c.cloneTypeArgumented(),
		Outer:          cloneOf(c.Outer),
		Type:           cloneOf(c.Type),
		Args:           cloneList(c.Args),
		Body:           cloneOf(c.Body),
	}
}

func (c *ClassCreator) walkChildren(w *walker) error {
	if err := walkNode(w, c, &c.Outer, true); err != nil {
		return err
	}
	if err := walkList(w, c, &c.typeArgs); err != nil {
		return err
	}
	if err := walkNode(w, c, &c.Type, false); err != nil {
		return err
	}
	if err := walkList(w, c, &c.Args); err != nil {
		return err
	}
	return walkNode(w, c, &c.Body, true)
}

// ArraySpec is either the dimension sizes of new int[n][m] or the
// initializer of new int[]{1, 2}.
type ArraySpec = Either[[]*Size, *ArrayInitializer]

// ArrayCreator creates an array. Extra dimensions without a size follow the
// sizes, or precede the initializer.
type ArrayCreator struct {
	exprMarker
	dimensioned
	Elem Type
	Spec ArraySpec
}

// NewSizedArray builds new Elem[s1][s2]...[]... with extra unsized
// dimensions. It panics if elem is nil.
func NewSizedArray(elem Type, sizes []*Size, dims ...*Dimension) *ArrayCreator {
	requireChild(KindArrayCreator, "Elem", elem == nil)
	a := &ArrayCreator{Elem: elem, Spec: Left[[]*Size, *ArrayInitializer](copyList(sizes))}
	a.dims = copyList(dims)
	return a
}

// NewInitializedArray builds new Elem[]...{...}. At least one dimension is
// always rendered. It panics if elem or init is nil.
func NewInitializedArray(elem Type, init *ArrayInitializer, dims ...*Dimension) *ArrayCreator {
	requireChild(KindArrayCreator, "Elem", elem == nil)
	requireChild(KindArrayCreator, "Initializer", init == nil)
	if len(dims) == 0 {
		dims = []*Dimension{{}}
	}
	a := &ArrayCreator{Elem: elem, Spec: Right[[]*Size](init)}
	a.dims = copyList(dims)
	return a
}

func (*ArrayCreator) Kind() Kind             { return KindArrayCreator }
func (*ArrayCreator) Precedence() Precedence { return Primary }

func (a *ArrayCreator) Code() string {
	if init, ok := a.Spec.GetRight(); ok {
		return "new " + a.Elem.Code() + a.dimString() + init.Code()
	}
	sizes, _ := a.Spec.GetLeft()
	return "new " + a.Elem.Code() + joinCode(sizes, "") + a.dimString()
}

func (a *ArrayCreator) Clone() Node {
	c := &ArrayCreator{dimensioned: a.cloneDimensioned(), Elem: cloneOf(a.Elem)}
	if init, ok := a.Spec.GetRight(); ok {
		c.Spec = Right[[]*Size](cloneOf(init))
	} else {
		c.Spec = Left[[]*Size, *ArrayInitializer](cloneList(a.Spec.left))
	}
	return c
}

func (a *ArrayCreator) walkChildren(w *walker) error {
	if err := walkNode(w, a, &a.Elem, false); err != nil {
		return err
	}
	if a.Spec.isRight {
		if err := walkListMin(w, a, &a.dims, 1); err != nil {
			return err
		}
		return walkNode(w, a, &a.Spec.right, false)
	}
	if err := walkListMin(w, a, &a.Spec.left, 1); err != nil {
		return err
	}
	return walkList(w, a, &a.dims)
}

// Size is one sized dimension, [Expr].
type Size struct {
	annotated
	Expr Expression
}

func NewSize(e Expression) *Size {
	requireChild(KindSize, "Expr", e == nil)
	return &Size{Expr: e}
}

func (*Size) Kind() Kind { return KindSize }

func (s *Size) Code() string {
	prefix := ""
	if len(s.annotations) > 0 {
		prefix = " " + s.annotationString(false)
	}
	return prefix + "[" + s.Expr.Code() + "]"
}

func (s *Size) Clone() Node {
	return &Size{annotated: s.cloneAnnotated(), Expr: cloneOf(s.Expr)}
}

func (s *Size) walkChildren(w *walker) error {
	if err := walkList(w, s, &s.annotations); err != nil {
		return err
	}
	return walkNode(w, s, &s.Expr, false)
}

// ArrayInitializer is {e1, e2, ...}. Elements may be nested initializers.
type ArrayInitializer struct {
	Elements []Initializer
}

func NewArrayInitializer(elements ...Initializer) *ArrayInitializer {
	return &ArrayInitializer{Elements: copyList(elements)}
}

func (*ArrayInitializer) Kind() Kind { return KindArrayInitializer }

func (a *ArrayInitializer) Code() string {
	parts := make([]string, len(a.Elements))
	for i, e := range a.Elements {
		parts[i] = initializerCode(e)
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

func (a *ArrayInitializer) Clone() Node {
	elements := make([]Initializer, len(a.Elements))
	for i, e := range a.Elements {
		elements[i] = cloneInitializer(e)
	}
	return &ArrayInitializer{Elements: elements}
}

func (a *ArrayInitializer) walkChildren(w *walker) error {
	return walkEitherList(w, a, &a.Elements)
}
