package tree

import "fmt"

var primitiveTypeNames = map[string]bool{
	"boolean": true,
	"byte":    true,
	"short":   true,
	"int":     true,
	"long":    true,
	"char":    true,
	"float":   true,
	"double":  true,
}

// IsPrimitiveTypeName reports whether s names one of the eight primitive
// types.
func IsPrimitiveTypeName(s string) bool {
	return primitiveTypeNames[s]
}

type PrimitiveType struct {
	typeMarker
	annotated
	name string
}

func NewPrimitiveType(name string) (*PrimitiveType, error) {
	if !primitiveTypeNames[name] {
		return nil, fmt.Errorf("%w: %q is not a primitive type", ErrInvalidNode, name)
	}
	return &PrimitiveType{name: name}, nil
}

func (*PrimitiveType) Kind() Kind     { return KindPrimitiveType }
func (t *PrimitiveType) Name() string { return t.name }

func (t *PrimitiveType) Code() string {
	return t.annotationString(false) + t.name
}

func (t *PrimitiveType) Clone() Node {
	return &PrimitiveType{annotated: t.cloneAnnotated(), name: t.name}
}

func (t *PrimitiveType) walkChildren(w *walker) error {
	return walkList(w, t, &t.annotations)
}

type VoidType struct {
	typeMarker
}

func (*VoidType) Kind() Kind   { return KindVoidType }
func (*VoidType) Code() string { return "void" }
func (*VoidType) Clone() Node  { return &VoidType{} }

// VarType is the inferred local variable type.
type VarType struct {
	typeMarker
}

func (*VarType) Kind() Kind   { return KindVarType }
func (*VarType) Code() string { return "var" }
func (*VarType) Clone() Node  { return &VarType{} }

// ClassType is a possibly qualified, possibly parameterized reference type
// such as java.util.Map.Entry<K, V>. Each segment of the chain is a
// ClassType whose Outer points to the previous segment.
type ClassType struct {
	typeMarker
	annotated
	typeArgumented
	Outer *ClassType
	Name  Name
	// Diamond renders "<>" in place of type arguments.
	Diamond bool
}

func NewClassType(name Name, args ...TypeArgument) *ClassType {
	t := &ClassType{Name: name}
	t.typeArgs = copyList(args)
	return t
}

// ClassTypeOf builds a chain of class types from a dotted name.
func ClassTypeOf(q QualifiedName) *ClassType {
	var t *ClassType
	for _, n := range q.Names() {
		t = &ClassType{Outer: t, Name: n}
	}
	return t
}

func (*ClassType) Kind() Kind { return KindClassType }

func (t *ClassType) Code() string {
	s := ""
	if t.Outer != nil {
		s = t.Outer.Code() + "."
	}
	s += t.annotationString(false) + t.Name.Code()
	if t.Diamond {
		return s + "<>"
	}
	return s + t.typeArgumentString()
}

// QualifiedName returns the dotted name of the chain without type
// arguments.
func (t *ClassType) QualifiedName() QualifiedName {
	if t.Outer == nil {
		return t.Name.Qualify()
	}
	return t.Outer.QualifiedName().Append(t.Name)
}

func (t *ClassType) Clone() Node {
	return &ClassType{
		annotated:      t.cloneAnnotated(),
		typeArgumented: t.cloneTypeArgumented(),
		Outer:          cloneOf(t.Outer),
		Name:           t.Name,
		Diamond:        t.Diamond,
	}
}

func (t *ClassType) walkChildren(w *walker) error {
	if err := walkNode(w, t, &t.Outer, true); err != nil {
		return err
	}
	if err := walkList(w, t, &t.annotations); err != nil {
		return err
	}
	if err := walkNode(w, t, &t.Name, false); err != nil {
		return err
	}
	return walkList(w, t, &t.typeArgs)
}

type ArrayType struct {
	typeMarker
	dimensioned
	Elem Type
}

// NewArrayType returns an array of elem with the given dimensions, or a
// single dimension if none are given.
func NewArrayType(elem Type, dims ...*Dimension) *ArrayType {
	requireChild(KindArrayType, "Elem", elem == nil)
	if len(dims) == 0 {
		dims = []*Dimension{{}}
	}
	t := &ArrayType{Elem: elem}
	t.dims = copyList(dims)
	return t
}

func (*ArrayType) Kind() Kind { return KindArrayType }

func (t *ArrayType) Code() string {
	return t.Elem.Code() + t.dimString()
}

func (t *ArrayType) Clone() Node {
	return &ArrayType{dimensioned: t.cloneDimensioned(), Elem: cloneOf(t.Elem)}
}

func (t *ArrayType) walkChildren(w *walker) error {
	if err := walkNode(w, t, &t.Elem, false); err != nil {
		return err
	}
	return walkList(w, t, &t.dims)
}

// Dimension is one pair of brackets, optionally annotated.
type Dimension struct {
	annotated
}

func (*Dimension) Kind() Kind { return KindDimension }

func (d *Dimension) Code() string {
	if len(d.annotations) == 0 {
		return "[]"
	}
	return " " + d.annotationString(false) + "[]"
}

func (d *Dimension) Clone() Node {
	return &Dimension{annotated: d.cloneAnnotated()}
}

func (d *Dimension) walkChildren(w *walker) error {
	return walkList(w, d, &d.annotations)
}

// WildcardType is ?, ? extends Bound or ? super Bound.
type WildcardType struct {
	annotated
	Bound Type
	Super bool
}

func (*WildcardType) Kind() Kind        { return KindWildcardType }
func (*WildcardType) typeArgumentNode() {}

func (t *WildcardType) Code() string {
	s := t.annotationString(false) + "?"
	switch {
	case t.Bound == nil:
		return s
	case t.Super:
		return s + " super " + t.Bound.Code()
	}
	return s + " extends " + t.Bound.Code()
}

func (t *WildcardType) Clone() Node {
	return &WildcardType{annotated: t.cloneAnnotated(), Bound: cloneOf(t.Bound), Super: t.Super}
}

func (t *WildcardType) walkChildren(w *walker) error {
	if err := walkList(w, t, &t.annotations); err != nil {
		return err
	}
	return walkNode(w, t, &t.Bound, true)
}

type TypeParameter struct {
	annotated
	Name   Name
	Bounds []Type
}

func NewTypeParameter(name Name, bounds ...Type) *TypeParameter {
	return &TypeParameter{Name: name, Bounds: copyList(bounds)}
}

func (*TypeParameter) Kind() Kind { return KindTypeParameter }

func (p *TypeParameter) Code() string {
	s := p.annotationString(false) + p.Name.Code()
	if len(p.Bounds) > 0 {
		s += " extends " + joinCode(p.Bounds, " & ")
	}
	return s
}

func (p *TypeParameter) Clone() Node {
	return &TypeParameter{annotated: p.cloneAnnotated(), Name: p.Name, Bounds: cloneList(p.Bounds)}
}

func (p *TypeParameter) walkChildren(w *walker) error {
	if err := walkList(w, p, &p.annotations); err != nil {
		return err
	}
	if err := walkNode(w, p, &p.Name, false); err != nil {
		return err
	}
	return walkList(w, p, &p.Bounds)
}

// TypeUnion is the alternative list of a multi-catch clause.
type TypeUnion struct {
	typeMarker
	types []Type
}

// NewTypeUnion requires at least two types. Nested unions are flattened.
func NewTypeUnion(types ...Type) (*TypeUnion, error) {
	u := &TypeUnion{}
	if err := u.SetTypes(types); err != nil {
		return nil, err
	}
	return u, nil
}

func (*TypeUnion) Kind() Kind      { return KindTypeUnion }
func (u *TypeUnion) Types() []Type { return copyList(u.types) }
func (u *TypeUnion) Code() string  { return joinCode(u.types, " | ") }

func (u *TypeUnion) SetTypes(types []Type) error {
	flat := flattenTypes(types, func(t Type) ([]Type, bool) {
		if inner, ok := t.(*TypeUnion); ok {
			return inner.types, true
		}
		return nil, false
	})
	if len(flat) < 2 {
		return fmt.Errorf("%w: union of %d", ErrTooFewTypes, len(flat))
	}
	u.types = flat
	return nil
}

func (u *TypeUnion) Clone() Node {
	return &TypeUnion{types: cloneList(u.types)}
}

func (u *TypeUnion) walkChildren(w *walker) error {
	if err := walkListMin(w, u, &u.types, 2); err != nil {
		return err
	}
	return u.SetTypes(u.types)
}

// TypeIntersection is a bound or cast target such as A & B.
type TypeIntersection struct {
	typeMarker
	types []Type
}

// NewTypeIntersection requires at least two types. Nested intersections are
// flattened.
func NewTypeIntersection(types ...Type) (*TypeIntersection, error) {
	x := &TypeIntersection{}
	if err := x.SetTypes(types); err != nil {
		return nil, err
	}
	return x, nil
}

func (*TypeIntersection) Kind() Kind      { return KindTypeIntersection }
func (x *TypeIntersection) Types() []Type { return copyList(x.types) }
func (x *TypeIntersection) Code() string  { return joinCode(x.types, " & ") }

func (x *TypeIntersection) SetTypes(types []Type) error {
	flat := flattenTypes(types, func(t Type) ([]Type, bool) {
		if inner, ok := t.(*TypeIntersection); ok {
			return inner.types, true
		}
		return nil, false
	})
	if len(flat) < 2 {
		return fmt.Errorf("%w: intersection of %d", ErrTooFewTypes, len(flat))
	}
	x.types = flat
	return nil
}

func (x *TypeIntersection) Clone() Node {
	return &TypeIntersection{types: cloneList(x.types)}
}

func (x *TypeIntersection) walkChildren(w *walker) error {
	if err := walkListMin(w, x, &x.types, 2); err != nil {
		return err
	}
	return x.SetTypes(x.types)
}

func flattenTypes(types []Type, inner func(Type) ([]Type, bool)) []Type {
	var flat []Type
	for _, t := range types {
		if t == nil {
			continue
		}
		if nested, ok := inner(t); ok {
			flat = append(flat, flattenTypes(nested, inner)...)
			continue
		}
		flat = append(flat, t)
	}
	return flat
}
