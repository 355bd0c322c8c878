package tree

import (
	"fmt"
	"slices"
	"strings"
)

// FieldDecl declares one or more fields. It always has at least one
// declarator.
type FieldDecl struct {
	memberMarker
	documented
	annotated
	modified
	Type        Type
	declarators []*VariableDeclarator
}

func NewFieldDecl(t Type, decls ...*VariableDeclarator) (*FieldDecl, error) {
	if t == nil {
		return nil, fmt.Errorf("%w: %v.Type", ErrMissingChild, KindFieldDecl)
	}
	f := &FieldDecl{Type: t}
	if err := f.SetDeclarators(decls); err != nil {
		return nil, err
	}
	return f, nil
}

func (*FieldDecl) Kind() Kind                            { return KindFieldDecl }
func (f *FieldDecl) Declarators() []*VariableDeclarator { return copyList(f.declarators) }

func (f *FieldDecl) SetDeclarators(decls []*VariableDeclarator) error {
	if len(decls) == 0 {
		return ErrNoDeclarators
	}
	if slices.Contains(decls, nil) {
		return fmt.Errorf("%w: %v.Declarators", ErrMissingChild, KindFieldDecl)
	}
	f.declarators = copyList(decls)
	return nil
}

func (f *FieldDecl) Code() string {
	return f.docString() + f.annotationString(true) + f.modifierString() +
		f.Type.Code() + " " + joinCode(f.declarators, ", ") + ";"
}

func (f *FieldDecl) Clone() Node {
	return &FieldDecl{
		documented:  f.documented,
		annotated:   f.cloneAnnotated(),
		modified:    f.cloneModified(),
		Type:        cloneOf(f.Type),
		declarators: cloneList(f.declarators),
	}
}

func (f *FieldDecl) walkChildren(w *walker) error {
	if err := walkList(w, f, &f.annotations); err != nil {
		return err
	}
	if err := walkList(w, f, &f.modifiers); err != nil {
		return err
	}
	if err := walkNode(w, f, &f.Type, false); err != nil {
		return err
	}
	return walkListMin(w, f, &f.declarators, 1)
}

// callable holds what methods and constructors share.
type callable struct {
	memberMarker
	documented
	annotated
	modified
	typeParameterized
	Name     Name
	Receiver *ThisParameter
	Params   []*FormalParameter
	Throws   []Type
}

func (c *callable) paramsCode() string {
	var parts []string
	if c.Receiver != nil {
		parts = append(parts, c.Receiver.Code())
	}
	for _, p := range c.Params {
		parts = append(parts, p.Code())
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

func (c *callable) head() string {
	s := c.docString() + c.annotationString(true) + c.modifierString()
	if tp := c.typeParameterString(); tp != "" {
		s += tp + " "
	}
	return s
}

func (c *callable) cloneCallable() callable {
	return callable{
		documented:        c.documented,
		annotated:         c.cloneAnnotated(),
		modified:          c.cloneModified(),
		typeParameterized: c.cloneTypeParameterized(),
		Name:              c.Name,
		Receiver:          cloneOf(c.Receiver),
		Params:            cloneList(c.Params),
		Throws:            cloneList(c.Throws),
	}
}

func throwsCode(types []Type) string {
	if len(types) == 0 {
		return ""
	}
	return " throws " + joinCode(types, ", ")
}

func bodyCode(b *Block) string {
	if b == nil {
		return ";"
	}
	return " " + b.Code()
}

// MethodDecl has a nil Body when abstract or native.
type MethodDecl struct {
	callable
	ReturnType Type
	Body       *Block
}

func (*MethodDecl) Kind() Kind { return KindMethodDecl }

func (m *MethodDecl) Code() string {
	return m.head() + m.ReturnType.Code() + " " + m.Name.Code() + m.paramsCode() +
		throwsCode(m.Throws) + bodyCode(m.Body)
}

func (m *MethodDecl) Clone() Node {
	return &MethodDecl{callable: m.cloneCallable(), ReturnType: cloneOf(m.ReturnType), Body: cloneOf(m.Body)}
}

func (m *MethodDecl) walkChildren(w *walker) error {
	if err := walkList(w, m, &m.annotations); err != nil {
		return err
	}
	if err := walkList(w, m, &m.modifiers); err != nil {
		return err
	}
	if err := walkList(w, m, &m.typeParams); err != nil {
		return err
	}
	if err := walkNode(w, m, &m.ReturnType, false); err != nil {
		return err
	}
	if err := walkNode(w, m, &m.Name, false); err != nil {
		return err
	}
	if err := walkNode(w, m, &m.Receiver, true); err != nil {
		return err
	}
	if err := walkList(w, m, &m.Params); err != nil {
		return err
	}
	if err := walkList(w, m, &m.Throws); err != nil {
		return err
	}
	return walkNode(w, m, &m.Body, true)
}

// ConstructorDecl is a constructor. Compact is the parameterless record
// form.
type ConstructorDecl struct {
	callable
	Compact bool
	Body    *Block
}

func (*ConstructorDecl) Kind() Kind { return KindConstructorDecl }

func (c *ConstructorDecl) Code() string {
	s := c.head() + c.Name.Code()
	if !c.Compact {
		s += c.paramsCode()
	}
	return s + throwsCode(c.Throws) + " " + c.Body.Code()
}

func (c *ConstructorDecl) Clone() Node {
	return &ConstructorDecl{callable: c.cloneCallable(), Compact: c.Compact, Body: cloneOf(c.Body)}
}

func (c *ConstructorDecl) walkChildren(w *walker) error {
	if err := walkList(w, c, &c.annotations); err != nil {
		return err
	}
	if err := walkList(w, c, &c.modifiers); err != nil {
		return err
	}
	if err := walkList(w, c, &c.typeParams); err != nil {
		return err
	}
	if err := walkNode(w, c, &c.Name, false); err != nil {
		return err
	}
	if err := walkNode(w, c, &c.Receiver, true); err != nil {
		return err
	}
	if err := walkList(w, c, &c.Params); err != nil {
		return err
	}
	if err := walkList(w, c, &c.Throws); err != nil {
		return err
	}
	return walkNode(w, c, &c.Body, false)
}

// InitializerBlock is an instance or static initializer.
type InitializerBlock struct {
	memberMarker
	Static bool
	Body   *Block
}

func (*InitializerBlock) Kind() Kind { return KindInitializerBlock }

func (b *InitializerBlock) Code() string {
	if b.Static {
		return "static " + b.Body.Code()
	}
	return b.Body.Code()
}

func (b *InitializerBlock) Clone() Node {
	return &InitializerBlock{Static: b.Static, Body: cloneOf(b.Body)}
}

func (b *InitializerBlock) walkChildren(w *walker) error {
	return walkNode(w, b, &b.Body, false)
}

// AnnotationMethod is an element of an annotation declaration.
type AnnotationMethod struct {
	memberMarker
	documented
	annotated
	modified
	Type    Type
	Name    Name
	Default AnnotationValue
}

func (*AnnotationMethod) Kind() Kind { return KindAnnotationMethod }

func (m *AnnotationMethod) Code() string {
	s := m.docString() + m.annotationString(true) + m.modifierString() + m.Type.Code() + " " + m.Name.Code() + "()"
	if m.Default != nil {
		s += " default " + m.Default.Code()
	}
	return s + ";"
}

func (m *AnnotationMethod) Clone() Node {
	return &AnnotationMethod{
		documented: m.documented,
		annotated:  m.cloneAnnotated(),
		modified:   m.cloneModified(),
		Type:       cloneOf(m.Type),
		Name:       m.Name,
		Default:    cloneOf(m.Default),
	}
}

func (m *AnnotationMethod) walkChildren(w *walker) error {
	if err := walkList(w, m, &m.annotations); err != nil {
		return err
	}
	if err := walkList(w, m, &m.modifiers); err != nil {
		return err
	}
	if err := walkNode(w, m, &m.Type, false); err != nil {
		return err
	}
	if err := walkNode(w, m, &m.Name, false); err != nil {
		return err
	}
	return walkNode(w, m, &m.Default, true)
}

// FormalParameter is a method, lambda, catch, record or for-each
// parameter. It never carries a doc comment.
type FormalParameter struct {
	undocumented
	annotated
	modified
	dimensioned
	Type    Type
	Name    Name
	Varargs bool
}

func NewFormalParameter(t Type, name Name) *FormalParameter {
	requireChild(KindFormalParameter, "Type", t == nil)
	return &FormalParameter{Type: t, Name: name}
}

func (*FormalParameter) Kind() Kind { return KindFormalParameter }

func (p *FormalParameter) Code() string {
	s := p.annotationString(false) + p.modifierString() + p.Type.Code()
	if p.Varargs {
		s += "..."
	}
	return s + " " + p.Name.Code() + p.dimString()
}

func (p *FormalParameter) Clone() Node {
	return &FormalParameter{
		annotated:   p.cloneAnnotated(),
		modified:    p.cloneModified(),
		dimensioned: p.cloneDimensioned(),
		Type:        cloneOf(p.Type),
		Name:        p.Name,
		Varargs:     p.Varargs,
	}
}

func (p *FormalParameter) walkChildren(w *walker) error {
	if err := walkList(w, p, &p.annotations); err != nil {
		return err
	}
	if err := walkList(w, p, &p.modifiers); err != nil {
		return err
	}
	if err := walkNode(w, p, &p.Type, false); err != nil {
		return err
	}
	if err := walkNode(w, p, &p.Name, false); err != nil {
		return err
	}
	return walkList(w, p, &p.dims)
}

// ThisParameter is an explicit receiver parameter, Type [Qualifier.]this.
type ThisParameter struct {
	undocumented
	annotated
	Type      Type
	Qualifier QualifiedName
}

func (*ThisParameter) Kind() Kind { return KindThisParameter }

func (p *ThisParameter) Code() string {
	s := p.annotationString(false) + p.Type.Code() + " "
	if !p.Qualifier.IsZero() {
		s += p.Qualifier.Code() + "."
	}
	return s + "this"
}

func (p *ThisParameter) Clone() Node {
	return &ThisParameter{annotated: p.cloneAnnotated(), Type: cloneOf(p.Type), Qualifier: p.Qualifier}
}

func (p *ThisParameter) walkChildren(w *walker) error {
	if err := walkList(w, p, &p.annotations); err != nil {
		return err
	}
	if err := walkNode(w, p, &p.Type, false); err != nil {
		return err
	}
	return walkNode(w, p, &p.Qualifier, true)
}
