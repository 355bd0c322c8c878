package tree

import (
	"strings"
)

// Node is implemented by every syntax tree element.
type Node interface {
	Kind() Kind
	// Code renders canonical source text for the node.
	Code() string
	// Clone returns a deep copy whose mutable fields are independent of
	// the original. Immutable values (Name, QualifiedName, Modifier) are
	// shared.
	Clone() Node
}

type Expression interface {
	Node
	Precedence() Precedence
	expressionNode()
}

type Statement interface {
	Node
	statementNode()
}

type Type interface {
	TypeArgument
	typeNode()
}

// TypeArgument is a type or a wildcard.
type TypeArgument interface {
	Node
	typeArgumentNode()
}

type Member interface {
	Node
	memberNode()
}

// TypeDecl is a class, interface, enum, record or annotation declaration.
type TypeDecl interface {
	Member
	Documented
	Annotated
	Modified
	DeclName() Name
	typeDeclNode()
}

type Directive interface {
	Node
	directiveNode()
}

type Pattern interface {
	Node
	patternNode()
}

// CaseLabel is an expression or a pattern used in a switch label.
type CaseLabel interface {
	Node
	caseLabelNode()
}

// AnnotationValue is an expression, an annotation or an annotation array.
type AnnotationValue interface {
	Node
	annotationValueNode()
}

type exprMarker struct{}

func (exprMarker) expressionNode()      {}
func (exprMarker) caseLabelNode()       {}
func (exprMarker) annotationValueNode() {}

type stmtMarker struct{}

func (stmtMarker) statementNode() {}

type typeMarker struct{}

func (typeMarker) typeNode()         {}
func (typeMarker) typeArgumentNode() {}

type memberMarker struct{}

func (memberMarker) memberNode() {}

type declMarker struct{}

func (declMarker) memberNode()   {}
func (declMarker) typeDeclNode() {}

type directiveMarker struct{}

func (directiveMarker) directiveNode() {}

type patternMarker struct{}

func (patternMarker) patternNode()   {}
func (patternMarker) caseLabelNode() {}

// Annotated nodes carry a list of annotations.
type Annotated interface {
	Node
	Annotations() []*Annotation
	SetAnnotations(list []*Annotation)
}

// Modified nodes carry a list of modifiers.
type Modified interface {
	Node
	Modifiers() []Modifier
	SetModifiers(list []Modifier)
	HasModifier(m Modifier) bool
}

// Documented nodes may carry a doc comment.
type Documented interface {
	Node
	DocComment() string
	SetDocComment(doc string) error
}

// Dimensioned nodes carry trailing array dimensions.
type Dimensioned interface {
	Node
	Dimensions() []*Dimension
	SetDimensions(dims []*Dimension)
}

type TypeParameterHolder interface {
	Node
	TypeParameters() []*TypeParameter
	SetTypeParameters(params []*TypeParameter)
}

type TypeArgumentHolder interface {
	Node
	TypeArguments() []TypeArgument
	SetTypeArguments(args []TypeArgument)
}

type annotated struct {
	annotations []*Annotation
}

func (a *annotated) Annotations() []*Annotation {
	return copyList(a.annotations)
}

func (a *annotated) SetAnnotations(list []*Annotation) {
	a.annotations = copyList(list)
}

func (a *annotated) AddAnnotation(an *Annotation) {
	a.annotations = append(a.annotations, an)
}

func (a *annotated) cloneAnnotated() annotated {
	return annotated{annotations: cloneList(a.annotations)}
}

// annotationString renders the annotations followed by a separator, either
// one per line or space separated.
func (a *annotated) annotationString(newlines bool) string {
	if len(a.annotations) == 0 {
		return ""
	}
	sep := " "
	if newlines {
		sep = "\n"
	}
	var b strings.Builder
	for _, an := range a.annotations {
		b.WriteString(an.Code())
		b.WriteString(sep)
	}
	return b.String()
}

type modified struct {
	modifiers []Modifier
}

func (m *modified) Modifiers() []Modifier {
	return copyList(m.modifiers)
}

func (m *modified) SetModifiers(list []Modifier) {
	m.modifiers = copyList(list)
}

func (m *modified) AddModifier(mod Modifier) {
	m.modifiers = append(m.modifiers, mod)
}

func (m *modified) HasModifier(mod Modifier) bool {
	for _, x := range m.modifiers {
		if x == mod {
			return true
		}
	}
	return false
}

func (m *modified) cloneModified() modified {
	return modified{modifiers: copyList(m.modifiers)}
}

// modifierString joins the modifiers, each followed by a space.
func (m *modified) modifierString() string {
	var b strings.Builder
	for _, mod := range m.modifiers {
		b.WriteString(mod.Code())
		b.WriteByte(' ')
	}
	return b.String()
}

type documented struct {
	doc string
}

func (d *documented) DocComment() string {
	return d.doc
}

// SetDocComment sets the text between "/**" and "*/". An empty string
// removes the comment.
func (d *documented) SetDocComment(doc string) error {
	if strings.Contains(doc, "*/") {
		return ErrInvalidDocComment
	}
	d.doc = doc
	return nil
}

func (d *documented) docString() string {
	if d.doc == "" {
		return ""
	}
	return "/**" + d.doc + "*/\n"
}

// undocumented implements Documented for kinds that never carry a doc
// comment.
type undocumented struct{}

func (undocumented) DocComment() string { return "" }

func (undocumented) SetDocComment(doc string) error {
	if doc == "" {
		return nil
	}
	return ErrDocNotAllowed
}

type dimensioned struct {
	dims []*Dimension
}

func (d *dimensioned) Dimensions() []*Dimension {
	return copyList(d.dims)
}

func (d *dimensioned) SetDimensions(dims []*Dimension) {
	d.dims = copyList(dims)
}

func (d *dimensioned) cloneDimensioned() dimensioned {
	return dimensioned{dims: cloneList(d.dims)}
}

func (d *dimensioned) dimString() string {
	var b strings.Builder
	for _, dim := range d.dims {
		b.WriteString(dim.Code())
	}
	return b.String()
}

type typeParameterized struct {
	typeParams []*TypeParameter
}

func (t *typeParameterized) TypeParameters() []*TypeParameter {
	return copyList(t.typeParams)
}

func (t *typeParameterized) SetTypeParameters(params []*TypeParameter) {
	t.typeParams = copyList(params)
}

func (t *typeParameterized) cloneTypeParameterized() typeParameterized {
	return typeParameterized{typeParams: cloneList(t.typeParams)}
}

func (t *typeParameterized) typeParameterString() string {
	if len(t.typeParams) == 0 {
		return ""
	}
	return "<" + joinCode(t.typeParams, ", ") + ">"
}

type typeArgumented struct {
	typeArgs []TypeArgument
}

func (t *typeArgumented) TypeArguments() []TypeArgument {
	return copyList(t.typeArgs)
}

func (t *typeArgumented) SetTypeArguments(args []TypeArgument) {
	t.typeArgs = copyList(args)
}

func (t *typeArgumented) cloneTypeArgumented() typeArgumented {
	return typeArgumented{typeArgs: cloneList(t.typeArgs)}
}

func (t *typeArgumented) typeArgumentString() string {
	if len(t.typeArgs) == 0 {
		return ""
	}
	return "<" + joinCode(t.typeArgs, ", ") + ">"
}
