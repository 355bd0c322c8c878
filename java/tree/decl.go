package tree

import "strings"

type CompilationUnit struct {
	Package *PackageDecl
	Imports []*ImportDecl
	Types   []TypeDecl
}

func (*CompilationUnit) Kind() Kind { return KindCompilationUnit }

func (u *CompilationUnit) Code() string {
	var sections []string
	if u.Package != nil {
		sections = append(sections, u.Package.Code())
	}
	if len(u.Imports) > 0 {
		sections = append(sections, joinCode(u.Imports, "\n"))
	}
	if len(u.Types) > 0 {
		sections = append(sections, joinCode(u.Types, "\n\n"))
	}
	return strings.Join(sections, "\n\n")
}

func (u *CompilationUnit) Clone() Node {
	return &CompilationUnit{
		Package: cloneOf(u.Package),
		Imports: cloneList(u.Imports),
		Types:   cloneList(u.Types),
	}
}

func (u *CompilationUnit) walkChildren(w *walker) error {
	if err := walkNode(w, u, &u.Package, true); err != nil {
		return err
	}
	if err := walkList(w, u, &u.Imports); err != nil {
		return err
	}
	return walkList(w, u, &u.Types)
}

// ModularCompilationUnit is a module-info source file.
type ModularCompilationUnit struct {
	Imports []*ImportDecl
	Module  *ModuleDecl
}

func (*ModularCompilationUnit) Kind() Kind { return KindModularCompilationUnit }

func (u *ModularCompilationUnit) Code() string {
	if len(u.Imports) == 0 {
		return u.Module.Code()
	}
	return joinCode(u.Imports, "\n") + "\n\n" + u.Module.Code()
}

func (u *ModularCompilationUnit) Clone() Node {
	return &ModularCompilationUnit{Imports: cloneList(u.Imports), Module: cloneOf(u.Module)}
}

func (u *ModularCompilationUnit) walkChildren(w *walker) error {
	if err := walkList(w, u, &u.Imports); err != nil {
		return err
	}
	return walkNode(w, u, &u.Module, false)
}

type PackageDecl struct {
	documented
	annotated
	Name QualifiedName
}

func (*PackageDecl) Kind() Kind { return KindPackageDecl }

func (p *PackageDecl) Code() string {
	return p.docString() + p.annotationString(true) + "package " + p.Name.Code() + ";"
}

func (p *PackageDecl) Clone() Node {
	return &PackageDecl{documented: p.documented, annotated: p.cloneAnnotated(), Name: p.Name}
}

func (p *PackageDecl) walkChildren(w *walker) error {
	if err := walkList(w, p, &p.annotations); err != nil {
		return err
	}
	return walkNode(w, p, &p.Name, false)
}

// ImportDecl is import [static] Name[.*];.
type ImportDecl struct {
	Name     QualifiedName
	Static   bool
	OnDemand bool
}

func (*ImportDecl) Kind() Kind { return KindImportDecl }

func (i *ImportDecl) Code() string {
	s := "import "
	if i.Static {
		s += "static "
	}
	s += i.Name.Code()
	if i.OnDemand {
		s += ".*"
	}
	return s + ";"
}

func (i *ImportDecl) Clone() Node {
	c := *i
	return &c
}

func (i *ImportDecl) walkChildren(w *walker) error {
	return walkNode(w, i, &i.Name, false)
}

// typeDeclHeader holds what every type declaration starts with.
type typeDeclHeader struct {
	declMarker
	documented
	annotated
	modified
	Name Name
}

func (h *typeDeclHeader) DeclName() Name { return h.Name }

func (h *typeDeclHeader) prefix(keyword string) string {
	return h.docString() + h.annotationString(true) + h.modifierString() + keyword + " " + h.Name.Code()
}

func (h *typeDeclHeader) cloneHeader() typeDeclHeader {
	return typeDeclHeader{
		documented: h.documented,
		annotated:  h.cloneAnnotated(),
		modified:   h.cloneModified(),
		Name:       h.Name,
	}
}

func (h *typeDeclHeader) walkHeader(w *walker, parent Node) error {
	if err := walkList(w, parent, &h.annotations); err != nil {
		return err
	}
	if err := walkList(w, parent, &h.modifiers); err != nil {
		return err
	}
	return walkNode(w, parent, &h.Name, false)
}

func typeListClause(keyword string, types []Type) string {
	if len(types) == 0 {
		return ""
	}
	return " " + keyword + " " + joinCode(types, ", ")
}

type ClassDecl struct {
	typeDeclHeader
	typeParameterized
	Extends    Type
	Implements []Type
	Permits    []Type
	Body       *ClassBody
}

func NewClassDecl(name Name, members ...Member) *ClassDecl {
	d := &ClassDecl{Body: &ClassBody{Members: copyList(members)}}
	d.Name = name
	return d
}

func (*ClassDecl) Kind() Kind { return KindClassDecl }

func (d *ClassDecl) Code() string {
	s := d.prefix("class") + d.typeParameterString()
	if d.Extends != nil {
		s += " extends " + d.Extends.Code()
	}
	s += typeListClause("implements", d.Implements) + typeListClause("permits", d.Permits)
	return s + " " + d.Body.Code()
}

func (d *ClassDecl) Clone() Node {
	return &ClassDecl{
		typeDeclHeader:    d.cloneHeader(),
		typeParameterized: d.cloneTypeParameterized(),
		Extends:           cloneOf(d.Extends),
		Implements:        cloneList(d.Implements),
		Permits:           cloneList(d.Permits),
		Body:              cloneOf(d.Body),
	}
}

func (d *ClassDecl) walkChildren(w *walker) error {
	if err := d.walkHeader(w, d); err != nil {
		return err
	}
	if err := walkList(w, d, &d.typeParams); err != nil {
		return err
	}
	if err := walkNode(w, d, &d.Extends, true); err != nil {
		return err
	}
	if err := walkList(w, d, &d.Implements); err != nil {
		return err
	}
	if err := walkList(w, d, &d.Permits); err != nil {
		return err
	}
	return walkNode(w, d, &d.Body, false)
}

type InterfaceDecl struct {
	typeDeclHeader
	typeParameterized
	Extends []Type
	Permits []Type
	Body    *ClassBody
}

func (*InterfaceDecl) Kind() Kind { return KindInterfaceDecl }

func (d *InterfaceDecl) Code() string {
	s := d.prefix("interface") + d.typeParameterString()
	s += typeListClause("extends", d.Extends) + typeListClause("permits", d.Permits)
	return s + " " + d.Body.Code()
}

func (d *InterfaceDecl) Clone() Node {
	return &InterfaceDecl{
		typeDeclHeader:    d.cloneHeader(),
		typeParameterized: d.cloneTypeParameterized(),
		Extends:           cloneList(d.Extends),
		Permits:           cloneList(d.Permits),
		Body:              cloneOf(d.Body),
	}
}

func (d *InterfaceDecl) walkChildren(w *walker) error {
	if err := d.walkHeader(w, d); err != nil {
		return err
	}
	if err := walkList(w, d, &d.typeParams); err != nil {
		return err
	}
	if err := walkList(w, d, &d.Extends); err != nil {
		return err
	}
	if err := walkList(w, d, &d.Permits); err != nil {
		return err
	}
	return walkNode(w, d, &d.Body, false)
}

// EnumDecl lists its constants before the members in Body.
type EnumDecl struct {
	typeDeclHeader
	Implements []Type
	Constants  []*EnumConstant
	Body       *ClassBody
}

func (*EnumDecl) Kind() Kind { return KindEnumDecl }

func (d *EnumDecl) Code() string {
	s := d.prefix("enum") + typeListClause("implements", d.Implements) + " "
	var members []Member
	if d.Body != nil {
		members = d.Body.Members
	}
	if len(d.Constants) == 0 && len(members) == 0 {
		return s + "{}"
	}
	inner := joinCode(d.Constants, ",\n")
	if len(members) > 0 {
		inner += ";\n\n" + memberLines(members)
	}
	return s + "{\n" + indent(inner) + "\n}"
}

func (d *EnumDecl) Clone() Node {
	return &EnumDecl{
		typeDeclHeader: d.cloneHeader(),
		Implements:     cloneList(d.Implements),
		Constants:      cloneList(d.Constants),
		Body:           cloneOf(d.Body),
	}
}

func (d *EnumDecl) walkChildren(w *walker) error {
	if err := d.walkHeader(w, d); err != nil {
		return err
	}
	if err := walkList(w, d, &d.Implements); err != nil {
		return err
	}
	if err := walkList(w, d, &d.Constants); err != nil {
		return err
	}
	return walkNode(w, d, &d.Body, false)
}

// EnumConstant is Name[(Args)] [Body].
type EnumConstant struct {
	documented
	annotated
	Name Name
	Args []Expression
	Body *ClassBody
}

func (*EnumConstant) Kind() Kind { return KindEnumConstant }

func (c *EnumConstant) Code() string {
	s := c.docString() + c.annotationString(false) + c.Name.Code()
	if len(c.Args) > 0 {
		s += argsCode(c.Args)
	}
	if c.Body != nil {
		s += " " + c.Body.Code()
	}
	return s
}

func (c *EnumConstant) Clone() Node {
	return &EnumConstant{
		documented: c.documented,
		annotated:  c.cloneAnnotated(),
		Name:       c.Name,
		Args:       cloneList(c.Args),
		Body:       cloneOf(c.Body),
	}
}

func (c *EnumConstant) walkChildren(w *walker) error {
	if err := walkList(w, c, &c.annotations); err != nil {
		return err
	}
	if err := walkNode(w, c, &c.Name, false); err != nil {
		return err
	}
	if err := walkList(w, c, &c.Args); err != nil {
		return err
	}
	return walkNode(w, c, &c.Body, true)
}

type RecordDecl struct {
	typeDeclHeader
	typeParameterized
	Components []*FormalParameter
	Implements []Type
	Body       *ClassBody
}

func (*RecordDecl) Kind() Kind { return KindRecordDecl }

func (d *RecordDecl) Code() string {
	s := d.prefix("record") + d.typeParameterString()
	s += "(" + joinCode(d.Components, ", ") + ")"
	s += typeListClause("implements", d.Implements)
	return s + " " + d.Body.Code()
}

func (d *RecordDecl) Clone() Node {
	return &RecordDecl{
		typeDeclHeader:    d.cloneHeader(),
		typeParameterized: d.cloneTypeParameterized(),
		Components:        cloneList(d.Components),
		Implements:        cloneList(d.Implements),
		Body:              cloneOf(d.Body),
	}
}

func (d *RecordDecl) walkChildren(w *walker) error {
	if err := d.walkHeader(w, d); err != nil {
		return err
	}
	if err := walkList(w, d, &d.typeParams); err != nil {
		return err
	}
	if err := walkList(w, d, &d.Components); err != nil {
		return err
	}
	if err := walkList(w, d, &d.Implements); err != nil {
		return err
	}
	return walkNode(w, d, &d.Body, false)
}

// AnnotationDecl is @interface Name Body.
type AnnotationDecl struct {
	typeDeclHeader
	Body *ClassBody
}

func (*AnnotationDecl) Kind() Kind { return KindAnnotationDecl }

func (d *AnnotationDecl) Code() string {
	return d.prefix("@interface") + " " + d.Body.Code()
}

func (d *AnnotationDecl) Clone() Node {
	return &AnnotationDecl{typeDeclHeader: d.cloneHeader(), Body: cloneOf(d.Body)}
}

func (d *AnnotationDecl) walkChildren(w *walker) error {
	if err := d.walkHeader(w, d); err != nil {
		return err
	}
	return walkNode(w, d, &d.Body, false)
}

type ClassBody struct {
	Members []Member
}

func (*ClassBody) Kind() Kind     { return KindClassBody }
func (b *ClassBody) Code() string { return membersCode(b.Members) }
func (b *ClassBody) Clone() Node  { return &ClassBody{Members: cloneList(b.Members)} }

func (b *ClassBody) walkChildren(w *walker) error {
	return walkList(w, b, &b.Members)
}
