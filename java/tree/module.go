package tree

// ModuleDecl is [open] module Name { Directives }.
type ModuleDecl struct {
	documented
	annotated
	Open       bool
	Name       QualifiedName
	Directives []Directive
}

func (*ModuleDecl) Kind() Kind { return KindModuleDecl }

func (m *ModuleDecl) Code() string {
	s := m.docString() + m.annotationString(true)
	if m.Open {
		s += "open "
	}
	s += "module " + m.Name.Code() + " "
	if len(m.Directives) == 0 {
		return s + "{}"
	}
	return s + "{\n" + indent(joinCode(m.Directives, "\n")) + "\n}"
}

func (m *ModuleDecl) Clone() Node {
	return &ModuleDecl{
		documented: m.documented,
		annotated:  m.cloneAnnotated(),
		Open:       m.Open,
		Name:       m.Name,
		Directives: cloneList(m.Directives),
	}
}

func (m *ModuleDecl) walkChildren(w *walker) error {
	if err := walkList(w, m, &m.annotations); err != nil {
		return err
	}
	if err := walkNode(w, m, &m.Name, false); err != nil {
		return err
	}
	return walkList(w, m, &m.Directives)
}

// RequiresDirective accepts the transitive and static modifiers.
type RequiresDirective struct {
	directiveMarker
	modified
	Module QualifiedName
}

func (*RequiresDirective) Kind() Kind { return KindRequiresDirective }

func (d *RequiresDirective) Code() string {
	return "requires " + d.modifierString() + d.Module.Code() + ";"
}

func (d *RequiresDirective) Clone() Node {
	return &RequiresDirective{modified: d.cloneModified(), Module: d.Module}
}

func (d *RequiresDirective) walkChildren(w *walker) error {
	if err := walkList(w, d, &d.modifiers); err != nil {
		return err
	}
	return walkNode(w, d, &d.Module, false)
}

// ExportsDirective is exports Package [to Modules];.
type ExportsDirective struct {
	directiveMarker
	Package QualifiedName
	To      []QualifiedName
}

func (*ExportsDirective) Kind() Kind { return KindExportsDirective }

func (d *ExportsDirective) Code() string {
	return qualifiedDirectiveCode("exports", d.Package, "to", d.To)
}

func (d *ExportsDirective) Clone() Node {
	return &ExportsDirective{Package: d.Package, To: copyList(d.To)}
}

func (d *ExportsDirective) walkChildren(w *walker) error {
	if err := walkNode(w, d, &d.Package, false); err != nil {
		return err
	}
	return walkList(w, d, &d.To)
}

// OpensDirective is opens Package [to Modules];.
type OpensDirective struct {
	directiveMarker
	Package QualifiedName
	To      []QualifiedName
}

func (*OpensDirective) Kind() Kind { return KindOpensDirective }

func (d *OpensDirective) Code() string {
	return qualifiedDirectiveCode("opens", d.Package, "to", d.To)
}

func (d *OpensDirective) Clone() Node {
	return &OpensDirective{Package: d.Package, To: copyList(d.To)}
}

func (d *OpensDirective) walkChildren(w *walker) error {
	if err := walkNode(w, d, &d.Package, false); err != nil {
		return err
	}
	return walkList(w, d, &d.To)
}

type UsesDirective struct {
	directiveMarker
	Service QualifiedName
}

func (*UsesDirective) Kind() Kind     { return KindUsesDirective }
func (d *UsesDirective) Code() string { return "uses " + d.Service.Code() + ";" }
func (d *UsesDirective) Clone() Node  { return &UsesDirective{Service: d.Service} }

func (d *UsesDirective) walkChildren(w *walker) error {
	return walkNode(w, d, &d.Service, false)
}

// ProvidesDirective is provides Service with Implementations;.
type ProvidesDirective struct {
	directiveMarker
	Service QualifiedName
	With    []QualifiedName
}

func (*ProvidesDirective) Kind() Kind { return KindProvidesDirective }

func (d *ProvidesDirective) Code() string {
	return qualifiedDirectiveCode("provides", d.Service, "with", d.With)
}

func (d *ProvidesDirective) Clone() Node {
	return &ProvidesDirective{Service: d.Service, With: copyList(d.With)}
}

func (d *ProvidesDirective) walkChildren(w *walker) error {
	if err := walkNode(w, d, &d.Service, false); err != nil {
		return err
	}
	return walkList(w, d, &d.With)
}

func qualifiedDirectiveCode(keyword string, subject QualifiedName, clause string, targets []QualifiedName) string {
	s := keyword + " " + subject.Code()
	if len(targets) > 0 {
		s += " " + clause + " " + nameListCode(targets)
	}
	return s + ";"
}
