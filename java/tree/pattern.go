package tree

// TypePattern binds a name, as in obj instanceof final String s.
type TypePattern struct {
	patternMarker
	annotated
	modified
	Type Type
	Name Name
}

func NewTypePattern(t Type, name Name) *TypePattern {
	requireChild(KindTypePattern, "Type", t == nil)
	return &TypePattern{Type: t, Name: name}
}

func (*TypePattern) Kind() Kind { return KindTypePattern }

func (p *TypePattern) Code() string {
	return p.annotationString(false) + p.modifierString() + p.Type.Code() + " " + p.Name.Code()
}

func (p *TypePattern) Clone() Node {
	return &TypePattern{
		annotated: p.cloneAnnotated(),
		modified:  p.cloneModified(),
		Type:      cloneOf(p.Type),
		Name:      p.Name,
	}
}

func (p *TypePattern) walkChildren(w *walker) error {
	if err := walkList(w, p, &p.annotations); err != nil {
		return err
	}
	if err := walkList(w, p, &p.modifiers); err != nil {
		return err
	}
	if err := walkNode(w, p, &p.Type, false); err != nil {
		return err
	}
	return walkNode(w, p, &p.Name, false)
}

// RecordPattern deconstructs a record, as in Point(int x, var y).
type RecordPattern struct {
	patternMarker
	Type     Type
	Patterns []Pattern
}

func NewRecordPattern(t Type, patterns ...Pattern) *RecordPattern {
	requireChild(KindRecordPattern, "Type", t == nil)
	return &RecordPattern{Type: t, Patterns: copyList(patterns)}
}

func (*RecordPattern) Kind() Kind { return KindRecordPattern }

func (p *RecordPattern) Code() string {
	return p.Type.Code() + "(" + joinCode(p.Patterns, ", ") + ")"
}

func (p *RecordPattern) Clone() Node {
	return &RecordPattern{Type: cloneOf(p.Type), Patterns: cloneList(p.Patterns)}
}

func (p *RecordPattern) walkChildren(w *walker) error {
	if err := walkNode(w, p, &p.Type, false); err != nil {
		return err
	}
	return walkList(w, p, &p.Patterns)
}
