package tree

// Annotation is a marker (@A), single value (@A(v)) or normal (@A(k = v))
// annotation. When Value is set, Pairs is ignored.
type Annotation struct {
	Name  QualifiedName
	Value AnnotationValue
	Pairs []*AnnotationValuePair
}

func NewAnnotation(name QualifiedName) *Annotation {
	return &Annotation{Name: name}
}

func (*Annotation) Kind() Kind           { return KindAnnotation }
func (*Annotation) annotationValueNode() {}

func (a *Annotation) Code() string {
	switch {
	case a.Value != nil:
		return "@" + a.Name.Code() + "(" + a.Value.Code() + ")"
	case len(a.Pairs) > 0:
		return "@" + a.Name.Code() + "(" + joinCode(a.Pairs, ", ") + ")"
	}
	return "@" + a.Name.Code()
}

func (a *Annotation) Clone() Node {
	return &Annotation{Name: a.Name, Value: cloneOf(a.Value), Pairs: cloneList(a.Pairs)}
}

func (a *Annotation) walkChildren(w *walker) error {
	if err := walkNode(w, a, &a.Name, false); err != nil {
		return err
	}
	if err := walkNode(w, a, &a.Value, true); err != nil {
		return err
	}
	return walkList(w, a, &a.Pairs)
}

type AnnotationValuePair struct {
	Name  Name
	Value AnnotationValue
}

func (*AnnotationValuePair) Kind() Kind { return KindAnnotationValuePair }

func (p *AnnotationValuePair) Code() string {
	return p.Name.Code() + " = " + p.Value.Code()
}

func (p *AnnotationValuePair) Clone() Node {
	return &AnnotationValuePair{Name: p.Name, Value: cloneOf(p.Value)}
}

func (p *AnnotationValuePair) walkChildren(w *walker) error {
	if err := walkNode(w, p, &p.Name, false); err != nil {
		return err
	}
	return walkNode(w, p, &p.Value, false)
}

// AnnotationArray is an element value array such as {"a", "b"}.
type AnnotationArray struct {
	Values []AnnotationValue
}

func (*AnnotationArray) Kind() Kind           { return KindAnnotationArray }
func (*AnnotationArray) annotationValueNode() {}

func (a *AnnotationArray) Code() string {
	return "{" + joinCode(a.Values, ", ") + "}"
}

func (a *AnnotationArray) Clone() Node {
	return &AnnotationArray{Values: cloneList(a.Values)}
}

func (a *AnnotationArray) walkChildren(w *walker) error {
	return walkList(w, a, &a.Values)
}
