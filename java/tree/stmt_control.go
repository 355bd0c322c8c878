package tree

import "strings"

type IfStmt struct {
	stmtMarker
	Cond Expression
	Then Statement
	Else Statement
}

func (*IfStmt) Kind() Kind { return KindIfStmt }

func (s *IfStmt) Code() string {
	then := s.Then.Code()
	if s.Else == nil {
		return "if (" + s.Cond.Code() + ") " + then
	}
	// An else would otherwise attach to the inner if.
	if danglingIf(s.Then) {
		then = statementsCode([]Statement{s.Then})
	}
	return "if (" + s.Cond.Code() + ") " + then + " else " + s.Else.Code()
}

// danglingIf reports whether s ends in an if statement without an else.
func danglingIf(s Statement) bool {
	switch x := s.(type) {
	case *IfStmt:
		if x.Else == nil {
			return true
		}
		return danglingIf(x.Else)
	case *LabeledStmt:
		return danglingIf(x.Stmt)
	case *WhileStmt:
		return danglingIf(x.Body)
	case *ForStmt:
		return danglingIf(x.Body)
	case *ForEachStmt:
		return danglingIf(x.Body)
	}
	return false
}

func (s *IfStmt) Clone() Node {
	return &IfStmt{Cond: cloneOf(s.Cond), Then: cloneOf(s.Then), Else: cloneOf(s.Else)}
}

func (s *IfStmt) walkChildren(w *walker) error {
	if err := walkNode(w, s, &s.Cond, false); err != nil {
		return err
	}
	if err := walkNode(w, s, &s.Then, false); err != nil {
		return err
	}
	return walkNode(w, s, &s.Else, true)
}

type WhileStmt struct {
	stmtMarker
	Cond Expression
	Body Statement
}

func (*WhileStmt) Kind() Kind     { return KindWhileStmt }
func (s *WhileStmt) Code() string { return "while (" + s.Cond.Code() + ") " + s.Body.Code() }
func (s *WhileStmt) Clone() Node  { return &WhileStmt{Cond: cloneOf(s.Cond), Body: cloneOf(s.Body)} }

func (s *WhileStmt) walkChildren(w *walker) error {
	if err := walkNode(w, s, &s.Cond, false); err != nil {
		return err
	}
	return walkNode(w, s, &s.Body, false)
}

type DoStmt struct {
	stmtMarker
	Body Statement
	Cond Expression
}

func (*DoStmt) Kind() Kind     { return KindDoStmt }
func (s *DoStmt) Code() string { return "do " + s.Body.Code() + " while (" + s.Cond.Code() + ");" }
func (s *DoStmt) Clone() Node  { return &DoStmt{Body: cloneOf(s.Body), Cond: cloneOf(s.Cond)} }

func (s *DoStmt) walkChildren(w *walker) error {
	if err := walkNode(w, s, &s.Body, false); err != nil {
		return err
	}
	return walkNode(w, s, &s.Cond, false)
}

// ForInit is the first clause of a basic for loop: a declaration or a list
// of expressions.
type ForInit = Either[*LocalVarDecl, []Expression]

type ForStmt struct {
	stmtMarker
	Init   ForInit
	Cond   Expression
	Update []Expression
	Body   Statement
}

func (*ForStmt) Kind() Kind { return KindForStmt }

func (s *ForStmt) Code() string {
	var b strings.Builder
	b.WriteString("for (")
	if decl, ok := s.Init.GetLeft(); ok && decl != nil {
		b.WriteString(decl.declCode())
	} else if exprs, ok := s.Init.GetRight(); ok {
		b.WriteString(joinCode(exprs, ", "))
	}
	b.WriteByte(';')
	if s.Cond != nil {
		b.WriteByte(' ')
		b.WriteString(s.Cond.Code())
	}
	b.WriteByte(';')
	if len(s.Update) > 0 {
		b.WriteByte(' ')
		b.WriteString(joinCode(s.Update, ", "))
	}
	b.WriteString(") ")
	b.WriteString(s.Body.Code())
	return b.String()
}

func (s *ForStmt) Clone() Node {
	c := &ForStmt{Cond: cloneOf(s.Cond), Update: cloneList(s.Update), Body: cloneOf(s.Body)}
	if exprs, ok := s.Init.GetRight(); ok {
		c.Init = Right[*LocalVarDecl](cloneList(exprs))
	} else {
		c.Init = Left[*LocalVarDecl, []Expression](cloneOf(s.Init.left))
	}
	return c
}

func (s *ForStmt) walkChildren(w *walker) error {
	if s.Init.isRight {
		if err := walkList(w, s, &s.Init.right); err != nil {
			return err
		}
	} else if err := walkNode(w, s, &s.Init.left, true); err != nil {
		return err
	}
	if err := walkNode(w, s, &s.Cond, true); err != nil {
		return err
	}
	if err := walkList(w, s, &s.Update); err != nil {
		return err
	}
	return walkNode(w, s, &s.Body, false)
}

// ForEachStmt is for (Var : Iterable) Body.
type ForEachStmt struct {
	stmtMarker
	Var      *FormalParameter
	Iterable Expression
	Body     Statement
}

func (*ForEachStmt) Kind() Kind { return KindForEachStmt }

func (s *ForEachStmt) Code() string {
	return "for (" + s.Var.Code() + " : " + s.Iterable.Code() + ") " + s.Body.Code()
}

func (s *ForEachStmt) Clone() Node {
	return &ForEachStmt{Var: cloneOf(s.Var), Iterable: cloneOf(s.Iterable), Body: cloneOf(s.Body)}
}

func (s *ForEachStmt) walkChildren(w *walker) error {
	if err := walkNode(w, s, &s.Var, false); err != nil {
		return err
	}
	if err := walkNode(w, s, &s.Iterable, false); err != nil {
		return err
	}
	return walkNode(w, s, &s.Body, false)
}

type SynchronizedStmt struct {
	stmtMarker
	Lock Expression
	Body *Block
}

func (*SynchronizedStmt) Kind() Kind { return KindSynchronizedStmt }

func (s *SynchronizedStmt) Code() string {
	return "synchronized (" + s.Lock.Code() + ") " + s.Body.Code()
}

func (s *SynchronizedStmt) Clone() Node {
	return &SynchronizedStmt{Lock: cloneOf(s.Lock), Body: cloneOf(s.Body)}
}

func (s *SynchronizedStmt) walkChildren(w *walker) error {
	if err := walkNode(w, s, &s.Lock, false); err != nil {
		return err
	}
	return walkNode(w, s, &s.Body, false)
}

// Resource is a try-with-resources entry: a declaration or an expression
// naming an effectively final variable.
type Resource = Either[*LocalVarDecl, Expression]

type TryStmt struct {
	stmtMarker
	Resources []Resource
	Body      *Block
	Catches   []*CatchClause
	Finally   *Block
}

func (*TryStmt) Kind() Kind { return KindTryStmt }

func (s *TryStmt) Code() string {
	var b strings.Builder
	b.WriteString("try ")
	if len(s.Resources) > 0 {
		parts := make([]string, len(s.Resources))
		for i, r := range s.Resources {
			parts[i] = Match(r, (*LocalVarDecl).declCode, Expression.Code)
		}
		b.WriteString("(" + strings.Join(parts, "; ") + ") ")
	}
	b.WriteString(s.Body.Code())
	for _, c := range s.Catches {
		b.WriteByte(' ')
		b.WriteString(c.Code())
	}
	if s.Finally != nil {
		b.WriteString(" finally ")
		b.WriteString(s.Finally.Code())
	}
	return b.String()
}

func (s *TryStmt) Clone() Node {
	c := &TryStmt{Body: cloneOf(s.Body), Catches: cloneList(s.Catches), Finally: cloneOf(s.Finally)}
	c.Resources = make([]Resource, len(s.Resources))
	for i, r := range s.Resources {
		if e, ok := r.GetRight(); ok {
			c.Resources[i] = Right[*LocalVarDecl](cloneOf(e))
		} else {
			c.Resources[i] = Left[*LocalVarDecl, Expression](cloneOf(r.left))
		}
	}
	return c
}

func (s *TryStmt) walkChildren(w *walker) error {
	if err := walkEitherList(w, s, &s.Resources); err != nil {
		return err
	}
	if err := walkNode(w, s, &s.Body, false); err != nil {
		return err
	}
	if err := walkList(w, s, &s.Catches); err != nil {
		return err
	}
	return walkNode(w, s, &s.Finally, true)
}

// CatchClause is catch (Param) Body. A multi-catch parameter has a
// TypeUnion type.
type CatchClause struct {
	Param *FormalParameter
	Body  *Block
}

func (*CatchClause) Kind() Kind { return KindCatchClause }

func (c *CatchClause) Code() string {
	return "catch (" + c.Param.Code() + ") " + c.Body.Code()
}

func (c *CatchClause) Clone() Node {
	return &CatchClause{Param: cloneOf(c.Param), Body: cloneOf(c.Body)}
}

func (c *CatchClause) walkChildren(w *walker) error {
	if err := walkNode(w, c, &c.Param, false); err != nil {
		return err
	}
	return walkNode(w, c, &c.Body, false)
}

type SwitchStmt struct {
	stmtMarker
	Selector Expression
	Cases    []*SwitchCase
}

func (*SwitchStmt) Kind() Kind     { return KindSwitchStmt }
func (s *SwitchStmt) Code() string { return switchCode(s.Selector, s.Cases) }

func (s *SwitchStmt) Clone() Node {
	return &SwitchStmt{Selector: cloneOf(s.Selector), Cases: cloneList(s.Cases)}
}

func (s *SwitchStmt) walkChildren(w *walker) error {
	if err := walkNode(w, s, &s.Selector, false); err != nil {
		return err
	}
	return walkList(w, s, &s.Cases)
}

// CaseBody holds the statements after a colon label, or the single
// statement after an arrow label.
type CaseBody = Either[[]Statement, Statement]

// SwitchCase is one labeled group of a switch. Default may be combined with
// labels, as in case null, default.
type SwitchCase struct {
	Labels  []CaseLabel
	Default bool
	Guard   Expression
	Body    CaseBody
}

func (*SwitchCase) Kind() Kind { return KindSwitchCase }

// IsArrow reports whether the case uses the -> form.
func (c *SwitchCase) IsArrow() bool { return c.Body.IsRight() }

func (c *SwitchCase) labelCode() string {
	var parts []string
	if len(c.Labels) > 0 {
		parts = append(parts, "case "+joinCode(c.Labels, ", "))
	}
	if c.Default {
		if len(parts) > 0 {
			parts[0] += ", default"
		} else {
			parts = append(parts, "default")
		}
	}
	s := strings.Join(parts, "")
	if c.Guard != nil {
		s += " when " + c.Guard.Code()
	}
	return s
}

func (c *SwitchCase) Code() string {
	if stmt, ok := c.Body.GetRight(); ok {
		return c.labelCode() + " -> " + stmt.Code()
	}
	stmts, _ := c.Body.GetLeft()
	if len(stmts) == 0 {
		return c.labelCode() + ":"
	}
	return c.labelCode() + ":\n" + indent(joinCode(stmts, "\n"))
}

func (c *SwitchCase) Clone() Node {
	n := &SwitchCase{Labels: cloneList(c.Labels), Default: c.Default, Guard: cloneOf(c.Guard)}
	if stmt, ok := c.Body.GetRight(); ok {
		n.Body = Right[[]Statement](cloneOf(stmt))
	} else {
		n.Body = Left[[]Statement, Statement](cloneList(c.Body.left))
	}
	return n
}

func (c *SwitchCase) walkChildren(w *walker) error {
	if err := walkList(w, c, &c.Labels); err != nil {
		return err
	}
	if err := walkNode(w, c, &c.Guard, true); err != nil {
		return err
	}
	if c.Body.isRight {
		return walkNode(w, c, &c.Body.right, false)
	}
	return walkList(w, c, &c.Body.left)
}
