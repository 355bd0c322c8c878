package parser

import (
	"errors"

	"github.com/dhamidi/jpp/java/tree"
)

var errNotType = errors.New("expression is not a type name")

func (p *Parser) parseExpression() (tree.Expression, error) {
	if p.atLambda() {
		return p.parseLambda()
	}
	lhs, err := p.parseConditional()
	if err != nil {
		return nil, err
	}
	op, n, ok := p.peekAssignOp()
	if !ok {
		return lhs, nil
	}
	for i := 0; i < n; i++ {
		p.advance()
	}
	rhs, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	return tree.NewAssignExpr(lhs, op, rhs), nil
}

// atLambda reports whether the cursor is at x -> or at a parenthesized
// parameter list followed by ->.
func (p *Parser) atLambda() bool {
	if p.isIdentifierLike() {
		return p.peekN(1).Kind == TokenArrow
	}
	if !p.check(TokenLParen) {
		return false
	}
	depth := 0
	for i := 0; ; i++ {
		switch p.peekN(i).Kind {
		case TokenLParen:
			depth++
		case TokenRParen:
			depth--
			if depth == 0 {
				return p.peekN(i+1).Kind == TokenArrow
			}
		case TokenEOF, TokenSemicolon, TokenLBrace, TokenRBrace:
			return false
		}
	}
}

func (p *Parser) parseLambda() (tree.Expression, error) {
	l := &tree.Lambda{}
	if p.isIdentifierLike() {
		name, err := p.parseName()
		if err != nil {
			return nil, err
		}
		l.Params = tree.Right[[]*tree.FormalParameter]([]tree.Name{name})
	} else {
		names, err := attempt(p, func() ([]tree.Name, error) {
			return parseDelimited(p, TokenLParen, TokenRParen, p.parseName)
		})
		if err == nil {
			l.Params = tree.Right[[]*tree.FormalParameter](names)
		} else {
			params, err := parseDelimited(p, TokenLParen, TokenRParen, p.parseFormalParameter)
			if err != nil {
				return nil, err
			}
			l.Params = tree.Left[[]*tree.FormalParameter, []tree.Name](params)
		}
	}
	if _, err := p.expect(TokenArrow); err != nil {
		return nil, err
	}
	if p.check(TokenLBrace) {
		body, err := p.parseBlock()
		if err != nil {
			return nil, err
		}
		l.Body = tree.Left[*tree.Block, tree.Expression](body)
		return l, nil
	}
	body, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	l.Body = tree.Right[*tree.Block](body)
	return l, nil
}

func (p *Parser) parseConditional() (tree.Expression, error) {
	cond, err := p.parseBinary(tree.LogicalOr)
	if err != nil {
		return nil, err
	}
	if !p.accept(TokenQuestion) {
		return cond, nil
	}
	then, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(TokenColon); err != nil {
		return nil, err
	}
	var els tree.Expression
	if p.atLambda() {
		els, err = p.parseLambda()
	} else {
		els, err = p.parseConditional()
	}
	if err != nil {
		return nil, err
	}
	return &tree.ConditionalExpr{Cond: cond, Then: then, Else: els}, nil
}

// gtRun counts the adjacent > tokens at the cursor, up to three, and
// reports whether an adjacent = follows them. The lexer never joins >
// so that nested type arguments close one level per token.
func (p *Parser) gtRun() (n int, assign bool) {
	n = 1
	for n < 3 && p.peekN(n).Kind == TokenGT && p.adjacentTo(n) {
		n++
	}
	assign = p.peekN(n).Kind == TokenAssign && p.adjacentTo(n)
	return n, assign
}

func (p *Parser) peekBinaryOp() (op tree.BinaryOp, n int, ok bool) {
	tok := p.peek()
	if tok.Kind == TokenGT {
		n, assign := p.gtRun()
		switch {
		case assign && n == 1:
			return tree.OpGe, 2, true
		case assign:
			return 0, 0, false
		case n == 1:
			return tree.OpGt, 1, true
		case n == 2:
			return tree.OpShr, 2, true
		default:
			return tree.OpUshr, 3, true
		}
	}
	if isLiteralKind(tok.Kind) {
		return 0, 0, false
	}
	op, ok = tree.LookupBinaryOp(tok.Literal)
	return op, 1, ok
}

func (p *Parser) peekAssignOp() (op tree.AssignOp, n int, ok bool) {
	tok := p.peek()
	if tok.Kind == TokenGT {
		n, assign := p.gtRun()
		switch {
		case !assign || n == 1:
			return 0, 0, false
		case n == 2:
			return tree.OpShrAssign, 3, true
		default:
			return tree.OpUshrAssign, 4, true
		}
	}
	if isLiteralKind(tok.Kind) {
		return 0, 0, false
	}
	op, ok = tree.LookupAssignOp(tok.Literal)
	return op, 1, ok
}

func isLiteralKind(kind TokenKind) bool {
	switch kind {
	case TokenIntLiteral, TokenFloatLiteral, TokenCharLiteral, TokenStringLiteral, TokenTextBlock:
		return true
	}
	return false
}

// atInstanceof reports whether the cursor is at instanceof or, with the
// negated form, at !instanceof written as one word.
func (p *Parser) atInstanceof() bool {
	if p.check(TokenInstanceof) {
		return true
	}
	return p.check(TokenNot) && p.peekN(1).Kind == TokenInstanceof && p.adjacentTo(1)
}

// parseBinary parses operators that bind at least as tightly as loosest,
// by precedence climbing.
func (p *Parser) parseBinary(loosest tree.Precedence) (tree.Expression, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for {
		if p.atInstanceof() {
			if tree.Relational.Greater(loosest) {
				return left, nil
			}
			if left, err = p.parseInstanceof(left); err != nil {
				return nil, err
			}
			continue
		}
		op, n, ok := p.peekBinaryOp()
		if !ok || op.Precedence().Greater(loosest) {
			return left, nil
		}
		for i := 0; i < n; i++ {
			p.advance()
		}
		right, err := p.parseBinary(op.Precedence() - 1)
		if err != nil {
			return nil, err
		}
		left = tree.NewBinaryExpr(left, op, right)
	}
}

func (p *Parser) parseInstanceof(e tree.Expression) (tree.Expression, error) {
	negated := false
	if p.check(TokenNot) {
		if err := p.requireFeature(NotInstanceof); err != nil {
			return nil, err
		}
		p.advance()
		negated = true
	}
	if _, err := p.expect(TokenInstanceof); err != nil {
		return nil, err
	}
	var x *tree.InstanceOfExpr
	if pat, err := attempt(p, p.parsePattern); err == nil {
		x = tree.NewInstanceOfPattern(e, pat)
	} else {
		t, err := p.parseType()
		if err != nil {
			return nil, err
		}
		x = tree.NewInstanceOfType(e, t)
	}
	x.Negated = negated
	return x, nil
}

func (p *Parser) parseUnary() (tree.Expression, error) {
	tok := p.peek()
	switch tok.Kind {
	case TokenMinus:
		if next := p.peekN(1); next.Kind == TokenIntLiteral || next.Kind == TokenFloatLiteral {
			p.advance()
			p.advance()
			lit, err := numericLiteral(next, true)
			if err != nil {
				return nil, p.errorf(next, "%s", err)
			}
			return lit, nil
		}
		return p.parseUnaryOp(tree.OpMinus)
	case TokenPlus:
		return p.parseUnaryOp(tree.OpPlus)
	case TokenNot:
		return p.parseUnaryOp(tree.OpNot)
	case TokenBitNot:
		return p.parseUnaryOp(tree.OpComplement)
	case TokenIncrement, TokenDecrement:
		p.advance()
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		if tok.Kind == TokenIncrement {
			return &tree.PreIncrementExpr{Expr: operand}, nil
		}
		return &tree.PreDecrementExpr{Expr: operand}, nil
	case TokenLParen:
		if cast, err := attempt(p, p.parseCast); err == nil {
			return cast, nil
		}
	}
	return p.parsePostfix()
}

func (p *Parser) parseUnaryOp(op tree.UnaryOp) (tree.Expression, error) {
	p.advance()
	operand, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	return tree.NewUnaryExpr(op, operand), nil
}

// parseCast parses (Type) operand. A reference type cast cannot apply to
// an operand starting with + or -, since (a) - b is a subtraction.
func (p *Parser) parseCast() (tree.Expression, error) {
	if _, err := p.expect(TokenLParen); err != nil {
		return nil, err
	}
	start := p.peek()
	t, err := p.parseType()
	if err != nil {
		return nil, err
	}
	if p.accept(TokenBitAnd) {
		rest, err := parseList(p, TokenBitAnd, p.parseType)
		if err != nil {
			return nil, err
		}
		if t, err = tree.NewTypeIntersection(append([]tree.Type{t}, rest...)...); err != nil {
			return nil, p.errorf(start, "%s", err)
		}
	}
	if _, err := p.expect(TokenRParen); err != nil {
		return nil, err
	}
	if _, ok := t.(*tree.PrimitiveType); ok {
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return tree.NewCastExpr(t, operand), nil
	}
	if p.match(TokenPlus, TokenMinus, TokenIncrement, TokenDecrement) {
		return nil, p.unexpected("cast operand")
	}
	var operand tree.Expression
	if p.atLambda() {
		operand, err = p.parseLambda()
	} else {
		operand, err = p.parseUnary()
	}
	if err != nil {
		return nil, err
	}
	return tree.NewCastExpr(t, operand), nil
}

func (p *Parser) parsePostfix() (tree.Expression, error) {
	e, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	for {
		switch p.peek().Kind {
		case TokenDot:
			next := p.peekN(1)
			switch {
			case next.Kind == TokenNew:
				p.advance()
				p.advance()
				e, err = p.parseCreator(e)
			case next.Kind == TokenLT:
				p.advance()
				e, err = p.parseGenericCall(e)
			case next.Kind == TokenThis:
				q, ok := exprToQualifiedName(e)
				if !ok {
					return nil, p.errorf(next, "qualifier of this must be a type name")
				}
				p.advance()
				p.advance()
				e = &tree.This{Qualifier: q}
			case next.Kind == TokenSuper:
				// Outer.super(...) is a constructor call statement.
				if p.peekN(2).Kind == TokenLParen {
					return e, nil
				}
				q, ok := exprToQualifiedName(e)
				if !ok {
					return nil, p.errorf(next, "qualifier of super must be a type name")
				}
				p.advance()
				p.advance()
				e, err = p.parseSuperSuffix(q)
			case next.Kind == TokenClass:
				ct, ok := exprToClassType(e)
				if !ok {
					return nil, p.errorf(next, "class literal requires a type name")
				}
				p.advance()
				p.advance()
				e = &tree.ClassLiteral{Type: ct}
			case isIdentifierKind(next.Kind):
				p.advance()
				name, err := p.parseName()
				if err != nil {
					return nil, err
				}
				if p.check(TokenLParen) {
					args, err := p.parseArguments()
					if err != nil {
						return nil, err
					}
					e = tree.NewMethodCall(e, name, args...)
				} else {
					e = &tree.FieldAccess{Target: e, Name: name}
				}
			default:
				p.advance()
				return nil, p.unexpected("member name")
			}
		case TokenLBracket:
			if p.peekN(1).Kind == TokenRBracket {
				e, err = p.parseArrayTypeSuffix(e)
				break
			}
			p.advance()
			index, err := p.parseExpression()
			if err != nil {
				return nil, err
			}
			if _, err := p.expect(TokenRBracket); err != nil {
				return nil, err
			}
			e = &tree.IndexExpr{Target: e, Index: index}
		case TokenIncrement:
			p.advance()
			e = &tree.PostIncrementExpr{Expr: e}
		case TokenDecrement:
			p.advance()
			e = &tree.PostDecrementExpr{Expr: e}
		case TokenColonColon:
			e, err = p.parseReference(tree.Left[tree.Expression, tree.Type](e))
		case TokenLT:
			ref, err := attempt(p, func() (tree.Expression, error) {
				return p.parseGenericReference(e)
			})
			if err != nil {
				return e, nil
			}
			e = ref
		default:
			return e, nil
		}
		if err != nil {
			return nil, err
		}
	}
}

// parseGenericCall parses <T>name(args) after a dot.
func (p *Parser) parseGenericCall(target tree.Expression) (tree.Expression, error) {
	typeArgs, err := p.parseTypeArguments()
	if err != nil {
		return nil, err
	}
	name, err := p.parseName()
	if err != nil {
		return nil, err
	}
	args, err := p.parseArguments()
	if err != nil {
		return nil, err
	}
	call := tree.NewMethodCall(target, name, args...)
	call.SetTypeArguments(typeArgs)
	return call, nil
}

// parseArrayTypeSuffix parses the [] of Name[].class and Name[]::new.
func (p *Parser) parseArrayTypeSuffix(e tree.Expression) (tree.Expression, error) {
	ct, ok := exprToClassType(e)
	if !ok {
		return nil, p.unexpected("array index")
	}
	dims, err := p.parseDims()
	if err != nil {
		return nil, err
	}
	return p.parseTypeSuffix(tree.NewArrayType(ct, dims...))
}

// parseTypeSuffix parses the .class or ::name that must follow a type in
// expression position.
func (p *Parser) parseTypeSuffix(t tree.Type) (tree.Expression, error) {
	if p.check(TokenDot) && p.peekN(1).Kind == TokenClass {
		p.advance()
		p.advance()
		return &tree.ClassLiteral{Type: t}, nil
	}
	if p.check(TokenColonColon) {
		return p.parseReference(tree.Right[tree.Expression](t))
	}
	return nil, p.unexpected(`".class" or "::"`)
}

// parseGenericReference parses List<String>::size, where e is the name
// before the type arguments.
func (p *Parser) parseGenericReference(e tree.Expression) (tree.Expression, error) {
	ct, ok := exprToClassType(e)
	if !ok {
		return nil, errNotType
	}
	args, err := p.parseTypeArguments()
	if err != nil {
		return nil, err
	}
	ct.SetTypeArguments(args)
	var t tree.Type = ct
	dims, err := p.parseDims()
	if err != nil {
		return nil, err
	}
	if len(dims) > 0 {
		t = tree.NewArrayType(t, dims...)
	}
	if !p.check(TokenColonColon) {
		return nil, p.unexpected(`"::"`)
	}
	return p.parseReference(tree.Right[tree.Expression](t))
}

// parseReference parses ::name or ::new after target.
func (p *Parser) parseReference(target tree.MethodTarget) (tree.Expression, error) {
	if _, err := p.expect(TokenColonColon); err != nil {
		return nil, err
	}
	var typeArgs []tree.TypeArgument
	if p.check(TokenLT) {
		var err error
		if typeArgs, err = p.parseTypeArguments(); err != nil {
			return nil, err
		}
	}
	if tok := p.peek(); p.accept(TokenNew) {
		t, ok := referenceType(target)
		if !ok {
			return nil, p.errorf(tok, "constructor reference requires a type")
		}
		ref := &tree.ConstructorReference{Type: t}
		ref.SetTypeArguments(typeArgs)
		return ref, nil
	}
	name, err := p.parseName()
	if err != nil {
		return nil, err
	}
	ref := &tree.MethodReference{Target: target, Name: name}
	ref.SetTypeArguments(typeArgs)
	return ref, nil
}

func referenceType(target tree.MethodTarget) (tree.Type, bool) {
	if t, ok := target.GetRight(); ok {
		return t, true
	}
	e, _ := target.GetLeft()
	ct, ok := exprToClassType(e)
	if !ok {
		return nil, false
	}
	return ct, true
}

// parseSuperSuffix parses what follows super, or Outer.super, in an
// expression: a field access, a method call or a method reference.
func (p *Parser) parseSuperSuffix(q tree.QualifiedName) (tree.Expression, error) {
	if p.check(TokenColonColon) {
		p.advance()
		var typeArgs []tree.TypeArgument
		if p.check(TokenLT) {
			var err error
			if typeArgs, err = p.parseTypeArguments(); err != nil {
				return nil, err
			}
		}
		name, err := p.parseName()
		if err != nil {
			return nil, err
		}
		ref := &tree.SuperMethodReference{Qualifier: q, Name: name}
		ref.SetTypeArguments(typeArgs)
		return ref, nil
	}
	if _, err := p.expect(TokenDot); err != nil {
		return nil, err
	}
	var typeArgs []tree.TypeArgument
	if p.check(TokenLT) {
		var err error
		if typeArgs, err = p.parseTypeArguments(); err != nil {
			return nil, err
		}
	}
	name, err := p.parseName()
	if err != nil {
		return nil, err
	}
	if typeArgs == nil && !p.check(TokenLParen) {
		return &tree.SuperFieldAccess{Qualifier: q, Name: name}, nil
	}
	args, err := p.parseArguments()
	if err != nil {
		return nil, err
	}
	call := &tree.SuperMethodCall{Qualifier: q, Name: name, Args: args}
	call.SetTypeArguments(typeArgs)
	return call, nil
}

func (p *Parser) parsePrimary() (tree.Expression, error) {
	tok := p.peek()
	switch tok.Kind {
	case TokenIntLiteral, TokenFloatLiteral:
		p.advance()
		lit, err := numericLiteral(tok, false)
		if err != nil {
			return nil, p.errorf(tok, "%s", err)
		}
		return lit, nil
	case TokenCharLiteral:
		p.advance()
		lit, err := charLiteral(tok)
		if err != nil {
			return nil, p.errorf(tok, "%s", err)
		}
		return lit, nil
	case TokenStringLiteral, TokenTextBlock:
		p.advance()
		lit, err := stringLiteral(tok)
		if err != nil {
			return nil, p.errorf(tok, "%s", err)
		}
		return lit, nil
	case TokenTrue, TokenFalse:
		p.advance()
		return tree.NewBoolLiteral(tok.Kind == TokenTrue), nil
	case TokenNull:
		p.advance()
		return tree.NewNullLiteral(), nil
	case TokenThis:
		p.advance()
		return &tree.This{}, nil
	case TokenSuper:
		p.advance()
		return p.parseSuperSuffix(tree.QualifiedName{})
	case TokenNew:
		p.advance()
		return p.parseCreator(nil)
	case TokenLParen:
		p.advance()
		e, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(TokenRParen); err != nil {
			return nil, err
		}
		return tree.NewParenExpr(e), nil
	case TokenSwitch:
		selector, cases, err := p.parseSwitchHead()
		if err != nil {
			return nil, err
		}
		return &tree.SwitchExpr{Selector: selector, Cases: cases}, nil
	case TokenVoid:
		p.advance()
		return p.parseTypeSuffix(&tree.VoidType{})
	}
	if isPrimitiveKind(tok.Kind) {
		t, err := p.parseType()
		if err != nil {
			return nil, err
		}
		return p.parseTypeSuffix(t)
	}
	if !p.isIdentifierLike() {
		return nil, p.unexpected("expression")
	}
	name, err := p.parseName()
	if err != nil {
		return nil, err
	}
	if !p.check(TokenLParen) {
		return name, nil
	}
	args, err := p.parseArguments()
	if err != nil {
		return nil, err
	}
	return tree.NewMethodCall(nil, name, args...), nil
}

func (p *Parser) parseArguments() ([]tree.Expression, error) {
	return parseDelimited(p, TokenLParen, TokenRParen, p.parseExpression)
}

// parseCreator parses what follows new. outer is the expression before
// .new for an inner class creation.
func (p *Parser) parseCreator(outer tree.Expression) (tree.Expression, error) {
	var typeArgs []tree.TypeArgument
	if p.check(TokenLT) {
		var err error
		if typeArgs, err = p.parseTypeArguments(); err != nil {
			return nil, err
		}
	}
	anns, err := p.parseAnnotations()
	if err != nil {
		return nil, err
	}
	if tok := p.peek(); isPrimitiveKind(tok.Kind) {
		p.advance()
		prim, err := tree.NewPrimitiveType(tok.Literal)
		if err != nil {
			return nil, p.errorf(tok, "%s", err)
		}
		prim.SetAnnotations(anns)
		return p.parseArrayCreator(prim)
	}
	ct, err := p.parseClassType(anns, true)
	if err != nil {
		return nil, err
	}
	if outer == nil && p.match(TokenLBracket, TokenAt) {
		return p.parseArrayCreator(ct)
	}
	args, err := p.parseArguments()
	if err != nil {
		return nil, err
	}
	c := &tree.ClassCreator{Outer: outer, Type: ct, Args: args}
	c.SetTypeArguments(typeArgs)
	if p.check(TokenLBrace) {
		if c.Body, err = p.parseClassBody(bodyClass); err != nil {
			return nil, err
		}
	}
	return c, nil
}

func (p *Parser) parseArrayCreator(elem tree.Type) (tree.Expression, error) {
	var sizes []*tree.Size
	for p.match(TokenLBracket, TokenAt) {
		size, err := attempt(p, func() (*tree.Size, error) {
			anns, err := p.parseAnnotations()
			if err != nil {
				return nil, err
			}
			if _, err := p.expect(TokenLBracket); err != nil {
				return nil, err
			}
			e, err := p.parseExpression()
			if err != nil {
				return nil, err
			}
			if _, err := p.expect(TokenRBracket); err != nil {
				return nil, err
			}
			s := tree.NewSize(e)
			s.SetAnnotations(anns)
			return s, nil
		})
		if err != nil {
			break
		}
		sizes = append(sizes, size)
	}
	dims, err := p.parseDims()
	if err != nil {
		return nil, err
	}
	if len(sizes) > 0 {
		return tree.NewSizedArray(elem, sizes, dims...), nil
	}
	if len(dims) == 0 {
		return nil, p.unexpected(`"["`)
	}
	init, err := p.parseArrayInitializer()
	if err != nil {
		return nil, err
	}
	return tree.NewInitializedArray(elem, init, dims...), nil
}

// parseArrayInitializer parses {a, b, {c}}. A trailing comma is allowed.
func (p *Parser) parseArrayInitializer() (*tree.ArrayInitializer, error) {
	if _, err := p.expect(TokenLBrace); err != nil {
		return nil, err
	}
	init := tree.NewArrayInitializer()
	for !p.check(TokenRBrace) {
		v, err := p.parseVariableInitializer()
		if err != nil {
			return nil, err
		}
		init.Elements = append(init.Elements, v)
		if !p.accept(TokenComma) {
			break
		}
	}
	if _, err := p.expect(TokenRBrace); err != nil {
		return nil, err
	}
	return init, nil
}

func (p *Parser) parseVariableInitializer() (tree.Initializer, error) {
	if p.check(TokenLBrace) {
		init, err := p.parseArrayInitializer()
		if err != nil {
			return tree.Initializer{}, err
		}
		return tree.ArrayInit(init), nil
	}
	e, err := p.parseExpression()
	if err != nil {
		return tree.Initializer{}, err
	}
	return tree.ExprInit(e), nil
}

// parseSwitchHead parses switch (selector) { cases }, shared by switch
// statements and switch expressions.
func (p *Parser) parseSwitchHead() (tree.Expression, []*tree.SwitchCase, error) {
	if _, err := p.expect(TokenSwitch); err != nil {
		return nil, nil, err
	}
	if _, err := p.expect(TokenLParen); err != nil {
		return nil, nil, err
	}
	selector, err := p.parseExpression()
	if err != nil {
		return nil, nil, err
	}
	if _, err := p.expect(TokenRParen); err != nil {
		return nil, nil, err
	}
	if _, err := p.expect(TokenLBrace); err != nil {
		return nil, nil, err
	}
	var cases []*tree.SwitchCase
	for !p.check(TokenRBrace) {
		c, err := p.parseSwitchCase()
		if err != nil {
			return nil, nil, err
		}
		cases = append(cases, c)
	}
	p.advance()
	return selector, cases, nil
}

func (p *Parser) parseSwitchCase() (*tree.SwitchCase, error) {
	c := &tree.SwitchCase{}
	if p.accept(TokenDefault) {
		c.Default = true
	} else {
		if _, err := p.expect(TokenCase); err != nil {
			return nil, err
		}
		for {
			if p.accept(TokenDefault) {
				c.Default = true
				break
			}
			label, err := p.parseCaseLabel()
			if err != nil {
				return nil, err
			}
			c.Labels = append(c.Labels, label)
			if !p.accept(TokenComma) {
				break
			}
		}
		if p.accept(TokenWhen) {
			guard, err := p.parseConditional()
			if err != nil {
				return nil, err
			}
			c.Guard = guard
		}
	}

	if p.accept(TokenArrow) {
		var body tree.Statement
		var err error
		switch {
		case p.check(TokenLBrace):
			body, err = p.parseBlock()
		case p.check(TokenThrow):
			body, err = p.parseStatement()
		default:
			var e tree.Expression
			if e, err = p.parseExpression(); err == nil {
				body = tree.NewExpressionStmt(e)
				_, err = p.expect(TokenSemicolon)
			}
		}
		if err != nil {
			return nil, err
		}
		c.Body = tree.Right[[]tree.Statement](body)
		return c, nil
	}

	if _, err := p.expect(TokenColon); err != nil {
		return nil, err
	}
	var stmts []tree.Statement
	for !p.match(TokenCase, TokenDefault, TokenRBrace, TokenEOF) {
		s, err := p.parseBlockStatement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, s)
	}
	c.Body = tree.Left[[]tree.Statement, tree.Statement](stmts)
	return c, nil
}

func (p *Parser) parseCaseLabel() (tree.CaseLabel, error) {
	start := p.peek()
	var n tree.Node
	if pat, err := attempt(p, p.parsePattern); err == nil {
		n = pat
	} else if n, err = p.parseConditional(); err != nil {
		return nil, err
	}
	label, ok := n.(tree.CaseLabel)
	if !ok {
		return nil, p.errorf(start, "%s cannot be a case label", n.Kind())
	}
	return label, nil
}

// parsePattern parses a type pattern such as final String s or a record
// pattern such as Point(int x, var y).
func (p *Parser) parsePattern() (tree.Pattern, error) {
	m, err := p.parseModifiers()
	if err != nil {
		return nil, err
	}
	t, err := p.parseType()
	if err != nil {
		return nil, err
	}
	if p.check(TokenLParen) && len(m.list) == 0 && len(m.annotations) == 0 {
		subs, err := parseDelimited(p, TokenLParen, TokenRParen, p.parsePattern)
		if err != nil {
			return nil, err
		}
		return tree.NewRecordPattern(t, subs...), nil
	}
	name, err := p.parseName()
	if err != nil {
		return nil, err
	}
	pat := tree.NewTypePattern(t, name)
	pat.SetAnnotations(m.annotations)
	pat.SetModifiers(m.list)
	return pat, nil
}
