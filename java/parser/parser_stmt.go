package parser

import "github.com/dhamidi/jpp/java/tree"

func (p *Parser) parseBlock() (*tree.Block, error) {
	if _, err := p.expect(TokenLBrace); err != nil {
		return nil, err
	}
	var stmts []tree.Statement
	for !p.check(TokenRBrace) {
		if p.check(TokenEOF) {
			return nil, p.unexpected(`"}"`)
		}
		s, err := p.parseBlockStatement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, s)
	}
	p.advance()
	return tree.NewBlock(stmts...), nil
}

// parseBlockStatement parses a statement, a local variable declaration or
// a local type declaration.
func (p *Parser) parseBlockStatement() (tree.Statement, error) {
	if p.atLocalTypeDecl() {
		m, err := p.parseModifiers()
		if err != nil {
			return nil, err
		}
		decl, err := p.parseTypeDeclRest(m)
		if err != nil {
			return nil, err
		}
		return &tree.LocalClassDecl{Decl: decl}, nil
	}
	return p.parseStatement()
}

func (p *Parser) atLocalTypeDecl() bool {
	s := p.toks.Enter()
	defer s.Close()
	defer s.Reset()
	if _, err := p.parseModifiers(); err != nil {
		return false
	}
	return p.atTypeDeclKeyword()
}

func (p *Parser) parseStatement() (tree.Statement, error) {
	tok := p.peek()
	switch tok.Kind {
	case TokenLBrace:
		return p.parseBlock()
	case TokenSemicolon:
		p.advance()
		return &tree.EmptyStmt{}, nil
	case TokenIf:
		return p.parseIf()
	case TokenWhile:
		return p.parseWhile()
	case TokenDo:
		return p.parseDo()
	case TokenFor:
		return p.parseFor()
	case TokenTry:
		return p.parseTry()
	case TokenSwitch:
		selector, cases, err := p.parseSwitchHead()
		if err != nil {
			return nil, err
		}
		return &tree.SwitchStmt{Selector: selector, Cases: cases}, nil
	case TokenReturn:
		p.advance()
		e, err := p.parseOptionalExpression()
		if err != nil {
			return nil, err
		}
		return &tree.ReturnStmt{Expr: e}, nil
	case TokenBreak, TokenContinue:
		p.advance()
		var label tree.Name
		if p.isIdentifierLike() {
			label, _ = p.parseName()
		}
		if _, err := p.expect(TokenSemicolon); err != nil {
			return nil, err
		}
		if tok.Kind == TokenBreak {
			return &tree.BreakStmt{Label: label}, nil
		}
		return &tree.ContinueStmt{Label: label}, nil
	case TokenThrow:
		p.advance()
		e, err := p.parseExpressionStatementBody()
		if err != nil {
			return nil, err
		}
		return &tree.ThrowStmt{Expr: e}, nil
	case TokenSynchronized:
		return p.parseSynchronized()
	case TokenAssert:
		return p.parseAssert()
	case TokenThis, TokenSuper, TokenLT:
		if call, err := attempt(p, func() (*tree.ConstructorCall, error) {
			return p.parseConstructorCall(nil)
		}); err == nil {
			return call, nil
		}
	}

	if p.isIdentifierLike() {
		if p.peekN(1).Kind == TokenColon {
			label, err := p.parseName()
			if err != nil {
				return nil, err
			}
			p.advance()
			stmt, err := p.parseStatement()
			if err != nil {
				return nil, err
			}
			return &tree.LabeledStmt{Label: label, Stmt: stmt}, nil
		}
		if tok.Kind == TokenYield && p.atYield() {
			p.advance()
			e, err := p.parseExpressionStatementBody()
			if err != nil {
				return nil, err
			}
			return &tree.YieldStmt{Expr: e}, nil
		}
		if p.atPrint() {
			return p.parsePrint()
		}
	}

	decl, declErr := attempt(p, p.parseLocalVarDeclStmt)
	if declErr == nil {
		return decl, nil
	}
	if p.atQualifiedSuperCall() {
		qualifier, err := p.parsePostfix()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(TokenDot); err != nil {
			return nil, err
		}
		return p.parseConstructorCall(qualifier)
	}
	e, err := p.parseExpressionStatementBody()
	if err != nil {
		return nil, furthest(declErr, err)
	}
	return tree.NewExpressionStmt(e), nil
}

// parseExpressionStatementBody parses an expression followed by a
// semicolon.
func (p *Parser) parseExpressionStatementBody() (tree.Expression, error) {
	e, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(TokenSemicolon); err != nil {
		return nil, err
	}
	return e, nil
}

// parseOptionalExpression parses [expression] ;.
func (p *Parser) parseOptionalExpression() (tree.Expression, error) {
	if p.accept(TokenSemicolon) {
		return nil, nil
	}
	return p.parseExpressionStatementBody()
}

// furthest returns the error reported at the later input position,
// preferring the first on a tie.
func furthest(errs ...error) error {
	var best error
	bestOffset := -1
	for _, err := range errs {
		offset := 0
		switch err := err.(type) {
		case *SyntaxError:
			offset = err.Pos.Offset
		case *FeatureError:
			offset = err.Pos.Offset
		}
		if offset > bestOffset {
			best, bestOffset = err, offset
		}
	}
	return best
}

func isAssignKind(kind TokenKind) bool {
	switch kind {
	case TokenAssign, TokenPlusAssign, TokenMinusAssign, TokenStarAssign, TokenSlashAssign,
		TokenPercentAssign, TokenAndAssign, TokenOrAssign, TokenXorAssign, TokenShlAssign:
		return true
	}
	return false
}

// atYield tells yield x; apart from uses of a variable named yield.
func (p *Parser) atYield() bool {
	next := p.peekN(1).Kind
	if isAssignKind(next) {
		return false
	}
	switch next {
	case TokenDot, TokenLBracket, TokenColonColon, TokenArrow, TokenSemicolon,
		TokenIncrement, TokenDecrement, TokenEOF:
		return false
	}
	return true
}

// atPrint reports whether the cursor is at print or println used as a
// statement keyword rather than as an identifier.
func (p *Parser) atPrint() bool {
	tok := p.peek()
	if tok.Kind != TokenIdent || (tok.Literal != "print" && tok.Literal != "println") {
		return false
	}
	next := p.peekN(1).Kind
	if isAssignKind(next) {
		return false
	}
	switch next {
	case TokenLParen, TokenDot, TokenLBracket, TokenColonColon, TokenArrow,
		TokenIncrement, TokenDecrement, TokenColon, TokenLT, TokenEOF:
		return false
	}
	if !p.features.Enabled(PrintStatements) {
		// print x; still declares a variable of type print.
		return !isIdentifierKind(next)
	}
	return true
}

func (p *Parser) parsePrint() (tree.Statement, error) {
	if err := p.requireFeature(PrintStatements); err != nil {
		return nil, err
	}
	tok := p.advance()
	stmt := &tree.PrintStmt{Newline: tok.Literal == "println"}
	if p.accept(TokenSemicolon) {
		return stmt, nil
	}
	args, err := parseList(p, TokenComma, p.parseExpression)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(TokenSemicolon); err != nil {
		return nil, err
	}
	stmt.Args = args
	return stmt, nil
}

// atQualifiedSuperCall scans the rest of the statement for the
// . super ( of a qualified superclass constructor call.
func (p *Parser) atQualifiedSuperCall() bool {
	depth := 0
	for i := 0; ; i++ {
		switch p.peekN(i).Kind {
		case TokenLParen:
			depth++
		case TokenRParen:
			depth--
		case TokenDot:
			if depth == 0 && p.peekN(i+1).Kind == TokenSuper && p.peekN(i+2).Kind == TokenLParen {
				return true
			}
		case TokenSemicolon, TokenLBrace, TokenRBrace, TokenEOF:
			return false
		}
	}
}

// parseConstructorCall parses [<T>] this(args); or [<T>] super(args);.
// qualifier is the expression before .super, if any.
func (p *Parser) parseConstructorCall(qualifier tree.Expression) (*tree.ConstructorCall, error) {
	var typeArgs []tree.TypeArgument
	if p.check(TokenLT) {
		var err error
		if typeArgs, err = p.parseTypeArguments(); err != nil {
			return nil, err
		}
	}
	call := &tree.ConstructorCall{Qualifier: qualifier}
	switch {
	case qualifier == nil && p.accept(TokenThis):
	case p.accept(TokenSuper):
		call.Super = true
	default:
		return nil, p.unexpected(`"this" or "super"`)
	}
	args, err := p.parseArguments()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(TokenSemicolon); err != nil {
		return nil, err
	}
	call.Args = args
	call.SetTypeArguments(typeArgs)
	return call, nil
}

func (p *Parser) parseLocalVarDeclStmt() (*tree.LocalVarDecl, error) {
	decl, err := p.parseLocalVarDecl()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(TokenSemicolon); err != nil {
		return nil, err
	}
	return decl, nil
}

// parseLocalVarDecl parses a local variable declaration without its
// terminating semicolon.
func (p *Parser) parseLocalVarDecl() (*tree.LocalVarDecl, error) {
	m, err := p.parseModifiers()
	if err != nil {
		return nil, err
	}
	start := p.peek()
	t, err := p.parseType()
	if err != nil {
		return nil, err
	}
	decls, err := parseList(p, TokenComma, p.parseVariableDeclarator)
	if err != nil {
		return nil, err
	}
	decl, err := tree.NewLocalVarDecl(t, decls...)
	if err != nil {
		return nil, p.errorf(start, "%s", err)
	}
	decl.SetAnnotations(m.annotations)
	decl.SetModifiers(m.list)
	return decl, nil
}

func (p *Parser) parseVariableDeclarator() (*tree.VariableDeclarator, error) {
	name, err := p.parseName()
	if err != nil {
		return nil, err
	}
	return p.parseVariableDeclaratorRest(name)
}

// parseVariableDeclaratorRest parses the dimensions and initializer after
// a declared name.
func (p *Parser) parseVariableDeclaratorRest(name tree.Name) (*tree.VariableDeclarator, error) {
	dims, err := p.parseDims()
	if err != nil {
		return nil, err
	}
	d := tree.NewVariableDeclarator(name, nil)
	d.SetDimensions(dims)
	if p.accept(TokenAssign) {
		if d.Init, err = p.parseVariableInitializer(); err != nil {
			return nil, err
		}
	}
	return d, nil
}

func (p *Parser) parseParenExpression() (tree.Expression, error) {
	if _, err := p.expect(TokenLParen); err != nil {
		return nil, err
	}
	e, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(TokenRParen); err != nil {
		return nil, err
	}
	return e, nil
}

func (p *Parser) parseIf() (tree.Statement, error) {
	p.advance()
	cond, err := p.parseParenExpression()
	if err != nil {
		return nil, err
	}
	then, err := p.parseStatement()
	if err != nil {
		return nil, err
	}
	stmt := &tree.IfStmt{Cond: cond, Then: then}
	if p.accept(TokenElse) {
		if stmt.Else, err = p.parseStatement(); err != nil {
			return nil, err
		}
	}
	return stmt, nil
}

func (p *Parser) parseWhile() (tree.Statement, error) {
	p.advance()
	cond, err := p.parseParenExpression()
	if err != nil {
		return nil, err
	}
	body, err := p.parseStatement()
	if err != nil {
		return nil, err
	}
	return &tree.WhileStmt{Cond: cond, Body: body}, nil
}

func (p *Parser) parseDo() (tree.Statement, error) {
	p.advance()
	body, err := p.parseStatement()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(TokenWhile); err != nil {
		return nil, err
	}
	cond, err := p.parseParenExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(TokenSemicolon); err != nil {
		return nil, err
	}
	return &tree.DoStmt{Body: body, Cond: cond}, nil
}

func (p *Parser) parseFor() (tree.Statement, error) {
	p.advance()
	if _, err := p.expect(TokenLParen); err != nil {
		return nil, err
	}
	if v, err := attempt(p, p.parseForEachHead); err == nil {
		iterable, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(TokenRParen); err != nil {
			return nil, err
		}
		body, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		return &tree.ForEachStmt{Var: v, Iterable: iterable, Body: body}, nil
	}

	stmt := &tree.ForStmt{}
	if !p.check(TokenSemicolon) {
		decl, err := attempt(p, func() (*tree.LocalVarDecl, error) {
			d, err := p.parseLocalVarDecl()
			if err != nil {
				return nil, err
			}
			if !p.check(TokenSemicolon) {
				return nil, p.unexpected(`";"`)
			}
			return d, nil
		})
		if err == nil {
			stmt.Init = tree.Left[*tree.LocalVarDecl, []tree.Expression](decl)
		} else {
			exprs, err := parseList(p, TokenComma, p.parseExpression)
			if err != nil {
				return nil, err
			}
			stmt.Init = tree.Right[*tree.LocalVarDecl](exprs)
		}
	}
	if _, err := p.expect(TokenSemicolon); err != nil {
		return nil, err
	}
	if !p.check(TokenSemicolon) {
		cond, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		stmt.Cond = cond
	}
	if _, err := p.expect(TokenSemicolon); err != nil {
		return nil, err
	}
	if !p.check(TokenRParen) {
		update, err := parseList(p, TokenComma, p.parseExpression)
		if err != nil {
			return nil, err
		}
		stmt.Update = update
	}
	if _, err := p.expect(TokenRParen); err != nil {
		return nil, err
	}
	body, err := p.parseStatement()
	if err != nil {
		return nil, err
	}
	stmt.Body = body
	return stmt, nil
}

// parseForEachHead parses the Type name : of an enhanced for loop.
func (p *Parser) parseForEachHead() (*tree.FormalParameter, error) {
	m, err := p.parseModifiers()
	if err != nil {
		return nil, err
	}
	t, err := p.parseType()
	if err != nil {
		return nil, err
	}
	name, err := p.parseName()
	if err != nil {
		return nil, err
	}
	dims, err := p.parseDims()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(TokenColon); err != nil {
		return nil, err
	}
	v := tree.NewFormalParameter(t, name)
	v.SetAnnotations(m.annotations)
	v.SetModifiers(m.list)
	v.SetDimensions(dims)
	return v, nil
}

func (p *Parser) parseTry() (tree.Statement, error) {
	tok := p.advance()
	stmt := &tree.TryStmt{}
	if p.accept(TokenLParen) {
		for !p.check(TokenRParen) {
			r, err := p.parseResource()
			if err != nil {
				return nil, err
			}
			stmt.Resources = append(stmt.Resources, r)
			if !p.accept(TokenSemicolon) {
				break
			}
		}
		if _, err := p.expect(TokenRParen); err != nil {
			return nil, err
		}
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	stmt.Body = body
	for p.check(TokenCatch) {
		c, err := p.parseCatch()
		if err != nil {
			return nil, err
		}
		stmt.Catches = append(stmt.Catches, c)
	}
	if p.accept(TokenFinally) {
		if stmt.Finally, err = p.parseBlock(); err != nil {
			return nil, err
		}
	}
	if len(stmt.Resources) == 0 && len(stmt.Catches) == 0 && stmt.Finally == nil {
		return nil, p.errorf(tok, "try without catch, finally or resources")
	}
	return stmt, nil
}

func (p *Parser) parseResource() (tree.Resource, error) {
	decl, err := attempt(p, func() (*tree.LocalVarDecl, error) {
		d, err := p.parseLocalVarDecl()
		if err != nil {
			return nil, err
		}
		if !p.match(TokenSemicolon, TokenRParen) {
			return nil, p.unexpected(`";" or ")"`)
		}
		return d, nil
	})
	if err == nil {
		return tree.Left[*tree.LocalVarDecl, tree.Expression](decl), nil
	}
	e, err := p.parseExpression()
	if err != nil {
		return tree.Resource{}, err
	}
	return tree.Right[*tree.LocalVarDecl](e), nil
}

func (p *Parser) parseCatch() (*tree.CatchClause, error) {
	p.advance()
	if _, err := p.expect(TokenLParen); err != nil {
		return nil, err
	}
	m, err := p.parseModifiers()
	if err != nil {
		return nil, err
	}
	t, err := p.parseTypeList(TokenBitOr)
	if err != nil {
		return nil, err
	}
	name, err := p.parseName()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(TokenRParen); err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	param := tree.NewFormalParameter(t, name)
	param.SetAnnotations(m.annotations)
	param.SetModifiers(m.list)
	return &tree.CatchClause{Param: param, Body: body}, nil
}

func (p *Parser) parseSynchronized() (tree.Statement, error) {
	p.advance()
	lock, err := p.parseParenExpression()
	if err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return &tree.SynchronizedStmt{Lock: lock, Body: body}, nil
}

func (p *Parser) parseAssert() (tree.Statement, error) {
	p.advance()
	cond, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	stmt := &tree.AssertStmt{Cond: cond}
	if p.accept(TokenColon) {
		if stmt.Message, err = p.parseExpression(); err != nil {
			return nil, err
		}
	}
	if _, err := p.expect(TokenSemicolon); err != nil {
		return nil, err
	}
	return stmt, nil
}
