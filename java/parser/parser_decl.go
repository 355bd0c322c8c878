package parser

import "github.com/dhamidi/jpp/java/tree"

// modifiers collects the doc comment, annotations and modifier keywords
// that precede a declaration.
type modifiers struct {
	doc         string
	annotations []*tree.Annotation
	list        []tree.Modifier
}

func isModifierKind(kind TokenKind) bool {
	switch kind {
	case TokenPublic, TokenProtected, TokenPrivate, TokenStatic, TokenAbstract, TokenFinal,
		TokenNative, TokenSynchronized, TokenTransient, TokenVolatile, TokenStrictfp, TokenDefault:
		return true
	}
	return false
}

func (p *Parser) parseModifiers() (modifiers, error) {
	m := modifiers{doc: p.peek().Doc}
	for {
		tok := p.peek()
		switch {
		case tok.Kind == TokenAt && p.peekN(1).Kind != TokenInterface:
			a, err := p.parseAnnotation()
			if err != nil {
				return m, err
			}
			m.annotations = append(m.annotations, a)
			continue
		case isModifierKind(tok.Kind), tok.Kind == TokenNonSealed:
		case tok.Kind == TokenSealed:
			if !p.sealedIsModifier() {
				return m, nil
			}
		case tok.Kind == TokenNegatedModifier:
			if err := p.requireFeature(ExtendedModifiers); err != nil {
				return m, err
			}
		case tok.Kind == TokenPackage && !p.atPackageDecl():
			if err := p.requireFeature(ExtendedModifiers); err != nil {
				return m, err
			}
		default:
			return m, nil
		}
		p.advance()
		mod, err := tree.LookupModifier(tok.Literal)
		if err != nil {
			return m, p.errorf(tok, "%s", err)
		}
		m.list = append(m.list, mod)
	}
}

// sealedIsModifier tells the sealed modifier apart from an identifier
// named sealed.
func (p *Parser) sealedIsModifier() bool {
	switch next := p.peekN(1).Kind; {
	case isModifierKind(next):
		return true
	case next == TokenClass, next == TokenInterface, next == TokenAt,
		next == TokenSealed, next == TokenNonSealed, next == TokenNegatedModifier:
		return true
	}
	return false
}

// atPackageDecl reports whether the package keyword at the cursor starts
// package a.b; rather than being a visibility modifier.
func (p *Parser) atPackageDecl() bool {
	for i := 1; isIdentifierKind(p.peekN(i).Kind); i += 2 {
		switch p.peekN(i + 1).Kind {
		case TokenSemicolon:
			return true
		case TokenDot:
		default:
			return false
		}
	}
	return false
}

type declaration interface {
	tree.Documented
	tree.Annotated
	tree.Modified
}

func (p *Parser) applyModifiers(d declaration, m modifiers) error {
	d.SetAnnotations(m.annotations)
	d.SetModifiers(m.list)
	if err := d.SetDocComment(m.doc); err != nil {
		return p.errorf(p.peek(), "%s", err)
	}
	return nil
}

func (p *Parser) parseCompilationUnit() (tree.Node, error) {
	unit := &tree.CompilationUnit{}
	if p.atAnnotatedPackageDecl() {
		pkg, err := p.parsePackageDecl()
		if err != nil {
			return nil, err
		}
		unit.Package = pkg
	}
	for p.check(TokenImport) || p.check(TokenSemicolon) {
		if p.accept(TokenSemicolon) {
			continue
		}
		imp, err := p.parseImport()
		if err != nil {
			return nil, err
		}
		unit.Imports = append(unit.Imports, imp)
	}
	if p.atModuleDecl() {
		if unit.Package != nil {
			return nil, p.errorf(p.peek(), "module declaration cannot follow a package declaration")
		}
		mod, err := p.parseModuleDecl()
		if err != nil {
			return nil, err
		}
		return &tree.ModularCompilationUnit{Imports: unit.Imports, Module: mod}, nil
	}
	for !p.check(TokenEOF) {
		if p.accept(TokenSemicolon) {
			continue
		}
		m, err := p.parseModifiers()
		if err != nil {
			return nil, err
		}
		decl, err := p.parseTypeDeclRest(m)
		if err != nil {
			return nil, err
		}
		unit.Types = append(unit.Types, decl)
	}
	return unit, nil
}

func (p *Parser) atAnnotatedPackageDecl() bool {
	s := p.toks.Enter()
	defer s.Close()
	defer s.Reset()
	if _, err := p.parseAnnotations(); err != nil {
		return false
	}
	return p.check(TokenPackage) && p.atPackageDecl()
}

func (p *Parser) atModuleDecl() bool {
	s := p.toks.Enter()
	defer s.Close()
	defer s.Reset()
	if _, err := p.parseAnnotations(); err != nil {
		return false
	}
	p.accept(TokenOpen)
	return p.check(TokenModule) && isIdentifierKind(p.peekN(1).Kind)
}

func (p *Parser) parsePackageDecl() (*tree.PackageDecl, error) {
	doc := p.peek().Doc
	anns, err := p.parseAnnotations()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(TokenPackage); err != nil {
		return nil, err
	}
	name, err := p.parseQualifiedName()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(TokenSemicolon); err != nil {
		return nil, err
	}
	pkg := &tree.PackageDecl{Name: name}
	pkg.SetAnnotations(anns)
	if err := pkg.SetDocComment(doc); err != nil {
		return nil, p.errorf(p.peek(), "%s", err)
	}
	return pkg, nil
}

func (p *Parser) parseImport() (*tree.ImportDecl, error) {
	p.advance()
	imp := &tree.ImportDecl{Static: p.accept(TokenStatic)}
	name, err := p.parseQualifiedName()
	if err != nil {
		return nil, err
	}
	imp.Name = name
	if p.accept(TokenDot) {
		if _, err := p.expect(TokenStar); err != nil {
			return nil, err
		}
		imp.OnDemand = true
	}
	if _, err := p.expect(TokenSemicolon); err != nil {
		return nil, err
	}
	return imp, nil
}

func (p *Parser) parseModuleDecl() (*tree.ModuleDecl, error) {
	doc := p.peek().Doc
	anns, err := p.parseAnnotations()
	if err != nil {
		return nil, err
	}
	mod := &tree.ModuleDecl{Open: p.accept(TokenOpen)}
	if _, err := p.expect(TokenModule); err != nil {
		return nil, err
	}
	if mod.Name, err = p.parseQualifiedName(); err != nil {
		return nil, err
	}
	if _, err := p.expect(TokenLBrace); err != nil {
		return nil, err
	}
	for !p.accept(TokenRBrace) {
		d, err := p.parseDirective()
		if err != nil {
			return nil, err
		}
		mod.Directives = append(mod.Directives, d)
	}
	mod.SetAnnotations(anns)
	if err := mod.SetDocComment(doc); err != nil {
		return nil, p.errorf(p.peek(), "%s", err)
	}
	return mod, nil
}

func (p *Parser) parseDirective() (tree.Directive, error) {
	tok := p.advance()
	var d tree.Directive
	var err error
	switch tok.Kind {
	case TokenRequires:
		d, err = p.parseRequires()
	case TokenExports, TokenOpens:
		var pkg tree.QualifiedName
		var to []tree.QualifiedName
		if pkg, err = p.parseQualifiedName(); err != nil {
			return nil, err
		}
		if p.accept(TokenTo) {
			if to, err = parseList(p, TokenComma, p.parseQualifiedName); err != nil {
				return nil, err
			}
		}
		if tok.Kind == TokenExports {
			d = &tree.ExportsDirective{Package: pkg, To: to}
		} else {
			d = &tree.OpensDirective{Package: pkg, To: to}
		}
	case TokenUses:
		var service tree.QualifiedName
		service, err = p.parseQualifiedName()
		d = &tree.UsesDirective{Service: service}
	case TokenProvides:
		var service tree.QualifiedName
		var with []tree.QualifiedName
		if service, err = p.parseQualifiedName(); err != nil {
			return nil, err
		}
		if _, err := p.expect(TokenWith); err != nil {
			return nil, err
		}
		with, err = parseList(p, TokenComma, p.parseQualifiedName)
		d = &tree.ProvidesDirective{Service: service, With: with}
	default:
		return nil, &SyntaxError{Pos: tok.Span.Start, Expected: "module directive", Found: tok}
	}
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(TokenSemicolon); err != nil {
		return nil, err
	}
	return d, nil
}

func (p *Parser) parseRequires() (tree.Directive, error) {
	var mods []tree.Modifier
	for {
		// requires transitive; names a module called transitive.
		next := p.peekN(1).Kind
		if next == TokenSemicolon || next == TokenDot {
			break
		}
		if p.accept(TokenTransitive) {
			mods = append(mods, tree.Transitive)
		} else if p.accept(TokenStatic) {
			mods = append(mods, tree.Static)
		} else {
			break
		}
	}
	name, err := p.parseQualifiedName()
	if err != nil {
		return nil, err
	}
	d := &tree.RequiresDirective{Module: name}
	d.SetModifiers(mods)
	return d, nil
}

func (p *Parser) atTypeDeclKeyword() bool {
	switch p.peek().Kind {
	case TokenClass, TokenInterface, TokenEnum:
		return true
	case TokenAt:
		return p.peekN(1).Kind == TokenInterface
	case TokenRecord:
		if !isIdentifierKind(p.peekN(1).Kind) {
			return false
		}
		next := p.peekN(2).Kind
		return next == TokenLParen || next == TokenLT
	}
	return false
}

// parseTypeDeclRest parses a type declaration whose modifiers have been
// consumed.
func (p *Parser) parseTypeDeclRest(m modifiers) (tree.TypeDecl, error) {
	var decl tree.TypeDecl
	var err error
	switch tok := p.peek(); {
	case tok.Kind == TokenClass:
		decl, err = p.parseClassDecl()
	case tok.Kind == TokenInterface:
		decl, err = p.parseInterfaceDecl()
	case tok.Kind == TokenAt && p.peekN(1).Kind == TokenInterface:
		decl, err = p.parseAnnotationDecl()
	case tok.Kind == TokenEnum:
		decl, err = p.parseEnumDecl()
	case tok.Kind == TokenRecord && isIdentifierKind(p.peekN(1).Kind):
		decl, err = p.parseRecordDecl()
	default:
		return nil, p.unexpected("type declaration")
	}
	if err != nil {
		return nil, err
	}
	if err := p.applyModifiers(decl, m); err != nil {
		return nil, err
	}
	return decl, nil
}

func (p *Parser) parseOptionalTypeParameters() ([]*tree.TypeParameter, error) {
	if !p.check(TokenLT) {
		return nil, nil
	}
	return p.parseTypeParameters()
}

// parseTypeClause parses keyword T1, T2 if the keyword is present.
func (p *Parser) parseTypeClause(keyword TokenKind) ([]tree.Type, error) {
	if !p.accept(keyword) {
		return nil, nil
	}
	return parseList(p, TokenComma, p.parseType)
}

func (p *Parser) parseClassDecl() (*tree.ClassDecl, error) {
	p.advance()
	name, err := p.parseName()
	if err != nil {
		return nil, err
	}
	d := tree.NewClassDecl(name)
	params, err := p.parseOptionalTypeParameters()
	if err != nil {
		return nil, err
	}
	d.SetTypeParameters(params)
	if p.accept(TokenExtends) {
		if d.Extends, err = p.parseType(); err != nil {
			return nil, err
		}
	}
	if d.Implements, err = p.parseTypeClause(TokenImplements); err != nil {
		return nil, err
	}
	if d.Permits, err = p.parseTypeClause(TokenPermits); err != nil {
		return nil, err
	}
	if d.Body, err = p.parseClassBody(bodyClass); err != nil {
		return nil, err
	}
	return d, nil
}

func (p *Parser) parseInterfaceDecl() (*tree.InterfaceDecl, error) {
	p.advance()
	name, err := p.parseName()
	if err != nil {
		return nil, err
	}
	d := &tree.InterfaceDecl{}
	d.Name = name
	params, err := p.parseOptionalTypeParameters()
	if err != nil {
		return nil, err
	}
	d.SetTypeParameters(params)
	if d.Extends, err = p.parseTypeClause(TokenExtends); err != nil {
		return nil, err
	}
	if d.Permits, err = p.parseTypeClause(TokenPermits); err != nil {
		return nil, err
	}
	if d.Body, err = p.parseClassBody(bodyClass); err != nil {
		return nil, err
	}
	return d, nil
}

func (p *Parser) parseAnnotationDecl() (*tree.AnnotationDecl, error) {
	p.advance()
	p.advance()
	name, err := p.parseName()
	if err != nil {
		return nil, err
	}
	d := &tree.AnnotationDecl{}
	d.Name = name
	if d.Body, err = p.parseClassBody(bodyAnnotation); err != nil {
		return nil, err
	}
	return d, nil
}

func (p *Parser) parseEnumDecl() (*tree.EnumDecl, error) {
	p.advance()
	name, err := p.parseName()
	if err != nil {
		return nil, err
	}
	d := &tree.EnumDecl{}
	d.Name = name
	if d.Implements, err = p.parseTypeClause(TokenImplements); err != nil {
		return nil, err
	}
	if _, err := p.expect(TokenLBrace); err != nil {
		return nil, err
	}
	for p.isIdentifierLike() || p.check(TokenAt) {
		c, err := p.parseEnumConstant()
		if err != nil {
			return nil, err
		}
		d.Constants = append(d.Constants, c)
		if !p.accept(TokenComma) {
			break
		}
	}
	if p.accept(TokenSemicolon) {
		members, err := p.parseMembers(bodyClass)
		if err != nil {
			return nil, err
		}
		d.Body = &tree.ClassBody{Members: members}
	}
	if _, err := p.expect(TokenRBrace); err != nil {
		return nil, err
	}
	return d, nil
}

func (p *Parser) parseEnumConstant() (*tree.EnumConstant, error) {
	doc := p.peek().Doc
	anns, err := p.parseAnnotations()
	if err != nil {
		return nil, err
	}
	name, err := p.parseName()
	if err != nil {
		return nil, err
	}
	c := &tree.EnumConstant{Name: name}
	if p.check(TokenLParen) {
		if c.Args, err = p.parseArguments(); err != nil {
			return nil, err
		}
	}
	if p.check(TokenLBrace) {
		if c.Body, err = p.parseClassBody(bodyClass); err != nil {
			return nil, err
		}
	}
	c.SetAnnotations(anns)
	if err := c.SetDocComment(doc); err != nil {
		return nil, p.errorf(p.peek(), "%s", err)
	}
	return c, nil
}

func (p *Parser) parseRecordDecl() (*tree.RecordDecl, error) {
	p.advance()
	name, err := p.parseName()
	if err != nil {
		return nil, err
	}
	d := &tree.RecordDecl{}
	d.Name = name
	params, err := p.parseOptionalTypeParameters()
	if err != nil {
		return nil, err
	}
	d.SetTypeParameters(params)
	if d.Components, err = parseDelimited(p, TokenLParen, TokenRParen, p.parseFormalParameter); err != nil {
		return nil, err
	}
	if d.Implements, err = p.parseTypeClause(TokenImplements); err != nil {
		return nil, err
	}
	if d.Body, err = p.parseClassBody(bodyRecord); err != nil {
		return nil, err
	}
	return d, nil
}

// bodyKind selects which members a class body admits.
type bodyKind int

const (
	bodyClass bodyKind = iota
	// bodyRecord admits compact constructors.
	bodyRecord
	// bodyAnnotation admits annotation methods with default values.
	bodyAnnotation
)

func (p *Parser) parseClassBody(kind bodyKind) (*tree.ClassBody, error) {
	if _, err := p.expect(TokenLBrace); err != nil {
		return nil, err
	}
	members, err := p.parseMembers(kind)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(TokenRBrace); err != nil {
		return nil, err
	}
	return &tree.ClassBody{Members: members}, nil
}

// parseMembers parses members up to, but not including, the closing brace.
func (p *Parser) parseMembers(kind bodyKind) ([]tree.Member, error) {
	var members []tree.Member
	for !p.check(TokenRBrace) {
		if p.check(TokenEOF) {
			return nil, p.unexpected(`"}"`)
		}
		if p.accept(TokenSemicolon) {
			continue
		}
		m, err := p.parseMember(kind)
		if err != nil {
			return nil, err
		}
		members = append(members, m)
	}
	return members, nil
}

func (p *Parser) parseMember(kind bodyKind) (tree.Member, error) {
	if p.check(TokenLBrace) || (p.check(TokenStatic) && p.peekN(1).Kind == TokenLBrace) {
		static := p.accept(TokenStatic)
		body, err := p.parseBlock()
		if err != nil {
			return nil, err
		}
		return &tree.InitializerBlock{Static: static, Body: body}, nil
	}

	m, err := p.parseModifiers()
	if err != nil {
		return nil, err
	}
	if p.atTypeDeclKeyword() {
		return p.parseTypeDeclRest(m)
	}
	typeParams, err := p.parseOptionalTypeParameters()
	if err != nil {
		return nil, err
	}
	if p.isIdentifierLike() {
		switch next := p.peekN(1).Kind; {
		case next == TokenLParen:
			return p.parseConstructor(m, typeParams)
		case next == TokenLBrace && kind == bodyRecord && typeParams == nil:
			return p.parseConstructor(m, nil)
		}
	}

	start := p.peek()
	t, err := p.parseResultType()
	if err != nil {
		return nil, err
	}
	name, err := p.parseName()
	if err != nil {
		return nil, err
	}
	if p.check(TokenLParen) {
		if kind == bodyAnnotation {
			return p.parseAnnotationMethod(m, t, name)
		}
		return p.parseMethod(m, typeParams, t, name)
	}

	if _, ok := t.(*tree.VoidType); ok || typeParams != nil {
		return nil, p.unexpected(`"("`)
	}
	first, err := p.parseVariableDeclaratorRest(name)
	if err != nil {
		return nil, err
	}
	decls := []*tree.VariableDeclarator{first}
	for p.accept(TokenComma) {
		d, err := p.parseVariableDeclarator()
		if err != nil {
			return nil, err
		}
		decls = append(decls, d)
	}
	if _, err := p.expect(TokenSemicolon); err != nil {
		return nil, err
	}
	f, err := tree.NewFieldDecl(t, decls...)
	if err != nil {
		return nil, p.errorf(start, "%s", err)
	}
	if err := p.applyModifiers(f, m); err != nil {
		return nil, err
	}
	return f, nil
}

func (p *Parser) parseThrows() ([]tree.Type, error) {
	return p.parseTypeClause(TokenThrows)
}

func (p *Parser) parseMethod(m modifiers, typeParams []*tree.TypeParameter, t tree.Type, name tree.Name) (*tree.MethodDecl, error) {
	md := &tree.MethodDecl{ReturnType: t}
	md.Name = name
	md.SetTypeParameters(typeParams)
	recv, params, err := p.parseFormalParameters()
	if err != nil {
		return nil, err
	}
	md.Receiver, md.Params = recv, params
	// int f()[] declares an array return type.
	dims, err := p.parseDims()
	if err != nil {
		return nil, err
	}
	if len(dims) > 0 {
		md.ReturnType = tree.NewArrayType(t, dims...)
	}
	if md.Throws, err = p.parseThrows(); err != nil {
		return nil, err
	}
	if !p.accept(TokenSemicolon) {
		if md.Body, err = p.parseBlock(); err != nil {
			return nil, err
		}
	}
	if err := p.applyModifiers(md, m); err != nil {
		return nil, err
	}
	return md, nil
}

func (p *Parser) parseConstructor(m modifiers, typeParams []*tree.TypeParameter) (*tree.ConstructorDecl, error) {
	name, err := p.parseName()
	if err != nil {
		return nil, err
	}
	c := &tree.ConstructorDecl{}
	c.Name = name
	c.SetTypeParameters(typeParams)
	if p.check(TokenLParen) {
		if c.Receiver, c.Params, err = p.parseFormalParameters(); err != nil {
			return nil, err
		}
	} else {
		c.Compact = true
	}
	if c.Throws, err = p.parseThrows(); err != nil {
		return nil, err
	}
	if c.Body, err = p.parseBlock(); err != nil {
		return nil, err
	}
	if err := p.applyModifiers(c, m); err != nil {
		return nil, err
	}
	return c, nil
}

func (p *Parser) parseAnnotationMethod(m modifiers, t tree.Type, name tree.Name) (*tree.AnnotationMethod, error) {
	if _, err := p.expect(TokenLParen); err != nil {
		return nil, err
	}
	if _, err := p.expect(TokenRParen); err != nil {
		return nil, err
	}
	am := &tree.AnnotationMethod{Type: t, Name: name}
	if p.accept(TokenDefault) {
		v, err := p.parseAnnotationValue()
		if err != nil {
			return nil, err
		}
		am.Default = v
	}
	if _, err := p.expect(TokenSemicolon); err != nil {
		return nil, err
	}
	if err := p.applyModifiers(am, m); err != nil {
		return nil, err
	}
	return am, nil
}

// parseFormalParameters parses a parenthesized parameter list, including
// an optional leading receiver parameter.
func (p *Parser) parseFormalParameters() (*tree.ThisParameter, []*tree.FormalParameter, error) {
	if _, err := p.expect(TokenLParen); err != nil {
		return nil, nil, err
	}
	var recv *tree.ThisParameter
	if !p.check(TokenRParen) {
		if r, err := attempt(p, p.parseReceiver); err == nil {
			recv = r
			if !p.accept(TokenComma) {
				_, err := p.expect(TokenRParen)
				return recv, nil, err
			}
		}
	}
	var params []*tree.FormalParameter
	if !p.check(TokenRParen) {
		var err error
		if params, err = parseList(p, TokenComma, p.parseFormalParameter); err != nil {
			return nil, nil, err
		}
	}
	if _, err := p.expect(TokenRParen); err != nil {
		return nil, nil, err
	}
	return recv, params, nil
}

// parseReceiver parses Type this or Type Outer.this.
func (p *Parser) parseReceiver() (*tree.ThisParameter, error) {
	anns, err := p.parseAnnotations()
	if err != nil {
		return nil, err
	}
	t, err := p.parseType()
	if err != nil {
		return nil, err
	}
	var names []tree.Name
	for p.isIdentifierLike() && p.peekN(1).Kind == TokenDot {
		name, err := p.parseName()
		if err != nil {
			return nil, err
		}
		names = append(names, name)
		p.advance()
	}
	if _, err := p.expect(TokenThis); err != nil {
		return nil, err
	}
	r := &tree.ThisParameter{Type: t}
	if len(names) > 0 {
		if r.Qualifier, err = tree.NewQualifiedName(names...); err != nil {
			return nil, err
		}
	}
	r.SetAnnotations(anns)
	return r, nil
}

func (p *Parser) parseFormalParameter() (*tree.FormalParameter, error) {
	m, err := p.parseModifiers()
	if err != nil {
		return nil, err
	}
	t, err := p.parseType()
	if err != nil {
		return nil, err
	}
	varargs := p.accept(TokenEllipsis)
	name, err := p.parseName()
	if err != nil {
		return nil, err
	}
	dims, err := p.parseDims()
	if err != nil {
		return nil, err
	}
	param := tree.NewFormalParameter(t, name)
	param.Varargs = varargs
	param.SetDimensions(dims)
	param.SetAnnotations(m.annotations)
	param.SetModifiers(m.list)
	return param, nil
}
