package parser

import "github.com/dhamidi/jpp/java/tree"

func isPrimitiveKind(kind TokenKind) bool {
	switch kind {
	case TokenBoolean, TokenByte, TokenChar, TokenShort,
		TokenInt, TokenLong, TokenFloat, TokenDouble:
		return true
	}
	return false
}

func (p *Parser) parseType() (tree.Type, error) {
	anns, err := p.parseAnnotations()
	if err != nil {
		return nil, err
	}
	return p.parseTypeWith(anns)
}

// parseTypeWith parses a type whose leading annotations have already been
// consumed.
func (p *Parser) parseTypeWith(anns []*tree.Annotation) (tree.Type, error) {
	var t tree.Type
	switch tok := p.peek(); {
	case isPrimitiveKind(tok.Kind):
		p.advance()
		prim, err := tree.NewPrimitiveType(tok.Literal)
		if err != nil {
			return nil, p.errorf(tok, "%s", err)
		}
		prim.SetAnnotations(anns)
		t = prim
	case tok.Kind == TokenVar && p.peekN(1).Kind != TokenDot:
		p.advance()
		t = &tree.VarType{}
	default:
		ct, err := p.parseClassType(anns, false)
		if err != nil {
			return nil, err
		}
		t = ct
	}
	dims, err := p.parseDims()
	if err != nil {
		return nil, err
	}
	if len(dims) > 0 {
		return tree.NewArrayType(t, dims...), nil
	}
	return t, nil
}

// parseResultType parses a method return type, which may be void.
func (p *Parser) parseResultType() (tree.Type, error) {
	if p.accept(TokenVoid) {
		return &tree.VoidType{}, nil
	}
	return p.parseType()
}

// parseClassType parses Outer<A>.Inner<B>. With diamond set, an empty
// type argument list is accepted on the last segment.
func (p *Parser) parseClassType(anns []*tree.Annotation, diamond bool) (*tree.ClassType, error) {
	var t *tree.ClassType
	for {
		name, err := p.parseName()
		if err != nil {
			return nil, err
		}
		ct := &tree.ClassType{Outer: t, Name: name}
		ct.SetAnnotations(anns)
		if p.check(TokenLT) {
			if diamond && p.peekN(1).Kind == TokenGT {
				p.advance()
				p.advance()
				ct.Diamond = true
			} else {
				args, err := p.parseTypeArguments()
				if err != nil {
					return nil, err
				}
				ct.SetTypeArguments(args)
			}
		}
		t = ct
		if !p.check(TokenDot) || !(isIdentifierKind(p.peekN(1).Kind) || p.peekN(1).Kind == TokenAt) {
			return t, nil
		}
		p.advance()
		if anns, err = p.parseAnnotations(); err != nil {
			return nil, err
		}
	}
}

func (p *Parser) parseTypeArguments() ([]tree.TypeArgument, error) {
	if _, err := p.expect(TokenLT); err != nil {
		return nil, err
	}
	args, err := parseList(p, TokenComma, p.parseTypeArgument)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(TokenGT); err != nil {
		return nil, err
	}
	return args, nil
}

func (p *Parser) parseTypeArgument() (tree.TypeArgument, error) {
	anns, err := p.parseAnnotations()
	if err != nil {
		return nil, err
	}
	if !p.accept(TokenQuestion) {
		return p.parseTypeWith(anns)
	}
	w := &tree.WildcardType{}
	w.SetAnnotations(anns)
	switch {
	case p.accept(TokenExtends):
	case p.accept(TokenSuper):
		w.Super = true
	default:
		return w, nil
	}
	if w.Bound, err = p.parseType(); err != nil {
		return nil, err
	}
	return w, nil
}

func (p *Parser) parseTypeParameters() ([]*tree.TypeParameter, error) {
	if _, err := p.expect(TokenLT); err != nil {
		return nil, err
	}
	params, err := parseList(p, TokenComma, func() (*tree.TypeParameter, error) {
		anns, err := p.parseAnnotations()
		if err != nil {
			return nil, err
		}
		name, err := p.parseName()
		if err != nil {
			return nil, err
		}
		var bounds []tree.Type
		if p.accept(TokenExtends) {
			if bounds, err = parseList(p, TokenBitAnd, p.parseType); err != nil {
				return nil, err
			}
		}
		tp := tree.NewTypeParameter(name, bounds...)
		tp.SetAnnotations(anns)
		return tp, nil
	})
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(TokenGT); err != nil {
		return nil, err
	}
	return params, nil
}

// parseDims parses a possibly empty run of [] pairs, each optionally
// annotated.
func (p *Parser) parseDims() ([]*tree.Dimension, error) {
	var dims []*tree.Dimension
	for p.check(TokenLBracket) || p.check(TokenAt) {
		dim, err := attempt(p, func() (*tree.Dimension, error) {
			anns, err := p.parseAnnotations()
			if err != nil {
				return nil, err
			}
			if _, err := p.expect(TokenLBracket); err != nil {
				return nil, err
			}
			if _, err := p.expect(TokenRBracket); err != nil {
				return nil, err
			}
			d := &tree.Dimension{}
			d.SetAnnotations(anns)
			return d, nil
		})
		if err != nil {
			break
		}
		dims = append(dims, dim)
	}
	return dims, nil
}

// parseTypeList parses Type {sep Type} and joins more than one into a
// union or intersection.
func (p *Parser) parseTypeList(sep TokenKind) (tree.Type, error) {
	start := p.peek()
	types, err := parseList(p, sep, p.parseType)
	if err != nil {
		return nil, err
	}
	if len(types) == 1 {
		return types[0], nil
	}
	var t tree.Type
	if sep == TokenBitOr {
		t, err = tree.NewTypeUnion(types...)
	} else {
		t, err = tree.NewTypeIntersection(types...)
	}
	if err != nil {
		return nil, p.errorf(start, "%s", err)
	}
	return t, nil
}

func (p *Parser) parseAnnotations() ([]*tree.Annotation, error) {
	var list []*tree.Annotation
	for p.check(TokenAt) && p.peekN(1).Kind != TokenInterface {
		a, err := p.parseAnnotation()
		if err != nil {
			return nil, err
		}
		list = append(list, a)
	}
	return list, nil
}

func (p *Parser) parseAnnotation() (*tree.Annotation, error) {
	if _, err := p.expect(TokenAt); err != nil {
		return nil, err
	}
	name, err := p.parseQualifiedName()
	if err != nil {
		return nil, err
	}
	a := tree.NewAnnotation(name)
	if !p.accept(TokenLParen) {
		return a, nil
	}
	switch {
	case p.check(TokenRParen):
	case p.isIdentifierLike() && p.peekN(1).Kind == TokenAssign:
		a.Pairs, err = parseList(p, TokenComma, func() (*tree.AnnotationValuePair, error) {
			name, err := p.parseName()
			if err != nil {
				return nil, err
			}
			if _, err := p.expect(TokenAssign); err != nil {
				return nil, err
			}
			value, err := p.parseAnnotationValue()
			if err != nil {
				return nil, err
			}
			return &tree.AnnotationValuePair{Name: name, Value: value}, nil
		})
	default:
		a.Value, err = p.parseAnnotationValue()
	}
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(TokenRParen); err != nil {
		return nil, err
	}
	return a, nil
}

func (p *Parser) parseAnnotationValue() (tree.AnnotationValue, error) {
	switch {
	case p.check(TokenAt):
		return p.parseAnnotation()
	case p.accept(TokenLBrace):
		arr := &tree.AnnotationArray{}
		for !p.check(TokenRBrace) {
			v, err := p.parseAnnotationValue()
			if err != nil {
				return nil, err
			}
			arr.Values = append(arr.Values, v)
			if !p.accept(TokenComma) {
				break
			}
		}
		if _, err := p.expect(TokenRBrace); err != nil {
			return nil, err
		}
		return arr, nil
	}
	start := p.peek()
	e, err := p.parseConditional()
	if err != nil {
		return nil, err
	}
	v, ok := e.(tree.AnnotationValue)
	if !ok {
		return nil, p.errorf(start, "%s cannot be an annotation value", e.Kind())
	}
	return v, nil
}

// exprToClassType reinterprets a name or a chain of field accesses as a
// class type, as in String[]::new or java.util.List.class.
func exprToClassType(e tree.Expression) (*tree.ClassType, bool) {
	switch e := e.(type) {
	case tree.Name:
		return &tree.ClassType{Name: e}, true
	case *tree.FieldAccess:
		outer, ok := exprToClassType(e.Target)
		if !ok {
			return nil, false
		}
		return &tree.ClassType{Outer: outer, Name: e.Name}, true
	}
	return nil, false
}

// exprToQualifiedName reinterprets a name or a chain of field accesses as a
// dotted name, as in Outer.this.
func exprToQualifiedName(e tree.Expression) (tree.QualifiedName, bool) {
	switch e := e.(type) {
	case tree.Name:
		return e.Qualify(), true
	case *tree.FieldAccess:
		q, ok := exprToQualifiedName(e.Target)
		if !ok {
			return tree.QualifiedName{}, false
		}
		return q.Append(e.Name), true
	}
	return tree.QualifiedName{}, false
}
