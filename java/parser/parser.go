package parser

import (
	"fmt"
	"io"

	"github.com/tliron/commonlog"

	"github.com/dhamidi/jpp/java/lookahead"
	"github.com/dhamidi/jpp/java/tree"
)

type Option func(*Parser)

func WithFile(path string) Option {
	return func(p *Parser) {
		p.file = path
	}
}

// WithFeatures selects the grammar extensions the parser accepts. Without
// this option every feature is enabled.
func WithFeatures(features Features) Option {
	return func(p *Parser) {
		p.features = features
	}
}

func WithLogger(log commonlog.Logger) Option {
	return func(p *Parser) {
		p.log = log
	}
}

// Parser is a backtracking recursive descent parser producing tree nodes.
// A Parser reads its whole input up front and is used for one parse.
type Parser struct {
	file     string
	features Features
	log      commonlog.Logger
	toks     *lookahead.Cursor[Token]
	eof      Token
}

func newParser(r io.Reader, opts []Option) (*Parser, error) {
	p := &Parser{
		features: DefaultFeatures(),
		log:      commonlog.GetLogger("jpp.parser"),
	}
	for _, opt := range opts {
		opt(p)
	}
	input, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", p.displayName(), err)
	}
	tokens, err := Tokenize(input, p.file)
	if err != nil {
		return nil, err
	}
	p.eof = tokens[len(tokens)-1]
	p.toks = lookahead.New(tokens[:len(tokens)-1])
	p.log.Debugf("%s: %d tokens, features [%s]", p.displayName(), p.toks.Len(), p.features)
	return p, nil
}

func (p *Parser) displayName() string {
	if p.file == "" {
		return "<input>"
	}
	return p.file
}

// ParseCompilationUnit parses a source file. The result is a
// *tree.CompilationUnit, or a *tree.ModularCompilationUnit for a module
// declaration.
func ParseCompilationUnit(r io.Reader, opts ...Option) (tree.Node, error) {
	return parseAll(r, opts, (*Parser).parseCompilationUnit)
}

func ParseExpression(r io.Reader, opts ...Option) (tree.Expression, error) {
	return parseAll(r, opts, (*Parser).parseExpression)
}

func ParseStatement(r io.Reader, opts ...Option) (tree.Statement, error) {
	return parseAll(r, opts, (*Parser).parseBlockStatement)
}

func ParseType(r io.Reader, opts ...Option) (tree.Type, error) {
	return parseAll(r, opts, func(p *Parser) (tree.Type, error) {
		if p.check(TokenVoid) {
			p.advance()
			return &tree.VoidType{}, nil
		}
		return p.parseType()
	})
}

func parseAll[T any](r io.Reader, opts []Option, entry func(*Parser) (T, error)) (T, error) {
	var zero T
	p, err := newParser(r, opts)
	if err != nil {
		return zero, err
	}
	result, err := entry(p)
	if err != nil {
		p.log.Debugf("%s: %s", p.displayName(), err)
		return zero, err
	}
	if !p.check(TokenEOF) {
		return zero, p.unexpected("end of input")
	}
	return result, nil
}

func attempt[T any](p *Parser, f func() (T, error)) (T, error) {
	return lookahead.Attempt(p.toks, f)
}

func (p *Parser) peek() Token {
	return p.peekN(0)
}

func (p *Parser) peekN(n int) Token {
	tok, err := p.toks.Look(n)
	if err != nil {
		return p.eof
	}
	return tok
}

func (p *Parser) advance() Token {
	tok, err := p.toks.Next()
	if err != nil {
		return p.eof
	}
	return tok
}

func (p *Parser) check(kind TokenKind) bool {
	return p.peek().Kind == kind
}

func (p *Parser) match(kinds ...TokenKind) bool {
	for _, kind := range kinds {
		if p.check(kind) {
			return true
		}
	}
	return false
}

// accept consumes the next token if it has the given kind.
func (p *Parser) accept(kind TokenKind) bool {
	if p.check(kind) {
		p.advance()
		return true
	}
	return false
}

func (p *Parser) expect(kind TokenKind) (Token, error) {
	if p.check(kind) {
		return p.advance(), nil
	}
	return Token{}, p.unexpected(fmt.Sprintf("%q", kind.String()))
}

// adjacentTo reports whether the token n positions ahead directly follows
// the one before it, with no whitespace in between.
func (p *Parser) adjacentTo(n int) bool {
	return adjacent(p.peekN(n-1), p.peekN(n))
}

func (p *Parser) unexpected(expected string) error {
	tok := p.peek()
	return &SyntaxError{Pos: tok.Span.Start, Expected: expected, Found: tok}
}

func (p *Parser) errorf(tok Token, format string, args ...any) error {
	return &SyntaxError{Pos: tok.Span.Start, Msg: fmt.Sprintf(format, args...)}
}

func (p *Parser) requireFeature(f Feature) error {
	if p.features.Enabled(f) {
		return nil
	}
	return &FeatureError{Pos: p.peek().Span.Start, Feature: f}
}

func isIdentifierKind(kind TokenKind) bool {
	switch kind {
	case TokenIdent,
		TokenModule, TokenOpen, TokenRequires, TokenTransitive,
		TokenExports, TokenOpens, TokenTo, TokenUses, TokenProvides, TokenWith,
		TokenVar, TokenYield, TokenRecord, TokenSealed, TokenPermits, TokenWhen:
		return true
	}
	return false
}

func (p *Parser) isIdentifierLike() bool {
	return isIdentifierKind(p.peek().Kind)
}

func (p *Parser) parseName() (tree.Name, error) {
	if !p.isIdentifierLike() {
		return tree.Name{}, p.unexpected("identifier")
	}
	tok := p.advance()
	name, err := tree.NewName(tok.Literal)
	if err != nil {
		return tree.Name{}, p.errorf(tok, "%s", err)
	}
	return name, nil
}

func (p *Parser) parseQualifiedName() (tree.QualifiedName, error) {
	first, err := p.parseName()
	if err != nil {
		return tree.QualifiedName{}, err
	}
	names := []tree.Name{first}
	for p.check(TokenDot) && isIdentifierKind(p.peekN(1).Kind) {
		p.advance()
		name, err := p.parseName()
		if err != nil {
			return tree.QualifiedName{}, err
		}
		names = append(names, name)
	}
	return tree.NewQualifiedName(names...)
}

// parseList parses item {sep item}.
func parseList[T any](p *Parser, sep TokenKind, item func() (T, error)) ([]T, error) {
	var list []T
	for {
		v, err := item()
		if err != nil {
			return nil, err
		}
		list = append(list, v)
		if !p.accept(sep) {
			return list, nil
		}
	}
}

// parseDelimited parses open [item {, item}] close.
func parseDelimited[T any](p *Parser, open, closing TokenKind, item func() (T, error)) ([]T, error) {
	if _, err := p.expect(open); err != nil {
		return nil, err
	}
	var list []T
	if !p.check(closing) {
		var err error
		if list, err = parseList(p, TokenComma, item); err != nil {
			return nil, err
		}
	}
	if _, err := p.expect(closing); err != nil {
		return nil, err
	}
	return list, nil
}
