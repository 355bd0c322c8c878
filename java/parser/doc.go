// Package parser turns source text in the Java superset into tree nodes.
//
// # Overview
//
// The parser reads its whole input, tokenizes it and then runs a
// backtracking recursive descent over the token slice. Productions that
// cannot be told apart by a fixed lookahead, such as a cast versus a
// parenthesized expression or a local variable declaration versus an
// expression statement, are attempted in order under a checkpoint of the
// token cursor and rewound on failure.
//
//	┌─────────────┐     ┌─────────────┐     ┌──────────────┐     ┌─────────────┐
//	│   Input     │────▶│   Lexer     │────▶│  lookahead   │────▶│   Parser    │
//	│  (bytes)    │     │  (tokens)   │     │   Cursor     │     │ (tree.Node) │
//	└─────────────┘     └─────────────┘     └──────────────┘     └─────────────┘
//
// The result is a tree of github.com/dhamidi/jpp/java/tree nodes. Comments
// and layout are not preserved, except for /** */ doc comments, which the
// lexer attaches to the next token and the parser moves onto the
// declaration that follows.
//
// # Entry Points
//
//	// ParseCompilationUnit parses a complete source file. The result is a
//	// *tree.CompilationUnit, or a *tree.ModularCompilationUnit when the
//	// file holds a module declaration.
//	func ParseCompilationUnit(r io.Reader, opts ...Option) (tree.Node, error)
//
//	// ParseExpression parses a standalone expression.
//	func ParseExpression(r io.Reader, opts ...Option) (tree.Expression, error)
//
//	// ParseStatement parses one block statement, including local variable
//	// and local class declarations.
//	func ParseStatement(r io.Reader, opts ...Option) (tree.Statement, error)
//
//	// ParseType parses a type, including void.
//	func ParseType(r io.Reader, opts ...Option) (tree.Type, error)
//
// Each entry point requires the whole input to be consumed.
//
// # Superset Features
//
// On top of Java the parser accepts three extensions, each of which can be
// switched off with [WithFeatures]:
//
//	print a, b;          // PrintStatements: print and println statements
//	x !instanceof T      // NotInstanceof: negated instanceof
//	non-static void f()  // ExtendedModifiers: non-X modifiers and package
//
// Using an extension that is switched off yields a [*FeatureError].
// The productions each feature adds are written down in superset.ebnf,
// available through [Grammar] and [GrammarText].
//
// # Errors
//
// Parsing stops at the first error. Malformed input yields a
// [*SyntaxError] carrying the position and, where the parser was looking
// for a particular token, what it expected and what it found:
//
//	Main.java:3:14: expected ";", found "}"
//
// Both error types wrap sentinel values, so callers can test them with
// errors.Is against [ErrSyntax] and [ErrFeatureDisabled].
//
// # Greater-than Tokens
//
// The lexer emits every > as its own token so that List<List<String>>
// closes two type argument lists. The expression parser joins adjacent >
// tokens back into >=, >>, >>>, >>= and >>>=.
//
// # Example Usage
//
//	unit, err := parser.ParseCompilationUnit(f, parser.WithFile("Main.java"))
//	if err != nil {
//		return err
//	}
//	fmt.Println(unit.Code())
//
//	e, err := parser.ParseExpression(strings.NewReader("x + y * 2"),
//		parser.WithFeatures(parser.Features(0)))
//
// # Thread Safety
//
// A Parser is used for one parse. The package level functions are safe
// for concurrent use.
package parser
