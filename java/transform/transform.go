// Package transform lowers superset syntax to plain Java by rewriting
// java/tree nodes in place.
//
// Every pass is a tree.Visitor run through tree.Walk. A Pipeline picks the
// passes needed for a feature set and runs them in a fixed order:
//
//	strip-modifiers       non-X modifiers and package visibility
//	lower-not-instanceof  x !instanceof T  =>  !(x instanceof T)
//	lower-print           print a, b;      =>  System.out.print(a + " " + b);
//	strip-parens          drop every ParenExpr, leaving parenthesization
//	                      to the precedence aware renderer
package transform

import (
	"fmt"

	"github.com/tliron/commonlog"

	"github.com/dhamidi/jpp/java/parser"
	"github.com/dhamidi/jpp/java/tree"
)

// Pass is a single rewrite over a tree.
type Pass struct {
	Name string
	// Feature is the grammar feature whose syntax the pass removes. Passes
	// that are not tied to a feature leave it nil.
	Feature *parser.Feature
	Apply   func(root tree.Node) (tree.Node, error)
}

func feature(f parser.Feature) *parser.Feature { return &f }

var (
	StripModifiersPass     = Pass{Name: "strip-modifiers", Feature: feature(parser.ExtendedModifiers), Apply: StripModifiers}
	LowerNotInstanceofPass = Pass{Name: "lower-not-instanceof", Feature: feature(parser.NotInstanceof), Apply: LowerNotInstanceof}
	LowerPrintPass         = Pass{Name: "lower-print", Feature: feature(parser.PrintStatements), Apply: LowerPrint}
	StripParensPass        = Pass{Name: "strip-parens", Apply: StripParens}
)

// Passes returns every pass in pipeline order.
func Passes() []Pass {
	return []Pass{StripModifiersPass, LowerNotInstanceofPass, LowerPrintPass, StripParensPass}
}

// LookupPass returns the pass called name.
func LookupPass(name string) (Pass, error) {
	for _, p := range Passes() {
		if p.Name == name {
			return p, nil
		}
	}
	return Pass{}, fmt.Errorf("unknown pass %q", name)
}

type Option func(*Pipeline)

// WithMinimalParens appends strip-parens to the pipeline.
func WithMinimalParens(enabled bool) Option {
	return func(p *Pipeline) {
		p.minimalParens = enabled
	}
}

func WithLogger(log commonlog.Logger) Option {
	return func(p *Pipeline) {
		p.log = log
	}
}

// Pipeline runs an ordered list of passes.
type Pipeline struct {
	passes        []Pass
	minimalParens bool
	log           commonlog.Logger
}

// NewPipeline returns the pipeline that lowers every feature in features.
// Syntax of disabled features cannot occur in a parsed tree, so their
// passes are left out.
func NewPipeline(features parser.Features, opts ...Option) *Pipeline {
	p := &Pipeline{log: commonlog.GetLogger("jpp.transform")}
	for _, opt := range opts {
		opt(p)
	}
	for _, pass := range Passes() {
		switch {
		case pass.Feature != nil:
			if features.Enabled(*pass.Feature) {
				p.passes = append(p.passes, pass)
			}
		case p.minimalParens:
			p.passes = append(p.passes, pass)
		}
	}
	return p
}

// Passes returns the names of the passes p runs, in order.
func (p *Pipeline) Passes() []string {
	names := make([]string, len(p.passes))
	for i, pass := range p.passes {
		names[i] = pass.Name
	}
	return names
}

// Run applies every pass to root and returns the resulting root.
func (p *Pipeline) Run(root tree.Node) (tree.Node, error) {
	for _, pass := range p.passes {
		p.log.Debugf("running pass %s", pass.Name)
		var err error
		if root, err = pass.Apply(root); err != nil {
			return nil, fmt.Errorf("%s: %w", pass.Name, err)
		}
	}
	return root, nil
}

// nested lets a visitor rewrite the children of a node it is about to
// replace, since tree.Walk does not revisit replacements. The first error
// is kept and reported when the outer walk ends.
type nested struct {
	err error
}

func (n *nested) walk(v tree.Visitor, e tree.Expression) tree.Expression {
	if n.err != nil {
		return e
	}
	out, err := tree.Walk(v, e)
	if err != nil {
		n.err = err
		return e
	}
	rewritten, ok := out.(tree.Expression)
	if !ok {
		n.err = fmt.Errorf("rewrite of %s produced %s", e.Kind(), out.Kind())
		return e
	}
	return rewritten
}

func run(v tree.Visitor, state *nested, root tree.Node) (tree.Node, error) {
	out, err := tree.Walk(v, root)
	if err != nil {
		return nil, err
	}
	if state.err != nil {
		return nil, state.err
	}
	return out, nil
}
