package format

import (
	"bytes"
	"fmt"
	"io"

	"github.com/tliron/commonlog"

	"github.com/dhamidi/jpp/config"
	"github.com/dhamidi/jpp/java/parser"
	"github.com/dhamidi/jpp/java/transform"
	"github.com/dhamidi/jpp/java/tree"
)

var log = commonlog.GetLogger("jpp.format")

// Options control how a source file is read and lowered.
type Options struct {
	// File names the input in error messages.
	File          string
	Features      parser.Features
	Encoding      string
	MinimalParens bool
}

// DefaultOptions accepts every superset feature in UTF-8 input.
func DefaultOptions() Options {
	return Options{Features: parser.DefaultFeatures()}
}

// OptionsFromConfig derives options from a project configuration.
func OptionsFromConfig(c *config.Config) (Options, error) {
	features, err := c.FeatureSet()
	if err != nil {
		return Options{}, err
	}
	return Options{
		Features:      features,
		Encoding:      c.Source.Encoding,
		MinimalParens: c.Output.MinimalParens,
	}, nil
}

// Parse decodes and parses a compilation unit without lowering it.
func Parse(r io.Reader, opts Options) (tree.Node, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	src, err := DecodeSource(data, opts.Encoding)
	if err != nil {
		return nil, err
	}
	return parser.ParseCompilationUnit(bytes.NewReader(src),
		parser.WithFile(opts.File),
		parser.WithFeatures(opts.Features))
}

// Lower runs the transform pipeline selected by opts over unit.
func Lower(unit tree.Node, opts Options) (tree.Node, error) {
	pipeline := transform.NewPipeline(opts.Features, transform.WithMinimalParens(opts.MinimalParens))
	log.Debugf("%s: passes %v", displayName(opts.File), pipeline.Passes())
	return pipeline.Run(unit)
}

// Transpile reads a source file in the superset and returns the equivalent
// plain Java text, terminated by a newline.
func Transpile(r io.Reader, opts Options) (string, error) {
	unit, err := Parse(r, opts)
	if err != nil {
		return "", err
	}
	lowered, err := Lower(unit, opts)
	if err != nil {
		return "", fmt.Errorf("%s: %w", displayName(opts.File), err)
	}
	return lowered.Code() + "\n", nil
}

func displayName(file string) string {
	if file == "" {
		return "<input>"
	}
	return file
}
