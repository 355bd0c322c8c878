package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	"github.com/dhamidi/jpp/config"
	"github.com/dhamidi/jpp/format"
	"github.com/dhamidi/jpp/java/parser"
)

// sourceFlags are the flags shared by commands that read source files.
// They override the project file.
type sourceFlags struct {
	enable        []string
	disable       []string
	encoding      string
	minimalParens bool
}

func (f *sourceFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringSliceVar(&f.enable, "enable", nil, "enable a language feature (repeatable)")
	cmd.Flags().StringSliceVar(&f.disable, "disable", nil, "disable a language feature (repeatable)")
	cmd.Flags().StringVar(&f.encoding, "encoding", "", "source character set (default from jpp.toml, else UTF-8)")
	cmd.Flags().BoolVar(&f.minimalParens, "minimal-parens", false, "drop redundant parentheses from the output")
}

// load reads jpp.toml from the working directory upward and applies the
// command line on top of it.
func (f *sourceFlags) load(cmd *cobra.Command) (*config.Config, format.Options, error) {
	dir, err := os.Getwd()
	if err != nil {
		dir = "."
	}
	c, path, err := config.FindAndLoad(dir)
	if err != nil {
		return nil, format.Options{}, err
	}
	if path != "" {
		commonlog.GetLogger("jpp").Infof("using %s", path)
	}
	c.Features.Enable = append(c.Features.Enable, f.enable...)
	c.Features.Disable = append(c.Features.Disable, f.disable...)
	// A feature enabled on the command line overrides one disabled in the
	// project file.
	if len(f.enable) > 0 {
		c.Features.Disable = remove(c.Features.Disable, f.enable)
	}
	if f.encoding != "" {
		c.Source.Encoding = f.encoding
	}
	if cmd.Flags().Changed("minimal-parens") {
		c.Output.MinimalParens = f.minimalParens
	}
	opts, err := format.OptionsFromConfig(c)
	if err != nil {
		return nil, format.Options{}, fmt.Errorf("features: %w", err)
	}
	return c, opts, nil
}

func remove(list, drop []string) []string {
	var out []string
outer:
	for _, s := range list {
		for _, d := range drop {
			if s == d {
				continue outer
			}
		}
		out = append(out, s)
	}
	return out
}

func newFeaturesCmd() *cobra.Command {
	var showGrammar bool

	cmd := &cobra.Command{
		Use:   "features",
		Short: "List the language features and whether they are enabled",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var flags sourceFlags
			_, opts, err := flags.load(cmd)
			if err != nil {
				return err
			}
			if showGrammar {
				if _, err := parser.Grammar(); err != nil {
					return fmt.Errorf("superset grammar: %w", err)
				}
			}
			out := cmd.OutOrStdout()
			for _, f := range parser.AllFeatures() {
				state := "disabled"
				if opts.Features.Enabled(f) {
					state = "enabled"
				}
				fmt.Fprintf(out, "%-20s %s\n", f, state)
				if !showGrammar {
					continue
				}
				text, err := parser.GrammarText(f.Production())
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "\n%s\n\n", text)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&showGrammar, "grammar", false, "print the EBNF production of each feature")

	return cmd
}
