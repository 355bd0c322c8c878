package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dhamidi/jpp/format"
)

func newTranspileCmd() *cobra.Command {
	var flags sourceFlags
	var write bool
	var outputFile string

	cmd := &cobra.Command{
		Use:   "transpile [file...]",
		Short: "Lower superset sources to plain Java",
		Long: `Lower superset sources to plain Java.

Without arguments the source is read from stdin and the result written to
stdout. With -w every file is written next to its source, with the source
suffix replaced by the output suffix from jpp.toml (.jpp and .java by
default).`,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, opts, err := flags.load(cmd)
			if err != nil {
				return err
			}
			if len(args) == 0 {
				if write {
					return fmt.Errorf("-w requires a file argument")
				}
				out, err := format.Transpile(cmd.InOrStdin(), opts)
				if err != nil {
					return err
				}
				return writeOutput(cmd.OutOrStdout(), outputFile, out)
			}
			if outputFile != "" && len(args) > 1 {
				return fmt.Errorf("-o takes a single input file")
			}
			if outputFile != "" && write {
				return fmt.Errorf("-o and -w cannot be combined")
			}

			var failed []string
			for _, filename := range args {
				target := outputFile
				if write {
					if target, err = c.OutputPath(filename); err != nil {
						fmt.Fprintln(cmd.ErrOrStderr(), err)
						failed = append(failed, filename)
						continue
					}
				}
				opts.File = filename
				out, err := transpileFile(filename, opts)
				if err != nil {
					fmt.Fprintln(cmd.ErrOrStderr(), err)
					failed = append(failed, filename)
					continue
				}
				if err := writeOutput(cmd.OutOrStdout(), target, out); err != nil {
					return err
				}
			}
			if len(failed) > 0 {
				return fmt.Errorf("failed to transpile %s", strings.Join(failed, ", "))
			}
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVarP(&write, "write", "w", false, "write each result next to its source")
	cmd.Flags().StringVarP(&outputFile, "output", "o", "", "write the result to this file")

	return cmd
}

func transpileFile(filename string, opts format.Options) (string, error) {
	f, err := os.Open(filename)
	if err != nil {
		return "", err
	}
	defer f.Close()
	return format.Transpile(f, opts)
}

func writeOutput(stdout io.Writer, path, text string) error {
	if path == "" {
		_, err := io.WriteString(stdout, text)
		return err
	}
	return os.WriteFile(path, []byte(text), 0644)
}
