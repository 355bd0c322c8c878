package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/dhamidi/jpp/format"
)

func newParseCmd() *cobra.Command {
	var flags sourceFlags
	var outputFormat string
	var lower bool

	cmd := &cobra.Command{
		Use:   "parse [file]",
		Short: "Parse a source file and dump its tree",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, opts, err := flags.load(cmd)
			if err != nil {
				return err
			}
			encoder, err := format.NewEncoder(outputFormat, cmd.OutOrStdout())
			if err != nil {
				return err
			}

			var r io.Reader = cmd.InOrStdin()
			if len(args) == 1 {
				f, err := os.Open(args[0])
				if err != nil {
					return fmt.Errorf("read source: %w", err)
				}
				defer f.Close()
				r = f
				opts.File = args[0]
			}

			unit, err := format.Parse(r, opts)
			if err != nil {
				return err
			}
			if lower {
				if unit, err = format.Lower(unit, opts); err != nil {
					return err
				}
			}
			if err := encoder.Encode(unit); err != nil {
				return fmt.Errorf("encode %s: %w", outputFormat, err)
			}
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&outputFormat, "format", "f", "tree", "output format (java, json, tree)")
	cmd.Flags().BoolVar(&lower, "lower", false, "run the transform passes before printing")

	return cmd
}
