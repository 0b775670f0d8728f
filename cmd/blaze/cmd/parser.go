package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/you-not-fish/blaze/internal/config"
	"github.com/you-not-fish/blaze/internal/shell"
	"github.com/you-not-fish/blaze/internal/syntax"
)

func newParserCmd(a *app) *cobra.Command {
	var (
		format string
		tree   bool
	)

	cmd := &cobra.Command{
		Use:   "parser [file]",
		Short: "Parse a script into a syntax tree",
		Long: `Tokenizes and parses a Blaze script and prints the number of
top-level nodes.

Without a file, one line is read from standard input.

Examples:
  blaze parser script.blz --tree
  blaze parser script.blz --format json
  echo 'fin x = 1' | blaze parser`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("format") {
				a.cfg.Format = format
				if err := a.cfg.Validate(); err != nil {
					return err
				}
			}

			text, source, err := a.readInput(cmd, args)
			if err != nil {
				return err
			}

			res := a.run(cmd, shell.ModeParser, text, source)
			if res.Err != nil {
				return errFailed
			}

			out := cmd.OutOrStdout()
			switch a.cfg.Format {
			case config.FormatJSON:
				if err := syntax.FprintJSON(out, res.Tree); err != nil {
					return err
				}
			case config.FormatYAML:
				if err := syntax.FprintYAML(out, res.Tree); err != nil {
					return err
				}
			default:
				if tree {
					syntax.Fprint(out, res.Tree)
				}
				if s := res.Summary(); s != "" {
					fmt.Fprintln(out, a.styles.Success(s))
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", config.FormatText, "output format: text, json or yaml")
	cmd.Flags().BoolVar(&tree, "tree", false, "print the syntax tree in text format")
	return cmd
}
