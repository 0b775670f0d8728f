package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/you-not-fish/blaze/internal/shell"
)

func newLexerCmd(a *app) *cobra.Command {
	var table bool

	cmd := &cobra.Command{
		Use:   "lexer [file]",
		Short: "Tokenize a script",
		Long: `Tokenizes a Blaze script and prints the token count.

Without a file, one line is read from standard input.

Examples:
  blaze lexer script.blz
  echo 'fin x = 1' | blaze lexer --table`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, source, err := a.readInput(cmd, args)
			if err != nil {
				return err
			}

			res := a.run(cmd, shell.ModeLexer, text, source)
			if res.Err != nil {
				return errFailed
			}

			out := cmd.OutOrStdout()
			if table {
				shell.WriteTokenTable(out, source, res.Tokens)
			}
			if s := res.Summary(); s != "" {
				fmt.Fprintln(out, a.styles.Success(s))
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&table, "table", "t", false, "print every token with its position")
	return cmd
}
