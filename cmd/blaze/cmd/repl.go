package cmd

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/you-not-fish/blaze/internal/shell"
)

func newReplCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Start the interactive prompt",
		Long: `Starts an interactive prompt. Every line is lexed and parsed as a
separate unit of work.

Keys:
  Enter     - run the line
  Esc       - quit
  :lexer    - show tokens
  :parser   - show the syntax tree`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := shell.NewRunner(a.cfg.Source, nil, a.logger)
			return shell.RunREPL(runner, a.styles,
				tea.WithInput(cmd.InOrStdin()),
				tea.WithOutput(cmd.OutOrStdout()),
			)
		},
	}
}
