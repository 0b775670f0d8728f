package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/you-not-fish/blaze/internal/shell"
)

const officialRepository = "https://github.com/Reeliks/blaze"

func newInitCmd(a *app) *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "init [name]",
		Short: "Create a management file template",
		Long: `Creates <name>.manage.blz (default main.manage.blz) with a
commented management template. Existing files are left untouched.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := ""
			if len(args) > 0 {
				name = args[0]
			}

			out := cmd.OutOrStdout()
			path, err := shell.InitManageFile(dir, name)
			if errors.Is(err, shell.ErrExists) {
				fmt.Fprintf(cmd.ErrOrStderr(), "Init Error: %v\n%s\n", err, a.styles.Hint("Try specifying another name"))
				return errFailed
			}
			if err != nil {
				return err
			}

			fmt.Fprintf(out, "Created %s\n", path)
			fmt.Fprintf(out, "  * To contribute, check out the official repository:\n    %s\n", officialRepository)
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", "directory to create the file in")
	return cmd
}
