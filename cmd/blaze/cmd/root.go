package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/you-not-fish/blaze/internal/config"
	"github.com/you-not-fish/blaze/internal/shell"
)

// errFailed reports a unit of work that ended with a diagnostic. The
// diagnostic has already been printed.
var errFailed = errors.New("analysis failed")

// app holds the persistent flags and the state derived from them.
type app struct {
	cfgFile string
	source  string
	verbose bool
	noColor bool

	cfg    *config.Config
	logger *slog.Logger
	styles shell.Styles
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "blaze",
		Short: "Blaze scripting language front end",
		Long: `blaze tokenizes and parses Blaze scripts.

Commands:
  lexer   - token analysis
  parser  - syntax tree analysis (lexing included)
  repl    - interactive prompt
  init    - create a management file template`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default: $BLAZE_CONFIG or ./blaze.toml)")
	root.PersistentFlags().StringVar(&a.source, "source", "", "source label used in diagnostics")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "trace every token and unit of work")
	root.PersistentFlags().BoolVar(&a.noColor, "no-color", false, "disable colored output")

	root.AddCommand(
		newLexerCmd(a),
		newParserCmd(a),
		newReplCmd(a),
		newInitCmd(a),
		newVersionCmd(),
	)
	return root
}

// Execute runs the blaze command line.
func Execute() error {
	root := newRootCmd()
	err := root.Execute()
	if err != nil && !errors.Is(err, errFailed) {
		printError(root.ErrOrStderr(), err)
	}
	return err
}

// setup loads configuration and builds the logger and styles.
func (a *app) setup(cmd *cobra.Command) error {
	var (
		cfg *config.Config
		err error
	)
	if a.cfgFile != "" {
		cfg, err = config.Load(a.cfgFile)
	} else {
		cfg, err = config.LoadFromEnv()
	}
	if err != nil {
		return err
	}

	if a.source != "" {
		cfg.Source = a.source
	}
	if a.noColor {
		cfg.Color = false
	}
	level := cfg.Level()
	if a.verbose {
		level = slog.LevelDebug
	}

	a.cfg = cfg
	a.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	a.styles = shell.NewStyles(cfg.Color)
	return nil
}

// readInput returns the text of a unit of work and its source label.
// With a file argument the whole file is read and labelled with its base
// name unless --source is set. Otherwise one line is read from stdin.
func (a *app) readInput(cmd *cobra.Command, args []string) (string, string, error) {
	if len(args) > 0 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", "", err
		}
		source := filepath.Base(args[0])
		if a.source != "" {
			source = a.source
		}
		return string(data), source, nil
	}

	line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	if err != nil && err != io.EOF {
		return "", "", fmt.Errorf("read input: %w", err)
	}
	return strings.TrimSpace(line), a.cfg.Source, nil
}

// run executes one unit of work with diagnostics printed to stderr.
func (a *app) run(cmd *cobra.Command, mode shell.Mode, text, source string) *shell.Result {
	con := shell.NewConsole(cmd.ErrOrStderr(), a.cfg.SinkBuffer, a.styles)
	con.Start()
	res := shell.NewRunner(source, con.Sink(), a.logger).Run(mode, text)
	if dropped := con.Close(); dropped > 0 {
		a.logger.Warn("diagnostics dropped", "count", dropped)
	}
	return res
}

func printError(w io.Writer, err error) {
	fmt.Fprintf(w, "Error: %v\n", err)
}
