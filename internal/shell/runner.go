// Package shell hosts the Blaze front end: it runs units of work through
// the lexer and parser, prints diagnostics and drives the interactive
// prompt.
package shell

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/you-not-fish/blaze/internal/syntax"
)

// Mode selects how far a unit of work is taken.
type Mode uint8

const (
	ModeLexer  Mode = iota // tokens only
	ModeParser             // tokens and syntax tree
)

func (m Mode) String() string {
	if m == ModeLexer {
		return "lexer"
	}
	return "parser"
}

// Result is the outcome of one unit of work.
type Result struct {
	ID          string // unit identifier used in log records
	Mode        Mode
	Tokens      []syntax.Token
	Tree        *syntax.Body // parser mode only
	Diagnostics []syntax.Diagnostic
	Err         error
}

// Summary returns the completion message for a successful unit, or ""
// when the unit failed or produced nothing.
func (r *Result) Summary() string {
	if r.Err != nil {
		return ""
	}
	switch r.Mode {
	case ModeLexer:
		if len(r.Tokens) > 0 {
			return fmt.Sprintf("Lexical analysis completed. Tokens: %d", len(r.Tokens))
		}
	case ModeParser:
		if r.Tree != nil && len(r.Tree.Stmts) > 0 {
			return fmt.Sprintf("Parsing completed. Nodes: %d", len(r.Tree.Stmts))
		}
	}
	return ""
}

// Runner executes units of work. Each call to Run builds a fresh Lexer
// and Parser, so a Runner may be reused and shared between goroutines.
type Runner struct {
	source string
	sink   syntax.Sink
	logger *slog.Logger
}

// NewRunner returns a Runner labelling positions with source and
// forwarding diagnostics to sink. A nil sink or logger discards.
// An empty source uses syntax.DefaultSource.
func NewRunner(source string, sink syntax.Sink, logger *slog.Logger) *Runner {
	if source == "" {
		source = syntax.DefaultSource
	}
	if sink == nil {
		sink = syntax.Discard
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Runner{source: source, sink: sink, logger: logger}
}

// Source returns the label used in positions.
func (r *Runner) Source() string {
	return r.source
}

// WithSource returns a copy of r using a different source label.
func (r *Runner) WithSource(source string) *Runner {
	c := *r
	c.source = source
	return &c
}

// Run lexes text and, in parser mode, parses the tokens.
func (r *Runner) Run(mode Mode, text string) *Result {
	res := &Result{ID: uuid.NewString(), Mode: mode}
	logger := r.logger.With("unit", res.ID, "mode", mode.String())

	sink := syntax.SinkFunc(func(d syntax.Diagnostic) {
		res.Diagnostics = append(res.Diagnostics, d)
		r.sink.Report(d)
	})
	opts := []syntax.Option{
		syntax.WithSource(r.source),
		syntax.WithSink(sink),
		syntax.WithLogger(logger),
	}

	logger.Debug("unit started", "bytes", len(text))
	res.Tokens, res.Err = syntax.NewLexer(text, opts...).Analyze()
	if res.Err != nil {
		logger.Info("lexical analysis failed", "err", res.Err)
		return res
	}
	logger.Debug("lexical analysis completed", "tokens", len(res.Tokens))
	if mode == ModeLexer {
		return res
	}

	p := syntax.NewParser(res.Tokens, opts...)
	res.Tree = p.Parse()
	if res.Err = p.Err(); res.Err != nil {
		logger.Info("parsing failed", "err", res.Err)
		return res
	}
	logger.Debug("parsing completed", "stmts", len(res.Tree.Stmts), "nodes", syntax.Count(res.Tree))
	return res
}

// Lex runs a unit of work in lexer mode.
func (r *Runner) Lex(text string) *Result {
	return r.Run(ModeLexer, text)
}

// Parse runs a unit of work in parser mode.
func (r *Runner) Parse(text string) *Result {
	return r.Run(ModeParser, text)
}
