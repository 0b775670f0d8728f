package syntax

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNoToken is returned when the parser is asked to move past the last
// token. It signals a parser defect rather than malformed input.
var ErrNoToken = errors.New("attempted to access a non-existent token")

// ErrReused is returned when a Lexer or Parser is driven a second time.
var ErrReused = errors.New("lexer or parser instance already used")

// Side identifies which neighbour of a string literal is at fault.
type Side uint8

const (
	SideLeft Side = iota
	SideRight
)

func (s Side) String() string {
	if s == SideLeft {
		return "before"
	}
	return "after"
}

// LexCode classifies lexical errors.
type LexCode uint8

const (
	UnrecognizedToken LexCode = iota
	NumericAlphanumericAdjacency
	StringAdjacency
)

// LexError is a fatal lexical error.
type LexError struct {
	Code LexCode
	Pos  Pos
	Text string // offending text or character
	Side Side   // StringAdjacency only
}

func (e *LexError) message() string {
	switch e.Code {
	case NumericAlphanumericAdjacency:
		return "numbers cannot end with alphanumeric"
	case StringAdjacency:
		return fmt.Sprintf("%q %s a string with no space between", e.Text, e.Side)
	}
	return fmt.Sprintf("'%s' is not recognized", e.Text)
}

func (e *LexError) Error() string {
	return e.Pos.String() + ": " + e.message()
}

// SyntaxCode classifies syntax errors.
type SyntaxCode uint8

const (
	UnexpectedToken SyntaxCode = iota
	MissingRequiredToken
	OperatorReuse
	PositionalAfterKeyword
	MissingArgumentType
)

// SyntaxError is a fatal syntax error.
type SyntaxError struct {
	Code     SyntaxCode
	Pos      Pos
	Expected []TokenType // UnexpectedToken, MissingRequiredToken, MissingArgumentType
	Found    *Token      // nil at end of input
	Operator TokenType   // OperatorReuse
	FirstUse Pos         // OperatorReuse
}

func (e *SyntaxError) message() string {
	switch e.Code {
	case OperatorReuse:
		return fmt.Sprintf("'%s' operator is already used at %s", e.Operator, e.FirstUse)
	case PositionalAfterKeyword:
		return "positional argument follows keyword argument"
	case MissingArgumentType:
		return "argument type is expected"
	case MissingRequiredToken:
		return "expected " + expectedList(e.Expected) + ", found end of input"
	}
	found := "end of input"
	if e.Found != nil {
		found = fmt.Sprintf("'%s'", e.Found.Lit)
	}
	if len(e.Expected) == 0 {
		return "unexpected " + found
	}
	return "expected " + expectedList(e.Expected) + ", found " + found
}

func (e *SyntaxError) Error() string {
	return e.Pos.String() + ": " + e.message()
}

// expectedList renders token types as a natural-language alternative list.
func expectedList(tts []TokenType) string {
	q := make([]string, len(tts))
	for i, t := range tts {
		q[i] = "'" + t.String() + "'"
	}
	switch len(q) {
	case 0:
		return "nothing"
	case 1:
		return q[0]
	case 2:
		return q[0] + " or " + q[1]
	case 3, 4:
		return strings.Join(q[:len(q)-1], ", ") + ", or " + q[len(q)-1]
	}
	return fmt.Sprintf("%s, %s, %s, or one of %d other tokens", q[0], q[1], q[2], len(q)-3)
}

// ----------------------------------------------------------------------------
// Diagnostics

// Severity labels a diagnostic.
type Severity uint8

const (
	SeverityLexical Severity = iota
	SeveritySyntax
	SeverityFatal
)

func (s Severity) String() string {
	switch s {
	case SeverityLexical:
		return "Lexical Error"
	case SeveritySyntax:
		return "Syntax Error"
	}
	return "Fatal"
}

// Diagnostic is a single line-oriented report routed to a Sink.
type Diagnostic struct {
	Severity Severity
	Msg      string
	Pos      Pos
}

// String formats the diagnostic as
// "<Severity>: <message> <-= at <source>:<line>:<column>".
func (d Diagnostic) String() string {
	return fmt.Sprintf("%s: %s <-= at %s", d.Severity, d.Msg, d.Pos)
}

// DiagnosticOf converts an error returned by this package into a
// Diagnostic. Unknown errors are reported as fatal at pos.
func DiagnosticOf(err error, pos Pos) Diagnostic {
	var lerr *LexError
	if errors.As(err, &lerr) {
		return Diagnostic{Severity: SeverityLexical, Msg: lerr.message(), Pos: lerr.Pos}
	}
	var serr *SyntaxError
	if errors.As(err, &serr) {
		return Diagnostic{Severity: SeveritySyntax, Msg: serr.message(), Pos: serr.Pos}
	}
	return Diagnostic{Severity: SeverityFatal, Msg: err.Error(), Pos: pos}
}
