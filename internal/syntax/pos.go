package syntax

import "fmt"

// Pos represents a position in a source text unit.
// The zero value is an invalid position.
type Pos struct {
	source string // source label ("Shell", a file name, ...)
	line   uint32 // 1-based line number
	col    uint32 // 1-based column number (byte offset in line)
}

// NewPos creates a new Pos with the given source label, line, and column.
// Line and column numbers are 1-based.
func NewPos(source string, line, col uint32) Pos {
	return Pos{source: source, line: line, col: col}
}

// String returns a string representation of the position in the format
// "source:line:col" or "line:col" if the source label is empty.
func (p Pos) String() string {
	if p.source != "" {
		return fmt.Sprintf("%s:%d:%d", p.source, p.line, p.col)
	}
	return fmt.Sprintf("%d:%d", p.line, p.col)
}

// IsValid reports whether the position is valid.
// A position is valid if line > 0.
func (p Pos) IsValid() bool {
	return p.line > 0
}

// Line returns the 1-based line number.
func (p Pos) Line() uint32 {
	return p.line
}

// Col returns the 1-based column number (byte offset in line).
func (p Pos) Col() uint32 {
	return p.col
}

// Source returns the source label.
func (p Pos) Source() string {
	return p.source
}

// DefaultSource is the source label used when the host does not set one.
const DefaultSource = "void"

// Context is the cursor state shared by the lexer and the parser for
// diagnostics. It is mutated as either component advances and is never
// shared beyond a single pass.
type Context struct {
	Source string
	Line   uint32
	Col    uint32
}

// NewContext returns a context positioned at line 1, column 1.
func NewContext(source string) *Context {
	if source == "" {
		source = DefaultSource
	}
	return &Context{Source: source, Line: 1, Col: 1}
}

// Pos returns a snapshot of the current position.
func (c *Context) Pos() Pos {
	return NewPos(c.Source, c.Line, c.Col)
}

// moveTo mirrors a token's location into the context.
func (c *Context) moveTo(tok Token) {
	c.Line = tok.Line
	c.Col = tok.Col
}
