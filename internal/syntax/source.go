package syntax

import "unicode/utf8"

// source is the text being tokenized together with the lexer's cursor.
// Line and column always describe the byte at offs.
type source struct {
	text string
	offs int // current byte offset in text
	ctx  *Context
}

func newSource(text string, ctx *Context) *source {
	return &source{text: text, ctx: ctx}
}

// eof reports whether the whole text has been consumed.
func (s *source) eof() bool {
	return s.offs >= len(s.text)
}

// rest returns the unconsumed text.
func (s *source) rest() string {
	return s.text[s.offs:]
}

// advance consumes n bytes and updates the context position.
// A newline moves to column 1 of the next line.
func (s *source) advance(n int) {
	end := s.offs + n
	if end > len(s.text) {
		end = len(s.text)
	}
	for ; s.offs < end; s.offs++ {
		if s.text[s.offs] == '\n' {
			s.ctx.Line++
			s.ctx.Col = 1
		} else {
			s.ctx.Col++
		}
	}
}

// byteAt returns the byte at offset i and whether i is inside the text.
func (s *source) byteAt(i int) (byte, bool) {
	if i < 0 || i >= len(s.text) {
		return 0, false
	}
	return s.text[i], true
}

// colOf returns the 1-based column of offset i within its line.
func (s *source) colOf(i int) uint32 {
	col := uint32(1)
	for j := i - 1; j >= 0 && s.text[j] != '\n'; j-- {
		col++
	}
	return col
}

// word returns the text at the cursor up to the next whitespace
// character, always including at least one complete rune.
func (s *source) word() string {
	rest := s.rest()
	_, w := utf8.DecodeRuneInString(rest)
	n := w
	for n < len(rest) {
		switch rest[n] {
		case ' ', '\t', '\r', '\n':
			return rest[:n]
		}
		n++
	}
	return rest
}
