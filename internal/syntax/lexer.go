package syntax

import (
	"log/slog"
	"strings"
)

// Lexer turns a source text unit into a token sequence.
// A Lexer is single-use and must not be shared between goroutines.
type Lexer struct {
	src    *source
	ctx    *Context
	tokens []Token
	used   bool

	sink   Sink
	logger *slog.Logger
}

// NewLexer creates a Lexer for text.
func NewLexer(text string, opts ...Option) *Lexer {
	o := buildOptions(opts)
	ctx := NewContext(o.source)
	return &Lexer{
		src:    newSource(text, ctx),
		ctx:    ctx,
		sink:   o.sink,
		logger: o.logger,
	}
}

// Context returns the lexer's cursor state.
func (l *Lexer) Context() *Context {
	return l.ctx
}

// Analyze scans the whole text. On success it returns the tokens with
// whitespace removed. On the first lexical error it reports a diagnostic
// to the sink and returns a nil slice together with the error.
func (l *Lexer) Analyze() ([]Token, error) {
	if l.used {
		return nil, ErrReused
	}
	l.used = true

	for !l.src.eof() {
		if err := l.next(); err != nil {
			l.sink.Report(DiagnosticOf(err, l.ctx.Pos()))
			return nil, err
		}
	}

	out := make([]Token, 0, len(l.tokens))
	for _, tok := range l.tokens {
		if !tok.Type.IsWhitespace() {
			out = append(out, tok)
		}
	}
	return out, nil
}

// next recognizes one token at the cursor.
func (l *Lexer) next() error {
	tt, n := match(l.src.rest())
	if n == 0 {
		return &LexError{
			Code: UnrecognizedToken,
			Pos:  l.ctx.Pos(),
			Text: l.src.word(),
		}
	}

	start := l.src.offs
	raw := l.src.text[start : start+n]
	lit := raw
	if tt == _Number {
		lit = strings.ReplaceAll(raw, "_", "")
	}
	tok := Token{
		Type:  tt,
		Start: start,
		Stop:  start + n,
		Line:  l.ctx.Line,
		Col:   l.ctx.Col,
		Lit:   lit,
	}
	l.tokens = append(l.tokens, tok)
	l.src.advance(n)

	if !tt.IsWhitespace() {
		l.logger.Debug("token", "col", tok.Col, "lit", tok.Lit, "type", tok.Type.String())
	}

	if err := l.checkNumberAdjacency(); err != nil {
		return err
	}
	return l.checkStringAdjacency(tok)
}

// checkNumberAdjacency rejects a number immediately followed by a word.
func (l *Lexer) checkNumberAdjacency() error {
	n := len(l.tokens)
	if n < 2 {
		return nil
	}
	cur, prev := l.tokens[n-1], l.tokens[n-2]
	if prev.Type == _Number && cur.Type.isWord() {
		return &LexError{
			Code: NumericAlphanumericAdjacency,
			Pos:  prev.Pos(l.ctx.Source),
			Text: l.src.text[prev.Start:cur.Stop],
		}
	}
	return nil
}

// checkStringAdjacency inspects the raw characters around a string
// literal. A word character on either side, or a dot on the left, is an
// error. The start and end of the text are exempt.
func (l *Lexer) checkStringAdjacency(tok Token) error {
	if tok.Type != _String {
		return nil
	}
	if c, ok := l.src.byteAt(tok.Start - 1); ok && (isWordChar(c) || c == '.') {
		return &LexError{
			Code: StringAdjacency,
			Pos:  NewPos(l.ctx.Source, tok.Line, tok.Col-1),
			Text: string(c),
			Side: SideLeft,
		}
	}
	if c, ok := l.src.byteAt(tok.Stop); ok && isWordChar(c) {
		return &LexError{
			Code: StringAdjacency,
			Pos:  NewPos(l.ctx.Source, tok.Line, l.src.colOf(tok.Stop)),
			Text: string(c),
			Side: SideRight,
		}
	}
	return nil
}
