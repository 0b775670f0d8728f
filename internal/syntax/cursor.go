package syntax

// cursor walks an immutable token slice. Moving past the end is reported
// as ErrNoToken; the index never underflows.
type cursor struct {
	toks []Token
	i    int
}

// done reports whether every token has been consumed.
func (c *cursor) done() bool {
	return c.i >= len(c.toks)
}

// peek returns the current token without consuming it.
func (c *cursor) peek() (Token, bool) {
	return c.peekN(0)
}

// peekN returns the token n positions ahead of the current one.
func (c *cursor) peekN(n int) (Token, bool) {
	if n < 0 || c.i+n >= len(c.toks) {
		return Token{}, false
	}
	return c.toks[c.i+n], true
}

// next consumes and returns the current token.
func (c *cursor) next() (Token, error) {
	if c.done() {
		return Token{}, ErrNoToken
	}
	tok := c.toks[c.i]
	c.i++
	return tok, nil
}

// prev returns the most recently consumed token.
func (c *cursor) prev() (Token, bool) {
	if c.i == 0 {
		return Token{}, false
	}
	return c.toks[c.i-1], true
}
