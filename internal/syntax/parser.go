package syntax

import (
	"log/slog"
	"strconv"
)

// Parser performs syntax analysis on a Blaze token sequence.
// A Parser is single-use and must not be shared between goroutines.
type Parser struct {
	cur cursor
	ctx *Context

	sink   Sink
	logger *slog.Logger

	err  error // failure of the last Parse
	used bool
}

// NewParser creates a Parser over tokens. The slice is copied, so the
// caller may reuse its buffer.
func NewParser(tokens []Token, opts ...Option) *Parser {
	o := buildOptions(opts)
	toks := make([]Token, len(tokens))
	copy(toks, tokens)
	return &Parser{
		cur:    cursor{toks: toks},
		ctx:    NewContext(o.source),
		sink:   o.sink,
		logger: o.logger,
	}
}

// Context returns the parser's cursor state.
func (p *Parser) Context() *Context {
	return p.ctx
}

// Err returns the error that made the last Parse return an empty program,
// or nil if it succeeded.
func (p *Parser) Err() error {
	return p.err
}

// ----------------------------------------------------------------------------
// Parsing entry point

// Parse parses the whole token sequence into the program root.
// It never returns nil: on the first error it reports a diagnostic to the
// sink and returns an empty Body.
func (p *Parser) Parse() *Body {
	if p.used {
		p.err = ErrReused
		return p.emptyBody()
	}
	p.used = true

	b, err := p.program()
	if err != nil {
		p.err = err
		p.sink.Report(DiagnosticOf(err, p.ctx.Pos()))
		p.logger.Debug("parse failed", "err", err)
		return p.emptyBody()
	}
	p.logger.Debug("parse completed", "stmts", len(b.Stmts))
	return b
}

func (p *Parser) emptyBody() *Body {
	b := &Body{}
	b.pos = NewPos(p.ctx.Source, 1, 1)
	return b
}

// program parses statements up to the end of input.
func (p *Parser) program() (*Body, error) {
	b := p.emptyBody()
	if tok, ok := p.cur.peek(); ok {
		b.pos = p.pos(tok)
	}

	if err := p.stmtList(b); err != nil {
		return nil, err
	}
	// stmtList only stops early at a closing brace.
	if tok, ok := p.cur.peek(); ok {
		return nil, &SyntaxError{Code: UnexpectedToken, Pos: p.pos(tok), Found: &tok}
	}
	return b, nil
}

// ----------------------------------------------------------------------------
// Token navigation

func (p *Parser) pos(tok Token) Pos {
	return tok.Pos(p.ctx.Source)
}

// is reports whether the current token has type tt.
func (p *Parser) is(tt TokenType) bool {
	tok, ok := p.cur.peek()
	return ok && tok.Type == tt
}

// next consumes the current token and mirrors its location into the
// context.
func (p *Parser) next() (Token, error) {
	tok, err := p.cur.next()
	if err != nil {
		return Token{}, err
	}
	p.ctx.moveTo(tok)
	return tok, nil
}

// got consumes the current token if it has type tt.
func (p *Parser) got(tt TokenType) bool {
	if !p.is(tt) {
		return false
	}
	_, err := p.next()
	return err == nil
}

// want consumes the current token if it has one of the expected types.
// Otherwise it returns a syntax error naming the expected set.
func (p *Parser) want(expected ...TokenType) (Token, error) {
	if tok, ok := p.cur.peek(); ok {
		for _, tt := range expected {
			if tok.Type == tt {
				return p.next()
			}
		}
	}
	return Token{}, p.expected(expected...)
}

// expected builds the error for a token mismatch at the cursor.
func (p *Parser) expected(tts ...TokenType) *SyntaxError {
	tok, ok := p.cur.peek()
	if !ok {
		return &SyntaxError{Code: MissingRequiredToken, Pos: p.ctx.Pos(), Expected: tts}
	}
	return &SyntaxError{Code: UnexpectedToken, Pos: p.pos(tok), Expected: tts, Found: &tok}
}

// ----------------------------------------------------------------------------
// Statements

// stmtList parses statements into b until a closing brace or the end of
// input. Bare terminators between statements are skipped.
func (p *Parser) stmtList(b *Body) error {
	for {
		for p.got(_Semi) {
		}
		if p.cur.done() || p.is(_Rbrace) {
			return nil
		}

		s, err := p.stmt()
		if err != nil {
			return err
		}
		b.Stmts = append(b.Stmts, s)

		if err := p.stmtEnd(); err != nil {
			return err
		}
	}
}

// stmtEnd checks what follows a statement: a terminator, a closing brace
// or the end of input. A statement ending in '}' needs no terminator.
func (p *Parser) stmtEnd() error {
	if prev, ok := p.cur.prev(); ok && prev.Type == _Rbrace {
		return nil
	}
	if p.cur.done() || p.is(_Semi) || p.is(_Rbrace) {
		return nil
	}
	return p.expected(_Rbrace, _Semi)
}

// stmt parses a single statement.
func (p *Parser) stmt() (Expr, error) {
	tok, _ := p.cur.peek()

	switch tok.Type {
	case _Mut, _Fin:
		return p.varDecl()

	case _Function:
		return p.funcDecl()

	case _Return:
		return p.returnStmt()

	case _While:
		return p.whileLoop()

	case _Continue, _Break:
		if _, err := p.next(); err != nil {
			return nil, err
		}
		s := &LoopControl{Tok: tok.Type}
		s.pos = p.pos(tok)
		return s, nil

	default:
		return p.formula()
	}
}

// block parses { stmts... }
func (p *Parser) block() (*Body, error) {
	lbrace, err := p.want(_Lbrace)
	if err != nil {
		return nil, err
	}
	b := &Body{}
	b.pos = p.pos(lbrace)

	if err := p.stmtList(b); err != nil {
		return nil, err
	}
	if _, err := p.want(_Rbrace); err != nil {
		return nil, err
	}
	return b, nil
}

// varDecl parses: mut|fin Name [: Type] [= Value]
func (p *Parser) varDecl() (Expr, error) {
	kw, err := p.next()
	if err != nil {
		return nil, err
	}
	d := &VariableDeclaration{Mutable: kw.Type == _Mut}
	d.pos = p.pos(kw)

	if d.Name, err = p.ident(); err != nil {
		return nil, err
	}
	if d.Type, err = p.typeAnnotation(); err != nil {
		return nil, err
	}
	if p.got(_Assign) {
		if d.Value, err = p.formula(); err != nil {
			return nil, err
		}
	}
	return d, nil
}

// funcDecl parses: function Name(Params) [: Result] { Body }
func (p *Parser) funcDecl() (Expr, error) {
	kw, err := p.next()
	if err != nil {
		return nil, err
	}
	d := &FunctionDeclaration{}
	d.pos = p.pos(kw)

	if d.Name, err = p.ident(); err != nil {
		return nil, err
	}
	if d.Params, err = p.paramList(declParams); err != nil {
		return nil, err
	}
	if d.Result, err = p.typeAnnotation(); err != nil {
		return nil, err
	}
	if d.Body, err = p.block(); err != nil {
		return nil, err
	}
	return d, nil
}

// returnStmt parses: return [Result]
func (p *Parser) returnStmt() (Expr, error) {
	kw, err := p.next()
	if err != nil {
		return nil, err
	}
	s := &FunctionalReturn{}
	s.pos = p.pos(kw)

	if !p.cur.done() && !p.is(_Semi) && !p.is(_Rbrace) {
		if s.Result, err = p.formula(); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// whileLoop parses: while Cond { Body }
func (p *Parser) whileLoop() (Expr, error) {
	kw, err := p.next()
	if err != nil {
		return nil, err
	}
	s := &WhileLoop{}
	s.pos = p.pos(kw)

	if s.Cond, err = p.formula(); err != nil {
		return nil, err
	}
	if s.Body, err = p.block(); err != nil {
		return nil, err
	}
	return s, nil
}

// ident parses an identifier.
func (p *Parser) ident() (*Identifier, error) {
	tok, err := p.want(_Name)
	if err != nil {
		return nil, err
	}
	n := &Identifier{Value: tok.Lit}
	n.pos = p.pos(tok)
	return n, nil
}

// typeAnnotation parses an optional ": Type".
func (p *Parser) typeAnnotation() (*Identifier, error) {
	if !p.got(_Colon) {
		return nil, nil
	}
	return p.ident()
}

// ----------------------------------------------------------------------------
// Parameter lists

// paramPolicy selects how a parameter list is read.
type paramPolicy uint8

const (
	declParams paramPolicy = iota // name : type [= default]
	callArgs                      // formula | name = formula
)

// paramList parses ( p1, p2, ... ). Under both policies a parameter
// without a value may not follow one that has a default or keyword value.
func (p *Parser) paramList(policy paramPolicy) ([]*Parameter, error) {
	if _, err := p.want(_Lparen); err != nil {
		return nil, err
	}

	var params []*Parameter
	if p.got(_Rparen) {
		return params, nil
	}

	keyed := false
	for {
		var (
			prm *Parameter
			err error
		)
		if policy == declParams {
			prm, err = p.declParam()
		} else {
			prm, err = p.callArg()
		}
		if err != nil {
			return nil, err
		}

		if prm.Keyed() {
			keyed = true
		} else if keyed {
			return nil, &SyntaxError{Code: PositionalAfterKeyword, Pos: prm.Pos()}
		}
		params = append(params, prm)

		if p.got(_Comma) {
			continue
		}
		if _, err := p.want(_Rparen, _Comma); err != nil {
			return nil, err
		}
		return params, nil
	}
}

// declParam parses: name : type [= default]
func (p *Parser) declParam() (*Parameter, error) {
	name, err := p.ident()
	if err != nil {
		return nil, err
	}
	prm := &Parameter{Name: name}
	prm.pos = name.Pos()

	if !p.got(_Colon) {
		serr := p.expected(_Colon)
		serr.Code = MissingArgumentType
		return nil, serr
	}
	if prm.Type, err = p.ident(); err != nil {
		return nil, err
	}
	if p.got(_Assign) {
		if prm.Value, err = p.formula(); err != nil {
			return nil, err
		}
	}
	return prm, nil
}

// callArg parses: formula | name = formula
func (p *Parser) callArg() (*Parameter, error) {
	prm := &Parameter{}

	tok, _ := p.cur.peek()
	if after, ok := p.cur.peekN(1); ok && tok.Type == _Name && after.Type == _Assign {
		name, err := p.ident()
		if err != nil {
			return nil, err
		}
		if _, err := p.next(); err != nil { // =
			return nil, err
		}
		prm.Name = name
	}

	v, err := p.formula()
	if err != nil {
		return nil, err
	}
	prm.Value = v
	if prm.Name != nil {
		prm.pos = prm.Name.Pos()
	} else {
		prm.pos = v.Pos()
	}
	return prm, nil
}

// ----------------------------------------------------------------------------
// Formulas

// formulaStart lists the tokens a formula may begin with.
var formulaStart = []TokenType{
	_If, _True, _False, _Null,
	_Increment, _Decrement, _Not, _Ref,
	_Lparen, _Lbrace,
	_String, _Number, _Name,
}

// formula parses an expression:
//
//	{unary} primary [postfix] [binop formula]
//
// Binary operators are right-associative and share one precedence level;
// grouping is expressed with parentheses.
func (p *Parser) formula() (Expr, error) {
	used := make(map[TokenType]Token)

	var prefix []Token
	for {
		tok, ok := p.cur.peek()
		if !ok || !tok.Type.IsUnaryOperator() {
			break
		}
		if err := p.useOperator(used, tok); err != nil {
			return nil, err
		}
		if _, err := p.next(); err != nil {
			return nil, err
		}
		prefix = append(prefix, tok)
	}

	x, err := p.primary()
	if err != nil {
		return nil, err
	}

	if tok, ok := p.cur.peek(); ok && (tok.Type == _Increment || tok.Type == _Decrement) {
		if err := p.useOperator(used, tok); err != nil {
			return nil, err
		}
		if _, err := p.next(); err != nil {
			return nil, err
		}
		u := &UnaryOperator{Op: tok.Type, X: x, Fixity: Postfix}
		u.pos = x.Pos()
		x = u
	}

	// The first operator written is the outermost.
	for i := len(prefix) - 1; i >= 0; i-- {
		u := &UnaryOperator{Op: prefix[i].Type, X: x, Fixity: Prefix}
		u.pos = p.pos(prefix[i])
		x = u
	}

	tok, ok := p.cur.peek()
	if !ok || !tok.Type.IsBinaryOperator() {
		return x, nil
	}
	if _, err := p.next(); err != nil {
		return nil, err
	}
	y, err := p.formula()
	if err != nil {
		return nil, err
	}
	op := &BinaryOperator{Op: tok.Type, X: x, Y: y}
	op.pos = x.Pos()
	return op, nil
}

// useOperator records a unary operator on the current operand chain.
// Increment and decrement share one slot; ! and & have a slot each.
func (p *Parser) useOperator(used map[TokenType]Token, tok Token) error {
	if first, ok := used[tok.Type]; ok {
		return &SyntaxError{
			Code:     OperatorReuse,
			Pos:      p.pos(tok),
			Found:    &tok,
			Operator: tok.Type,
			FirstUse: p.pos(first),
		}
	}
	switch tok.Type {
	case _Increment, _Decrement:
		used[_Increment] = tok
		used[_Decrement] = tok
	default:
		used[tok.Type] = tok
	}
	return nil
}

// primary parses an operand: an identifier chain, a literal, a block,
// a conditional tree or a parenthesized formula.
func (p *Parser) primary() (Expr, error) {
	tok, ok := p.cur.peek()
	if !ok {
		return nil, p.expected(formulaStart...)
	}

	switch tok.Type {
	case _Name:
		id, err := p.ident()
		if err != nil {
			return nil, err
		}
		return p.chain(id)

	case _Lbrace:
		return p.block()

	case _If:
		return p.conditional()

	case _Lparen:
		if _, err := p.next(); err != nil {
			return nil, err
		}
		x, err := p.formula()
		if err != nil {
			return nil, err
		}
		if _, err := p.want(_Rparen); err != nil {
			return nil, err
		}
		return x, nil

	case _String, _Number, _True, _False, _Null:
		return p.literal()
	}
	return nil, p.expected(formulaStart...)
}

// literal parses a string, number, boolean or null literal.
func (p *Parser) literal() (Expr, error) {
	tok, err := p.next()
	if err != nil {
		return nil, err
	}
	pos := p.pos(tok)

	switch tok.Type {
	case _String:
		x := &String{Value: unquote(tok.Lit)}
		x.pos = pos
		return x, nil

	case _Number:
		v, err := strconv.ParseFloat(tok.Lit, 64)
		if err != nil {
			return nil, &SyntaxError{Code: UnexpectedToken, Pos: pos, Expected: []TokenType{_Number}, Found: &tok}
		}
		x := &Number{Value: v, Lit: tok.Lit}
		x.pos = pos
		return x, nil

	case _True, _False:
		x := &Boolean{Value: tok.Type == _True}
		x.pos = pos
		return x, nil
	}

	x := &Null{}
	x.pos = pos
	return x, nil
}

// chain parses calls and member accesses following an identifier.
// The result is left-deep: a Call wraps its callee and a Member wraps its
// parent.
func (p *Parser) chain(x Expr) (Expr, error) {
	for {
		switch {
		case p.is(_Lparen):
			args, err := p.paramList(callArgs)
			if err != nil {
				return nil, err
			}
			c := &Call{Fun: x, Args: args}
			c.pos = x.Pos()
			x = c

		case p.is(_Dot):
			if _, err := p.next(); err != nil {
				return nil, err
			}
			child, err := p.ident()
			if err != nil {
				return nil, err
			}
			m := &Member{Parent: x, Child: child}
			m.pos = x.Pos()
			x = m

		default:
			return x, nil
		}
	}
}

// conditional parses: if Cond Result (elif Cond Result)* [else Default]
func (p *Parser) conditional() (Expr, error) {
	kw, err := p.next()
	if err != nil {
		return nil, err
	}
	t := &ConditionalTree{}
	t.pos = p.pos(kw)

	for {
		cond, err := p.formula()
		if err != nil {
			return nil, err
		}
		result, err := p.formula()
		if err != nil {
			return nil, err
		}
		br := &Branch{Cond: cond, Result: result}
		br.pos = cond.Pos()
		t.Branches = append(t.Branches, br)

		if !p.got(_Elif) {
			break
		}
	}

	if p.got(_Else) {
		if t.Default, err = p.formula(); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// unquote strips the quotes of a string literal and decodes its escape
// sequences when they are well formed.
func unquote(lit string) string {
	if s, err := strconv.Unquote(lit); err == nil {
		return s
	}
	if len(lit) >= 2 {
		return lit[1 : len(lit)-1]
	}
	return lit
}
