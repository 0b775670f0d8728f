// Package syntax implements lexical and syntactic analysis for the Blaze
// scripting language.
package syntax

import (
	"fmt"
	"strings"
)

// TokenType represents the lexical category of a token.
//
// The declaration order is the matching priority used by the lexer:
// keywords come before the generic identifier rule, and multi-character
// operators come before the single-character operators they start with.
type TokenType uint8

const (
	_Invalid TokenType = iota // not produced by the lexer

	// Keywords
	_Import
	_Manage
	_Attach
	_Inspect
	_If
	_Elif
	_Else
	_While
	_Continue
	_Break
	_Return
	_Mut
	_Fin
	_Function
	_Enum
	_True
	_False
	_Null

	// Multi-character operators
	_Increment // ++
	_Decrement // --
	_Eql       // ==
	_Neq       // !=
	_Geq       // >=
	_Leq       // <=
	_AndAnd    // &&
	_OrOr      // ||

	// Single-character operators
	_Add    // +
	_Sub    // -
	_Mul    // *
	_Div    // /
	_Xor    // ^
	_Assign // =
	_Gtr    // >
	_Lss    // <
	_Not    // !
	_Ref    // &

	// Brackets
	_Lparen // (
	_Rparen // )
	_Lbrace // {
	_Rbrace // }
	_Lbrack // [
	_Rbrack // ]

	// Literals
	_String // "text"
	_Number // 1_000.5
	_Name   // identifier

	// Punctuation
	_Dot   // .
	_Comma // ,
	_Colon // :
	_Semi  // ;

	// Whitespace
	_Space
	_Tab
	_Carriage
	_Newline

	tokenCount
)

// Exported token types for consumers of the AST.
const (
	Increment = _Increment
	Decrement = _Decrement
	Not       = _Not
	Ref       = _Ref
	Continue  = _Continue
	Break     = _Break
)

var tokenNames = [...]string{
	_Invalid: "INVALID",

	_Import:   "import",
	_Manage:   "manage",
	_Attach:   "attach",
	_Inspect:  "inspect",
	_If:       "if",
	_Elif:     "elif",
	_Else:     "else",
	_While:    "while",
	_Continue: "continue",
	_Break:    "break",
	_Return:   "return",
	_Mut:      "mut",
	_Fin:      "fin",
	_Function: "function",
	_Enum:     "enum",
	_True:     "true",
	_False:    "false",
	_Null:     "null",

	_Increment: "++",
	_Decrement: "--",
	_Eql:       "==",
	_Neq:       "!=",
	_Geq:       ">=",
	_Leq:       "<=",
	_AndAnd:    "&&",
	_OrOr:      "||",

	_Add:    "+",
	_Sub:    "-",
	_Mul:    "*",
	_Div:    "/",
	_Xor:    "^",
	_Assign: "=",
	_Gtr:    ">",
	_Lss:    "<",
	_Not:    "!",
	_Ref:    "&",

	_Lparen: "(",
	_Rparen: ")",
	_Lbrace: "{",
	_Rbrace: "}",
	_Lbrack: "[",
	_Rbrack: "]",

	_String: "STRING",
	_Number: "NUMBER",
	_Name:   "IDENT",

	_Dot:   ".",
	_Comma: ",",
	_Colon: ":",
	_Semi:  ";",

	_Space:    "SPACE",
	_Tab:      "TAB",
	_Carriage: "CR",
	_Newline:  "LF",
}

// String returns the string representation of the token type.
func (t TokenType) String() string {
	if t < tokenCount {
		return tokenNames[t]
	}
	return fmt.Sprintf("token(%d)", t)
}

// IsKeyword reports whether t is a keyword token.
func (t TokenType) IsKeyword() bool {
	return t >= _Import && t <= _Null
}

// IsWhitespace reports whether t is filtered out of the lexer's result.
func (t TokenType) IsWhitespace() bool {
	return t >= _Space && t <= _Newline
}

// IsBinaryOperator reports whether t joins two formulas.
func (t TokenType) IsBinaryOperator() bool {
	switch t {
	case _Add, _Sub, _Mul, _Div, _Eql, _Neq, _Gtr, _Lss, _Geq, _Leq, _Xor, _Assign, _AndAnd, _OrOr:
		return true
	}
	return false
}

// IsUnaryOperator reports whether t may prefix a formula.
func (t TokenType) IsUnaryOperator() bool {
	switch t {
	case _Increment, _Decrement, _Not, _Ref:
		return true
	}
	return false
}

// IsLiteral reports whether t is a literal value token.
func (t TokenType) IsLiteral() bool {
	switch t {
	case _String, _Number, _True, _False, _Null:
		return true
	}
	return false
}

// isWord reports whether t is an identifier-like token.
func (t TokenType) isWord() bool {
	return t == _Name || t.IsKeyword()
}

// Token is a single lexeme. Start and Stop are byte offsets into the
// source text; Lit is the matched text (separators removed for numbers).
type Token struct {
	Type  TokenType
	Start int
	Stop  int
	Line  uint32 // 1-based
	Col   uint32 // 1-based
	Lit   string
}

// Pos returns the token's position labelled with source.
func (t Token) Pos(source string) Pos {
	return NewPos(source, t.Line, t.Col)
}

// Is reports whether the token has type tt.
func (t Token) Is(tt TokenType) bool {
	return t.Type == tt
}

func (t Token) String() string {
	return fmt.Sprintf("%d:%d %s %q", t.Line, t.Col, t.Type, t.Lit)
}

// ----------------------------------------------------------------------------
// Matching rules

// A rule reports the length of the match anchored at the start of src,
// or 0 if it does not match.
type rule func(src string) int

var rules [tokenCount]rule

func init() {
	for t := _Import; t <= _Null; t++ {
		rules[t] = keyword(tokenNames[t])
	}
	for t := _Increment; t <= _Rbrack; t++ {
		rules[t] = fixed(tokenNames[t])
	}
	for t := _Dot; t <= _Semi; t++ {
		rules[t] = fixed(tokenNames[t])
	}
	rules[_String] = matchString
	rules[_Number] = matchNumber
	rules[_Name] = matchName
	rules[_Space] = fixed(" ")
	rules[_Tab] = fixed("\t")
	rules[_Carriage] = fixed("\r")
	rules[_Newline] = fixed("\n")
}

// match returns the first token type, in priority order, whose rule
// matches at the start of src, and the length of the match.
func match(src string) (TokenType, int) {
	for t := _Import; t < tokenCount; t++ {
		if n := rules[t](src); n > 0 {
			return t, n
		}
	}
	return _Invalid, 0
}

func fixed(lit string) rule {
	return func(src string) int {
		if strings.HasPrefix(src, lit) {
			return len(lit)
		}
		return 0
	}
}

// keyword matches word only when it is not followed by a word character.
// The boundary character is not part of the match.
func keyword(word string) rule {
	return func(src string) int {
		if !strings.HasPrefix(src, word) {
			return 0
		}
		if len(src) > len(word) && isWordChar(src[len(word)]) {
			return 0
		}
		return len(word)
	}
}

func matchName(src string) int {
	if len(src) == 0 || !isLetter(src[0]) {
		return 0
	}
	n := 1
	for n < len(src) && isWordChar(src[n]) {
		n++
	}
	return n
}

// matchNumber matches digit (digit|_)* ('.' digit (digit|_)*)?
func matchNumber(src string) int {
	digits := func(i int) int {
		if i >= len(src) || !isDigit(src[i]) {
			return i
		}
		for i < len(src) && (isDigit(src[i]) || src[i] == '_') {
			i++
		}
		return i
	}
	n := digits(0)
	if n == 0 {
		return 0
	}
	if n+1 < len(src) && src[n] == '.' && isDigit(src[n+1]) {
		n = digits(n + 1)
	}
	return n
}

// matchString matches a double-quoted string on a single line.
// A backslash escapes the character after it.
func matchString(src string) int {
	if len(src) == 0 || src[0] != '"' {
		return 0
	}
	for i := 1; i < len(src); i++ {
		switch src[i] {
		case '"':
			return i + 1
		case '\n':
			return 0
		case '\\':
			i++
		}
	}
	return 0
}

// isLetter reports whether c is a letter (a-z, A-Z, or _).
func isLetter(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || c == '_'
}

// isDigit reports whether c is a decimal digit (0-9).
func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

// isWordChar reports whether c is a letter, digit or underscore.
func isWordChar(c byte) bool {
	return isLetter(c) || isDigit(c)
}
