package syntax

import (
	"errors"
	"testing"
)

func analyze(t *testing.T, src string) []Token {
	t.Helper()
	toks, err := NewLexer(src, WithSource("test")).Analyze()
	if err != nil {
		t.Fatalf("Analyze(%q) error: %v", src, err)
	}
	return toks
}

func tokenTypes(toks []Token) []TokenType {
	tts := make([]TokenType, len(toks))
	for i, tok := range toks {
		tts[i] = tok.Type
	}
	return tts
}

func equalTypes(a, b []TokenType) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestAnalyzeTokens(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want []TokenType
		lits []string
	}{
		{"keywords", "if mut while else", []TokenType{_If, _Mut, _While, _Else}, []string{"if", "mut", "while", "else"}},
		{"empty", "", []TokenType{}, []string{}},
		{"whitespace only", " \t\r\n ", []TokenType{}, []string{}},
		{
			"declaration",
			"fin country_id = 1",
			[]TokenType{_Fin, _Name, _Assign, _Number},
			[]string{"fin", "country_id", "=", "1"},
		},
		{"number separators", "1_000", []TokenType{_Number}, []string{"1000"}},
		{"float separators", "1_0.2_5", []TokenType{_Number}, []string{"10.25"}},
		{
			"operators",
			"a++ >= !b && &c",
			[]TokenType{_Name, _Increment, _Geq, _Not, _Name, _AndAnd, _Ref, _Name},
			[]string{"a", "++", ">=", "!", "b", "&&", "&", "c"},
		},
		{
			"keyword touching bracket",
			"if(x){y}",
			[]TokenType{_If, _Lparen, _Name, _Rparen, _Lbrace, _Name, _Rbrace},
			[]string{"if", "(", "x", ")", "{", "y", "}"},
		},
		{"keyword prefix", "finally mutable", []TokenType{_Name, _Name}, []string{"finally", "mutable"}},
		{"string separated", ` "x";`, []TokenType{_String, _Semi}, []string{`"x"`, ";"}},
		{"string in call", `print("x")`, []TokenType{_Name, _Lparen, _String, _Rparen}, []string{"print", "(", `"x"`, ")"}},
		{"string after string", `"a""b"`, []TokenType{_String, _String}, []string{`"a"`, `"b"`}},
		{
			"member chain",
			"a.b(c=1).d",
			[]TokenType{_Name, _Dot, _Name, _Lparen, _Name, _Assign, _Number, _Rparen, _Dot, _Name},
			[]string{"a", ".", "b", "(", "c", "=", "1", ")", ".", "d"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			toks := analyze(t, tt.src)
			if got := tokenTypes(toks); !equalTypes(got, tt.want) {
				t.Fatalf("types = %v, want %v", got, tt.want)
			}
			for i, tok := range toks {
				if tok.Lit != tt.lits[i] {
					t.Errorf("token %d lit = %q, want %q", i, tok.Lit, tt.lits[i])
				}
			}
		})
	}
}

func TestAnalyzePositions(t *testing.T) {
	toks := analyze(t, "mut x\n  = 1;\n\"s\"")

	want := []struct {
		tt        TokenType
		line, col uint32
	}{
		{_Mut, 1, 1},
		{_Name, 1, 5},
		{_Assign, 2, 3},
		{_Number, 2, 5},
		{_Semi, 2, 6},
		{_String, 3, 1},
	}
	if len(toks) != len(want) {
		t.Fatalf("got %d tokens, want %d", len(toks), len(want))
	}
	for i, w := range want {
		tok := toks[i]
		if tok.Type != w.tt || tok.Line != w.line || tok.Col != w.col {
			t.Errorf("token %d = %s at %d:%d, want %s at %d:%d",
				i, tok.Type, tok.Line, tok.Col, w.tt, w.line, w.col)
		}
	}
}

func TestAnalyzeOffsets(t *testing.T) {
	src := "fin  abc"
	toks := analyze(t, src)
	for _, tok := range toks {
		if got := src[tok.Start:tok.Stop]; got != tok.Lit {
			t.Errorf("src[%d:%d] = %q, want %q", tok.Start, tok.Stop, got, tok.Lit)
		}
	}
}

func TestAnalyzeErrors(t *testing.T) {
	tests := []struct {
		name     string
		src      string
		code     LexCode
		pos      string
		text     string
		side     Side
		wantDiag string
	}{
		{
			name:     "unrecognized",
			src:      "mut x = $foo bar",
			code:     UnrecognizedToken,
			pos:      "test:1:9",
			text:     "$foo",
			wantDiag: "Lexical Error: '$foo' is not recognized <-= at test:1:9",
		},
		{
			name:     "unterminated string",
			src:      `x = "abc`,
			code:     UnrecognizedToken,
			pos:      "test:1:5",
			text:     `"abc`,
			wantDiag: `Lexical Error: '"abc' is not recognized <-= at test:1:5`,
		},
		{
			name:     "number followed by name",
			src:      "x = 1abc",
			code:     NumericAlphanumericAdjacency,
			pos:      "test:1:5",
			text:     "1abc",
			wantDiag: "Lexical Error: numbers cannot end with alphanumeric <-= at test:1:5",
		},
		{
			name:     "number followed by keyword",
			src:      "12if",
			code:     NumericAlphanumericAdjacency,
			pos:      "test:1:1",
			text:     "12if",
			wantDiag: "Lexical Error: numbers cannot end with alphanumeric <-= at test:1:1",
		},
		{
			name:     "word before string",
			src:      `a"x"`,
			code:     StringAdjacency,
			pos:      "test:1:1",
			text:     "a",
			side:     SideLeft,
			wantDiag: `Lexical Error: "a" before a string with no space between <-= at test:1:1`,
		},
		{
			name:     "dot before string",
			src:      `a."x"`,
			code:     StringAdjacency,
			pos:      "test:1:2",
			text:     ".",
			side:     SideLeft,
			wantDiag: `Lexical Error: "." before a string with no space between <-= at test:1:2`,
		},
		{
			name:     "word after string",
			src:      `"x"b`,
			code:     StringAdjacency,
			pos:      "test:1:4",
			text:     "b",
			side:     SideRight,
			wantDiag: `Lexical Error: "b" after a string with no space between <-= at test:1:4`,
		},
		{
			name:     "second line",
			src:      "x\n  @",
			code:     UnrecognizedToken,
			pos:      "test:2:3",
			text:     "@",
			wantDiag: "Lexical Error: '@' is not recognized <-= at test:2:3",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var diags []Diagnostic
			sink := SinkFunc(func(d Diagnostic) { diags = append(diags, d) })

			toks, err := NewLexer(tt.src, WithSource("test"), WithSink(sink)).Analyze()
			if err == nil {
				t.Fatalf("Analyze(%q) succeeded with %v", tt.src, toks)
			}
			if toks != nil {
				t.Errorf("tokens = %v, want nil", toks)
			}

			var lerr *LexError
			if !errors.As(err, &lerr) {
				t.Fatalf("error %T is not a *LexError", err)
			}
			if lerr.Code != tt.code {
				t.Errorf("code = %d, want %d", lerr.Code, tt.code)
			}
			if got := lerr.Pos.String(); got != tt.pos {
				t.Errorf("pos = %s, want %s", got, tt.pos)
			}
			if lerr.Text != tt.text {
				t.Errorf("text = %q, want %q", lerr.Text, tt.text)
			}
			if tt.code == StringAdjacency && lerr.Side != tt.side {
				t.Errorf("side = %s, want %s", lerr.Side, tt.side)
			}

			if len(diags) != 1 {
				t.Fatalf("got %d diagnostics, want 1", len(diags))
			}
			if got := diags[0].String(); got != tt.wantDiag {
				t.Errorf("diagnostic = %q, want %q", got, tt.wantDiag)
			}
		})
	}
}

func TestAnalyzeReuse(t *testing.T) {
	lx := NewLexer("x")
	if _, err := lx.Analyze(); err != nil {
		t.Fatalf("first Analyze: %v", err)
	}
	if _, err := lx.Analyze(); !errors.Is(err, ErrReused) {
		t.Errorf("second Analyze error = %v, want ErrReused", err)
	}
}

func TestAnalyzeContext(t *testing.T) {
	lx := NewLexer("a\nbc")
	if _, err := lx.Analyze(); err != nil {
		t.Fatal(err)
	}
	ctx := lx.Context()
	if ctx.Source != DefaultSource || ctx.Line != 2 || ctx.Col != 3 {
		t.Errorf("context = %s, want %s:2:3", ctx.Pos(), DefaultSource)
	}
}
