package shell

import (
	"bytes"
	"strings"
	"sync"
	"testing"

	"github.com/you-not-fish/blaze/internal/syntax"
)

// syncBuffer is a bytes.Buffer safe for the printer goroutine.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestConsolePrintsDiagnostics(t *testing.T) {
	var out syncBuffer
	c := NewConsole(&out, 4, NewStyles(false))
	c.Start()

	r := NewRunner("Shell", c.Sink(), nil)
	r.Parse("!!x")
	r.Lex(`a"x"`)

	if dropped := c.Close(); dropped != 0 {
		t.Errorf("dropped %d diagnostics", dropped)
	}

	want := "Syntax Error: '!' operator is already used at Shell:1:1 <-= at Shell:1:2\n" +
		"Lexical Error: \"a\" before a string with no space between <-= at Shell:1:1\n"
	if got := out.String(); got != want {
		t.Errorf("output =\n%s\nwant\n%s", got, want)
	}
}

func TestConsoleCloseIdempotent(t *testing.T) {
	var out syncBuffer
	c := NewConsole(&out, 1, NewStyles(false))
	c.Start()
	c.Start()
	c.Close()
	c.Close()

	c.Sink().Report(syntax.Diagnostic{Msg: "late"})
	if got := c.Close(); got != 1 {
		t.Errorf("dropped = %d, want 1", got)
	}
	if out.String() != "" {
		t.Errorf("unexpected output %q", out.String())
	}
}

func TestConsoleCloseWithoutStart(t *testing.T) {
	c := NewConsole(&syncBuffer{}, 1, NewStyles(false))
	c.Sink().Report(syntax.Diagnostic{Msg: "queued"})
	if got := c.Close(); got != 0 {
		t.Errorf("dropped = %d, want 0", got)
	}
}

func TestStylesPlain(t *testing.T) {
	s := NewStyles(false)
	d := syntax.Diagnostic{Severity: syntax.SeverityFatal, Msg: "boom", Pos: syntax.NewPos("Shell", 1, 1)}

	if got := s.Diagnostic(d); got != d.String() {
		t.Errorf("Diagnostic() = %q, want %q", got, d.String())
	}
	if got := s.Success("done"); got != "done" {
		t.Errorf("Success() = %q", got)
	}
}

func TestStylesColorKeepsText(t *testing.T) {
	s := NewStyles(true)
	d := syntax.Diagnostic{Severity: syntax.SeverityLexical, Msg: "bad", Pos: syntax.NewPos("Shell", 2, 3)}

	got := s.Diagnostic(d)
	for _, want := range []string{"Lexical Error", ": bad <-= at Shell:2:3"} {
		if !strings.Contains(got, want) {
			t.Errorf("Diagnostic() = %q, missing %q", got, want)
		}
	}
}

func TestWriteTokenTable(t *testing.T) {
	res := NewRunner("Shell", nil, nil).Lex(`fin s = "a\tb"`)
	if res.Err != nil {
		t.Fatal(res.Err)
	}

	var b strings.Builder
	WriteTokenTable(&b, "Shell", res.Tokens)
	lines := strings.Split(strings.TrimRight(b.String(), "\n"), "\n")

	if len(lines) != 2+len(res.Tokens) {
		t.Fatalf("got %d lines, want %d", len(lines), 2+len(res.Tokens))
	}
	if !strings.HasPrefix(lines[0], "POSITION") {
		t.Errorf("header = %q", lines[0])
	}
	if want := "Shell:1:1            fin          \"fin\""; lines[2] != want {
		t.Errorf("row = %q, want %q", lines[2], want)
	}
	if !strings.Contains(lines[5], `STRING       "\"a\\tb\""`) {
		t.Errorf("string row = %q", lines[5])
	}
}

func TestFormatLiteral(t *testing.T) {
	tests := []struct {
		lit  string
		want string
	}{
		{"", `""`},
		{"abc", `"abc"`},
		{"a\nb", `"a\nb"`},
		{`"q"`, `"\"q\""`},
		{`a\b`, `"a\\b"`},
	}
	for _, tt := range tests {
		if got := formatLiteral(tt.lit); got != tt.want {
			t.Errorf("formatLiteral(%q) = %s, want %s", tt.lit, got, tt.want)
		}
	}
}
