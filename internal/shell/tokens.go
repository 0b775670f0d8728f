package shell

import (
	"fmt"
	"io"
	"strings"

	"github.com/you-not-fish/blaze/internal/syntax"
)

// WriteTokenTable prints tokens as a position/type/literal table.
func WriteTokenTable(w io.Writer, source string, toks []syntax.Token) {
	fmt.Fprintf(w, "%-20s %-12s %s\n", "POSITION", "TOKEN", "LITERAL")
	fmt.Fprintf(w, "%-20s %-12s %s\n", strings.Repeat("-", 20), strings.Repeat("-", 12), strings.Repeat("-", 20))

	for _, tok := range toks {
		fmt.Fprintf(w, "%-20s %-12s %s\n", tok.Pos(source), tok.Type, formatLiteral(tok.Lit))
	}
}

// formatLiteral quotes lit with control characters made visible.
func formatLiteral(lit string) string {
	if lit == "" {
		return "\"\""
	}

	var b strings.Builder
	b.WriteRune('"')
	for _, r := range lit {
		switch r {
		case '\n':
			b.WriteString("\\n")
		case '\t':
			b.WriteString("\\t")
		case '\r':
			b.WriteString("\\r")
		case '\\':
			b.WriteString("\\\\")
		case '"':
			b.WriteString("\\\"")
		default:
			b.WriteRune(r)
		}
	}
	b.WriteRune('"')
	return b.String()
}
