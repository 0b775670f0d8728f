package syntax

import (
	"fmt"
	"io"
	"strings"
)

// Fprint writes a textual representation of the AST to w.
func Fprint(w io.Writer, node Node) {
	p := &printer{w: w}
	p.print(node)
}

type printer struct {
	w      io.Writer
	indent int
}

func (p *printer) printf(format string, args ...interface{}) {
	fmt.Fprintf(p.w, "%s%s", strings.Repeat("  ", p.indent), fmt.Sprintf(format, args...))
}

// field prints a labelled child one level deeper.
func (p *printer) field(label string, n Node) {
	p.printf("%s:\n", label)
	p.indent++
	p.print(n)
	p.indent--
}

func (p *printer) print(node Node) {
	if node == nil {
		return
	}

	switch n := node.(type) {
	case *Body:
		p.printf("Body %s\n", n.pos)
		p.indent++
		for _, s := range n.Stmts {
			p.print(s)
		}
		p.indent--

	case *VariableDeclaration:
		kw := "fin"
		if n.Mutable {
			kw = "mut"
		}
		p.printf("VariableDeclaration %s (%s)\n", n.pos, kw)
		p.indent++
		p.printf("Name: %s\n", n.Name.Value)
		if n.Type != nil {
			p.printf("Type: %s\n", n.Type.Value)
		}
		if n.Value != nil {
			p.field("Value", n.Value)
		}
		p.indent--

	case *FunctionDeclaration:
		p.printf("FunctionDeclaration %s\n", n.pos)
		p.indent++
		p.printf("Name: %s\n", n.Name.Value)
		if len(n.Params) > 0 {
			p.printf("Params:\n")
			p.indent++
			for _, prm := range n.Params {
				p.print(prm)
			}
			p.indent--
		}
		if n.Result != nil {
			p.printf("Result: %s\n", n.Result.Value)
		}
		if n.Body != nil {
			p.print(n.Body)
		}
		p.indent--

	case *Parameter:
		name := "_"
		if n.Name != nil {
			name = n.Name.Value
		}
		if n.Type != nil {
			p.printf("Parameter %s %s: %s\n", n.pos, name, n.Type.Value)
		} else {
			p.printf("Parameter %s %s\n", n.pos, name)
		}
		if n.Value != nil {
			p.indent++
			p.field("Value", n.Value)
			p.indent--
		}

	case *FunctionalReturn:
		p.printf("FunctionalReturn %s\n", n.pos)
		if n.Result != nil {
			p.indent++
			p.print(n.Result)
			p.indent--
		}

	case *LoopControl:
		p.printf("LoopControl %s %s\n", n.pos, n.Tok)

	case *WhileLoop:
		p.printf("WhileLoop %s\n", n.pos)
		p.indent++
		p.field("Cond", n.Cond)
		p.print(n.Body)
		p.indent--

	case *ConditionalTree:
		p.printf("ConditionalTree %s\n", n.pos)
		p.indent++
		for _, b := range n.Branches {
			p.print(b)
		}
		if n.Default != nil {
			p.field("Default", n.Default)
		}
		p.indent--

	case *Branch:
		p.printf("Branch %s\n", n.pos)
		p.indent++
		p.field("Cond", n.Cond)
		p.field("Result", n.Result)
		p.indent--

	case *Identifier:
		p.printf("Identifier %s %s\n", n.pos, n.Value)

	case *Call:
		p.printf("Call %s\n", n.pos)
		p.indent++
		p.field("Fun", n.Fun)
		if len(n.Args) > 0 {
			p.printf("Args:\n")
			p.indent++
			for _, a := range n.Args {
				p.print(a)
			}
			p.indent--
		}
		p.indent--

	case *Member:
		p.printf("Member %s\n", n.pos)
		p.indent++
		p.field("Parent", n.Parent)
		p.field("Child", n.Child)
		p.indent--

	case *UnaryOperator:
		p.printf("UnaryOperator %s %s (%s)\n", n.pos, n.Op, n.Fixity)
		p.indent++
		p.print(n.X)
		p.indent--

	case *BinaryOperator:
		p.printf("BinaryOperator %s %s\n", n.pos, n.Op)
		p.indent++
		p.print(n.X)
		p.print(n.Y)
		p.indent--

	case *String:
		p.printf("String %s %q\n", n.pos, n.Value)

	case *Number:
		p.printf("Number %s %s\n", n.pos, n.Lit)

	case *Boolean:
		p.printf("Boolean %s %t\n", n.pos, n.Value)

	case *Null:
		p.printf("Null %s\n", n.pos)

	default:
		p.printf("%T\n", n)
	}
}
