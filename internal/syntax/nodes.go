package syntax

// ----------------------------------------------------------------------------
// Interfaces
//
// Every node reports a Kind discriminant so consumers can switch over the
// closed set of node types. All nodes except Parameter and Branch are
// expressions: statements such as declarations and loops are formulas too.

// Node is the interface implemented by all AST nodes.
type Node interface {
	Pos() Pos       // position of the first token belonging to the node
	Kind() NodeKind // concrete node type
	aNode()         // marker method to restrict implementations to this package
}

// Expr is the interface for all expression nodes.
type Expr interface {
	Node
	aExpr()
}

// NodeKind discriminates the concrete node types.
type NodeKind uint8

const (
	KindBody NodeKind = iota
	KindVariableDeclaration
	KindFunctionDeclaration
	KindFunctionalReturn
	KindLoopControl
	KindWhileLoop
	KindConditionalTree
	KindIdentifier
	KindCall
	KindMember
	KindUnaryOperator
	KindBinaryOperator
	KindString
	KindNumber
	KindBoolean
	KindNull
	KindParameter
	KindBranch

	kindCount
)

var kindNames = [...]string{
	KindBody:                "Body",
	KindVariableDeclaration: "VariableDeclaration",
	KindFunctionDeclaration: "FunctionDeclaration",
	KindFunctionalReturn:    "FunctionalReturn",
	KindLoopControl:         "LoopControl",
	KindWhileLoop:           "WhileLoop",
	KindConditionalTree:     "ConditionalTree",
	KindIdentifier:          "Identifier",
	KindCall:                "Call",
	KindMember:              "Member",
	KindUnaryOperator:       "UnaryOperator",
	KindBinaryOperator:      "BinaryOperator",
	KindString:              "String",
	KindNumber:              "Number",
	KindBoolean:             "Boolean",
	KindNull:                "Null",
	KindParameter:           "Parameter",
	KindBranch:              "Branch",
}

func (k NodeKind) String() string {
	if k < kindCount {
		return kindNames[k]
	}
	return "NodeKind(?)"
}

// ----------------------------------------------------------------------------
// Base node types

// node is the base struct embedded in all AST nodes.
type node struct {
	pos Pos
}

func (n *node) Pos() Pos { return n.pos }
func (n *node) aNode()   {}

// expr is embedded in all expression nodes.
type expr struct{ node }

func (*expr) aExpr() {}

// ----------------------------------------------------------------------------
// Statements

// Body is an ordered statement sequence: a block, a function body, or the
// program root.
type Body struct {
	expr
	Stmts []Expr
}

// VariableDeclaration represents: mut|fin Name [: Type] [= Value]
type VariableDeclaration struct {
	expr
	Mutable bool        // mut (true) or fin (false)
	Name    *Identifier // variable name
	Type    *Identifier // declared type (nil if none)
	Value   Expr        // initializer (nil if none)
}

// FunctionDeclaration represents:
// function Name(Params) [: Result] { Body }
type FunctionDeclaration struct {
	expr
	Name   *Identifier
	Params []*Parameter
	Result *Identifier // return type (nil if none)
	Body   *Body
}

// FunctionalReturn represents: return [Result]
type FunctionalReturn struct {
	expr
	Result Expr // nil for bare return
}

// LoopControl represents continue or break.
type LoopControl struct {
	expr
	Tok TokenType // Continue or Break
}

// WhileLoop represents: while Cond { Body }
type WhileLoop struct {
	expr
	Cond Expr
	Body *Body
}

// ConditionalTree represents if/elif/else as a value:
// if Cond Result (elif Cond Result)* [else Default]
type ConditionalTree struct {
	expr
	Branches []*Branch
	Default  Expr // nil without else
}

// Branch is one (condition, result) pair of a ConditionalTree.
type Branch struct {
	node
	Cond   Expr
	Result Expr
}

// ----------------------------------------------------------------------------
// Expressions

// Identifier represents a name.
type Identifier struct {
	expr
	Value string
}

// Call represents Fun(Args...).
type Call struct {
	expr
	Fun  Expr
	Args []*Parameter
}

// Member represents Parent.Child.
type Member struct {
	expr
	Parent Expr
	Child  Expr
}

// Fixity tells whether a unary operator was written before or after its
// operand.
type Fixity uint8

const (
	Prefix Fixity = iota
	Postfix
)

func (f Fixity) String() string {
	if f == Prefix {
		return "prefix"
	}
	return "postfix"
}

// UnaryOperator represents ++x, --x, !x, &x, x++ or x--.
type UnaryOperator struct {
	expr
	Op     TokenType
	X      Expr
	Fixity Fixity
}

// BinaryOperator represents X Op Y.
type BinaryOperator struct {
	expr
	Op TokenType
	X  Expr
	Y  Expr
}

// String represents a string literal with quotes removed.
type String struct {
	expr
	Value string
}

// Number represents a numeric literal.
type Number struct {
	expr
	Value float64
	Lit   string // literal text with separators removed
}

// Boolean represents true or false.
type Boolean struct {
	expr
	Value bool
}

// Null represents null.
type Null struct {
	expr
}

// Parameter is a declared function parameter or a call argument.
// Declarations carry Name and Type and an optional default in Value.
// Call arguments carry Value and, for keyword arguments, Name.
type Parameter struct {
	node
	Name  *Identifier // nil for positional call arguments
	Type  *Identifier // declarations only
	Value Expr        // default value or argument value
}

// Keyed reports whether the parameter carries a default or keyword value.
func (p *Parameter) Keyed() bool {
	return p.Value != nil && p.Name != nil
}

// ----------------------------------------------------------------------------
// Kind

func (*Body) Kind() NodeKind                { return KindBody }
func (*VariableDeclaration) Kind() NodeKind { return KindVariableDeclaration }
func (*FunctionDeclaration) Kind() NodeKind { return KindFunctionDeclaration }
func (*FunctionalReturn) Kind() NodeKind    { return KindFunctionalReturn }
func (*LoopControl) Kind() NodeKind         { return KindLoopControl }
func (*WhileLoop) Kind() NodeKind           { return KindWhileLoop }
func (*ConditionalTree) Kind() NodeKind     { return KindConditionalTree }
func (*Branch) Kind() NodeKind              { return KindBranch }
func (*Identifier) Kind() NodeKind          { return KindIdentifier }
func (*Call) Kind() NodeKind                { return KindCall }
func (*Member) Kind() NodeKind              { return KindMember }
func (*UnaryOperator) Kind() NodeKind       { return KindUnaryOperator }
func (*BinaryOperator) Kind() NodeKind      { return KindBinaryOperator }
func (*String) Kind() NodeKind              { return KindString }
func (*Number) Kind() NodeKind              { return KindNumber }
func (*Boolean) Kind() NodeKind             { return KindBoolean }
func (*Null) Kind() NodeKind                { return KindNull }
func (*Parameter) Kind() NodeKind           { return KindParameter }
