package ast

type Node interface {
	NodeType() NodeType
	String() string
}

type Statement interface {
	Node
	isStatement()
}

// Program is the root of every tree; it owns the top-level statements in source order.
type Program struct {
	Statements []Statement
}

type PrintString struct {
	Text string
}

type PrintExpression struct {
	Expression *Expression
}

type If struct {
	Comparison *Comparison
	Body       []Statement
}

type While struct {
	Comparison *Comparison
	Body       []Statement
}

type Label struct {
	Name string
}

type Goto struct {
	Name string
}

type Let struct {
	Ident      string
	Expression *Expression
}

type Input struct {
	Ident string
}

// Comparison holds exactly two operands; comparisons never chain.
type Comparison struct {
	Op    CompareOp
	Left  *Expression
	Right *Expression
}

// Expression is a Term followed by (+|-) Term tail operations, applied left to right.
type Expression struct {
	Term *Term
	Tail []TermTail
}

type TermTail struct {
	Op   AddOp
	Term *Term
}

// Term is a Unary followed by (*|/) Unary tail operations, applied left to right.
type Term struct {
	Unary *Unary
	Tail  []UnaryTail
}

type UnaryTail struct {
	Op    MulOp
	Unary *Unary
}

type Unary struct {
	Sign    Sign
	Primary *Primary
}

type Primary struct {
	Kind   PrimaryKind
	Number int
	Ident  string
}

func (*Program) NodeType() NodeType         { return PROGRAM }
func (*PrintString) NodeType() NodeType     { return PRINT_STRING }
func (*PrintExpression) NodeType() NodeType { return PRINT_EXPRESSION }
func (*If) NodeType() NodeType              { return IF_STMT }
func (*While) NodeType() NodeType           { return WHILE_STMT }
func (*Label) NodeType() NodeType           { return LABEL_STMT }
func (*Goto) NodeType() NodeType            { return GOTO_STMT }
func (*Let) NodeType() NodeType             { return LET_STMT }
func (*Input) NodeType() NodeType           { return INPUT_STMT }
func (*Comparison) NodeType() NodeType      { return COMPARISON }
func (*Expression) NodeType() NodeType      { return EXPRESSION }
func (*Term) NodeType() NodeType            { return TERM }
func (*Unary) NodeType() NodeType           { return UNARY }
func (*Primary) NodeType() NodeType         { return PRIMARY }

func (*PrintString) isStatement()     {}
func (*PrintExpression) isStatement() {}
func (*If) isStatement()              {}
func (*While) isStatement()           {}
func (*Label) isStatement()           {}
func (*Goto) isStatement()            {}
func (*Let) isStatement()             {}
func (*Input) isStatement()           {}

// Helper functions to reduce repetitive AST node creation

func NewNumber(value int) *Primary {
	return &Primary{Kind: NumberPrimary, Number: value}
}

func NewIdent(name string) *Primary {
	return &Primary{Kind: IdentPrimary, Ident: name}
}

// Wrap builds the minimal Expression/Term/Unary chain around a single unary.
func Wrap(u *Unary) *Expression {
	return &Expression{Term: &Term{Unary: u}}
}

// Int is the minimal expression for an integer literal.
func Int(value int) *Expression {
	return Wrap(&Unary{Sign: Plus, Primary: NewNumber(value)})
}

// Var is the minimal expression for an identifier reference.
func Var(name string) *Expression {
	return Wrap(&Unary{Sign: Plus, Primary: NewIdent(name)})
}
