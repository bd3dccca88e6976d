package grammar

import (
	"github.com/alecthomas/participle/v2/lexer"
)

type Program struct {
	Pos        lexer.Position
	Statements []*Statement `EOL* ( @@ EOL* )*`
}

type Statement struct {
	Pos   lexer.Position
	Print *Print    `  @@`
	If    *If       `| @@`
	While *While    `| @@`
	Label *PosIdent `| "label" @@`
	Goto  *PosIdent `| "goto" @@`
	Let   *Let      `| @@`
	Input *PosIdent `| "input" @@`
}

type PosIdent struct {
	Pos   lexer.Position
	Value string `@Ident`
}

type Print struct {
	Text       *string     `"print" ( @String`
	Expression *Expression `        | @@ )`
}

type If struct {
	Comparison *Comparison  `"if" @@ EOL* "then"`
	Body       []*Statement `( EOL | "then" | "repeat" | @@ )* "endif"`
}

type While struct {
	Comparison *Comparison  `"while" @@ EOL* "repeat"`
	Body       []*Statement `( EOL | "then" | "repeat" | @@ )* "endwhile"`
}

type Let struct {
	Ident      PosIdent    `"let" @@ "="`
	Expression *Expression `@@`
}

type Comparison struct {
	Left  *Expression `@@`
	Op    string      `@("==" | "!=" | ">=" | ">" | "<=" | "<")`
	Right *Expression `@@`
}

type Expression struct {
	Head *Term     `@@`
	Tail []*OpTerm `@@*`
}

type OpTerm struct {
	Op   string `@("+" | "-")`
	Term *Term  `@@`
}

type Term struct {
	Head *Unary     `@@`
	Tail []*OpUnary `@@*`
}

type OpUnary struct {
	Op    string `@("*" | "/")`
	Unary *Unary `@@`
}

type Unary struct {
	Pos    lexer.Position
	Sign   string  `@("+" | "-")?`
	Number *string `( @Number`
	Ident  *string `| @Ident )`
}
