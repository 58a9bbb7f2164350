// Package ast defines the concrete syntax tree produced by the parser.
// Every node is a plain, immutable Go value constructed once and never
// mutated afterward; none retain a reference into the source text —
// string payloads are copied out of the token stream that produced them.
package ast

import "github.com/lua-front/compiler/pkg/token"

// Name is an identifier as it appears in the source, carrying the
// position of its first character for diagnostics that originate later
// (e.g. "undefined variable" in a downstream stage).
type Name struct {
	Text string
	Pos  token.Position
}

// Chunk is the top-level production: a sequence of statements
// optionally terminated by a return or break.
type Chunk struct {
	Statements []Statement
	Last       LastStatement // nil if the chunk has no last statement
}

// Block is a Chunk appearing as the body of a control-flow construct.
type Block struct {
	Chunk Chunk
}

// Statement is any node that may appear in a Chunk's Statements list.
type Statement interface {
	statementNode()
}

// LastStatement is either a Return or a Break.
type LastStatement interface {
	lastStatementNode()
}

// Expr is any expression node.
type Expr interface {
	exprNode()
}

// Var is the subset of Expr that may appear as an assignment target.
type Var interface {
	Expr
	varNode()
}

// Statements.

type Assign struct {
	Targets []Var
	Values  []Expr
	Pos     token.Position
}

type FunctionCallStat struct {
	Call Expr // always a Call
	Pos  token.Position
}

type Do struct {
	Body Block
	Pos  token.Position
}

type While struct {
	Cond Expr
	Body Block
	Pos  token.Position
}

type Repeat struct {
	Body Block
	Cond Expr
	Pos  token.Position
}

// ElseIf is one `elseif cond then block` clause of an If.
type ElseIf struct {
	Cond  Expr
	Block Block
}

type If struct {
	Cond    Expr
	Then    Block
	ElseIfs []ElseIf
	Else    *Block // nil if there is no else clause
	Pos     token.Position
}

type ForNumeric struct {
	Name Name
	From Expr
	To   Expr
	Step Expr // nil if no step was given
	Body Block
	Pos  token.Position
}

type ForGeneric struct {
	Names []Name
	Exprs []Expr
	Body  Block
	Pos   token.Position
}

// FuncName is the dotted/method-qualified name that follows `function`
// in a FunctionDecl: `function a.b.c:d(...)`.
type FuncName struct {
	Head   Name
	Dotted []Name
	Method *Name // nil if no ":method" suffix
}

type FunctionDecl struct {
	Name FuncName
	Body FuncBody
	Pos  token.Position
}

type LocalFunction struct {
	Name Name
	Body FuncBody
	Pos  token.Position
}

type LocalVars struct {
	Names  []Name
	Values []Expr // may be shorter than Names, or empty
	Pos    token.Position
}

func (*Assign) statementNode()           {}
func (*FunctionCallStat) statementNode() {}
func (*Do) statementNode()               {}
func (*While) statementNode()            {}
func (*Repeat) statementNode()           {}
func (*If) statementNode()               {}
func (*ForNumeric) statementNode()       {}
func (*ForGeneric) statementNode()       {}
func (*FunctionDecl) statementNode()     {}
func (*LocalFunction) statementNode()    {}
func (*LocalVars) statementNode()        {}

// LastStatement variants.

type Return struct {
	Values []Expr // nil means a bare "return" with no expression list
	Pos    token.Position
}

type Break struct {
	Pos token.Position
}

func (*Return) lastStatementNode() {}
func (*Break) lastStatementNode()  {}

// Expressions.

type Nil struct{ Pos token.Position }
type True struct{ Pos token.Position }
type False struct{ Pos token.Position }
type Vararg struct{ Pos token.Position }

type Number struct {
	Value float64
	Pos   token.Position
}

type String struct {
	Value string
	Pos   token.Position
}

type Function struct {
	Body FuncBody
	Pos  token.Position
}

// BinOp and UnOp encode precedence and associativity structurally: the
// shape of the tree, not a numeric field, is what reproduces the
// precedence cascade (see internal/parser's expression levels).
type BinOp struct {
	Op    token.Type
	Left  Expr
	Right Expr
	Pos   token.Position
}

type UnOp struct {
	Op      token.Type
	Operand Expr
	Pos     token.Position
}

// Paren wraps a parenthesized expression. It is semantically significant
// in Lua: it truncates a multi-value expression (a call or "...") down
// to exactly one value.
type Paren struct {
	Inner Expr
	Pos   token.Position
}

type Table struct {
	Fields FieldList
	Pos    token.Position
}

func (*Nil) exprNode()      {}
func (*True) exprNode()     {}
func (*False) exprNode()    {}
func (*Vararg) exprNode()   {}
func (*Number) exprNode()   {}
func (*String) exprNode()   {}
func (*Function) exprNode() {}
func (*BinOp) exprNode()    {}
func (*UnOp) exprNode()     {}
func (*Paren) exprNode()    {}
func (*Table) exprNode()    {}

// Variables (the Var subset of Expr).

type VarName struct {
	Name Name
}

type VarIndex struct {
	Base  Expr
	Index Expr
	Pos   token.Position
}

type VarField struct {
	Base Expr
	Name Name
	Pos  token.Position
}

func (*VarName) exprNode()  {}
func (*VarIndex) exprNode() {}
func (*VarField) exprNode() {}

func (*VarName) varNode()  {}
func (*VarIndex) varNode() {}
func (*VarField) varNode() {}

// Calls.

type CallArgs struct {
	Base Expr
	Args Args
	Pos  token.Position
}

type CallMethod struct {
	Base   Expr
	Method Name
	Args   Args
	Pos    token.Position
}

func (*CallArgs) exprNode()   {}
func (*CallMethod) exprNode() {}

// Args is the argument list of a function or method call.
type Args interface {
	argsNode()
}

type ParenArgs struct {
	Exprs []Expr
	Pos   token.Position
}

type TableArgs struct {
	Fields FieldList
	Pos    token.Position
}

type StringArgs struct {
	Value string
	Pos   token.Position
}

func (*ParenArgs) argsNode()  {}
func (*TableArgs) argsNode()  {}
func (*StringArgs) argsNode() {}

// FuncBody is a parameter list plus block, delimited by "end".
type FuncBody struct {
	Params ParList
	Body   Block
	Pos    token.Position
}

// ParList is a function's formal parameter list.
type ParList struct {
	Names  []Name
	Vararg bool
}

// FieldList is the body of a table constructor.
type FieldList struct {
	Fields      []Field
	TrailingSep bool
}

// Field is one entry of a table constructor.
type Field interface {
	fieldNode()
}

type IndexedField struct {
	Key   Expr
	Value Expr
}

type NamedField struct {
	Key   Name
	Value Expr
}

type PositionalField struct {
	Value Expr
}

func (*IndexedField) fieldNode()    {}
func (*NamedField) fieldNode()      {}
func (*PositionalField) fieldNode() {}
