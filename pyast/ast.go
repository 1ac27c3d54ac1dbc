// Copyright (C) 2026 The Xilione Authors. All Rights Reserved.

// Package pyast defines a syntax tree for Python source in the shape
// produced by CPython 3.5 era parsers, together with traversal helpers
// and literal constructors.
//
// Nodes come in two flavors. Positioned nodes (statements, expressions,
// function arguments and except clauses) embed a Span and expose their
// source range through the Range method; parsers fill in the start
// position and the marker package completes the end. Structural nodes
// such as Module, Arguments and the subscript helpers carry no position
// of their own and exist only to group their children.
package pyast

import "github.com/xilione/thonny"

// A Node is an element of a Python syntax tree.
type Node interface{ astNode() }

// A Positioned is a node that carries a source text range. The start
// position is set at construction; the end position is zero until a
// marking pass fills it in.
type Positioned interface {
	Node
	Range() *thonny.TextRange
}

// A Stmt is a statement node.
type Stmt interface {
	Positioned
	stmtNode()
}

// An Expr is an expression node.
type Expr interface {
	Positioned
	exprNode()
}

// A Span is the range carrier embedded in positioned nodes.
type Span struct {
	rng thonny.TextRange
}

// At returns a Span anchored at the given start position, for
// constructing nodes whose ends are not yet known.
func At(line, col int) Span {
	return Span{rng: thonny.TextRange{Start: thonny.Pos{Line: line, Col: col}}}
}

// Range returns the node's text range. The marking passes write through
// the returned pointer; other callers should treat it as read-only.
func (s *Span) Range() *thonny.TextRange { return &s.rng }

func (s *Span) astNode() {}

// Statements.

// A FunctionDef is a function definition statement.
type FunctionDef struct {
	Span
	Name       string
	Args       *Arguments
	Body       []Stmt
	Decorators []Expr
	Returns    Expr // return annotation, or nil
}

// An AsyncFunctionDef is an async function definition statement.
type AsyncFunctionDef struct {
	Span
	Name       string
	Args       *Arguments
	Body       []Stmt
	Decorators []Expr
	Returns    Expr
}

// A ClassDef is a class definition statement.
type ClassDef struct {
	Span
	Name       string
	Bases      []Expr
	Keywords   []*Keyword
	Body       []Stmt
	Decorators []Expr
}

// A Return is a return statement.
type Return struct {
	Span
	Value Expr // nil for a bare return
}

// A Delete is a del statement.
type Delete struct {
	Span
	Targets []Expr
}

// An Assign is an assignment statement.
type Assign struct {
	Span
	Targets []Expr
	Value   Expr
}

// An AugAssign is an augmented assignment statement such as "x += 1".
type AugAssign struct {
	Span
	Target Expr
	Op     Op
	Value  Expr
}

// A For is a for loop.
type For struct {
	Span
	Target Expr
	Iter   Expr
	Body   []Stmt
	Orelse []Stmt
}

// An AsyncFor is an async for loop.
type AsyncFor struct {
	Span
	Target Expr
	Iter   Expr
	Body   []Stmt
	Orelse []Stmt
}

// A While is a while loop.
type While struct {
	Span
	Test   Expr
	Body   []Stmt
	Orelse []Stmt
}

// An If is a conditional statement.
type If struct {
	Span
	Test   Expr
	Body   []Stmt
	Orelse []Stmt
}

// A With is a with statement.
type With struct {
	Span
	Items []*WithItem
	Body  []Stmt
}

// An AsyncWith is an async with statement.
type AsyncWith struct {
	Span
	Items []*WithItem
	Body  []Stmt
}

// A Raise is a raise statement.
type Raise struct {
	Span
	Exc   Expr // nil for a bare raise
	Cause Expr // raise ... from Cause, or nil
}

// A Try is a try statement with its handlers and final block.
type Try struct {
	Span
	Body      []Stmt
	Handlers  []*ExceptHandler
	Orelse    []Stmt
	Finalbody []Stmt
}

// An Assert is an assert statement.
type Assert struct {
	Span
	Test Expr
	Msg  Expr // nil when no message is given
}

// An Import is an import statement.
type Import struct {
	Span
	Names []*Alias
}

// An ImportFrom is a from ... import statement.
type ImportFrom struct {
	Span
	Module string // empty for a purely relative import
	Names  []*Alias
	Level  int // number of leading dots
}

// A Global is a global declaration.
type Global struct {
	Span
	Names []string
}

// A Nonlocal is a nonlocal declaration.
type Nonlocal struct {
	Span
	Names []string
}

// An ExprStmt is an expression evaluated as a statement.
type ExprStmt struct {
	Span
	Value Expr
}

// A Pass is a pass statement.
type Pass struct{ Span }

// A Break is a break statement.
type Break struct{ Span }

// A Continue is a continue statement.
type Continue struct{ Span }

// Expressions.

// A BoolOp is a boolean operation over two or more values.
type BoolOp struct {
	Span
	Op     Op
	Values []Expr
}

// A BinOp is a binary operation.
type BinOp struct {
	Span
	Left  Expr
	Op    Op
	Right Expr
}

// A UnaryOp is a unary operation.
type UnaryOp struct {
	Span
	Op      Op
	Operand Expr
}

// A Lambda is a lambda expression.
type Lambda struct {
	Span
	Args *Arguments
	Body Expr
}

// An IfExp is a conditional expression "body if test else orelse".
type IfExp struct {
	Span
	Test   Expr
	Body   Expr
	Orelse Expr
}

// A Dict is a dictionary display. A nil key marks a ** unpacking of the
// paired value.
type Dict struct {
	Span
	Keys   []Expr
	Values []Expr
}

// A Set is a set display.
type Set struct {
	Span
	Elts []Expr
}

// A ListComp is a list comprehension.
type ListComp struct {
	Span
	Elt        Expr
	Generators []*Comprehension
}

// A SetComp is a set comprehension.
type SetComp struct {
	Span
	Elt        Expr
	Generators []*Comprehension
}

// A DictComp is a dictionary comprehension.
type DictComp struct {
	Span
	Key        Expr
	Value      Expr
	Generators []*Comprehension
}

// A GeneratorExp is a generator expression.
type GeneratorExp struct {
	Span
	Elt        Expr
	Generators []*Comprehension
}

// An Await is an await expression.
type Await struct {
	Span
	Value Expr
}

// A Yield is a yield expression.
type Yield struct {
	Span
	Value Expr // nil for a bare yield
}

// A YieldFrom is a yield from expression.
type YieldFrom struct {
	Span
	Value Expr
}

// A Compare is a chained comparison.
type Compare struct {
	Span
	Left        Expr
	Ops         []Op
	Comparators []Expr
}

// A Call is a function call.
type Call struct {
	Span
	Func     Expr
	Args     []Expr
	Keywords []*Keyword
}

// A Num is a numeric literal. Value holds the parsed value and is not
// interpreted by this package.
type Num struct {
	Span
	Value any
}

// A Str is a string literal.
type Str struct {
	Span
	Value string
}

// A Bytes is a bytes literal.
type Bytes struct {
	Span
	Value []byte
}

// A NameConstant is one of the constants True, False or None.
type NameConstant struct {
	Span
	Value any
}

// An Ellipsis is the literal "...".
type Ellipsis struct{ Span }

// An Attribute is an attribute access "value.attr".
type Attribute struct {
	Span
	Value Expr
	Attr  string
}

// A Subscript is a subscription "value[slice]". Slice is an *Index,
// *Slice or *ExtSlice.
type Subscript struct {
	Span
	Value Expr
	Slice Node
}

// A Starred is a *value in a call or assignment context.
type Starred struct {
	Span
	Value Expr
}

// A Name is an identifier reference.
type Name struct {
	Span
	ID string
}

// A List is a list display.
type List struct {
	Span
	Elts []Expr
}

// A Tuple is a tuple display.
type Tuple struct {
	Span
	Elts []Expr
}

// Positioned helper nodes.

// An Arg is a single formal parameter.
type Arg struct {
	Span
	Name       string
	Annotation Expr // nil when unannotated
}

// An ExceptHandler is one except clause of a Try statement.
type ExceptHandler struct {
	Span
	Type Expr   // nil for a bare except
	Name string // bound name, or empty
	Body []Stmt
}

// Structural nodes without positions.

// A Module is the root of an exec-mode parse.
type Module struct {
	Body []Stmt
}

// An Expression is the root of an eval-mode parse.
type Expression struct {
	Body Expr
}

// Arguments describes the full formal parameter list of a function.
// KwDefaults is aligned with KwonlyArgs and holds nil for parameters
// without a default.
type Arguments struct {
	Args       []*Arg
	Vararg     *Arg // *args, or nil
	KwonlyArgs []*Arg
	KwDefaults []Expr
	Kwarg      *Arg // **kwargs, or nil
	Defaults   []Expr
}

// A Keyword is a keyword argument in a call or class definition. An
// empty Name marks a ** unpacking.
type Keyword struct {
	Name  string
	Value Expr
}

// A Comprehension is one "for ... in ... if ..." clause of a
// comprehension.
type Comprehension struct {
	Target Expr
	Iter   Expr
	Ifs    []Expr
}

// A WithItem is one context manager clause of a with statement.
type WithItem struct {
	ContextExpr  Expr
	OptionalVars Expr // the "as" target, or nil
}

// An Alias is one name clause of an import statement.
type Alias struct {
	Name   string
	AsName string // empty when not aliased
}

// An Index is a simple subscript "value[index]".
type Index struct {
	Value Expr
}

// A Slice is a subscript range "value[lower:upper:step]".
type Slice struct {
	Lower Expr
	Upper Expr
	Step  Expr
}

// An ExtSlice is a multi-dimensional subscript. Dims holds *Index and
// *Slice nodes.
type ExtSlice struct {
	Dims []Node
}

func (*Module) astNode()        {}
func (*Expression) astNode()    {}
func (*Arguments) astNode()     {}
func (*Keyword) astNode()       {}
func (*Comprehension) astNode() {}
func (*WithItem) astNode()      {}
func (*Alias) astNode()         {}
func (*Index) astNode()         {}
func (*Slice) astNode()         {}
func (*ExtSlice) astNode()      {}

func (*FunctionDef) stmtNode()      {}
func (*AsyncFunctionDef) stmtNode() {}
func (*ClassDef) stmtNode()         {}
func (*Return) stmtNode()           {}
func (*Delete) stmtNode()           {}
func (*Assign) stmtNode()           {}
func (*AugAssign) stmtNode()        {}
func (*For) stmtNode()              {}
func (*AsyncFor) stmtNode()         {}
func (*While) stmtNode()            {}
func (*If) stmtNode()               {}
func (*With) stmtNode()             {}
func (*AsyncWith) stmtNode()        {}
func (*Raise) stmtNode()            {}
func (*Try) stmtNode()              {}
func (*Assert) stmtNode()           {}
func (*Import) stmtNode()           {}
func (*ImportFrom) stmtNode()       {}
func (*Global) stmtNode()           {}
func (*Nonlocal) stmtNode()         {}
func (*ExprStmt) stmtNode()         {}
func (*Pass) stmtNode()             {}
func (*Break) stmtNode()            {}
func (*Continue) stmtNode()         {}

func (*BoolOp) exprNode()       {}
func (*BinOp) exprNode()        {}
func (*UnaryOp) exprNode()      {}
func (*Lambda) exprNode()       {}
func (*IfExp) exprNode()        {}
func (*Dict) exprNode()         {}
func (*Set) exprNode()          {}
func (*ListComp) exprNode()     {}
func (*SetComp) exprNode()      {}
func (*DictComp) exprNode()     {}
func (*GeneratorExp) exprNode() {}
func (*Await) exprNode()        {}
func (*Yield) exprNode()        {}
func (*YieldFrom) exprNode()    {}
func (*Compare) exprNode()      {}
func (*Call) exprNode()         {}
func (*Num) exprNode()          {}
func (*Str) exprNode()          {}
func (*Bytes) exprNode()        {}
func (*NameConstant) exprNode() {}
func (*Ellipsis) exprNode()     {}
func (*Attribute) exprNode()    {}
func (*Subscript) exprNode()    {}
func (*Starred) exprNode()      {}
func (*Name) exprNode()         {}
func (*List) exprNode()         {}
func (*Tuple) exprNode()        {}
