// Copyright (C) 2026 The Xilione Authors. All Rights Reserved.

package pyast

// Op identifies the operator of a BoolOp, BinOp, UnaryOp, AugAssign or
// Compare node. Operators carry no source position of their own.
type Op byte

// Constants defining the valid Op values.
const (
	OpInvalid Op = iota

	And // boolean "and"
	Or  // boolean "or"

	Add      // +
	Sub      // -
	Mult     // *
	MatMult  // @
	Div      // /
	Mod      // %
	Pow      // **
	LShift   // <<
	RShift   // >>
	BitOr    // |
	BitXor   // ^
	BitAnd   // &
	FloorDiv // //

	Invert // unary ~
	Not    // unary "not"
	UAdd   // unary +
	USub   // unary -

	Eq    // ==
	NotEq // !=
	Lt    // <
	LtE   // <=
	Gt    // >
	GtE   // >=
	Is    // "is"
	IsNot // "is not"
	In    // "in"
	NotIn // "not in"
)

var opStr = [...]string{
	OpInvalid: "invalid op",

	And: "and",
	Or:  "or",

	Add:      "+",
	Sub:      "-",
	Mult:     "*",
	MatMult:  "@",
	Div:      "/",
	Mod:      "%",
	Pow:      "**",
	LShift:   "<<",
	RShift:   ">>",
	BitOr:    "|",
	BitXor:   "^",
	BitAnd:   "&",
	FloorDiv: "//",

	Invert: "~",
	Not:    "not",
	UAdd:   "+",
	USub:   "-",

	Eq:    "==",
	NotEq: "!=",
	Lt:    "<",
	LtE:   "<=",
	Gt:    ">",
	GtE:   ">=",
	Is:    "is",
	IsNot: "is not",
	In:    "in",
	NotIn: "not in",
}

// String returns the source spelling of o.
func (o Op) String() string {
	v := int(o)
	if v >= len(opStr) {
		return opStr[OpInvalid]
	}
	return opStr[v]
}
