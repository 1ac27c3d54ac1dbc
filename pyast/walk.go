// Copyright (C) 2026 The Xilione Authors. All Rights Reserved.

package pyast

import "sort"

// Children returns the children of n in grammar order, meaning the
// order the node's fields are declared in. Unset optional fields and
// nil list entries contribute nothing.
func Children(n Node) []Node {
	var kids []Node
	switch t := n.(type) {
	case *Module:
		kids = addStmts(kids, t.Body)
	case *Expression:
		kids = addExpr(kids, t.Body)
	case *FunctionDef:
		kids = addArguments(kids, t.Args)
		kids = addStmts(kids, t.Body)
		kids = addExprs(kids, t.Decorators)
		kids = addExpr(kids, t.Returns)
	case *AsyncFunctionDef:
		kids = addArguments(kids, t.Args)
		kids = addStmts(kids, t.Body)
		kids = addExprs(kids, t.Decorators)
		kids = addExpr(kids, t.Returns)
	case *ClassDef:
		kids = addExprs(kids, t.Bases)
		for _, kw := range t.Keywords {
			kids = append(kids, kw)
		}
		kids = addStmts(kids, t.Body)
		kids = addExprs(kids, t.Decorators)
	case *Return:
		kids = addExpr(kids, t.Value)
	case *Delete:
		kids = addExprs(kids, t.Targets)
	case *Assign:
		kids = addExprs(kids, t.Targets)
		kids = addExpr(kids, t.Value)
	case *AugAssign:
		kids = addExpr(kids, t.Target)
		kids = addExpr(kids, t.Value)
	case *For:
		kids = addExpr(kids, t.Target)
		kids = addExpr(kids, t.Iter)
		kids = addStmts(kids, t.Body)
		kids = addStmts(kids, t.Orelse)
	case *AsyncFor:
		kids = addExpr(kids, t.Target)
		kids = addExpr(kids, t.Iter)
		kids = addStmts(kids, t.Body)
		kids = addStmts(kids, t.Orelse)
	case *While:
		kids = addExpr(kids, t.Test)
		kids = addStmts(kids, t.Body)
		kids = addStmts(kids, t.Orelse)
	case *If:
		kids = addExpr(kids, t.Test)
		kids = addStmts(kids, t.Body)
		kids = addStmts(kids, t.Orelse)
	case *With:
		for _, item := range t.Items {
			kids = append(kids, item)
		}
		kids = addStmts(kids, t.Body)
	case *AsyncWith:
		for _, item := range t.Items {
			kids = append(kids, item)
		}
		kids = addStmts(kids, t.Body)
	case *Raise:
		kids = addExpr(kids, t.Exc)
		kids = addExpr(kids, t.Cause)
	case *Try:
		kids = addStmts(kids, t.Body)
		for _, h := range t.Handlers {
			kids = append(kids, h)
		}
		kids = addStmts(kids, t.Orelse)
		kids = addStmts(kids, t.Finalbody)
	case *Assert:
		kids = addExpr(kids, t.Test)
		kids = addExpr(kids, t.Msg)
	case *Import:
		for _, a := range t.Names {
			kids = append(kids, a)
		}
	case *ImportFrom:
		for _, a := range t.Names {
			kids = append(kids, a)
		}
	case *ExprStmt:
		kids = addExpr(kids, t.Value)
	case *BoolOp:
		kids = addExprs(kids, t.Values)
	case *BinOp:
		kids = addExpr(kids, t.Left)
		kids = addExpr(kids, t.Right)
	case *UnaryOp:
		kids = addExpr(kids, t.Operand)
	case *Lambda:
		kids = addArguments(kids, t.Args)
		kids = addExpr(kids, t.Body)
	case *IfExp:
		kids = addExpr(kids, t.Test)
		kids = addExpr(kids, t.Body)
		kids = addExpr(kids, t.Orelse)
	case *Dict:
		kids = addExprs(kids, t.Keys)
		kids = addExprs(kids, t.Values)
	case *Set:
		kids = addExprs(kids, t.Elts)
	case *ListComp:
		kids = addExpr(kids, t.Elt)
		kids = addComprehensions(kids, t.Generators)
	case *SetComp:
		kids = addExpr(kids, t.Elt)
		kids = addComprehensions(kids, t.Generators)
	case *DictComp:
		kids = addExpr(kids, t.Key)
		kids = addExpr(kids, t.Value)
		kids = addComprehensions(kids, t.Generators)
	case *GeneratorExp:
		kids = addExpr(kids, t.Elt)
		kids = addComprehensions(kids, t.Generators)
	case *Await:
		kids = addExpr(kids, t.Value)
	case *Yield:
		kids = addExpr(kids, t.Value)
	case *YieldFrom:
		kids = addExpr(kids, t.Value)
	case *Compare:
		kids = addExpr(kids, t.Left)
		kids = addExprs(kids, t.Comparators)
	case *Call:
		kids = addExpr(kids, t.Func)
		kids = addExprs(kids, t.Args)
		for _, kw := range t.Keywords {
			kids = append(kids, kw)
		}
	case *Attribute:
		kids = addExpr(kids, t.Value)
	case *Subscript:
		kids = addExpr(kids, t.Value)
		if t.Slice != nil {
			kids = append(kids, t.Slice)
		}
	case *Starred:
		kids = addExpr(kids, t.Value)
	case *List:
		kids = addExprs(kids, t.Elts)
	case *Tuple:
		kids = addExprs(kids, t.Elts)
	case *Arg:
		kids = addExpr(kids, t.Annotation)
	case *ExceptHandler:
		kids = addExpr(kids, t.Type)
		kids = addStmts(kids, t.Body)
	case *Arguments:
		for _, a := range t.Args {
			kids = append(kids, a)
		}
		if t.Vararg != nil {
			kids = append(kids, t.Vararg)
		}
		for _, a := range t.KwonlyArgs {
			kids = append(kids, a)
		}
		kids = addExprs(kids, t.KwDefaults)
		if t.Kwarg != nil {
			kids = append(kids, t.Kwarg)
		}
		kids = addExprs(kids, t.Defaults)
	case *Keyword:
		kids = addExpr(kids, t.Value)
	case *Comprehension:
		kids = addExpr(kids, t.Target)
		kids = addExpr(kids, t.Iter)
		kids = addExprs(kids, t.Ifs)
	case *WithItem:
		kids = addExpr(kids, t.ContextExpr)
		kids = addExpr(kids, t.OptionalVars)
	case *Index:
		kids = addExpr(kids, t.Value)
	case *Slice:
		kids = addExpr(kids, t.Lower)
		kids = addExpr(kids, t.Upper)
		kids = addExpr(kids, t.Step)
	case *ExtSlice:
		for _, d := range t.Dims {
			if d != nil {
				kids = append(kids, d)
			}
		}
	}
	return kids
}

// OrderedChildren returns the children of n in source order. A Dict
// stores all keys before all values, so its pairs are interleaved, with
// a nil key contributing only its value. Call children are sorted by
// start position, with keyword values standing in for their clauses.
// For every other kind the result is the same as Children.
func OrderedChildren(n Node) []Node {
	switch t := n.(type) {
	case *Dict:
		kids := make([]Node, 0, 2*len(t.Values))
		for i, v := range t.Values {
			if k := t.Keys[i]; k != nil {
				kids = append(kids, k)
			}
			kids = append(kids, v)
		}
		return kids
	case *Call:
		kids := make([]Node, 0, 1+len(t.Args)+len(t.Keywords))
		kids = addExpr(kids, t.Func)
		kids = addExprs(kids, t.Args)
		for _, kw := range t.Keywords {
			kids = addExpr(kids, kw.Value)
		}
		sort.SliceStable(kids, func(i, j int) bool {
			pi := kids[i].(Positioned).Range().Start
			pj := kids[j].(Positioned).Range().Start
			return pi.Before(pj)
		})
		return kids
	}
	return Children(n)
}

// Walk calls f on n and, when f reports true, recursively on each of
// n's children in grammar order.
func Walk(n Node, f func(Node) bool) {
	if !f(n) {
		return
	}
	for _, c := range Children(n) {
		Walk(c, f)
	}
}

// LastChild returns the child of n that comes last in source order, for
// the node kinds that define one. The second result is false when n has
// no children or its kind does not track a last child.
func LastChild(n Node) (Node, bool) {
	switch t := n.(type) {
	case *Call:
		if len(t.Keywords) > 0 {
			return t.Keywords[len(t.Keywords)-1], true
		}
		if len(t.Args) > 0 {
			return t.Args[len(t.Args)-1], true
		}
		return t.Func, true
	case *BoolOp:
		return t.Values[len(t.Values)-1], true
	case *BinOp:
		return t.Right, true
	case *Compare:
		return t.Comparators[len(t.Comparators)-1], true
	case *UnaryOp:
		return t.Operand, true
	case *Tuple:
		return lastExpr(t.Elts)
	case *List:
		return lastExpr(t.Elts)
	case *Set:
		return lastExpr(t.Elts)
	case *Dict:
		return lastExpr(t.Values)
	case *Return:
		return optChild(t.Value)
	case *Assign:
		return optChild(t.Value)
	case *AugAssign:
		return optChild(t.Value)
	case *Yield:
		return optChild(t.Value)
	case *YieldFrom:
		return optChild(t.Value)
	case *Delete:
		return lastExpr(t.Targets)
	case *ExprStmt:
		return t.Value, true
	case *Assert:
		if t.Msg != nil {
			return t.Msg, true
		}
		return t.Test, true
	case *Subscript:
		return lastSliceChild(t.Slice)
	case *For:
		return lastStmt(t.Orelse, t.Body)
	case *AsyncFor:
		return lastStmt(t.Orelse, t.Body)
	case *While:
		return lastStmt(t.Orelse, t.Body)
	case *If:
		return lastStmt(t.Orelse, t.Body)
	case *With:
		return lastStmt(nil, t.Body)
	case *AsyncWith:
		return lastStmt(nil, t.Body)
	}
	return nil, false
}

func lastExpr(es []Expr) (Node, bool) {
	if len(es) == 0 {
		return nil, false
	}
	return es[len(es)-1], true
}

func lastStmt(orelse, body []Stmt) (Node, bool) {
	if len(orelse) > 0 {
		return orelse[len(orelse)-1], true
	}
	if len(body) > 0 {
		return body[len(body)-1], true
	}
	return nil, false
}

func lastSliceChild(s Node) (Node, bool) {
	switch t := s.(type) {
	case *Index:
		return t.Value, true
	case *Slice:
		switch {
		case t.Step != nil:
			return t.Step, true
		case t.Upper != nil:
			return t.Upper, true
		case t.Lower != nil:
			return t.Lower, true
		}
	case *ExtSlice:
		if len(t.Dims) > 0 {
			return lastSliceChild(t.Dims[len(t.Dims)-1])
		}
	}
	return nil, false
}

func optChild(e Expr) (Node, bool) {
	if e == nil {
		return nil, false
	}
	return e, true
}

func addExpr(kids []Node, e Expr) []Node {
	if e != nil {
		kids = append(kids, e)
	}
	return kids
}

func addExprs(kids []Node, es []Expr) []Node {
	for _, e := range es {
		if e != nil {
			kids = append(kids, e)
		}
	}
	return kids
}

func addStmts(kids []Node, ss []Stmt) []Node {
	for _, s := range ss {
		kids = append(kids, s)
	}
	return kids
}

func addArguments(kids []Node, a *Arguments) []Node {
	if a != nil {
		kids = append(kids, a)
	}
	return kids
}

func addComprehensions(kids []Node, cs []*Comprehension) []Node {
	for _, c := range cs {
		kids = append(kids, c)
	}
	return kids
}
