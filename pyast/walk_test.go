// Copyright (C) 2026 The Xilione Authors. All Rights Reserved.

package pyast_test

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/xilione/thonny/pyast"
)

func name(l, c int, id string) *pyast.Name {
	return &pyast.Name{Span: pyast.At(l, c), ID: id}
}

func num(l, c int, v any) *pyast.Num {
	return &pyast.Num{Span: pyast.At(l, c), Value: v}
}

// sameNodes checks got against want by identity, not structure; the
// traversal functions must return the tree's own nodes.
func sameNodes(t *testing.T, label string, got, want []pyast.Node) {
	t.Helper()
	if len(got) != len(want) {
		t.Errorf("%s: got %d nodes, want %d", label, len(got), len(want))
		return
	}
	for i := range got {
		if got[i] != want[i] {
			t.Errorf("%s: node %d is %T, want %T", label, i, got[i], want[i])
		}
	}
}

func TestChildrenOrder(t *testing.T) {
	x, y, v := name(1, 0, "x"), name(1, 3, "y"), num(1, 8, 1)
	assign := &pyast.Assign{Span: pyast.At(1, 0), Targets: []pyast.Expr{x, y}, Value: v}
	sameNodes(t, "Assign", pyast.Children(assign), []pyast.Node{x, y, v})

	test, a, b := name(1, 3, "t"), name(2, 4, "a"), name(4, 4, "b")
	cond := &pyast.If{Span: pyast.At(1, 0),
		Test:   test,
		Body:   []pyast.Stmt{&pyast.ExprStmt{Span: pyast.At(2, 4), Value: a}},
		Orelse: []pyast.Stmt{&pyast.ExprStmt{Span: pyast.At(4, 4), Value: b}},
	}
	kids := pyast.Children(cond)
	if len(kids) != 3 || kids[0] != test {
		t.Errorf("If children: got %d nodes starting with %T, want 3 starting with the test", len(kids), kids[0])
	}

	ret := &pyast.Return{Span: pyast.At(1, 0)}
	if kids := pyast.Children(ret); len(kids) != 0 {
		t.Errorf("bare Return children: got %d nodes, want 0", len(kids))
	}

	if kids := pyast.Children(name(1, 0, "leaf")); len(kids) != 0 {
		t.Errorf("Name children: got %d nodes, want 0", len(kids))
	}
}

func TestChildrenArguments(t *testing.T) {
	a, b := &pyast.Arg{Span: pyast.At(1, 6), Name: "a"}, &pyast.Arg{Span: pyast.At(1, 9), Name: "b"}
	vararg := &pyast.Arg{Span: pyast.At(1, 15), Name: "rest"}
	kw := &pyast.Arg{Span: pyast.At(1, 21), Name: "k"}
	kwDefault := num(1, 23, 2)
	deflt := num(1, 11, 1)
	args := &pyast.Arguments{
		Args:       []*pyast.Arg{a, b},
		Vararg:     vararg,
		KwonlyArgs: []*pyast.Arg{kw},
		KwDefaults: []pyast.Expr{kwDefault},
		Defaults:   []pyast.Expr{deflt},
	}
	sameNodes(t, "Arguments", pyast.Children(args),
		[]pyast.Node{a, b, vararg, kw, kwDefault, deflt})

	// A kwonly parameter without a default leaves a nil in KwDefaults,
	// which must not surface as a child.
	args.KwDefaults = []pyast.Expr{nil}
	sameNodes(t, "Arguments nil default", pyast.Children(args),
		[]pyast.Node{a, b, vararg, kw, deflt})
}

func TestDictChildren(t *testing.T) {
	k1, v1 := name(1, 1, "a"), num(1, 4, 1)
	k2, v2 := name(1, 7, "b"), num(1, 10, 2)
	d := &pyast.Dict{Span: pyast.At(1, 0),
		Keys:   []pyast.Expr{k1, k2},
		Values: []pyast.Expr{v1, v2},
	}
	sameNodes(t, "grammar order", pyast.Children(d), []pyast.Node{k1, k2, v1, v2})
	sameNodes(t, "source order", pyast.OrderedChildren(d), []pyast.Node{k1, v1, k2, v2})

	// {**x, 'b': 2} has a nil key for the unpacking.
	unpacked := name(1, 3, "x")
	d2 := &pyast.Dict{Span: pyast.At(1, 0),
		Keys:   []pyast.Expr{nil, k2},
		Values: []pyast.Expr{unpacked, v2},
	}
	sameNodes(t, "nil key", pyast.OrderedChildren(d2), []pyast.Node{unpacked, k2, v2})
}

func TestCallChildren(t *testing.T) {
	fn := name(1, 0, "f")
	a1 := num(1, 2, 1)
	star := &pyast.Starred{Span: pyast.At(1, 5), Value: name(1, 6, "rest")}
	kwv := num(1, 13, 2)
	call := &pyast.Call{Span: pyast.At(1, 0),
		Func:     fn,
		Args:     []pyast.Expr{a1, star},
		Keywords: []*pyast.Keyword{{Name: "k", Value: kwv}},
	}
	kids := pyast.Children(call)
	if len(kids) != 4 {
		t.Fatalf("Call grammar children: got %d nodes, want 4", len(kids))
	}
	if _, ok := kids[3].(*pyast.Keyword); !ok {
		t.Errorf("Call grammar children: last is %T, want *pyast.Keyword", kids[3])
	}
	sameNodes(t, "source order", pyast.OrderedChildren(call),
		[]pyast.Node{fn, a1, star, kwv})
}

func TestCallChildrenSorted(t *testing.T) {
	// f(a, k=1, b) is not legal source, but positions alone drive the
	// ordering, so scramble them to prove the sort is by position.
	fn := name(1, 0, "f")
	late := name(1, 10, "b")
	early := num(1, 4, 1)
	call := &pyast.Call{Span: pyast.At(1, 0),
		Func:     fn,
		Args:     []pyast.Expr{late},
		Keywords: []*pyast.Keyword{{Name: "k", Value: early}},
	}
	sameNodes(t, "sorted", pyast.OrderedChildren(call), []pyast.Node{fn, early, late})
}

func TestWalk(t *testing.T) {
	//	x = f(1)
	tree := &pyast.Module{Body: []pyast.Stmt{
		&pyast.Assign{Span: pyast.At(1, 0),
			Targets: []pyast.Expr{name(1, 0, "x")},
			Value: &pyast.Call{Span: pyast.At(1, 4),
				Func: name(1, 4, "f"),
				Args: []pyast.Expr{num(1, 6, 1)},
			},
		},
	}}
	var kinds []string
	pyast.Walk(tree, func(n pyast.Node) bool {
		kinds = append(kinds, fmt.Sprintf("%T", n))
		return true
	})
	want := []string{
		"*pyast.Module", "*pyast.Assign", "*pyast.Name",
		"*pyast.Call", "*pyast.Name", "*pyast.Num",
	}
	if diff := cmp.Diff(want, kinds); diff != "" {
		t.Errorf("Walk order: (-want, +got)\n%s", diff)
	}

	// Pruning at the Call must skip its subtree.
	kinds = kinds[:0]
	pyast.Walk(tree, func(n pyast.Node) bool {
		kinds = append(kinds, fmt.Sprintf("%T", n))
		_, isCall := n.(*pyast.Call)
		return !isCall
	})
	want = []string{"*pyast.Module", "*pyast.Assign", "*pyast.Name", "*pyast.Call"}
	if diff := cmp.Diff(want, kinds); diff != "" {
		t.Errorf("Pruned walk order: (-want, +got)\n%s", diff)
	}
}

func TestLastChild(t *testing.T) {
	fn, arg := name(1, 0, "f"), num(1, 2, 1)
	kwv := num(1, 7, 2)
	kw := &pyast.Keyword{Name: "k", Value: kwv}
	left, right := num(1, 0, 1), num(1, 4, 2)
	check, msg := name(1, 7, "ok"), name(1, 11, "msg")
	idx := num(1, 2, 0)
	body := pyast.Stmt(&pyast.Pass{Span: pyast.At(2, 4)})
	orelse := pyast.Stmt(&pyast.Pass{Span: pyast.At(4, 4)})

	tests := []struct {
		name string
		node pyast.Node
		want pyast.Node
		ok   bool
	}{
		{"call with keywords", &pyast.Call{Func: fn, Args: []pyast.Expr{arg},
			Keywords: []*pyast.Keyword{kw}}, kw, true},
		{"call with args", &pyast.Call{Func: fn, Args: []pyast.Expr{arg}}, arg, true},
		{"empty call", &pyast.Call{Func: fn}, fn, true},
		{"binop", &pyast.BinOp{Left: left, Op: pyast.Add, Right: right}, right, true},
		{"compare", &pyast.Compare{Left: left, Ops: []pyast.Op{pyast.Lt},
			Comparators: []pyast.Expr{right}}, right, true},
		{"assert with message", &pyast.Assert{Test: check, Msg: msg}, msg, true},
		{"assert bare", &pyast.Assert{Test: check}, check, true},
		{"subscript index", &pyast.Subscript{Value: fn, Slice: &pyast.Index{Value: idx}}, idx, true},
		{"subscript slice upper", &pyast.Subscript{Value: fn,
			Slice: &pyast.Slice{Upper: idx}}, idx, true},
		{"subscript empty slice", &pyast.Subscript{Value: fn, Slice: &pyast.Slice{}}, nil, false},
		{"subscript extslice", &pyast.Subscript{Value: fn,
			Slice: &pyast.ExtSlice{Dims: []pyast.Node{&pyast.Slice{}, &pyast.Index{Value: idx}}}}, idx, true},
		{"if with else", &pyast.If{Test: check, Body: []pyast.Stmt{body},
			Orelse: []pyast.Stmt{orelse}}, orelse, true},
		{"if without else", &pyast.If{Test: check, Body: []pyast.Stmt{body}}, body, true},
		{"empty tuple", &pyast.Tuple{}, nil, false},
		{"bare return", &pyast.Return{}, nil, false},
		{"return value", &pyast.Return{Value: right}, right, true},
		{"pass", &pyast.Pass{}, nil, false},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, ok := pyast.LastChild(test.node)
			if ok != test.ok {
				t.Fatalf("LastChild ok: got %v, want %v", ok, test.ok)
			}
			if got != test.want {
				t.Errorf("LastChild: got %T, want %T", got, test.want)
			}
		})
	}
}

func TestLiteralFor(t *testing.T) {
	tests := []struct {
		value any
		want  pyast.Expr
	}{
		{nil, &pyast.Name{ID: "None"}},
		{true, &pyast.Name{ID: "True"}},
		{false, &pyast.Name{ID: "False"}},
		{"hello", &pyast.Str{Value: "hello"}},
	}
	for _, test := range tests {
		got, err := pyast.LiteralFor(test.value)
		if err != nil {
			t.Errorf("LiteralFor(%v): unexpected error: %v", test.value, err)
			continue
		}
		if diff := cmp.Diff(test.want, got, cmp.AllowUnexported(pyast.Span{})); diff != "" {
			t.Errorf("LiteralFor(%v): (-want, +got)\n%s", test.value, diff)
		}
	}
	if lit, err := pyast.LiteralFor(3.5); err == nil {
		t.Errorf("LiteralFor(3.5): got %v, want error", lit)
	}
}
