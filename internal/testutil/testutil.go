// Package testutil defines support code for unit tests.
//
// Its main offering is a loader for marking scenarios kept as JWCC
// files under a testdata directory. A scenario records program source,
// the token stream and unmarked tree a tokenizer and parser would
// report for it, and the ranges every positioned node must carry once
// the tree has been marked.
package testutil

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tailscale/hujson"
	"github.com/xilione/thonny"
	"github.com/xilione/thonny/pyast"
	"github.com/xilione/thonny/pytoken"
)

// A Fixture is one marking scenario.
type Fixture struct {
	Name        string // file base name without extension
	Source      string // program text
	Encoding    string // declared source encoding, default utf-8
	ByteColumns bool   // token columns are byte offsets, not characters
	Tokens      []pytoken.Token
	Tree        pyast.Node         // unmarked tree, starts only
	Want        []thonny.TextRange // expected ranges of positioned nodes, preorder
}

// LoadFixtures loads every *.jwcc file under dir, in name order. It
// fails t if dir holds no fixtures or any fixture is malformed.
func LoadFixtures(t *testing.T, dir string) []*Fixture {
	t.Helper()
	paths, err := filepath.Glob(filepath.Join(dir, "*.jwcc"))
	if err != nil {
		t.Fatalf("List fixtures: %v", err)
	}
	if len(paths) == 0 {
		t.Fatalf("No fixtures under %s", dir)
	}
	out := make([]*Fixture, len(paths))
	for i, path := range paths {
		out[i] = LoadFixture(t, path)
	}
	return out
}

// LoadFixture loads a single fixture file.
func LoadFixture(t *testing.T, path string) *Fixture {
	t.Helper()
	f, err := loadFixture(path)
	if err != nil {
		t.Fatalf("Fixture %s: %v", filepath.Base(path), err)
	}
	return f
}

func loadFixture(path string) (*Fixture, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	std, err := hujson.Standardize(raw)
	if err != nil {
		return nil, fmt.Errorf("standardize: %w", err)
	}
	var in fixtureFile
	if err := json.Unmarshal(std, &in); err != nil {
		return nil, fmt.Errorf("unmarshal: %w", err)
	}

	f := &Fixture{
		Name:        strings.TrimSuffix(filepath.Base(path), ".jwcc"),
		Source:      in.Source,
		Encoding:    in.Encoding,
		ByteColumns: in.Columns == "bytes",
	}
	if f.Encoding == "" {
		f.Encoding = "utf-8"
	}
	switch in.Columns {
	case "", "chars", "bytes":
	default:
		return nil, fmt.Errorf("unknown column unit %q", in.Columns)
	}
	f.Tokens = make([]pytoken.Token, len(in.Tokens))
	for i, row := range in.Tokens {
		tok, err := decodeToken(row)
		if err != nil {
			return nil, fmt.Errorf("token %d: %w", i, err)
		}
		f.Tokens[i] = tok
	}
	if in.Tree == nil {
		return nil, fmt.Errorf("fixture has no tree")
	}
	if f.Tree, err = in.Tree.build(); err != nil {
		return nil, err
	}
	f.Want = make([]thonny.TextRange, len(in.Ranges))
	for i, r := range in.Ranges {
		f.Want[i] = thonny.TextRange{
			Start: thonny.Pos{Line: r[0], Col: r[1]},
			End:   thonny.Pos{Line: r[2], Col: r[3]},
		}
	}
	return f, nil
}

type fixtureFile struct {
	Source   string    `json:"source"`
	Encoding string    `json:"encoding"`
	Columns  string    `json:"columns"`
	Tokens   [][]any   `json:"tokens"` // [type, text, line, col, endLine, endCol]
	Tree     *jsonNode `json:"tree"`
	Ranges   [][4]int  `json:"ranges"`
}

var tokenTypes = map[string]pytoken.Type{
	"name":      pytoken.Name,
	"number":    pytoken.Number,
	"string":    pytoken.Str,
	"op":        pytoken.Op,
	"comment":   pytoken.Comment,
	"newline":   pytoken.Newline,
	"nl":        pytoken.NL,
	"indent":    pytoken.Indent,
	"dedent":    pytoken.Dedent,
	"encoding":  pytoken.Encoding,
	"endmarker": pytoken.EndMarker,
}

func decodeToken(row []any) (pytoken.Token, error) {
	if len(row) != 6 {
		return pytoken.Token{}, fmt.Errorf("got %d fields, want 6", len(row))
	}
	kind, ok := row[0].(string)
	if !ok {
		return pytoken.Token{}, fmt.Errorf("type %v is not a string", row[0])
	}
	typ, ok := tokenTypes[kind]
	if !ok {
		return pytoken.Token{}, fmt.Errorf("unknown token type %q", kind)
	}
	text, ok := row[1].(string)
	if !ok {
		return pytoken.Token{}, fmt.Errorf("text %v is not a string", row[1])
	}
	var pos [4]int
	for i, v := range row[2:] {
		n, ok := v.(float64)
		if !ok || n != float64(int(n)) {
			return pytoken.Token{}, fmt.Errorf("position %v is not an integer", v)
		}
		pos[i] = int(n)
	}
	return pytoken.Token{
		Type:  typ,
		Text:  text,
		Start: thonny.Pos{Line: pos[0], Col: pos[1]},
		End:   thonny.Pos{Line: pos[2], Col: pos[3]},
	}, nil
}

// A jsonNode is the serialized form of a syntax tree node. Only the
// fields its kind uses are set; the kinds covered are the ones the
// fixtures need, not the whole grammar.
type jsonNode struct {
	Kind    string      `json:"kind"`
	At      []int       `json:"at"` // [line, col] for positioned kinds
	ID      string      `json:"id"`
	Num     json.Number `json:"n"`
	Str     string      `json:"s"`
	Op      string      `json:"op"`
	Name    string      `json:"name"`
	Attr    string      `json:"attr"`
	Value   *jsonNode   `json:"value"`
	Left    *jsonNode   `json:"left"`
	Right   *jsonNode   `json:"right"`
	Test    *jsonNode   `json:"test"`
	Func    *jsonNode   `json:"func"`
	Body    []*jsonNode `json:"body"`
	Orelse  []*jsonNode `json:"orelse"`
	Targets []*jsonNode `json:"targets"`
	Args    []*jsonNode `json:"args"`
	Params  []*jsonNode `json:"params"`
	Elts    []*jsonNode `json:"elts"`
	Keys    []*jsonNode `json:"keys"`
	Values  []*jsonNode `json:"values"`
}

var opNames = map[string]pyast.Op{
	"+":  pyast.Add,
	"-":  pyast.Sub,
	"*":  pyast.Mult,
	"/":  pyast.Div,
	"//": pyast.FloorDiv,
	"%":  pyast.Mod,
	"**": pyast.Pow,
}

func (n *jsonNode) build() (pyast.Node, error) {
	switch n.Kind {
	case "module":
		body, err := buildStmts(n.Body)
		if err != nil {
			return nil, err
		}
		return &pyast.Module{Body: body}, nil

	case "functiondef":
		span, err := n.span()
		if err != nil {
			return nil, err
		}
		params := make([]*pyast.Arg, len(n.Params))
		for i, p := range n.Params {
			ps, err := p.span()
			if err != nil {
				return nil, err
			}
			params[i] = &pyast.Arg{Span: ps, Name: p.Name}
		}
		body, err := buildStmts(n.Body)
		if err != nil {
			return nil, err
		}
		return &pyast.FunctionDef{
			Span: span,
			Name: n.Name,
			Args: &pyast.Arguments{Args: params},
			Body: body,
		}, nil

	case "return":
		span, err := n.span()
		if err != nil {
			return nil, err
		}
		value, err := buildExpr(n.Value)
		if err != nil {
			return nil, err
		}
		return &pyast.Return{Span: span, Value: value}, nil

	case "assign":
		span, err := n.span()
		if err != nil {
			return nil, err
		}
		targets, err := buildExprs(n.Targets)
		if err != nil {
			return nil, err
		}
		value, err := buildExpr(n.Value)
		if err != nil {
			return nil, err
		}
		return &pyast.Assign{Span: span, Targets: targets, Value: value}, nil

	case "exprstmt":
		span, err := n.span()
		if err != nil {
			return nil, err
		}
		value, err := buildExpr(n.Value)
		if err != nil {
			return nil, err
		}
		return &pyast.ExprStmt{Span: span, Value: value}, nil

	case "if":
		span, err := n.span()
		if err != nil {
			return nil, err
		}
		test, err := buildExpr(n.Test)
		if err != nil {
			return nil, err
		}
		body, err := buildStmts(n.Body)
		if err != nil {
			return nil, err
		}
		orelse, err := buildStmts(n.Orelse)
		if err != nil {
			return nil, err
		}
		return &pyast.If{Span: span, Test: test, Body: body, Orelse: orelse}, nil

	case "pass":
		span, err := n.span()
		if err != nil {
			return nil, err
		}
		return &pyast.Pass{Span: span}, nil

	case "name":
		span, err := n.span()
		if err != nil {
			return nil, err
		}
		return &pyast.Name{Span: span, ID: n.ID}, nil

	case "num":
		span, err := n.span()
		if err != nil {
			return nil, err
		}
		return &pyast.Num{Span: span, Value: numValue(n.Num)}, nil

	case "str":
		span, err := n.span()
		if err != nil {
			return nil, err
		}
		return &pyast.Str{Span: span, Value: n.Str}, nil

	case "binop":
		span, err := n.span()
		if err != nil {
			return nil, err
		}
		op, ok := opNames[n.Op]
		if !ok {
			return nil, fmt.Errorf("unknown operator %q", n.Op)
		}
		left, err := buildExpr(n.Left)
		if err != nil {
			return nil, err
		}
		right, err := buildExpr(n.Right)
		if err != nil {
			return nil, err
		}
		return &pyast.BinOp{Span: span, Left: left, Op: op, Right: right}, nil

	case "call":
		span, err := n.span()
		if err != nil {
			return nil, err
		}
		fn, err := buildExpr(n.Func)
		if err != nil {
			return nil, err
		}
		args, err := buildExprs(n.Args)
		if err != nil {
			return nil, err
		}
		return &pyast.Call{Span: span, Func: fn, Args: args}, nil

	case "attribute":
		span, err := n.span()
		if err != nil {
			return nil, err
		}
		value, err := buildExpr(n.Value)
		if err != nil {
			return nil, err
		}
		return &pyast.Attribute{Span: span, Value: value, Attr: n.Attr}, nil

	case "tuple":
		span, err := n.span()
		if err != nil {
			return nil, err
		}
		elts, err := buildExprs(n.Elts)
		if err != nil {
			return nil, err
		}
		return &pyast.Tuple{Span: span, Elts: elts}, nil

	case "dict":
		span, err := n.span()
		if err != nil {
			return nil, err
		}
		keys, err := buildExprs(n.Keys)
		if err != nil {
			return nil, err
		}
		values, err := buildExprs(n.Values)
		if err != nil {
			return nil, err
		}
		return &pyast.Dict{Span: span, Keys: keys, Values: values}, nil

	default:
		return nil, fmt.Errorf("unknown node kind %q", n.Kind)
	}
}

func (n *jsonNode) span() (pyast.Span, error) {
	if len(n.At) != 2 {
		return pyast.Span{}, fmt.Errorf("%s node needs at: [line, col]", n.Kind)
	}
	return pyast.At(n.At[0], n.At[1]), nil
}

// buildExpr builds an expression node. A nil input stays nil, which is
// how dict fixtures spell a ** unpacking key.
func buildExpr(n *jsonNode) (pyast.Expr, error) {
	if n == nil {
		return nil, nil
	}
	node, err := n.build()
	if err != nil {
		return nil, err
	}
	e, ok := node.(pyast.Expr)
	if !ok {
		return nil, fmt.Errorf("%s node is not an expression", n.Kind)
	}
	return e, nil
}

func buildExprs(ns []*jsonNode) ([]pyast.Expr, error) {
	if len(ns) == 0 {
		return nil, nil
	}
	out := make([]pyast.Expr, len(ns))
	for i, n := range ns {
		e, err := buildExpr(n)
		if err != nil {
			return nil, err
		}
		out[i] = e
	}
	return out, nil
}

func buildStmts(ns []*jsonNode) ([]pyast.Stmt, error) {
	if len(ns) == 0 {
		return nil, nil
	}
	out := make([]pyast.Stmt, len(ns))
	for i, n := range ns {
		node, err := n.build()
		if err != nil {
			return nil, err
		}
		s, ok := node.(pyast.Stmt)
		if !ok {
			return nil, fmt.Errorf("%s node is not a statement", n.Kind)
		}
		out[i] = s
	}
	return out, nil
}

func numValue(n json.Number) any {
	if v, err := n.Int64(); err == nil {
		return v
	}
	f, _ := n.Float64()
	return f
}

// CheckRanges verifies the structural invariants of a cleanly marked
// tree: every positioned node's range runs forward, lies inside the
// range of its nearest positioned ancestor, and starts no earlier than
// the end of the positioned sibling before it. It returns the number
// of positioned nodes checked.
func CheckRanges(t *testing.T, root pyast.Node) int {
	t.Helper()
	checked := 0
	var walk func(n pyast.Node, outer *thonny.TextRange)
	walk = func(n pyast.Node, outer *thonny.TextRange) {
		if p, ok := n.(pyast.Positioned); ok {
			r := *p.Range()
			checked++
			if !r.Start.Before(r.End) {
				t.Errorf("Node %T has backward range %v", n, r)
			}
			if outer != nil && !outer.Contains(r) {
				t.Errorf("Node %T range %v leaves enclosing range %v", n, r, *outer)
			}
			outer = &r
		}
		var prev *thonny.TextRange
		for _, c := range pyast.OrderedChildren(n) {
			if p, ok := c.(pyast.Positioned); ok {
				r := p.Range()
				if prev != nil && r.Start.Before(prev.End) {
					t.Errorf("Node %T range %v overlaps its left sibling ending at %v",
						c, *r, prev.End)
				}
				prev = r
			}
		}
		for _, c := range pyast.Children(n) {
			walk(c, outer)
		}
	}
	walk(root, nil)
	return checked
}
