// Copyright (C) 2026 The Xilione Authors. All Rights Reserved.

package pyast

import "fmt"

// LiteralFor returns the expression node denoting the given value in
// source text: Name nodes for nil and booleans, a Str node for strings.
// Values of any other type are an error.
func LiteralFor(v any) (Expr, error) {
	switch t := v.(type) {
	case nil:
		return &Name{ID: "None"}, nil
	case bool:
		if t {
			return &Name{ID: "True"}, nil
		}
		return &Name{ID: "False"}, nil
	case string:
		return &Str{Value: t}, nil
	}
	return nil, fmt.Errorf("no literal form for %T", v)
}
