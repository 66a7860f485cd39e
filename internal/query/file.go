// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package query

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/arxiv-cli/pkg/types"
)

// ReadTreeFile loads a query tree from a YAML or JSON file written in the
// operation-tree form:
//
//	op: and
//	term1: {op: ti, term: quantum}
//	term2: {op: abs, term: entanglement}
//
// A bare string is an all-fields term. A mapping without op uses its term
// (or term1) as an all-fields term.
func ReadTreeFile(path string) (Node, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading query tree: %w", err)
	}
	var v any
	if err := yaml.Unmarshal(data, &v); err != nil {
		return nil, &types.Error{Op: "query.read", Kind: types.KindMalformedQuery, Err: err}
	}
	return FromValue(v)
}

// FromValue converts a decoded operation tree (strings and
// map[string]any) into a Node.
func FromValue(v any) (Node, error) {
	n, err := fromValue(v, 1)
	if err != nil {
		return nil, &types.Error{Op: "query.decode", Kind: types.KindMalformedQuery, Err: err}
	}
	return n, nil
}

func fromValue(v any, depth int) (Node, error) {
	if depth > MaxDepth {
		return nil, fmt.Errorf("tree deeper than %d", MaxDepth)
	}
	switch t := v.(type) {
	case string:
		return All(t), nil
	case map[string]any:
		return fromMap(t, depth)
	case nil:
		return nil, fmt.Errorf("missing node")
	default:
		return nil, fmt.Errorf("unrecognized node of type %T", v)
	}
}

func fromMap(m map[string]any, depth int) (Node, error) {
	opVal, hasOp := m["op"]
	if !hasOp {
		if term, ok := m["term"]; ok {
			return scalarTerm(FieldAll, term)
		}
		if term, ok := m["term1"]; ok {
			return scalarTerm(FieldAll, term)
		}
		return nil, fmt.Errorf("node has neither op nor term")
	}

	opStr, ok := opVal.(string)
	if !ok {
		return nil, fmt.Errorf("op must be a string, got %T", opVal)
	}

	if f := Field(opStr); f.Valid() {
		term, ok := m["term"]
		if !ok {
			return nil, fmt.Errorf("%s node without term", opStr)
		}
		return scalarTerm(f, term)
	}

	op, err := ParseOp(opStr)
	if err != nil {
		return nil, err
	}
	left, okLeft := m["term1"]
	right, okRight := m["term2"]
	if !okLeft || !okRight {
		return nil, fmt.Errorf("%s node needs term1 and term2", opStr)
	}
	l, err := fromValue(left, depth+1)
	if err != nil {
		return nil, err
	}
	r, err := fromValue(right, depth+1)
	if err != nil {
		return nil, err
	}
	return Combinator{Op: op, Left: l, Right: r}, nil
}

func scalarTerm(f Field, v any) (Node, error) {
	switch t := v.(type) {
	case string:
		return Term{Field: f, Text: t}, nil
	case int, int64, float64, bool:
		return Term{Field: f, Text: fmt.Sprint(t)}, nil
	default:
		return nil, fmt.Errorf("term must be a scalar, got %T", v)
	}
}
