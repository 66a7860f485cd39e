// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package query

import (
	"fmt"

	"github.com/pdiddy/arxiv-cli/pkg/types"
)

// MaxDepth bounds tree depth for both compiling and decoding.
const MaxDepth = 64

// Compile lowers n into a search_query fragment. Terms become
// "<field>:<text>"; every combinator is parenthesized as
// "(<left> <OP> <right>)". Any malformed node fails the whole tree.
func Compile(n Node) (string, error) {
	s, err := compile(n, 1)
	if err != nil {
		return "", &types.Error{Op: "query.compile", Kind: types.KindMalformedQuery, Err: err}
	}
	return s, nil
}

func compile(n Node, depth int) (string, error) {
	if depth > MaxDepth {
		return "", fmt.Errorf("tree deeper than %d", MaxDepth)
	}
	switch v := n.(type) {
	case Term:
		return compileTerm(v)
	case *Term:
		if v == nil {
			return "", fmt.Errorf("nil term")
		}
		return compileTerm(*v)
	case Combinator:
		return compileCombinator(v, depth)
	case *Combinator:
		if v == nil {
			return "", fmt.Errorf("nil combinator")
		}
		return compileCombinator(*v, depth)
	case nil:
		return "", fmt.Errorf("missing node")
	default:
		return "", fmt.Errorf("unrecognized node %T", n)
	}
}

func compileTerm(t Term) (string, error) {
	if !t.Field.Valid() {
		return "", fmt.Errorf("unknown field %q", t.Field)
	}
	if t.Text == "" {
		return "", fmt.Errorf("empty %s term", t.Field)
	}
	return string(t.Field) + ":" + t.Text, nil
}

func compileCombinator(c Combinator, depth int) (string, error) {
	if !c.Op.Valid() {
		return "", fmt.Errorf("unknown operator %q", c.Op)
	}
	left, err := compile(c.Left, depth+1)
	if err != nil {
		return "", err
	}
	right, err := compile(c.Right, depth+1)
	if err != nil {
		return "", err
	}
	return "(" + left + " " + string(c.Op) + " " + right + ")", nil
}
