// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package query lowers boolean search trees into the arXiv search_query
// dialect. A tree is built from two node shapes, Term and Combinator, and
// compiled with Compile. Compilation fails closed: an unrecognized field,
// operator or an incomplete node yields ErrMalformedQuery and no string.
package query

import (
	"fmt"
	"strings"
)

// Field is an arXiv search field prefix.
type Field string

const (
	FieldTitle        Field = "ti"
	FieldAuthor       Field = "au"
	FieldAbstract     Field = "abs"
	FieldComment      Field = "co"
	FieldJournalRef   Field = "jr"
	FieldCategory     Field = "cat"
	FieldReportNumber Field = "rn"
	FieldID           Field = "id"
	FieldAll          Field = "all"
)

var fields = map[Field]bool{
	FieldTitle: true, FieldAuthor: true, FieldAbstract: true, FieldComment: true,
	FieldJournalRef: true, FieldCategory: true, FieldReportNumber: true,
	FieldID: true, FieldAll: true,
}

var fieldAliases = map[string]Field{
	"title":         FieldTitle,
	"author":        FieldAuthor,
	"abstract":      FieldAbstract,
	"comment":       FieldComment,
	"journal-ref":   FieldJournalRef,
	"category":      FieldCategory,
	"report-number": FieldReportNumber,
}

// Valid reports whether f is one of the nine recognized field codes.
func (f Field) Valid() bool { return fields[f] }

// ParseField accepts a field code ("ti") or its long name ("title").
func ParseField(s string) (Field, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if f := Field(s); f.Valid() {
		return f, nil
	}
	if f, ok := fieldAliases[s]; ok {
		return f, nil
	}
	return "", fmt.Errorf("unknown search field %q", s)
}

// Op is a boolean combinator keyword.
type Op string

const (
	OpAnd    Op = "AND"
	OpOr     Op = "OR"
	OpAndNot Op = "ANDNOT"
)

// Valid reports whether o is AND, OR or ANDNOT.
func (o Op) Valid() bool {
	return o == OpAnd || o == OpOr || o == OpAndNot
}

// ParseOp accepts "and", "or", "andnot" and "and-not" in any case.
func ParseOp(s string) (Op, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "AND":
		return OpAnd, nil
	case "OR":
		return OpOr, nil
	case "ANDNOT", "AND-NOT", "AND_NOT":
		return OpAndNot, nil
	}
	return "", fmt.Errorf("unknown boolean operator %q", s)
}

// Node is either a Term or a Combinator.
type Node interface {
	node()
}

// Term searches Text in one field.
type Term struct {
	Field Field
	Text  string
}

// Combinator joins two subtrees with a boolean operator.
type Combinator struct {
	Op    Op
	Left  Node
	Right Node
}

func (Term) node()       {}
func (Combinator) node() {}

// All is the bare-string form: search text across every indexed field.
func All(text string) Term { return Term{Field: FieldAll, Text: text} }

func And(left, right Node) Combinator    { return Combinator{Op: OpAnd, Left: left, Right: right} }
func Or(left, right Node) Combinator     { return Combinator{Op: OpOr, Left: left, Right: right} }
func AndNot(left, right Node) Combinator { return Combinator{Op: OpAndNot, Left: left, Right: right} }

// Fold joins terms left to right with op. It returns nil for no terms.
func Fold(op Op, terms ...Node) Node {
	var out Node
	for _, t := range terms {
		if out == nil {
			out = t
			continue
		}
		out = Combinator{Op: op, Left: out, Right: t}
	}
	return out
}

// Phrase wraps text in double quotes when it holds whitespace, so the
// provider matches it as one phrase. Already-quoted text is returned as is.
func Phrase(text string) string {
	if strings.ContainsAny(text, " \t") && !strings.HasPrefix(text, `"`) {
		return `"` + text + `"`
	}
	return text
}
