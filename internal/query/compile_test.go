// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package query

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/arxiv-cli/pkg/types"
)

func TestCompile(t *testing.T) {
	tests := []struct {
		name string
		node Node
		want string
	}{
		{"title term", Term{Field: FieldTitle, Text: "quantum"}, "ti:quantum"},
		{"bare string sugar", All("graphene"), "all:graphene"},
		{"and", And(Term{FieldAbstract, "x"}, Term{FieldAbstract, "y"}), "(abs:x AND abs:y)"},
		{"or", Or(Term{FieldAuthor, "smith"}, Term{FieldAuthor, "jones"}), "(au:smith OR au:jones)"},
		{"andnot", AndNot(Term{FieldCategory, "cs.LG"}, Term{FieldTitle, "survey"}), "(cat:cs.LG ANDNOT ti:survey)"},
		{
			"nested keeps every paren",
			And(Or(Term{FieldTitle, "a"}, Term{FieldTitle, "b"}), AndNot(All("c"), Term{FieldID, "d"})),
			"((ti:a OR ti:b) AND (all:c ANDNOT id:d))",
		},
		{"pointer nodes", &Combinator{Op: OpOr, Left: &Term{FieldJournalRef, "j"}, Right: Term{FieldReportNumber, "r"}}, "(jr:j OR rn:r)"},
		{"text kept verbatim", Term{FieldComment, "10 pages"}, "co:10 pages"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Compile(tt.node)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCompileMalformed(t *testing.T) {
	deep := Node(Term{FieldTitle, "leaf"})
	for i := 0; i < MaxDepth+1; i++ {
		deep = And(deep, Term{FieldTitle, "x"})
	}

	tests := []struct {
		name string
		node Node
	}{
		{"unknown field", Term{Field: "xx", Text: "q"}},
		{"long name is not a wire code", Term{Field: "title", Text: "q"}},
		{"empty text", Term{Field: FieldTitle}},
		{"unknown op", Combinator{Op: "XOR", Left: All("a"), Right: All("b")}},
		{"missing left", Combinator{Op: OpAnd, Right: All("b")}},
		{"missing right", Combinator{Op: OpAnd, Left: All("a")}},
		{"bad leaf deep inside", And(All("a"), Or(All("b"), Term{Field: "zz", Text: "c"}))},
		{"nil", nil},
		{"nil pointer", (*Term)(nil)},
		{"too deep", deep},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Compile(tt.node)
			require.Error(t, err)
			assert.Empty(t, got, "no partial string on failure")
			assert.True(t, errors.Is(err, types.ErrMalformedQuery))
			assert.True(t, types.IsKind(err, types.KindMalformedQuery))
		})
	}
}

func TestCompileDeterministic(t *testing.T) {
	tree := And(Or(Term{FieldTitle, "a"}, Term{FieldAuthor, "b"}), AndNot(All("c"), Term{FieldCategory, "d"}))
	first, err := Compile(tree)
	require.NoError(t, err)
	second, err := Compile(tree)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestParseField(t *testing.T) {
	tests := []struct {
		in      string
		want    Field
		wantErr bool
	}{
		{"ti", FieldTitle, false},
		{"title", FieldTitle, false},
		{"Abstract", FieldAbstract, false},
		{"journal-ref", FieldJournalRef, false},
		{"report-number", FieldReportNumber, false},
		{"all", FieldAll, false},
		{"nope", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseField(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFold(t *testing.T) {
	assert.Nil(t, Fold(OpAnd))

	got, err := Compile(Fold(OpAnd, Term{FieldTitle, "a"}, Term{FieldTitle, "b"}, Term{FieldTitle, "c"}))
	require.NoError(t, err)
	assert.Equal(t, "((ti:a AND ti:b) AND ti:c)", got)
}

func TestPhrase(t *testing.T) {
	assert.Equal(t, "quantum", Phrase("quantum"))
	assert.Equal(t, `"quantum dot"`, Phrase("quantum dot"))
	assert.Equal(t, `"already quoted"`, Phrase(`"already quoted"`))

	got, err := Compile(Term{Field: FieldTitle, Text: Phrase("Attention Is All You Need")})
	assert.NoError(t, err)
	assert.Equal(t, `ti:"Attention Is All You Need"`, got)
}
