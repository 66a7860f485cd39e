// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package acquire

import (
	"regexp"
	"strings"
)

// IdentifierType classifies a command-line argument.
type IdentifierType int

const (
	TypeTitle IdentifierType = iota
	TypeArxiv
)

func (t IdentifierType) String() string {
	switch t {
	case TypeArxiv:
		return "id"
	default:
		return "title"
	}
}

// arxivPattern matches new-style arXiv identifiers with an optional version:
// "1801.00001", "1801.00001v2". The first two characters are loosely
// [0-9+]; the next two are a month hint 00-19.
var arxivPattern = regexp.MustCompile(`^([0-9+]{2}[01][0-9]\.[0-9]+(v[0-9]+)?)$`)

// IsArxivID reports whether s is exactly an arXiv identifier.
func IsArxivID(s string) bool {
	return arxivPattern.MatchString(s)
}

// Classify decides whether arg is an identifier or a free-text title and
// returns its normalized form. Surrounding whitespace and an "arXiv:"
// prefix are removed before matching.
func Classify(arg string) (IdentifierType, string) {
	arg = strings.TrimSpace(arg)
	candidate := arg
	if len(candidate) > 6 && strings.EqualFold(candidate[:6], "arxiv:") {
		candidate = candidate[6:]
	}
	if IsArxivID(candidate) {
		return TypeArxiv, candidate
	}
	return TypeTitle, arg
}
