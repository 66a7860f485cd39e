// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package acquire

import (
	"strings"

	"github.com/pdiddy/arxiv-cli/pkg/types"
)

// DefaultNameTemplate names saved files after the identifier and title.
const DefaultNameTemplate = "{id}.{title}"

// FileName expands tpl for e and sanitizes the result. Placeholders:
// {id}, {title}, {auth_prim} (or {prim_author}; "N.A" without authors) and
// {category} ("no.cate" without a primary category).
func FileName(tpl string, e types.Entry) string {
	if tpl == "" {
		tpl = DefaultNameTemplate
	}

	author := e.PrimaryAuthor()
	if author == "" {
		author = "N.A"
	}
	category := e.Category.Term()
	if category == "" {
		category = "no.cate"
	}

	name := strings.NewReplacer(
		"{id}", e.ID(),
		"{title}", e.Title,
		"{auth_prim}", author,
		"{prim_author}", author,
		"{category}", category,
	).Replace(tpl)
	return Sanitize(name)
}

var unsafeName = strings.NewReplacer(
	"/", " ",
	"\t", " ",
	"&nbsp;", " ",
	"\n", " ",
	"\\", " ",
	"?", " ",
	"*", " ",
	":", ".",
	";", "_",
)

// Sanitize maps characters that are unsafe in file names and collapses
// runs of spaces.
func Sanitize(name string) string {
	name = unsafeName.Replace(name)
	for strings.Contains(name, "  ") {
		name = strings.ReplaceAll(name, "  ", " ")
	}
	return strings.TrimSpace(name)
}
