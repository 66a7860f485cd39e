// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package render formats feed results for the terminal: a ranked table, a
// per-entry detail view, JSON, CSL-YAML and JSONPath selections.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/pdiddy/arxiv-cli/pkg/types"
)

const (
	titleWidth  = 56
	authorWidth = 22
	detailWidth = 78
)

type styles struct {
	header   lipgloss.Style
	rule     lipgloss.Style
	id       lipgloss.Style
	title    lipgloss.Style
	dim      lipgloss.Style
	category lipgloss.Style
	label    lipgloss.Style
	body     lipgloss.Style
}

// newStyles binds styles to w so that colour is dropped when w is not a terminal.
func newStyles(w io.Writer) styles {
	r := lipgloss.NewRenderer(w)
	primary := lipgloss.AdaptiveColor{Light: "#5A56E0", Dark: "#7571F9"}
	dim := lipgloss.AdaptiveColor{Light: "#9B9B9B", Dark: "#626262"}
	green := lipgloss.AdaptiveColor{Light: "#04B575", Dark: "#25D366"}
	return styles{
		header:   r.NewStyle().Bold(true).Foreground(primary),
		rule:     r.NewStyle().Foreground(dim),
		id:       r.NewStyle().Foreground(green),
		title:    r.NewStyle().Bold(true),
		dim:      r.NewStyle().Foreground(dim),
		category: r.NewStyle().Foreground(primary),
		label:    r.NewStyle().Foreground(dim).Width(11),
		body:     r.NewStyle().Width(detailWidth),
	}
}

// FormatTable writes one row per entry, ranked from the feed's start index.
func FormatTable(feed *types.FeedResult, w io.Writer) {
	if len(feed.Entries) == 0 {
		fmt.Fprintln(w, "No results found.")
		return
	}
	st := newStyles(w)

	header := fmt.Sprintf("%-4s  %-18s  %-*s  %-*s  %-10s  %s",
		"Rank", "ID", titleWidth, "Title", authorWidth, "Authors", "Category", "Published")
	fmt.Fprintln(w, st.header.Render(header))
	fmt.Fprintln(w, st.rule.Render(strings.Repeat("-", lipgloss.Width(header))))

	for i, e := range feed.Entries {
		fmt.Fprintf(w, "%-4d  %s  %-*s  %-*s  %s  %s\n",
			feed.Pagination.StartIndex+i+1,
			st.id.Render(pad(e.ID(), 18)),
			titleWidth, truncate(collapse(e.Title), titleWidth),
			authorWidth, formatAuthors(e.Authors),
			st.category.Render(pad(e.Category.Term(), 10)),
			st.dim.Render(day(e.Published)),
		)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, st.dim.Render(Footer(feed.Pagination)))
}

// Footer summarises the page position, e.g. "results 11-15 of 230".
func Footer(p types.Pagination) string {
	if p.Count == 0 {
		return fmt.Sprintf("no results on this page (%d total)", p.Total)
	}
	return fmt.Sprintf("results %d-%d of %d", p.StartIndex+1, p.StartIndex+p.Count, p.Total)
}

// FormatDetail writes every field of each entry in a readable block.
func FormatDetail(feed *types.FeedResult, w io.Writer) {
	if len(feed.Entries) == 0 {
		fmt.Fprintln(w, "No results found.")
		return
	}
	st := newStyles(w)
	for i, e := range feed.Entries {
		if i > 0 {
			fmt.Fprintln(w, st.rule.Render(strings.Repeat("-", detailWidth)))
		}
		fmt.Fprintln(w, st.title.Render(st.body.Render(collapse(e.Title))))
		field := func(label, value string) {
			if value == "" {
				return
			}
			fmt.Fprintf(w, "%s%s\n", st.label.Render(label), value)
		}
		field("id", st.id.Render(e.ID()))
		field("url", e.URL)
		field("authors", strings.Join(e.Authors, ", "))
		field("category", categories(e))
		field("published", e.Published)
		field("updated", e.Updated)
		field("comment", collapse(e.Comment))
		if link, ok := e.PDFLink(); ok {
			href, _ := link.Get("href")
			field("pdf", href)
		}
		if s := collapse(e.Summary); s != "" {
			fmt.Fprintln(w)
			fmt.Fprintln(w, st.body.Render(s))
		}
		fmt.Fprintln(w)
	}
}

func categories(e types.Entry) string {
	primary := e.Category.Term()
	var rest []string
	for _, c := range e.Categories {
		if term, _ := c.Get("term"); term != "" && term != primary {
			rest = append(rest, term)
		}
	}
	if len(rest) == 0 {
		return primary
	}
	return primary + " (" + strings.Join(rest, ", ") + ")"
}

func formatAuthors(authors []string) string {
	switch len(authors) {
	case 0:
		return ""
	case 1:
		return truncate(authors[0], authorWidth)
	default:
		return truncate(authors[0], authorWidth-7) + " et al."
	}
}

// collapse joins whitespace runs, including the line breaks the API puts in titles.
func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-3]) + "..."
}

func pad(s string, width int) string {
	if n := len([]rune(s)); n < width {
		return s + strings.Repeat(" ", width-n)
	}
	return s
}

func day(ts string) string {
	if len(ts) >= 10 {
		return ts[:10]
	}
	return ts
}
