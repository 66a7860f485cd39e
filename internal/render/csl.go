// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"io"
	"strings"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/arxiv-cli/pkg/types"
)

// CSLItem is a bibliographic entry in CSL-YAML form, consumable by Pandoc
// and reference managers.
type CSLItem struct {
	ID        string    `yaml:"id"`
	Type      string    `yaml:"type"`
	Title     string    `yaml:"title"`
	Author    []CSLName `yaml:"author,omitempty"`
	Abstract  string    `yaml:"abstract,omitempty"`
	Issued    *CSLDate  `yaml:"issued,omitempty"`
	Publisher string    `yaml:"publisher,omitempty"`
	Number    string    `yaml:"number,omitempty"`
	URL       string    `yaml:"URL,omitempty"`
	DOI       string    `yaml:"DOI,omitempty"`
	Note      string    `yaml:"note,omitempty"`
}

// CSLName is a person's name in CSL form.
type CSLName struct {
	Family  string `yaml:"family,omitempty"`
	Given   string `yaml:"given,omitempty"`
	Literal string `yaml:"literal,omitempty"`
}

// CSLDate is a date in CSL date-parts form.
type CSLDate struct {
	DateParts [][]int `yaml:"date-parts"`
}

// FormatCSL writes the feed entries as a CSL-YAML list to w.
func FormatCSL(feed *types.FeedResult, w io.Writer) error {
	items := make([]CSLItem, len(feed.Entries))
	for i, e := range feed.Entries {
		items[i] = toCSLItem(e)
	}
	enc := yaml.NewEncoder(w)
	defer enc.Close()
	return enc.Encode(items)
}

func toCSLItem(e types.Entry) CSLItem {
	id := e.ID()
	item := CSLItem{
		ID:        "arxiv:" + id,
		Type:      "article",
		Title:     collapse(e.Title),
		Abstract:  collapse(e.Summary),
		Publisher: "arXiv",
		Number:    id,
		URL:       e.URL,
		Note:      collapse(e.Comment),
	}

	for _, a := range e.Authors {
		item.Author = append(item.Author, parseAuthorName(a))
	}

	if t, err := time.Parse(time.RFC3339, e.Published); err == nil {
		item.Issued = &CSLDate{
			DateParts: [][]int{{t.Year(), int(t.Month()), t.Day()}},
		}
	}

	for _, l := range e.Links {
		if title, _ := l.Get("title"); title != "doi" {
			continue
		}
		href, _ := l.Get("href")
		if i := strings.Index(href, "doi.org/"); i >= 0 {
			item.DOI = href[i+len("doi.org/"):]
		}
	}

	return item
}

// parseAuthorName splits on the last space: everything before is given,
// the last token is family. Single-token names use the literal field.
func parseAuthorName(name string) CSLName {
	name = strings.TrimSpace(name)
	if name == "" {
		return CSLName{}
	}
	idx := strings.LastIndex(name, " ")
	if idx < 0 {
		return CSLName{Literal: name}
	}
	return CSLName{
		Given:  name[:idx],
		Family: name[idx+1:],
	}
}
