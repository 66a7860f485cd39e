// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package arxiv

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pdiddy/arxiv-cli/pkg/types"
)

type xmlFeed struct {
	XMLName      xml.Name   `xml:"http://www.w3.org/2005/Atom feed"`
	Title        *xmlText   `xml:"http://www.w3.org/2005/Atom title"`
	TotalResults *xmlText   `xml:"http://a9.com/-/spec/opensearch/1.1/ totalResults"`
	StartIndex   *xmlText   `xml:"http://a9.com/-/spec/opensearch/1.1/ startIndex"`
	ItemsPerPage *xmlText   `xml:"http://a9.com/-/spec/opensearch/1.1/ itemsPerPage"`
	Entries      []xmlEntry `xml:"http://www.w3.org/2005/Atom entry"`
}

type xmlEntry struct {
	ID              *xmlText       `xml:"http://www.w3.org/2005/Atom id"`
	Updated         *xmlText       `xml:"http://www.w3.org/2005/Atom updated"`
	Published       *xmlText       `xml:"http://www.w3.org/2005/Atom published"`
	Title           *xmlText       `xml:"http://www.w3.org/2005/Atom title"`
	Summary         *xmlText       `xml:"http://www.w3.org/2005/Atom summary"`
	Comment         *xmlText       `xml:"http://arxiv.org/schemas/atom comment"`
	Authors         []xmlAuthor    `xml:"http://www.w3.org/2005/Atom author"`
	Links           []xmlAttrs     `xml:"http://www.w3.org/2005/Atom link"`
	PrimaryCategory *xmlPrimaryCat `xml:"http://arxiv.org/schemas/atom primary_category"`
	Categories      []xmlAttrs     `xml:"http://www.w3.org/2005/Atom category"`
}

type xmlText struct {
	Attrs []xml.Attr `xml:",any,attr"`
	Text  string     `xml:",chardata"`
}

type xmlAttrs struct {
	Attrs []xml.Attr `xml:",any,attr"`
}

type xmlAuthor struct {
	Names []string `xml:"http://www.w3.org/2005/Atom name"`
}

type xmlPrimaryCat struct {
	Attrs      []xml.Attr `xml:",any,attr"`
	Categories []xmlAttrs `xml:"http://arxiv.org/schemas/atom category"`
}

// Parse maps a feed document into a FeedResult. Unparsable XML, a missing
// feed title and a missing or non-numeric pagination counter fail the whole
// document with types.KindMalformedResponse. An entry without an id, or
// missing another required element, is left out and recorded in Skipped.
func Parse(data []byte) (*types.FeedResult, error) {
	var doc xmlFeed
	d := xml.NewDecoder(bytes.NewReader(data))
	if err := d.Decode(&doc); err != nil {
		return nil, malformed(fmt.Errorf("decoding feed: %w", err))
	}
	if err := checkTrailing(d); err != nil {
		return nil, malformed(err)
	}
	if doc.Title == nil {
		return nil, malformed(errors.New("feed has no title"))
	}

	total, err := counter("totalResults", doc.TotalResults)
	if err != nil {
		return nil, malformed(err)
	}
	startIndex, err := counter("startIndex", doc.StartIndex)
	if err != nil {
		return nil, malformed(err)
	}
	count, err := counter("itemsPerPage", doc.ItemsPerPage)
	if err != nil {
		return nil, malformed(err)
	}

	feed := &types.FeedResult{
		XML:   string(data),
		Title: types.Text{Attrs: attrs(doc.Title.Attrs), Text: doc.Title.Text},
		Pagination: types.Pagination{
			Total:      total,
			StartIndex: startIndex,
			Count:      count,
		},
		Entries: make([]types.Entry, 0, len(doc.Entries)),
	}

	for i, e := range doc.Entries {
		entry, err := mapEntry(e)
		if err != nil {
			feed.Skipped = append(feed.Skipped, &types.Error{
				Op: "arxiv.parse", Kind: types.KindEntryExtraction, Index: i, Err: err,
			})
			continue
		}
		feed.Entries = append(feed.Entries, entry)
	}
	return feed, nil
}

// checkTrailing accepts only whitespace, comments and processing
// instructions after the root element.
func checkTrailing(d *xml.Decoder) error {
	for {
		tok, err := d.Token()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("after feed element: %w", err)
		}
		switch t := tok.(type) {
		case xml.Comment, xml.ProcInst:
		case xml.CharData:
			if len(bytes.TrimSpace(t)) > 0 {
				return errors.New("extra content at the end of the document")
			}
		default:
			return errors.New("extra content at the end of the document")
		}
	}
}

func mapEntry(e xmlEntry) (types.Entry, error) {
	if e.ID == nil || strings.TrimSpace(e.ID.Text) == "" {
		return types.Entry{}, errors.New("entry has no id")
	}
	var missing []string
	if e.Updated == nil {
		missing = append(missing, "updated")
	}
	if e.Published == nil {
		missing = append(missing, "published")
	}
	if e.Title == nil {
		missing = append(missing, "title")
	}
	if e.PrimaryCategory == nil {
		missing = append(missing, "arxiv:primary_category")
	}
	if len(missing) > 0 {
		return types.Entry{}, fmt.Errorf("entry %s missing %s", e.ID.Text, strings.Join(missing, ", "))
	}

	entry := types.Entry{
		URL:       e.ID.Text,
		Updated:   e.Updated.Text,
		Published: e.Published.Text,
		Title:     e.Title.Text,
		Summary:   optional(e.Summary),
		Comment:   optional(e.Comment),
		Authors:   []string{},
		Links:     make([]types.Attrs, 0, len(e.Links)),
		Category: types.Category{
			Attrs:     attrs(e.PrimaryCategory.Attrs),
			Secondary: make([]types.Attrs, 0, len(e.PrimaryCategory.Categories)),
		},
	}
	for _, a := range e.Authors {
		entry.Authors = append(entry.Authors, a.Names...)
	}
	for _, l := range e.Links {
		entry.Links = append(entry.Links, attrs(l.Attrs))
	}
	for _, c := range e.PrimaryCategory.Categories {
		entry.Category.Secondary = append(entry.Category.Secondary, attrs(c.Attrs))
	}
	for _, c := range e.Categories {
		entry.Categories = append(entry.Categories, attrs(c.Attrs))
	}
	return entry, nil
}

func counter(name string, t *xmlText) (int, error) {
	if t == nil {
		return 0, fmt.Errorf("missing opensearch:%s", name)
	}
	n, err := strconv.Atoi(strings.TrimSpace(t.Text))
	if err != nil {
		return 0, fmt.Errorf("opensearch:%s: %w", name, err)
	}
	if n < 0 {
		return 0, fmt.Errorf("opensearch:%s is negative (%d)", name, n)
	}
	return n, nil
}

func optional(t *xmlText) string {
	if t == nil {
		return ""
	}
	return t.Text
}

// attrs converts decoder attributes to an ordered bag. Namespace
// declarations are dropped; namespaced attributes are keyed "{uri}local".
func attrs(in []xml.Attr) types.Attrs {
	out := make(types.Attrs, 0, len(in))
	for _, a := range in {
		if a.Name.Space == "xmlns" || (a.Name.Space == "" && a.Name.Local == "xmlns") {
			continue
		}
		name := a.Name.Local
		if a.Name.Space != "" {
			name = "{" + a.Name.Space + "}" + a.Name.Local
		}
		out = append(out, types.Attr{Name: name, Value: a.Value})
	}
	return out
}

func malformed(err error) error {
	return &types.Error{Op: "arxiv.parse", Kind: types.KindMalformedResponse, Err: err}
}
