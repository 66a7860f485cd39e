// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines the shared data structures for the arxiv CLI.
// A FeedResult is built fresh from one API response and never mutated
// afterwards; Article records what the acquisition stage saved to disk.
package types

import (
	"net/url"
	"strings"
)

// FeedResult is one response to a metadata request.
type FeedResult struct {
	// XML is the raw response text.
	XML string `json:"xml" yaml:"xml"`

	// Query is the query fragment that was sent (search_query or id_list value).
	Query string `json:"query,omitempty" yaml:"query,omitempty"`

	// Title is the feed-level title element.
	Title Text `json:"title" yaml:"title"`

	// Pagination holds the opensearch counters.
	Pagination Pagination `json:"pagination" yaml:"pagination"`

	// Entries are the article records in document order.
	Entries []Entry `json:"entries" yaml:"entries"`

	// Skipped lists entry-level failures. Those entries are absent from Entries.
	Skipped []error `json:"-" yaml:"-"`
}

// Text is an element's character data together with its attributes.
type Text struct {
	Attrs Attrs  `json:"attrib" yaml:"attrib"`
	Text  string `json:"text" yaml:"text"`
}

// Pagination holds the search-metadata counters. All three are non-negative.
type Pagination struct {
	Total      int `json:"total" yaml:"total"`
	StartIndex int `json:"start-index" yaml:"start-index"`
	Count      int `json:"count" yaml:"count"`
}

// Entry is one article record.
type Entry struct {
	// URL is the canonical abstract URL (the atom:id), e.g. "http://arxiv.org/abs/1801.00001v1".
	URL string `json:"url" yaml:"url"`

	// Updated and Published are kept exactly as the provider sent them.
	Updated   string `json:"updated" yaml:"updated"`
	Published string `json:"published" yaml:"published"`

	Title   string `json:"title" yaml:"title"`
	Summary string `json:"summary" yaml:"summary"`
	Comment string `json:"comment" yaml:"comment"`

	// Authors lists author names in source order.
	Authors []string `json:"authors" yaml:"authors"`

	// Links holds every link element's full attribute set in source order.
	Links []Attrs `json:"related-links" yaml:"related-links"`

	// Category is the arxiv:primary_category block.
	Category Category `json:"category" yaml:"category"`

	// Categories holds the entry-level atom:category elements.
	Categories []Attrs `json:"categories,omitempty" yaml:"categories,omitempty"`
}

// Category is a primary category attribute set plus its nested secondary categories.
type Category struct {
	Attrs     Attrs   `json:"attrib" yaml:"attrib"`
	Secondary []Attrs `json:"category" yaml:"category"`
}

// Term returns the category code, e.g. "cs.LG".
func (c Category) Term() string {
	v, _ := c.Attrs.Get("term")
	return v
}

// ID returns the identifier portion of the entry URL, keeping the version
// suffix and flattening old-style slashes ("hep-th/9901001v1" becomes
// "hep-th-9901001v1").
func (e Entry) ID() string {
	raw := e.URL
	if u, err := url.Parse(raw); err == nil && u.Host != "" {
		raw = u.Path
	}
	if idx := strings.Index(raw, "/abs/"); idx >= 0 {
		raw = raw[idx+len("/abs/"):]
	}
	raw = strings.Trim(raw, "/")
	return strings.ReplaceAll(raw, "/", "-")
}

// PDFLink returns the first link whose title attribute contains "pdf".
func (e Entry) PDFLink() (Attrs, bool) {
	for _, l := range e.Links {
		if title, ok := l.Get("title"); ok && strings.Contains(title, "pdf") {
			return l, true
		}
	}
	return nil, false
}

// PrimaryAuthor returns the first author, or "" when there are none.
func (e Entry) PrimaryAuthor() string {
	if len(e.Authors) == 0 {
		return ""
	}
	return e.Authors[0]
}
