// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// Article holds what the acquisition stage saved for one entry.
type Article struct {
	// ID is the version-bearing identifier derived from the entry URL (e.g. "1801.00001v2").
	ID string `json:"id" yaml:"id"`

	// URL is the entry's canonical abstract URL.
	URL string `json:"url" yaml:"url"`

	// Title is the article title with whitespace collapsed.
	Title string `json:"title" yaml:"title"`

	// Authors lists the article authors in source order.
	Authors []string `json:"authors" yaml:"authors"`

	// Category is the primary category code.
	Category string `json:"category" yaml:"category"`

	// Published is the provider's published timestamp, unparsed.
	Published string `json:"published" yaml:"published"`

	// PDFURL is the link the PDF was downloaded from.
	PDFURL string `json:"pdf_url,omitempty" yaml:"pdf_url,omitempty"`

	// PDFPath is the local PDF path; empty for metadata-only acquisitions.
	PDFPath string `json:"pdf_path,omitempty" yaml:"pdf_path,omitempty"`

	// MetaPath is the local metadata file path; empty when metadata was not saved.
	MetaPath string `json:"meta_path,omitempty" yaml:"meta_path,omitempty"`

	// AcquiredAt is when the record was written.
	AcquiredAt time.Time `json:"acquired_at" yaml:"acquired_at"`
}
