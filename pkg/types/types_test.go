// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v3"
)

func TestErrorClassification(t *testing.T) {
	status := &Error{Op: "arxiv.fetch", Kind: KindProviderStatus, StatusCode: 503}
	wrapped := fmt.Errorf("downloading: %w", status)

	assert.True(t, errors.Is(wrapped, ErrProviderStatus))
	assert.False(t, errors.Is(wrapped, ErrTransport))
	assert.True(t, IsKind(wrapped, KindProviderStatus))
	assert.Equal(t, 503, StatusCode(wrapped))
	assert.Equal(t, 0, StatusCode(errors.New("plain")))
	assert.Equal(t, "arxiv.fetch: provider_status (HTTP 503)", status.Error())

	cause := errors.New("missing id")
	entry := &Error{Op: "arxiv.parse", Kind: KindEntryExtraction, Index: 2, Err: cause}
	assert.Equal(t, "arxiv.parse: entry_extraction (entry 2): missing id", entry.Error())
	assert.True(t, errors.Is(entry, cause))
	assert.True(t, errors.Is(entry, ErrEntryExtraction))
}

func TestAttrsKeepOrder(t *testing.T) {
	a := Attrs{{"title", "pdf"}, {"href", "http://arxiv.org/pdf/1"}, {"rel", "related"}}

	data, err := json.Marshal(a)
	require.NoError(t, err)
	assert.Equal(t, `{"title":"pdf","href":"http://arxiv.org/pdf/1","rel":"related"}`, string(data))

	var back Attrs
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, a, back)

	y, err := yaml.Marshal(a)
	require.NoError(t, err)
	assert.Equal(t, "title: pdf\nhref: http://arxiv.org/pdf/1\nrel: related\n", string(y))

	var fromYAML Attrs
	require.NoError(t, yaml.Unmarshal(y, &fromYAML))
	assert.Equal(t, a, fromYAML)

	v, ok := a.Get("href")
	assert.True(t, ok)
	assert.Equal(t, "http://arxiv.org/pdf/1", v)
	_, ok = a.Get("type")
	assert.False(t, ok)
}

func TestAttrsRejectNonObject(t *testing.T) {
	var a Attrs
	assert.Error(t, json.Unmarshal([]byte(`["x"]`), &a))
	assert.Error(t, yaml.Unmarshal([]byte("- x\n"), &a))
}

func TestEntryID(t *testing.T) {
	tests := []struct {
		url  string
		want string
	}{
		{"http://arxiv.org/abs/1801.00001v2", "1801.00001v2"},
		{"https://arxiv.org/abs/1801.00001v2", "1801.00001v2"},
		{"http://arxiv.org/abs/hep-th/9901001v1", "hep-th-9901001v1"},
		{"1801.00001", "1801.00001"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Entry{URL: tt.url}.ID(), tt.url)
	}
}

func TestEntryPDFLink(t *testing.T) {
	e := Entry{Links: []Attrs{
		{{"href", "http://arxiv.org/abs/1"}, {"rel", "alternate"}},
		{{"title", "doi"}, {"href", "http://dx.doi.org/10.1/x"}},
		{{"title", "pdf"}, {"href", "http://arxiv.org/pdf/1"}},
	}}
	link, ok := e.PDFLink()
	require.True(t, ok)
	href, _ := link.Get("href")
	assert.Equal(t, "http://arxiv.org/pdf/1", href)

	_, ok = Entry{}.PDFLink()
	assert.False(t, ok)
	assert.Equal(t, "", Entry{}.PrimaryAuthor())
}
