// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package arxiv

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/arxiv-cli/pkg/types"
)

func TestParseFullEntry(t *testing.T) {
	data := feedXML(1, 0, 1, entryXML("1801.00001v1"))

	feed, err := Parse([]byte(data))
	require.NoError(t, err)

	assert.Equal(t, data, feed.XML)
	assert.True(t, strings.HasPrefix(feed.Title.Text, "ArXiv Query:"))
	assert.Equal(t, types.Attrs{{Name: "type", Value: "html"}}, feed.Title.Attrs)
	assert.Equal(t, types.Pagination{Total: 1, StartIndex: 0, Count: 1}, feed.Pagination)
	assert.Empty(t, feed.Skipped)
	require.Len(t, feed.Entries, 1)

	e := feed.Entries[0]
	assert.Equal(t, "http://arxiv.org/abs/1801.00001v1", e.URL)
	assert.Equal(t, "1801.00001v1", e.ID())
	assert.Equal(t, "2018-01-01T16:43:37Z", e.Updated)
	assert.Equal(t, "2017-12-29T19:28:04Z", e.Published)
	assert.Equal(t, "A Study of\n  Things 1801.00001v1", e.Title)
	assert.Equal(t, "  We study things.\n", e.Summary)
	assert.Equal(t, "12 pages, 3 figures", e.Comment)
	assert.Equal(t, []string{"Ada Lovelace", "Alan Turing"}, e.Authors)

	require.Len(t, e.Links, 2)
	assert.Equal(t, types.Attrs{
		{Name: "href", Value: "http://arxiv.org/abs/1801.00001v1"},
		{Name: "rel", Value: "alternate"},
		{Name: "type", Value: "text/html"},
	}, e.Links[0])

	assert.Equal(t, "cs.LG", e.Category.Term())
	assert.Equal(t, types.Attrs{
		{Name: "term", Value: "cs.LG"},
		{Name: "scheme", Value: "http://arxiv.org/schemas/atom"},
	}, e.Category.Attrs, "namespace declarations are not attributes")
	require.Len(t, e.Category.Secondary, 1)
	v, _ := e.Category.Secondary[0].Get("term")
	assert.Equal(t, "stat.ML", v)
	assert.Len(t, e.Categories, 2)
}

func TestParseZeroEntries(t *testing.T) {
	feed, err := Parse([]byte(feedXML(0, 0, 10)))
	require.NoError(t, err)
	assert.Equal(t, 0, feed.Pagination.Total)
	assert.NotNil(t, feed.Entries)
	assert.Empty(t, feed.Entries)
}

func TestParseDropsEntryWithoutID(t *testing.T) {
	noID := strings.Replace(entryXML("1801.00002v1"), "<id>http://arxiv.org/abs/1801.00002v1</id>", "", 1)
	data := feedXML(3, 0, 3, entryXML("1801.00001v1"), noID, entryXML("1801.00003v1"))

	feed, err := Parse([]byte(data))
	require.NoError(t, err)

	require.Len(t, feed.Entries, 2, "one fewer entry than entry elements")
	assert.Equal(t, "1801.00001v1", feed.Entries[0].ID())
	assert.Equal(t, "1801.00003v1", feed.Entries[1].ID(), "document order kept")

	require.Len(t, feed.Skipped, 1)
	assert.ErrorIs(t, feed.Skipped[0], types.ErrEntryExtraction)
	assert.Contains(t, feed.Skipped[0].Error(), "entry 1")
}

func TestParseSkipsEntryMissingPrimaryCategory(t *testing.T) {
	e := entryXML("1801.00002v1")
	start := strings.Index(e, "<arxiv:primary_category")
	end := strings.Index(e, "</arxiv:primary_category>") + len("</arxiv:primary_category>")
	noCat := e[:start] + e[end:]

	feed, err := Parse([]byte(feedXML(2, 0, 2, noCat, entryXML("1801.00001v1"))))
	require.NoError(t, err, "an entry-level failure does not abort the feed")
	require.Len(t, feed.Entries, 1)
	require.Len(t, feed.Skipped, 1)
	assert.True(t, types.IsKind(feed.Skipped[0], types.KindEntryExtraction))
	assert.Contains(t, feed.Skipped[0].Error(), "primary_category")
}

func TestParseOptionalFieldsDefaultEmpty(t *testing.T) {
	e := entryXML("1801.00001v1")
	e = strings.Replace(e, "<summary>  We study things.\n</summary>", "", 1)
	e = strings.Replace(e, `<arxiv:comment xmlns:arxiv="http://arxiv.org/schemas/atom">12 pages, 3 figures</arxiv:comment>`, "", 1)

	feed, err := Parse([]byte(feedXML(1, 0, 1, e)))
	require.NoError(t, err)
	require.Len(t, feed.Entries, 1)
	assert.Equal(t, "", feed.Entries[0].Summary)
	assert.Equal(t, "", feed.Entries[0].Comment)
}

func TestParsePDFLinksRoundTrip(t *testing.T) {
	const n = 5
	var entries []string
	for i := 0; i < n; i++ {
		entries = append(entries, fmt.Sprintf(`  <entry>
    <id>http://arxiv.org/abs/2301.0000%dv1</id>
    <updated>2023-01-01T00:00:00Z</updated>
    <published>2023-01-01T00:00:00Z</published>
    <title>Paper %d</title>
    <link title="pdf" href="http://arxiv.org/pdf/2301.0000%dv1" rel="related" type="application/pdf"/>
    <arxiv:primary_category xmlns:arxiv="http://arxiv.org/schemas/atom" term="hep-th"/>
  </entry>
`, i, i, i))
	}

	feed, err := Parse([]byte(feedXML(n, 0, n, entries...)))
	require.NoError(t, err)
	require.Len(t, feed.Entries, n)

	for i, e := range feed.Entries {
		require.Len(t, e.Links, 1)
		assert.Equal(t, types.Attrs{
			{Name: "title", Value: "pdf"},
			{Name: "href", Value: fmt.Sprintf("http://arxiv.org/pdf/2301.0000%dv1", i)},
			{Name: "rel", Value: "related"},
			{Name: "type", Value: "application/pdf"},
		}, e.Links[0])
		pdf, ok := e.PDFLink()
		require.True(t, ok)
		assert.Equal(t, e.Links[0], pdf)
		assert.Empty(t, e.Authors)
	}
}

func TestParseMalformed(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"empty body", ""},
		{"not xml", "<<<>>>"},
		{"truncated", feedXML(1, 0, 1, entryXML("1801.00001v1"))[:300]},
		{"wrong root", `<html><body>Service Unavailable</body></html>`},
		{"atom root in wrong namespace", `<feed><title>x</title></feed>`},
		{"missing title", strings.Replace(feedXML(0, 0, 10), `<title type="html">ArXiv Query: search_query=all:electron&amp;id_list=&amp;start=0&amp;max_results=1</title>`, "", 1)},
		{"missing totalResults", strings.Replace(feedXML(0, 0, 10), `<opensearch:totalResults xmlns:opensearch="http://a9.com/-/spec/opensearch/1.1/">0</opensearch:totalResults>`, "", 1)},
		{"non-numeric startIndex", strings.Replace(feedXML(0, 0, 10), ">0</opensearch:startIndex>", ">zero</opensearch:startIndex>", 1)},
		{"negative itemsPerPage", strings.Replace(feedXML(0, 0, 10), ">10</opensearch:itemsPerPage>", ">-1</opensearch:itemsPerPage>", 1)},
		{"garbage after root", feedXML(0, 0, 10) + "<<<<not xml & garbage"},
		{"second root element", feedXML(1, 0, 1, entryXML("1801.00001v1")) + "<feed>"},
		{"text after root", feedXML(0, 0, 10) + "trailing"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			feed, err := Parse([]byte(tt.data))
			assert.Nil(t, feed, "no partial feed")
			require.Error(t, err)
			assert.ErrorIs(t, err, types.ErrMalformedResponse)
		})
	}
}

func TestParseAllowsTrailingMisc(t *testing.T) {
	data := feedXML(1, 0, 1, entryXML("1801.00001v1")) + "\n<!-- cached -->\n<?pi x?>\n  \n"
	feed, err := Parse([]byte(data))
	require.NoError(t, err)
	assert.Len(t, feed.Entries, 1)
}
