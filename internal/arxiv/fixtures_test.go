// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package arxiv

import (
	"fmt"
	"strings"
)

const feedHeader = `<?xml version="1.0" encoding="UTF-8"?>
<feed xmlns="http://www.w3.org/2005/Atom">
  <link href="http://arxiv.org/api/query?search_query%3Dall%3Aelectron" rel="self" type="application/atom+xml"/>
  <title type="html">ArXiv Query: search_query=all:electron&amp;id_list=&amp;start=0&amp;max_results=1</title>
  <id>http://arxiv.org/api/cHxbiOdZaP56ODnBPIenZhzg5f8</id>
  <updated>2018-01-02T00:00:00-05:00</updated>
`

func pagination(total, start, count int) string {
	return fmt.Sprintf(`  <opensearch:totalResults xmlns:opensearch="http://a9.com/-/spec/opensearch/1.1/">%d</opensearch:totalResults>
  <opensearch:startIndex xmlns:opensearch="http://a9.com/-/spec/opensearch/1.1/">%d</opensearch:startIndex>
  <opensearch:itemsPerPage xmlns:opensearch="http://a9.com/-/spec/opensearch/1.1/">%d</opensearch:itemsPerPage>
`, total, start, count)
}

func entryXML(id string) string {
	return fmt.Sprintf(`  <entry>
    <id>http://arxiv.org/abs/%[1]s</id>
    <updated>2018-01-01T16:43:37Z</updated>
    <published>2017-12-29T19:28:04Z</published>
    <title>A Study of
  Things %[1]s</title>
    <summary>  We study things.
</summary>
    <author>
      <name>Ada Lovelace</name>
    </author>
    <author>
      <name>Alan Turing</name>
    </author>
    <arxiv:comment xmlns:arxiv="http://arxiv.org/schemas/atom">12 pages, 3 figures</arxiv:comment>
    <link href="http://arxiv.org/abs/%[1]s" rel="alternate" type="text/html"/>
    <link title="pdf" href="http://arxiv.org/pdf/%[1]s" rel="related" type="application/pdf"/>
    <arxiv:primary_category xmlns:arxiv="http://arxiv.org/schemas/atom" term="cs.LG" scheme="http://arxiv.org/schemas/atom">
      <arxiv:category term="stat.ML" scheme="http://arxiv.org/schemas/atom"/>
    </arxiv:primary_category>
    <category term="cs.LG" scheme="http://arxiv.org/schemas/atom"/>
    <category term="stat.ML" scheme="http://arxiv.org/schemas/atom"/>
  </entry>
`, id)
}

func feedXML(total, start, count int, entries ...string) string {
	var b strings.Builder
	b.WriteString(feedHeader)
	b.WriteString(pagination(total, start, count))
	for _, e := range entries {
		b.WriteString(e)
	}
	b.WriteString("</feed>\n")
	return b.String()
}
