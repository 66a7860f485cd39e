// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import "github.com/pdiddy/arxiv-cli/pkg/types"

func sampleFeed() *types.FeedResult {
	return &types.FeedResult{
		Title:      types.Text{Text: "ArXiv Query: search_query=ti:attention"},
		Pagination: types.Pagination{Total: 230, StartIndex: 10, Count: 2},
		Entries: []types.Entry{
			{
				URL:       "http://arxiv.org/abs/1706.03762v5",
				Published: "2017-06-12T17:57:34Z",
				Updated:   "2017-12-06T03:30:32Z",
				Title:     "Attention Is All\n  You Need",
				Summary:   "The dominant sequence transduction models\n  are based on recurrent networks.",
				Comment:   "15 pages, 5 figures",
				Authors:   []string{"Ashish Vaswani", "Noam Shazeer", "Niki Parmar"},
				Links: []types.Attrs{
					{{Name: "href", Value: "http://arxiv.org/abs/1706.03762v5"}, {Name: "rel", Value: "alternate"}},
					{{Name: "title", Value: "pdf"}, {Name: "href", Value: "http://arxiv.org/pdf/1706.03762v5"}},
					{{Name: "title", Value: "doi"}, {Name: "href", Value: "http://dx.doi.org/10.5555/3295222.3295349"}},
				},
				Category: types.Category{Attrs: types.Attrs{{Name: "term", Value: "cs.CL"}}},
				Categories: []types.Attrs{
					{{Name: "term", Value: "cs.CL"}},
					{{Name: "term", Value: "cs.LG"}},
				},
			},
			{
				URL:       "http://arxiv.org/abs/hep-th/9901001v1",
				Published: "1999-01-01T00:00:00Z",
				Title:     "Strings",
				Authors:   []string{"Witten"},
				Category:  types.Category{Attrs: types.Attrs{{Name: "term", Value: "hep-th"}}},
			},
		},
	}
}
