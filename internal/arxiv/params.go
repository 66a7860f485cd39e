// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package arxiv

import (
	"fmt"
	"strconv"
	"strings"
)

// NormalizeQuery applies the substitution pass the query endpoint expects:
// '&' and '=' become spaces, runs of spaces collapse to one, and each
// remaining space becomes '+'. Characters that would otherwise break the
// URL (such as '#', '%' or '"') are percent-escaped; everything else,
// including the dialect's ':', '(', ')' and ',', is left as typed.
func NormalizeQuery(q string) string {
	q = strings.NewReplacer("&", " ", "=", " ").Replace(q)
	for strings.Contains(q, "  ") {
		q = strings.ReplaceAll(q, "  ", " ")
	}
	q = strings.ReplaceAll(q, " ", "+")
	return escapeUnsafe(q)
}

// joinIDs trims each identifier, drops empty ones and joins the rest with commas.
func joinIDs(ids []string) string {
	kept := make([]string, 0, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id != "" {
			kept = append(kept, escapeUnsafe(id))
		}
	}
	return strings.Join(kept, ",")
}

// buildURL assembles base?<param>=<value>&start=N&max_results=M. The value
// must already be normalized.
func buildURL(base, param, value string, start, maxResults int) string {
	var b strings.Builder
	b.WriteString(base)
	if strings.Contains(base, "?") {
		b.WriteByte('&')
	} else {
		b.WriteByte('?')
	}
	b.WriteString(param)
	b.WriteByte('=')
	b.WriteString(value)
	b.WriteString("&start=")
	b.WriteString(strconv.Itoa(start))
	b.WriteString("&max_results=")
	b.WriteString(strconv.Itoa(maxResults))
	return b.String()
}

func escapeUnsafe(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c <= 0x20 || c >= 0x7f || strings.IndexByte(`"#%<>\^`+"`"+`{|}`, c) >= 0 {
			fmt.Fprintf(&b, "%%%02X", c)
			continue
		}
		b.WriteByte(c)
	}
	return b.String()
}
