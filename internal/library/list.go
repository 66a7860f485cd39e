// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package library

import (
	"context"
	"fmt"
	"strings"

	"github.com/pdiddy/arxiv-cli/pkg/types"
)

// ListOptions filters List results.
type ListOptions struct {
	// Category matches the primary category exactly, or as a prefix when it
	// ends in "." or "*" (e.g. "cs." or "cs*").
	Category string

	// Author matches any author name containing the string, case-insensitively.
	Author string

	// Limit caps the result count. Zero uses the default.
	Limit int
}

// List returns records newest first.
func (s *Store) List(ctx context.Context, opts ListOptions) ([]types.Article, error) {
	limit := opts.Limit
	if limit <= 0 {
		limit = defaultLimit
	}

	var (
		qb   strings.Builder
		args []any
	)
	qb.WriteString(selectColumns + ` WHERE 1=1`)

	if c := opts.Category; c != "" {
		if strings.HasSuffix(c, "*") || strings.HasSuffix(c, ".") {
			qb.WriteString(` AND category LIKE ? ESCAPE '\'`)
			args = append(args, escapeLike(strings.TrimSuffix(c, "*"))+"%")
		} else {
			qb.WriteString(` AND category = ?`)
			args = append(args, c)
		}
	}

	if opts.Author != "" {
		qb.WriteString(` AND EXISTS (SELECT 1 FROM json_each(articles.authors) WHERE lower(value) LIKE ? ESCAPE '\')`)
		args = append(args, "%"+escapeLike(strings.ToLower(opts.Author))+"%")
	}

	qb.WriteString(` ORDER BY acquired_at DESC, id LIMIT ?`)
	args = append(args, limit)

	rows, err := s.db.QueryContext(ctx, qb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("querying library: %w", err)
	}
	defer rows.Close()

	var out []types.Article
	for rows.Next() {
		a, err := scanArticle(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning row: %w", err)
		}
		out = append(out, *a)
	}
	return out, rows.Err()
}

func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}
