// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package library

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/arxiv-cli/pkg/types"
)

const exportLimit = 100000

// Export writes every record matching opts to w as YAML or indented JSON.
func (s *Store) Export(ctx context.Context, w io.Writer, format types.MetaFormat, opts ListOptions) error {
	opts.Limit = exportLimit
	articles, err := s.List(ctx, opts)
	if err != nil {
		return fmt.Errorf("querying for export: %w", err)
	}
	if articles == nil {
		articles = []types.Article{}
	}

	var data []byte
	switch format {
	case types.MetaYAML, "":
		data, err = yaml.Marshal(articles)
	case types.MetaJSON:
		data, err = json.MarshalIndent(articles, "", "  ")
		data = append(data, '\n')
	default:
		return fmt.Errorf("unknown export format %q", format)
	}
	if err != nil {
		return fmt.Errorf("marshaling export: %w", err)
	}
	_, err = w.Write(data)
	return err
}
