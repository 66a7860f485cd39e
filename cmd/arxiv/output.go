// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/arxiv-cli/internal/acquire"
	"github.com/pdiddy/arxiv-cli/internal/render"
	"github.com/pdiddy/arxiv-cli/pkg/types"
)

type viewMode int

const (
	viewTable viewMode = iota
	viewDetail
)

// addOutputFlags registers the output format flags shared by search, query and show.
func addOutputFlags(cmd *cobra.Command, csl bool) {
	cmd.Flags().Bool("json", false, "output the feed as JSON")
	cmd.Flags().String("select", "", "print values selected by a JSONPath expression, e.g. '$.entries[*].title'")
	if csl {
		cmd.Flags().Bool("csl", false, "output entries as CSL-YAML")
	}
}

// writeFeed renders feed in the format chosen by the command's flags.
func writeFeed(cmd *cobra.Command, feed *types.FeedResult, mode viewMode) error {
	w := cmd.OutOrStdout()

	if expr, _ := cmd.Flags().GetString("select"); expr != "" {
		return render.FormatSelect(feed, expr, w)
	}
	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		return render.FormatJSON(feed, w)
	}
	if cmd.Flags().Lookup("csl") != nil {
		if asCSL, _ := cmd.Flags().GetBool("csl"); asCSL {
			return render.FormatCSL(feed, w)
		}
	}

	if mode == viewDetail {
		render.FormatDetail(feed, w)
	} else {
		render.FormatTable(feed, w)
	}
	reportSkipped(cmd.ErrOrStderr(), feed)
	return nil
}

func reportSkipped(w io.Writer, feed *types.FeedResult) {
	if n := len(feed.Skipped); n > 0 {
		fmt.Fprintf(w, "warning: %d malformed entr%s dropped from the response\n", n, plural(n, "y", "ies"))
	}
}

// saveEntries writes one metadata file per entry into dir, named by tpl.
func saveEntries(w io.Writer, feed *types.FeedResult, dir, tpl string, format types.MetaFormat) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating directory %s: %w", dir, err)
	}
	for _, e := range feed.Entries {
		single := *feed
		single.Entries = []types.Entry{e}
		single.Pagination.Count = 1

		path := filepath.Join(dir, acquire.FileName(tpl, e)+acquire.MetaExt(format))
		if err := acquire.WriteMetadata(path, &single, format); err != nil {
			return fmt.Errorf("saving %s: %w", e.ID(), err)
		}
		fmt.Fprintf(w, "saved: %s\n", path)
	}
	return nil
}

// saveFeed writes the whole feed to path, as YAML for .yaml/.yml and JSON otherwise.
func saveFeed(path string, feed *types.FeedResult) error {
	format := types.MetaJSON
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		format = types.MetaYAML
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating directory %s: %w", dir, err)
		}
	}
	return acquire.WriteMetadata(path, feed, format)
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
