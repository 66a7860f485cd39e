package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/arxiv-cli/internal/arxiv"
	"github.com/pdiddy/arxiv-cli/internal/query"
)

var searchCmd = &cobra.Command{
	Use:   "search TERM...",
	Short: "Search arXiv for terms in a given scope",
	Long: `Search looks up every TERM in the chosen scope and shows the entries that
match all of them, one page at a time. Quote a term to search for a phrase.

Scope is all (the default), title, abstract, or any field code or name:
ti, au, abs, co, jr, cat, rn, id.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().StringP("scope", "s", "all", "search scope: all, title, abstract, or a field code")
	searchCmd.Flags().BoolP("in-abstract", "a", false, "equivalent to --scope=abstract")
	searchCmd.Flags().IntP("count", "c", 5, "records per page")
	searchCmd.Flags().IntP("page", "p", 1, "page to show, starting at 1")
	searchCmd.Flags().StringP("output", "o", "", "save each entry's metadata to this directory")
	searchCmd.Flags().StringP("name", "n", "", "metadata file naming template (implies --output=./)")
	addOutputFlags(searchCmd, true)

	rootCmd.AddCommand(searchCmd)
}

// searchTree folds the terms into one conjunction over the given scope.
func searchTree(terms []string, scope string) (query.Node, error) {
	field, err := query.ParseField(scope)
	if err != nil {
		return nil, err
	}
	nodes := make([]query.Node, len(terms))
	for i, t := range terms {
		nodes[i] = query.Term{Field: field, Text: query.Phrase(t)}
	}
	return query.Fold(query.OpAnd, nodes...), nil
}

func runSearch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(viper.GetViper())
	if err != nil {
		return err
	}

	scope, _ := cmd.Flags().GetString("scope")
	if inAbstract, _ := cmd.Flags().GetBool("in-abstract"); inAbstract {
		scope = string(query.FieldAbstract)
	}
	count, _ := cmd.Flags().GetInt("count")
	page, _ := cmd.Flags().GetInt("page")
	if count < 1 {
		return fmt.Errorf("--count must be at least 1, got %d", count)
	}
	if page < 1 {
		return fmt.Errorf("--page must be at least 1, got %d", page)
	}

	tree, err := searchTree(args, scope)
	if err != nil {
		return err
	}

	client := arxiv.New(cfg.API)
	feed, err := client.Search(cmd.Context(), tree, (page-1)*count, count)
	if err != nil {
		return err
	}

	if err := writeFeed(cmd, feed, viewTable); err != nil {
		return err
	}

	outDir, _ := cmd.Flags().GetString("output")
	tpl, _ := cmd.Flags().GetString("name")
	if outDir == "" && tpl != "" {
		outDir = "./"
	}
	if outDir == "" {
		return nil
	}
	if tpl == "" {
		tpl = cfg.Download.NameTemplate
	}
	return saveEntries(cmd.ErrOrStderr(), feed, outDir, tpl, cfg.Download.MetaFormat)
}
