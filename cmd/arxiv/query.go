package main

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/arxiv-cli/internal/arxiv"
	"github.com/pdiddy/arxiv-cli/internal/query"
	"github.com/pdiddy/arxiv-cli/pkg/types"
)

var queryCmd = &cobra.Command{
	Use:   "query [QUERY_STRING...]",
	Short: "Run a raw arXiv query string or a saved query tree",
	Long: `Query sends an arXiv search_query as written, for example

  arxiv query 'ti:"neural network" AND cat:cs.LG'

or compiles a query tree read from a YAML or JSON file with --tree:

  op: and
  term1: {op: ti, term: quantum}
  term2: {op: andnot, term1: {op: cat, term: quant-ph}, term2: {op: au, term: smith}}

See https://arxiv.org/help/api/user-manual for the query syntax.`,
	RunE: runQuery,
}

func init() {
	queryCmd.Flags().String("tree", "", "read a query tree from a YAML or JSON file")
	queryCmd.Flags().Int("start", 0, "zero-based index of the first result")
	queryCmd.Flags().Int("max-results", arxiv.DefaultMaxResults, "maximum number of results")
	queryCmd.Flags().String("save", "", "also write the feed to this file (.yaml/.yml for YAML, JSON otherwise)")
	addOutputFlags(queryCmd, true)

	rootCmd.AddCommand(queryCmd)
}

func runQuery(cmd *cobra.Command, args []string) error {
	treeFile, _ := cmd.Flags().GetString("tree")
	if treeFile == "" && len(args) == 0 {
		return errors.New("provide a query string or --tree FILE")
	}
	if treeFile != "" && len(args) > 0 {
		return errors.New("use either a query string or --tree, not both")
	}

	cfg, err := loadConfig(viper.GetViper())
	if err != nil {
		return err
	}
	start, _ := cmd.Flags().GetInt("start")
	maxResults, _ := cmd.Flags().GetInt("max-results")

	client := arxiv.New(cfg.API)
	var feed *types.FeedResult
	if treeFile != "" {
		tree, err := query.ReadTreeFile(treeFile)
		if err != nil {
			return err
		}
		feed, err = client.Search(cmd.Context(), tree, start, maxResults)
		if err != nil {
			return err
		}
	} else {
		feed, err = client.FetchByQuery(cmd.Context(), strings.Join(args, " "), start, maxResults)
		if err != nil {
			return err
		}
	}

	if save, _ := cmd.Flags().GetString("save"); save != "" {
		if err := saveFeed(save, feed); err != nil {
			return err
		}
	}
	return writeFeed(cmd, feed, viewTable)
}
