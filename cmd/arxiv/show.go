package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/arxiv-cli/internal/acquire"
	"github.com/pdiddy/arxiv-cli/internal/arxiv"
)

var showCmd = &cobra.Command{
	Use:   "show ID...",
	Short: "Show the full metadata of articles by id",
	Long: `Show fetches the given arXiv identifiers in one request and prints every
field of each entry. An "arXiv:" prefix on an identifier is accepted.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runShow,
}

func init() {
	addOutputFlags(showCmd, true)
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(viper.GetViper())
	if err != nil {
		return err
	}

	ids := make([]string, len(args))
	for i, a := range args {
		_, ids[i] = acquire.Classify(a)
	}

	client := arxiv.New(cfg.API)
	feed, err := client.FetchByIDs(cmd.Context(), ids, 0, len(ids))
	if err != nil {
		return err
	}
	return writeFeed(cmd, feed, viewDetail)
}
