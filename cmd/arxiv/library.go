// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/arxiv-cli/internal/acquire"
	"github.com/pdiddy/arxiv-cli/internal/library"
	"github.com/pdiddy/arxiv-cli/internal/render"
	"github.com/pdiddy/arxiv-cli/pkg/types"
)

var libraryCmd = &cobra.Command{
	Use:   "library",
	Short: "Browse the local record of downloaded articles",
	Long: `Library reads the SQLite database that download writes to. Use list to
filter what has been downloaded, show to see one record, and export to dump
records as YAML or JSON.`,
}

// --- list subcommand ---

var libraryListCmd = &cobra.Command{
	Use:   "list",
	Short: "List downloaded articles, newest first",
	Args:  cobra.NoArgs,
	RunE:  runLibraryList,
}

func runLibraryList(cmd *cobra.Command, args []string) error {
	store, err := openLibrary()
	if err != nil {
		return err
	}
	defer store.Close()

	articles, err := store.List(cmd.Context(), listOptsFromFlags(cmd))
	if err != nil {
		return err
	}

	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		if articles == nil {
			articles = []types.Article{}
		}
		return render.FormatJSON(articles, cmd.OutOrStdout())
	}
	formatLibraryTable(articles, cmd.OutOrStdout())
	return nil
}

func formatLibraryTable(articles []types.Article, w io.Writer) {
	if len(articles) == 0 {
		fmt.Fprintln(w, "Library is empty.")
		return
	}

	fmt.Fprintf(w, "%-18s  %-50s  %-10s  %-3s  %s\n", "ID", "Title", "Category", "PDF", "Acquired")
	fmt.Fprintln(w, strings.Repeat("-", 102))
	for _, a := range articles {
		title := a.Title
		if r := []rune(title); len(r) > 50 {
			title = string(r[:47]) + "..."
		}
		pdf := "no"
		if a.PDFPath != "" {
			pdf = "yes"
		}
		fmt.Fprintf(w, "%-18s  %-50s  %-10s  %-3s  %s\n",
			a.ID, title, a.Category, pdf, a.AcquiredAt.Local().Format("2006-01-02 15:04"))
	}
	fmt.Fprintf(w, "\n%d article%s\n", len(articles), plural(len(articles), "", "s"))
}

// --- show subcommand ---

var libraryShowCmd = &cobra.Command{
	Use:   "show ID",
	Short: "Show the library record for one article",
	Args:  cobra.ExactArgs(1),
	RunE:  runLibraryShow,
}

func runLibraryShow(cmd *cobra.Command, args []string) error {
	store, err := openLibrary()
	if err != nil {
		return err
	}
	defer store.Close()

	_, id := acquire.Classify(args[0])
	a, err := store.Get(cmd.Context(), id)
	if errors.Is(err, library.ErrNotFound) {
		return fmt.Errorf("%s has not been downloaded", id)
	}
	if err != nil {
		return err
	}
	return render.FormatJSON(a, cmd.OutOrStdout())
}

// --- export subcommand ---

var libraryExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export library records as YAML or JSON",
	Args:  cobra.NoArgs,
	RunE:  runLibraryExport,
}

func runLibraryExport(cmd *cobra.Command, args []string) error {
	store, err := openLibrary()
	if err != nil {
		return err
	}
	defer store.Close()

	format, _ := cmd.Flags().GetString("format")
	w := cmd.OutOrStdout()
	if out, _ := cmd.Flags().GetString("output"); out != "" {
		f, err := os.Create(out)
		if err != nil {
			return fmt.Errorf("creating %s: %w", out, err)
		}
		defer f.Close()
		w = f
	}
	return store.Export(cmd.Context(), w, types.MetaFormat(format), listOptsFromFlags(cmd))
}

// --- helpers ---

func openLibrary() (*library.Store, error) {
	cfg, err := loadConfig(viper.GetViper())
	if err != nil {
		return nil, err
	}
	return library.Open(cfg.Library.Path)
}

func listOptsFromFlags(cmd *cobra.Command) library.ListOptions {
	category, _ := cmd.Flags().GetString("category")
	author, _ := cmd.Flags().GetString("author")
	limit, _ := cmd.Flags().GetInt("limit")
	return library.ListOptions{Category: category, Author: author, Limit: limit}
}

func addFilterFlags(cmd *cobra.Command) {
	cmd.Flags().String("category", "", "filter by primary category (a trailing . or * matches a prefix)")
	cmd.Flags().String("author", "", "filter by author name substring")
}

func init() {
	addFilterFlags(libraryListCmd)
	libraryListCmd.Flags().Int("limit", 0, "maximum records (default 50)")
	libraryListCmd.Flags().Bool("json", false, "output records as JSON")

	addFilterFlags(libraryExportCmd)
	libraryExportCmd.Flags().String("format", "yaml", "export format: yaml or json")
	libraryExportCmd.Flags().StringP("output", "o", "", "write to this file instead of stdout")

	libraryCmd.AddCommand(libraryListCmd, libraryShowCmd, libraryExportCmd)
	rootCmd.AddCommand(libraryCmd)
}
