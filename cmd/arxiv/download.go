// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/arxiv-cli/internal/acquire"
	"github.com/pdiddy/arxiv-cli/internal/arxiv"
	"github.com/pdiddy/arxiv-cli/internal/httputil"
	"github.com/pdiddy/arxiv-cli/internal/library"
	"github.com/pdiddy/arxiv-cli/internal/logger"
	"github.com/pdiddy/arxiv-cli/pkg/types"
)

var downloadCmd = &cobra.Command{
	Use:     "download ARTICLE...",
	Aliases: []string{"get"},
	Short:   "Download articles by arXiv id or title",
	Long: `Download resolves each ARTICLE, either an arXiv identifier such as
1801.00001 or 1801.00001v2, or a title to search for, and saves its PDF
along with a metadata file. Existing PDFs are skipped.

Name templates may use {id}, {title}, {auth_prim} (or {prim_author}) and
{category}.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runDownload,
}

func init() {
	downloadCmd.Flags().StringP("output", "o", "", "output directory (default ./)")
	downloadCmd.Flags().StringP("name", "n", "", "file naming template (default {id}.{title})")
	downloadCmd.Flags().BoolP("meta-only", "m", false, "save metadata only (overrides -M)")
	downloadCmd.Flags().BoolP("no-meta", "M", false, "don't save metadata")
	downloadCmd.Flags().String("meta-format", "", "metadata format: json or yaml")
	downloadCmd.Flags().Duration("delay", defaultDelay, "delay between consecutive downloads")
	downloadCmd.Flags().Bool("no-library", false, "don't record downloads in the library")

	rootCmd.AddCommand(downloadCmd)
}

// applyDownloadFlags overrides cfg with the flags the user set.
func applyDownloadFlags(cmd *cobra.Command, cfg *types.DownloadConfig) error {
	flags := cmd.Flags()
	if v, _ := flags.GetString("output"); v != "" {
		cfg.OutputDir = v
	}
	if v, _ := flags.GetString("name"); v != "" {
		cfg.NameTemplate = v
	}
	cfg.MetaOnly, _ = flags.GetBool("meta-only")
	cfg.NoMeta, _ = flags.GetBool("no-meta")
	if v, _ := flags.GetString("meta-format"); v != "" {
		f := types.MetaFormat(v)
		if f != types.MetaJSON && f != types.MetaYAML {
			return fmt.Errorf("--meta-format must be json or yaml, got %q", v)
		}
		cfg.MetaFormat = f
	}
	if flags.Changed("delay") {
		v, _ := flags.GetDuration("delay")
		if v < 0 {
			return fmt.Errorf("--delay must not be negative, got %s", v)
		}
		cfg.Delay = v
	}
	return nil
}

func runDownload(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(viper.GetViper())
	if err != nil {
		return err
	}
	if err := applyDownloadFlags(cmd, &cfg.Download); err != nil {
		return err
	}

	a := &acquire.Acquirer{
		Fetcher: arxiv.New(cfg.API),
		HTTP:    httputil.NewClient(cfg.Download.HTTPConfig),
		Config:  cfg.Download,
		Out:     cmd.OutOrStdout(),
	}
	if f, ok := cmd.ErrOrStderr().(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		a.Progress = progressPrinter(f)
	}

	noLibrary, _ := cmd.Flags().GetBool("no-library")
	if cfg.Library.Enabled && !noLibrary {
		store, err := library.Open(cfg.Library.Path)
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "warning: library unavailable: %v\n", err)
		} else {
			defer store.Close()
			a.Recorder = store
			logger.L().Debug("library.opened", "path", store.Path())
		}
	}

	result := a.AcquireBatch(cmd.Context(), args)
	if result.HasFailures() {
		return fmt.Errorf("%d article(s) failed to download", result.Failed)
	}
	return nil
}

// progressPrinter redraws a single status line on w as bytes arrive. The
// clock restarts whenever the byte count drops, so one printer can serve
// several downloads in sequence.
func progressPrinter(w io.Writer) httputil.ProgressFunc {
	start := time.Now()
	var last int64
	return func(done, total int64) {
		if done < last {
			start = time.Now()
		}
		last = done
		fmt.Fprint(w, "\r"+formatProgress(done, total, time.Since(start)))
		if total > 0 && done >= total {
			fmt.Fprintln(w)
			last = 0
			start = time.Now()
		}
	}
}

// formatProgress renders transferred bytes, the percentage when total is
// known, and the mean rate over elapsed.
func formatProgress(done, total int64, elapsed time.Duration) string {
	line := "  " + humanBytes(done)
	if total > 0 {
		line += fmt.Sprintf(" / %s (%3d%%)", humanBytes(total), done*100/total)
	}
	if elapsed > 0 {
		line += fmt.Sprintf(" %s/s", humanBytes(int64(float64(done)/elapsed.Seconds())))
	}
	return line
}

func humanBytes(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}
