// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the arxiv CLI: search and query the
// arXiv metadata API, show entries, download articles and browse the local
// library of what was downloaded.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/adrg/xdg"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/arxiv-cli/internal/logger"
)

// version is set at build time via ldflags.
var version = "dev"

const appName = "arxiv-cli"

// rootCmd is the base command for the arxiv CLI.
var rootCmd = &cobra.Command{
	Use:   "arxiv",
	Short: "Search, inspect and download arXiv articles",
	Long: `arxiv is a console client for the arXiv metadata API.

Use search for quick term lookups, query for raw query strings or saved
query trees, show to inspect entries by id, and download (or get) to save
PDFs and their metadata. Every download is recorded in a local library.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		debug, _ := cmd.Flags().GetBool("debug")
		logger.Setup(logger.Config{Debug: debug || viper.GetBool("debug")})
		if f := viper.ConfigFileUsed(); f != "" {
			logger.L().Debug("config.loaded", "file", f)
		}
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./arxiv.yaml or $XDG_CONFIG_HOME/arxiv-cli/arxiv.yaml)")
	rootCmd.PersistentFlags().Bool("debug", false, "log requests and responses to stderr")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("arxiv")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		viper.AddConfigPath(filepath.Join(xdg.ConfigHome, appName))
	}

	setDefaults(viper.GetViper())

	viper.SetEnvPrefix("ARXIV_CLI")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && cfgFile != "" {
			fmt.Fprintln(os.Stderr, "Error reading config file:", err)
		}
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}
