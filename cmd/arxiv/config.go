package main

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/spf13/viper"

	"github.com/pdiddy/arxiv-cli/internal/acquire"
	"github.com/pdiddy/arxiv-cli/internal/arxiv"
	"github.com/pdiddy/arxiv-cli/pkg/types"
)

const defaultDelay = 3 * time.Second

func setDefaults(v *viper.Viper) {
	v.SetDefault("api.base_url", arxiv.DefaultBaseURL)
	v.SetDefault("api.user_agent", arxiv.DefaultUserAgent)
	v.SetDefault("api.timeout", time.Duration(0))

	v.SetDefault("download.dir", "./")
	v.SetDefault("download.name", acquire.DefaultNameTemplate)
	v.SetDefault("download.delay", defaultDelay)
	v.SetDefault("download.timeout", time.Duration(0))
	v.SetDefault("download.meta_format", string(types.MetaJSON))

	v.SetDefault("library.enabled", true)
	v.SetDefault("library.path", filepath.Join(xdg.DataHome, appName, "library.db"))
}

// loadConfig reads the merged defaults, config file and environment into a
// Config. Command flags are applied by each command afterwards.
func loadConfig(v *viper.Viper) (types.Config, error) {
	format := types.MetaFormat(strings.ToLower(v.GetString("download.meta_format")))
	if format != types.MetaJSON && format != types.MetaYAML {
		return types.Config{}, fmt.Errorf("download.meta_format must be json or yaml, got %q", format)
	}

	userAgent := v.GetString("api.user_agent")
	cfg := types.Config{
		API: types.APIConfig{
			HTTPConfig: types.HTTPConfig{
				Timeout:   v.GetDuration("api.timeout"),
				UserAgent: userAgent,
			},
			BaseURL: v.GetString("api.base_url"),
		},
		Download: types.DownloadConfig{
			HTTPConfig: types.HTTPConfig{
				Timeout:   v.GetDuration("download.timeout"),
				UserAgent: userAgent,
			},
			OutputDir:    v.GetString("download.dir"),
			NameTemplate: v.GetString("download.name"),
			Delay:        v.GetDuration("download.delay"),
			MetaFormat:   format,
		},
		Library: types.LibraryConfig{
			Enabled: v.GetBool("library.enabled"),
			Path:    v.GetString("library.path"),
		},
	}
	if cfg.Download.Delay < 0 {
		return types.Config{}, fmt.Errorf("download.delay must not be negative, got %s", cfg.Download.Delay)
	}
	return cfg, nil
}
