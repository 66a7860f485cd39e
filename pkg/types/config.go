package types

import "time"

// HTTPConfig holds shared HTTP settings used by stages that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout. Zero leaves the transport default.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the fixed identifying User-Agent header.
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// APIConfig holds settings for the metadata API client.
type APIConfig struct {
	HTTPConfig `yaml:",inline"`

	// BaseURL is the query endpoint, e.g. "http://export.arxiv.org/api/query".
	BaseURL string `json:"base_url" yaml:"base_url"`
}

// MetaFormat selects the encoding of saved metadata files.
type MetaFormat string

const (
	MetaJSON MetaFormat = "json"
	MetaYAML MetaFormat = "yaml"
)

// DownloadConfig holds settings for the acquisition stage.
type DownloadConfig struct {
	HTTPConfig `yaml:",inline"`

	// OutputDir is where PDFs and metadata files are written.
	OutputDir string `json:"output_dir" yaml:"output_dir"`

	// NameTemplate names saved files; see acquire.FileName for placeholders.
	NameTemplate string `json:"name_template" yaml:"name_template"`

	// Delay is the pause between consecutive downloads.
	Delay time.Duration `json:"delay" yaml:"delay"`

	// MetaOnly saves metadata and skips the PDF. It overrides NoMeta.
	MetaOnly bool `json:"meta_only" yaml:"meta_only"`

	// NoMeta skips writing metadata files.
	NoMeta bool `json:"no_meta" yaml:"no_meta"`

	// MetaFormat selects json (default) or yaml metadata files.
	MetaFormat MetaFormat `json:"meta_format" yaml:"meta_format"`
}

// LibraryConfig holds settings for the local record of acquired articles.
type LibraryConfig struct {
	// Enabled controls whether acquisitions are recorded.
	Enabled bool `json:"enabled" yaml:"enabled"`

	// Path is the SQLite database file.
	Path string `json:"path" yaml:"path"`
}

// Config groups all stage configurations.
type Config struct {
	API      APIConfig      `json:"api" yaml:"api"`
	Download DownloadConfig `json:"download" yaml:"download"`
	Library  LibraryConfig  `json:"library" yaml:"library"`
}
