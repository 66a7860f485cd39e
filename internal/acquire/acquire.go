// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package acquire resolves command-line arguments to arXiv entries, saves
// their metadata and downloads their PDFs.
package acquire

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/arxiv-cli/internal/httputil"
	"github.com/pdiddy/arxiv-cli/internal/logger"
	"github.com/pdiddy/arxiv-cli/internal/query"
	"github.com/pdiddy/arxiv-cli/pkg/types"
)

var (
	// ErrNoSuchArticle is returned when the lookup yields no entries.
	ErrNoSuchArticle = errors.New("no such article")

	// ErrNoPDFLink is returned when the entry has no link titled "pdf".
	ErrNoPDFLink = errors.New("server refused to return the link to pdf of this article")
)

// Fetcher is the part of the metadata client acquisition needs.
type Fetcher interface {
	FetchByIDs(ctx context.Context, ids []string, start, maxResults int) (*types.FeedResult, error)
	FetchByQuery(ctx context.Context, q string, start, maxResults int) (*types.FeedResult, error)
}

// Recorder stores a record of each acquired article.
type Recorder interface {
	Record(ctx context.Context, a types.Article) error
}

// Acquirer downloads articles named by identifier or title.
type Acquirer struct {
	Fetcher Fetcher
	HTTP    *http.Client
	Config  types.DownloadConfig

	// Recorder is optional.
	Recorder Recorder

	// Out receives per-article status lines. Nil discards them.
	Out io.Writer

	// Progress is passed to Download. Nil disables progress reporting.
	Progress httputil.ProgressFunc
}

// BatchResult holds the outcome of a batch acquisition run.
type BatchResult struct {
	Downloaded int
	Skipped    int
	Failed     int
	Articles   []*types.Article
}

// Total returns the total number of arguments processed.
func (r BatchResult) Total() int {
	return r.Downloaded + r.Skipped + r.Failed
}

// HasFailures reports whether any article failed.
func (r BatchResult) HasFailures() bool {
	return r.Failed > 0
}

// Lookup fetches the single best entry for arg: an id_list request for an
// identifier, otherwise a title search.
func Lookup(ctx context.Context, f Fetcher, arg string) (*types.FeedResult, IdentifierType, error) {
	idType, normalized := Classify(arg)
	if idType == TypeArxiv {
		feed, err := f.FetchByIDs(ctx, []string{normalized}, 0, 1)
		return feed, idType, err
	}

	q, err := query.Compile(query.Term{Field: query.FieldTitle, Text: query.Phrase(normalized)})
	if err != nil {
		return nil, idType, err
	}
	feed, err := f.FetchByQuery(ctx, q, 0, 1)
	return feed, idType, err
}

// Acquire resolves one argument, writes its metadata and downloads the PDF.
// If the PDF is already on disk the download is skipped.
func (a *Acquirer) Acquire(ctx context.Context, arg string) (article *types.Article, skipped bool, err error) {
	w := a.out()
	cfg := a.Config

	feed, idType, err := Lookup(ctx, a.Fetcher, arg)
	prompt := promptName(idType, arg)
	if err != nil {
		return nil, false, fmt.Errorf("%s: %w", prompt, err)
	}
	if len(feed.Entries) == 0 {
		return nil, false, fmt.Errorf("%s: %w", prompt, ErrNoSuchArticle)
	}
	entry := feed.Entries[0]

	dir := cfg.OutputDir
	if dir == "" {
		dir = "."
	}
	name := FileName(cfg.NameTemplate, entry)
	pdfPath := filepath.Join(dir, name+".pdf")

	article = &types.Article{
		ID:        entry.ID(),
		URL:       entry.URL,
		Title:     strings.Join(strings.Fields(entry.Title), " "),
		Authors:   entry.Authors,
		Category:  entry.Category.Term(),
		Published: entry.Published,
	}

	var pdfURL string
	if !cfg.MetaOnly {
		if _, statErr := os.Stat(pdfPath); statErr == nil {
			fmt.Fprintf(w, "skipped: %s (already exists)\n", name)
			article.PDFPath = pdfPath
			if link, ok := entry.PDFLink(); ok {
				article.PDFURL, _ = link.Get("href")
			}
			a.record(ctx, w, article)
			return article, true, nil
		}
		link, ok := entry.PDFLink()
		if !ok {
			return nil, false, fmt.Errorf("%s: %w", prompt, ErrNoPDFLink)
		}
		pdfURL, _ = link.Get("href")
		if pdfURL == "" {
			return nil, false, fmt.Errorf("%s: %w", prompt, ErrNoPDFLink)
		}
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, false, fmt.Errorf("creating directory %s: %w", dir, err)
	}

	if !cfg.NoMeta || cfg.MetaOnly {
		metaPath := filepath.Join(dir, name+MetaExt(cfg.MetaFormat))
		if err := WriteMetadata(metaPath, feed, cfg.MetaFormat); err != nil {
			return nil, false, fmt.Errorf("writing metadata for %s: %w", name, err)
		}
		article.MetaPath = metaPath
	}

	if !cfg.MetaOnly {
		fmt.Fprintf(w, "downloading: %s\n", name)
		n, err := Download(ctx, a.HTTP, pdfURL, pdfPath, cfg.UserAgent, a.Progress)
		if err != nil {
			return nil, false, fmt.Errorf("downloading %s: %w", name, err)
		}
		logger.L().Debug("acquire.downloaded", "id", article.ID, "bytes", n, "path", pdfPath)
		article.PDFURL = pdfURL
		article.PDFPath = pdfPath
		fmt.Fprintf(w, "saved: %s as %s\n", prompt, name+".pdf")
	} else {
		fmt.Fprintf(w, "saved: %s metadata as %s\n", prompt, filepath.Base(article.MetaPath))
	}

	a.record(ctx, w, article)
	return article, false, nil
}

// record stamps the acquisition time and stores the article. A store
// failure is reported on w and does not fail the acquisition.
func (a *Acquirer) record(ctx context.Context, w io.Writer, article *types.Article) {
	article.AcquiredAt = time.Now().UTC()
	if a.Recorder == nil {
		return
	}
	if err := a.Recorder.Record(ctx, *article); err != nil {
		fmt.Fprintf(w, "  warning: library record failed: %v\n", err)
	}
}

// AcquireBatch processes every argument, continuing after individual
// failures and pausing Config.Delay between consecutive articles.
func (a *Acquirer) AcquireBatch(ctx context.Context, args []string) BatchResult {
	w := a.out()
	var result BatchResult
	for i, arg := range args {
		if i > 0 && a.Config.Delay > 0 {
			select {
			case <-ctx.Done():
				result.Failed += len(args) - i
				fmt.Fprintf(w, "cancelled: %v\n", ctx.Err())
				return result
			case <-time.After(a.Config.Delay):
			}
		}
		article, wasSkipped, err := a.Acquire(ctx, arg)
		if err != nil {
			fmt.Fprintf(w, "failed:  %v\n", err)
			result.Failed++
			continue
		}
		if wasSkipped {
			result.Skipped++
		} else {
			result.Downloaded++
		}
		result.Articles = append(result.Articles, article)
	}
	fmt.Fprintf(w, "\nBatch summary: %d downloaded, %d skipped, %d failed (total: %d)\n",
		result.Downloaded, result.Skipped, result.Failed, result.Total())
	return result
}

func (a *Acquirer) out() io.Writer {
	if a.Out == nil {
		return io.Discard
	}
	return a.Out
}

func promptName(t IdentifierType, arg string) string {
	if t == TypeArxiv {
		return "[arXiv:" + strings.TrimSpace(arg) + "]"
	}
	return `"` + strings.TrimSpace(arg) + `"`
}

// MetaExt returns the metadata file suffix for format.
func MetaExt(format types.MetaFormat) string {
	if format == types.MetaYAML {
		return ".metainfo.yaml"
	}
	return ".metainfo.json"
}

// WriteMetadata encodes v as indented JSON (the default) or YAML at path.
func WriteMetadata(path string, v any, format types.MetaFormat) error {
	var data []byte
	var err error
	switch format {
	case types.MetaYAML:
		data, err = yaml.Marshal(v)
	case types.MetaJSON, "":
		data, err = json.MarshalIndent(v, "", "    ")
		data = append(data, '\n')
	default:
		return fmt.Errorf("unknown metadata format %q", format)
	}
	if err != nil {
		return fmt.Errorf("marshaling metadata: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}
