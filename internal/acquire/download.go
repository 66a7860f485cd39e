// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package acquire

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/pdiddy/arxiv-cli/internal/httputil"
)

// Download streams url to destPath through a temporary file in the same
// directory, renaming it into place only after the body is fully written.
// progress may be nil.
func Download(ctx context.Context, client *http.Client, url, destPath, userAgent string, progress httputil.ProgressFunc) (int64, error) {
	resp, err := httputil.Get(ctx, client, url, userAgent, "application/pdf")
	if err != nil {
		return 0, err
	}
	if err := httputil.CheckStatus("acquire.download", resp); err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	tmpFile, err := os.CreateTemp(filepath.Dir(destPath), ".download-*.tmp")
	if err != nil {
		return 0, fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	body := &httputil.ProgressReader{R: resp.Body, Total: resp.ContentLength, Report: progress}
	n, copyErr := io.Copy(tmpFile, body)
	closeErr := tmpFile.Close()
	if copyErr != nil {
		os.Remove(tmpPath)
		return n, fmt.Errorf("writing download: %w", copyErr)
	}
	if closeErr != nil {
		os.Remove(tmpPath)
		return n, fmt.Errorf("closing temp file: %w", closeErr)
	}

	if err := os.Rename(tmpPath, destPath); err != nil {
		os.Remove(tmpPath)
		return n, fmt.Errorf("renaming temp file: %w", err)
	}
	return n, nil
}
