// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package httputil provides the HTTP helpers shared by the fetch and
// download stages. Every call is a single attempt; nothing is retried.
package httputil

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/pdiddy/arxiv-cli/pkg/types"
)

// NewClient returns an HTTP client. A zero timeout keeps the transport default.
func NewClient(cfg types.HTTPConfig) *http.Client {
	c := &http.Client{}
	if cfg.Timeout > 0 {
		c.Timeout = cfg.Timeout
	}
	return c
}

// Get issues one GET to url with the given User-Agent and optional Accept
// header. Connection, DNS and similar failures come back as a
// types.KindTransport error. The caller owns the response body.
func Get(ctx context.Context, client *http.Client, url, userAgent, accept string) (*http.Response, error) {
	if client == nil {
		client = http.DefaultClient
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &types.Error{Op: "http.get", Kind: types.KindTransport, Err: fmt.Errorf("creating request: %w", err)}
	}
	if userAgent != "" {
		req.Header.Set("User-Agent", userAgent)
	}
	if accept != "" {
		req.Header.Set("Accept", accept)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, &types.Error{Op: "http.get", Kind: types.KindTransport, Err: err}
	}
	return resp, nil
}

// CheckStatus returns a types.KindProviderStatus error for any status other
// than 200. The body is drained and closed in that case.
func CheckStatus(op string, resp *http.Response) error {
	if resp.StatusCode == http.StatusOK {
		return nil
	}
	io.Copy(io.Discard, io.LimitReader(resp.Body, 64<<10))
	resp.Body.Close()
	return &types.Error{Op: op, Kind: types.KindProviderStatus, StatusCode: resp.StatusCode}
}

// ProgressFunc receives the running byte count and the expected total
// (-1 when the server sent no Content-Length).
type ProgressFunc func(done, total int64)

// ProgressReader reports every read to Report.
type ProgressReader struct {
	R      io.Reader
	Total  int64
	Report ProgressFunc

	done int64
	last time.Time
}

// ProgressInterval is the minimum time between intermediate progress reports. The
// final report at EOF is always sent.
var ProgressInterval = 100 * time.Millisecond

func (p *ProgressReader) Read(b []byte) (int, error) {
	n, err := p.R.Read(b)
	p.done += int64(n)
	if p.Report != nil {
		now := time.Now()
		if err == io.EOF || now.Sub(p.last) >= ProgressInterval {
			p.last = now
			p.Report(p.done, p.Total)
		}
	}
	return n, err
}

// Done returns the number of bytes read so far.
func (p *ProgressReader) Done() int64 { return p.done }
