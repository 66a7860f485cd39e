// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package httputil

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/arxiv-cli/pkg/types"
)

func TestGet_SetsHeadersAndSingleAttempt(t *testing.T) {
	var calls int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		assert.Equal(t, "test-agent/1", r.Header.Get("User-Agent"))
		assert.Equal(t, "application/pdf", r.Header.Get("Accept"))
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer ts.Close()

	resp, err := Get(context.Background(), ts.Client(), ts.URL, "test-agent/1", "application/pdf")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestGet_TransportFailure(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {}))
	url := ts.URL
	ts.Close()

	_, err := Get(context.Background(), ts.Client(), url, "ua", "")
	require.Error(t, err)
	assert.True(t, types.IsKind(err, types.KindTransport))
	assert.True(t, errors.Is(err, types.ErrTransport))
}

func TestCheckStatus(t *testing.T) {
	tests := []struct {
		code    int
		wantErr bool
	}{
		{http.StatusOK, false},
		{http.StatusNotFound, true},
		{http.StatusInternalServerError, true},
		{http.StatusServiceUnavailable, true},
	}
	for _, tt := range tests {
		t.Run(http.StatusText(tt.code), func(t *testing.T) {
			resp := &http.Response{StatusCode: tt.code, Body: io.NopCloser(strings.NewReader("body"))}
			err := CheckStatus("test", resp)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, types.ErrProviderStatus)
			assert.Equal(t, tt.code, types.StatusCode(err))
		})
	}
}

func TestNewClient(t *testing.T) {
	assert.Zero(t, NewClient(types.HTTPConfig{}).Timeout)
	assert.Equal(t, 5*time.Second, NewClient(types.HTTPConfig{Timeout: 5 * time.Second}).Timeout)
}

func TestProgressReader(t *testing.T) {
	old := ProgressInterval
	ProgressInterval = 0
	defer func() { ProgressInterval = old }()

	var reports []int64
	p := &ProgressReader{
		R:      strings.NewReader(strings.Repeat("x", 10)),
		Total:  10,
		Report: func(done, total int64) { reports = append(reports, done); assert.Equal(t, int64(10), total) },
	}
	data, err := io.ReadAll(p)
	require.NoError(t, err)
	assert.Len(t, data, 10)
	assert.Equal(t, int64(10), p.Done())
	require.NotEmpty(t, reports)
	assert.Equal(t, int64(10), reports[len(reports)-1])
}
