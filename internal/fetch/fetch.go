// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The protectconf Authors

// Package fetch retrieves user configuration documents from the sources
// accepted by the resolve and validate operations: local paths, http(s)
// URLs, and standard input ("-").
package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

var (
	// ErrTooLarge is returned when a document exceeds the configured size
	// cap. Oversized documents are rejected, never truncated.
	ErrTooLarge = errors.New("document exceeds size limit")

	// ErrHTTPStatus is the sentinel matched by every [HTTPStatusError].
	ErrHTTPStatus = errors.New("unexpected http status")
)

// HTTPStatusError reports a non-2xx response for a remote document.
type HTTPStatusError struct {
	URL        string
	StatusCode int
}

func (e *HTTPStatusError) Error() string {
	return fmt.Sprintf("fetch %s: http %d: %s", e.URL, e.StatusCode, http.StatusText(e.StatusCode))
}

// Is reports whether target is [ErrHTTPStatus], so callers can match the
// whole class with errors.Is.
func (e *HTTPStatusError) Is(target error) bool { return target == ErrHTTPStatus }

// Config carries the tunables for a [Fetcher].
type Config struct {
	// Timeout bounds a single fetch including retries. Zero selects a
	// 15 second default.
	Timeout time.Duration
	// MaxBodyBytes caps the document size. Zero selects an 8 MiB default.
	MaxBodyBytes int64
	// Retries is the number of additional attempts after a network error
	// or a 5xx response.
	Retries int
	// UserAgent is sent with http(s) requests when non-empty.
	UserAgent string
	// Stdin is the reader used for the "-" source. Defaults to os.Stdin.
	Stdin io.Reader
}

// Fetcher retrieves configuration documents. Construct with [New]; the zero
// value is not usable.
type Fetcher struct {
	client  *resty.Client
	maxBody int64
	stdin   io.Reader
}

// New constructs a [Fetcher] from cfg, filling unset fields with defaults.
func New(cfg Config) *Fetcher {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}
	if cfg.MaxBodyBytes <= 0 {
		cfg.MaxBodyBytes = 8 << 20
	}
	if cfg.Stdin == nil {
		cfg.Stdin = os.Stdin
	}

	cli := resty.New().
		SetTimeout(cfg.Timeout).
		SetRetryCount(cfg.Retries).
		AddRetryCondition(func(r *resty.Response, err error) bool {
			return err != nil || r.StatusCode() >= http.StatusInternalServerError
		})
	if cfg.UserAgent != "" {
		cli.SetHeader("User-Agent", cfg.UserAgent)
	}

	return &Fetcher{client: cli, maxBody: cfg.MaxBodyBytes, stdin: cfg.Stdin}
}

// Fetch returns the raw bytes of the document named by source. A source of
// "-" reads standard input, "http://" and "https://" sources are fetched
// with a GET request, and everything else is treated as a local file path.
func (f *Fetcher) Fetch(ctx context.Context, source string) ([]byte, error) {
	switch {
	case source == "-":
		return f.readStdin()
	case strings.HasPrefix(source, "http://"), strings.HasPrefix(source, "https://"):
		return f.fetchHTTP(ctx, source)
	default:
		return f.readFile(source)
	}
}

func (f *Fetcher) readStdin() ([]byte, error) {
	// Read one byte past the cap so an exactly-at-cap document passes.
	data, err := io.ReadAll(io.LimitReader(f.stdin, f.maxBody+1))
	if err != nil {
		return nil, fmt.Errorf("read stdin: %w", err)
	}
	if int64(len(data)) > f.maxBody {
		return nil, fmt.Errorf("stdin: %w", ErrTooLarge)
	}
	return data, nil
}

func (f *Fetcher) readFile(path string) ([]byte, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if info.Size() > f.maxBody {
		return nil, fmt.Errorf("%s: %w", path, ErrTooLarge)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return data, nil
}

func (f *Fetcher) fetchHTTP(ctx context.Context, url string) ([]byte, error) {
	resp, err := f.client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/yaml, text/yaml, */*").
		Get(url)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", url, err)
	}
	if resp.StatusCode() < http.StatusOK || resp.StatusCode() >= http.StatusMultipleChoices {
		return nil, &HTTPStatusError{URL: url, StatusCode: resp.StatusCode()}
	}

	body := resp.Body()
	if int64(len(body)) > f.maxBody {
		return nil, fmt.Errorf("%s: %w", url, ErrTooLarge)
	}
	return body, nil
}
