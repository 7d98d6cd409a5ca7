package adapters

import (
	"context"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"android-provision/internal/ports"
	"android-provision/internal/shared"
)

const defaultHTTPTimeout = 10 * time.Minute
const defaultHTTPRetries = 3
const defaultHTTPRetryDelay = 500 * time.Millisecond
const maxHTTPRetryDelay = 5 * time.Second

type HTTPDownloaderAdapter struct {
	Timeout   time.Duration
	Retries   int
	BaseDelay time.Duration
}

func NewHTTPDownloaderAdapter() HTTPDownloaderAdapter {
	return HTTPDownloaderAdapter{
		Timeout:   defaultHTTPTimeout,
		Retries:   defaultHTTPRetries,
		BaseDelay: defaultHTTPRetryDelay,
	}
}

func (a HTTPDownloaderAdapter) Fetch(ctx context.Context, url string, dest string) error {
	resp, err := a.doRequest(ctx, url)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	file, err := os.Create(dest)
	if err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to create download file " + dest).
			WithCause(err)
	}
	defer file.Close()
	if _, err := io.Copy(file, resp.Body); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to write download " + dest).
			WithCause(err)
	}
	return nil
}

func (a HTTPDownloaderAdapter) doRequest(ctx context.Context, url string) (*http.Response, error) {
	timeout := a.Timeout
	if timeout <= 0 {
		timeout = defaultHTTPTimeout
	}
	retries := a.Retries
	if retries <= 0 {
		retries = defaultHTTPRetries
	}
	client := &http.Client{Timeout: timeout}

	var lastErr error
	for attempt := 0; attempt < retries; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg("failed to build download request").
				WithCause(err)
		}
		resp, err := client.Do(req)
		if err != nil {
			lastErr = err
			if ctx.Err() != nil {
				break
			}
			time.Sleep(a.retryDelay(attempt))
			continue
		}
		if (resp.StatusCode >= http.StatusInternalServerError || resp.StatusCode == http.StatusTooManyRequests) && attempt < retries-1 {
			resp.Body.Close()
			lastErr = shared.HTTPStatusError(resp.StatusCode, url)
			time.Sleep(a.retryDelay(attempt))
			continue
		}
		if resp.StatusCode != http.StatusOK {
			resp.Body.Close()
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg("download failed").
				WithCause(shared.HTTPStatusError(resp.StatusCode, url))
		}
		return resp, nil
	}
	return nil, errbuilder.New().
		WithCode(errbuilder.CodeInternal).
		WithMsg("download failed after retries").
		WithCause(lastErr)
}

func (a HTTPDownloaderAdapter) retryDelay(attempt int) time.Duration {
	base := a.BaseDelay
	if base <= 0 {
		base = defaultHTTPRetryDelay
	}
	delay := base * time.Duration(attempt+1)
	if delay > maxHTTPRetryDelay {
		delay = maxHTTPRetryDelay
	}
	return delay
}

var _ ports.DownloaderPort = HTTPDownloaderAdapter{}
