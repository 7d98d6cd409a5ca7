package adapters

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDownloader() HTTPDownloaderAdapter {
	return HTTPDownloaderAdapter{
		Timeout:   5 * time.Second,
		Retries:   3,
		BaseDelay: time.Millisecond,
	}
}

func TestFetchWritesFile(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("payload"))
	}))
	defer server.Close()

	dest := filepath.Join(t.TempDir(), "artifact.zip")
	require.NoError(t, testDownloader().Fetch(t.Context(), server.URL, dest))
	data, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, "payload", string(data))
}

func TestFetchRetriesServerErrors(t *testing.T) {
	var attempts atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if attempts.Add(1) < 3 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		_, _ = w.Write([]byte("payload"))
	}))
	defer server.Close()

	dest := filepath.Join(t.TempDir(), "artifact.zip")
	require.NoError(t, testDownloader().Fetch(t.Context(), server.URL, dest))
	assert.Equal(t, int32(3), attempts.Load())
}

func TestFetchFailsOnNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	err := testDownloader().Fetch(t.Context(), server.URL, filepath.Join(t.TempDir(), "artifact.zip"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "download failed")
}

func TestFetchExhaustsRetries(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	err := testDownloader().Fetch(t.Context(), server.URL, filepath.Join(t.TempDir(), "artifact.zip"))
	require.Error(t, err)
}
