package source

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCacheKey(t *testing.T) {
	testcases := []struct {
		src    string
		prefix string
	}{
		{src: "https://example.com/data/prev.json", prefix: "https-example.com-data-prev.json-"},
		{src: "git::https://github.com/org/repo.git//docs/a.hcl?ref=v1.0.0", prefix: "git-https-github.com-org-repo.git-docs-a.hcl-ref-v1.0.0-"},
		{src: "s3::https://s3.amazonaws.com/bucket/doc.json", prefix: "s3-https-s3.amazonaws.com-bucket-doc.json-"},
	}

	for _, tc := range testcases {
		t.Run(tc.src, func(t *testing.T) {
			key := CacheKey(tc.src)
			assert.True(t, strings.HasPrefix(key, tc.prefix), "expected key with prefix %q, got %q", tc.prefix, key)
			assert.Len(t, key, len(tc.prefix)+8)
			assert.Equal(t, key, CacheKey(tc.src))
		})
	}

	assert.NotEqual(t, CacheKey("https://example.com/a.json"), CacheKey("https://example.com/a.json?x=1"))
}

func TestCacheDir(t *testing.T) {
	t.Setenv("VALKIT_CACHE_DIR", "/tmp/valkit-test-cache")
	dir, err := CacheDir()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/valkit-test-cache", dir)

	t.Setenv("VALKIT_CACHE_DIR", "")
	t.Setenv("HOME", "/home/tester")
	dir, err = CacheDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/home/tester", ".valkit", "cache"), dir)
}

func TestRead_LocalFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"a":1}`), 0644))

	data, err := Read(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, `{"a":1}`, string(data))
}

func TestRead_Stdin(t *testing.T) {
	prev := stdin
	stdin = strings.NewReader(`[1,2]`)
	defer func() { stdin = prev }()

	data, err := Read(context.Background(), Stdin)
	require.NoError(t, err)
	assert.Equal(t, `[1,2]`, string(data))
}

func TestRead_CacheHit(t *testing.T) {
	cacheDir := t.TempDir()
	t.Setenv("VALKIT_CACHE_DIR", cacheDir)

	src := "https://example.invalid/records.json"
	require.NoError(t, os.WriteFile(filepath.Join(cacheDir, CacheKey(src)), []byte(`{"cached":true}`), 0644))

	data, err := Read(context.Background(), src)
	require.NoError(t, err)
	assert.Equal(t, `{"cached":true}`, string(data))
}

func TestRead_FileURL(t *testing.T) {
	t.Setenv("VALKIT_CACHE_DIR", t.TempDir())

	path := filepath.Join(t.TempDir(), "remote.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"remote":1}`), 0644))

	data, err := Read(context.Background(), "file://"+path)
	require.NoError(t, err)
	assert.Equal(t, `{"remote":1}`, string(data))
}

func TestRead_Missing(t *testing.T) {
	t.Setenv("VALKIT_CACHE_DIR", t.TempDir())

	_, err := Read(context.Background(), "file://"+filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to download")
}

func TestFetch_InterruptedDownloadIsNotCached(t *testing.T) {
	cacheDir := t.TempDir()
	t.Setenv("VALKIT_CACHE_DIR", cacheDir)

	const body = `{"complete":true}`
	var requests int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			w.WriteHeader(http.StatusOK)
			return
		}
		if atomic.AddInt32(&requests, 1) == 1 {
			// Announce more bytes than are sent so the transfer breaks off.
			w.Header().Set("Content-Length", "1024")
			_, _ = w.Write([]byte(`{"compl`))
			return
		}
		_, _ = w.Write([]byte(body))
	}))
	defer server.Close()

	src := server.URL + "/doc.json"
	_, err := Fetch(context.Background(), src)
	require.Error(t, err)

	_, statErr := os.Stat(filepath.Join(cacheDir, CacheKey(src)))
	assert.True(t, os.IsNotExist(statErr), "expected no cached file after a failed download, got %v", statErr)

	data, err := Read(context.Background(), src)
	require.NoError(t, err)
	assert.Equal(t, body, string(data))
}
