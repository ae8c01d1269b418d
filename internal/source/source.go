package source

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-getter"
	"github.com/ms-henglu/valkit/internal/log"
)

// Stdin is the source name that reads the document from standard input.
const Stdin = "-"

var stdin io.Reader = os.Stdin

// CacheDir returns the directory remote documents are downloaded into.
// It checks VALKIT_CACHE_DIR environment variable first, then defaults to ~/.valkit/cache.
func CacheDir() (string, error) {
	if dir := os.Getenv("VALKIT_CACHE_DIR"); dir != "" {
		return dir, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		cwd, wdErr := os.Getwd()
		if wdErr != nil {
			return "", fmt.Errorf("failed to get user home directory (%v) and current working directory (%w)", err, wdErr)
		}
		log.Warn(fmt.Sprintf("Failed to get user home directory: %v. Falling back to current directory for cache. Set VALKIT_CACHE_DIR to specify a custom cache location.", err))
		return filepath.Join(cwd, ".valkit", "cache"), nil
	}
	return filepath.Join(homeDir, ".valkit", "cache"), nil
}

// Read returns the content of src. A local file is read in place, "-" reads
// standard input, and any other address is downloaded with go-getter.
func Read(ctx context.Context, src string) ([]byte, error) {
	if src == Stdin {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		return data, nil
	}

	if info, err := os.Stat(src); err == nil && !info.IsDir() {
		data, err := os.ReadFile(src)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", src, err)
		}
		return data, nil
	}

	path, err := Fetch(ctx, src)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return data, nil
}

// Fetch downloads src into the cache and returns the path of the cached file.
// A document already in the cache is not downloaded again.
func Fetch(ctx context.Context, src string) (string, error) {
	cacheDir, err := CacheDir()
	if err != nil {
		return "", err
	}

	cachePath := filepath.Join(cacheDir, CacheKey(src))
	if _, err := os.Stat(cachePath); err == nil {
		log.Debug("Cache hit for %s (%s)", src, cachePath)
		return cachePath, nil
	}

	if err := os.MkdirAll(cacheDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create cache directory: %w", err)
	}

	log.Debug("Downloading %s to cache...", src)
	client := &getter.Client{
		Ctx:  ctx,
		Src:  src,
		Dst:  cachePath,
		Mode: getter.ClientModeFile,
	}
	if err := client.Get(); err != nil {
		if rmErr := os.RemoveAll(cachePath); rmErr != nil {
			log.Warn(fmt.Sprintf("Failed to remove partial download %s: %v", cachePath, rmErr))
		}
		return "", fmt.Errorf("failed to download %s: %w", src, err)
	}
	return cachePath, nil
}

// CacheKey returns a human-readable and unique file name for src.
// https://example.com/a/b.json -> https-example.com-a-b.json-<hash>
func CacheKey(src string) string {
	readable := strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':', '?', '*', '"', '<', '>', '|', '&', '=':
			return '-'
		}
		return r
	}, src)
	for strings.Contains(readable, "--") {
		readable = strings.ReplaceAll(readable, "--", "-")
	}
	readable = strings.Trim(readable, "-")

	fullHash := hashString(src)
	return fmt.Sprintf("%s-%s", readable, fullHash[:8])
}

func hashString(s string) string {
	h := sha256.New()
	h.Write([]byte(s))
	return hex.EncodeToString(h.Sum(nil))
}
