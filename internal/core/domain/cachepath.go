package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"path"
	"strings"

	"go.trai.ch/zerr"
)

const httpsPrefix = "https://"

// URLToCachePath maps a remote URL to the relative path the Deno module cache
// stores it under: remote/https/<host>/<sha256 of path+query>.
//
// The layout is a compatibility contract with the runtime's own cache. A
// downstream prefetcher places bytes at exactly this path so the runtime can
// resolve them offline; any deviation silently breaks module resolution.
func URLToCachePath(rawURL string) (string, error) {
	if !strings.HasPrefix(rawURL, httpsPrefix) {
		err := zerr.With(ErrInvalidInput, "url", rawURL)
		return "", zerr.With(err, "reason", "only https URLs can be cached")
	}

	rest := strings.TrimPrefix(rawURL, httpsPrefix)
	// The fragment is never part of the hashed material, even when empty.
	if i := strings.IndexByte(rest, '#'); i >= 0 {
		rest = rest[:i]
	}

	host, urlPath, _ := strings.Cut(rest, "/")
	if host == "" {
		err := zerr.With(ErrInvalidInput, "url", rawURL)
		return "", zerr.With(err, "reason", "URL has no host")
	}
	urlPath = "/" + urlPath

	sum := sha256.Sum256([]byte(urlPath))
	return path.Join("remote", "https", host, hex.EncodeToString(sum[:])), nil
}

// GuessMediaType classifies a file path by extension into the media type the
// runtime records alongside cached modules. Unknown extensions fall back to
// text/plain; this function never fails.
func GuessMediaType(filePath string) string {
	switch strings.ToLower(path.Ext(filePath)) {
	case ".ts", ".tsx":
		return "text/typescript"
	case ".js", ".jsx", ".mjs":
		return "text/javascript"
	case ".json":
		return "application/json"
	case ".wasm":
		return "application/wasm"
	default:
		return "text/plain"
	}
}
