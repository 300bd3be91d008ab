// Package source loads the draft document from its backing resource.
package source

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"draftboard/internal/draft"
)

// Source loads a draft document. Implementations return an error for any
// unreadable or unparseable resource; callers decide how to surface it.
type Source interface {
	Load(ctx context.Context) (draft.Document, error)
}

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// HTTPSource fetches the document over HTTP with caching disabled.
type HTTPSource struct {
	url    string
	client httpDoer
}

// NewHTTPSource builds a source for the given URL. A nil client falls
// back to a default with the provided timeout; zero means no timeout.
func NewHTTPSource(url string, client *http.Client, timeout time.Duration) *HTTPSource {
	if client == nil {
		client = &http.Client{Timeout: timeout}
	}
	return &HTTPSource{url: url, client: client}
}

// Load performs the GET and decodes the body.
func (s *HTTPSource) Load(ctx context.Context) (draft.Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return draft.Document{}, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Cache-Control", "no-cache")
	req.Header.Set("Pragma", "no-cache")

	resp, err := s.client.Do(req)
	if err != nil {
		return draft.Document{}, fmt.Errorf("fetch draft: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return draft.Document{}, fmt.Errorf("fetch draft: unexpected status %d: %s",
			resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var doc draft.Document
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		return draft.Document{}, fmt.Errorf("decode draft: %w", err)
	}
	return doc, nil
}

// FileSource reads the document from a local draft.json.
type FileSource struct {
	path string
}

// NewFileSource builds a source reading from path.
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

// Load reads and decodes the file.
func (s *FileSource) Load(_ context.Context) (draft.Document, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return draft.Document{}, fmt.Errorf("read draft: %w", err)
	}
	var doc draft.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return draft.Document{}, fmt.Errorf("decode draft: %w", err)
	}
	return doc, nil
}
