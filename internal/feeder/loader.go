package feeder

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Fetcher turns a URL into extracted plain text. It is a capability: a
// Loader built without one rejects URL inputs instead of failing mid-run.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (string, error)
}

// Loader produces SourceContent from input references, one at a time, in
// input order.
type Loader struct {
	fetcher  Fetcher
	maxChars int
}

// NewLoader creates a Loader. maxChars caps the normalized text per source;
// 0 disables truncation. fetcher may be nil when URL inputs are not needed.
func NewLoader(fetcher Fetcher, maxChars int) *Loader {
	return &Loader{fetcher: fetcher, maxChars: maxChars}
}

// LoadAll loads every reference in order. The first failure aborts.
func (l *Loader) LoadAll(ctx context.Context, refs []string) ([]SourceContent, error) {
	sources := make([]SourceContent, 0, len(refs))
	for _, ref := range refs {
		src, err := l.Load(ctx, ref)
		if err != nil {
			return nil, err
		}
		sources = append(sources, src)
	}
	return sources, nil
}

// Load extracts, normalizes and truncates a single input.
func (l *Loader) Load(ctx context.Context, ref string) (SourceContent, error) {
	var label, text string

	switch t := ResolveType(ref); t {
	case TypeURL:
		if l.fetcher == nil {
			return SourceContent{}, fmt.Errorf("%w (input %s)", ErrFetchUnsupported, ref)
		}
		fetched, err := l.fetcher.Fetch(ctx, ref)
		if err != nil {
			return SourceContent{}, err
		}
		label, text = ref, fetched
	default:
		path, err := filepath.Abs(ref)
		if err != nil {
			return SourceContent{}, fmt.Errorf("failed to resolve %s: %w", ref, err)
		}
		if _, err := os.Stat(path); err != nil {
			if os.IsNotExist(err) {
				return SourceContent{}, fmt.Errorf("%w: %s", ErrInputNotFound, ref)
			}
			return SourceContent{}, err
		}
		extracted, err := extractFile(t, path)
		if err != nil {
			return SourceContent{}, err
		}
		label, text = path, extracted
	}

	text = truncate(Normalize(text), l.maxChars)
	if strings.TrimSpace(text) == "" {
		return SourceContent{}, fmt.Errorf("%w from %s", ErrEmptyContent, ref)
	}
	return SourceContent{Label: label, Text: text}, nil
}

// truncate cuts text down to maxChars characters. Runes, not bytes, so a
// multi-byte character is never split.
func truncate(text string, maxChars int) string {
	if maxChars <= 0 {
		return text
	}
	runes := []rune(text)
	if len(runes) <= maxChars {
		return text
	}
	return string(runes[:maxChars])
}
