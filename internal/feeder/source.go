// Package feeder aggregates text from local files and web pages into a
// single prompt and forwards it to a chat completion endpoint.
package feeder

import (
	"errors"
	"path/filepath"
	"strings"
)

// SourceContent is one loaded input: the label keeps the original path or
// URL so the assembled prompt stays traceable back to its source.
type SourceContent struct {
	Label string
	Text  string
}

// SourceType is resolved once per input from its extension (or URL scheme)
// and selects the extraction handler.
type SourceType int

const (
	TypeText SourceType = iota // .txt, .md, .rst
	TypeCSV
	TypeDocx
	TypePDF
	TypeRaw // unrecognized extension, best-effort UTF-8
	TypeURL
)

var (
	ErrInputNotFound    = errors.New("input not found")
	ErrFetchUnsupported = errors.New("URL fetching is not available")
	ErrEmptyContent     = errors.New("no textual content extracted")
)

// ResolveType maps an input reference to its source type.
func ResolveType(ref string) SourceType {
	if strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
		return TypeURL
	}
	switch strings.ToLower(filepath.Ext(ref)) {
	case ".txt", ".md", ".rst":
		return TypeText
	case ".csv":
		return TypeCSV
	case ".docx":
		return TypeDocx
	case ".pdf":
		return TypePDF
	default:
		return TypeRaw
	}
}
