//go:build !cgo

package frontend

import (
	"context"
	"errors"
)

// ErrNoCGO is returned when parsing is unavailable due to missing CGO.
var ErrNoCGO = errors.New("translation unit parsing requires CGO (tree-sitter)")

// Parser wraps tree-sitter parsing functionality.
// This is a stub implementation for non-CGO builds.
type Parser struct{}

// NewParser creates a new tree-sitter parser.
// Returns nil when CGO is disabled.
func NewParser() *Parser {
	return nil
}

// ParseFile reads and parses one translation unit from disk.
// Stub implementation returns an error.
func (p *Parser) ParseFile(ctx context.Context, path string, overrides map[string]string) (*TranslationUnit, error) {
	return nil, ErrNoCGO
}

// ParseSource parses source bytes as one translation unit.
// Stub implementation returns an error.
func (p *Parser) ParseSource(ctx context.Context, path string, source []byte, lang Language) (*TranslationUnit, error) {
	return nil, ErrNoCGO
}

// IsAvailable returns whether translation unit parsing is available.
// Returns false when CGO is disabled.
func IsAvailable() bool {
	return false
}
