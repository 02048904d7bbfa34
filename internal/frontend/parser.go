//go:build cgo

package frontend

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/c"
	"github.com/smacker/go-tree-sitter/cpp"
)

// Parser wraps tree-sitter for C/C++ translation unit parsing.
type Parser struct {
	parser *sitter.Parser
}

// NewParser creates a new tree-sitter parser.
func NewParser() *Parser {
	return &Parser{
		parser: sitter.NewParser(),
	}
}

// ParseFile reads and parses one translation unit from disk. The language is
// detected from the file extension, subject to the overrides map.
func (p *Parser) ParseFile(ctx context.Context, path string, overrides map[string]string) (*TranslationUnit, error) {
	ext := filepath.Ext(path)
	lang, ok := LanguageFromExtension(ext, overrides)
	if !ok {
		return nil, fmt.Errorf("unsupported file extension: %s", ext)
	}

	source, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	return p.ParseSource(ctx, path, source, lang)
}

// ParseSource parses source bytes as one translation unit.
func (p *Parser) ParseSource(ctx context.Context, path string, source []byte, lang Language) (*TranslationUnit, error) {
	tsLang, err := getLanguage(lang)
	if err != nil {
		return nil, err
	}

	p.parser.SetLanguage(tsLang)
	tree, err := p.parser.ParseCtx(ctx, nil, source)
	if err != nil {
		return nil, fmt.Errorf("parse error: %w", err)
	}

	return &TranslationUnit{
		Path:     path,
		Language: lang,
		Root:     wrapNode(tree.RootNode(), source),
	}, nil
}

// getLanguage returns the tree-sitter Language for a given language identifier.
func getLanguage(lang Language) (*sitter.Language, error) {
	switch lang {
	case LangC:
		return c.GetLanguage(), nil
	case LangCPP:
		return cpp.GetLanguage(), nil
	default:
		return nil, fmt.Errorf("unsupported language: %s", lang)
	}
}

// sitterNode adapts a tree-sitter node to the Node surface.
type sitterNode struct {
	node   *sitter.Node
	source []byte
}

func wrapNode(n *sitter.Node, source []byte) Node {
	if n == nil {
		return nil
	}
	return &sitterNode{node: n, source: source}
}

func (s *sitterNode) Kind() string {
	return s.node.Type()
}

func (s *sitterNode) ChildCount() int {
	return int(s.node.ChildCount())
}

func (s *sitterNode) Child(i int) Node {
	return wrapNode(s.node.Child(i), s.source)
}

func (s *sitterNode) ChildByField(name string) Node {
	return wrapNode(s.node.ChildByFieldName(name), s.source)
}

func (s *sitterNode) Text() string {
	return string(s.source[s.node.StartByte():s.node.EndByte()])
}

func (s *sitterNode) StartLine() int {
	return int(s.node.StartPoint().Row) + 1
}

func (s *sitterNode) StartColumn() int {
	return int(s.node.StartPoint().Column) + 1
}

// IsAvailable returns whether translation unit parsing is available.
// Returns true when CGO is enabled.
func IsAvailable() bool {
	return true
}
