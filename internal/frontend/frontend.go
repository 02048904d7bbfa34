// Package frontend parses C and C++ translation units and exposes the minimal
// AST surface the analyzer consumes: function declarations with a display name,
// a source location, and a traversable body.
package frontend

import (
	"fmt"
	"strings"

	"ccx/internal/paths"
)

// Language identifies a supported source language.
type Language string

const (
	LangC   Language = "c"
	LangCPP Language = "cpp"
)

// LanguageFromExtension returns the Language for a file extension.
// The overrides map (extension -> language name) takes precedence and lets a
// project route unusual extensions to a grammar.
func LanguageFromExtension(ext string, overrides map[string]string) (Language, bool) {
	ext = strings.ToLower(ext)
	if overrides != nil {
		if name, ok := overrides[ext]; ok {
			switch Language(name) {
			case LangC, LangCPP:
				return Language(name), true
			}
		}
	}
	switch ext {
	case ".c":
		return LangC, true
	case ".cpp", ".cc", ".cxx", ".c++":
		return LangCPP, true
	case ".h":
		return LangC, true
	case ".hpp", ".hh", ".hxx":
		return LangCPP, true
	default:
		return "", false
	}
}

// Node is the child-enumeration surface the analyzer consumes. Every syntax
// node answers its grammar kind and enumerates its structural children; Child
// may return nil for holes in the underlying tree.
type Node interface {
	// Kind returns the grammar node type, e.g. "if_statement".
	Kind() string

	// ChildCount returns the number of structural children.
	ChildCount() int

	// Child returns the i-th child, or nil.
	Child(i int) Node

	// ChildByField returns the child bound to a grammar field name, or nil.
	ChildByField(name string) Node

	// Text returns the source text covered by the node.
	Text() string

	// StartLine returns the 1-based line of the node's first byte.
	StartLine() int

	// StartColumn returns the 1-based column of the node's first byte.
	StartColumn() int
}

// Location is the source position of a declaration, resolved to an
// originating file plus a system-header flag.
type Location struct {
	File           string
	Line           int
	Column         int
	InSystemHeader bool
}

// IsValid reports whether the location resolved to an originating file.
func (l Location) IsValid() bool {
	return l.File != ""
}

// String renders the location in the conventional file:line:col form.
func (l Location) String() string {
	if !l.IsValid() {
		return "<invalid>"
	}
	return fmt.Sprintf("%s:%d:%d", l.File, l.Line, l.Column)
}

// FunctionDecl is a function declaration discovered in a translation unit.
// Body is nil for pure declarations (prototypes without a definition).
type FunctionDecl struct {
	Name string
	Loc  Location
	Body Node
}

// TranslationUnit is one parsed source file.
type TranslationUnit struct {
	Path     string
	Language Language
	Root     Node
}

// ResolveLocation builds the Location for a node defined in the given file.
// A file under one of systemIncludeDirs is flagged as a system header.
func ResolveLocation(path string, node Node, systemIncludeDirs []string) Location {
	loc := Location{File: path}
	if node != nil {
		loc.Line = node.StartLine()
		loc.Column = node.StartColumn()
	}
	for _, dir := range systemIncludeDirs {
		if dir == "" {
			continue
		}
		if paths.IsWithinDir(path, dir) {
			loc.InSystemHeader = true
			break
		}
	}
	return loc
}
