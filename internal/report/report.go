// Package report accumulates per-function complexity for one analysis run and
// serializes it to the persisted report sink.
package report

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/klauspost/compress/gzip"
)

// ComplexityMap maps function display names to computed complexity values.
// At most one entry per name per run: when a name recurs (overloads sharing a
// display name, repeated lambdas), the later computation overwrites the
// earlier one. Owned exclusively by one analysis run.
type ComplexityMap struct {
	values map[string]int
}

// NewComplexityMap creates an empty map for a fresh analysis run.
func NewComplexityMap() *ComplexityMap {
	return &ComplexityMap{values: make(map[string]int)}
}

// Record stores a function's complexity, overwriting any previous value
// recorded under the same name.
func (m *ComplexityMap) Record(name string, complexity int) {
	m.values[name] = complexity
}

// Get returns the recorded complexity for a function name.
func (m *ComplexityMap) Get(name string) (int, bool) {
	v, ok := m.values[name]
	return v, ok
}

// Len returns the number of recorded functions.
func (m *ComplexityMap) Len() int {
	return len(m.values)
}

// Entry is one function's line in the report.
type Entry struct {
	Name       string `json:"function" yaml:"function"`
	Complexity int    `json:"cyclomaticComplexity" yaml:"cyclomaticComplexity"`
}

// Entries returns all recorded functions sorted lexicographically by name.
// The order is deterministic regardless of traversal or discovery order.
func (m *ComplexityMap) Entries() []Entry {
	entries := make([]Entry, 0, len(m.values))
	for name, v := range m.values {
		entries = append(entries, Entry{Name: name, Complexity: v})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name < entries[j].Name
	})
	return entries
}

// WriteTo serializes the map as the plain-text report: one function per line,
// lexicographic by name, no header and no trailing metadata. Repeated runs
// over unchanged input produce byte-identical output.
func (m *ComplexityMap) WriteTo(w io.Writer) (int64, error) {
	var written int64
	for _, e := range m.Entries() {
		n, err := fmt.Fprintf(w, "Function: %s, Cyclomatic Complexity: %d\n", e.Name, e.Complexity)
		written += int64(n)
		if err != nil {
			return written, err
		}
	}
	return written, nil
}

// WriteFile writes the report to path, replacing any previous report. Paths
// ending in .gz get a gzip-compressed rendition of the same text.
func (m *ComplexityMap) WriteFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("opening report sink: %w", err)
	}

	var w io.Writer = f
	var gz *gzip.Writer
	if strings.HasSuffix(path, ".gz") {
		gz = gzip.NewWriter(f)
		w = gz
	}

	if _, err := m.WriteTo(w); err != nil {
		_ = f.Close()
		return fmt.Errorf("writing report: %w", err)
	}
	if gz != nil {
		if err := gz.Close(); err != nil {
			_ = f.Close()
			return fmt.Errorf("writing report: %w", err)
		}
	}
	return f.Close()
}
