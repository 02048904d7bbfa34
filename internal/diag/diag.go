// Package diag delivers per-function informational remarks. The analyzer
// registers a single message template and issues one remark per analyzed
// function, bound to the function's source location.
package diag

import (
	"fmt"
	"io"
	"os"
	"sync"

	"ccx/internal/frontend"
)

// RemarkTemplate is the one message template the analyzer registers.
const RemarkTemplate = "Cyclomatic Complexity: %d"

// Engine is the diagnostics collaborator handed to the walker. Each analysis
// run receives its own engine handle; there is no ambient singleton.
type Engine interface {
	// Remark emits one informational message for a function's location.
	Remark(loc frontend.Location, complexity int)
}

// ConsoleEngine writes remarks in the conventional compiler format:
// file:line:col: remark: Cyclomatic Complexity: N
type ConsoleEngine struct {
	w io.Writer
}

// NewConsoleEngine creates a console engine. A nil writer defaults to stderr.
func NewConsoleEngine(w io.Writer) *ConsoleEngine {
	if w == nil {
		w = os.Stderr
	}
	return &ConsoleEngine{w: w}
}

// Remark implements Engine.
func (e *ConsoleEngine) Remark(loc frontend.Location, complexity int) {
	fmt.Fprintf(e.w, "%s: remark: "+RemarkTemplate+"\n", loc, complexity)
}

// RemarkEvent is one recorded remark.
type RemarkEvent struct {
	Loc        frontend.Location
	Complexity int
}

// Collector records remarks in memory, in emission order.
type Collector struct {
	mu      sync.Mutex
	remarks []RemarkEvent
}

// NewCollector creates an empty collector.
func NewCollector() *Collector {
	return &Collector{}
}

// Remark implements Engine.
func (c *Collector) Remark(loc frontend.Location, complexity int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.remarks = append(c.remarks, RemarkEvent{Loc: loc, Complexity: complexity})
}

// Remarks returns the recorded remarks in emission order.
func (c *Collector) Remarks() []RemarkEvent {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]RemarkEvent, len(c.remarks))
	copy(out, c.remarks)
	return out
}
