// Package walker traverses a translation unit's declaration tree, decides
// eligibility per function, and forwards eligible bodies to the complexity
// calculator.
package walker

import (
	"log/slog"
	"strings"

	"ccx/internal/complexity"
	"ccx/internal/diag"
	"ccx/internal/frontend"
	"ccx/internal/report"
	"ccx/internal/slogutil"
)

// DefaultHeaderExtensions are the file suffixes excluded from analysis when no
// configuration overrides them. Declarations pulled in from headers are often
// shared or vendor code and would duplicate results across every translation
// unit that includes them.
var DefaultHeaderExtensions = []string{".h", ".hpp", ".hh", ".hxx"}

// Options controls the walker's eligibility policy.
type Options struct {
	// HeaderExtensions excludes declarations whose file path ends in one of
	// these suffixes. Nil selects DefaultHeaderExtensions.
	HeaderExtensions []string

	// SystemIncludeDirs marks declarations under these directories as
	// system-header code, which is always excluded.
	SystemIncludeDirs []string
}

// Walker visits every function declaration reachable from a translation unit
// root exactly once. It mutates only the run-scoped ComplexityMap handed to
// Walk and never mutates the AST.
type Walker struct {
	calc             *complexity.Calculator
	diags            diag.Engine
	logger           *slog.Logger
	headerExtensions []string
	systemInclude    []string
}

// New creates a walker. The calculator and diagnostics engine are injected
// per run; a nil logger discards logs.
func New(calc *complexity.Calculator, diags diag.Engine, logger *slog.Logger, opts Options) *Walker {
	if logger == nil {
		logger = slogutil.NewDiscardLogger()
	}
	exts := opts.HeaderExtensions
	if exts == nil {
		exts = DefaultHeaderExtensions
	}
	return &Walker{
		calc:             calc,
		diags:            diags,
		logger:           logger,
		headerExtensions: exts,
		systemInclude:    opts.SystemIncludeDirs,
	}
}

// Walk analyzes one translation unit, recording each eligible function's
// complexity into results and emitting one remark per analyzed function.
// Nested functions (lambdas) are visited as independent functions.
func (w *Walker) Walk(tu *frontend.TranslationUnit, results *report.ComplexityMap) {
	if tu == nil || tu.Root == nil {
		return
	}
	w.visit(tu, tu.Root, results)
}

func (w *Walker) visit(tu *frontend.TranslationUnit, node frontend.Node, results *report.ComplexityMap) {
	if frontend.IsFunctionNode(tu.Language, node.Kind()) {
		w.analyze(tu, node, results)
	}
	// Descend regardless: function bodies can hold further declarations.
	for i := 0; i < node.ChildCount(); i++ {
		if child := node.Child(i); child != nil {
			w.visit(tu, child, results)
		}
	}
}

// analyze applies the eligibility test and records one function. A single
// malformed declaration degrades to excluded; it never halts the walk.
func (w *Walker) analyze(tu *frontend.TranslationUnit, node frontend.Node, results *report.ComplexityMap) {
	fn, ok := frontend.DeclToFunction(tu.Path, tu.Language, node, w.systemInclude)
	if !ok {
		w.logger.Debug("skipping unresolvable declaration",
			"path", tu.Path,
			"node", node.Kind(),
		)
		return
	}

	if w.excluded(fn.Loc) {
		return
	}

	if fn.Body == nil {
		// A definition node without a body is an anomaly, not a prototype.
		w.logger.Warn("function has no executable body",
			"function", fn.Name,
			"location", fn.Loc.String(),
		)
		return
	}

	value := w.calc.Calculate(tu.Language, fn.Body)
	results.Record(fn.Name, value)
	if w.diags != nil {
		w.diags.Remark(fn.Loc, value)
	}
}

// excluded implements the eligibility test: system-header membership, a
// recognized header-file suffix, or an unresolvable location all exclude the
// declaration.
func (w *Walker) excluded(loc frontend.Location) bool {
	if !loc.IsValid() {
		return true
	}
	if loc.InSystemHeader {
		return true
	}
	for _, ext := range w.headerExtensions {
		if strings.HasSuffix(loc.File, ext) {
			return true
		}
	}
	return false
}
