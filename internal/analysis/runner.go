// Package analysis orchestrates one analysis run per translation unit:
// parse, walk, aggregate, report. Each run owns a fresh ComplexityMap and a
// fresh run ID; nothing is shared across runs.
package analysis

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"

	"ccx/internal/complexity"
	"ccx/internal/diag"
	"ccx/internal/frontend"
	"ccx/internal/report"
	"ccx/internal/slogutil"
	"ccx/internal/walker"
)

// Runner drives analysis runs. It is synchronous: each run completes its full
// walk-and-report sequence before returning.
type Runner struct {
	parser *frontend.Parser
	diags  diag.Engine
	logger *slog.Logger
	opts   walker.Options
}

// NewRunner creates a runner around an injected parser and diagnostics
// engine. A nil logger discards logs.
func NewRunner(parser *frontend.Parser, diags diag.Engine, logger *slog.Logger, opts walker.Options) *Runner {
	if logger == nil {
		logger = slogutil.NewDiscardLogger()
	}
	return &Runner{
		parser: parser,
		diags:  diags,
		logger: logger,
		opts:   opts,
	}
}

// Result is the outcome of one analysis run.
type Result struct {
	RunID      string
	Unit       string
	Language   frontend.Language
	Map        *report.ComplexityMap
	ReportPath string

	// ReportErr records a sink failure. The in-memory results and any
	// diagnostics already emitted stay valid; only the persisted report is
	// forfeited.
	ReportErr error
}

// RunFile analyzes one translation unit and writes its report to reportPath.
// An empty lang selects extension-based detection (subject to overrides).
func (r *Runner) RunFile(ctx context.Context, path, reportPath string, lang frontend.Language, overrides map[string]string) (*Result, error) {
	var (
		tu  *frontend.TranslationUnit
		err error
	)
	if lang != "" {
		source, readErr := os.ReadFile(path)
		if readErr != nil {
			return nil, fmt.Errorf("failed to read file: %w", readErr)
		}
		tu, err = r.parser.ParseSource(ctx, path, source, lang)
	} else {
		tu, err = r.parser.ParseFile(ctx, path, overrides)
	}
	if err != nil {
		return nil, err
	}

	return r.run(tu, reportPath)
}

// RunSource analyzes source bytes as one translation unit.
func (r *Runner) RunSource(ctx context.Context, path string, source []byte, lang frontend.Language, reportPath string) (*Result, error) {
	tu, err := r.parser.ParseSource(ctx, path, source, lang)
	if err != nil {
		return nil, err
	}
	return r.run(tu, reportPath)
}

func (r *Runner) run(tu *frontend.TranslationUnit, reportPath string) (*Result, error) {
	runID := uuid.NewString()
	logger := r.logger.With("runId", runID)

	results := report.NewComplexityMap()
	calc := complexity.NewCalculator(logger)
	w := walker.New(calc, r.diags, logger, r.opts)
	w.Walk(tu, results)

	res := &Result{
		RunID:      runID,
		Unit:       tu.Path,
		Language:   tu.Language,
		Map:        results,
		ReportPath: reportPath,
	}

	if reportPath != "" {
		if err := results.WriteFile(reportPath); err != nil {
			// Non-fatal: reported once, run results stay valid.
			logger.Error("report sink unwritable",
				"path", reportPath,
				"error", err.Error(),
			)
			res.ReportErr = err
		}
	}

	logger.Info("analysis run completed",
		"unit", tu.Path,
		"language", string(tu.Language),
		"functions", results.Len(),
	)
	return res, nil
}
