package main

import (
	"context"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"ccx/internal/analysis"
	"ccx/internal/config"
	"ccx/internal/diag"
	"ccx/internal/frontend"
	"ccx/internal/walker"
)

var (
	analyzeReport           string
	analyzeFormat           string
	analyzeIncludeFunctions bool
	analyzeSortBy           string
	analyzeLimit            int
	analyzeLang             string
	analyzeQuietRemarks     bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <file>...",
	Short: "Compute cyclomatic complexity for translation units",
	Long: `Compute cyclomatic complexity for each function defined in the given
translation units.

Functions defined in system headers or in files with a header extension are
excluded. Each analyzed function emits one remark on stderr; the per-unit
results are written to the report file (lexicographic by function name, one
function per line). When several units are analyzed against one report path,
the last unit wins; use --report per invocation or a UNITS.toml manifest for
per-unit reports.

Examples:
  ccx analyze src/parser.c
  ccx analyze --report=build/parser.cy src/parser.c
  ccx analyze --format=human --sort=complexity --limit=10 src/engine.cpp
  ccx analyze --lang=cpp src/legacy.cc`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVar(&analyzeReport, "report", "", "Report sink path (default: from config, results.cy)")
	analyzeCmd.Flags().StringVar(&analyzeFormat, "format", "json", "Output format (json, yaml, human)")
	analyzeCmd.Flags().BoolVar(&analyzeIncludeFunctions, "include-functions", true, "Include per-function complexity")
	analyzeCmd.Flags().StringVar(&analyzeSortBy, "sort", "name", "Sort functions by: name or complexity")
	analyzeCmd.Flags().IntVar(&analyzeLimit, "limit", 0, "Limit number of functions shown (0 for all)")
	analyzeCmd.Flags().StringVar(&analyzeLang, "lang", "", "Force language (c or cpp) instead of extension detection")
	analyzeCmd.Flags().BoolVar(&analyzeQuietRemarks, "quiet-remarks", false, "Suppress per-function remarks on stderr")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	start := time.Now()

	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	logger := newLogger(cfg)

	if !frontend.IsAvailable() {
		return fmt.Errorf("analysis requires CGO (tree-sitter); this binary was built without CGO support")
	}

	switch analyzeLang {
	case "", "c", "cpp":
	default:
		return fmt.Errorf("unsupported language: %s", analyzeLang)
	}

	reportPath := analyzeReport
	if reportPath == "" {
		reportPath = cfg.Report.Path
	}

	var diags diag.Engine = diag.NewConsoleEngine(os.Stderr)
	if analyzeQuietRemarks {
		diags = diag.NewCollector()
	}

	runner := analysis.NewRunner(frontend.NewParser(), diags, logger, walker.Options{
		HeaderExtensions:  cfg.Eligibility.HeaderExtensions,
		SystemIncludeDirs: cfg.Eligibility.SystemIncludeDirs,
	})

	ctx := context.Background()
	for _, file := range args {
		if _, err := os.Stat(file); os.IsNotExist(err) {
			return fmt.Errorf("file not found: %s", file)
		}

		res, err := runner.RunFile(ctx, file, reportPath, frontend.Language(analyzeLang), cfg.Languages)
		if err != nil {
			return fmt.Errorf("analyzing %s: %w", file, err)
		}

		out, err := FormatResponse(convertAnalyzeResponse(res), OutputFormat(analyzeFormat))
		if err != nil {
			return fmt.Errorf("formatting output: %w", err)
		}
		fmt.Println(out)
	}

	logger.Debug("analysis completed",
		"units", len(args),
		"duration", time.Since(start).Milliseconds(),
	)
	return nil
}

// AnalyzeResponseCLI contains one translation unit's results for CLI output
type AnalyzeResponseCLI struct {
	File        string        `json:"file"`
	Language    string        `json:"language"`
	RunID       string        `json:"runId"`
	Report      string        `json:"report,omitempty"`
	ReportError string        `json:"reportError,omitempty"`
	Summary     SummaryCLI    `json:"summary"`
	Functions   []FunctionCLI `json:"functions,omitempty"`
}

// SummaryCLI aggregates one unit's function complexities
type SummaryCLI struct {
	FunctionCount     int     `json:"functionCount"`
	TotalComplexity   int     `json:"totalComplexity"`
	MaxComplexity     int     `json:"maxComplexity"`
	AverageComplexity float64 `json:"averageComplexity"`
}

// FunctionCLI is one function's complexity for CLI output
type FunctionCLI struct {
	Name       string `json:"name"`
	Complexity int    `json:"complexity"`
	Risk       string `json:"risk"` // low, medium, high
}

func convertAnalyzeResponse(res *analysis.Result) *AnalyzeResponseCLI {
	resp := &AnalyzeResponseCLI{
		File:     res.Unit,
		Language: string(res.Language),
		RunID:    res.RunID,
		Report:   res.ReportPath,
	}
	if res.ReportErr != nil {
		resp.ReportError = res.ReportErr.Error()
	}

	entries := res.Map.Entries()
	resp.Summary.FunctionCount = len(entries)
	for _, e := range entries {
		resp.Summary.TotalComplexity += e.Complexity
		if e.Complexity > resp.Summary.MaxComplexity {
			resp.Summary.MaxComplexity = e.Complexity
		}
	}
	if len(entries) > 0 {
		resp.Summary.AverageComplexity = float64(resp.Summary.TotalComplexity) / float64(len(entries))
	}

	if !analyzeIncludeFunctions {
		return resp
	}

	functions := make([]FunctionCLI, 0, len(entries))
	for _, e := range entries {
		risk := "low"
		if e.Complexity > 10 {
			risk = "medium"
		}
		if e.Complexity > 20 {
			risk = "high"
		}
		functions = append(functions, FunctionCLI{
			Name:       e.Name,
			Complexity: e.Complexity,
			Risk:       risk,
		})
	}

	// Entries arrive sorted by name; re-sort only for complexity order.
	if analyzeSortBy == "complexity" {
		sort.SliceStable(functions, func(i, j int) bool {
			return functions[i].Complexity > functions[j].Complexity
		})
	}

	if analyzeLimit > 0 && len(functions) > analyzeLimit {
		functions = functions[:analyzeLimit]
	}

	resp.Functions = functions
	return resp
}
