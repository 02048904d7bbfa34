package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"ccx/internal/analysis"
	"ccx/internal/config"
	"ccx/internal/diag"
	"ccx/internal/frontend"
	"ccx/internal/units"
	"ccx/internal/walker"
)

var (
	unitsManifest string
	unitsFormat   string
)

var unitsCmd = &cobra.Command{
	Use:   "units",
	Short: "Analyze the translation units declared in UNITS.toml",
	Long: `Analyze every translation unit declared in the project's UNITS.toml
manifest. Each unit is one independent analysis run with its own report file
(default: <unit>.cy next to the source, overridable per unit).

Examples:
  ccx units
  ccx units --manifest=build/UNITS.toml --format=human`,
	Args: cobra.NoArgs,
	RunE: runUnits,
}

func init() {
	unitsCmd.Flags().StringVar(&unitsManifest, "manifest", "", "Manifest path (default: UNITS.toml)")
	unitsCmd.Flags().StringVar(&unitsFormat, "format", "json", "Output format (json, yaml, human)")
	rootCmd.AddCommand(unitsCmd)
}

// UnitsResponseCLI contains the per-unit summaries for CLI output
type UnitsResponseCLI struct {
	Manifest string               `json:"manifest"`
	Units    []AnalyzeResponseCLI `json:"units"`
}

func runUnits(cmd *cobra.Command, args []string) error {
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

	declared, err := units.LoadDeclaredUnits(".", unitsManifest)
	if err != nil {
		return err
	}
	if len(declared) == 0 {
		fmt.Println("No translation units declared. Create a UNITS.toml with [[unit]] entries.")
		return nil
	}

	runner := analysis.NewRunner(frontend.NewParser(), diag.NewConsoleEngine(nil), logger, walker.Options{
		HeaderExtensions:  cfg.Eligibility.HeaderExtensions,
		SystemIncludeDirs: cfg.Eligibility.SystemIncludeDirs,
	})

	ctx := context.Background()
	resp := &UnitsResponseCLI{Manifest: unitsManifest}
	if resp.Manifest == "" {
		resp.Manifest = units.UnitsDeclarationFile
	}

	for _, u := range declared {
		res, err := runner.RunFile(ctx, u.Path, u.Report, frontend.Language(u.Language), cfg.Languages)
		if err != nil {
			// One malformed unit must not forfeit the rest.
			logger.Error("unit analysis failed", "unit", u.Path, "error", err.Error())
			continue
		}

		unitResp := convertAnalyzeResponse(res)
		unitResp.Functions = nil
		resp.Units = append(resp.Units, *unitResp)
	}

	out, err := FormatResponse(resp, OutputFormat(unitsFormat))
	if err != nil {
		return fmt.Errorf("formatting output: %w", err)
	}
	fmt.Println(out)

	logger.Debug("units analysis completed",
		"declared", len(declared),
		"analyzed", len(resp.Units),
		"duration", time.Since(start).Milliseconds(),
	)
	return nil
}
