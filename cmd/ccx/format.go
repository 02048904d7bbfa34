package main

import (
	"fmt"
	"strings"

	"ccx/internal/output"
)

// OutputFormat represents the output format type
type OutputFormat string

const (
	FormatJSON  OutputFormat = "json"
	FormatYAML  OutputFormat = "yaml"
	FormatHuman OutputFormat = "human"
)

// FormatResponse formats a response according to the specified format
func FormatResponse(resp interface{}, format OutputFormat) (string, error) {
	switch format {
	case FormatJSON:
		data, err := output.EncodeJSON(resp)
		if err != nil {
			return "", err
		}
		return string(data), nil
	case FormatYAML:
		data, err := output.EncodeYAML(resp)
		if err != nil {
			return "", err
		}
		return string(data), nil
	case FormatHuman:
		return formatHuman(resp)
	default:
		return "", fmt.Errorf("unsupported format: %s", format)
	}
}

// formatHuman formats the response in human-readable format
func formatHuman(resp interface{}) (string, error) {
	switch v := resp.(type) {
	case *AnalyzeResponseCLI:
		return formatAnalyzeHuman(v), nil
	case *UnitsResponseCLI:
		return formatUnitsHuman(v), nil
	default:
		// For unknown types, fall back to JSON
		data, err := output.EncodeJSON(resp)
		if err != nil {
			return "", err
		}
		return string(data), nil
	}
}

func formatAnalyzeHuman(resp *AnalyzeResponseCLI) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("File: %s (%s)\n", resp.File, resp.Language))
	b.WriteString(fmt.Sprintf("Functions: %d, Total: %d, Max: %d, Average: %.2f\n",
		resp.Summary.FunctionCount,
		resp.Summary.TotalComplexity,
		resp.Summary.MaxComplexity,
		resp.Summary.AverageComplexity))

	if resp.Report != "" {
		b.WriteString(fmt.Sprintf("Report: %s\n", resp.Report))
	}
	if resp.ReportError != "" {
		b.WriteString(fmt.Sprintf("Report error: %s\n", resp.ReportError))
	}

	if len(resp.Functions) > 0 {
		b.WriteString("\n")
		for _, f := range resp.Functions {
			b.WriteString(fmt.Sprintf("  %-40s %4d  %s\n", f.Name, f.Complexity, f.Risk))
		}
	}

	return b.String()
}

func formatUnitsHuman(resp *UnitsResponseCLI) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Analyzed %d translation unit(s)\n\n", len(resp.Units)))
	for _, u := range resp.Units {
		b.WriteString(fmt.Sprintf("  %-40s functions=%-4d max=%-4d report=%s\n",
			u.File, u.Summary.FunctionCount, u.Summary.MaxComplexity, u.Report))
	}

	return b.String()
}
