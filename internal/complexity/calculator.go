package complexity

import (
	"log/slog"

	"ccx/internal/frontend"
	"ccx/internal/slogutil"
)

// Calculator computes cyclomatic complexity for function bodies. It keeps no
// state between calls; each Calculate is a pure function of the subtree passed
// in, aside from anomaly logging.
type Calculator struct {
	logger *slog.Logger
}

// NewCalculator creates a calculator. A nil logger discards anomaly logs.
func NewCalculator(logger *slog.Logger) *Calculator {
	if logger == nil {
		logger = slogutil.NewDiscardLogger()
	}
	return &Calculator{logger: logger}
}

// Calculate returns 1 + the decision-point count of the body's subtree. The
// base value of 1 is the single non-branching path through the function. A nil
// body is an anomaly: it is logged and yields 0, distinguishable from the
// genuine minimum complexity of 1.
func (c *Calculator) Calculate(lang frontend.Language, body frontend.Node) int {
	if body == nil {
		c.logger.Warn("null function body encountered")
		return 0
	}
	return 1 + countDecisions(lang, body)
}

// countDecisions walks the entire subtree, adding one per decision-bearing
// node. Counted nodes are still descended into, so nested conditionals inside
// a loop body all count independently.
func countDecisions(lang frontend.Language, node frontend.Node) int {
	count := 0
	if Classify(lang, node.Kind()) != KindNone {
		count++
	}
	for i := 0; i < node.ChildCount(); i++ {
		if child := node.Child(i); child != nil {
			count += countDecisions(lang, child)
		}
	}
	return count
}
