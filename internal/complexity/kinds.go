// Package complexity computes cyclomatic complexity for function bodies.
//
// The metric is 1 + the number of decision-bearing constructs anywhere in the
// body's subtree. Each compound construct counts exactly once regardless of
// how many branches or arms it has: a switch with ten cases contributes one
// decision point, not ten. This is the metric's defined semantics, chosen to
// count compound-decision constructs rather than individual edges.
package complexity

import "ccx/internal/frontend"

// Kind classifies a syntax node's contribution to the decision count.
type Kind int

const (
	// KindNone marks a node that contributes no decision point. Unrecognized
	// node kinds classify as KindNone; the classification set is closed.
	KindNone Kind = iota
	KindIf
	KindSwitch
	KindFor
	KindWhile
	KindDoWhile
	KindTernary
)

// String returns the kind's name for logs and diagnostics.
func (k Kind) String() string {
	switch k {
	case KindIf:
		return "if"
	case KindSwitch:
		return "switch"
	case KindFor:
		return "for"
	case KindWhile:
		return "while"
	case KindDoWhile:
		return "do-while"
	case KindTernary:
		return "ternary"
	default:
		return "none"
	}
}

// Classify maps a grammar node kind to its decision classification for the
// given language. Everything outside the closed set is KindNone.
func Classify(lang frontend.Language, nodeKind string) Kind {
	switch nodeKind {
	case "if_statement":
		return KindIf
	case "switch_statement":
		return KindSwitch
	case "for_statement":
		return KindFor
	case "for_range_loop":
		if lang == frontend.LangCPP {
			return KindFor
		}
		return KindNone
	case "while_statement":
		return KindWhile
	case "do_statement":
		return KindDoWhile
	case "conditional_expression":
		return KindTernary
	default:
		return KindNone
	}
}
