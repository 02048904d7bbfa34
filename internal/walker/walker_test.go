package walker

import (
	"testing"

	"ccx/internal/complexity"
	"ccx/internal/diag"
	"ccx/internal/frontend"
	"ccx/internal/frontend/frontendtest"
	"ccx/internal/report"
)

func makeTU(path string, lang frontend.Language, decls ...*frontendtest.Node) *frontend.TranslationUnit {
	return &frontend.TranslationUnit{
		Path:     path,
		Language: lang,
		Root:     frontendtest.New("translation_unit", decls...),
	}
}

func newTestWalker(collector *diag.Collector, opts Options) *Walker {
	return New(complexity.NewCalculator(nil), collector, nil, opts)
}

func TestWalk_RecordsEligibleFunctions(t *testing.T) {
	tu := makeTU("src/math.c", frontend.LangC,
		frontendtest.Function("plain",
			frontendtest.New("return_statement")),
		frontendtest.Function("branchy",
			frontendtest.New("if_statement",
				frontendtest.New("compound_statement"))),
	)

	collector := diag.NewCollector()
	results := report.NewComplexityMap()
	newTestWalker(collector, Options{}).Walk(tu, results)

	if results.Len() != 2 {
		t.Fatalf("expected 2 recorded functions, got %d", results.Len())
	}
	if v, _ := results.Get("plain"); v != 1 {
		t.Errorf("plain: expected complexity 1, got %d", v)
	}
	if v, _ := results.Get("branchy"); v != 2 {
		t.Errorf("branchy: expected complexity 2, got %d", v)
	}

	remarks := collector.Remarks()
	if len(remarks) != 2 {
		t.Fatalf("expected 2 remarks, got %d", len(remarks))
	}
	for _, r := range remarks {
		if r.Loc.File != "src/math.c" {
			t.Errorf("remark location = %q, want src/math.c", r.Loc.File)
		}
	}
}

func TestWalk_HeaderFilesExcluded(t *testing.T) {
	for _, path := range []string{"include/util.h", "include/util.hpp", "include/util.hh"} {
		tu := makeTU(path, frontend.LangCPP,
			frontendtest.Function("helper",
				frontendtest.New("return_statement")))

		collector := diag.NewCollector()
		results := report.NewComplexityMap()
		newTestWalker(collector, Options{}).Walk(tu, results)

		if results.Len() != 0 {
			t.Errorf("%s: expected no recorded functions, got %d", path, results.Len())
		}
		if len(collector.Remarks()) != 0 {
			t.Errorf("%s: expected no remarks", path)
		}
	}
}

func TestWalk_SystemHeaderExcluded(t *testing.T) {
	tu := makeTU("/usr/include/bits/impl.c", frontend.LangC,
		frontendtest.Function("vendored",
			frontendtest.New("return_statement")))

	results := report.NewComplexityMap()
	w := newTestWalker(diag.NewCollector(), Options{
		SystemIncludeDirs: []string{"/usr/include"},
	})
	w.Walk(tu, results)

	if results.Len() != 0 {
		t.Errorf("expected system-header function excluded, got %d entries", results.Len())
	}
}

func TestWalk_CustomHeaderExtensions(t *testing.T) {
	tu := makeTU("src/gen.inc", frontend.LangC,
		frontendtest.Function("generated",
			frontendtest.New("return_statement")))

	results := report.NewComplexityMap()
	w := newTestWalker(diag.NewCollector(), Options{
		HeaderExtensions: []string{".inc"},
	})
	w.Walk(tu, results)

	if results.Len() != 0 {
		t.Errorf("expected .inc function excluded, got %d entries", results.Len())
	}
}

func TestWalk_DuplicateNamesLastComputedWins(t *testing.T) {
	// Overloads share a display name; the map retains only the last value.
	tu := makeTU("src/over.cpp", frontend.LangCPP,
		frontendtest.Function("overloaded",
			frontendtest.New("return_statement")),
		frontendtest.Function("overloaded",
			frontendtest.New("if_statement",
				frontendtest.New("compound_statement"))),
	)

	results := report.NewComplexityMap()
	newTestWalker(diag.NewCollector(), Options{}).Walk(tu, results)

	if results.Len() != 1 {
		t.Fatalf("expected 1 entry for duplicate names, got %d", results.Len())
	}
	if v, _ := results.Get("overloaded"); v != 2 {
		t.Errorf("expected later computation (2) to win, got %d", v)
	}
}

func TestWalk_BodilessDefinitionSkipped(t *testing.T) {
	broken := frontendtest.New("function_definition").
		WithField("declarator",
			frontendtest.New("function_declarator").
				WithField("declarator", frontendtest.Ident("noBody")))

	tu := makeTU("src/broken.c", frontend.LangC,
		broken,
		frontendtest.Function("intact",
			frontendtest.New("return_statement")),
	)

	collector := diag.NewCollector()
	results := report.NewComplexityMap()
	newTestWalker(collector, Options{}).Walk(tu, results)

	if _, ok := results.Get("noBody"); ok {
		t.Error("bodiless definition must not be recorded")
	}
	if v, _ := results.Get("intact"); v != 1 {
		t.Errorf("walk must continue past the anomaly; intact = %d, want 1", v)
	}
	if len(collector.Remarks()) != 1 {
		t.Errorf("expected 1 remark, got %d", len(collector.Remarks()))
	}
}

func TestWalk_UnresolvableDeclarationSkipped(t *testing.T) {
	nameless := frontendtest.New("function_definition")
	nameless.WithField("body", frontendtest.New("compound_statement"))

	tu := makeTU("src/odd.c", frontend.LangC,
		nameless,
		frontendtest.Function("fine",
			frontendtest.New("return_statement")),
	)

	results := report.NewComplexityMap()
	newTestWalker(diag.NewCollector(), Options{}).Walk(tu, results)

	if results.Len() != 1 {
		t.Fatalf("expected only the resolvable function, got %d entries", results.Len())
	}
	if _, ok := results.Get("fine"); !ok {
		t.Error("resolvable function missing from map")
	}
}

func TestWalk_NestedLambdaIsIndependent(t *testing.T) {
	tu := makeTU("src/cb.cpp", frontend.LangCPP,
		frontendtest.Function("outer",
			frontendtest.New("declaration",
				frontendtest.Lambda(
					frontendtest.New("if_statement",
						frontendtest.New("compound_statement"))))),
	)

	results := report.NewComplexityMap()
	newTestWalker(diag.NewCollector(), Options{}).Walk(tu, results)

	if results.Len() != 2 {
		t.Fatalf("expected outer plus lambda, got %d entries", results.Len())
	}
	// The lambda's if lies inside outer's subtree too.
	if v, _ := results.Get("outer"); v != 2 {
		t.Errorf("outer: expected complexity 2, got %d", v)
	}
	if v, _ := results.Get("<anonymous>"); v != 2 {
		t.Errorf("<anonymous>: expected complexity 2, got %d", v)
	}
}

func TestWalk_NilUnit(t *testing.T) {
	results := report.NewComplexityMap()
	newTestWalker(diag.NewCollector(), Options{}).Walk(nil, results)
	if results.Len() != 0 {
		t.Errorf("nil unit must record nothing")
	}
}
