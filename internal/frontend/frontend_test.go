package frontend_test

import (
	"testing"

	"ccx/internal/frontend"
	"ccx/internal/frontend/frontendtest"
)

func TestLanguageFromExtension(t *testing.T) {
	tests := []struct {
		ext  string
		want frontend.Language
		ok   bool
	}{
		{".c", frontend.LangC, true},
		{".h", frontend.LangC, true},
		{".cpp", frontend.LangCPP, true},
		{".cc", frontend.LangCPP, true},
		{".cxx", frontend.LangCPP, true},
		{".hpp", frontend.LangCPP, true},
		{".CPP", frontend.LangCPP, true},
		{".go", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		got, ok := frontend.LanguageFromExtension(tt.ext, nil)
		if got != tt.want || ok != tt.ok {
			t.Errorf("LanguageFromExtension(%q) = (%q, %v), want (%q, %v)", tt.ext, got, ok, tt.want, tt.ok)
		}
	}
}

func TestLanguageFromExtension_Overrides(t *testing.T) {
	overrides := map[string]string{".inl": "cpp", ".x": "fortran"}

	if lang, ok := frontend.LanguageFromExtension(".inl", overrides); !ok || lang != frontend.LangCPP {
		t.Errorf("override .inl = (%q, %v), want (cpp, true)", lang, ok)
	}
	// Overrides naming an unsupported language fall through to detection.
	if _, ok := frontend.LanguageFromExtension(".x", overrides); ok {
		t.Error("unsupported override language must not resolve")
	}
}

func TestResolveLocation_SystemHeader(t *testing.T) {
	sys := []string{"/usr/include", "/usr/local/include"}

	loc := frontend.ResolveLocation("/usr/include/stdio.h", nil, sys)
	if !loc.InSystemHeader {
		t.Error("/usr/include/stdio.h must be flagged as system header")
	}

	loc = frontend.ResolveLocation("/home/dev/proj/main.c", nil, sys)
	if loc.InSystemHeader {
		t.Error("project file must not be flagged as system header")
	}

	// Sibling directory sharing a prefix is not inside the include dir.
	loc = frontend.ResolveLocation("/usr/include-extra/x.h", nil, sys)
	if loc.InSystemHeader {
		t.Error("/usr/include-extra must not match /usr/include")
	}
}

func TestLocation_String(t *testing.T) {
	loc := frontend.Location{File: "a.c", Line: 3, Column: 9}
	if got := loc.String(); got != "a.c:3:9" {
		t.Errorf("String() = %q", got)
	}
	if got := (frontend.Location{}).String(); got != "<invalid>" {
		t.Errorf("invalid String() = %q", got)
	}
}

func TestDeclToFunction_DeclaratorChain(t *testing.T) {
	// int *name(void) nests the identifier under pointer and function
	// declarators.
	fn := frontendtest.New("function_definition")
	fn.WithField("declarator",
		frontendtest.New("pointer_declarator").WithField("declarator",
			frontendtest.New("function_declarator").WithField("declarator",
				frontendtest.Ident("alloc_buf"))))
	fn.WithField("body", frontendtest.New("compound_statement"))

	decl, ok := frontend.DeclToFunction("src/a.c", frontend.LangC, fn, nil)
	if !ok {
		t.Fatal("expected resolvable declaration")
	}
	if decl.Name != "alloc_buf" {
		t.Errorf("name = %q, want alloc_buf", decl.Name)
	}
	if decl.Body == nil {
		t.Error("body missing")
	}
}

func TestDeclToFunction_QualifiedName(t *testing.T) {
	fn := frontendtest.New("function_definition")
	fn.WithField("declarator",
		frontendtest.New("function_declarator").WithField("declarator",
			frontendtest.New("qualified_identifier").WithText("Parser::advance")))
	fn.WithField("body", frontendtest.New("compound_statement"))

	decl, ok := frontend.DeclToFunction("src/parser.cpp", frontend.LangCPP, fn, nil)
	if !ok {
		t.Fatal("expected resolvable declaration")
	}
	if decl.Name != "Parser::advance" {
		t.Errorf("name = %q, want Parser::advance", decl.Name)
	}
}

func TestDeclToFunction_Lambda(t *testing.T) {
	decl, ok := frontend.DeclToFunction("src/a.cpp", frontend.LangCPP, frontendtest.Lambda(), nil)
	if !ok {
		t.Fatal("expected lambda to resolve")
	}
	if decl.Name != "<anonymous>" {
		t.Errorf("lambda name = %q", decl.Name)
	}
}

func TestDeclToFunction_Unresolvable(t *testing.T) {
	if _, ok := frontend.DeclToFunction("src/a.c", frontend.LangC, frontendtest.New("function_definition"), nil); ok {
		t.Error("declaration without a declarator must not resolve")
	}
	if _, ok := frontend.DeclToFunction("src/a.c", frontend.LangC, nil, nil); ok {
		t.Error("nil node must not resolve")
	}
}

func TestIsFunctionNode(t *testing.T) {
	if !frontend.IsFunctionNode(frontend.LangC, "function_definition") {
		t.Error("C function_definition must be a function node")
	}
	if frontend.IsFunctionNode(frontend.LangC, "lambda_expression") {
		t.Error("C has no lambdas")
	}
	if !frontend.IsFunctionNode(frontend.LangCPP, "lambda_expression") {
		t.Error("C++ lambda_expression must be a function node")
	}
	if frontend.IsFunctionNode(frontend.LangCPP, "declaration") {
		t.Error("plain declarations are not function nodes")
	}
}
