package frontend

// IsFunctionNode reports whether a node kind introduces a function
// declaration in the given language. Lambdas count: a locally defined
// closure is an independent function to the analyzer.
func IsFunctionNode(lang Language, kind string) bool {
	switch lang {
	case LangC:
		return kind == "function_definition"
	case LangCPP:
		return kind == "function_definition" || kind == "lambda_expression"
	default:
		return false
	}
}

// DeclToFunction resolves a function node into a FunctionDecl. The boolean is
// false when the node does not carry enough structure to name a function; such
// declarations degrade to excluded rather than failing the run.
func DeclToFunction(path string, lang Language, node Node, systemIncludeDirs []string) (FunctionDecl, bool) {
	if node == nil {
		return FunctionDecl{}, false
	}

	fn := FunctionDecl{
		Loc:  ResolveLocation(path, node, systemIncludeDirs),
		Body: node.ChildByField("body"),
	}

	if node.Kind() == "lambda_expression" {
		fn.Name = "<anonymous>"
		return fn, true
	}

	fn.Name = declaredName(node)
	if fn.Name == "" {
		return FunctionDecl{}, false
	}
	return fn, true
}

// declaredName walks the declarator chain of a function_definition down to the
// naming identifier. C and C++ nest the name under pointer, reference and
// function declarators; qualified names (Foo::bar) are kept whole.
func declaredName(node Node) string {
	d := node.ChildByField("declarator")
	for d != nil {
		switch d.Kind() {
		case "identifier", "field_identifier", "qualified_identifier",
			"destructor_name", "operator_name":
			return d.Text()
		}
		next := d.ChildByField("declarator")
		if next == nil {
			return d.Text()
		}
		d = next
	}
	return ""
}
