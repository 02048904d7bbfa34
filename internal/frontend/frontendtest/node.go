// Package frontendtest provides an in-memory frontend.Node for tests that
// need syntax trees without a live tree-sitter parser.
package frontendtest

import "ccx/internal/frontend"

// Node is a hand-built syntax node.
type Node struct {
	NodeKind string
	Children []*Node
	Fields   map[string]*Node
	Source   string
	Line     int
	Col      int
}

// New creates a node of the given kind with structural children.
func New(kind string, children ...*Node) *Node {
	return &Node{NodeKind: kind, Children: children}
}

// WithField binds a child to a grammar field name and appends it to the
// structural children, mirroring how tree-sitter exposes field children.
func (n *Node) WithField(name string, child *Node) *Node {
	if n.Fields == nil {
		n.Fields = make(map[string]*Node)
	}
	n.Fields[name] = child
	n.Children = append(n.Children, child)
	return n
}

// WithText sets the node's source text.
func (n *Node) WithText(text string) *Node {
	n.Source = text
	return n
}

// At sets the node's 1-based start position.
func (n *Node) At(line, col int) *Node {
	n.Line = line
	n.Col = col
	return n
}

func (n *Node) Kind() string { return n.NodeKind }

func (n *Node) ChildCount() int { return len(n.Children) }

func (n *Node) Child(i int) frontend.Node {
	if i < 0 || i >= len(n.Children) || n.Children[i] == nil {
		return nil
	}
	return n.Children[i]
}

func (n *Node) ChildByField(name string) frontend.Node {
	child, ok := n.Fields[name]
	if !ok || child == nil {
		return nil
	}
	return child
}

func (n *Node) Text() string { return n.Source }

func (n *Node) StartLine() int { return n.Line }

func (n *Node) StartColumn() int { return n.Col }

// Ident builds an identifier leaf with the given name.
func Ident(name string) *Node {
	return New("identifier").WithText(name)
}

// Function builds a function_definition named name whose body holds the given
// statements.
func Function(name string, body ...*Node) *Node {
	fn := New("function_definition")
	fn.WithField("declarator",
		New("function_declarator").WithField("declarator", Ident(name)))
	fn.WithField("body", New("compound_statement", body...))
	return fn
}

// Lambda builds a lambda_expression whose body holds the given statements.
func Lambda(body ...*Node) *Node {
	fn := New("lambda_expression")
	fn.WithField("body", New("compound_statement", body...))
	return fn
}
