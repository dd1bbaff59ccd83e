package generator

import (
	"context"
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/java"
)

// SyntaxChecker parses rendered artifacts with the tree-sitter Java grammar
// and reports syntax errors. Generated skeletons are expected to parse clean;
// this exists as a safety net for renderer regressions, not as semantic
// validation.
type SyntaxChecker struct{}

// NewSyntaxChecker creates a checker backed by the Java grammar.
func NewSyntaxChecker() *SyntaxChecker {
	return &SyntaxChecker{}
}

// Check parses source and returns an error describing the first syntax-error
// node found, if any.
func (c *SyntaxChecker) Check(source string) error {
	parser := sitter.NewParser()
	parser.SetLanguage(java.GetLanguage())

	tree, err := parser.ParseCtx(context.Background(), nil, []byte(source))
	if err != nil {
		return fmt.Errorf("failed to parse artifact: %w", err)
	}

	root := tree.RootNode()
	if !root.HasError() {
		return nil
	}
	if bad := firstErrorNode(root); bad != nil {
		return fmt.Errorf("syntax error at line %d", bad.StartPoint().Row+1)
	}
	return fmt.Errorf("syntax error")
}

func firstErrorNode(node *sitter.Node) *sitter.Node {
	if node.Type() == "ERROR" || node.IsMissing() {
		return node
	}
	for i := 0; i < int(node.ChildCount()); i++ {
		if bad := firstErrorNode(node.Child(i)); bad != nil {
			return bad
		}
	}
	return nil
}
