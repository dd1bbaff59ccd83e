// Package pipeline composes the extract, resolve, and render stages into the
// full diagram-to-source transform. The transform is a pure function of the
// input text: it never fails on malformed diagram content, it just produces
// fewer artifacts.
package pipeline

import (
	"umlgen/internal/extractor"
	"umlgen/internal/generator"
	"umlgen/internal/model"
	"umlgen/internal/resolver"
)

// Result holds everything one transform produced: the resolved declaration
// table, the relationship table, and the rendered artifacts keyed by declared
// name.
type Result struct {
	Model     *model.Model
	Relations *model.Relationships
	Files     map[string]string
	Members   resolver.MemberStats
}

// Run executes the single forward pass over the diagram text: extract
// declarations, resolve members and relationships, render one Java artifact
// per declaration.
func Run(text string) *Result {
	m := extractor.New().Extract(text)
	members := resolver.NewMemberResolver().Resolve(m)
	rels := resolver.NewRelationResolver().Resolve(text, m)
	files := generator.NewJavaGenerator().Render(m, rels)

	return &Result{
		Model:     m,
		Relations: rels,
		Files:     files,
		Members:   members,
	}
}

// Generate is the convenience form of Run for callers that only need the
// rendered artifacts.
func Generate(text string) map[string]string {
	return Run(text).Files
}
