package resolver

import (
	"regexp"

	"umlgen/internal/model"
)

// Relationship arrows are matched against the whole diagram text, independent
// of declaration bodies. `Parent <|-- Child` is a generalization (the arrow
// points at the superclass); `Class ..|> Interface` is a realization.
var (
	generalizationPattern = regexp.MustCompile(`(\w+)\s*<\|--\s*(\w+)`)
	realizationPattern    = regexp.MustCompile(`(\w+)\s*\.\.\|>\s*(\w+)`)
)

// RelationResolver scans diagram text for generalization and realization
// edges between declared names. Edges with an endpoint missing from the
// declaration table are dropped.
type RelationResolver struct{}

// NewRelationResolver creates a relation resolver.
func NewRelationResolver() *RelationResolver {
	return &RelationResolver{}
}

// Resolve builds the relationship table for the given declaration table.
// A child keeps at most one extends edge (the last match wins); implemented
// interfaces accumulate in first-appearance order without duplicates.
func (r *RelationResolver) Resolve(text string, m *model.Model) *model.Relationships {
	rels := model.NewRelationships()

	for _, match := range generalizationPattern.FindAllStringSubmatch(text, -1) {
		parent, child := match[1], match[2]
		if m.Has(parent) && m.Has(child) {
			rels.Extends[child] = parent
		}
	}

	for _, match := range realizationPattern.FindAllStringSubmatch(text, -1) {
		class, iface := match[1], match[2]
		if m.Has(class) && m.Has(iface) {
			rels.AddImplements(class, iface)
		}
	}

	return rels
}
