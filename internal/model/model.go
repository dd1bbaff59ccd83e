package model

// Model is the insertion-ordered declaration table built by the extractor and
// enriched by the resolver. Names are unique: adding a declaration under an
// existing name replaces the earlier value but keeps its original position
// (documented last-write-wins, matching the diagram grammar's behavior of
// letting a later block shadow an earlier one without error).
type Model struct {
	order []string
	decls map[string]*Declaration
}

// NewModel returns an empty declaration table.
func NewModel() *Model {
	return &Model{decls: make(map[string]*Declaration)}
}

// Add inserts or replaces the declaration keyed by its name.
func (m *Model) Add(d *Declaration) {
	if _, exists := m.decls[d.Name]; !exists {
		m.order = append(m.order, d.Name)
	}
	m.decls[d.Name] = d
}

// Get returns the declaration for name, or nil if it is unknown.
func (m *Model) Get(name string) *Declaration {
	return m.decls[name]
}

// Has reports whether name is a known declaration.
func (m *Model) Has(name string) bool {
	_, ok := m.decls[name]
	return ok
}

// Names returns all declared names in insertion order. The returned slice is
// a copy and safe to retain.
func (m *Model) Names() []string {
	out := make([]string, len(m.order))
	copy(out, m.order)
	return out
}

// Len is the number of declarations in the table.
func (m *Model) Len() int {
	return len(m.order)
}

// Declarations returns the declarations in insertion order.
func (m *Model) Declarations() []*Declaration {
	out := make([]*Declaration, 0, len(m.order))
	for _, name := range m.order {
		out = append(out, m.decls[name])
	}
	return out
}
