package model

// Kind classifies a parsed declaration.
type Kind string

const (
	KindClass         Kind = "class"
	KindAbstractClass Kind = "abstract_class"
	KindInterface     Kind = "interface"
)

// Visibility is the accessibility of a member, mapped from the diagram's
// single-character markers (+ - # ~).
type Visibility string

const (
	Public         Visibility = "public"
	Private        Visibility = "private"
	Protected      Visibility = "protected"
	PackagePrivate Visibility = "package-private"
)

// DefaultAttributeType is used when an attribute line carries no ": type" suffix.
const DefaultAttributeType = "Object"

// VoidReturnType is used when a method line carries no trailing return type.
const VoidReturnType = "void"

// Attribute is a single parsed field of a class declaration.
type Attribute struct {
	Visibility Visibility `json:"visibility"`
	Type       string     `json:"type"`
	Name       string     `json:"name"`
}

// Param is one entry of a method's parameter list. A Param with an empty Type
// holds a raw fallback token that did not split into a name:type pair.
type Param struct {
	Name string `json:"name"`
	Type string `json:"type,omitempty"`
}

// Method is a single parsed operation. Abstract and Static are populated by the
// member resolver when it strips {abstract}/{static} marker tokens from the
// declared name, so renderers never have to inspect the name string for
// modifier information.
type Method struct {
	Visibility Visibility `json:"visibility"`
	Name       string     `json:"name"`
	Parameters []Param    `json:"parameters"`
	ReturnType string     `json:"return_type"`
	Abstract   bool       `json:"abstract,omitempty"`
	Static     bool       `json:"static,omitempty"`
}

// Declaration is one named type extracted from the diagram. RawBody holds the
// unparsed member text between the declaration's braces; Attributes and
// Methods are filled in by the member resolver.
type Declaration struct {
	Name       string      `json:"name"`
	Kind       Kind        `json:"kind"`
	RawBody    string      `json:"-"`
	Attributes []Attribute `json:"attributes"`
	Methods    []Method    `json:"methods"`
}

// Relationships records the generalization and realization edges found in the
// diagram. Both maps only ever reference names present in the declaration
// table; edges with an unknown endpoint are dropped during resolution.
type Relationships struct {
	// Extends maps a child name to its single parent name.
	Extends map[string]string `json:"extends"`
	// Implements maps a class name to its interfaces, de-duplicated, in
	// first-appearance order.
	Implements map[string][]string `json:"implements"`
}

// NewRelationships returns an empty relationship table.
func NewRelationships() *Relationships {
	return &Relationships{
		Extends:    make(map[string]string),
		Implements: make(map[string][]string),
	}
}

// AddImplements appends iface to the class's interface list unless it is
// already present.
func (r *Relationships) AddImplements(class, iface string) {
	for _, existing := range r.Implements[class] {
		if existing == iface {
			return
		}
	}
	r.Implements[class] = append(r.Implements[class], iface)
}
