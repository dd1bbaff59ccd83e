package resolver

import (
	"regexp"
	"strings"

	"umlgen/internal/model"
)

// memberPattern recognizes one body line: an optional visibility marker, any
// number of {modifier} tokens, the member name, an optional ": type" suffix,
// an optional parenthesized parameter list, and an optional trailing return
// type. A line is a method iff the parameter list is present (even empty).
var memberPattern = regexp.MustCompile(`^\s*([+\-#~])?\s*((?:\{\w+\}\s*)*)(\w+)(?:\s*:\s*(\w+))?(?:\s*\(([^)]*)\))?(?:\s*:\s*(\w+))?\s*$`)

var visibilities = map[string]model.Visibility{
	"+": model.Public,
	"-": model.Private,
	"#": model.Protected,
	"~": model.PackagePrivate,
}

// MemberStats summarizes one member-resolution pass.
type MemberStats struct {
	Attributes int
	Methods    int
	Skipped    int
}

// MemberResolver parses each declaration's raw body into attribute and method
// records. It runs best-effort: lines that do not match the member pattern are
// counted as skipped, never reported as errors.
type MemberResolver struct{}

// NewMemberResolver creates a member resolver.
func NewMemberResolver() *MemberResolver {
	return &MemberResolver{}
}

// Resolve populates Attributes and Methods on every declaration in the table
// from its RawBody, in body-line order.
func (r *MemberResolver) Resolve(m *model.Model) MemberStats {
	stats := MemberStats{}
	for _, decl := range m.Declarations() {
		for _, line := range strings.Split(decl.RawBody, "\n") {
			if strings.TrimSpace(line) == "" {
				continue
			}
			match := memberPattern.FindStringSubmatchIndex(line)
			if match == nil {
				stats.Skipped++
				continue
			}

			vis := model.Public
			if marker := group(line, match, 1); marker != "" {
				if mapped, ok := visibilities[marker]; ok {
					vis = mapped
				}
			}
			abstract, static := parseModifiers(group(line, match, 2))
			name := group(line, match, 3)

			if match[2*5] >= 0 { // parameter list present: a method
				returnType := group(line, match, 6)
				if returnType == "" {
					returnType = model.VoidReturnType
				}
				decl.Methods = append(decl.Methods, model.Method{
					Visibility: vis,
					Name:       name,
					Parameters: parseParams(group(line, match, 5)),
					ReturnType: returnType,
					Abstract:   abstract,
					Static:     static,
				})
				stats.Methods++
			} else {
				attrType := group(line, match, 4)
				if attrType == "" {
					attrType = model.DefaultAttributeType
				}
				decl.Attributes = append(decl.Attributes, model.Attribute{
					Visibility: vis,
					Type:       attrType,
					Name:       name,
				})
				stats.Attributes++
			}
		}
	}
	return stats
}

func group(line string, match []int, n int) string {
	if match[2*n] < 0 {
		return ""
	}
	return line[match[2*n]:match[2*n+1]]
}

// parseModifiers reads the {abstract}/{static} marker tokens stripped from the
// member name position. Unknown markers are discarded.
func parseModifiers(markers string) (abstract, static bool) {
	for _, tok := range strings.Fields(markers) {
		switch strings.ToLower(strings.Trim(tok, "{}")) {
		case "abstract":
			abstract = true
		case "static":
			static = true
		}
	}
	return abstract, static
}

// parseParams splits a raw parameter list on commas, then each parameter on
// ":" into a (name, type) pair. A parameter that does not split into exactly
// two parts is kept as a raw fallback token (empty Type).
func parseParams(raw string) []model.Param {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	var params []model.Param
	for _, p := range strings.Split(raw, ",") {
		parts := strings.Split(strings.TrimSpace(p), ":")
		if len(parts) == 2 {
			params = append(params, model.Param{
				Name: strings.TrimSpace(parts[0]),
				Type: strings.TrimSpace(parts[1]),
			})
		} else {
			params = append(params, model.Param{Name: strings.TrimSpace(p)})
		}
	}
	return params
}
