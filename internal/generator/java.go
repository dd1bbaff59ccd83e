package generator

import (
	"fmt"
	"strings"

	"umlgen/internal/model"
)

// JavaGenerator renders resolved declarations into Java source skeletons,
// one artifact per declared name.
type JavaGenerator struct{}

// NewJavaGenerator creates a Java renderer.
func NewJavaGenerator() *JavaGenerator {
	return &JavaGenerator{}
}

// Render produces one Java source text per declaration, keyed by the declared
// name. The caller is responsible for persisting each artifact as
// "<Name>.java".
func (g *JavaGenerator) Render(m *model.Model, rels *model.Relationships) map[string]string {
	if rels == nil {
		rels = model.NewRelationships()
	}
	artifacts := make(map[string]string, m.Len())
	for _, decl := range m.Declarations() {
		artifacts[decl.Name] = g.renderDeclaration(decl, m, rels)
	}
	return artifacts
}

func (g *JavaGenerator) renderDeclaration(d *model.Declaration, m *model.Model, rels *model.Relationships) string {
	var sb strings.Builder

	writeImports(&sb, d)

	sb.WriteString(declarationHeader(d, rels))
	sb.WriteString(" {\n")

	// Interfaces carry no fields and no constructor, even when the member
	// resolver parsed attribute-shaped lines out of their body.
	if d.Kind != model.KindInterface {
		for _, attr := range d.Attributes {
			sb.WriteString("    " + joinTokens(javaVisibility(attr.Visibility), attr.Type, attr.Name) + ";\n")
		}
		if len(d.Attributes) > 0 {
			sb.WriteString("\n")
		}

		writeConstructor(&sb, d, m, rels)
		writeAccessors(&sb, d)
	}

	for _, method := range d.Methods {
		writeMethod(&sb, d, method)
	}

	sb.WriteString("}\n")
	return sb.String()
}

func declarationHeader(d *model.Declaration, rels *model.Relationships) string {
	var header string
	switch d.Kind {
	case model.KindAbstractClass:
		header = "public abstract class " + d.Name
	case model.KindInterface:
		header = "public interface " + d.Name
	default:
		header = "public class " + d.Name
	}

	if parent, ok := rels.Extends[d.Name]; ok {
		header += " extends " + parent
	}
	if ifaces := rels.Implements[d.Name]; len(ifaces) > 0 && d.Kind != model.KindInterface {
		header += " implements " + strings.Join(ifaces, ", ")
	}
	return header
}

// parentClassAttributes returns the attributes contributed by the declared
// parent, or nil when there is no parent or the parent is an interface.
// Only one level is considered; grandparent attributes are not collected.
func parentClassAttributes(d *model.Declaration, m *model.Model, rels *model.Relationships) []model.Attribute {
	parentName, ok := rels.Extends[d.Name]
	if !ok {
		return nil
	}
	parent := m.Get(parentName)
	if parent == nil || parent.Kind == model.KindInterface {
		return nil
	}
	return parent.Attributes
}

func writeConstructor(sb *strings.Builder, d *model.Declaration, m *model.Model, rels *model.Relationships) {
	parentAttrs := parentClassAttributes(d, m, rels)

	var params []string
	for _, attr := range parentAttrs {
		params = append(params, attr.Type+" "+attr.Name)
	}
	for _, attr := range d.Attributes {
		params = append(params, attr.Type+" "+attr.Name)
	}

	fmt.Fprintf(sb, "    public %s(%s) {\n", d.Name, strings.Join(params, ", "))
	if len(parentAttrs) > 0 {
		var superArgs []string
		for _, attr := range parentAttrs {
			superArgs = append(superArgs, attr.Name)
		}
		fmt.Fprintf(sb, "        super(%s);\n", strings.Join(superArgs, ", "))
	}
	for _, attr := range d.Attributes {
		fmt.Fprintf(sb, "        this.%s = %s;\n", attr.Name, attr.Name)
	}
	sb.WriteString("    }\n\n")
}

func writeAccessors(sb *strings.Builder, d *model.Declaration) {
	for _, attr := range d.Attributes {
		if attr.Visibility != model.Private {
			continue
		}
		cap := capitalize(attr.Name)
		fmt.Fprintf(sb, "    public %s get%s() {\n", attr.Type, cap)
		fmt.Fprintf(sb, "        return %s;\n", attr.Name)
		sb.WriteString("    }\n\n")
		fmt.Fprintf(sb, "    public void set%s(%s %s) {\n", cap, attr.Type, attr.Name)
		fmt.Fprintf(sb, "        this.%s = %s;\n", attr.Name, attr.Name)
		sb.WriteString("    }\n\n")
	}
}

func writeMethod(sb *strings.Builder, d *model.Declaration, method model.Method) {
	visibility := method.Visibility
	signatureOnly := false
	var modifiers []string

	if d.Kind == model.KindInterface {
		// Interface methods are implicitly public and abstract; modifier
		// markers are stripped but never rendered.
		visibility = model.Public
		signatureOnly = true
	} else {
		if d.Kind == model.KindAbstractClass && visibility == model.Public && method.Abstract {
			modifiers = append(modifiers, "abstract")
			signatureOnly = true
		}
		if method.Static {
			modifiers = append(modifiers, "static")
		}
	}

	tokens := append([]string{javaVisibility(visibility)}, modifiers...)
	tokens = append(tokens, method.ReturnType, method.Name+"("+renderParams(method.Parameters)+")")
	sb.WriteString("    " + joinTokens(tokens...))

	if signatureOnly {
		sb.WriteString(";\n\n")
		return
	}

	sb.WriteString(" {\n")
	sb.WriteString("        // TODO: Implement method logic\n")
	if method.ReturnType != model.VoidReturnType {
		fmt.Fprintf(sb, "        return default%sValue(); // Placeholder return\n", method.ReturnType)
	}
	sb.WriteString("    }\n\n")
}

func renderParams(params []model.Param) string {
	var parts []string
	for _, p := range params {
		if p.Type == "" {
			parts = append(parts, p.Name)
		} else {
			parts = append(parts, p.Type+" "+p.Name)
		}
	}
	return strings.Join(parts, ", ")
}

// javaVisibility maps a member visibility to its Java keyword. Package-private
// is Java's default and renders as nothing.
func javaVisibility(v model.Visibility) string {
	if v == model.PackagePrivate {
		return ""
	}
	return string(v)
}

// capitalize upper-cases the first character and lower-cases the rest, so
// "courseId" becomes "Courseid". Conventional camel-casing is intentionally
// not applied.
func capitalize(name string) string {
	if name == "" {
		return name
	}
	return strings.ToUpper(name[:1]) + strings.ToLower(name[1:])
}

func joinTokens(tokens ...string) string {
	var kept []string
	for _, tok := range tokens {
		if tok != "" {
			kept = append(kept, tok)
		}
	}
	return strings.Join(kept, " ")
}
