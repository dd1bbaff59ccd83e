package generator

import (
	"strings"

	"umlgen/internal/model"
)

// writeImports emits convenience imports for well-known auxiliary types when
// any attribute, parameter, or return type mentions them. This is a substring
// check over the rendered type strings, not token matching.
func writeImports(sb *strings.Builder, d *model.Declaration) {
	if mentionsType(d, "Date") {
		sb.WriteString("import java.util.Date;\n")
	}
	if mentionsType(d, "List") {
		sb.WriteString("import java.util.List;\n")
		sb.WriteString("import java.util.ArrayList;\n")
	}
	if sb.Len() > 0 {
		sb.WriteString("\n")
	}
}

func mentionsType(d *model.Declaration, typeName string) bool {
	for _, attr := range d.Attributes {
		if strings.Contains(attr.Type, typeName) {
			return true
		}
	}
	for _, method := range d.Methods {
		if strings.Contains(renderParams(method.Parameters), typeName) {
			return true
		}
		if strings.Contains(method.ReturnType, typeName) {
			return true
		}
	}
	return false
}
