package extractor

import (
	"regexp"

	"umlgen/internal/model"
)

// Header patterns locate declaration openings; the body itself is captured by
// a depth-tracking brace walk rather than a regex, so a body containing nested
// braces is not truncated at the first closing brace.
var (
	classHeaderPattern     = regexp.MustCompile(`(?:\b(abstract)\s+)?\bclass\s+(\w+)\s*\{`)
	interfaceHeaderPattern = regexp.MustCompile(`\binterface\s+(\w+)\s*\{`)
)

// Extractor scans raw diagram text and produces the declaration table.
// Member bodies are stored unparsed; the resolver package parses them.
type Extractor struct{}

// New creates a declaration extractor.
func New() *Extractor {
	return &Extractor{}
}

// Extract finds every class, abstract class, and interface declaration in the
// diagram text. Declarations sharing a name silently overwrite earlier ones
// (interfaces are scanned after classes, so an interface wins a name clash
// with a class). Unterminated bodies produce no declaration.
func (e *Extractor) Extract(text string) *model.Model {
	m := model.NewModel()

	var consumed []span
	for _, match := range classHeaderPattern.FindAllStringSubmatchIndex(text, -1) {
		// match[2],match[3] = abstract qualifier; match[4],match[5] = name.
		start, headerEnd := match[0], match[1]
		if inside(consumed, start) {
			continue
		}
		body, bodyEnd, ok := braceBody(text, headerEnd)
		if !ok {
			continue
		}
		consumed = append(consumed, span{start, bodyEnd})

		kind := model.KindClass
		if match[2] >= 0 {
			kind = model.KindAbstractClass
		}
		m.Add(&model.Declaration{
			Name:    text[match[4]:match[5]],
			Kind:    kind,
			RawBody: body,
		})
	}

	for _, match := range interfaceHeaderPattern.FindAllStringSubmatchIndex(text, -1) {
		start, headerEnd := match[0], match[1]
		if inside(consumed, start) {
			continue
		}
		body, bodyEnd, ok := braceBody(text, headerEnd)
		if !ok {
			continue
		}
		consumed = append(consumed, span{start, bodyEnd})

		m.Add(&model.Declaration{
			Name:    text[match[2]:match[3]],
			Kind:    model.KindInterface,
			RawBody: body,
		})
	}

	return m
}

type span struct {
	start, end int
}

func inside(spans []span, pos int) bool {
	for _, s := range spans {
		if pos >= s.start && pos < s.end {
			return true
		}
	}
	return false
}

// braceBody returns the text between the opening brace that ends at open and
// its balanced closing brace, along with the index just past that closing
// brace. It returns ok=false when the block is never closed.
func braceBody(text string, open int) (body string, end int, ok bool) {
	depth := 1
	for i := open; i < len(text); i++ {
		switch text[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return text[open:i], i + 1, true
			}
		}
	}
	return "", 0, false
}
