package extractor

import (
	"testing"

	"umlgen/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractor_Extract(t *testing.T) {
	text := `
@startuml
abstract class Person {
  - name: String
}

class Student {
  - id: String
}

interface Payable {
  + calculateSalary(): double
}
@enduml
`
	m := New().Extract(text)
	require.Equal(t, 3, m.Len())

	t.Run("Kinds", func(t *testing.T) {
		assert.Equal(t, model.KindAbstractClass, m.Get("Person").Kind)
		assert.Equal(t, model.KindClass, m.Get("Student").Kind)
		assert.Equal(t, model.KindInterface, m.Get("Payable").Kind)
	})

	t.Run("Bodies", func(t *testing.T) {
		assert.Contains(t, m.Get("Person").RawBody, "- name: String")
		assert.Contains(t, m.Get("Payable").RawBody, "calculateSalary")
	})

	t.Run("Order", func(t *testing.T) {
		assert.Equal(t, []string{"Person", "Student", "Payable"}, m.Names())
	})
}

func TestExtractor_EmptyInput(t *testing.T) {
	assert.Equal(t, 0, New().Extract("").Len())
	assert.Equal(t, 0, New().Extract("no declarations here").Len())
}

func TestExtractor_AbstractQualifier(t *testing.T) {
	m := New().Extract("abstract class A { }\nclass B { }\nnotabstract class C { }")
	require.Equal(t, 3, m.Len())
	assert.Equal(t, model.KindAbstractClass, m.Get("A").Kind)
	assert.Equal(t, model.KindClass, m.Get("B").Kind)
	// "abstract" has to be its own token right before "class".
	assert.Equal(t, model.KindClass, m.Get("C").Kind)
}

func TestExtractor_NestedBraces(t *testing.T) {
	// The body walker tracks brace depth, so a shallow nested block stays
	// inside the declaration body instead of truncating it.
	m := New().Extract("class A { {static} x\n + later() }")
	require.True(t, m.Has("A"))
	assert.Contains(t, m.Get("A").RawBody, "later()")
}

func TestExtractor_UnterminatedBodySkipped(t *testing.T) {
	m := New().Extract("class Broken { - id: String\nclass Ok { }")
	// Broken never balances its braces and produces no declaration; the
	// later, well-formed block is still picked up.
	assert.False(t, m.Has("Broken"))
	assert.True(t, m.Has("Ok"))
}

func TestExtractor_DuplicateNameLastWins(t *testing.T) {
	t.Run("Class twice", func(t *testing.T) {
		m := New().Extract("class A { - first: int }\nclass A { - second: int }")
		require.Equal(t, 1, m.Len())
		assert.Contains(t, m.Get("A").RawBody, "second")
		assert.NotContains(t, m.Get("A").RawBody, "first")
	})

	t.Run("Interface shadows class", func(t *testing.T) {
		m := New().Extract("interface A { + run(): void }\nclass A { - id: int }")
		require.Equal(t, 1, m.Len())
		assert.Equal(t, model.KindInterface, m.Get("A").Kind)
	})
}
