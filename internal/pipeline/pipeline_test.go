package pipeline

import (
	"strings"
	"testing"

	"umlgen/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_EmptyInput(t *testing.T) {
	result := Run("")
	assert.Empty(t, result.Files)
	assert.Equal(t, 0, result.Model.Len())
}

func TestRun_NoDeclarations(t *testing.T) {
	result := Run("@startuml\ntitle Nothing here\n@enduml\n")
	assert.Empty(t, result.Files)
}

func TestRun_OneArtifactPerDeclaration(t *testing.T) {
	text := `
abstract class Person { - name: String }
class Student { - id: String }
interface Payable { + pay(): void }
`
	result := Run(text)
	require.Len(t, result.Files, 3)
	for _, name := range []string{"Person", "Student", "Payable"} {
		artifact, ok := result.Files[name]
		require.True(t, ok, "missing artifact for %s", name)
		header := strings.SplitN(artifact, "\n", 2)[0]
		assert.Contains(t, header, name)
	}
}

func TestRun_InheritanceScenario(t *testing.T) {
	text := `
abstract class Person { - name: String }
class Student { - id: String }
Person <|-- Student
`
	result := Run(text)
	require.Len(t, result.Files, 2)

	student := result.Files["Student"]
	assert.Contains(t, student, "public class Student extends Person {")
	// Parent attributes are prepended to the constructor parameters and
	// forwarded through super() before the class's own assignments.
	assert.Contains(t, student, "public Student(String name, String id) {")
	superIdx := strings.Index(student, "super(name);")
	assignIdx := strings.Index(student, "this.id = id;")
	require.True(t, superIdx >= 0)
	require.True(t, assignIdx >= 0)
	assert.Less(t, superIdx, assignIdx)

	person := result.Files["Person"]
	assert.Contains(t, person, "public abstract class Person {")
	assert.NotContains(t, person, "extends")
}

func TestRun_UndeclaredParentProducesNoExtends(t *testing.T) {
	text := `
class Student { - id: String }
Person <|-- Student
`
	result := Run(text)
	require.Len(t, result.Files, 1)
	assert.NotContains(t, result.Files["Student"], "extends")
	assert.Contains(t, result.Files["Student"], "public Student(String id) {")
}

func TestRun_RealizationAccumulates(t *testing.T) {
	text := `
class Professor { }
interface Payable { + calculateSalary(): double }
interface Teachable { + teach(): void }
Professor ..|> Payable
Professor ..|> Teachable
`
	result := Run(text)
	assert.Contains(t, result.Files["Professor"], "public class Professor implements Payable, Teachable {")
}

func TestRun_MalformedInputDegradesGracefully(t *testing.T) {
	text := `
class Good { - id: String }
class Broken { never closed
?? random noise ??
`
	result := Run(text)
	require.Len(t, result.Files, 1)
	assert.Contains(t, result.Files["Good"], "public class Good {")
}

func TestRun_SampleUniversityDiagram(t *testing.T) {
	text := `
@startuml
abstract class Person {
  - name: String
  - dob: Date
  + {abstract} getAge(): int
  + getDetails(): String
}

class Student {
  - studentId: String
  + getStudentId(): String
}

class Professor {
  - employeeId: String
}

interface Payable {
  + calculateSalary(): double
}

Person <|-- Student
Person <|-- Professor
Professor ..|> Payable
@enduml
`
	result := Run(text)
	require.Len(t, result.Files, 4)

	t.Run("Relations", func(t *testing.T) {
		assert.Equal(t, "Person", result.Relations.Extends["Student"])
		assert.Equal(t, "Person", result.Relations.Extends["Professor"])
		assert.Equal(t, []string{"Payable"}, result.Relations.Implements["Professor"])
	})

	t.Run("Person artifact", func(t *testing.T) {
		person := result.Files["Person"]
		assert.Contains(t, person, "import java.util.Date;")
		assert.Contains(t, person, "public abstract class Person {")
		assert.Contains(t, person, "public abstract int getAge();")
		assert.Contains(t, person, "public String getDetails() {")
		assert.Contains(t, person, "return defaultStringValue(); // Placeholder return")
	})

	t.Run("Professor artifact", func(t *testing.T) {
		professor := result.Files["Professor"]
		assert.Contains(t, professor, "public class Professor extends Person implements Payable {")
		assert.Contains(t, professor, "public Professor(String name, Date dob, String employeeId) {")
		assert.Contains(t, professor, "super(name, dob);")
		// Imports consider only the declaration's own members, not the
		// parent attributes flowing into the constructor signature.
		assert.NotContains(t, professor, "import java.util.Date;")
	})

	t.Run("Payable artifact", func(t *testing.T) {
		payable := result.Files["Payable"]
		assert.Contains(t, payable, "public interface Payable {")
		assert.Contains(t, payable, "public double calculateSalary();")
		assert.NotContains(t, payable, "TODO")
	})
}

func TestGenerate_IsPure(t *testing.T) {
	text := "class A { - id: String }"
	first := Generate(text)
	second := Generate(text)
	assert.Equal(t, first, second)

	// Mutating one result must not leak into a fresh invocation.
	first["A"] = "tampered"
	assert.NotEqual(t, first["A"], Generate(text)["A"])
}

func TestRun_InterfaceAttributeSuppression(t *testing.T) {
	text := `
interface Payable {
  - balance: double
  + pay(): void
}
`
	result := Run(text)
	payable := result.Files["Payable"]

	// The member resolver still parses the attribute line...
	require.Len(t, result.Model.Get("Payable").Attributes, 1)
	// ...but the renderer suppresses fields, constructor, and accessors.
	assert.NotContains(t, payable, "double balance;")
	assert.NotContains(t, payable, "Payable(")
	assert.NotContains(t, payable, "getBalance")
}

func TestRun_MethodWithEmptyParamsIsNotAttribute(t *testing.T) {
	result := Run("class A { + getName(): String }")

	decl := result.Model.Get("A")
	require.Len(t, decl.Methods, 1)
	assert.Empty(t, decl.Attributes)
	assert.Equal(t, "String", decl.Methods[0].ReturnType)
	assert.Contains(t, result.Files["A"], "public String getName() {")
}

func TestRun_DefaultObjectType(t *testing.T) {
	result := Run("class A { - id }")
	assert.Equal(t, model.DefaultAttributeType, result.Model.Get("A").Attributes[0].Type)
	assert.Contains(t, result.Files["A"], "private Object id;")
}
