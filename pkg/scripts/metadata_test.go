package scripts

import (
	"strings"
	"testing"

	"github.com/shizhongming/cea-plugin-bia/pkg/params"
)

const testSchemaText = `[agriculture]
crop-on-roof = True
crop-on-roof.type = BooleanParameter

type-crop = AmaranthRed
type-crop.type = ChoiceParameter
type-crop.choices = AmaranthRed, Lettuce
`

const testScriptsYML = `scripts:
  - name: agriculture-potential
    label: Agriculture potential
    description: Reports the surfaces available for crops.
    parameters:
      - agriculture:crop-on-roof
      - agriculture:type-crop
`

func TestLoadMetadata(t *testing.T) {
	f, err := LoadMetadata([]byte(testScriptsYML))
	if err != nil {
		t.Fatalf("LoadMetadata failed: %v", err)
	}
	if len(f.Scripts) != 1 {
		t.Fatalf("Expected 1 script, got %d", len(f.Scripts))
	}

	m, err := f.Get("agriculture-potential")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if m.Label != "Agriculture potential" {
		t.Errorf("Label = %q", m.Label)
	}
	if len(m.Parameters) != 2 {
		t.Errorf("Parameters = %v", m.Parameters)
	}

	if _, err := f.Get("other"); err == nil {
		t.Error("Get of an undeclared script should fail")
	}
}

func TestLoadMetadataRejectsDuplicates(t *testing.T) {
	doc := `scripts:
  - name: dli
  - name: dli
`
	if _, err := LoadMetadata([]byte(doc)); err == nil {
		t.Error("Duplicate script names should fail")
	}
}

func TestResolveParameters(t *testing.T) {
	schema, err := params.Load(testSchemaText)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	f, err := LoadMetadata([]byte(testScriptsYML))
	if err != nil {
		t.Fatalf("LoadMetadata failed: %v", err)
	}
	m, _ := f.Get("agriculture-potential")

	resolved, err := m.ResolveParameters(schema)
	if err != nil {
		t.Fatalf("ResolveParameters failed: %v", err)
	}
	if len(resolved) != 2 {
		t.Fatalf("Resolved %d parameters, expected 2", len(resolved))
	}
	if resolved[0].Name() != "crop-on-roof" || resolved[1].Name() != "type-crop" {
		t.Errorf("Resolution order = [%s %s]", resolved[0].Name(), resolved[1].Name())
	}
}

func TestResolveDanglingReference(t *testing.T) {
	schema, err := params.Load(testSchemaText)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	m := &Metadata{Name: "dli", Parameters: []string{"agriculture:annual-radiation-threshold-BIA"}}

	_, err = m.ResolveParameters(schema)
	if err == nil {
		t.Fatal("Dangling reference should fail")
	}
	if !strings.Contains(err.Error(), "annual-radiation-threshold-BIA") {
		t.Errorf("Error should name the missing parameter: %v", err)
	}
}

func TestResolveMalformedReference(t *testing.T) {
	schema, err := params.Load(testSchemaText)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	m := &Metadata{Name: "dli", Parameters: []string{"crop-on-roof"}}

	if _, err := m.ResolveParameters(schema); err == nil {
		t.Error("A reference without a section should fail")
	}
}

func TestCollectValues(t *testing.T) {
	schema, err := params.Load(testSchemaText)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	f, _ := LoadMetadata([]byte(testScriptsYML))
	m, _ := f.Get("agriculture-potential")

	values, err := m.CollectValues(schema)
	if err != nil {
		t.Fatalf("CollectValues failed: %v", err)
	}
	if values["agriculture:crop-on-roof"] != true {
		t.Errorf("crop-on-roof = %v", values["agriculture:crop-on-roof"])
	}
	if values["agriculture:type-crop"] != "AmaranthRed" {
		t.Errorf("type-crop = %v", values["agriculture:type-crop"])
	}
}
