package ribbon

import (
	"reflect"
	"testing"

	"gopkg.in/yaml.v3"
)

const compactYAML = `
start: "(10,0) D30 W0.5"
path: "L:2.0 A:2/145 L2 arc(0.5,-170) line:3"
`

const structuredYAML = `
commands:
  - {kind: start, position: [10, 0], direction: 30, width: 0.5}
  - {kind: line, length: 2}
  - {kind: arc, radius: 2, angle: 145}
  - {kind: line, length: 2}
  - {kind: arc, radius: 0.5, angle: -170}
  - {kind: line, length: 3}
`

func TestDefinition_YAMLFormsAgree(t *testing.T) {
	var compact, structured Definition
	if err := yaml.Unmarshal([]byte(compactYAML), &compact); err != nil {
		t.Fatalf("unmarshal compact: %v", err)
	}
	if err := yaml.Unmarshal([]byte(structuredYAML), &structured); err != nil {
		t.Fatalf("unmarshal structured: %v", err)
	}

	a, err := compact.Parse()
	if err != nil {
		t.Fatalf("compact.Parse() error = %v", err)
	}
	b, err := structured.Parse()
	if err != nil {
		t.Fatalf("structured.Parse() error = %v", err)
	}
	if !reflect.DeepEqual(a, b) {
		t.Errorf("forms disagree:\ncompact: %#v\nstructured: %#v", a, b)
	}
}

func TestDefinition_Build(t *testing.T) {
	def := Definition{Start: "(0,0) D0 W1", Path: "L10"}
	p, err := def.Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if len(p.Segments()) != 4 {
		t.Errorf("segment count = %d, want 4", len(p.Segments()))
	}
}

func TestDefinition_CommandsTakePrecedence(t *testing.T) {
	def := Definition{
		Start: "(0,0) D0 W1",
		Path:  "L10",
		Commands: []RawCommand{
			{Kind: "start", Position: []float64{0, 0}, Width: 1},
			{Kind: "line", Length: 5},
		},
	}
	cmds, err := def.Parse()
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if cmds[1] != (Line{Length: 5}) {
		t.Errorf("command = %#v, want the structured Line{5}", cmds[1])
	}
}
