package ribbon

// Definition is a complete ribbon description as found in YAML files.
// Either the compact string form (Start and Path clauses) or the
// structured Commands list may be set; Commands wins when both are
// present.
//
//	start: "(10,0) D30 W0.5"
//	path: "L:2.0 A:2/145 L2 arc(0.5,-170) line:3"
//
// or:
//
//	commands:
//	  - {kind: start, position: [10, 0], direction: 30, width: 0.5}
//	  - {kind: line, length: 2}
//	  - {kind: arc, radius: 2, angle: 145}
type Definition struct {
	Start    string       `yaml:"start,omitempty"`
	Path     string       `yaml:"path,omitempty"`
	Commands []RawCommand `yaml:"commands,omitempty"`
}

// Parse normalizes the definition into a typed command sequence.
func (d Definition) Parse() ([]Command, error) {
	if len(d.Commands) > 0 {
		return FromRaw(d.Commands)
	}
	return Parse(d.Start, d.Path)
}

// Build parses the definition and builds the closed ribbon loop.
func (d Definition) Build() (*Path, error) {
	cmds, err := d.Parse()
	if err != nil {
		return nil, err
	}
	return Build(cmds)
}
