package ribbon

import (
	"strconv"
	"strings"
)

// Keyword tables for the compact string grammar. Tokens resolve by
// case-insensitive prefix, so every pair within a table must stay
// prefix-free (verified by TestKeywordTablesUnambiguous).
var (
	startKeywords = []string{"position", "direction", "width"}
	pathKeywords  = []string{"line", "arc"}
)

// Parse interprets the compact string form of a ribbon description and
// returns the normalized command sequence: the parsed Start command
// followed by the path commands in input order.
//
// The start clause supplies a 2-tuple position, a direction in degrees
// and a width, in any order. The path clause is an ordered sequence of
// line and arc tokens. Parse performs no geometric validation; that is
// deferred to Build.
func Parse(start, path string) ([]Command, error) {
	s, err := parseStart(start)
	if err != nil {
		return nil, err
	}
	cmds := []Command{s}
	for i, tok := range strings.Fields(path) {
		name, value := splitToken(tok)
		if name == "" {
			return nil, &GrammarError{Clause: "path", Token: tok, Index: i, Reason: "missing command keyword"}
		}
		kw, err := resolveKeyword("path", tok, i, name, pathKeywords)
		if err != nil {
			return nil, err
		}
		switch kw {
		case "line":
			length, err := parseValue("path", tok, i, value)
			if err != nil {
				return nil, err
			}
			cmds = append(cmds, Line{Length: length})
		case "arc":
			vals, err := parseGroup("path", tok, i, value, 2)
			if err != nil {
				return nil, err
			}
			cmds = append(cmds, Arc{Radius: vals[0], Angle: vals[1]})
		}
	}
	return cmds, nil
}

// parseStart interprets the start clause: a position tuple (bare or
// behind the position keyword), a direction and a width.
func parseStart(clause string) (Start, error) {
	var s Start
	var havePos, haveDir, haveWidth bool
	for i, tok := range strings.Fields(clause) {
		name, value := splitToken(tok)
		if name == "" {
			// A bare value group is the position tuple.
			if havePos {
				return s, &GrammarError{Clause: "start", Token: tok, Index: i, Reason: "duplicate position"}
			}
			vals, err := parseGroup("start", tok, i, value, 2)
			if err != nil {
				return s, err
			}
			s.Position = Pt(vals[0], vals[1])
			havePos = true
			continue
		}
		kw, err := resolveKeyword("start", tok, i, name, startKeywords)
		if err != nil {
			return s, err
		}
		switch kw {
		case "position":
			if havePos {
				return s, &GrammarError{Clause: "start", Token: tok, Index: i, Reason: "duplicate position"}
			}
			vals, err := parseGroup("start", tok, i, value, 2)
			if err != nil {
				return s, err
			}
			s.Position = Pt(vals[0], vals[1])
			havePos = true
		case "direction":
			if haveDir {
				return s, &GrammarError{Clause: "start", Token: tok, Index: i, Reason: "duplicate direction"}
			}
			s.Direction, err = parseValue("start", tok, i, value)
			if err != nil {
				return s, err
			}
			haveDir = true
		case "width":
			if haveWidth {
				return s, &GrammarError{Clause: "start", Token: tok, Index: i, Reason: "duplicate width"}
			}
			s.Width, err = parseValue("start", tok, i, value)
			if err != nil {
				return s, err
			}
			haveWidth = true
		}
	}
	switch {
	case !havePos:
		return s, &GrammarError{Clause: "start", Token: clause, Index: 0, Reason: "missing position"}
	case !haveDir:
		return s, &GrammarError{Clause: "start", Token: clause, Index: 0, Reason: "missing direction"}
	case !haveWidth:
		return s, &GrammarError{Clause: "start", Token: clause, Index: 0, Reason: "missing width"}
	}
	return s, nil
}

// splitToken separates a token into its leading keyword letters and the
// remaining value text. An optional colon after the keyword is consumed.
// Tokens with no leading letters (bare value groups) return name == "".
func splitToken(tok string) (name, value string) {
	i := 0
	for i < len(tok) && isLetter(tok[i]) {
		i++
	}
	name, value = tok[:i], tok[i:]
	value = strings.TrimPrefix(value, ":")
	return name, value
}

func isLetter(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}

// resolveKeyword matches name case-insensitively against the table by
// longest-unambiguous-prefix and returns the full keyword.
func resolveKeyword(clause, tok string, idx int, name string, table []string) (string, error) {
	lower := strings.ToLower(name)
	match := ""
	count := 0
	for _, kw := range table {
		if strings.HasPrefix(kw, lower) {
			match = kw
			count++
		}
	}
	switch count {
	case 1:
		return match, nil
	case 0:
		return "", &GrammarError{Clause: clause, Token: tok, Index: idx, Reason: "unknown keyword " + strconv.Quote(name)}
	default:
		return "", &GrammarError{Clause: clause, Token: tok, Index: idx, Reason: "ambiguous keyword " + strconv.Quote(name)}
	}
}

// parseValue converts a single numeric value.
func parseValue(clause, tok string, idx int, s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, &GrammarError{Clause: clause, Token: tok, Index: idx, Reason: "invalid number " + strconv.Quote(s)}
	}
	return v, nil
}

// parseGroup converts a multi-value group delimited by "," or "/",
// optionally wrapped in parentheses, enforcing the expected arity.
func parseGroup(clause, tok string, idx int, s string, arity int) ([]float64, error) {
	s = strings.TrimPrefix(s, "(")
	s = strings.TrimSuffix(s, ")")
	sep := ","
	if strings.Contains(s, "/") {
		sep = "/"
	}
	parts := strings.Split(s, sep)
	if len(parts) != arity {
		return nil, &GrammarError{
			Clause: clause, Token: tok, Index: idx,
			Reason: "expected " + strconv.Itoa(arity) + " values, got " + strconv.Itoa(len(parts)),
		}
	}
	vals := make([]float64, arity)
	for i, part := range parts {
		v, err := parseValue(clause, tok, idx, part)
		if err != nil {
			return nil, err
		}
		vals[i] = v
	}
	return vals, nil
}

// RawCommand is the structured form of a single command: a kind plus the
// parameters that kind uses. It is the codec-friendly mirror of the
// typed Command variants and unmarshals directly from YAML.
type RawCommand struct {
	Kind      string    `yaml:"kind"`
	Position  []float64 `yaml:"position,omitempty,flow"`
	Direction float64   `yaml:"direction,omitempty"`
	Width     float64   `yaml:"width,omitempty"`
	Length    float64   `yaml:"length,omitempty"`
	Radius    float64   `yaml:"radius,omitempty"`
	Angle     float64   `yaml:"angle,omitempty"`
}

// FromRaw converts structured commands into the normalized typed
// sequence. It is the structured-form counterpart of Parse and applies
// the same policy: grammar checks only, geometry deferred to Build.
func FromRaw(raw []RawCommand) ([]Command, error) {
	cmds := make([]Command, 0, len(raw))
	for i, rc := range raw {
		switch strings.ToLower(rc.Kind) {
		case "start":
			if len(rc.Position) != 2 {
				return nil, &GrammarError{
					Clause: "commands", Token: rc.Kind, Index: i,
					Reason: "position must have exactly 2 values, got " + strconv.Itoa(len(rc.Position)),
				}
			}
			cmds = append(cmds, Start{
				Position:  Pt(rc.Position[0], rc.Position[1]),
				Direction: rc.Direction,
				Width:     rc.Width,
			})
		case "line":
			cmds = append(cmds, Line{Length: rc.Length})
		case "arc":
			cmds = append(cmds, Arc{Radius: rc.Radius, Angle: rc.Angle})
		default:
			return nil, &GrammarError{
				Clause: "commands", Token: rc.Kind, Index: i,
				Reason: "unknown command kind " + strconv.Quote(rc.Kind),
			}
		}
	}
	return cmds, nil
}
