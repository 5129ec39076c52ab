package params

import (
	"bufio"
	"errors"
	"fmt"
	"strings"
)

// builder accumulates the sibling lines of one parameter (default, .type,
// .choices, .help) during the load pass. The immutable Parameter is only
// constructed once the whole input is consumed, so the attribute lines may
// arrive in any order.
type builder struct {
	section     string
	name        string
	firstLine   int
	rawDefault  string
	hasDefault  bool
	kindName    string
	hasKind     bool
	kindLine    int
	choices     []string
	hasChoices  bool
	choicesLine int
	help        string
	hasHelp     bool
}

// Load parses the flat key/attribute text format into a Schema. It consumes
// an in-memory buffer supplied by the caller; the core performs no file I/O.
//
// Structural malformation (a value line outside any section, a duplicate key
// within a section) aborts the load immediately. Kind and constraint problems
// (missing or unrecognized .type, choices attached to a non-choice kind, a
// default that fails its own kind) are collected across the whole input and
// returned together as a LoadError, so one bad parameter does not hide the
// rest.
func Load(text string) (*Schema, error) {
	var (
		sectionOrder []string
		paramOrder   = make(map[string][]string)
		builders     = make(map[string]map[string]*builder)
		current      string
		inSection    bool
		lineNo       int
	)

	scanner := bufio.NewScanner(strings.NewReader(text))
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
			name := strings.TrimSpace(line[1 : len(line)-1])
			if name == "" {
				return nil, &FormatError{Line: lineNo, Reason: "empty section name"}
			}
			if _, seen := builders[name]; !seen {
				sectionOrder = append(sectionOrder, name)
				builders[name] = make(map[string]*builder)
			}
			current = name
			inSection = true
			continue
		}

		key, value, found := strings.Cut(line, "=")
		if !found {
			// Not a recognized line shape; skipped like a blank line.
			continue
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)

		if !inSection {
			return nil, &FormatError{Line: lineNo, Key: key, Reason: "value outside section"}
		}

		base, suffix := splitKey(key)
		b := builders[current][base]
		if b == nil {
			b = &builder{section: current, name: base, firstLine: lineNo}
			builders[current][base] = b
			paramOrder[current] = append(paramOrder[current], base)
		}

		switch suffix {
		case "":
			if b.hasDefault {
				return nil, &FormatError{Section: current, Key: base, Line: lineNo, Reason: "duplicate key"}
			}
			b.rawDefault = value
			b.hasDefault = true
		case "type":
			if b.hasKind {
				return nil, &FormatError{Section: current, Key: base, Line: lineNo, Reason: "duplicate .type declaration"}
			}
			b.kindName = value
			b.hasKind = true
			b.kindLine = lineNo
		case "choices":
			if b.hasChoices {
				return nil, &FormatError{Section: current, Key: base, Line: lineNo, Reason: "duplicate .choices declaration"}
			}
			b.choices = splitList(value)
			b.hasChoices = true
			b.choicesLine = lineNo
		case "help":
			if b.hasHelp {
				return nil, &FormatError{Section: current, Key: base, Line: lineNo, Reason: "duplicate .help declaration"}
			}
			b.help = value
			b.hasHelp = true
		default:
			return nil, &FormatError{Section: current, Key: key, Line: lineNo,
				Reason: fmt.Sprintf("unrecognized attribute .%s", suffix)}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading schema text: %w", err)
	}

	// End-of-pass integrity sweep: every parameter must have resolved exactly
	// one recognized kind and a default that parses under it.
	schema := newSchema()
	var formatErrs []*FormatError
	for _, secName := range sectionOrder {
		sec := schema.section(secName)
		for _, paramName := range paramOrder[secName] {
			p, ferr := builders[secName][paramName].finalize()
			if ferr != nil {
				formatErrs = append(formatErrs, ferr)
				continue
			}
			sec.add(p)
		}
	}
	if len(formatErrs) > 0 {
		return nil, &LoadError{Errors: formatErrs}
	}
	return schema, nil
}

// finalize validates the accumulated attributes and constructs the Parameter.
func (b *builder) finalize() (*Parameter, *FormatError) {
	if !b.hasKind {
		return nil, &FormatError{Section: b.section, Key: b.name, Line: b.firstLine,
			Reason: "missing .type declaration"}
	}
	kind := Kind(b.kindName)
	if !knownKinds[kind] {
		return nil, &FormatError{Section: b.section, Key: b.name, Line: b.kindLine,
			Reason: fmt.Sprintf("unrecognized parameter type '%s'", b.kindName)}
	}

	choiceKind := kind == KindChoice || kind == KindMultiChoice
	if b.hasChoices && !choiceKind {
		return nil, &FormatError{Section: b.section, Key: b.name, Line: b.choicesLine,
			Reason: fmt.Sprintf("choices declared for %s", kind)}
	}
	if choiceKind && (!b.hasChoices || len(b.choices) == 0) {
		return nil, &FormatError{Section: b.section, Key: b.name, Line: b.firstLine,
			Reason: "missing .choices declaration"}
	}
	if !b.hasDefault {
		return nil, &FormatError{Section: b.section, Key: b.name, Line: b.firstLine,
			Reason: "missing default value"}
	}

	p := &Parameter{
		section:    b.section,
		name:       b.name,
		kind:       kind,
		help:       b.help,
		choices:    b.choices,
		rawDefault: b.rawDefault,
	}

	// A default that violates its own kind is a schema author error; it is
	// surfaced at load time, not when the value is first used.
	def, err := p.Parse(b.rawDefault)
	if err != nil && !IsWarning(err) {
		var verr *ValidationError
		reason := err.Error()
		if errors.As(err, &verr) {
			reason = fmt.Sprintf("default '%s' %s", b.rawDefault, verr.Reason)
		}
		return nil, &FormatError{Section: b.section, Key: b.name, Line: b.firstLine, Reason: reason}
	}
	p.defValue = def
	p.current = def
	return p, nil
}

// splitKey separates a parameter key from its attribute suffix. Keys without
// a dot are default-value declarations (empty suffix).
func splitKey(key string) (base, suffix string) {
	i := strings.LastIndex(key, ".")
	if i < 0 {
		return key, ""
	}
	return key[:i], key[i+1:]
}
