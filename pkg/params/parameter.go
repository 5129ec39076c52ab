package params

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Kind identifies the type of a parameter. The set is closed per schema: the
// loader rejects any .type declaration outside it.
type Kind string

const (
	KindBoolean     Kind = "BooleanParameter"
	KindInteger     Kind = "IntegerParameter"
	KindReal        Kind = "RealParameter"
	KindString      Kind = "StringParameter"
	KindChoice      Kind = "ChoiceParameter"
	KindMultiChoice Kind = "MultiChoiceParameter"
	KindBuildings   Kind = "BuildingsParameter"
)

// knownKinds is the recognized .type vocabulary.
var knownKinds = map[Kind]bool{
	KindBoolean:     true,
	KindInteger:     true,
	KindReal:        true,
	KindString:      true,
	KindChoice:      true,
	KindMultiChoice: true,
	KindBuildings:   true,
}

// Parameter is a single typed, named, documented setting. The kind determines
// how raw text is coerced to a value and back:
//
//	Boolean     -> bool
//	Integer     -> int
//	Real        -> float64
//	String      -> string
//	Choice      -> string, restricted to Choices
//	MultiChoice -> []string, each restricted to Choices
//	Buildings   -> []string, empty meaning "all buildings"
//
// A Parameter is not safe for concurrent mutation: callers that Set from one
// goroutine while reading from another must synchronize externally.
type Parameter struct {
	section    string
	name       string
	kind       Kind
	help       string
	choices    []string
	minBound   *float64
	maxBound   *float64
	rawDefault string
	defValue   interface{}
	current    interface{}
}

// Section returns the name of the section the parameter belongs to.
func (p *Parameter) Section() string { return p.section }

// Name returns the parameter name, unique within its section.
func (p *Parameter) Name() string { return p.name }

// Kind returns the parameter's kind.
func (p *Parameter) Kind() Kind { return p.kind }

// Help returns the free-text description.
func (p *Parameter) Help() string { return p.help }

// Choices returns the ordered allowed values of a Choice or MultiChoice
// parameter, or nil for other kinds. The slice is a copy.
func (p *Parameter) Choices() []string {
	if p.choices == nil {
		return nil
	}
	out := make([]string, len(p.choices))
	copy(out, p.choices)
	return out
}

// RawDefault returns the literal default text as declared in the schema.
func (p *Parameter) RawDefault() string { return p.rawDefault }

// Default returns the parsed default value.
func (p *Parameter) Default() interface{} { return p.defValue }

// Value returns the current value.
func (p *Parameter) Value() interface{} { return p.current }

// Bounds returns the numeric bounds of a Real or Integer parameter. Absent
// bounds mean unbounded; the schema text has no bounds syntax, so bounds are
// attached programmatically for ranges the schema only documents in help text.
func (p *Parameter) Bounds() (min, max *float64) { return p.minBound, p.maxBound }

// SetBounds attaches numeric bounds to a Real or Integer parameter.
func (p *Parameter) SetBounds(min, max float64) error {
	if p.kind != KindReal && p.kind != KindInteger {
		return fmt.Errorf("bounds not supported for %s parameter %s:%s", p.kind, p.section, p.name)
	}
	p.minBound = &min
	p.maxBound = &max
	return nil
}

// Parse coerces raw text into a value of the parameter's kind. A hard
// constraint violation returns a nil value and a ValidationError. An
// out-of-bounds numeric value returns the parsed value together with a
// warning-severity ValidationError; callers enforcing a strict-bounds policy
// treat the warning as fatal, lenient callers keep the value.
func (p *Parameter) Parse(raw string) (interface{}, error) {
	raw = strings.TrimSpace(raw)
	switch p.kind {
	case KindBoolean:
		switch strings.ToLower(raw) {
		case "true":
			return true, nil
		case "false":
			return false, nil
		}
		return nil, p.invalid(raw, "is not a boolean")
	case KindInteger:
		n, err := strconv.Atoi(raw)
		if err != nil {
			return nil, p.invalid(raw, "is not an integer")
		}
		if warn := p.checkBounds(float64(n), raw); warn != nil {
			return n, warn
		}
		return n, nil
	case KindReal:
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, p.invalid(raw, "is not numeric")
		}
		if warn := p.checkBounds(f, raw); warn != nil {
			return f, warn
		}
		return f, nil
	case KindString:
		return raw, nil
	case KindChoice:
		for _, c := range p.choices {
			if raw == c {
				return raw, nil
			}
		}
		return nil, p.notInChoices(raw)
	case KindMultiChoice:
		selected := splitList(raw)
		for _, s := range selected {
			ok := false
			for _, c := range p.choices {
				if s == c {
					ok = true
					break
				}
			}
			if !ok {
				return nil, p.notInChoices(s)
			}
		}
		return selected, nil
	case KindBuildings:
		// No catalog check at this layer; the consumer validates identifiers
		// against the building catalog. Empty means all buildings.
		return splitList(raw), nil
	}
	return nil, p.invalid(raw, fmt.Sprintf("has unsupported kind %s", p.kind))
}

// Format renders a value back into its text form. It is the inverse of Parse:
// Parse(Format(v)) == v for every v satisfying the kind's constraints.
func (p *Parameter) Format(value interface{}) (string, error) {
	switch p.kind {
	case KindBoolean:
		b, ok := value.(bool)
		if !ok {
			return "", p.badType(value, "bool")
		}
		return strconv.FormatBool(b), nil
	case KindInteger:
		n, ok := toInt(value)
		if !ok {
			return "", p.badType(value, "int")
		}
		return strconv.Itoa(n), nil
	case KindReal:
		f, ok := toFloat64(value)
		if !ok {
			return "", p.badType(value, "float64")
		}
		return strconv.FormatFloat(f, 'g', -1, 64), nil
	case KindString, KindChoice:
		s, ok := value.(string)
		if !ok {
			return "", p.badType(value, "string")
		}
		return s, nil
	case KindMultiChoice, KindBuildings:
		list, ok := value.([]string)
		if !ok {
			return "", p.badType(value, "[]string")
		}
		return strings.Join(list, ", "), nil
	}
	return "", p.badType(value, string(p.kind))
}

// Set replaces the current value after re-validating it against the kind's
// constraints. The constraint check is reused directly; the value is not
// round-tripped through text. A warning-severity violation still stores the
// value and returns the warning.
func (p *Parameter) Set(value interface{}) error {
	checked, err := p.check(value)
	if err != nil && !IsWarning(err) {
		return err
	}
	p.current = checked
	return err
}

// check validates a typed value against the kind's constraints, returning a
// normalized copy.
func (p *Parameter) check(value interface{}) (interface{}, error) {
	switch p.kind {
	case KindBoolean:
		b, ok := value.(bool)
		if !ok {
			return nil, p.badType(value, "bool")
		}
		return b, nil
	case KindInteger:
		n, ok := toInt(value)
		if !ok {
			return nil, p.badType(value, "int")
		}
		if warn := p.checkBounds(float64(n), strconv.Itoa(n)); warn != nil {
			return n, warn
		}
		return n, nil
	case KindReal:
		f, ok := toFloat64(value)
		if !ok {
			return nil, p.badType(value, "float64")
		}
		if warn := p.checkBounds(f, strconv.FormatFloat(f, 'g', -1, 64)); warn != nil {
			return f, warn
		}
		return f, nil
	case KindString:
		s, ok := value.(string)
		if !ok {
			return nil, p.badType(value, "string")
		}
		return s, nil
	case KindChoice:
		s, ok := value.(string)
		if !ok {
			return nil, p.badType(value, "string")
		}
		for _, c := range p.choices {
			if s == c {
				return s, nil
			}
		}
		return nil, p.notInChoices(s)
	case KindMultiChoice:
		list, ok := value.([]string)
		if !ok {
			return nil, p.badType(value, "[]string")
		}
		for _, s := range list {
			found := false
			for _, c := range p.choices {
				if s == c {
					found = true
					break
				}
			}
			if !found {
				return nil, p.notInChoices(s)
			}
		}
		return append([]string(nil), list...), nil
	case KindBuildings:
		list, ok := value.([]string)
		if !ok {
			return nil, p.badType(value, "[]string")
		}
		return append([]string(nil), list...), nil
	}
	return nil, p.badType(value, string(p.kind))
}

// Validate checks the current value against the kind's constraints.
func (p *Parameter) Validate() *ValidationError {
	_, err := p.check(p.current)
	if err == nil {
		return nil
	}
	var verr *ValidationError
	if errors.As(err, &verr) {
		return verr
	}
	return p.invalid(fmt.Sprintf("%v", p.current), err.Error())
}

func (p *Parameter) checkBounds(f float64, raw string) *ValidationError {
	if p.minBound != nil && f < *p.minBound {
		return &ValidationError{
			Section:  p.section,
			Name:     p.name,
			Value:    raw,
			Reason:   fmt.Sprintf("is below the valid minimum %g", *p.minBound),
			Severity: SeverityWarning,
		}
	}
	if p.maxBound != nil && f > *p.maxBound {
		return &ValidationError{
			Section:  p.section,
			Name:     p.name,
			Value:    raw,
			Reason:   fmt.Sprintf("is above the valid maximum %g", *p.maxBound),
			Severity: SeverityWarning,
		}
	}
	return nil
}

func (p *Parameter) invalid(value, reason string) *ValidationError {
	return &ValidationError{Section: p.section, Name: p.name, Value: value, Reason: reason}
}

func (p *Parameter) notInChoices(value string) *ValidationError {
	return &ValidationError{
		Section: p.section,
		Name:    p.name,
		Value:   value,
		Reason:  "is not in choices",
		Allowed: append([]string(nil), p.choices...),
	}
}

func (p *Parameter) badType(value interface{}, want string) *ValidationError {
	return p.invalid(fmt.Sprintf("%v", value), fmt.Sprintf("has type %T, expected %s", value, want))
}

// splitList splits comma-separated text into trimmed identifiers. Empty text
// yields an empty list.
func splitList(raw string) []string {
	out := []string{}
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

func toInt(v interface{}) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	default:
		return 0, false
	}
}

func toFloat64(v interface{}) (float64, bool) {
	switch f := v.(type) {
	case float64:
		return f, true
	case int:
		return float64(f), true
	default:
		return 0, false
	}
}
