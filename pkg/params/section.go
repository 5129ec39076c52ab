package params

// Section is a named, ordered collection of parameters sharing a namespace.
// Order is the declaration order from the schema source; it matters for
// display and serialization only, never for validation.
type Section struct {
	name   string
	order  []string
	params map[string]*Parameter
}

func newSection(name string) *Section {
	return &Section{name: name, params: make(map[string]*Parameter)}
}

// Name returns the section name.
func (s *Section) Name() string { return s.name }

// Get returns the named parameter, or a NotFoundError.
func (s *Section) Get(name string) (*Parameter, error) {
	p, ok := s.params[name]
	if !ok {
		return nil, &NotFoundError{Section: s.name, Name: name}
	}
	return p, nil
}

// All returns the parameters in declaration order. The slice is a fresh copy,
// safe to re-iterate or reorder without affecting the section.
func (s *Section) All() []*Parameter {
	out := make([]*Parameter, 0, len(s.order))
	for _, name := range s.order {
		out = append(out, s.params[name])
	}
	return out
}

// Len returns the number of parameters in the section.
func (s *Section) Len() int { return len(s.order) }

// ValidateAll checks every parameter's current value and returns all
// violations. It never aborts mid-iteration, so a section with some invalid
// values is still fully inspectable.
func (s *Section) ValidateAll() []*ValidationError {
	var errs []*ValidationError
	for _, name := range s.order {
		if verr := s.params[name].Validate(); verr != nil {
			errs = append(errs, verr)
		}
	}
	return errs
}

func (s *Section) add(p *Parameter) bool {
	if _, exists := s.params[p.name]; exists {
		return false
	}
	s.order = append(s.order, p.name)
	s.params[p.name] = p
	return true
}
