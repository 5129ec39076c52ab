package params

// Schema is the full set of sections loaded from one configuration source.
// It is built once by Load and owns its sections and parameters exclusively;
// after construction the only mutation is an explicit Set on an individual
// parameter, which never changes identity, kind, or constraints.
//
// A Schema provides no locking. Concurrent readers are fine as long as no
// goroutine calls Set; a single writer with readers requires external
// synchronization.
type Schema struct {
	order    []string
	sections map[string]*Section
}

func newSchema() *Schema {
	return &Schema{sections: make(map[string]*Section)}
}

// Section returns the named section, or a NotFoundError.
func (s *Schema) Section(name string) (*Section, error) {
	sec, ok := s.sections[name]
	if !ok {
		return nil, &NotFoundError{Section: name}
	}
	return sec, nil
}

// Sections returns all sections in declaration order. The slice is a fresh copy.
func (s *Schema) Sections() []*Section {
	out := make([]*Section, 0, len(s.order))
	for _, name := range s.order {
		out = append(out, s.sections[name])
	}
	return out
}

// Get returns a parameter by section and name.
func (s *Schema) Get(section, name string) (*Parameter, error) {
	sec, err := s.Section(section)
	if err != nil {
		return nil, err
	}
	return sec.Get(name)
}

// Validate runs every parameter's current value through its constraint check
// and returns all violations across all sections.
func (s *Schema) Validate() []*ValidationError {
	var errs []*ValidationError
	for _, name := range s.order {
		errs = append(errs, s.sections[name].ValidateAll()...)
	}
	return errs
}

// Serialize renders the schema, with current values, back into the text
// format the loader accepts.
func (s *Schema) Serialize() (string, error) {
	return Serialize(s)
}

func (s *Schema) section(name string) *Section {
	sec, ok := s.sections[name]
	if !ok {
		sec = newSection(name)
		s.order = append(s.order, name)
		s.sections[name] = sec
	}
	return sec
}
