package params

import (
	"fmt"
	"strings"
)

// Serialize renders a schema back into the line shape Load accepts: one
// [section] header per section, then for each parameter in declaration order
// its current value line followed by the .type, .choices, and .help lines.
//
// Loading the output yields a schema value-equivalent to the input; the text
// itself is normalized (whitespace, list separators) rather than byte-stable.
func Serialize(s *Schema) (string, error) {
	var sb strings.Builder
	for i, sec := range s.Sections() {
		if i > 0 {
			sb.WriteString("\n")
		}
		fmt.Fprintf(&sb, "[%s]\n", sec.Name())
		for _, p := range sec.All() {
			value, err := p.Format(p.Value())
			if err != nil {
				return "", fmt.Errorf("serializing %s:%s: %w", sec.Name(), p.Name(), err)
			}
			fmt.Fprintf(&sb, "%s = %s\n", p.Name(), value)
			fmt.Fprintf(&sb, "%s.type = %s\n", p.Name(), p.Kind())
			if choices := p.Choices(); len(choices) > 0 {
				fmt.Fprintf(&sb, "%s.choices = %s\n", p.Name(), strings.Join(choices, ", "))
			}
			if p.Help() != "" {
				fmt.Fprintf(&sb, "%s.help = %s\n", p.Name(), p.Help())
			}
		}
	}
	return sb.String(), nil
}
