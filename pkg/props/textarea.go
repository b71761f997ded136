package props

import (
	"github.com/goliatone/go-formprops/pkg/fieldmeta"
)

// Textarea derives attributes for a textarea element: the Control
// superset, the length constraints, and InitialValue verbatim as
// defaultValue.
func Textarea(field fieldmeta.Field, opts TextareaOptions) Props {
	p := Control(field, opts.AriaOptions)
	if c := field.Constraint; c != nil {
		if c.MinLength != nil {
			p["minLength"] = *c.MinLength
		}
		if c.MaxLength != nil {
			p["maxLength"] = *c.MaxLength
		}
	}
	if opts.Value.derive() && field.InitialValue != nil {
		p["defaultValue"] = field.InitialValue
	}
	return Normalize(p)
}
