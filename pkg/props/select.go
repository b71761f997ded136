package props

import (
	"github.com/goliatone/go-formprops/pkg/fieldmeta"
)

// Select derives attributes for a select element: the Control superset,
// the multiple flag, and the default selection. Sequence-valued
// metadata is coerced element-wise to strings (absent elements become
// empty strings); scalar metadata is assigned verbatim.
func Select(field fieldmeta.Field, opts SelectOptions) Props {
	p := Control(field, opts.AriaOptions)
	if c := field.Constraint; c != nil && c.Multiple {
		p["multiple"] = true
	}
	if opts.Value.derive() {
		if values, ok := sequence(field.InitialValue); ok {
			p["defaultValue"] = values
		} else if field.InitialValue != nil {
			p["defaultValue"] = field.InitialValue
		}
	}
	return Normalize(p)
}
