package props

import (
	"github.com/spf13/cast"

	"github.com/goliatone/go-formprops/pkg/fieldmeta"
)

// Form derives attributes for the form element itself: its id, the
// engine's submit handler and novalidate flag (passed through
// unchanged), and aria attributes computed from form-level validity.
func Form(form fieldmeta.Form, opts AriaOptions) Props {
	p := Aria(form.Validity(), opts)
	if form.ID != "" {
		p["id"] = form.ID
	}
	if form.OnSubmit != nil {
		p["onSubmit"] = form.OnSubmit
	}
	p["noValidate"] = form.NoValidate
	return Normalize(p)
}

// Field is the shorthand composer for controls wired by name alone,
// typically hidden inputs rendered outside the form element.
func Field(name, formID string) Props {
	p := Props{}
	if name != "" {
		p["name"] = name
	}
	if formID != "" {
		p["form"] = formID
	}
	return Normalize(p)
}

// Fieldset derives attributes for a grouping element backed by a
// compound or array field: identity plus aria attributes.
func Fieldset(field fieldmeta.Field, opts AriaOptions) Props {
	p := Aria(field.Validity(), opts)
	if field.ID != "" {
		p["id"] = field.ID
	}
	if field.Name != "" {
		p["name"] = field.Name
	}
	if field.FormID != "" {
		p["form"] = field.FormID
	}
	return Normalize(p)
}

// Control derives the attribute superset shared by every leaf control:
// the Fieldset output plus the remount key, the required flag, and an
// autoFocus hint.
//
// autoFocus is recomputed on every call so focus re-triggers each time
// validity flips to invalid; it is a derived hint, not stored state.
// required and autoFocus are emitted only when true so caller merges
// never see an explicit false.
func Control(field fieldmeta.Field, opts AriaOptions) Props {
	p := Fieldset(field, opts)
	if field.Key != "" {
		p["key"] = field.Key
	}
	if c := field.Constraint; c != nil && c.Required {
		p["required"] = true
	}
	if !field.Valid {
		p["autoFocus"] = true
	}
	return Normalize(p)
}

// applyConstraint copies the length, range, pattern, and multiplicity
// attributes verbatim. Unset constraint fields never surface as keys.
func applyConstraint(p Props, c *fieldmeta.Constraint) {
	if c == nil {
		return
	}
	if c.MinLength != nil {
		p["minLength"] = *c.MinLength
	}
	if c.MaxLength != nil {
		p["maxLength"] = *c.MaxLength
	}
	if c.Min != nil {
		p["min"] = c.Min
	}
	if c.Max != nil {
		p["max"] = c.Max
	}
	if c.Step != nil {
		p["step"] = c.Step
	}
	if c.Pattern != "" {
		p["pattern"] = c.Pattern
	}
	if c.Multiple {
		p["multiple"] = true
	}
}

// sequence reports whether the initial value is an ordered sequence,
// coercing elements to strings. Absent elements become empty strings so
// positions are preserved.
func sequence(value any) ([]string, bool) {
	switch v := value.(type) {
	case []string:
		out := make([]string, len(v))
		copy(out, v)
		return out, true
	case []any:
		out := make([]string, len(v))
		for i, element := range v {
			if element == nil {
				continue
			}
			out[i] = cast.ToString(element)
		}
		return out, true
	default:
		return nil, false
	}
}
