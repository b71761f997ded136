// Package openapi derives field constraint records from OpenAPI
// schemas so callers that already describe their forms with an OpenAPI
// document can feed the props composers without hand-writing HTML
// validation attributes.
package openapi

import (
	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-formprops/pkg/fieldmeta"
)

// Constraint maps a schema plus its requiredness in the parent object
// onto the HTML validation attributes carried by field metadata.
// Unresolvable references yield a constraint with requiredness alone.
func Constraint(ref *openapi3.SchemaRef, required bool) *fieldmeta.Constraint {
	c := &fieldmeta.Constraint{Required: required}
	if ref == nil || ref.Value == nil {
		return c
	}
	src := ref.Value

	if src.MinLength != 0 {
		value := int(src.MinLength)
		c.MinLength = &value
	}
	if src.MaxLength != nil {
		value := int(*src.MaxLength)
		c.MaxLength = &value
	}
	if src.Min != nil {
		c.Min = *src.Min
	}
	if src.Max != nil {
		c.Max = *src.Max
	}
	if src.MultipleOf != nil {
		c.Step = *src.MultipleOf
	}
	if src.Pattern != "" {
		c.Pattern = src.Pattern
	}
	if hasType(src.Type, openapi3.TypeArray) {
		c.Multiple = true
		// items carry the per-element constraints; surface the array's
		// own bounds only when the element schema does not set them
		if src.Items != nil && src.Items.Value != nil {
			item := Constraint(src.Items, required)
			item.Multiple = true
			return item
		}
	}
	return c
}

// Constraints walks an object schema's properties, honoring its
// Required list, and returns one constraint record per property.
func Constraints(schema *openapi3.Schema) map[string]*fieldmeta.Constraint {
	if schema == nil || len(schema.Properties) == 0 {
		return nil
	}

	required := make(map[string]struct{}, len(schema.Required))
	for _, name := range schema.Required {
		required[name] = struct{}{}
	}

	out := make(map[string]*fieldmeta.Constraint, len(schema.Properties))
	for name, property := range schema.Properties {
		_, isRequired := required[name]
		out[name] = Constraint(property, isRequired)
	}
	return out
}

func hasType(types *openapi3.Types, want string) bool {
	if types == nil {
		return false
	}
	for _, value := range types.Slice() {
		if value == want {
			return true
		}
	}
	return false
}
