package props

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type valueKind uint8

const (
	valueDerive valueKind = iota
	valueControlled
	valueLiteral
)

// ValueOption controls how a composer resolves default value and
// checked state. The zero value derives defaults from the metadata's
// InitialValue; Controlled suppresses derivation so the caller owns
// value management; WithValue derives defaults against an explicit
// value attribute (checkbox/radio only).
type ValueOption struct {
	kind    valueKind
	literal string
}

// Controlled suppresses default value/checked derivation entirely.
func Controlled() ValueOption {
	return ValueOption{kind: valueControlled}
}

// WithValue sets the control's value attribute and derives checked
// state against it.
func WithValue(value string) ValueOption {
	return ValueOption{kind: valueLiteral, literal: value}
}

func (v ValueOption) derive() bool {
	return v.kind != valueControlled
}

// Literal reports the explicit value attribute, if one was set.
func (v ValueOption) Literal() (string, bool) {
	return v.literal, v.kind == valueLiteral
}

const (
	// TypeCheckbox and TypeRadio are the input types with checked-state
	// semantics; every other type carries a defaultValue instead.
	TypeCheckbox = "checkbox"
	TypeRadio    = "radio"
)

// inputTypes lists the HTML input types the validator recognizes. The
// composers themselves accept any string and degrade gracefully.
var inputTypes = []any{
	"checkbox", "color", "date", "datetime-local", "email", "file",
	"hidden", "month", "number", "password", "radio", "range", "search",
	"tel", "text", "time", "url", "week",
}

// InputOptions configures the input composer.
type InputOptions struct {
	// Type is copied to the type attribute and selects the
	// checkbox/radio checked-state branch.
	Type string
	// Value controls default value/checked derivation.
	Value ValueOption
	AriaOptions
}

// Validate reports option combinations the composers would otherwise
// silently degrade on. Advisory: composers never call it.
func (o InputOptions) Validate() error {
	return validation.ValidateStruct(&o,
		validation.Field(&o.Type, validation.In(inputTypes...)),
	)
}

// SelectOptions configures the select composer.
type SelectOptions struct {
	Value ValueOption
	AriaOptions
}

// TextareaOptions configures the textarea composer.
type TextareaOptions struct {
	Value ValueOption
	AriaOptions
}

// CollectionOptions configures the checkbox/radio collection composer.
type CollectionOptions struct {
	// Type must be TypeCheckbox or TypeRadio.
	Type string
	// Options lists the value attribute of each control, in render
	// order.
	Options []string
	// Value controls defaultChecked derivation. WithValue literals are
	// ignored; each entry's value attribute is its option string.
	Value ValueOption
	AriaOptions
}

// Validate reports malformed collection options. Advisory, as with
// InputOptions.
func (o CollectionOptions) Validate() error {
	return validation.ValidateStruct(&o,
		validation.Field(&o.Type, validation.Required, validation.In(TypeCheckbox, TypeRadio)),
		validation.Field(&o.Options, validation.Required),
	)
}
