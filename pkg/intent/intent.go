// Package intent defines the intent values a control button can carry
// in a form submission and their wire serialization. The form-state
// engine reads intents back out of the submission under the reserved
// FieldName; everything else in this module treats them as opaque.
package intent

import (
	"encoding/json"
	"fmt"
)

// FieldName is the reserved form field that carries serialized intents.
// The props composers import it; it must never be redefined locally.
const FieldName = "__intent__"

// Intent is a single form operation requested by a control button, for
// example inserting a list row or resetting a field.
type Intent struct {
	Type    string `json:"type"`
	Payload any    `json:"payload,omitempty"`
}

// Serialize encodes intents as a JSON array in submission order. No
// intents serialize to an empty string so callers can omit the value
// attribute entirely.
func Serialize(intents ...Intent) (string, error) {
	if len(intents) == 0 {
		return "", nil
	}
	payload, err := json.Marshal(intents)
	if err != nil {
		return "", fmt.Errorf("intent: serialize: %w", err)
	}
	return string(payload), nil
}

// Parse decodes a serialized intent list, accepting the empty string as
// no intents.
func Parse(serialized string) ([]Intent, error) {
	if serialized == "" {
		return nil, nil
	}
	var intents []Intent
	if err := json.Unmarshal([]byte(serialized), &intents); err != nil {
		return nil, fmt.Errorf("intent: parse: %w", err)
	}
	return intents, nil
}

type fieldPayload struct {
	Name string `json:"name,omitempty"`
}

type indexPayload struct {
	Name  string `json:"name"`
	Index int    `json:"index"`
}

type reorderPayload struct {
	Name string `json:"name"`
	From int    `json:"from"`
	To   int    `json:"to"`
}

type updatePayload struct {
	Name  string `json:"name"`
	Value any    `json:"value"`
}

// ValidateField requests validation of a single field, or of the whole
// form when name is empty.
func ValidateField(name string) Intent {
	return Intent{Type: "validate", Payload: fieldPayload{Name: name}}
}

// Reset restores a field to its initial value, or the whole form when
// name is empty.
func Reset(name string) Intent {
	return Intent{Type: "reset", Payload: fieldPayload{Name: name}}
}

// Insert adds a row to the named array field at index.
func Insert(name string, index int) Intent {
	return Intent{Type: "insert", Payload: indexPayload{Name: name, Index: index}}
}

// Remove deletes the row at index from the named array field.
func Remove(name string, index int) Intent {
	return Intent{Type: "remove", Payload: indexPayload{Name: name, Index: index}}
}

// Reorder moves a row of the named array field from one index to
// another.
func Reorder(name string, from, to int) Intent {
	return Intent{Type: "reorder", Payload: reorderPayload{Name: name, From: from, To: to}}
}

// Update replaces the named field's value.
func Update(name string, value any) Intent {
	return Intent{Type: "update", Payload: updatePayload{Name: name, Value: value}}
}
