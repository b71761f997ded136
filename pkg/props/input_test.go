package props_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formprops/pkg/fieldmeta"
	"github.com/goliatone/go-formprops/pkg/props"
)

func validField() fieldmeta.Field {
	return fieldmeta.Field{
		Key:      "field#0",
		ID:       "field",
		Name:     "field",
		FormID:   "checkout",
		Valid:    true,
		AllValid: true,
	}
}

func TestInputTextCarriesConstraints(t *testing.T) {
	minLength, maxLength := 2, 64
	field := validField()
	field.InitialValue = "hello"
	field.Constraint = &fieldmeta.Constraint{
		Required:  true,
		MinLength: &minLength,
		MaxLength: &maxLength,
		Pattern:   "[a-z]+",
	}

	got := props.Input(field, props.InputOptions{Type: "text"})
	want := props.Props{
		"key":          "field#0",
		"id":           "field",
		"name":         "field",
		"form":         "checkout",
		"type":         "text",
		"required":     true,
		"minLength":    2,
		"maxLength":    64,
		"pattern":      "[a-z]+",
		"defaultValue": "hello",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("input props mismatch (-want +got):\n%s", diff)
	}
}

func TestInputNumberRangeConstraints(t *testing.T) {
	field := validField()
	field.Constraint = &fieldmeta.Constraint{Min: 1, Max: 10, Step: 2}

	got := props.Input(field, props.InputOptions{Type: "number"})
	for key, want := range map[string]any{"min": 1, "max": 10, "step": 2} {
		if got[key] != want {
			t.Fatalf("%s = %v, want %v", key, got[key], want)
		}
	}
}

func TestInputCheckboxBooleanInitialValue(t *testing.T) {
	field := validField()
	field.InitialValue = true

	got := props.Input(field, props.InputOptions{Type: props.TypeCheckbox})
	if got["defaultChecked"] != true {
		t.Fatalf("defaultChecked = %v, want true", got["defaultChecked"])
	}
	if got["value"] != "on" {
		t.Fatalf("value = %v, want %q", got["value"], "on")
	}
	if _, exists := got["defaultValue"]; exists {
		t.Fatalf("checkbox must not carry defaultValue, got %v", got)
	}
}

func TestInputCheckboxCustomValue(t *testing.T) {
	field := validField()
	field.InitialValue = "yes"

	got := props.Input(field, props.InputOptions{
		Type:  props.TypeCheckbox,
		Value: props.WithValue("yes"),
	})
	if got["value"] != "yes" {
		t.Fatalf("value = %v, want %q", got["value"], "yes")
	}
	if got["defaultChecked"] != true {
		t.Fatalf("defaultChecked = %v, want true", got["defaultChecked"])
	}
}

func TestInputRadioUncheckedWhenValueDiffers(t *testing.T) {
	field := validField()
	field.InitialValue = "blue"

	got := props.Input(field, props.InputOptions{
		Type:  props.TypeRadio,
		Value: props.WithValue("red"),
	})
	if got["defaultChecked"] != false {
		t.Fatalf("defaultChecked = %v, want false", got["defaultChecked"])
	}
}

func TestInputSequenceInitialValueNeverAssigned(t *testing.T) {
	field := validField()
	field.InitialValue = []string{"a", "b"}

	got := props.Input(field, props.InputOptions{Type: "text"})
	if _, exists := got["defaultValue"]; exists {
		t.Fatalf("sequence metadata must not reach defaultValue, got %v", got)
	}
}

func TestInputControlledSuppressesValueBlock(t *testing.T) {
	field := validField()
	field.InitialValue = "hello"

	got := props.Input(field, props.InputOptions{Type: "text", Value: props.Controlled()})
	if _, exists := got["defaultValue"]; exists {
		t.Fatalf("controlled input must not derive defaultValue, got %v", got)
	}

	checkbox := props.Input(field, props.InputOptions{
		Type:  props.TypeCheckbox,
		Value: props.Controlled(),
	})
	for _, key := range []string{"value", "defaultChecked"} {
		if _, exists := checkbox[key]; exists {
			t.Fatalf("controlled checkbox must not derive %q, got %v", key, checkbox)
		}
	}
}
