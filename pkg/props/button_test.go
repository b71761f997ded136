package props_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formprops/pkg/intent"
	"github.com/goliatone/go-formprops/pkg/props"
)

func TestControlButtonProps(t *testing.T) {
	got := props.ControlButton("form1", intent.Insert("items", 0))

	want := props.Props{
		"name":           intent.FieldName,
		"form":           "form1",
		"formNoValidate": true,
		"value":          `[{"type":"insert","payload":{"name":"items","index":0}}]`,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("button props mismatch (-want +got):\n%s", diff)
	}
}

func TestControlButtonWithoutIntents(t *testing.T) {
	got := props.ControlButton("form1")

	if got["formNoValidate"] != true || got["form"] != "form1" {
		t.Fatalf("button must always bypass validation, got %v", got)
	}
	if _, exists := got["value"]; exists {
		t.Fatalf("expected no value without intents, got %v", got)
	}
}

func TestControlButtonOrderedIntents(t *testing.T) {
	got := props.ControlButton("form1",
		intent.Remove("items", 2),
		intent.ValidateField("items"),
	)

	want := `[{"type":"remove","payload":{"name":"items","index":2}},` +
		`{"type":"validate","payload":{"name":"items"}}]`
	if got["value"] != want {
		t.Fatalf("value = %v, want %s", got["value"], want)
	}
}
