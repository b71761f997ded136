package fieldmeta_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formprops/pkg/fieldmeta"
	"github.com/goliatone/go-formprops/pkg/testsupport"
)

func TestFieldUnmarshalFromEnginePayload(t *testing.T) {
	var field fieldmeta.Field
	testsupport.MustLoadJSON(t, "testdata/field.json", &field)

	maxLength := 128
	want := fieldmeta.Field{
		Key:           "email#0",
		ID:            "email",
		Name:          "email",
		FormID:        "signup",
		ErrorID:       "email-error",
		DescriptionID: "email-description",
		Valid:         false,
		AllValid:      false,
		Constraint: &fieldmeta.Constraint{
			Required:  true,
			MaxLength: &maxLength,
			Pattern:   "[^@]+@[^@]+",
		},
		InitialValue: "user@example.com",
	}
	if diff := cmp.Diff(want, field); diff != "" {
		t.Fatalf("field mismatch (-want +got):\n%s", diff)
	}
}

func TestValidityProjection(t *testing.T) {
	field := fieldmeta.Field{
		Valid:         true,
		AllValid:      false,
		ErrorID:       "field-error",
		DescriptionID: "field-description",
	}
	form := fieldmeta.Form{Valid: false, AllValid: false, ErrorID: "form-error"}

	want := fieldmeta.Validity{
		Valid:         true,
		AllValid:      false,
		ErrorID:       "field-error",
		DescriptionID: "field-description",
	}
	if diff := cmp.Diff(want, field.Validity()); diff != "" {
		t.Fatalf("field validity mismatch (-want +got):\n%s", diff)
	}
	if got := form.Validity(); got.Valid || got.ErrorID != "form-error" {
		t.Fatalf("form validity mismatch: %+v", got)
	}
}
