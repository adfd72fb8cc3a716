package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

// questionSchema mirrors the shape of a single generated interview
// question, trimmed to what the checks here need.
func questionSchema() *Schema {
	return &Schema{
		Name:        "mock-question",
		Description: "One mock interview question",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"question": map[string]any{"type": "string"},
				"type":     map[string]any{"type": "string", "enum": []any{"MCQ", "CODE"}},
				"options": map[string]any{
					"type":  "array",
					"items": map[string]any{"type": "string"},
				},
			},
			"required": []any{"question", "type"},
		},
	}
}

func TestValidateResponseAccepts(t *testing.T) {
	cases := []struct {
		name string
		raw  string
	}{
		{"full question", `{"question":"What is a goroutine?","type":"MCQ","options":["a","b","c","d"]}`},
		{"without optional options", `{"question":"Implement a stack.","type":"CODE"}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if err := validateResponse(questionSchema(), json.RawMessage(tc.raw)); err != nil {
				t.Fatalf("validateResponse: %v", err)
			}
		})
	}
}

func TestValidateResponseRejects(t *testing.T) {
	cases := []struct {
		name string
		raw  string
	}{
		{"missing required field", `{"question":"What is defer?"}`},
		{"wrong field type", `{"question":42,"type":"MCQ"}`},
		{"kind outside enum", `{"question":"q","type":"ESSAY"}`},
		{"wrong array item type", `{"question":"q","type":"MCQ","options":[1,2]}`},
		{"not JSON at all", `Sure! Here are your questions:`},
		{"empty response", ``},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := validateResponse(questionSchema(), json.RawMessage(tc.raw))
			if err == nil {
				t.Fatal("expected a validation error")
			}
			var inv *ErrInvalidResponse
			if !errors.As(err, &inv) {
				t.Fatalf("err = %T, want ErrInvalidResponse", err)
			}
			if string(inv.Content) != tc.raw {
				t.Error("rejected payload should be carried for the event log")
			}
		})
	}
}

func TestValidateResponseNilSchemaPassesFreeText(t *testing.T) {
	// Career advice is schemaless; anything goes through untouched.
	raw := json.RawMessage(`"Focus on Channels next. You are close."`)
	if err := validateResponse(nil, raw); err != nil {
		t.Fatalf("nil schema must not validate: %v", err)
	}
}

func TestValidateResponseNestedSet(t *testing.T) {
	schema := &Schema{
		Name:        "mock-question-set",
		Description: "A set of questions",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"questions": map[string]any{
					"type": "array",
					"items": map[string]any{
						"type": "object",
						"properties": map[string]any{
							"question": map[string]any{"type": "string"},
						},
						"required": []any{"question"},
					},
				},
			},
			"required": []any{"questions"},
		},
	}

	valid := json.RawMessage(`{"questions":[{"question":"What is a slice?"},{"question":"What is a map?"}]}`)
	if err := validateResponse(schema, valid); err != nil {
		t.Fatalf("valid set rejected: %v", err)
	}

	invalid := json.RawMessage(`{"questions":[{"hint":"no question field"}]}`)
	if err := validateResponse(schema, invalid); err == nil {
		t.Fatal("set with a malformed question must be rejected")
	}
}
