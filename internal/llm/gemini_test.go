package llm

import "testing"

func TestGeminiModelSelection(t *testing.T) {
	cases := []struct {
		configured string
		want       string
	}{
		{"", "gemini-2.5-flash"},
		{"flash", "gemini-2.5-flash"},
		{"pro", "gemini-2.5-pro"},
		{"gemini-2.0-flash", "gemini-2.0-flash"}, // pass-through
	}
	for _, tc := range cases {
		got := pickModel(tc.configured, geminiAliases, geminiDefaultModel)
		if got != tc.want {
			t.Errorf("pickModel(%q) = %q, want %q", tc.configured, got, tc.want)
		}
	}
}

func TestGeminiSchemaConversion(t *testing.T) {
	// The question set definition exercises every construct the
	// converter handles: nested objects, arrays, enums, required lists.
	def := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"questions": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"id":       map[string]any{"type": "integer"},
						"type":     map[string]any{"type": "string", "enum": []any{"MCQ", "CODE"}},
						"question": map[string]any{"type": "string"},
						"options": map[string]any{
							"type":  "array",
							"items": map[string]any{"type": "string"},
						},
					},
					"required": []any{"id", "type", "question"},
				},
			},
		},
		"required": []any{"questions"},
	}

	schema := geminiSchema(def)

	if schema.Type != "OBJECT" {
		t.Fatalf("root type = %s, want OBJECT", schema.Type)
	}
	qs := schema.Properties["questions"]
	if qs == nil || qs.Type != "ARRAY" {
		t.Fatalf("questions property = %+v, want ARRAY", qs)
	}
	item := qs.Items
	if item == nil || item.Type != "OBJECT" {
		t.Fatalf("questions items = %+v, want OBJECT", item)
	}
	if item.Properties["id"].Type != "INTEGER" {
		t.Errorf("id type = %s, want INTEGER", item.Properties["id"].Type)
	}
	if got := item.Properties["type"].Enum; len(got) != 2 {
		t.Errorf("kind enum = %v, want MCQ and CODE", got)
	}
	if item.Properties["options"].Items.Type != "STRING" {
		t.Errorf("options items = %s, want STRING", item.Properties["options"].Items.Type)
	}
	if len(item.Required) != 3 {
		t.Errorf("required = %v, want 3 entries", item.Required)
	}
}
