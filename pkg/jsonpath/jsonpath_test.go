package jsonpath

import (
	"testing"

	"github.com/tidwall/gjson"
)

func TestFilter(t *testing.T) {
	json := `{
		"name": "John Doe",
		"age": 30,
		"address": {
			"street": "123 Main St",
			"city": "Anytown"
		},
		"phones": [
			{"type": "home", "number": "555-1234"},
			{"type": "work", "number": "555-5678"}
		],
		"items": ["x", "y", "z"],
		"metadata": null
	}`

	tests := []struct {
		name     string
		path     string
		expected string
	}{
		{
			name:     "root path returns document unchanged",
			path:     ".",
			expected: json,
		},
		{
			name:     "simple field",
			path:     "name",
			expected: `"John Doe"`,
		},
		{
			name:     "leading dot stripped",
			path:     ".name",
			expected: `"John Doe"`,
		},
		{
			name:     "nested field",
			path:     "address.city",
			expected: `"Anytown"`,
		},
		{
			name:     "field with array index",
			path:     "items[1]",
			expected: `"y"`,
		},
		{
			name:     "indexed field then nested field",
			path:     "phones[1].number",
			expected: `"555-5678"`,
		},
		{
			name:     "out-of-range index yields null",
			path:     "items[5]",
			expected: "null",
		},
		{
			name:     "missing field yields null",
			path:     "missing",
			expected: "null",
		},
		{
			name:     "null propagates through further segments",
			path:     "missing.deeper.evenDeeper",
			expected: "null",
		},
		{
			name:     "field access on a non-object yields null",
			path:     "name.anything",
			expected: "null",
		},
		{
			name:     "index on a non-array yields null",
			path:     "address[0]",
			expected: "null",
		},
		{
			name:     "index into explicit null yields null",
			path:     "metadata[0]",
			expected: "null",
		},
		{
			name:     "malformed bracket treated as field name",
			path:     "items[x]",
			expected: "null",
		},
		{
			name:     "numeric field",
			path:     "age",
			expected: "30",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filter(gjson.Parse(json), tt.path)
			if got.Raw != tt.expected {
				t.Errorf("Filter(%q) = %s, want %s", tt.path, got.Raw, tt.expected)
			}
		})
	}
}

func TestFilterBareIndex(t *testing.T) {
	value := gjson.Parse(`["a", "b", "c"]`)

	got := Filter(value, "[1]")
	if got.Raw != `"b"` {
		t.Errorf(`Filter("[1]") = %s, want "b"`, got.Raw)
	}

	got = Filter(value, "[9]")
	if got.Raw != "null" {
		t.Errorf(`Filter("[9]") = %s, want null`, got.Raw)
	}
}

func TestFilterIdentityOnScalars(t *testing.T) {
	for _, doc := range []string{"null", "true", "42", `"hello"`, "[]", "{}"} {
		got := Filter(gjson.Parse(doc), ".")
		if got.Raw != doc {
			t.Errorf("Filter(%s, \".\") = %s, want input unchanged", doc, got.Raw)
		}
	}
}
