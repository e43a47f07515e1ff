package xmltree

import (
	"reflect"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  map[string]any
	}{
		{
			name:  "scalar element",
			input: `<Count>42</Count>`,
			want:  map[string]any{"Count": "42"},
		},
		{
			name:  "empty element",
			input: `<IdList></IdList>`,
			want:  map[string]any{"IdList": nil},
		},
		{
			name:  "single child stays scalar",
			input: `<IdList><Id>12345</Id></IdList>`,
			want: map[string]any{
				"IdList": map[string]any{"Id": "12345"},
			},
		},
		{
			name:  "repeated children become a list",
			input: `<IdList><Id>1</Id><Id>2</Id><Id>3</Id></IdList>`,
			want: map[string]any{
				"IdList": map[string]any{
					"Id": []any{"1", "2", "3"},
				},
			},
		},
		{
			name:  "attributes and text",
			input: `<Item Name="Title" Type="String">CRISPR screens</Item>`,
			want: map[string]any{
				"Item": map[string]any{
					"@Name": "Title",
					"@Type": "String",
					"#text": "CRISPR screens",
				},
			},
		},
		{
			name: "nested structure",
			input: `<eSearchResult>
				<Count>2</Count>
				<IdList><Id>11</Id><Id>22</Id></IdList>
			</eSearchResult>`,
			want: map[string]any{
				"eSearchResult": map[string]any{
					"Count": "2",
					"IdList": map[string]any{
						"Id": []any{"11", "22"},
					},
				},
			},
		},
		{
			name:  "doctype is skipped",
			input: `<?xml version="1.0"?><!DOCTYPE eSearchResult PUBLIC "-//NLM//DTD esearch//EN" "esearch.dtd"><eSearchResult><Count>0</Count></eSearchResult>`,
			want: map[string]any{
				"eSearchResult": map[string]any{"Count": "0"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse([]byte(tt.input))
			if err != nil {
				t.Fatalf("Parse() error: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Parse() = %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "empty document", input: ""},
		{name: "unclosed element", input: "<eSearchResult><Count>1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse([]byte(tt.input)); err == nil {
				t.Error("Parse() expected error, got nil")
			}
		})
	}
}

func TestEnsureList(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  int
	}{
		{name: "nil stays empty", input: nil, want: 0},
		{name: "scalar wraps", input: "123", want: 1},
		{name: "map wraps", input: map[string]any{"Id": "1"}, want: 1},
		{name: "list passes through", input: []any{"1", "2"}, want: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EnsureList(tt.input)
			if len(got) != tt.want {
				t.Errorf("EnsureList() length = %d, want %d", len(got), tt.want)
			}
		})
	}
}

func TestText(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  string
	}{
		{name: "plain string", input: "hello", want: "hello"},
		{name: "map with #text", input: map[string]any{"@Name": "Title", "#text": "value"}, want: "value"},
		{name: "map without #text", input: map[string]any{"@Name": "AuthorList"}, want: ""},
		{name: "nil", input: nil, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Text(tt.input); got != tt.want {
				t.Errorf("Text() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestInt(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  int
	}{
		{name: "numeric string", input: "42", want: 42},
		{name: "missing defaults to zero", input: nil, want: 0},
		{name: "malformed defaults to zero", input: "n/a", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Int(tt.input); got != tt.want {
				t.Errorf("Int() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestChild(t *testing.T) {
	node := map[string]any{"IdList": map[string]any{"Id": "1"}}

	if got := Child(node, "IdList"); got == nil {
		t.Error("Child() returned nil for present key")
	}
	if got := Child(node, "Missing"); got != nil {
		t.Errorf("Child() = %v, want nil for absent key", got)
	}
	if got := Child("scalar", "IdList"); got != nil {
		t.Errorf("Child() = %v, want nil for non-map node", got)
	}
	if got := Child(nil, "IdList"); got != nil {
		t.Errorf("Child() = %v, want nil for nil node", got)
	}
}
