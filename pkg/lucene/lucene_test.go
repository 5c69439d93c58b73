package lucene

import (
	"testing"
)

func TestFieldQuotesValuesWithSpaces(t *testing.T) {
	tests := []struct {
		name     string
		build    func() string
		expected string
	}{
		{
			name: "simple field",
			build: func() string {
				return NewQuery().Field("country", "US").Build()
			},
			expected: "country:US",
		},
		{
			name: "value with spaces gets quoted",
			build: func() string {
				return NewQuery().Field("artist", "Miles Davis").Build()
			},
			expected: `artist:"Miles Davis"`,
		},
		{
			name: "AND chain",
			build: func() string {
				return NewQuery().
					Field("artist", "Miles Davis").
					And().
					Field("country", "US").
					Build()
			},
			expected: `artist:"Miles Davis" AND country:US`,
		},
		{
			name: "OR with NOT",
			build: func() string {
				return NewQuery().
					Field("type", "Group").
					Or().
					Not().
					Field("country", "GB").
					Build()
			},
			expected: "type:Group OR NOT country:GB",
		},
		{
			name: "grouped subexpression",
			build: func() string {
				sub := NewQuery().Field("country", "US").Or().Field("country", "GB")
				return NewQuery().Field("artist", "Oasis").And().Group(sub).Build()
			},
			expected: "artist:Oasis AND (country:US OR country:GB)",
		},
		{
			name: "raw fragment untouched",
			build: func() string {
				return NewQuery().Raw("begin:[1990 TO 2000]").Build()
			},
			expected: "begin:[1990 TO 2000]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.build()
			if got != tt.expected {
				t.Errorf("got %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestEscape(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"plain", "plain"},
		{"AC/DC", `AC\/DC`},
		{"what?", `what\?`},
		{`say "hi"`, `say \"hi\"`},
		{"a+b-c", `a\+b\-c`},
		{"(group)", `\(group\)`},
	}

	for _, tt := range tests {
		got := Escape(tt.input)
		if got != tt.expected {
			t.Errorf("Escape(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestFieldEscapesSpecialChars(t *testing.T) {
	got := NewQuery().Field("artist", "AC/DC").Build()
	want := `artist:AC\/DC`
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
