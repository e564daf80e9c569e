package vocab

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRule_Apply(t *testing.T) {
	tests := []struct {
		name        string
		token       string
		replacement string
		input       string
		want        string
		wantCount   int
	}{
		{
			name:        "whole_word",
			token:       "agar",
			replacement: "if",
			input:       "agar (x) { }",
			want:        "if (x) { }",
			wantCount:   1,
		},
		{
			name:        "case_insensitive",
			token:       "agar",
			replacement: "if",
			input:       "AGAR Agar agar",
			want:        "if if if",
			wantCount:   3,
		},
		{
			name:        "substring_of_identifier_untouched",
			token:       "bara",
			replacement: ">",
			input:       "barabar",
			want:        "barabar",
			wantCount:   0,
		},
		{
			name:        "prefix_and_suffix_word_chars_block",
			token:       "bara",
			replacement: ">",
			input:       "xbara bara barax _bara bara9",
			want:        "xbara > barax _bara bara9",
			wantCount:   1,
		},
		{
			name:        "all_occurrences",
			token:       "likho",
			replacement: "console.log",
			input:       "likho(1); likho(2)",
			want:        "console.log(1); console.log(2)",
			wantCount:   2,
		},
		{
			name:        "arabic_punctuation_is_a_boundary",
			token:       "likho",
			replacement: "console.log",
			input:       "likho('hi')؛",
			want:        "console.log('hi')؛",
			wantCount:   1,
		},
		{
			name:        "unicode_letters_are_word_runes",
			token:       "agar",
			replacement: "if",
			input:       "اagar",
			want:        "اagar",
			wantCount:   0,
		},
		{
			name:        "metacharacters_match_literally",
			token:       "a+b",
			replacement: "sum",
			input:       "a+b aab",
			want:        "sum aab",
			wantCount:   1,
		},
		{
			name:        "no_match",
			token:       "agar",
			replacement: "if",
			input:       "plain text",
			want:        "plain text",
			wantCount:   0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rule := CompileRule(tt.token, tt.replacement)
			got, count := rule.Apply(tt.input)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantCount, count)
		})
	}
}

// Boundary matching alone must disambiguate prefix-overlapping tokens:
// applying the full default table to "barabar" yields the barabar rule's
// replacement with no dangling fragment from the bara rule.
func TestRules_PrefixOverlap(t *testing.T) {
	input := "barabar"
	for _, rule := range Default().Rules() {
		out, _ := rule.Apply(input)
		input = out
	}
	require.Equal(t, "===", input)
}

func TestContainsWord(t *testing.T) {
	assert.True(t, ContainsWord("process.exit()", "process"))
	assert.True(t, ContainsWord("PROCESS.exit()", "process"))
	assert.True(t, ContainsWord("require('fs')", "require"))
	assert.False(t, ContainsWord("processing data", "process"))
	assert.False(t, ContainsWord("reprocess", "process"))
	assert.True(t, ContainsWord("var x = child_process", "child_process"))
}
