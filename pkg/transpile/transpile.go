// Package transpile rewrites source text by applying a vocabulary
// table's compiled rules in order.
package transpile

import (
	"context"
	"strings"

	"github.com/rs/zerolog"
	"github.com/urdujs/urdujs/pkg/vocab"
)

// arabicSemicolon is normalized to an ASCII semicolon in a fixed
// post-pass after all rules have run. No other normalization occurs.
const arabicSemicolon = "؛"

// Result contains the outcome of one transpilation
type Result struct {
	// Input is the source text before any rewriting
	Input string

	// Output is the text after all rules and the semicolon post-pass
	Output string

	// Replacements is the total number of token replacements made
	Replacements int

	// Modified indicates whether Output differs from Input
	Modified bool
}

// Transpiler rewrites source text using a vocabulary table's compiled
// rules. It holds no state of its own; repeated calls with the same
// input and the same table state yield byte-identical output.
type Transpiler struct {
	table *vocab.Table
}

// New creates a transpiler over the given table.
func New(table *vocab.Table) *Transpiler {
	return &Transpiler{table: table}
}

// Table returns the underlying vocabulary table.
func (t *Transpiler) Table() *vocab.Table {
	return t.table
}

// Apply rewrites input and reports what changed. Rules run strictly in
// table order; each rule replaces every non-overlapping whole-word,
// case-insensitive occurrence of its token across the entire text.
func (t *Transpiler) Apply(ctx context.Context, input string) *Result {
	result := &Result{Input: input, Output: input}

	current := input
	for _, rule := range t.table.Rules() {
		next, count := rule.Apply(current)
		result.Replacements += count
		current = next
	}

	current = strings.ReplaceAll(current, arabicSemicolon, ";")

	result.Output = current
	result.Modified = current != input

	zerolog.Ctx(ctx).Debug().
		Int("rules", t.table.Len()).
		Int("replacements", result.Replacements).
		Bool("modified", result.Modified).
		Msg("transpiled source")

	return result
}

// Transpile rewrites input and returns only the output text.
func (t *Transpiler) Transpile(ctx context.Context, input string) string {
	return t.Apply(ctx, input).Output
}
