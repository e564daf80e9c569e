// Copyright 2026 the urdujs authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package vocab

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// 🎯 Rule is the compiled form of one table entry: a case-insensitive,
// whole-word matcher over the token plus its replacement text.
type Rule struct {
	Token       string
	Replacement string
	pattern     *regexp.Regexp
}

// compileRules derives one rule per entry, in entry order. Tokens are
// quoted so metacharacters match literally. Word boundaries are not part
// of the pattern; Apply checks them at the rune level around each
// candidate match (RE2's \b only knows ASCII word characters).
func compileRules(entries []Entry) []Rule {
	rules := make([]Rule, 0, len(entries))
	for _, e := range entries {
		rules = append(rules, Rule{
			Token:       e.Token,
			Replacement: e.Replacement,
			pattern:     regexp.MustCompile(`(?i)` + regexp.QuoteMeta(e.Token)),
		})
	}
	return rules
}

// CompileRule builds a standalone whole-word rule, outside any table.
func CompileRule(token, replacement string) Rule {
	return Rule{
		Token:       token,
		Replacement: replacement,
		pattern:     regexp.MustCompile(`(?i)` + regexp.QuoteMeta(token)),
	}
}

// isWordRune reports whether r can be part of an identifier. Letters and
// digits in any script count, plus underscore.
func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// wholeWordAt reports whether the match at [start, end) in s is bounded
// by non-word runes (or the text edges) on both sides.
func wholeWordAt(s string, start, end int) bool {
	if start > 0 {
		prev, _ := utf8.DecodeLastRuneInString(s[:start])
		if isWordRune(prev) {
			return false
		}
	}
	if end < len(s) {
		next, _ := utf8.DecodeRuneInString(s[end:])
		if isWordRune(next) {
			return false
		}
	}
	return true
}

// 📝 Apply replaces every non-overlapping whole-word match of the rule's
// token in s with the replacement. Returns the rewritten text and the
// number of replacements made.
func (r Rule) Apply(s string) (string, int) {
	locs := r.pattern.FindAllStringIndex(s, -1)
	if locs == nil {
		return s, 0
	}

	var b strings.Builder
	b.Grow(len(s))
	last := 0
	count := 0
	for _, loc := range locs {
		start, end := loc[0], loc[1]
		if !wholeWordAt(s, start, end) {
			continue
		}
		b.WriteString(s[last:start])
		b.WriteString(r.Replacement)
		last = end
		count++
	}
	if count == 0 {
		return s, 0
	}
	b.WriteString(s[last:])
	return b.String(), count
}

// 🔍 Matches reports whether s contains the rule's token as a whole word.
func (r Rule) Matches(s string) bool {
	for _, loc := range r.pattern.FindAllStringIndex(s, -1) {
		if wholeWordAt(s, loc[0], loc[1]) {
			return true
		}
	}
	return false
}

// 🔍 ContainsWord reports whether text contains word as a whole word,
// case-insensitively. Used by callers that need a one-off scan without a
// table entry, e.g. the executor's denylist check.
func ContainsWord(text, word string) bool {
	return CompileRule(word, "").Matches(text)
}
