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
	"sort"
	"sync"

	"gitlab.com/tozd/go/errors"
)

// 🔄 Entry is a single token → replacement pair in the vocabulary
type Entry struct {
	Token       string // Whole-word token to recognize in source text
	Replacement string // Text substituted for every match
}

// 📚 Table is the ordered, mutable vocabulary. Entry order is insertion
// order and determines rule application order. Extend is the only
// mutation; entries are never removed.
type Table struct {
	mu      sync.RWMutex
	entries []Entry
	index   map[string]int // token → position in entries
	rules   []Rule
}

// 🏭 New creates a table from the given entries, in order. Duplicate
// tokens overwrite in place, same as Extend.
func New(entries ...Entry) (*Table, error) {
	t := &Table{index: make(map[string]int)}
	if err := t.Extend(entries); err != nil {
		return nil, err
	}
	return t, nil
}

// 🏭 Default creates a table with the built-in Roman-Urdu vocabulary.
func Default() *Table {
	t, err := New(defaultEntries()...)
	if err != nil {
		// The built-in table is static and validated by tests.
		panic(err)
	}
	return t
}

// defaultEntries returns the built-in vocabulary. The prefix-overlapping
// comparison tokens (baraabar, barabar, bara) are listed longest first so
// the table order is safe even without boundary matching, though boundary
// matching alone is sufficient (see rules_test.go).
func defaultEntries() []Entry {
	return []Entry{
		{Token: "likho", Replacement: "console.log"},
		{Token: "bolo", Replacement: "let"},
		{Token: "kaam", Replacement: "function"},
		{Token: "wapas", Replacement: "return"},
		{Token: "agar", Replacement: "if"},
		{Token: "warna", Replacement: "else"},
		{Token: "jabtak", Replacement: "while"},
		{Token: "harek", Replacement: "for"},
		{Token: "toro", Replacement: "break"},
		{Token: "jari", Replacement: "continue"},
		{Token: "sach", Replacement: "true"},
		{Token: "jhoot", Replacement: "false"},
		{Token: "khali", Replacement: "null"},
		{Token: "baraabar", Replacement: ">="},
		{Token: "barabar", Replacement: "==="},
		{Token: "bara", Replacement: ">"},
		{Token: "chotabar", Replacement: "<="},
		{Token: "chota", Replacement: "<"},
		{Token: "aur", Replacement: "&&"},
		{Token: "ya", Replacement: "||"},
		{Token: "nahi", Replacement: "!"},
	}
}

// 📝 Extend merges the given pairs into the table. An existing token is
// overwritten in place (keeping its position); a new token is appended.
// The rule list is recompiled from the full table before Extend returns,
// so readers never observe a partially updated rule list.
func (t *Table) Extend(entries []Entry) error {
	for i, e := range entries {
		if e.Token == "" {
			return errors.Errorf("entry %d: token is required", i)
		}
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	for _, e := range entries {
		if pos, ok := t.index[e.Token]; ok {
			t.entries[pos].Replacement = e.Replacement
			continue
		}
		t.index[e.Token] = len(t.entries)
		t.entries = append(t.entries, e)
	}

	t.rules = compileRules(t.entries)
	return nil
}

// 📝 ExtendMap merges a token → replacement map. New tokens are appended
// in sorted token order so repeated calls with the same map produce the
// same table.
func (t *Table) ExtendMap(m map[string]string) error {
	tokens := make([]string, 0, len(m))
	for token := range m {
		tokens = append(tokens, token)
	}
	sort.Strings(tokens)

	entries := make([]Entry, 0, len(tokens))
	for _, token := range tokens {
		entries = append(entries, Entry{Token: token, Replacement: m[token]})
	}
	return t.Extend(entries)
}

// 🔍 Entries returns a copy of the current entries in table order.
func (t *Table) Entries() []Entry {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]Entry, len(t.entries))
	copy(out, t.entries)
	return out
}

// 🔍 Lookup returns the replacement for a token, if present.
func (t *Table) Lookup(token string) (string, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	pos, ok := t.index[token]
	if !ok {
		return "", false
	}
	return t.entries[pos].Replacement, true
}

// 🔍 Len returns the number of entries.
func (t *Table) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.entries)
}

// 🔍 Rules returns a consistent snapshot of the compiled rule list, in
// table order. The snapshot stays valid across later Extend calls.
func (t *Table) Rules() []Rule {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]Rule, len(t.rules))
	copy(out, t.rules)
	return out
}
