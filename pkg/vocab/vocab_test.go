package vocab

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTable_Extend(t *testing.T) {
	tests := []struct {
		name        string
		initial     []Entry
		extend      []Entry
		wantEntries []Entry
		wantError   string
	}{
		{
			name:    "append_new_tokens",
			initial: []Entry{{Token: "agar", Replacement: "if"}},
			extend:  []Entry{{Token: "warna", Replacement: "else"}},
			wantEntries: []Entry{
				{Token: "agar", Replacement: "if"},
				{Token: "warna", Replacement: "else"},
			},
		},
		{
			name: "overwrite_keeps_position",
			initial: []Entry{
				{Token: "agar", Replacement: "if"},
				{Token: "warna", Replacement: "else"},
			},
			extend: []Entry{{Token: "agar", Replacement: "while"}},
			wantEntries: []Entry{
				{Token: "agar", Replacement: "while"},
				{Token: "warna", Replacement: "else"},
			},
		},
		{
			name:    "mixed_overwrite_and_append",
			initial: []Entry{{Token: "agar", Replacement: "if"}},
			extend: []Entry{
				{Token: "agar", Replacement: "if ("},
				{Token: "chapo", Replacement: "document.write"},
			},
			wantEntries: []Entry{
				{Token: "agar", Replacement: "if ("},
				{Token: "chapo", Replacement: "document.write"},
			},
		},
		{
			name:      "empty_token_rejected",
			initial:   []Entry{{Token: "agar", Replacement: "if"}},
			extend:    []Entry{{Token: "", Replacement: "oops"}},
			wantError: "token is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table, err := New(tt.initial...)
			require.NoError(t, err)

			err = table.Extend(tt.extend)
			if tt.wantError != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantError)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantEntries, table.Entries())
			// Rules must track entries exactly after every mutation.
			assert.Equal(t, table.Len(), len(table.Rules()))
		})
	}
}

func TestTable_ExtendMap_Deterministic(t *testing.T) {
	m := map[string]string{
		"chapo": "document.write",
		"banao": "const",
		"dalo":  "push",
	}

	a, err := New()
	require.NoError(t, err)
	require.NoError(t, a.ExtendMap(m))

	b, err := New()
	require.NoError(t, err)
	require.NoError(t, b.ExtendMap(m))

	assert.Equal(t, a.Entries(), b.Entries(), "map extension must append in a stable order")
}

func TestTable_Lookup(t *testing.T) {
	table := Default()

	rep, ok := table.Lookup("agar")
	require.True(t, ok)
	assert.Equal(t, "if", rep)

	_, ok = table.Lookup("nope")
	assert.False(t, ok)
}

func TestTable_EntriesIsACopy(t *testing.T) {
	table := Default()
	entries := table.Entries()
	entries[0].Replacement = "mutated"

	rep, ok := table.Lookup(entries[0].Token)
	require.True(t, ok)
	assert.NotEqual(t, "mutated", rep, "Entries must not expose internal state")
}

func TestDefault_RulesMatchEntries(t *testing.T) {
	table := Default()
	require.Equal(t, table.Len(), len(table.Rules()))

	// The comparison tokens must keep their longest-first placement.
	var order []string
	for _, e := range table.Entries() {
		switch e.Token {
		case "baraabar", "barabar", "bara":
			order = append(order, e.Token)
		}
	}
	assert.Equal(t, []string{"baraabar", "barabar", "bara"}, order)
}
