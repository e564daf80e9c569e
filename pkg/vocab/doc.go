/*
Package vocab holds the token vocabulary and its compiled match rules.

	 +-------------+        +--------------+
	 |    Table    | -----> |    Rules     |
	 | (token map) |        | (word match) |
	 +------+------+        +------+-------+
	        |                      |
	     Extend()              Apply(text)

🎯 Purpose:
- Maintains the ordered token → replacement table
- Compiles one whole-word match rule per entry
- Keeps rules and entries in lockstep across mutations

🔄 Flow:
1. Table starts from the built-in default vocabulary
2. Extend merges new pairs (overwrite in place, append new)
3. Rules are recompiled atomically inside the mutation
4. Readers take a consistent snapshot of the rule list

⚡ Key Responsibilities:
- Insertion-order preservation (rule order is application order)
- Case-insensitive, whole-word, rune-boundary matching
- Literal matching of tokens containing regex metacharacters

📝 Design Philosophy:
The table is the single source of truth for the language vocabulary.
Rules are never persisted independently: they are a pure function of
the table and exist only as its compiled form. Word boundaries are
checked at the rune level rather than with RE2's \b, which is
ASCII-only and would mis-handle tokens sitting next to Arabic-script
punctuation or future non-Latin tokens.
*/
package vocab
