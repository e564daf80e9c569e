/*
Package config manages configuration parsing and validation for urdujs.

	            +-------------+
	            |   Config    |
	            | (Settings)  |
	            +------+------+
	                   |
	      +-----------+-----------+
	      |                       |
	+-----+-----+           +----+----+
	|   YAML    |           |   HCL   |
	| Parser    |           | Parser  |
	+-----------+           +---------+

🎯 Purpose:
- Loads optional vocabulary extensions (token → replacement mappings)
- Configures batch transpilation (include globs, output suffix)
- Supports multiple config formats behind one Parser interface

🔄 Flow:
1. Reads configuration from file
2. Parses format-specific syntax
3. Validates values and fills defaults
4. Mappings are fed to the vocabulary table's Extend

📝 Design Philosophy:
Configuration never replaces the built-in vocabulary; it only extends
it. A config file is optional: without one, urdujs runs with the
default table. Unknown YAML fields are rejected so typos surface as
errors instead of silently ignored settings.
*/
package config
