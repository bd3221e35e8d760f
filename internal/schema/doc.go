// Package schema provides declarative definitions of identifier sets,
// loading them from YAML, TOML or JSONC files, validation, and a registry
// resolving tokens against the sets a file declares.
//
// # Schema Overview
//
// A YAML schema file has the following structure:
//
//	version: "1"
//	sets:
//	  - name: V
//	    kind: variant
//	    identifiers: [Aaa, Bbb]
//	  - name: F
//	    kind: field
//	    style: variant              # names below are PascalCase; fields default to snake_case
//	    rename_all: snake_case
//	    policy: catch_all_payload   # strict (default) | catch_all_unit | catch_all_payload
//	    payload: u8                 # any (default) | token | string | u8 | u16 | u32 | u64
//	    fallback: Other
//	    identifiers: [Aaa, Bbb]
//
// TOML files use [[sets]] tables with the same keys. JSON files may carry
// comments and trailing commas.
//
// # Fallback
//
// The fallback name only labels the catch-all arm in reports. It takes no
// part in matching and must not collide with a declared identifier once
// renamed.
package schema
