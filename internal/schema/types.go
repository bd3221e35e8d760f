package schema

// File represents the root of a schema definition file.
type File struct {
	// Version of the schema format (for future compatibility).
	Version string `yaml:"version,omitempty" toml:"version" json:"version,omitempty"`

	// Sets lists the identifier sets, each resolvable by name.
	Sets []SetDef `yaml:"sets" toml:"sets" json:"sets"`
}

// SetDef declares one identifier set and how unknown tokens are handled.
type SetDef struct {
	// Name identifies the set within the file, usually the Go type it decodes into.
	Name string `yaml:"name" toml:"name" json:"name"`

	// Kind is "field" or "variant".
	Kind string `yaml:"kind" toml:"kind" json:"kind"`

	// RenameAll is a rename rule such as "snake_case", applied to every identifier.
	RenameAll string `yaml:"rename_all,omitempty" toml:"rename_all" json:"rename_all,omitempty"`

	// Style is the convention the identifiers are declared in, "variant"
	// (PascalCase) or "field" (snake_case). It defaults from Kind.
	Style string `yaml:"style,omitempty" toml:"style" json:"style,omitempty"`

	// Policy is "strict", "catch_all_unit" or "catch_all_payload".
	Policy string `yaml:"policy,omitempty" toml:"policy" json:"policy,omitempty"`

	// Payload selects the catch-all payload type for catch_all_payload.
	Payload string `yaml:"payload,omitempty" toml:"payload" json:"payload,omitempty"`

	// Fallback labels the catch-all arm.
	Fallback string `yaml:"fallback,omitempty" toml:"fallback" json:"fallback,omitempty"`

	// Identifiers are the declared names in declaration order.
	Identifiers []string `yaml:"identifiers" toml:"identifiers" json:"identifiers"`
}

// Payload types accepted by SetDef.Payload.
const (
	PayloadAny    = "any"
	PayloadToken  = "token"
	PayloadString = "string"
	PayloadU8     = "u8"
	PayloadU16    = "u16"
	PayloadU32    = "u32"
	PayloadU64    = "u64"
)

const CurrentVersion = "1"
