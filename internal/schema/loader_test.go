package schema

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleYAML = `
version: "1"
sets:
  - name: V
    kind: variant
    identifiers: [Aaa, Bbb]
  - name: F
    kind: field
    style: variant
    rename_all: snake_case
    policy: catch_all_payload
    payload: u8
    fallback: Other
    identifiers:
      - Aaa
      - Bbb
`

func TestParse(t *testing.T) {
	f, err := Parse([]byte(sampleYAML))
	require.NoError(t, err)
	require.NotNil(t, f)

	assert.Equal(t, "1", f.Version)
	require.Len(t, f.Sets, 2)

	v := f.Sets[0]
	assert.Equal(t, "V", v.Name)
	assert.Equal(t, "variant", v.Kind)
	assert.Equal(t, "strict", v.Policy, "policy defaults to strict")
	assert.Empty(t, v.Payload)
	assert.Equal(t, []string{"Aaa", "Bbb"}, v.Identifiers)

	fd := f.Sets[1]
	assert.Equal(t, "snake_case", fd.RenameAll)
	assert.Equal(t, "variant", fd.Style)
	assert.Empty(t, v.Style)
	assert.Equal(t, "catch_all_payload", fd.Policy)
	assert.Equal(t, "u8", fd.Payload)
	assert.Equal(t, "Other", fd.Fallback)
}

func TestParseDefaults(t *testing.T) {
	f, err := Parse([]byte(`
sets:
  - name: F
    kind: field
    policy: catch_all_payload
    identifiers: [a]
`))
	require.NoError(t, err)
	assert.Equal(t, CurrentVersion, f.Version)
	assert.Equal(t, PayloadAny, f.Sets[0].Payload)
}

func TestParseEmpty(t *testing.T) {
	f, err := Parse(nil)
	require.NoError(t, err)
	assert.Empty(t, f.Sets)
}

func TestParseRejectsUnknownKeys(t *testing.T) {
	_, err := Parse([]byte(`
sets:
  - name: F
    kind: field
    renameAll: snake_case
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "renameAll")
}

func TestParseTOML(t *testing.T) {
	f, err := ParseTOML([]byte(`
version = "1"

[[sets]]
name = "F"
kind = "field"
rename_all = "snake_case"
policy = "catch_all_unit"
identifiers = ["Aaa", "Bbb"]
`))
	require.NoError(t, err)
	require.Len(t, f.Sets, 1)
	assert.Equal(t, "catch_all_unit", f.Sets[0].Policy)
	assert.Equal(t, []string{"Aaa", "Bbb"}, f.Sets[0].Identifiers)

	_, err = ParseTOML([]byte(`
[[sets]]
name = "F"
colour = "blue"
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sets.colour")
}

func TestParseJSONC(t *testing.T) {
	f, err := ParseJSONC([]byte(`{
  // identifier sets
  "sets": [
    {
      "name": "V",
      "kind": "variant",
      "identifiers": ["Aaa", "Bbb",], /* trailing comma */
    },
  ],
}`))
	require.NoError(t, err)
	require.Len(t, f.Sets, 1)
	assert.Equal(t, "strict", f.Sets[0].Policy)

	_, err = ParseJSONC([]byte(`{"sets": [{"name": "V", "bogus": 1}]}`))
	require.Error(t, err)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()

	yamlPath := filepath.Join(dir, "schema.yaml")
	require.NoError(t, os.WriteFile(yamlPath, []byte(sampleYAML), 0o644))

	f, err := LoadFile(yamlPath)
	require.NoError(t, err)
	assert.Len(t, f.Sets, 2)

	tomlPath := filepath.Join(dir, "schema.toml")
	require.NoError(t, os.WriteFile(tomlPath, []byte("[[sets]]\nname = \"V\"\nkind = \"variant\"\nidentifiers = [\"A\"]\n"), 0o644))

	f, err = LoadFile(tomlPath)
	require.NoError(t, err)
	assert.Len(t, f.Sets, 1)

	jsonPath := filepath.Join(dir, "schema.jsonc")
	require.NoError(t, os.WriteFile(jsonPath, []byte(`{"sets": [{"name": "V", "kind": "variant", "identifiers": ["A"]}]}`), 0o644))

	f, err = LoadFile(jsonPath)
	require.NoError(t, err)
	assert.Len(t, f.Sets, 1)

	_, err = LoadFile(filepath.Join(dir, "schema.ini"))
	require.Error(t, err)

	iniPath := filepath.Join(dir, "present.ini")
	require.NoError(t, os.WriteFile(iniPath, nil, 0o644))
	_, err = LoadFile(iniPath)
	require.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestMarshalRoundTrip(t *testing.T) {
	f, err := Parse([]byte(sampleYAML))
	require.NoError(t, err)

	data, err := Marshal(f)
	require.NoError(t, err)

	again, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, f, again)
}
