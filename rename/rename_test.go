package rename_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rodoufu/serde/rename"
)

func ExampleRule_Apply() {
	for _, rule := range []rename.Rule{rename.None, rename.Snake, rename.Camel, rename.ScreamingKebab} {
		fmt.Println(rule, rule.Apply("OrderId", rename.VariantStyle), rule.Apply("order_id", rename.FieldStyle))
	}
	// Output:
	// none OrderId order_id
	// snake_case order_id order_id
	// camelCase orderId orderId
	// SCREAMING-KEBAB-CASE ORDER-ID ORDER-ID
}

func TestApplyToVariant(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input, lower, upper, camel, snake, screamingSnake, kebab, screamingKebab string
	}{
		{"Outcome", "outcome", "OUTCOME", "outcome", "outcome", "OUTCOME", "outcome", "OUTCOME"},
		{"VeryTasty", "verytasty", "VERYTASTY", "veryTasty", "very_tasty", "VERY_TASTY", "very-tasty", "VERY-TASTY"},
		{"A", "a", "A", "a", "a", "A", "a", "A"},
		{"Z42", "z42", "Z42", "z42", "z42", "Z42", "z42", "Z42"},
		{"HTTPServer", "httpserver", "HTTPSERVER", "hTTPServer", "h_t_t_p_server", "H_T_T_P_SERVER", "h-t-t-p-server", "H-T-T-P-SERVER"},
		{"XMLParser", "xmlparser", "XMLPARSER", "xMLParser", "x_m_l_parser", "X_M_L_PARSER", "x-m-l-parser", "X-M-L-PARSER"},
		{"_private", "_private", "_PRIVATE", "_private", "_private", "_PRIVATE", "_private", "_PRIVATE"},
		{"Ünicode", "Ünicode", "ÜNICODE", "Ünicode", "Ünicode", "ÜNICODE", "Ünicode", "ÜNICODE"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.input, rename.None.ApplyToVariant(tt.input))
			assert.Equal(t, tt.input, rename.Pascal.ApplyToVariant(tt.input))
			assert.Equal(t, tt.lower, rename.Lower.ApplyToVariant(tt.input))
			assert.Equal(t, tt.upper, rename.Upper.ApplyToVariant(tt.input))
			assert.Equal(t, tt.camel, rename.Camel.ApplyToVariant(tt.input))
			assert.Equal(t, tt.snake, rename.Snake.ApplyToVariant(tt.input))
			assert.Equal(t, tt.screamingSnake, rename.ScreamingSnake.ApplyToVariant(tt.input))
			assert.Equal(t, tt.kebab, rename.Kebab.ApplyToVariant(tt.input))
			assert.Equal(t, tt.screamingKebab, rename.ScreamingKebab.ApplyToVariant(tt.input))
		})
	}
}

func TestApplyToField(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input, upper, pascal, camel, screamingSnake, kebab, screamingKebab string
	}{
		{"outcome", "OUTCOME", "Outcome", "outcome", "OUTCOME", "outcome", "OUTCOME"},
		{"very_tasty", "VERY_TASTY", "VeryTasty", "veryTasty", "VERY_TASTY", "very-tasty", "VERY-TASTY"},
		{"a", "A", "A", "a", "A", "a", "A"},
		{"z42", "Z42", "Z42", "z42", "Z42", "z42", "Z42"},
		{"_private", "_PRIVATE", "Private", "private", "_PRIVATE", "-private", "-PRIVATE"},
		{"http_server", "HTTP_SERVER", "HttpServer", "httpServer", "HTTP_SERVER", "http-server", "HTTP-SERVER"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.input, rename.None.ApplyToField(tt.input))
			assert.Equal(t, tt.input, rename.Lower.ApplyToField(tt.input))
			assert.Equal(t, tt.input, rename.Snake.ApplyToField(tt.input))
			assert.Equal(t, tt.upper, rename.Upper.ApplyToField(tt.input))
			assert.Equal(t, tt.pascal, rename.Pascal.ApplyToField(tt.input))
			assert.Equal(t, tt.camel, rename.Camel.ApplyToField(tt.input))
			assert.Equal(t, tt.screamingSnake, rename.ScreamingSnake.ApplyToField(tt.input))
			assert.Equal(t, tt.kebab, rename.Kebab.ApplyToField(tt.input))
			assert.Equal(t, tt.screamingKebab, rename.ScreamingKebab.ApplyToField(tt.input))
		})
	}
}

func TestApplyPicksPathByStyle(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "very_tasty", rename.Snake.Apply("VeryTasty", rename.VariantStyle))
	assert.Equal(t, "VeryTasty", rename.Snake.Apply("VeryTasty", rename.FieldStyle))
	assert.Equal(t, "HTTPServer", rename.Pascal.Apply("HTTPServer", rename.VariantStyle))
	assert.Equal(t, "", rename.Camel.Apply("", rename.VariantStyle))
	assert.Equal(t, "", rename.Camel.Apply("", rename.FieldStyle))
}

func TestParseStyle(t *testing.T) {
	t.Parallel()

	for _, style := range []rename.Style{rename.VariantStyle, rename.FieldStyle} {
		parsed, err := rename.ParseStyle(style.String())
		require.NoError(t, err)
		assert.Equal(t, style, parsed)
	}

	_, err := rename.ParseStyle("Pascal")
	require.ErrorIs(t, err, rename.ErrUnknownStyle)
	assert.EqualError(t, err, `unknown declaration style "Pascal"`)
}

func TestParseRule(t *testing.T) {
	t.Parallel()

	for _, rule := range []rename.Rule{
		rename.Lower, rename.Upper, rename.Pascal, rename.Camel, rename.Snake,
		rename.ScreamingSnake, rename.Kebab, rename.ScreamingKebab,
	} {
		parsed, err := rename.ParseRule(rule.String())
		require.NoError(t, err)
		assert.Equal(t, rule, parsed)
	}

	parsed, err := rename.ParseRule("")
	require.NoError(t, err)
	assert.Equal(t, rename.None, parsed)

	parsed, err = rename.ParseRule("none")
	require.NoError(t, err)
	assert.Equal(t, rename.None, parsed)

	_, err = rename.ParseRule("Snake")
	require.ErrorIs(t, err, rename.ErrUnknownRule)
	assert.EqualError(t, err, `unknown rename rule "Snake"`)
}

func TestTextRoundTrip(t *testing.T) {
	t.Parallel()

	var rule rename.Rule
	require.NoError(t, rule.UnmarshalText([]byte("kebab-case")))
	assert.Equal(t, rename.Kebab, rule)

	text, err := rule.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "kebab-case", string(text))

	require.Error(t, rule.UnmarshalText([]byte("bogus")))
	assert.Equal(t, rename.Kebab, rule)
}
