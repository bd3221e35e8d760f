package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClosest(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		candidates []string
		want       string
		ok         bool
	}{
		{"typo", "bbx", []string{"aaa", "bbb"}, "bbb", true},
		{"case style", "FirstName", []string{"first_name", "last_name"}, "first_name", true},
		{"nothing close", "unknown", []string{"aaa", "bbb"}, "", false},
		{"empty table", "x", nil, "", false},
		{"tie keeps declaration order", "ab", []string{"aa", "bb"}, "aa", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Closest(tt.input, tt.candidates)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
