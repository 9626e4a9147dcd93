package spain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"lowercase is upper-cased", "12345678z", "12345678Z"},
		{"spaces removed", "12345678 Z", "12345678Z"},
		{"hyphens removed", "X-1234567-L", "X1234567L"},
		{"mixed separators", " 2100 0418-45 0200051332 ", "21000418450200051332"},
		{"empty stays empty", "", ""},
		{"whitespace-only becomes empty", "   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.in))
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{"12345678Z", "x-1234567 l", "2100 0418 45 0200051332", ""}
	for _, in := range inputs {
		once := Normalize(in)
		assert.Equal(t, once, Normalize(once), "input %q", in)
	}
}
