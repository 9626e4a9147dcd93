package spain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateBankAccount(t *testing.T) {
	t.Run("known good account", func(t *testing.T) {
		res := ValidateBankAccount("2100-0418-45-0200051332")
		require.True(t, res.Valid)
		assert.Equal(t, KindCCC, res.Kind)
		assert.Equal(t, "21000418450200051332", res.Canonical)
	})

	t.Run("separator variants normalize to the same account", func(t *testing.T) {
		for _, input := range []string{
			"21000418450200051332",
			"2100 0418 45 0200051332",
			"2100-0418-45-0200051332",
			" 2100 0418-45 0200051332 ",
		} {
			res := ValidateBankAccount(input)
			require.True(t, res.Valid, "input %q", input)
			assert.Equal(t, "21000418450200051332", res.Canonical)
		}
	})

	t.Run("wrong check digits are a checksum mismatch", func(t *testing.T) {
		for _, input := range []string{
			"2100-0418-44-0200051332", // account check off by one
			"2100-0418-55-0200051332", // entity/office check off by one
			"2100-0418-54-0200051332", // both digits swapped
		} {
			res := ValidateBankAccount(input)
			require.False(t, res.Valid, "input %q", input)
			assert.Equal(t, ReasonChecksumMismatch, res.Reason)
			assert.Equal(t, KindCCC, res.Kind)
		}
	})

	t.Run("structural failures are malformed, never a checksum result", func(t *testing.T) {
		for _, input := range []string{
			"",
			"2100",
			"2100-0418-45-020005133",    // 19 digits
			"2100-0418-45-02000513321",  // 21 digits
			"21OO-0418-45-0200051332",   // letters in entity
			"2100_0418_45_0200051332",   // unsupported separator
			"2100-0418-456-0200051332",  // 3-digit check group
		} {
			res := ValidateBankAccount(input)
			require.False(t, res.Valid, "input %q", input)
			assert.Equal(t, ReasonMalformed, res.Reason)
		}
	})
}
