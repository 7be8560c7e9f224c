package policy

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"cyber-bank-auth/internal/model"
)

func TestValidateUsername(t *testing.T) {
	t.Parallel()

	t.Run("accepts valid usernames", func(t *testing.T) {
		for _, username := range []string{"alice123", "a.b_c-d", "user", strings.Repeat("a", 32)} {
			require.Nil(t, ValidateUsername(username), "username %q should be valid", username)
		}
	})

	t.Run("rejects short and long usernames", func(t *testing.T) {
		for _, username := range []string{"", "abc", strings.Repeat("a", 33)} {
			v := ValidateUsername(username)
			require.NotNil(t, v)
			require.Equal(t, model.ViolationInvalidLength, v.Code)
			require.NotNil(t, v.Length)
			require.Equal(t, len(username), *v.Length)
		}
	})

	t.Run("rejects disallowed characters", func(t *testing.T) {
		v := ValidateUsername("ali ce")
		require.NotNil(t, v)
		require.Equal(t, model.ViolationInvalidChar, v.Code)
		require.Equal(t, " ", v.Char)
	})

	t.Run("reports the last invalid character", func(t *testing.T) {
		// The scan does not stop at the first bad character.
		v := ValidateUsername("al!ce?x")
		require.NotNil(t, v)
		require.Equal(t, model.ViolationInvalidChar, v.Code)
		require.Equal(t, "?", v.Char)
	})
}
