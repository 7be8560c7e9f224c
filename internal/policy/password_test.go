package policy

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"cyber-bank-auth/internal/model"
)

func TestValidatePassword(t *testing.T) {
	t.Parallel()

	t.Run("accepts passwords with all character classes", func(t *testing.T) {
		for _, password := range []string{
			"Abcdef1!",
			"Tr0ub4dor &3",
			"A1b2 c3d4",
			"PASSword9~",
			strings.Repeat("Aa1!", 16), // exactly 64 bytes
		} {
			require.Nil(t, ValidatePassword(password), "password %q should be valid", password)
		}
	})

	t.Run("rejects short and long passwords", func(t *testing.T) {
		for _, password := range []string{"", "Ab1!", "Abcdef1", strings.Repeat("Aa1!", 16) + "x"} {
			v := ValidatePassword(password)
			require.NotNil(t, v)
			require.Equal(t, model.ViolationInvalidLength, v.Code)
			require.NotNil(t, v.Length)
			require.Equal(t, len(password), *v.Length)
		}
	})

	t.Run("reports missing classes in priority order", func(t *testing.T) {
		cases := []struct {
			password string
			code     model.ViolationCode
		}{
			{"abcdef1!", model.ViolationNotEnoughUppercaseChars},
			{"ABCDEF1!", model.ViolationNotEnoughLowercaseChars},
			{"Abcdefg!", model.ViolationNotEnoughDigits},
			{"Abcdefg1", model.ViolationNotEnoughSpecialChars},
			// No uppercase and no digit: uppercase wins.
			{"abcdefg!", model.ViolationNotEnoughUppercaseChars},
		}
		for _, tc := range cases {
			v := ValidatePassword(tc.password)
			require.NotNil(t, v, "password %q", tc.password)
			require.Equal(t, tc.code, v.Code, "password %q", tc.password)
		}
	})

	t.Run("aborts on the first non-ASCII character", func(t *testing.T) {
		v := ValidatePassword("Abcdéf1!")
		require.NotNil(t, v)
		require.Equal(t, model.ViolationInvalidChar, v.Code)
		require.Equal(t, "é", v.Char)
	})

	t.Run("non-ASCII wins over missing classes", func(t *testing.T) {
		// All lowercase and a non-ASCII char: the char aborts the scan
		// before the class counts are judged.
		v := ValidatePassword("abcdefgé")
		require.NotNil(t, v)
		require.Equal(t, model.ViolationInvalidChar, v.Code)
	})

	t.Run("rejects ASCII control characters", func(t *testing.T) {
		v := ValidatePassword("Abcdef1!\t")
		require.NotNil(t, v)
		require.Equal(t, model.ViolationInvalidChar, v.Code)
		require.Equal(t, "\t", v.Char)
	})

	t.Run("space counts as a special character", func(t *testing.T) {
		require.Nil(t, ValidatePassword("Abcdefg1 "))
	})
}
