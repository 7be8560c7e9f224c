package policy

import (
	"testing"

	"github.com/stretchr/testify/require"

	"cyber-bank-auth/internal/model"
)

func TestValidateEmail(t *testing.T) {
	t.Parallel()

	t.Run("accepts well-formed addresses", func(t *testing.T) {
		for _, email := range []string{
			"a@b.com",
			"alice@example.org",
			"first-last@example.co.uk",
		} {
			require.Nil(t, ValidateEmail(email), "email %q should be valid", email)
		}
	})

	t.Run("rejects malformed addresses", func(t *testing.T) {
		for _, email := range []string{
			"",
			"no-at-sign",
			"@example.com",
			"alice@",
			"alice@example",
			"alice@example.c",
			"alice@example.COM",
			"a b@example.com",
		} {
			v := ValidateEmail(email)
			require.NotNil(t, v, "email %q should be invalid", email)
			require.Equal(t, model.ViolationInvalidFormat, v.Code)
			require.Equal(t, model.FieldEmail, v.Field)
		}
	})
}
