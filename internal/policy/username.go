package policy

import "cyber-bank-auth/internal/model"

const (
	usernameMinLength = 4
	usernameMaxLength = 32
)

// ValidateUsername checks that a username is between 4 and 32 bytes long and
// contains only ASCII alphanumerics or the characters '.', '_' and '-'.
// Returns nil on success.
//
// The scan deliberately walks the whole string and reports the last invalid
// character rather than the first; clients depend on the reported character,
// so the behavior is kept stable.
func ValidateUsername(username string) *model.Violation {
	if len(username) < usernameMinLength || len(username) > usernameMaxLength {
		v := model.NewLengthViolation(model.FieldUsername, len(username))
		return &v
	}

	var invalid rune
	var found bool
	for _, r := range username {
		if isASCIIAlphanumeric(r) || r == '.' || r == '_' || r == '-' {
			continue
		}
		invalid = r
		found = true
	}
	if found {
		v := model.NewCharViolation(model.FieldUsername, invalid)
		return &v
	}
	return nil
}

func isASCIIAlphanumeric(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}
