package policy

import (
	"unicode"

	"cyber-bank-auth/internal/model"
)

const (
	passwordMinLength = 8
	passwordMaxLength = 64
)

// ValidatePassword checks that a password satisfies the account security
// policy:
//   - length between 8 and 64 bytes
//   - at least one uppercase ASCII letter
//   - at least one lowercase ASCII letter
//   - at least one ASCII digit
//   - at least one ASCII punctuation character or space
//   - no characters outside the ASCII range
//
// It returns nil on success, otherwise the single highest-priority violation.
// Character classes are counted in one pass; an unclassifiable character
// aborts the scan immediately and discards the counts.
func ValidatePassword(password string) *model.Violation {
	if len(password) < passwordMinLength || len(password) > passwordMaxLength {
		v := model.NewLengthViolation(model.FieldPassword, len(password))
		return &v
	}

	var uppercase, lowercase, digits, special int
	for _, r := range password {
		switch {
		case r > unicode.MaxASCII:
			v := model.NewCharViolation(model.FieldPassword, r)
			return &v
		case r >= 'A' && r <= 'Z':
			uppercase++
		case r >= 'a' && r <= 'z':
			lowercase++
		case r >= '0' && r <= '9':
			digits++
		case isASCIIPunct(r) || r == ' ':
			special++
		default:
			// ASCII control characters land here.
			v := model.NewCharViolation(model.FieldPassword, r)
			return &v
		}
	}

	var code model.ViolationCode
	switch {
	case uppercase == 0:
		code = model.ViolationNotEnoughUppercaseChars
	case lowercase == 0:
		code = model.ViolationNotEnoughLowercaseChars
	case digits == 0:
		code = model.ViolationNotEnoughDigits
	case special == 0:
		code = model.ViolationNotEnoughSpecialChars
	default:
		return nil
	}

	v := model.NewViolation(model.FieldPassword, code)
	return &v
}

// isASCIIPunct mirrors the ASCII punctuation ranges !-/, :-@, [-` and {-~.
func isASCIIPunct(r rune) bool {
	switch {
	case r >= '!' && r <= '/',
		r >= ':' && r <= '@',
		r >= '[' && r <= '`',
		r >= '{' && r <= '~':
		return true
	}
	return false
}
