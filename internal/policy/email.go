package policy

import (
	"regexp"

	"cyber-bank-auth/internal/model"
)

var emailPattern = regexp.MustCompile(`^[\w\-]+(?:\.[\w\-])*@(?:[\w\-]\.)*[\w\-]+\.[a-z]{2,6}(?:\.[a-z]{2})?$`)

// ValidateEmail checks that an address matches the accepted
// local-part@domain shape. Returns nil on success.
func ValidateEmail(email string) *model.Violation {
	if emailPattern.MatchString(email) {
		return nil
	}
	v := model.NewViolation(model.FieldEmail, model.ViolationInvalidFormat)
	return &v
}
