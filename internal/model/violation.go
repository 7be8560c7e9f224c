package model

// ViolationCode enumerates every validation failure the registration flow
// can report. The set is closed; handlers and clients switch on it.
type ViolationCode string

const (
	ViolationInvalidLength           ViolationCode = "invalid_length"
	ViolationInvalidChar             ViolationCode = "invalid_char"
	ViolationNotEnoughUppercaseChars ViolationCode = "not_enough_uppercase_chars"
	ViolationNotEnoughLowercaseChars ViolationCode = "not_enough_lowercase_chars"
	ViolationNotEnoughDigits         ViolationCode = "not_enough_digits"
	ViolationNotEnoughSpecialChars   ViolationCode = "not_enough_special_chars"
	ViolationInvalidFormat           ViolationCode = "invalid_format"
	ViolationAlreadyInUse            ViolationCode = "already_in_use"
)

const (
	FieldPassword = "password"
	FieldUsername = "username"
	FieldEmail    = "email"
)

// Violation is a single structured validation failure. Char and Length are
// populated only for the codes that carry them.
type Violation struct {
	Field  string        `json:"field"`
	Code   ViolationCode `json:"code"`
	Char   string        `json:"char,omitempty"`
	Length *int          `json:"length,omitempty"`
}

func NewViolation(field string, code ViolationCode) Violation {
	return Violation{Field: field, Code: code}
}

func NewCharViolation(field string, char rune) Violation {
	return Violation{Field: field, Code: ViolationInvalidChar, Char: string(char)}
}

func NewLengthViolation(field string, length int) Violation {
	return Violation{Field: field, Code: ViolationInvalidLength, Length: &length}
}
