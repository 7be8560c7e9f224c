package model

import "errors"

var (
	// Credential store errors
	ErrCredentialNotFound = errors.New("credential not found")

	// Authentication errors. All of them cross the trust boundary as the
	// same bare forbidden response.
	ErrInvalidCredentials = errors.New("invalid credentials")
)
