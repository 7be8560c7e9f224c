package model

import "time"

// Credential is a stored user credential record. PasswordHash is always the
// argon2id digest of the plaintext password under this record's Salt; the
// salt is generated per record and never reused.
type Credential struct {
	ID           int64     `json:"id"`
	SubjectID    string    `json:"user_id"`
	Email        string    `json:"email"`
	Username     string    `json:"username"`
	PasswordHash []byte    `json:"-"`
	Salt         []byte    `json:"-"`
	CreatedAt    time.Time `json:"creation_date"`
}

// Profile is the public view of a credential record returned to its owner.
type Profile struct {
	SubjectID string    `json:"user_id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"creation_date"`
}
