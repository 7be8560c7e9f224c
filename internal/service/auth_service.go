package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"cyber-bank-auth/internal/model"
	"cyber-bank-auth/internal/policy"
	"cyber-bank-auth/internal/security"
	"cyber-bank-auth/internal/token"
)

// CredentialStore is the narrow interface the auth flows need from the
// persistence layer.
type CredentialStore interface {
	FindByUsername(ctx context.Context, username string) (model.Credential, error)
	FindBySubjectID(ctx context.Context, subjectID string) (model.Credential, error)
	CountByUsername(ctx context.Context, username string) (int, error)
	CountByEmail(ctx context.Context, email string) (int, error)
	Insert(ctx context.Context, email string, username string, hash []byte, salt []byte, createdAt time.Time) (int64, error)
}

const defaultTokenTTL = 30 * 24 * time.Hour

// Dummy verification target for login attempts against unknown usernames.
// An all-zero digest can never equal an argon2 output, but verifying against
// it costs the same as a real check, so unknown-user and wrong-password
// responses stay indistinguishable in timing as well as content.
var (
	dummySalt   = make([]byte, security.SaltLength)
	dummyDigest = make([]byte, 32)
)

type AuthService struct {
	store    CredentialStore
	codec    *token.Codec
	tokenTTL time.Duration
}

func NewAuthService(store CredentialStore, codec *token.Codec, tokenTTL time.Duration) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = defaultTokenTTL
	}
	return &AuthService{store: store, codec: codec, tokenTTL: tokenTTL}
}

// Register validates the requested account and persists the credential.
// All policy violations are accumulated and reported together; persistence
// only happens when the list is empty. A non-nil error means infrastructure
// failure, never bad input.
func (s *AuthService) Register(ctx context.Context, email string, username string, password string) ([]model.Violation, error) {
	violations := make([]model.Violation, 0, 4)

	if v := policy.ValidatePassword(password); v != nil {
		violations = append(violations, *v)
	}
	if v := policy.ValidateUsername(username); v != nil {
		violations = append(violations, *v)
	}
	if v := policy.ValidateEmail(email); v != nil {
		violations = append(violations, *v)
	}

	usernameCount, err := s.store.CountByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("check username uniqueness: %w", err)
	}
	if usernameCount != 0 {
		violations = append(violations, model.NewViolation(model.FieldUsername, model.ViolationAlreadyInUse))
	}

	emailCount, err := s.store.CountByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("check email uniqueness: %w", err)
	}
	if emailCount != 0 {
		violations = append(violations, model.NewViolation(model.FieldEmail, model.ViolationAlreadyInUse))
	}

	if len(violations) > 0 {
		return violations, nil
	}

	salt, err := security.NewSalt()
	if err != nil {
		return nil, err
	}
	digest := security.Hash(password, salt)

	rows, err := s.store.Insert(ctx, email, username, digest, salt, time.Now().UTC())
	if err != nil {
		return nil, fmt.Errorf("persist credential: %w", err)
	}
	if rows == 0 {
		return nil, fmt.Errorf("persist credential: no rows affected")
	}

	slog.Info("credential registered", "username", username)
	return nil, nil
}

// Login verifies the credentials and issues a token carrying the login scope
// set. Unknown usernames and wrong passwords both return
// model.ErrInvalidCredentials; the caller must not be able to tell them
// apart.
func (s *AuthService) Login(ctx context.Context, username string, password string) (string, error) {
	cred, err := s.store.FindByUsername(ctx, username)
	if errors.Is(err, model.ErrCredentialNotFound) {
		security.Verify(password, dummySalt, dummyDigest)
		return "", model.ErrInvalidCredentials
	}
	if err != nil {
		return "", fmt.Errorf("look up credential: %w", err)
	}

	if !security.Verify(password, cred.Salt, cred.PasswordHash) {
		return "", model.ErrInvalidCredentials
	}

	signed, err := s.codec.Issue(token.LoginScopes, cred.SubjectID, time.Now().Add(s.tokenTTL))
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}

	slog.Debug("login token issued", "subject", cred.SubjectID)
	return signed, nil
}

// Profile returns the public view of the credential record behind a token
// subject.
func (s *AuthService) Profile(ctx context.Context, subjectID string) (model.Profile, error) {
	cred, err := s.store.FindBySubjectID(ctx, subjectID)
	if err != nil {
		return model.Profile{}, err
	}

	return model.Profile{
		SubjectID: cred.SubjectID,
		Username:  cred.Username,
		Email:     cred.Email,
		CreatedAt: cred.CreatedAt,
	}, nil
}
