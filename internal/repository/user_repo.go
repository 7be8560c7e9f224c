package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"cyber-bank-auth/internal/model"
)

// UserRepository is the credential store. Lookup failures that mean "no such
// record" surface as model.ErrCredentialNotFound; everything else is an
// infrastructure error for the request that hit it.
type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (model.Credential, error) {
	var c model.Credential
	err := r.pool.QueryRow(ctx,
		`SELECT id, user_id, email, username, password, salt, creation_date
		 FROM users WHERE username = $1`, username).
		Scan(&c.ID, &c.SubjectID, &c.Email, &c.Username, &c.PasswordHash, &c.Salt, &c.CreatedAt)

	if errors.Is(err, pgx.ErrNoRows) {
		return model.Credential{}, model.ErrCredentialNotFound
	}
	if err != nil {
		return model.Credential{}, fmt.Errorf("find credential by username: %w", err)
	}
	return c, nil
}

func (r *UserRepository) FindBySubjectID(ctx context.Context, subjectID string) (model.Credential, error) {
	var c model.Credential
	err := r.pool.QueryRow(ctx,
		`SELECT id, user_id, email, username, password, salt, creation_date
		 FROM users WHERE user_id = $1`, subjectID).
		Scan(&c.ID, &c.SubjectID, &c.Email, &c.Username, &c.PasswordHash, &c.Salt, &c.CreatedAt)

	if errors.Is(err, pgx.ErrNoRows) {
		return model.Credential{}, model.ErrCredentialNotFound
	}
	if err != nil {
		return model.Credential{}, fmt.Errorf("find credential by subject id: %w", err)
	}
	return c, nil
}

func (r *UserRepository) CountByUsername(ctx context.Context, username string) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(username) FROM users WHERE username = $1`, username).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count credentials by username: %w", err)
	}
	return count, nil
}

func (r *UserRepository) CountByEmail(ctx context.Context, email string) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(email) FROM users WHERE email = $1`, email).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count credentials by email: %w", err)
	}
	return count, nil
}

// Insert persists a new credential record under a fresh opaque subject id
// and returns the number of rows written.
func (r *UserRepository) Insert(ctx context.Context, email string, username string, hash []byte, salt []byte, createdAt time.Time) (int64, error) {
	tag, err := r.pool.Exec(ctx,
		`INSERT INTO users (user_id, email, username, password, salt, creation_date)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		uuid.NewString(), email, username, hash, salt, createdAt)
	if err != nil {
		return 0, fmt.Errorf("insert credential: %w", err)
	}
	return tag.RowsAffected(), nil
}
