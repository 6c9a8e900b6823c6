package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/aadarshsenapati/globetrotter/backend/internal/domain"
)

// UserRepo defines the persistence operations for user profile rows.
// The auth service owns the account; this table only mirrors profile fields.
type UserRepo interface {
	// Upsert inserts a profile row, or updates email/full name if a row with
	// that ID already exists, and returns the persisted record.
	Upsert(ctx context.Context, user domain.User) (domain.User, error)

	// GetByID retrieves a profile by the auth-service-issued UUID.
	// Returns domain.ErrNotFound if no profile with that ID exists.
	GetByID(ctx context.Context, id uuid.UUID) (domain.User, error)

	// Update overwrites the mutable profile fields and returns the updated
	// record. Returns domain.ErrNotFound if no profile with that ID exists.
	Update(ctx context.Context, user domain.User) (domain.User, error)

	// Delete removes a profile row. Returns domain.ErrNotFound if it does not exist.
	Delete(ctx context.Context, id uuid.UUID) error
}

// pgUserRepo is the Postgres implementation of UserRepo.
type pgUserRepo struct {
	db db
}

// NewUserRepo constructs a UserRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewUserRepo(db db) UserRepo {
	return &pgUserRepo{db: db}
}

const userColumns = `id, email, full_name, avatar_url, language_preference, created_at, updated_at`

func (r *pgUserRepo) Upsert(ctx context.Context, user domain.User) (domain.User, error) {
	const q = `
		INSERT INTO users (id, email, full_name, avatar_url, language_preference)
		VALUES (@id, @email, @full_name, @avatar_url, COALESCE(NULLIF(@language_preference, ''), 'en'))
		ON CONFLICT (id) DO UPDATE
		SET email = EXCLUDED.email,
		    full_name = EXCLUDED.full_name,
		    updated_at = now()
		RETURNING ` + userColumns

	args := pgx.NamedArgs{
		"id":                  user.ID,
		"email":               user.Email,
		"full_name":           user.FullName,
		"avatar_url":          user.AvatarURL,
		"language_preference": user.LanguagePreference,
	}

	result, err := scanUser(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.User{}, fmt.Errorf("repo.UserRepo.Upsert: %w", err)
	}
	return result, nil
}

func (r *pgUserRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.User, error) {
	const q = `SELECT ` + userColumns + ` FROM users WHERE id = @id`

	result, err := scanUser(r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id}))
	if err != nil {
		return domain.User{}, fmt.Errorf("repo.UserRepo.GetByID: %w", err)
	}
	return result, nil
}

func (r *pgUserRepo) Update(ctx context.Context, user domain.User) (domain.User, error) {
	const q = `
		UPDATE users
		SET full_name           = @full_name,
		    avatar_url          = @avatar_url,
		    language_preference = @language_preference,
		    updated_at          = now()
		WHERE id = @id
		RETURNING ` + userColumns

	args := pgx.NamedArgs{
		"id":                  user.ID,
		"full_name":           user.FullName,
		"avatar_url":          user.AvatarURL,
		"language_preference": user.LanguagePreference,
	}

	result, err := scanUser(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.User{}, fmt.Errorf("repo.UserRepo.Update: %w", err)
	}
	return result, nil
}

func (r *pgUserRepo) Delete(ctx context.Context, id uuid.UUID) error {
	const q = `DELETE FROM users WHERE id = @id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": id})
	if err != nil {
		return fmt.Errorf("repo.UserRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.UserRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

// scanUser maps a single database row into a domain.User.
func scanUser(s scanner) (domain.User, error) {
	var (
		u  domain.User
		id pgtype.UUID
	)

	err := s.Scan(&id, &u.Email, &u.FullName, &u.AvatarURL, &u.LanguagePreference, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.User{}, domain.ErrNotFound
		}
		return domain.User{}, err
	}

	u.ID = uuid.UUID(id.Bytes)
	return u, nil
}
