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

// TripRepo defines the persistence operations for Trips.
// Every operation except GetByShareToken is scoped by the owning userID, so
// a trip belonging to another user reads as absent (domain.ErrNotFound),
// never as forbidden.
type TripRepo interface {
	// Create inserts a new trip and returns the persisted record (with
	// DB-generated id, created_at, and updated_at populated).
	Create(ctx context.Context, trip domain.Trip) (domain.Trip, error)

	// GetByID retrieves a single trip by UUID, scoped to userID.
	// Returns domain.ErrNotFound if no trip with that ID exists under that user.
	GetByID(ctx context.Context, userID, tripID uuid.UUID) (domain.Trip, error)

	// List returns the user's trips ordered by created_at descending,
	// windowed by params, plus the total row count for the user.
	List(ctx context.Context, userID uuid.UUID, params domain.ListParams) ([]domain.Trip, int, error)

	// Update overwrites the mutable fields of an existing trip and returns
	// the updated record, scoped to the owning user.
	Update(ctx context.Context, trip domain.Trip) (domain.Trip, error)

	// Delete removes a trip by ID, scoped to userID.
	Delete(ctx context.Context, userID, tripID uuid.UUID) error

	// SetShareToken marks the trip public and stores its share token.
	SetShareToken(ctx context.Context, userID, tripID uuid.UUID, token string) (domain.Trip, error)

	// ClearShareToken removes public sharing from a trip.
	ClearShareToken(ctx context.Context, userID, tripID uuid.UUID) error

	// GetByShareToken retrieves a public trip by its share token without any
	// user scoping. Non-public trips read as absent even when the token matches.
	GetByShareToken(ctx context.Context, token string) (domain.Trip, error)
}

// pgTripRepo is the Postgres implementation of TripRepo.
type pgTripRepo struct {
	db db
}

// NewTripRepo constructs a TripRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewTripRepo(db db) TripRepo {
	return &pgTripRepo{db: db}
}

const tripColumns = `id, user_id, name, start_date, end_date, photo_url, description, is_public, share_token, created_at, updated_at`

func (r *pgTripRepo) Create(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	const q = `
		INSERT INTO trips (user_id, name, start_date, end_date, photo_url, description)
		VALUES (@user_id, @name, @start_date, @end_date, @photo_url, @description)
		RETURNING ` + tripColumns

	args := pgx.NamedArgs{
		"user_id":     trip.UserID,
		"name":        trip.Name,
		"start_date":  trip.StartDate,
		"end_date":    trip.EndDate,
		"photo_url":   trip.PhotoURL,
		"description": trip.Description,
	}

	result, err := scanTrip(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.Create: %w", err)
	}
	return result, nil
}

func (r *pgTripRepo) GetByID(ctx context.Context, userID, tripID uuid.UUID) (domain.Trip, error) {
	const q = `SELECT ` + tripColumns + ` FROM trips WHERE id = @id AND user_id = @user_id`

	result, err := scanTrip(r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": tripID, "user_id": userID}))
	if err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.GetByID: %w", err)
	}
	return result, nil
}

func (r *pgTripRepo) List(ctx context.Context, userID uuid.UUID, params domain.ListParams) ([]domain.Trip, int, error) {
	const q = `
		SELECT ` + tripColumns + `
		FROM trips
		WHERE user_id = @user_id
		ORDER BY created_at DESC
		OFFSET @skip LIMIT @limit`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"user_id": userID, "skip": params.Skip, "limit": params.Limit})
	if err != nil {
		return nil, 0, fmt.Errorf("repo.TripRepo.List: %w", err)
	}
	defer rows.Close()

	var trips []domain.Trip
	for rows.Next() {
		t, err := scanTrip(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("repo.TripRepo.List: scan: %w", err)
		}
		trips = append(trips, t)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("repo.TripRepo.List: rows: %w", err)
	}

	const countQ = `SELECT count(*) FROM trips WHERE user_id = @user_id`
	var total int
	if err := r.db.QueryRow(ctx, countQ, pgx.NamedArgs{"user_id": userID}).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("repo.TripRepo.List: count: %w", err)
	}

	return trips, total, nil
}

func (r *pgTripRepo) Update(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	const q = `
		UPDATE trips
		SET name        = @name,
		    start_date  = @start_date,
		    end_date    = @end_date,
		    photo_url   = @photo_url,
		    description = @description,
		    is_public   = @is_public,
		    updated_at  = now()
		WHERE id = @id AND user_id = @user_id
		RETURNING ` + tripColumns

	args := pgx.NamedArgs{
		"id":          trip.ID,
		"user_id":     trip.UserID,
		"name":        trip.Name,
		"start_date":  trip.StartDate,
		"end_date":    trip.EndDate,
		"photo_url":   trip.PhotoURL,
		"description": trip.Description,
		"is_public":   trip.IsPublic,
	}

	result, err := scanTrip(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.Update: %w", err)
	}
	return result, nil
}

func (r *pgTripRepo) Delete(ctx context.Context, userID, tripID uuid.UUID) error {
	const q = `DELETE FROM trips WHERE id = @id AND user_id = @user_id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": tripID, "user_id": userID})
	if err != nil {
		return fmt.Errorf("repo.TripRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.TripRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

func (r *pgTripRepo) SetShareToken(ctx context.Context, userID, tripID uuid.UUID, token string) (domain.Trip, error) {
	const q = `
		UPDATE trips
		SET share_token = @token,
		    is_public   = TRUE,
		    updated_at  = now()
		WHERE id = @id AND user_id = @user_id
		RETURNING ` + tripColumns

	result, err := scanTrip(r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": tripID, "user_id": userID, "token": token}))
	if err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.SetShareToken: %w", err)
	}
	return result, nil
}

func (r *pgTripRepo) ClearShareToken(ctx context.Context, userID, tripID uuid.UUID) error {
	const q = `
		UPDATE trips
		SET share_token = NULL,
		    is_public   = FALSE,
		    updated_at  = now()
		WHERE id = @id AND user_id = @user_id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": tripID, "user_id": userID})
	if err != nil {
		return fmt.Errorf("repo.TripRepo.ClearShareToken: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.TripRepo.ClearShareToken: %w", domain.ErrNotFound)
	}
	return nil
}

func (r *pgTripRepo) GetByShareToken(ctx context.Context, token string) (domain.Trip, error) {
	const q = `SELECT ` + tripColumns + ` FROM trips WHERE share_token = @token AND is_public`

	result, err := scanTrip(r.db.QueryRow(ctx, q, pgx.NamedArgs{"token": token}))
	if err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.GetByShareToken: %w", err)
	}
	return result, nil
}

// scanTrip maps a single database row into a domain.Trip.
// It handles the UUID, date, and nullable share_token conversions.
func scanTrip(s scanner) (domain.Trip, error) {
	var (
		t      domain.Trip
		id     pgtype.UUID
		userID pgtype.UUID
		start  pgtype.Date
		end    pgtype.Date
		token  pgtype.Text
	)

	err := s.Scan(&id, &userID, &t.Name, &start, &end, &t.PhotoURL, &t.Description,
		&t.IsPublic, &token, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Trip{}, domain.ErrNotFound
		}
		return domain.Trip{}, err
	}

	t.ID = uuid.UUID(id.Bytes)
	t.UserID = uuid.UUID(userID.Bytes)
	t.StartDate = start.Time
	t.EndDate = end.Time
	if token.Valid {
		v := token.String
		t.ShareToken = &v
	}

	return t, nil
}
