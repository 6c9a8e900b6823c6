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

// StopRepo defines the persistence operations for Stops.
// All write and single-read operations are scoped by tripID; ownership of the
// trip itself is checked one layer up, in the service.
type StopRepo interface {
	// Create inserts a new stop and returns the persisted record.
	Create(ctx context.Context, stop domain.Stop) (domain.Stop, error)

	// GetByID retrieves a single stop by its UUID, scoped to the given tripID.
	// Returns domain.ErrNotFound if no stop with that ID exists under that trip.
	GetByID(ctx context.Context, tripID, stopID uuid.UUID) (domain.Stop, error)

	// GetTripID returns the owning trip id for a stop, for walking the
	// ownership chain from an activity route that only carries a stop id.
	GetTripID(ctx context.Context, stopID uuid.UUID) (uuid.UUID, error)

	// ListByTripID returns all stops for a trip ordered by position ascending.
	ListByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.Stop, error)

	// MaxPosition returns the highest position among a trip's stops.
	// ok is false when the trip has no stops yet.
	MaxPosition(ctx context.Context, tripID uuid.UUID) (max int, ok bool, err error)

	// Update overwrites the mutable fields of a stop, scoped to the given tripID.
	Update(ctx context.Context, stop domain.Stop) (domain.Stop, error)

	// Delete removes a stop by ID, scoped to the given tripID.
	Delete(ctx context.Context, tripID, stopID uuid.UUID) error
}

// pgStopRepo is the Postgres implementation of StopRepo.
type pgStopRepo struct {
	db db
}

// NewStopRepo constructs a StopRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewStopRepo(db db) StopRepo {
	return &pgStopRepo{db: db}
}

const stopColumns = `id, trip_id, name, location, latitude, longitude, arrival_date, departure_date, position, notes, created_at, updated_at`

func (r *pgStopRepo) Create(ctx context.Context, stop domain.Stop) (domain.Stop, error) {
	const q = `
		INSERT INTO stops (trip_id, name, location, latitude, longitude, arrival_date, departure_date, position, notes)
		VALUES (@trip_id, @name, @location, @latitude, @longitude, @arrival_date, @departure_date, @position, @notes)
		RETURNING ` + stopColumns

	args := pgx.NamedArgs{
		"trip_id":        stop.TripID,
		"name":           stop.Name,
		"location":       stop.Location,
		"latitude":       stop.Latitude,
		"longitude":      stop.Longitude,
		"arrival_date":   stop.ArrivalDate,
		"departure_date": stop.DepartureDate,
		"position":       stop.Position,
		"notes":          stop.Notes,
	}

	result, err := scanStop(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.Stop{}, fmt.Errorf("repo.StopRepo.Create: %w", err)
	}
	return result, nil
}

func (r *pgStopRepo) GetByID(ctx context.Context, tripID, stopID uuid.UUID) (domain.Stop, error) {
	const q = `SELECT ` + stopColumns + ` FROM stops WHERE id = @id AND trip_id = @trip_id`

	result, err := scanStop(r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": stopID, "trip_id": tripID}))
	if err != nil {
		return domain.Stop{}, fmt.Errorf("repo.StopRepo.GetByID: %w", err)
	}
	return result, nil
}

func (r *pgStopRepo) GetTripID(ctx context.Context, stopID uuid.UUID) (uuid.UUID, error) {
	const q = `SELECT trip_id FROM stops WHERE id = @id`

	var tripID pgtype.UUID
	err := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": stopID}).Scan(&tripID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return uuid.Nil, fmt.Errorf("repo.StopRepo.GetTripID: %w", domain.ErrNotFound)
		}
		return uuid.Nil, fmt.Errorf("repo.StopRepo.GetTripID: %w", err)
	}
	return uuid.UUID(tripID.Bytes), nil
}

func (r *pgStopRepo) ListByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.Stop, error) {
	const q = `SELECT ` + stopColumns + ` FROM stops WHERE trip_id = @trip_id ORDER BY position ASC`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"trip_id": tripID})
	if err != nil {
		return nil, fmt.Errorf("repo.StopRepo.ListByTripID: %w", err)
	}
	defer rows.Close()

	var stops []domain.Stop
	for rows.Next() {
		st, err := scanStop(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.StopRepo.ListByTripID: scan: %w", err)
		}
		stops = append(stops, st)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.StopRepo.ListByTripID: rows: %w", err)
	}

	return stops, nil
}

// MaxPosition reads the current highest position for the trip. This read and
// the subsequent insert are separate statements: concurrent inserts under the
// same trip can compute the same position. Accepted, not remediated.
func (r *pgStopRepo) MaxPosition(ctx context.Context, tripID uuid.UUID) (int, bool, error) {
	const q = `SELECT max(position) FROM stops WHERE trip_id = @trip_id`

	var max pgtype.Int4
	if err := r.db.QueryRow(ctx, q, pgx.NamedArgs{"trip_id": tripID}).Scan(&max); err != nil {
		return 0, false, fmt.Errorf("repo.StopRepo.MaxPosition: %w", err)
	}
	if !max.Valid {
		return 0, false, nil
	}
	return int(max.Int32), true, nil
}

func (r *pgStopRepo) Update(ctx context.Context, stop domain.Stop) (domain.Stop, error) {
	const q = `
		UPDATE stops
		SET name           = @name,
		    location       = @location,
		    latitude       = @latitude,
		    longitude      = @longitude,
		    arrival_date   = @arrival_date,
		    departure_date = @departure_date,
		    position       = @position,
		    notes          = @notes,
		    updated_at     = now()
		WHERE id = @id AND trip_id = @trip_id
		RETURNING ` + stopColumns

	args := pgx.NamedArgs{
		"id":             stop.ID,
		"trip_id":        stop.TripID,
		"name":           stop.Name,
		"location":       stop.Location,
		"latitude":       stop.Latitude,
		"longitude":      stop.Longitude,
		"arrival_date":   stop.ArrivalDate,
		"departure_date": stop.DepartureDate,
		"position":       stop.Position,
		"notes":          stop.Notes,
	}

	result, err := scanStop(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.Stop{}, fmt.Errorf("repo.StopRepo.Update: %w", err)
	}
	return result, nil
}

func (r *pgStopRepo) Delete(ctx context.Context, tripID, stopID uuid.UUID) error {
	const q = `DELETE FROM stops WHERE id = @id AND trip_id = @trip_id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": stopID, "trip_id": tripID})
	if err != nil {
		return fmt.Errorf("repo.StopRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.StopRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

// scanStop maps a single database row into a domain.Stop.
func scanStop(s scanner) (domain.Stop, error) {
	var (
		st     domain.Stop
		id     pgtype.UUID
		tripID pgtype.UUID
		lat    pgtype.Float8
		lng    pgtype.Float8
		arr    pgtype.Date
		dep    pgtype.Date
	)

	err := s.Scan(&id, &tripID, &st.Name, &st.Location, &lat, &lng, &arr, &dep,
		&st.Position, &st.Notes, &st.CreatedAt, &st.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Stop{}, domain.ErrNotFound
		}
		return domain.Stop{}, err
	}

	st.ID = uuid.UUID(id.Bytes)
	st.TripID = uuid.UUID(tripID.Bytes)
	if lat.Valid {
		v := lat.Float64
		st.Latitude = &v
	}
	if lng.Valid {
		v := lng.Float64
		st.Longitude = &v
	}
	if arr.Valid {
		v := arr.Time
		st.ArrivalDate = &v
	}
	if dep.Valid {
		v := dep.Time
		st.DepartureDate = &v
	}

	return st, nil
}
