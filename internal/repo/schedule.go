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

// ScheduleRepo defines the persistence operations for day-slotted
// scheduled activities, all scoped by the owning tripID.
type ScheduleRepo interface {
	// Create inserts a new scheduled activity and returns the persisted record.
	Create(ctx context.Context, entry domain.ScheduledActivity) (domain.ScheduledActivity, error)

	// ListByTripID returns all scheduled activities for a trip ordered by day,
	// then creation time.
	ListByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.ScheduledActivity, error)

	// Update overwrites the mutable fields of a scheduled activity.
	Update(ctx context.Context, entry domain.ScheduledActivity) (domain.ScheduledActivity, error)

	// Delete removes a scheduled activity, scoped to the given tripID.
	Delete(ctx context.Context, tripID, entryID uuid.UUID) error
}

// pgScheduleRepo is the Postgres implementation of ScheduleRepo.
type pgScheduleRepo struct {
	db db
}

// NewScheduleRepo constructs a ScheduleRepo backed by the provided db connection.
func NewScheduleRepo(db db) ScheduleRepo {
	return &pgScheduleRepo{db: db}
}

const scheduleColumns = `id, trip_id, city, day, place_id, name, category, estimated_cost, latitude, longitude, created_at, updated_at`

func (r *pgScheduleRepo) Create(ctx context.Context, entry domain.ScheduledActivity) (domain.ScheduledActivity, error) {
	const q = `
		INSERT INTO scheduled_activities (trip_id, city, day, place_id, name, category, estimated_cost, latitude, longitude)
		VALUES (@trip_id, @city, @day, @place_id, @name, @category, @estimated_cost, @latitude, @longitude)
		RETURNING ` + scheduleColumns

	args := pgx.NamedArgs{
		"trip_id":        entry.TripID,
		"city":           entry.City,
		"day":            entry.Day,
		"place_id":       entry.PlaceID,
		"name":           entry.Name,
		"category":       entry.Category,
		"estimated_cost": entry.EstimatedCost,
		"latitude":       entry.Latitude,
		"longitude":      entry.Longitude,
	}

	result, err := scanSchedule(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.ScheduledActivity{}, fmt.Errorf("repo.ScheduleRepo.Create: %w", err)
	}
	return result, nil
}

func (r *pgScheduleRepo) ListByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.ScheduledActivity, error) {
	const q = `
		SELECT ` + scheduleColumns + `
		FROM scheduled_activities
		WHERE trip_id = @trip_id
		ORDER BY day ASC, created_at ASC`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"trip_id": tripID})
	if err != nil {
		return nil, fmt.Errorf("repo.ScheduleRepo.ListByTripID: %w", err)
	}
	defer rows.Close()

	var entries []domain.ScheduledActivity
	for rows.Next() {
		e, err := scanSchedule(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.ScheduleRepo.ListByTripID: scan: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.ScheduleRepo.ListByTripID: rows: %w", err)
	}

	return entries, nil
}

func (r *pgScheduleRepo) Update(ctx context.Context, entry domain.ScheduledActivity) (domain.ScheduledActivity, error) {
	const q = `
		UPDATE scheduled_activities
		SET name           = @name,
		    category       = @category,
		    estimated_cost = @estimated_cost,
		    day            = @day,
		    updated_at     = now()
		WHERE id = @id AND trip_id = @trip_id
		RETURNING ` + scheduleColumns

	args := pgx.NamedArgs{
		"id":             entry.ID,
		"trip_id":        entry.TripID,
		"name":           entry.Name,
		"category":       entry.Category,
		"estimated_cost": entry.EstimatedCost,
		"day":            entry.Day,
	}

	result, err := scanSchedule(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.ScheduledActivity{}, fmt.Errorf("repo.ScheduleRepo.Update: %w", err)
	}
	return result, nil
}

func (r *pgScheduleRepo) Delete(ctx context.Context, tripID, entryID uuid.UUID) error {
	const q = `DELETE FROM scheduled_activities WHERE id = @id AND trip_id = @trip_id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": entryID, "trip_id": tripID})
	if err != nil {
		return fmt.Errorf("repo.ScheduleRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.ScheduleRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

// scanSchedule maps a single database row into a domain.ScheduledActivity.
func scanSchedule(s scanner) (domain.ScheduledActivity, error) {
	var (
		e      domain.ScheduledActivity
		id     pgtype.UUID
		tripID pgtype.UUID
		cost   pgtype.Int4
		lat    pgtype.Float8
		lng    pgtype.Float8
	)

	err := s.Scan(&id, &tripID, &e.City, &e.Day, &e.PlaceID, &e.Name, &e.Category,
		&cost, &lat, &lng, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ScheduledActivity{}, domain.ErrNotFound
		}
		return domain.ScheduledActivity{}, err
	}

	e.ID = uuid.UUID(id.Bytes)
	e.TripID = uuid.UUID(tripID.Bytes)
	if cost.Valid {
		v := int(cost.Int32)
		e.EstimatedCost = &v
	}
	if lat.Valid {
		v := lat.Float64
		e.Latitude = &v
	}
	if lng.Valid {
		v := lng.Float64
		e.Longitude = &v
	}

	return e, nil
}
