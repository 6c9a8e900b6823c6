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

// ActivityRepo defines the persistence operations for Activities.
// All write and single-read operations are scoped by stopID.
type ActivityRepo interface {
	// Create inserts a new activity and returns the persisted record.
	Create(ctx context.Context, activity domain.Activity) (domain.Activity, error)

	// GetByID retrieves a single activity by its UUID, scoped to the given stopID.
	GetByID(ctx context.Context, stopID, activityID uuid.UUID) (domain.Activity, error)

	// GetStopID returns the owning stop id for an activity, for walking the
	// ownership chain from a route that only carries an activity id.
	GetStopID(ctx context.Context, activityID uuid.UUID) (uuid.UUID, error)

	// ListByStopID returns all activities for a stop ordered by position ascending.
	ListByStopID(ctx context.Context, stopID uuid.UUID) ([]domain.Activity, error)

	// MaxPosition returns the highest position among a stop's activities.
	// ok is false when the stop has no activities yet.
	MaxPosition(ctx context.Context, stopID uuid.UUID) (max int, ok bool, err error)

	// Update overwrites the mutable fields of an activity, scoped to the given stopID.
	Update(ctx context.Context, activity domain.Activity) (domain.Activity, error)

	// Delete removes an activity by ID, scoped to the given stopID.
	Delete(ctx context.Context, stopID, activityID uuid.UUID) error
}

// pgActivityRepo is the Postgres implementation of ActivityRepo.
type pgActivityRepo struct {
	db db
}

// NewActivityRepo constructs an ActivityRepo backed by the provided db connection.
func NewActivityRepo(db db) ActivityRepo {
	return &pgActivityRepo{db: db}
}

const activityColumns = `id, stop_id, name, description, activity_type, scheduled_time, duration_minutes,
	cost, currency, location, latitude, longitude, place_id, position, created_at, updated_at`

func (r *pgActivityRepo) Create(ctx context.Context, activity domain.Activity) (domain.Activity, error) {
	const q = `
		INSERT INTO activities (stop_id, name, description, activity_type, scheduled_time, duration_minutes,
			cost, currency, location, latitude, longitude, place_id, position)
		VALUES (@stop_id, @name, @description, @activity_type, @scheduled_time, @duration_minutes,
			@cost, COALESCE(NULLIF(@currency, ''), 'USD'), @location, @latitude, @longitude, @place_id, @position)
		RETURNING ` + activityColumns

	args := pgx.NamedArgs{
		"stop_id":          activity.StopID,
		"name":             activity.Name,
		"description":      activity.Description,
		"activity_type":    activity.ActivityType,
		"scheduled_time":   activity.ScheduledTime,
		"duration_minutes": activity.DurationMinutes,
		"cost":             activity.Cost,
		"currency":         activity.Currency,
		"location":         activity.Location,
		"latitude":         activity.Latitude,
		"longitude":        activity.Longitude,
		"place_id":         activity.PlaceID,
		"position":         activity.Position,
	}

	result, err := scanActivity(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.Activity{}, fmt.Errorf("repo.ActivityRepo.Create: %w", err)
	}
	return result, nil
}

func (r *pgActivityRepo) GetByID(ctx context.Context, stopID, activityID uuid.UUID) (domain.Activity, error) {
	const q = `SELECT ` + activityColumns + ` FROM activities WHERE id = @id AND stop_id = @stop_id`

	result, err := scanActivity(r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": activityID, "stop_id": stopID}))
	if err != nil {
		return domain.Activity{}, fmt.Errorf("repo.ActivityRepo.GetByID: %w", err)
	}
	return result, nil
}

func (r *pgActivityRepo) GetStopID(ctx context.Context, activityID uuid.UUID) (uuid.UUID, error) {
	const q = `SELECT stop_id FROM activities WHERE id = @id`

	var stopID pgtype.UUID
	err := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": activityID}).Scan(&stopID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return uuid.Nil, fmt.Errorf("repo.ActivityRepo.GetStopID: %w", domain.ErrNotFound)
		}
		return uuid.Nil, fmt.Errorf("repo.ActivityRepo.GetStopID: %w", err)
	}
	return uuid.UUID(stopID.Bytes), nil
}

func (r *pgActivityRepo) ListByStopID(ctx context.Context, stopID uuid.UUID) ([]domain.Activity, error) {
	const q = `SELECT ` + activityColumns + ` FROM activities WHERE stop_id = @stop_id ORDER BY position ASC`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"stop_id": stopID})
	if err != nil {
		return nil, fmt.Errorf("repo.ActivityRepo.ListByStopID: %w", err)
	}
	defer rows.Close()

	var activities []domain.Activity
	for rows.Next() {
		a, err := scanActivity(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.ActivityRepo.ListByStopID: scan: %w", err)
		}
		activities = append(activities, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.ActivityRepo.ListByStopID: rows: %w", err)
	}

	return activities, nil
}

// MaxPosition mirrors StopRepo.MaxPosition and carries the same accepted
// read-then-insert race.
func (r *pgActivityRepo) MaxPosition(ctx context.Context, stopID uuid.UUID) (int, bool, error) {
	const q = `SELECT max(position) FROM activities WHERE stop_id = @stop_id`

	var max pgtype.Int4
	if err := r.db.QueryRow(ctx, q, pgx.NamedArgs{"stop_id": stopID}).Scan(&max); err != nil {
		return 0, false, fmt.Errorf("repo.ActivityRepo.MaxPosition: %w", err)
	}
	if !max.Valid {
		return 0, false, nil
	}
	return int(max.Int32), true, nil
}

func (r *pgActivityRepo) Update(ctx context.Context, activity domain.Activity) (domain.Activity, error) {
	const q = `
		UPDATE activities
		SET name             = @name,
		    description      = @description,
		    activity_type    = @activity_type,
		    scheduled_time   = @scheduled_time,
		    duration_minutes = @duration_minutes,
		    cost             = @cost,
		    currency         = @currency,
		    location         = @location,
		    latitude         = @latitude,
		    longitude        = @longitude,
		    position         = @position,
		    updated_at       = now()
		WHERE id = @id AND stop_id = @stop_id
		RETURNING ` + activityColumns

	args := pgx.NamedArgs{
		"id":               activity.ID,
		"stop_id":          activity.StopID,
		"name":             activity.Name,
		"description":      activity.Description,
		"activity_type":    activity.ActivityType,
		"scheduled_time":   activity.ScheduledTime,
		"duration_minutes": activity.DurationMinutes,
		"cost":             activity.Cost,
		"currency":         activity.Currency,
		"location":         activity.Location,
		"latitude":         activity.Latitude,
		"longitude":        activity.Longitude,
		"position":         activity.Position,
	}

	result, err := scanActivity(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.Activity{}, fmt.Errorf("repo.ActivityRepo.Update: %w", err)
	}
	return result, nil
}

func (r *pgActivityRepo) Delete(ctx context.Context, stopID, activityID uuid.UUID) error {
	const q = `DELETE FROM activities WHERE id = @id AND stop_id = @stop_id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": activityID, "stop_id": stopID})
	if err != nil {
		return fmt.Errorf("repo.ActivityRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.ActivityRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

// scanActivity maps a single database row into a domain.Activity.
func scanActivity(s scanner) (domain.Activity, error) {
	var (
		a        domain.Activity
		id       pgtype.UUID
		stopID   pgtype.UUID
		schedule pgtype.Text
		duration pgtype.Int4
		cost     pgtype.Float8
		lat      pgtype.Float8
		lng      pgtype.Float8
	)

	err := s.Scan(&id, &stopID, &a.Name, &a.Description, &a.ActivityType, &schedule, &duration,
		&cost, &a.Currency, &a.Location, &lat, &lng, &a.PlaceID, &a.Position, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Activity{}, domain.ErrNotFound
		}
		return domain.Activity{}, err
	}

	a.ID = uuid.UUID(id.Bytes)
	a.StopID = uuid.UUID(stopID.Bytes)
	if schedule.Valid {
		v := schedule.String
		a.ScheduledTime = &v
	}
	if duration.Valid {
		v := int(duration.Int32)
		a.DurationMinutes = &v
	}
	if cost.Valid {
		v := cost.Float64
		a.Cost = &v
	}
	if lat.Valid {
		v := lat.Float64
		a.Latitude = &v
	}
	if lng.Valid {
		v := lng.Float64
		a.Longitude = &v
	}

	return a, nil
}
