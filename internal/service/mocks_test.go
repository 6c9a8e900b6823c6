package service_test

import (
	"context"

	"github.com/google/uuid"

	"github.com/aadarshsenapati/globetrotter/backend/internal/domain"
	"github.com/aadarshsenapati/globetrotter/backend/internal/repo"
)

// Hand-written test doubles for the repo interfaces. Each method is a
// function field — set only the ones your test needs; unset methods panic,
// which catches tests exercising paths they did not mean to.
// Shared across the service tests because the ownership chain drags the trip
// and stop repos into almost every test.

type mockTripRepo struct {
	create          func(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	getByID         func(ctx context.Context, userID, tripID uuid.UUID) (domain.Trip, error)
	list            func(ctx context.Context, userID uuid.UUID, params domain.ListParams) ([]domain.Trip, int, error)
	update          func(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	delete          func(ctx context.Context, userID, tripID uuid.UUID) error
	setShareToken   func(ctx context.Context, userID, tripID uuid.UUID, token string) (domain.Trip, error)
	clearShareToken func(ctx context.Context, userID, tripID uuid.UUID) error
	getByShareToken func(ctx context.Context, token string) (domain.Trip, error)
}

func (m *mockTripRepo) Create(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	return m.create(ctx, trip)
}
func (m *mockTripRepo) GetByID(ctx context.Context, userID, tripID uuid.UUID) (domain.Trip, error) {
	return m.getByID(ctx, userID, tripID)
}
func (m *mockTripRepo) List(ctx context.Context, userID uuid.UUID, params domain.ListParams) ([]domain.Trip, int, error) {
	return m.list(ctx, userID, params)
}
func (m *mockTripRepo) Update(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	return m.update(ctx, trip)
}
func (m *mockTripRepo) Delete(ctx context.Context, userID, tripID uuid.UUID) error {
	return m.delete(ctx, userID, tripID)
}
func (m *mockTripRepo) SetShareToken(ctx context.Context, userID, tripID uuid.UUID, token string) (domain.Trip, error) {
	return m.setShareToken(ctx, userID, tripID, token)
}
func (m *mockTripRepo) ClearShareToken(ctx context.Context, userID, tripID uuid.UUID) error {
	return m.clearShareToken(ctx, userID, tripID)
}
func (m *mockTripRepo) GetByShareToken(ctx context.Context, token string) (domain.Trip, error) {
	return m.getByShareToken(ctx, token)
}

var _ repo.TripRepo = (*mockTripRepo)(nil)

type mockStopRepo struct {
	create       func(ctx context.Context, stop domain.Stop) (domain.Stop, error)
	getByID      func(ctx context.Context, tripID, stopID uuid.UUID) (domain.Stop, error)
	getTripID    func(ctx context.Context, stopID uuid.UUID) (uuid.UUID, error)
	listByTripID func(ctx context.Context, tripID uuid.UUID) ([]domain.Stop, error)
	maxPosition  func(ctx context.Context, tripID uuid.UUID) (int, bool, error)
	update       func(ctx context.Context, stop domain.Stop) (domain.Stop, error)
	delete       func(ctx context.Context, tripID, stopID uuid.UUID) error
}

func (m *mockStopRepo) Create(ctx context.Context, stop domain.Stop) (domain.Stop, error) {
	return m.create(ctx, stop)
}
func (m *mockStopRepo) GetByID(ctx context.Context, tripID, stopID uuid.UUID) (domain.Stop, error) {
	return m.getByID(ctx, tripID, stopID)
}
func (m *mockStopRepo) GetTripID(ctx context.Context, stopID uuid.UUID) (uuid.UUID, error) {
	return m.getTripID(ctx, stopID)
}
func (m *mockStopRepo) ListByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.Stop, error) {
	return m.listByTripID(ctx, tripID)
}
func (m *mockStopRepo) MaxPosition(ctx context.Context, tripID uuid.UUID) (int, bool, error) {
	return m.maxPosition(ctx, tripID)
}
func (m *mockStopRepo) Update(ctx context.Context, stop domain.Stop) (domain.Stop, error) {
	return m.update(ctx, stop)
}
func (m *mockStopRepo) Delete(ctx context.Context, tripID, stopID uuid.UUID) error {
	return m.delete(ctx, tripID, stopID)
}

var _ repo.StopRepo = (*mockStopRepo)(nil)

type mockActivityRepo struct {
	create       func(ctx context.Context, activity domain.Activity) (domain.Activity, error)
	getByID      func(ctx context.Context, stopID, activityID uuid.UUID) (domain.Activity, error)
	getStopID    func(ctx context.Context, activityID uuid.UUID) (uuid.UUID, error)
	listByStopID func(ctx context.Context, stopID uuid.UUID) ([]domain.Activity, error)
	maxPosition  func(ctx context.Context, stopID uuid.UUID) (int, bool, error)
	update       func(ctx context.Context, activity domain.Activity) (domain.Activity, error)
	delete       func(ctx context.Context, stopID, activityID uuid.UUID) error
}

func (m *mockActivityRepo) Create(ctx context.Context, activity domain.Activity) (domain.Activity, error) {
	return m.create(ctx, activity)
}
func (m *mockActivityRepo) GetByID(ctx context.Context, stopID, activityID uuid.UUID) (domain.Activity, error) {
	return m.getByID(ctx, stopID, activityID)
}
func (m *mockActivityRepo) GetStopID(ctx context.Context, activityID uuid.UUID) (uuid.UUID, error) {
	return m.getStopID(ctx, activityID)
}
func (m *mockActivityRepo) ListByStopID(ctx context.Context, stopID uuid.UUID) ([]domain.Activity, error) {
	return m.listByStopID(ctx, stopID)
}
func (m *mockActivityRepo) MaxPosition(ctx context.Context, stopID uuid.UUID) (int, bool, error) {
	return m.maxPosition(ctx, stopID)
}
func (m *mockActivityRepo) Update(ctx context.Context, activity domain.Activity) (domain.Activity, error) {
	return m.update(ctx, activity)
}
func (m *mockActivityRepo) Delete(ctx context.Context, stopID, activityID uuid.UUID) error {
	return m.delete(ctx, stopID, activityID)
}

var _ repo.ActivityRepo = (*mockActivityRepo)(nil)

type mockScheduleRepo struct {
	create       func(ctx context.Context, entry domain.ScheduledActivity) (domain.ScheduledActivity, error)
	listByTripID func(ctx context.Context, tripID uuid.UUID) ([]domain.ScheduledActivity, error)
	update       func(ctx context.Context, entry domain.ScheduledActivity) (domain.ScheduledActivity, error)
	delete       func(ctx context.Context, tripID, entryID uuid.UUID) error
}

func (m *mockScheduleRepo) Create(ctx context.Context, entry domain.ScheduledActivity) (domain.ScheduledActivity, error) {
	return m.create(ctx, entry)
}
func (m *mockScheduleRepo) ListByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.ScheduledActivity, error) {
	return m.listByTripID(ctx, tripID)
}
func (m *mockScheduleRepo) Update(ctx context.Context, entry domain.ScheduledActivity) (domain.ScheduledActivity, error) {
	return m.update(ctx, entry)
}
func (m *mockScheduleRepo) Delete(ctx context.Context, tripID, entryID uuid.UUID) error {
	return m.delete(ctx, tripID, entryID)
}

var _ repo.ScheduleRepo = (*mockScheduleRepo)(nil)

type mockUserRepo struct {
	upsert  func(ctx context.Context, user domain.User) (domain.User, error)
	getByID func(ctx context.Context, id uuid.UUID) (domain.User, error)
	update  func(ctx context.Context, user domain.User) (domain.User, error)
	delete  func(ctx context.Context, id uuid.UUID) error
}

func (m *mockUserRepo) Upsert(ctx context.Context, user domain.User) (domain.User, error) {
	return m.upsert(ctx, user)
}
func (m *mockUserRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.User, error) {
	return m.getByID(ctx, id)
}
func (m *mockUserRepo) Update(ctx context.Context, user domain.User) (domain.User, error) {
	return m.update(ctx, user)
}
func (m *mockUserRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.delete(ctx, id)
}

var _ repo.UserRepo = (*mockUserRepo)(nil)
