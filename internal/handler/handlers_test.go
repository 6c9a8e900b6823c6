package handler_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/aadarshsenapati/globetrotter/backend/internal/authclient"
	"github.com/aadarshsenapati/globetrotter/backend/internal/domain"
	"github.com/aadarshsenapati/globetrotter/backend/internal/handler"
	"github.com/aadarshsenapati/globetrotter/backend/internal/middleware"
	"github.com/aadarshsenapati/globetrotter/backend/internal/service"
)

// Hand-written doubles for the handler's service interfaces, one function
// field per method. Tests populate only what they exercise.

type mockAuthService struct {
	signUp  func(ctx context.Context, email, password, fullName string) (service.AuthResult, error)
	login   func(ctx context.Context, email, password string) (service.AuthResult, error)
	refresh func(ctx context.Context, refreshToken string) (service.AuthResult, error)
	logout  func(ctx context.Context, accessToken string) error
}

func (m *mockAuthService) SignUp(ctx context.Context, email, password, fullName string) (service.AuthResult, error) {
	return m.signUp(ctx, email, password, fullName)
}
func (m *mockAuthService) Login(ctx context.Context, email, password string) (service.AuthResult, error) {
	return m.login(ctx, email, password)
}
func (m *mockAuthService) Refresh(ctx context.Context, refreshToken string) (service.AuthResult, error) {
	return m.refresh(ctx, refreshToken)
}
func (m *mockAuthService) Logout(ctx context.Context, accessToken string) error {
	return m.logout(ctx, accessToken)
}

var _ handler.AuthServicer = (*mockAuthService)(nil)

type mockTripService struct {
	create    func(ctx context.Context, userID uuid.UUID, trip domain.Trip) (domain.Trip, error)
	getByID   func(ctx context.Context, userID, tripID uuid.UUID) (domain.Trip, error)
	list      func(ctx context.Context, userID uuid.UUID, params domain.ListParams) ([]domain.Trip, int, error)
	update    func(ctx context.Context, userID uuid.UUID, trip domain.Trip) (domain.Trip, error)
	delete    func(ctx context.Context, userID, tripID uuid.UUID) error
	share     func(ctx context.Context, userID, tripID uuid.UUID) (service.ShareLink, error)
	unshare   func(ctx context.Context, userID, tripID uuid.UUID) error
	getShared func(ctx context.Context, token string) (domain.Trip, error)
}

func (m *mockTripService) Create(ctx context.Context, userID uuid.UUID, trip domain.Trip) (domain.Trip, error) {
	return m.create(ctx, userID, trip)
}
func (m *mockTripService) GetByID(ctx context.Context, userID, tripID uuid.UUID) (domain.Trip, error) {
	return m.getByID(ctx, userID, tripID)
}
func (m *mockTripService) List(ctx context.Context, userID uuid.UUID, params domain.ListParams) ([]domain.Trip, int, error) {
	return m.list(ctx, userID, params)
}
func (m *mockTripService) Update(ctx context.Context, userID uuid.UUID, trip domain.Trip) (domain.Trip, error) {
	return m.update(ctx, userID, trip)
}
func (m *mockTripService) Delete(ctx context.Context, userID, tripID uuid.UUID) error {
	return m.delete(ctx, userID, tripID)
}
func (m *mockTripService) Share(ctx context.Context, userID, tripID uuid.UUID) (service.ShareLink, error) {
	return m.share(ctx, userID, tripID)
}
func (m *mockTripService) Unshare(ctx context.Context, userID, tripID uuid.UUID) error {
	return m.unshare(ctx, userID, tripID)
}
func (m *mockTripService) GetShared(ctx context.Context, token string) (domain.Trip, error) {
	return m.getShared(ctx, token)
}

var _ handler.TripServicer = (*mockTripService)(nil)

type mockStopService struct {
	create func(ctx context.Context, userID uuid.UUID, stop domain.Stop) (domain.Stop, error)
	list   func(ctx context.Context, userID, tripID uuid.UUID) ([]domain.Stop, error)
	update func(ctx context.Context, userID uuid.UUID, stop domain.Stop) (domain.Stop, error)
	delete func(ctx context.Context, userID, stopID uuid.UUID) error
}

func (m *mockStopService) Create(ctx context.Context, userID uuid.UUID, stop domain.Stop) (domain.Stop, error) {
	return m.create(ctx, userID, stop)
}
func (m *mockStopService) ListByTripID(ctx context.Context, userID, tripID uuid.UUID) ([]domain.Stop, error) {
	return m.list(ctx, userID, tripID)
}
func (m *mockStopService) Update(ctx context.Context, userID uuid.UUID, stop domain.Stop) (domain.Stop, error) {
	return m.update(ctx, userID, stop)
}
func (m *mockStopService) Delete(ctx context.Context, userID, stopID uuid.UUID) error {
	return m.delete(ctx, userID, stopID)
}

var _ handler.StopServicer = (*mockStopService)(nil)

type mockActivityService struct {
	create func(ctx context.Context, userID uuid.UUID, activity domain.Activity) (domain.Activity, error)
	list   func(ctx context.Context, userID, stopID uuid.UUID) ([]domain.Activity, error)
	update func(ctx context.Context, userID uuid.UUID, activity domain.Activity) (domain.Activity, error)
	delete func(ctx context.Context, userID, activityID uuid.UUID) error
}

func (m *mockActivityService) Create(ctx context.Context, userID uuid.UUID, activity domain.Activity) (domain.Activity, error) {
	return m.create(ctx, userID, activity)
}
func (m *mockActivityService) ListByStopID(ctx context.Context, userID, stopID uuid.UUID) ([]domain.Activity, error) {
	return m.list(ctx, userID, stopID)
}
func (m *mockActivityService) Update(ctx context.Context, userID uuid.UUID, activity domain.Activity) (domain.Activity, error) {
	return m.update(ctx, userID, activity)
}
func (m *mockActivityService) Delete(ctx context.Context, userID, activityID uuid.UUID) error {
	return m.delete(ctx, userID, activityID)
}

var _ handler.ActivityServicer = (*mockActivityService)(nil)

type autoPlanFunc func(ctx context.Context, userID, tripID uuid.UUID, city string) ([]domain.ItineraryDay, error)

func (f autoPlanFunc) AutoPlan(ctx context.Context, userID, tripID uuid.UUID, city string) ([]domain.ItineraryDay, error) {
	return f(ctx, userID, tripID, city)
}

var _ handler.ItineraryPlanner = (autoPlanFunc)(nil)

type mockSearchService struct {
	cities     func(ctx context.Context, q, region string) ([]service.CityResult, error)
	activities func(ctx context.Context, city, category string, maxCost int) ([]service.ActivityResult, error)
}

func (m *mockSearchService) Cities(ctx context.Context, q, region string) ([]service.CityResult, error) {
	return m.cities(ctx, q, region)
}
func (m *mockSearchService) Activities(ctx context.Context, city, category string, maxCost int) ([]service.ActivityResult, error) {
	return m.activities(ctx, city, category, maxCost)
}

var _ handler.SearchServicer = (*mockSearchService)(nil)

type mockScheduleService struct {
	create func(ctx context.Context, userID uuid.UUID, entry domain.ScheduledActivity) (domain.ScheduledActivity, error)
	list   func(ctx context.Context, userID, tripID uuid.UUID) ([]domain.ScheduledActivity, error)
	update func(ctx context.Context, userID uuid.UUID, entry domain.ScheduledActivity) (domain.ScheduledActivity, error)
	delete func(ctx context.Context, userID, tripID, entryID uuid.UUID) error
}

func (m *mockScheduleService) Create(ctx context.Context, userID uuid.UUID, entry domain.ScheduledActivity) (domain.ScheduledActivity, error) {
	return m.create(ctx, userID, entry)
}
func (m *mockScheduleService) ListByTripID(ctx context.Context, userID, tripID uuid.UUID) ([]domain.ScheduledActivity, error) {
	return m.list(ctx, userID, tripID)
}
func (m *mockScheduleService) Update(ctx context.Context, userID uuid.UUID, entry domain.ScheduledActivity) (domain.ScheduledActivity, error) {
	return m.update(ctx, userID, entry)
}
func (m *mockScheduleService) Delete(ctx context.Context, userID, tripID, entryID uuid.UUID) error {
	return m.delete(ctx, userID, tripID, entryID)
}

var _ handler.ScheduleServicer = (*mockScheduleService)(nil)

type mockProfileService struct {
	get    func(ctx context.Context, userID uuid.UUID) (domain.User, error)
	update func(ctx context.Context, user domain.User) (domain.User, error)
	delete func(ctx context.Context, userID uuid.UUID) error
}

func (m *mockProfileService) Get(ctx context.Context, userID uuid.UUID) (domain.User, error) {
	return m.get(ctx, userID)
}
func (m *mockProfileService) Update(ctx context.Context, user domain.User) (domain.User, error) {
	return m.update(ctx, user)
}
func (m *mockProfileService) DeleteAccount(ctx context.Context, userID uuid.UUID) error {
	return m.delete(ctx, userID)
}

var _ handler.ProfileServicer = (*mockProfileService)(nil)

// deps bundles one mock per service interface; zero values panic when an
// unexpected method is hit, which is what we want in tests.
type deps struct {
	auth      mockAuthService
	trips     mockTripService
	stops     mockStopService
	acts      mockActivityService
	plan      autoPlanFunc
	search    mockSearchService
	schedule  mockScheduleService
	profile   mockProfileService
	authUser  authclient.AuthUser
	authError error
}

// newTestServer builds the full chi router exactly as production wires it,
// with the real bearer-token middleware backed by a stub validator. Requests
// carrying "Authorization: Bearer ok" authenticate as d.authUser.
func newTestServer(t *testing.T, d *deps) *httptest.Server {
	t.Helper()

	s := handler.NewServer(&d.auth, &d.trips, &d.stops, &d.acts, d.plan, &d.search, &d.schedule, &d.profile)

	validator := validatorFunc(func(_ context.Context, token string) (authclient.AuthUser, error) {
		if d.authError != nil {
			return authclient.AuthUser{}, d.authError
		}
		return d.authUser, nil
	})
	srv := httptest.NewServer(s.Routes(middleware.NewAuthenticator(validator)))
	t.Cleanup(srv.Close)
	return srv
}

type validatorFunc func(ctx context.Context, accessToken string) (authclient.AuthUser, error)

func (f validatorFunc) GetUser(ctx context.Context, accessToken string) (authclient.AuthUser, error) {
	return f(ctx, accessToken)
}

// doJSON performs a request with an optional JSON body and bearer token.
func doJSON(t *testing.T, method, url, token, body string) *http.Response {
	t.Helper()

	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req, err := http.NewRequest(method, url, rd)
	if err != nil {
		t.Fatalf("build request: %v", err)
	}
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}
