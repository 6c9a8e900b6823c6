// Package handler implements the HTTP handlers for the GlobeTrotter API.
// All handlers are methods on Server. Methods are split into domain-specific
// files (auth.go, trip.go, etc.) but all share the same Server struct so they
// can access its dependencies.
package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/aadarshsenapati/globetrotter/backend/internal/domain"
	"github.com/aadarshsenapati/globetrotter/backend/internal/service"
)

// The *Servicer interfaces below define the business operations the handlers
// depend on. Defining them here (in the consumer package) follows the Go
// convention: "accept interfaces, return concrete types". It lets handler
// tests inject mocks without touching the database, the auth service, or the
// geo APIs.

// AuthServicer is implemented by service.AuthService.
type AuthServicer interface {
	SignUp(ctx context.Context, email, password, fullName string) (service.AuthResult, error)
	Login(ctx context.Context, email, password string) (service.AuthResult, error)
	Refresh(ctx context.Context, refreshToken string) (service.AuthResult, error)
	Logout(ctx context.Context, accessToken string) error
}

// TripServicer is implemented by service.TripService.
type TripServicer interface {
	Create(ctx context.Context, userID uuid.UUID, trip domain.Trip) (domain.Trip, error)
	GetByID(ctx context.Context, userID, tripID uuid.UUID) (domain.Trip, error)
	List(ctx context.Context, userID uuid.UUID, params domain.ListParams) ([]domain.Trip, int, error)
	Update(ctx context.Context, userID uuid.UUID, trip domain.Trip) (domain.Trip, error)
	Delete(ctx context.Context, userID, tripID uuid.UUID) error
	Share(ctx context.Context, userID, tripID uuid.UUID) (service.ShareLink, error)
	Unshare(ctx context.Context, userID, tripID uuid.UUID) error
	GetShared(ctx context.Context, token string) (domain.Trip, error)
}

// StopServicer is implemented by service.StopService.
type StopServicer interface {
	Create(ctx context.Context, userID uuid.UUID, stop domain.Stop) (domain.Stop, error)
	ListByTripID(ctx context.Context, userID, tripID uuid.UUID) ([]domain.Stop, error)
	Update(ctx context.Context, userID uuid.UUID, stop domain.Stop) (domain.Stop, error)
	Delete(ctx context.Context, userID, stopID uuid.UUID) error
}

// ActivityServicer is implemented by service.ActivityService.
type ActivityServicer interface {
	Create(ctx context.Context, userID uuid.UUID, activity domain.Activity) (domain.Activity, error)
	ListByStopID(ctx context.Context, userID, stopID uuid.UUID) ([]domain.Activity, error)
	Update(ctx context.Context, userID uuid.UUID, activity domain.Activity) (domain.Activity, error)
	Delete(ctx context.Context, userID, activityID uuid.UUID) error
}

// ItineraryPlanner is implemented by service.ItineraryService.
type ItineraryPlanner interface {
	AutoPlan(ctx context.Context, userID, tripID uuid.UUID, city string) ([]domain.ItineraryDay, error)
}

// SearchServicer is implemented by service.SearchService.
type SearchServicer interface {
	Cities(ctx context.Context, q, region string) ([]service.CityResult, error)
	Activities(ctx context.Context, city, category string, maxCost int) ([]service.ActivityResult, error)
}

// ScheduleServicer is implemented by service.ScheduleService.
type ScheduleServicer interface {
	Create(ctx context.Context, userID uuid.UUID, entry domain.ScheduledActivity) (domain.ScheduledActivity, error)
	ListByTripID(ctx context.Context, userID, tripID uuid.UUID) ([]domain.ScheduledActivity, error)
	Update(ctx context.Context, userID uuid.UUID, entry domain.ScheduledActivity) (domain.ScheduledActivity, error)
	Delete(ctx context.Context, userID, tripID, entryID uuid.UUID) error
}

// ProfileServicer is implemented by service.ProfileService.
type ProfileServicer interface {
	Get(ctx context.Context, userID uuid.UUID) (domain.User, error)
	Update(ctx context.Context, user domain.User) (domain.User, error)
	DeleteAccount(ctx context.Context, userID uuid.UUID) error
}

// Server holds every handler dependency. Methods are in domain-specific
// files but all operate on this struct.
type Server struct {
	auth       AuthServicer
	trips      TripServicer
	stops      StopServicer
	activities ActivityServicer
	itinerary  ItineraryPlanner
	search     SearchServicer
	schedule   ScheduleServicer
	profile    ProfileServicer
}

// NewServer constructs the Server with all its dependencies.
func NewServer(
	auth AuthServicer,
	trips TripServicer,
	stops StopServicer,
	activities ActivityServicer,
	itinerary ItineraryPlanner,
	search SearchServicer,
	schedule ScheduleServicer,
	profile ProfileServicer,
) *Server {
	return &Server{
		auth:       auth,
		trips:      trips,
		stops:      stops,
		activities: activities,
		itinerary:  itinerary,
		search:     search,
		schedule:   schedule,
		profile:    profile,
	}
}

// Routes mounts every endpoint under the versioned API prefix.
// requireAuth is the bearer-token middleware; routes outside it are public.
func (s *Server) Routes(requireAuth func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()

	r.Get("/healthz", s.GetHealth)
	r.Get("/openapi.yaml", s.GetOpenAPISpec)
	r.Get("/docs", s.GetDocs)

	r.Route("/api/v1", func(r chi.Router) {
		// Public surface.
		r.Post("/auth/signup", s.SignUp)
		r.Post("/auth/login", s.Login)
		r.Post("/auth/refresh", s.RefreshToken)
		r.Get("/trips/shared/{token}", s.GetSharedTrip)
		r.Get("/search/cities", s.SearchCities)
		r.Get("/search/activities", s.SearchActivities)

		// Everything else requires a valid bearer token.
		r.Group(func(r chi.Router) {
			r.Use(requireAuth)

			r.Post("/auth/logout", s.Logout)

			r.Route("/trips", func(r chi.Router) {
				r.Post("/", s.CreateTrip)
				r.Get("/", s.ListTrips)
				r.Get("/{tripID}", s.GetTrip)
				r.Put("/{tripID}", s.UpdateTrip)
				r.Delete("/{tripID}", s.DeleteTrip)
				r.Post("/{tripID}/share", s.ShareTrip)
				r.Delete("/{tripID}/share", s.UnshareTrip)
			})

			r.Route("/profile", func(r chi.Router) {
				r.Get("/me", s.GetProfile)
				r.Put("/me", s.UpdateProfile)
				r.Delete("/me", s.DeleteProfile)
			})

			r.Route("/itinerary", func(r chi.Router) {
				r.Post("/trips/{tripID}/stops", s.CreateStop)
				r.Get("/trips/{tripID}/stops", s.ListStops)
				r.Put("/stops/{stopID}", s.UpdateStop)
				r.Delete("/stops/{stopID}", s.DeleteStop)
				r.Post("/stops/{stopID}/activities", s.CreateActivity)
				r.Get("/stops/{stopID}/activities", s.ListActivities)
				r.Put("/activities/{activityID}", s.UpdateActivity)
				r.Delete("/activities/{activityID}", s.DeleteActivity)
				r.Post("/trips/{tripID}/auto-plan", s.AutoPlan)
			})

			r.Route("/schedule/activities", func(r chi.Router) {
				r.Post("/", s.CreateScheduledActivity)
				r.Get("/", s.ListScheduledActivities)
				r.Put("/{entryID}", s.UpdateScheduledActivity)
				r.Delete("/{entryID}", s.DeleteScheduledActivity)
			})
		})
	})

	return r
}

// GetHealth handles GET /healthz.
// It returns HTTP 200 with {"status":"ok"} when the server is running.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
