package repo_test

import (
	"context"
	"log"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/require"

	"github.com/aadarshsenapati/globetrotter/backend/internal/domain"
	"github.com/aadarshsenapati/globetrotter/backend/internal/repo"
	"github.com/aadarshsenapati/globetrotter/backend/testutil"
)

// TestMain applies all pending migrations to the test database once per test
// binary, so individual tests never think about schema state.
func TestMain(m *testing.M) {
	if os.Getenv("TEST_DATABASE_URL") == "" {
		// No test DB configured — every test skips itself via testutil.
		os.Exit(m.Run())
	}

	db := testutil.MustOpenSQLDB(os.Getenv("TEST_DATABASE_URL"))
	defer db.Close()

	if err := testutil.MigrateUp(context.Background(), db); err != nil {
		log.Fatalf("TestMain: run migrations: %v", err)
	}

	os.Exit(m.Run())
}

// beginTx opens a transaction against the test database that is rolled back
// when the test finishes, giving free per-test isolation. Repos accept the
// transaction through their db parameter.
func beginTx(t *testing.T) pgx.Tx {
	t.Helper()
	pool := testutil.NewPool(t)

	tx, err := pool.Begin(context.Background())
	require.NoError(t, err, "begin transaction")

	t.Cleanup(func() {
		_ = tx.Rollback(context.Background())
	})

	return tx
}

// seedUser inserts a profile row and returns it. Trips carry a foreign key to
// users, so most fixtures start here.
func seedUser(t *testing.T, tx pgx.Tx) domain.User {
	t.Helper()

	user, err := repo.NewUserRepo(tx).Upsert(context.Background(), domain.User{
		ID:       uuid.New(),
		Email:    uuid.NewString() + "@example.com",
		FullName: "Test Traveler",
	})
	require.NoError(t, err, "seed user")
	return user
}

// seedTrip inserts a trip owned by userID and returns it.
func seedTrip(t *testing.T, tx pgx.Tx, userID uuid.UUID) domain.Trip {
	t.Helper()

	trip, err := repo.NewTripRepo(tx).Create(context.Background(), domain.Trip{
		UserID:    userID,
		Name:      "Japan Spring",
		StartDate: time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 4, 10, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err, "seed trip")
	return trip
}

// seedStop inserts a stop under tripID at the given position and returns it.
func seedStop(t *testing.T, tx pgx.Tx, tripID uuid.UUID, position int) domain.Stop {
	t.Helper()

	stop, err := repo.NewStopRepo(tx).Create(context.Background(), domain.Stop{
		TripID:   tripID,
		Name:     "Stop " + uuid.NewString()[:8],
		Location: "Tokyo",
		Position: position,
	})
	require.NoError(t, err, "seed stop")
	return stop
}
