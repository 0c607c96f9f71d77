package repository

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/langchou/autogenesis/internal/models"
	"github.com/langchou/autogenesis/internal/physics"
)

// 需要 TEST_DATABASE_URL 指向一个可写的 PostgreSQL
func newTestDB(t *testing.T) *DB {
	t.Helper()
	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	ctx := context.Background()
	db, err := New(ctx, url)
	require.NoError(t, err)
	t.Cleanup(db.Close)

	require.NoError(t, db.Migrate(ctx))
	_, err = db.Pool.Exec(ctx, `TRUNCATE test_drives`)
	require.NoError(t, err)
	return db
}

func TestTestDriveRepository_RoundTrip(t *testing.T) {
	db := newTestDB(t)
	repo := NewTestDriveRepository(db)
	ctx := context.Background()

	cfg := models.NewVehicleConfig()
	cfg.Power = models.PowerElectric
	params := models.DefaultDriveParams()
	params.Seconds = 2
	params.Mode = models.ModeAccel

	derived := physics.DeriveParameters(cfg)
	trace := physics.Simulate(derived, params)
	drive := &models.TestDrive{
		ID:          uuid.New(),
		CreatedAt:   time.Now().UTC().Truncate(time.Microsecond),
		Config:      cfg,
		Params:      params,
		Derived:     derived,
		Stats:       physics.Analyze(cfg, trace),
		SampleCount: len(trace),
		ElapsedMs:   1.5,
		Telemetry:   trace,
	}
	require.NoError(t, repo.Create(ctx, drive))

	got, err := repo.GetByID(ctx, drive.ID)
	require.NoError(t, err)
	assert.Equal(t, drive.Config, got.Config)
	assert.Equal(t, drive.Params, got.Params)
	assert.Equal(t, drive.Stats, got.Stats)
	assert.Len(t, got.Telemetry, len(trace))
	assert.True(t, drive.CreatedAt.Equal(got.CreatedAt))

	list, err := repo.ListRecent(ctx, 10, 0)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, models.PowerElectric, list[0].Power)
	assert.Equal(t, models.ModeAccel, list[0].Mode)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)

	_, err = repo.GetByID(ctx, uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
}
