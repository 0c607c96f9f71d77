package repository

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/langchou/autogenesis/internal/models"
)

func newDrive(vehicleType string) *models.TestDrive {
	cfg := models.NewVehicleConfig()
	cfg.Type = vehicleType
	return &models.TestDrive{
		ID:          uuid.New(),
		CreatedAt:   time.Now(),
		Config:      cfg,
		Params:      models.DefaultDriveParams(),
		SampleCount: 400,
	}
}

func TestMemoryTestDriveRepository_CreateAndGet(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryTestDriveRepository(10)

	drive := newDrive(models.TypeHypercar)
	require.NoError(t, repo.Create(ctx, drive))
	assert.Error(t, repo.Create(ctx, drive))

	got, err := repo.GetByID(ctx, drive.ID)
	require.NoError(t, err)
	assert.Same(t, drive, got)

	_, err = repo.GetByID(ctx, uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryTestDriveRepository_EvictsOldest(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryTestDriveRepository(2)

	first := newDrive(models.TypeCivilian)
	second := newDrive(models.TypeMilitary)
	third := newDrive(models.TypeHypercar)
	for _, d := range []*models.TestDrive{first, second, third} {
		require.NoError(t, repo.Create(ctx, d))
	}

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 2, count)

	_, err = repo.GetByID(ctx, first.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	list, err := repo.ListRecent(ctx, 10, 0)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, third.ID, list[0].ID)
	assert.Equal(t, second.ID, list[1].ID)
	assert.Equal(t, models.TypeHypercar, list[0].VehicleType)
}

func TestMemoryTestDriveRepository_ListRecentPaging(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryTestDriveRepository(0)

	var ids []uuid.UUID
	for i := 0; i < 5; i++ {
		d := newDrive(models.TypeCivilian)
		ids = append(ids, d.ID)
		require.NoError(t, repo.Create(ctx, d))
	}

	tests := []struct {
		name          string
		limit, offset int
		want          []uuid.UUID
	}{
		{"first page", 2, 0, []uuid.UUID{ids[4], ids[3]}},
		{"second page", 2, 2, []uuid.UUID{ids[2], ids[1]}},
		{"tail", 2, 4, []uuid.UUID{ids[0]}},
		{"past end", 2, 5, nil},
		{"zero limit", 0, 0, nil},
		{"negative offset", 2, -3, nil},
		{"overflowed offset", 20, math.MinInt + 4, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			list, err := repo.ListRecent(ctx, tt.limit, tt.offset)
			require.NoError(t, err)
			var got []uuid.UUID
			for _, s := range list {
				got = append(got, s.ID)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}
