package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/langchou/autogenesis/internal/models"
)

// TestDriveRepository 试驾记录仓库 (PostgreSQL)
type TestDriveRepository struct {
	db *DB
}

// NewTestDriveRepository 创建试驾记录仓库
func NewTestDriveRepository(db *DB) *TestDriveRepository {
	return &TestDriveRepository{db: db}
}

// Create 保存试驾记录
func (r *TestDriveRepository) Create(ctx context.Context, drive *models.TestDrive) error {
	query := `
		INSERT INTO test_drives (id, created_at, vehicle_type, power, terrain, mode, sample_count, elapsed_ms,
			distance_m, top_speed_kmh, zero_to_sixty_s, config, params, derived, stats, telemetry)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
	`
	_, err := r.db.Pool.Exec(ctx, query,
		drive.ID,
		drive.CreatedAt,
		drive.Config.Type,
		drive.Config.Power,
		drive.Params.Terrain,
		drive.Params.Mode,
		drive.SampleCount,
		drive.ElapsedMs,
		drive.Stats.DistanceM,
		drive.Stats.TopSpeedKmh,
		drive.Stats.ZeroToSixtyS,
		drive.Config,
		drive.Params,
		drive.Derived,
		drive.Stats,
		drive.Telemetry,
	)
	if err != nil {
		return fmt.Errorf("insert test drive: %w", err)
	}
	return nil
}

// GetByID 获取完整试驾记录（含遥测）
func (r *TestDriveRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.TestDrive, error) {
	query := `
		SELECT id, created_at, sample_count, elapsed_ms, config, params, derived, stats, telemetry
		FROM test_drives WHERE id = $1
	`
	drive := &models.TestDrive{}
	err := r.db.Pool.QueryRow(ctx, query, id).Scan(
		&drive.ID,
		&drive.CreatedAt,
		&drive.SampleCount,
		&drive.ElapsedMs,
		&drive.Config,
		&drive.Params,
		&drive.Derived,
		&drive.Stats,
		&drive.Telemetry,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("get test drive %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get test drive by id: %w", err)
	}
	return drive, nil
}

// ListRecent 按时间倒序列出试驾摘要
func (r *TestDriveRepository) ListRecent(ctx context.Context, limit, offset int) ([]*models.TestDriveSummary, error) {
	query := `
		SELECT id, created_at, vehicle_type, power, terrain, mode, sample_count, stats
		FROM test_drives ORDER BY created_at DESC LIMIT $1 OFFSET $2
	`
	rows, err := r.db.Pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list test drives: %w", err)
	}
	defer rows.Close()

	summaries := []*models.TestDriveSummary{}
	for rows.Next() {
		s := &models.TestDriveSummary{}
		err := rows.Scan(
			&s.ID,
			&s.CreatedAt,
			&s.VehicleType,
			&s.Power,
			&s.Terrain,
			&s.Mode,
			&s.SampleCount,
			&s.Stats,
		)
		if err != nil {
			return nil, fmt.Errorf("scan test drive: %w", err)
		}
		summaries = append(summaries, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate test drives: %w", err)
	}

	return summaries, nil
}

// Count 试驾记录总数
func (r *TestDriveRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM test_drives`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count test drives: %w", err)
	}
	return count, nil
}
