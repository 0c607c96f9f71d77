package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrNotFound 记录不存在
var ErrNotFound = errors.New("not found")

// DB 数据库连接池封装
type DB struct {
	Pool *pgxpool.Pool
}

// New 创建数据库连接
func New(ctx context.Context, databaseURL string) (*DB, error) {
	config, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse database url: %w", err)
	}

	// 连接池配置
	config.MaxConns = 10
	config.MinConns = 2

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}

	// 测试连接
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return &DB{Pool: pool}, nil
}

// Close 关闭连接池
func (db *DB) Close() {
	db.Pool.Close()
}

// Migrate 执行数据库迁移
func (db *DB) Migrate(ctx context.Context) error {
	migrations := []string{
		migrationCreateTestDrives,
		migrationAddElapsedToTestDrives,
	}

	for _, m := range migrations {
		if _, err := db.Pool.Exec(ctx, m); err != nil {
			return fmt.Errorf("execute migration: %w", err)
		}
	}

	return nil
}

// 数据库迁移 SQL
const migrationCreateTestDrives = `
CREATE TABLE IF NOT EXISTS test_drives (
    id UUID PRIMARY KEY,
    created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW(),
    vehicle_type VARCHAR(20) NOT NULL,
    power VARCHAR(20) NOT NULL,
    terrain VARCHAR(50) NOT NULL,
    mode VARCHAR(20) NOT NULL,
    sample_count INT NOT NULL DEFAULT 0,
    distance_m DOUBLE PRECISION DEFAULT 0,
    top_speed_kmh DOUBLE PRECISION DEFAULT 0,
    zero_to_sixty_s DOUBLE PRECISION,
    config JSONB NOT NULL,
    params JSONB NOT NULL,
    derived JSONB NOT NULL,
    stats JSONB NOT NULL,
    telemetry JSONB NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_test_drives_created_at ON test_drives(created_at);
CREATE INDEX IF NOT EXISTS idx_test_drives_vehicle_type ON test_drives(vehicle_type);
`

// 仿真耗时，便于评估步数上限是否合理
const migrationAddElapsedToTestDrives = `
ALTER TABLE test_drives ADD COLUMN IF NOT EXISTS elapsed_ms DOUBLE PRECISION DEFAULT 0;
`
