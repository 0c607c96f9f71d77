package repository

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/langchou/autogenesis/internal/models"
)

// MemoryTestDriveRepository 内存中的试驾记录，超过容量时淘汰最早的记录
// 未配置 DATABASE_URL 时使用
type MemoryTestDriveRepository struct {
	mu       sync.RWMutex
	capacity int
	drives   map[uuid.UUID]*models.TestDrive
	order    []uuid.UUID // 按写入顺序，最早的在前
}

// NewMemoryTestDriveRepository 创建内存仓库，capacity <= 0 时不限制
func NewMemoryTestDriveRepository(capacity int) *MemoryTestDriveRepository {
	return &MemoryTestDriveRepository{
		capacity: capacity,
		drives:   make(map[uuid.UUID]*models.TestDrive),
	}
}

// Create 保存试驾记录
func (r *MemoryTestDriveRepository) Create(_ context.Context, drive *models.TestDrive) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.drives[drive.ID]; ok {
		return fmt.Errorf("insert test drive %s: duplicate id", drive.ID)
	}

	r.drives[drive.ID] = drive
	r.order = append(r.order, drive.ID)

	for r.capacity > 0 && len(r.order) > r.capacity {
		delete(r.drives, r.order[0])
		r.order = r.order[1:]
	}
	return nil
}

// GetByID 获取试驾记录
func (r *MemoryTestDriveRepository) GetByID(_ context.Context, id uuid.UUID) (*models.TestDrive, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	drive, ok := r.drives[id]
	if !ok {
		return nil, fmt.Errorf("get test drive %s: %w", id, ErrNotFound)
	}
	return drive, nil
}

// ListRecent 按写入时间倒序列出摘要
func (r *MemoryTestDriveRepository) ListRecent(_ context.Context, limit, offset int) ([]*models.TestDriveSummary, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	summaries := []*models.TestDriveSummary{}
	if offset < 0 || offset >= len(r.order) {
		return summaries, nil
	}
	for i := len(r.order) - 1 - offset; i >= 0 && len(summaries) < limit; i-- {
		summaries = append(summaries, r.drives[r.order[i]].Summary())
	}
	return summaries, nil
}

// Count 记录总数
func (r *MemoryTestDriveRepository) Count(_ context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.order)), nil
}
