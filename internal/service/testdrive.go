package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"go.uber.org/zap"

	"github.com/langchou/autogenesis/internal/config"
	"github.com/langchou/autogenesis/internal/models"
	"github.com/langchou/autogenesis/internal/physics"
	"github.com/langchou/autogenesis/internal/state"
	"github.com/langchou/autogenesis/pkg/ws"
)

// recentOnConnect WebSocket 连接时推送的最近试驾条数
const recentOnConnect = 10

// TestDriveStore 试驾记录存储
type TestDriveStore interface {
	Create(ctx context.Context, drive *models.TestDrive) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.TestDrive, error)
	ListRecent(ctx context.Context, limit, offset int) ([]*models.TestDriveSummary, error)
	Count(ctx context.Context) (int64, error)
}

// RunStateEvent 试驾任务状态变化
type RunStateEvent struct {
	RunID uuid.UUID `json:"run_id"`
	From  string    `json:"from"`
	To    string    `json:"to"`
}

// TelemetryDigest 抽样后的遥测
type TelemetryDigest struct {
	RunID   uuid.UUID                `json:"run_id"`
	Stride  int                      `json:"stride"`
	Samples []models.TelemetrySample `json:"samples"`
}

// TestDriveService 试驾仿真服务
type TestDriveService struct {
	cfg          *config.Config
	logger       *zap.Logger
	store        TestDriveStore
	stateManager *state.Manager
	wsHub        *ws.Hub // 可为 nil

	mu          sync.RWMutex
	subscribers []chan *models.TestDriveSummary
}

// NewTestDriveService 创建试驾服务
func NewTestDriveService(cfg *config.Config, logger *zap.Logger, store TestDriveStore, wsHub *ws.Hub) *TestDriveService {
	svc := &TestDriveService{
		cfg:    cfg,
		logger: logger,
		store:  store,
		wsHub:  wsHub,
	}

	// 创建状态管理器
	svc.stateManager = state.NewManager(svc.onStateChange)

	return svc
}

// Run 执行一次试驾仿真并保存结果
func (s *TestDriveService) Run(ctx context.Context, req models.TestDriveRequest) (*models.TestDrive, error) {
	if err := req.Config.Validate(); err != nil {
		return nil, err
	}
	if err := req.Params.Validate(s.cfg.MaxSimulationSteps); err != nil {
		return nil, err
	}

	drive := &models.TestDrive{
		ID:        uuid.New(),
		CreatedAt: time.Now().UTC(),
		Config:    req.Config,
		Params:    req.Params,
	}

	machine := s.stateManager.GetOrCreate(drive.ID)
	defer s.stateManager.Release(drive.ID)

	if err := machine.Trigger(state.EventStart); err != nil {
		return nil, fmt.Errorf("start test drive: %w", err)
	}

	if err := ctx.Err(); err != nil {
		s.fail(machine, err)
		return nil, fmt.Errorf("run test drive: %w", err)
	}

	start := time.Now()
	drive.Derived = physics.DeriveParameters(drive.Config)
	drive.Telemetry = physics.Simulate(drive.Derived, drive.Params)
	drive.Stats = physics.Analyze(drive.Config, drive.Telemetry)
	drive.SampleCount = len(drive.Telemetry)
	drive.ElapsedMs = float64(time.Since(start).Microseconds()) / 1000

	s.logger.Debug("Simulation finished",
		zap.String("test_drive_id", drive.ID.String()),
		zap.Int("samples", drive.SampleCount),
		zap.Float64("elapsed_ms", drive.ElapsedMs))

	s.broadcastTelemetry(drive)

	if err := s.store.Create(ctx, drive); err != nil {
		s.fail(machine, err)
		return nil, fmt.Errorf("save test drive: %w", err)
	}

	// 记录已保存，状态切换失败只记日志
	if err := machine.Trigger(state.EventComplete); err != nil {
		s.logger.Error("Failed to mark test drive completed",
			zap.String("test_drive_id", drive.ID.String()),
			zap.String("state", machine.CurrentState()),
			zap.Error(err))
	}

	summary := drive.Summary()
	s.logger.Info("Test drive completed",
		zap.String("test_drive_id", drive.ID.String()),
		zap.String("vehicle_type", summary.VehicleType),
		zap.String("power", summary.Power),
		zap.String("terrain", summary.Terrain),
		zap.String("mode", summary.Mode),
		zap.Float64("top_speed_kmh", drive.Stats.TopSpeedKmh),
		zap.Float64("distance_m", drive.Stats.DistanceM))

	s.notifySubscribers(summary)
	if s.wsHub != nil {
		s.wsHub.BroadcastMessage(ws.MsgTypeTestDriveCompleted, summary)
	}

	return drive, nil
}

// Get 获取试驾记录
func (s *TestDriveService) Get(ctx context.Context, id uuid.UUID) (*models.TestDrive, error) {
	return s.store.GetByID(ctx, id)
}

// List 分页列出试驾摘要，page 从 1 开始
func (s *TestDriveService) List(ctx context.Context, page, perPage int) ([]*models.TestDriveSummary, int64, error) {
	offset := (page - 1) * perPage
	summaries, err := s.store.ListRecent(ctx, perPage, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list test drives: %w", err)
	}

	total, err := s.store.Count(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("count test drives: %w", err)
	}
	return summaries, total, nil
}

// Subscribe 订阅试驾完成事件
func (s *TestDriveService) Subscribe() <-chan *models.TestDriveSummary {
	s.mu.Lock()
	defer s.mu.Unlock()

	ch := make(chan *models.TestDriveSummary, 10)
	s.subscribers = append(s.subscribers, ch)
	return ch
}

// ActiveRuns 获取进行中的试驾任务
func (s *TestDriveService) ActiveRuns() map[uuid.UUID]*state.RunState {
	return s.stateManager.GetAllStates()
}

// InitData WebSocket 初始数据
func (s *TestDriveService) InitData() *ws.InitData {
	recent, err := s.store.ListRecent(context.Background(), recentOnConnect, 0)
	if err != nil {
		s.logger.Error("Failed to load recent test drives", zap.Error(err))
		recent = []*models.TestDriveSummary{}
	}

	return &ws.InitData{
		Recent: recent,
		Active: s.ActiveRuns(),
	}
}

// fail 标记失败
func (s *TestDriveService) fail(machine *state.Machine, cause error) {
	if err := machine.Fail(cause); err != nil {
		s.logger.Warn("Failed to mark test drive failed", zap.Error(err))
	}
	s.logger.Error("Test drive failed",
		zap.String("test_drive_id", machine.GetState().RunID.String()),
		zap.Error(cause))
}

// onStateChange 状态变化回调，在状态机锁内调用
func (s *TestDriveService) onStateChange(runID uuid.UUID, from, to string) {
	s.logger.Debug("Test drive state changed", zap.String("test_drive_id", runID.String()), zap.String("from", from), zap.String("to", to))
	if s.wsHub != nil {
		s.wsHub.BroadcastMessage(ws.MsgTypeRunState, RunStateEvent{RunID: runID, From: from, To: to})
	}
}

// broadcastTelemetry 按步长抽样后推送遥测
func (s *TestDriveService) broadcastTelemetry(drive *models.TestDrive) {
	if s.wsHub == nil {
		return
	}
	digest := DigestTelemetry(drive.Telemetry, s.cfg.TelemetryStride)
	if len(digest) == 0 {
		return
	}
	s.wsHub.BroadcastMessage(ws.MsgTypeTelemetry, TelemetryDigest{
		RunID:   drive.ID,
		Stride:  s.cfg.TelemetryStride,
		Samples: digest,
	})
}

// notifySubscribers 通知订阅者
func (s *TestDriveService) notifySubscribers(summary *models.TestDriveSummary) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, ch := range s.subscribers {
		select {
		case ch <- summary:
		default:
			// 跳过慢消费者
		}
	}
}

// DigestTelemetry 取每第 stride 个采样点，并保留最后一个点
// stride <= 0 时返回 nil
func DigestTelemetry(trace []models.TelemetrySample, stride int) []models.TelemetrySample {
	if stride <= 0 || len(trace) == 0 {
		return nil
	}
	digest := lo.Filter(trace, func(_ models.TelemetrySample, i int) bool {
		return i%stride == 0
	})
	if (len(trace)-1)%stride != 0 {
		digest = append(digest, trace[len(trace)-1])
	}
	return digest
}
