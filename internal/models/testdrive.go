package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
)

// 驾驶模式
const (
	ModeAccel  = "accel"
	ModeCruise = "cruise"
	ModeMixed  = "mixed"
)

var (
	// ErrInvalidDriveParams 仿真参数不合法
	ErrInvalidDriveParams = errors.New("invalid drive params")
	// ErrTooManySteps 仿真步数超过上限
	ErrTooManySteps = errors.New("too many simulation steps")
)

// DriveParams 单次试驾仿真参数
type DriveParams struct {
	Seconds        float64 `json:"seconds"`
	DT             float64 `json:"dt"`
	Terrain        string  `json:"terrain"`
	GradePct       float64 `json:"grade_pct"`
	WindMps        float64 `json:"wind_mps"` // 正值为逆风
	TargetSpeedKmh float64 `json:"target_speed_kmh"`
	Mode           string  `json:"mode"`
}

// DefaultDriveParams 默认仿真参数
func DefaultDriveParams() DriveParams {
	return DriveParams{
		Seconds:        20,
		DT:             0.05,
		Terrain:        "urban",
		TargetSpeedKmh: 120,
		Mode:           ModeMixed,
	}
}

// Steps 仿真步数 floor(seconds/dt)，非法输入返回 0
func (p DriveParams) Steps() int {
	if p.DT <= 0 || p.Seconds <= 0 {
		return 0
	}
	return int(p.Seconds / p.DT)
}

// Validate 入口校验，maxSteps <= 0 表示不限制步数
func (p DriveParams) Validate(maxSteps int) error {
	for name, v := range map[string]float64{
		"seconds":          p.Seconds,
		"dt":               p.DT,
		"grade_pct":        p.GradePct,
		"wind_mps":         p.WindMps,
		"target_speed_kmh": p.TargetSpeedKmh,
	} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: %s must be finite", ErrInvalidDriveParams, name)
		}
	}
	if p.DT <= 0 {
		return fmt.Errorf("%w: dt must be positive", ErrInvalidDriveParams)
	}
	if p.Seconds <= 0 {
		return fmt.Errorf("%w: seconds must be positive", ErrInvalidDriveParams)
	}
	switch p.Mode {
	case ModeAccel, ModeCruise, ModeMixed:
	default:
		return fmt.Errorf("%w: unknown mode %q", ErrInvalidDriveParams, p.Mode)
	}
	if maxSteps > 0 && p.Seconds/p.DT > float64(maxSteps) {
		return fmt.Errorf("%w: %d requested, limit %d", ErrTooManySteps, p.Steps(), maxSteps)
	}
	return nil
}

// TestDriveRequest 试驾请求
// 配置既可以放在 "config" 字段中，也可以和仿真参数平铺在同一层
type TestDriveRequest struct {
	Config VehicleConfig
	Params DriveParams
}

// UnmarshalJSON 解码时先填充默认值
func (r *TestDriveRequest) UnmarshalJSON(data []byte) error {
	var envelope struct {
		Config *json.RawMessage `json:"config"`
	}
	if err := json.Unmarshal(data, &envelope); err != nil {
		return err
	}

	cfg := NewVehicleConfig()
	src := data
	if envelope.Config != nil {
		src = *envelope.Config
	}
	if err := json.Unmarshal(src, &cfg); err != nil {
		return fmt.Errorf("decode config: %w", err)
	}

	params := DefaultDriveParams()
	if err := json.Unmarshal(data, &params); err != nil {
		return fmt.Errorf("decode drive params: %w", err)
	}

	r.Config = cfg
	r.Params = params
	return nil
}

// TestDrive 一次试驾仿真记录
type TestDrive struct {
	ID          uuid.UUID         `json:"id" db:"id"`
	CreatedAt   time.Time         `json:"created_at" db:"created_at"`
	Config      VehicleConfig     `json:"config" db:"config"`
	Params      DriveParams       `json:"params" db:"params"`
	Derived     DerivedParameters `json:"derived" db:"derived"`
	Stats       PerformanceStats  `json:"stats" db:"stats"`
	SampleCount int               `json:"sample_count" db:"sample_count"`
	ElapsedMs   float64           `json:"elapsed_ms" db:"elapsed_ms"` // 仿真耗时
	Telemetry   []TelemetrySample `json:"telemetry" db:"telemetry"`
}

// TestDriveSummary 列表中使用的精简记录（不含遥测）
type TestDriveSummary struct {
	ID          uuid.UUID        `json:"id" db:"id"`
	CreatedAt   time.Time        `json:"created_at" db:"created_at"`
	VehicleType string           `json:"vehicle_type" db:"vehicle_type"`
	Power       string           `json:"power" db:"power"`
	Terrain     string           `json:"terrain" db:"terrain"`
	Mode        string           `json:"mode" db:"mode"`
	SampleCount int              `json:"sample_count" db:"sample_count"`
	Stats       PerformanceStats `json:"stats" db:"stats"`
}

// Summary 生成精简记录
func (d *TestDrive) Summary() *TestDriveSummary {
	return &TestDriveSummary{
		ID:          d.ID,
		CreatedAt:   d.CreatedAt,
		VehicleType: d.Config.Type,
		Power:       d.Config.Power,
		Terrain:     d.Params.Terrain,
		Mode:        d.Params.Mode,
		SampleCount: d.SampleCount,
		Stats:       d.Stats,
	}
}
