// Package physics 纵向动力学试驾仿真
//
// 仿真按固定步长前向欧拉积分，状态 {v, s, e_Wh} 只存在于一次调用内，
// 相同输入重复调用得到相同的遥测序列。
package physics

import (
	"math"

	"github.com/langchou/autogenesis/internal/models"
)

const (
	// 功率限制在极低速时不生效，避免 P/v 发散
	powerCapMinSpeed = 1e-3

	mixedHoldThreshold = 0.9
	cruiseGain         = 0.4
	mixedHoldGain      = 0.6
)

// SimulateDrive 推导参数后运行一次试驾仿真
func SimulateDrive(cfg models.VehicleConfig, p models.DriveParams) []models.TelemetrySample {
	return Simulate(DeriveParameters(cfg), p)
}

// Simulate 对给定物理参数运行仿真，返回长度为 floor(seconds/dt) 的遥测序列
// dt 或 seconds 非正时返回空序列；地形未知时按 DefaultTerrain 处理
func Simulate(dp models.DerivedParameters, p models.DriveParams) []models.TelemetrySample {
	n := p.Steps()
	telemetry := make([]models.TelemetrySample, 0, n)
	if n == 0 {
		return telemetry
	}

	terr, _ := LookupTerrain(p.Terrain)
	mass := dp.MassKg
	grade := p.GradePct / 100
	vTarget := p.TargetSpeedKmh / 3.6
	powerCapW := dp.PowerKW * 1000
	regenCapW := dp.RegenPowerKW * 1000
	dt := p.DT

	// 坡度与路面不随时间变化
	fRoll := terr.CRR * mass * Gravity * math.Cos(math.Atan(grade))
	fGrade := mass * Gravity * grade
	fTrac := terr.Mu * mass * Gravity

	var v, s, eWh float64
	for i := 0; i < n; i++ {
		vAir := math.Max(0, v+p.WindMps)
		fDrag := dp.FrontalDragTerm * vAir * vAir

		fWheel := CommandedForce(p.Mode, v, vTarget, mass, dp.MaxWheelForceN, fTrac)

		fNet := fWheel - (fRoll + fGrade + fDrag)
		if fNet*v > powerCapW && v > powerCapMinSpeed {
			fNet = powerCapW / v
		}

		if fWheel < 0 && regenCapW > 0 {
			pRegen := math.Min(math.Abs(fWheel*v), regenCapW)
			eWh -= pRegen * dt / 3600
		}

		a := fNet / mass
		v = math.Max(0, v+a*dt)
		s += v * dt

		// 正向耗能与上面的回收各自独立计入
		eWh += math.Max(0, fWheel*v) * dt / 3600

		telemetry = append(telemetry, models.TelemetrySample{
			T:       math.Round(float64(i+1)*dt*1000) / 1000,
			VMps:    v,
			VKmh:    v * 3.6,
			AMps2:   a,
			SM:      s,
			FWheelN: fWheel,
			FDragN:  fDrag,
			FRollN:  fRoll,
			FGradeN: fGrade,
			EWh:     eWh,
		})
	}

	return telemetry
}

// CommandedForce 驾驶策略：每步根据 (模式, 当前速度, 目标速度) 计算轮边指令力
//   - accel，或 mixed 且 v < 0.9*target：全油门 min(fMax, fTrac)
//   - cruise：比例控制，增益 0.4
//   - mixed 且 v >= 0.9*target（及未知模式）：比例控制，增益 0.6
func CommandedForce(mode string, v, vTarget, mass, fMax, fTrac float64) float64 {
	switch {
	case mode == models.ModeAccel || (mode == models.ModeMixed && v < mixedHoldThreshold*vTarget):
		return math.Min(fMax, fTrac)
	case mode == models.ModeCruise:
		return clamp(cruiseGain*mass*(vTarget-v), -fTrac, fTrac)
	default:
		return clamp(mixedHoldGain*mass*(vTarget-v), -fTrac, fTrac)
	}
}

func clamp(x, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, x))
}
