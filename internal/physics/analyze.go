package physics

import (
	"math"

	"github.com/samber/lo"

	"github.com/langchou/autogenesis/internal/models"
)

const (
	// SixtyMphMps 60 mph 对应的 m/s
	SixtyMphMps = 60 * 0.44704

	tacticalBrakeMu = 0.85
	brakeFromKmh    = 100.0

	dieselKWhPerLiter = 8.9
	gasKWhPerLiter    = 8.6

	minDistanceKm = 0.001
)

// Analyze 统计遥测序列：0-60 mph 时间、100-0 km/h 制动距离、能效、里程和最高速度
// 空序列返回全零结果（0-60 为 null）
func Analyze(cfg models.VehicleConfig, telemetry []models.TelemetrySample) models.PerformanceStats {
	stats := models.PerformanceStats{
		Efficiency: efficiency(cfg.Power, 0, 0),
	}
	if len(telemetry) == 0 {
		return stats
	}

	if first, _, ok := lo.FindIndexOf(telemetry, func(p models.TelemetrySample) bool {
		return p.VMps >= SixtyMphMps
	}); ok {
		t := first.T
		stats.ZeroToSixtyS = &t
	}

	stats.BrakingDistanceM = BrakingDistance(cfg)

	last := telemetry[len(telemetry)-1]
	stats.Efficiency = efficiency(cfg.Power, last.EWh, last.SM)
	stats.DistanceM = last.SM
	stats.TopSpeedKmh = lo.MaxBy(telemetry, func(a, b models.TelemetrySample) bool {
		return a.VKmh > b.VKmh
	}).VKmh

	return stats
}

// BrakingDistance 100-0 km/h 制动距离估算 (m)，保留 1 位小数
// 与仿真所用地形无关：装战术灯时 mu 取 0.85，否则取 urban 路面
func BrakingDistance(cfg models.VehicleConfig) float64 {
	mu := terrains[DefaultTerrain].Mu
	if cfg.TacticalLights {
		mu = tacticalBrakeMu
	}
	v0 := brakeFromKmh / 3.6
	return roundTo(v0*v0/(2*mu*Gravity), 1)
}

func efficiency(power string, eWh, sM float64) models.Efficiency {
	km := math.Max(minDistanceKm, sM/1000)

	if power == models.PowerElectric {
		whPerKm := roundTo(eWh/km, 1)
		return models.Efficiency{WhPerKm: &whPerKm}
	}

	kwhPerLiter := gasKWhPerLiter
	if power == models.PowerDiesel {
		kwhPerLiter = dieselKWhPerLiter
	}
	liters := eWh / 1000 / kwhPerLiter
	lPer100 := roundTo(liters/km*100, 2)
	return models.Efficiency{LPer100KmEq: &lPer100}
}

func roundTo(x float64, places int) float64 {
	scale := math.Pow(10, float64(places))
	return math.Round(x*scale) / scale
}
