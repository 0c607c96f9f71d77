package physics

import "github.com/langchou/autogenesis/internal/models"

const (
	// Gravity 重力加速度 (m/s²)
	Gravity = 9.81
	// AirDensity 海平面空气密度 (kg/m³)
	AirDensity = 1.225

	// referenceSpeedMps 功率曲线固定在 18 m/s 处换算最大轮边力
	referenceSpeedMps = 18.0
	sixBySixTraction  = 1.08
)

// DeriveParameters 由配置推导质量、功率、风阻项、最大轮边力和回收功率
func DeriveParameters(cfg models.VehicleConfig) models.DerivedParameters {
	var massBase float64
	switch cfg.Type {
	case models.TypeHypercar:
		massBase = 1600
	case models.TypeMilitary:
		massBase = 3500
	default:
		massBase = 2400
	}
	mass := massBase + cfg.Armor*800
	if cfg.SixBySix {
		mass += 250
	}

	var powerKW float64
	switch cfg.Power {
	case models.PowerElectric:
		powerKW = 450
	case models.PowerDiesel:
		powerKW = 300
	case models.PowerSolar:
		powerKW = 180
	default:
		powerKW = 260
	}

	dragCd, areaM2 := 0.42, 2.8*(1+0.05*cfg.Lift)
	if cfg.Type == models.TypeHypercar {
		dragCd, areaM2 = 0.28, 2.0
	}

	maxForce := powerKW * 1000 / referenceSpeedMps
	if cfg.SixBySix {
		maxForce *= sixBySixTraction
	}

	var regenKW float64
	if cfg.Power == models.PowerElectric {
		regenKW = 120
	}

	return models.DerivedParameters{
		MassKg:          mass,
		PowerKW:         powerKW,
		FrontalDragTerm: 0.5 * AirDensity * dragCd * areaM2,
		MaxWheelForceN:  maxForce,
		RegenPowerKW:    regenKW,
	}
}
