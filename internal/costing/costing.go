package costing

import (
	"github.com/shopspring/decimal"

	"github.com/langchou/autogenesis/internal/models"
)

var (
	laborHours   = decimal.NewFromInt(120)
	laborRate    = decimal.NewFromInt(65)
	overheadRate = decimal.RequireFromString("0.12")
	retailMarkup = decimal.RequireFromString("1.65")
	fleetMarkup  = decimal.RequireFromString("1.30")
)

// featurePrice 可选功能的加价，装甲按等级线性计价
type featurePrice struct {
	name  string
	price func(cfg models.VehicleConfig) decimal.Decimal
}

func flat(amount int64, on func(cfg models.VehicleConfig) bool) func(cfg models.VehicleConfig) decimal.Decimal {
	return func(cfg models.VehicleConfig) decimal.Decimal {
		if on(cfg) {
			return decimal.NewFromInt(amount)
		}
		return decimal.Zero
	}
}

var featurePrices = []featurePrice{
	{"armor", func(cfg models.VehicleConfig) decimal.Decimal {
		return decimal.NewFromFloat(cfg.Armor).Mul(decimal.NewFromInt(3500))
	}},
	{"sixBySix", flat(9500, func(cfg models.VehicleConfig) bool { return cfg.SixBySix })},
	{"resealTires", flat(1800, func(cfg models.VehicleConfig) bool { return cfg.ResealTires })},
	{"pepperSpray", flat(1200, func(cfg models.VehicleConfig) bool { return cfg.PepperSpray })},
	{"tazerHandles", flat(900, func(cfg models.VehicleConfig) bool { return cfg.TazerHandles })},
	{"sleeper", flat(6500, func(cfg models.VehicleConfig) bool { return cfg.Sleeper })},
	{"snorkels", flat(1100, func(cfg models.VehicleConfig) bool { return cfg.Snorkels })},
	{"tacticalLights", flat(750, func(cfg models.VehicleConfig) bool { return cfg.TacticalLights })},
}

func basePrice(vehicleType string) int64 {
	switch vehicleType {
	case models.TypeHypercar:
		return 48000
	case models.TypeMilitary:
		return 42000
	default:
		return 28000
	}
}

func powertrainPrice(power string) int64 {
	switch power {
	case models.PowerElectric:
		return 16000
	case models.PowerDiesel:
		return 9000
	case models.PowerSolar:
		return 22000
	default:
		return 8000
	}
}

// Estimate 估算出厂价、零售价和车队价，取整使用银行家舍入
func Estimate(cfg models.VehicleConfig) models.CostEstimate {
	base := decimal.NewFromInt(basePrice(cfg.Type))
	powertrain := decimal.NewFromInt(powertrainPrice(cfg.Power))
	labor := laborHours.Mul(laborRate)

	features := decimal.Zero
	for _, f := range featurePrices {
		features = features.Add(f.price(cfg))
	}

	complexity := decimal.NewFromFloat(cfg.WheelScale).Sub(decimal.NewFromInt(1)).Mul(decimal.NewFromInt(3000)).
		Add(decimal.NewFromFloat(cfg.Lift).Mul(decimal.NewFromInt(2000)))

	subtotal := base.Add(powertrain).Add(labor).Add(features).Add(complexity)
	overhead := subtotal.Mul(overheadRate)
	factory := subtotal.Add(overhead).RoundBank(0)

	return models.CostEstimate{
		Factory: factory.IntPart(),
		Retail:  factory.Mul(retailMarkup).RoundBank(0).IntPart(),
		Fleet:   factory.Mul(fleetMarkup).RoundBank(0).IntPart(),
		Breakdown: models.CostBreakdown{
			Base:       base.IntPart(),
			Powertrain: powertrain.IntPart(),
			Labor:      labor.IntPart(),
			Features:   features.RoundBank(0).IntPart(),
			Complexity: complexity.RoundBank(0).IntPart(),
			Overhead:   overhead.RoundBank(0).IntPart(),
		},
	}
}
