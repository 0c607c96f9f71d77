package costing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/langchou/autogenesis/internal/models"
)

func TestEstimate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *models.VehicleConfig)
		want   models.CostEstimate
	}{
		{
			name:   "default civilian gas",
			mutate: func(c *models.VehicleConfig) {},
			want: models.CostEstimate{
				Factory: 49056,
				Retail:  80942,
				Fleet:   63773,
				Breakdown: models.CostBreakdown{
					Base: 28000, Powertrain: 8000, Labor: 7800, Overhead: 5256,
				},
			},
		},
		{
			name: "fully loaded military diesel",
			mutate: func(c *models.VehicleConfig) {
				c.Type = models.TypeMilitary
				c.Power = models.PowerDiesel
				c.Armor = 1
				c.SixBySix = true
				c.ResealTires = true
				c.PepperSpray = true
				c.TazerHandles = true
				c.Sleeper = true
				c.Snorkels = true
				c.TacticalLights = true
				c.WheelScale = 1.5
				c.Lift = 0.5
			},
			// features 3500+9500+1800+1200+900+6500+1100+750 = 25250
			// complexity 0.5*3000 + 0.5*2000 = 2500
			// subtotal 42000+9000+7800+25250+2500 = 86550, overhead 10386
			want: models.CostEstimate{
				Factory: 96936,
				Retail:  159944,
				Fleet:   126017,
				Breakdown: models.CostBreakdown{
					Base: 42000, Powertrain: 9000, Labor: 7800,
					Features: 25250, Complexity: 2500, Overhead: 10386,
				},
			},
		},
		{
			name: "hypercar solar small wheels",
			mutate: func(c *models.VehicleConfig) {
				c.Type = models.TypeHypercar
				c.Power = models.PowerSolar
				c.WheelScale = 0.8
			},
			// complexity -600, subtotal 48000+22000+7800-600 = 77200, overhead 9264
			want: models.CostEstimate{
				Factory: 86464,
				Retail:  142666,
				Fleet:   112403,
				Breakdown: models.CostBreakdown{
					Base: 48000, Powertrain: 22000, Labor: 7800,
					Complexity: -600, Overhead: 9264,
				},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := models.NewVehicleConfig()
			tt.mutate(&cfg)
			assert.Equal(t, tt.want, Estimate(cfg))
		})
	}
}

func TestEstimate_ElectricPowertrain(t *testing.T) {
	cfg := models.NewVehicleConfig()
	cfg.Power = models.PowerElectric
	got := Estimate(cfg)
	assert.Equal(t, int64(16000), got.Breakdown.Powertrain)
	assert.Greater(t, got.Retail, got.Fleet)
	assert.Greater(t, got.Fleet, got.Factory)
}
