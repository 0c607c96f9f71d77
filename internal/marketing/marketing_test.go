package marketing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/langchou/autogenesis/internal/models"
)

func TestPack(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(c *models.VehicleConfig)
		wantName    string
		wantTagline string
		wantBullets []string
		wantSocial  string
	}{
		{
			name:        "default civilian",
			mutate:      func(c *models.VehicleConfig) {},
			wantName:    "TrailForge 4x4",
			wantTagline: "From commute to cataclysm.",
			wantBullets: []string{
				"Powertrain: gas",
				"Drive: adaptive 4x4",
				"Armor index: 0.0",
				"Lift: 0.0 m, wheel scale: 1.0",
				"Retail guidance: $80,942",
			},
			wantSocial: "Armor 0 • Sleeper no • gas drivetrain.",
		},
		{
			name: "military 6x6 sleeper",
			mutate: func(c *models.VehicleConfig) {
				c.Type = models.TypeMilitary
				c.Power = models.PowerDiesel
				c.SixBySix = true
				c.Sleeper = true
				c.Armor = 0.456
				c.Lift = 0.25
				c.WheelScale = 1.4
			},
			wantName:    "Outrider 6x6",
			wantTagline: "Built for the mission. Ready for the unknown.",
			wantSocial:  "Armor 5 • Sleeper yes • diesel drivetrain.",
		},
		{
			name: "hypercar",
			mutate: func(c *models.VehicleConfig) {
				c.Type = models.TypeHypercar
				c.Power = models.PowerElectric
			},
			wantName:    "HyperVolt 4x4",
			wantTagline: "Zero to awe in 2.8.",
			wantSocial:  "Armor 0 • Sleeper no • electric drivetrain.",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := models.NewVehicleConfig()
			tt.mutate(&cfg)
			got := Pack(cfg)

			assert.Equal(t, tt.wantName, got.ProductName)
			assert.Equal(t, tt.wantTagline, got.Tagline)
			require.Len(t, got.Bullets, 5)
			require.Len(t, got.Socials, 3)
			if tt.wantBullets != nil {
				assert.Equal(t, tt.wantBullets, got.Bullets)
			}
			assert.Equal(t, tt.wantSocial, got.Socials[2])
			assert.Contains(t, got.Blurb, cfg.Type)
			assert.Contains(t, got.Blurb, cfg.Power)
		})
	}
}

func TestPack_MilitaryBullets(t *testing.T) {
	cfg := models.NewVehicleConfig()
	cfg.Type = models.TypeMilitary
	cfg.SixBySix = true
	cfg.Armor = 0.456
	cfg.Lift = 0.25
	cfg.WheelScale = 1.4

	got := Pack(cfg)
	assert.Equal(t, "Drive: 6x6 triple-lock", got.Bullets[1])
	assert.Equal(t, "Armor index: 0.46", got.Bullets[2])
	assert.Equal(t, "Lift: 0.25 m, wheel scale: 1.4", got.Bullets[3])
	assert.Equal(t, "Meet Outrider: AI-forged performance with 6x6 traction.", got.Socials[0])
	assert.Contains(t, got.Blurb, "six-wheel traction")
}

func TestFormatFloat(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0.0"},
		{1, "1.0"},
		{1.4, "1.4"},
		{0.25, "0.25"},
		{0.46, "0.46"},
		{-2, "-2.0"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, formatFloat(tt.in))
	}
}
