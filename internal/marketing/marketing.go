package marketing

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/langchou/autogenesis/internal/costing"
	"github.com/langchou/autogenesis/internal/models"
)

var printer = message.NewPrinter(language.English)

// Pack 生成产品名、标语、简介、卖点和社媒文案
func Pack(cfg models.VehicleConfig) models.MarketingPack {
	costs := costing.Estimate(cfg)
	name := productName(cfg.Type)

	traction := "four-wheel"
	drive := "adaptive 4x4"
	social := "smart 4x4"
	if cfg.SixBySix {
		traction = "six-wheel"
		drive = "6x6 triple-lock"
		social = "6x6 traction"
	}

	sleeper := "no"
	if cfg.Sleeper {
		sleeper = "yes"
	}

	return models.MarketingPack{
		ProductName: fmt.Sprintf("%s %s", name, cfg.DriveLayout()),
		Tagline:     tagline(cfg.Type),
		Blurb: fmt.Sprintf("Designed by Forge AI: %s blends intelligent packaging with %s power and %s traction. Tuned for %s duties.",
			name, cfg.Power, traction, cfg.Type),
		Bullets: []string{
			"Powertrain: " + cfg.Power,
			"Drive: " + drive,
			"Armor index: " + formatFloat(math.Round(cfg.Armor*100)/100),
			fmt.Sprintf("Lift: %s m, wheel scale: %s", formatFloat(cfg.Lift), formatFloat(cfg.WheelScale)),
			printer.Sprintf("Retail guidance: $%d", costs.Retail),
		},
		Socials: []string{
			fmt.Sprintf("Meet %s: AI-forged performance with %s.", name, social),
			"From blueprint to road test in minutes with Forge AI.",
			fmt.Sprintf("Armor %d • Sleeper %s • %s drivetrain.", int(math.RoundToEven(cfg.Armor*10)), sleeper, cfg.Power),
		},
	}
}

func productName(vehicleType string) string {
	switch vehicleType {
	case models.TypeHypercar:
		return "HyperVolt"
	case models.TypeMilitary:
		return "Outrider"
	default:
		return "TrailForge"
	}
}

func tagline(vehicleType string) string {
	switch vehicleType {
	case models.TypeHypercar:
		return "Zero to awe in 2.8."
	case models.TypeMilitary:
		return "Built for the mission. Ready for the unknown."
	default:
		return "From commute to cataclysm."
	}
}

// formatFloat 最短表示，整数值保留一位小数 (1 -> "1.0")
func formatFloat(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
