package blueprint

import (
	"fmt"
	"math"
	"strings"

	"github.com/samber/lo"

	"github.com/langchou/autogenesis/internal/models"
)

// PartNames 蓝图零件清单，顺序即零件编号
var PartNames = []string{
	"Engine/Power Module",
	"Gearbox/Transmission",
	"Suspension (coil-over)",
	"6x6 Axle Pack",
	"Armor Panels",
	"Door & Security System",
	"Sleeper Kit Pod",
	"Cabin Electronics + 32\" TV",
	"Lighting (UV/IR/White)",
	"Snorkel + Mini Stacks",
	"Roof Dispenser Subsystem",
	"Resealing Tires Kit",
}

const partStatusReady = "Ready"

// GenerateParts 按配置生成零件清单
// 功能开关只记录是否装配，不包含任何结构细节
func GenerateParts(cfg models.VehicleConfig) []models.Part {
	return lo.Map(PartNames, func(name string, i int) models.Part {
		return models.Part{
			ID:     i + 1,
			Name:   name,
			Status: partStatusReady,
			Spec:   partSpec(cfg, name),
		}
	})
}

func partSpec(cfg models.VehicleConfig, name string) models.PartSpec {
	spec := models.PartSpec{
		Application: cfg.Type,
		Powertrain:  cfg.Power,
	}

	switch {
	case strings.HasPrefix(name, "Engine"):
		spec.OutputHintKW = lo.ToPtr(outputHintKW(cfg.Power))
	case strings.HasPrefix(name, "Suspension"):
		spec.LiftM = lo.ToPtr(math.Round(cfg.Lift*1000) / 1000)
		spec.WheelScale = lo.ToPtr(cfg.WheelScale)
	case strings.Contains(name, "Armor"):
		spec.ArmorIndex = lo.ToPtr(cfg.Armor)
	case strings.Contains(name, "6x6"):
		spec.Enabled = lo.ToPtr(cfg.SixBySix)
	case strings.Contains(name, "Roof Dispenser"):
		spec.Enabled = lo.ToPtr(cfg.PepperSpray)
	case strings.Contains(name, "Door & Security"):
		spec.TactileDeterrent = lo.ToPtr(cfg.TazerHandles)
	case strings.Contains(name, "Snorkel"):
		spec.Enabled = lo.ToPtr(cfg.Snorkels)
	}
	return spec
}

// outputHintKW 零件清单里的功率提示，太阳能沿用汽油机的 260 kW
func outputHintKW(power string) int {
	switch power {
	case models.PowerElectric:
		return 450
	case models.PowerDiesel:
		return 300
	default:
		return 260
	}
}

// CompileVehicle 汇总整车蓝图
func CompileVehicle(cfg models.VehicleConfig, parts []models.Part) models.VehicleBlueprint {
	return models.VehicleBlueprint{
		Title: fmt.Sprintf("AutoGenesis %s %s", cfg.Type, cfg.DriveLayout()),
		Summary: models.BlueprintSummary{
			Power:      cfg.Power,
			ArmorIndex: cfg.Armor,
			LiftM:      cfg.Lift,
			WheelScale: cfg.WheelScale,
		},
		Parts: parts,
	}
}
