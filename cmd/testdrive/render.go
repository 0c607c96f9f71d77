package main

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/langchou/autogenesis/internal/models"
	"github.com/langchou/autogenesis/internal/physics"
	"github.com/langchou/autogenesis/internal/service"
)

// renderStats 输出性能统计
func renderStats(w io.Writer, cfg models.VehicleConfig, derived models.DerivedParameters, stats models.PerformanceStats) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleRounded)
	t.SetTitle("%s %s %s", cfg.Type, cfg.Power, cfg.DriveLayout())
	t.AppendHeader(table.Row{"Metric", "Value"})

	t.AppendRows([]table.Row{
		{"Mass", fmt.Sprintf("%.0f kg", derived.MassKg)},
		{"Power", fmt.Sprintf("%.0f kW", derived.PowerKW)},
	})
	t.AppendSeparator()

	zeroToSixty := "n/a"
	if stats.ZeroToSixtyS != nil {
		zeroToSixty = fmt.Sprintf("%.2f s", *stats.ZeroToSixtyS)
	}
	t.AppendRows([]table.Row{
		{"0-60 mph", zeroToSixty},
		{"Top speed", fmt.Sprintf("%.1f km/h", stats.TopSpeedKmh)},
		{"Distance", fmt.Sprintf("%.1f m", stats.DistanceM)},
		{"Braking 60-0", fmt.Sprintf("%.1f m", stats.BrakingDistanceM)},
	})

	switch {
	case stats.Efficiency.WhPerKm != nil:
		t.AppendRow(table.Row{"Efficiency", fmt.Sprintf("%.1f Wh/km", *stats.Efficiency.WhPerKm)})
	case stats.Efficiency.LPer100KmEq != nil:
		t.AppendRow(table.Row{"Efficiency", fmt.Sprintf("%.2f L/100km eq", *stats.Efficiency.LPer100KmEq)})
	}

	t.SetColumnConfigs([]table.ColumnConfig{{Number: 2, Align: text.AlignRight}})
	t.Render()
}

// renderTrace 按步长输出遥测
func renderTrace(w io.Writer, trace []models.TelemetrySample, every int) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleRounded)
	t.AppendHeader(table.Row{"t (s)", "v (km/h)", "a (m/s²)", "s (m)", "F wheel (N)", "F drag (N)", "E (Wh)"})

	for _, s := range service.DigestTelemetry(trace, every) {
		t.AppendRow(table.Row{
			fmt.Sprintf("%.2f", s.T),
			fmt.Sprintf("%.1f", s.VKmh),
			fmt.Sprintf("%.2f", s.AMps2),
			fmt.Sprintf("%.1f", s.SM),
			fmt.Sprintf("%.0f", s.FWheelN),
			fmt.Sprintf("%.0f", s.FDragN),
			fmt.Sprintf("%.2f", s.EWh),
		})
	}
	t.AppendFooter(table.Row{"", "", "", "", "", "samples", len(trace)})
	t.Render()
}

// renderTerrains 输出地形表
func renderTerrains(w io.Writer) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleRounded)
	t.AppendHeader(table.Row{"Terrain", "μ", "C_rr", ""})

	for _, name := range physics.TerrainNames() {
		terrain, _ := physics.LookupTerrain(name)
		marker := ""
		if name == physics.DefaultTerrain {
			marker = "default"
		}
		t.AppendRow(table.Row{name, terrain.Mu, terrain.CRR, marker})
	}
	t.Render()
}
