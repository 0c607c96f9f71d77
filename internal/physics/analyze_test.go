package physics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/langchou/autogenesis/internal/models"
)

func sampleTrace(speeds ...float64) []models.TelemetrySample {
	trace := make([]models.TelemetrySample, 0, len(speeds))
	var s float64
	for i, v := range speeds {
		s += v * 0.5
		trace = append(trace, models.TelemetrySample{
			T:    float64(i+1) * 0.5,
			VMps: v,
			VKmh: v * 3.6,
			SM:   s,
		})
	}
	return trace
}

func TestAnalyze_EmptyTrace(t *testing.T) {
	gas := Analyze(cfgWith(nil), nil)
	assert.Nil(t, gas.ZeroToSixtyS)
	assert.Zero(t, gas.BrakingDistanceM)
	assert.Zero(t, gas.DistanceM)
	assert.Zero(t, gas.TopSpeedKmh)
	assert.Nil(t, gas.Efficiency.WhPerKm)
	require.NotNil(t, gas.Efficiency.LPer100KmEq)
	assert.Zero(t, *gas.Efficiency.LPer100KmEq)

	ev := Analyze(cfgWith(func(c *models.VehicleConfig) { c.Power = models.PowerElectric }), []models.TelemetrySample{})
	assert.Nil(t, ev.Efficiency.LPer100KmEq)
	require.NotNil(t, ev.Efficiency.WhPerKm)
	assert.Zero(t, *ev.Efficiency.WhPerKm)
}

func TestAnalyze_ZeroToSixty(t *testing.T) {
	tests := []struct {
		name   string
		speeds []float64
		want   *float64
	}{
		{"never reached", []float64{5, 10, 26.82, 20}, nil},
		{"reached exactly", []float64{5, 10, 26.8224, 30}, ptr(1.5)},
		{"first qualifying sample wins", []float64{27, 10, 30}, ptr(0.5)},
		{"reached late", []float64{1, 2, 3, 4, 40}, ptr(2.5)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Analyze(cfgWith(nil), sampleTrace(tt.speeds...))
			if tt.want == nil {
				assert.Nil(t, got.ZeroToSixtyS)
				return
			}
			require.NotNil(t, got.ZeroToSixtyS)
			assert.Equal(t, *tt.want, *got.ZeroToSixtyS)
		})
	}
}

func TestAnalyze_TopSpeedAndDistance(t *testing.T) {
	trace := sampleTrace(3, 17.5, 12, 17.4, 0)
	got := Analyze(cfgWith(nil), trace)

	assert.Equal(t, 17.5*3.6, got.TopSpeedKmh)
	assert.Equal(t, trace[len(trace)-1].SM, got.DistanceM)
}

func TestAnalyze_BrakingDistance(t *testing.T) {
	trace := SimulateDrive(cfgWith(nil), paramsWith(func(p *models.DriveParams) { p.Terrain = "snow" }))

	plain := Analyze(cfgWith(nil), trace)
	assert.Equal(t, 41.4, plain.BrakingDistanceM)

	// 战术灯配置固定使用 0.85，与仿真地形无关
	lit := cfgWith(func(c *models.VehicleConfig) { c.TacticalLights = true })
	for _, terrain := range []string{"urban", "snow", "mud", "lava"} {
		trace := SimulateDrive(lit, paramsWith(func(p *models.DriveParams) { p.Terrain = terrain }))
		got := Analyze(lit, trace)
		assert.Equal(t, 46.3, got.BrakingDistanceM, terrain)
	}
}

func TestAnalyze_Efficiency(t *testing.T) {
	tests := []struct {
		name      string
		power     string
		eWh       float64
		sM        float64
		wantWh    *float64
		wantLiter *float64
	}{
		{"electric", models.PowerElectric, 500, 2000, ptr(250.0), nil},
		{"electric rounds to one decimal", models.PowerElectric, 100, 3000, ptr(33.3), nil},
		{"electric zero distance guard", models.PowerElectric, 1, 0, ptr(1000.0), nil},
		{"electric net regen", models.PowerElectric, -20, 1000, ptr(-20.0), nil},
		{"gas", models.PowerGas, 8600, 10000, nil, ptr(10.0)},
		{"solar uses gas factor", models.PowerSolar, 4300, 10000, nil, ptr(5.0)},
		{"diesel", models.PowerDiesel, 8900, 10000, nil, ptr(10.0)},
		{"diesel rounds to two decimals", models.PowerDiesel, 1000, 3000, nil, ptr(3.75)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			trace := []models.TelemetrySample{
				{T: 0.05},
				{T: 0.1, EWh: tt.eWh, SM: tt.sM},
			}
			got := Analyze(cfgWith(func(c *models.VehicleConfig) { c.Power = tt.power }), trace)
			if tt.wantWh != nil {
				require.NotNil(t, got.Efficiency.WhPerKm)
				assert.InDelta(t, *tt.wantWh, *got.Efficiency.WhPerKm, 1e-9)
				assert.Nil(t, got.Efficiency.LPer100KmEq)
			}
			if tt.wantLiter != nil {
				require.NotNil(t, got.Efficiency.LPer100KmEq)
				assert.InDelta(t, *tt.wantLiter, *got.Efficiency.LPer100KmEq, 1e-9)
				assert.Nil(t, got.Efficiency.WhPerKm)
			}
		})
	}
}

func TestAnalyze_SimulatedTrace(t *testing.T) {
	cfg := cfgWith(func(c *models.VehicleConfig) {
		c.Type = models.TypeHypercar
		c.Power = models.PowerElectric
	})
	trace := SimulateDrive(cfg, paramsWith(func(p *models.DriveParams) { p.Mode = models.ModeAccel }))
	got := Analyze(cfg, trace)

	require.NotNil(t, got.ZeroToSixtyS)
	for _, smp := range trace {
		if smp.VMps >= SixtyMphMps {
			assert.Equal(t, smp.T, *got.ZeroToSixtyS)
			break
		}
	}

	var top float64
	for _, smp := range trace {
		if smp.VKmh > top {
			top = smp.VKmh
		}
	}
	assert.Equal(t, top, got.TopSpeedKmh)
	assert.Equal(t, trace[len(trace)-1].SM, got.DistanceM)
	require.NotNil(t, got.Efficiency.WhPerKm)
	assert.Greater(t, *got.Efficiency.WhPerKm, 0.0)
}

func ptr(v float64) *float64 { return &v }
