package models

// DerivedParameters 由车辆配置推导出的物理参数
type DerivedParameters struct {
	MassKg          float64 `json:"mass_kg"`
	PowerKW         float64 `json:"power_kw"`
	FrontalDragTerm float64 `json:"frontal_drag_term"` // 0.5 * rho * Cd * A
	MaxWheelForceN  float64 `json:"max_wheel_force_n"`
	RegenPowerKW    float64 `json:"regen_power_kw"`
}

// TelemetrySample 单个仿真步的遥测数据
type TelemetrySample struct {
	T       float64 `json:"t"`
	VMps    float64 `json:"v_mps"`
	VKmh    float64 `json:"v_kmh"`
	AMps2   float64 `json:"a_mps2"`
	SM      float64 `json:"s_m"`
	FWheelN float64 `json:"F_wheel_N"`
	FDragN  float64 `json:"F_drag_N"`
	FRollN  float64 `json:"F_roll_N"`
	FGradeN float64 `json:"F_grade_N"`
	EWh     float64 `json:"e_Wh"` // 累计能耗，回收为负
}

// Efficiency 能效，电动车用 Wh/km，其它动力折算为 L/100km
type Efficiency struct {
	WhPerKm     *float64 `json:"wh_per_km,omitempty"`
	LPer100KmEq *float64 `json:"l_per_100km_eq,omitempty"`
}

// PerformanceStats 基于遥测序列的统计结果
type PerformanceStats struct {
	ZeroToSixtyS     *float64   `json:"zero_to_sixty_s"` // 未达到 60 mph 时为 null
	BrakingDistanceM float64    `json:"braking_distance_m"`
	Efficiency       Efficiency `json:"efficiency"`
	DistanceM        float64    `json:"distance_m"`
	TopSpeedKmh      float64    `json:"top_speed_kmh"`
}
