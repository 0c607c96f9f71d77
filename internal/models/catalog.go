package models

// PartSpec 零件规格，除公共字段外按零件类型填充
type PartSpec struct {
	Application      string   `json:"application"`
	Powertrain       string   `json:"powertrain"`
	Note             *string  `json:"note"`
	OutputHintKW     *int     `json:"output_hint_kw,omitempty"`
	LiftM            *float64 `json:"lift_m,omitempty"`
	WheelScale       *float64 `json:"wheel_scale,omitempty"`
	ArmorIndex       *float64 `json:"armor_index_0_1,omitempty"`
	Enabled          *bool    `json:"enabled,omitempty"`
	TactileDeterrent *bool    `json:"tactile_deterrent,omitempty"`
}

// Part 蓝图零件
type Part struct {
	ID     int      `json:"id"`
	Name   string   `json:"name"`
	Status string   `json:"status"`
	Spec   PartSpec `json:"spec"`
}

// BlueprintSummary 整车蓝图摘要
type BlueprintSummary struct {
	Power      string  `json:"power"`
	ArmorIndex float64 `json:"armor_index_0_1"`
	LiftM      float64 `json:"lift_m"`
	WheelScale float64 `json:"wheel_scale"`
}

// VehicleBlueprint 整车蓝图
type VehicleBlueprint struct {
	Title   string           `json:"title"`
	Summary BlueprintSummary `json:"summary"`
	Parts   []Part           `json:"parts"`
}

// CostBreakdown 成本明细（美元，整数）
type CostBreakdown struct {
	Base       int64 `json:"base"`
	Powertrain int64 `json:"powertrain"`
	Labor      int64 `json:"labor"`
	Features   int64 `json:"features"`
	Complexity int64 `json:"complexity"`
	Overhead   int64 `json:"overhead"`
}

// CostEstimate 成本估算
type CostEstimate struct {
	Factory   int64         `json:"factory"`
	Retail    int64         `json:"retail"`
	Fleet     int64         `json:"fleet"`
	Breakdown CostBreakdown `json:"breakdown"`
}

// MarketingPack 营销文案
type MarketingPack struct {
	ProductName string   `json:"productName"`
	Tagline     string   `json:"tagline"`
	Blurb       string   `json:"blurb"`
	Bullets     []string `json:"bullets"`
	Socials     []string `json:"socials"`
}
