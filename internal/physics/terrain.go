package physics

import "sort"

// DefaultTerrain 未知地形名回退到的地形
const DefaultTerrain = "urban"

// Terrain 路面附着系数与滚动阻力系数
type Terrain struct {
	Mu  float64 `json:"mu"`
	CRR float64 `json:"c_rr"`
}

// terrains 进程内常量表，只通过 LookupTerrain 读取
var terrains = map[string]Terrain{
	"urban":   {Mu: 0.95, CRR: 0.012},
	"highway": {Mu: 0.92, CRR: 0.010},
	"offroad": {Mu: 0.65, CRR: 0.018},
	"desert":  {Mu: 0.55, CRR: 0.028},
	"snow":    {Mu: 0.35, CRR: 0.035},
	"mud":     {Mu: 0.30, CRR: 0.045},
}

// LookupTerrain 查找地形，未知名称返回 DefaultTerrain 对应条目且 ok 为 false
func LookupTerrain(name string) (Terrain, bool) {
	if t, ok := terrains[name]; ok {
		return t, true
	}
	return terrains[DefaultTerrain], false
}

// TerrainNames 按字母序返回全部地形名
func TerrainNames() []string {
	names := make([]string, 0, len(terrains))
	for name := range terrains {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
