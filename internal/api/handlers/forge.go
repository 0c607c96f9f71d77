package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/langchou/autogenesis/internal/blueprint"
	"github.com/langchou/autogenesis/internal/costing"
	"github.com/langchou/autogenesis/internal/marketing"
	"github.com/langchou/autogenesis/internal/physics"
)

// terrainEntry 地形表条目
type terrainEntry struct {
	Name    string `json:"name"`
	Default bool   `json:"default"`
	physics.Terrain
}

// ListTerrains 获取地形表
// GET /api/terrains
func (h *Handler) ListTerrains(c *gin.Context) {
	names := physics.TerrainNames()
	entries := make([]terrainEntry, 0, len(names))
	for _, name := range names {
		t, _ := physics.LookupTerrain(name)
		entries = append(entries, terrainEntry{
			Name:    name,
			Default: name == physics.DefaultTerrain,
			Terrain: t,
		})
	}

	c.JSON(http.StatusOK, gin.H{"data": entries})
}

// GenerateBlueprint 生成零部件清单和整车蓝图
// POST /api/blueprints
func (h *Handler) GenerateBlueprint(c *gin.Context) {
	cfg, err := bindConfig(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	parts := blueprint.GenerateParts(cfg)
	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"parts":   parts,
			"vehicle": blueprint.CompileVehicle(cfg, parts),
		},
	})
}

// EstimateCost 成本估算
// POST /api/cost-estimation
func (h *Handler) EstimateCost(c *gin.Context) {
	cfg, err := bindConfig(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	estimate := costing.Estimate(cfg)
	h.logger.Debug("Cost estimated",
		zap.String("type", cfg.Type),
		zap.String("power", cfg.Power),
		zap.Int64("retail", estimate.Retail))

	c.JSON(http.StatusOK, gin.H{"data": estimate})
}

// GenerateMarketing 生成营销文案
// POST /api/marketing
func (h *Handler) GenerateMarketing(c *gin.Context) {
	cfg, err := bindConfig(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": marketing.Pack(cfg)})
}
