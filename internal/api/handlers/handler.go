package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/langchou/autogenesis/internal/models"
	"github.com/langchou/autogenesis/internal/repository"
	"github.com/langchou/autogenesis/internal/service"
	"github.com/langchou/autogenesis/pkg/ws"
)

// Handler HTTP 处理器
type Handler struct {
	logger           *zap.Logger
	testDriveService *service.TestDriveService
	wsHub            *ws.Hub
	upgrader         websocket.Upgrader
}

// NewHandler 创建处理器
func NewHandler(
	logger *zap.Logger,
	testDriveService *service.TestDriveService,
	wsHub *ws.Hub,
) *Handler {
	return &Handler{
		logger:           logger,
		testDriveService: testDriveService,
		wsHub:            wsHub,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true // 跨域由 CORS 中间件控制
			},
		},
	}
}

// RegisterRoutes 注册路由
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	// API 路由
	api := r.Group("/api")
	{
		// 地形表
		api.GET("/terrains", h.ListTerrains)

		// 设计、报价、营销
		api.POST("/blueprints", h.GenerateBlueprint)
		api.POST("/cost-estimation", h.EstimateCost)
		api.POST("/marketing", h.GenerateMarketing)

		// 试驾
		api.POST("/testdrive", h.RunTestDrive)
		api.GET("/testdrives", h.ListTestDrives)
		api.GET("/testdrives/:id", h.GetTestDrive)
	}

	// WebSocket
	r.GET("/ws", h.HandleWebSocket)

	// 健康检查
	r.GET("/health", h.HealthCheck)
}

// HandleWebSocket WebSocket 处理
func (h *Handler) HandleWebSocket(c *gin.Context) {
	if h.wsHub == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Live stream disabled"})
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Error("Failed to upgrade websocket", zap.Error(err))
		return
	}

	client := ws.NewClient(h.wsHub, conn)
	client.Register()

	// 启动读写协程
	go client.ReadPump()
	go client.WritePump()
}

// HealthCheck 健康检查
func (h *Handler) HealthCheck(c *gin.Context) {
	clients := 0
	if h.wsHub != nil {
		clients = h.wsHub.ClientCount()
	}
	c.JSON(http.StatusOK, gin.H{
		"status":      "ok",
		"ws_clients":  clients,
		"active_runs": len(h.testDriveService.ActiveRuns()),
	})
}

// bindConfig 解码车辆配置，空请求体使用默认配置
func bindConfig(c *gin.Context) (models.VehicleConfig, error) {
	cfg := models.NewVehicleConfig()
	if err := c.ShouldBindJSON(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// statusFor 错误对应的 HTTP 状态码
func statusFor(err error) int {
	switch {
	case errors.Is(err, models.ErrInvalidConfig),
		errors.Is(err, models.ErrInvalidDriveParams),
		errors.Is(err, models.ErrTooManySteps):
		return http.StatusBadRequest
	case errors.Is(err, repository.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
