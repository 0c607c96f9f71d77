package handlers

import (
	"errors"
	"io"
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/langchou/autogenesis/internal/models"
)

// RunTestDrive 运行试驾仿真
// POST /api/testdrive
// 请求体可以是 {"config": {...}, "seconds": ...}，也可以把配置和仿真参数平铺
func (h *Handler) RunTestDrive(c *gin.Context) {
	var req models.TestDriveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		if !errors.Is(err, io.EOF) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		req = models.TestDriveRequest{
			Config: models.NewVehicleConfig(),
			Params: models.DefaultDriveParams(),
		}
	}

	drive, err := h.testDriveService.Run(c.Request.Context(), req)
	if err != nil {
		status := statusFor(err)
		if status == http.StatusInternalServerError {
			h.logger.Error("Failed to run test drive", zap.Error(err))
			c.JSON(status, gin.H{"error": "Failed to run test drive"})
			return
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": drive})
}

// ListTestDrives 获取试驾列表
// GET /api/testdrives?page=1&per_page=20
func (h *Handler) ListTestDrives(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "20"))
	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > 100 {
		perPage = 20
	}
	// (page-1)*perPage 不能溢出
	if page-1 > math.MaxInt/perPage {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid page"})
		return
	}

	drives, total, err := h.testDriveService.List(c.Request.Context(), page, perPage)
	if err != nil {
		h.logger.Error("Failed to list test drives", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list test drives"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": drives,
		"pagination": gin.H{
			"page":     page,
			"per_page": perPage,
			"total":    total,
		},
	})
}

// GetTestDrive 获取试驾详情（含完整遥测）
// GET /api/testdrives/:id
func (h *Handler) GetTestDrive(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid test drive ID"})
		return
	}

	drive, err := h.testDriveService.Get(c.Request.Context(), id)
	if err != nil {
		if statusFor(err) == http.StatusNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Test drive not found"})
			return
		}
		h.logger.Error("Failed to get test drive", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get test drive"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": drive})
}
