package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// Server
	ServerPort      string
	Debug           bool
	ShutdownTimeout time.Duration

	// Database，为空时试驾记录只保存在内存中
	DatabaseURL string
	HistorySize int

	// Simulation
	MaxSimulationSteps int // 单次仿真步数上限 (seconds/dt)

	// WebSocket 每隔多少个采样点推送一次遥测
	TelemetryStride int
}

func Load() (*Config, error) {
	// 尝试加载 .env 文件（可选）
	_ = godotenv.Load()

	cfg := &Config{
		ServerPort:         getEnv("PORT", "4000"),
		Debug:              getEnvBool("DEBUG", false),
		ShutdownTimeout:    getEnvDuration("SHUTDOWN_TIMEOUT", 5*time.Second),
		DatabaseURL:        getEnv("DATABASE_URL", ""),
		HistorySize:        getEnvInt("HISTORY_SIZE", 100),
		MaxSimulationSteps: getEnvInt("MAX_SIMULATION_STEPS", 20000),
		TelemetryStride:    getEnvInt("WS_TELEMETRY_STRIDE", 20),
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		b, err := strconv.ParseBool(value)
		if err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		i, err := strconv.Atoi(value)
		if err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		d, err := time.ParseDuration(value)
		if err == nil {
			return d
		}
	}
	return defaultValue
}
