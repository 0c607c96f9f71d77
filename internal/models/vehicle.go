package models

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// 车型
const (
	TypeCivilian = "civilian"
	TypeMilitary = "military"
	TypeHypercar = "hypercar"
)

// 动力类型
const (
	PowerGas      = "gas"
	PowerDiesel   = "diesel"
	PowerElectric = "electric"
	PowerSolar    = "solar"
)

// ErrInvalidConfig 车辆配置校验失败
var ErrInvalidConfig = errors.New("invalid vehicle config")

// VehicleConfig 车辆配置（所有下游模块共用的唯一配置结构）
// 功能开关只表示“是否装配”，缺省为 false
type VehicleConfig struct {
	Type       string  `json:"type" validate:"oneof=civilian military hypercar"`
	Power      string  `json:"power" validate:"oneof=gas diesel electric solar"`
	SixBySix   bool    `json:"sixBySix"`
	Armor      float64 `json:"armor" validate:"gte=0,lte=1"`       // 0..1 归一化装甲等级
	WheelScale float64 `json:"wheelScale" validate:"gte=0.8,lte=1.6"` // 轮径缩放
	Lift       float64 `json:"lift" validate:"gte=0,lte=0.5"`      // 抬升高度 (m)

	TacticalLights bool `json:"tacticalLights"`
	Sleeper        bool `json:"sleeper"`
	Snorkels       bool `json:"snorkels"`
	ResealTires    bool `json:"resealTires"`
	PepperSpray    bool `json:"pepperSpray"`
	TazerHandles   bool `json:"tazerHandles"`
}

// NewVehicleConfig 返回带默认值的配置，JSON 解码前先用它填充
func NewVehicleConfig() VehicleConfig {
	return VehicleConfig{
		Type:       TypeCivilian,
		Power:      PowerGas,
		WheelScale: 1.0,
	}
}

// DriveLayout 返回 "6x6" 或 "4x4"
func (c VehicleConfig) DriveLayout() string {
	if c.SixBySix {
		return "6x6"
	}
	return "4x4"
}

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func configValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New()
		// 错误信息里使用 JSON 字段名
		validate.RegisterTagNameFunc(func(f reflect.StructField) string {
			name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	})
	return validate
}

// Validate 校验取值范围和枚举，在进入仿真核心之前调用
func (c VehicleConfig) Validate() error {
	err := configValidator().Struct(c)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s must satisfy %s=%s (got %v)", fe.Field(), fe.Tag(), fe.Param(), fe.Value()))
	}
	return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(msgs, "; "))
}
