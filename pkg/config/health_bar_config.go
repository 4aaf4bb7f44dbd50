package config

import (
	"fmt"
	"image/color"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/decker502/healthbar/pkg/embedded"
	"github.com/decker502/healthbar/pkg/health"
	"gopkg.in/yaml.v3"
)

// DefaultHealthBarConfigPath 嵌入的默认血条配置
const DefaultHealthBarConfigPath = "data/health_bar.yaml"

// HealthBarColors 各档位颜色（#RRGGBB 或 #RRGGBBAA）
type HealthBarColors struct {
	Low        string `yaml:"low"`        // 低血量填充色
	Medium     string `yaml:"medium"`     // 中等血量填充色
	Full       string `yaml:"full"`       // 高血量填充色
	Background string `yaml:"background"` // 血条底色
}

// HealthBarConfig 血条配置文件结构
type HealthBarConfig struct {
	MaxHealth       float64 `yaml:"maxHealth"`       // 初始最大生命值
	LowThreshold    float64 `yaml:"lowThreshold"`    // 低血量阈值（比例，含）
	MediumThreshold float64 `yaml:"mediumThreshold"` // 中等血量阈值（比例，含）
	AnimationSpeed  float64 `yaml:"animationSpeed"`  // 滑条追踪速度（每秒）

	DamageStep    float64 `yaml:"damageStep"`    // 每次按键造成的伤害
	HealStep      float64 `yaml:"healStep"`      // 每次按键治疗量
	MaxHealthStep float64 `yaml:"maxHealthStep"` // 每次按键最大生命值变化量

	ShowText bool            `yaml:"showText"` // 是否显示 "HP: x/y" 文本
	Colors   HealthBarColors `yaml:"colors"`
}

// HealthBarPalette 解析后的颜色
type HealthBarPalette struct {
	Low        color.RGBA
	Medium     color.RGBA
	Full       color.RGBA
	Background color.RGBA
}

// ForBand 返回档位对应的填充色
func (p HealthBarPalette) ForBand(band health.Band) color.RGBA {
	switch band {
	case health.BandLow:
		return p.Low
	case health.BandMedium:
		return p.Medium
	default:
		return p.Full
	}
}

// DefaultHealthBarConfig 返回默认配置
func DefaultHealthBarConfig() *HealthBarConfig {
	return &HealthBarConfig{
		MaxHealth:       100,
		LowThreshold:    0.2,
		MediumThreshold: 0.5,
		AnimationSpeed:  5,
		DamageStep:      10,
		HealStep:        10,
		MaxHealthStep:   25,
		ShowText:        true,
		Colors: HealthBarColors{
			Low:        "#E53935",
			Medium:     "#FDD835",
			Full:       "#43A047",
			Background: "#303030",
		},
	}
}

// LoadHealthBarConfig 加载血条配置
//
// 以 "data/" 开头且存在于嵌入资源中的路径从 embedded 读取，其余从磁盘读取。
//
// 参数：
//   - path: 配置文件路径
//
// 返回：
//   - *HealthBarConfig: 合并默认值并校验后的配置
//   - error: 读取、解析或校验失败
func LoadHealthBarConfig(path string) (*HealthBarConfig, error) {
	var (
		data []byte
		err  error
	)
	if embedded.Exists(path) {
		data, err = embedded.ReadFile(path)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read health bar config %s: %w", path, err)
	}

	cfg, err := ParseHealthBarConfig(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// ParseHealthBarConfig 解析 YAML 数据
// 未出现的字段使用 DefaultHealthBarConfig 的值
func ParseHealthBarConfig(data []byte) (*HealthBarConfig, error) {
	cfg := DefaultHealthBarConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse health bar YAML: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid health bar config: %w", err)
	}
	return cfg, nil
}

// Validate 校验配置的合法性
func (c *HealthBarConfig) Validate() error {
	numbers := []struct {
		name  string
		value float64
	}{
		{"maxHealth", c.MaxHealth},
		{"lowThreshold", c.LowThreshold},
		{"mediumThreshold", c.MediumThreshold},
		{"animationSpeed", c.AnimationSpeed},
		{"damageStep", c.DamageStep},
		{"healStep", c.HealStep},
		{"maxHealthStep", c.MaxHealthStep},
	}
	for _, n := range numbers {
		if math.IsNaN(n.value) || math.IsInf(n.value, 0) {
			return fmt.Errorf("%s must be a finite number, got %v", n.name, n.value)
		}
	}

	if !(c.MaxHealth > 0) {
		return fmt.Errorf("maxHealth must be positive, got %v", c.MaxHealth)
	}
	if c.LowThreshold < 0 || c.LowThreshold > 1 {
		return fmt.Errorf("lowThreshold must be in [0, 1], got %v", c.LowThreshold)
	}
	if c.MediumThreshold < 0 || c.MediumThreshold > 1 {
		return fmt.Errorf("mediumThreshold must be in [0, 1], got %v", c.MediumThreshold)
	}
	if c.LowThreshold > c.MediumThreshold {
		return fmt.Errorf("lowThreshold (%v) cannot exceed mediumThreshold (%v)", c.LowThreshold, c.MediumThreshold)
	}
	if !(c.AnimationSpeed > 0) {
		return fmt.Errorf("animationSpeed must be positive, got %v", c.AnimationSpeed)
	}
	if c.DamageStep < 0 || c.HealStep < 0 || c.MaxHealthStep < 0 {
		return fmt.Errorf("steps cannot be negative (damage=%v heal=%v max=%v)", c.DamageStep, c.HealStep, c.MaxHealthStep)
	}
	if _, err := c.Palette(); err != nil {
		return err
	}
	return nil
}

// Palette 解析颜色配置
func (c *HealthBarConfig) Palette() (HealthBarPalette, error) {
	var p HealthBarPalette
	fields := []struct {
		name  string
		value string
		dst   *color.RGBA
	}{
		{"colors.low", c.Colors.Low, &p.Low},
		{"colors.medium", c.Colors.Medium, &p.Medium},
		{"colors.full", c.Colors.Full, &p.Full},
		{"colors.background", c.Colors.Background, &p.Background},
	}
	for _, f := range fields {
		clr, err := ParseHexColor(f.value)
		if err != nil {
			return HealthBarPalette{}, fmt.Errorf("%s: %w", f.name, err)
		}
		*f.dst = clr
	}
	return p, nil
}

// ParseHexColor 解析 "#RRGGBB" 或 "#RRGGBBAA"
func ParseHexColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 && len(hex) != 8 {
		return color.RGBA{}, fmt.Errorf("invalid hex color %q", s)
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}

	if len(hex) == 6 {
		return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
	}
	return color.RGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}
