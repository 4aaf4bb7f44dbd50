package systems

import (
	"fmt"
	"image/color"
	"math"

	"github.com/decker502/healthbar/pkg/components"
	"github.com/decker502/healthbar/pkg/config"
	"github.com/decker502/healthbar/pkg/ecs"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// HealthBarRenderSystem 血条渲染系统
type HealthBarRenderSystem struct {
	entityManager *ecs.EntityManager
	borderColor   color.RGBA
}

// NewHealthBarRenderSystem 创建血条渲染系统
func NewHealthBarRenderSystem(em *ecs.EntityManager) *HealthBarRenderSystem {
	return &HealthBarRenderSystem{
		entityManager: em,
		borderColor:   color.RGBA{R: 0xf0, G: 0xf0, B: 0xf0, A: 0xff},
	}
}

// Draw 渲染所有血条和死亡提示
func (s *HealthBarRenderSystem) Draw(screen *ebiten.Image) {
	entities := ecs.GetEntitiesWith1[*components.HealthBarComponent](s.entityManager)

	for _, id := range entities {
		bar, ok := ecs.GetComponent[*components.HealthBarComponent](s.entityManager, id)
		if !ok {
			continue
		}
		s.drawBar(screen, bar)
	}

	banners := ecs.GetEntitiesWith1[*components.DeathBannerComponent](s.entityManager)
	for _, id := range banners {
		banner, ok := ecs.GetComponent[*components.DeathBannerComponent](s.entityManager, id)
		if !ok {
			continue
		}
		s.drawBanner(screen, banner)
	}
}

// drawBar 绘制底色 + 填充 + 边框 + 文本
func (s *HealthBarRenderSystem) drawBar(screen *ebiten.Image, bar *components.HealthBarComponent) {
	x, y := float32(bar.X), float32(bar.Y)
	w, h := float32(bar.Width), float32(bar.Height)

	// 1. 底色
	vector.DrawFilledRect(screen, x, y, w, h, bar.Background, false)

	// 2. 填充（从左到右）
	if fillWidth := FillWidth(bar.Width, bar.DisplayedRatio); fillWidth > 0 {
		vector.DrawFilledRect(screen, x, y, float32(fillWidth), h, bar.FillColor, false)
	}

	// 3. 边框
	vector.StrokeRect(screen, x, y, w, h, config.HealthBarBorderWidth, s.borderColor, false)

	// 4. 文本
	if bar.ShowText && bar.Health != nil {
		label := HealthLabel(bar.Health.CurrentHealth(), bar.Health.MaxHealth())
		ebitenutil.DebugPrintAt(screen, label,
			int(bar.X+config.HealthTextOffsetX), int(bar.Y+config.HealthTextOffsetY))
	}

	if config.DebugHealthBar && bar.Health != nil {
		debugMsg := fmt.Sprintf("target=%.3f displayed=%.3f band=%v",
			bar.Health.Ratio(), bar.DisplayedRatio, bar.Band)
		ebitenutil.DebugPrintAt(screen, debugMsg, int(bar.X), int(bar.Y+bar.Height)+4)
	}
}

// drawBanner 在屏幕中央绘制死亡提示
func (s *HealthBarRenderSystem) drawBanner(screen *ebiten.Image, banner *components.DeathBannerComponent) {
	// DebugPrint 字形为 6x16
	const glyphWidth, glyphHeight = 6, 16
	x := (config.GameWindowWidth - len(banner.Text)*glyphWidth) / 2
	y := (config.GameWindowHeight - glyphHeight) / 2
	ebitenutil.DebugPrintAt(screen, banner.Text, x, y)
}

// FillWidth 计算填充宽度，比例会被限制在 [0, 1]
func FillWidth(width, ratio float64) float64 {
	if ratio <= 0 || math.IsNaN(ratio) {
		return 0
	}
	if ratio > 1 {
		ratio = 1
	}
	return width * ratio
}

// HealthLabel 格式化 "HP: cur/max"
// 整数值不显示小数，否则保留一位小数
func HealthLabel(current, max float64) string {
	return fmt.Sprintf("HP: %s/%s", formatHealth(current), formatHealth(max))
}

func formatHealth(v float64) string {
	if v == math.Trunc(v) {
		return fmt.Sprintf("%.0f", v)
	}
	return fmt.Sprintf("%.1f", v)
}
