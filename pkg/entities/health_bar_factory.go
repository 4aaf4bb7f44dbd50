package entities

import (
	"fmt"

	"github.com/decker502/healthbar/pkg/components"
	"github.com/decker502/healthbar/pkg/config"
	"github.com/decker502/healthbar/pkg/ecs"
	"github.com/decker502/healthbar/pkg/health"
)

// DeathBannerText 死亡提示文本
const DeathBannerText = "YOU DIED"

// NewHealthBarEntity 创建玩家血条实体
//
// 参数:
//   - em: 实体管理器
//   - state: 血条显示的生命值状态（调用方持有，不可为 nil）
//   - cfg: 血条配置
//
// 返回:
//   - ecs.EntityID: 创建的实体ID，失败返回 0
//   - error: 参数缺失或配置非法
func NewHealthBarEntity(em *ecs.EntityManager, state *health.State, cfg *config.HealthBarConfig) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	if state == nil {
		return 0, fmt.Errorf("health state cannot be nil")
	}
	if cfg == nil {
		return 0, fmt.Errorf("health bar config cannot be nil")
	}

	palette, err := cfg.Palette()
	if err != nil {
		return 0, fmt.Errorf("health bar palette: %w", err)
	}

	// 初始显示比例直接对齐目标，避免开场动画
	ratio := state.Ratio()
	band := health.ColorBand(ratio, cfg.LowThreshold, cfg.MediumThreshold)

	entityID := em.CreateEntity()
	ecs.AddComponent(em, entityID, &components.HealthBarComponent{
		Health:         state,
		DisplayedRatio: ratio,
		Band:           band,
		FillColor:      palette.ForBand(band),
		Background:     palette.Background,
		X:              config.HealthBarX,
		Y:              config.HealthBarY,
		Width:          config.HealthBarWidth,
		Height:         config.HealthBarHeight,
		ShowText:       cfg.ShowText,
	})

	return entityID, nil
}

// NewDeathBannerEntity 创建死亡提示实体
func NewDeathBannerEntity(em *ecs.EntityManager) ecs.EntityID {
	entityID := em.CreateEntity()
	ecs.AddComponent(em, entityID, &components.DeathBannerComponent{
		Text:     DeathBannerText,
		Duration: config.DeathBannerDuration,
	})
	return entityID
}
