package systems

import (
	"math"

	"github.com/decker502/healthbar/pkg/components"
	"github.com/decker502/healthbar/pkg/config"
	"github.com/decker502/healthbar/pkg/ecs"
	"github.com/decker502/healthbar/pkg/health"
	"github.com/decker502/healthbar/pkg/utils"
)

// HealthBarSystem 血条动画系统
//
// 每帧把 DisplayedRatio 向目标比例 Health.Ratio() 平滑追踪，
// 并根据目标比例所在档位更新填充色。
type HealthBarSystem struct {
	entityManager *ecs.EntityManager
	cfg           *config.HealthBarConfig
	palette       config.HealthBarPalette
}

// NewHealthBarSystem 创建血条动画系统
// cfg 必须已通过 Validate
func NewHealthBarSystem(em *ecs.EntityManager, cfg *config.HealthBarConfig) (*HealthBarSystem, error) {
	palette, err := cfg.Palette()
	if err != nil {
		return nil, err
	}
	return &HealthBarSystem{
		entityManager: em,
		cfg:           cfg,
		palette:       palette,
	}, nil
}

// Update 更新所有血条
func (s *HealthBarSystem) Update(deltaTime float64) {
	entities := ecs.GetEntitiesWith1[*components.HealthBarComponent](s.entityManager)

	for _, id := range entities {
		bar, ok := ecs.GetComponent[*components.HealthBarComponent](s.entityManager, id)
		if !ok || bar.Health == nil {
			continue
		}

		target := bar.Health.Ratio()
		bar.DisplayedRatio = StepDisplayedRatio(bar.DisplayedRatio, target, s.cfg.AnimationSpeed, deltaTime)

		bar.Band = health.ColorBand(target, s.cfg.LowThreshold, s.cfg.MediumThreshold)
		bar.FillColor = s.palette.ForBand(bar.Band)
		bar.Background = s.palette.Background
	}
}

// StepDisplayedRatio 推进一帧显示比例
//
// displayed = Lerp(displayed, target, speed*dt)，差值小于 HealthBarSnapEpsilon 时直接对齐。
// 结果始终位于 [0, 1]。
func StepDisplayedRatio(displayed, target, speed, deltaTime float64) float64 {
	next := utils.Lerp(displayed, target, speed*deltaTime)
	if math.Abs(next-target) < config.HealthBarSnapEpsilon {
		next = target
	}
	return utils.Clamp(next, 0, 1)
}
