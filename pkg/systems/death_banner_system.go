package systems

import (
	"github.com/decker502/healthbar/pkg/components"
	"github.com/decker502/healthbar/pkg/ecs"
)

// DeathBannerSystem 管理死亡提示的显示时长
type DeathBannerSystem struct {
	entityManager *ecs.EntityManager
}

// NewDeathBannerSystem 创建死亡提示系统
func NewDeathBannerSystem(em *ecs.EntityManager) *DeathBannerSystem {
	return &DeathBannerSystem{
		entityManager: em,
	}
}

// Update 累计显示时间，到期后标记实体待删除
func (s *DeathBannerSystem) Update(deltaTime float64) {
	entities := ecs.GetEntitiesWith1[*components.DeathBannerComponent](s.entityManager)

	for _, id := range entities {
		banner, ok := ecs.GetComponent[*components.DeathBannerComponent](s.entityManager, id)
		if !ok {
			continue
		}

		banner.Elapsed += deltaTime
		if banner.Elapsed >= banner.Duration {
			s.entityManager.DestroyEntity(id)
		}
	}
}
