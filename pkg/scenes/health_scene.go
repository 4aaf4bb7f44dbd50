package scenes

import (
	"errors"
	"fmt"
	"image/color"
	"log"

	"github.com/decker502/healthbar/pkg/config"
	"github.com/decker502/healthbar/pkg/ecs"
	"github.com/decker502/healthbar/pkg/entities"
	"github.com/decker502/healthbar/pkg/game"
	"github.com/decker502/healthbar/pkg/health"
	"github.com/decker502/healthbar/pkg/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

// backgroundColor 场景底色
var backgroundColor = color.RGBA{R: 24, G: 24, B: 32, A: 255}

// HealthScene 血条演示场景
//
// 场景持有唯一的 health.State，并把它显式注入血条实体和输入系统。
type HealthScene struct {
	entityManager *ecs.EntityManager
	state         *health.State
	cfg           *config.HealthBarConfig

	healthBarSystem   *systems.HealthBarSystem
	renderSystem      *systems.HealthBarRenderSystem
	inputSystem       *systems.HealthInputSystem
	deathBannerSystem *systems.DeathBannerSystem

	audioManager *game.AudioManager
	saveManager  *game.HealthSaveManager

	deathCount int
}

// NewHealthScene 创建血条场景
//
// 参数：
//   - cfg: 血条配置（必须已校验）
//   - audioManager: 音频管理器（可为 nil）
//   - saveManager: 生命值存档管理器（可为 nil，不读写存档）
func NewHealthScene(cfg *config.HealthBarConfig, audioManager *game.AudioManager, saveManager *game.HealthSaveManager) (*HealthScene, error) {
	if cfg == nil {
		return nil, fmt.Errorf("health bar config cannot be nil")
	}

	state, err := health.NewState(cfg.MaxHealth)
	if err != nil {
		return nil, err
	}

	// 恢复上次退出时的生命值
	if saveManager != nil {
		if err := saveManager.LoadInto(state); err != nil && !errors.Is(err, game.ErrNoHealthSave) {
			log.Printf("[HealthScene] Warning: Failed to restore health: %v (starting at full health)", err)
		}
	}

	em := ecs.NewEntityManager()
	if _, err := entities.NewHealthBarEntity(em, state, cfg); err != nil {
		return nil, fmt.Errorf("failed to create health bar: %w", err)
	}

	healthBarSystem, err := systems.NewHealthBarSystem(em, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create health bar system: %w", err)
	}

	s := &HealthScene{
		entityManager:     em,
		state:             state,
		cfg:               cfg,
		healthBarSystem:   healthBarSystem,
		renderSystem:      systems.NewHealthBarRenderSystem(em),
		inputSystem:       systems.NewHealthInputSystem(state, cfg),
		deathBannerSystem: systems.NewDeathBannerSystem(em),
		audioManager:      audioManager,
		saveManager:       saveManager,
	}

	state.OnDeath(s.onPlayerDeath)
	s.inputSystem.SetActionHandler(func(action systems.HealthAction) { s.ApplyAction(action) })

	log.Printf("[HealthScene] Initialized with HP %.1f/%.1f", state.CurrentHealth(), state.MaxHealth())
	return s, nil
}

// onPlayerDeath 死亡事件处理：提示 + 音效
func (s *HealthScene) onPlayerDeath(event health.DeathEvent) {
	s.deathCount++
	log.Printf("[HealthScene] Player died (damage=%.1f, max=%.1f)", event.Damage, event.MaxHealth)

	entities.NewDeathBannerEntity(s.entityManager)
	if s.audioManager != nil {
		s.audioManager.PlaySound(game.SoundDeath)
	}
}

// ApplyAction 应用玩家操作
// 伤害使生命值下降且未致死时播放受击音效，致死时由 onPlayerDeath 播放死亡音效
//
// 返回：
//   - bool: 是否触发了受击音效
func (s *HealthScene) ApplyAction(action systems.HealthAction) bool {
	before := s.state.CurrentHealth()
	systems.ApplyHealthAction(s.state, action, s.cfg)

	if action != systems.ActionDamage || s.state.IsDead() || s.state.CurrentHealth() >= before {
		return false
	}
	if s.audioManager != nil {
		s.audioManager.PlaySound(game.SoundDamage)
	}
	return true
}

// State 返回场景持有的生命值状态
func (s *HealthScene) State() *health.State {
	return s.state
}

// EntityManager 返回场景的实体管理器
func (s *HealthScene) EntityManager() *ecs.EntityManager {
	return s.entityManager
}

// DeathCount 返回本场景内死亡次数
func (s *HealthScene) DeathCount() int {
	return s.deathCount
}

// Update 更新场景
func (s *HealthScene) Update(deltaTime float64) {
	s.inputSystem.Update()
	s.Step(deltaTime)
}

// Step 推进除输入外的所有系统
func (s *HealthScene) Step(deltaTime float64) {
	s.healthBarSystem.Update(deltaTime)
	s.deathBannerSystem.Update(deltaTime)
	s.entityManager.RemoveMarkedEntities()
}

// Draw 绘制场景
func (s *HealthScene) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)
	s.renderSystem.Draw(screen)
}

// SaveOnExit 实现 game.Saveable，退出时保存生命值
func (s *HealthScene) SaveOnExit() bool {
	if s.saveManager == nil {
		return true
	}
	if err := s.saveManager.Save(s.state); err != nil {
		log.Printf("[HealthScene] Warning: Failed to save health: %v", err)
		return false
	}
	return true
}
