package game

import (
	"errors"
	"fmt"
	"log"

	"github.com/decker502/healthbar/pkg/health"
	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// ErrNoHealthSave 没有可用的生命值存档
var ErrNoHealthSave = errors.New("no health save found")

const (
	healthSaveObject   = "player"
	healthSaveProperty = "health"
)

// HealthSaveManager 玩家生命值存档管理器
// 存档格式为 health.Snapshot 的 YAML
type HealthSaveManager struct {
	gdataManager *gdata.Manager // 可为 nil（降级模式，不持久化）
}

// NewHealthSaveManager 创建存档管理器
func NewHealthSaveManager(gdataManager *gdata.Manager) *HealthSaveManager {
	return &HealthSaveManager{gdataManager: gdataManager}
}

// HasSave 是否存在存档
func (m *HealthSaveManager) HasSave() bool {
	if m.gdataManager == nil {
		return false
	}
	return m.gdataManager.ObjectPropExists(healthSaveObject, healthSaveProperty)
}

// Save 保存生命值快照
// 降级模式下直接返回 nil
func (m *HealthSaveManager) Save(state *health.State) error {
	if m.gdataManager == nil {
		return nil
	}

	data, err := yaml.Marshal(state.Snapshot())
	if err != nil {
		return fmt.Errorf("failed to marshal health snapshot: %w", err)
	}

	if err := m.gdataManager.SaveObjectProp(healthSaveObject, healthSaveProperty, data); err != nil {
		return fmt.Errorf("failed to save health snapshot: %w", err)
	}

	log.Printf("[HealthSaveManager] Saved HP %.1f/%.1f", state.CurrentHealth(), state.MaxHealth())
	return nil
}

// LoadInto 读取存档并恢复到 state
//
// 返回：
//   - ErrNoHealthSave: 降级模式或存档不存在
//   - 其他 error: 读取、解析或校验失败（state 保持不变）
func (m *HealthSaveManager) LoadInto(state *health.State) error {
	if !m.HasSave() {
		return ErrNoHealthSave
	}

	data, err := m.gdataManager.LoadObjectProp(healthSaveObject, healthSaveProperty)
	if err != nil {
		return fmt.Errorf("failed to load health snapshot: %w", err)
	}

	var snap health.Snapshot
	if err := yaml.Unmarshal(data, &snap); err != nil {
		return fmt.Errorf("failed to unmarshal health snapshot: %w", err)
	}

	if err := state.Restore(snap); err != nil {
		return err
	}

	log.Printf("[HealthSaveManager] Loaded HP %.1f/%.1f", state.CurrentHealth(), state.MaxHealth())
	return nil
}
