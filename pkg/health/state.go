// Package health 提供玩家生命值状态
//
// State 只负责数值本身：当前/最大生命值、钳制、比例计算与死亡事件。
// 滑条动画、颜色和绘制由 components/systems 负责，State 不依赖任何渲染框架。
//
// State 不是并发安全的，调用方需要自行串行化访问（游戏循环单线程调用即可）。
package health

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidMaxHealth 最大生命值必须大于 0
var ErrInvalidMaxHealth = errors.New("max health must be positive")

// DeathEvent 死亡事件
type DeathEvent struct {
	Damage    float64 // 致死伤害值
	MaxHealth float64 // 死亡时的最大生命值
}

// DeathListener 死亡事件监听函数
type DeathListener func(DeathEvent)

// State 玩家生命值状态
//
// 不变量：
//   - maxHealth > 0
//   - 0 <= currentHealth <= maxHealth
type State struct {
	currentHealth float64
	maxHealth     float64

	// 死亡事件只在 存活 -> 0 的那一次伤害中触发
	dead      bool
	listeners []DeathListener
}

// Snapshot 生命值快照（用于存档）
type Snapshot struct {
	Current float64 `yaml:"current"`
	Max     float64 `yaml:"max"`
}

// NewState 创建满血的生命值状态
//
// 参数：
//   - maxHealth: 最大生命值，必须 > 0
//
// 返回：
//   - *State: 生命值状态（currentHealth = maxHealth）
//   - error: maxHealth <= 0 时返回 ErrInvalidMaxHealth
func NewState(maxHealth float64) (*State, error) {
	if !(maxHealth > 0) || math.IsInf(maxHealth, 1) {
		return nil, fmt.Errorf("new health state (max=%v): %w", maxHealth, ErrInvalidMaxHealth)
	}
	return &State{
		currentHealth: maxHealth,
		maxHealth:     maxHealth,
	}, nil
}

// OnDeath 注册死亡事件监听
// 监听按注册顺序同步调用
func (s *State) OnDeath(listener DeathListener) {
	if listener == nil {
		return
	}
	s.listeners = append(s.listeners, listener)
}

// CurrentHealth 返回当前生命值
func (s *State) CurrentHealth() float64 {
	return s.currentHealth
}

// MaxHealth 返回最大生命值
func (s *State) MaxHealth() float64 {
	return s.maxHealth
}

// IsDead 当前生命值是否为 0
func (s *State) IsDead() bool {
	return s.currentHealth <= 0
}

// SetMaxHealth 修改最大生命值，并按原比例缩放当前生命值
// newMax <= 0 时静默忽略
func (s *State) SetMaxHealth(newMax float64) {
	if !(newMax > 0) || math.IsInf(newMax, 1) {
		return
	}
	ratio := s.Ratio()
	s.currentHealth = clamp(ratio*newMax, 0, newMax)
	s.maxHealth = newMax
}

// SetHealth 直接设置当前生命值（钳制到 [0, maxHealth]）
// 不触发死亡事件
func (s *State) SetHealth(value float64) {
	if math.IsNaN(value) {
		return
	}
	s.currentHealth = clamp(value, 0, s.maxHealth)
	s.syncDeadFlag()
}

// ApplyDamage 受到伤害
// amount < 0 时静默忽略；生命值降到 0 时触发一次死亡事件
func (s *State) ApplyDamage(amount float64) {
	if amount < 0 || math.IsNaN(amount) {
		return
	}
	s.currentHealth = clamp(s.currentHealth-amount, 0, s.maxHealth)

	if s.currentHealth == 0 && !s.dead {
		s.dead = true
		s.fireDeath(DeathEvent{Damage: amount, MaxHealth: s.maxHealth})
	}
}

// Heal 治疗
// amount < 0 时静默忽略
func (s *State) Heal(amount float64) {
	if amount < 0 || math.IsNaN(amount) {
		return
	}
	s.currentHealth = clamp(s.currentHealth+amount, 0, s.maxHealth)
	s.syncDeadFlag()
}

// Ratio 返回 currentHealth / maxHealth，范围 [0, 1]
func (s *State) Ratio() float64 {
	return clamp(s.currentHealth/s.maxHealth, 0, 1)
}

// Snapshot 导出当前数值
func (s *State) Snapshot() Snapshot {
	return Snapshot{Current: s.currentHealth, Max: s.maxHealth}
}

// Restore 从快照恢复数值，不触发死亡事件
func (s *State) Restore(snap Snapshot) error {
	if !(snap.Max > 0) || math.IsInf(snap.Max, 1) || math.IsNaN(snap.Current) {
		return fmt.Errorf("restore health snapshot (max=%v): %w", snap.Max, ErrInvalidMaxHealth)
	}
	s.maxHealth = snap.Max
	s.currentHealth = clamp(snap.Current, 0, snap.Max)
	s.dead = s.currentHealth == 0
	return nil
}

// syncDeadFlag 生命值回到正数后允许再次触发死亡事件
func (s *State) syncDeadFlag() {
	s.dead = s.currentHealth <= 0
}

func (s *State) fireDeath(event DeathEvent) {
	for _, listener := range s.listeners {
		listener(event)
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
