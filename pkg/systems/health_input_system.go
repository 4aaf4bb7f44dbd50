package systems

import (
	"log"

	"github.com/decker502/healthbar/pkg/config"
	"github.com/decker502/healthbar/pkg/health"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// HealthAction 玩家对血条的操作
type HealthAction int

const (
	ActionNone HealthAction = iota
	ActionDamage
	ActionHeal
	ActionIncreaseMax
	ActionDecreaseMax
	ActionReset
)

// String 返回操作名称（日志用）
func (a HealthAction) String() string {
	switch a {
	case ActionDamage:
		return "damage"
	case ActionHeal:
		return "heal"
	case ActionIncreaseMax:
		return "increase-max"
	case ActionDecreaseMax:
		return "decrease-max"
	case ActionReset:
		return "reset"
	default:
		return "none"
	}
}

// KeyBinding 按键到操作的映射
type KeyBinding struct {
	Key    ebiten.Key
	Action HealthAction
}

// DefaultKeyBindings 默认按键
//   - D: 受到伤害
//   - H: 治疗
//   - ↑/↓: 增加/减少最大生命值
//   - R: 回满
var DefaultKeyBindings = []KeyBinding{
	{Key: ebiten.KeyD, Action: ActionDamage},
	{Key: ebiten.KeyH, Action: ActionHeal},
	{Key: ebiten.KeyArrowUp, Action: ActionIncreaseMax},
	{Key: ebiten.KeyArrowDown, Action: ActionDecreaseMax},
	{Key: ebiten.KeyR, Action: ActionReset},
}

// HealthInputSystem 键盘输入系统
type HealthInputSystem struct {
	state    *health.State
	cfg      *config.HealthBarConfig
	bindings []KeyBinding
	handler  func(HealthAction)
}

// NewHealthInputSystem 创建输入系统
func NewHealthInputSystem(state *health.State, cfg *config.HealthBarConfig) *HealthInputSystem {
	s := &HealthInputSystem{
		state:    state,
		cfg:      cfg,
		bindings: DefaultKeyBindings,
	}
	s.handler = func(action HealthAction) {
		ApplyHealthAction(s.state, action, s.cfg)
	}
	return s
}

// SetActionHandler 替换默认的操作处理函数（默认直接调用 ApplyHealthAction）
func (s *HealthInputSystem) SetActionHandler(handler func(HealthAction)) {
	if handler != nil {
		s.handler = handler
	}
}

// Update 处理本帧按下的按键
func (s *HealthInputSystem) Update() {
	for _, b := range s.bindings {
		if inpututil.IsKeyJustPressed(b.Key) {
			s.handler(b.Action)
			log.Printf("[HealthInputSystem] %v -> HP %.1f/%.1f",
				b.Action, s.state.CurrentHealth(), s.state.MaxHealth())
		}
	}
}

// ApplyHealthAction 把操作应用到生命值状态
// 非法结果（例如最大生命值减到 0 以下）由 State 静默忽略
func ApplyHealthAction(state *health.State, action HealthAction, cfg *config.HealthBarConfig) {
	switch action {
	case ActionDamage:
		state.ApplyDamage(cfg.DamageStep)
	case ActionHeal:
		state.Heal(cfg.HealStep)
	case ActionIncreaseMax:
		state.SetMaxHealth(state.MaxHealth() + cfg.MaxHealthStep)
	case ActionDecreaseMax:
		state.SetMaxHealth(state.MaxHealth() - cfg.MaxHealthStep)
	case ActionReset:
		state.SetHealth(state.MaxHealth())
	}
}
