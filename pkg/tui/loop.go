package tui

import (
	"context"
	"log"
	"time"

	"github.com/decker502/healthbar/pkg/config"
	"github.com/decker502/healthbar/pkg/health"
	"github.com/decker502/healthbar/pkg/systems"
	"github.com/gdamore/tcell/v2"
)

// FrameInterval 动画帧间隔
const FrameInterval = time.Second / 30

// DeathNote 死亡提示
const DeathNote = "*** YOU DIED ***  (r to reset)"

// Loop 终端前端主循环
//
// 事件读取在独立 goroutine 中进行，health.State 只在 Run 所在的 goroutine 中访问。
type Loop struct {
	screen    tcell.Screen
	state     *health.State
	cfg       *config.HealthBarConfig
	renderer  *Renderer
	displayed float64
	note      string
}

// NewLoop 创建主循环
func NewLoop(screen tcell.Screen, state *health.State, cfg *config.HealthBarConfig) (*Loop, error) {
	palette, err := cfg.Palette()
	if err != nil {
		return nil, err
	}

	l := &Loop{
		screen:    screen,
		state:     state,
		cfg:       cfg,
		renderer:  NewRenderer(screen, palette, config.TerminalBarWidth),
		displayed: state.Ratio(),
	}
	state.OnDeath(func(e health.DeathEvent) {
		log.Printf("[tui] Player died (damage=%.1f)", e.Damage)
		l.note = DeathNote
	})
	return l, nil
}

// KeyAction 把按键映射为血条操作，第二个返回值表示退出
func KeyAction(ev *tcell.EventKey) (systems.HealthAction, bool) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return systems.ActionNone, true
	case tcell.KeyUp:
		return systems.ActionIncreaseMax, false
	case tcell.KeyDown:
		return systems.ActionDecreaseMax, false
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			return systems.ActionNone, true
		case 'd', 'D':
			return systems.ActionDamage, false
		case 'h', 'H':
			return systems.ActionHeal, false
		case '+', '=':
			return systems.ActionIncreaseMax, false
		case '-', '_':
			return systems.ActionDecreaseMax, false
		case 'r', 'R':
			return systems.ActionReset, false
		}
	}
	return systems.ActionNone, false
}

// HandleKey 处理一次按键，返回 true 表示退出
func (l *Loop) HandleKey(ev *tcell.EventKey) bool {
	action, quit := KeyAction(ev)
	if quit {
		return true
	}
	if action == systems.ActionNone {
		return false
	}

	systems.ApplyHealthAction(l.state, action, l.cfg)
	if !l.state.IsDead() {
		l.note = ""
	}
	return false
}

// Tick 推进一帧动画并重绘
func (l *Loop) Tick(deltaTime float64) {
	target := l.state.Ratio()
	l.displayed = systems.StepDisplayedRatio(l.displayed, target, l.cfg.AnimationSpeed, deltaTime)

	l.renderer.Draw(View{
		Current:   l.state.CurrentHealth(),
		Max:       l.state.MaxHealth(),
		Displayed: l.displayed,
		Band:      health.ColorBand(target, l.cfg.LowThreshold, l.cfg.MediumThreshold),
		Note:      l.note,
	})
}

// Displayed 返回当前显示比例
func (l *Loop) Displayed() float64 {
	return l.displayed
}

// Run 运行主循环直到退出按键或 ctx 取消
// 返回后事件 goroutine 在下一个事件或 screen.Fini() 时退出
func (l *Loop) Run(ctx context.Context) error {
	events := make(chan tcell.Event, 16)
	done := make(chan struct{})
	defer close(done)
	go l.pollEvents(events, done)

	ticker := time.NewTicker(FrameInterval)
	defer ticker.Stop()

	l.Tick(0)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			switch ev := ev.(type) {
			case *tcell.EventResize:
				l.screen.Sync()
			case *tcell.EventKey:
				if l.HandleKey(ev) {
					return nil
				}
			}
		case <-ticker.C:
			l.Tick(FrameInterval.Seconds())
		}
	}
}

// pollEvents 把屏幕事件转发到 events，屏幕关闭时关闭 events
// done 关闭后不再转发
func (l *Loop) pollEvents(events chan<- tcell.Event, done <-chan struct{}) {
	for {
		ev := l.screen.PollEvent()
		if ev == nil {
			close(events)
			return
		}
		select {
		case events <- ev:
		case <-done:
			return
		}
	}
}
