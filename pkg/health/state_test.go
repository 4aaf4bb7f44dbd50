package health

import (
	"errors"
	"math"
	"testing"
)

func newTestState(t *testing.T, max float64) *State {
	t.Helper()
	s, err := NewState(max)
	if err != nil {
		t.Fatalf("NewState(%v) error: %v", max, err)
	}
	return s
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestNewState(t *testing.T) {
	s := newTestState(t, 100)
	if s.CurrentHealth() != 100 || s.MaxHealth() != 100 {
		t.Errorf("NewState(100) = %v/%v, want 100/100", s.CurrentHealth(), s.MaxHealth())
	}
	if s.Ratio() != 1 {
		t.Errorf("Ratio() = %v, want 1", s.Ratio())
	}
	if s.IsDead() {
		t.Error("new state should not be dead")
	}
}

func TestNewStateInvalidMax(t *testing.T) {
	for _, max := range []float64{0, -5, math.NaN(), math.Inf(1)} {
		s, err := NewState(max)
		if err == nil {
			t.Errorf("NewState(%v) expected error, got state %+v", max, s)
			continue
		}
		if !errors.Is(err, ErrInvalidMaxHealth) {
			t.Errorf("NewState(%v) error = %v, want ErrInvalidMaxHealth", max, err)
		}
	}
}

// TestDamageNeverBelowZero 伤害后生命值不低于 0
func TestDamageNeverBelowZero(t *testing.T) {
	for _, d := range []float64{0, 1, 50, 99.9, 100, 101, 1e9, math.Inf(1)} {
		s := newTestState(t, 100)
		s.ApplyDamage(d)
		if s.CurrentHealth() < 0 {
			t.Errorf("ApplyDamage(%v) left current=%v", d, s.CurrentHealth())
		}
		if r := s.Ratio(); r < 0 || r > 1 {
			t.Errorf("ApplyDamage(%v) ratio=%v out of [0,1]", d, r)
		}
	}
}

// TestHealNeverAboveMax 治疗后生命值不超过最大值
func TestHealNeverAboveMax(t *testing.T) {
	for _, h := range []float64{0, 1, 50, 100, 1e9, math.Inf(1)} {
		s := newTestState(t, 100)
		s.ApplyDamage(40)
		s.Heal(h)
		if s.CurrentHealth() > s.MaxHealth() {
			t.Errorf("Heal(%v) left current=%v > max=%v", h, s.CurrentHealth(), s.MaxHealth())
		}
		if r := s.Ratio(); r < 0 || r > 1 {
			t.Errorf("Heal(%v) ratio=%v out of [0,1]", h, r)
		}
	}
}

func TestNegativeAmountsIgnored(t *testing.T) {
	s := newTestState(t, 100)
	s.ApplyDamage(20)

	s.ApplyDamage(-1)
	if s.CurrentHealth() != 80 {
		t.Errorf("ApplyDamage(-1) changed current to %v, want 80", s.CurrentHealth())
	}

	s.Heal(-1)
	if s.CurrentHealth() != 80 {
		t.Errorf("Heal(-1) changed current to %v, want 80", s.CurrentHealth())
	}

	s.ApplyDamage(math.NaN())
	s.Heal(math.NaN())
	s.SetHealth(math.NaN())
	if s.CurrentHealth() != 80 {
		t.Errorf("NaN input changed current to %v, want 80", s.CurrentHealth())
	}
}

func TestSetMaxHealthInvalidIgnored(t *testing.T) {
	s := newTestState(t, 100)
	s.ApplyDamage(25)

	for _, max := range []float64{0, -5, math.NaN()} {
		s.SetMaxHealth(max)
		if s.MaxHealth() != 100 {
			t.Errorf("SetMaxHealth(%v) changed max to %v", max, s.MaxHealth())
		}
		if s.CurrentHealth() != 75 {
			t.Errorf("SetMaxHealth(%v) changed current to %v", max, s.CurrentHealth())
		}
	}
}

func TestSetMaxHealthPreservesRatio(t *testing.T) {
	tests := []struct {
		name        string
		max         float64
		current     float64
		newMax      float64
		wantCurrent float64
	}{
		{name: "缩小 25/100 -> 50", max: 100, current: 25, newMax: 50, wantCurrent: 12.5},
		{name: "放大 50/100 -> 200", max: 100, current: 50, newMax: 200, wantCurrent: 100},
		{name: "满血放大", max: 100, current: 100, newMax: 150, wantCurrent: 150},
		{name: "死亡保持 0", max: 100, current: 0, newMax: 300, wantCurrent: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestState(t, tt.max)
			s.SetHealth(tt.current)
			s.SetMaxHealth(tt.newMax)

			if s.MaxHealth() != tt.newMax {
				t.Errorf("MaxHealth() = %v, want %v", s.MaxHealth(), tt.newMax)
			}
			if !almostEqual(s.CurrentHealth(), tt.wantCurrent) {
				t.Errorf("CurrentHealth() = %v, want %v", s.CurrentHealth(), tt.wantCurrent)
			}
		})
	}
}

func TestSetHealthClamps(t *testing.T) {
	tests := []struct {
		value float64
		want  float64
	}{
		{value: -10, want: 0},
		{value: 0, want: 0},
		{value: 42, want: 42},
		{value: 100, want: 100},
		{value: 250, want: 100},
	}

	for _, tt := range tests {
		s := newTestState(t, 100)
		s.SetHealth(tt.value)
		if s.CurrentHealth() != tt.want {
			t.Errorf("SetHealth(%v) = %v, want %v", tt.value, s.CurrentHealth(), tt.want)
		}
	}
}

// TestDamageScenario 100 -> 70 -> 10 -> 0，死亡事件只触发一次
func TestDamageScenario(t *testing.T) {
	const low, medium = 0.2, 0.5

	s := newTestState(t, 100)
	deaths := 0
	var last DeathEvent
	s.OnDeath(func(e DeathEvent) {
		deaths++
		last = e
	})

	s.ApplyDamage(30)
	if s.CurrentHealth() != 70 || !almostEqual(s.Ratio(), 0.7) {
		t.Fatalf("after 30 damage: current=%v ratio=%v, want 70/0.7", s.CurrentHealth(), s.Ratio())
	}
	if band := ColorBand(s.Ratio(), low, medium); band != BandFull {
		t.Errorf("band at 0.7 = %v, want FULL", band)
	}

	s.ApplyDamage(60)
	if s.CurrentHealth() != 10 || !almostEqual(s.Ratio(), 0.1) {
		t.Fatalf("after 60 damage: current=%v ratio=%v, want 10/0.1", s.CurrentHealth(), s.Ratio())
	}
	if band := ColorBand(s.Ratio(), low, medium); band != BandLow {
		t.Errorf("band at 0.1 = %v, want LOW", band)
	}
	if deaths != 0 {
		t.Errorf("death fired %d times while current > 0", deaths)
	}

	s.ApplyDamage(10)
	if s.CurrentHealth() != 0 || !s.IsDead() {
		t.Fatalf("after 10 damage: current=%v, want 0", s.CurrentHealth())
	}
	if deaths != 1 {
		t.Fatalf("death fired %d times, want 1", deaths)
	}
	if last.Damage != 10 || last.MaxHealth != 100 {
		t.Errorf("death event = %+v, want {Damage:10 MaxHealth:100}", last)
	}

	// 已死亡后继续受伤不再触发
	s.ApplyDamage(0)
	s.ApplyDamage(50)
	if deaths != 1 {
		t.Errorf("death refired on damage at zero: %d", deaths)
	}
}

func TestDeathRefiresAfterRevive(t *testing.T) {
	s := newTestState(t, 50)
	deaths := 0
	s.OnDeath(func(DeathEvent) { deaths++ })

	s.ApplyDamage(50)
	s.Heal(5)
	s.ApplyDamage(5)
	if deaths != 2 {
		t.Errorf("deaths = %d, want 2 (revived by heal)", deaths)
	}

	s.SetHealth(20)
	s.ApplyDamage(100)
	if deaths != 3 {
		t.Errorf("deaths = %d, want 3 (revived by SetHealth)", deaths)
	}
}

func TestSetHealthZeroDoesNotFireDeath(t *testing.T) {
	s := newTestState(t, 100)
	deaths := 0
	s.OnDeath(func(DeathEvent) { deaths++ })

	s.SetHealth(0)
	s.ApplyDamage(10)
	if deaths != 0 {
		t.Errorf("deaths = %d, want 0", deaths)
	}
}

func TestDeathListenersOrder(t *testing.T) {
	s := newTestState(t, 10)
	var order []int
	s.OnDeath(func(DeathEvent) { order = append(order, 1) })
	s.OnDeath(nil)
	s.OnDeath(func(DeathEvent) { order = append(order, 2) })

	s.ApplyDamage(10)
	if len(order) != 2 || order[0] != 1 || order[1] != 2 {
		t.Errorf("listener order = %v, want [1 2]", order)
	}
}

func TestSnapshotRestore(t *testing.T) {
	s := newTestState(t, 100)
	s.ApplyDamage(35)
	snap := s.Snapshot()

	restored := newTestState(t, 10)
	if err := restored.Restore(snap); err != nil {
		t.Fatalf("Restore() error: %v", err)
	}
	if restored.CurrentHealth() != 65 || restored.MaxHealth() != 100 {
		t.Errorf("restored = %v/%v, want 65/100", restored.CurrentHealth(), restored.MaxHealth())
	}

	if err := restored.Restore(Snapshot{Current: 10, Max: 0}); !errors.Is(err, ErrInvalidMaxHealth) {
		t.Errorf("Restore(max=0) error = %v, want ErrInvalidMaxHealth", err)
	}
	if restored.MaxHealth() != 100 {
		t.Errorf("failed Restore changed max to %v", restored.MaxHealth())
	}

	if err := restored.Restore(Snapshot{Current: 500, Max: 80}); err != nil {
		t.Fatalf("Restore() error: %v", err)
	}
	if restored.CurrentHealth() != 80 {
		t.Errorf("Restore clamps current: got %v, want 80", restored.CurrentHealth())
	}
}

func TestRestoreDeadDoesNotFire(t *testing.T) {
	s := newTestState(t, 100)
	deaths := 0
	s.OnDeath(func(DeathEvent) { deaths++ })

	if err := s.Restore(Snapshot{Current: 0, Max: 100}); err != nil {
		t.Fatalf("Restore() error: %v", err)
	}
	s.ApplyDamage(1)
	if deaths != 0 {
		t.Errorf("deaths = %d, want 0", deaths)
	}
}
