package scenes

import (
	"testing"

	"github.com/decker502/healthbar/pkg/components"
	"github.com/decker502/healthbar/pkg/config"
	"github.com/decker502/healthbar/pkg/ecs"
	"github.com/decker502/healthbar/pkg/game"
	"github.com/decker502/healthbar/pkg/health"
	"github.com/decker502/healthbar/pkg/systems"
)

func newTestScene(t *testing.T) *HealthScene {
	t.Helper()
	scene, err := NewHealthScene(config.DefaultHealthBarConfig(), game.NewAudioManager(nil, nil), game.NewHealthSaveManager(nil))
	if err != nil {
		t.Fatalf("NewHealthScene() error: %v", err)
	}
	return scene
}

func TestNewHealthSceneNilConfig(t *testing.T) {
	if _, err := NewHealthScene(nil, nil, nil); err == nil {
		t.Error("expected error for nil config")
	}
}

func TestHealthSceneStartsAtFullHealth(t *testing.T) {
	scene := newTestScene(t)

	if scene.State().CurrentHealth() != 100 || scene.State().MaxHealth() != 100 {
		t.Errorf("HP %v/%v, want 100/100", scene.State().CurrentHealth(), scene.State().MaxHealth())
	}

	bars := ecs.GetEntitiesWith1[*components.HealthBarComponent](scene.EntityManager())
	if len(bars) != 1 {
		t.Fatalf("health bar entities = %d, want 1", len(bars))
	}
}

// TestHealthSceneDeathBanner 死亡后出现提示，到期后消失
func TestHealthSceneDeathBanner(t *testing.T) {
	scene := newTestScene(t)
	cfg := config.DefaultHealthBarConfig()

	for i := 0; i < 10; i++ {
		systems.ApplyHealthAction(scene.State(), systems.ActionDamage, cfg)
	}
	// 死亡后继续受伤不再重复提示
	systems.ApplyHealthAction(scene.State(), systems.ActionDamage, cfg)

	if scene.DeathCount() != 1 {
		t.Fatalf("DeathCount() = %d, want 1", scene.DeathCount())
	}

	banners := ecs.GetEntitiesWith1[*components.DeathBannerComponent](scene.EntityManager())
	if len(banners) != 1 {
		t.Fatalf("death banners = %d, want 1", len(banners))
	}

	// 推进到提示过期
	for elapsed := 0.0; elapsed <= config.DeathBannerDuration+0.1; elapsed += 1.0 / 60 {
		scene.Step(1.0 / 60)
	}
	banners = ecs.GetEntitiesWith1[*components.DeathBannerComponent](scene.EntityManager())
	if len(banners) != 0 {
		t.Errorf("death banners after expiry = %d, want 0", len(banners))
	}
}

func TestHealthSceneStepAnimatesBar(t *testing.T) {
	scene := newTestScene(t)
	scene.State().ApplyDamage(50)

	scene.Step(1.0 / 60)

	bars := ecs.GetEntitiesWith1[*components.HealthBarComponent](scene.EntityManager())
	bar, _ := ecs.GetComponent[*components.HealthBarComponent](scene.EntityManager(), bars[0])
	if bar.DisplayedRatio >= 1 || bar.DisplayedRatio <= 0.5 {
		t.Errorf("DisplayedRatio = %v, want between 0.5 and 1 after one frame", bar.DisplayedRatio)
	}
	if bar.Band != health.BandMedium {
		t.Errorf("Band = %v, want MEDIUM", bar.Band)
	}
}

func TestHealthSceneSaveOnExitDegraded(t *testing.T) {
	scene := newTestScene(t)
	if !scene.SaveOnExit() {
		t.Error("SaveOnExit() = false in degraded mode")
	}
}

// TestHealthSceneApplyActionHitSound 只有非致死且实际扣血的伤害触发受击音效
func TestHealthSceneApplyActionHitSound(t *testing.T) {
	scene := newTestScene(t)

	steps := []struct {
		name    string
		action  systems.HealthAction
		wantHit bool
		wantHP  float64
	}{
		{name: "治疗满血", action: systems.ActionHeal, wantHit: false, wantHP: 100},
		{name: "普通伤害", action: systems.ActionDamage, wantHit: true, wantHP: 90},
		{name: "回满", action: systems.ActionReset, wantHit: false, wantHP: 100},
	}
	for _, st := range steps {
		if got := scene.ApplyAction(st.action); got != st.wantHit {
			t.Errorf("%s: ApplyAction(%v) = %v, want %v", st.name, st.action, got, st.wantHit)
		}
		if hp := scene.State().CurrentHealth(); hp != st.wantHP {
			t.Errorf("%s: HP = %v, want %v", st.name, hp, st.wantHP)
		}
	}

	scene.State().SetHealth(10)
	if scene.ApplyAction(systems.ActionDamage) {
		t.Error("lethal damage should play the death sound, not the hit sound")
	}
	if scene.DeathCount() != 1 {
		t.Errorf("DeathCount() = %d, want 1", scene.DeathCount())
	}
	if scene.ApplyAction(systems.ActionDamage) {
		t.Error("damage at zero health should not play the hit sound")
	}
}
