package components

import (
	"image/color"

	"github.com/decker502/healthbar/pkg/health"
)

// HealthBarComponent 玩家血条组件（纯数据，无方法）
//
// 双层追踪：
//   - 目标比例：Health.Ratio()，数值变化后立即更新
//   - 显示比例：DisplayedRatio，由 HealthBarSystem 每帧平滑追踪，用于渲染
type HealthBarComponent struct {
	// 血条所属的生命值状态（构造时注入，不可为 nil）
	Health *health.State

	DisplayedRatio float64     // 显示比例 [0, 1]
	Band           health.Band // 当前颜色档位
	FillColor      color.RGBA  // 填充色（随档位变化）
	Background     color.RGBA  // 底色

	// 位置配置（屏幕坐标）
	X      float64
	Y      float64
	Width  float64
	Height float64

	ShowText bool // 是否显示 "HP: x/y"
}

// DeathBannerComponent 死亡提示组件
// 死亡事件触发时创建，到期后由 DeathBannerSystem 销毁
type DeathBannerComponent struct {
	Text     string
	Elapsed  float64 // 已显示时间（秒）
	Duration float64 // 总显示时长（秒）
}
