package config

// ==============================
// 血条布局配置常量
// ==============================

const (
	// ----------------
	// 窗口尺寸
	// ----------------
	GameWindowWidth  = 800 // 游戏逻辑宽度
	GameWindowHeight = 600 // 游戏逻辑高度

	// ----------------
	// 血条位置（屏幕左上角）
	// ----------------
	HealthBarX      float64 = 20  // 血条左边缘
	HealthBarY      float64 = 20  // 血条上边缘
	HealthBarWidth  float64 = 240 // 血条宽度
	HealthBarHeight float64 = 24  // 血条高度

	HealthBarBorderWidth float32 = 2 // 边框宽度

	// ----------------
	// 文本
	// ----------------
	HealthTextOffsetX float64 = 8 // 文本相对血条左边缘的偏移
	HealthTextOffsetY float64 = 4 // 文本相对血条上边缘的偏移

	// ----------------
	// 死亡提示
	// ----------------
	DeathBannerDuration float64 = 2.5 // 死亡提示显示时长（秒）

	// HealthBarSnapEpsilon 显示比例与目标差值小于此值时直接对齐
	HealthBarSnapEpsilon float64 = 1e-3

	// ----------------
	// 终端血条
	// ----------------
	TerminalBarWidth = 40 // 终端血条格数
)

// DebugHealthBar 调试模式开关（启用后显示目标比例与显示比例）
const DebugHealthBar bool = false
