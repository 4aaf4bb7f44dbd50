// Package app 提供应用的核心包装器
//
// 该包将初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"

	"github.com/decker502/healthbar/pkg/config"
	"github.com/decker502/healthbar/pkg/game"
	"github.com/decker502/healthbar/pkg/scenes"
	"github.com/decker502/healthbar/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/quasilyte/gdata/v2"
)

// AppName gdata 存储目录名
const AppName = "healthbar"

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// ConfigPath 血条配置路径，为空时使用嵌入的 data/health_bar.yaml
	ConfigPath string
}

// App 是应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager             *game.SceneManager
	settingsManager          *game.SettingsManager
	verbose                  bool
	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入资源。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	configPath := cfg.ConfigPath
	if configPath == "" {
		configPath = config.DefaultHealthBarConfigPath
	}
	healthBarConfig, err := config.LoadHealthBarConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("血条配置加载失败: %w", err)
	}
	log.Printf("[Config] 加载血条配置: %s", configPath)

	// 存档不可用时降级为仅内存模式
	gdataManager := openGdata()

	settingsManager := game.NewSettingsManager(gdataManager)
	audioManager := game.NewAudioManager(audio.NewContext(game.SampleRate), settingsManager)
	saveManager := game.NewHealthSaveManager(gdataManager)

	sceneManager := game.NewSceneManager()
	sceneManager.SetSceneFactory(func() (game.Scene, error) {
		return scenes.NewHealthScene(healthBarConfig, audioManager, saveManager)
	})

	scene, err := scenes.NewHealthScene(healthBarConfig, audioManager, saveManager)
	if err != nil {
		return nil, fmt.Errorf("场景创建失败: %w", err)
	}
	sceneManager.SwitchTo(scene)

	if settingsManager.GetSettings().Fullscreen {
		ebiten.SetFullscreen(true)
	}

	return &App{
		sceneManager:    sceneManager,
		settingsManager: settingsManager,
		verbose:         cfg.Verbose,
	}, nil
}

// openGdata 打开 gdata 存储，失败时返回 nil
func openGdata() *gdata.Manager {
	if err := utils.EnsureStorageDir(); err != nil {
		log.Printf("[App] Warning: %v", err)
	}
	manager, err := gdata.Open(gdata.Config{
		AppName: AppName,
	})
	if err != nil {
		log.Printf("[App] Warning: gdata unavailable: %v (saves disabled)", err)
		return nil
	}
	return manager
}

// Update 更新逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		if ebiten.IsFullscreen() {
			ebiten.SetFullscreen(false)
			if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
				ebiten.RestoreWindow()
			}
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
			a.settingsManager.SetFullscreen(false)
		} else {
			ebiten.SetFullscreen(true)
			a.settingsManager.SetFullscreen(true)
		}
	}

	// F5 重新加载上次保存的生命值
	if inpututil.IsKeyJustPressed(ebiten.KeyF5) {
		a.sceneManager.Restart()
	}

	deltaTime := 1.0 / float64(ebiten.TPS())
	a.sceneManager.Update(deltaTime)
	return nil
}

// Draw 绘制画面
// 详细日志模式下在左下角显示 TPS/FPS
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)

	if a.IsVerbose() {
		ebitenutil.DebugPrintAt(screen,
			fmt.Sprintf("TPS: %.0f  FPS: %.0f", ebiten.ActualTPS(), ebiten.ActualFPS()),
			8, config.GameWindowHeight-20)
	}
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回逻辑屏幕尺寸
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.GameWindowWidth, config.GameWindowHeight
}

// Shutdown 保存场景状态和设置
// 在窗口关闭后调用
func (a *App) Shutdown() {
	if !a.sceneManager.SaveCurrentScene() {
		log.Printf("[App] Warning: scene state not saved")
	}
	if err := a.settingsManager.Save(); err != nil {
		log.Printf("[App] Warning: %v", err)
	}
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
