package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/decker502/healthbar/pkg/app"
	"github.com/decker502/healthbar/pkg/config"
	"github.com/decker502/healthbar/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	verbose := flag.Bool("verbose", false, "启用详细日志输出")
	configPath := flag.String("config", "", "血条配置文件路径（默认使用内置配置）")
	flag.Parse()

	embedded.Init(dataFS)

	gameApp, err := app.NewApp(app.Config{
		Verbose:    *verbose,
		ConfigPath: *configPath,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "初始化失败: %v\n", err)
		os.Exit(1)
	}

	ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
	ebiten.SetWindowTitle("Health Bar")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	runErr := ebiten.RunGame(gameApp)
	gameApp.Shutdown()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "运行错误: %v\n", runErr)
		os.Exit(1)
	}
}
