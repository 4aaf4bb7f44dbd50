//go:build mobile

// Package mobile 提供 ebitenmobile 绑定入口
//
// 此包用于构建 Android (.aar) 和 iOS (.xcframework) 包。
// 使用 ebitenmobile 工具构建时会自动调用 init() 函数。
//
//	ebitenmobile bind -target android -tags mobile -androidapi 23 -javapkg com.decker.healthbar -o build/android/healthbar.aar -v ./mobile
//	ebitenmobile bind -target ios -tags mobile -o build/ios/HealthBar.xcframework -v ./mobile
package mobile

import (
	"embed"
	"log"

	"github.com/hajimehoshi/ebiten/v2/mobile"

	"github.com/decker502/healthbar/pkg/app"
	"github.com/decker502/healthbar/pkg/embedded"
)

// 构建前需将 data/ 复制到 mobile/data/
//
//go:embed data/health_bar.yaml
var dataFS embed.FS

func init() {
	embedded.Init(dataFS)

	gameApp, err := app.NewApp(app.Config{Verbose: true})
	if err != nil {
		log.Fatalf("初始化失败: %v", err)
	}

	mobile.SetGame(gameApp)
}

// Dummy 是一个空导出函数，确保包被 ebitenmobile 正确识别
func Dummy() {}
