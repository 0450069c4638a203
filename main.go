package main

import (
	"flag"
	"log"

	"github.com/gonewx/snake/pkg/app"
	"github.com/gonewx/snake/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	verbose := flag.Bool("verbose", false, "启用详细日志输出")
	configPath := flag.String("config", "", "游戏配置文件路径（默认使用内置配置）")
	fullscreen := flag.Bool("fullscreen", false, "以全屏模式启动")
	flag.Parse()

	// 初始化嵌入资源（必须在 NewApp 之前）
	embedded.Init(dataFS)

	gameApp, err := app.NewApp(app.Config{
		Verbose:    *verbose,
		ConfigPath: *configPath,
		Fullscreen: *fullscreen,
	})
	if err != nil {
		log.Fatalf("游戏初始化失败: %v", err)
	}

	window := gameApp.GameConfig().Window
	ebiten.SetWindowSize(window.Width, window.Height)
	ebiten.SetWindowTitle(window.Title)
	if window.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}

	if err := ebiten.RunGame(gameApp); err != nil {
		log.Fatalf("游戏运行失败: %v", err)
	}
	gameApp.SaveOnExit()
}
