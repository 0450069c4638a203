// snake-term 在终端中运行游戏
//
// 使用 tcell 渲染并读取鼠标，使用 beep 播放合成音效。
// 每个字符单元格对应 cellWidth x cellHeight 个游戏单位。
//
// 用法:
//
//	go run ./cmd/snake-term [-config data/config/snake.yaml] [-log snake-term.log]
//
// 按键: Esc/p 暂停, q/Ctrl-C 退出, 鼠标左键点击 "Play Again" 重新开始。
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/gonewx/snake/pkg/config"
	"github.com/gonewx/snake/pkg/game"
	"github.com/gonewx/snake/pkg/simulation"
)

const (
	cellWidth    = 10.0 // 每列对应的游戏单位
	cellHeight   = 20.0 // 每行对应的游戏单位
	tickInterval = 16 * time.Millisecond
)

var (
	configPath = flag.String("config", "", "游戏配置文件路径（默认使用内置配置）")
	logPath    = flag.String("log", "", "日志输出文件（终端模式下日志不能写到屏幕）")
	mute       = flag.Bool("mute", false, "禁用音效")
)

func main() {
	flag.Parse()

	if err := setupLogging(*logPath); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open log file: %v\n", err)
		os.Exit(1)
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to init screen: %v\n", err)
		os.Exit(1)
	}
	screen.EnableMouse()
	screen.HideCursor()

	var sounds *beepPlayer
	if !*mute {
		sounds = newBeepPlayer(cfg.Sounds)
		if err := sounds.Init(); err != nil {
			// 无音频设备时继续运行
			log.Printf("[snake-term] Audio initialization failed: %v", err)
		}
	}

	cols, rows := screen.Size()
	input := newTermInput(cols, rows)
	recorder := game.NewHighScoreManager(game.OpenStorage(game.StorageAppName))

	opts := simulation.Options{
		Input:    input,
		Recorder: recorder,
		Rand:     rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	if sounds != nil {
		opts.Sounds = sounds
	}
	sim := simulation.NewSimulation(cfg, opts)

	run(screen, sim, input)

	if sounds != nil {
		sounds.Close()
	}
	screen.Fini()
	fmt.Printf("Best score: %d\n", recorder.BestScore())
}

// run 主循环：事件协程把 tcell 事件送入通道，定时器驱动模拟和绘制
func run(screen tcell.Screen, sim *simulation.Simulation, input *termInput) {
	ticker := time.NewTicker(tickInterval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(eventChan)
				return
			}
			eventChan <- ev
		}
	}()

	last := time.Now()
	for {
		select {
		case ev, ok := <-eventChan:
			if !ok {
				return
			}
			if !input.HandleEvent(ev) {
				return
			}
			if _, resized := ev.(*tcell.EventResize); resized {
				screen.Sync()
			}

		case now := <-ticker.C:
			dt := now.Sub(last).Seconds()
			last = now
			sim.Tick(dt)
			input.EndTick()
			draw(screen, sim)
		}
	}
}

func setupLogging(path string) error {
	if path == "" {
		log.SetOutput(io.Discard)
		return nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return err
	}
	log.SetOutput(f)
	return nil
}

func loadConfig(path string) (*config.SnakeConfig, error) {
	if path == "" {
		return config.DefaultSnakeConfig(), nil
	}
	return config.LoadSnakeConfig(path)
}
