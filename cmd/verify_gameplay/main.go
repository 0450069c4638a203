// verify_gameplay 无头运行游戏模拟并逐项验证玩法
//
// 不打开窗口、不播放音频，用脚本化的指针驱动蛇完成：
// 转向、吃金币成长、暂停冻结、撞到自身结束、重新开始。
//
// 用法:
//
//	go run ./cmd/verify_gameplay [-verbose] [-config path] [-seed 1]
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"

	"github.com/gonewx/snake/pkg/components"
	"github.com/gonewx/snake/pkg/config"
	"github.com/gonewx/snake/pkg/game"
	"github.com/gonewx/snake/pkg/simulation"
	"github.com/gonewx/snake/pkg/utils"
)

const tickDelta = 1.0 / 60.0

var (
	verbose    = flag.Bool("verbose", false, "显示详细调试信息")
	configPath = flag.String("config", "", "游戏配置文件路径（默认使用内置配置）")
	seed       = flag.Int64("seed", 1, "金币生成随机种子")
)

// countingPlayer 统计各音效的播放次数
type countingPlayer struct {
	plays map[string]int
}

func (p *countingPlayer) PlaySound(id string) bool {
	p.plays[id]++
	return true
}

// check 一项验证结果
type check struct {
	name string
	ok   bool
	info string
}

type verifier struct {
	sim    *simulation.Simulation
	sounds *countingPlayer
	checks []check
}

func main() {
	flag.Parse()
	if !*verbose {
		log.SetOutput(io.Discard)
	}

	cfg := config.DefaultSnakeConfig()
	if *configPath != "" {
		loaded, err := config.LoadSnakeConfig(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}

	sounds := &countingPlayer{plays: make(map[string]int)}
	v := &verifier{
		sim: simulation.NewSimulation(cfg, simulation.Options{
			Sounds: sounds,
			Rand:   rand.New(rand.NewSource(*seed)),
		}),
		sounds: sounds,
	}

	v.verifySteering()
	v.verifyCoinGrowth(5)
	v.verifyPauseFreezes()
	v.verifySelfCollision()
	v.verifyReset()

	failed := 0
	fmt.Println("=== Gameplay verification ===")
	for _, c := range v.checks {
		status := "PASS"
		if !c.ok {
			status = "FAIL"
			failed++
		}
		fmt.Printf("[%s] %-28s %s\n", status, c.name, c.info)
	}
	fmt.Printf("ticks=%d best=%d coinSounds=%d gameOverSounds=%d\n",
		v.sim.Ticks(), v.sim.Session().BestScore,
		sounds.plays[config.SoundCoin], sounds.plays[config.SoundGameOver])

	if failed > 0 {
		fmt.Printf("%d of %d checks failed\n", failed, len(v.checks))
		os.Exit(1)
	}
	fmt.Println("All checks passed")
}

func (v *verifier) record(name string, ok bool, format string, args ...interface{}) {
	v.checks = append(v.checks, check{name: name, ok: ok, info: fmt.Sprintf(format, args...)})
}

func (v *verifier) tick(n int) {
	for i := 0; i < n; i++ {
		v.sim.Tick(tickDelta)
		if *verbose && v.sim.Ticks()%30 == 0 {
			head, _ := v.sim.HeadPosition()
			s := v.sim.Session()
			log.Printf("[verify] tick=%d state=%s score=%d chain=%d entities=%d head=(%.1f, %.1f)",
				v.sim.Ticks(), s.State, s.Score, s.ChainLength(), v.sim.EntityManager().Count(), head.X, head.Y)
		}
	}
}

func (v *verifier) head() utils.Vec2 {
	p, _ := v.sim.HeadPosition()
	return p
}

// verifySteering 指针在右侧时蛇头向右移动
func (v *verifier) verifySteering() {
	start := v.head()
	v.sim.SetPointer(utils.Vec2{X: 10000, Y: start.Y})
	v.tick(30)
	end := v.head()
	v.record("steer toward pointer", end.X > start.X && end.Y == start.Y,
		"head moved from %.1f to %.1f", start.X, end.X)
}

// verifyCoinGrowth 在蛇头前方放置金币，每个金币加一分并增加一节
func (v *verifier) verifyCoinGrowth(coins int) {
	s := v.sim.Session()
	scoreBefore, lengthBefore := s.Score, s.ChainLength()

	for i := 0; i < coins; i++ {
		v.sim.SpawnCoin(v.head())
		v.tick(2)
	}

	wantSpeed := s.BaseSpeed + float64(coins)*s.SpeedIncrement
	v.record("coin pickup scores", s.Score == scoreBefore+coins,
		"score %d -> %d", scoreBefore, s.Score)
	v.record("coin pickup grows chain", s.ChainLength() == lengthBefore+coins,
		"chain %d -> %d", lengthBefore, s.ChainLength())
	v.record("coin pickup speeds up", s.SnakeSpeed == wantSpeed,
		"speed %.1f (expected %.1f)", s.SnakeSpeed, wantSpeed)
}

// verifyPauseFreezes 暂停期间蛇头不动
func (v *verifier) verifyPauseFreezes() {
	v.sim.TogglePause()
	before := v.head()
	v.tick(60)
	after := v.head()
	paused := v.sim.State() == game.StatePaused
	v.sim.TogglePause()
	v.record("pause freezes simulation", paused && before == after,
		"head (%.1f, %.1f) -> (%.1f, %.1f)", before.X, before.Y, after.X, after.Y)
}

// verifySelfCollision 等待新节段免疫结束后来回掉头，直到撞上自身
func (v *verifier) verifySelfCollision() {
	v.tick(int(v.sim.Config().Snake.ImmunitySeconds/tickDelta) + 10)

	scoreAtRun := v.sim.Score()
	const maxTicks = 1200
	dir := -1.0
	for i := 0; i < maxTicks && v.sim.State() != game.StateGameOver; i += 10 {
		p := v.head()
		v.sim.SetPointer(utils.Vec2{X: p.X + dir*10000, Y: p.Y})
		dir = -dir
		v.tick(10)
	}

	s := v.sim.Session()
	v.record("self collision ends run", s.State == game.StateGameOver,
		"state=%s lastRun=%d", s.State, s.LastRunScore)
	if s.State != game.StateGameOver {
		return
	}
	v.record("game over records score", s.LastRunScore >= scoreAtRun && s.BestScore >= s.LastRunScore,
		"lastRun=%d best=%d", s.LastRunScore, s.BestScore)
	em := v.sim.EntityManager()
	coins := len(em.GetEntitiesOfKind(components.KindCoin))
	v.record("game over clears board", s.ChainLength() == 1 && em.Count() == 1+coins && s.ResetControlVisible,
		"chain=%d entities=%d coins=%d resetVisible=%v", s.ChainLength(), em.Count(), coins, s.ResetControlVisible)
	v.record("game over sound once", v.sounds.plays[config.SoundGameOver] == 1,
		"played %d times", v.sounds.plays[config.SoundGameOver])
}

// verifyReset 重新开始后回到初始状态
func (v *verifier) verifyReset() {
	v.sim.Reset()
	s := v.sim.Session()
	v.record("reset restores run", s.State == game.StateInGame && s.Score == 0 &&
		s.ChainLength() == 1 && s.SnakeSpeed == s.BaseSpeed && !s.ResetControlVisible,
		"state=%s score=%d chain=%d speed=%.1f", s.State, s.Score, s.ChainLength(), s.SnakeSpeed)

	before := v.head()
	v.sim.SetPointer(utils.Vec2{X: before.X, Y: before.Y + 10000})
	v.tick(10)
	v.record("snake moves after reset", v.head().Y > before.Y,
		"head y %.1f -> %.1f", before.Y, v.head().Y)
}
