// kokaton-tui 终端版本，不需要图形环境和图像文件
//
// 用法:
//
//	go run ./cmd/kokaton-tui [-config data/tuning.yaml] [-log kokaton.log] [-tps 100] [-strict]
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"

	"github.com/gdamore/tcell/v2"
	"github.com/gonewx/kokaton/pkg/config"
	"github.com/gonewx/kokaton/pkg/game"
	"github.com/gonewx/kokaton/pkg/terminal"
)

var (
	configPath = flag.String("config", "", "调参配置文件路径（默认使用内置默认值）")
	logPath    = flag.String("log", "", "日志文件路径（终端被画面占用，默认不输出日志）")
	tps        = flag.Int("tps", 0, "每秒逻辑帧数（0 表示使用配置值）")
	strict     = flag.Bool("strict", false, "状态机契约被破坏时立即 panic")
)

func main() {
	flag.Parse()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "kokaton-tui: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	closeLog, err := setupLog(*logPath)
	if err != nil {
		return err
	}
	defer closeLog()

	tuning := config.DefaultTuningConfig()
	if *configPath != "" {
		if tuning, err = config.LoadTuningConfig(*configPath); err != nil {
			return err
		}
	}
	if *tps > 0 {
		tuning.Loop.TPS = *tps
	}
	if *strict {
		tuning.Debug.Strict = true
	}

	poller, err := terminal.NewKeyPoller(tuning.Keys, terminal.DefaultHoldDuration)
	if err != nil {
		return fmt.Errorf("按键配置无效: %w", err)
	}

	world, err := game.NewWorld(terminal.NewGlyphSpriteLoader(), tuning)
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()
	screen.HideCursor()

	go poller.Listen(screen)

	clock := terminal.NewTickerClock(tuning.Loop.TPS)
	defer clock.Stop()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	log.Printf("[Main] 终端前端启动: tps=%d", tuning.Loop.TPS)
	err = game.Run(ctx, world, poller, terminal.NewScreenRenderer(screen), clock)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// setupLog 日志写入文件，未指定时丢弃
func setupLog(path string) (func(), error) {
	if path == "" {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	log.SetOutput(f)
	return func() { f.Close() }, nil
}
