// healthbar-tui 在终端中运行血条演示
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"

	"github.com/decker502/healthbar/pkg/config"
	"github.com/decker502/healthbar/pkg/health"
	"github.com/decker502/healthbar/pkg/tui"
	"github.com/gdamore/tcell/v2"
)

func main() {
	configPath := flag.String("config", "", "血条配置文件路径（默认使用内置默认值）")
	logPath := flag.String("log", "", "日志文件路径（终端模式下默认丢弃日志）")
	flag.Parse()

	if err := run(*configPath, *logPath); err != nil {
		fmt.Fprintf(os.Stderr, "healthbar-tui: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath, logPath string) error {
	// 日志写到屏幕会破坏终端画面
	log.SetOutput(io.Discard)
	if logPath != "" {
		f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	cfg := config.DefaultHealthBarConfig()
	if configPath != "" {
		loaded, err := config.LoadHealthBarConfig(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	state, err := health.NewState(cfg.MaxHealth)
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	loop, err := tui.NewLoop(screen, state, cfg)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := loop.Run(ctx); err != nil && ctx.Err() == nil {
		return err
	}
	return nil
}
