package run

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/Master08s/looks-blog/builder/config"
	"github.com/Master08s/looks-blog/builder/utils"
)

// Run executes a build from command-line arguments and returns the process
// exit code.
func Run(args []string) int {
	cfg, err := config.Load(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ Build failed: %v\n", err)
		return 1
	}
	logger := utils.NewLogger(os.Stderr, cfg.Log.Level, cfg.Log.Format)

	b, err := NewBuilder(cfg, logger)
	if err != nil {
		logger.Error("Invalid configuration", "error", err)
		fmt.Fprintf(os.Stderr, "❌ Build failed: %v\n", err)
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m, err := b.Build(ctx)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			fmt.Fprintln(os.Stderr, "🛑 Build cancelled")
			return 130
		}
		logger.Error("Build failed", "error", err)
		fmt.Fprintf(os.Stderr, "❌ Build failed: %v\n", err)
		return 1
	}

	fmt.Println("✅ Blog build completed successfully!")
	m.Print()
	return 0
}
