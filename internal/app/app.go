package app

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/CE-Thesis-2023/ptzctl/internal/configs"
	"github.com/CE-Thesis-2023/ptzctl/internal/logger"

	"go.uber.org/zap"
)

// Run starts the daemon: it runs the factory hook, waits for an interrupt
// and then gives the shutdown hook shutdownTimeout to finish.
func Run(shutdownTimeout time.Duration, registration RegistrationFunc) {
	ctx := context.Background()
	globalConfigs := initialize(ctx)

	opts := Options{}
	for _, optioner := range registration(globalConfigs, logger.Logger()) {
		optioner(&opts)
	}

	sugar := logger.Logger().Sugar()
	sugar.Infof("Run: configs = %s", globalConfigs.String())

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	if opts.factoryHook != nil {
		if err := opts.factoryHook(); err != nil {
			sugar.Fatalf("Run: factoryHook err = %s", err)
			return
		}
	}

	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if opts.shutdownHook != nil {
		opts.shutdownHook(ctx)
	}

	logger.Close()
	log.Print("Run: shutdown complete")
}

// Exec runs fn once with the loaded configs and returns the process exit code.
func Exec(fn ExecFunc) int {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	globalConfigs := initialize(ctx)
	defer logger.Close()

	if err := fn(ctx, globalConfigs); err != nil {
		logger.SError("Exec: command failed", zap.Error(err))
		return 1
	}
	return 0
}

func initialize(ctx context.Context) *configs.Configs {
	configs.Init(ctx)
	globalConfigs := configs.Get()

	loggerConfigs := globalConfigs.Logger
	logger.Init(ctx, logger.WithGlobalConfigs(&loggerConfigs))

	return globalConfigs
}

type RegistrationFunc func(configs *configs.Configs, logger *zap.Logger) []Optioner
type ExecFunc func(ctx context.Context, configs *configs.Configs) error
type FactoryHook func() error
type ShutdownHook func(ctx context.Context)

type Options struct {
	factoryHook  FactoryHook
	shutdownHook ShutdownHook
}

type Optioner func(opts *Options)

func WithFactoryHook(cb FactoryHook) Optioner {
	return func(opts *Options) {
		opts.factoryHook = cb
	}
}

func WithShutdownHook(cb ShutdownHook) Optioner {
	return func(opts *Options) {
		opts.shutdownHook = cb
	}
}
