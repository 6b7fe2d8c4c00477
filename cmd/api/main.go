package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"vietqr-system/application"
	"vietqr-system/utils/configs"
	"vietqr-system/utils/gpooling"
	logger2 "vietqr-system/utils/logger"
)

const bankReloadInterval = 10 * time.Minute

func main() {
	config, err := configs.LoadConfig()
	if err != nil {
		panic(err)
	}
	lg, err := logger2.NewLogger(config.ENV)
	if err != nil {
		panic(err)
	}
	defer lg.Sync()

	poolGoRoutine, err := gpooling.NewPooling(config.MaxPoolSize)
	if err != nil {
		lg.With(zap.Error(err)).Fatal("init_pool_fail")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	app, err := application.NewQRApplication(ctx, config, lg, poolGoRoutine)
	if err != nil {
		lg.With(zap.Error(err)).Fatal("init_application_fail")
	}

	// bank directory changes are picked up without a restart
	_ = poolGoRoutine.Submit(func() {
		ticker := time.NewTicker(bankReloadInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if err := app.LoadBanks(ctx); err != nil {
					lg.With(zap.Error(err)).Warn("reload_banks_fail")
				}
			}
		}
	})

	lg.With(zap.Int("max_pool_size", config.MaxPoolSize)).Info("starting vietqr decode worker...")

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	<-sig

	lg.Warn("shutting down decode worker...")
	cancel()
	if app.Queue != nil {
		_ = app.Queue.Close()
	}
	poolGoRoutine.Release()
}
