package main

import (
	"context"
	"log"
	"os"

	"go.uber.org/zap"

	"salonbook/internal/config"
	"salonbook/internal/console"
	"salonbook/internal/database"
	"salonbook/internal/modules/booking"
	"salonbook/internal/modules/catalog"
	"salonbook/internal/modules/schedule"
	"salonbook/internal/pkg/logger"
	"salonbook/internal/repository"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("config: ", err)
	}

	lg, err := logger.New(cfg.AppEnv, cfg.LogLevel, cfg.LogOutput)
	if err != nil {
		log.Fatal("logger: ", err)
	}
	defer func() { _ = lg.Sync() }()

	if err := run(context.Background(), cfg, lg); err != nil {
		lg.Error("salon stopped with error", zap.Error(err))
		_ = lg.Sync()
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, lg *zap.Logger) error {
	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer func() {
		if err := database.Close(db); err != nil {
			lg.Warn("close database", zap.Error(err))
		}
	}()

	if err := database.Migrate(ctx, db, lg); err != nil {
		return err
	}
	lg.Info("database ready",
		zap.Bool("postgres", database.IsPostgres(cfg.DatabaseURL)),
		zap.String("client_strategy", string(cfg.Strategy())),
		zap.String("day_off_policy", string(cfg.Policy())),
	)

	store := repository.NewStore(db)
	catalogService := catalog.NewService(store, lg.Named("catalog"))
	scheduleService := schedule.NewService(store.Masters, store.Slots, cfg.Policy(), lg.Named("schedule"))
	bookingService := booking.NewService(store, cfg.Strategy(), lg.Named("booking"))

	c := console.New(console.Options{
		In:       os.Stdin,
		Out:      os.Stdout,
		StopWord: cfg.StopWord,
		Catalog:  catalogService,
		Schedule: scheduleService,
		Bookings: bookingService,
		Log:      lg.Named("console"),
	})
	return c.Run(ctx)
}
