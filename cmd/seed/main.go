package main

import (
	"context"
	"flag"
	"log"
	"time"

	"go.uber.org/zap"

	"salonbook/internal/config"
	"salonbook/internal/database"
	"salonbook/internal/domain"
	"salonbook/internal/modules/catalog"
	"salonbook/internal/modules/schedule"
	"salonbook/internal/pkg/logger"
	"salonbook/internal/repository"
)

type seedProcedure struct {
	title   string
	price   int64
	masters []int
}

func main() {
	year := flag.Int("year", 2026, "schedule year")
	month := flag.Int("month", 3, "schedule month")
	clean := flag.Bool("clean", false, "delete existing data first")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("config: ", err)
	}
	lg, err := logger.New(cfg.AppEnv, "info", cfg.LogOutput)
	if err != nil {
		log.Fatal("logger: ", err)
	}
	defer func() { _ = lg.Sync() }()

	ctx := context.Background()
	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		lg.Fatal("DB connection failed", zap.Error(err))
	}
	defer func() { _ = database.Close(db) }()

	if err := database.Migrate(ctx, db, lg); err != nil {
		lg.Fatal("migration failed", zap.Error(err))
	}

	if *clean {
		lg.Info("cleaning old data")
		// child tables first
		for _, table := range []string{"bookings", "clients", "schedule_slots", "master_procedures", "procedures", "masters"} {
			if err := db.Exec("DELETE FROM " + table).Error; err != nil {
				lg.Fatal("cleanup failed", zap.String("table", table), zap.Error(err))
			}
		}
	}

	store := repository.NewStore(db)
	catalogService := catalog.NewService(store, lg)
	scheduleService := schedule.NewService(store.Masters, store.Slots, cfg.Policy(), lg)

	masters := []catalog.AddMasterRequest{
		{Name: "Olena Koval", Specialization: "Colorist"},
		{Name: "Anna Bondar", Specialization: "Barber"},
		{Name: "Iryna Melnyk", Specialization: "Nail artist"},
	}
	ids := make([]int64, 0, len(masters))
	for _, req := range masters {
		m, err := catalogService.AddMaster(ctx, req)
		if err != nil {
			lg.Fatal("add master failed", zap.String("name", req.Name), zap.Error(err))
		}
		ids = append(ids, m.ID)
	}

	procedures := []seedProcedure{
		{title: "Haircut", price: 400, masters: []int{0, 1}},
		{title: "Coloring", price: 1200, masters: []int{0}},
		{title: "Beard trim", price: 250, masters: []int{1}},
		{title: "Manicure", price: 500, masters: []int{2}},
		{title: "Pedicure", price: 650, masters: []int{2}},
	}
	for _, p := range procedures {
		linked := make([]int64, 0, len(p.masters))
		for _, i := range p.masters {
			linked = append(linked, ids[i])
		}
		if _, err := catalogService.AddProcedure(ctx, catalog.AddProcedureRequest{Title: p.title, Price: p.price, MasterIDs: linked}); err != nil {
			lg.Fatal("add procedure failed", zap.String("title", p.title), zap.Error(err))
		}
	}

	for _, id := range ids {
		res, err := scheduleService.GenerateMonth(ctx, schedule.GenerateRequest{
			MasterID: id,
			Year:     *year,
			Month:    *month,
			Times:    []string{"10:00", "12:00", "14:00", "16:00"},
		})
		if err != nil {
			lg.Fatal("generate schedule failed", zap.Int64("master_id", id), zap.Error(err))
		}

		var sundays []int
		for day := 1; day <= domain.DaysIn(*year, *month); day++ {
			slot := domain.ScheduleSlot{WorkDate: domain.FormatDate(*year, *month, day)}
			if d, err := slot.Date(); err == nil && d.Weekday() == time.Sunday {
				sundays = append(sundays, day)
			}
		}
		if _, err := scheduleService.MarkDaysOff(ctx, schedule.DaysOffRequest{MasterID: id, Year: *year, Month: *month, Days: sundays}); err != nil {
			lg.Fatal("mark days off failed", zap.Int64("master_id", id), zap.Error(err))
		}
		lg.Info("schedule seeded", zap.Int64("master_id", id), zap.Int("slots", res.Created), zap.Ints("days_off", sundays))
	}

	lg.Info("seed completed", zap.Int("masters", len(ids)), zap.Int("procedures", len(procedures)))
}
