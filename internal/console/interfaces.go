package console

import (
	"context"

	"salonbook/internal/domain"
	"salonbook/internal/modules/booking"
	"salonbook/internal/modules/catalog"
	"salonbook/internal/modules/schedule"
)

type CatalogService interface {
	AddMaster(ctx context.Context, req catalog.AddMasterRequest) (*domain.Master, error)
	ListMasters(ctx context.Context) ([]domain.Master, error)
	AddProcedure(ctx context.Context, req catalog.AddProcedureRequest) (*domain.Procedure, error)
	Showcase(ctx context.Context) ([]domain.MasterOffer, error)
	ProceduresOf(ctx context.Context, masterID int64) ([]domain.Procedure, error)
}

type ScheduleService interface {
	GenerateMonth(ctx context.Context, req schedule.GenerateRequest) (*schedule.GenerateResult, error)
	MarkDaysOff(ctx context.Context, req schedule.DaysOffRequest) ([]schedule.DayOffResult, error)
	Available(ctx context.Context, masterID int64) ([]domain.ScheduleSlot, error)
	FindAvailable(ctx context.Context, masterID, slotID int64) (*domain.ScheduleSlot, error)
}

type BookingService interface {
	Reserve(ctx context.Context, req booking.ReserveRequest) (*domain.Booking, error)
	Pending(ctx context.Context) ([]domain.BookingDetails, error)
	Confirm(ctx context.Context, bookingID int64) error
}
