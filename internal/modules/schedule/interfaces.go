package schedule

import (
	"context"

	"salonbook/internal/domain"
)

type MasterRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Master, error)
}

type SlotRepository interface {
	Create(ctx context.Context, slot *domain.ScheduleSlot) error
	GetByID(ctx context.Context, id int64) (*domain.ScheduleSlot, error)
	ListAvailable(ctx context.Context, masterID int64) ([]domain.ScheduleSlot, error)
	MarkDayOff(ctx context.Context, masterID int64, date string, keepBooked bool) (int64, error)
	CountByStatus(ctx context.Context, masterID int64, date string, status domain.SlotStatus) (int64, error)
}
