package repository

import (
	"context"

	"gorm.io/gorm"

	"salonbook/internal/domain"
)

type ScheduleRepository struct {
	db *gorm.DB
}

func NewScheduleRepository(db *gorm.DB) *ScheduleRepository {
	return &ScheduleRepository{db: db}
}

type slotModel struct {
	ID          int64  `gorm:"column:id;primaryKey"`
	MasterID    int64  `gorm:"column:master_id"`
	WorkDate    string `gorm:"column:work_date"`
	WorkTime    string `gorm:"column:work_time"`
	IsAvailable int    `gorm:"column:is_available"`
}

func (slotModel) TableName() string { return "schedule_slots" }

func toDomainSlot(m slotModel) domain.ScheduleSlot {
	return domain.ScheduleSlot{
		ID:          m.ID,
		MasterID:    m.MasterID,
		WorkDate:    m.WorkDate,
		WorkTime:    m.WorkTime,
		IsAvailable: domain.SlotStatus(m.IsAvailable),
	}
}

// Create inserts one slot. An existing (master, date, time) yields *domain.DuplicateSlotError.
func (r *ScheduleRepository) Create(ctx context.Context, slot *domain.ScheduleSlot) error {
	m := slotModel{
		MasterID:    slot.MasterID,
		WorkDate:    slot.WorkDate,
		WorkTime:    slot.WorkTime,
		IsAvailable: int(slot.IsAvailable),
	}

	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		if isUniqueConstraintError(err) {
			return &domain.DuplicateSlotError{MasterID: slot.MasterID, Date: slot.WorkDate, Time: slot.WorkTime}
		}
		return domain.StoreFailure("create slot", err)
	}
	slot.ID = m.ID
	return nil
}

func (r *ScheduleRepository) GetByID(ctx context.Context, id int64) (*domain.ScheduleSlot, error) {
	var m slotModel
	err := r.db.WithContext(ctx).First(&m, id).Error
	if err != nil {
		if isNotFound(err) {
			return nil, domain.ErrNotFound
		}
		return nil, domain.StoreFailure("get slot", err)
	}
	slot := toDomainSlot(m)
	return &slot, nil
}

// ListAvailable returns the master's available slots ordered by id.
func (r *ScheduleRepository) ListAvailable(ctx context.Context, masterID int64) ([]domain.ScheduleSlot, error) {
	var rows []slotModel
	err := r.db.WithContext(ctx).
		Where("master_id = ? AND is_available = ?", masterID, int(domain.SlotAvailable)).
		Order("id").
		Find(&rows).Error
	if err != nil {
		return nil, domain.StoreFailure("list available slots", err)
	}

	out := make([]domain.ScheduleSlot, 0, len(rows))
	for _, m := range rows {
		out = append(out, toDomainSlot(m))
	}
	return out, nil
}

// ListByDate returns every slot of the master on date ordered by id.
func (r *ScheduleRepository) ListByDate(ctx context.Context, masterID int64, date string) ([]domain.ScheduleSlot, error) {
	var rows []slotModel
	err := r.db.WithContext(ctx).
		Where("master_id = ? AND work_date = ?", masterID, date).
		Order("id").
		Find(&rows).Error
	if err != nil {
		return nil, domain.StoreFailure("list slots by date", err)
	}

	out := make([]domain.ScheduleSlot, 0, len(rows))
	for _, m := range rows {
		out = append(out, toDomainSlot(m))
	}
	return out, nil
}

// MarkBooked flips an available slot of the master to booked. Any other state,
// or a slot of another master, yields domain.ErrSlotUnavailable.
func (r *ScheduleRepository) MarkBooked(ctx context.Context, slotID, masterID int64) error {
	tx := r.db.WithContext(ctx).
		Model(&slotModel{}).
		Where("id = ? AND master_id = ? AND is_available = ?", slotID, masterID, int(domain.SlotAvailable)).
		Update("is_available", int(domain.SlotBooked))
	if tx.Error != nil {
		return domain.StoreFailure("book slot", tx.Error)
	}
	if tx.RowsAffected == 0 {
		return domain.ErrSlotUnavailable
	}
	return nil
}

// MarkDayOff moves the master's slots on date to day off and returns how many changed.
// With keepBooked, booked slots are left as they are.
func (r *ScheduleRepository) MarkDayOff(ctx context.Context, masterID int64, date string, keepBooked bool) (int64, error) {
	q := r.db.WithContext(ctx).
		Model(&slotModel{}).
		Where("master_id = ? AND work_date = ?", masterID, date)
	if keepBooked {
		q = q.Where("is_available <> ?", int(domain.SlotBooked))
	}

	tx := q.Update("is_available", int(domain.SlotDayOff))
	if tx.Error != nil {
		return 0, domain.StoreFailure("mark day off", tx.Error)
	}
	return tx.RowsAffected, nil
}

func (r *ScheduleRepository) CountByStatus(ctx context.Context, masterID int64, date string, status domain.SlotStatus) (int64, error) {
	var cnt int64
	err := r.db.WithContext(ctx).
		Model(&slotModel{}).
		Where("master_id = ? AND work_date = ? AND is_available = ?", masterID, date, int(status)).
		Count(&cnt).Error
	if err != nil {
		return 0, domain.StoreFailure("count slots", err)
	}
	return cnt, nil
}
