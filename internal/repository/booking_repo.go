package repository

import (
	"context"

	"gorm.io/gorm"

	"salonbook/internal/domain"
)

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

type bookingModel struct {
	ID          int64  `gorm:"column:id;primaryKey"`
	Reference   string `gorm:"column:reference"`
	Status      string `gorm:"column:status"`
	MasterID    int64  `gorm:"column:master_id"`
	ClientID    int64  `gorm:"column:client_id"`
	ProcedureID int64  `gorm:"column:procedure_id"`
	SlotID      *int64 `gorm:"column:slot_id"`
	FullTime    string `gorm:"column:full_time"`
}

func (bookingModel) TableName() string { return "bookings" }

func toDomainBooking(m bookingModel) *domain.Booking {
	return &domain.Booking{
		ID:          m.ID,
		Reference:   m.Reference,
		Status:      domain.BookingStatus(m.Status),
		MasterID:    m.MasterID,
		ClientID:    m.ClientID,
		ProcedureID: m.ProcedureID,
		SlotID:      m.SlotID,
		FullTime:    m.FullTime,
	}
}

func toBookingModel(b *domain.Booking) bookingModel {
	return bookingModel{
		ID:          b.ID,
		Reference:   b.Reference,
		Status:      string(b.Status),
		MasterID:    b.MasterID,
		ClientID:    b.ClientID,
		ProcedureID: b.ProcedureID,
		SlotID:      b.SlotID,
		FullTime:    b.FullTime,
	}
}

type bookingDetailsRow struct {
	ID             int64
	Reference      string
	Status         string
	FullTime       string
	ClientName     string
	ClientPhone    string
	MasterName     string
	ProcedureTitle string
}

func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	m := toBookingModel(b)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return domain.StoreFailure("create booking", err)
	}
	b.ID = m.ID
	return nil
}

func (r *BookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	var m bookingModel
	err := r.db.WithContext(ctx).First(&m, id).Error
	if err != nil {
		if isNotFound(err) {
			return nil, domain.ErrNotFound
		}
		return nil, domain.StoreFailure("get booking", err)
	}
	return toDomainBooking(m), nil
}

// ListDetailsByStatus joins bookings with client, master and procedure names, ordered by id.
func (r *BookingRepository) ListDetailsByStatus(ctx context.Context, status domain.BookingStatus) ([]domain.BookingDetails, error) {
	var rows []bookingDetailsRow
	err := r.db.WithContext(ctx).
		Table("bookings").
		Select(`bookings.id, bookings.reference, bookings.status, bookings.full_time,
			clients.name AS client_name, clients.phone AS client_phone,
			masters.name AS master_name, procedures.title AS procedure_title`).
		Joins("JOIN clients ON clients.id = bookings.client_id").
		Joins("JOIN procedures ON procedures.id = bookings.procedure_id").
		Joins("JOIN masters ON masters.id = bookings.master_id").
		Where("bookings.status = ?", string(status)).
		Order("bookings.id").
		Scan(&rows).Error
	if err != nil {
		return nil, domain.StoreFailure("list bookings", err)
	}

	out := make([]domain.BookingDetails, 0, len(rows))
	for _, row := range rows {
		out = append(out, domain.BookingDetails{
			ID:             row.ID,
			Reference:      row.Reference,
			Status:         domain.BookingStatus(row.Status),
			FullTime:       row.FullTime,
			ClientName:     row.ClientName,
			ClientPhone:    row.ClientPhone,
			MasterName:     row.MasterName,
			ProcedureTitle: row.ProcedureTitle,
		})
	}
	return out, nil
}

// UpdateStatus sets the status unconditionally; unknown ids yield domain.ErrNotFound.
func (r *BookingRepository) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error {
	tx := r.db.WithContext(ctx).
		Model(&bookingModel{}).
		Where("id = ?", id).
		Update("status", string(status))
	if tx.Error != nil {
		return domain.StoreFailure("update booking status", tx.Error)
	}
	if tx.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
