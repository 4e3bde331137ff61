package repository

import (
	"context"

	"gorm.io/gorm"
)

// Store bundles the repositories that share one gorm handle. Inside Transaction
// every repository of the passed Store runs on the same transaction.
type Store struct {
	db *gorm.DB

	Masters    *MasterRepository
	Procedures *ProcedureRepository
	Clients    *ClientRepository
	Slots      *ScheduleRepository
	Bookings   *BookingRepository
}

func NewStore(db *gorm.DB) *Store {
	return &Store{
		db:         db,
		Masters:    NewMasterRepository(db),
		Procedures: NewProcedureRepository(db),
		Clients:    NewClientRepository(db),
		Slots:      NewScheduleRepository(db),
		Bookings:   NewBookingRepository(db),
	}
}

func (s *Store) DB() *gorm.DB { return s.db }

// Transaction commits when fn returns nil and rolls back otherwise.
func (s *Store) Transaction(ctx context.Context, fn func(tx *Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewStore(tx))
	})
}
