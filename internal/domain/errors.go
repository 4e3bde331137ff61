package domain

import (
	"errors"
	"fmt"
)

var (
	ErrValidation      = errors.New("validation error")
	ErrNotFound        = errors.New("not found")
	ErrDuplicateSlot   = errors.New("duplicate slot")
	ErrStore           = errors.New("store error")
	ErrSlotUnavailable = errors.New("slot not available")
	ErrDayHasBookings  = errors.New("day has booked slots")
)

// DuplicateSlotError reports a (master, date, time) pair that already exists.
type DuplicateSlotError struct {
	MasterID int64
	Date     string
	Time     string
}

func (e *DuplicateSlotError) Error() string {
	return fmt.Sprintf("slot %s %s already exists for master %d", e.Date, e.Time, e.MasterID)
}

func (e *DuplicateSlotError) Unwrap() error { return ErrDuplicateSlot }

// StoreFailure wraps a driver error so that it matches ErrStore.
func StoreFailure(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, ErrStore, err)
}
