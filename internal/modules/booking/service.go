package booking

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"salonbook/internal/domain"
	"salonbook/internal/pkg/validator"
	"salonbook/internal/repository"
)

type Service struct {
	store    *repository.Store
	strategy domain.ClientStrategy
	log      *zap.Logger
}

func NewService(store *repository.Store, strategy domain.ClientStrategy, log *zap.Logger) *Service {
	if strategy == "" {
		strategy = domain.ClientAlwaysNew
	}
	return &Service{store: store, strategy: strategy, log: log}
}

// ValidateName returns the trimmed name if it looks like "first last".
func ValidateName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if !validator.IsFullName(name) {
		return "", fmt.Errorf("%w: name must contain first and last name, at least 5 characters", domain.ErrValidation)
	}
	return name, nil
}

// ValidatePhone returns the trimmed phone if it is exactly ten digits.
func ValidatePhone(phone string) (string, error) {
	phone = strings.TrimSpace(phone)
	if !validator.IsPhone(phone) {
		return "", fmt.Errorf("%w: phone must be exactly 10 digits", domain.ErrValidation)
	}
	return phone, nil
}

// Reserve books an available slot for a client in one transaction: the slot is
// flipped to booked, the client row is created (or reused) and a pending
// booking is inserted. Any failure leaves the store unchanged.
func (s *Service) Reserve(ctx context.Context, req ReserveRequest) (*domain.Booking, error) {
	var err error
	if req.Name, err = ValidateName(req.Name); err != nil {
		return nil, err
	}
	if req.Phone, err = ValidatePhone(req.Phone); err != nil {
		return nil, err
	}
	if err := validator.Struct(req); err != nil {
		return nil, err
	}

	var b *domain.Booking
	err = s.store.Transaction(ctx, func(tx *repository.Store) error {
		slot, err := tx.Slots.GetByID(ctx, req.SlotID)
		if err != nil {
			return fmt.Errorf("slot %d: %w", req.SlotID, err)
		}
		if err := tx.Slots.MarkBooked(ctx, slot.ID, req.MasterID); err != nil {
			return fmt.Errorf("slot %d: %w", slot.ID, err)
		}
		slot.IsAvailable = domain.SlotBooked

		offered, err := tx.Procedures.IsOfferedBy(ctx, req.MasterID, req.ProcedureID)
		if err != nil {
			return err
		}
		if !offered {
			return fmt.Errorf("procedure %d of master %d: %w", req.ProcedureID, req.MasterID, domain.ErrNotFound)
		}

		client, err := s.resolveClient(ctx, tx, req.Name, req.Phone)
		if err != nil {
			return err
		}

		b = &domain.Booking{
			Reference:   uuid.NewString(),
			Status:      domain.BookingPending,
			MasterID:    req.MasterID,
			ClientID:    client.ID,
			ProcedureID: req.ProcedureID,
			SlotID:      &slot.ID,
			FullTime:    slot.FullTime(),
			Client:      client,
			Slot:        slot,
		}
		return tx.Bookings.Create(ctx, b)
	})
	if err != nil {
		s.log.Warn("reservation failed",
			zap.Int64("master_id", req.MasterID),
			zap.Int64("slot_id", req.SlotID),
			zap.Error(err),
		)
		return nil, err
	}

	s.log.Info("booking created",
		zap.Int64("booking_id", b.ID),
		zap.String("reference", b.Reference),
		zap.Int64("master_id", b.MasterID),
		zap.Int64("client_id", b.ClientID),
		zap.String("full_time", b.FullTime),
	)
	return b, nil
}

func (s *Service) resolveClient(ctx context.Context, tx *repository.Store, name, phone string) (*domain.Client, error) {
	if s.strategy == domain.ClientReuseByPhone {
		c, err := tx.Clients.FindByPhone(ctx, phone)
		if err == nil {
			return c, nil
		}
		if !errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
	}

	c := &domain.Client{Name: name, Phone: phone}
	if err := tx.Clients.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// Pending lists pending bookings with client, master and procedure names, ordered by id.
func (s *Service) Pending(ctx context.Context) ([]domain.BookingDetails, error) {
	return s.store.Bookings.ListDetailsByStatus(ctx, domain.BookingPending)
}

// Confirm moves a pending booking to confirmed. Confirming twice is a no-op.
func (s *Service) Confirm(ctx context.Context, bookingID int64) error {
	b, err := s.store.Bookings.GetByID(ctx, bookingID)
	if err != nil {
		return fmt.Errorf("booking %d: %w", bookingID, err)
	}
	if b.Status == domain.BookingConfirmed {
		return nil
	}

	if err := s.store.Bookings.UpdateStatus(ctx, bookingID, domain.BookingConfirmed); err != nil {
		return fmt.Errorf("booking %d: %w", bookingID, err)
	}

	s.log.Info("booking confirmed", zap.Int64("booking_id", bookingID), zap.String("reference", b.Reference))
	return nil
}
