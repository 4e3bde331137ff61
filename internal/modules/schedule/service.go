package schedule

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"salonbook/internal/domain"
	"salonbook/internal/pkg/validator"
)

type Service struct {
	masters MasterRepository
	slots   SlotRepository
	policy  domain.DayOffPolicy
	log     *zap.Logger
}

func NewService(masters MasterRepository, slots SlotRepository, policy domain.DayOffPolicy, log *zap.Logger) *Service {
	if policy == "" {
		policy = domain.DayOffKeepBooked
	}
	return &Service{masters: masters, slots: slots, policy: policy, log: log}
}

func (s *Service) Policy() domain.DayOffPolicy { return s.policy }

// GenerateMonth creates an available slot for every day of the month and every
// time label. Each pair is inserted on its own; duplicates and store failures
// are collected in the result and the batch goes on.
func (s *Service) GenerateMonth(ctx context.Context, req GenerateRequest) (*GenerateResult, error) {
	if err := validator.Struct(req); err != nil {
		return nil, err
	}
	times := domain.NormalizeTimeLabels(req.Times)
	if len(times) == 0 {
		return nil, fmt.Errorf("%w: at least one time label is required", domain.ErrValidation)
	}
	if _, err := s.masters.GetByID(ctx, req.MasterID); err != nil {
		return nil, fmt.Errorf("master %d: %w", req.MasterID, err)
	}

	res := &GenerateResult{}
	days := domain.DaysIn(req.Year, req.Month)
	for day := 1; day <= days; day++ {
		date := domain.FormatDate(req.Year, req.Month, day)
		for _, tm := range times {
			if err := ctx.Err(); err != nil {
				return res, err
			}

			slot := &domain.ScheduleSlot{
				MasterID:    req.MasterID,
				WorkDate:    date,
				WorkTime:    tm,
				IsAvailable: domain.SlotAvailable,
			}
			err := s.slots.Create(ctx, slot)
			if err == nil {
				res.Created++
				continue
			}

			var dup *domain.DuplicateSlotError
			if errors.As(err, &dup) {
				s.log.Warn("slot already exists",
					zap.Int64("master_id", req.MasterID),
					zap.String("date", date),
					zap.String("time", tm),
				)
				res.Duplicates = append(res.Duplicates, *dup)
				continue
			}

			s.log.Error("failed to create slot",
				zap.Int64("master_id", req.MasterID),
				zap.String("date", date),
				zap.String("time", tm),
				zap.Error(err),
			)
			res.Failures = append(res.Failures, SlotFailure{Date: date, Time: tm, Err: err})
		}
	}

	s.log.Info("schedule generated",
		zap.Int64("master_id", req.MasterID),
		zap.Int("year", req.Year),
		zap.Int("month", req.Month),
		zap.Int("created", res.Created),
		zap.Int("duplicates", len(res.Duplicates)),
		zap.Int("failures", len(res.Failures)),
	)
	return res, nil
}

// MarkDaysOff moves the master's slots on each listed day to day off under the
// service policy. Days outside the month are reported and skipped.
func (s *Service) MarkDaysOff(ctx context.Context, req DaysOffRequest) ([]DayOffResult, error) {
	if err := validator.Struct(req); err != nil {
		return nil, err
	}
	if _, err := s.masters.GetByID(ctx, req.MasterID); err != nil {
		return nil, fmt.Errorf("master %d: %w", req.MasterID, err)
	}

	days := domain.DaysIn(req.Year, req.Month)
	out := make([]DayOffResult, 0, len(req.Days))
	for _, day := range req.Days {
		r := DayOffResult{Day: day}
		if day < 1 || day > days {
			r.Err = fmt.Errorf("%w: day %d is outside 1..%d", domain.ErrValidation, day, days)
			out = append(out, r)
			continue
		}
		r.Date = domain.FormatDate(req.Year, req.Month, day)

		if err := s.markDay(ctx, req.MasterID, &r); err != nil {
			return out, err
		}
		out = append(out, r)
	}
	return out, nil
}

// markDay fills r for one valid date. Policy conflicts land in r.Err; store
// failures are returned.
func (s *Service) markDay(ctx context.Context, masterID int64, r *DayOffResult) error {
	booked, err := s.slots.CountByStatus(ctx, masterID, r.Date, domain.SlotBooked)
	if err != nil {
		return err
	}

	switch s.policy {
	case domain.DayOffReject:
		if booked > 0 {
			r.KeptBooked = booked
			r.Err = fmt.Errorf("%s: %w", r.Date, domain.ErrDayHasBookings)
			s.log.Warn("day off rejected", zap.Int64("master_id", masterID), zap.String("date", r.Date), zap.Int64("booked", booked))
			return nil
		}
		r.Marked, err = s.slots.MarkDayOff(ctx, masterID, r.Date, false)
	case domain.DayOffOverwrite:
		r.Marked, err = s.slots.MarkDayOff(ctx, masterID, r.Date, false)
	default:
		r.KeptBooked = booked
		r.Marked, err = s.slots.MarkDayOff(ctx, masterID, r.Date, true)
	}
	if err != nil {
		return err
	}

	s.log.Info("day off marked",
		zap.Int64("master_id", masterID),
		zap.String("date", r.Date),
		zap.String("policy", string(s.policy)),
		zap.Int64("marked", r.Marked),
		zap.Int64("kept_booked", r.KeptBooked),
	)
	return nil
}

// Available returns the master's available slots ordered by id.
func (s *Service) Available(ctx context.Context, masterID int64) ([]domain.ScheduleSlot, error) {
	return s.slots.ListAvailable(ctx, masterID)
}

// FindAvailable resolves a slot id picked from the availability index.
func (s *Service) FindAvailable(ctx context.Context, masterID, slotID int64) (*domain.ScheduleSlot, error) {
	slot, err := s.slots.GetByID(ctx, slotID)
	if err != nil {
		return nil, err
	}
	if slot.MasterID != masterID || slot.IsAvailable != domain.SlotAvailable {
		return nil, fmt.Errorf("slot %d: %w", slotID, domain.ErrNotFound)
	}
	return slot, nil
}
