package catalog

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"salonbook/internal/domain"
	"salonbook/internal/pkg/validator"
	"salonbook/internal/repository"
)

type Service struct {
	store *repository.Store
	log   *zap.Logger
}

func NewService(store *repository.Store, log *zap.Logger) *Service {
	return &Service{store: store, log: log}
}

/* ---------- MASTERS ---------- */

func (s *Service) AddMaster(ctx context.Context, req AddMasterRequest) (*domain.Master, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Specialization = strings.TrimSpace(req.Specialization)
	if err := validator.Struct(req); err != nil {
		return nil, err
	}

	master := &domain.Master{Name: req.Name, Specialization: req.Specialization}
	if err := s.store.Masters.Create(ctx, master); err != nil {
		return nil, err
	}

	s.log.Info("master added", zap.Int64("master_id", master.ID), zap.String("name", master.Name))
	return master, nil
}

func (s *Service) ListMasters(ctx context.Context) ([]domain.Master, error) {
	return s.store.Masters.List(ctx)
}

/* ---------- PROCEDURES ---------- */

// AddProcedure stores the procedure and links it to every listed master in one
// transaction. An unknown master id rolls the whole call back.
func (s *Service) AddProcedure(ctx context.Context, req AddProcedureRequest) (*domain.Procedure, error) {
	req.Title = strings.TrimSpace(req.Title)
	if err := validator.Struct(req); err != nil {
		return nil, err
	}

	proc := &domain.Procedure{Title: req.Title, Price: req.Price}
	masterIDs := uniqueIDs(req.MasterIDs)

	err := s.store.Transaction(ctx, func(tx *repository.Store) error {
		if err := tx.Procedures.Create(ctx, proc); err != nil {
			return err
		}
		for _, id := range masterIDs {
			if _, err := tx.Masters.GetByID(ctx, id); err != nil {
				return fmt.Errorf("master %d: %w", id, err)
			}
			if err := tx.Procedures.Link(ctx, id, proc.ID); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("procedure added",
		zap.Int64("procedure_id", proc.ID),
		zap.String("title", proc.Title),
		zap.Int64s("master_ids", masterIDs),
	)
	return proc, nil
}

// Showcase lists masters with at least one procedure, ordered by name.
func (s *Service) Showcase(ctx context.Context) ([]domain.MasterOffer, error) {
	return s.store.Procedures.Showcase(ctx)
}

// ProceduresOf returns domain.ErrNotFound when the master offers nothing or does not exist.
func (s *Service) ProceduresOf(ctx context.Context, masterID int64) ([]domain.Procedure, error) {
	procs, err := s.store.Procedures.ListByMaster(ctx, masterID)
	if err != nil {
		return nil, err
	}
	if len(procs) == 0 {
		return nil, fmt.Errorf("procedures of master %d: %w", masterID, domain.ErrNotFound)
	}
	return procs, nil
}

func uniqueIDs(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
