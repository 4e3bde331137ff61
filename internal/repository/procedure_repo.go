package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"salonbook/internal/domain"
)

type ProcedureRepository struct {
	db *gorm.DB
}

func NewProcedureRepository(db *gorm.DB) *ProcedureRepository {
	return &ProcedureRepository{db: db}
}

type procedureModel struct {
	ID    int64  `gorm:"column:id;primaryKey"`
	Title string `gorm:"column:title"`
	Price int64  `gorm:"column:price"`
}

func (procedureModel) TableName() string { return "procedures" }

type masterProcedureModel struct {
	ID          int64 `gorm:"column:id;primaryKey"`
	MasterID    int64 `gorm:"column:master_id"`
	ProcedureID int64 `gorm:"column:procedure_id"`
}

func (masterProcedureModel) TableName() string { return "master_procedures" }

// offerRow is one master x procedure pair of the showcase join.
type offerRow struct {
	MasterID       int64
	MasterName     string
	Specialization string
	ProcedureID    int64
	Title          string
	Price          int64
}

func (r *ProcedureRepository) Create(ctx context.Context, p *domain.Procedure) error {
	m := procedureModel{Title: p.Title, Price: p.Price}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return domain.StoreFailure("create procedure", err)
	}
	p.ID = m.ID
	return nil
}

// Link associates a procedure with a master. Linking twice is a no-op.
func (r *ProcedureRepository) Link(ctx context.Context, masterID, procedureID int64) error {
	m := masterProcedureModel{MasterID: masterID, ProcedureID: procedureID}
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&m).Error
	if err != nil {
		return domain.StoreFailure("link procedure", err)
	}
	return nil
}

// ListByMaster returns the procedures a master offers, ordered by id.
func (r *ProcedureRepository) ListByMaster(ctx context.Context, masterID int64) ([]domain.Procedure, error) {
	var rows []procedureModel
	err := r.db.WithContext(ctx).
		Table("procedures").
		Select("procedures.id, procedures.title, procedures.price").
		Joins("JOIN master_procedures ON master_procedures.procedure_id = procedures.id").
		Where("master_procedures.master_id = ?", masterID).
		Order("procedures.id").
		Scan(&rows).Error
	if err != nil {
		return nil, domain.StoreFailure("list procedures by master", err)
	}

	out := make([]domain.Procedure, 0, len(rows))
	for _, m := range rows {
		out = append(out, domain.Procedure{ID: m.ID, Title: m.Title, Price: m.Price})
	}
	return out, nil
}

func (r *ProcedureRepository) IsOfferedBy(ctx context.Context, masterID, procedureID int64) (bool, error) {
	var cnt int64
	err := r.db.WithContext(ctx).
		Model(&masterProcedureModel{}).
		Where("master_id = ? AND procedure_id = ?", masterID, procedureID).
		Count(&cnt).Error
	if err != nil {
		return false, domain.StoreFailure("check master procedure", err)
	}
	return cnt > 0, nil
}

// Showcase lists masters that offer at least one procedure, ordered by master name.
func (r *ProcedureRepository) Showcase(ctx context.Context) ([]domain.MasterOffer, error) {
	var rows []offerRow
	err := r.db.WithContext(ctx).
		Table("masters").
		Select(`masters.id AS master_id, masters.name AS master_name, masters.specialization AS specialization,
			procedures.id AS procedure_id, procedures.title AS title, procedures.price AS price`).
		Joins("JOIN master_procedures ON master_procedures.master_id = masters.id").
		Joins("JOIN procedures ON procedures.id = master_procedures.procedure_id").
		Order("masters.name, masters.id, procedures.id").
		Scan(&rows).Error
	if err != nil {
		return nil, domain.StoreFailure("showcase", err)
	}

	out := make([]domain.MasterOffer, 0)
	for _, row := range rows {
		if len(out) == 0 || out[len(out)-1].Master.ID != row.MasterID {
			out = append(out, domain.MasterOffer{
				Master: domain.Master{ID: row.MasterID, Name: row.MasterName, Specialization: row.Specialization},
			})
		}
		last := &out[len(out)-1]
		last.Procedures = append(last.Procedures, domain.Procedure{ID: row.ProcedureID, Title: row.Title, Price: row.Price})
	}
	return out, nil
}
