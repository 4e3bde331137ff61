package repository

import (
	"context"

	"gorm.io/gorm"

	"salonbook/internal/domain"
)

type MasterRepository struct {
	db *gorm.DB
}

func NewMasterRepository(db *gorm.DB) *MasterRepository {
	return &MasterRepository{db: db}
}

type masterModel struct {
	ID             int64  `gorm:"column:id;primaryKey"`
	Name           string `gorm:"column:name"`
	Specialization string `gorm:"column:specialization"`
}

func (masterModel) TableName() string { return "masters" }

func toDomainMaster(m masterModel) domain.Master {
	return domain.Master{ID: m.ID, Name: m.Name, Specialization: m.Specialization}
}

func (r *MasterRepository) Create(ctx context.Context, master *domain.Master) error {
	m := masterModel{Name: master.Name, Specialization: master.Specialization}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return domain.StoreFailure("create master", err)
	}
	master.ID = m.ID
	return nil
}

// GetByID returns domain.ErrNotFound for unknown ids.
func (r *MasterRepository) GetByID(ctx context.Context, id int64) (*domain.Master, error) {
	var m masterModel
	err := r.db.WithContext(ctx).First(&m, id).Error
	if err != nil {
		if isNotFound(err) {
			return nil, domain.ErrNotFound
		}
		return nil, domain.StoreFailure("get master", err)
	}
	master := toDomainMaster(m)
	return &master, nil
}

func (r *MasterRepository) List(ctx context.Context) ([]domain.Master, error) {
	var rows []masterModel
	if err := r.db.WithContext(ctx).Order("id").Find(&rows).Error; err != nil {
		return nil, domain.StoreFailure("list masters", err)
	}

	out := make([]domain.Master, 0, len(rows))
	for _, m := range rows {
		out = append(out, toDomainMaster(m))
	}
	return out, nil
}
