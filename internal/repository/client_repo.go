package repository

import (
	"context"

	"gorm.io/gorm"

	"salonbook/internal/domain"
)

type ClientRepository struct {
	db *gorm.DB
}

func NewClientRepository(db *gorm.DB) *ClientRepository {
	return &ClientRepository{db: db}
}

type clientModel struct {
	ID    int64  `gorm:"column:id;primaryKey"`
	Name  string `gorm:"column:name"`
	Phone string `gorm:"column:phone"`
}

func (clientModel) TableName() string { return "clients" }

func (r *ClientRepository) Create(ctx context.Context, c *domain.Client) error {
	m := clientModel{Name: c.Name, Phone: c.Phone}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return domain.StoreFailure("create client", err)
	}
	c.ID = m.ID
	return nil
}

// FindByPhone returns the oldest client with phone or domain.ErrNotFound.
func (r *ClientRepository) FindByPhone(ctx context.Context, phone string) (*domain.Client, error) {
	var m clientModel
	err := r.db.WithContext(ctx).Where("phone = ?", phone).Order("id").First(&m).Error
	if err != nil {
		if isNotFound(err) {
			return nil, domain.ErrNotFound
		}
		return nil, domain.StoreFailure("find client by phone", err)
	}
	return &domain.Client{ID: m.ID, Name: m.Name, Phone: m.Phone}, nil
}
