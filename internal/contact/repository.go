package contact

import "gorm.io/gorm"

type Store interface {
	Create(lead *Lead) error
	ListRecent(limit int) ([]Lead, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Store {
	return &repository{db: db}
}

func (r *repository) Create(lead *Lead) error {
	return r.db.Create(lead).Error
}

func (r *repository) ListRecent(limit int) ([]Lead, error) {
	var list []Lead
	err := r.db.Order("created_at DESC").Limit(limit).Find(&list).Error
	return list, err
}
