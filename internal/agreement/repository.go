package agreement

import "gorm.io/gorm"

// Store is the persistence surface the handlers depend on.
type Store interface {
	Create(rec *Record) error
	ListRecent(limit int) ([]Record, error)
	ListByEmail(email string) ([]Record, error)
	FindByID(id uint) (*Record, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Store {
	return &repository{db: db}
}

func (r *repository) Create(rec *Record) error {
	return r.db.Create(rec).Error
}

func (r *repository) ListRecent(limit int) ([]Record, error) {
	var list []Record
	err := r.db.Order("created_at DESC").Limit(limit).Find(&list).Error
	return list, err
}

func (r *repository) ListByEmail(email string) ([]Record, error) {
	var list []Record
	err := r.db.Where("client_email = ?", email).Order("created_at DESC").Find(&list).Error
	return list, err
}

func (r *repository) FindByID(id uint) (*Record, error) {
	var rec Record
	if err := r.db.First(&rec, id).Error; err != nil {
		return nil, err
	}
	return &rec, nil
}
