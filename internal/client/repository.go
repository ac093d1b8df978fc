package client

import "gorm.io/gorm"

type Store interface {
	Create(c *Client) error
	FindByID(id uint) (*Client, error)
	ListRecent(limit int) ([]Client, error)
	Update(c *Client) error
	Delete(id uint) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Store {
	return &repository{db: db}
}

func (r *repository) Create(c *Client) error {
	return r.db.Create(c).Error
}

func (r *repository) FindByID(id uint) (*Client, error) {
	var c Client
	if err := r.db.First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *repository) ListRecent(limit int) ([]Client, error) {
	var list []Client
	err := r.db.Order("created_at DESC").Limit(limit).Find(&list).Error
	return list, err
}

func (r *repository) Update(c *Client) error {
	return r.db.Save(c).Error
}

func (r *repository) Delete(id uint) error {
	return r.db.Delete(&Client{}, id).Error
}
