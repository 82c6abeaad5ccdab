package repository

import (
	"errors"
	"time"

	"github.com/shoply-app/shoply-backend/internal/domain"
	"github.com/shoply-app/shoply-backend/internal/infrastructure/postgres/mappers"
	"github.com/shoply-app/shoply-backend/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultClientRepository struct {
	DB *gorm.DB
}

func NewDefaultClientRepository(db *gorm.DB) *DefaultClientRepository {
	return &DefaultClientRepository{
		DB: db,
	}
}

func (r *DefaultClientRepository) CreateClient(client *domain.Client) error {
	model := mappers.ToGORMClient(client)
	return r.DB.Create(model).Error
}

func (r *DefaultClientRepository) GetClientByID(id string) (*domain.Client, error) {
	var model models.ClientModel
	if err := r.DB.First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrClientNotFound
		}
		return nil, err
	}
	return mappers.ToDomainClient(&model), nil
}

func (r *DefaultClientRepository) GetClientByEmail(email string) (*domain.Client, error) {
	var model models.ClientModel
	if err := r.DB.First(&model, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrClientNotFound
		}
		return nil, err
	}
	return mappers.ToDomainClient(&model), nil
}

func (r *DefaultClientRepository) UpdateClient(client *domain.Client) error {
	model := mappers.ToGORMClient(client)
	model.UpdatedAt = time.Now()
	return r.DB.Save(model).Error
}
