package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"todolist/internal/model"
)

// Lists are append-only: no update or delete operations are exposed.
type ListRepository struct {
	db *gorm.DB
}

type ListRepositoryInterface interface {
	Create(ctx context.Context, list *model.List) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.List, error)
	GetByUser(ctx context.Context, userID uuid.UUID) ([]model.List, error)
}

var _ ListRepositoryInterface = (*ListRepository)(nil)

func NewListRepository(db *gorm.DB) *ListRepository {
	return &ListRepository{db: db}
}

func (r *ListRepository) Create(ctx context.Context, list *model.List) error {
	return r.db.WithContext(ctx).Create(list).Error
}

func (r *ListRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.List, error) {
	var list model.List
	result := r.db.WithContext(ctx).First(&list, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrListNotFound
		}
		return nil, result.Error
	}
	return &list, nil
}

func (r *ListRepository) GetByUser(ctx context.Context, userID uuid.UUID) ([]model.List, error) {
	var lists []model.List
	result := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at").Find(&lists)
	if result.Error != nil {
		return nil, result.Error
	}
	return lists, nil
}
