package repository

import (
	"context"

	"gorm.io/gorm"

	"quizapi/internal/model"
)

// CategoryRepository defines category persistence operations. The category
// table is read-only for the API; Create exists for the seed tooling.
type CategoryRepository interface {
	Create(ctx context.Context, category *model.Category) error
	Find(ctx context.Context, code string) (*model.Category, error)
	List(ctx context.Context) ([]model.Category, error)
	Exists(ctx context.Context, code string) (bool, error)
}

type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository creates a new category repository.
func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) Create(ctx context.Context, category *model.Category) error {
	return r.db.WithContext(ctx).Create(category).Error
}

func (r *categoryRepository) Find(ctx context.Context, code string) (*model.Category, error) {
	var category model.Category
	if err := r.db.WithContext(ctx).Where("category = ?", code).First(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

// List returns all categories ordered by category code ascending.
func (r *categoryRepository) List(ctx context.Context) ([]model.Category, error) {
	var categories []model.Category
	if err := r.db.WithContext(ctx).Order("category ASC").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *categoryRepository) Exists(ctx context.Context, code string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Category{}).
		Where("category = ?", code).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
