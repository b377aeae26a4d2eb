package repository

import (
	"context"

	"gorm.io/gorm"

	"quizapi/internal/model"
)

// randomOrder is the server-side shuffle used in production. Selection is
// re-randomized on every call and is deliberately not seeded or reproducible.
const randomOrder = "RAND()"

// QuestionRepository defines question persistence operations. Create exists
// for the seed tooling only.
type QuestionRepository interface {
	Create(ctx context.Context, question *model.Question) error
	CountByCategory(ctx context.Context, category string) (int64, error)
	SampleByCategory(ctx context.Context, category string, count int) ([]model.Question, error)
}

type questionRepository struct {
	db        *gorm.DB
	orderExpr string
}

// NewQuestionRepository creates a question repository sampling in random order.
func NewQuestionRepository(db *gorm.DB) QuestionRepository {
	return &questionRepository{db: db, orderExpr: randomOrder}
}

// NewQuestionRepositoryWithOrder creates a repository with an explicit ORDER BY
// expression. Tests use a deterministic expression so they can assert subset
// semantics instead of exact sequences.
func NewQuestionRepositoryWithOrder(db *gorm.DB, orderExpr string) QuestionRepository {
	return &questionRepository{db: db, orderExpr: orderExpr}
}

func (r *questionRepository) Create(ctx context.Context, question *model.Question) error {
	return r.db.WithContext(ctx).Create(question).Error
}

func (r *questionRepository) CountByCategory(ctx context.Context, category string) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Question{}).
		Where("category = ?", category).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// SampleByCategory returns up to count questions for the category, ordered by
// the repository's order expression.
func (r *questionRepository) SampleByCategory(ctx context.Context, category string, count int) ([]model.Question, error) {
	var questions []model.Question
	if err := r.db.WithContext(ctx).
		Where("category = ?", category).
		Order(r.orderExpr).
		Limit(count).
		Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}
