package service

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"quizapi/internal/cache"
	"quizapi/internal/model"
	"quizapi/internal/repository"
)

// CategoriesCacheKey is the cache entry for the full category list. Exported
// so write paths outside this package (seeding) can invalidate it.
const CategoriesCacheKey = "quiz:categories"

const (
	categoriesCacheTTL = 5 * time.Minute
	countCacheTTL      = time.Minute
)

// QuizService exposes read operations over categories and questions.
type QuizService interface {
	ListCategories(ctx context.Context) ([]model.Category, error)
	CategoryExists(ctx context.Context, category string) (bool, error)
	CountQuestions(ctx context.Context, category string) (int64, error)
	SampleQuestions(ctx context.Context, category string, count int) ([]model.Question, error)
}

type quizService struct {
	categories repository.CategoryRepository
	questions  repository.QuestionRepository
	cache      *cache.Client
}

// NewQuizService builds a QuizService with repositories and cache.
func NewQuizService(categories repository.CategoryRepository, questions repository.QuestionRepository, cache *cache.Client) QuizService {
	return &quizService{categories: categories, questions: questions, cache: cache}
}

// CountCacheKey is the cache entry for a category's question count. Exported
// so write paths outside this package (seeding) can invalidate it.
func CountCacheKey(category string) string {
	return fmt.Sprintf("quiz:count:%s", category)
}

// ListCategories returns all categories ordered by code, cache-aside. A
// storage failure is returned to the caller rather than read as an empty
// table, so the handler can answer 500 instead of a misleading empty 200.
func (s *quizService) ListCategories(ctx context.Context) ([]model.Category, error) {
	if data, _ := s.cache.Get(ctx, CategoriesCacheKey); data != nil {
		var cached []model.Category
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached, nil
		}
	}

	categories, err := s.categories.List(ctx)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(categories); err == nil {
		_ = s.cache.Set(ctx, CategoriesCacheKey, payload, categoriesCacheTTL)
	}
	return categories, nil
}

func (s *quizService) CategoryExists(ctx context.Context, category string) (bool, error) {
	if strings.TrimSpace(category) == "" {
		return false, nil
	}
	return s.categories.Exists(ctx, category)
}

func (s *quizService) CountQuestions(ctx context.Context, category string) (int64, error) {
	if strings.TrimSpace(category) == "" {
		return 0, nil
	}

	if data, _ := s.cache.Get(ctx, CountCacheKey(category)); data != nil {
		if cached, err := strconv.ParseInt(string(data), 10, 64); err == nil {
			return cached, nil
		}
	}

	count, err := s.questions.CountByCategory(ctx, category)
	if err != nil {
		return 0, err
	}

	_ = s.cache.Set(ctx, CountCacheKey(category), []byte(strconv.FormatInt(count, 10)), countCacheTTL)
	return count, nil
}

// SampleQuestions returns up to count questions for the category in random
// order, with every answer replaced by its obfuscated form. A blank category
// or non-positive count yields an empty slice.
func (s *quizService) SampleQuestions(ctx context.Context, category string, count int) ([]model.Question, error) {
	if strings.TrimSpace(category) == "" || count <= 0 {
		return []model.Question{}, nil
	}

	questions, err := s.questions.SampleByCategory(ctx, category, count)
	if err != nil {
		return nil, err
	}

	for i := range questions {
		questions[i].Answer = encodeAnswer(questions[i].ID, questions[i].Answer)
	}
	return questions, nil
}

// encodeAnswer hides the correct answer from casual inspection by encoding
// "{id}{answer}" as base64. The id travels with the question, so the encoding
// is trivially reversible; it is a display-hiding mechanism, not security.
func encodeAnswer(id uint, answer string) string {
	if answer == "" {
		return ""
	}
	return base64.StdEncoding.EncodeToString([]byte(strconv.FormatUint(uint64(id), 10) + answer))
}
