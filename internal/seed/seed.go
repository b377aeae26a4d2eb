// Package seed loads the demo dataset used for local development. In
// production the category and question tables are populated by an external
// content pipeline; this package stands in for it.
package seed

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"quizapi/internal/model"
	"quizapi/internal/repository"
)

// Result reports what Apply created.
type Result struct {
	Categories int `json:"categories"`
	Questions  int `json:"questions"`
	Users      int `json:"users"`
}

func strPtr(s string) *string { return &s }

// Categories returns the category codes in the demo dataset, so callers can
// invalidate per-category caches after Apply.
func Categories() []string {
	demo := demoCategories()
	codes := make([]string, 0, len(demo))
	for _, c := range demo {
		codes = append(codes, c.Category)
	}
	return codes
}

func demoCategories() []model.Category {
	return []model.Category{
		{Category: "go", Description: "Go language fundamentals", Provider: "internal"},
		{Category: "sql", Description: "Relational databases and SQL", Provider: "internal"},
		{Category: "http", Description: "HTTP and web APIs", Provider: "internal"},
	}
}

func demoQuestions() []model.Question {
	return []model.Question{
		{
			Category: "go",
			Question: "Which keyword starts a new goroutine?",
			OptionA:  strPtr("go"), OptionB: strPtr("run"), OptionC: strPtr("spawn"), OptionD: strPtr("async"),
			Answer: "a",
		},
		{
			Category: "go",
			Question: "What is the zero value of a pointer?",
			OptionA:  strPtr("0"), OptionB: strPtr("nil"), OptionC: strPtr("undefined"), OptionD: strPtr("empty struct"),
			Answer: "b",
		},
		{
			Category: "go",
			Question: "Which builtin appends to a slice?",
			OptionA:  strPtr("push"), OptionB: strPtr("add"), OptionC: strPtr("append"), OptionD: strPtr("insert"),
			Answer: "c",
		},
		{
			Category: "sql",
			Question: "Which clause filters grouped rows?",
			OptionA:  strPtr("WHERE"), OptionB: strPtr("HAVING"), OptionC: strPtr("FILTER"), OptionD: strPtr("GROUP BY"),
			Answer: "b",
		},
		{
			Category: "sql",
			Question: "Which statement removes all rows but keeps the table?",
			OptionA:  strPtr("DROP TABLE"), OptionB: strPtr("DELETE SCHEMA"), OptionC: strPtr("TRUNCATE TABLE"), OptionD: strPtr("REMOVE"),
			Answer: "c",
		},
		{
			Category: "http",
			Question: "Which status code means Not Found?",
			OptionA:  strPtr("400"), OptionB: strPtr("404"), OptionC: strPtr("410"), OptionD: strPtr("500"),
			Answer: "b",
		},
		{
			Category: "http",
			Question: "Which method is idempotent by definition?",
			OptionA:  strPtr("POST"), OptionB: strPtr("PATCH"), OptionC: strPtr("PUT"), OptionD: strPtr("CONNECT"),
			Answer: "c",
		},
	}
}

// Apply seeds the demo dataset. Categories are created when missing,
// questions only when a category has none (they carry no natural key), and
// the demo user only when absent, so repeated runs are safe.
func Apply(
	ctx context.Context,
	categories repository.CategoryRepository,
	questions repository.QuestionRepository,
	users repository.UserRepository,
) (Result, error) {
	var res Result

	for _, c := range demoCategories() {
		_, err := categories.Find(ctx, c.Category)
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return res, fmt.Errorf("check category %s: %w", c.Category, err)
		}
		category := c
		if err := categories.Create(ctx, &category); err != nil {
			return res, fmt.Errorf("create category %s: %w", c.Category, err)
		}
		res.Categories++
	}

	needsQuestions := make(map[string]bool)
	for _, q := range demoQuestions() {
		need, checked := needsQuestions[q.Category]
		if !checked {
			count, err := questions.CountByCategory(ctx, q.Category)
			if err != nil {
				return res, fmt.Errorf("count questions %s: %w", q.Category, err)
			}
			need = count == 0
			needsQuestions[q.Category] = need
		}
		if !need {
			continue
		}
		question := q
		if err := questions.Create(ctx, &question); err != nil {
			return res, fmt.Errorf("create question in %s: %w", q.Category, err)
		}
		res.Questions++
	}

	if _, err := users.FindByUsername(ctx, "demo"); err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return res, fmt.Errorf("check demo user: %w", err)
		}
		if err := users.Create(ctx, &model.User{Username: "demo", Password: "demo123"}); err != nil {
			return res, fmt.Errorf("create demo user: %w", err)
		}
		res.Users++
	}

	return res, nil
}
