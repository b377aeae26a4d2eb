package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"quizapi/internal/model"
)

// MockQuizService is a mock implementation of service.QuizService.
type MockQuizService struct {
	mock.Mock
}

func (m *MockQuizService) ListCategories(ctx context.Context) ([]model.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Category), args.Error(1)
}

func (m *MockQuizService) CategoryExists(ctx context.Context, category string) (bool, error) {
	args := m.Called(ctx, category)
	return args.Bool(0), args.Error(1)
}

func (m *MockQuizService) CountQuestions(ctx context.Context, category string) (int64, error) {
	args := m.Called(ctx, category)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockQuizService) SampleQuestions(ctx context.Context, category string, count int) ([]model.Question, error) {
	args := m.Called(ctx, category, count)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Question), args.Error(1)
}

func TestQuizHandler_GetQuizByCategory(t *testing.T) {
	t.Run("missing category param", func(t *testing.T) {
		e := newTestEcho()
		c, _ := newJSONContext(e, http.MethodGet, "/api/quiz?count=5", "")

		err := NewQuizHandler(new(MockQuizService)).GetQuizByCategory(c)

		assert.Equal(t, http.StatusBadRequest, httpStatus(t, err))
	})

	t.Run("non-positive count", func(t *testing.T) {
		e := newTestEcho()
		c, _ := newJSONContext(e, http.MethodGet, "/api/quiz?category=go&count=0", "")

		err := NewQuizHandler(new(MockQuizService)).GetQuizByCategory(c)

		assert.Equal(t, http.StatusBadRequest, httpStatus(t, err))
	})

	t.Run("non-numeric count", func(t *testing.T) {
		e := newTestEcho()
		c, _ := newJSONContext(e, http.MethodGet, "/api/quiz?category=go&count=many", "")

		err := NewQuizHandler(new(MockQuizService)).GetQuizByCategory(c)

		assert.Equal(t, http.StatusBadRequest, httpStatus(t, err))
	})

	t.Run("unknown category is 404", func(t *testing.T) {
		mockSvc := new(MockQuizService)
		mockSvc.On("CategoryExists", mock.Anything, "nope").Return(false, nil)

		e := newTestEcho()
		c, _ := newJSONContext(e, http.MethodGet, "/api/quiz?category=nope&count=5", "")

		err := NewQuizHandler(mockSvc).GetQuizByCategory(c)

		assert.Equal(t, http.StatusNotFound, httpStatus(t, err))
	})

	t.Run("success reports requested, actual, and available counts", func(t *testing.T) {
		mockSvc := new(MockQuizService)
		mockSvc.On("CategoryExists", mock.Anything, "go").Return(true, nil)
		mockSvc.On("SampleQuestions", mock.Anything, "go", 5).Return([]model.Question{
			{ID: 1, Category: "go", Question: "q1", Answer: "MWE="},
			{ID: 2, Category: "go", Question: "q2", Answer: "MmI="},
		}, nil)
		mockSvc.On("CountQuestions", mock.Anything, "go").Return(int64(2), nil)

		e := newTestEcho()
		c, rec := newJSONContext(e, http.MethodGet, "/api/quiz?category=go&count=5", "")

		err := NewQuizHandler(mockSvc).GetQuizByCategory(c)

		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)

		var resp QuizResponse
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "go", resp.Category)
		assert.Equal(t, 5, resp.RequestedCount)
		assert.Equal(t, 2, resp.ActualCount)
		assert.Equal(t, int64(2), resp.TotalAvailable)
		assert.Len(t, resp.Questions, 2)
		mockSvc.AssertExpectations(t)
	})

	t.Run("storage failure maps to 500", func(t *testing.T) {
		mockSvc := new(MockQuizService)
		mockSvc.On("CategoryExists", mock.Anything, "go").Return(false, errBoom)

		e := newTestEcho()
		c, _ := newJSONContext(e, http.MethodGet, "/api/quiz?category=go&count=5", "")

		err := NewQuizHandler(mockSvc).GetQuizByCategory(c)

		assert.Equal(t, http.StatusInternalServerError, httpStatus(t, err))
	})
}

func TestQuizHandler_GetQuizCategories(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		mockSvc := new(MockQuizService)
		mockSvc.On("ListCategories", mock.Anything).Return([]model.Category{
			{Category: "go", Description: "Go language fundamentals"},
			{Category: "sql", Description: "Relational databases and SQL"},
		}, nil)

		e := newTestEcho()
		c, rec := newJSONContext(e, http.MethodGet, "/api/quiz/categories", "")

		err := NewQuizHandler(mockSvc).GetQuizCategories(c)

		assert.NoError(t, err)
		var resp CategoriesResponse
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, 2, resp.Count)
		assert.Equal(t, "go", resp.Categories[0].Category)
	})

	t.Run("storage failure maps to 500", func(t *testing.T) {
		mockSvc := new(MockQuizService)
		mockSvc.On("ListCategories", mock.Anything).Return(nil, errBoom)

		e := newTestEcho()
		c, _ := newJSONContext(e, http.MethodGet, "/api/quiz/categories", "")

		err := NewQuizHandler(mockSvc).GetQuizCategories(c)

		assert.Equal(t, http.StatusInternalServerError, httpStatus(t, err))
	})
}
