package service

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/lshigami/Quizzy/internal/dto"
	"github.com/lshigami/Quizzy/internal/model"
)

// TestListQuestionsHidesCorrectAnswer verifies the projection drops the answer.
func TestListQuestionsHidesCorrectAnswer(t *testing.T) {
	svc := NewQuestionService(newMemoryRepository(sampleQuestions()...))
	questions, err := svc.ListQuestions(context.Background(), dto.QuestionQuery{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(questions) != 4 {
		t.Fatalf("expected 4 questions, got %d", len(questions))
	}
	raw, err := json.Marshal(questions)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if strings.Contains(string(raw), "correctAnswer") {
		t.Fatalf("projection leaked the correct answer: %s", raw)
	}
	first := questions[0]
	if first.ID != "q1" || first.QuestionText != "Pick B" || len(first.Choices) != 4 || first.Category != "Science" || first.Difficulty != model.DifficultyEasy {
		t.Fatalf("unexpected projection: %+v", first)
	}
}

// TestListQuestionsFilters verifies category and difficulty filters combine.
func TestListQuestionsFilters(t *testing.T) {
	svc := NewQuestionService(newMemoryRepository(sampleQuestions()...))
	cases := []struct {
		query dto.QuestionQuery
		ids   []string
	}{
		{dto.QuestionQuery{Category: "Science"}, []string{"q1", "q4"}},
		{dto.QuestionQuery{Difficulty: "Easy"}, []string{"q1", "q2"}},
		{dto.QuestionQuery{Category: "Science", Difficulty: "Hard"}, []string{"q4"}},
		{dto.QuestionQuery{Category: "History"}, []string{}},
	}
	for _, tc := range cases {
		got, err := svc.ListQuestions(context.Background(), tc.query)
		if err != nil {
			t.Fatalf("list %+v: %v", tc.query, err)
		}
		if got == nil {
			t.Fatalf("list %+v returned nil", tc.query)
		}
		if len(got) != len(tc.ids) {
			t.Fatalf("list %+v: expected %v, got %+v", tc.query, tc.ids, got)
		}
		for i, id := range tc.ids {
			if got[i].ID != id {
				t.Fatalf("list %+v: expected %v, got %+v", tc.query, tc.ids, got)
			}
		}
	}
}

// TestCategoriesPartitionQuestions verifies filtering by every category covers the store.
func TestCategoriesPartitionQuestions(t *testing.T) {
	svc := NewQuestionService(newMemoryRepository(sampleQuestions()...))
	ctx := context.Background()
	categories, err := svc.ListCategories(ctx)
	if err != nil {
		t.Fatalf("categories: %v", err)
	}
	total := 0
	for _, c := range categories {
		questions, err := svc.ListQuestions(ctx, dto.QuestionQuery{Category: c})
		if err != nil {
			t.Fatalf("list %s: %v", c, err)
		}
		total += len(questions)
	}
	if total != len(sampleQuestions()) {
		t.Fatalf("expected categories to cover %d questions, got %d", len(sampleQuestions()), total)
	}
}

// TestListCategoriesEmptyStore verifies an empty store yields an empty, non-nil list.
func TestListCategoriesEmptyStore(t *testing.T) {
	svc := NewQuestionService(newMemoryRepository())
	categories, err := svc.ListCategories(context.Background())
	if err != nil {
		t.Fatalf("categories: %v", err)
	}
	if categories == nil || len(categories) != 0 {
		t.Fatalf("expected [], got %#v", categories)
	}
}

// TestGetQuestion verifies lookup by id and the not-found mapping.
func TestGetQuestion(t *testing.T) {
	svc := NewQuestionService(newMemoryRepository(sampleQuestions()...))
	got, err := svc.GetQuestion(context.Background(), "q2")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.QuestionText != "Capital of France?" {
		t.Fatalf("unexpected question: %+v", got)
	}

	_, err = svc.GetQuestion(context.Background(), "nope")
	if !errors.Is(err, ErrQuestionNotFound) {
		t.Fatalf("expected ErrQuestionNotFound, got %v", err)
	}
}

// TestQuestionServiceStoreErrors verifies store failures are wrapped, not mapped to not-found.
func TestQuestionServiceStoreErrors(t *testing.T) {
	repo := newMemoryRepository(sampleQuestions()...)
	repo.err = errStoreDown
	svc := NewQuestionService(repo)
	ctx := context.Background()

	if _, err := svc.ListQuestions(ctx, dto.QuestionQuery{}); !errors.Is(err, errStoreDown) {
		t.Fatalf("list: expected store error, got %v", err)
	}
	if _, err := svc.GetQuestion(ctx, "q1"); !errors.Is(err, errStoreDown) || errors.Is(err, ErrQuestionNotFound) {
		t.Fatalf("get: expected store error, got %v", err)
	}
	if _, err := svc.ListCategories(ctx); !errors.Is(err, errStoreDown) {
		t.Fatalf("categories: expected store error, got %v", err)
	}
}
