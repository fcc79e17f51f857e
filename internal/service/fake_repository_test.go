package service

import (
	"context"
	"errors"
	"sort"

	"github.com/lshigami/Quizzy/internal/model"
	"github.com/lshigami/Quizzy/internal/repository"
)

// memoryRepository is an in-memory QuestionRepository keyed by id.
type memoryRepository struct {
	questions []model.Question
	err       error
}

func newMemoryRepository(questions ...model.Question) *memoryRepository {
	return &memoryRepository{questions: questions}
}

func (r *memoryRepository) Find(_ context.Context, filter repository.QuestionFilter) ([]model.Question, error) {
	if r.err != nil {
		return nil, r.err
	}
	out := []model.Question{}
	for _, q := range r.questions {
		if filter.Category != "" && q.Category != filter.Category {
			continue
		}
		if filter.Difficulty != "" && string(q.Difficulty) != filter.Difficulty {
			continue
		}
		out = append(out, q)
	}
	return out, nil
}

func (r *memoryRepository) FindByID(_ context.Context, id string) (*model.Question, error) {
	if r.err != nil {
		return nil, r.err
	}
	for _, q := range r.questions {
		if q.ID == id {
			q := q
			return &q, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *memoryRepository) FindByIDs(_ context.Context, ids []string) (map[string]model.Question, error) {
	if r.err != nil {
		return nil, r.err
	}
	found := map[string]model.Question{}
	for _, id := range ids {
		for _, q := range r.questions {
			if q.ID == id {
				found[id] = q
			}
		}
	}
	return found, nil
}

func (r *memoryRepository) DistinctCategories(context.Context) ([]string, error) {
	if r.err != nil {
		return nil, r.err
	}
	seen := map[string]bool{}
	var out []string
	for _, q := range r.questions {
		if !seen[q.Category] {
			seen[q.Category] = true
			out = append(out, q.Category)
		}
	}
	sort.Strings(out)
	return out, nil
}

func (r *memoryRepository) Count(context.Context) (int64, error) {
	if r.err != nil {
		return 0, r.err
	}
	return int64(len(r.questions)), nil
}

func (r *memoryRepository) ReplaceAll(_ context.Context, questions []model.Question) (int64, error) {
	if r.err != nil {
		return 0, r.err
	}
	deleted := int64(len(r.questions))
	r.questions = append([]model.Question(nil), questions...)
	return deleted, nil
}

var errStoreDown = errors.New("store is down")

func sampleQuestions() []model.Question {
	return []model.Question{
		{ID: "q1", QuestionText: "Pick B", Choices: []string{"A", "B", "C", "D"}, CorrectAnswer: "B", Category: "Science", Difficulty: model.DifficultyEasy},
		{ID: "q2", QuestionText: "Capital of France?", Choices: []string{"London", "Paris", "Rome"}, CorrectAnswer: "Paris", Category: "Geography", Difficulty: model.DifficultyEasy},
		{ID: "q3", QuestionText: "2+2?", Choices: []string{"3", "4", "5"}, CorrectAnswer: "4", Category: "Mathematics", Difficulty: model.DifficultyMedium},
		{ID: "q4", QuestionText: "H2O is?", Choices: []string{"Water", "Salt"}, CorrectAnswer: "Water", Category: "Science", Difficulty: model.DifficultyHard},
	}
}
