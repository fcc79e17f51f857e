package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lshigami/Quizzy/internal/model"
	"gorm.io/gorm"
)

// ErrNotFound is returned when no question matches the id, including ids that
// are not well-formed for the backing store.
var ErrNotFound = errors.New("question not found")

// QuestionFilter holds optional equality filters. Empty fields match everything.
type QuestionFilter struct {
	Category   string
	Difficulty string
}

type QuestionRepository interface {
	Find(ctx context.Context, filter QuestionFilter) ([]model.Question, error)
	FindByID(ctx context.Context, id string) (*model.Question, error)
	// FindByIDs returns the stored questions keyed by the ids as given, so any
	// spelling FindByID accepts resolves here too. Unknown and malformed ids
	// are simply absent from the map.
	FindByIDs(ctx context.Context, ids []string) (map[string]model.Question, error)
	DistinctCategories(ctx context.Context) ([]string, error)
	Count(ctx context.Context) (int64, error)
	// ReplaceAll deletes every stored question and inserts the given ones.
	ReplaceAll(ctx context.Context, questions []model.Question) (deleted int64, err error)
}

type questionRepository struct {
	db *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) QuestionRepository {
	return &questionRepository{db: db}
}

func (r *questionRepository) Find(ctx context.Context, filter QuestionFilter) ([]model.Question, error) {
	query := r.db.WithContext(ctx)
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.Difficulty != "" {
		query = query.Where("difficulty = ?", filter.Difficulty)
	}
	questions := []model.Question{}
	if err := query.Order("created_at ASC, id ASC").Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

func (r *questionRepository) FindByID(ctx context.Context, id string) (*model.Question, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrNotFound
	}
	var question model.Question
	if err := r.db.WithContext(ctx).First(&question, "id = ?", parsed.String()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &question, nil
}

func (r *questionRepository) FindByIDs(ctx context.Context, ids []string) (map[string]model.Question, error) {
	valid := make([]string, 0, len(ids))
	requested := make(map[string][]string, len(ids))
	for _, id := range ids {
		parsed, err := uuid.Parse(id)
		if err != nil {
			continue
		}
		canonical := parsed.String()
		if _, seen := requested[canonical]; !seen {
			valid = append(valid, canonical)
		}
		requested[canonical] = append(requested[canonical], id)
	}
	found := make(map[string]model.Question, len(ids))
	if len(valid) == 0 {
		return found, nil
	}
	var questions []model.Question
	if err := r.db.WithContext(ctx).Where("id IN ?", valid).Find(&questions).Error; err != nil {
		return nil, err
	}
	for _, q := range questions {
		for _, id := range requested[q.ID] {
			found[id] = q
		}
	}
	return found, nil
}

func (r *questionRepository) DistinctCategories(ctx context.Context) ([]string, error) {
	categories := []string{}
	if err := r.db.WithContext(ctx).Model(&model.Question{}).Distinct().Pluck("category", &categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *questionRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Question{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// ReplaceAll stamps CreatedAt one microsecond apart so Find returns the
// questions in the order given.
func (r *questionRepository) ReplaceAll(ctx context.Context, questions []model.Question) (int64, error) {
	now := time.Now().UTC().Truncate(time.Microsecond)
	for i := range questions {
		if questions[i].CreatedAt.IsZero() {
			questions[i].CreatedAt = now.Add(time.Duration(i) * time.Microsecond)
			questions[i].UpdatedAt = questions[i].CreatedAt
		}
	}
	var deleted int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&model.Question{})
		if res.Error != nil {
			return fmt.Errorf("clear questions: %w", res.Error)
		}
		deleted = res.RowsAffected
		if len(questions) == 0 {
			return nil
		}
		if err := tx.CreateInBatches(&questions, 100).Error; err != nil {
			return fmt.Errorf("insert questions: %w", err)
		}
		return nil
	})
	return deleted, err
}
