package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Difficulty string

const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
)

const DefaultCategory = "General"

// ParseDifficulty accepts the three levels case-insensitively. An empty string
// yields DifficultyMedium.
func ParseDifficulty(s string) (Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return DifficultyMedium, nil
	case "easy":
		return DifficultyEasy, nil
	case "medium":
		return DifficultyMedium, nil
	case "hard":
		return DifficultyHard, nil
	}
	return "", fmt.Errorf("invalid difficulty %q (want Easy, Medium or Hard)", s)
}

func (d Difficulty) Valid() bool {
	return d == DifficultyEasy || d == DifficultyMedium || d == DifficultyHard
}

// Question is a multiple-choice item with exactly one correct choice.
// CorrectAnswer is expected to be one of Choices but the store does not enforce it.
type Question struct {
	ID            string                      `gorm:"primaryKey;size:36" json:"id"`
	QuestionText  string                      `gorm:"type:text;not null" json:"questionText"`
	Choices       datatypes.JSONSlice[string] `gorm:"not null" json:"choices"`
	CorrectAnswer string                      `gorm:"type:text;not null" json:"correctAnswer"`
	Category      string                      `gorm:"not null;default:General;index" json:"category"`
	Difficulty    Difficulty                  `gorm:"size:16;not null;default:Medium;index" json:"difficulty"`
	Version       int                         `gorm:"not null;default:0" json:"-"`
	CreatedAt     time.Time                   `json:"createdAt"`
	UpdatedAt     time.Time                   `json:"updatedAt"`
}

// BeforeCreate fills in the id and the schema defaults for SQL stores.
func (q *Question) BeforeCreate(tx *gorm.DB) error {
	if q.ID == "" {
		q.ID = uuid.NewString()
	}
	q.ApplyDefaults()
	return nil
}

// ApplyDefaults sets Category and Difficulty when they were left empty.
func (q *Question) ApplyDefaults() {
	if strings.TrimSpace(q.Category) == "" {
		q.Category = DefaultCategory
	}
	if q.Difficulty == "" {
		q.Difficulty = DifficultyMedium
	}
}

// HasChoice reports whether answer is one of the question's choices.
func (q *Question) HasChoice(answer string) bool {
	for _, c := range q.Choices {
		if c == answer {
			return true
		}
	}
	return false
}
