package dto

// QuestionImportDTO is one question of a seed file or of a generated batch.
type QuestionImportDTO struct {
	QuestionText  string   `json:"questionText" yaml:"questionText"`
	Choices       []string `json:"choices" yaml:"choices"`
	CorrectAnswer string   `json:"correctAnswer" yaml:"correctAnswer"`
	Category      string   `json:"category,omitempty" yaml:"category,omitempty"`
	Difficulty    string   `json:"difficulty,omitempty" yaml:"difficulty,omitempty"`
}

// QuestionImportFile accepts both a bare list and a {questions: [...]} wrapper.
type QuestionImportFile struct {
	Questions []QuestionImportDTO `json:"questions" yaml:"questions"`
}

// ImportSummary reports what a reseed did.
type ImportSummary struct {
	Deleted   int64    `json:"deleted"`
	Inserted  int      `json:"inserted"`
	Generated int      `json:"generated"`
	Warnings  []string `json:"warnings,omitempty"`
}
