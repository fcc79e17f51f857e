package dto

import "encoding/json"

// QuestionQuery carries the optional equality filters of GET /api/questions.
type QuestionQuery struct {
	Category   string `form:"category"`
	Difficulty string `form:"difficulty"`
}

// AnswerSubmission is one entry of a submission.
type AnswerSubmission struct {
	QuestionID     string `json:"questionId" example:"652f1c0e9b1e8a3d4c5b6a71"`
	SelectedAnswer string `json:"selectedAnswer" example:"Au"`

	idNotText     bool
	answerNotText bool
}

// UnmarshalJSON accepts any JSON value as an entry. A non-object entry has no
// question id. A field holding a non-string value keeps its raw JSON text and
// is marked so it never resolves (questionId) or never matches (selectedAnswer).
func (a *AnswerSubmission) UnmarshalJSON(data []byte) error {
	*a = AnswerSubmission{}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil
	}
	a.QuestionID, a.idNotText = lenientString(fields["questionId"])
	a.SelectedAnswer, a.answerNotText = lenientString(fields["selectedAnswer"])
	return nil
}

func lenientString(raw json.RawMessage) (string, bool) {
	if len(raw) == 0 {
		return "", false
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return string(raw), true
	}
	return s, false
}

// Resolvable reports whether QuestionID was sent as a string (or omitted).
func (a AnswerSubmission) Resolvable() bool {
	return !a.idNotText
}

// Gradable reports whether SelectedAnswer was sent as a string (or omitted).
func (a AnswerSubmission) Gradable() bool {
	return !a.answerNotText
}

// SubmitAnswersRequest is the body of POST /api/questions/submit.
// A nil Answers means the field was missing or null.
type SubmitAnswersRequest struct {
	Answers []AnswerSubmission `json:"answers"`
}
