package ui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/lshigami/Quizzy/internal/dto"
)

const (
	noQuestionsMessage  = "No questions available for this category."
	loadFailedMessage   = "Failed to load questions. Please try again."
	submitFailedMessage = "Failed to submit answers. Please try again."
)

type quizState struct {
	params    QuizParams
	questions []dto.QuestionResponse
	current   int
	cursor    int
	// answers maps question id to the selected choice.
	answers map[string]string
	elapsed time.Duration

	loading    bool
	loadErr    string
	submitting bool
	submitErr  string
}

func newQuizState(p QuizParams) quizState {
	return quizState{
		params:  p,
		answers: make(map[string]string),
		loading: true,
	}
}

func (q quizState) loaded(questions []dto.QuestionResponse, err error) quizState {
	q.loading = false
	if err != nil {
		q.loadErr = loadFailedMessage
		return q
	}
	q.questions = questions
	q.current = 0
	q.cursor = 0
	return q
}

func (q quizState) empty() bool {
	return !q.loading && q.loadErr == "" && len(q.questions) == 0
}

// running reports whether the elapsed timer should advance.
func (q quizState) running() bool {
	return !q.loading && q.loadErr == "" && len(q.questions) > 0 && !q.submitting
}

func (q quizState) answeredCount() int {
	n := 0
	for _, question := range q.questions {
		if _, ok := q.answers[question.ID]; ok {
			n++
		}
	}
	return n
}

func (q quizState) onLastQuestion() bool {
	return len(q.questions) > 0 && q.current == len(q.questions)-1
}

func (q quizState) canSubmit() bool {
	return q.onLastQuestion() && q.answeredCount() > 0 && !q.submitting
}

func (q quizState) goTo(index int) quizState {
	if index < 0 || index >= len(q.questions) {
		return q
	}
	q.current = index
	q.cursor = 0
	question := q.questions[index]
	if selected, ok := q.answers[question.ID]; ok {
		for i, choice := range question.Choices {
			if choice == selected {
				q.cursor = i
				break
			}
		}
	}
	return q
}

func (q quizState) choose(index int) quizState {
	if len(q.questions) == 0 {
		return q
	}
	question := q.questions[q.current]
	if index < 0 || index >= len(question.Choices) {
		return q
	}
	q.answers[question.ID] = question.Choices[index]
	q.cursor = index
	return q
}

// nextUnanswered returns the first unanswered question after the current
// one, wrapping around, or the current index when all are answered.
func (q quizState) nextUnanswered() int {
	n := len(q.questions)
	for step := 1; step <= n; step++ {
		i := (q.current + step) % n
		if _, ok := q.answers[q.questions[i].ID]; !ok {
			return i
		}
	}
	return q.current
}

func (m Model) updateQuiz(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	if key == "esc" {
		return m.toHome()
	}
	if m.quiz.loading || m.quiz.submitting {
		return m, nil
	}
	if m.quiz.loadErr != "" || m.quiz.empty() {
		switch key {
		case "r":
			return m.toQuiz(m.quiz.params)
		case "h", "q":
			return m.toHome()
		}
		return m, nil
	}

	question := m.quiz.questions[m.quiz.current]
	switch key {
	case "up", "k":
		if m.quiz.cursor > 0 {
			m.quiz.cursor--
		}
	case "down", "j":
		if m.quiz.cursor < len(question.Choices)-1 {
			m.quiz.cursor++
		}
	case "enter", " ":
		m.quiz = m.quiz.choose(m.quiz.cursor)
	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		m.quiz = m.quiz.choose(int(key[0] - '1'))
	case "left", "p":
		m.quiz = m.quiz.goTo(m.quiz.current - 1)
	case "right", "n":
		m.quiz = m.quiz.goTo(m.quiz.current + 1)
	case "tab":
		m.quiz = m.quiz.goTo(m.quiz.nextUnanswered())
	case "s":
		if !m.quiz.canSubmit() {
			return m, nil
		}
		m.quiz.submitting = true
		m.quiz.submitErr = ""
		req := BuildSubmission(m.quiz.questions, m.quiz.answers)
		return m, tea.Batch(submitAnswers(m.api, m.session, req), m.spinner.Tick)
	}
	return m, nil
}

// BuildSubmission lists every question in quiz order. Unanswered questions
// are sent with an empty selected answer.
func BuildSubmission(questions []dto.QuestionResponse, answers map[string]string) dto.SubmitAnswersRequest {
	req := dto.SubmitAnswersRequest{Answers: make([]dto.AnswerSubmission, 0, len(questions))}
	for _, q := range questions {
		req.Answers = append(req.Answers, dto.AnswerSubmission{
			QuestionID:     q.ID,
			SelectedAnswer: answers[q.ID],
		})
	}
	return req
}

// FormatElapsed renders d as m:ss.
func FormatElapsed(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int(d / time.Second)
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}
