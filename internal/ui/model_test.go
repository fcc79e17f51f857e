package ui

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/lshigami/Quizzy/internal/dto"
)

type fakeAPI struct {
	lastCategory string
	lastSubmit   dto.SubmitAnswersRequest
}

func (f *fakeAPI) Categories(context.Context) ([]string, error) {
	return []string{"Science", "History"}, nil
}

func (f *fakeAPI) Questions(_ context.Context, category string) ([]dto.QuestionResponse, error) {
	f.lastCategory = category
	return testQuestions(), nil
}

func (f *fakeAPI) Submit(_ context.Context, req dto.SubmitAnswersRequest) (*dto.ScoreResult, error) {
	f.lastSubmit = req
	return &dto.ScoreResult{}, nil
}

func testQuestions() []dto.QuestionResponse {
	return []dto.QuestionResponse{
		{ID: "q1", QuestionText: "Pick B", Choices: []string{"A", "B", "C", "D"}, Category: "Science", Difficulty: "Easy"},
		{ID: "q2", QuestionText: "Pick Y", Choices: []string{"X", "Y"}, Category: "Science", Difficulty: "Medium"},
		{ID: "q3", QuestionText: "Pick 3", Choices: []string{"1", "2", "3"}, Category: "Science", Difficulty: "Hard"},
	}
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func send(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("unexpected model type %T", next)
	}
	return model, cmd
}

// startQuiz drives Home to a loaded Quiz screen for the given category index.
func startQuiz(t *testing.T, api API, downs int) Model {
	t.Helper()
	m := NewModel(api, Options{NoColor: true})
	m, _ = send(t, m, categoriesMsg{categories: []string{"Science", "History"}})
	for i := 0; i < downs; i++ {
		m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyDown})
	}
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.screen != screenQuiz {
		t.Fatalf("expected quiz screen, got %v", m.screen)
	}
	m, _ = send(t, m, questionsMsg{session: m.session, questions: testQuestions()})
	return m
}

// TestHomeStartsQuizWithCategory verifies the Home transition carries the chosen category.
func TestHomeStartsQuizWithCategory(t *testing.T) {
	m := startQuiz(t, &fakeAPI{}, 1)
	if m.quiz.params.Category != "Science" {
		t.Fatalf("expected Science, got %q", m.quiz.params.Category)
	}
	if !strings.Contains(m.View(), "Question 1 of 3") {
		t.Fatalf("unexpected view:\n%s", m.View())
	}
}

// TestLoadQuestionsAllCategoriesUsesNoFilter verifies All maps to an unfiltered request.
func TestLoadQuestionsAllCategoriesUsesNoFilter(t *testing.T) {
	api := &fakeAPI{lastCategory: "unset"}
	msg := loadQuestions(api, 1, QuizParams{Category: AllCategories})()
	if api.lastCategory != "" {
		t.Fatalf("expected no category filter, got %q", api.lastCategory)
	}
	if loaded, ok := msg.(questionsMsg); !ok || len(loaded.questions) != 3 {
		t.Fatalf("unexpected msg: %#v", msg)
	}

	loadQuestions(api, 1, QuizParams{Category: "History"})()
	if api.lastCategory != "History" {
		t.Fatalf("expected History, got %q", api.lastCategory)
	}
}

// TestQuizSelectionAndNavigation verifies digit selection, navigation and the answered count.
func TestQuizSelectionAndNavigation(t *testing.T) {
	m := startQuiz(t, &fakeAPI{}, 0)

	m, _ = send(t, m, keyRunes("2"))
	if m.quiz.answers["q1"] != "B" {
		t.Fatalf("expected B selected, got %q", m.quiz.answers["q1"])
	}
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyRight})
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.quiz.answers["q2"] != "Y" {
		t.Fatalf("expected Y selected, got %q", m.quiz.answers["q2"])
	}
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	if m.quiz.current != 0 || m.quiz.cursor != 1 {
		t.Fatalf("expected to return to q1 with cursor on B, got %d/%d", m.quiz.current, m.quiz.cursor)
	}
	if m.quiz.answeredCount() != 2 {
		t.Fatalf("expected 2 answered, got %d", m.quiz.answeredCount())
	}
	m, _ = send(t, m, keyRunes("9"))
	if m.quiz.answers["q1"] != "B" {
		t.Fatalf("out of range digit must not change the answer")
	}

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.quiz.current != 2 {
		t.Fatalf("expected tab to jump to q3, got %d", m.quiz.current)
	}
}

// TestSubmitOnlyOnLastQuestion verifies the submit guard and the submission payload.
func TestSubmitOnlyOnLastQuestion(t *testing.T) {
	api := &fakeAPI{}
	m := startQuiz(t, api, 0)

	m, cmd := send(t, m, keyRunes("s"))
	if m.quiz.submitting || cmd != nil {
		t.Fatalf("must not submit before the last question")
	}

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyRight})
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyRight})
	m, cmd = send(t, m, keyRunes("s"))
	if m.quiz.submitting || cmd != nil {
		t.Fatalf("must not submit without any answer")
	}

	m, _ = send(t, m, keyRunes("3"))
	m, cmd = send(t, m, keyRunes("s"))
	if !m.quiz.submitting || cmd == nil {
		t.Fatalf("expected submission to start")
	}

	req := BuildSubmission(m.quiz.questions, m.quiz.answers)
	want := []dto.AnswerSubmission{{QuestionID: "q1"}, {QuestionID: "q2"}, {QuestionID: "q3", SelectedAnswer: "3"}}
	if len(req.Answers) != len(want) {
		t.Fatalf("unexpected submission: %+v", req)
	}
	for i := range want {
		if req.Answers[i] != want[i] {
			t.Fatalf("entry %d: expected %+v, got %+v", i, want[i], req.Answers[i])
		}
	}

	msg := submitAnswers(api, m.session, req)()
	if _, ok := msg.(submittedMsg); !ok || len(api.lastSubmit.Answers) != 3 {
		t.Fatalf("expected the submission to reach the API, got %#v", msg)
	}
}

// TestSubmitFailureShowsInlineError verifies a failed submit keeps the quiz open.
func TestSubmitFailureShowsInlineError(t *testing.T) {
	m := startQuiz(t, &fakeAPI{}, 0)
	m.quiz.submitting = true
	m, _ = send(t, m, submittedMsg{session: m.session, err: errors.New("boom")})
	if m.screen != screenQuiz || m.quiz.submitting {
		t.Fatalf("expected to stay on quiz")
	}
	if !strings.Contains(m.View(), submitFailedMessage) {
		t.Fatalf("expected inline error:\n%s", m.View())
	}
}

// TestResultsScreen verifies the grade band and the return to Home.
func TestResultsScreen(t *testing.T) {
	m := startQuiz(t, &fakeAPI{}, 1)
	m.quiz.elapsed = 83 * time.Second
	m.quiz.submitting = true
	result := &dto.ScoreResult{
		TotalQuestions: 4, CorrectAnswers: 3, IncorrectAnswers: 1, Percentage: 75,
		Results: []dto.QuestionResult{
			{QuestionID: "q1", QuestionText: "Pick B", SelectedAnswer: "B", CorrectAnswer: "B", IsCorrect: true},
			{QuestionID: "q2", QuestionText: "Pick Y", SelectedAnswer: "", CorrectAnswer: "Y"},
		},
	}
	m, _ = send(t, m, submittedMsg{session: m.session, result: result})
	if m.screen != screenResults {
		t.Fatalf("expected results screen, got %v", m.screen)
	}
	if m.results.params.Elapsed != 83*time.Second || m.results.params.Category != "Science" {
		t.Fatalf("unexpected results params: %+v", m.results.params)
	}
	view := m.View()
	for _, want := range []string{"75.00%", "Great Job!", "Time taken: 1:23", "Not answered", "Correct answer: Y"} {
		if !strings.Contains(view, want) {
			t.Fatalf("results view missing %q:\n%s", want, view)
		}
	}

	m, _ = send(t, m, keyRunes("h"))
	if m.screen != screenHome {
		t.Fatalf("expected home screen, got %v", m.screen)
	}
}

// TestQuizEmptyAndFailedLoads verifies the empty and error messages.
func TestQuizEmptyAndFailedLoads(t *testing.T) {
	m := NewModel(&fakeAPI{}, Options{NoColor: true})
	m, _ = m.toQuiz(QuizParams{Category: "History"})
	empty, _ := send(t, m, questionsMsg{session: m.session, questions: []dto.QuestionResponse{}})
	if !strings.Contains(empty.View(), noQuestionsMessage) {
		t.Fatalf("expected empty message:\n%s", empty.View())
	}
	failed, _ := send(t, m, questionsMsg{session: m.session, err: errors.New("down")})
	if !strings.Contains(failed.View(), loadFailedMessage) {
		t.Fatalf("expected load failure message:\n%s", failed.View())
	}
}

// TestTickAdvancesOnlyCurrentSession verifies the timer ignores stale ticks.
func TestTickAdvancesOnlyCurrentSession(t *testing.T) {
	m := startQuiz(t, &fakeAPI{}, 0)
	m, cmd := send(t, m, tickMsg{session: m.session})
	if m.quiz.elapsed != time.Second || cmd == nil {
		t.Fatalf("expected one second and a rescheduled tick, got %v", m.quiz.elapsed)
	}
	m, cmd = send(t, m, tickMsg{session: m.session - 1})
	if m.quiz.elapsed != time.Second || cmd != nil {
		t.Fatalf("stale tick must be dropped")
	}
	m, _ = send(t, m, questionsMsg{session: m.session - 1, questions: nil})
	if len(m.quiz.questions) != 3 {
		t.Fatalf("stale load must be dropped")
	}
}

// TestFormatElapsed verifies the m:ss rendering.
func TestFormatElapsed(t *testing.T) {
	cases := map[time.Duration]string{
		0:                "0:00",
		9 * time.Second:  "0:09",
		83 * time.Second: "1:23",
		10 * time.Minute: "10:00",
		-time.Second:     "0:00",
	}
	for d, want := range cases {
		if got := FormatElapsed(d); got != want {
			t.Fatalf("FormatElapsed(%v) = %q, want %q", d, got, want)
		}
	}
}
