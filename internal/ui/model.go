// Package ui is the terminal quiz client: Home, Quiz and Results screens
// driven by Bubble Tea.
package ui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/lshigami/Quizzy/internal/dto"
	"github.com/lshigami/Quizzy/internal/service"
)

// AllCategories is the Home option that disables the category filter.
const AllCategories = "All"

const requestTimeout = 15 * time.Second

// API is the subset of the quiz API the client needs.
type API interface {
	Categories(ctx context.Context) ([]string, error)
	Questions(ctx context.Context, category string) ([]dto.QuestionResponse, error)
	Submit(ctx context.Context, req dto.SubmitAnswersRequest) (*dto.ScoreResult, error)
}

type screen int

const (
	screenHome screen = iota
	screenQuiz
	screenResults
)

// QuizParams starts a quiz. Category is AllCategories or one category name.
type QuizParams struct {
	Category string
}

// ResultsParams carries a scored submission to the Results screen.
type ResultsParams struct {
	Result   *dto.ScoreResult
	Elapsed  time.Duration
	Category string
}

type Options struct {
	NoColor      bool
	TickInterval time.Duration
}

// Model is the root Bubble Tea model. Exactly one screen is active.
type Model struct {
	api      API
	grader   service.ScoreConverterService
	noColor  bool
	interval time.Duration

	screen  screen
	session int
	width   int

	spinner  spinner.Model
	progress progress.Model

	home    homeState
	quiz    quizState
	results resultsState
}

func NewModel(api API, opts Options) Model {
	interval := opts.TickInterval
	if interval <= 0 {
		interval = time.Second
	}
	s := spinner.New()
	s.Spinner = spinner.Dot
	p := progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage())
	p.Width = 40
	return Model{
		api:      api,
		grader:   service.NewScoreConverterService(),
		noColor:  opts.NoColor,
		interval: interval,
		screen:   screenHome,
		spinner:  s,
		progress: p,
		home:     homeState{loading: true},
	}
}

// Init loads the categories for the Home screen.
func (m Model) Init() tea.Cmd {
	return tea.Batch(loadCategories(m.api), m.spinner.Tick)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.KeyMsg:
		if typed.String() == "ctrl+c" {
			return m, tea.Quit
		}
		switch m.screen {
		case screenHome:
			return m.updateHome(typed)
		case screenQuiz:
			return m.updateQuiz(typed)
		case screenResults:
			return m.updateResults(typed)
		}
	case tea.WindowSizeMsg:
		m.width = typed.Width
		m.progress.Width = clamp(typed.Width-4, 10, 60)
		return m, nil
	case spinner.TickMsg:
		if !m.busy() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(typed)
		return m, cmd
	case categoriesMsg:
		m.home.loading = false
		m.home.err = typed.err
		m.home.categories = typed.categories
		if m.home.cursor >= len(m.home.options()) {
			m.home.cursor = 0
		}
		return m, nil
	case questionsMsg:
		if typed.session != m.session || m.screen != screenQuiz {
			return m, nil
		}
		m.quiz = m.quiz.loaded(typed.questions, typed.err)
		return m, nil
	case submittedMsg:
		if typed.session != m.session || m.screen != screenQuiz {
			return m, nil
		}
		m.quiz.submitting = false
		if typed.err != nil {
			m.quiz.submitErr = submitFailedMessage
			return m, nil
		}
		return m.toResults(ResultsParams{
			Result:   typed.result,
			Elapsed:  m.quiz.elapsed,
			Category: m.quiz.params.Category,
		})
	case tickMsg:
		if typed.session != m.session || m.screen != screenQuiz {
			return m, nil
		}
		if m.quiz.running() {
			m.quiz.elapsed += time.Second
		}
		return m, tick(m.session, m.interval)
	}
	return m, nil
}

func (m Model) View() string {
	switch m.screen {
	case screenQuiz:
		return m.renderQuiz()
	case screenResults:
		return m.renderResults()
	}
	return m.renderHome()
}

func (m Model) busy() bool {
	switch m.screen {
	case screenHome:
		return m.home.loading
	case screenQuiz:
		return m.quiz.loading || m.quiz.submitting
	}
	return false
}

func (m Model) toHome() (Model, tea.Cmd) {
	m.session++
	m.screen = screenHome
	m.home = homeState{loading: true, cursor: m.home.cursor}
	return m, tea.Batch(loadCategories(m.api), m.spinner.Tick)
}

func (m Model) toQuiz(p QuizParams) (Model, tea.Cmd) {
	if p.Category == "" {
		p.Category = AllCategories
	}
	m.session++
	m.screen = screenQuiz
	m.quiz = newQuizState(p)
	return m, tea.Batch(
		loadQuestions(m.api, m.session, p),
		tick(m.session, m.interval),
		m.spinner.Tick,
	)
}

func (m Model) toResults(p ResultsParams) (Model, tea.Cmd) {
	m.session++
	m.screen = screenResults
	m.results = resultsState{params: p}
	if p.Result != nil {
		m.results.grade = m.grader.Grade(p.Result.Percentage)
	}
	return m, nil
}

type homeState struct {
	categories []string
	cursor     int
	loading    bool
	err        error
}

func (h homeState) options() []string {
	return append([]string{AllCategories}, h.categories...)
}

func (m Model) updateHome(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc":
		return m, tea.Quit
	case "up", "k":
		if m.home.cursor > 0 {
			m.home.cursor--
		}
	case "down", "j":
		if m.home.cursor < len(m.home.options())-1 {
			m.home.cursor++
		}
	case "r":
		return m.toHome()
	case "enter", " ":
		if m.home.loading {
			return m, nil
		}
		return m.toQuiz(QuizParams{Category: m.home.options()[m.home.cursor]})
	}
	return m, nil
}

type resultsState struct {
	params ResultsParams
	grade  service.Grade
}

func (m Model) updateResults(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "h", "esc":
		return m.toHome()
	case "r":
		return m.toQuiz(QuizParams{Category: m.results.params.Category})
	case "q":
		return m, tea.Quit
	}
	return m, nil
}

type categoriesMsg struct {
	categories []string
	err        error
}

type questionsMsg struct {
	session   int
	questions []dto.QuestionResponse
	err       error
}

type submittedMsg struct {
	session int
	result  *dto.ScoreResult
	err     error
}

type tickMsg struct {
	session int
}

func loadCategories(api API) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		categories, err := api.Categories(ctx)
		return categoriesMsg{categories: categories, err: err}
	}
}

func loadQuestions(api API, session int, p QuizParams) tea.Cmd {
	category := p.Category
	if category == AllCategories {
		category = ""
	}
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		questions, err := api.Questions(ctx, category)
		return questionsMsg{session: session, questions: questions, err: err}
	}
}

func submitAnswers(api API, session int, req dto.SubmitAnswersRequest) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		result, err := api.Submit(ctx, req)
		return submittedMsg{session: session, result: result, err: err}
	}
}

func tick(session int, interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(time.Time) tea.Msg { return tickMsg{session: session} })
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
