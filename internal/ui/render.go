package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	colorTitle   = lipgloss.Color("63")
	colorMuted   = lipgloss.Color("242")
	colorCursor  = lipgloss.Color("212")
	colorCorrect = lipgloss.Color("42")
	colorWrong   = lipgloss.Color("196")
)

func (m Model) renderHome() string {
	var b strings.Builder
	b.WriteString(m.bold("Quiz App", colorTitle))
	b.WriteString("\n")
	b.WriteString(m.stylize("Test your knowledge across categories.", colorMuted))
	b.WriteString("\n\n")

	if m.home.loading {
		b.WriteString(m.spinner.View() + " Loading categories...\n")
		return b.String()
	}
	if m.home.err != nil {
		b.WriteString(m.stylize("Could not load categories; only All is available. Press r to retry.", colorWrong))
		b.WriteString("\n\n")
	}

	b.WriteString("Select a category:\n")
	for i, option := range m.home.options() {
		b.WriteString(m.option(i == m.home.cursor, option))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(m.stylize("↑/↓ choose • enter start quiz • q quit", colorMuted))
	return b.String()
}

func (m Model) renderQuiz() string {
	q := m.quiz
	var b strings.Builder
	b.WriteString(m.bold("Category: "+q.params.Category, colorTitle))
	b.WriteString("\n\n")

	switch {
	case q.loading:
		b.WriteString(m.spinner.View() + " Loading questions...\n")
		return b.String()
	case q.loadErr != "":
		b.WriteString(m.stylize(q.loadErr, colorWrong))
		b.WriteString("\n\n")
		b.WriteString(m.stylize("r retry • h back to home", colorMuted))
		return b.String()
	case q.empty():
		b.WriteString(noQuestionsMessage)
		b.WriteString("\n\n")
		b.WriteString(m.stylize("h back to home", colorMuted))
		return b.String()
	}

	question := q.questions[q.current]
	total := len(q.questions)
	fmt.Fprintf(&b, "Question %d of %d   Answered: %d/%d   Time: %s\n",
		q.current+1, total, q.answeredCount(), total, FormatElapsed(q.elapsed))
	b.WriteString(m.progress.ViewAs(float64(q.current+1) / float64(total)))
	b.WriteString("\n\n")

	b.WriteString(m.bold(question.QuestionText, lipgloss.Color("255")))
	b.WriteString("\n")
	b.WriteString(m.stylize(fmt.Sprintf("%s • %s", question.Category, question.Difficulty), colorMuted))
	b.WriteString("\n\n")

	selected := q.answers[question.ID]
	for i, choice := range question.Choices {
		mark := " "
		if choice == selected {
			mark = "•"
		}
		b.WriteString(m.option(i == q.cursor, fmt.Sprintf("%d. [%s] %s", i+1, mark, choice)))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(m.jumpList())
	b.WriteString("\n\n")

	if q.submitting {
		b.WriteString(m.spinner.View() + " Submitting...\n")
	}
	if q.submitErr != "" {
		b.WriteString(m.stylize(q.submitErr, colorWrong))
		b.WriteString("\n")
	}

	help := "1-9/enter select • ←/→ previous/next • tab next unanswered • esc home"
	if q.canSubmit() {
		help += " • s submit"
	}
	b.WriteString(m.stylize(help, colorMuted))
	return b.String()
}

func (m Model) jumpList() string {
	parts := make([]string, 0, len(m.quiz.questions))
	for i, question := range m.quiz.questions {
		label := fmt.Sprintf("%d", i+1)
		if _, ok := m.quiz.answers[question.ID]; ok {
			label += "✓"
		}
		if i == m.quiz.current {
			label = m.bold("["+label+"]", colorCursor)
		}
		parts = append(parts, label)
	}
	return strings.Join(parts, " ")
}

func (m Model) renderResults() string {
	p := m.results.params
	var b strings.Builder
	b.WriteString(m.bold("Quiz Results", colorTitle))
	b.WriteString("\n")
	b.WriteString(m.stylize("Category: "+p.Category, colorMuted))
	b.WriteString("\n\n")

	if p.Result == nil {
		b.WriteString("No results to display.\n\n")
		b.WriteString(m.stylize("h home • q quit", colorMuted))
		return b.String()
	}
	r := p.Result

	fmt.Fprintf(&b, "%s  %s\n", m.bold(fmt.Sprintf("%.2f%%", r.Percentage), m.gradeColor()), m.results.grade.Label)
	fmt.Fprintf(&b, "Correct: %d   Incorrect: %d   Total: %d   Time taken: %s\n\n",
		r.CorrectAnswers, r.IncorrectAnswers, r.TotalQuestions, FormatElapsed(p.Elapsed))

	b.WriteString(m.bold("Review", colorTitle))
	b.WriteString("\n")
	for i, item := range r.Results {
		mark, color := "✗", colorWrong
		if item.IsCorrect {
			mark, color = "✓", colorCorrect
		}
		fmt.Fprintf(&b, "%s %d. %s\n", m.stylize(mark, color), i+1, item.QuestionText)
		answer := item.SelectedAnswer
		if answer == "" {
			answer = "Not answered"
		}
		fmt.Fprintf(&b, "   Your answer: %s\n", answer)
		if !item.IsCorrect {
			fmt.Fprintf(&b, "   Correct answer: %s\n", item.CorrectAnswer)
		}
	}
	if len(r.UnknownQuestionIDs) > 0 {
		b.WriteString("\n")
		b.WriteString(m.stylize(fmt.Sprintf("%d answer(s) referenced questions that no longer exist.", len(r.UnknownQuestionIDs)), colorMuted))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(m.stylize("h home • r retake • q quit", colorMuted))
	return b.String()
}

func (m Model) gradeColor() lipgloss.Color {
	switch m.results.grade.Tier {
	case "outstanding", "great":
		return colorCorrect
	case "good", "practice":
		return lipgloss.Color("214")
	}
	return colorWrong
}

func (m Model) option(active bool, text string) string {
	if active {
		return m.bold("> "+text, colorCursor)
	}
	return "  " + text
}

func (m Model) stylize(text string, color lipgloss.Color) string {
	if m.noColor {
		return text
	}
	return lipgloss.NewStyle().Foreground(color).Render(text)
}

func (m Model) bold(text string, color lipgloss.Color) string {
	if m.noColor {
		return text
	}
	return lipgloss.NewStyle().Bold(true).Foreground(color).Render(text)
}
