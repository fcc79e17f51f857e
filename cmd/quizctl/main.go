// Command quizctl is a terminal client for the quiz API.
package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/lshigami/Quizzy/internal/client"
	"github.com/lshigami/Quizzy/internal/ui"
	flag "github.com/spf13/pflag"
)

func main() {
	apiURL := flag.String("api", envOr("QUIZ_API_URL", "http://localhost:5000/api"), "base URL of the quiz API")
	noColor := flag.Bool("no-color", os.Getenv("NO_COLOR") != "", "disable colors")
	flag.Parse()

	model := ui.NewModel(client.New(*apiURL, nil), ui.Options{NoColor: *noColor})
	if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
		fmt.Fprintln(os.Stderr, "quizctl:", err)
		os.Exit(1)
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
