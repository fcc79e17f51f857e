package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/lshigami/Quizzy/internal/dto"
)

func newAPI(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/api/questions/meta/categories", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]string{"Science", "History"})
	})
	mux.HandleFunc("/api/questions", func(w http.ResponseWriter, r *http.Request) {
		category := r.URL.Query().Get("category")
		out := []dto.QuestionResponse{{ID: "q1", QuestionText: "Pick B", Choices: []string{"A", "B"}, Category: "Science"}}
		if category != "" && category != "Science" {
			out = []dto.QuestionResponse{}
		}
		json.NewEncoder(w).Encode(out)
	})
	mux.HandleFunc("/api/questions/submit", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.Header.Get("Content-Type") != "application/json" {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		var req dto.SubmitAnswersRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Answers == nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(dto.ErrorResponse{Message: "Invalid answers format"})
			return
		}
		json.NewEncoder(w).Encode(dto.ScoreResult{TotalQuestions: len(req.Answers), CorrectAnswers: 1, Percentage: 100, Results: []dto.QuestionResult{}})
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

// TestClientRoundTrips verifies each call decodes the API payloads.
func TestClientRoundTrips(t *testing.T) {
	srv := newAPI(t)
	c := New(srv.URL+"/api/", nil)
	ctx := context.Background()

	categories, err := c.Categories(ctx)
	if err != nil || len(categories) != 2 {
		t.Fatalf("categories: %v %v", categories, err)
	}

	all, err := c.Questions(ctx, "")
	if err != nil || len(all) != 1 || all[0].ID != "q1" {
		t.Fatalf("questions: %+v %v", all, err)
	}
	none, err := c.Questions(ctx, "Art & Design")
	if err != nil || len(none) != 0 {
		t.Fatalf("filtered questions: %+v %v", none, err)
	}

	result, err := c.Submit(ctx, dto.SubmitAnswersRequest{Answers: []dto.AnswerSubmission{{QuestionID: "q1", SelectedAnswer: "B"}}})
	if err != nil || result.TotalQuestions != 1 || result.Percentage != 100 {
		t.Fatalf("submit: %+v %v", result, err)
	}
}

// TestClientAPIError verifies error bodies surface as *APIError.
func TestClientAPIError(t *testing.T) {
	srv := newAPI(t)
	c := New(srv.URL+"/api", nil)

	_, err := c.Submit(context.Background(), dto.SubmitAnswersRequest{})
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %v", err)
	}
	if apiErr.StatusCode != http.StatusBadRequest || apiErr.Message != "Invalid answers format" {
		t.Fatalf("unexpected error: %+v", apiErr)
	}
}
