// Package server exposes the trivia use cases over a JSON HTTP API.
package server

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"slices"

	"github.com/ddanielcruz/numbertrivia/internal/trivia"
)

// Messages shown for each failure kind. The core never carries message text;
// mapping a kind to words is this layer's concern.
const (
	serverFailureMessage       = "Server Failure"
	cacheFailureMessage        = "Cache Failure"
	invalidInputFailureMessage = "Invalid Input - The number must be a positive integer or zero."
)

// TriviaHandler serves trivia lookups over HTTP.
type TriviaHandler struct {
	concrete *trivia.GetConcreteNumberTrivia
	random   *trivia.GetRandomNumberTrivia
}

// NewTriviaHandler creates a new TriviaHandler on top of the repository.
func NewTriviaHandler(repository trivia.Repository) *TriviaHandler {
	return &TriviaHandler{
		concrete: trivia.NewGetConcreteNumberTrivia(repository),
		random:   trivia.NewGetRandomNumberTrivia(repository),
	}
}

// Register installs the handler's routes on mux.
func (h *TriviaHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/trivia/random", h.handleRandom)
	mux.HandleFunc("GET /api/trivia/{number}", h.handleByNumber)
}

func (h *TriviaHandler) handleByNumber(w http.ResponseWriter, r *http.Request) {
	record, err := h.concrete.Execute(r.Context(), r.PathValue("number"))
	if err != nil {
		writeFailure(w, err)
		return
	}
	writeJSON(w, http.StatusOK, record)
}

func (h *TriviaHandler) handleRandom(w http.ResponseWriter, r *http.Request) {
	record, err := h.random.Execute(r.Context())
	if err != nil {
		writeFailure(w, err)
		return
	}
	writeJSON(w, http.StatusOK, record)
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeFailure(w http.ResponseWriter, err error) {
	switch trivia.KindOf(err) {
	case trivia.InvalidInputFailure:
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: invalidInputFailureMessage})
	case trivia.ServerFailure:
		writeJSON(w, http.StatusBadGateway, errorResponse{Error: serverFailureMessage})
	case trivia.CacheFailure:
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: cacheFailureMessage})
	default:
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "Unexpected Error"})
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Default().Warn("failed to encode response body", "error", err)
	}
}

// CORSMiddleware allows browser clients on the configured origins to call
// the API.
func CORSMiddleware(allowedOrigins []string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if origin := r.Header.Get("Origin"); origin != "" && slices.Contains(allowedOrigins, origin) {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
			w.Header().Set("Access-Control-Max-Age", "3600")
		}

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}
