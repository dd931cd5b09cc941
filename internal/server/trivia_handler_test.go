package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	mock_trivia "github.com/ddanielcruz/numbertrivia/internal/mocks/trivia"
	"github.com/ddanielcruz/numbertrivia/internal/trivia"
)

func TestTriviaHandler_GetByNumber(t *testing.T) {
	record := trivia.TriviaRecord{Text: "42 is the answer.", Number: 42}

	tests := []struct {
		name            string
		path            string
		setupRepository func(repository *mock_trivia.MockRepository)
		wantStatus      int
		wantBody        map[string]any
	}{
		{
			name: "successful lookup",
			path: "/api/trivia/42",
			setupRepository: func(repository *mock_trivia.MockRepository) {
				repository.EXPECT().GetByNumber(gomock.Any(), int64(42)).Return(record, nil)
			},
			wantStatus: http.StatusOK,
			wantBody: map[string]any{
				"text":   "42 is the answer.",
				"number": float64(42),
			},
		},
		{
			name:            "invalid number is rejected before the repository",
			path:            "/api/trivia/abc",
			setupRepository: func(repository *mock_trivia.MockRepository) {},
			wantStatus:      http.StatusBadRequest,
			wantBody: map[string]any{
				"error": "Invalid Input - The number must be a positive integer or zero.",
			},
		},
		{
			name: "server failure maps to bad gateway",
			path: "/api/trivia/42",
			setupRepository: func(repository *mock_trivia.MockRepository) {
				repository.EXPECT().GetByNumber(gomock.Any(), int64(42)).Return(trivia.TriviaRecord{}, trivia.Failure{Kind: trivia.ServerFailure})
			},
			wantStatus: http.StatusBadGateway,
			wantBody: map[string]any{
				"error": "Server Failure",
			},
		},
		{
			name: "cache failure maps to service unavailable",
			path: "/api/trivia/42",
			setupRepository: func(repository *mock_trivia.MockRepository) {
				repository.EXPECT().GetByNumber(gomock.Any(), int64(42)).Return(trivia.TriviaRecord{}, trivia.Failure{Kind: trivia.CacheFailure})
			},
			wantStatus: http.StatusServiceUnavailable,
			wantBody: map[string]any{
				"error": "Cache Failure",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repository := mock_trivia.NewMockRepository(ctrl)
			tt.setupRepository(repository)

			mux := http.NewServeMux()
			NewTriviaHandler(repository).Register(mux)

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

			var body map[string]any
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.wantBody, body)
		})
	}
}

func TestTriviaHandler_GetRandom(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	record := trivia.TriviaRecord{Text: "7 is lucky.", Number: 7}
	repository := mock_trivia.NewMockRepository(ctrl)
	repository.EXPECT().GetRandom(gomock.Any()).Return(record, nil)

	mux := http.NewServeMux()
	NewTriviaHandler(repository).Register(mux)

	req := httptest.NewRequest(http.MethodGet, "/api/trivia/random", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var got trivia.TriviaRecord
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, record, got)
}

func TestCORSMiddleware(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := CORSMiddleware([]string{"http://localhost:3000"}, next)

	tests := []struct {
		name       string
		method     string
		origin     string
		wantStatus int
		wantOrigin string
	}{
		{
			name:       "allowed origin",
			method:     http.MethodGet,
			origin:     "http://localhost:3000",
			wantStatus: http.StatusOK,
			wantOrigin: "http://localhost:3000",
		},
		{
			name:       "disallowed origin",
			method:     http.MethodGet,
			origin:     "http://evil.example.com",
			wantStatus: http.StatusOK,
			wantOrigin: "",
		},
		{
			name:       "preflight request",
			method:     http.MethodOptions,
			origin:     "http://localhost:3000",
			wantStatus: http.StatusNoContent,
			wantOrigin: "http://localhost:3000",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, "/api/trivia/random", nil)
			req.Header.Set("Origin", tt.origin)
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantOrigin, rec.Header().Get("Access-Control-Allow-Origin"))
		})
	}
}
