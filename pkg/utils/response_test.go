package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRespondWithJSON(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		payload    any
		wantBody   string
	}{
		{
			name:       "struct payload",
			statusCode: http.StatusOK,
			payload:    Response{Message: "ok"},
			wantBody:   `{"message":"ok"}`,
		},
		{
			name:       "map payload",
			statusCode: http.StatusCreated,
			payload:    map[string]int{"id": 1},
			wantBody:   `{"id":1}`,
		},
		{
			name:       "nil payload writes no body",
			statusCode: http.StatusNoContent,
			payload:    nil,
			wantBody:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()

			RespondWithJSON(w, tt.statusCode, tt.payload)

			assert.Equal(t, tt.statusCode, w.Code)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
			if tt.wantBody == "" {
				assert.Empty(t, w.Body.String())
			} else {
				assert.JSONEq(t, tt.wantBody, w.Body.String())
			}
		})
	}
}

func TestRespondWithError(t *testing.T) {
	w := httptest.NewRecorder()

	RespondWithError(w, http.StatusBadRequest, "Invalid request body")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"message":"Invalid request body"}`, w.Body.String())
}
