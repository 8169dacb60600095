package chi_test

import (
	"encoding/json"
	"io"
	"log/slog"
	httpgo "net/http"
	"net/http/httptest"
	"testing"
	"training-reels/internal/adapters/handlers/http/chi"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

func TestRouter_Health(t *testing.T) {

	//Arrange
	h := chi.NewRouter(discardLogger, nil, nil, "")
	w := httptest.NewRecorder()
	req := httptest.NewRequest(httpgo.MethodGet, "/health", nil)

	//Act
	h.ServeHTTP(w, req)

	//Assert
	require.Equal(t, httpgo.StatusOK, w.Code)
	var resp chi.HealthResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, "ok", resp.Status)
	assert.False(t, resp.Timestamp.IsZero())
}

func TestRouter_CORS(t *testing.T) {

	t.Run("allowed outside prod", func(t *testing.T) {

		//Arrange
		h := chi.NewRouter(discardLogger, nil, nil, "dev")
		w := httptest.NewRecorder()
		req := httptest.NewRequest(httpgo.MethodGet, "/health", nil)
		req.Header.Set("Origin", "http://localhost:5173")

		//Act
		h.ServeHTTP(w, req)

		//Assert
		assert.Equal(t, "http://localhost:5173", w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("disabled in prod", func(t *testing.T) {

		//Arrange
		h := chi.NewRouter(discardLogger, nil, nil, "prod")
		w := httptest.NewRecorder()
		req := httptest.NewRequest(httpgo.MethodGet, "/health", nil)
		req.Header.Set("Origin", "http://localhost:5173")

		//Act
		h.ServeHTTP(w, req)

		//Assert
		assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
	})
}
