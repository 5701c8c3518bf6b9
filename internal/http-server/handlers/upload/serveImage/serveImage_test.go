package serveImage

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"smartInvite/internal/config"
	"smartInvite/internal/lib/logger/handlers/slogdiscard"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServeImageHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "party.png"), []byte("png bytes"), 0644))

	// a file next to, but outside of, the upload directory
	outside := filepath.Join(filepath.Dir(dir), "secret.txt")
	require.NoError(t, os.WriteFile(outside, []byte("secret"), 0644))

	cfg := config.Uploads{Dir: dir}

	router := chi.NewRouter()
	router.Get("/uploads/*", New(logger, cfg))

	t.Run("Success", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/uploads/party.png", nil)
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "image/png", rr.Header().Get("Content-Type"))
		assert.Contains(t, rr.Header().Get("Cache-Control"), "immutable")
		assert.Equal(t, "png bytes", rr.Body.String())
	})

	t.Run("Missing file", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/uploads/nope.png", nil)
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.JSONEq(t, `{"status":"Error","error":"image not found"}`, rr.Body.String())
	})

	t.Run("Path escape rejected", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/uploads/x", nil)
		rr := httptest.NewRecorder()

		// bypass client-side URL cleaning, the handler must reject on its own
		rctx := chi.NewRouteContext()
		rctx.URLParams.Add("*", "../secret.txt")
		req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

		New(logger, cfg).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusForbidden, rr.Code)
		assert.JSONEq(t, `{"status":"Error","error":"access denied"}`, rr.Body.String())
	})
}
