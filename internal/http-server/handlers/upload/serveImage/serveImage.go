package serveImage

import (
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"smartInvite/internal/config"
	"smartInvite/internal/lib/api/response"
	"smartInvite/internal/lib/logger/sl"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

// New returns the uploaded-image handler. Requests resolving outside the
// upload directory are rejected before any file access.
func New(log *slog.Logger, cfg config.Uploads) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.upload.serveImage.New"

		log = log.With(slog.String("op", op))

		rel := chi.URLParam(r, "*")
		if rel == "" {
			log.Error("image path is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("image path is required"))
			return
		}

		absDir, err := filepath.Abs(cfg.Dir)
		if err != nil {
			log.Error("failed to resolve upload directory", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to serve image"))
			return
		}

		absPath, err := filepath.Abs(filepath.Join(cfg.Dir, rel))
		if err != nil || !strings.HasPrefix(absPath, absDir+string(filepath.Separator)) {
			log.Error("path escapes upload directory", slog.String("path", rel))
			render.Status(r, http.StatusForbidden)
			render.JSON(w, r, response.Error("access denied"))
			return
		}

		data, err := os.ReadFile(absPath)
		if err != nil {
			if os.IsNotExist(err) {
				log.Error("image not found", slog.String("path", rel))
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("image not found"))
				return
			}

			log.Error("failed to read image", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to serve image"))
			return
		}

		w.Header().Set("Content-Type", contentTypeFor(absPath))
		w.Header().Set("Cache-Control", "public, max-age=31536000, immutable")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)
	}
}

func contentTypeFor(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".png":
		return "image/png"
	case ".gif":
		return "image/gif"
	case ".webp":
		return "image/webp"
	default:
		return "application/octet-stream"
	}
}
