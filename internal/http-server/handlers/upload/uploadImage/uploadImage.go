package uploadImage

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"smartInvite/internal/config"
	"smartInvite/internal/lib/api/response"
	"smartInvite/internal/lib/logger/sl"

	"github.com/go-chi/render"
)

const maxMemory = 32 << 20

type FileInfo struct {
	URL          string `json:"url"`
	Filename     string `json:"filename"`
	OriginalName string `json:"original_name"`
	Size         int64  `json:"size"`
}

type UploadResponse struct {
	response.Response
	URL     string     `json:"url"`
	Files   []FileInfo `json:"files"`
	Message string     `json:"message"`
}

// InitDir creates the upload directory. Called once at startup so a broken
// volume fails the process instead of the first upload.
func InitDir(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create upload directory: %w", err)
	}

	return nil
}

// New returns the image-upload handler. Every file is validated before any
// of them is written.
func New(log *slog.Logger, cfg config.Uploads) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.upload.uploadImage.New"

		log = log.With(slog.String("op", op))

		if err := r.ParseMultipartForm(maxMemory); err != nil {
			log.Error("failed to parse multipart form", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to parse multipart form"))
			return
		}

		files := r.MultipartForm.File["files"]
		if len(files) == 0 {
			files = r.MultipartForm.File["file"]
		}

		if len(files) == 0 {
			log.Error("no file uploaded")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("no file uploaded"))
			return
		}

		if len(files) > cfg.MaxFiles {
			log.Error("too many files", slog.Int("count", len(files)))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error(fmt.Sprintf("at most %d files per request", cfg.MaxFiles)))
			return
		}

		for _, fh := range files {
			if fh.Size > cfg.MaxFileSize {
				log.Error("file too large", slog.String("file", fh.Filename), slog.Int64("size", fh.Size))
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("file exceeds the size limit"))
				return
			}

			if !strings.Contains(fh.Header.Get("Content-Type"), "image") {
				log.Error("unsupported file type",
					slog.String("file", fh.Filename),
					slog.String("content_type", fh.Header.Get("Content-Type")),
				)
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("only image files are allowed"))
				return
			}
		}

		infos := make([]FileInfo, 0, len(files))

		for _, fh := range files {
			info, err := saveFile(cfg.Dir, fh)
			if err != nil {
				log.Error("failed to save file", sl.Err(err))
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to save file"))
				return
			}

			infos = append(infos, info)
		}

		log.Info("files uploaded", slog.Int("count", len(infos)))

		render.JSON(w, r, UploadResponse{
			Response: response.OK(),
			URL:      infos[0].URL,
			Files:    infos,
			Message:  "upload completed successfully",
		})
	}
}

func saveFile(dir string, fh *multipart.FileHeader) (FileInfo, error) {
	src, err := fh.Open()
	if err != nil {
		return FileInfo{}, fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	name := fmt.Sprintf("%d_%s%s", time.Now().UnixMilli(), randomSuffix(), filepath.Ext(fh.Filename))

	dst, err := os.OpenFile(filepath.Join(dir, name), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		return FileInfo{}, fmt.Errorf("failed to create file: %w", err)
	}
	defer dst.Close()

	if _, err = io.Copy(dst, src); err != nil {
		return FileInfo{}, fmt.Errorf("failed to write file: %w", err)
	}

	return FileInfo{
		URL:          "/uploads/" + name,
		Filename:     name,
		OriginalName: fh.Filename,
		Size:         fh.Size,
	}, nil
}

func randomSuffix() string {
	b := make([]byte, 8)
	_, _ = rand.Read(b)

	return hex.EncodeToString(b)
}
