package deleteGuest

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"smartInvite/internal/lib/api/response"
	"smartInvite/internal/lib/logger/sl"
	"smartInvite/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

type DeleteResponse struct {
	response.Response
	Success bool   `json:"success"`
	Message string `json:"message"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=GuestDeleter
type GuestDeleter interface {
	DeleteGuest(id int) error
}

func New(log *slog.Logger, guest GuestDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.guest.deleteGuest.New"

		log = log.With(slog.String("op", op))

		guestIDStr := chi.URLParam(r, "id")
		if guestIDStr == "" {
			log.Error("guest id is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("guest id is required"))
			return
		}

		guestID, err := strconv.Atoi(guestIDStr)
		if err != nil {
			log.Error("invalid guest id format", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid guest id format"))
			return
		}

		log = log.With(slog.Int("guest_id", guestID))

		if err = guest.DeleteGuest(guestID); err != nil {
			log.Error("failed to delete guest", sl.Err(err))

			if errors.Is(err, storage.ErrGuestNotFound) {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("guest not found"))
				return
			}

			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to delete guest"))
			return
		}

		log.Info("guest deleted successfully")

		responseOK(w, r)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, DeleteResponse{
		Response: response.OK(),
		Success:  true,
		Message:  "invite deleted successfully",
	})
}
