package listEventGuests

import (
	"log/slog"
	"net/http"
	"strconv"

	"smartInvite/internal/lib/api/response"
	"smartInvite/internal/lib/logger/sl"
	"smartInvite/internal/models"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

type GuestsResponse struct {
	response.Response
	Guests []models.GuestSummary `json:"guests"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=GuestsLister
type GuestsLister interface {
	ListEventGuests(eventID int) ([]models.GuestSummary, error)
}

// New returns a handler listing an event's guests without their tokens.
func New(log *slog.Logger, guests GuestsLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.listEventGuests.New"

		log = log.With(slog.String("op", op))

		eventIDStr := chi.URLParam(r, "id")
		if eventIDStr == "" {
			log.Error("event id is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("event id is required"))
			return
		}

		eventID, err := strconv.Atoi(eventIDStr)
		if err != nil {
			log.Error("invalid event id format", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid event id format"))
			return
		}

		log = log.With(slog.Int("event_id", eventID))

		result, err := guests.ListEventGuests(eventID)
		if err != nil {
			log.Error("failed to get guests", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get guests"))
			return
		}

		log.Info("guests retrieved successfully", slog.Int("count", len(result)))

		responseOK(w, r, result)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, guests []models.GuestSummary) {
	render.JSON(w, r, GuestsResponse{
		Response: response.OK(),
		Guests:   guests,
	})
}
