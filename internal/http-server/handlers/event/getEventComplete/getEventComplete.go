package getEventComplete

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"smartInvite/internal/lib/api/response"
	"smartInvite/internal/lib/logger/sl"
	"smartInvite/internal/models"
	"smartInvite/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

type CompleteResponse struct {
	response.Response
	Event  *models.Event     `json:"event"`
	Guests []models.Guest    `json:"guests"`
	Stats  models.EventStats `json:"stats"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=CompleteProvider
type CompleteProvider interface {
	GetEventComplete(id int) (*models.Event, []models.Guest, models.EventStats, error)
}

func New(log *slog.Logger, complete CompleteProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.getEventComplete.New"

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

		event, guests, stats, err := complete.GetEventComplete(eventID)
		if err != nil {
			log.Error("failed to get complete event data", sl.Err(err))

			if errors.Is(err, storage.ErrEventNotFound) {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("event not found"))
				return
			}

			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get complete event data"))
			return
		}

		log.Info("complete event data retrieved", slog.Int("guests", len(guests)))

		responseOK(w, r, event, guests, stats)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, event *models.Event, guests []models.Guest, stats models.EventStats) {
	render.JSON(w, r, CompleteResponse{
		Response: response.OK(),
		Event:    event,
		Guests:   guests,
		Stats:    stats,
	})
}
