package getEventsWithStats

import (
	"log/slog"
	"net/http"

	"smartInvite/internal/lib/api/response"
	"smartInvite/internal/lib/logger/sl"
	"smartInvite/internal/models"

	"github.com/go-chi/render"
)

type EventsResponse struct {
	response.Response
	Events []models.EventWithStats `json:"events"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=StatsGetter
type StatsGetter interface {
	GetEventsWithStats() ([]models.EventWithStats, error)
}

func New(log *slog.Logger, statsGetter StatsGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.getEventsWithStats.New"

		log = log.With(slog.String("op", op))

		events, err := statsGetter.GetEventsWithStats()
		if err != nil {
			log.Error("failed to get events with stats", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get events with stats"))
			return
		}

		log.Info("events with stats retrieved successfully", slog.Int("count", len(events)))

		responseOK(w, r, events)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, events []models.EventWithStats) {
	render.JSON(w, r, EventsResponse{
		Response: response.OK(),
		Events:   events,
	})
}
