package createEvent

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"smartInvite/internal/lib/api/response"
	"smartInvite/internal/lib/logger/sl"
	"smartInvite/internal/models"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

type EventRequest struct {
	Name         string               `json:"name" validate:"required"`
	Description  string               `json:"description"`
	Message      string               `json:"message"`
	Photos       []string             `json:"photos"`
	Location     string               `json:"location"`
	Date         string               `json:"date" validate:"required"`
	CustomImages []models.CustomImage `json:"custom_images"`
}

type EventResponse struct {
	response.Response
	ID      int    `json:"id"`
	Message string `json:"message"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventCreator
type EventCreator interface {
	CreateEvent(event models.Event) (int, error)
}

func New(log *slog.Logger, event EventCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.createEvent.New"

		log = log.With(
			slog.String("op", op),
		)

		var req EventRequest

		err := render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))

			return
		}

		log.Info("request body decoded", slog.Any("request", req))

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			errors.As(err, &validateErr)

			log.Error("invalid request", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.ValidationError(validateErr))

			return
		}

		date, err := time.Parse(time.RFC3339, req.Date)
		if err != nil {
			log.Error("invalid date format", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid date format"))

			return
		}

		eventID, err := event.CreateEvent(models.Event{
			Name:         req.Name,
			Description:  req.Description,
			Message:      req.Message,
			Photos:       req.Photos,
			Location:     req.Location,
			Date:         &date,
			CustomImages: req.CustomImages,
		})
		if err != nil {
			log.Error("failed to add event", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to add event"))

			return
		}

		log.Info("event added", slog.Int("id", eventID))

		responseOK(w, r, eventID)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, eventID int) {
	render.JSON(w, r, EventResponse{
		Response: response.OK(),
		ID:       eventID,
		Message:  "event created successfully",
	})
}
