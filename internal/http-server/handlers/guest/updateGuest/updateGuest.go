package updateGuest

import (
	"errors"
	"log/slog"
	"net/http"

	"smartInvite/internal/lib/api/response"
	"smartInvite/internal/lib/logger/sl"
	"smartInvite/internal/storage"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

type UpdateRequest struct {
	Token     string `json:"token" validate:"required"`
	Confirmed bool   `json:"confirmed"`
	NumPeople *int   `json:"numPeople"`
}

type UpdateResponse struct {
	response.Response
	Message string `json:"message"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=GuestUpdater
type GuestUpdater interface {
	UpdateGuestByToken(token string, confirmed bool, numPeople int) error
}

// New returns the guest-response handler. Confirmed and numPeople are
// applied verbatim, the caller is trusted to send a valid state; an omitted
// numPeople defaults to 1.
func New(log *slog.Logger, guest GuestUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.guest.updateGuest.New"

		log = log.With(slog.String("op", op))

		var req UpdateRequest

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

		numPeople := 1
		if req.NumPeople != nil {
			numPeople = *req.NumPeople
		}

		err = guest.UpdateGuestByToken(req.Token, req.Confirmed, numPeople)
		if err != nil {
			log.Error("failed to update guest", sl.Err(err))

			if errors.Is(err, storage.ErrGuestNotFound) {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("guest not found"))
				return
			}

			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to update guest"))
			return
		}

		log.Info("guest response saved",
			slog.Bool("confirmed", req.Confirmed),
			slog.Int("num_people", numPeople),
		)

		responseOK(w, r)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, UpdateResponse{
		Response: response.OK(),
		Message:  "guest response saved successfully",
	})
}
