package createGuest

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"smartInvite/internal/lib/api/response"
	"smartInvite/internal/lib/logger/sl"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type GuestRequest struct {
	EventID int    `json:"eventId" validate:"required"`
	Name    string `json:"name" validate:"required"`
}

type GuestResponse struct {
	response.Response
	ID      int    `json:"id"`
	Token   string `json:"token"`
	Link    string `json:"link"`
	Message string `json:"message"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=GuestCreator
type GuestCreator interface {
	CreateGuest(eventID int, name, token string) (int, error)
}

// New returns the invite-issuance handler. Every guest gets a fresh UUID
// token, the sole public identifier of their invite page.
func New(log *slog.Logger, guest GuestCreator, basePath string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.guest.createGuest.New"

		log = log.With(slog.String("op", op))

		var req GuestRequest

		err := render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		log.Info("request body decoded", slog.Any("request", req))

		req.Name = strings.TrimSpace(req.Name)

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			errors.As(err, &validateErr)

			log.Error("invalid request", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.ValidationError(validateErr))
			return
		}

		token := uuid.NewString()

		guestID, err := guest.CreateGuest(req.EventID, req.Name, token)
		if err != nil {
			log.Error("failed to create guest", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to create guest"))
			return
		}

		link := inviteLink(r, basePath, token)

		log.Info("guest created", slog.Int("id", guestID), slog.Int("event_id", req.EventID))

		responseOK(w, r, guestID, token, link)
	}
}

// inviteLink builds a fully qualified invite URL from the request's host
// header and the configured path prefix.
func inviteLink(r *http.Request, basePath, token string) string {
	proto := r.Header.Get("X-Forwarded-Proto")
	if proto == "" {
		proto = "https"
	}

	host := r.Host
	if host == "" {
		host = "localhost:8080"
	}

	return fmt.Sprintf("%s://%s%s/invite/%s", proto, host, basePath, token)
}

func responseOK(w http.ResponseWriter, r *http.Request, guestID int, token, link string) {
	render.JSON(w, r, GuestResponse{
		Response: response.OK(),
		ID:       guestID,
		Token:    token,
		Link:     link,
		Message:  "guest added successfully",
	})
}
