package getInvite

import (
	"errors"
	"log/slog"
	"net/http"

	"smartInvite/internal/lib/api/response"
	"smartInvite/internal/lib/logger/sl"
	"smartInvite/internal/models"
	"smartInvite/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

type InviteResponse struct {
	response.Response
	models.Invite
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=InviteProvider
type InviteProvider interface {
	GetInviteByToken(token string) (*models.Invite, error)
}

// New returns the invite-retrieval handler: the guest's row joined with the
// event fields the invite page renders. Read-only.
func New(log *slog.Logger, invite InviteProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.guest.getInvite.New"

		log = log.With(slog.String("op", op))

		token := chi.URLParam(r, "token")
		if token == "" {
			log.Error("invite token is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invite token is required"))
			return
		}

		result, err := invite.GetInviteByToken(token)
		if err != nil {
			log.Error("failed to get invite", sl.Err(err))

			if errors.Is(err, storage.ErrGuestNotFound) {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("invite not found"))
				return
			}

			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get invite"))
			return
		}

		log.Info("invite retrieved", slog.Int("guest_id", result.ID))

		responseOK(w, r, result)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, invite *models.Invite) {
	render.JSON(w, r, InviteResponse{
		Response: response.OK(),
		Invite:   *invite,
	})
}
