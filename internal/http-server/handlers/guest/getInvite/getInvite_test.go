package getInvite

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"smartInvite/internal/http-server/handlers/guest/getInvite/mocks"
	"smartInvite/internal/lib/logger/handlers/slogdiscard"
	"smartInvite/internal/models"
	"smartInvite/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetInviteHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	eventDate := time.Date(2026, 10, 3, 18, 0, 0, 0, time.UTC)

	invite := &models.Invite{
		Guest: models.Guest{
			ID:        7,
			EventID:   2,
			Name:      "Jane",
			Token:     "tok-7",
			Confirmed: true,
			NumPeople: 3,
		},
		EventName:   "Birthday Party",
		Description: "A small party",
		Message:     "Come celebrate with us",
		Photos:      []string{"/uploads/a.jpg"},
		Location:    "Rooftop",
		Date:        &eventDate,
	}

	testCases := []struct {
		name           string
		token          string
		mockSetup      func(m *mocks.InviteProvider)
		expectedStatus int
		expectedBody   string
		checkBody      func(t *testing.T, body string)
	}{
		{
			name:  "Success",
			token: "tok-7",
			mockSetup: func(m *mocks.InviteProvider) {
				m.On("GetInviteByToken", "tok-7").Return(invite, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"status":"OK"`)
				assert.Contains(t, body, `"token":"tok-7"`)
				assert.Contains(t, body, `"event_name":"Birthday Party"`)
				assert.Contains(t, body, `"num_people":3`)
				assert.Contains(t, body, `"photos":["/uploads/a.jpg"]`)
			},
		},
		{
			name:  "Unknown token",
			token: "missing",
			mockSetup: func(m *mocks.InviteProvider) {
				m.On("GetInviteByToken", "missing").Return(nil, storage.ErrGuestNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"status":"Error","error":"invite not found"}`,
		},
		{
			name:  "Internal server error",
			token: "tok-7",
			mockSetup: func(m *mocks.InviteProvider) {
				m.On("GetInviteByToken", "tok-7").Return(nil, assert.AnError)
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to get invite"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockProvider := mocks.NewInviteProvider(t)
			tc.mockSetup(mockProvider)

			router := chi.NewRouter()
			router.Get("/invite/{token}", New(logger, mockProvider))

			req, err := http.NewRequest("GET", "/invite/"+tc.token, nil)
			require.NoError(t, err)

			rr := httptest.NewRecorder()

			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code, "Status code mismatch")

			if tc.expectedBody != "" {
				assert.JSONEq(t, tc.expectedBody, rr.Body.String(), "Response body mismatch")
			} else if tc.checkBody != nil {
				tc.checkBody(t, rr.Body.String())
			}
		})
	}
}
