package getEventsWithStats

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"smartInvite/internal/http-server/handlers/event/getEventsWithStats/mocks"
	"smartInvite/internal/lib/logger/handlers/slogdiscard"
	"smartInvite/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetEventsWithStatsHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	// one confirmed with party of 3, one declined, one never responded:
	// declined and unanswered both count as pending
	events := []models.EventWithStats{
		{
			Event: models.Event{ID: 1, Name: "Birthday Party", Photos: []string{}},
			EventStats: models.EventStats{
				TotalGuests:     3,
				ConfirmedGuests: 1,
				TotalPeople:     3,
				PendingGuests:   2,
			},
		},
	}

	testCases := []struct {
		name           string
		mockSetup      func(m *mocks.StatsGetter)
		expectedStatus int
		expectedBody   string
		checkBody      func(t *testing.T, body string)
	}{
		{
			name: "Success",
			mockSetup: func(m *mocks.StatsGetter) {
				m.On("GetEventsWithStats").Return(events, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				var resp EventsResponse
				require.NoError(t, json.Unmarshal([]byte(body), &resp))

				require.Len(t, resp.Events, 1)
				assert.Equal(t, 3, resp.Events[0].TotalGuests)
				assert.Equal(t, 1, resp.Events[0].ConfirmedGuests)
				assert.Equal(t, 3, resp.Events[0].TotalPeople)
				assert.Equal(t, 2, resp.Events[0].PendingGuests)
			},
		},
		{
			name: "Internal server error",
			mockSetup: func(m *mocks.StatsGetter) {
				m.On("GetEventsWithStats").Return(nil, assert.AnError)
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to get events with stats"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockGetter := mocks.NewStatsGetter(t)
			tc.mockSetup(mockGetter)

			handler := New(logger, mockGetter)

			req, err := http.NewRequest("GET", "/events/with-stats", nil)
			require.NoError(t, err)

			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code, "Status code mismatch")

			if tc.expectedBody != "" {
				assert.JSONEq(t, tc.expectedBody, rr.Body.String(), "Response body mismatch")
			} else if tc.checkBody != nil {
				tc.checkBody(t, rr.Body.String())
			}
		})
	}
}
