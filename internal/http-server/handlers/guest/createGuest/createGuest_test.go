package createGuest

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"smartInvite/internal/http-server/handlers/guest/createGuest/mocks"
	"smartInvite/internal/lib/logger/handlers/slogdiscard"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateGuestHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	testCases := []struct {
		name           string
		requestBody    string
		mockSetup      func(m *mocks.GuestCreator)
		expectedStatus int
		expectedBody   string
		checkBody      func(t *testing.T, body string)
	}{
		{
			name:        "Success",
			requestBody: `{"eventId": 5, "name": "John Doe"}`,
			mockSetup: func(m *mocks.GuestCreator) {
				m.On("CreateGuest", 5, "John Doe", mock.AnythingOfType("string")).Return(42, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				var resp GuestResponse
				require.NoError(t, json.Unmarshal([]byte(body), &resp))

				assert.Equal(t, "OK", resp.Status)
				assert.Equal(t, 42, resp.ID)

				_, err := uuid.Parse(resp.Token)
				assert.NoError(t, err, "token must be a valid UUID")

				assert.Equal(t, "https://example.com/invite/"+resp.Token, resp.Link)
			},
		},
		{
			name:        "Name is trimmed",
			requestBody: `{"eventId": 5, "name": "  John Doe  "}`,
			mockSetup: func(m *mocks.GuestCreator) {
				m.On("CreateGuest", 5, "John Doe", mock.AnythingOfType("string")).Return(43, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Missing eventId",
			requestBody:    `{"name": "John Doe"}`,
			mockSetup:      func(m *mocks.GuestCreator) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"status":"Error"`)
				assert.Contains(t, body, "EventID")
			},
		},
		{
			name:           "Missing name",
			requestBody:    `{"eventId": 5}`,
			mockSetup:      func(m *mocks.GuestCreator) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"status":"Error"`)
				assert.Contains(t, body, "Name")
			},
		},
		{
			name:           "Blank name",
			requestBody:    `{"eventId": 5, "name": "   "}`,
			mockSetup:      func(m *mocks.GuestCreator) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"status":"Error"`)
				assert.Contains(t, body, "Name")
			},
		},
		{
			name:           "Invalid JSON",
			requestBody:    `invalid json`,
			mockSetup:      func(m *mocks.GuestCreator) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"failed to decode request"}`,
		},
		{
			name:        "Internal server error",
			requestBody: `{"eventId": 5, "name": "John Doe"}`,
			mockSetup: func(m *mocks.GuestCreator) {
				m.On("CreateGuest", 5, "John Doe", mock.AnythingOfType("string")).Return(0, assert.AnError)
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to create guest"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockCreator := mocks.NewGuestCreator(t)
			tc.mockSetup(mockCreator)

			handler := New(logger, mockCreator, "")

			req, err := http.NewRequest("POST", "/guests", bytes.NewBufferString(tc.requestBody))
			require.NoError(t, err)
			req.Host = "example.com"

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

// Two invites never share a token.
func TestCreateGuestTokenUniqueness(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	seen := make(map[string]bool)

	mockCreator := mocks.NewGuestCreator(t)
	mockCreator.On("CreateGuest", 5, "John Doe", mock.AnythingOfType("string")).
		Run(func(args mock.Arguments) {
			token := args.String(2)
			assert.False(t, seen[token], "token %s issued twice", token)
			seen[token] = true
		}).
		Return(1, nil)

	handler := New(logger, mockCreator, "")

	for i := 0; i < 50; i++ {
		req, err := http.NewRequest("POST", "/guests",
			bytes.NewBufferString(`{"eventId": 5, "name": "John Doe"}`))
		require.NoError(t, err)
		req.Host = "example.com"

		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	}

	assert.Len(t, seen, 50)
}

func TestInviteLinkUsesForwardedProtoAndBasePath(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest("POST", "/guests", nil)
	req.Host = "invites.example.com"
	req.Header.Set("X-Forwarded-Proto", "http")

	link := inviteLink(req, "/party", "tok-1")

	assert.Equal(t, "http://invites.example.com/party/invite/tok-1", link)
}
