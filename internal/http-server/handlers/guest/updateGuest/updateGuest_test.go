package updateGuest

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"smartInvite/internal/http-server/handlers/guest/updateGuest/mocks"
	"smartInvite/internal/lib/logger/handlers/slogdiscard"
	"smartInvite/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateGuestHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	testCases := []struct {
		name           string
		requestBody    string
		mockSetup      func(mock *mocks.GuestUpdater)
		expectedStatus int
		expectedBody   string
		checkBody      func(t *testing.T, body string)
	}{
		{
			name:        "Confirm with party size",
			requestBody: `{"token": "abc-123", "confirmed": true, "numPeople": 3}`,
			mockSetup: func(mock *mocks.GuestUpdater) {
				mock.On("UpdateGuestByToken", "abc-123", true, 3).Return(nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"OK","message":"guest response saved successfully"}`,
		},
		{
			name:        "Confirm without party size defaults to 1",
			requestBody: `{"token": "abc-123", "confirmed": true}`,
			mockSetup: func(mock *mocks.GuestUpdater) {
				mock.On("UpdateGuestByToken", "abc-123", true, 1).Return(nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"OK","message":"guest response saved successfully"}`,
		},
		{
			name:        "Decline",
			requestBody: `{"token": "abc-123", "confirmed": false, "numPeople": -1}`,
			mockSetup: func(mock *mocks.GuestUpdater) {
				mock.On("UpdateGuestByToken", "abc-123", false, -1).Return(nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"OK","message":"guest response saved successfully"}`,
		},
		{
			name:           "Missing token",
			requestBody:    `{"confirmed": true, "numPeople": 2}`,
			mockSetup:      func(mock *mocks.GuestUpdater) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"status":"Error"`)
				assert.Contains(t, body, "Token")
			},
		},
		{
			name:           "Invalid JSON",
			requestBody:    `invalid json`,
			mockSetup:      func(mock *mocks.GuestUpdater) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"failed to decode request"}`,
		},
		{
			name:        "Unknown token",
			requestBody: `{"token": "missing", "confirmed": true, "numPeople": 2}`,
			mockSetup: func(mock *mocks.GuestUpdater) {
				mock.On("UpdateGuestByToken", "missing", true, 2).Return(storage.ErrGuestNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"status":"Error","error":"guest not found"}`,
		},
		{
			name:        "Internal server error",
			requestBody: `{"token": "abc-123", "confirmed": true, "numPeople": 2}`,
			mockSetup: func(mock *mocks.GuestUpdater) {
				mock.On("UpdateGuestByToken", "abc-123", true, 2).Return(assert.AnError)
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to update guest"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockUpdater := mocks.NewGuestUpdater(t)
			tc.mockSetup(mockUpdater)

			handler := New(logger, mockUpdater)

			req, err := http.NewRequest("PUT", "/guests", bytes.NewBufferString(tc.requestBody))
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

// Repeating the same response twice must hit storage with identical values
// both times, no intermediate state leaks into the handler.
func TestUpdateGuestIdempotent(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	mockUpdater := mocks.NewGuestUpdater(t)
	mockUpdater.On("UpdateGuestByToken", "abc-123", false, -1).Return(nil).Twice()

	handler := New(logger, mockUpdater)

	for i := 0; i < 2; i++ {
		req, err := http.NewRequest("PUT", "/guests",
			bytes.NewBufferString(`{"token": "abc-123", "confirmed": false, "numPeople": -1}`))
		require.NoError(t, err)

		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	}
}
