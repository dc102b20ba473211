package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/shortlink-lab/go-shortlinks/internal/app/service"
	"github.com/shortlink-lab/go-shortlinks/internal/mocks"
	"github.com/shortlink-lab/go-shortlinks/internal/storage"
)

type recordingEmitter struct {
	events []string
}

func (e *recordingEmitter) Emit(stack, level, pkg, message string) error {
	e.events = append(e.events, level+": "+message)
	return nil
}

func newTestPostHandler(t *testing.T) (*PostHandler, *mocks.MockLinkServiceIface, *recordingEmitter) {
	t.Helper()

	ctrl := gomock.NewController(t)
	mockService := mocks.NewMockLinkServiceIface(ctrl)
	emitter := &recordingEmitter{}

	return NewPost("http", mockService, zap.NewNop(), emitter), mockService, emitter
}

func TestCreateShortURL(t *testing.T) {
	now := time.Now().Truncate(time.Second)

	tests := []struct {
		name          string
		body          string
		wantURL       string
		wantValidity  int
		wantCode      string
		mockRecord    storage.LinkRecord
		mockError     error
		expectedCode  int
		expectedError string
		expectedEvent string
	}{
		{
			name:         "valid URL with custom shortcode",
			body:         `{"url":"https://example.com","validity":1,"shortcode":"abc123"}`,
			wantURL:      "https://example.com",
			wantValidity: 1,
			wantCode:     "abc123",
			mockRecord: storage.LinkRecord{
				Code:        "abc123",
				OriginalURL: "https://example.com",
				Created:     now,
				Expiry:      now.Add(time.Minute),
			},
			expectedCode:  http.StatusCreated,
			expectedEvent: "info: Short URL created: abc123",
		},
		{
			name:         "validity defaults to 30",
			body:         `{"url":"https://example.com"}`,
			wantURL:      "https://example.com",
			wantValidity: 30,
			wantCode:     "",
			mockRecord: storage.LinkRecord{
				Code:        "x1y2z3",
				OriginalURL: "https://example.com",
				Created:     now,
				Expiry:      now.Add(30 * time.Minute),
			},
			expectedCode:  http.StatusCreated,
			expectedEvent: "info: Short URL created: x1y2z3",
		},
		{
			name:          "invalid URL",
			body:          `{"url":"not a url"}`,
			wantURL:       "not a url",
			wantValidity:  30,
			wantCode:      "",
			mockError:     service.ErrInvalidURL,
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid URL",
			expectedEvent: "error: Invalid URL provided",
		},
		{
			name:          "shortcode taken",
			body:          `{"url":"https://example.com","shortcode":"taken1"}`,
			wantURL:       "https://example.com",
			wantValidity:  30,
			wantCode:      "taken1",
			mockError:     service.ErrCodeTaken,
			expectedCode:  http.StatusConflict,
			expectedError: "Shortcode already exists",
			expectedEvent: "error: Requested shortcode already exists",
		},
		{
			name:          "internal failure",
			body:          `{"url":"https://example.com"}`,
			wantURL:       "https://example.com",
			wantValidity:  30,
			wantCode:      "",
			mockError:     errors.New("store exploded"),
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Internal server error",
			expectedEvent: "error: Error creating short URL: store exploded",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, mockService, emitter := newTestPostHandler(t)

			mockService.EXPECT().
				Create(gomock.Any(), tt.wantURL, tt.wantValidity, tt.wantCode).
				Return(tt.mockRecord, tt.mockError).
				Times(1)

			req := httptest.NewRequest(http.MethodPost, "/shorturls", bytes.NewBufferString(tt.body))
			req.Host = "short.local"
			req.Header.Set("Content-Type", "application/json")

			rr := httptest.NewRecorder()
			handler.CreateShortURL(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedError != "" {
				var errResp map[string]string
				require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &errResp))
				assert.Equal(t, tt.expectedError, errResp["error"])
			} else {
				var resp struct {
					ShortLink string    `json:"shortLink"`
					Expiry    time.Time `json:"expiry"`
				}
				require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.Equal(t, "http://short.local/"+tt.mockRecord.Code, resp.ShortLink)
				assert.True(t, resp.Expiry.Equal(tt.mockRecord.Expiry))
			}

			require.NotEmpty(t, emitter.events)
			assert.Equal(t, tt.expectedEvent, emitter.events[len(emitter.events)-1])
		})
	}
}

func TestCreateShortURLMalformedBody(t *testing.T) {
	handler, _, _ := newTestPostHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/shorturls", bytes.NewBufferString(`{"url":`))
	req.Header.Set("Content-Type", "application/json")

	rr := httptest.NewRecorder()
	handler.CreateShortURL(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)

	var errResp map[string]string
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &errResp))
	assert.NotEmpty(t, errResp["error"])
}

func TestCreateShortURLEmptyBody(t *testing.T) {
	handler, _, _ := newTestPostHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/shorturls", http.NoBody)
	req.Header.Set("Content-Type", "application/json")

	rr := httptest.NewRecorder()
	handler.CreateShortURL(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}
