package upvote

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/go-chi/chi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/plateful/plateful-backend/internal/http/middlewarectx"
	"github.com/plateful/plateful-backend/internal/models"
	"github.com/plateful/plateful-backend/internal/storage/repository"
)

// MockService реализует интерфейс upvote.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) Upvote(ctx context.Context, restaurantID, userID string) (*models.Restaurant, error) {
	args := m.Called(ctx, restaurantID, userID)
	if res := args.Get(0); res != nil {
		return res.(*models.Restaurant), args.Error(1)
	}
	return nil, args.Error(1)
}

func TestUpvoteHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	tests := []struct {
		name           string
		userID         string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:   "успешный голос",
			userID: "u1",
			setupMock: func(m *MockService) {
				m.On("Upvote", mock.Anything, "r1", "u1").
					Return(&models.Restaurant{ID: "r1", UpvoteUserIDs: []string{"u1"}}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"upvoteCount":1`,
		},
		{
			name:           "анонимный запрос отклоняется",
			userID:         "",
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `"code":"UNAUTHORIZED"`,
		},
		{
			name:   "ресторан не найден",
			userID: "u1",
			setupMock: func(m *MockService) {
				m.On("Upvote", mock.Anything, "r1", "u1").
					Return(nil, repository.ErrRestaurantNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `"code":"NOT_FOUND"`,
		},
		{
			name:   "ошибка сервиса",
			userID: "u1",
			setupMock: func(m *MockService) {
				m.On("Upvote", mock.Anything, "r1", "u1").
					Return(nil, errors.New("db error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `"code":"SERVER_ERROR"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			handler := New(logger, mockService)

			req := httptest.NewRequest(http.MethodPost, "/api/restaurants/r1/upvote", nil)
			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("id", "r1")
			ctx := context.WithValue(req.Context(), chi.RouteCtxKey, rctx)
			if tt.userID != "" {
				ctx = context.WithValue(ctx, middlewarectx.UserID, tt.userID)
			}
			req = req.WithContext(ctx)

			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.True(t, strings.Contains(w.Body.String(), tt.expectedBody),
				"response body should contain %s, got %s", tt.expectedBody, w.Body.String())

			mockService.AssertExpectations(t)
		})
	}
}
