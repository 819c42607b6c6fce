package favoritesadd

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/plateful/plateful-backend/internal/http/middlewarectx"
	"github.com/plateful/plateful-backend/internal/storage/repository"
)

// MockService реализует интерфейс favoritesadd.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) AddFavorite(ctx context.Context, userID, restaurantID string) ([]string, error) {
	args := m.Called(ctx, userID, restaurantID)
	if res := args.Get(0); res != nil {
		return res.([]string), args.Error(1)
	}
	return nil, args.Error(1)
}

func TestFavoritesAddHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	tests := []struct {
		name           string
		userID         string
		body           string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:   "успешное добавление",
			userID: "u1",
			body:   `{"restaurantId":"r1"}`,
			setupMock: func(m *MockService) {
				m.On("AddFavorite", mock.Anything, "u1", "r1").
					Return([]string{"r1"}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"favorites":["r1"]`,
		},
		{
			name:           "анонимный запрос отклоняется",
			userID:         "",
			body:           `{"restaurantId":"r1"}`,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `"code":"UNAUTHORIZED"`,
		},
		{
			name:           "пустой restaurantId",
			userID:         "u1",
			body:           `{"restaurantId":""}`,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"code":"VALIDATION_ERROR"`,
		},
		{
			name:           "некорректный JSON",
			userID:         "u1",
			body:           `{not json`,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"code":"VALIDATION_ERROR"`,
		},
		{
			name:   "пользователь не найден",
			userID: "u1",
			body:   `{"restaurantId":"r1"}`,
			setupMock: func(m *MockService) {
				m.On("AddFavorite", mock.Anything, "u1", "r1").
					Return(nil, repository.ErrUserNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `"code":"NOT_FOUND"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			handler := New(logger, mockService)

			req := httptest.NewRequest(http.MethodPost, "/api/user/favorites", strings.NewReader(tt.body))
			if tt.userID != "" {
				req = req.WithContext(context.WithValue(req.Context(), middlewarectx.UserID, tt.userID))
			}

			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.True(t, strings.Contains(w.Body.String(), tt.expectedBody),
				"response body should contain %s, got %s", tt.expectedBody, w.Body.String())

			mockService.AssertExpectations(t)
		})
	}
}
