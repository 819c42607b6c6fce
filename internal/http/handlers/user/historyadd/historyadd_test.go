package historyadd

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
	"github.com/plateful/plateful-backend/internal/models"
)

// MockService реализует интерфейс historyadd.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) AddToHistory(ctx context.Context, userID, restaurantID, restaurantName, viewType string) ([]models.HistoryEntry, error) {
	args := m.Called(ctx, userID, restaurantID, restaurantName, viewType)
	if res := args.Get(0); res != nil {
		return res.([]models.HistoryEntry), args.Error(1)
	}
	return nil, args.Error(1)
}

func TestHistoryAddHandler(t *testing.T) {
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
			name:   "успешная запись просмотра",
			userID: "u1",
			body:   `{"restaurantId":"r1","restaurantName":"Sushi Palace"}`,
			setupMock: func(m *MockService) {
				m.On("AddToHistory", mock.Anything, "u1", "r1", "Sushi Palace", "").
					Return([]models.HistoryEntry{{RestaurantID: "r1", RestaurantName: "Sushi Palace"}}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"restaurantId":"r1"`,
		},
		{
			name:   "тип просмотра прокидывается в сервис",
			userID: "u1",
			body:   `{"restaurantId":"r1","restaurantName":"Sushi Palace","viewType":"Map viewed"}`,
			setupMock: func(m *MockService) {
				m.On("AddToHistory", mock.Anything, "u1", "r1", "Sushi Palace", "Map viewed").
					Return([]models.HistoryEntry{{RestaurantID: "r1", ViewType: "Map viewed"}}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"viewType":"Map viewed"`,
		},
		{
			name:           "анонимный запрос отклоняется",
			userID:         "",
			body:           `{"restaurantId":"r1","restaurantName":"Sushi Palace"}`,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `"code":"UNAUTHORIZED"`,
		},
		{
			name:           "без имени ресторана запрос невалиден",
			userID:         "u1",
			body:           `{"restaurantId":"r1"}`,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"code":"VALIDATION_ERROR"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			handler := New(logger, mockService)

			req := httptest.NewRequest(http.MethodPost, "/api/user/history", strings.NewReader(tt.body))
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
