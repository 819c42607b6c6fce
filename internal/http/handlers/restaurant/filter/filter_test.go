package filter

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

	"github.com/plateful/plateful-backend/internal/models"
)

// MockService реализует интерфейс filter.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) Filter(ctx context.Context, filter models.RestaurantFilter) ([]*models.Restaurant, error) {
	args := m.Called(ctx, filter)
	if res := args.Get(0); res != nil {
		return res.([]*models.Restaurant), args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *MockService) FilterByText(restaurants []*models.Restaurant, query string) []*models.Restaurant {
	args := m.Called(restaurants, query)
	if res := args.Get(0); res != nil {
		return res.([]*models.Restaurant)
	}
	return nil
}

func TestFilterHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	restaurants := []*models.Restaurant{{ID: "r1", Name: "Sushi Palace"}}

	tests := []struct {
		name           string
		url            string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "все параметры прокидываются в фильтр",
			url:  "/api/restaurants/filter?cuisine=japanese&priceMin=1&priceMax=3&reservation=true&openNow=true&city=Auckland&city=Wellington&query=sushi",
			setupMock: func(m *MockService) {
				m.On("Filter", mock.Anything, mock.MatchedBy(func(f models.RestaurantFilter) bool {
					return f.Cuisine == "japanese" &&
						f.PriceMin != nil && *f.PriceMin == 1 &&
						f.PriceMax != nil && *f.PriceMax == 3 &&
						f.Reservation != nil && *f.Reservation &&
						f.OpenNow &&
						len(f.Cities) == 2
				})).Return(restaurants, nil)
				m.On("FilterByText", restaurants, "sushi").Return(restaurants)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"name":"Sushi Palace"`,
		},
		{
			name: "без параметров фильтр пустой",
			url:  "/api/restaurants/filter",
			setupMock: func(m *MockService) {
				m.On("Filter", mock.Anything, models.RestaurantFilter{}).Return(restaurants, nil)
				m.On("FilterByText", restaurants, "").Return(restaurants)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"id":"r1"`,
		},
		{
			name:           "нечисловой priceMin",
			url:            "/api/restaurants/filter?priceMin=abc",
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"code":"VALIDATION_ERROR"`,
		},
		{
			name:           "некорректный openNow",
			url:            "/api/restaurants/filter?openNow=maybe",
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

			req := httptest.NewRequest(http.MethodGet, tt.url, nil)
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.True(t, strings.Contains(w.Body.String(), tt.expectedBody),
				"response body should contain %s, got %s", tt.expectedBody, w.Body.String())

			mockService.AssertExpectations(t)
		})
	}
}
