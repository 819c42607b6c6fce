package restaurant

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/plateful/plateful-backend/internal/models"
	"github.com/plateful/plateful-backend/internal/storage/repository"
)

type RepoMock struct{ mock.Mock }

func (m *RepoMock) ListRestaurants(ctx context.Context) ([]*models.Restaurant, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Restaurant), args.Error(1)
}
func (m *RepoMock) GetRestaurantByID(ctx context.Context, id string) (*models.Restaurant, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Restaurant), args.Error(1)
}
func (m *RepoMock) SearchRestaurants(ctx context.Context, query string) ([]*models.Restaurant, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Restaurant), args.Error(1)
}
func (m *RepoMock) ListCuisines(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

type CacheMock struct{ mock.Mock }

func (m *CacheMock) Get(key string, result any) (bool, error) {
	args := m.Called(key, result)
	return args.Bool(0), args.Error(1)
}
func (m *CacheMock) Set(key string, value any, expiration time.Duration) error {
	return m.Called(key, value, expiration).Error(0)
}

func newNoopLogger() *slog.Logger {
	h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{})
	return slog.New(h)
}

func TestService_Get(t *testing.T) {
	restaurant := &models.Restaurant{ID: "r1", Name: "Sushi Palace"}

	tests := []struct {
		name       string
		setupMocks func(r *RepoMock, c *CacheMock)
		wantErr    error
	}{
		{
			name: "cache miss falls back to repository and caches",
			setupMocks: func(r *RepoMock, c *CacheMock) {
				c.On("Get", "restaurant:r1", mock.Anything).Return(false, nil).Once()
				r.On("GetRestaurantByID", mock.Anything, "r1").Return(restaurant, nil).Once()
				c.On("Set", "restaurant:r1", restaurant, time.Hour).Return(nil).Once()
			},
		},
		{
			name: "cache hit skips the repository",
			setupMocks: func(_ *RepoMock, c *CacheMock) {
				c.On("Get", "restaurant:r1", mock.Anything).Run(func(args mock.Arguments) {
					ptr := args.Get(1).(**models.Restaurant)
					*ptr = restaurant
				}).Return(true, nil).Once()
			},
		},
		{
			name: "cache read error falls back to repository",
			setupMocks: func(r *RepoMock, c *CacheMock) {
				c.On("Get", "restaurant:r1", mock.Anything).Return(false, errors.New("redis down")).Once()
				r.On("GetRestaurantByID", mock.Anything, "r1").Return(restaurant, nil).Once()
				c.On("Set", "restaurant:r1", restaurant, time.Hour).Return(nil).Once()
			},
		},
		{
			name: "unknown restaurant",
			setupMocks: func(r *RepoMock, c *CacheMock) {
				c.On("Get", "restaurant:r1", mock.Anything).Return(false, nil).Once()
				r.On("GetRestaurantByID", mock.Anything, "r1").
					Return(nil, repository.ErrRestaurantNotFound).Once()
			},
			wantErr: repository.ErrRestaurantNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(RepoMock)
			cache := new(CacheMock)
			svc := New(repo, cache, newNoopLogger())

			tt.setupMocks(repo, cache)

			got, err := svc.Get(context.Background(), "r1")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, restaurant, got)
			}

			repo.AssertExpectations(t)
			cache.AssertExpectations(t)
		})
	}
}

func TestService_Cuisines(t *testing.T) {
	cuisines := []string{"American", "Italian", "Japanese"}

	t.Run("cache miss loads from repository", func(t *testing.T) {
		repo := new(RepoMock)
		cache := new(CacheMock)
		svc := New(repo, cache, newNoopLogger())

		cache.On("Get", "cuisines", mock.Anything).Return(false, nil).Once()
		repo.On("ListCuisines", mock.Anything).Return(cuisines, nil).Once()
		cache.On("Set", "cuisines", cuisines, time.Hour).Return(nil).Once()

		got, err := svc.Cuisines(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, cuisines, got)

		repo.AssertExpectations(t)
		cache.AssertExpectations(t)
	})

	t.Run("cache hit skips the repository", func(t *testing.T) {
		repo := new(RepoMock)
		cache := new(CacheMock)
		svc := New(repo, cache, newNoopLogger())

		cache.On("Get", "cuisines", mock.Anything).Run(func(args mock.Arguments) {
			ptr := args.Get(1).(*[]string)
			*ptr = cuisines
		}).Return(true, nil).Once()

		got, err := svc.Cuisines(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, cuisines, got)

		repo.AssertExpectations(t)
		cache.AssertExpectations(t)
	})
}

func TestService_Search(t *testing.T) {
	repo := new(RepoMock)
	svc := New(repo, new(CacheMock), newNoopLogger())

	expected := []*models.Restaurant{{ID: "r1"}}
	repo.On("SearchRestaurants", mock.Anything, "sushi").Return(expected, nil).Once()

	got, err := svc.Search(context.Background(), "sushi")
	assert.NoError(t, err)
	assert.Equal(t, expected, got)
	repo.AssertExpectations(t)
}
