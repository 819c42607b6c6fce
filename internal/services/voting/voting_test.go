package voting

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/plateful/plateful-backend/internal/models"
	"github.com/plateful/plateful-backend/internal/storage/repository"
)

type RepoMock struct{ mock.Mock }

func (m *RepoMock) GetRestaurantByID(ctx context.Context, id string) (*models.Restaurant, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Restaurant), args.Error(1)
}
func (m *RepoMock) SaveRestaurant(ctx context.Context, r *models.Restaurant) error {
	return m.Called(ctx, r).Error(0)
}

type CacheMock struct{ mock.Mock }

func (m *CacheMock) Invalidate(key string) error {
	return m.Called(key).Error(0)
}

func newNoopLogger() *slog.Logger {
	h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{})
	return slog.New(h)
}

func TestService_Upvote(t *testing.T) {
	tests := []struct {
		name       string
		setupMocks func(r *RepoMock, c *CacheMock)
		wantUp     []string
		wantDown   []string
		wantErr    error
	}{
		{
			name: "fresh upvote",
			setupMocks: func(r *RepoMock, c *CacheMock) {
				r.On("GetRestaurantByID", mock.Anything, "r1").
					Return(&models.Restaurant{ID: "r1"}, nil).Once()
				r.On("SaveRestaurant", mock.Anything, mock.Anything).Return(nil).Once()
				c.On("Invalidate", "restaurant:r1").Return(nil).Once()
			},
			wantUp: []string{"u1"},
		},
		{
			name: "upvote switches an existing downvote",
			setupMocks: func(r *RepoMock, c *CacheMock) {
				r.On("GetRestaurantByID", mock.Anything, "r1").
					Return(&models.Restaurant{ID: "r1", DownvoteUserIDs: []string{"u1", "u2"}}, nil).Once()
				r.On("SaveRestaurant", mock.Anything, mock.MatchedBy(func(rest *models.Restaurant) bool {
					return rest.HasUserUpvoted("u1") && !rest.HasUserDownvoted("u1") && rest.HasUserDownvoted("u2")
				})).Return(nil).Once()
				c.On("Invalidate", "restaurant:r1").Return(nil).Once()
			},
			wantUp:   []string{"u1"},
			wantDown: []string{"u2"},
		},
		{
			name: "repeated upvote is idempotent",
			setupMocks: func(r *RepoMock, c *CacheMock) {
				r.On("GetRestaurantByID", mock.Anything, "r1").
					Return(&models.Restaurant{ID: "r1", UpvoteUserIDs: []string{"u1"}}, nil).Once()
				r.On("SaveRestaurant", mock.Anything, mock.Anything).Return(nil).Once()
				c.On("Invalidate", "restaurant:r1").Return(nil).Once()
			},
			wantUp: []string{"u1"},
		},
		{
			name: "unknown restaurant",
			setupMocks: func(r *RepoMock, _ *CacheMock) {
				r.On("GetRestaurantByID", mock.Anything, "r1").
					Return(nil, repository.ErrRestaurantNotFound).Once()
			},
			wantErr: repository.ErrRestaurantNotFound,
		},
		{
			name: "cache invalidation failure does not fail the vote",
			setupMocks: func(r *RepoMock, c *CacheMock) {
				r.On("GetRestaurantByID", mock.Anything, "r1").
					Return(&models.Restaurant{ID: "r1"}, nil).Once()
				r.On("SaveRestaurant", mock.Anything, mock.Anything).Return(nil).Once()
				c.On("Invalidate", "restaurant:r1").Return(errors.New("redis down")).Once()
			},
			wantUp: []string{"u1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(RepoMock)
			cache := new(CacheMock)
			svc := New(repo, cache, nil, newNoopLogger())

			tt.setupMocks(repo, cache)

			got, err := svc.Upvote(context.Background(), "r1", "u1")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantUp, got.UpvoteUserIDs)
				if tt.wantDown != nil {
					assert.Equal(t, tt.wantDown, got.DownvoteUserIDs)
				}
			}

			repo.AssertExpectations(t)
			cache.AssertExpectations(t)
		})
	}
}

func TestService_Downvote_SwitchesUpvote(t *testing.T) {
	repo := new(RepoMock)
	cache := new(CacheMock)
	svc := New(repo, cache, nil, newNoopLogger())

	repo.On("GetRestaurantByID", mock.Anything, "r1").
		Return(&models.Restaurant{ID: "r1", UpvoteUserIDs: []string{"u1"}}, nil).Once()
	repo.On("SaveRestaurant", mock.Anything, mock.Anything).Return(nil).Once()
	cache.On("Invalidate", "restaurant:r1").Return(nil).Once()

	got, err := svc.Downvote(context.Background(), "r1", "u1")
	assert.NoError(t, err)
	assert.False(t, got.HasUserUpvoted("u1"))
	assert.True(t, got.HasUserDownvoted("u1"))

	repo.AssertExpectations(t)
	cache.AssertExpectations(t)
}

func TestService_RemoveVote(t *testing.T) {
	tests := []struct {
		name    string
		initial *models.Restaurant
	}{
		{"removes upvote", &models.Restaurant{ID: "r1", UpvoteUserIDs: []string{"u1"}}},
		{"removes downvote", &models.Restaurant{ID: "r1", DownvoteUserIDs: []string{"u1"}}},
		{"no vote to remove is not an error", &models.Restaurant{ID: "r1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(RepoMock)
			cache := new(CacheMock)
			svc := New(repo, cache, nil, newNoopLogger())

			repo.On("GetRestaurantByID", mock.Anything, "r1").Return(tt.initial, nil).Once()
			repo.On("SaveRestaurant", mock.Anything, mock.Anything).Return(nil).Once()
			cache.On("Invalidate", "restaurant:r1").Return(nil).Once()

			got, err := svc.RemoveVote(context.Background(), "r1", "u1")
			assert.NoError(t, err)
			assert.False(t, got.HasUserUpvoted("u1"))
			assert.False(t, got.HasUserDownvoted("u1"))

			repo.AssertExpectations(t)
			cache.AssertExpectations(t)
		})
	}
}

func TestService_VoteStatus(t *testing.T) {
	restaurant := &models.Restaurant{
		ID:              "r1",
		UpvoteUserIDs:   []string{"u1", "u2", "u3"},
		DownvoteUserIDs: []string{"u4"},
	}

	tests := []struct {
		name   string
		userID string
		want   models.VoteStatus
	}{
		{
			name:   "authenticated voter",
			userID: "u1",
			want:   models.VoteStatus{HasUpvoted: true, UpvoteCount: 3, DownvoteCount: 1, VoteCount: 2},
		},
		{
			name:   "authenticated downvoter",
			userID: "u4",
			want:   models.VoteStatus{HasDownvoted: true, UpvoteCount: 3, DownvoteCount: 1, VoteCount: 2},
		},
		{
			name:   "anonymous gets counts but no personal flags",
			userID: "",
			want:   models.VoteStatus{UpvoteCount: 3, DownvoteCount: 1, VoteCount: 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(RepoMock)
			svc := New(repo, new(CacheMock), nil, newNoopLogger())

			repo.On("GetRestaurantByID", mock.Anything, "r1").Return(restaurant, nil).Once()

			got, err := svc.VoteStatus(context.Background(), "r1", tt.userID)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, *got)

			repo.AssertExpectations(t)
		})
	}
}
