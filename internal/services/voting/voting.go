// Package voting содержит бизнес-логику голосования за рестораны.
// Пользователь может держать не более одного состояния голоса на ресторан:
// повторный голос того же знака идемпотентен, голос другого знака
// переключает состояние. Каждая мутация сохраняет полную запись ресторана
// и инвалидирует её кеш.
package voting

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/plateful/plateful-backend/internal/events"
	"github.com/plateful/plateful-backend/internal/lib/sl"
	"github.com/plateful/plateful-backend/internal/models"
)

// RestaurantRepository определяет методы хранилища, нужные голосованию.
type RestaurantRepository interface {
	GetRestaurantByID(ctx context.Context, id string) (*models.Restaurant, error)
	// SaveRestaurant сохраняет полную запись ресторана (не дельту).
	SaveRestaurant(ctx context.Context, r *models.Restaurant) error
}

// Cache описывает методы для кэширования данных.
type Cache interface {
	Invalidate(key string) error
}

// Service реализует операции голосования.
type Service struct {
	repo   RestaurantRepository
	cache  Cache
	pub    events.Publisher
	log    *slog.Logger
}

// New создает новый Service. Публикатор событий может быть nil —
// тогда события активности не отправляются.
func New(repo RestaurantRepository, cache Cache, pub events.Publisher, log *slog.Logger) *Service {
	return &Service{
		repo:  repo,
		cache: cache,
		pub:   pub,
		log:   log,
	}
}

// Upvote голосует "за": удаляет пользователя из множества "против",
// если он там был, и добавляет в множество "за". Идемпотентна.
// Возвращает авторитетное состояние ресторана после мутации.
func (s *Service) Upvote(ctx context.Context, restaurantID, userID string) (*models.Restaurant, error) {
	r, err := s.repo.GetRestaurantByID(ctx, restaurantID)
	if err != nil {
		return nil, err
	}

	r.AddUpvote(userID)

	if err = s.repo.SaveRestaurant(ctx, r); err != nil {
		return nil, err
	}
	s.invalidate(restaurantID)
	s.publish(events.ActivityEvent{
		Type:         events.TypeVoteCast,
		UserID:       userID,
		RestaurantID: restaurantID,
		Vote:         "up",
		OccurredAt:   time.Now().UTC(),
	})
	return r, nil
}

// Downvote голосует "против", симметрично Upvote.
func (s *Service) Downvote(ctx context.Context, restaurantID, userID string) (*models.Restaurant, error) {
	r, err := s.repo.GetRestaurantByID(ctx, restaurantID)
	if err != nil {
		return nil, err
	}

	r.AddDownvote(userID)

	if err = s.repo.SaveRestaurant(ctx, r); err != nil {
		return nil, err
	}
	s.invalidate(restaurantID)
	s.publish(events.ActivityEvent{
		Type:         events.TypeVoteCast,
		UserID:       userID,
		RestaurantID: restaurantID,
		Vote:         "down",
		OccurredAt:   time.Now().UTC(),
	})
	return r, nil
}

// RemoveVote безусловно удаляет пользователя из обоих множеств голосов.
// Идемпотентна: если голоса не было, состояние не меняется.
func (s *Service) RemoveVote(ctx context.Context, restaurantID, userID string) (*models.Restaurant, error) {
	r, err := s.repo.GetRestaurantByID(ctx, restaurantID)
	if err != nil {
		return nil, err
	}

	r.RemoveVote(userID)

	if err = s.repo.SaveRestaurant(ctx, r); err != nil {
		return nil, err
	}
	s.invalidate(restaurantID)
	s.publish(events.ActivityEvent{
		Type:         events.TypeVoteRemoved,
		UserID:       userID,
		RestaurantID: restaurantID,
		OccurredAt:   time.Now().UTC(),
	})
	return r, nil
}

// VoteStatus возвращает состояние голосования по ресторану для пользователя.
// Для анонимного вызова (userID пустой) флаги hasUpvoted/hasDownvoted всегда
// false, счетчики — настоящие агрегаты.
func (s *Service) VoteStatus(ctx context.Context, restaurantID, userID string) (*models.VoteStatus, error) {
	r, err := s.repo.GetRestaurantByID(ctx, restaurantID)
	if err != nil {
		return nil, err
	}

	return &models.VoteStatus{
		HasUpvoted:    userID != "" && r.HasUserUpvoted(userID),
		HasDownvoted:  userID != "" && r.HasUserDownvoted(userID),
		UpvoteCount:   r.UpvoteCount(),
		DownvoteCount: r.DownvoteCount(),
		VoteCount:     r.VoteCount(),
	}, nil
}

func (s *Service) invalidate(restaurantID string) {
	cacheKey := fmt.Sprintf("restaurant:%s", restaurantID)
	if err := s.cache.Invalidate(cacheKey); err != nil {
		s.log.Warn("failed to invalidate restaurant cache", slog.String("key", cacheKey), sl.Err(err))
	}
}

func (s *Service) publish(event events.ActivityEvent) {
	if s.pub == nil {
		return
	}
	if err := s.pub.Publish(event); err != nil {
		s.log.Warn("failed to publish activity event", slog.String("type", event.Type), sl.Err(err))
	}
}
