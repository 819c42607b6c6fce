// Package user содержит бизнес-логику избранного и истории просмотров.
// Избранное ведет себя как множество идентификаторов ресторанов,
// история — ограниченный журнал просмотров, самые свежие записи в начале,
// каждый ресторан встречается не более одного раза.
package user

import (
	"context"
	"log/slog"
	"time"

	"github.com/plateful/plateful-backend/internal/events"
	"github.com/plateful/plateful-backend/internal/lib/sl"
	"github.com/plateful/plateful-backend/internal/models"
)

// UserRepository определяет методы хранилища, нужные сервису.
type UserRepository interface {
	GetUserByID(ctx context.Context, userID string) (*models.User, error)
	UpdateFavorites(ctx context.Context, userID string, favoriteIDs []string) error
	UpdateHistory(ctx context.Context, userID string, history []models.HistoryEntry) error
}

// Service реализует операции над избранным и историей пользователя.
type Service struct {
	repo UserRepository
	pub  events.Publisher
	log  *slog.Logger
	now  func() time.Time
}

// New создает новый Service. Публикатор событий может быть nil.
func New(repo UserRepository, pub events.Publisher, log *slog.Logger) *Service {
	return &Service{
		repo: repo,
		pub:  pub,
		log:  log,
		now:  time.Now,
	}
}

// GetFavorites возвращает список идентификаторов избранных ресторанов.
func (s *Service) GetFavorites(ctx context.Context, userID string) ([]string, error) {
	u, err := s.repo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return u.FavoriteRestaurantIDs, nil
}

// AddFavorite добавляет ресторан в избранное. Если он уже там,
// состояние не меняется и запись в хранилище не выполняется.
func (s *Service) AddFavorite(ctx context.Context, userID, restaurantID string) ([]string, error) {
	u, err := s.repo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	for _, id := range u.FavoriteRestaurantIDs {
		if id == restaurantID {
			return u.FavoriteRestaurantIDs, nil
		}
	}
	u.FavoriteRestaurantIDs = append(u.FavoriteRestaurantIDs, restaurantID)

	if err = s.repo.UpdateFavorites(ctx, userID, u.FavoriteRestaurantIDs); err != nil {
		return nil, err
	}
	return u.FavoriteRestaurantIDs, nil
}

// RemoveFavorite удаляет ресторан из избранного. Отсутствие ресторана
// в списке не является ошибкой.
func (s *Service) RemoveFavorite(ctx context.Context, userID, restaurantID string) ([]string, error) {
	u, err := s.repo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	filtered := u.FavoriteRestaurantIDs[:0]
	for _, id := range u.FavoriteRestaurantIDs {
		if id != restaurantID {
			filtered = append(filtered, id)
		}
	}
	u.FavoriteRestaurantIDs = filtered

	if err = s.repo.UpdateFavorites(ctx, userID, u.FavoriteRestaurantIDs); err != nil {
		return nil, err
	}
	return u.FavoriteRestaurantIDs, nil
}

// GetHistory возвращает историю просмотров, самые свежие записи в начале.
func (s *Service) GetHistory(ctx context.Context, userID string) ([]models.HistoryEntry, error) {
	u, err := s.repo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return u.BrowseHistory, nil
}

// AddToHistory вставляет запись о просмотре ресторана в начало истории.
// Существующая запись о том же ресторане сначала удаляется, после вставки
// история усекается до models.MaxHistoryEntries записей.
func (s *Service) AddToHistory(ctx context.Context, userID, restaurantID, restaurantName, viewType string) ([]models.HistoryEntry, error) {
	u, err := s.repo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if viewType == "" {
		viewType = models.DefaultViewType
	}

	history := make([]models.HistoryEntry, 0, len(u.BrowseHistory)+1)
	history = append(history, models.HistoryEntry{
		RestaurantID:   restaurantID,
		RestaurantName: restaurantName,
		ViewedAt:       s.now(),
		ViewType:       viewType,
	})
	for _, entry := range u.BrowseHistory {
		if entry.RestaurantID != restaurantID {
			history = append(history, entry)
		}
	}
	if len(history) > models.MaxHistoryEntries {
		history = history[:models.MaxHistoryEntries]
	}
	u.BrowseHistory = history

	if err = s.repo.UpdateHistory(ctx, userID, u.BrowseHistory); err != nil {
		return nil, err
	}

	if s.pub != nil {
		event := events.ActivityEvent{
			Type:         events.TypeRestaurantViewed,
			UserID:       userID,
			RestaurantID: restaurantID,
			OccurredAt:   time.Now().UTC(),
		}
		if err := s.pub.Publish(event); err != nil {
			s.log.Warn("failed to publish activity event", slog.String("type", event.Type), sl.Err(err))
		}
	}
	return u.BrowseHistory, nil
}

// ClearHistory очищает историю просмотров.
func (s *Service) ClearHistory(ctx context.Context, userID string) error {
	if _, err := s.repo.GetUserByID(ctx, userID); err != nil {
		return err
	}
	return s.repo.UpdateHistory(ctx, userID, nil)
}
