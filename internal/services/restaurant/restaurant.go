// Package restaurant содержит бизнес-логику базовых операций над ресторанами:
// список, чтение по ID через кеш, простой текстовый поиск и список кухонь.
package restaurant

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/plateful/plateful-backend/internal/lib/sl"
	"github.com/plateful/plateful-backend/internal/models"
)

const cuisinesCacheKey = "cuisines"

// RestaurantRepository определяет методы хранилища, нужные сервису.
type RestaurantRepository interface {
	ListRestaurants(ctx context.Context) ([]*models.Restaurant, error)
	GetRestaurantByID(ctx context.Context, id string) (*models.Restaurant, error)
	SearchRestaurants(ctx context.Context, query string) ([]*models.Restaurant, error)
	ListCuisines(ctx context.Context) ([]string, error)
}

// Cache описывает методы для кэширования данных.
type Cache interface {
	Get(key string, result any) (bool, error)
	Set(key string, value any, expiration time.Duration) error
}

// Service реализует базовые операции над ресторанами с кешированием.
type Service struct {
	repo  RestaurantRepository
	cache Cache
	log   *slog.Logger
}

// New создает новый Service.
func New(repo RestaurantRepository, cache Cache, log *slog.Logger) *Service {
	return &Service{
		repo:  repo,
		cache: cache,
		log:   log,
	}
}

// List возвращает все рестораны.
func (s *Service) List(ctx context.Context) ([]*models.Restaurant, error) {
	return s.repo.ListRestaurants(ctx)
}

// Get возвращает ресторан по ID, используя кеш или хранилище.
func (s *Service) Get(ctx context.Context, id string) (*models.Restaurant, error) {
	var result *models.Restaurant
	cacheKey := fmt.Sprintf("restaurant:%s", id)
	found, err := s.cache.Get(cacheKey, &result)
	if err != nil {
		s.log.Warn("failed to read restaurant from cache", slog.String("key", cacheKey), sl.Err(err))
	}
	if found && result != nil {
		return result, nil
	}

	result, err = s.repo.GetRestaurantByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err = s.cache.Set(cacheKey, result, time.Hour); err != nil {
		s.log.Warn("failed to cache restaurant", slog.String("key", cacheKey), sl.Err(err))
	}
	return result, nil
}

// Search выполняет поиск без учета регистра по имени, описанию и кухне.
// Пустой запрос возвращает все рестораны.
func (s *Service) Search(ctx context.Context, query string) ([]*models.Restaurant, error) {
	return s.repo.SearchRestaurants(ctx, query)
}

// Cuisines возвращает отсортированный список уникальных кухонь,
// используя кеш или хранилище.
func (s *Service) Cuisines(ctx context.Context) ([]string, error) {
	var result []string
	found, err := s.cache.Get(cuisinesCacheKey, &result)
	if err != nil {
		s.log.Warn("failed to read cuisines from cache", slog.String("key", cuisinesCacheKey), sl.Err(err))
	}
	if found {
		return result, nil
	}

	result, err = s.repo.ListCuisines(ctx)
	if err != nil {
		return nil, err
	}
	if err = s.cache.Set(cuisinesCacheKey, result, time.Hour); err != nil {
		s.log.Warn("failed to cache cuisines", slog.String("key", cuisinesCacheKey), sl.Err(err))
	}
	return result, nil
}
