// Package search содержит бизнес-логику расширенной фильтрации ресторанов.
// Структурированные предикаты (кухня, цена, бронирование, города) выполняются
// на стороне хранилища, затем в памяти применяются предикат открытости
// "сейчас" и текстовый поиск по нескольким полям. Такой двухэтапный порядок
// намеренный: текстовое совпадение с OR-семантикой по нескольким полям
// дешевле считать по уже суженному набору.
package search

import (
	"context"
	"strings"
	"time"

	"github.com/plateful/plateful-backend/internal/models"
)

// referenceZone фиксированная зона для вычисления предиката "открыто сейчас".
// Единые "глобальные часы" — вызывающая сторона не может их переопределить.
const referenceZone = "Pacific/Auckland"

var dayKeys = [...]string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}

// RestaurantRepository определяет часть хранилища, нужную фильтрации.
type RestaurantRepository interface {
	// FilterRestaurants выполняет структурированную фильтрацию на стороне базы.
	FilterRestaurants(ctx context.Context, filter models.RestaurantFilter) ([]*models.Restaurant, error)
}

// Service реализует фильтрацию ресторанов.
type Service struct {
	repo RestaurantRepository
	now  func() time.Time
}

// New создает новый Service.
func New(repo RestaurantRepository) *Service {
	return &Service{repo: repo, now: time.Now}
}

// Filter возвращает рестораны, удовлетворяющие всем присутствующим
// предикатам фильтра. При запрошенном OpenNow дополнительно оставляет
// только открытые в данный момент по референсным часам.
func (s *Service) Filter(ctx context.Context, filter models.RestaurantFilter) ([]*models.Restaurant, error) {
	results, err := s.repo.FilterRestaurants(ctx, filter)
	if err != nil {
		return nil, err
	}

	if filter.OpenNow {
		results = s.filterByOpenStatus(results)
	}
	return results, nil
}

// FilterByText оставляет рестораны, у которых запрос (обрезанный, в нижнем
// регистре) является подстрокой имени, описания или кухни. Пустой запрос
// возвращает вход без изменений.
func (s *Service) FilterByText(restaurants []*models.Restaurant, query string) []*models.Restaurant {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return restaurants
	}

	var result []*models.Restaurant
	for _, r := range restaurants {
		if containsIgnoreCase(r.Name, q) ||
			containsIgnoreCase(r.Description, q) ||
			containsIgnoreCase(r.Cuisine, q) {
			result = append(result, r)
		}
	}
	return result
}

func (s *Service) filterByOpenStatus(restaurants []*models.Restaurant) []*models.Restaurant {
	loc, err := time.LoadLocation(referenceZone)
	if err != nil {
		// Без валидной зоны предикат не вычислить, считаем все закрытыми.
		return nil
	}
	now := s.now().In(loc)
	dayKey := dayKeys[int(now.Weekday()+6)%7]
	timeOfDay := now.Format("15:04")

	var result []*models.Restaurant
	for _, r := range restaurants {
		if IsOpenAt(r.Hours, dayKey, timeOfDay) {
			result = append(result, r)
		}
	}
	return result
}

// IsOpenAt проверяет, попадает ли время timeOfDay ("HH:mm") в интервал
// часов работы дня dayKey. Интервал вида "HH:mm-HH:mm": если конец строго
// позже начала — внутридневной включительный интервал; если конец равен
// началу или раньше — интервал через полночь и членство равно
// now >= start ИЛИ now <= end. Отсутствующий день, неверный формат или
// непарсящееся время трактуются как "закрыто".
func IsOpenAt(hours map[string]string, dayKey, timeOfDay string) bool {
	if hours == nil {
		return false
	}
	span, ok := hours[dayKey]
	if !ok || strings.TrimSpace(span) == "" {
		return false
	}

	parts := strings.Split(span, "-")
	if len(parts) != 2 {
		return false
	}

	start, err := time.Parse("15:04", strings.TrimSpace(parts[0]))
	if err != nil {
		return false
	}
	end, err := time.Parse("15:04", strings.TrimSpace(parts[1]))
	if err != nil {
		return false
	}
	now, err := time.Parse("15:04", timeOfDay)
	if err != nil {
		return false
	}

	if end.After(start) {
		return !now.Before(start) && !now.After(end)
	}
	// Интервал через полночь.
	return !now.Before(start) || !now.After(end)
}

// containsIgnoreCase проверяет вхождение подстроки без учета регистра.
// needleLower уже в нижнем регистре.
func containsIgnoreCase(s, needleLower string) bool {
	return s != "" && strings.Contains(strings.ToLower(s), needleLower)
}
