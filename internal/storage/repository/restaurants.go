package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/plateful/plateful-backend/internal/models"
)

const restaurantColumns = `id, name, description, cuisine, price_level, address,
	phone, website, location, images, tags, hours, reservation_required,
	upvote_user_ids, downvote_user_ids`

// ListRestaurants возвращает все рестораны, отсортированные по имени.
func (s *Storage) ListRestaurants(ctx context.Context) ([]*models.Restaurant, error) {
	const op = "storage.ListRestaurants"

	query := `SELECT ` + restaurantColumns + ` FROM restaurants ORDER BY name`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	return collectRestaurants(op, rows)
}

// GetRestaurantByID возвращает ресторан по его ID
// или ErrRestaurantNotFound, если такого нет.
func (s *Storage) GetRestaurantByID(ctx context.Context, id string) (*models.Restaurant, error) {
	const op = "storage.GetRestaurantByID"

	query := `SELECT ` + restaurantColumns + ` FROM restaurants WHERE id = $1`
	row := s.DB.QueryRowContext(ctx, query, id)

	r, err := scanRestaurant(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%s: %w", op, ErrRestaurantNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return r, nil
}

// SearchRestaurants выполняет поиск без учета регистра по подстроке
// в имени, описании и кухне. Пустой запрос возвращает все рестораны.
func (s *Storage) SearchRestaurants(ctx context.Context, query string) ([]*models.Restaurant, error) {
	const op = "storage.SearchRestaurants"

	q := strings.TrimSpace(query)
	if q == "" {
		return s.ListRestaurants(ctx)
	}

	stmt := `SELECT ` + restaurantColumns + ` FROM restaurants
			 WHERE name ILIKE $1 OR description ILIKE $1 OR cuisine ILIKE $1
			 ORDER BY name`
	rows, err := s.DB.QueryContext(ctx, stmt, "%"+q+"%")
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	return collectRestaurants(op, rows)
}

// ListCuisines возвращает отсортированный список уникальных кухонь,
// пустые и пробельные значения отфильтрованы.
func (s *Storage) ListCuisines(ctx context.Context) ([]string, error) {
	const op = "storage.ListCuisines"

	query := `SELECT DISTINCT cuisine FROM restaurants
			  WHERE cuisine IS NOT NULL AND BTRIM(cuisine) <> ''
			  ORDER BY cuisine`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []string
	for rows.Next() {
		var cuisine string
		if err = rows.Scan(&cuisine); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, cuisine)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// FilterRestaurants выполняет структурированную фильтрацию на стороне базы.
// Предикат открытости "сейчас" и текстовый поиск применяются выше,
// в сервисе, к уже полученным строкам.
func (s *Storage) FilterRestaurants(ctx context.Context, filter models.RestaurantFilter) ([]*models.Restaurant, error) {
	const op = "storage.FilterRestaurants"

	query, args := buildFilterQuery(filter)
	rows, err := s.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	return collectRestaurants(op, rows)
}

// buildFilterQuery собирает динамический WHERE из присутствующих предикатов:
// кухня — подстрока без учета регистра, ценовой диапазон — включительные
// границы (при min > max границы меняются местами), бронирование — точное
// равенство, города — точное совпадение без учета регистра, объединенное
// через OR. Все предикаты соединяются через AND.
func buildFilterQuery(filter models.RestaurantFilter) (string, []any) {
	var conds []string
	var args []any

	if strings.TrimSpace(filter.Cuisine) != "" {
		args = append(args, "%"+filter.Cuisine+"%")
		conds = append(conds, fmt.Sprintf("cuisine ILIKE $%d", len(args)))
	}

	priceMin, priceMax := filter.PriceMin, filter.PriceMax
	if priceMin != nil && priceMax != nil && *priceMin > *priceMax {
		priceMin, priceMax = priceMax, priceMin
	}
	if priceMin != nil {
		args = append(args, *priceMin)
		conds = append(conds, fmt.Sprintf("price_level >= $%d", len(args)))
	}
	if priceMax != nil {
		args = append(args, *priceMax)
		conds = append(conds, fmt.Sprintf("price_level <= $%d", len(args)))
	}

	if filter.Reservation != nil {
		args = append(args, *filter.Reservation)
		conds = append(conds, fmt.Sprintf("reservation_required = $%d", len(args)))
	}

	var cityConds []string
	for _, city := range filter.Cities {
		city = strings.TrimSpace(city)
		if city == "" {
			continue
		}
		args = append(args, strings.ToLower(city))
		cityConds = append(cityConds, fmt.Sprintf("LOWER(address->>'city') = $%d", len(args)))
	}
	if len(cityConds) > 0 {
		conds = append(conds, "("+strings.Join(cityConds, " OR ")+")")
	}

	query := `SELECT ` + restaurantColumns + ` FROM restaurants`
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY name"
	return query, args
}

// SaveRestaurant сохраняет полную запись ресторана (не дельту).
// Возвращает ErrRestaurantNotFound, если записи нет.
func (s *Storage) SaveRestaurant(ctx context.Context, r *models.Restaurant) error {
	const op = "storage.SaveRestaurant"

	address, err := json.Marshal(r.Address)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	var location []byte
	if r.Location != nil {
		if location, err = json.Marshal(r.Location); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
	}
	images, err := marshalList(r.Images)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	tags, err := marshalList(r.Tags)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	hours, err := json.Marshal(r.Hours)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	upvotes, err := marshalList(r.UpvoteUserIDs)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	downvotes, err := marshalList(r.DownvoteUserIDs)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	query := `UPDATE restaurants
			  SET name = $2, description = $3, cuisine = $4, price_level = $5,
			      address = $6, phone = $7, website = $8, location = $9,
			      images = $10, tags = $11, hours = $12, reservation_required = $13,
			      upvote_user_ids = $14, downvote_user_ids = $15
			  WHERE id = $1`
	res, err := s.DB.ExecContext(ctx, query, r.ID, r.Name, r.Description, r.Cuisine,
		r.PriceLevel, address, r.Phone, r.Website, nullableJSON(location), images, tags,
		hours, r.ReservationRequired, upvotes, downvotes)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if affected == 0 {
		return fmt.Errorf("%s: %w", op, ErrRestaurantNotFound)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRestaurant(row rowScanner) (*models.Restaurant, error) {
	r := &models.Restaurant{}
	var address, images, tags, hours, upvotes, downvotes []byte
	var location sql.Null[[]byte]

	if err := row.Scan(&r.ID, &r.Name, &r.Description, &r.Cuisine, &r.PriceLevel,
		&address, &r.Phone, &r.Website, &location, &images, &tags, &hours,
		&r.ReservationRequired, &upvotes, &downvotes); err != nil {
		return nil, err
	}

	if err := json.Unmarshal(address, &r.Address); err != nil {
		return nil, err
	}
	if location.Valid && len(location.V) > 0 {
		r.Location = &models.GeoPoint{}
		if err := json.Unmarshal(location.V, r.Location); err != nil {
			return nil, err
		}
	}
	if err := json.Unmarshal(images, &r.Images); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(tags, &r.Tags); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(hours, &r.Hours); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(upvotes, &r.UpvoteUserIDs); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(downvotes, &r.DownvoteUserIDs); err != nil {
		return nil, err
	}
	return r, nil
}

func collectRestaurants(op string, rows *sql.Rows) ([]*models.Restaurant, error) {
	var result []*models.Restaurant
	for rows.Next() {
		r, err := scanRestaurant(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// marshalList сериализует список так, чтобы nil превращался в пустой
// JSON-массив, а не в null.
func marshalList(list []string) ([]byte, error) {
	if list == nil {
		list = []string{}
	}
	return json.Marshal(list)
}

func nullableJSON(b []byte) any {
	if len(b) == 0 {
		return nil
	}
	return b
}
