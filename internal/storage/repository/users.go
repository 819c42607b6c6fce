package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/plateful/plateful-backend/internal/models"
)

// CreateUser сохраняет нового пользователя и возвращает его ID.
// Возвращает ErrEmailTaken при нарушении уникальности email.
func (s *Storage) CreateUser(ctx context.Context, user models.User) (string, error) {
	const op = "storage.CreateUser"

	roles, err := marshalList(user.Roles)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	query := `INSERT INTO users (id, email, password_hash, roles, enabled)
			  VALUES ($1, $2, $3, $4, $5)
			  RETURNING id;`
	var newID string
	if err = s.DB.QueryRowContext(ctx, query,
		user.ID, user.Email, user.PasswordHash, roles, user.Enabled).Scan(&newID); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return "", fmt.Errorf("%s: %w", op, ErrEmailTaken)
		}
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return newID, nil
}

// GetUserByEmail возвращает пользователя по нормализованному email
// или ErrUserNotFound.
func (s *Storage) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	const op = "storage.GetUserByEmail"

	query := `SELECT id, email, password_hash, roles, enabled,
			      favorite_restaurant_ids, browse_history
			  FROM users
			  WHERE LOWER(email) = LOWER($1)`
	return s.getUser(op, s.DB.QueryRowContext(ctx, query, email))
}

// GetUserByID возвращает пользователя по его ID или ErrUserNotFound.
func (s *Storage) GetUserByID(ctx context.Context, userID string) (*models.User, error) {
	const op = "storage.GetUserByID"

	query := `SELECT id, email, password_hash, roles, enabled,
			      favorite_restaurant_ids, browse_history
			  FROM users
			  WHERE id = $1`
	return s.getUser(op, s.DB.QueryRowContext(ctx, query, userID))
}

func (s *Storage) getUser(op string, row *sql.Row) (*models.User, error) {
	u := &models.User{}
	var roles, favorites, history []byte

	if err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &roles, &u.Enabled,
		&favorites, &history); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, ErrUserNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := json.Unmarshal(roles, &u.Roles); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err := json.Unmarshal(favorites, &u.FavoriteRestaurantIDs); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err := json.Unmarshal(history, &u.BrowseHistory); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return u, nil
}

// UpdateFavorites сохраняет список избранного пользователя целиком.
func (s *Storage) UpdateFavorites(ctx context.Context, userID string, favoriteIDs []string) error {
	const op = "storage.UpdateFavorites"

	favorites, err := marshalList(favoriteIDs)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	query := `UPDATE users SET favorite_restaurant_ids = $1 WHERE id = $2`
	res, err := s.DB.ExecContext(ctx, query, favorites, userID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if affected == 0 {
		return fmt.Errorf("%s: %w", op, ErrUserNotFound)
	}
	return nil
}

// UpdateHistory сохраняет историю просмотров пользователя целиком.
func (s *Storage) UpdateHistory(ctx context.Context, userID string, history []models.HistoryEntry) error {
	const op = "storage.UpdateHistory"

	if history == nil {
		history = []models.HistoryEntry{}
	}
	data, err := json.Marshal(history)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	query := `UPDATE users SET browse_history = $1 WHERE id = $2`
	res, err := s.DB.ExecContext(ctx, query, data, userID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if affected == 0 {
		return fmt.Errorf("%s: %w", op, ErrUserNotFound)
	}
	return nil
}
