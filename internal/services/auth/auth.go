// Package auth содержит логику бизнес-уровня для регистрации и аутентификации.
package auth

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/plateful/plateful-backend/internal/lib/jwt"
	"github.com/plateful/plateful-backend/internal/lib/password"
	"github.com/plateful/plateful-backend/internal/models"
	"github.com/plateful/plateful-backend/internal/storage/repository"
)

// ErrInvalidCredentials единое сообщение для несуществующего email и
// неверного пароля: клиент не должен узнать, зарегистрирован ли email.
var ErrInvalidCredentials = errors.New("invalid credentials")

// UserRepository описывает контракт для работы с пользователями в базе данных.
type UserRepository interface {
	// CreateUser сохраняет нового пользователя и возвращает его ID.
	CreateUser(ctx context.Context, user models.User) (string, error)

	// GetUserByEmail возвращает пользователя по email или ErrUserNotFound.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
}

// TokenPair access- и refresh-токены с временем жизни access-токена в секундах.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64
}

// Service отвечает за регистрацию и выдачу токенов.
type Service struct {
	users    UserRepository
	jwtMaker jwt.Maker
}

// New создает новый Service.
func New(users UserRepository, jwtMaker jwt.Maker) *Service {
	return &Service{
		users:    users,
		jwtMaker: jwtMaker,
	}
}

// NormalizeEmail приводит email к каноническому виду: обрезает пробелы
// и переводит в нижний регистр.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Signup регистрирует нового пользователя с хэшированием пароля и ролью
// "USER" по умолчанию. Возвращает нормализованный email.
// При занятом email возвращает repository.ErrEmailTaken.
func (s *Service) Signup(ctx context.Context, email, rawPassword string) (string, error) {
	email = NormalizeEmail(email)

	hashed, err := password.GetHash(rawPassword)
	if err != nil {
		return "", err
	}
	user := models.User{
		ID:           uuid.New().String(),
		Email:        email,
		PasswordHash: hashed,
		Roles:        []string{"USER"},
		Enabled:      true,
	}
	if _, err = s.users.CreateUser(ctx, user); err != nil {
		return "", err
	}
	return email, nil
}

// Login проверяет учетные данные и выдает пару подписанных токенов.
// Отсутствие пользователя и неверный пароль неразличимы для клиента.
func (s *Service) Login(ctx context.Context, email, rawPassword string) (*TokenPair, error) {
	email = NormalizeEmail(email)

	user, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if err = password.CompareHash(user.PasswordHash, rawPassword); err != nil {
		return nil, ErrInvalidCredentials
	}

	access, err := s.jwtMaker.GenerateAccessToken(user.ID, user.Email)
	if err != nil {
		return nil, err
	}
	refresh, err := s.jwtMaker.GenerateRefreshToken(user.Email)
	if err != nil {
		return nil, err
	}
	return &TokenPair{
		AccessToken:  access,
		RefreshToken: refresh,
		ExpiresIn:    int64(s.jwtMaker.AccessTTL().Seconds()),
	}, nil
}
