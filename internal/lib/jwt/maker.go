// Package jwt реализует выпуск и парсинг JWT токенов доступа и обновления.
//
// Maker определяет интерфейс для создания и проверки токенов.
// MakerImpl — конкретная реализация на симметричном ключе (HS256)
// с раздельными сроками жизни access- и refresh-токенов.
package jwt

import (
	"time"
)

// Maker описывает интерфейс для генерации и парсинга JWT токенов.
type Maker interface {
	// GenerateAccessToken выпускает access-токен: subject — ID пользователя,
	// плюс claim email.
	GenerateAccessToken(userID, email string) (string, error)
	// GenerateRefreshToken выпускает refresh-токен: subject — email,
	// плюс claim type = "refresh".
	GenerateRefreshToken(email string) (string, error)
	// ParseToken проверяет подпись и срок действия токена и возвращает claims.
	ParseToken(tokenStr string) (*Claims, error)
	// AccessTTL возвращает срок жизни access-токена.
	AccessTTL() time.Duration
}

// MakerImpl реализует интерфейс Maker с использованием секретного ключа
// и времени жизни токенов (TTL).
type MakerImpl struct {
	secretKey  string        // Секретный ключ для подписи токенов.
	accessTTL  time.Duration // Время жизни access-токена.
	refreshTTL time.Duration // Время жизни refresh-токена.
}

// NewMaker создаёт новый экземпляр MakerImpl на основе секретного ключа и TTL.
func NewMaker(secretKey string, accessTTL, refreshTTL time.Duration) *MakerImpl {
	return &MakerImpl{
		secretKey:  secretKey,
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}
}

// AccessTTL возвращает срок жизни access-токена, отдаётся клиенту
// в поле expiresIn ответа логина.
func (j *MakerImpl) AccessTTL() time.Duration {
	return j.accessTTL
}
