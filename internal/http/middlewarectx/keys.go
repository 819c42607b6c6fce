// Package middlewarectx содержит HTTP middleware приложения: обязательную
// и необязательную проверку JWT токена и ограничение частоты запросов.
// Проверенная личность передается дальше только через контекст запроса —
// обработчики никогда не берут идентификатор пользователя из параметров.
package middlewarectx

import "context"

// Key тип для ключей контекста HTTP-запроса.
type Key string

const (
	// UserID — ключ для ID аутентифицированного пользователя в контексте
	UserID Key = "user_id"
	// Email — ключ для email аутентифицированного пользователя в контексте
	Email Key = "email"
)

// UserIDFromContext возвращает ID аутентифицированного пользователя
// или пустую строку для анонимного запроса.
func UserIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(UserID).(string)
	return id
}
