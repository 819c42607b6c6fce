package middlewarectx

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/plateful/plateful-backend/internal/http/response"
	"github.com/plateful/plateful-backend/internal/lib/jwt"
	"github.com/plateful/plateful-backend/internal/lib/sl"
)

// JWTMiddleware возвращает middleware, которое требует валидный JWT
// в заголовке Authorization.
// Логика работы:
//  1. Считывает значение заголовка Authorization.
//  2. Проверяет, что он начинается с "Bearer ".
//  3. Валидирует подпись и срок действия токена.
//  4. Отклоняет refresh-токены: доступ дают только access-токены.
//  5. Кладёт ID и email пользователя в контекст запроса.
func JWTMiddleware(jwtMaker jwt.Maker, log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			const op = "middlewarectx.JWTMiddleware"

			log := log.With(
				slog.String("op", op),
				slog.String("request_id", middleware.GetReqID(r.Context())),
			)

			claims, err := parseBearer(jwtMaker, r)
			if err != nil {
				log.Error("invalid or expired token", sl.Err(err))
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.ErrorWithCode(response.CodeUnauthorized, "invalid or expired token"))
				return
			}

			next.ServeHTTP(w, r.WithContext(contextWithClaims(r.Context(), claims)))
		})
	}
}

// MaybeJWTMiddleware возвращает middleware с необязательной аутентификацией:
// валидный токен кладет личность в контекст, отсутствующий или невалидный
// токен оставляет запрос анонимным и не отклоняет его.
func MaybeJWTMiddleware(jwtMaker jwt.Maker, log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			const op = "middlewarectx.MaybeJWTMiddleware"

			claims, err := parseBearer(jwtMaker, r)
			if err != nil {
				log.Debug("treating request as anonymous",
					slog.String("op", op),
					slog.String("request_id", middleware.GetReqID(r.Context())),
					sl.Err(err))
				next.ServeHTTP(w, r)
				return
			}

			next.ServeHTTP(w, r.WithContext(contextWithClaims(r.Context(), claims)))
		})
	}
}

func parseBearer(jwtMaker jwt.Maker, r *http.Request) (*jwt.Claims, error) {
	const op = "middlewarectx.parseBearer"

	authHeader := r.Header.Get("Authorization")
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return nil, fmt.Errorf("%s: missing or invalid authorization header", op)
	}
	tokenStr := strings.TrimPrefix(authHeader, "Bearer ")

	claims, err := jwtMaker.ParseToken(tokenStr)
	if err != nil {
		return nil, err
	}
	if claims.TokenType == jwt.TokenTypeRefresh {
		return nil, fmt.Errorf("%s: refresh token is not valid for access", op)
	}
	return claims, nil
}

func contextWithClaims(ctx context.Context, claims *jwt.Claims) context.Context {
	ctx = context.WithValue(ctx, UserID, claims.Subject)
	return context.WithValue(ctx, Email, claims.Email)
}
