// Package plateful предоставляет маршруты и сборку основного приложения.
package plateful

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/plateful/plateful-backend/internal/http/handlers/auth/login"
	"github.com/plateful/plateful-backend/internal/http/handlers/auth/signup"
	"github.com/plateful/plateful-backend/internal/http/handlers/restaurant/cuisines"
	"github.com/plateful/plateful-backend/internal/http/handlers/restaurant/filter"
	"github.com/plateful/plateful-backend/internal/http/handlers/restaurant/list"
	"github.com/plateful/plateful-backend/internal/http/handlers/restaurant/read"
	"github.com/plateful/plateful-backend/internal/http/handlers/restaurant/search"
	"github.com/plateful/plateful-backend/internal/http/handlers/user/favoritesadd"
	"github.com/plateful/plateful-backend/internal/http/handlers/user/favoriteslist"
	"github.com/plateful/plateful-backend/internal/http/handlers/user/favoritesremove"
	"github.com/plateful/plateful-backend/internal/http/handlers/user/historyadd"
	"github.com/plateful/plateful-backend/internal/http/handlers/user/historyclear"
	"github.com/plateful/plateful-backend/internal/http/handlers/user/historylist"
	"github.com/plateful/plateful-backend/internal/http/handlers/vote/downvote"
	"github.com/plateful/plateful-backend/internal/http/handlers/vote/removevote"
	"github.com/plateful/plateful-backend/internal/http/handlers/vote/status"
	"github.com/plateful/plateful-backend/internal/http/handlers/vote/upvote"
	"github.com/plateful/plateful-backend/internal/http/middlewarectx"
	"github.com/plateful/plateful-backend/internal/lib/jwt"
	authservice "github.com/plateful/plateful-backend/internal/services/auth"
	restaurantservice "github.com/plateful/plateful-backend/internal/services/restaurant"
	searchservice "github.com/plateful/plateful-backend/internal/services/search"
	userservice "github.com/plateful/plateful-backend/internal/services/user"
	votingservice "github.com/plateful/plateful-backend/internal/services/voting"
)

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(r chi.Router, logger *slog.Logger, jwtMaker jwt.Maker,
	authService *authservice.Service,
	restaurantService *restaurantservice.Service,
	searchService *searchservice.Service,
	votingService *votingservice.Service,
	userService *userservice.Service,
) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
	)

	// Открытые конечные точки
	r.Route("/auth", func(r chi.Router) {
		r.Post("/signup", signup.New(logger, authService).ServeHTTP)
		r.Post("/login", login.New(logger, authService).ServeHTTP)
	})

	r.Route("/api/restaurants", func(r chi.Router) {
		r.Get("/", list.New(logger, restaurantService).ServeHTTP)
		r.Get("/search", search.New(logger, restaurantService).ServeHTTP)
		r.Get("/filter", filter.New(logger, searchService).ServeHTTP)
		r.Get("/cuisines", cuisines.New(logger, restaurantService).ServeHTTP)
		r.Get("/{id}", read.New(logger, restaurantService).ServeHTTP)

		// Статус голосования доступен и анонимно: токен используется,
		// только если он предъявлен и валиден
		r.Group(func(r chi.Router) {
			r.Use(middlewarectx.MaybeJWTMiddleware(jwtMaker, logger))
			r.Get("/{id}/vote-status", status.New(logger, votingService).ServeHTTP)
		})

		// Группа с JWT аутентификацией
		r.Group(func(r chi.Router) {
			r.Use(middlewarectx.JWTMiddleware(jwtMaker, logger))
			r.Use(middlewarectx.RateLimitMiddleware(logger))
			r.Post("/{id}/upvote", upvote.New(logger, votingService).ServeHTTP)
			r.Post("/{id}/downvote", downvote.New(logger, votingService).ServeHTTP)
			r.Delete("/{id}/vote", removevote.New(logger, votingService).ServeHTTP)
		})
	})

	r.Route("/api/user", func(r chi.Router) {
		r.Use(middlewarectx.JWTMiddleware(jwtMaker, logger))
		r.Use(middlewarectx.RateLimitMiddleware(logger))
		r.Get("/favorites", favoriteslist.New(logger, userService).ServeHTTP)
		r.Post("/favorites", favoritesadd.New(logger, userService).ServeHTTP)
		r.Delete("/favorites/{id}", favoritesremove.New(logger, userService).ServeHTTP)
		r.Get("/history", historylist.New(logger, userService).ServeHTTP)
		r.Post("/history", historyadd.New(logger, userService).ServeHTTP)
		r.Delete("/history", historyclear.New(logger, userService).ServeHTTP)
	})

	r.Handle("/metrics", promhttp.Handler())
	// Swagger docs endpoint
	r.Get("/docs/*", httpSwagger.WrapHandler)
}
