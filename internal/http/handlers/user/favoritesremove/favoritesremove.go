// Package favoritesremove реализует HTTP-обработчик удаления ресторана из избранного.
package favoritesremove

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/plateful/plateful-backend/internal/http/middlewarectx"
	"github.com/plateful/plateful-backend/internal/http/response"
	"github.com/plateful/plateful-backend/internal/lib/sl"
	"github.com/plateful/plateful-backend/internal/storage/repository"
)

// Service описывает интерфейс бизнес-логики пользователя.
type Service interface {
	RemoveFavorite(ctx context.Context, userID, restaurantID string) ([]string, error)
}

// Handler управляет HTTP-запросами удаления из избранного.
type Handler struct {
	log     *slog.Logger
	service Service
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Удалить ресторан из избранного
// @Description Удаляет ID ресторана из избранного пользователя. Отсутствие ресторана в списке не является ошибкой.
// @Tags User
// @Produce  json
// @Param id path string true "ID ресторана"
// @Success 200 {object} map[string]any "Обновленный список избранного"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 404 {object} response.ErrorResponse "Пользователь не найден"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Security BearerAuth
// @Router /api/user/favorites/{id} [delete]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.user.favoritesremove"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	userID := middlewarectx.UserIDFromContext(r.Context())
	if userID == "" {
		log.Error("user id not found in context")
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.ErrorWithCode(response.CodeUnauthorized, "unauthorized"))
		return
	}

	restaurantID := chi.URLParam(r, "id")

	favorites, err := h.service.RemoveFavorite(r.Context(), userID, restaurantID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			log.Info("user not found", slog.String("user_id", userID))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.ErrorWithCode(response.CodeNotFound, "User not found"))
			return
		}
		log.Error("failed to remove favorite", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.ErrorWithCode(response.CodeServerError, "Unexpected server error"))
		return
	}

	log.Info("favorite removed", slog.String("restaurant_id", restaurantID))
	render.JSON(w, r, response.OKWithData(map[string]any{"favorites": favorites}))
}
