// Package removevote реализует HTTP-обработчик снятия голоса с ресторана.
package removevote

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
	"github.com/plateful/plateful-backend/internal/models"
	"github.com/plateful/plateful-backend/internal/storage/repository"
)

// Service описывает интерфейс бизнес-логики голосования.
type Service interface {
	RemoveVote(ctx context.Context, restaurantID, userID string) (*models.Restaurant, error)
}

// Handler управляет HTTP-запросами снятия голоса.
type Handler struct {
	log     *slog.Logger
	service Service
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Снять голос с ресторана
// @Description Удаляет любой голос аутентифицированного пользователя за ресторан. Повторный вызов безвреден.
// @Tags Votes
// @Produce  json
// @Param id path string true "ID ресторана"
// @Success 200 {object} map[string]any "Счетчики голосов"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 404 {object} response.ErrorResponse "Ресторан не найден"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Security BearerAuth
// @Router /api/restaurants/{id}/vote [delete]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.vote.removevote"
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

	restaurant, err := h.service.RemoveVote(r.Context(), restaurantID, userID)
	if err != nil {
		if errors.Is(err, repository.ErrRestaurantNotFound) {
			log.Info("restaurant not found", slog.String("id", restaurantID))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.ErrorWithCode(response.CodeNotFound, "Restaurant not found"))
			return
		}
		log.Error("failed to remove vote", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.ErrorWithCode(response.CodeServerError, "Unexpected server error"))
		return
	}

	log.Info("vote removed", slog.String("id", restaurantID))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"upvoteCount":   restaurant.UpvoteCount(),
		"downvoteCount": restaurant.DownvoteCount(),
		"voteCount":     restaurant.VoteCount(),
	}))
}
