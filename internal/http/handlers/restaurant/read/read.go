// Package read реализует HTTP-обработчик чтения ресторана по ID.
package read

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/plateful/plateful-backend/internal/http/response"
	"github.com/plateful/plateful-backend/internal/lib/sl"
	"github.com/plateful/plateful-backend/internal/models"
	"github.com/plateful/plateful-backend/internal/storage/repository"
)

// Service описывает интерфейс бизнес-логики чтения ресторана.
type Service interface {
	Get(ctx context.Context, id string) (*models.Restaurant, error)
}

// Handler управляет HTTP-запросами чтения ресторана.
type Handler struct {
	log     *slog.Logger
	service Service
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Получить ресторан по ID
// @Description Возвращает карточку ресторана вместе с агрегатами голосования.
// @Tags Restaurants
// @Produce  json
// @Param id path string true "ID ресторана"
// @Success 200 {object} models.Restaurant "Карточка ресторана"
// @Failure 404 {object} response.ErrorResponse "Ресторан не найден"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /api/restaurants/{id} [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.restaurant.read"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id := chi.URLParam(r, "id")

	restaurant, err := h.service.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrRestaurantNotFound) {
			log.Info("restaurant not found", slog.String("id", id))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.ErrorWithCode(response.CodeNotFound, "Restaurant not found"))
			return
		}
		log.Error("failed to read restaurant", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.ErrorWithCode(response.CodeServerError, "Unexpected server error"))
		return
	}

	render.JSON(w, r, response.OKWithData(map[string]any{
		"restaurant":    restaurant,
		"voteCount":     restaurant.VoteCount(),
		"upvoteCount":   restaurant.UpvoteCount(),
		"downvoteCount": restaurant.DownvoteCount(),
	}))
}
