// Package list реализует HTTP-обработчик списка всех ресторанов.
package list

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/plateful/plateful-backend/internal/http/response"
	"github.com/plateful/plateful-backend/internal/lib/sl"
	"github.com/plateful/plateful-backend/internal/models"
)

// Service описывает интерфейс бизнес-логики списка ресторанов.
type Service interface {
	List(ctx context.Context) ([]*models.Restaurant, error)
}

// Handler управляет HTTP-запросами списка ресторанов.
type Handler struct {
	log     *slog.Logger
	service Service
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Получить все рестораны
// @Description Возвращает полный список ресторанов без фильтров.
// @Tags Restaurants
// @Produce  json
// @Success 200 {array} models.Restaurant "Список ресторанов"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /api/restaurants [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.restaurant.list"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	restaurants, err := h.service.List(r.Context())
	if err != nil {
		log.Error("failed to list restaurants", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.ErrorWithCode(response.CodeServerError, "Unexpected server error"))
		return
	}

	render.JSON(w, r, response.OKWithData(restaurants))
}
