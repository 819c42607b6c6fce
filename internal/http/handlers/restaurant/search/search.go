// Package search реализует HTTP-обработчик простого текстового поиска
// ресторанов по имени, описанию и кухне. Пустой запрос возвращает
// полный список.
package search

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

// Service описывает интерфейс бизнес-логики поиска.
type Service interface {
	Search(ctx context.Context, query string) ([]*models.Restaurant, error)
}

// Handler управляет HTTP-запросами поиска ресторанов.
type Handler struct {
	log     *slog.Logger
	service Service
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Поиск ресторанов
// @Description Поиск без учета регистра по подстроке в имени, описании и кухне.
// @Tags Restaurants
// @Produce  json
// @Param query query string false "Поисковый запрос"
// @Success 200 {array} models.Restaurant "Результаты поиска"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /api/restaurants/search [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.restaurant.search"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	query := r.URL.Query().Get("query")

	restaurants, err := h.service.Search(r.Context(), query)
	if err != nil {
		log.Error("failed to search restaurants", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.ErrorWithCode(response.CodeServerError, "Unexpected server error"))
		return
	}

	render.JSON(w, r, response.OKWithData(restaurants))
}
