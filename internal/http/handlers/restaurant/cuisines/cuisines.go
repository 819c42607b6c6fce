// Package cuisines реализует HTTP-обработчик списка кухонь.
package cuisines

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/plateful/plateful-backend/internal/http/response"
	"github.com/plateful/plateful-backend/internal/lib/sl"
)

// Service описывает интерфейс бизнес-логики списка кухонь.
type Service interface {
	Cuisines(ctx context.Context) ([]string, error)
}

// Handler управляет HTTP-запросами списка кухонь.
type Handler struct {
	log     *slog.Logger
	service Service
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Получить список кухонь
// @Description Возвращает отсортированный список уникальных кухонь без пустых значений.
// @Tags Restaurants
// @Produce  json
// @Success 200 {array} string "Список кухонь"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /api/restaurants/cuisines [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.restaurant.cuisines"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	cuisines, err := h.service.Cuisines(r.Context())
	if err != nil {
		log.Error("failed to list cuisines", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.ErrorWithCode(response.CodeServerError, "Unexpected server error"))
		return
	}

	render.JSON(w, r, response.OKWithData(cuisines))
}
