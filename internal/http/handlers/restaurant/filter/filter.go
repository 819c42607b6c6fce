// Package filter реализует HTTP-обработчик расширенной фильтрации ресторанов.
//
// Структурированные предикаты (кухня, ценовой диапазон, бронирование, города,
// открытость "сейчас") применяются сервисом фильтрации, затем результат
// сужается текстовым запросом. Все параметры необязательны.
package filter

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/plateful/plateful-backend/internal/http/response"
	"github.com/plateful/plateful-backend/internal/lib/sl"
	"github.com/plateful/plateful-backend/internal/models"
)

// Service описывает интерфейс бизнес-логики фильтрации.
type Service interface {
	Filter(ctx context.Context, filter models.RestaurantFilter) ([]*models.Restaurant, error)
	FilterByText(restaurants []*models.Restaurant, query string) []*models.Restaurant
}

// Handler управляет HTTP-запросами фильтрации ресторанов.
type Handler struct {
	log     *slog.Logger
	service Service
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Фильтрация ресторанов
// @Description Комбинирует предикаты кухни, цены, бронирования, городов и открытости, затем сужает результат текстовым запросом.
// @Tags Restaurants
// @Produce  json
// @Param query query string false "Текстовый запрос"
// @Param cuisine query string false "Кухня (подстрока, без учета регистра)"
// @Param priceMin query int false "Нижняя граница ценового уровня"
// @Param priceMax query int false "Верхняя граница ценового уровня"
// @Param reservation query bool false "Требуется ли бронирование"
// @Param openNow query bool false "Только открытые сейчас"
// @Param city query []string false "Города (точное совпадение, можно повторять)"
// @Success 200 {array} models.Restaurant "Отфильтрованный список"
// @Failure 400 {object} response.ErrorResponse "Некорректные параметры"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /api/restaurants/filter [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.restaurant.filter"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	filterReq, err := parseFilter(r)
	if err != nil {
		log.Error("failed to parse filter params", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.ErrorWithCode(response.CodeValidation, "invalid filter parameters"))
		return
	}

	restaurants, err := h.service.Filter(r.Context(), filterReq)
	if err != nil {
		log.Error("failed to filter restaurants", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.ErrorWithCode(response.CodeServerError, "Unexpected server error"))
		return
	}

	restaurants = h.service.FilterByText(restaurants, r.URL.Query().Get("query"))

	render.JSON(w, r, response.OKWithData(restaurants))
}

func parseFilter(r *http.Request) (models.RestaurantFilter, error) {
	q := r.URL.Query()
	filter := models.RestaurantFilter{
		Cuisine: q.Get("cuisine"),
		Cities:  q["city"],
	}

	var err error
	if filter.PriceMin, err = parseOptionalInt(q.Get("priceMin")); err != nil {
		return filter, err
	}
	if filter.PriceMax, err = parseOptionalInt(q.Get("priceMax")); err != nil {
		return filter, err
	}
	if reservation := q.Get("reservation"); reservation != "" {
		v, err := strconv.ParseBool(reservation)
		if err != nil {
			return filter, err
		}
		filter.Reservation = &v
	}
	if openNow := q.Get("openNow"); openNow != "" {
		if filter.OpenNow, err = strconv.ParseBool(openNow); err != nil {
			return filter, err
		}
	}
	return filter, nil
}

func parseOptionalInt(s string) (*int, error) {
	if s == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
