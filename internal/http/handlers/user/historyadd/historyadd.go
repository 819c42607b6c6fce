// Package historyadd реализует HTTP-обработчик записи просмотра ресторана в историю.
//
// Повторный просмотр того же ресторана поднимает запись в начало истории,
// история ограничена фиксированным числом записей.
package historyadd

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/plateful/plateful-backend/internal/http/middlewarectx"
	"github.com/plateful/plateful-backend/internal/http/response"
	"github.com/plateful/plateful-backend/internal/lib/sl"
	"github.com/plateful/plateful-backend/internal/models"
	"github.com/plateful/plateful-backend/internal/storage/repository"
)

// Request тело запроса записи просмотра.
type Request struct {
	RestaurantID   string `json:"restaurantId" validate:"required"`
	RestaurantName string `json:"restaurantName" validate:"required"`
	ViewType       string `json:"viewType,omitempty"`
}

// Service описывает интерфейс бизнес-логики пользователя.
type Service interface {
	AddToHistory(ctx context.Context, userID, restaurantID, restaurantName, viewType string) ([]models.HistoryEntry, error)
}

// Handler управляет HTTP-запросами записи просмотра.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(),
	}
}

// ServeHTTP godoc
// @Summary Записать просмотр ресторана в историю
// @Description Добавляет запись просмотра в начало истории пользователя. Повторный просмотр поднимает запись наверх.
// @Tags User
// @Accept  json
// @Produce  json
// @Param request body Request true "Просмотренный ресторан"
// @Success 200 {object} map[string]any "Обновленная история"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON или ошибка валидации"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 404 {object} response.ErrorResponse "Пользователь не найден"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Security BearerAuth
// @Router /api/user/history [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.user.historyadd"
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

	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.ErrorWithCode(response.CodeValidation, "invalid request body"))
		return
	}

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}

	history, err := h.service.AddToHistory(r.Context(), userID, req.RestaurantID, req.RestaurantName, req.ViewType)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			log.Info("user not found", slog.String("user_id", userID))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.ErrorWithCode(response.CodeNotFound, "User not found"))
			return
		}
		log.Error("failed to record view", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.ErrorWithCode(response.CodeServerError, "Unexpected server error"))
		return
	}

	log.Info("view recorded", slog.String("restaurant_id", req.RestaurantID))
	render.JSON(w, r, response.OKWithData(map[string]any{"history": history}))
}
