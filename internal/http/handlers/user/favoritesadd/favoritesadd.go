// Package favoritesadd реализует HTTP-обработчик добавления ресторана в избранное.
//
// Избранное ведет себя как множество: повторное добавление того же ресторана
// не меняет список и не порождает ошибку.
package favoritesadd

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
	"github.com/plateful/plateful-backend/internal/storage/repository"
)

// Request тело запроса добавления в избранное.
type Request struct {
	RestaurantID string `json:"restaurantId" validate:"required"`
}

// Service описывает интерфейс бизнес-логики пользователя.
type Service interface {
	AddFavorite(ctx context.Context, userID, restaurantID string) ([]string, error)
}

// Handler управляет HTTP-запросами добавления в избранное.
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
// @Summary Добавить ресторан в избранное
// @Description Добавляет ID ресторана в избранное пользователя. Повторное добавление безвредно.
// @Tags User
// @Accept  json
// @Produce  json
// @Param request body Request true "ID ресторана"
// @Success 200 {object} map[string]any "Обновленный список избранного"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON или ошибка валидации"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 404 {object} response.ErrorResponse "Пользователь не найден"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Security BearerAuth
// @Router /api/user/favorites [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.user.favoritesadd"
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

	favorites, err := h.service.AddFavorite(r.Context(), userID, req.RestaurantID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			log.Info("user not found", slog.String("user_id", userID))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.ErrorWithCode(response.CodeNotFound, "User not found"))
			return
		}
		log.Error("failed to add favorite", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.ErrorWithCode(response.CodeServerError, "Unexpected server error"))
		return
	}

	log.Info("favorite added", slog.String("restaurant_id", req.RestaurantID))
	render.JSON(w, r, response.OKWithData(map[string]any{"favorites": favorites}))
}
