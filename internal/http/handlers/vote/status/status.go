// Package status реализует HTTP-обработчик чтения статуса голосования по ресторану.
package status

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
	VoteStatus(ctx context.Context, restaurantID, userID string) (*models.VoteStatus, error)
}

// Handler управляет HTTP-запросами статуса голосования.
type Handler struct {
	log     *slog.Logger
	service Service
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Получить статус голосования по ресторану
// @Description Возвращает счетчики голосов и, для аутентифицированного пользователя, его личные флаги голоса.
// @Tags Votes
// @Produce  json
// @Param id path string true "ID ресторана"
// @Success 200 {object} models.VoteStatus "Статус голосования"
// @Failure 404 {object} response.ErrorResponse "Ресторан не найден"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /api/restaurants/{id}/vote-status [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.vote.status"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	restaurantID := chi.URLParam(r, "id")
	userID := middlewarectx.UserIDFromContext(r.Context())

	voteStatus, err := h.service.VoteStatus(r.Context(), restaurantID, userID)
	if err != nil {
		if errors.Is(err, repository.ErrRestaurantNotFound) {
			log.Info("restaurant not found", slog.String("id", restaurantID))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.ErrorWithCode(response.CodeNotFound, "Restaurant not found"))
			return
		}
		log.Error("failed to get vote status", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.ErrorWithCode(response.CodeServerError, "Unexpected server error"))
		return
	}

	render.JSON(w, r, response.OKWithData(voteStatus))
}
