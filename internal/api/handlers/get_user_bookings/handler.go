package get_user_bookings

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/BRB-ScheduleService/internal/api/handlers"
	"github.com/m04kA/BRB-ScheduleService/internal/api/middleware"
	"github.com/m04kA/BRB-ScheduleService/internal/service/bookings"
	"github.com/m04kA/BRB-ScheduleService/internal/service/bookings/models"
)

const (
	msgInvalidUserID   = "некорректный идентификатор пользователя"
	msgInvalidStatus   = "некорректный статус бронирования"
	msgMissingIdentity = "отсутствуют заголовки идентификации"
	msgAccessDenied    = "нет прав на просмотр чужой истории бронирований"
)

type Handler struct {
	service BookingsService
	logger  Logger
}

func NewHandler(service BookingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/users/{id}/bookings?status=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.ActorFromContext(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, msgMissingIdentity)
		return
	}

	customerID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || customerID <= 0 {
		h.logger.Warn("GET /users/{id}/bookings - Invalid user id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidUserID)
		return
	}

	var status *string
	if raw := r.URL.Query().Get("status"); raw != "" {
		status = &raw
	}

	result, err := h.service.GetUserBookings(r.Context(), &models.GetUserBookingsRequest{
		CustomerID: customerID,
		Actor:      actor,
		Status:     status,
	})
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrAccessDenied):
			h.logger.Warn("GET /users/{id}/bookings - Access denied: actor=%d, customer=%d", actor.UserID, customerID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /users/{id}/bookings - Invalid status: %v", err)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		default:
			h.logger.Error("GET /users/{id}/bookings - Failed for customer=%d: %v", customerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /users/{id}/bookings - customer=%d: %d upcoming, %d past",
		customerID, len(result.Upcoming), len(result.Past))
	handlers.RespondJSON(w, http.StatusOK, result)
}
