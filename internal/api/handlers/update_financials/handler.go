package update_financials

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/BRB-ScheduleService/internal/api/handlers"
	"github.com/m04kA/BRB-ScheduleService/internal/api/middleware"
	"github.com/m04kA/BRB-ScheduleService/internal/service/finance"
	"github.com/m04kA/BRB-ScheduleService/internal/service/finance/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidYear        = "некорректный год"
	msgMissingIdentity    = "отсутствуют заголовки идентификации"
	msgAccessDenied       = "обновление финансов доступно только администратору"
)

// UpdateFinancialsRequest HTTP request model
type UpdateFinancialsRequest struct {
	Months []models.MonthUpdate `json:"months"`
}

type Handler struct {
	service FinanceService
	logger  Logger
}

func NewHandler(service FinanceService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/finance/{year}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.ActorFromContext(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, msgMissingIdentity)
		return
	}

	year, err := strconv.Atoi(mux.Vars(r)["year"])
	if err != nil || year <= 0 {
		h.logger.Warn("PUT /finance/{year} - Invalid year: %v", err)
		handlers.RespondBadRequest(w, msgInvalidYear)
		return
	}

	var req UpdateFinancialsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /finance/{year} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.UpdateYear(r.Context(), &models.UpdateYearRequest{
		Actor:  actor,
		Year:   year,
		Months: req.Months,
	})
	if err != nil {
		switch {
		case errors.Is(err, finance.ErrValidation):
			h.logger.Warn("PUT /finance/{year} - Validation failed: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, finance.ErrAccessDenied):
			h.logger.Warn("PUT /finance/{year} - Access denied: actor=%d", actor.UserID)
			handlers.RespondForbidden(w, msgAccessDenied)

		default:
			h.logger.Error("PUT /finance/{year} - Failed to update year=%d: %v", year, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /finance/{year} - Year %d updated by actor=%d", year, actor.UserID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
