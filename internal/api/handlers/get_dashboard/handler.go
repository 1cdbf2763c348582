package get_dashboard

import (
	"net/http"

	"github.com/m04kA/BRB-ScheduleService/internal/api/handlers"
	"github.com/m04kA/BRB-ScheduleService/internal/api/middleware"
)

const (
	msgMissingIdentity = "отсутствуют заголовки идентификации"
	msgAccessDenied    = "панель управления доступна только администратору"
)

type Handler struct {
	useCase GetDashboardUseCase
	logger  Logger
}

func NewHandler(useCase GetDashboardUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/dashboard
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.ActorFromContext(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, msgMissingIdentity)
		return
	}

	if !actor.IsAdmin() {
		h.logger.Warn("GET /dashboard - Access denied: actor=%d", actor.UserID)
		handlers.RespondForbidden(w, msgAccessDenied)
		return
	}

	result, err := h.useCase.Execute(r.Context())
	if err != nil {
		h.logger.Error("GET /dashboard - Failed to build dashboard: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
