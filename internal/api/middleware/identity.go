package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/m04kA/BRB-ScheduleService/internal/api/handlers"
	"github.com/m04kA/BRB-ScheduleService/internal/domain"
)

const (
	// HeaderUserID идентификатор пользователя, проставляется шлюзом
	HeaderUserID = "X-User-ID"
	// HeaderUserRole роль пользователя: customer или admin
	HeaderUserRole = "X-User-Role"
)

const (
	msgMissingIdentity = "отсутствуют заголовки идентификации"
	msgInvalidIdentity = "некорректные заголовки идентификации"
)

type actorContextKey struct{}

// Identity извлекает личность вызывающего из заголовков запроса и кладёт
// её в контекст. Запросы без корректной пары заголовков отклоняются.
// Проверка подлинности заголовков - зона ответственности шлюза перед
// сервисом
func Identity(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rawID := r.Header.Get(HeaderUserID)
		rawRole := r.Header.Get(HeaderUserRole)

		if rawID == "" || rawRole == "" {
			handlers.RespondError(w, http.StatusUnauthorized, msgMissingIdentity)
			return
		}

		userID, err := strconv.ParseInt(rawID, 10, 64)
		if err != nil || userID <= 0 {
			handlers.RespondBadRequest(w, msgInvalidIdentity)
			return
		}

		role := domain.Role(rawRole)
		if !role.IsValid() {
			handlers.RespondBadRequest(w, msgInvalidIdentity)
			return
		}

		actor := domain.Actor{UserID: userID, Role: role}
		ctx := context.WithValue(r.Context(), actorContextKey{}, actor)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// ActorFromContext возвращает личность вызывающего, положенную Identity
func ActorFromContext(ctx context.Context) (domain.Actor, bool) {
	actor, ok := ctx.Value(actorContextKey{}).(domain.Actor)
	return actor, ok
}
