package middleware

import (
	"context"
	"net/http"

	"github.com/stevenluongo/bna-wellness/internal/api/handlers"
)

// UserIDHeader заголовок с идентификатором аутентифицированного тренера.
// Аутентификация выполняется внешним шлюзом, сервис доверяет заголовку.
const UserIDHeader = "X-User-ID"

type userIDKey struct{}

// Auth требует наличия X-User-ID и кладёт его в контекст запроса
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID := r.Header.Get(UserIDHeader)
		if userID == "" {
			handlers.RespondJSON(w, http.StatusUnauthorized,
				handlers.ErrorResponse{Error: "missing " + UserIDHeader + " header"})
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey{}, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// UserID возвращает идентификатор тренера из контекста запроса
func UserID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(userIDKey{}).(string)
	return id, ok
}
