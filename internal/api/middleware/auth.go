package middleware

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
)

// HeaderUserID заголовок с UUID аутентифицированного пользователя.
// Заголовок проставляет API gateway после проверки токена.
const HeaderUserID = "X-User-ID"

type contextKey string

const userIDKey contextKey = "userID"

// Auth проверяет наличие и формат заголовка X-User-ID
// и кладёт UUID пользователя в контекст запроса
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rawID := r.Header.Get(HeaderUserID)
		if rawID == "" {
			respondAuthError(w, http.StatusUnauthorized, "отсутствует заголовок X-User-ID")
			return
		}

		userID, err := uuid.Parse(rawID)
		if err != nil {
			respondAuthError(w, http.StatusUnauthorized, "некорректный формат X-User-ID, ожидается UUID")
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey, userID.String())
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetUserID извлекает UUID пользователя из контекста запроса
func GetUserID(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(userIDKey).(string)
	return userID, ok
}

func respondAuthError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]interface{}{
		"code":    status,
		"message": message,
	})
}
