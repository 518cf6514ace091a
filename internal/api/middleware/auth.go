package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/sharpcut/SC-AppointmentService/internal/api/handlers"
)

// HeaderClientID заголовок с идентификатором клиента
const HeaderClientID = "X-Client-ID"

const (
	msgMissingClientID = "заголовок X-Client-ID обязателен"
	msgInvalidClientID = "некорректный формат X-Client-ID"
)

type clientIDKey struct{}

// ClientAuth проверяет наличие и формат заголовка X-Client-ID
// и кладёт идентификатор клиента в контекст запроса
func ClientAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := r.Header.Get(HeaderClientID)
		if raw == "" {
			handlers.RespondUnauthorized(w, msgMissingClientID)
			return
		}

		clientID, err := uuid.Parse(raw)
		if err != nil {
			handlers.RespondUnauthorized(w, msgInvalidClientID)
			return
		}

		ctx := context.WithValue(r.Context(), clientIDKey{}, clientID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// ClientIDFromContext извлекает идентификатор клиента из контекста
func ClientIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	clientID, ok := ctx.Value(clientIDKey{}).(uuid.UUID)
	return clientID, ok
}
