package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-AvailabilityService/internal/api/handlers"
)

// HeaderTenantID заголовок с идентификатором тенанта
// Аутентификацию выполняет API gateway, сюда приходит уже проверенный ID
const HeaderTenantID = "X-Tenant-ID"

type contextKey string

const tenantIDKey contextKey = "tenantID"

// Auth требует валидный X-Tenant-ID и кладет его в контекст запроса
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := r.Header.Get(HeaderTenantID)
		if raw == "" {
			handlers.RespondUnauthorized(w, "заголовок X-Tenant-ID обязателен")
			return
		}

		tenantID, err := uuid.Parse(raw)
		if err != nil {
			handlers.RespondUnauthorized(w, "некорректный X-Tenant-ID")
			return
		}

		ctx := context.WithValue(r.Context(), tenantIDKey, tenantID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// TenantID извлекает ID тенанта из контекста запроса
func TenantID(ctx context.Context) (uuid.UUID, bool) {
	tenantID, ok := ctx.Value(tenantIDKey).(uuid.UUID)
	return tenantID, ok
}
