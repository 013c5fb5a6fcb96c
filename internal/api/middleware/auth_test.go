package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuth(t *testing.T) {
	tenantID := uuid.New()

	var gotTenantID uuid.UUID
	var called bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		gotTenantID, _ = TenantID(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	t.Run("valid header passes tenant to context", func(t *testing.T) {
		called = false
		req := httptest.NewRequest(http.MethodGet, "/api/v1/availability/settings", nil)
		req.Header.Set(HeaderTenantID, tenantID.String())
		rec := httptest.NewRecorder()

		Auth(next).ServeHTTP(rec, req)

		require.True(t, called)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, tenantID, gotTenantID)
	})

	t.Run("missing header is rejected", func(t *testing.T) {
		called = false
		req := httptest.NewRequest(http.MethodGet, "/api/v1/availability/settings", nil)
		rec := httptest.NewRecorder()

		Auth(next).ServeHTTP(rec, req)

		assert.False(t, called)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("malformed header is rejected", func(t *testing.T) {
		called = false
		req := httptest.NewRequest(http.MethodGet, "/api/v1/availability/settings", nil)
		req.Header.Set(HeaderTenantID, "not-a-uuid")
		rec := httptest.NewRecorder()

		Auth(next).ServeHTTP(rec, req)

		assert.False(t, called)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
