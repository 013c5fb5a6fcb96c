package models

import (
	"github.com/google/uuid"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// Request модели

// UpdateBufferSettingsRequest частичное обновление буферных настроек
type UpdateBufferSettingsRequest struct {
	BufferBeforeMinutes *int `json:"bufferBeforeMinutes,omitempty"`
	BufferAfterMinutes  *int `json:"bufferAfterMinutes,omitempty"`
}

// Response модели

// BufferSettingsResponse ответ с буферными настройками тенанта
type BufferSettingsResponse struct {
	BufferBeforeMinutes int `json:"bufferBeforeMinutes"`
	BufferAfterMinutes  int `json:"bufferAfterMinutes"`
}

// TenantSettingsResponse полные настройки тенанта
type TenantSettingsResponse struct {
	ID                  uuid.UUID `json:"id"`
	BusinessName        string    `json:"businessName"`
	Email               *string   `json:"email,omitempty"`
	Phone               *string   `json:"phone,omitempty"`
	Address             *string   `json:"address,omitempty"`
	TimeZone            *string   `json:"timeZone,omitempty"`
	BufferBeforeMinutes int       `json:"bufferBeforeMinutes"`
	BufferAfterMinutes  int       `json:"bufferAfterMinutes"`
	CreatedAt           string    `json:"createdAt"`
	UpdatedAt           string    `json:"updatedAt"`
}

// FromDomainTenant конвертирует domain тенанта в response
func FromDomainTenant(t *domain.Tenant) *TenantSettingsResponse {
	return &TenantSettingsResponse{
		ID:                  t.ID,
		BusinessName:        t.BusinessName,
		Email:               t.Email,
		Phone:               t.Phone,
		Address:             t.Address,
		TimeZone:            t.TimeZone,
		BufferBeforeMinutes: t.BufferBeforeMinutes,
		BufferAfterMinutes:  t.BufferAfterMinutes,
		CreatedAt:           t.CreatedAt.Format(domain.DateTimeFormat),
		UpdatedAt:           t.UpdatedAt.Format(domain.DateTimeFormat),
	}
}

// FromDomainBuffers конвертирует буферные настройки тенанта в response
func FromDomainBuffers(t *domain.Tenant) *BufferSettingsResponse {
	return &BufferSettingsResponse{
		BufferBeforeMinutes: t.BufferBeforeMinutes,
		BufferAfterMinutes:  t.BufferAfterMinutes,
	}
}
