package events

import (
	"time"

	"github.com/google/uuid"
)

// Топики внешних событий, зеркалируемых в локальную БД
const (
	TopicBookingCreated   = "booking.created"
	TopicBookingCancelled = "booking.cancelled"
	TopicTenantCreated    = "tenant.created"
	TopicTenantUpdated    = "tenant.updated"
)

// BookingCreatedEvent событие создания бронирования в BookingService
type BookingCreatedEvent struct {
	BookingID     uuid.UUID `json:"bookingId"`
	TenantID      uuid.UUID `json:"tenantId"`
	OwnerID       uuid.UUID `json:"ownerId"`
	StartDateTime time.Time `json:"startDateTime"`
	EndDateTime   time.Time `json:"endDateTime"`
	BookingStatus string    `json:"bookingStatus"`
}

// BookingCancelledEvent событие отмены бронирования
type BookingCancelledEvent struct {
	BookingID uuid.UUID `json:"bookingId"`
}

// TenantCreatedEvent событие создания тенанта в TenantService
type TenantCreatedEvent struct {
	TenantID      uuid.UUID `json:"tenantId"`
	BusinessName  string    `json:"businessName"`
	BusinessEmail *string   `json:"businessEmail,omitempty"`
	BusinessPhone *string   `json:"businessPhone,omitempty"`
	Address       *string   `json:"address,omitempty"`
}

// TenantUpdatedEvent событие обновления профиля тенанта
type TenantUpdatedEvent struct {
	TenantID      uuid.UUID `json:"tenantId"`
	BusinessName  string    `json:"businessName"`
	BusinessEmail *string   `json:"businessEmail,omitempty"`
	BusinessPhone *string   `json:"businessPhone,omitempty"`
	Address       *string   `json:"address,omitempty"`
}
