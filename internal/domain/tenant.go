package domain

import (
	"time"

	"github.com/google/uuid"
)

// Tenant поставщик услуг, реплицированный из внешней tenant-системы
// Сама запись принадлежит внешней системе; локально редактируются
// только буферные настройки
type Tenant struct {
	ID           uuid.UUID
	BusinessName string
	Email        *string
	Phone        *string
	Address      *string
	TimeZone     *string

	// Буферы, добавляемые к каждому бронированию при расчете занятости
	BufferBeforeMinutes int
	BufferAfterMinutes  int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// BufferSettingsPatch частичное обновление буферных настроек тенанта
type BufferSettingsPatch struct {
	BufferBeforeMinutes *int
	BufferAfterMinutes  *int
}

// IsEmpty возвращает true, если патч не содержит изменений
func (p BufferSettingsPatch) IsEmpty() bool {
	return p.BufferBeforeMinutes == nil && p.BufferAfterMinutes == nil
}

// Apply применяет патч к неизменяемому снимку тенанта и возвращает новую запись
func (p BufferSettingsPatch) Apply(tenant Tenant) Tenant {
	updated := tenant

	if p.BufferBeforeMinutes != nil {
		updated.BufferBeforeMinutes = *p.BufferBeforeMinutes
	}

	if p.BufferAfterMinutes != nil {
		updated.BufferAfterMinutes = *p.BufferAfterMinutes
	}

	return updated
}
