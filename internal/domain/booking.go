package domain

import (
	"time"

	"github.com/google/uuid"
)

// BookingStatus статус бронирования во внешней системе
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCompleted BookingStatus = "completed"
	StatusCancelled BookingStatus = "cancelled"
)

// Booking бронирование, реплицированное из внешней booking-системы
// Движок доступности использует его только на чтение
type Booking struct {
	ID            uuid.UUID
	TenantID      uuid.UUID
	OwnerID       uuid.UUID
	StartDateTime time.Time
	EndDateTime   time.Time
	Status        BookingStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsBusy возвращает true, если бронирование занимает время тенанта
// Completed и Cancelled движком игнорируются
func (b *Booking) IsBusy() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// IsCancelled возвращает true для отмененного бронирования
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelled
}

// Range возвращает интервал бронирования без буферов
func (b *Booking) Range() TimeRange {
	return TimeRange{Start: b.StartDateTime, End: b.EndDateTime}
}

// BufferedRange возвращает интервал бронирования, расширенный буферами тенанта
func (b *Booking) BufferedRange(bufferBeforeMinutes, bufferAfterMinutes int) TimeRange {
	return TimeRange{
		Start: b.StartDateTime.Add(-time.Duration(bufferBeforeMinutes) * time.Minute),
		End:   b.EndDateTime.Add(time.Duration(bufferAfterMinutes) * time.Minute),
	}
}
