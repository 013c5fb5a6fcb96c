package domain

import "time"

// ConflictType источник конфликта при проверке слота
type ConflictType string

const (
	ConflictWorkingHours ConflictType = "working_hours"
	ConflictTimeBlock    ConflictType = "time_block"
	ConflictBooking      ConflictType = "booking"
	ConflictBufferTime   ConflictType = "buffer_time"
)

// Conflict конфликт кандидата на бронирование с занятым источником
type Conflict struct {
	Type         ConflictType
	OverlapStart time.Time
	OverlapEnd   time.Time
}
