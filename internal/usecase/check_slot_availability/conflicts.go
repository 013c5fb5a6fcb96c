package check_slot_availability

import (
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// detectWorkingHoursConflicts сравнивает кандидата с рабочим окном его дня
// Буферы тенанта к рабочим часам не применяются: буфер защищает бронирования,
// а не границы рабочего дня. Отсутствие записи (wh == nil) означает
// круглосуточную доступность
func detectWorkingHoursConflicts(candidate domain.TimeRange, wh *domain.WorkingHours) ([]domain.Conflict, error) {
	if wh == nil {
		return nil, nil
	}

	window, err := wh.WindowFor(candidate.Start)
	if err != nil {
		return nil, err
	}

	conflicts := make([]domain.Conflict, 0, 2)

	if candidate.Start.Before(window.Start) {
		conflicts = append(conflicts, domain.Conflict{
			Type:         domain.ConflictWorkingHours,
			OverlapStart: candidate.Start,
			OverlapEnd:   window.Start,
		})
	}

	if candidate.End.After(window.End) {
		conflicts = append(conflicts, domain.Conflict{
			Type:         domain.ConflictWorkingHours,
			OverlapStart: window.End,
			OverlapEnd:   candidate.End,
		})
	}

	return conflicts, nil
}

// detectTimeBlockConflicts пересекает расширенный буферами интервал кандидата
// с блокировками времени
func detectTimeBlockConflicts(padded domain.TimeRange, blocks []*domain.TimeBlock) []domain.Conflict {
	conflicts := make([]domain.Conflict, 0)

	for _, block := range blocks {
		if overlap, ok := domain.Overlap(padded, block.Range()); ok {
			conflicts = append(conflicts, domain.Conflict{
				Type:         domain.ConflictTimeBlock,
				OverlapStart: overlap.Start,
				OverlapEnd:   overlap.End,
			})
		}
	}

	return conflicts
}

// detectBookingConflicts пересекает расширенный интервал кандидата с
// бронированиями, каждое из которых тоже расширено буферами тенанта
// Конфликт помечается как buffer_time: границы пересечения включают буферы
func detectBookingConflicts(padded domain.TimeRange, bookings []*domain.Booking, bufferBeforeMinutes, bufferAfterMinutes int) []domain.Conflict {
	conflicts := make([]domain.Conflict, 0)

	for _, booking := range bookings {
		if booking.IsCancelled() {
			continue
		}

		reserved := booking.BufferedRange(bufferBeforeMinutes, bufferAfterMinutes)
		if overlap, ok := domain.Overlap(padded, reserved); ok {
			conflicts = append(conflicts, domain.Conflict{
				Type:         domain.ConflictBufferTime,
				OverlapStart: overlap.Start,
				OverlapEnd:   overlap.End,
			})
		}
	}

	return conflicts
}

// paddedRange расширяет кандидата буферами тенанта
func paddedRange(candidate domain.TimeRange, bufferBeforeMinutes, bufferAfterMinutes int) domain.TimeRange {
	return domain.TimeRange{
		Start: candidate.Start.Add(-time.Duration(bufferBeforeMinutes) * time.Minute),
		End:   candidate.End.Add(time.Duration(bufferAfterMinutes) * time.Minute),
	}
}
