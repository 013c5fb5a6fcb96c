package get_available_ranges

import (
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// calculateDayAvailability считает свободные интервалы одного дня
// Окно дня определяется рабочими часами (nil - круглосуточная доступность),
// из него вычитаются блокировки и бронирования с буферами тенанта
func calculateDayAvailability(
	date time.Time,
	wh *domain.WorkingHours,
	blocks []*domain.TimeBlock,
	bookings []*domain.Booking,
	bufferBeforeMinutes, bufferAfterMinutes int,
) ([]domain.TimeRange, error) {
	var window domain.TimeRange

	if wh == nil {
		window = domain.FullDayWindow(date)
	} else {
		w, err := wh.WindowFor(date)
		if err != nil {
			return nil, err
		}
		window = w
	}

	free := []domain.TimeRange{window}

	for _, block := range blocks {
		free = domain.SubtractBusy(free, block.Range())
	}

	for _, booking := range bookings {
		if !booking.IsBusy() {
			continue
		}
		free = domain.SubtractBusy(free, booking.BufferedRange(bufferBeforeMinutes, bufferAfterMinutes))
	}

	return domain.MergeRanges(free), nil
}

// startOfDay обнуляет время, сохраняя дату и зону
func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
