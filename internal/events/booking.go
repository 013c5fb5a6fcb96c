package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-AvailabilityService/pkg/metrics"
)

// BookingEventHandler зеркалирует события BookingService в локальную БД
type BookingEventHandler struct {
	bookingRepo BookingRepository
	logger      Logger
}

// NewBookingEventHandler создает новый обработчик событий бронирований
func NewBookingEventHandler(bookingRepo BookingRepository, logger Logger) *BookingEventHandler {
	return &BookingEventHandler{
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// HandleCreated сохраняет созданное бронирование
// Повторная доставка события безопасна: вставка дубликата пропускается
func (h *BookingEventHandler) HandleCreated(ctx context.Context, payload []byte) error {
	var event BookingCreatedEvent
	if err := json.Unmarshal(payload, &event); err != nil {
		return fmt.Errorf("events: unmarshal booking created event: %w", err)
	}

	h.logger.Info("BookingCreated: booking=%s, tenant=%s", event.BookingID, event.TenantID)

	booking := &domain.Booking{
		ID:            event.BookingID,
		TenantID:      event.TenantID,
		OwnerID:       event.OwnerID,
		StartDateTime: event.StartDateTime,
		EndDateTime:   event.EndDateTime,
		Status:        domain.BookingStatus(event.BookingStatus),
	}

	if err := h.bookingRepo.Create(ctx, booking); err != nil {
		return fmt.Errorf("events: create booking %s: %w", event.BookingID, err)
	}

	return nil
}

// HandleCancelled переводит бронирование в статус cancelled
// Неизвестное бронирование логируется и пропускается
func (h *BookingEventHandler) HandleCancelled(ctx context.Context, payload []byte) error {
	var event BookingCancelledEvent
	if err := json.Unmarshal(payload, &event); err != nil {
		return fmt.Errorf("events: unmarshal booking cancelled event: %w", err)
	}

	h.logger.Info("BookingCancelled: booking=%s", event.BookingID)

	err := h.bookingRepo.UpdateStatus(ctx, event.BookingID, domain.StatusCancelled)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			h.logger.Warn("BookingCancelled: booking id=%s not found, skipping", event.BookingID)
			return nil
		}
		return fmt.Errorf("events: cancel booking %s: %w", event.BookingID, err)
	}

	return nil
}

// NewBookingConsumers создает консьюмеры топиков бронирований
func NewBookingConsumers(cfg ConsumerConfig, handler *BookingEventHandler, m *metrics.Metrics, logger Logger) []*Consumer {
	return []*Consumer{
		newConsumer(cfg, TopicBookingCreated, handler.HandleCreated, m, logger),
		newConsumer(cfg, TopicBookingCancelled, handler.HandleCancelled, m, logger),
	}
}
