package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

// Request модели

// CreateTimeBlockRequest запрос на создание одиночной блокировки
type CreateTimeBlockRequest struct {
	StartDateTime time.Time `json:"startDateTime"`
	EndDateTime   time.Time `json:"endDateTime"`
	Type          string    `json:"type"`             // vacation | break | custom
	Reason        *string   `json:"reason,omitempty"` // Причина (опционально)
}

// UpdateTimeBlockRequest запрос на частичное обновление блокировки
// Время задается временем суток: при editPattern=true каждое вхождение
// серии сохраняет собственную дату
type UpdateTimeBlockRequest struct {
	StartTime   *string `json:"startTime,omitempty"` // "HH:MM:SS"
	EndTime     *string `json:"endTime,omitempty"`   // "HH:MM:SS"
	Type        *string `json:"type,omitempty"`
	Reason      *string `json:"reason,omitempty"`
	EditPattern bool    `json:"editPattern,omitempty"` // Применить ко всей серии
}

// ToDomainPatch конвертирует request в domain патч
func (r *UpdateTimeBlockRequest) ToDomainPatch() (domain.TimeBlockPatch, error) {
	patch := domain.TimeBlockPatch{Reason: r.Reason}

	if r.StartTime != nil {
		start, err := types.ParseTimeOfDay(*r.StartTime)
		if err != nil {
			return domain.TimeBlockPatch{}, err
		}
		patch.StartTime = &start
	}

	if r.EndTime != nil {
		end, err := types.ParseTimeOfDay(*r.EndTime)
		if err != nil {
			return domain.TimeBlockPatch{}, err
		}
		patch.EndTime = &end
	}

	if r.Type != nil {
		blockType, err := domain.ParseTimeBlockType(*r.Type)
		if err != nil {
			return domain.TimeBlockPatch{}, err
		}
		patch.Type = &blockType
	}

	return patch, nil
}

// ListTimeBlocksRequest запрос на получение блокировок тенанта
type ListTimeBlocksRequest struct {
	StartDate *time.Time `json:"startDate,omitempty"` // Начало периода (опционально)
	EndDate   *time.Time `json:"endDate,omitempty"`   // Конец периода (опционально)
	Limit     int        `json:"limit,omitempty"`
	Offset    int        `json:"offset,omitempty"`
}

// BulkDeleteRequest запрос на массовое удаление блокировок за период
type BulkDeleteRequest struct {
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
}

// Response модели

// TimeBlockResponse ответ с данными блокировки
type TimeBlockResponse struct {
	ID            uuid.UUID  `json:"id"`
	TenantID      uuid.UUID  `json:"tenantId"`
	StartDateTime string     `json:"startDateTime"` // "2025-06-11T12:00:00"
	EndDateTime   string     `json:"endDateTime"`
	Type          string     `json:"type"`
	Reason        *string    `json:"reason,omitempty"`
	RecurrenceID  *uuid.UUID `json:"recurrenceId,omitempty"`
	CreatedAt     string     `json:"createdAt"`
	UpdatedAt     string     `json:"updatedAt"`
}

// TimeBlockListResponse ответ со страницей блокировок
type TimeBlockListResponse struct {
	Items  []TimeBlockResponse `json:"items"`
	Total  int                 `json:"total"`
	Limit  int                 `json:"limit"`
	Offset int                 `json:"offset"`
}

// BulkDeleteResponse ответ с числом удаленных блокировок
type BulkDeleteResponse struct {
	Deleted int64 `json:"deleted"`
}

// FromDomainTimeBlock конвертирует domain блокировку в response
func FromDomainTimeBlock(block *domain.TimeBlock) *TimeBlockResponse {
	return &TimeBlockResponse{
		ID:            block.ID,
		TenantID:      block.TenantID,
		StartDateTime: block.StartDateTime.Format(domain.DateTimeFormat),
		EndDateTime:   block.EndDateTime.Format(domain.DateTimeFormat),
		Type:          string(block.Type),
		Reason:        block.Reason,
		RecurrenceID:  block.RecurrenceID,
		CreatedAt:     block.CreatedAt.Format(domain.DateTimeFormat),
		UpdatedAt:     block.UpdatedAt.Format(domain.DateTimeFormat),
	}
}

// FromDomainTimeBlockList конвертирует список domain блокировок в response
func FromDomainTimeBlockList(blocks []*domain.TimeBlock, total, limit, offset int) *TimeBlockListResponse {
	items := make([]TimeBlockResponse, 0, len(blocks))
	for _, block := range blocks {
		items = append(items, *FromDomainTimeBlock(block))
	}

	return &TimeBlockListResponse{
		Items:  items,
		Total:  total,
		Limit:  limit,
		Offset: offset,
	}
}
