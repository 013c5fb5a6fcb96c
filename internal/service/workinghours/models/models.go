package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

// Request модели

// CreateWorkingHoursRequest запрос на создание рабочих часов одного дня
type CreateWorkingHoursRequest struct {
	Day                   int    `json:"day"`       // 0=воскресенье ... 6=суббота
	StartTime             string `json:"startTime"` // "HH:MM:SS"
	EndTime               string `json:"endTime"`
	MaxConcurrentBookings *int   `json:"maxConcurrentBookings,omitempty"` // По умолчанию 1
}

// WeeklyScheduleEntry элемент недельного расписания
// Один элемент может покрывать несколько дней; выходные помечаются isWorkFree
type WeeklyScheduleEntry struct {
	Days                  []int   `json:"days"`
	IsWorkFree            bool    `json:"isWorkFree,omitempty"`
	StartTime             *string `json:"startTime,omitempty"`
	EndTime               *string `json:"endTime,omitempty"`
	MaxConcurrentBookings *int    `json:"maxConcurrentBookings,omitempty"`
}

// SetWeeklyScheduleRequest запрос на замену всего недельного расписания
type SetWeeklyScheduleRequest struct {
	Schedule []WeeklyScheduleEntry `json:"schedule"`
}

// Response модели

// WorkingHoursResponse ответ с данными рабочих часов
type WorkingHoursResponse struct {
	ID                    uuid.UUID `json:"id"`
	TenantID              uuid.UUID `json:"tenantId"`
	Day                   int       `json:"day"`
	StartTime             string    `json:"startTime"`
	EndTime               string    `json:"endTime"`
	MaxConcurrentBookings int       `json:"maxConcurrentBookings"`
	CreatedAt             string    `json:"createdAt"`
	UpdatedAt             string    `json:"updatedAt"`
}

// WorkingHoursListResponse ответ со списком рабочих часов тенанта
type WorkingHoursListResponse struct {
	Items []WorkingHoursResponse `json:"items"`
}

// WeeklyScheduleResponse итог замены недельного расписания
type WeeklyScheduleResponse struct {
	CreatedCount int      `json:"createdCount"`
	CreatedDays  []string `json:"createdDays"`
	FreeDays     []string `json:"freeDays"`
}

// ToDomain конвертирует request в domain запись
func (r *CreateWorkingHoursRequest) ToDomain(tenantID uuid.UUID) (*domain.WorkingHours, error) {
	startTime, err := types.ParseTimeOfDay(r.StartTime)
	if err != nil {
		return nil, err
	}

	endTime, err := types.ParseTimeOfDay(r.EndTime)
	if err != nil {
		return nil, err
	}

	maxConcurrent := 1
	if r.MaxConcurrentBookings != nil {
		maxConcurrent = *r.MaxConcurrentBookings
	}

	return &domain.WorkingHours{
		ID:                    uuid.New(),
		TenantID:              tenantID,
		Day:                   time.Weekday(r.Day),
		StartTime:             startTime,
		EndTime:               endTime,
		MaxConcurrentBookings: maxConcurrent,
	}, nil
}

// FromDomainWorkingHours конвертирует domain запись в response
func FromDomainWorkingHours(wh *domain.WorkingHours) *WorkingHoursResponse {
	return &WorkingHoursResponse{
		ID:                    wh.ID,
		TenantID:              wh.TenantID,
		Day:                   int(wh.Day),
		StartTime:             wh.StartTime.String(),
		EndTime:               wh.EndTime.String(),
		MaxConcurrentBookings: wh.MaxConcurrentBookings,
		CreatedAt:             wh.CreatedAt.Format(domain.DateTimeFormat),
		UpdatedAt:             wh.UpdatedAt.Format(domain.DateTimeFormat),
	}
}

// FromDomainWorkingHoursList конвертирует список domain записей в response
func FromDomainWorkingHoursList(hours []*domain.WorkingHours) *WorkingHoursListResponse {
	items := make([]WorkingHoursResponse, 0, len(hours))
	for _, wh := range hours {
		items = append(items, *FromDomainWorkingHours(wh))
	}
	return &WorkingHoursListResponse{Items: items}
}
