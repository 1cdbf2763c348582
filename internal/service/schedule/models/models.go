package models

import (
	"time"

	"github.com/m04kA/BRB-ScheduleService/internal/domain"
)

// Request модели

// DayUpdate конфигурация одного дня недели в запросе на обновление
type DayUpdate struct {
	Weekday   string  `json:"weekday"`
	Closed    bool    `json:"closed"`
	OpenTime  *string `json:"openTime,omitempty"`  // "09:00", секунды отбрасываются
	CloseTime *string `json:"closeTime,omitempty"` // "18:00"
}

// UpdateWeekRequest запрос на пакетное обновление недельного расписания.
// Должен содержать все семь дней недели
type UpdateWeekRequest struct {
	Actor               domain.Actor
	SlotIntervalMinutes int         `json:"slotIntervalMinutes"`
	Days                []DayUpdate `json:"days"`
}

// Response модели

// DayConfigResponse конфигурация одного дня недели в ответе
type DayConfigResponse struct {
	Weekday   string  `json:"weekday"`
	Closed    bool    `json:"closed"`
	OpenTime  *string `json:"openTime,omitempty"`
	CloseTime *string `json:"closeTime,omitempty"`
	UpdatedAt string  `json:"updatedAt"`
}

// WeekScheduleResponse недельное расписание
type WeekScheduleResponse struct {
	SlotIntervalMinutes int                 `json:"slotIntervalMinutes"`
	Days                []DayConfigResponse `json:"days"`
}

// FromDomainWeek конвертирует доменное расписание в ответ
func FromDomainWeek(week *domain.WeekSchedule) *WeekScheduleResponse {
	days := make([]DayConfigResponse, 0, len(week))
	for _, cfg := range week {
		day := DayConfigResponse{
			Weekday:   cfg.Weekday.String(),
			Closed:    cfg.Closed,
			UpdatedAt: cfg.UpdatedAt.Format(time.RFC3339),
		}
		if cfg.OpenTime != nil {
			open := cfg.OpenTime.String()
			day.OpenTime = &open
		}
		if cfg.CloseTime != nil {
			closeTime := cfg.CloseTime.String()
			day.CloseTime = &closeTime
		}
		days = append(days, day)
	}

	return &WeekScheduleResponse{
		SlotIntervalMinutes: week[domain.Monday].EffectiveInterval(),
		Days:                days,
	}
}
