package schedule

import (
	"context"
	"fmt"

	"github.com/m04kA/BRB-ScheduleService/internal/domain"
	"github.com/m04kA/BRB-ScheduleService/internal/service/schedule/models"
	"github.com/m04kA/BRB-ScheduleService/pkg/types"
)

// Service сервис недельного расписания
type Service struct {
	scheduleRepo ScheduleRepository
	txManager    TransactionManager
	logger       Logger
}

// NewService создает новый экземпляр сервиса расписания
func NewService(
	scheduleRepo ScheduleRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		scheduleRepo: scheduleRepo,
		txManager:    txManager,
		logger:       logger,
	}
}

// GetWeek возвращает текущее недельное расписание
func (s *Service) GetWeek(ctx context.Context) (*models.WeekScheduleResponse, error) {
	week, err := s.scheduleRepo.GetWeek(ctx)
	if err != nil {
		s.logger.Error("GetWeek: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetWeek - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainWeek(week), nil
}

// UpdateWeek пакетно обновляет все семь дней расписания.
// Сначала валидируются все дни; первая же ошибка прерывает операцию с
// указанием проблемного дня, и ни одна строка не меняется. Запись идёт
// в одной транзакции, после чего возвращается перечитанное каноничное
// состояние. Доступно только администратору
func (s *Service) UpdateWeek(ctx context.Context, req *models.UpdateWeekRequest) (*models.WeekScheduleResponse, error) {
	s.logger.Info("UpdateWeek: actor=%d role=%s, interval=%d", req.Actor.UserID, req.Actor.Role, req.SlotIntervalMinutes)

	if !req.Actor.IsAdmin() {
		s.logger.Warn("UpdateWeek: access denied for actor=%d", req.Actor.UserID)
		return nil, ErrAccessDenied
	}

	week, err := buildWeek(req)
	if err != nil {
		s.logger.Warn("UpdateWeek: validation failed: %v", err)
		return nil, err
	}

	var updated *domain.WeekSchedule

	err = s.txManager.Do(ctx, func(txCtx context.Context) error {
		if err := s.scheduleRepo.UpdateWeek(txCtx, week); err != nil {
			s.logger.Error("UpdateWeek: failed to update schedule: %v", err)
			return fmt.Errorf("%w: UpdateWeek - repository error: %v", ErrInternal, err)
		}

		updated, err = s.scheduleRepo.GetWeek(txCtx)
		if err != nil {
			s.logger.Error("UpdateWeek: failed to re-read schedule: %v", err)
			return fmt.Errorf("%w: UpdateWeek - repository error: %v", ErrInternal, err)
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	s.logger.Info("UpdateWeek: schedule successfully updated")
	return models.FromDomainWeek(updated), nil
}

// buildWeek валидирует запрос и собирает полное недельное расписание.
// Каждый день недели должен присутствовать ровно один раз
func buildWeek(req *models.UpdateWeekRequest) (*domain.WeekSchedule, error) {
	if req.SlotIntervalMinutes < domain.MinSlotIntervalMinutes || req.SlotIntervalMinutes > domain.MaxSlotIntervalMinutes {
		return nil, fmt.Errorf("%w: slotIntervalMinutes must be between %d and %d",
			ErrValidation, domain.MinSlotIntervalMinutes, domain.MaxSlotIntervalMinutes)
	}

	if len(req.Days) != len(domain.Weekdays) {
		return nil, fmt.Errorf("%w: expected %d days, got %d", ErrValidation, len(domain.Weekdays), len(req.Days))
	}

	var week domain.WeekSchedule
	var seen [7]bool

	for _, day := range req.Days {
		weekday, ok := domain.WeekdayFromName(day.Weekday)
		if !ok {
			return nil, fmt.Errorf("%w: unknown weekday %q", ErrValidation, day.Weekday)
		}
		if seen[weekday] {
			return nil, fmt.Errorf("%w: %s: duplicate weekday", ErrValidation, weekday)
		}
		seen[weekday] = true

		cfg, err := buildDay(weekday, day, req.SlotIntervalMinutes)
		if err != nil {
			return nil, err
		}
		week[weekday] = *cfg
	}

	return &week, nil
}

// buildDay валидирует конфигурацию одного дня
func buildDay(weekday domain.Weekday, day models.DayUpdate, interval int) (*domain.WeekdayConfig, error) {
	cfg := &domain.WeekdayConfig{
		Weekday:             weekday,
		Closed:              day.Closed,
		SlotIntervalMinutes: interval,
	}

	if day.Closed {
		return cfg, nil
	}

	if day.OpenTime == nil || day.CloseTime == nil {
		return nil, fmt.Errorf("%w: %s: openTime and closeTime are required when not closed", ErrValidation, weekday)
	}

	open, err := types.NewTimeStringFromString(*day.OpenTime)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: invalid openTime %q", ErrValidation, weekday, *day.OpenTime)
	}

	closeTime, err := types.NewTimeStringFromString(*day.CloseTime)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: invalid closeTime %q", ErrValidation, weekday, *day.CloseTime)
	}

	if !open.IsBefore(closeTime) {
		return nil, fmt.Errorf("%w: %s: openTime must precede closeTime", ErrValidation, weekday)
	}

	cfg.OpenTime = &open
	cfg.CloseTime = &closeTime
	return cfg, nil
}
