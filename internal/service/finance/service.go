package finance

import (
	"context"
	"fmt"

	"github.com/m04kA/BRB-ScheduleService/internal/domain"
	"github.com/m04kA/BRB-ScheduleService/internal/service/finance/models"
)

// Service сервис ручного финансового реестра
type Service struct {
	financeRepo FinanceRepository
	txManager   TransactionManager
	logger      Logger
}

// NewService создает новый экземпляр финансового сервиса
func NewService(
	financeRepo FinanceRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		financeRepo: financeRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

// GetYear возвращает финансовые записи года, упорядоченные по месяцам.
// Если записей за год нет, год инициализируется плейсхолдерами в одной
// транзакции и возвращается уже заполненным
func (s *Service) GetYear(ctx context.Context, year int) ([]*domain.FinancialRecord, error) {
	records, err := s.financeRepo.GetByYear(ctx, year)
	if err != nil {
		s.logger.Error("GetYear: repository error for year=%d: %v", year, err)
		return nil, fmt.Errorf("%w: GetYear - repository error: %v", ErrInternal, err)
	}

	if len(records) > 0 {
		return records, nil
	}

	s.logger.Info("GetYear: seeding financial records for year=%d", year)

	err = s.txManager.Do(ctx, func(txCtx context.Context) error {
		for _, record := range domain.SeedFinancialYear(year) {
			if err := s.financeRepo.Upsert(txCtx, &record); err != nil {
				return fmt.Errorf("%w: GetYear - failed to seed %s %d: %v", ErrInternal, record.Month, year, err)
			}
		}

		records, err = s.financeRepo.GetByYear(txCtx, year)
		if err != nil {
			return fmt.Errorf("%w: GetYear - repository error: %v", ErrInternal, err)
		}
		return nil
	})

	if err != nil {
		s.logger.Error("GetYear: failed to seed year=%d: %v", year, err)
		return nil, err
	}

	return records, nil
}

// UpdateYear пакетно обновляет финансовые записи года.
// Все месяцы пишутся в одной транзакции, после чего возвращается
// перечитанное состояние. Доступно только администратору
func (s *Service) UpdateYear(ctx context.Context, req *models.UpdateYearRequest) (*models.YearResponse, error) {
	s.logger.Info("UpdateYear: actor=%d role=%s, year=%d, months=%d",
		req.Actor.UserID, req.Actor.Role, req.Year, len(req.Months))

	if !req.Actor.IsAdmin() {
		s.logger.Warn("UpdateYear: access denied for actor=%d", req.Actor.UserID)
		return nil, ErrAccessDenied
	}

	if err := validateUpdateYear(req); err != nil {
		s.logger.Warn("UpdateYear: validation failed: %v", err)
		return nil, err
	}

	var updated []*domain.FinancialRecord

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		for _, month := range req.Months {
			if err := s.financeRepo.Upsert(txCtx, month.ToDomainRecord(req.Year)); err != nil {
				s.logger.Error("UpdateYear: failed to upsert month=%d year=%d: %v", month.Month, req.Year, err)
				return fmt.Errorf("%w: UpdateYear - repository error: %v", ErrInternal, err)
			}
		}

		var err error
		updated, err = s.financeRepo.GetByYear(txCtx, req.Year)
		if err != nil {
			s.logger.Error("UpdateYear: failed to re-read year=%d: %v", req.Year, err)
			return fmt.Errorf("%w: UpdateYear - repository error: %v", ErrInternal, err)
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	s.logger.Info("UpdateYear: successfully updated year=%d", req.Year)
	return models.FromDomainRecords(req.Year, updated), nil
}

// validateUpdateYear проверяет год, диапазон месяцев и отсутствие дублей
func validateUpdateYear(req *models.UpdateYearRequest) error {
	if req.Year <= 0 {
		return fmt.Errorf("%w: year must be positive", ErrValidation)
	}

	if len(req.Months) == 0 {
		return fmt.Errorf("%w: at least one month is required", ErrValidation)
	}

	var seen [13]bool
	for _, month := range req.Months {
		if month.Month < 1 || month.Month > 12 {
			return fmt.Errorf("%w: month must be between 1 and 12, got %d", ErrValidation, month.Month)
		}
		if seen[month.Month] {
			return fmt.Errorf("%w: duplicate month %d", ErrValidation, month.Month)
		}
		seen[month.Month] = true

		if month.Revenue < 0 || month.Expense < 0 {
			return fmt.Errorf("%w: month %d: revenue and expense must be non-negative", ErrValidation, month.Month)
		}
	}

	return nil
}
