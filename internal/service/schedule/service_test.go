package schedule

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/BRB-ScheduleService/internal/domain"
	"github.com/m04kA/BRB-ScheduleService/internal/service/schedule/models"
	"github.com/m04kA/BRB-ScheduleService/pkg/ptr"
	"github.com/m04kA/BRB-ScheduleService/pkg/types"
)

// mockScheduleRepo implements ScheduleRepository in memory.
type mockScheduleRepo struct {
	week       domain.WeekSchedule
	updateCall int
}

func newMockScheduleRepo() *mockScheduleRepo {
	m := &mockScheduleRepo{}
	for _, wd := range domain.Weekdays {
		m.week[wd] = domain.WeekdayConfig{
			Weekday:             wd,
			OpenTime:            ptr.Ptr(types.TimeString("09:00")),
			CloseTime:           ptr.Ptr(types.TimeString("18:00")),
			SlotIntervalMinutes: 30,
			UpdatedAt:           time.Now(),
		}
	}
	return m
}

func (m *mockScheduleRepo) GetWeek(ctx context.Context) (*domain.WeekSchedule, error) {
	week := m.week
	return &week, nil
}

func (m *mockScheduleRepo) UpdateWeek(ctx context.Context, week *domain.WeekSchedule) error {
	m.updateCall++
	m.week = *week
	return nil
}

// fakeTxManager runs the callback without a real transaction.
type fakeTxManager struct{}

func (fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// noopLogger implements Logger for testing.
type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

var admin = domain.Actor{UserID: 1, Role: domain.RoleAdmin}

func fullWeekRequest() *models.UpdateWeekRequest {
	days := make([]models.DayUpdate, 0, 7)
	for _, wd := range domain.Weekdays {
		if wd == domain.Sunday {
			days = append(days, models.DayUpdate{Weekday: wd.String(), Closed: true})
			continue
		}
		days = append(days, models.DayUpdate{
			Weekday:   wd.String(),
			OpenTime:  ptr.Ptr("10:00"),
			CloseTime: ptr.Ptr("19:00"),
		})
	}
	return &models.UpdateWeekRequest{
		Actor:               admin,
		SlotIntervalMinutes: 45,
		Days:                days,
	}
}

func TestUpdateWeek_Success(t *testing.T) {
	repo := newMockScheduleRepo()
	svc := NewService(repo, fakeTxManager{}, noopLogger{})

	resp, err := svc.UpdateWeek(context.Background(), fullWeekRequest())
	require.NoError(t, err)

	assert.Equal(t, 45, resp.SlotIntervalMinutes)
	require.Len(t, resp.Days, 7)
	assert.Equal(t, "Monday", resp.Days[0].Weekday)
	require.NotNil(t, resp.Days[0].OpenTime)
	assert.Equal(t, "10:00", *resp.Days[0].OpenTime)
	assert.True(t, resp.Days[6].Closed)
	assert.Nil(t, resp.Days[6].OpenTime)
	assert.Equal(t, 1, repo.updateCall)
}

func TestUpdateWeek_SecondsAreTruncated(t *testing.T) {
	repo := newMockScheduleRepo()
	svc := NewService(repo, fakeTxManager{}, noopLogger{})

	req := fullWeekRequest()
	req.Days[0].OpenTime = ptr.Ptr("10:00:00")
	req.Days[0].CloseTime = ptr.Ptr("19:30:15")

	resp, err := svc.UpdateWeek(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, "10:00", *resp.Days[0].OpenTime)
	assert.Equal(t, "19:30", *resp.Days[0].CloseTime)
}

func TestUpdateWeek_ValidationNamesOffendingWeekday(t *testing.T) {
	repo := newMockScheduleRepo()
	svc := NewService(repo, fakeTxManager{}, noopLogger{})

	tests := []struct {
		name    string
		mutate  func(req *models.UpdateWeekRequest)
		wantSub string
	}{
		{
			name: "open after close",
			mutate: func(req *models.UpdateWeekRequest) {
				req.Days[2].OpenTime = ptr.Ptr("19:00")
				req.Days[2].CloseTime = ptr.Ptr("10:00")
			},
			wantSub: "Wednesday",
		},
		{
			name: "open equals close",
			mutate: func(req *models.UpdateWeekRequest) {
				req.Days[4].OpenTime = ptr.Ptr("10:00")
				req.Days[4].CloseTime = ptr.Ptr("10:00")
			},
			wantSub: "Friday",
		},
		{
			name: "missing close time on an open day",
			mutate: func(req *models.UpdateWeekRequest) {
				req.Days[1].CloseTime = nil
			},
			wantSub: "Tuesday",
		},
		{
			name: "unparseable time",
			mutate: func(req *models.UpdateWeekRequest) {
				req.Days[5].OpenTime = ptr.Ptr("noon")
			},
			wantSub: "Saturday",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := fullWeekRequest()
			tt.mutate(req)

			_, err := svc.UpdateWeek(context.Background(), req)
			require.ErrorIs(t, err, ErrValidation)
			assert.Contains(t, err.Error(), tt.wantSub)
			// nothing was written
			assert.Equal(t, 0, repo.updateCall)
		})
	}
}

func TestUpdateWeek_RequiresAllSevenDays(t *testing.T) {
	repo := newMockScheduleRepo()
	svc := NewService(repo, fakeTxManager{}, noopLogger{})

	req := fullWeekRequest()
	req.Days = req.Days[:6]

	_, err := svc.UpdateWeek(context.Background(), req)
	require.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, 0, repo.updateCall)
}

func TestUpdateWeek_RejectsDuplicateWeekday(t *testing.T) {
	repo := newMockScheduleRepo()
	svc := NewService(repo, fakeTxManager{}, noopLogger{})

	req := fullWeekRequest()
	req.Days[6] = req.Days[0]

	_, err := svc.UpdateWeek(context.Background(), req)
	require.ErrorIs(t, err, ErrValidation)
	assert.Contains(t, err.Error(), "duplicate")
}

func TestUpdateWeek_RejectsBadInterval(t *testing.T) {
	svc := NewService(newMockScheduleRepo(), fakeTxManager{}, noopLogger{})

	req := fullWeekRequest()
	req.SlotIntervalMinutes = 0

	_, err := svc.UpdateWeek(context.Background(), req)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestUpdateWeek_AdminOnly(t *testing.T) {
	svc := NewService(newMockScheduleRepo(), fakeTxManager{}, noopLogger{})

	req := fullWeekRequest()
	req.Actor = domain.Actor{UserID: 5, Role: domain.RoleCustomer}

	_, err := svc.UpdateWeek(context.Background(), req)
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestGetWeek(t *testing.T) {
	svc := NewService(newMockScheduleRepo(), fakeTxManager{}, noopLogger{})

	resp, err := svc.GetWeek(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 30, resp.SlotIntervalMinutes)
	require.Len(t, resp.Days, 7)
	assert.Equal(t, "Sunday", resp.Days[6].Weekday)
}
