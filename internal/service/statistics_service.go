package service

import (
	"context"
	"errors"
	"time"

	"backend/internal/model"
	"backend/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	topListLimit      = 5
	trendMonthsLimit  = 12
	longPendingWindow = 7 * 24 * time.Hour
)

// StatisticsService computes the dashboard metric family for one department or
// for the whole organization.
type StatisticsService interface {
	DepartmentStatistics(ctx context.Context, userID string) (*model.StatisticsResponse, error)
	GlobalStatistics(ctx context.Context) (*model.StatisticsResponse, error)
}

type statisticsService struct {
	stats repository.StatisticsRepository
	users repository.UserRepository
}

func NewStatisticsService(stats repository.StatisticsRepository, users repository.UserRepository) StatisticsService {
	return &statisticsService{stats: stats, users: users}
}

// DepartmentStatistics resolves the caller's department and scopes every
// metric to it. Department heads without an assigned department are rejected.
func (s *statisticsService) DepartmentStatistics(ctx context.Context, userID string) (*model.StatisticsResponse, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if user.Department == nil || *user.Department == "" {
		return nil, ErrNoDepartment
	}

	return s.compute(ctx, *user.Department, false)
}

// GlobalStatistics computes the unscoped metric family plus the
// per-department breakdown.
func (s *statisticsService) GlobalStatistics(ctx context.Context) (*model.StatisticsResponse, error) {
	return s.compute(ctx, "", true)
}

func (s *statisticsService) compute(ctx context.Context, department string, withDepartments bool) (*model.StatisticsResponse, error) {
	resp := &model.StatisticsResponse{}
	var err error

	if resp.TotalRequests, err = s.stats.CountAll(ctx, department); err != nil {
		return nil, err
	}
	if resp.ApprovedRequests, err = s.stats.CountByStatus(ctx, department, model.StatusApproved); err != nil {
		return nil, err
	}
	if resp.PendingRequests, err = s.stats.CountByStatus(ctx, department, model.StatusPending); err != nil {
		return nil, err
	}
	if resp.DeniedRequests, err = s.stats.CountByStatus(ctx, department, model.StatusDenied); err != nil {
		return nil, err
	}
	if resp.FinalizedRequests, err = s.stats.CountByStatus(ctx, department, model.StatusFinalized); err != nil {
		return nil, err
	}

	avgDays, err := s.stats.AverageDurationDays(ctx, department)
	if err != nil {
		return nil, err
	}
	resp.AverageDuration = decimal.NewFromFloat(avgDays).Round(2)

	if resp.LeaveTypeStats, err = s.stats.TopReasons(ctx, department, topListLimit); err != nil {
		return nil, err
	}
	if resp.MonthlyTrends, err = s.stats.MonthlyTrends(ctx, department, trendMonthsLimit); err != nil {
		return nil, err
	}

	employees, err := s.stats.TopEmployeesByLeaveDays(ctx, department, topListLimit)
	if err != nil {
		return nil, err
	}
	resp.TopEmployees = make([]model.EmployeeLeaveDays, 0, len(employees))
	for _, e := range employees {
		resp.TopEmployees = append(resp.TopEmployees, model.EmployeeLeaveDays{
			Name:      e.Name,
			TotalDays: decimal.NewFromFloat(e.TotalDays).Round(2),
		})
	}

	cutoff := time.Now().Add(-longPendingWindow)
	if resp.LongPendingRequests, err = s.stats.CountPendingOlderThan(ctx, department, cutoff); err != nil {
		return nil, err
	}

	if withDepartments {
		if resp.DepartmentStats, err = s.stats.CountByDepartment(ctx); err != nil {
			return nil, err
		}
	}

	return resp, nil
}
