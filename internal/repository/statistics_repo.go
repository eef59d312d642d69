package repository

import (
	"context"
	"fmt"
	"time"

	"backend/internal/model"

	"gorm.io/gorm"
)

// EmployeeDays is a raw per-employee day total before decimal rounding.
type EmployeeDays struct {
	Name      string
	TotalDays float64
}

// StatisticsRepository runs the aggregation queries behind the dashboards.
// An empty department scopes every query to the whole organization.
type StatisticsRepository interface {
	CountByStatus(ctx context.Context, department string, status model.Status) (int64, error)
	CountAll(ctx context.Context, department string) (int64, error)
	AverageDurationDays(ctx context.Context, department string) (float64, error)
	TopReasons(ctx context.Context, department string, limit int) ([]model.ReasonCount, error)
	MonthlyTrends(ctx context.Context, department string, limit int) ([]model.MonthlyCount, error)
	TopEmployeesByLeaveDays(ctx context.Context, department string, limit int) ([]EmployeeDays, error)
	CountPendingOlderThan(ctx context.Context, department string, cutoff time.Time) (int64, error)
	CountByDepartment(ctx context.Context) ([]model.DepartmentCount, error)
}

type statisticsRepository struct {
	db *gorm.DB
}

func NewStatisticsRepository(db *gorm.DB) StatisticsRepository {
	return &statisticsRepository{db: db}
}

// scoped narrows a leave_requests query to one department when set.
func scoped(query *gorm.DB, department string) *gorm.DB {
	if department != "" {
		return query.Where("department = ?", department)
	}
	return query
}

func (r *statisticsRepository) CountByStatus(ctx context.Context, department string, status model.Status) (int64, error) {
	var count int64
	err := scoped(r.db.WithContext(ctx).Model(&model.LeaveRequest{}), department).
		Where("status = ?", status).
		Count(&count).Error
	return count, err
}

func (r *statisticsRepository) CountAll(ctx context.Context, department string) (int64, error) {
	var count int64
	err := scoped(r.db.WithContext(ctx).Model(&model.LeaveRequest{}), department).
		Count(&count).Error
	return count, err
}

func (r *statisticsRepository) AverageDurationDays(ctx context.Context, department string) (float64, error) {
	var result struct {
		AvgDays float64
	}
	err := scoped(r.db.WithContext(ctx).Table("leave_requests"), department).
		Select("COALESCE(AVG(EXTRACT(EPOCH FROM (end_date - start_date)) / 86400), 0) as avg_days").
		Scan(&result).Error
	if err != nil {
		return 0, fmt.Errorf("failed to query average duration: %w", err)
	}
	return result.AvgDays, nil
}

func (r *statisticsRepository) TopReasons(ctx context.Context, department string, limit int) ([]model.ReasonCount, error) {
	var reasons []model.ReasonCount
	err := scoped(r.db.WithContext(ctx).Table("leave_requests"), department).
		Select("reason, COUNT(*) as count").
		Group("reason").
		Order("count DESC").
		Limit(limit).
		Scan(&reasons).Error
	if err != nil {
		return nil, fmt.Errorf("failed to query top reasons: %w", err)
	}
	return reasons, nil
}

// MonthlyTrends groups submission counts by the month the request was created,
// oldest bucket first.
func (r *statisticsRepository) MonthlyTrends(ctx context.Context, department string, limit int) ([]model.MonthlyCount, error) {
	var trends []model.MonthlyCount
	err := scoped(r.db.WithContext(ctx).Table("leave_requests"), department).
		Select("to_char(created_at, 'YYYY-MM') as month, COUNT(*) as count").
		Group("month").
		Order("month ASC").
		Limit(limit).
		Scan(&trends).Error
	if err != nil {
		return nil, fmt.Errorf("failed to query monthly trends: %w", err)
	}
	return trends, nil
}

// TopEmployeesByLeaveDays ranks employees by their accumulated leave days over
// requests that passed department-head approval, including finalized ones.
func (r *statisticsRepository) TopEmployeesByLeaveDays(ctx context.Context, department string, limit int) ([]EmployeeDays, error) {
	var employees []EmployeeDays
	err := scoped(r.db.WithContext(ctx).Table("leave_requests"), department).
		Select("name, SUM(EXTRACT(EPOCH FROM (end_date - start_date)) / 86400) as total_days").
		Where("status IN ?", []model.Status{model.StatusApproved, model.StatusFinalized}).
		Group("name").
		Order("total_days DESC").
		Limit(limit).
		Scan(&employees).Error
	if err != nil {
		return nil, fmt.Errorf("failed to query top employees: %w", err)
	}
	return employees, nil
}

func (r *statisticsRepository) CountPendingOlderThan(ctx context.Context, department string, cutoff time.Time) (int64, error) {
	var count int64
	err := scoped(r.db.WithContext(ctx).Model(&model.LeaveRequest{}), department).
		Where("status = ? AND created_at < ?", model.StatusPending, cutoff).
		Count(&count).Error
	return count, err
}

func (r *statisticsRepository) CountByDepartment(ctx context.Context) ([]model.DepartmentCount, error) {
	var departments []model.DepartmentCount
	err := r.db.WithContext(ctx).Table("leave_requests").
		Select("department, COUNT(*) as count").
		Group("department").
		Order("count DESC").
		Scan(&departments).Error
	if err != nil {
		return nil, fmt.Errorf("failed to query department breakdown: %w", err)
	}
	return departments, nil
}
