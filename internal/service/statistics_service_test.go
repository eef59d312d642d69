package service

import (
	"context"
	"testing"
	"time"

	"backend/internal/model"
	"backend/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStatsRepo struct {
	counts      map[model.Status]int64
	avgDays     float64
	reasons     []model.ReasonCount
	trends      []model.MonthlyCount
	employees   []repository.EmployeeDays
	longPending int64
	departments []model.DepartmentCount

	lastDepartment string
}

func (r *fakeStatsRepo) CountByStatus(_ context.Context, department string, status model.Status) (int64, error) {
	r.lastDepartment = department
	return r.counts[status], nil
}

func (r *fakeStatsRepo) CountAll(_ context.Context, department string) (int64, error) {
	r.lastDepartment = department
	var total int64
	for _, c := range r.counts {
		total += c
	}
	return total, nil
}

func (r *fakeStatsRepo) AverageDurationDays(_ context.Context, _ string) (float64, error) {
	return r.avgDays, nil
}

func (r *fakeStatsRepo) TopReasons(_ context.Context, _ string, _ int) ([]model.ReasonCount, error) {
	return r.reasons, nil
}

func (r *fakeStatsRepo) MonthlyTrends(_ context.Context, _ string, _ int) ([]model.MonthlyCount, error) {
	return r.trends, nil
}

func (r *fakeStatsRepo) TopEmployeesByLeaveDays(_ context.Context, _ string, _ int) ([]repository.EmployeeDays, error) {
	return r.employees, nil
}

func (r *fakeStatsRepo) CountPendingOlderThan(_ context.Context, _ string, cutoff time.Time) (int64, error) {
	// The service must ask for a window of at least a week
	if time.Since(cutoff) < 6*24*time.Hour {
		return 0, nil
	}
	return r.longPending, nil
}

func (r *fakeStatsRepo) CountByDepartment(_ context.Context) ([]model.DepartmentCount, error) {
	return r.departments, nil
}

func seededStatsRepo() *fakeStatsRepo {
	return &fakeStatsRepo{
		counts: map[model.Status]int64{
			model.StatusPending:   3,
			model.StatusApproved:  2,
			model.StatusDenied:    1,
			model.StatusFinalized: 4,
		},
		avgDays:     3.456,
		reasons:     []model.ReasonCount{{Reason: "Medical", Count: 5}},
		trends:      []model.MonthlyCount{{Month: "2024-02", Count: 4}, {Month: "2024-03", Count: 6}},
		employees:   []repository.EmployeeDays{{Name: "Alice", TotalDays: 9.5}},
		longPending: 2,
		departments: []model.DepartmentCount{{Department: "Eng", Count: 6}, {Department: "Sales", Count: 4}},
	}
}

func TestStatisticsService(t *testing.T) {
	t.Run("Should satisfy the count identity", func(t *testing.T) {
		stats := seededStatsRepo()
		svc := NewStatisticsService(stats, newFakeUserRepo())

		resp, err := svc.GlobalStatistics(context.Background())
		require.NoError(t, err)

		assert.Equal(t, resp.TotalRequests,
			resp.ApprovedRequests+resp.PendingRequests+resp.DeniedRequests+resp.FinalizedRequests)
	})

	t.Run("Should round day metrics to two decimal places", func(t *testing.T) {
		stats := seededStatsRepo()
		svc := NewStatisticsService(stats, newFakeUserRepo())

		resp, err := svc.GlobalStatistics(context.Background())
		require.NoError(t, err)

		assert.Equal(t, "3.46", resp.AverageDuration.String())
		require.Len(t, resp.TopEmployees, 1)
		assert.Equal(t, "9.5", resp.TopEmployees[0].TotalDays.String())
	})

	t.Run("Should include the department breakdown only globally", func(t *testing.T) {
		stats := seededStatsRepo()
		users := newFakeUserRepo()
		dept := "Eng"
		head := &model.User{ID: uuid.New(), Role: model.RoleDepartmentHead, Department: &dept}
		require.NoError(t, users.Create(context.Background(), head))
		svc := NewStatisticsService(stats, users)

		global, err := svc.GlobalStatistics(context.Background())
		require.NoError(t, err)
		assert.NotEmpty(t, global.DepartmentStats)

		scoped, err := svc.DepartmentStatistics(context.Background(), head.ID.String())
		require.NoError(t, err)
		assert.Empty(t, scoped.DepartmentStats)
		assert.Equal(t, "Eng", stats.lastDepartment)
	})

	t.Run("Should reject a head without an assigned department", func(t *testing.T) {
		users := newFakeUserRepo()
		head := &model.User{ID: uuid.New(), Role: model.RoleDepartmentHead}
		require.NoError(t, users.Create(context.Background(), head))
		svc := NewStatisticsService(seededStatsRepo(), users)

		_, err := svc.DepartmentStatistics(context.Background(), head.ID.String())
		assert.ErrorIs(t, err, ErrNoDepartment)
	})

	t.Run("Should report not found for an unknown caller", func(t *testing.T) {
		svc := NewStatisticsService(seededStatsRepo(), newFakeUserRepo())

		_, err := svc.DepartmentStatistics(context.Background(), uuid.NewString())
		assert.ErrorIs(t, err, ErrUserNotFound)
	})
}
