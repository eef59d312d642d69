package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"testing"
	"time"

	"backend/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateCSV(t *testing.T) {
	sigTime := time.Date(2024, 3, 2, 10, 30, 0, 0, time.UTC)

	seed := func(repo *fakeLeaveRepo) {
		_ = repo.Create(context.Background(), &model.LeaveRequest{
			ApplicantID: uuid.New(),
			Name:        "Alice",
			Department:  "Eng",
			StartDate:   time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
			EndDate:     time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC),
			Reason:      "Medical",
			Status:      model.StatusFinalized,
			DepartmentHeadSignature: &model.Signature{
				ImagePath: "/uploads/dh.png",
				Timestamp: sigTime,
			},
			ProcessManagerSignature: &model.Signature{
				ImagePath: "/uploads/pm.png",
				Timestamp: sigTime.Add(time.Hour),
			},
		})
		_ = repo.Create(context.Background(), &model.LeaveRequest{
			ApplicantID: uuid.New(),
			Name:        "Bob",
			Department:  "Sales",
			StartDate:   time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC),
			EndDate:     time.Date(2024, 4, 2, 0, 0, 0, 0, time.UTC),
			Reason:      "Vacation",
			Status:      model.StatusPending,
		})
	}

	t.Run("Should emit the fixed column list in order", func(t *testing.T) {
		repo := newFakeLeaveRepo()
		seed(repo)
		svc := NewReportService(repo)

		out, err := svc.GenerateCSV(context.Background(), "")
		require.NoError(t, err)

		records, err := csv.NewReader(bytes.NewReader(out)).ReadAll()
		require.NoError(t, err)
		require.NotEmpty(t, records)
		assert.Equal(t, []string{
			"name",
			"department",
			"startDate",
			"endDate",
			"reason",
			"status",
			"departmentHeadSignature.imagePath",
			"departmentHeadSignature.timestamp",
			"processManagerSignature.imagePath",
			"processManagerSignature.timestamp",
		}, records[0])
	})

	t.Run("Should write one row per request", func(t *testing.T) {
		repo := newFakeLeaveRepo()
		seed(repo)
		svc := NewReportService(repo)

		out, err := svc.GenerateCSV(context.Background(), "")
		require.NoError(t, err)

		records, err := csv.NewReader(bytes.NewReader(out)).ReadAll()
		require.NoError(t, err)
		assert.Len(t, records, 3) // header + 2 rows
	})

	t.Run("Should fill signature columns when present and leave them empty otherwise", func(t *testing.T) {
		repo := newFakeLeaveRepo()
		seed(repo)
		svc := NewReportService(repo)

		out, err := svc.GenerateCSV(context.Background(), "")
		require.NoError(t, err)

		records, err := csv.NewReader(bytes.NewReader(out)).ReadAll()
		require.NoError(t, err)

		byName := map[string][]string{}
		for _, row := range records[1:] {
			byName[row[0]] = row
		}

		alice := byName["Alice"]
		require.NotNil(t, alice)
		assert.Equal(t, "/uploads/dh.png", alice[6])
		assert.Equal(t, sigTime.Format(time.RFC3339), alice[7])
		assert.Equal(t, "/uploads/pm.png", alice[8])

		bob := byName["Bob"]
		require.NotNil(t, bob)
		assert.Empty(t, bob[6])
		assert.Empty(t, bob[7])
		assert.Empty(t, bob[8])
		assert.Empty(t, bob[9])
	})

	t.Run("Should respect the department filter", func(t *testing.T) {
		repo := newFakeLeaveRepo()
		seed(repo)
		svc := NewReportService(repo)

		out, err := svc.GenerateCSV(context.Background(), "Eng")
		require.NoError(t, err)

		records, err := csv.NewReader(bytes.NewReader(out)).ReadAll()
		require.NoError(t, err)
		require.Len(t, records, 2)
		assert.Equal(t, "Alice", records[1][0])
	})

	t.Run("Should emit only the header for an empty store", func(t *testing.T) {
		svc := NewReportService(newFakeLeaveRepo())

		out, err := svc.GenerateCSV(context.Background(), "")
		require.NoError(t, err)

		records, err := csv.NewReader(bytes.NewReader(out)).ReadAll()
		require.NoError(t, err)
		assert.Len(t, records, 1)
	})
}
