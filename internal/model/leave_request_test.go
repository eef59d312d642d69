package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusCanTransition(t *testing.T) {
	t.Run("Should allow pending to approved and denied", func(t *testing.T) {
		assert.True(t, StatusPending.CanTransition(StatusApproved))
		assert.True(t, StatusPending.CanTransition(StatusDenied))
	})

	t.Run("Should allow approved to finalized only", func(t *testing.T) {
		assert.True(t, StatusApproved.CanTransition(StatusFinalized))
		assert.False(t, StatusApproved.CanTransition(StatusDenied))
		assert.False(t, StatusApproved.CanTransition(StatusPending))
	})

	t.Run("Should treat denied as terminal", func(t *testing.T) {
		for _, next := range []Status{StatusPending, StatusApproved, StatusFinalized} {
			assert.False(t, StatusDenied.CanTransition(next), "Denied -> %s", next)
		}
	})

	t.Run("Should treat finalized as terminal", func(t *testing.T) {
		for _, next := range []Status{StatusPending, StatusApproved, StatusDenied} {
			assert.False(t, StatusFinalized.CanTransition(next), "Finalized -> %s", next)
		}
	})

	t.Run("Should reject skipping approval", func(t *testing.T) {
		assert.False(t, StatusPending.CanTransition(StatusFinalized))
	})

	t.Run("Should reject self transitions", func(t *testing.T) {
		for _, s := range []Status{StatusPending, StatusApproved, StatusDenied, StatusFinalized} {
			assert.False(t, s.CanTransition(s), "%s -> %s", s, s)
		}
	})
}

func TestParseStatus(t *testing.T) {
	t.Run("Should parse every canonical status", func(t *testing.T) {
		for _, s := range []Status{StatusPending, StatusApproved, StatusDenied, StatusFinalized} {
			parsed, ok := ParseStatus(string(s))
			require.True(t, ok)
			assert.Equal(t, s, parsed)
		}
	})

	t.Run("Should reject unknown values", func(t *testing.T) {
		_, ok := ParseStatus("Cancelled")
		assert.False(t, ok)
		_, ok = ParseStatus("")
		assert.False(t, ok)
	})
}

func TestParseRole(t *testing.T) {
	t.Run("Should be case-insensitive", func(t *testing.T) {
		role, ok := ParseRole("departmenthead")
		require.True(t, ok)
		assert.Equal(t, RoleDepartmentHead, role)

		role, ok = ParseRole("HR")
		require.True(t, ok)
		assert.Equal(t, RoleHR, role)

		role, ok = ParseRole("  Applicant ")
		require.True(t, ok)
		assert.Equal(t, RoleApplicant, role)
	})

	t.Run("Should reject unknown roles", func(t *testing.T) {
		_, ok := ParseRole("admin")
		assert.False(t, ok)
	})
}

func TestDurationDays(t *testing.T) {
	t.Run("Should count whole days", func(t *testing.T) {
		lr := LeaveRequest{
			StartDate: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
			EndDate:   time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC),
		}
		assert.InDelta(t, 4, lr.DurationDays(), 1e-9)
	})

	t.Run("Should return zero for same-day requests", func(t *testing.T) {
		day := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
		lr := LeaveRequest{StartDate: day, EndDate: day}
		assert.Zero(t, lr.DurationDays())
	})
}
