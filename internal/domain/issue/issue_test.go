package issue

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "helpdesk/internal/domain/issue/valueobjects"
	"helpdesk/internal/shared/errors"
)

func reconstructWithStatus(t *testing.T, status vo.IssueStatus) *Issue {
	t.Helper()
	created := time.Now().Add(-time.Hour)
	iss, err := ReconstructIssue(
		1, 10, "TICK-26-0A1B2C", "Projector broken", "The projector in room 4 does not start",
		status, nil, 2, 7, nil, created, created, nil, nil,
	)
	require.NoError(t, err)
	return iss
}

func TestNewIssue(t *testing.T) {
	iss, err := NewIssue(10, "Projector broken", "The projector in room 4 does not start", 2, 7, nil)
	require.NoError(t, err)
	assert.Equal(t, vo.StatusPending, iss.Status())
	assert.Empty(t, iss.TicketNumber())
	assert.Nil(t, iss.AssignedTo())
}

func TestNewIssue_Validation(t *testing.T) {
	tests := []struct {
		name        string
		projectID   uint
		title       string
		description string
		reportedBy  uint
	}{
		{name: "missing project", projectID: 0, title: "t", description: "d", reportedBy: 1},
		{name: "missing title", projectID: 1, title: "", description: "d", reportedBy: 1},
		{name: "missing description", projectID: 1, title: "t", description: "", reportedBy: 1},
		{name: "missing reporter", projectID: 1, title: "t", description: "d", reportedBy: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewIssue(tt.projectID, tt.title, tt.description, 1, tt.reportedBy, nil)
			assert.Error(t, err)
		})
	}
}

func TestIssue_SetTicketNumber_Immutable(t *testing.T) {
	iss, err := NewIssue(10, "Broken chair", "Chair leg snapped", 1, 7, nil)
	require.NoError(t, err)

	require.NoError(t, iss.SetTicketNumber("TICK-26-ABCDEF"))
	err = iss.SetTicketNumber("TICK-26-000000")
	assert.Error(t, err)
	assert.Equal(t, "TICK-26-ABCDEF", iss.TicketNumber())
}

func TestIssue_Accept(t *testing.T) {
	t.Run("pending issue moves to in_progress", func(t *testing.T) {
		iss := reconstructWithStatus(t, vo.StatusPending)
		require.NoError(t, iss.Accept(5))
		assert.Equal(t, vo.StatusInProgress, iss.Status())
	})

	t.Run("reopened issue can be accepted again", func(t *testing.T) {
		iss := reconstructWithStatus(t, vo.StatusReopened)
		require.NoError(t, iss.Accept(5))
		assert.Equal(t, vo.StatusInProgress, iss.Status())
	})

	t.Run("accepting an in_progress issue again is rejected", func(t *testing.T) {
		iss := reconstructWithStatus(t, vo.StatusInProgress)
		err := iss.Accept(5)
		require.Error(t, err)
		assert.True(t, errors.IsInvalidTransitionError(err))
		assert.Equal(t, vo.StatusInProgress, iss.Status())
	})

	t.Run("closed issue cannot be accepted", func(t *testing.T) {
		iss := reconstructWithStatus(t, vo.StatusClosed)
		err := iss.Accept(5)
		require.Error(t, err)
		assert.True(t, errors.IsInvalidTransitionError(err))
		assert.Equal(t, vo.StatusClosed, iss.Status())
	})
}

func TestIssue_MarkResolved(t *testing.T) {
	iss := reconstructWithStatus(t, vo.StatusInProgress)
	require.NoError(t, iss.MarkResolved(5))
	assert.Equal(t, vo.StatusResolved, iss.Status())
	assert.NotNil(t, iss.ResolvedAt())

	// Resolving a pending issue skips the in_progress step and is rejected.
	pending := reconstructWithStatus(t, vo.StatusPending)
	err := pending.MarkResolved(5)
	assert.True(t, errors.IsInvalidTransitionError(err))
}

func TestIssue_ConfirmClosed(t *testing.T) {
	iss := reconstructWithStatus(t, vo.StatusResolved)
	require.NoError(t, iss.ConfirmClosed(7))
	assert.Equal(t, vo.StatusClosed, iss.Status())
	assert.NotNil(t, iss.ClosedAt())

	err := iss.ConfirmClosed(7)
	assert.True(t, errors.IsInvalidTransitionError(err))
}

func TestIssue_Reopen(t *testing.T) {
	iss := reconstructWithStatus(t, vo.StatusClosed)
	require.NoError(t, iss.Reopen(7))
	assert.Equal(t, vo.StatusReopened, iss.Status())
	assert.Nil(t, iss.ResolvedAt())
	assert.Nil(t, iss.ClosedAt())

	pending := reconstructWithStatus(t, vo.StatusPending)
	err := pending.Reopen(7)
	assert.True(t, errors.IsInvalidTransitionError(err))
}

func TestIssue_AssignTo(t *testing.T) {
	iss := reconstructWithStatus(t, vo.StatusPending)
	require.NoError(t, iss.AssignTo(12))
	require.NotNil(t, iss.AssignedTo())
	assert.Equal(t, uint(12), *iss.AssignedTo())

	iss.ClearAssignee()
	assert.Nil(t, iss.AssignedTo())
}

type fakeChecker struct {
	taken map[string]bool
	calls int
}

func (c *fakeChecker) ExistsByTicketNumber(ctx context.Context, number string) (bool, error) {
	c.calls++
	return c.taken[number], nil
}

func TestTicketNumberGenerator_Format(t *testing.T) {
	gen := NewTicketNumberGenerator(&fakeChecker{})

	number, err := gen.Generate(context.Background())
	require.NoError(t, err)
	assert.True(t, IsValidTicketNumber(number), "generated number %q does not match format", number)
}

func TestTicketNumberGenerator_Uniqueness(t *testing.T) {
	gen := NewTicketNumberGenerator(&fakeChecker{})
	seen := make(map[string]bool)

	for i := 0; i < 50; i++ {
		number, err := gen.Generate(context.Background())
		require.NoError(t, err)
		assert.False(t, seen[number], "duplicate ticket number %q", number)
		seen[number] = true
	}
}

func TestIsValidTicketNumber(t *testing.T) {
	assert.True(t, IsValidTicketNumber("TICK-26-0A1B2C"))
	assert.False(t, IsValidTicketNumber("TICK-26-0a1b2c"))
	assert.False(t, IsValidTicketNumber("TICK-2026-0A1B2C"))
	assert.False(t, IsValidTicketNumber("TKT-26-0A1B2C"))
	assert.False(t, IsValidTicketNumber(""))
}
