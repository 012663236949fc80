package valueobjects

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIssueStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		name    string
		from    IssueStatus
		to      IssueStatus
		allowed bool
	}{
		{name: "pending to in_progress", from: StatusPending, to: StatusInProgress, allowed: true},
		{name: "pending to resolved", from: StatusPending, to: StatusResolved, allowed: false},
		{name: "pending to closed", from: StatusPending, to: StatusClosed, allowed: false},
		{name: "in_progress to resolved", from: StatusInProgress, to: StatusResolved, allowed: true},
		{name: "in_progress to closed", from: StatusInProgress, to: StatusClosed, allowed: true},
		{name: "in_progress to pending", from: StatusInProgress, to: StatusPending, allowed: false},
		{name: "resolved to closed", from: StatusResolved, to: StatusClosed, allowed: true},
		{name: "resolved to reopened", from: StatusResolved, to: StatusReopened, allowed: true},
		{name: "closed to reopened", from: StatusClosed, to: StatusReopened, allowed: true},
		{name: "closed to in_progress", from: StatusClosed, to: StatusInProgress, allowed: false},
		{name: "reopened to in_progress", from: StatusReopened, to: StatusInProgress, allowed: true},
		{name: "reopened to resolved", from: StatusReopened, to: StatusResolved, allowed: false},
		{name: "reopened to closed", from: StatusReopened, to: StatusClosed, allowed: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestNewIssueStatus(t *testing.T) {
	status, err := NewIssueStatus("pending")
	assert.NoError(t, err)
	assert.Equal(t, StatusPending, status)

	_, err = NewIssueStatus("unknown")
	assert.Error(t, err)
}

func TestIssueStatus_Predicates(t *testing.T) {
	assert.True(t, StatusPending.IsPending())
	assert.True(t, StatusInProgress.IsInProgress())
	assert.True(t, StatusResolved.IsResolved())
	assert.True(t, StatusClosed.IsClosed())
	assert.True(t, StatusReopened.IsReopened())
	assert.False(t, StatusPending.IsClosed())
}
