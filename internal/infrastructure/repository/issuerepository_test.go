package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"helpdesk/internal/domain/issue"
	vo "helpdesk/internal/domain/issue/valueobjects"
	"helpdesk/internal/infrastructure/persistence/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.IssueModel{},
		&models.IssueEscalationModel{},
	)
	require.NoError(t, err)

	return db
}

func createTestIssue(t *testing.T, ticketNumber string, reportedBy uint) *issue.Issue {
	nodeID := uint(3)
	i, err := issue.NewIssue(1, "Printer offline", "The third floor printer does not respond", 2, reportedBy, &nodeID)
	require.NoError(t, err)
	require.NoError(t, i.SetTicketNumber(ticketNumber))
	return i
}

func TestIssueRepository_Save(t *testing.T) {
	db := setupTestDB(t)
	repo := NewIssueRepository(db)
	ctx := context.Background()

	t.Run("save new issue successfully", func(t *testing.T) {
		i := createTestIssue(t, "TICK-26-A1B2C3", 42)

		err := repo.Save(ctx, i)
		assert.NoError(t, err)
		assert.NotZero(t, i.ID())
	})

	t.Run("round trip preserves fields", func(t *testing.T) {
		i := createTestIssue(t, "TICK-26-B4D5E6", 42)
		require.NoError(t, repo.Save(ctx, i))

		found, err := repo.GetByID(ctx, i.ID())
		require.NoError(t, err)
		assert.Equal(t, i.TicketNumber(), found.TicketNumber())
		assert.Equal(t, i.Title(), found.Title())
		assert.Equal(t, vo.StatusPending, found.Status())
		require.NotNil(t, found.HierarchyNodeID())
		assert.Equal(t, uint(3), *found.HierarchyNodeID())
		assert.Nil(t, found.AssignedTo())
	})

	t.Run("duplicate ticket number fails", func(t *testing.T) {
		first := createTestIssue(t, "TICK-26-DUP001", 42)
		require.NoError(t, repo.Save(ctx, first))

		second := createTestIssue(t, "TICK-26-DUP001", 43)
		err := repo.Save(ctx, second)
		assert.Error(t, err)
	})
}

func TestIssueRepository_Update(t *testing.T) {
	db := setupTestDB(t)
	repo := NewIssueRepository(db)
	ctx := context.Background()

	t.Run("status and assignee changes persist", func(t *testing.T) {
		i := createTestIssue(t, "TICK-26-UP0001", 42)
		require.NoError(t, repo.Save(ctx, i))

		require.NoError(t, i.Accept(7))
		require.NoError(t, i.AssignTo(7))
		require.NoError(t, repo.Update(ctx, i))

		found, err := repo.GetByID(ctx, i.ID())
		require.NoError(t, err)
		assert.Equal(t, vo.StatusInProgress, found.Status())
		require.NotNil(t, found.AssignedTo())
		assert.Equal(t, uint(7), *found.AssignedTo())
	})

	t.Run("clearing assignee persists NULL", func(t *testing.T) {
		i := createTestIssue(t, "TICK-26-UP0002", 42)
		require.NoError(t, repo.Save(ctx, i))
		require.NoError(t, i.Accept(7))
		require.NoError(t, i.AssignTo(7))
		require.NoError(t, repo.Update(ctx, i))

		i.ClearAssignee()
		require.NoError(t, repo.Update(ctx, i))

		found, err := repo.GetByID(ctx, i.ID())
		require.NoError(t, err)
		assert.Nil(t, found.AssignedTo())
	})

	t.Run("reopen clears resolution timestamps", func(t *testing.T) {
		i := createTestIssue(t, "TICK-26-UP0003", 42)
		require.NoError(t, repo.Save(ctx, i))
		require.NoError(t, i.Accept(7))
		require.NoError(t, i.MarkResolved(7))
		require.NoError(t, repo.Update(ctx, i))

		found, err := repo.GetByID(ctx, i.ID())
		require.NoError(t, err)
		require.NotNil(t, found.ResolvedAt())

		require.NoError(t, found.Reopen(42))
		require.NoError(t, repo.Update(ctx, found))

		again, err := repo.GetByID(ctx, i.ID())
		require.NoError(t, err)
		assert.Equal(t, vo.StatusReopened, again.Status())
		assert.Nil(t, again.ResolvedAt())
	})
}

func TestIssueRepository_GetByTicketNumber(t *testing.T) {
	db := setupTestDB(t)
	repo := NewIssueRepository(db)
	ctx := context.Background()

	i := createTestIssue(t, "TICK-26-F00D01", 42)
	require.NoError(t, repo.Save(ctx, i))

	t.Run("existing number", func(t *testing.T) {
		found, err := repo.GetByTicketNumber(ctx, "TICK-26-F00D01")
		require.NoError(t, err)
		assert.Equal(t, i.ID(), found.ID())
	})

	t.Run("unknown number", func(t *testing.T) {
		_, err := repo.GetByTicketNumber(ctx, "TICK-26-000000")
		assert.Error(t, err)
	})
}

func TestIssueRepository_ExistsByTicketNumber(t *testing.T) {
	db := setupTestDB(t)
	repo := NewIssueRepository(db)
	ctx := context.Background()

	i := createTestIssue(t, "TICK-26-EE0001", 42)
	require.NoError(t, repo.Save(ctx, i))

	exists, err := repo.ExistsByTicketNumber(ctx, "TICK-26-EE0001")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsByTicketNumber(ctx, "TICK-26-EE0002")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestIssueRepository_List(t *testing.T) {
	db := setupTestDB(t)
	repo := NewIssueRepository(db)
	ctx := context.Background()

	pending := createTestIssue(t, "TICK-26-L00001", 42)
	require.NoError(t, repo.Save(ctx, pending))

	active := createTestIssue(t, "TICK-26-L00002", 42)
	require.NoError(t, active.Accept(7))
	require.NoError(t, repo.Save(ctx, active))

	other := createTestIssue(t, "TICK-26-L00003", 99)
	require.NoError(t, repo.Save(ctx, other))

	t.Run("filter by status", func(t *testing.T) {
		status := vo.StatusInProgress
		issues, total, err := repo.List(ctx, issue.IssueFilter{Status: &status, Page: 1, PageSize: 10})
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		require.Len(t, issues, 1)
		assert.Equal(t, active.TicketNumber(), issues[0].TicketNumber())
	})

	t.Run("filter by reporter", func(t *testing.T) {
		reporter := uint(99)
		issues, total, err := repo.List(ctx, issue.IssueFilter{ReportedBy: &reporter, Page: 1, PageSize: 10})
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		require.Len(t, issues, 1)
		assert.Equal(t, other.TicketNumber(), issues[0].TicketNumber())
	})

	t.Run("pagination caps the page", func(t *testing.T) {
		issues, total, err := repo.List(ctx, issue.IssueFilter{Page: 1, PageSize: 2})
		require.NoError(t, err)
		assert.Equal(t, int64(3), total)
		assert.Len(t, issues, 2)
	})
}

func TestTicketNumberGenerator_AgainstRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewIssueRepository(db)
	gen := issue.NewTicketNumberGenerator(repo)
	ctx := context.Background()

	t.Run("generated numbers are well formed", func(t *testing.T) {
		number, err := gen.Generate(ctx)
		require.NoError(t, err)
		assert.True(t, issue.IsValidTicketNumber(number), "unexpected format: %s", number)
	})

	t.Run("generated numbers do not collide with stored ones", func(t *testing.T) {
		seen := make(map[string]bool)
		for idx := 0; idx < 20; idx++ {
			number, err := gen.Generate(ctx)
			require.NoError(t, err)
			assert.False(t, seen[number])
			seen[number] = true

			i := createTestIssue(t, number, 42)
			require.NoError(t, repo.Save(ctx, i))
		}
	})
}
