package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"helpdesk/internal/domain/issue"
)

func createProjectIssue(t *testing.T, repo *IssueRepository, projectID uint, ticketNumber string) *issue.Issue {
	nodeID := uint(3)
	i, err := issue.NewIssue(projectID, "Escalation subject", "Needs a higher tier", 2, 42, &nodeID)
	require.NoError(t, err)
	require.NoError(t, i.SetTicketNumber(ticketNumber))
	require.NoError(t, repo.Save(context.Background(), i))
	return i
}

func saveEscalation(t *testing.T, repo *EscalationRepository, issueID uint, toTier *uint) *issue.Escalation {
	e, err := issue.NewEscalation(issueID, 3, toTier, "needs specialist attention", 7)
	require.NoError(t, err)
	require.NoError(t, repo.Save(context.Background(), e))
	return e
}

func TestEscalationRepository_ListByIssue(t *testing.T) {
	db := setupTestDB(t)
	issueRepo := NewIssueRepository(db)
	repo := NewEscalationRepository(db)
	ctx := context.Background()

	target := createProjectIssue(t, issueRepo, 1, "TICK-26-E50001")
	other := createProjectIssue(t, issueRepo, 1, "TICK-26-E50002")

	parent := uint(2)
	saveEscalation(t, repo, target.ID(), &parent)
	saveEscalation(t, repo, target.ID(), nil)
	saveEscalation(t, repo, other.ID(), &parent)

	escalations, err := repo.ListByIssue(ctx, target.ID())
	require.NoError(t, err)
	assert.Len(t, escalations, 2)
	for _, e := range escalations {
		assert.Equal(t, target.ID(), e.IssueID())
	}
}

func TestEscalationRepository_ListCentral(t *testing.T) {
	db := setupTestDB(t)
	issueRepo := NewIssueRepository(db)
	repo := NewEscalationRepository(db)
	ctx := context.Background()

	projectOne := createProjectIssue(t, issueRepo, 1, "TICK-26-C00001")
	projectTwo := createProjectIssue(t, issueRepo, 2, "TICK-26-C00002")

	parent := uint(2)
	saveEscalation(t, repo, projectOne.ID(), &parent)
	centralOne := saveEscalation(t, repo, projectOne.ID(), nil)
	centralTwo := saveEscalation(t, repo, projectTwo.ID(), nil)

	t.Run("only tierless escalations are central", func(t *testing.T) {
		escalations, err := repo.ListCentral(ctx, 0)
		require.NoError(t, err)
		require.Len(t, escalations, 2)
		ids := []uint{escalations[0].ID(), escalations[1].ID()}
		assert.ElementsMatch(t, []uint{centralOne.ID(), centralTwo.ID()}, ids)
		for _, e := range escalations {
			assert.True(t, e.IsCentral())
		}
	})

	t.Run("project filter joins against issues", func(t *testing.T) {
		escalations, err := repo.ListCentral(ctx, 2)
		require.NoError(t, err)
		require.Len(t, escalations, 1)
		assert.Equal(t, centralTwo.ID(), escalations[0].ID())
		assert.Equal(t, projectTwo.ID(), escalations[0].IssueID())
	})

	t.Run("project without central escalations yields empty list", func(t *testing.T) {
		escalations, err := repo.ListCentral(ctx, 99)
		require.NoError(t, err)
		assert.Empty(t, escalations)
	})
}
