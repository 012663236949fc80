package fanout

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"helpdesk/internal/domain/hierarchy"
	"helpdesk/internal/domain/issue"
	issuevo "helpdesk/internal/domain/issue/valueobjects"
	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/logger"
)

func testUser(id uint) *user.User {
	u, err := user.ReconstructUser(
		id,
		"Test User",
		"user@example.com",
		"$2a$12$hash",
		user.StatusActive,
		time.Now(),
		time.Now(),
	)
	if err != nil {
		panic(err)
	}
	return u
}

func testIssue(id, projectID uint, nodeID *uint) *issue.Issue {
	i, err := issue.ReconstructIssue(
		id,
		projectID,
		"TICK-26-A1B2C3",
		"Printer offline",
		"The third-floor printer refuses all jobs.",
		issuevo.StatusInProgress,
		nodeID,
		1,
		42,
		nil,
		time.Now(),
		time.Now(),
		nil,
		nil,
	)
	if err != nil {
		panic(err)
	}
	return i
}

func testNode(id uint, parentID *uint, level int) *hierarchy.Node {
	n, err := hierarchy.ReconstructNode(id, 1, parentID, level, "node")
	if err != nil {
		panic(err)
	}
	return n
}

type engineMocks struct {
	notifications *mockNotificationRepository
	issues        *mockIssueRepository
	resolutions   *mockResolutionRepository
	users         *mockUserRepository
	roles         *mockProjectUserRoleRepository
	internalRoles *mockInternalRoleRepository
	nodes         *mockHierarchyRepository
	internalNodes *mockInternalNodeRepository
}

func newTestEngine() (*Engine, *engineMocks) {
	m := &engineMocks{
		notifications: &mockNotificationRepository{},
		issues:        &mockIssueRepository{},
		resolutions:   &mockResolutionRepository{},
		users:         &mockUserRepository{},
		roles:         &mockProjectUserRoleRepository{},
		internalRoles: &mockInternalRoleRepository{},
		nodes:         &mockHierarchyRepository{},
		internalNodes: &mockInternalNodeRepository{},
	}

	engine := NewEngine(
		m.notifications,
		m.issues,
		m.resolutions,
		m.users,
		m.roles,
		m.internalRoles,
		m.nodes,
		m.internalNodes,
		nil,
		logger.NewLogger(),
	)

	return engine, m
}

func TestSendToImmediateParentHierarchy_RootSenderSucceedsWithZeroRecipients(t *testing.T) {
	engine, m := newTestEngine()

	nodeID := uint(7)
	m.issues.GetByIDFunc = func(ctx context.Context, id uint) (*issue.Issue, error) {
		return testIssue(1, 1, &nodeID), nil
	}
	m.nodes.GetByIDFunc = func(ctx context.Context, id uint) (*hierarchy.Node, error) {
		return testNode(7, nil, 1), nil
	}

	result, err := engine.SendToImmediateParentHierarchy(context.Background(), 1, 42, &nodeID)
	require.NoError(t, err)
	assert.Equal(t, 0, result.SentCount)
	assert.Empty(t, result.Recipients)
	assert.Empty(t, m.notifications.Created)
}

func TestSendToImmediateParentHierarchy_NotifiesParentTierExcludingSender(t *testing.T) {
	engine, m := newTestEngine()

	senderID := uint(42)
	nodeID := uint(7)
	parentID := uint(3)

	m.issues.GetByIDFunc = func(ctx context.Context, id uint) (*issue.Issue, error) {
		return testIssue(1, 1, &nodeID), nil
	}
	m.nodes.GetByIDFunc = func(ctx context.Context, id uint) (*hierarchy.Node, error) {
		return testNode(nodeID, &parentID, 2), nil
	}
	m.roles.ListActiveUsersAtNodeFunc = func(ctx context.Context, projectID, hierarchyNodeID uint) ([]*user.ProjectUserRole, error) {
		assert.Equal(t, parentID, hierarchyNodeID)
		return []*user.ProjectUserRole{
			{UserID: 10, ProjectID: 1, RoleID: 1, HierarchyNodeID: parentID},
			{UserID: senderID, ProjectID: 1, RoleID: 1, HierarchyNodeID: parentID},
			{UserID: 11, ProjectID: 1, RoleID: 2, HierarchyNodeID: parentID},
			{UserID: 10, ProjectID: 1, RoleID: 2, HierarchyNodeID: parentID},
		}, nil
	}

	result, err := engine.SendToImmediateParentHierarchy(context.Background(), 1, senderID, &nodeID)
	require.NoError(t, err)
	assert.Equal(t, 2, result.SentCount)
	assert.Equal(t, []uint{10, 11}, result.Recipients)

	require.Len(t, m.notifications.Created, 2)
	for _, n := range m.notifications.Created {
		assert.Equal(t, "ISSUE_ESCALATED", n.Type().String())
		assert.Equal(t, "TICK-26-A1B2C3", n.Data()["ticket_number"])
	}
}

func TestSendToImmediateParentHierarchy_ResolvesSenderNodeFromPlacement(t *testing.T) {
	engine, m := newTestEngine()

	nodeID := uint(7)
	parentID := uint(3)

	m.issues.GetByIDFunc = func(ctx context.Context, id uint) (*issue.Issue, error) {
		return testIssue(1, 1, &nodeID), nil
	}
	m.roles.GetByProjectAndUserFunc = func(ctx context.Context, projectID, userID uint) (*user.ProjectUserRole, error) {
		return &user.ProjectUserRole{UserID: userID, ProjectID: projectID, RoleID: 1, HierarchyNodeID: nodeID}, nil
	}
	m.nodes.GetByIDFunc = func(ctx context.Context, id uint) (*hierarchy.Node, error) {
		assert.Equal(t, nodeID, id)
		return testNode(nodeID, &parentID, 2), nil
	}
	m.roles.ListActiveUsersAtNodeFunc = func(ctx context.Context, projectID, hierarchyNodeID uint) ([]*user.ProjectUserRole, error) {
		return []*user.ProjectUserRole{{UserID: 10, ProjectID: 1, RoleID: 1, HierarchyNodeID: parentID}}, nil
	}

	result, err := engine.SendToImmediateParentHierarchy(context.Background(), 1, 42, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, result.SentCount)
}

func TestSendToInternalAssignedRootUsers_NotifiesRootPlacements(t *testing.T) {
	engine, m := newTestEngine()

	m.issues.GetByIDFunc = func(ctx context.Context, id uint) (*issue.Issue, error) {
		return testIssue(1, 1, nil), nil
	}
	m.internalNodes.GetRootsFunc = func(ctx context.Context) ([]*hierarchy.Node, error) {
		return []*hierarchy.Node{testNode(100, nil, 1), testNode(101, nil, 1)}, nil
	}
	m.internalRoles.ListActiveUsersAtNodesFunc = func(ctx context.Context, projectID uint, internalNodeIDs []uint) ([]*user.InternalProjectUserRole, error) {
		assert.Equal(t, []uint{100, 101}, internalNodeIDs)
		return []*user.InternalProjectUserRole{
			{UserID: 20, ProjectID: 1, RoleID: 1, InternalNodeID: 100},
			{UserID: 21, ProjectID: 1, RoleID: 1, InternalNodeID: 101},
		}, nil
	}

	result, err := engine.SendToInternalAssignedRootUsers(context.Background(), 1, 42)
	require.NoError(t, err)
	assert.Equal(t, 2, result.SentCount)
	assert.Equal(t, []uint{20, 21}, result.Recipients)
}

func TestNotifySolverOnConfirmation_DeduplicatesResolvers(t *testing.T) {
	engine, m := newTestEngine()

	m.issues.GetByIDFunc = func(ctx context.Context, id uint) (*issue.Issue, error) {
		return testIssue(1, 1, nil), nil
	}
	m.resolutions.ListFunc = func(ctx context.Context, issueID uint) ([]*issue.Resolution, error) {
		// Newest first: A, B, A → distinct {A, B}
		r1, _ := issue.ReconstructResolution(3, issueID, "third fix", 5, time.Now())
		r2, _ := issue.ReconstructResolution(2, issueID, "second fix", 6, time.Now().Add(-time.Hour))
		r3, _ := issue.ReconstructResolution(1, issueID, "first fix", 5, time.Now().Add(-2*time.Hour))
		return []*issue.Resolution{r1, r2, r3}, nil
	}

	result, err := engine.NotifySolverOnConfirmation(context.Background(), 1, 42)
	require.NoError(t, err)
	assert.Equal(t, 2, result.SentCount)
	assert.Equal(t, []uint{5, 6}, result.Recipients)

	require.Len(t, m.notifications.Created, 2)
	assert.Equal(t, "HIGH", m.notifications.Created[0].Priority().String())
	assert.Equal(t, "ISSUE_CONFIRMED", m.notifications.Created[0].Type().String())
}

func TestNotifySolverOnConfirmation_NoResolvers(t *testing.T) {
	engine, m := newTestEngine()

	m.issues.GetByIDFunc = func(ctx context.Context, id uint) (*issue.Issue, error) {
		return testIssue(1, 1, nil), nil
	}
	m.resolutions.ListFunc = func(ctx context.Context, issueID uint) ([]*issue.Resolution, error) {
		return nil, nil
	}

	_, err := engine.NotifySolverOnConfirmation(context.Background(), 1, 42)
	assert.ErrorIs(t, err, ErrNoResolversFound)
}

func TestNotifySolverOnReraise_CarriesReason(t *testing.T) {
	engine, m := newTestEngine()

	m.issues.GetByIDFunc = func(ctx context.Context, id uint) (*issue.Issue, error) {
		return testIssue(1, 1, nil), nil
	}
	m.resolutions.ListFunc = func(ctx context.Context, issueID uint) ([]*issue.Resolution, error) {
		r, _ := issue.ReconstructResolution(1, issueID, "restarted spooler", 5, time.Now())
		return []*issue.Resolution{r}, nil
	}

	result, err := engine.NotifySolverOnReraise(context.Background(), 1, 42, "still broken")
	require.NoError(t, err)
	assert.Equal(t, 1, result.SentCount)

	require.Len(t, m.notifications.Created, 1)
	n := m.notifications.Created[0]
	assert.Equal(t, "ISSUE_REOPENED", n.Type().String())
	assert.Equal(t, "still broken", n.Data()["reason"])
	assert.Equal(t, false, n.Data()["confirmed"])
}

func TestNotifyIssueCreatorWhenSolved_SingleRecipient(t *testing.T) {
	engine, m := newTestEngine()

	m.issues.GetByIDFunc = func(ctx context.Context, id uint) (*issue.Issue, error) {
		return testIssue(1, 1, nil), nil
	}

	result, err := engine.NotifyIssueCreatorWhenSolved(context.Background(), 1, 5)
	require.NoError(t, err)
	assert.Equal(t, 1, result.SentCount)
	assert.Equal(t, []uint{42}, result.Recipients)

	require.Len(t, m.notifications.Created, 1)
	assert.Equal(t, "ISSUE_RESOLVED", m.notifications.Created[0].Type().String())
}

func TestNotifyUsersOnAssignmentChange_Assigned(t *testing.T) {
	engine, m := newTestEngine()

	m.issues.GetByIDFunc = func(ctx context.Context, id uint) (*issue.Issue, error) {
		return testIssue(1, 1, nil), nil
	}

	result, err := engine.NotifyUsersOnAssignmentChange(context.Background(), 1, 10, 5, ChangeAssigned)
	require.NoError(t, err)
	assert.Equal(t, 1, result.SentCount)
	assert.Equal(t, []uint{10}, result.Recipients)
}

func TestNotifyUsersOnAssignmentChange_UnassignedDistinctAssigner(t *testing.T) {
	engine, m := newTestEngine()

	m.issues.GetByIDFunc = func(ctx context.Context, id uint) (*issue.Issue, error) {
		return testIssue(1, 1, nil), nil
	}

	result, err := engine.NotifyUsersOnAssignmentChange(context.Background(), 1, 10, 5, ChangeUnassigned)
	require.NoError(t, err)
	assert.Equal(t, 2, result.SentCount)
	assert.Equal(t, []uint{10, 5}, result.Recipients)

	require.Len(t, m.notifications.Created, 2)
	assigneeMsg := m.notifications.Created[0].Message()
	assignerMsg := m.notifications.Created[1].Message()
	assert.NotEqual(t, assigneeMsg, assignerMsg)
}

func TestNotifyUsersOnAssignmentChange_UnassignedSelfAssigner(t *testing.T) {
	engine, m := newTestEngine()

	m.issues.GetByIDFunc = func(ctx context.Context, id uint) (*issue.Issue, error) {
		return testIssue(1, 1, nil), nil
	}

	result, err := engine.NotifyUsersOnAssignmentChange(context.Background(), 1, 10, 10, ChangeUnassigned)
	require.NoError(t, err)
	assert.Equal(t, 1, result.SentCount)
	assert.Equal(t, []uint{10}, result.Recipients)
}
