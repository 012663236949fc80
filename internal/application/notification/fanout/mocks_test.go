package fanout

import (
	"context"

	"helpdesk/internal/domain/hierarchy"
	"helpdesk/internal/domain/issue"
	"helpdesk/internal/domain/notification"
	"helpdesk/internal/domain/user"
)

type mockNotificationRepository struct {
	CreateFunc     func(ctx context.Context, n *notification.Notification) error
	BulkCreateFunc func(ctx context.Context, ns []*notification.Notification) error
	Created        []*notification.Notification
}

func (m *mockNotificationRepository) Create(ctx context.Context, n *notification.Notification) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, n)
	}
	m.Created = append(m.Created, n)
	return nil
}

func (m *mockNotificationRepository) BulkCreate(ctx context.Context, ns []*notification.Notification) error {
	if m.BulkCreateFunc != nil {
		return m.BulkCreateFunc(ctx, ns)
	}
	m.Created = append(m.Created, ns...)
	return nil
}

func (m *mockNotificationRepository) GetByID(ctx context.Context, id uint) (*notification.Notification, error) {
	return nil, nil
}

func (m *mockNotificationRepository) ListByReceiver(ctx context.Context, receiverID uint, limit, offset int) ([]*notification.Notification, int64, error) {
	return nil, 0, nil
}

func (m *mockNotificationRepository) CountUnread(ctx context.Context, receiverID uint) (int64, error) {
	return 0, nil
}

func (m *mockNotificationRepository) MarkAsRead(ctx context.Context, id uint) error {
	return nil
}

func (m *mockNotificationRepository) MarkAllAsRead(ctx context.Context, receiverID uint) error {
	return nil
}

type mockIssueRepository struct {
	GetByIDFunc func(ctx context.Context, issueID uint) (*issue.Issue, error)
}

func (m *mockIssueRepository) Save(ctx context.Context, i *issue.Issue) error   { return nil }
func (m *mockIssueRepository) Update(ctx context.Context, i *issue.Issue) error { return nil }

func (m *mockIssueRepository) GetByID(ctx context.Context, issueID uint) (*issue.Issue, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, issueID)
	}
	return nil, nil
}

func (m *mockIssueRepository) GetByTicketNumber(ctx context.Context, number string) (*issue.Issue, error) {
	return nil, nil
}

func (m *mockIssueRepository) ExistsByTicketNumber(ctx context.Context, number string) (bool, error) {
	return false, nil
}

func (m *mockIssueRepository) List(ctx context.Context, filter issue.IssueFilter) ([]*issue.Issue, int64, error) {
	return nil, 0, nil
}

type mockResolutionRepository struct {
	ListFunc func(ctx context.Context, issueID uint) ([]*issue.Resolution, error)
}

func (m *mockResolutionRepository) Save(ctx context.Context, r *issue.Resolution) error { return nil }

func (m *mockResolutionRepository) ListByIssueNewestFirst(ctx context.Context, issueID uint) ([]*issue.Resolution, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, issueID)
	}
	return nil, nil
}

type mockUserRepository struct {
	GetByIDFunc func(ctx context.Context, userID uint) (*user.User, error)
}

func (m *mockUserRepository) Save(ctx context.Context, u *user.User) error   { return nil }
func (m *mockUserRepository) Update(ctx context.Context, u *user.User) error { return nil }

func (m *mockUserRepository) GetByID(ctx context.Context, userID uint) (*user.User, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, userID)
	}
	return testUser(userID), nil
}

func (m *mockUserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	return nil, nil
}

func (m *mockUserRepository) List(ctx context.Context, limit, offset int) ([]*user.User, int64, error) {
	return nil, 0, nil
}

type mockProjectUserRoleRepository struct {
	GetByProjectAndUserFunc   func(ctx context.Context, projectID, userID uint) (*user.ProjectUserRole, error)
	ListActiveUsersAtNodeFunc func(ctx context.Context, projectID, hierarchyNodeID uint) ([]*user.ProjectUserRole, error)
}

func (m *mockProjectUserRoleRepository) Save(ctx context.Context, role *user.ProjectUserRole) error {
	return nil
}

func (m *mockProjectUserRoleRepository) Delete(ctx context.Context, id uint) error { return nil }

func (m *mockProjectUserRoleRepository) GetByProjectAndUser(ctx context.Context, projectID, userID uint) (*user.ProjectUserRole, error) {
	if m.GetByProjectAndUserFunc != nil {
		return m.GetByProjectAndUserFunc(ctx, projectID, userID)
	}
	return nil, nil
}

func (m *mockProjectUserRoleRepository) ListActiveUsersAtNode(ctx context.Context, projectID, hierarchyNodeID uint) ([]*user.ProjectUserRole, error) {
	if m.ListActiveUsersAtNodeFunc != nil {
		return m.ListActiveUsersAtNodeFunc(ctx, projectID, hierarchyNodeID)
	}
	return nil, nil
}

type mockInternalRoleRepository struct {
	ListActiveUsersAtNodesFunc func(ctx context.Context, projectID uint, internalNodeIDs []uint) ([]*user.InternalProjectUserRole, error)
}

func (m *mockInternalRoleRepository) Save(ctx context.Context, role *user.InternalProjectUserRole) error {
	return nil
}

func (m *mockInternalRoleRepository) Delete(ctx context.Context, id uint) error { return nil }

func (m *mockInternalRoleRepository) ListActiveUsersAtNodes(ctx context.Context, projectID uint, internalNodeIDs []uint) ([]*user.InternalProjectUserRole, error) {
	if m.ListActiveUsersAtNodesFunc != nil {
		return m.ListActiveUsersAtNodesFunc(ctx, projectID, internalNodeIDs)
	}
	return nil, nil
}

type mockHierarchyRepository struct {
	GetByIDFunc func(ctx context.Context, nodeID uint) (*hierarchy.Node, error)
}

func (m *mockHierarchyRepository) Save(ctx context.Context, node *hierarchy.Node) error { return nil }
func (m *mockHierarchyRepository) Update(ctx context.Context, node *hierarchy.Node) error {
	return nil
}
func (m *mockHierarchyRepository) Delete(ctx context.Context, nodeID uint) error { return nil }

func (m *mockHierarchyRepository) GetByID(ctx context.Context, nodeID uint) (*hierarchy.Node, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, nodeID)
	}
	return nil, hierarchy.ErrNodeNotFound
}

func (m *mockHierarchyRepository) GetByName(ctx context.Context, name string) (*hierarchy.Node, error) {
	return nil, hierarchy.ErrNodeNotFound
}

func (m *mockHierarchyRepository) GetChildren(ctx context.Context, parentID uint) ([]*hierarchy.Node, error) {
	return nil, nil
}

func (m *mockHierarchyRepository) GetRootsByProject(ctx context.Context, projectID uint) ([]*hierarchy.Node, error) {
	return nil, nil
}

func (m *mockHierarchyRepository) ListByProject(ctx context.Context, projectID uint) ([]*hierarchy.Node, error) {
	return nil, nil
}

type mockInternalNodeRepository struct {
	GetRootsFunc func(ctx context.Context) ([]*hierarchy.Node, error)
}

func (m *mockInternalNodeRepository) Save(ctx context.Context, node *hierarchy.Node) error {
	return nil
}
func (m *mockInternalNodeRepository) Update(ctx context.Context, node *hierarchy.Node) error {
	return nil
}
func (m *mockInternalNodeRepository) Delete(ctx context.Context, nodeID uint) error { return nil }

func (m *mockInternalNodeRepository) GetByID(ctx context.Context, nodeID uint) (*hierarchy.Node, error) {
	return nil, hierarchy.ErrNodeNotFound
}

func (m *mockInternalNodeRepository) GetByName(ctx context.Context, name string) (*hierarchy.Node, error) {
	return nil, hierarchy.ErrNodeNotFound
}

func (m *mockInternalNodeRepository) GetChildren(ctx context.Context, parentID uint) ([]*hierarchy.Node, error) {
	return nil, nil
}

func (m *mockInternalNodeRepository) GetRoots(ctx context.Context) ([]*hierarchy.Node, error) {
	if m.GetRootsFunc != nil {
		return m.GetRootsFunc(ctx)
	}
	return nil, nil
}
