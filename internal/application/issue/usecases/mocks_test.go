package usecases

import (
	"context"

	"helpdesk/internal/application/notification/fanout"
	"helpdesk/internal/domain/issue"
	"helpdesk/internal/domain/user"
)

type mockIssueRepository struct {
	SaveFunc                 func(ctx context.Context, i *issue.Issue) error
	UpdateFunc               func(ctx context.Context, i *issue.Issue) error
	GetByIDFunc              func(ctx context.Context, id uint) (*issue.Issue, error)
	GetByTicketNumberFunc    func(ctx context.Context, number string) (*issue.Issue, error)
	ExistsByTicketNumberFunc func(ctx context.Context, number string) (bool, error)
	ListFunc                 func(ctx context.Context, filter issue.IssueFilter) ([]*issue.Issue, int64, error)
}

func (m *mockIssueRepository) Save(ctx context.Context, i *issue.Issue) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, i)
	}
	return i.SetID(1)
}

func (m *mockIssueRepository) Update(ctx context.Context, i *issue.Issue) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, i)
	}
	return nil
}

func (m *mockIssueRepository) GetByID(ctx context.Context, id uint) (*issue.Issue, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockIssueRepository) GetByTicketNumber(ctx context.Context, number string) (*issue.Issue, error) {
	if m.GetByTicketNumberFunc != nil {
		return m.GetByTicketNumberFunc(ctx, number)
	}
	return nil, nil
}

func (m *mockIssueRepository) ExistsByTicketNumber(ctx context.Context, number string) (bool, error) {
	if m.ExistsByTicketNumberFunc != nil {
		return m.ExistsByTicketNumberFunc(ctx, number)
	}
	return false, nil
}

func (m *mockIssueRepository) List(ctx context.Context, filter issue.IssueFilter) ([]*issue.Issue, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

type mockAssignmentRepository struct {
	SaveFunc                  func(ctx context.Context, a *issue.Assignment) error
	UpdateFunc                func(ctx context.Context, a *issue.Assignment) error
	GetByIDFunc               func(ctx context.Context, id uint) (*issue.Assignment, error)
	GetByIssueAndAssigneeFunc func(ctx context.Context, issueID, assigneeID uint) (*issue.Assignment, error)
}

func (m *mockAssignmentRepository) Save(ctx context.Context, a *issue.Assignment) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, a)
	}
	return a.SetID(1)
}

func (m *mockAssignmentRepository) Update(ctx context.Context, a *issue.Assignment) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, a)
	}
	return nil
}

func (m *mockAssignmentRepository) GetByID(ctx context.Context, id uint) (*issue.Assignment, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockAssignmentRepository) GetByIssueAndAssignee(ctx context.Context, issueID, assigneeID uint) (*issue.Assignment, error) {
	if m.GetByIssueAndAssigneeFunc != nil {
		return m.GetByIssueAndAssigneeFunc(ctx, issueID, assigneeID)
	}
	return nil, nil
}

func (m *mockAssignmentRepository) ListByIssue(ctx context.Context, issueID uint) ([]*issue.Assignment, error) {
	return nil, nil
}

type mockEscalationRepository struct {
	SaveFunc        func(ctx context.Context, e *issue.Escalation) error
	ListCentralFunc func(ctx context.Context, projectID uint) ([]*issue.Escalation, error)
	Saved           []*issue.Escalation
}

func (m *mockEscalationRepository) Save(ctx context.Context, e *issue.Escalation) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, e)
	}
	if err := e.SetID(uint(len(m.Saved) + 1)); err != nil {
		return err
	}
	m.Saved = append(m.Saved, e)
	return nil
}

func (m *mockEscalationRepository) ListByIssue(ctx context.Context, issueID uint) ([]*issue.Escalation, error) {
	return nil, nil
}

func (m *mockEscalationRepository) ListCentral(ctx context.Context, projectID uint) ([]*issue.Escalation, error) {
	if m.ListCentralFunc != nil {
		return m.ListCentralFunc(ctx, projectID)
	}
	return nil, nil
}

type mockResolutionRepository struct {
	SaveFunc func(ctx context.Context, r *issue.Resolution) error
}

func (m *mockResolutionRepository) Save(ctx context.Context, r *issue.Resolution) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, r)
	}
	return r.SetID(1)
}

func (m *mockResolutionRepository) ListByIssueNewestFirst(ctx context.Context, issueID uint) ([]*issue.Resolution, error) {
	return nil, nil
}

type mockRejectionRepository struct {
	SaveFunc func(ctx context.Context, r *issue.Rejection) error
}

func (m *mockRejectionRepository) Save(ctx context.Context, r *issue.Rejection) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, r)
	}
	return r.SetID(1)
}

func (m *mockRejectionRepository) ListByIssue(ctx context.Context, issueID uint) ([]*issue.Rejection, error) {
	return nil, nil
}

type mockReRaiseRepository struct {
	SaveFunc func(ctx context.Context, r *issue.ReRaise) error
}

func (m *mockReRaiseRepository) Save(ctx context.Context, r *issue.ReRaise) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, r)
	}
	return r.SetID(1)
}

func (m *mockReRaiseRepository) ListByIssue(ctx context.Context, issueID uint) ([]*issue.ReRaise, error) {
	return nil, nil
}

type mockAuditRepository struct {
	AppendActionFunc        func(ctx context.Context, a *issue.Action) error
	AppendStatusHistoryFunc func(ctx context.Context, h *issue.StatusHistory) error
	AppendHistoryFunc       func(ctx context.Context, h *issue.History) error
	Actions                 []*issue.Action
	StatusHistories         []*issue.StatusHistory
	Histories               []*issue.History
}

func (m *mockAuditRepository) AppendAction(ctx context.Context, a *issue.Action) error {
	if m.AppendActionFunc != nil {
		return m.AppendActionFunc(ctx, a)
	}
	m.Actions = append(m.Actions, a)
	return nil
}

func (m *mockAuditRepository) AppendStatusHistory(ctx context.Context, h *issue.StatusHistory) error {
	if m.AppendStatusHistoryFunc != nil {
		return m.AppendStatusHistoryFunc(ctx, h)
	}
	m.StatusHistories = append(m.StatusHistories, h)
	return nil
}

func (m *mockAuditRepository) AppendHistory(ctx context.Context, h *issue.History) error {
	if m.AppendHistoryFunc != nil {
		return m.AppendHistoryFunc(ctx, h)
	}
	m.Histories = append(m.Histories, h)
	return nil
}

func (m *mockAuditRepository) ListActions(ctx context.Context, issueID uint) ([]*issue.Action, error) {
	return m.Actions, nil
}

func (m *mockAuditRepository) ListStatusHistory(ctx context.Context, issueID uint) ([]*issue.StatusHistory, error) {
	return m.StatusHistories, nil
}

func (m *mockAuditRepository) ListHistory(ctx context.Context, issueID uint) ([]*issue.History, error) {
	return m.Histories, nil
}

type mockUserRepository struct {
	GetByIDFunc func(ctx context.Context, id uint) (*user.User, error)
}

func (m *mockUserRepository) Save(ctx context.Context, u *user.User) error   { return nil }
func (m *mockUserRepository) Update(ctx context.Context, u *user.User) error { return nil }

func (m *mockUserRepository) GetByID(ctx context.Context, id uint) (*user.User, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return testUser(id), nil
}

func (m *mockUserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	return nil, nil
}

func (m *mockUserRepository) List(ctx context.Context, limit, offset int) ([]*user.User, int64, error) {
	return nil, 0, nil
}

type mockTicketNumberGenerator struct {
	GenerateFunc func(ctx context.Context) (string, error)
}

func (m *mockTicketNumberGenerator) Generate(ctx context.Context) (string, error) {
	if m.GenerateFunc != nil {
		return m.GenerateFunc(ctx)
	}
	return "TICK-26-ABCDEF", nil
}

// mockTransactionManager runs the function inline; a returned error stands
// for a rolled-back transaction.
type mockTransactionManager struct {
	RunInTransactionFunc func(ctx context.Context, fn func(ctx context.Context) error) error
}

func (m *mockTransactionManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if m.RunInTransactionFunc != nil {
		return m.RunInTransactionFunc(ctx, fn)
	}
	return fn(ctx)
}

type fanoutCall struct {
	Method     string
	IssueID    uint
	UserID     uint
	OtherID    uint
	Reason     string
	Change     fanout.AssignmentChange
	NodeID     *uint
}

type mockFanoutNotifier struct {
	Err   error
	Calls []fanoutCall
}

func (m *mockFanoutNotifier) result() (*fanout.FanoutResult, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return &fanout.FanoutResult{SentCount: 1, Recipients: []uint{1}}, nil
}

func (m *mockFanoutNotifier) SendToImmediateParentHierarchy(ctx context.Context, issueID, senderID uint, nodeID *uint) (*fanout.FanoutResult, error) {
	m.Calls = append(m.Calls, fanoutCall{Method: "SendToImmediateParentHierarchy", IssueID: issueID, UserID: senderID, NodeID: nodeID})
	return m.result()
}

func (m *mockFanoutNotifier) SendToInternalAssignedRootUsers(ctx context.Context, issueID, senderID uint) (*fanout.FanoutResult, error) {
	m.Calls = append(m.Calls, fanoutCall{Method: "SendToInternalAssignedRootUsers", IssueID: issueID, UserID: senderID})
	return m.result()
}

func (m *mockFanoutNotifier) NotifySolverOnConfirmation(ctx context.Context, issueID, confirmerID uint) (*fanout.FanoutResult, error) {
	m.Calls = append(m.Calls, fanoutCall{Method: "NotifySolverOnConfirmation", IssueID: issueID, UserID: confirmerID})
	return m.result()
}

func (m *mockFanoutNotifier) NotifySolverOnReraise(ctx context.Context, issueID, reRaisedBy uint, reason string) (*fanout.FanoutResult, error) {
	m.Calls = append(m.Calls, fanoutCall{Method: "NotifySolverOnReraise", IssueID: issueID, UserID: reRaisedBy, Reason: reason})
	return m.result()
}

func (m *mockFanoutNotifier) NotifyIssueCreatorWhenSolved(ctx context.Context, issueID, resolverID uint) (*fanout.FanoutResult, error) {
	m.Calls = append(m.Calls, fanoutCall{Method: "NotifyIssueCreatorWhenSolved", IssueID: issueID, UserID: resolverID})
	return m.result()
}

func (m *mockFanoutNotifier) NotifyUsersOnAssignmentChange(ctx context.Context, issueID, assigneeID, assignerID uint, change fanout.AssignmentChange) (*fanout.FanoutResult, error) {
	m.Calls = append(m.Calls, fanoutCall{Method: "NotifyUsersOnAssignmentChange", IssueID: issueID, UserID: assigneeID, OtherID: assignerID, Change: change})
	return m.result()
}
