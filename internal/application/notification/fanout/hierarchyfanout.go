package fanout

import (
	"context"
	"fmt"

	"helpdesk/internal/domain/issue"
	"helpdesk/internal/domain/notification"
	vo "helpdesk/internal/domain/notification/valueobjects"
	"helpdesk/internal/shared/errors"
)

// SendToImmediateParentHierarchy notifies every active user one tier above
// the sender in the project's external hierarchy. A sender at a root tier has
// nobody above: zero recipients, success.
//
// The sender's node may be given explicitly (NodeID non-nil) or resolved from
// the sender's role placement in the project.
func (e *Engine) SendToImmediateParentHierarchy(ctx context.Context, issueID, senderID uint, nodeID *uint) (*FanoutResult, error) {
	iss, err := e.issueRepo.GetByID(ctx, issueID)
	if err != nil {
		return nil, err
	}

	senderNodeID, err := e.resolveSenderNode(ctx, iss.ProjectID(), senderID, nodeID)
	if err != nil {
		return nil, err
	}

	node, err := e.hierarchyRepo.GetByID(ctx, senderNodeID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve sender node: %w", err)
	}

	if node.IsRoot() {
		return &FanoutResult{SentCount: 0, Recipients: []uint{}}, nil
	}

	placements, err := e.roleRepo.ListActiveUsersAtNode(ctx, iss.ProjectID(), *node.ParentID())
	if err != nil {
		return nil, err
	}

	receiverIDs := make([]uint, 0, len(placements))
	for _, p := range placements {
		if p.UserID == senderID {
			continue
		}
		receiverIDs = append(receiverIDs, p.UserID)
	}
	receiverIDs = dedupeKeepFirst(receiverIDs)

	data, err := e.escalationData(ctx, iss, senderID, node.ID(), node.ParentID())
	if err != nil {
		return nil, err
	}

	notifications, err := e.buildBatch(
		receiverIDs,
		vo.TypeIssueEscalated,
		senderID,
		iss,
		fmt.Sprintf("Issue %s escalated", iss.TicketNumber()),
		fmt.Sprintf("Issue %q was escalated from a tier below yours and needs attention.", iss.Title()),
		data,
		vo.PriorityHigh,
	)
	if err != nil {
		return nil, err
	}

	return e.deliver(ctx, notifications)
}

// SendToInternalAssignedRootUsers notifies every active internal-organization
// user placed at any internal root node for the issue's project. This is the
// entry fan-out when an issue leaves the external hierarchy.
func (e *Engine) SendToInternalAssignedRootUsers(ctx context.Context, issueID, senderID uint) (*FanoutResult, error) {
	iss, err := e.issueRepo.GetByID(ctx, issueID)
	if err != nil {
		return nil, err
	}

	roots, err := e.internalRepo.GetRoots(ctx)
	if err != nil {
		return nil, err
	}
	if len(roots) == 0 {
		return &FanoutResult{SentCount: 0, Recipients: []uint{}}, nil
	}

	rootIDs := make([]uint, 0, len(roots))
	for _, r := range roots {
		rootIDs = append(rootIDs, r.ID())
	}

	placements, err := e.internalRoleRepo.ListActiveUsersAtNodes(ctx, iss.ProjectID(), rootIDs)
	if err != nil {
		return nil, err
	}

	receiverIDs := make([]uint, 0, len(placements))
	for _, p := range placements {
		if p.UserID == senderID {
			continue
		}
		receiverIDs = append(receiverIDs, p.UserID)
	}
	receiverIDs = dedupeKeepFirst(receiverIDs)

	data, err := e.escalationData(ctx, iss, senderID, 0, nil)
	if err != nil {
		return nil, err
	}

	notifications, err := e.buildBatch(
		receiverIDs,
		vo.TypeIssueEscalated,
		senderID,
		iss,
		fmt.Sprintf("Issue %s escalated to central support", iss.TicketNumber()),
		fmt.Sprintf("Issue %q was escalated beyond the project hierarchy and entered the central queue.", iss.Title()),
		data,
		vo.PriorityUrgent,
	)
	if err != nil {
		return nil, err
	}

	return e.deliver(ctx, notifications)
}

func (e *Engine) resolveSenderNode(ctx context.Context, projectID, senderID uint, nodeID *uint) (uint, error) {
	if nodeID != nil {
		return *nodeID, nil
	}

	placement, err := e.roleRepo.GetByProjectAndUser(ctx, projectID, senderID)
	if err != nil {
		return 0, err
	}
	if placement == nil {
		return 0, errors.NewNotFoundError("sender has no role placement in project")
	}

	return placement.HierarchyNodeID, nil
}

// escalationData builds the denormalized context payload stored on each
// notification row so readers need no joins.
func (e *Engine) escalationData(ctx context.Context, iss *issue.Issue, senderID, fromNodeID uint, toNodeID *uint) (map[string]interface{}, error) {
	sender, err := e.userRepo.GetByID(ctx, senderID)
	if err != nil {
		return nil, fmt.Errorf("failed to load sender: %w", err)
	}

	data := map[string]interface{}{
		"sender_name":   sender.Name(),
		"sender_email":  sender.Email(),
		"ticket_number": iss.TicketNumber(),
		"issue_title":   iss.Title(),
	}
	if fromNodeID != 0 {
		data["from_node_id"] = fromNodeID
	}
	if toNodeID != nil {
		data["to_node_id"] = *toNodeID
	}

	return data, nil
}

func (e *Engine) buildBatch(
	receiverIDs []uint,
	notifType vo.NotificationType,
	senderID uint,
	iss *issue.Issue,
	title, message string,
	data map[string]interface{},
	priority vo.NotificationPriority,
) ([]*notification.Notification, error) {
	issueID := iss.ID()
	projectID := iss.ProjectID()

	notifications := make([]*notification.Notification, 0, len(receiverIDs))
	for _, receiverID := range receiverIDs {
		sender := senderID
		n, err := notification.NewNotification(
			notifType,
			&sender,
			receiverID,
			&issueID,
			&projectID,
			title,
			message,
			data,
			priority,
		)
		if err != nil {
			return nil, err
		}
		notifications = append(notifications, n)
	}

	return notifications, nil
}
