package fanout

import (
	"context"
	"fmt"

	"helpdesk/internal/domain/notification"
	vo "helpdesk/internal/domain/notification/valueobjects"
)

// AssignmentChange distinguishes the two directions of an assignment event.
type AssignmentChange string

const (
	ChangeAssigned   AssignmentChange = "ASSIGNED"
	ChangeUnassigned AssignmentChange = "UNASSIGNED"
)

// NotifyUsersOnAssignmentChange routes assignment events: ASSIGNED notifies
// the new assignee only; UNASSIGNED notifies the former assignee, plus the
// assigner with a distinct message when they are different people.
func (e *Engine) NotifyUsersOnAssignmentChange(ctx context.Context, issueID, assigneeID, assignerID uint, change AssignmentChange) (*FanoutResult, error) {
	iss, err := e.issueRepo.GetByID(ctx, issueID)
	if err != nil {
		return nil, err
	}

	data := map[string]interface{}{
		"ticket_number": iss.TicketNumber(),
		"issue_title":   iss.Title(),
		"change":        string(change),
	}

	var notifications []*notification.Notification

	switch change {
	case ChangeAssigned:
		notifications, err = e.buildBatch(
			[]uint{assigneeID},
			vo.TypeIssueAssigned,
			assignerID,
			iss,
			fmt.Sprintf("Issue %s assigned to you", iss.TicketNumber()),
			fmt.Sprintf("You have been assigned issue %q.", iss.Title()),
			data,
			vo.PriorityMedium,
		)
		if err != nil {
			return nil, err
		}

	case ChangeUnassigned:
		notifications, err = e.buildBatch(
			[]uint{assigneeID},
			vo.TypeIssueAssigned,
			assignerID,
			iss,
			fmt.Sprintf("Assignment on %s removed", iss.TicketNumber()),
			fmt.Sprintf("Your assignment on issue %q was removed.", iss.Title()),
			data,
			vo.PriorityMedium,
		)
		if err != nil {
			return nil, err
		}

		if assignerID != assigneeID {
			assignerBatch, err := e.buildBatch(
				[]uint{assignerID},
				vo.TypeIssueAssigned,
				assignerID,
				iss,
				fmt.Sprintf("Assignment on %s removed", iss.TicketNumber()),
				fmt.Sprintf("The assignment you made on issue %q was removed.", iss.Title()),
				data,
				vo.PriorityMedium,
			)
			if err != nil {
				return nil, err
			}
			notifications = append(notifications, assignerBatch...)
		}

	default:
		return nil, fmt.Errorf("unknown assignment change: %s", change)
	}

	return e.deliver(ctx, notifications)
}
