package fanout

import (
	"context"
	"fmt"

	vo "helpdesk/internal/domain/notification/valueobjects"
)

// NotifySolverOnConfirmation tells everyone who ever resolved the issue that
// the creator confirmed the fix. Resolvers are deduplicated newest-first; an
// issue with no resolution rows is a routing error.
func (e *Engine) NotifySolverOnConfirmation(ctx context.Context, issueID, confirmerID uint) (*FanoutResult, error) {
	iss, err := e.issueRepo.GetByID(ctx, issueID)
	if err != nil {
		return nil, err
	}

	resolverIDs, err := e.resolverSet(ctx, issueID)
	if err != nil {
		return nil, err
	}

	data := map[string]interface{}{
		"ticket_number": iss.TicketNumber(),
		"issue_title":   iss.Title(),
		"confirmed":     true,
	}

	notifications, err := e.buildBatch(
		resolverIDs,
		vo.TypeIssueConfirmed,
		confirmerID,
		iss,
		fmt.Sprintf("Resolution of %s confirmed", iss.TicketNumber()),
		fmt.Sprintf("The creator confirmed your resolution of issue %q. The issue is now closed.", iss.Title()),
		data,
		vo.PriorityHigh,
	)
	if err != nil {
		return nil, err
	}

	return e.deliver(ctx, notifications)
}

// NotifySolverOnReraise tells the deduplicated resolver set that the creator
// re-raised the issue and a new resolution cycle has started.
func (e *Engine) NotifySolverOnReraise(ctx context.Context, issueID, reRaisedBy uint, reason string) (*FanoutResult, error) {
	iss, err := e.issueRepo.GetByID(ctx, issueID)
	if err != nil {
		return nil, err
	}

	resolverIDs, err := e.resolverSet(ctx, issueID)
	if err != nil {
		return nil, err
	}

	data := map[string]interface{}{
		"ticket_number": iss.TicketNumber(),
		"issue_title":   iss.Title(),
		"confirmed":     false,
		"reason":        reason,
	}

	notifications, err := e.buildBatch(
		resolverIDs,
		vo.TypeIssueReopened,
		reRaisedBy,
		iss,
		fmt.Sprintf("Issue %s re-raised", iss.TicketNumber()),
		fmt.Sprintf("Issue %q was re-raised after your resolution: %s", iss.Title(), reason),
		data,
		vo.PriorityHigh,
	)
	if err != nil {
		return nil, err
	}

	return e.deliver(ctx, notifications)
}

// NotifyIssueCreatorWhenSolved notifies the single reporter that a resolution
// was proposed. A missing issue or creator is a hard error here: there is
// exactly one intended recipient.
func (e *Engine) NotifyIssueCreatorWhenSolved(ctx context.Context, issueID, resolverID uint) (*FanoutResult, error) {
	iss, err := e.issueRepo.GetByID(ctx, issueID)
	if err != nil {
		return nil, err
	}

	creator, err := e.userRepo.GetByID(ctx, iss.ReportedBy())
	if err != nil {
		return nil, fmt.Errorf("failed to load issue creator: %w", err)
	}

	data := map[string]interface{}{
		"ticket_number": iss.TicketNumber(),
		"issue_title":   iss.Title(),
	}

	notifications, err := e.buildBatch(
		[]uint{creator.ID()},
		vo.TypeIssueResolved,
		resolverID,
		iss,
		fmt.Sprintf("Issue %s resolved", iss.TicketNumber()),
		fmt.Sprintf("Your issue %q has been resolved. Please confirm or re-raise it.", iss.Title()),
		data,
		vo.PriorityHigh,
	)
	if err != nil {
		return nil, err
	}

	return e.deliver(ctx, notifications)
}

// resolverSet returns the distinct resolver ids of the issue's resolution
// attempts, newest resolution first, first occurrence kept.
func (e *Engine) resolverSet(ctx context.Context, issueID uint) ([]uint, error) {
	resolutions, err := e.resolutionRepo.ListByIssueNewestFirst(ctx, issueID)
	if err != nil {
		return nil, err
	}

	ids := make([]uint, 0, len(resolutions))
	for _, r := range resolutions {
		ids = append(ids, r.ResolvedBy())
	}
	ids = dedupeKeepFirst(ids)

	if len(ids) == 0 {
		return nil, ErrNoResolversFound
	}

	return ids, nil
}
