package fanout

import (
	"context"
	"errors"

	"helpdesk/internal/domain/hierarchy"
	"helpdesk/internal/domain/issue"
	"helpdesk/internal/domain/notification"
	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/logger"
)

// ErrNoResolversFound is returned when an issue has no resolution rows to
// route an outcome notification to.
var ErrNoResolversFound = errors.New("no resolvers found for issue")

// FanoutResult reports one fan-out run. Zero recipients is a success unless
// the specific fan-out documents otherwise.
type FanoutResult struct {
	SentCount  int
	Recipients []uint
}

// UnreadInvalidator drops cached unread counts after an insert batch.
type UnreadInvalidator interface {
	InvalidateMany(ctx context.Context, userIDs []uint) error
}

// Engine routes workflow events to notification rows. It never participates
// in the caller's transaction: call sites fire it after their commit and
// treat failures as log-only.
type Engine struct {
	notificationRepo notification.NotificationRepository
	issueRepo        issue.IssueRepository
	resolutionRepo   issue.ResolutionRepository
	userRepo         user.UserRepository
	roleRepo         user.ProjectUserRoleRepository
	internalRoleRepo user.InternalProjectUserRoleRepository
	hierarchyRepo    hierarchy.HierarchyNodeRepository
	internalRepo     hierarchy.InternalNodeRepository
	invalidator      UnreadInvalidator
	logger           logger.Interface
}

func NewEngine(
	notificationRepo notification.NotificationRepository,
	issueRepo issue.IssueRepository,
	resolutionRepo issue.ResolutionRepository,
	userRepo user.UserRepository,
	roleRepo user.ProjectUserRoleRepository,
	internalRoleRepo user.InternalProjectUserRoleRepository,
	hierarchyRepo hierarchy.HierarchyNodeRepository,
	internalRepo hierarchy.InternalNodeRepository,
	invalidator UnreadInvalidator,
	logger logger.Interface,
) *Engine {
	return &Engine{
		notificationRepo: notificationRepo,
		issueRepo:        issueRepo,
		resolutionRepo:   resolutionRepo,
		userRepo:         userRepo,
		roleRepo:         roleRepo,
		internalRoleRepo: internalRoleRepo,
		hierarchyRepo:    hierarchyRepo,
		internalRepo:     internalRepo,
		invalidator:      invalidator,
		logger:           logger,
	}
}

// deliver inserts the batch and invalidates the receivers' unread caches.
// Cache invalidation failure is log-only: the count self-heals on TTL expiry.
func (e *Engine) deliver(ctx context.Context, notifications []*notification.Notification) (*FanoutResult, error) {
	if len(notifications) == 0 {
		return &FanoutResult{SentCount: 0, Recipients: []uint{}}, nil
	}

	if err := e.notificationRepo.BulkCreate(ctx, notifications); err != nil {
		return nil, err
	}

	recipients := make([]uint, 0, len(notifications))
	for _, n := range notifications {
		recipients = append(recipients, n.ReceiverID())
	}

	if e.invalidator != nil {
		if err := e.invalidator.InvalidateMany(ctx, recipients); err != nil {
			e.logger.Warnw("failed to invalidate unread counts", "error", err)
		}
	}

	return &FanoutResult{SentCount: len(notifications), Recipients: recipients}, nil
}

// dedupeKeepFirst removes later duplicates, preserving order of first
// occurrence.
func dedupeKeepFirst(ids []uint) []uint {
	seen := make(map[uint]bool, len(ids))
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}
