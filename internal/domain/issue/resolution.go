package issue

import (
	"fmt"
	"time"
)

// Resolution is one resolution attempt for an issue. Re-raising an issue
// starts a new cycle, so an issue may accumulate several resolution rows; the
// distinct set of their resolvers is the notification target after a
// confirmation or re-raise.
type Resolution struct {
	id         uint
	issueID    uint
	reason     string
	resolvedBy uint
	resolvedAt time.Time
}

func NewResolution(issueID uint, reason string, resolvedBy uint) (*Resolution, error) {
	if issueID == 0 {
		return nil, fmt.Errorf("issue ID is required")
	}
	if len(reason) == 0 {
		return nil, fmt.Errorf("resolution reason is required")
	}
	if resolvedBy == 0 {
		return nil, fmt.Errorf("resolver ID is required")
	}

	return &Resolution{
		issueID:    issueID,
		reason:     reason,
		resolvedBy: resolvedBy,
		resolvedAt: time.Now(),
	}, nil
}

func ReconstructResolution(id uint, issueID uint, reason string, resolvedBy uint, resolvedAt time.Time) (*Resolution, error) {
	if id == 0 {
		return nil, fmt.Errorf("resolution ID cannot be zero")
	}

	return &Resolution{
		id:         id,
		issueID:    issueID,
		reason:     reason,
		resolvedBy: resolvedBy,
		resolvedAt: resolvedAt,
	}, nil
}

func (r *Resolution) ID() uint             { return r.id }
func (r *Resolution) IssueID() uint        { return r.issueID }
func (r *Resolution) Reason() string       { return r.reason }
func (r *Resolution) ResolvedBy() uint     { return r.resolvedBy }
func (r *Resolution) ResolvedAt() time.Time { return r.resolvedAt }

func (r *Resolution) SetID(id uint) error {
	if r.id != 0 {
		return fmt.Errorf("resolution ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("resolution ID cannot be zero")
	}
	r.id = id
	return nil
}
