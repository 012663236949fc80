package issue

import (
	"fmt"
	"time"
)

// Rejection records a terminal-branch event: the creator (or an agent)
// declined the proposed resolution.
type Rejection struct {
	id         uint
	issueID    uint
	reason     string
	rejectedBy uint
	rejectedAt time.Time
}

func NewRejection(issueID uint, reason string, rejectedBy uint) (*Rejection, error) {
	if issueID == 0 {
		return nil, fmt.Errorf("issue ID is required")
	}
	if len(reason) == 0 {
		return nil, fmt.Errorf("rejection reason is required")
	}
	if rejectedBy == 0 {
		return nil, fmt.Errorf("rejecting user ID is required")
	}

	return &Rejection{
		issueID:    issueID,
		reason:     reason,
		rejectedBy: rejectedBy,
		rejectedAt: time.Now(),
	}, nil
}

func ReconstructRejection(id uint, issueID uint, reason string, rejectedBy uint, rejectedAt time.Time) (*Rejection, error) {
	if id == 0 {
		return nil, fmt.Errorf("rejection ID cannot be zero")
	}

	return &Rejection{
		id:         id,
		issueID:    issueID,
		reason:     reason,
		rejectedBy: rejectedBy,
		rejectedAt: rejectedAt,
	}, nil
}

func (r *Rejection) ID() uint              { return r.id }
func (r *Rejection) IssueID() uint         { return r.issueID }
func (r *Rejection) Reason() string        { return r.reason }
func (r *Rejection) RejectedBy() uint      { return r.rejectedBy }
func (r *Rejection) RejectedAt() time.Time { return r.rejectedAt }

func (r *Rejection) SetID(id uint) error {
	if r.id != 0 {
		return fmt.Errorf("rejection ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("rejection ID cannot be zero")
	}
	r.id = id
	return nil
}

// ReRaise records a reopen event that starts a new resolution cycle.
type ReRaise struct {
	id         uint
	issueID    uint
	reason     string
	reRaisedBy uint
	reRaisedAt time.Time
}

func NewReRaise(issueID uint, reason string, reRaisedBy uint) (*ReRaise, error) {
	if issueID == 0 {
		return nil, fmt.Errorf("issue ID is required")
	}
	if len(reason) == 0 {
		return nil, fmt.Errorf("re-raise reason is required")
	}
	if reRaisedBy == 0 {
		return nil, fmt.Errorf("re-raising user ID is required")
	}

	return &ReRaise{
		issueID:    issueID,
		reason:     reason,
		reRaisedBy: reRaisedBy,
		reRaisedAt: time.Now(),
	}, nil
}

func ReconstructReRaise(id uint, issueID uint, reason string, reRaisedBy uint, reRaisedAt time.Time) (*ReRaise, error) {
	if id == 0 {
		return nil, fmt.Errorf("re-raise ID cannot be zero")
	}

	return &ReRaise{
		id:         id,
		issueID:    issueID,
		reason:     reason,
		reRaisedBy: reRaisedBy,
		reRaisedAt: reRaisedAt,
	}, nil
}

func (r *ReRaise) ID() uint              { return r.id }
func (r *ReRaise) IssueID() uint         { return r.issueID }
func (r *ReRaise) Reason() string        { return r.reason }
func (r *ReRaise) ReRaisedBy() uint      { return r.reRaisedBy }
func (r *ReRaise) ReRaisedAt() time.Time { return r.reRaisedAt }

func (r *ReRaise) SetID(id uint) error {
	if r.id != 0 {
		return fmt.Errorf("re-raise ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("re-raise ID cannot be zero")
	}
	r.id = id
	return nil
}
