package issue

import (
	"fmt"
	"time"
)

// Escalation records one tier transition of an issue. A nil ToTier is the
// sentinel meaning "escalated beyond the external hierarchy into the central
// support organization"; those rows form the internal org's work queue.
type Escalation struct {
	id          uint
	issueID     uint
	fromTier    uint
	toTier      *uint
	reason      string
	escalatedBy uint
	escalatedAt time.Time
}

func NewEscalation(issueID, fromTier uint, toTier *uint, reason string, escalatedBy uint) (*Escalation, error) {
	if issueID == 0 {
		return nil, fmt.Errorf("issue ID is required")
	}
	if fromTier == 0 {
		return nil, fmt.Errorf("source tier is required")
	}
	if toTier != nil && *toTier == 0 {
		return nil, fmt.Errorf("target tier cannot be zero; use nil for central escalation")
	}
	if len(reason) == 0 {
		return nil, fmt.Errorf("escalation reason is required")
	}
	if escalatedBy == 0 {
		return nil, fmt.Errorf("escalator ID is required")
	}

	return &Escalation{
		issueID:     issueID,
		fromTier:    fromTier,
		toTier:      toTier,
		reason:      reason,
		escalatedBy: escalatedBy,
		escalatedAt: time.Now(),
	}, nil
}

func ReconstructEscalation(
	id uint,
	issueID, fromTier uint,
	toTier *uint,
	reason string,
	escalatedBy uint,
	escalatedAt time.Time,
) (*Escalation, error) {
	if id == 0 {
		return nil, fmt.Errorf("escalation ID cannot be zero")
	}

	return &Escalation{
		id:          id,
		issueID:     issueID,
		fromTier:    fromTier,
		toTier:      toTier,
		reason:      reason,
		escalatedBy: escalatedBy,
		escalatedAt: escalatedAt,
	}, nil
}

func (e *Escalation) ID() uint               { return e.id }
func (e *Escalation) IssueID() uint          { return e.issueID }
func (e *Escalation) FromTier() uint         { return e.fromTier }
func (e *Escalation) ToTier() *uint          { return e.toTier }
func (e *Escalation) Reason() string         { return e.reason }
func (e *Escalation) EscalatedBy() uint      { return e.escalatedBy }
func (e *Escalation) EscalatedAt() time.Time { return e.escalatedAt }

// IsCentral reports whether the issue left the external hierarchy.
func (e *Escalation) IsCentral() bool {
	return e.toTier == nil
}

func (e *Escalation) SetID(id uint) error {
	if e.id != 0 {
		return fmt.Errorf("escalation ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("escalation ID cannot be zero")
	}
	e.id = id
	return nil
}
