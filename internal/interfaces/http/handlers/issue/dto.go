package issue

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"helpdesk/internal/application/issue/usecases"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/utils"
)

type CreateIssueRequest struct {
	ProjectID       uint   `json:"project_id" binding:"required"`
	Title           string `json:"title" binding:"required,max=200"`
	Description     string `json:"description" binding:"required,max=5000"`
	PriorityID      uint   `json:"priority_id" binding:"required"`
	HierarchyNodeID *uint  `json:"hierarchy_node_id,omitempty"`
}

func (r *CreateIssueRequest) ToCommand(reporterID uint) usecases.CreateIssueCommand {
	return usecases.CreateIssueCommand{
		ProjectID:       r.ProjectID,
		Title:           r.Title,
		Description:     r.Description,
		PriorityID:      r.PriorityID,
		ReportedBy:      reporterID,
		HierarchyNodeID: r.HierarchyNodeID,
	}
}

type AcceptIssueRequest struct {
	Notes string `json:"notes,omitempty" binding:"max=1000"`
}

type AssignIssueRequest struct {
	AssigneeID uint   `json:"assignee_id" binding:"required"`
	Remarks    string `json:"remarks,omitempty" binding:"max=1000"`
}

type RemoveAssignmentRequest struct {
	AssignmentID uint   `json:"assignment_id,omitempty"`
	AssigneeID   uint   `json:"assignee_id,omitempty"`
	Reason       string `json:"reason" binding:"required,max=500"`
}

type EscalateIssueRequest struct {
	FromTier uint   `json:"from_tier" binding:"required"`
	ToTier   *uint  `json:"to_tier,omitempty"`
	Reason   string `json:"reason" binding:"required,max=1000"`
}

type ResolveIssueRequest struct {
	Reason string `json:"reason" binding:"required,max=2000"`
}

type ConfirmOrRejectRequest struct {
	IsConfirmed bool   `json:"is_confirmed"`
	Reason      string `json:"reason,omitempty" binding:"max=1000"`
}

type ReRaiseIssueRequest struct {
	Reason string `json:"reason" binding:"required,max=1000"`
}

type ListIssuesRequest struct {
	Status          string
	ProjectID       *uint
	HierarchyNodeID *uint
	ReportedBy      *uint
	AssignedTo      *uint
	PriorityID      *uint
	Page            int
	PageSize        int
	SortBy          string
	SortOrder       string
}

func (r *ListIssuesRequest) ToQuery() usecases.ListIssuesQuery {
	return usecases.ListIssuesQuery{
		Status:          r.Status,
		ProjectID:       r.ProjectID,
		HierarchyNodeID: r.HierarchyNodeID,
		ReportedBy:      r.ReportedBy,
		AssignedTo:      r.AssignedTo,
		PriorityID:      r.PriorityID,
		Page:            r.Page,
		PageSize:        r.PageSize,
		SortBy:          r.SortBy,
		SortOrder:       r.SortOrder,
	}
}

func parseListIssuesRequest(c *gin.Context) *ListIssuesRequest {
	pagination := utils.ParsePagination(c)

	req := &ListIssuesRequest{
		Status:    c.Query("status"),
		Page:      pagination.Page,
		PageSize:  pagination.PageSize,
		SortBy:    c.Query("sort_by"),
		SortOrder: c.Query("sort_order"),
	}

	req.ProjectID = parseUintQuery(c, "project_id")
	req.HierarchyNodeID = parseUintQuery(c, "hierarchy_node_id")
	req.ReportedBy = parseUintQuery(c, "reported_by")
	req.AssignedTo = parseUintQuery(c, "assigned_to")
	req.PriorityID = parseUintQuery(c, "priority_id")

	return req
}

func parseUintQuery(c *gin.Context, name string) *uint {
	raw := c.Query(name)
	if raw == "" {
		return nil
	}
	value, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return nil
	}
	v := uint(value)
	return &v
}

func parseIssueID(c *gin.Context) (uint, error) {
	raw := c.Param("id")
	value, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || value == 0 {
		return 0, errors.NewValidationError("invalid issue ID")
	}
	return uint(value), nil
}
