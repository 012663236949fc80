package issue

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"helpdesk/internal/application/issue/usecases"
	"helpdesk/internal/shared/constants"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/services/markdown"
	"helpdesk/internal/shared/utils"
)

type IssueHandler struct {
	createIssueUC            usecases.CreateIssueExecutor
	getIssueUC               usecases.GetIssueExecutor
	listIssuesUC             usecases.ListIssuesExecutor
	acceptIssueUC            usecases.AcceptIssueExecutor
	assignIssueUC            usecases.AssignIssueExecutor
	removeAssignmentUC       usecases.RemoveAssignmentExecutor
	escalateIssueUC          usecases.EscalateIssueExecutor
	listCentralEscalationsUC usecases.ListCentralEscalationsExecutor
	resolveIssueUC           usecases.ResolveIssueExecutor
	confirmOrRejectUC        usecases.ConfirmOrRejectExecutor
	reRaiseIssueUC           usecases.ReRaiseIssueExecutor
	markdownService          markdown.MarkdownService
	logger                   logger.Interface
}

func NewIssueHandler(
	createIssueUC usecases.CreateIssueExecutor,
	getIssueUC usecases.GetIssueExecutor,
	listIssuesUC usecases.ListIssuesExecutor,
	acceptIssueUC usecases.AcceptIssueExecutor,
	assignIssueUC usecases.AssignIssueExecutor,
	removeAssignmentUC usecases.RemoveAssignmentExecutor,
	escalateIssueUC usecases.EscalateIssueExecutor,
	listCentralEscalationsUC usecases.ListCentralEscalationsExecutor,
	resolveIssueUC usecases.ResolveIssueExecutor,
	confirmOrRejectUC usecases.ConfirmOrRejectExecutor,
	reRaiseIssueUC usecases.ReRaiseIssueExecutor,
	markdownService markdown.MarkdownService,
) *IssueHandler {
	return &IssueHandler{
		createIssueUC:            createIssueUC,
		getIssueUC:               getIssueUC,
		listIssuesUC:             listIssuesUC,
		acceptIssueUC:            acceptIssueUC,
		assignIssueUC:            assignIssueUC,
		removeAssignmentUC:       removeAssignmentUC,
		escalateIssueUC:          escalateIssueUC,
		listCentralEscalationsUC: listCentralEscalationsUC,
		resolveIssueUC:           resolveIssueUC,
		confirmOrRejectUC:        confirmOrRejectUC,
		reRaiseIssueUC:           reRaiseIssueUC,
		markdownService:          markdownService,
		logger:                   logger.NewLogger(),
	}
}

// CreateIssue handles POST /issues
func (h *IssueHandler) CreateIssue(c *gin.Context) {
	var req CreateIssueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create issue", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	userID, _ := c.Get(constants.ContextKeyUserID)
	cmd := req.ToCommand(userID.(uint))

	result, err := h.createIssueUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Issue created successfully")
}

// GetIssue handles GET /issues/:id
func (h *IssueHandler) GetIssue(c *gin.Context) {
	issueID, err := parseIssueID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getIssueUC.Execute(c.Request.Context(), usecases.GetIssueQuery{IssueID: issueID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	response := gin.H{"issue": result}
	if rendered, err := h.markdownService.ToHTMLSanitized(result.Description); err == nil {
		response["description_html"] = rendered
	}

	utils.SuccessResponse(c, http.StatusOK, "", response)
}

// GetIssueByTicketNumber handles GET /issues/by-number/:number
func (h *IssueHandler) GetIssueByTicketNumber(c *gin.Context) {
	number := c.Param("number")

	result, err := h.getIssueUC.Execute(c.Request.Context(), usecases.GetIssueQuery{TicketNumber: number})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListIssues handles GET /issues
func (h *IssueHandler) ListIssues(c *gin.Context) {
	req := parseListIssuesRequest(c)

	result, err := h.listIssuesUC.Execute(c.Request.Context(), req.ToQuery())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Issues, result.Total, result.Page, result.PageSize)
}

// AcceptIssue handles POST /issues/:id/accept
func (h *IssueHandler) AcceptIssue(c *gin.Context) {
	issueID, err := parseIssueID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req AcceptIssueRequest
	if err := c.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	userID, _ := c.Get(constants.ContextKeyUserID)

	result, err := h.acceptIssueUC.Execute(c.Request.Context(), usecases.AcceptIssueCommand{
		IssueID: issueID,
		ActorID: userID.(uint),
		Notes:   req.Notes,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Issue accepted", result)
}

// AssignIssue handles POST /issues/:id/assign
func (h *IssueHandler) AssignIssue(c *gin.Context) {
	issueID, err := parseIssueID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req AssignIssueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	userID, _ := c.Get(constants.ContextKeyUserID)

	result, err := h.assignIssueUC.Execute(c.Request.Context(), usecases.AssignIssueCommand{
		IssueID:    issueID,
		AssigneeID: req.AssigneeID,
		AssignedBy: userID.(uint),
		Remarks:    req.Remarks,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Issue assigned", result)
}

// RemoveAssignment handles POST /issues/:id/unassign
func (h *IssueHandler) RemoveAssignment(c *gin.Context) {
	issueID, err := parseIssueID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req RemoveAssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	userID, _ := c.Get(constants.ContextKeyUserID)

	result, err := h.removeAssignmentUC.Execute(c.Request.Context(), usecases.RemoveAssignmentCommand{
		AssignmentID: req.AssignmentID,
		IssueID:      issueID,
		AssigneeID:   req.AssigneeID,
		RemovedBy:    userID.(uint),
		Reason:       req.Reason,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Assignment removed", result)
}

// EscalateIssue handles POST /issues/:id/escalate
func (h *IssueHandler) EscalateIssue(c *gin.Context) {
	issueID, err := parseIssueID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req EscalateIssueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	userID, _ := c.Get(constants.ContextKeyUserID)

	result, err := h.escalateIssueUC.Execute(c.Request.Context(), usecases.EscalateIssueCommand{
		IssueID:     issueID,
		FromTier:    req.FromTier,
		ToTier:      req.ToTier,
		Reason:      req.Reason,
		EscalatedBy: userID.(uint),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Issue escalated", result)
}

// ListCentralEscalations handles GET /escalations/central
func (h *IssueHandler) ListCentralEscalations(c *gin.Context) {
	var projectID uint
	if p := parseUintQuery(c, "project_id"); p != nil {
		projectID = *p
	}

	result, err := h.listCentralEscalationsUC.Execute(c.Request.Context(), usecases.ListCentralEscalationsQuery{
		ProjectID: projectID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ResolveIssue handles POST /issues/:id/resolve
func (h *IssueHandler) ResolveIssue(c *gin.Context) {
	issueID, err := parseIssueID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req ResolveIssueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	userID, _ := c.Get(constants.ContextKeyUserID)

	result, err := h.resolveIssueUC.Execute(c.Request.Context(), usecases.ResolveIssueCommand{
		IssueID:    issueID,
		Reason:     req.Reason,
		ResolvedBy: userID.(uint),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Issue resolved", result)
}

// ConfirmOrReject handles POST /issues/:id/confirm
func (h *IssueHandler) ConfirmOrReject(c *gin.Context) {
	issueID, err := parseIssueID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req ConfirmOrRejectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	userID, _ := c.Get(constants.ContextKeyUserID)

	result, err := h.confirmOrRejectUC.Execute(c.Request.Context(), usecases.ConfirmOrRejectCommand{
		IssueID:     issueID,
		ActorID:     userID.(uint),
		IsConfirmed: req.IsConfirmed,
		Reason:      req.Reason,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	message := "Resolution confirmed"
	if !req.IsConfirmed {
		message = "Resolution rejected"
	}
	utils.SuccessResponse(c, http.StatusOK, message, result)
}

// ReRaiseIssue handles POST /issues/:id/re-raise
func (h *IssueHandler) ReRaiseIssue(c *gin.Context) {
	issueID, err := parseIssueID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req ReRaiseIssueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	userID, _ := c.Get(constants.ContextKeyUserID)

	result, err := h.reRaiseIssueUC.Execute(c.Request.Context(), usecases.ReRaiseIssueCommand{
		IssueID:    issueID,
		Reason:     req.Reason,
		ReRaisedBy: userID.(uint),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Issue re-raised", result)
}
