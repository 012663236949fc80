package hierarchy

import (
	stderrors "errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"helpdesk/internal/domain/hierarchy"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/utils"
)

type NodeDTO struct {
	ID        uint   `json:"id"`
	ProjectID uint   `json:"project_id,omitempty"`
	ParentID  *uint  `json:"parent_id,omitempty"`
	Level     int    `json:"level"`
	Name      string `json:"name"`
}

func toNodeDTO(n *hierarchy.Node) NodeDTO {
	return NodeDTO{
		ID:        n.ID(),
		ProjectID: n.ProjectID(),
		ParentID:  n.ParentID(),
		Level:     n.Level(),
		Name:      n.Name(),
	}
}

func toNodeDTOs(nodes []*hierarchy.Node) []NodeDTO {
	dtos := make([]NodeDTO, 0, len(nodes))
	for _, n := range nodes {
		dtos = append(dtos, toNodeDTO(n))
	}
	return dtos
}

type CreateNodeRequest struct {
	ProjectID uint   `json:"project_id"`
	ParentID  *uint  `json:"parent_id,omitempty"`
	Level     int    `json:"level"`
	Name      string `json:"name" binding:"required,max=100"`
}

type RenameNodeRequest struct {
	Name string `json:"name" binding:"required,max=100"`
}

// HierarchyHandler serves the external per-project escalation tree. Chain and
// parent queries go through the resolver so the depth guard applies.
type HierarchyHandler struct {
	repo   hierarchy.HierarchyNodeRepository
	logger logger.Interface
}

func NewHierarchyHandler(repo hierarchy.HierarchyNodeRepository) *HierarchyHandler {
	return &HierarchyHandler{
		repo:   repo,
		logger: logger.NewLogger(),
	}
}

// CreateNode handles POST /hierarchy/nodes
func (h *HierarchyHandler) CreateNode(c *gin.Context) {
	var req CreateNodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}
	if req.ProjectID == 0 {
		utils.ErrorResponse(c, http.StatusBadRequest, "project_id is required")
		return
	}

	node, err := hierarchy.NewNode(req.ProjectID, req.ParentID, req.Level, req.Name)
	if err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError(err.Error()))
		return
	}

	if err := h.repo.Save(c.Request.Context(), node); err != nil {
		h.logger.Errorw("failed to save hierarchy node", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, toNodeDTO(node), "Node created successfully")
}

// GetNode handles GET /hierarchy/nodes/:id
func (h *HierarchyHandler) GetNode(c *gin.Context) {
	nodeID, err := parseNodeID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	node, err := h.repo.GetByID(c.Request.Context(), nodeID)
	if err != nil {
		utils.ErrorResponseWithError(c, translateNodeError(err))
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", toNodeDTO(node))
}

// RenameNode handles PUT /hierarchy/nodes/:id
func (h *HierarchyHandler) RenameNode(c *gin.Context) {
	nodeID, err := parseNodeID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req RenameNodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	node, err := h.repo.GetByID(c.Request.Context(), nodeID)
	if err != nil {
		utils.ErrorResponseWithError(c, translateNodeError(err))
		return
	}

	if err := node.Rename(req.Name); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError(err.Error()))
		return
	}

	if err := h.repo.Update(c.Request.Context(), node); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Node renamed", toNodeDTO(node))
}

// DeleteNode handles DELETE /hierarchy/nodes/:id
func (h *HierarchyHandler) DeleteNode(c *gin.Context) {
	nodeID, err := parseNodeID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	children, err := h.repo.GetChildren(c.Request.Context(), nodeID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	if len(children) > 0 {
		utils.ErrorResponseWithError(c, errors.NewConflictError("node has children; delete or move them first"))
		return
	}

	if err := h.repo.Delete(c.Request.Context(), nodeID); err != nil {
		utils.ErrorResponseWithError(c, translateNodeError(err))
		return
	}

	utils.NoContentResponse(c)
}

// ListRoots handles GET /hierarchy/roots?project_id=N
func (h *HierarchyHandler) ListRoots(c *gin.Context) {
	projectID, err := parseProjectID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	resolver := hierarchy.NewResolver(hierarchy.ExternalSource(h.repo, projectID))
	roots, err := resolver.Roots(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", toNodeDTOs(roots))
}

// GetChildren handles GET /hierarchy/nodes/:id/children
func (h *HierarchyHandler) GetChildren(c *gin.Context) {
	nodeID, err := parseNodeID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	children, err := h.repo.GetChildren(c.Request.Context(), nodeID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", toNodeDTOs(children))
}

// GetChain handles GET /hierarchy/nodes/:id/chain?project_id=N. The chain
// runs root first, the requested node last.
func (h *HierarchyHandler) GetChain(c *gin.Context) {
	nodeID, err := parseNodeID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	projectID, err := parseProjectID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	resolver := hierarchy.NewResolver(hierarchy.ExternalSource(h.repo, projectID))
	chain, err := resolver.Chain(c.Request.Context(), nodeID)
	if err != nil {
		utils.ErrorResponseWithError(c, translateNodeError(err))
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", toNodeDTOs(chain))
}

// GetParent handles GET /hierarchy/nodes/:id/parent?project_id=N. A root node
// yields a null parent, not an error.
func (h *HierarchyHandler) GetParent(c *gin.Context) {
	nodeID, err := parseNodeID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	projectID, err := parseProjectID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	resolver := hierarchy.NewResolver(hierarchy.ExternalSource(h.repo, projectID))
	parent, err := resolver.ImmediateParent(c.Request.Context(), nodeID)
	if err != nil {
		utils.ErrorResponseWithError(c, translateNodeError(err))
		return
	}

	if parent == nil {
		utils.SuccessResponse(c, http.StatusOK, "", gin.H{"parent": nil})
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", gin.H{"parent": toNodeDTO(parent)})
}

func parseNodeID(c *gin.Context) (uint, error) {
	raw := c.Param("id")
	value, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || value == 0 {
		return 0, errors.NewValidationError("invalid node ID")
	}
	return uint(value), nil
}

func parseProjectID(c *gin.Context) (uint, error) {
	raw := c.Query("project_id")
	value, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || value == 0 {
		return 0, errors.NewValidationError("project_id query parameter is required")
	}
	return uint(value), nil
}

func translateNodeError(err error) error {
	if stderrors.Is(err, hierarchy.ErrNodeNotFound) {
		return errors.NewNotFoundError("hierarchy node not found")
	}
	if stderrors.Is(err, hierarchy.ErrCycleDetected) {
		return errors.NewConflictError("hierarchy chain exceeds maximum depth")
	}
	return err
}
