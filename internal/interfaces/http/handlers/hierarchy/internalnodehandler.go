package hierarchy

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"helpdesk/internal/domain/hierarchy"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/utils"
)

// InternalNodeHandler serves the global internal-organization tree. Unlike
// the external tree it is not scoped to a project.
type InternalNodeHandler struct {
	repo   hierarchy.InternalNodeRepository
	logger logger.Interface
}

func NewInternalNodeHandler(repo hierarchy.InternalNodeRepository) *InternalNodeHandler {
	return &InternalNodeHandler{
		repo:   repo,
		logger: logger.NewLogger(),
	}
}

// CreateNode handles POST /internal-nodes
func (h *InternalNodeHandler) CreateNode(c *gin.Context) {
	var req CreateNodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	// Internal nodes carry no project; project 0 is the shared tree.
	node, err := hierarchy.NewNode(0, req.ParentID, req.Level, req.Name)
	if err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError(err.Error()))
		return
	}

	if err := h.repo.Save(c.Request.Context(), node); err != nil {
		h.logger.Errorw("failed to save internal node", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, toNodeDTO(node), "Node created successfully")
}

// GetNode handles GET /internal-nodes/:id
func (h *InternalNodeHandler) GetNode(c *gin.Context) {
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

// DeleteNode handles DELETE /internal-nodes/:id
func (h *InternalNodeHandler) DeleteNode(c *gin.Context) {
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

// ListRoots handles GET /internal-nodes/roots
func (h *InternalNodeHandler) ListRoots(c *gin.Context) {
	resolver := hierarchy.NewResolver(hierarchy.InternalSource(h.repo))
	roots, err := resolver.Roots(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", toNodeDTOs(roots))
}

// GetChildren handles GET /internal-nodes/:id/children
func (h *InternalNodeHandler) GetChildren(c *gin.Context) {
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

// GetChain handles GET /internal-nodes/:id/chain
func (h *InternalNodeHandler) GetChain(c *gin.Context) {
	nodeID, err := parseNodeID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	resolver := hierarchy.NewResolver(hierarchy.InternalSource(h.repo))
	chain, err := resolver.Chain(c.Request.Context(), nodeID)
	if err != nil {
		utils.ErrorResponseWithError(c, translateNodeError(err))
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", toNodeDTOs(chain))
}
