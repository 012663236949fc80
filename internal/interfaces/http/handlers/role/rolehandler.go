package role

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"helpdesk/internal/domain/role"
	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/utils"
)

type RoleDTO struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description,omitempty"`
}

type PermissionDTO struct {
	ID       uint   `json:"id"`
	Resource string `json:"resource"`
	Action   string `json:"action"`
}

type PlacementDTO struct {
	ID              uint `json:"id"`
	ProjectID       uint `json:"project_id"`
	UserID          uint `json:"user_id"`
	RoleID          uint `json:"role_id"`
	HierarchyNodeID uint `json:"hierarchy_node_id,omitempty"`
	InternalNodeID  uint `json:"internal_node_id,omitempty"`
}

type CreateRoleRequest struct {
	Name        string `json:"name" binding:"required,max=100"`
	Slug        string `json:"slug" binding:"required,max=100"`
	Description string `json:"description" binding:"max=500"`
}

type CreatePlacementRequest struct {
	ProjectID       uint `json:"project_id" binding:"required"`
	UserID          uint `json:"user_id" binding:"required"`
	RoleID          uint `json:"role_id" binding:"required"`
	HierarchyNodeID uint `json:"hierarchy_node_id" binding:"required"`
}

type CreateInternalPlacementRequest struct {
	ProjectID      uint `json:"project_id" binding:"required"`
	UserID         uint `json:"user_id" binding:"required"`
	RoleID         uint `json:"role_id" binding:"required"`
	InternalNodeID uint `json:"internal_node_id" binding:"required"`
}

// RoleHandler exposes role definitions and the hierarchy placements that the
// notification fan-out resolves recipients from.
type RoleHandler struct {
	roleRepo          role.RoleRepository
	placementRepo     user.ProjectUserRoleRepository
	internalPlacement user.InternalProjectUserRoleRepository
	logger            logger.Interface
}

func NewRoleHandler(
	roleRepo role.RoleRepository,
	placementRepo user.ProjectUserRoleRepository,
	internalPlacement user.InternalProjectUserRoleRepository,
) *RoleHandler {
	return &RoleHandler{
		roleRepo:          roleRepo,
		placementRepo:     placementRepo,
		internalPlacement: internalPlacement,
		logger:            logger.NewLogger(),
	}
}

// CreateRole handles POST /roles
func (h *RoleHandler) CreateRole(c *gin.Context) {
	var req CreateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	if existing, err := h.roleRepo.GetBySlug(c.Request.Context(), req.Slug); err == nil && existing != nil {
		utils.ErrorResponseWithError(c, errors.NewConflictError("role slug already exists"))
		return
	}

	r := &role.Role{Name: req.Name, Slug: req.Slug, Description: req.Description}
	if err := r.Validate(); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError(err.Error()))
		return
	}

	if err := h.roleRepo.Save(c.Request.Context(), r); err != nil {
		h.logger.Errorw("failed to save role", "slug", req.Slug, "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, toRoleDTO(r), "Role created successfully")
}

// ListRoles handles GET /roles
func (h *RoleHandler) ListRoles(c *gin.Context) {
	roles, err := h.roleRepo.List(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	dtos := make([]RoleDTO, 0, len(roles))
	for _, r := range roles {
		dtos = append(dtos, toRoleDTO(r))
	}

	utils.SuccessResponse(c, http.StatusOK, "", dtos)
}

// GetRole handles GET /roles/:id and includes the granted permissions.
func (h *RoleHandler) GetRole(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	r, err := h.roleRepo.GetByID(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	permissions, err := h.roleRepo.ListPermissions(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	permDTOs := make([]PermissionDTO, 0, len(permissions))
	for _, p := range permissions {
		permDTOs = append(permDTOs, PermissionDTO{ID: p.ID, Resource: p.Resource, Action: p.Action})
	}

	utils.SuccessResponse(c, http.StatusOK, "", gin.H{
		"role":        toRoleDTO(r),
		"permissions": permDTOs,
	})
}

// CreatePlacement handles POST /placements
func (h *RoleHandler) CreatePlacement(c *gin.Context) {
	var req CreatePlacementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	if existing, err := h.placementRepo.GetByProjectAndUser(c.Request.Context(), req.ProjectID, req.UserID); err == nil && existing != nil {
		utils.ErrorResponseWithError(c, errors.NewConflictError("user already holds a role in this project"))
		return
	}

	placement := &user.ProjectUserRole{
		ProjectID:       req.ProjectID,
		UserID:          req.UserID,
		RoleID:          req.RoleID,
		HierarchyNodeID: req.HierarchyNodeID,
	}
	if err := placement.Validate(); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError(err.Error()))
		return
	}

	if err := h.placementRepo.Save(c.Request.Context(), placement); err != nil {
		h.logger.Errorw("failed to save placement", "project_id", req.ProjectID, "user_id", req.UserID, "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, toPlacementDTO(placement), "Placement created successfully")
}

// DeletePlacement handles DELETE /placements/:id
func (h *RoleHandler) DeletePlacement(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.placementRepo.Delete(c.Request.Context(), id); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

// CreateInternalPlacement handles POST /internal-placements
func (h *RoleHandler) CreateInternalPlacement(c *gin.Context) {
	var req CreateInternalPlacementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	placement := &user.InternalProjectUserRole{
		ProjectID:      req.ProjectID,
		UserID:         req.UserID,
		RoleID:         req.RoleID,
		InternalNodeID: req.InternalNodeID,
	}
	if err := placement.Validate(); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError(err.Error()))
		return
	}

	if err := h.internalPlacement.Save(c.Request.Context(), placement); err != nil {
		h.logger.Errorw("failed to save internal placement", "project_id", req.ProjectID, "user_id", req.UserID, "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, toInternalPlacementDTO(placement), "Internal placement created successfully")
}

// DeleteInternalPlacement handles DELETE /internal-placements/:id
func (h *RoleHandler) DeleteInternalPlacement(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.internalPlacement.Delete(c.Request.Context(), id); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

func toRoleDTO(r *role.Role) RoleDTO {
	return RoleDTO{ID: r.ID, Name: r.Name, Slug: r.Slug, Description: r.Description}
}

func toPlacementDTO(p *user.ProjectUserRole) PlacementDTO {
	return PlacementDTO{
		ID:              p.ID,
		ProjectID:       p.ProjectID,
		UserID:          p.UserID,
		RoleID:          p.RoleID,
		HierarchyNodeID: p.HierarchyNodeID,
	}
}

func toInternalPlacementDTO(p *user.InternalProjectUserRole) PlacementDTO {
	return PlacementDTO{
		ID:             p.ID,
		ProjectID:      p.ProjectID,
		UserID:         p.UserID,
		RoleID:         p.RoleID,
		InternalNodeID: p.InternalNodeID,
	}
}

func parseIDParam(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		return 0, errors.NewValidationError("invalid ID")
	}
	return uint(id), nil
}
