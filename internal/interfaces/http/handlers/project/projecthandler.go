package project

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"helpdesk/internal/domain/project"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/utils"
)

type InstituteDTO struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Code      string    `json:"code"`
	CreatedAt time.Time `json:"created_at"`
}

type ProjectDTO struct {
	ID          uint      `json:"id"`
	InstituteID uint      `json:"institute_id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

func toInstituteDTO(i *project.Institute) InstituteDTO {
	return InstituteDTO{ID: i.ID, Name: i.Name, Code: i.Code, CreatedAt: i.CreatedAt}
}

func toProjectDTO(p *project.Project) ProjectDTO {
	return ProjectDTO{
		ID:          p.ID,
		InstituteID: p.InstituteID,
		Name:        p.Name,
		Description: p.Description,
		CreatedAt:   p.CreatedAt,
	}
}

type CreateInstituteRequest struct {
	Name string `json:"name" binding:"required,max=200"`
	Code string `json:"code" binding:"max=50"`
}

type CreateProjectRequest struct {
	InstituteID uint   `json:"institute_id" binding:"required"`
	Name        string `json:"name" binding:"required,max=200"`
	Description string `json:"description" binding:"max=2000"`
}

type ProjectHandler struct {
	instituteRepo project.InstituteRepository
	projectRepo   project.ProjectRepository
	logger        logger.Interface
}

func NewProjectHandler(instituteRepo project.InstituteRepository, projectRepo project.ProjectRepository) *ProjectHandler {
	return &ProjectHandler{
		instituteRepo: instituteRepo,
		projectRepo:   projectRepo,
		logger:        logger.NewLogger(),
	}
}

// CreateInstitute handles POST /institutes
func (h *ProjectHandler) CreateInstitute(c *gin.Context) {
	var req CreateInstituteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	institute := &project.Institute{Name: req.Name, Code: req.Code}
	if err := institute.Validate(); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError(err.Error()))
		return
	}

	if err := h.instituteRepo.Save(c.Request.Context(), institute); err != nil {
		h.logger.Errorw("failed to save institute", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, toInstituteDTO(institute), "Institute created successfully")
}

// ListInstitutes handles GET /institutes
func (h *ProjectHandler) ListInstitutes(c *gin.Context) {
	pagination := utils.ParsePagination(c)

	institutes, total, err := h.instituteRepo.List(c.Request.Context(), pagination.PageSize, (pagination.Page-1)*pagination.PageSize)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	dtos := make([]InstituteDTO, 0, len(institutes))
	for _, i := range institutes {
		dtos = append(dtos, toInstituteDTO(i))
	}

	utils.ListSuccessResponse(c, dtos, total, pagination.Page, pagination.PageSize)
}

// CreateProject handles POST /projects
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	var req CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	if _, err := h.instituteRepo.GetByID(c.Request.Context(), req.InstituteID); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	p := &project.Project{
		InstituteID: req.InstituteID,
		Name:        req.Name,
		Description: req.Description,
	}
	if err := p.Validate(); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError(err.Error()))
		return
	}

	if err := h.projectRepo.Save(c.Request.Context(), p); err != nil {
		h.logger.Errorw("failed to save project", "institute_id", req.InstituteID, "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, toProjectDTO(p), "Project created successfully")
}

// GetProject handles GET /projects/:id
func (h *ProjectHandler) GetProject(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	p, err := h.projectRepo.GetByID(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", toProjectDTO(p))
}

// ListProjects handles GET /projects?institute_id=N
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	instituteID, err := strconv.ParseUint(c.Query("institute_id"), 10, 32)
	if err != nil || instituteID == 0 {
		utils.ErrorResponseWithError(c, errors.NewValidationError("institute_id query parameter is required"))
		return
	}

	pagination := utils.ParsePagination(c)

	projects, total, err := h.projectRepo.ListByInstitute(c.Request.Context(), uint(instituteID), pagination.PageSize, (pagination.Page-1)*pagination.PageSize)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	dtos := make([]ProjectDTO, 0, len(projects))
	for _, p := range projects {
		dtos = append(dtos, toProjectDTO(p))
	}

	utils.ListSuccessResponse(c, dtos, total, pagination.Page, pagination.PageSize)
}

// DeleteProject handles DELETE /projects/:id
func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if _, err := h.projectRepo.GetByID(c.Request.Context(), id); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.projectRepo.Delete(c.Request.Context(), id); err != nil {
		h.logger.Errorw("failed to delete project", "project_id", id, "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

func parseIDParam(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		return 0, errors.NewValidationError("invalid ID")
	}
	return uint(id), nil
}
