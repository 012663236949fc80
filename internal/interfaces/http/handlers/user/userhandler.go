package user

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"helpdesk/internal/domain/user"
	"helpdesk/internal/infrastructure/auth"
	"helpdesk/internal/shared/constants"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/utils"
)

type UserDTO struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

func toUserDTO(u *user.User) UserDTO {
	return UserDTO{
		ID:        u.ID(),
		Name:      u.Name(),
		Email:     u.Email(),
		Status:    string(u.Status()),
		CreatedAt: u.CreatedAt(),
	}
}

type RegisterRequest struct {
	Name     string `json:"name" binding:"required,max=100"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8,max=72"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type UserHandler struct {
	userRepo   user.UserRepository
	jwtService *auth.JWTService
	bcryptCost int
	logger     logger.Interface
}

func NewUserHandler(userRepo user.UserRepository, jwtService *auth.JWTService, bcryptCost int) *UserHandler {
	return &UserHandler{
		userRepo:   userRepo,
		jwtService: jwtService,
		bcryptCost: bcryptCost,
		logger:     logger.NewLogger(),
	}
}

// Register handles POST /auth/register
func (h *UserHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	if existing, err := h.userRepo.GetByEmail(c.Request.Context(), req.Email); err == nil && existing != nil {
		utils.ErrorResponseWithError(c, errors.NewConflictError("email is already registered"))
		return
	}

	newUser, err := user.NewUser(req.Name, req.Email, req.Password, h.bcryptCost)
	if err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError(err.Error()))
		return
	}

	if err := h.userRepo.Save(c.Request.Context(), newUser); err != nil {
		h.logger.Errorw("failed to save user", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, toUserDTO(newUser), "User registered successfully")
}

// Login handles POST /auth/login
func (h *UserHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	found, err := h.userRepo.GetByEmail(c.Request.Context(), req.Email)
	if err != nil || found == nil {
		utils.ErrorResponseWithError(c, errors.NewUnauthorizedError("invalid email or password"))
		return
	}

	if !found.VerifyPassword(req.Password) {
		h.logger.Warnw("failed login attempt", "email", req.Email)
		utils.ErrorResponseWithError(c, errors.NewUnauthorizedError("invalid email or password"))
		return
	}

	if !found.IsActive() {
		utils.ErrorResponseWithError(c, errors.NewForbiddenError("account is not active"))
		return
	}

	tokens, err := h.jwtService.Generate(found.ID(), "user")
	if err != nil {
		h.logger.Errorw("failed to generate tokens", "user_id", found.ID(), "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", gin.H{
		"user":   toUserDTO(found),
		"tokens": tokens,
	})
}

// GetProfile handles GET /users/me
func (h *UserHandler) GetProfile(c *gin.Context) {
	userID, _ := c.Get(constants.ContextKeyUserID)

	found, err := h.userRepo.GetByID(c.Request.Context(), userID.(uint))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", toUserDTO(found))
}

// GetUser handles GET /users/:id
func (h *UserHandler) GetUser(c *gin.Context) {
	raw := c.Param("id")
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid user ID")
		return
	}

	found, err := h.userRepo.GetByID(c.Request.Context(), uint(id))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", toUserDTO(found))
}

// ListUsers handles GET /users
func (h *UserHandler) ListUsers(c *gin.Context) {
	pagination := utils.ParsePagination(c)

	users, total, err := h.userRepo.List(c.Request.Context(), pagination.PageSize, (pagination.Page-1)*pagination.PageSize)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	dtos := make([]UserDTO, 0, len(users))
	for _, u := range users {
		dtos = append(dtos, toUserDTO(u))
	}

	utils.ListSuccessResponse(c, dtos, total, pagination.Page, pagination.PageSize)
}
