package http

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	issueUC "helpdesk/internal/application/issue/usecases"
	"helpdesk/internal/application/notification/fanout"
	notificationUC "helpdesk/internal/application/notification/usecases"
	"helpdesk/internal/domain/issue"
	"helpdesk/internal/infrastructure/auth"
	"helpdesk/internal/infrastructure/cache"
	"helpdesk/internal/infrastructure/config"
	"helpdesk/internal/infrastructure/permission"
	"helpdesk/internal/infrastructure/repository"
	hierarchyHandlers "helpdesk/internal/interfaces/http/handlers/hierarchy"
	issueHandlers "helpdesk/internal/interfaces/http/handlers/issue"
	notificationHandlers "helpdesk/internal/interfaces/http/handlers/notification"
	projectHandlers "helpdesk/internal/interfaces/http/handlers/project"
	roleHandlers "helpdesk/internal/interfaces/http/handlers/role"
	userHandlers "helpdesk/internal/interfaces/http/handlers/user"
	"helpdesk/internal/interfaces/http/middleware"
	"helpdesk/internal/shared/db"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/registry"
	"helpdesk/internal/shared/services/markdown"
)

// Router assembles the HTTP surface: repositories, use cases, handlers, and
// middleware, wired in one place.
type Router struct {
	engine               *gin.Engine
	issueHandler         *issueHandlers.IssueHandler
	notificationHandler  *notificationHandlers.NotificationHandler
	hierarchyHandler     *hierarchyHandlers.HierarchyHandler
	internalNodeHandler  *hierarchyHandlers.InternalNodeHandler
	userHandler          *userHandlers.UserHandler
	projectHandler       *projectHandlers.ProjectHandler
	roleHandler          *roleHandlers.RoleHandler
	authMiddleware       *middleware.AuthMiddleware
	permissionMiddleware *middleware.PermissionMiddleware
}

func NewRouter(database *gorm.DB, redisClient *redis.Client, enforcer *permission.Enforcer, cfg *config.Config, log logger.Interface) *Router {
	engine := gin.New()

	issueRepo := repository.NewIssueRepository(database)
	assignmentRepo := repository.NewAssignmentRepository(database)
	escalationRepo := repository.NewEscalationRepository(database)
	resolutionRepo := repository.NewResolutionRepository(database)
	rejectionRepo := repository.NewRejectionRepository(database)
	reRaiseRepo := repository.NewReRaiseRepository(database)
	auditRepo := repository.NewAuditTrailRepository(database)
	hierarchyRepo := repository.NewHierarchyNodeRepository(database)
	internalNodeRepo := repository.NewInternalNodeRepository(database)
	notificationRepo := repository.NewNotificationRepository(database)
	userRepo := repository.NewUserRepository(database)
	roleRepo := repository.NewProjectUserRoleRepository(database)
	internalRoleRepo := repository.NewInternalProjectUserRoleRepository(database)
	roleDefinitionRepo := repository.NewRoleRepository(database)
	instituteRepo := repository.NewInstituteRepository(database)
	projectRepo := repository.NewProjectRepository(database)

	txManager := db.NewTransactionManager(database)
	ticketGenerator := issue.NewTicketNumberGenerator(issueRepo)

	var unreadCache *cache.UnreadCountCache
	if redisClient != nil {
		unreadCache = cache.NewUnreadCountCache(redisClient)
	}

	var invalidator fanout.UnreadInvalidator
	if unreadCache != nil {
		invalidator = unreadCache
	}
	fanoutEngine := fanout.NewEngine(
		notificationRepo,
		issueRepo,
		resolutionRepo,
		userRepo,
		roleRepo,
		internalRoleRepo,
		hierarchyRepo,
		internalNodeRepo,
		invalidator,
		log,
	)

	issueHandler := issueHandlers.NewIssueHandler(
		issueUC.NewCreateIssueUseCase(issueRepo, ticketGenerator, auditRepo, txManager, log),
		issueUC.NewGetIssueUseCase(issueRepo, log),
		issueUC.NewListIssuesUseCase(issueRepo, log),
		issueUC.NewAcceptIssueUseCase(issueRepo, auditRepo, txManager, log),
		issueUC.NewAssignIssueUseCase(issueRepo, assignmentRepo, auditRepo, userRepo, txManager, fanoutEngine, log),
		issueUC.NewRemoveAssignmentUseCase(issueRepo, assignmentRepo, auditRepo, txManager, fanoutEngine, log),
		issueUC.NewEscalateIssueUseCase(issueRepo, escalationRepo, auditRepo, txManager, fanoutEngine, log),
		issueUC.NewListCentralEscalationsUseCase(escalationRepo, log),
		issueUC.NewResolveIssueUseCase(issueRepo, resolutionRepo, auditRepo, txManager, fanoutEngine, log),
		issueUC.NewConfirmOrRejectUseCase(issueRepo, rejectionRepo, auditRepo, txManager, fanoutEngine, log),
		issueUC.NewReRaiseIssueUseCase(issueRepo, reRaiseRepo, auditRepo, txManager, fanoutEngine, log),
		markdown.NewMarkdownService(),
	)

	var notifCache notificationUC.UnreadCache
	if unreadCache != nil {
		notifCache = unreadCache
	}
	notificationHandler := notificationHandlers.NewNotificationHandler(
		notificationUC.NewListNotificationsUseCase(notificationRepo, log),
		notificationUC.NewUnreadCountUseCase(notificationRepo, notifCache, log),
		notificationUC.NewMarkNotificationReadUseCase(notificationRepo, notifCache, log),
		notificationUC.NewMarkAllNotificationsReadUseCase(notificationRepo, notifCache, log),
		registry.NewMemoryRegistry(),
	)

	jwtService := auth.NewJWTService(
		cfg.Auth.JWT.Secret,
		cfg.Auth.JWT.AccessExpMinutes,
		cfg.Auth.JWT.RefreshExpDays,
	)

	return &Router{
		engine:               engine,
		issueHandler:         issueHandler,
		notificationHandler:  notificationHandler,
		hierarchyHandler:     hierarchyHandlers.NewHierarchyHandler(hierarchyRepo),
		internalNodeHandler:  hierarchyHandlers.NewInternalNodeHandler(internalNodeRepo),
		userHandler:          userHandlers.NewUserHandler(userRepo, jwtService, cfg.Auth.Password.BcryptCost),
		projectHandler:       projectHandlers.NewProjectHandler(instituteRepo, projectRepo),
		roleHandler:          roleHandlers.NewRoleHandler(roleDefinitionRepo, roleRepo, internalRoleRepo),
		authMiddleware:       middleware.NewAuthMiddleware(jwtService, log),
		permissionMiddleware: middleware.NewPermissionMiddleware(enforcer, log),
	}
}

func (r *Router) SetupRoutes() {
	r.engine.Use(middleware.Recovery())
	r.engine.Use(middleware.RequestID())
	r.engine.Use(middleware.Logger(logger.NewLogger()))

	r.engine.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	v1 := r.engine.Group("/api/v1")

	authGroup := v1.Group("/auth")
	{
		authGroup.POST("/register", r.userHandler.Register)
		authGroup.POST("/login", r.userHandler.Login)
	}

	authed := v1.Group("")
	authed.Use(r.authMiddleware.RequireAuth())

	users := authed.Group("/users")
	{
		users.GET("/me", r.userHandler.GetProfile)
		users.GET("", r.userHandler.ListUsers)
		users.GET("/:id", r.userHandler.GetUser)
	}

	issues := authed.Group("/issues")
	{
		issues.POST("", r.issueHandler.CreateIssue)
		issues.GET("", r.issueHandler.ListIssues)
		issues.GET("/:id", r.issueHandler.GetIssue)
		issues.GET("/by-number/:number", r.issueHandler.GetIssueByTicketNumber)
		issues.POST("/:id/accept", r.issueHandler.AcceptIssue)
		issues.POST("/:id/assign", r.issueHandler.AssignIssue)
		issues.POST("/:id/unassign", r.issueHandler.RemoveAssignment)
		issues.POST("/:id/escalate", r.issueHandler.EscalateIssue)
		issues.POST("/:id/resolve", r.issueHandler.ResolveIssue)
		issues.POST("/:id/confirm", r.issueHandler.ConfirmOrReject)
		issues.POST("/:id/re-raise", r.issueHandler.ReRaiseIssue)
	}

	escalations := authed.Group("/escalations")
	escalations.Use(r.permissionMiddleware.RequirePermission("escalations", "read"))
	{
		escalations.GET("/central", r.issueHandler.ListCentralEscalations)
	}

	notifications := authed.Group("/notifications")
	{
		notifications.GET("", r.notificationHandler.ListNotifications)
		notifications.GET("/unread-count", r.notificationHandler.UnreadCount)
		notifications.PUT("/read-all", r.notificationHandler.MarkAllRead)
		notifications.PUT("/:id/read", r.notificationHandler.MarkRead)
		notifications.POST("/subscribe", r.notificationHandler.Subscribe)
		notifications.PUT("/subscribe/:conn_id", r.notificationHandler.Heartbeat)
		notifications.DELETE("/subscribe/:conn_id", r.notificationHandler.Unsubscribe)
	}

	hierarchyGroup := authed.Group("/hierarchy")
	hierarchyGroup.Use(r.permissionMiddleware.RequirePermission("hierarchy", "manage"))
	{
		hierarchyGroup.POST("/nodes", r.hierarchyHandler.CreateNode)
		hierarchyGroup.GET("/nodes/:id", r.hierarchyHandler.GetNode)
		hierarchyGroup.PUT("/nodes/:id", r.hierarchyHandler.RenameNode)
		hierarchyGroup.DELETE("/nodes/:id", r.hierarchyHandler.DeleteNode)
		hierarchyGroup.GET("/roots", r.hierarchyHandler.ListRoots)
		hierarchyGroup.GET("/nodes/:id/children", r.hierarchyHandler.GetChildren)
		hierarchyGroup.GET("/nodes/:id/chain", r.hierarchyHandler.GetChain)
		hierarchyGroup.GET("/nodes/:id/parent", r.hierarchyHandler.GetParent)
	}

	institutes := authed.Group("/institutes")
	institutes.Use(r.permissionMiddleware.RequirePermission("projects", "manage"))
	{
		institutes.POST("", r.projectHandler.CreateInstitute)
		institutes.GET("", r.projectHandler.ListInstitutes)
	}

	projects := authed.Group("/projects")
	projects.Use(r.permissionMiddleware.RequirePermission("projects", "manage"))
	{
		projects.POST("", r.projectHandler.CreateProject)
		projects.GET("", r.projectHandler.ListProjects)
		projects.GET("/:id", r.projectHandler.GetProject)
		projects.DELETE("/:id", r.projectHandler.DeleteProject)
	}

	roles := authed.Group("/roles")
	roles.Use(r.permissionMiddleware.RequirePermission("roles", "manage"))
	{
		roles.POST("", r.roleHandler.CreateRole)
		roles.GET("", r.roleHandler.ListRoles)
		roles.GET("/:id", r.roleHandler.GetRole)
	}

	placements := authed.Group("/placements")
	placements.Use(r.permissionMiddleware.RequirePermission("roles", "manage"))
	{
		placements.POST("", r.roleHandler.CreatePlacement)
		placements.DELETE("/:id", r.roleHandler.DeletePlacement)
	}

	internalPlacements := authed.Group("/internal-placements")
	internalPlacements.Use(r.permissionMiddleware.RequirePermission("roles", "manage"))
	{
		internalPlacements.POST("", r.roleHandler.CreateInternalPlacement)
		internalPlacements.DELETE("/:id", r.roleHandler.DeleteInternalPlacement)
	}

	internalNodes := authed.Group("/internal-nodes")
	internalNodes.Use(r.permissionMiddleware.RequirePermission("internal_nodes", "manage"))
	{
		internalNodes.POST("", r.internalNodeHandler.CreateNode)
		internalNodes.GET("/roots", r.internalNodeHandler.ListRoots)
		internalNodes.GET("/:id", r.internalNodeHandler.GetNode)
		internalNodes.DELETE("/:id", r.internalNodeHandler.DeleteNode)
		internalNodes.GET("/:id/children", r.internalNodeHandler.GetChildren)
		internalNodes.GET("/:id/chain", r.internalNodeHandler.GetChain)
	}
}

func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}
