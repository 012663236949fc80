package constants

const (
	// Environment constants
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"

	// Default pagination
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100

	// HTTP Headers
	HeaderContentType   = "Content-Type"
	HeaderAuthorization = "Authorization"
	HeaderXRequestID    = "X-Request-ID"
	HeaderXForwardedFor = "X-Forwarded-For"
	HeaderUserAgent     = "User-Agent"

	// Content Types
	ContentTypeJSON = "application/json"
	ContentTypeForm = "application/x-www-form-urlencoded"

	// Context keys
	ContextKeyUserID    = "user_id"
	ContextKeyUserRole  = "user_role"
	ContextKeyRequestID = "request_id"

	// User status
	UserStatusActive   = "active"
	UserStatusInactive = "inactive"

	// Database table names
	TableUsers                    = "users"
	TableRoles                    = "roles"
	TableProjects                 = "projects"
	TableInstitutes               = "institutes"
	TableIssues                   = "issues"
	TableIssueAssignments         = "issue_assignments"
	TableIssueEscalations         = "issue_escalations"
	TableIssueResolutions         = "issue_resolutions"
	TableHierarchyNodes           = "hierarchy_nodes"
	TableInternalNodes            = "internal_nodes"
	TableProjectUserRoles         = "project_user_roles"
	TableInternalProjectUserRoles = "internal_project_user_roles"
	TableNotifications            = "notifications"

	// Default values
	DefaultUserStatus = UserStatusActive

	// Error messages
	ErrMsgInternalServerError = "Internal server error occurred"
	ErrMsgResourceNotFound    = "Resource not found"
	ErrMsgUnauthorized        = "Unauthorized access"
	ErrMsgForbidden           = "Access forbidden"
	ErrMsgValidationFailed    = "Validation failed"
	ErrMsgConflict            = "Resource already exists"
)
