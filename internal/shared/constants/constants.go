// Package constants defines application-wide constants.
package constants

const (
	// Environment constants
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"

	// HTTP Headers
	HeaderContentType   = "Content-Type"
	HeaderXRequestID    = "X-Request-ID"
	HeaderXAdminToken   = "X-Admin-Token"
	HeaderXForwardedFor = "X-Forwarded-For"

	// Content Types
	ContentTypeJSON = "application/json"
	ContentTypeHTML = "text/html"

	// Context keys
	ContextKeyRequestID = "request_id"

	// Database table names
	TableClients           = "clients"
	TableHostingRecords    = "hosting_records"
	TableNotificationRules = "notification_rules"
	TableMessageTemplates  = "message_templates"
	TableDispatchRecords   = "dispatch_records"
	TableSettings          = "settings"

	// Error messages
	ErrMsgInternalServerError = "Internal server error occurred"
	ErrMsgResourceNotFound    = "Resource not found"
	ErrMsgUnauthorized        = "Unauthorized access"
	ErrMsgValidationFailed    = "Validation failed"
)
