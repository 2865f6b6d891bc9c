package constant

type ContextKey string

const (
	SessionKey      ContextKey = "session"
	BackendTokenKey ContextKey = "backend_token"
)

const (
	RoleAdmin    = "admin"
	RoleSubAdmin = "sub_admin"
	RoleUser     = "user"
)

const (
	UserStatusActive    = "active"
	UserStatusSuspended = "suspended"
	UserStatusDeleted   = "deleted"
)
