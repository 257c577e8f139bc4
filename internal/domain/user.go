package domain

// UserRole enumerates dashboard user roles.
type UserRole string

const (
	UserRoleAdmin      UserRole = "admin"
	UserRoleHR         UserRole = "hr"
	UserRoleFinancial  UserRole = "financial"
	UserRoleSupervisor UserRole = "supervisor"
	UserRoleView       UserRole = "view"
)

// User is the authenticated dashboard operator.
type User struct {
	ID    string   `json:"id"`
	Name  string   `json:"name"`
	Email string   `json:"email"`
	Role  UserRole `json:"role"`
}
