package domain

// Role names recognized by the authorization checks.
const (
	RoleAdmin     = "admin"
	RoleManager   = "manager"
	RoleMarketing = "marketing"
	RoleViewer    = "viewer"
)

// User is the authenticated principal attached to privileged calls. It is
// consumed, not owned: token issuance and credential storage live with the
// auth collaborator.
type User struct {
	ID    string   `json:"id"`
	Roles []string `json:"roles"`
}

// HasRole reports whether the user carries the given role.
func (u User) HasRole(role string) bool {
	for _, r := range u.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// HasAnyRole reports whether the user carries at least one of the given roles.
func (u User) HasAnyRole(roles ...string) bool {
	for _, role := range roles {
		if u.HasRole(role) {
			return true
		}
	}
	return false
}
