package authz

const (
	RoleAdmin  = "admin"
	RoleClient = "client"
)

func IsAdmin(role string) bool {
	return role == RoleAdmin
}

func IsKnown(role string) bool {
	return role == RoleAdmin || role == RoleClient
}
