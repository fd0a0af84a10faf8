package constants

// Role identifies which side of a job a rated party was on.
type Role string

const (
	RoleEmployer Role = "EMPLOYER"
	RoleEmployee Role = "EMPLOYEE"
)

func Roles() []string {
	return []string{string(RoleEmployer), string(RoleEmployee)}
}

// IsValidRole reports whether s is a known role value.
func IsValidRole(s string) bool {
	return Role(s) == RoleEmployer || Role(s) == RoleEmployee
}
