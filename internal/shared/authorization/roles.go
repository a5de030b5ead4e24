package authorization

// Role is the actor role carried in the session token. Agents own listings
// and articles; operators moderate any entity regardless of ownership.
type Role string

const (
	RoleOperator Role = "operator"
	RoleAgent    Role = "agent"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsOperator() bool {
	return r == RoleOperator
}

func (r Role) IsValid() bool {
	return r == RoleOperator || r == RoleAgent
}

// ParseRole returns the role for s, defaulting to agent for unknown values.
func ParseRole(s string) Role {
	role := Role(s)
	if role.IsValid() {
		return role
	}
	return RoleAgent
}
