package staff

type Role string

const (
	RoleGatekeeper Role = "gatekeeper"
	RoleAdmin      Role = "admin"
)

var roleRank = map[Role]int{
	RoleGatekeeper: 1,
	RoleAdmin:      2,
}

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	_, ok := roleRank[r]
	return ok
}

// AtLeast reports whether r grants everything min grants.
func (r Role) AtLeast(min Role) bool {
	have, ok := roleRank[r]
	need, okMin := roleRank[min]
	return ok && okMin && have >= need
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}
