package domain

// Role is the account classification that decides which dashboard a user lands on.
type Role string

const (
	RoleVendor    Role = "vendor"
	RoleCompany   Role = "company"
	RoleOrganiser Role = "organiser"
)

// RoleNone marks an absent role, both for a login form that asserted nothing
// and for an account that was never classified.
const RoleNone Role = ""

// Roles returns the closed set of valid roles.
func Roles() []Role {
	return []Role{RoleVendor, RoleCompany, RoleOrganiser}
}

// Valid reports whether r is one of the three known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleVendor, RoleCompany, RoleOrganiser:
		return true
	}
	return false
}

// Destination identifies the dashboard a session is sent to after login.
type Destination struct {
	Name string `json:"name"`
	Path string `json:"path"`
}

var (
	DestinationVendor    = Destination{Name: "vendor", Path: "/vendor"}
	DestinationCompany   = Destination{Name: "company", Path: "/company"}
	DestinationOrganiser = Destination{Name: "organiser", Path: "/organiser"}
	DestinationLanding   = Destination{Name: "landing", Path: "/"}
)

// DestinationFor maps a persisted role to its dashboard. Unknown values fall
// back to the landing page instead of failing, since the account is otherwise valid.
func DestinationFor(r Role) Destination {
	switch r {
	case RoleVendor:
		return DestinationVendor
	case RoleCompany:
		return DestinationCompany
	case RoleOrganiser:
		return DestinationOrganiser
	default:
		return DestinationLanding
	}
}
