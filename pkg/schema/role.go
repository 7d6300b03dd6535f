package schema

// Role identifies one of the five pipeline agents.
type Role string

// Canonical roles, one per pipeline stage.
const (
	RoleProjectManager Role = "project_manager"
	RoleDesigner       Role = "designer"
	RoleDeveloper      Role = "developer"
	RoleTester         Role = "tester"
	RolePresenter      Role = "presenter"
)

// Roles returns the five canonical roles in pipeline order.
func Roles() []Role {
	return []Role{
		RoleProjectManager,
		RoleDesigner,
		RoleDeveloper,
		RoleTester,
		RolePresenter,
	}
}

// Valid reports whether r is one of the canonical roles.
func (r Role) Valid() bool {
	switch r {
	case RoleProjectManager, RoleDesigner, RoleDeveloper, RoleTester, RolePresenter:
		return true
	}
	return false
}

// Label returns the human-readable role name, e.g. "Project Manager".
func (r Role) Label() string {
	switch r {
	case RoleProjectManager:
		return "Project Manager"
	case RoleDesigner:
		return "Designer"
	case RoleDeveloper:
		return "Developer"
	case RoleTester:
		return "Tester"
	case RolePresenter:
		return "Presenter"
	}
	return string(r)
}
