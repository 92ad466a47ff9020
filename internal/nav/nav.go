// Package nav derives the visible menu, shortcut, and quick-action sets
// from a role. The tables are literal by design: there is no permission
// merging, and adding a role means adding an entry here. Slice order is
// display order.
package nav

import "tb-console/internal/domain"

type Item struct {
	Label string `json:"label"`
	Icon  string `json:"icon"`
	Path  string `json:"path"`
}

var menus = map[domain.Role][]Item{
	domain.RoleAdmin: {
		{Label: "Dashboard", Icon: "layout-dashboard", Path: "/dashboard"},
		{Label: "Employees", Icon: "users", Path: "/employees"},
		{Label: "Skills", Icon: "layers", Path: "/skills"},
		{Label: "Projects", Icon: "briefcase", Path: "/projects"},
		{Label: "Progress", Icon: "pie-chart", Path: "/projects/progress"},
		{Label: "Matching", Icon: "git-merge", Path: "/matching"},
		{Label: "Analytics", Icon: "bar-chart-2", Path: "/analytics"},
		{Label: "Updates", Icon: "bell", Path: "/updates"},
		{Label: "Settings", Icon: "settings", Path: "/settings"},
	},
	domain.RoleHR: {
		{Label: "Dashboard", Icon: "layout-dashboard", Path: "/dashboard"},
		{Label: "Employees", Icon: "users", Path: "/employees"},
		{Label: "Skills", Icon: "layers", Path: "/skills"},
		{Label: "Analytics", Icon: "bar-chart-2", Path: "/analytics"},
		{Label: "Updates", Icon: "bell", Path: "/updates"},
	},
	domain.RolePM: {
		{Label: "Dashboard", Icon: "layout-dashboard", Path: "/dashboard"},
		{Label: "Projects", Icon: "briefcase", Path: "/projects"},
		{Label: "Progress", Icon: "pie-chart", Path: "/projects/progress"},
		{Label: "Matching", Icon: "git-merge", Path: "/matching"},
		{Label: "Updates", Icon: "bell", Path: "/updates"},
		{Label: "Analytics", Icon: "bar-chart-2", Path: "/analytics"},
	},
	domain.RoleEmployee: {
		{Label: "Dashboard", Icon: "layout-dashboard", Path: "/dashboard"},
		{Label: "My Skills", Icon: "award", Path: "/my-skills"},
		{Label: "My Assignments", Icon: "user-check", Path: "/my-assignments"},
		{Label: "Updates", Icon: "bell", Path: "/updates"},
	},
}

var defaultMenu = []Item{
	{Label: "Dashboard", Icon: "layout-dashboard", Path: "/dashboard"},
}

// MenuFor returns the sidebar menu for role, or the single-item fallback
// for an unrecognized or missing role.
func MenuFor(role domain.Role) []Item {
	if menu, ok := menus[role]; ok {
		return menu
	}
	return defaultMenu
}

var shortcuts = map[domain.Role][]Item{
	domain.RoleAdmin: {
		{Label: "Employees", Icon: "users", Path: "/employees"},
		{Label: "Projects", Icon: "folder", Path: "/projects"},
		{Label: "Analytics", Icon: "bar-chart-2", Path: "/analytics"},
		{Label: "Notes", Icon: "sticky-note", Path: "/notes"},
		{Label: "Settings", Icon: "settings", Path: "/settings"},
	},
	domain.RoleHR: {
		{Label: "Employees", Icon: "users", Path: "/employees"},
		{Label: "Skills", Icon: "hammer", Path: "/skills"},
		{Label: "Analytics", Icon: "bar-chart-2", Path: "/analytics"},
		{Label: "Notes", Icon: "sticky-note", Path: "/notes"},
	},
	domain.RolePM: {
		{Label: "Projects", Icon: "folder", Path: "/projects"},
		{Label: "Matching", Icon: "search", Path: "/matching"},
		{Label: "Analytics", Icon: "bar-chart-2", Path: "/analytics"},
		{Label: "Notes", Icon: "sticky-note", Path: "/notes"},
	},
	domain.RoleEmployee: {
		{Label: "My Skills", Icon: "hammer", Path: "/my-skills"},
		{Label: "Assignments", Icon: "briefcase", Path: "/my-assignments"},
		{Label: "Notes", Icon: "sticky-note", Path: "/notes"},
	},
}

// ShortcutsFor returns the dashboard shortcut row. Unknown roles get
// none.
func ShortcutsFor(role domain.Role) []Item {
	return shortcuts[role]
}

// QuickActionsFor returns the navbar quick-action entries visible to
// role. Add Skill is open to everyone with a session.
func QuickActionsFor(role domain.Role) []Item {
	var items []Item
	if role == domain.RoleAdmin || role == domain.RoleHR {
		items = append(items, Item{Label: "Add Employee", Icon: "user-plus", Path: "/employees/add"})
	}
	if role == domain.RoleAdmin || role == domain.RolePM {
		items = append(items, Item{Label: "Add Project", Icon: "briefcase", Path: "/projects/add"})
	}
	items = append(items, Item{Label: "Add Skill", Icon: "layers", Path: "/skills/add"})
	if role == domain.RoleAdmin || role == domain.RolePM {
		items = append(items, Item{Label: "Add Module", Icon: "layers", Path: "/projects"})
	}
	return items
}
