package console

import (
	"tb-console/internal/access"
	"tb-console/internal/domain"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires every proxy route with the literal role set of
// the screen it serves. No hierarchy: a role is either listed or
// denied, and a set change here is a product decision, not a refactor.
func RegisterRoutes(r *gin.RouterGroup, h *Handler, sessions access.SessionSource) {
	adminHR := access.Require(sessions, domain.RoleAdmin, domain.RoleHR)
	adminPM := access.Require(sessions, domain.RoleAdmin, domain.RolePM)
	selfService := access.Require(sessions,
		domain.RoleEmployee, domain.RoleAdmin, domain.RoleHR)
	anyRole := access.Require(sessions,
		domain.RoleAdmin, domain.RoleHR, domain.RolePM, domain.RoleEmployee)

	employees := r.Group("/employees", adminHR)
	{
		employees.GET("", h.ListEmployees)
		employees.GET("/inactive", h.ListInactiveEmployees)
		employees.GET("/:id", h.GetEmployee)
		employees.PUT("/:id", h.UpdateEmployee)
		employees.DELETE("/:id", h.DeleteEmployee)
		employees.PUT("/:id/reactivate", h.ReactivateEmployee)
		employees.GET("/:id/skills", h.UserSkills)
	}

	skills := r.Group("/skills")
	{
		skills.GET("", adminHR, h.ListSkills)
		skills.GET("/:id", adminHR, h.GetSkill)
		// Creation is also open to PMs, who add missing skills while
		// writing requirements.
		skills.POST("", access.Require(sessions,
			domain.RoleAdmin, domain.RoleHR, domain.RolePM), h.CreateSkill)
		skills.PUT("/:id", adminHR, h.UpdateSkill)
		skills.DELETE("/:id", adminHR, h.DeleteSkill)
	}

	employeeSkills := r.Group("/employee-skills")
	{
		employeeSkills.GET("", adminHR, h.ListEmployeeSkills)
		employeeSkills.GET("/mine", selfService, h.MySkills)
		employeeSkills.POST("", selfService, h.AddEmployeeSkill)
		employeeSkills.PUT("/:id", adminHR, h.UpdateEmployeeSkill)
		employeeSkills.DELETE("/:id", adminHR, h.DeleteEmployeeSkill)
	}

	projects := r.Group("/projects", adminPM)
	{
		projects.GET("", h.ListProjects)
		projects.POST("", h.CreateProject)
		projects.GET("/:projectId", h.wrapProjectID(h.GetProject))
		projects.PUT("/:projectId", h.wrapProjectID(h.UpdateProject))
		projects.DELETE("/:projectId", h.wrapProjectID(h.DeleteProject))
		projects.GET("/:projectId/requirements", h.wrapProjectID(h.ProjectRequirements))
	}

	requirements := r.Group("/requirements", adminPM)
	{
		requirements.POST("", h.AddRequirement)
		requirements.PUT("/:id", h.UpdateRequirement)
		requirements.DELETE("/:id", h.DeleteRequirement)
	}

	assignments := r.Group("/assignments")
	{
		assignments.GET("", adminPM, h.AllAssignments)
		assignments.GET("/mine", selfService, h.MyAssignments)
		assignments.POST("", adminPM, h.Assign)
		assignments.PUT("/:id/release", adminPM, h.ReleaseAssignment)
	}

	matching := r.Group("/matching", adminPM)
	{
		matching.GET("/find/:projectId", h.FindCandidates)
	}

	analytics := r.Group("/analytics", access.Require(sessions,
		domain.RoleAdmin, domain.RoleHR, domain.RolePM))
	{
		analytics.GET("/stats", h.UserStats)
	}

	r.GET("/me", anyRole, h.Me)
}

// wrapProjectID renames the param so project routes can nest under the
// same group as the module ledger without a gin wildcard conflict.
func (h *Handler) wrapProjectID(next gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Params = append(c.Params, gin.Param{Key: "id", Value: c.Param("projectId")})
		next(c)
	}
}
