package modules

type AddModuleRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

// ProjectProgress pairs a project with the percentage derived from its
// module list, for the dashboard roll-up.
type ProjectProgress struct {
	ProjectID int    `json:"projectId"`
	Name      string `json:"name"`
	Progress  int    `json:"progress"`
	Modules   int    `json:"modules"`
}
