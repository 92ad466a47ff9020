package upstream

// Wire types mirror the backend's JSON. Identifiers are backend-issued
// integers; dates are strings formatted by the backend.

type User struct {
	UserID   int    `json:"userId"`
	Username string `json:"username"`
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	Phone    string `json:"phone,omitempty"`
	IsActive bool   `json:"isActive"`
}

type UserStats struct {
	TotalUsers    int            `json:"totalUsers"`
	CountByRole   map[string]int `json:"countByRole"`
	CountByStatus map[string]int `json:"countByStatus"`
}

type Skill struct {
	SkillID  int    `json:"skillId"`
	Name     string `json:"name"`
	Category string `json:"category,omitempty"`
	Strength int    `json:"strength,omitempty"`
}

type EmployeeSkill struct {
	ID              int    `json:"id"`
	UserID          int    `json:"userId"`
	SkillID         int    `json:"skillId"`
	Level           int    `json:"level"`
	YearsExperience int    `json:"yearsExperience"`
	LastUsedYear    int    `json:"lastUsedYear"`
	SkillName       string `json:"skillName,omitempty"`
	UserName        string `json:"userName,omitempty"`
}

type Project struct {
	ProjectID         int    `json:"projectId"`
	Name              string `json:"name"`
	Description       string `json:"description,omitempty"`
	StartDate         string `json:"startDate,omitempty"`
	EndDate           string `json:"endDate,omitempty"`
	RequiredHeadcount int    `json:"requiredHeadcount,omitempty"`
	Status            string `json:"status,omitempty"`
	CreatedBy         int    `json:"createdBy,omitempty"`
}

type Requirement struct {
	ID           int     `json:"id"`
	ProjectID    int     `json:"projectId"`
	SkillID      int     `json:"skillId"`
	DesiredLevel int     `json:"desiredLevel"`
	Weight       float64 `json:"weight"`
	SkillName    string  `json:"skillName,omitempty"`
}

type Assignment struct {
	AssignmentID  int    `json:"assignmentId"`
	ProjectID     int    `json:"projectId"`
	UserID        int    `json:"userId"`
	RoleOnProject string `json:"roleOnProject,omitempty"`
	AssignedAt    string `json:"assignedAt,omitempty"`
	ReleaseDate   string `json:"releaseDate,omitempty"`
	Status        string `json:"status,omitempty"`
	ProjectName   string `json:"projectName,omitempty"`
	EmployeeName  string `json:"employeeName,omitempty"`
}

type MatchResult struct {
	MatchID           int     `json:"matchId"`
	UserID            int     `json:"userId"`
	TotalScore        float64 `json:"totalScore"`
	SkillScore        float64 `json:"skillScore"`
	ExperienceScore   float64 `json:"experienceScore"`
	AvailabilityScore float64 `json:"availabilityScore"`
	EmployeeName      string  `json:"employeeName,omitempty"`
	EmployeeEmail     string  `json:"employeeEmail,omitempty"`
}

type LoginResponse struct {
	Token   string `json:"token"`
	Role    string `json:"role"`
	UserID  int    `json:"userId"`
	Message string `json:"message,omitempty"`
}
