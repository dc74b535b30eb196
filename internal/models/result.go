package models

type AnalyzeRequest struct {
	RoleKey         string `form:"role_key" validate:"required_without=RoleDescription"`
	RoleDescription string `form:"role_description" validate:"required_without=RoleKey"`
}

type AnalyzeResponse struct {
	Filename    string       `json:"filename"`
	Role        string       `json:"role"`
	Scores      *ScoreReport `json:"scores"`
	Suggestions []string     `json:"suggestions"`
}

type RoleSummary struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}
