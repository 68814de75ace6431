package dto

// ProgramRequest is the create/update payload for a study program.
type ProgramRequest struct {
	Name       string `json:"name" binding:"required"`
	Acronym    string `json:"acronym" binding:"required"`
	Status     *bool  `json:"status"`
	StartDate  string `json:"start_date" binding:"required"`
	TotalECTS  int    `json:"total_ects"`
	Location   string `json:"location"`
	Level      string `json:"level"`
	DegreeType string `json:"degree_type"`
}

// SpecializationRequest is the create/update payload for a specialization.
type SpecializationRequest struct {
	ProgramID *int   `json:"program_id"`
	Name      string `json:"name" binding:"required"`
	Acronym   string `json:"acronym" binding:"required"`
	StartDate string `json:"start_date" binding:"required"`
	Status    *bool  `json:"status"`
}
