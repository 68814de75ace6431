package dto

// ModuleRequest is the create/update payload for a module.
type ModuleRequest struct {
	ModuleCode     string `json:"module_code" binding:"required"`
	Name           string `json:"name" binding:"required"`
	ECTS           int    `json:"ects" binding:"required"`
	RoomType       string `json:"room_type" binding:"required"`
	AssessmentType string `json:"assessment_type"`
	Semester       int    `json:"semester"`
	Category       string `json:"category"`
	ProgramID      *int   `json:"program_id"`
}
