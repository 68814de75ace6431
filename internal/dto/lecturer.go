package dto

// LecturerRequest is the create/update payload for a lecturer.
type LecturerRequest struct {
	FirstName      string `json:"first_name" binding:"required"`
	LastName       string `json:"last_name"`
	Title          string `json:"title" binding:"required"`
	EmploymentType string `json:"employment_type" binding:"required"`
	PersonalEmail  string `json:"personal_email"`
	MDHEmail       string `json:"mdh_email"`
	Phone          string `json:"phone"`
	Location       string `json:"location"`
	TeachingLoad   string `json:"teaching_load"`
}
