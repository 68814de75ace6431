package model

// StudyProgram maps to the study_programs table.
type StudyProgram struct {
	ID         int    `gorm:"primaryKey"                 json:"id"`
	Name       string `gorm:"type:varchar(200);not null" json:"name"`
	Acronym    string `gorm:"type:varchar(50);not null"  json:"acronym"`
	Status     bool   `gorm:"not null;default:true"      json:"status"`
	StartDate  string `gorm:"type:varchar(50);not null"  json:"start_date"`
	TotalECTS  int    `gorm:"column:total_ects;not null" json:"total_ects"`
	Location   string `gorm:"type:varchar(200)"          json:"location,omitempty"`
	Level      string `gorm:"type:varchar(50);default:Bachelor" json:"level,omitempty"`
	DegreeType string `gorm:"type:varchar(50)"           json:"degree_type,omitempty"`
	Timestamps
}

// TableName sets the table name.
func (StudyProgram) TableName() string { return "study_programs" }
