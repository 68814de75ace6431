package model

// Module maps to the modules table, keyed by module code.
type Module struct {
	ModuleCode     string `gorm:"primaryKey;type:varchar(50);column:module_code" json:"module_code"`
	Name           string `gorm:"type:varchar(200);not null" json:"name"`
	ECTS           int    `gorm:"column:ects;not null"       json:"ects"`
	RoomType       string `gorm:"type:varchar(100);not null" json:"room_type"`
	AssessmentType string `gorm:"type:varchar(100)"          json:"assessment_type,omitempty"`
	Semester       int    `gorm:"not null;default:1"         json:"semester"`
	Category       string `gorm:"type:varchar(100)"          json:"category,omitempty"`
	ProgramID      *int   `gorm:"column:program_id"          json:"program_id"`
	Timestamps
}

// TableName sets the table name.
func (Module) TableName() string { return "modules" }
