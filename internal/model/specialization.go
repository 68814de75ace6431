package model

// Specialization maps to the specializations table.
type Specialization struct {
	ID        int    `gorm:"primaryKey"                 json:"id"`
	ProgramID *int   `gorm:"column:program_id"          json:"program_id"`
	Name      string `gorm:"type:varchar(200);not null" json:"name"`
	Acronym   string `gorm:"type:varchar(50);not null"  json:"acronym"`
	StartDate string `gorm:"type:varchar(50);not null"  json:"start_date"`
	Status    bool   `gorm:"not null;default:true"      json:"status"`
	Timestamps
}

// TableName sets the table name.
func (Specialization) TableName() string { return "specializations" }
