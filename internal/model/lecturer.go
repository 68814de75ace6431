package model

// Lecturer maps to the lecturers table.
type Lecturer struct {
	ID             int    `gorm:"primaryKey"                 json:"id"`
	FirstName      string `gorm:"type:varchar(200);not null" json:"first_name"`
	LastName       string `gorm:"type:varchar(200)"          json:"last_name"`
	Title          string `gorm:"type:varchar(50);not null"  json:"title"`
	EmploymentType string `gorm:"type:varchar(50);not null"  json:"employment_type"`
	PersonalEmail  string `gorm:"type:varchar(200)"          json:"personal_email,omitempty"`
	MDHEmail       string `gorm:"type:varchar(200);column:mdh_email" json:"mdh_email,omitempty"`
	Phone          string `gorm:"type:varchar(50)"           json:"phone,omitempty"`
	Location       string `gorm:"type:varchar(200)"          json:"location,omitempty"`
	TeachingLoad   string `gorm:"type:varchar(100)"          json:"teaching_load,omitempty"`
	Timestamps
}

// TableName sets the table name.
func (Lecturer) TableName() string { return "lecturers" }

// FullName joins first and last name for display.
func (l *Lecturer) FullName() string {
	if l.LastName == "" {
		return l.FirstName
	}
	return l.FirstName + " " + l.LastName
}
