package model

// LecturerAvailability maps to the lecturer_availabilities table.
// ScheduleData holds the weekly grid: weekday name → list of blocked
// "HH:MM-HH:MM" windows.
type LecturerAvailability struct {
	ID           int     `gorm:"primaryKey"                        json:"id"`
	LecturerID   int     `gorm:"not null;uniqueIndex"              json:"lecturer_id"`
	ScheduleData JSONMap `gorm:"type:jsonb;not null;default:'{}'"  json:"schedule_data"`
	Timestamps
}

// TableName sets the table name.
func (LecturerAvailability) TableName() string { return "lecturer_availabilities" }
