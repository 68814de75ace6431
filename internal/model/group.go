package model

// Group maps to the groups table (student groups).
type Group struct {
	ID          int    `gorm:"primaryKey"                 json:"id"`
	Name        string `gorm:"type:varchar(100);not null" json:"name"`
	Size        int    `gorm:"not null;default:0"         json:"size"`
	Description string `gorm:"type:varchar(250)"          json:"description,omitempty"`
	Email       string `gorm:"type:varchar(200)"          json:"email,omitempty"`
	Program     string `gorm:"type:varchar(200)"          json:"program,omitempty"`
	ParentGroup string `gorm:"type:varchar(100)"          json:"parent_group,omitempty"`
	Timestamps
}

// TableName sets the table name.
func (Group) TableName() string { return "groups" }
