package model

// Room maps to the rooms table. Location doubles as the campus key for
// the constraint target directory.
type Room struct {
	ID        int    `gorm:"primaryKey"                        json:"id"`
	Name      string `gorm:"type:varchar(200);not null;unique" json:"name"`
	Capacity  int    `gorm:"not null;default:0"                json:"capacity"`
	Type      string `gorm:"type:varchar(100);not null"        json:"type"`
	Status    bool   `gorm:"not null;default:true"             json:"status"`
	Equipment string `gorm:"type:varchar(500)"                 json:"equipment,omitempty"`
	Location  string `gorm:"type:varchar(200)"                 json:"location,omitempty"`
	Timestamps
}

// TableName sets the table name.
func (Room) TableName() string { return "rooms" }
