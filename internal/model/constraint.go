package model

import "time"

// SchedulerConstraint maps to the scheduler_constraints table.
//
// TargetID is a string column: module targets are module codes and
// University campus targets are synthetic ids that exist only in the
// target directory. The sentinel "0" means all/global within the scope.
type SchedulerConstraint struct {
	ID        int        `gorm:"primaryKey"                           json:"id"`
	Name      string     `gorm:"type:varchar(200);not null"           json:"name"`
	Scope     string     `gorm:"type:varchar(20);not null"            json:"scope"`
	TargetID  string     `gorm:"type:varchar(64);not null;default:0"  json:"target_id"`
	Category  string     `gorm:"type:varchar(80);not null"            json:"category"`
	RuleText  string     `gorm:"type:text;not null"                   json:"rule_text"`
	ValidFrom *time.Time `gorm:"type:date"                            json:"valid_from"`
	ValidTo   *time.Time `gorm:"type:date"                            json:"valid_to"`
	IsEnabled bool       `gorm:"not null;default:true"                json:"is_enabled"`
	Timestamps
}

// TableName sets the table name.
func (SchedulerConstraint) TableName() string { return "scheduler_constraints" }
