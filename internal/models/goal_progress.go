package models

import "time"

// GoalProgress rows are append-only; the latest value for a goal is the most
// recent row by registered_at.
type GoalProgress struct {
	BaseModel

	GoalID       uint `gorm:"not null;index"`
	RegisteredBy uint `gorm:"not null;index"`
	CurrentValue *float64
	Comments     *string
	RegisteredAt time.Time `gorm:"not null;autoCreateTime"`

	// Relationships
	Goal ProjectGoal `gorm:"foreignKey:GoalID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	User User        `gorm:"foreignKey:RegisteredBy;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}

func (GoalProgress) TableName() string {
	return "goal_progress"
}
