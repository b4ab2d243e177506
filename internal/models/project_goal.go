package models

type ProjectGoal struct {
	BaseModel

	ProjectID   uint   `gorm:"not null;index"`
	Title       string `gorm:"not null"`
	Description string
	Type        string `gorm:"not null"`
	TargetValue *float64

	// Relationships
	Project  Project        `gorm:"foreignKey:ProjectID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Progress []GoalProgress `gorm:"foreignKey:GoalID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}
