package models

type Project struct {
	BaseModel

	Name           string `gorm:"not null"`
	Description    string
	TargetAudience string
	StartDate      string  `gorm:"type:date;not null"`
	EndDate        string  `gorm:"type:date;not null"`
	Budget         float64 `gorm:"type:numeric(12,2)"`
	JoinCode       string  `gorm:"uniqueIndex;not null"`
	ManagerID      uint    `gorm:"not null;index"`

	// Relationships
	Manager  User             `gorm:"foreignKey:ManagerID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Students []ProjectStudent `gorm:"foreignKey:ProjectID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Goals    []ProjectGoal    `gorm:"foreignKey:ProjectID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Actions  []ProjectAction  `gorm:"foreignKey:ProjectID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}
