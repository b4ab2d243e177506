package models

import "time"

type ProjectStudent struct {
	BaseModel

	ProjectID uint      `gorm:"not null;uniqueIndex:idx_project_student"`
	StudentID uint      `gorm:"not null;uniqueIndex:idx_project_student"`
	JoinedAt  time.Time `gorm:"not null;autoCreateTime"`

	// Relationships
	Project Project `gorm:"foreignKey:ProjectID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Student User    `gorm:"foreignKey:StudentID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}
