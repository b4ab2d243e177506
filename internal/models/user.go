package models

import "time"

const DefaultUserRole = "student"

type User struct {
	BaseModel

	Name                 string  `gorm:"not null"`
	Email                string  `gorm:"uniqueIndex;not null"`
	PasswordHash         string  `gorm:"not null"`
	Role                 string  `gorm:"not null;default:student"`
	ResetPasswordToken   *string `gorm:"index"`
	ResetPasswordExpires *time.Time

	// Relationships
	ManagedProjects []Project        `gorm:"foreignKey:ManagerID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Memberships     []ProjectStudent `gorm:"foreignKey:StudentID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}
