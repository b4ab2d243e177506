package models

const ActionStatusPending = "PENDING"

type ProjectAction struct {
	BaseModel

	ProjectID   uint   `gorm:"not null;index"`
	Title       string `gorm:"not null"`
	Type        string `gorm:"not null"`
	Description string
	Date        string `gorm:"type:date;not null"`
	Status      string `gorm:"not null;default:PENDING"`

	// Relationships
	Project Project `gorm:"foreignKey:ProjectID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}
