package model

import "time"

type Team struct {
	ID              uint         `gorm:"primaryKey" json:"id"`
	Name            string       `gorm:"not null" json:"name"`
	Description     string       `json:"description"`
	CreatedByUserID uint         `json:"createdByUserId"`
	CreatedAt       time.Time    `json:"createdAt"`
	UpdatedAt       *time.Time   `json:"updatedAt"`
	Members         []TeamMember `gorm:"foreignKey:TeamID;constraint:OnDelete:CASCADE" json:"members"`
}

// Team member roles.
const (
	TeamRoleAdmin  = "Admin"
	TeamRoleMember = "Member"
)

type TeamMember struct {
	ID       uint      `gorm:"primaryKey" json:"id"`
	TeamID   uint      `gorm:"index" json:"teamId"`
	UserID   uint      `json:"userId"`
	Role     string    `json:"role"`
	JoinedAt time.Time `json:"joinedAt"`
}
