package model

import "time"

type Project struct {
	ID              uint            `gorm:"primaryKey" json:"id"`
	Name            string          `gorm:"not null" json:"name"`
	Description     string          `json:"description"`
	Status          string          `json:"status"`
	CreatedByUserID uint            `json:"createdByUserId"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       *time.Time      `json:"updatedAt"`
	Members         []ProjectMember `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE" json:"members"`
}

type ProjectMember struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	ProjectID uint      `gorm:"index" json:"projectId"`
	UserID    uint      `json:"userId"`
	JoinedAt  time.Time `json:"joinedAt"`
}

// ProjectStats aggregates task counts for a single project.
type ProjectStats struct {
	ProjectID uint             `json:"projectId"`
	Total     int64            `json:"total"`
	ByStatus  map[string]int64 `json:"byStatus"`
}
