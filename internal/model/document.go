package model

import "time"

type Document struct {
	ID              uint       `gorm:"primaryKey" json:"id"`
	Title           string     `gorm:"not null" json:"title"`
	Content         string     `json:"content"`
	ProjectID       *uint      `json:"projectId"`
	CreatedByUserID uint       `json:"createdByUserId"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       *time.Time `json:"updatedAt"`
}
